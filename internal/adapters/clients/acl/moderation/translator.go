package moderation

import (
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/jsamuelsen11/relief-activity-service/internal/domain/activity"
	"github.com/jsamuelsen11/relief-activity-service/internal/domain/calendar"
)

// ErrMalformedSubmission reports a moderation response that cannot be
// translated.
var ErrMalformedSubmission = errors.New("malformed submission")

// ToSubmitActivityRequest converts an accepted proposal to the downstream
// request. Only validated requests reach this point, so required fields are
// present; nil pointers still translate to zero values.
func ToSubmitActivityRequest(req *activity.Request) SubmitActivityRequestDTO {
	dto := SubmitActivityRequestDTO{
		Name:               deref(req.Name),
		Address:            req.Address,
		EstimatedStartDate: formatDate(req.EstimatedStartDate),
		EstimatedEndDate:   formatDate(req.EstimatedEndDate),
		Description:        deref(req.Description),
		Images:             make([]ImageDTO, 0, len(req.Images)),
		ActivityTypeIDs:    uuidStrings(req.ActivityTypeIDs),
		BranchIDs:          uuidStrings(req.BranchIDs),
	}

	if len(req.Location) == activity.LocationArity {
		dto.Location = &LocationDTO{Latitude: req.Location[0], Longitude: req.Location[1]}
	}
	if req.DeliveringDate != nil {
		d := req.DeliveringDate.String()
		dto.DeliveringDate = &d
	}
	for _, img := range req.Images {
		if img == nil {
			continue
		}
		dto.Images = append(dto.Images, ImageDTO{FileName: img.FileName, SizeBytes: img.Length})
	}
	for _, tp := range req.TargetProcessRequests {
		dto.TargetProcesses = append(dto.TargetProcesses, TargetProcessDTO{
			ItemID:   tp.ItemID.String(),
			Quantity: tp.Quantity,
		})
	}
	for _, ai := range req.AidItemForActivityRequests {
		dto.AidItems = append(dto.AidItems, AidItemDTO{
			AidItemID: ai.AidItemID.String(),
			Quantity:  ai.Quantity,
		})
	}
	return dto
}

// ToDomainSubmission converts the downstream acknowledgement. Unknown
// statuses and unparseable identifiers or timestamps are rejected.
func ToDomainSubmission(dto *SubmissionDTO) (*activity.Submission, error) {
	id, err := uuid.Parse(dto.ID)
	if err != nil {
		return nil, fmt.Errorf("%w: id %q: %w", ErrMalformedSubmission, dto.ID, err)
	}

	status := activity.SubmissionStatus(dto.Status)
	if !status.IsValid() {
		return nil, fmt.Errorf("%w: unknown status %q", ErrMalformedSubmission, dto.Status)
	}

	submittedAt, err := time.Parse(time.RFC3339, dto.SubmittedAt)
	if err != nil {
		return nil, fmt.Errorf("%w: submitted_at %q: %w", ErrMalformedSubmission, dto.SubmittedAt, err)
	}

	return &activity.Submission{ID: id, Status: status, SubmittedAt: submittedAt}, nil
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}

func formatDate(d *calendar.Date) string {
	if d == nil {
		return ""
	}
	return d.String()
}

func uuidStrings(ids []uuid.UUID) []string {
	if ids == nil {
		return nil
	}
	out := make([]string, len(ids))
	for i, id := range ids {
		out[i] = id.String()
	}
	return out
}
