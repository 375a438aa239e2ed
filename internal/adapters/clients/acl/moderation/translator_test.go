package moderation

import (
	"errors"
	"slices"
	"testing"
	"time"

	"github.com/google/uuid"

	"github.com/jsamuelsen11/relief-activity-service/internal/domain/activity"
	"github.com/jsamuelsen11/relief-activity-service/internal/domain/calendar"
)

func ptr[T any](v T) *T { return &v }

var (
	typeFood  = uuid.MustParse("5b9c3a8e-1f0d-4c7e-9a2b-6d4e8f1a3c5b")
	branchHue = uuid.MustParse("8a7b6c5d-4e3f-4a1b-9c8d-7e6f5a4b3c2d")
	itemRice  = uuid.MustParse("2c1d0e9f-8a7b-4c6d-8e5f-4a3b2c1d0e9f")
)

func TestToSubmitActivityRequest_FieldMapping(t *testing.T) {
	t.Parallel()

	start := calendar.New(2026, time.November, 2)
	end := calendar.New(2026, time.November, 20)
	delivering := calendar.New(2026, time.November, 5)

	req := &activity.Request{
		Name:                       ptr("Cứu trợ lũ lụt miền Trung"),
		Address:                    ptr("12 Lê Lợi, Phú Hội, Huế"),
		Location:                   []float64{16.4637, 107.5909},
		EstimatedStartDate:         &start,
		EstimatedEndDate:           &end,
		DeliveringDate:             &delivering,
		Description:                ptr("Quyên góp gạo và nước sạch."),
		Images:                     []*activity.FileRef{{FileName: "kho.jpg", Length: 2048}},
		ActivityTypeIDs:            []uuid.UUID{typeFood},
		BranchIDs:                  []uuid.UUID{branchHue},
		TargetProcessRequests:      []activity.TargetProcess{{ItemID: itemRice, Quantity: 500}},
		AidItemForActivityRequests: []activity.AidItem{{AidItemID: itemRice, Quantity: 200}},
	}

	got := ToSubmitActivityRequest(req)

	if got.Name != "Cứu trợ lũ lụt miền Trung" {
		t.Errorf("Name = %q", got.Name)
	}
	if got.Address == nil || *got.Address != "12 Lê Lợi, Phú Hội, Huế" {
		t.Errorf("Address = %v", got.Address)
	}
	if got.Location == nil || got.Location.Latitude != 16.4637 || got.Location.Longitude != 107.5909 {
		t.Errorf("Location = %+v", got.Location)
	}
	if got.EstimatedStartDate != "2026-11-02" || got.EstimatedEndDate != "2026-11-20" {
		t.Errorf("dates = %q..%q", got.EstimatedStartDate, got.EstimatedEndDate)
	}
	if got.DeliveringDate == nil || *got.DeliveringDate != "2026-11-05" {
		t.Errorf("DeliveringDate = %v", got.DeliveringDate)
	}
	if len(got.Images) != 1 || got.Images[0] != (ImageDTO{FileName: "kho.jpg", SizeBytes: 2048}) {
		t.Errorf("Images = %+v", got.Images)
	}
	if !slices.Equal(got.ActivityTypeIDs, []string{typeFood.String()}) {
		t.Errorf("ActivityTypeIDs = %v", got.ActivityTypeIDs)
	}
	if !slices.Equal(got.BranchIDs, []string{branchHue.String()}) {
		t.Errorf("BranchIDs = %v", got.BranchIDs)
	}
	if len(got.TargetProcesses) != 1 || got.TargetProcesses[0] != (TargetProcessDTO{ItemID: itemRice.String(), Quantity: 500}) {
		t.Errorf("TargetProcesses = %+v", got.TargetProcesses)
	}
	if len(got.AidItems) != 1 || got.AidItems[0] != (AidItemDTO{AidItemID: itemRice.String(), Quantity: 200}) {
		t.Errorf("AidItems = %+v", got.AidItems)
	}
}

func TestToSubmitActivityRequest_OptionalFieldsOmitted(t *testing.T) {
	t.Parallel()

	start := calendar.New(2026, time.November, 2)
	req := &activity.Request{
		Name:               ptr("Phát gạo"),
		EstimatedStartDate: &start,
		EstimatedEndDate:   &start,
		Description:        ptr("mô tả"),
		Images:             []*activity.FileRef{{FileName: "a.png", Length: 1}},
		ActivityTypeIDs:    []uuid.UUID{typeFood},
	}

	got := ToSubmitActivityRequest(req)

	if got.Address != nil {
		t.Errorf("Address = %v, want nil", got.Address)
	}
	if got.Location != nil {
		t.Errorf("Location = %+v, want nil", got.Location)
	}
	if got.DeliveringDate != nil {
		t.Errorf("DeliveringDate = %v, want nil", got.DeliveringDate)
	}
	if got.BranchIDs != nil || got.TargetProcesses != nil || got.AidItems != nil {
		t.Errorf("optional lists = %v %v %v, want nil", got.BranchIDs, got.TargetProcesses, got.AidItems)
	}
}

func TestToDomainSubmission(t *testing.T) {
	t.Parallel()

	id := "c3d2e1f0-a9b8-4c7d-9e6f-5a4b3c2d1e0f"

	tests := []struct {
		name    string
		dto     SubmissionDTO
		wantErr bool
	}{
		{name: "pending", dto: SubmissionDTO{ID: id, Status: "pending", SubmittedAt: "2026-10-14T03:00:00Z"}},
		{name: "approved", dto: SubmissionDTO{ID: id, Status: "approved", SubmittedAt: "2026-10-14T10:00:00+07:00"}},
		{name: "bad id", dto: SubmissionDTO{ID: "42", Status: "pending", SubmittedAt: "2026-10-14T03:00:00Z"}, wantErr: true},
		{name: "unknown status", dto: SubmissionDTO{ID: id, Status: "queued", SubmittedAt: "2026-10-14T03:00:00Z"}, wantErr: true},
		{name: "bad timestamp", dto: SubmissionDTO{ID: id, Status: "pending", SubmittedAt: "yesterday"}, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got, err := ToDomainSubmission(&tt.dto)
			if tt.wantErr {
				if !errors.Is(err, ErrMalformedSubmission) {
					t.Fatalf("ToDomainSubmission() error = %v, want ErrMalformedSubmission", err)
				}
				return
			}
			if err != nil {
				t.Fatalf("ToDomainSubmission() error = %v", err)
			}
			if got.ID.String() != id {
				t.Errorf("ID = %v", got.ID)
			}
			if string(got.Status) != tt.dto.Status {
				t.Errorf("Status = %q, want %q", got.Status, tt.dto.Status)
			}
			if !got.SubmittedAt.Equal(time.Date(2026, time.October, 14, 3, 0, 0, 0, time.UTC)) {
				t.Errorf("SubmittedAt = %v", got.SubmittedAt)
			}
		})
	}
}
