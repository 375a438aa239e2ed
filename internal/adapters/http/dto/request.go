package dto

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"

	"github.com/google/uuid"

	"github.com/jsamuelsen11/relief-activity-service/internal/domain"
	"github.com/jsamuelsen11/relief-activity-service/internal/domain/activity"
	"github.com/jsamuelsen11/relief-activity-service/internal/domain/calendar"
)

// ActivityRequest is the JSON body of an activity proposal. Absent and null
// members decode to nil so the rules can tell "missing" from "empty".
// Dates use the YYYY-MM-DD form; IDs are UUIDs.
type ActivityRequest struct {
	Name                       *string                `json:"name"`
	Address                    *string                `json:"address"`
	Location                   []float64              `json:"location"`
	EstimatedStartDate         *calendar.Date         `json:"estimated_start_date"`
	EstimatedEndDate           *calendar.Date         `json:"estimated_end_date"`
	DeliveringDate             *calendar.Date         `json:"delivering_date"`
	Description                *string                `json:"description"`
	Images                     []*FileRefRequest      `json:"images"`
	ActivityTypeIDs            []uuid.UUID            `json:"activity_type_ids"`
	BranchIDs                  []uuid.UUID            `json:"branch_ids"`
	TargetProcessRequests      []TargetProcessRequest `json:"target_process_requests"`
	AidItemForActivityRequests []AidItemRequest       `json:"aid_item_for_activity_requests"`
}

// FileRefRequest is uploaded image metadata.
type FileRefRequest struct {
	FileName string `json:"file_name"`
	Length   int64  `json:"length"`
}

// TargetProcessRequest is a requested catalog item quantity.
type TargetProcessRequest struct {
	ItemID   uuid.UUID `json:"item_id"`
	Quantity int       `json:"quantity"`
}

// AidItemRequest is a pledged aid item quantity.
type AidItemRequest struct {
	AidItemID uuid.UUID `json:"aid_item_id"`
	Quantity  int       `json:"quantity"`
}

// BatchActivityRequest is the JSON body of a batch dry run.
type BatchActivityRequest struct {
	Activities []*ActivityRequest `json:"activities"`
}

// ToDomain converts the body to a domain request. Null image entries stay
// nil so they are reported as missing.
func (r *ActivityRequest) ToDomain() *activity.Request {
	if r == nil {
		return nil
	}

	req := &activity.Request{
		Name:               r.Name,
		Address:            r.Address,
		Location:           r.Location,
		EstimatedStartDate: r.EstimatedStartDate,
		EstimatedEndDate:   r.EstimatedEndDate,
		DeliveringDate:     r.DeliveringDate,
		Description:        r.Description,
		ActivityTypeIDs:    r.ActivityTypeIDs,
		BranchIDs:          r.BranchIDs,
	}

	if r.Images != nil {
		req.Images = make([]*activity.FileRef, len(r.Images))
		for i, img := range r.Images {
			if img != nil {
				req.Images[i] = &activity.FileRef{FileName: img.FileName, Length: img.Length}
			}
		}
	}
	if r.TargetProcessRequests != nil {
		req.TargetProcessRequests = make([]activity.TargetProcess, len(r.TargetProcessRequests))
		for i, tp := range r.TargetProcessRequests {
			req.TargetProcessRequests[i] = activity.TargetProcess{ItemID: tp.ItemID, Quantity: tp.Quantity}
		}
	}
	if r.AidItemForActivityRequests != nil {
		req.AidItemForActivityRequests = make([]activity.AidItem, len(r.AidItemForActivityRequests))
		for i, ai := range r.AidItemForActivityRequests {
			req.AidItemForActivityRequests[i] = activity.AidItem{AidItemID: ai.AidItemID, Quantity: ai.Quantity}
		}
	}
	return req
}

// DecodeJSON reads one JSON value from body into dst. Syntax, type, and
// size failures become a *domain.ValidationError keyed by the offending
// location ("body" or "body.<field>"), as do keys dst does not declare and
// trailing data after the value.
func DecodeJSON(body io.Reader, dst any) error {
	dec := json.NewDecoder(body)
	dec.DisallowUnknownFields()
	if err := dec.Decode(dst); err != nil {
		return decodeError(err)
	}
	if dec.More() {
		return &domain.ValidationError{Fields: map[string]string{"body": "unexpected data after JSON value"}}
	}
	return nil
}

func decodeError(err error) error {
	var (
		syntaxErr *json.SyntaxError
		typeErr   *json.UnmarshalTypeError
		maxErr    *http.MaxBytesError
	)

	switch {
	case errors.As(err, &maxErr):
		return &domain.ValidationError{Fields: map[string]string{
			"body": fmt.Sprintf("must not exceed %d bytes", maxErr.Limit),
		}}
	case errors.As(err, &syntaxErr):
		return &domain.ValidationError{Fields: map[string]string{
			"body": fmt.Sprintf("invalid JSON at offset %d", syntaxErr.Offset),
		}}
	case errors.As(err, &typeErr) && typeErr.Field != "":
		return &domain.ValidationError{Fields: map[string]string{
			typeErr.Field: fmt.Sprintf("must be %s", typeErr.Type),
		}}
	case isUnknownField(err):
		name, _ := strings.CutPrefix(err.Error(), unknownFieldPrefix)
		return &domain.ValidationError{Fields: map[string]string{
			strings.Trim(name, `"`): "is not a recognized field",
		}}
	case errors.Is(err, io.EOF):
		return &domain.ValidationError{Fields: map[string]string{"body": "must not be empty"}}
	case errors.Is(err, io.ErrUnexpectedEOF):
		return &domain.ValidationError{Fields: map[string]string{"body": "truncated JSON"}}
	default:
		// Date and UUID text decoding errors land here.
		return &domain.ValidationError{Fields: map[string]string{"body": err.Error()}}
	}
}

// encoding/json reports undeclared keys only as text.
const unknownFieldPrefix = "json: unknown field "

func isUnknownField(err error) bool {
	return strings.HasPrefix(err.Error(), unknownFieldPrefix)
}
