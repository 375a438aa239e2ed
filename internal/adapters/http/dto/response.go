// Package dto provides HTTP request/response data transfer objects and
// RFC 9457 Problem Details error responses for the inbound HTTP adapter layer.
package dto

import (
	"time"

	"golang.org/x/text/language"

	"github.com/jsamuelsen11/relief-activity-service/internal/domain/activity"
	"github.com/jsamuelsen11/relief-activity-service/internal/domain/validation"
	"github.com/jsamuelsen11/relief-activity-service/internal/platform/i18n"
)

// ValidationResponse is the verdict for one activity.
type ValidationResponse struct {
	Valid  bool                 `json:"valid"`
	Errors []FieldErrorResponse `json:"errors"`
}

// FieldErrorResponse lists the failures of one field in evaluation order.
type FieldErrorResponse struct {
	Field    string            `json:"field"`
	Failures []FailureResponse `json:"failures"`
}

// FailureResponse is one failed rule with its localized message.
type FailureResponse struct {
	Code    string         `json:"code"`
	Message string         `json:"message"`
	Params  map[string]any `json:"params,omitempty"`
}

// BatchItemResponse is the verdict for one entry of a batch, identified by
// its position in the request.
type BatchItemResponse struct {
	Index int `json:"index"`
	ValidationResponse
}

// BatchResponse summarizes a batch dry run.
type BatchResponse struct {
	Results []BatchItemResponse `json:"results"`
	Total   int                 `json:"total"`
	Valid   int                 `json:"valid"`
	Invalid int                 `json:"invalid"`
}

// SubmissionResponse acknowledges an accepted activity.
type SubmissionResponse struct {
	ID          string `json:"id"`
	Status      string `json:"status"`
	SubmittedAt string `json:"submitted_at"`
}

// Localizer renders failure messages in one negotiated locale.
type Localizer struct {
	catalog *i18n.Catalog
	tag     language.Tag
}

// NewLocalizer binds catalog to tag.
func NewLocalizer(catalog *i18n.Catalog, tag language.Tag) Localizer {
	return Localizer{catalog: catalog, tag: tag}
}

// Tag returns the bound locale.
func (l Localizer) Tag() language.Tag {
	return l.tag
}

// Message renders a rule failure for field.
func (l Localizer) Message(field string, f validation.Failure) string {
	return l.catalog.Message(l.tag, field, f.Code.String(), f.Params)
}

// Error renders a request-level message.
func (l Localizer) Error(key string, params map[string]any) string {
	return l.catalog.Error(l.tag, key, params)
}

// ToValidationResponse converts a result. Errors is an empty array, never
// null, when the activity is valid.
func ToValidationResponse(res *validation.Result, l Localizer) ValidationResponse {
	resp := ValidationResponse{
		Valid:  res.Valid(),
		Errors: make([]FieldErrorResponse, 0, len(res.Errors)),
	}
	for _, fe := range res.Errors {
		item := FieldErrorResponse{
			Field:    fe.Field,
			Failures: make([]FailureResponse, len(fe.Failures)),
		}
		for i, f := range fe.Failures {
			item.Failures[i] = FailureResponse{
				Code:    f.Code.String(),
				Message: l.Message(fe.Field, f),
				Params:  f.Params,
			}
		}
		resp.Errors = append(resp.Errors, item)
	}
	return resp
}

// ToBatchResponse converts per-item results, which must all be non-nil.
func ToBatchResponse(results []*validation.Result, l Localizer) BatchResponse {
	resp := BatchResponse{
		Results: make([]BatchItemResponse, len(results)),
		Total:   len(results),
	}
	for i, res := range results {
		resp.Results[i] = BatchItemResponse{Index: i, ValidationResponse: ToValidationResponse(res, l)}
		if res.Valid() {
			resp.Valid++
		} else {
			resp.Invalid++
		}
	}
	return resp
}

// ToSubmissionResponse converts a moderation acknowledgement.
func ToSubmissionResponse(s *activity.Submission) SubmissionResponse {
	return SubmissionResponse{
		ID:          s.ID.String(),
		Status:      s.Status.String(),
		SubmittedAt: s.SubmittedAt.UTC().Format(time.RFC3339),
	}
}
