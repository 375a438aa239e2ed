package dto

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"sort"

	"github.com/jsamuelsen11/relief-activity-service/internal/domain"
	"github.com/jsamuelsen11/relief-activity-service/internal/domain/validation"
)

// ErrorResponse represents an RFC 9457 Problem Details response.
type ErrorResponse struct {
	Type     string        `json:"type"`
	Title    string        `json:"title"`
	Status   int           `json:"status"`
	Detail   string        `json:"detail,omitempty"`
	Instance string        `json:"instance,omitempty"`
	Errors   []ErrorDetail `json:"errors,omitempty"`
}

// ErrorDetail is one field-level error within an ErrorResponse. Code is set
// for business-rule failures.
type ErrorDetail struct {
	Location string         `json:"location"`
	Code     string         `json:"code,omitempty"`
	Message  string         `json:"message"`
	Params   map[string]any `json:"params,omitempty"`
}

// NewErrorResponse creates a problem response for err. Rule rejections
// carry one localized entry per failure in evaluation order. Server-side
// failures never expose err's text.
func NewErrorResponse(r *http.Request, err error, l Localizer) ErrorResponse {
	status := domainErrorToStatus(err)

	resp := ErrorResponse{
		Type:     "about:blank",
		Title:    http.StatusText(status),
		Status:   status,
		Detail:   err.Error(),
		Instance: r.URL.Path,
	}

	var (
		rejected *validation.RejectedError
		verr     *domain.ValidationError
	)
	switch {
	case errors.As(err, &rejected):
		resp.Detail = l.Error("rejected", nil)
		resp.Errors = rejectionDetails(rejected.Result, l)
	case errors.As(err, &verr):
		resp.Detail = l.Error("malformed_body", nil)
		resp.Errors = validationFieldsToDetails(verr.Fields)
	case status == http.StatusGatewayTimeout:
		resp.Detail = l.Error("timeout", nil)
	case status == http.StatusServiceUnavailable:
		resp.Detail = l.Error("unavailable", nil)
	case status >= http.StatusInternalServerError:
		resp.Detail = l.Error("internal", nil)
	}

	return resp
}

// WriteErrorResponse writes the problem response for err as
// application/problem+json.
func WriteErrorResponse(w http.ResponseWriter, r *http.Request, err error, l Localizer) {
	WriteProblem(w, r, NewErrorResponse(r, err, l))
}

// WriteProblem writes resp as application/problem+json.
func WriteProblem(w http.ResponseWriter, r *http.Request, resp ErrorResponse) {
	w.Header().Set("Content-Type", "application/problem+json")
	w.WriteHeader(resp.Status)

	if encErr := json.NewEncoder(w).Encode(resp); encErr != nil {
		slog.ErrorContext(r.Context(), "failed to encode error response",
			slog.Any("error", encErr),
		)
	}
}

// domainErrorToStatus maps domain sentinel errors to HTTP status codes.
// Misconfiguration is checked first so it is never reported as a client
// error.
func domainErrorToStatus(err error) int {
	switch {
	case errors.Is(err, domain.ErrMisconfigured):
		return http.StatusInternalServerError
	case errors.Is(err, domain.ErrValidation):
		return http.StatusBadRequest
	case errors.Is(err, domain.ErrNotFound):
		return http.StatusNotFound
	case errors.Is(err, domain.ErrForbidden):
		return http.StatusForbidden
	case errors.Is(err, domain.ErrConflict):
		return http.StatusConflict
	case errors.Is(err, context.DeadlineExceeded):
		return http.StatusGatewayTimeout
	case errors.Is(err, domain.ErrUnavailable):
		return http.StatusServiceUnavailable
	default:
		return http.StatusInternalServerError
	}
}

func rejectionDetails(res validation.Result, l Localizer) []ErrorDetail {
	var details []ErrorDetail
	for _, fe := range res.Errors {
		for _, f := range fe.Failures {
			details = append(details, ErrorDetail{
				Location: "body." + fe.Field,
				Code:     f.Code.String(),
				Message:  l.Message(fe.Field, f),
				Params:   f.Params,
			})
		}
	}
	return details
}

// validationFieldsToDetails sorts by location. The whole-body key "body" is
// not prefixed again.
func validationFieldsToDetails(fields map[string]string) []ErrorDetail {
	details := make([]ErrorDetail, 0, len(fields))
	for field, msg := range fields {
		loc := "body." + field
		if field == "body" {
			loc = field
		}
		details = append(details, ErrorDetail{Location: loc, Message: msg})
	}
	sort.Slice(details, func(i, j int) bool {
		return details[i].Location < details[j].Location
	})
	return details
}
