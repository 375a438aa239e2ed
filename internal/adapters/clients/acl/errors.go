// Package acl implements the Anti-Corruption Layer between this service and
// the downstream moderation API. Resource translators live in subpackages
// (acl/moderation); transport and error mapping live here.
package acl

import (
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"

	"github.com/jsamuelsen11/relief-activity-service/internal/domain"
)

// maxErrorBodySize limits how much of an error response body is read.
const maxErrorBodySize = 1 << 20

// problemDetail is an RFC 7807 problem document from the downstream API.
type problemDetail struct {
	Title  string        `json:"title"`
	Detail string        `json:"detail"`
	Errors []errorDetail `json:"errors"`
}

type errorDetail struct {
	Location string `json:"location"`
	Message  string `json:"message"`
}

// TranslateHTTPError maps a downstream error response to a domain error.
// Problem bodies (application/problem+json) supply the detail text, and
// field-level errors on 400/422 become a *domain.ValidationError.
func TranslateHTTPError(resp *http.Response) error {
	pd := parseProblemDetail(resp)

	detail := pd.Detail
	if detail == "" {
		detail = pd.Title
	}
	if detail == "" {
		detail = http.StatusText(resp.StatusCode)
	}

	code := resp.StatusCode
	if code == http.StatusBadRequest || code == http.StatusUnprocessableEntity {
		if len(pd.Errors) > 0 {
			return toValidationError(pd.Errors)
		}
		return fmt.Errorf("%s: %w", detail, domain.ErrValidation)
	}
	if sentinel, ok := statusSentinels[code]; ok {
		return fmt.Errorf("%s: %w", detail, sentinel)
	}
	if code >= http.StatusInternalServerError {
		return fmt.Errorf("%s: %w", detail, domain.ErrUnavailable)
	}
	return fmt.Errorf("unexpected status %d: %s", code, detail)
}

// statusSentinels covers the downstream statuses with a fixed domain meaning.
// A 409 means the moderation queue already holds the submission.
var statusSentinels = map[int]error{
	http.StatusNotFound:        domain.ErrNotFound,
	http.StatusConflict:        domain.ErrConflict,
	http.StatusUnauthorized:    domain.ErrForbidden,
	http.StatusForbidden:       domain.ErrForbidden,
	http.StatusTooManyRequests: domain.ErrUnavailable,
}

// parseProblemDetail returns the zero value when the body is absent, not a
// problem document, or unparseable.
func parseProblemDetail(resp *http.Response) problemDetail {
	if resp.Body == nil {
		return problemDetail{}
	}
	if ct := resp.Header.Get("Content-Type"); !strings.HasPrefix(ct, "application/problem+json") {
		return problemDetail{}
	}

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxErrorBodySize))
	if err != nil {
		return problemDetail{}
	}

	var pd problemDetail
	if err := json.Unmarshal(body, &pd); err != nil {
		return problemDetail{}
	}
	return pd
}

// toValidationError strips the "body." prefix so locations read as field
// names.
func toValidationError(details []errorDetail) *domain.ValidationError {
	fields := make(map[string]string, len(details))
	for _, d := range details {
		fields[strings.TrimPrefix(d.Location, "body.")] = d.Message
	}
	return &domain.ValidationError{Fields: fields}
}
