package validation

import (
	"fmt"
	"strings"

	"github.com/jsamuelsen11/relief-activity-service/internal/domain"
)

// FieldErrors lists the failures attributed to one field.
type FieldErrors struct {
	Field    string
	Failures []Failure
}

// Result is the verdict of one Evaluate call. Errors keeps the engine's
// field registration order so reports are deterministic.
type Result struct {
	Errors []FieldErrors
}

// Valid reports whether no field failed.
func (r Result) Valid() bool {
	return len(r.Errors) == 0
}

// Fields returns the names of the failing fields in order.
func (r Result) Fields() []string {
	fields := make([]string, len(r.Errors))
	for i, fe := range r.Errors {
		fields[i] = fe.Field
	}
	return fields
}

// Failures returns the failures for field, or nil if the field passed.
func (r Result) Failures(field string) []Failure {
	for _, fe := range r.Errors {
		if fe.Field == field {
			return fe.Failures
		}
	}
	return nil
}

// Codes returns the failure codes for field in rule order.
func (r Result) Codes(field string) []Code {
	failures := r.Failures(field)
	if failures == nil {
		return nil
	}
	codes := make([]Code, len(failures))
	for i, f := range failures {
		codes[i] = f.Code
	}
	return codes
}

// Has reports whether field failed with code.
func (r Result) Has(field string, code Code) bool {
	for _, f := range r.Failures(field) {
		if f.Code == code {
			return true
		}
	}
	return false
}

// Err returns nil for a valid result, or a *RejectedError carrying the
// result otherwise.
func (r Result) Err() error {
	if r.Valid() {
		return nil
	}
	return &RejectedError{Result: r}
}

// RejectedError reports a request that failed business validation. It wraps
// domain.ErrValidation so that errors.Is(err, domain.ErrValidation) holds.
type RejectedError struct {
	Result Result
}

func (e *RejectedError) Error() string {
	parts := make([]string, 0, len(e.Result.Errors))
	for _, fe := range e.Result.Errors {
		codes := make([]string, len(fe.Failures))
		for i, f := range fe.Failures {
			codes[i] = f.Code.String()
		}
		parts = append(parts, fmt.Sprintf("%s: %s", fe.Field, strings.Join(codes, ",")))
	}
	return fmt.Sprintf("%s: %s", domain.ErrValidation.Error(), strings.Join(parts, "; "))
}

func (e *RejectedError) Unwrap() error {
	return domain.ErrValidation
}
