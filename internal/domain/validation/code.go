// Package validation is a small rule-chain engine for field-attributed
// business validation.
//
// A Rule is an atomic predicate over one field value that may also read the
// whole input for cross-field checks. Rules are grouped into a Chain bound to
// one field name and a continuation Mode. An Engine runs every registered
// chain exactly once per call and aggregates the failures into a Result:
//
//	engine := validation.MustEngine(
//	    validation.Field("name", func(in Input) *string { return in.Name },
//	        validation.StopOnFirstFailure,
//	        validation.Must(validation.CodeRequired, nil, isPresent),
//	    ),
//	)
//	result := engine.Evaluate(input)
//
// Business-rule failures are returned as data in the Result, never as errors.
// The engine holds no state beyond its chain registry, so a single Engine may
// be shared by any number of goroutines.
package validation

// Code is a stable, language-neutral identifier for a validation failure.
// Message rendering is keyed by Code; codes never change meaning.
type Code string

const (
	CodeRequired              Code = "required"
	CodeLengthOutOfRange      Code = "length_out_of_range"
	CodeArityMismatch         Code = "arity_mismatch"
	CodeDateBeforeWindow      Code = "date_before_window"
	CodeDateAfterWindow       Code = "date_after_window"
	CodeDateOrderingViolation Code = "date_ordering_violation"
	CodeCollectionEmpty       Code = "collection_empty"
	CodeCollectionTooLarge    Code = "collection_too_large"
	CodeDuplicateEntry        Code = "duplicate_entry"
	CodeNonPositiveQuantity   Code = "non_positive_quantity"
	CodeInvalidFileType       Code = "invalid_file_type"
	CodeFileTooLarge          Code = "file_too_large"
	CodeEmptyFile             Code = "empty_file"
)

// String implements fmt.Stringer.
func (c Code) String() string {
	return string(c)
}

// Params carries the values a message template may interpolate, such as
// bounds or offending indexes. Params are informational; they never affect
// whether a rule passes.
type Params map[string]any

// Failure is one failed rule on one field.
type Failure struct {
	Code   Code
	Params Params
}
