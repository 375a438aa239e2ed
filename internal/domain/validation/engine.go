package validation

import (
	"errors"
	"fmt"
)

// ErrDuplicateField is returned by NewEngine when two chains claim the same
// field name.
var ErrDuplicateField = errors.New("validation: duplicate field chain")

// Engine owns a field -> chain registry and evaluates every chain per call.
type Engine[In any] struct {
	chains []Chain[In]
}

// NewEngine registers chains in evaluation order. Each field may be
// registered once so that every field is evaluated exactly once per call.
func NewEngine[In any](chains ...Chain[In]) (*Engine[In], error) {
	seen := make(map[string]struct{}, len(chains))
	for _, c := range chains {
		if _, dup := seen[c.Field()]; dup {
			return nil, fmt.Errorf("%w: %q", ErrDuplicateField, c.Field())
		}
		seen[c.Field()] = struct{}{}
	}
	return &Engine[In]{chains: chains}, nil
}

// MustEngine is NewEngine for package-level rule sets; it panics on a
// duplicate field.
func MustEngine[In any](chains ...Chain[In]) *Engine[In] {
	e, err := NewEngine(chains...)
	if err != nil {
		panic(err)
	}
	return e
}

// Fields returns the registered field names in evaluation order.
func (e *Engine[In]) Fields() []string {
	fields := make([]string, len(e.chains))
	for i, c := range e.chains {
		fields[i] = c.Field()
	}
	return fields
}

// Evaluate runs every chain against in. A failure on one field never
// suppresses evaluation of another. Fields whose chain passes are omitted
// from the result.
func (e *Engine[In]) Evaluate(in In) Result {
	var res Result
	for _, c := range e.chains {
		if failures := c.Evaluate(in); len(failures) > 0 {
			res.Errors = append(res.Errors, FieldErrors{Field: c.Field(), Failures: failures})
		}
	}
	return res
}
