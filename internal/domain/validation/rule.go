package validation

// Rule is an atomic predicate over a field value V, with read-only access to
// the whole input In for cross-field checks.
type Rule[In, V any] struct {
	Code Code

	// Test reports whether v passes. On failure it may return params that
	// are attached to the Failure; when it returns nil, the rule's static
	// Params are used instead.
	Test func(v V, in In) (bool, Params)

	Params Params
}

// Must builds a Rule from a plain predicate with fixed params.
func Must[In, V any](code Code, params Params, pred func(v V, in In) bool) Rule[In, V] {
	return Rule[In, V]{
		Code:   code,
		Params: params,
		Test: func(v V, in In) (bool, Params) {
			return pred(v, in), nil
		},
	}
}

// Check builds a Rule whose predicate computes its own failure params, for
// rules that report which entries were at fault.
func Check[In, V any](code Code, params Params, test func(v V, in In) (bool, Params)) Rule[In, V] {
	return Rule[In, V]{Code: code, Params: params, Test: test}
}

func (r Rule[In, V]) apply(v V, in In) (Failure, bool) {
	ok, params := r.Test(v, in)
	if ok {
		return Failure{}, true
	}
	if params == nil {
		params = r.Params
	}
	return Failure{Code: r.Code, Params: params}, false
}
