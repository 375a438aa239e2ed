package validation

// Mode is a chain's continuation policy.
type Mode int

const (
	// StopOnFirstFailure stops evaluating a chain at its first failing rule.
	StopOnFirstFailure Mode = iota

	// CollectAll evaluates every rule in the chain and reports each failure.
	CollectAll
)

// String implements fmt.Stringer.
func (m Mode) String() string {
	switch m {
	case StopOnFirstFailure:
		return "stop_on_first_failure"
	case CollectAll:
		return "collect_all"
	default:
		return "unknown"
	}
}

// Chain is an ordered sequence of rules bound to one field.
type Chain[In any] interface {
	// Field returns the field name failures are attributed to.
	Field() string

	// Evaluate runs the chain's rules against in and returns the failures in
	// rule order. A nil result means the field is valid.
	Evaluate(in In) []Failure
}

type fieldChain[In, V any] struct {
	field string
	get   func(In) V
	mode  Mode
	rules []Rule[In, V]
}

// Field binds rules to the field extracted by get. Rules run in the order
// given, governed by mode.
func Field[In, V any](field string, get func(In) V, mode Mode, rules ...Rule[In, V]) Chain[In] {
	return &fieldChain[In, V]{
		field: field,
		get:   get,
		mode:  mode,
		rules: rules,
	}
}

func (c *fieldChain[In, V]) Field() string {
	return c.field
}

func (c *fieldChain[In, V]) Evaluate(in In) []Failure {
	v := c.get(in)

	var failures []Failure
	for _, r := range c.rules {
		f, ok := r.apply(v, in)
		if ok {
			continue
		}
		failures = append(failures, f)
		if c.mode == StopOnFirstFailure {
			break
		}
	}
	return failures
}
