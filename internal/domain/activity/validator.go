package activity

import (
	"github.com/jsamuelsen11/relief-activity-service/internal/domain/calendar"
	"github.com/jsamuelsen11/relief-activity-service/internal/domain/validation"
)

// Clock supplies the current platform day. It is satisfied by ports.Clock.
type Clock interface {
	Today() calendar.Date
}

// Validator applies the activity rule table. It keeps no state between
// calls and is safe for concurrent use.
type Validator struct {
	clock  Clock
	policy PolicySource
}

// NewValidator creates a Validator reading the current day from clock and
// upload limits from policy.
func NewValidator(clock Clock, policy PolicySource) *Validator {
	return &Validator{clock: clock, policy: policy}
}

// Option overrides a live collaborator for one Validate call.
type Option func(*evalOptions)

type evalOptions struct {
	today  *calendar.Date
	limits *UploadLimits
}

// WithToday pins the current day instead of asking the clock.
func WithToday(d calendar.Date) Option {
	return func(o *evalOptions) { o.today = &d }
}

// WithLimits uses l instead of reading the upload policy.
func WithLimits(l UploadLimits) Option {
	return func(o *evalOptions) { o.limits = &l }
}

// Validate evaluates req. The returned error is non-nil only when the
// upload policy is misconfigured (it wraps domain.ErrMisconfigured); rule
// violations are reported in the Result.
func (v *Validator) Validate(req *Request, opts ...Option) (validation.Result, error) {
	var o evalOptions
	for _, opt := range opts {
		opt(&o)
	}

	limits := o.limits
	if limits == nil {
		loaded, err := LoadUploadLimits(v.policy)
		if err != nil {
			return validation.Result{}, err
		}
		limits = &loaded
	}

	today := o.today
	if today == nil {
		d := v.clock.Today()
		today = &d
	}

	return Evaluate(req, *today, *limits), nil
}

// Evaluate is the pure rule evaluation: its result depends only on its
// arguments. A nil req is evaluated as an empty request.
func Evaluate(req *Request, today calendar.Date, limits UploadLimits) validation.Result {
	if req == nil {
		req = &Request{}
	}
	return rules.Evaluate(input{req: req, today: today, limits: limits})
}

// Fields returns the validated field names in evaluation order.
func Fields() []string {
	return rules.Fields()
}
