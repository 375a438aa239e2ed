// Package clock provides the platform's notion of "today": wall time read
// from an injectable source, converted to the platform's fixed time zone and
// truncated to the day.
package clock

import (
	"time"

	"github.com/jsamuelsen11/relief-activity-service/internal/domain/calendar"
	"github.com/jsamuelsen11/relief-activity-service/internal/ports"
)

var (
	_ ports.Clock = (*Clock)(nil)
	_ ports.Clock = Fixed{}
)

// Clock reads the current day in a fixed location.
type Clock struct {
	loc *time.Location
	now func() time.Time
}

// Option configures a Clock.
type Option func(*Clock)

// WithNow replaces time.Now as the wall time source.
func WithNow(now func() time.Time) Option {
	return func(c *Clock) { c.now = now }
}

// New creates a Clock for loc. A nil loc means UTC.
func New(loc *time.Location, opts ...Option) *Clock {
	if loc == nil {
		loc = time.UTC
	}
	c := &Clock{loc: loc, now: time.Now}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Today returns the current date in the clock's location.
func (c *Clock) Today() calendar.Date {
	return calendar.Of(c.now(), c.loc)
}

// Location returns the clock's time zone.
func (c *Clock) Location() *time.Location {
	return c.loc
}

// Fixed is a Clock that always reports the same day.
type Fixed calendar.Date

// Today returns the fixed date.
func (f Fixed) Today() calendar.Date {
	return calendar.Date(f)
}
