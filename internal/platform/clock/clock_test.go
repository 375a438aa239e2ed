package clock_test

import (
	"testing"
	"time"

	"github.com/jsamuelsen11/relief-activity-service/internal/domain/calendar"
	"github.com/jsamuelsen11/relief-activity-service/internal/platform/clock"
)

func TestClock_Today(t *testing.T) {
	t.Parallel()

	saigon, err := time.LoadLocation("Asia/Ho_Chi_Minh")
	if err != nil {
		t.Skipf("tzdata unavailable: %v", err)
	}

	tests := []struct {
		name string
		now  time.Time
		want calendar.Date
	}{
		{
			// 18:30 UTC is already 01:30 the next day in UTC+7.
			name: "late UTC evening rolls over",
			now:  time.Date(2026, time.October, 14, 18, 30, 0, 0, time.UTC),
			want: calendar.New(2026, time.October, 15),
		},
		{
			name: "early UTC morning is same day",
			now:  time.Date(2026, time.October, 14, 2, 0, 0, 0, time.UTC),
			want: calendar.New(2026, time.October, 14),
		},
		{
			name: "last instant before local midnight",
			now:  time.Date(2026, time.December, 31, 16, 59, 59, 0, time.UTC),
			want: calendar.New(2026, time.December, 31),
		},
		{
			name: "local midnight starts the new year",
			now:  time.Date(2026, time.December, 31, 17, 0, 0, 0, time.UTC),
			want: calendar.New(2027, time.January, 1),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			c := clock.New(saigon, clock.WithNow(func() time.Time { return tt.now }))
			if got := c.Today(); !got.Equal(tt.want) {
				t.Errorf("Today() = %s, want %s", got, tt.want)
			}
		})
	}
}

func TestClock_NilLocationIsUTC(t *testing.T) {
	t.Parallel()

	now := time.Date(2026, time.October, 14, 23, 59, 0, 0, time.UTC)
	c := clock.New(nil, clock.WithNow(func() time.Time { return now }))

	if c.Location() != time.UTC {
		t.Errorf("Location() = %v, want UTC", c.Location())
	}
	if got := c.Today(); !got.Equal(calendar.New(2026, time.October, 14)) {
		t.Errorf("Today() = %s, want 2026-10-14", got)
	}
}

func TestFixed(t *testing.T) {
	t.Parallel()

	d := calendar.New(2026, time.February, 28)
	if got := clock.Fixed(d).Today(); !got.Equal(d) {
		t.Errorf("Today() = %s, want %s", got, d)
	}
}
