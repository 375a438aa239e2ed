package ports

import "github.com/jsamuelsen11/relief-activity-service/internal/domain/calendar"

// Clock supplies the current calendar day in the platform's fixed time zone.
// Implemented by platform/clock; read once per validation call.
type Clock interface {
	// Today returns the current date, truncated to the day.
	Today() calendar.Date
}
