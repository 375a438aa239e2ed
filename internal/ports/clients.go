package ports

import (
	"context"

	"github.com/jsamuelsen11/relief-activity-service/internal/domain/activity"
)

// ModerationClient defines the client port for the downstream moderation
// queue API. Implemented by the ACL adapter; called by the application layer.
// Only requests that passed validation are sent.
type ModerationClient interface {
	// SubmitActivity enqueues an accepted activity proposal for review and
	// returns the tracking record assigned by the moderation service.
	// Returns domain.ErrConflict if the proposal was already enqueued, or
	// domain.ErrUnavailable if the moderation service cannot be reached.
	SubmitActivity(ctx context.Context, req *activity.Request) (*activity.Submission, error)
}
