package ports

import (
	"context"

	"github.com/jsamuelsen11/relief-activity-service/internal/domain/activity"
	"github.com/jsamuelsen11/relief-activity-service/internal/domain/validation"
)

// ActivityService defines the service port for activity submissions.
// Implemented by the application layer; called by inbound adapters (handlers).
type ActivityService interface {
	// Validate evaluates req against the activity rules without submitting
	// it. Rule violations are reported in the returned Result, never as an
	// error. Returns domain.ErrMisconfigured if the upload policy cannot be
	// read.
	Validate(ctx context.Context, req *activity.Request) (*validation.Result, error)

	// ValidateBatch evaluates each request independently and concurrently.
	// Items are returned in input order. A per-item error (misconfiguration)
	// is recorded on the item and does not abort the batch.
	ValidateBatch(ctx context.Context, reqs []*activity.Request) []BatchItem

	// Submit validates req and, if it passes, forwards it to the moderation
	// queue. Returns a *validation.RejectedError (matching
	// domain.ErrValidation) when a rule fails, domain.ErrMisconfigured when
	// the upload policy cannot be read, or the moderation client's error.
	Submit(ctx context.Context, req *activity.Request) (*activity.Submission, error)
}

// BatchItem holds the outcome of one request within a batch validation.
// Exactly one of Result and Err is set.
type BatchItem struct {
	Index  int
	Result *validation.Result
	Err    error
}
