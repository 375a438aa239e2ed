package acl

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/google/uuid"

	"github.com/jsamuelsen11/relief-activity-service/internal/adapters/clients/acl/moderation"
	"github.com/jsamuelsen11/relief-activity-service/internal/domain"
	"github.com/jsamuelsen11/relief-activity-service/internal/domain/activity"
	"github.com/jsamuelsen11/relief-activity-service/internal/platform/httpclient"
	"github.com/jsamuelsen11/relief-activity-service/internal/ports"
)

// Compile-time interface check.
var _ ports.ModerationClient = (*ModerationClient)(nil)

const (
	submitActivityPath = "/api/v1/moderation/activities"

	// HeaderIdempotencyKey lets the moderation API drop replays of a
	// submission that was retried after a lost response.
	HeaderIdempotencyKey = "Idempotency-Key"
)

// ModerationClient is the outbound adapter for the downstream moderation
// queue API. Translation happens in [moderation]; HTTP errors map to domain
// errors through [TranslateHTTPError]. Circuit breaking, retries, tracing,
// and health come from the underlying [httpclient.Client].
type ModerationClient struct {
	req    *Requester
	newKey func() string
}

// NewModerationClient creates a ModerationClient. The client's base URL
// points at the moderation API root.
func NewModerationClient(client *httpclient.Client, logger *slog.Logger) *ModerationClient {
	return &ModerationClient{
		req:    NewRequester(client, logger),
		newKey: uuid.NewString,
	}
}

// SubmitActivity posts req to POST /api/v1/moderation/activities and
// returns the queue's acknowledgement. The API answers 202 Accepted.
func (c *ModerationClient) SubmitActivity(ctx context.Context, req *activity.Request) (*activity.Submission, error) {
	body := moderation.ToSubmitActivityRequest(req)

	var dto moderation.SubmissionDTO
	err := c.req.Do(ctx, http.MethodPost, submitActivityPath, http.StatusAccepted, body, &dto,
		WithHeader(HeaderIdempotencyKey, c.newKey()),
	)
	if err != nil {
		return nil, fmt.Errorf("submitting activity: %w", err)
	}

	sub, err := moderation.ToDomainSubmission(&dto)
	if err != nil {
		return nil, fmt.Errorf("submitting activity: %w: %w", domain.ErrUnavailable, err)
	}
	return sub, nil
}

// Name returns the identifier used with [ports.HealthRegistry]; it matches
// the service name of the underlying client.
func (c *ModerationClient) Name() string {
	return c.req.Client().Name()
}

// HealthCheck reports the moderation API's availability from the circuit
// breaker state. No network call is made.
func (c *ModerationClient) HealthCheck(ctx context.Context) error {
	return c.req.Client().HealthCheck(ctx)
}
