// Package app provides application services that orchestrate use cases by
// coordinating between domain logic and infrastructure through port interfaces.
package app

import (
	"context"
	"log/slog"
	"time"

	"go.opentelemetry.io/otel/metric"

	"github.com/jsamuelsen11/relief-activity-service/internal/app/fanout"
	"github.com/jsamuelsen11/relief-activity-service/internal/domain/activity"
	"github.com/jsamuelsen11/relief-activity-service/internal/domain/validation"
	"github.com/jsamuelsen11/relief-activity-service/internal/platform/telemetry"
	"github.com/jsamuelsen11/relief-activity-service/internal/ports"
)

// Compile-time check that ActivityService implements ports.ActivityService.
var _ ports.ActivityService = (*ActivityService)(nil)

const defaultBatchWorkers = 4

// Verdict labels recorded on the activity.validation.total counter.
const (
	resultValid   = "valid"
	resultInvalid = "invalid"
	resultError   = "error"
)

// ActivityService implements ports.ActivityService. It runs the activity
// rules, records the verdict in logs and metrics, and hands accepted
// proposals to the moderation queue. The rules themselves live in the
// domain.
type ActivityService struct {
	validator    *activity.Validator
	moderation   ports.ModerationClient
	metrics      *telemetry.Metrics
	logger       *slog.Logger
	batchWorkers int
}

// ActivityServiceOption configures an ActivityService.
type ActivityServiceOption func(*ActivityService)

// WithMetrics records verdicts on m. Without it no metrics are recorded.
func WithMetrics(m *telemetry.Metrics) ActivityServiceOption {
	return func(s *ActivityService) { s.metrics = m }
}

// WithBatchWorkers bounds how many requests of a batch are evaluated at once.
func WithBatchWorkers(n int) ActivityServiceOption {
	return func(s *ActivityService) {
		if n > 0 {
			s.batchWorkers = n
		}
	}
}

// NewActivityService creates an ActivityService. The clock and upload
// policy are read once per evaluated request. A nil logger discards output.
func NewActivityService(
	clock ports.Clock,
	policy ports.UploadPolicy,
	moderation ports.ModerationClient,
	logger *slog.Logger,
	opts ...ActivityServiceOption,
) *ActivityService {
	s := &ActivityService{
		validator:    activity.NewValidator(clock, policy),
		moderation:   moderation,
		logger:       logger,
		batchWorkers: defaultBatchWorkers,
	}
	if s.logger == nil {
		s.logger = slog.New(slog.DiscardHandler)
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Validate evaluates req without submitting it.
func (s *ActivityService) Validate(ctx context.Context, req *activity.Request) (*validation.Result, error) {
	res, err := s.evaluate(ctx, "validate", req)
	if err != nil {
		return nil, err
	}

	s.logger.InfoContext(ctx, "activity validated",
		slog.Bool("valid", res.Valid()),
		slog.Any("failed_fields", res.Fields()),
	)
	return &res, nil
}

// ValidateBatch evaluates reqs concurrently on a bounded worker pool.
// Results keep input order.
func (s *ActivityService) ValidateBatch(ctx context.Context, reqs []*activity.Request) []ports.BatchItem {
	s.logger.InfoContext(ctx, "validating activity batch", slog.Int("size", len(reqs)))

	results := fanout.Run(ctx, s.batchWorkers, reqs,
		func(ctx context.Context, req *activity.Request) (*validation.Result, error) {
			res, err := s.evaluate(ctx, "validate_batch", req)
			if err != nil {
				return nil, err
			}
			return &res, nil
		})

	items := make([]ports.BatchItem, len(results))
	invalid := 0
	for i, r := range results {
		items[i] = ports.BatchItem{Index: i, Result: r.Value, Err: r.Err}
		if r.Err == nil && !r.Value.Valid() {
			invalid++
		}
	}

	s.logger.InfoContext(ctx, "activity batch validated",
		slog.Int("size", len(reqs)),
		slog.Int("invalid", invalid),
	)
	return items
}

// Submit validates req and forwards it to moderation only if every rule
// passes. A rejected request returns the validation result's error.
func (s *ActivityService) Submit(ctx context.Context, req *activity.Request) (*activity.Submission, error) {
	res, err := s.evaluate(ctx, "submit", req)
	if err != nil {
		return nil, err
	}

	if err := res.Err(); err != nil {
		s.logger.InfoContext(ctx, "activity submission rejected",
			slog.Any("failed_fields", res.Fields()),
		)
		return nil, err
	}

	sub, err := s.moderation.SubmitActivity(ctx, req)
	if err != nil {
		s.logger.ErrorContext(ctx, "failed to enqueue activity for moderation",
			slog.String("operation", "Submit"),
			slog.Any("error", err),
		)
		return nil, err
	}

	s.logger.InfoContext(ctx, "activity submitted for moderation",
		slog.String("submission_id", sub.ID.String()),
		slog.String("status", sub.Status.String()),
	)
	return sub, nil
}

// evaluate runs the validator and records the outcome.
func (s *ActivityService) evaluate(ctx context.Context, operation string, req *activity.Request) (validation.Result, error) {
	start := time.Now()
	res, err := s.validator.Validate(req)
	if err != nil {
		s.logger.ErrorContext(ctx, "activity validation misconfigured",
			slog.String("operation", operation),
			slog.Any("error", err),
		)
	}
	s.record(ctx, operation, res, err, time.Since(start))
	return res, err
}

func (s *ActivityService) record(ctx context.Context, operation string, res validation.Result, err error, elapsed time.Duration) {
	if s.metrics == nil {
		return
	}

	result := resultValid
	switch {
	case err != nil:
		result = resultError
	case !res.Valid():
		result = resultInvalid
	}

	op := telemetry.AttrOperation.String(operation)
	s.metrics.ValidationTotal.Add(ctx, 1, metric.WithAttributes(op, telemetry.AttrResult.String(result)))
	s.metrics.ValidationDuration.Record(ctx, elapsed.Seconds(), metric.WithAttributes(op))

	for _, fe := range res.Errors {
		for _, f := range fe.Failures {
			s.metrics.FieldFailures.Add(ctx, 1, metric.WithAttributes(
				telemetry.AttrField.String(fe.Field),
				telemetry.AttrCode.String(f.Code.String()),
			))
		}
	}
}
