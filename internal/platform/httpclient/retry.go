package httpclient

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"math"
	"math/rand/v2"
	"net/http"
	"strconv"
	"time"

	"github.com/jsamuelsen11/relief-activity-service/internal/platform/logging"
)

// jitterFraction spreads each backoff delay by up to ±25%.
const jitterFraction = 0.25

// doWithRetry sends req up to maxAttempts times. Transport errors other than
// context ends are retried, as are 429 and 5xx responses except 501. A
// Retry-After hint can lengthen the next wait up to maxInterval.
//
// The final response is stored in *resp even when retries run out, so the
// caller can translate its problem body and must close it.
func (c *Client) doWithRetry(ctx context.Context, req *http.Request, resp **http.Response) error {
	attempts := c.retryCfg.maxAttempts
	if attempts <= 0 {
		return fmt.Errorf("httpclient: maxAttempts must be >= 1, got %d", attempts)
	}

	replay, err := replayableBody(req)
	if err != nil {
		return err
	}

	var (
		lastErr error
		hint    time.Duration
	)
	for attempt := range attempts {
		if attempt > 0 {
			if err := c.pause(ctx, req, attempt, hint, lastErr); err != nil {
				return err
			}
		}
		if replay != nil {
			req.Body, req.ContentLength = replay()
		}

		r, err := c.httpClient.Do(req)
		switch {
		case err != nil && !isRetryable(err):
			return err
		case err != nil:
			lastErr, hint = err, 0
			continue
		case !isRetryableStatus(r.StatusCode):
			*resp = r
			return nil
		}

		lastErr = fmt.Errorf("HTTP %d from %s", r.StatusCode, c.serviceName)
		hint = parseRetryAfter(r.Header.Get("Retry-After"), time.Now())
		if attempt == attempts-1 {
			*resp = r
			return lastErr
		}
		// Drain so the connection goes back to the pool.
		_, _ = io.Copy(io.Discard, r.Body)
		_ = r.Body.Close()
	}
	return lastErr
}

// replayableBody consumes req.Body once and returns a func yielding a fresh
// copy per attempt. A request without a body returns nil.
func replayableBody(req *http.Request) (func() (io.ReadCloser, int64), error) {
	if req.Body == nil || req.Body == http.NoBody {
		return nil, nil
	}

	buf, err := io.ReadAll(req.Body)
	_ = req.Body.Close()
	if err != nil {
		return nil, fmt.Errorf("reading request body: %w", err)
	}
	return func() (io.ReadCloser, int64) {
		return io.NopCloser(bytes.NewReader(buf)), int64(len(buf))
	}, nil
}

// pause waits before the given retry attempt. The wait is the jittered
// backoff, or the server's Retry-After hint when that is longer.
func (c *Client) pause(ctx context.Context, req *http.Request, attempt int, hint time.Duration, lastErr error) error {
	delay := max(backoff(attempt, c.retryCfg), min(hint, c.retryCfg.maxInterval))

	logging.FromContext(ctx).WarnContext(ctx, "retrying HTTP request",
		slog.String("operation", "httpclient.Do"),
		slog.String("method", req.Method),
		slog.String("url", req.URL.String()),
		slog.String("peer_service", c.serviceName),
		slog.Int("attempt", attempt+1),
		slog.Int("max_attempts", c.retryCfg.maxAttempts),
		slog.Duration("backoff", delay),
		slog.Any("error", lastErr),
	)

	timer := time.NewTimer(delay)
	defer timer.Stop()

	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}

// parseRetryAfter accepts delta-seconds or an HTTP-date. Anything else, or a
// moment already past, yields zero.
func parseRetryAfter(v string, now time.Time) time.Duration {
	if v == "" {
		return 0
	}
	if secs, err := strconv.Atoi(v); err == nil {
		return max(time.Duration(secs)*time.Second, 0)
	}
	if at, err := http.ParseTime(v); err == nil {
		return max(at.Sub(now), 0)
	}
	return 0
}

// backoff returns the delay before retry number attempt (1 is the first
// retry): initialInterval * multiplier^(attempt-1), capped at maxInterval,
// then jittered.
func backoff(attempt int, cfg retryConfig) time.Duration {
	base := float64(cfg.initialInterval) * math.Pow(cfg.multiplier, float64(attempt-1))
	base = min(base, float64(cfg.maxInterval))

	spread := base * jitterFraction * (2*rand.Float64() - 1)
	return time.Duration(max(base+spread, 0))
}

// isRetryable reports whether a transport error may succeed on another try.
// Only a cancelled or expired context is final.
func isRetryable(err error) bool {
	if err == nil {
		return false
	}
	return !errors.Is(err, context.Canceled) && !errors.Is(err, context.DeadlineExceeded)
}

// isRetryableStatus reports whether a status is worth retrying: 429 and
// 5xx, except 501 which will not change on retry.
func isRetryableStatus(statusCode int) bool {
	switch statusCode {
	case http.StatusTooManyRequests:
		return true
	case http.StatusNotImplemented:
		return false
	default:
		return statusCode >= http.StatusInternalServerError
	}
}
