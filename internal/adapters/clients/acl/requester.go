package acl

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/jsamuelsen11/relief-activity-service/internal/domain"
	"github.com/jsamuelsen11/relief-activity-service/internal/platform/httpclient"
)

// Requester owns the request lifecycle shared by ACL clients: JSON encoding,
// execution through httpclient.Client, status checking, error translation,
// and response decoding. Response bodies are always closed.
type Requester struct {
	client *httpclient.Client
	logger *slog.Logger
}

// NewRequester creates a Requester. A nil logger discards output.
func NewRequester(client *httpclient.Client, logger *slog.Logger) *Requester {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	return &Requester{client: client, logger: logger}
}

// RequestOption adjusts an outbound request before it is sent.
type RequestOption func(*http.Request)

// WithHeader sets a header on the outbound request.
func WithHeader(key, value string) RequestOption {
	return func(r *http.Request) { r.Header.Set(key, value) }
}

// Do sends method path relative to the client's base URL. A non-nil reqBody
// is sent as JSON; a non-nil respBody receives the decoded response. Any
// status other than wantStatus is translated by TranslateHTTPError.
// Transport failures and breaker rejections wrap domain.ErrUnavailable.
func (r *Requester) Do(ctx context.Context, method, path string, wantStatus int, reqBody, respBody any, opts ...RequestOption) error {
	req, err := r.newRequest(ctx, method, path, reqBody)
	if err != nil {
		return err
	}
	for _, opt := range opts {
		opt(req)
	}
	return r.execute(req, wantStatus, respBody)
}

// Client returns the underlying HTTP client.
func (r *Requester) Client() *httpclient.Client {
	return r.client
}

func (r *Requester) newRequest(ctx context.Context, method, path string, reqBody any) (*http.Request, error) {
	url := r.client.BaseURL() + path

	if reqBody == nil {
		req, err := http.NewRequestWithContext(ctx, method, url, http.NoBody)
		if err != nil {
			return nil, fmt.Errorf("creating %s request for %s: %w", method, path, err)
		}
		req.Header.Set("Accept", "application/json")
		return req, nil
	}

	body, err := json.Marshal(reqBody)
	if err != nil {
		return nil, fmt.Errorf("marshaling %s body for %s: %w", method, path, err)
	}
	req, err := http.NewRequestWithContext(ctx, method, url, bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("creating %s request for %s: %w", method, path, err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")
	return req, nil
}

func (r *Requester) closeBody(ctx context.Context, resp *http.Response) {
	if err := resp.Body.Close(); err != nil {
		r.logger.WarnContext(ctx, "failed to close response body", slog.Any("error", err))
	}
}

func (r *Requester) execute(req *http.Request, wantStatus int, respBody any) error {
	ctx := req.Context()

	resp, err := r.client.Do(ctx, req)
	if resp != nil {
		defer r.closeBody(ctx, resp)
	}
	if err != nil {
		// Exhausted retries still hand back the last response; its status is
		// more useful than the retry error.
		if resp != nil && resp.StatusCode != wantStatus {
			return TranslateHTTPError(resp)
		}
		r.logger.ErrorContext(ctx, "request failed",
			slog.String("method", req.Method),
			slog.String("url", req.URL.String()),
			slog.Any("error", err),
		)
		return fmt.Errorf("%s %s: %w: %w", req.Method, req.URL.Path, domain.ErrUnavailable, err)
	}

	if resp.StatusCode != wantStatus {
		r.logger.ErrorContext(ctx, "unexpected status",
			slog.String("method", req.Method),
			slog.String("url", req.URL.String()),
			slog.Int("status", resp.StatusCode),
			slog.Int("want_status", wantStatus),
		)
		return TranslateHTTPError(resp)
	}

	if respBody != nil {
		if err := json.NewDecoder(resp.Body).Decode(respBody); err != nil {
			return fmt.Errorf("decoding response from %s %s: %w", req.Method, req.URL.Path, err)
		}
	}
	return nil
}
