package httpclient

import (
	"context"
	"net/http"
)

// Header names propagated to downstream services.
const (
	HeaderRequestID     = "X-Request-ID"
	HeaderCorrelationID = "X-Correlation-ID"
)

type (
	requestIDKey     struct{}
	correlationIDKey struct{}
)

// WithRequestID stores the inbound request ID for propagation on outbound
// calls.
func WithRequestID(ctx context.Context, id string) context.Context {
	return context.WithValue(ctx, requestIDKey{}, id)
}

// WithCorrelationID stores the correlation ID for propagation on outbound
// calls.
func WithCorrelationID(ctx context.Context, id string) context.Context {
	return context.WithValue(ctx, correlationIDKey{}, id)
}

// injectHeaders copies the request and correlation IDs from ctx onto req.
// Headers the caller already set are left alone.
func injectHeaders(ctx context.Context, req *http.Request) {
	setIfAbsent := func(name string, key any) {
		if req.Header.Get(name) != "" {
			return
		}
		if id, ok := ctx.Value(key).(string); ok && id != "" {
			req.Header.Set(name, id)
		}
	}
	setIfAbsent(HeaderRequestID, requestIDKey{})
	setIfAbsent(HeaderCorrelationID, correlationIDKey{})
}
