package middleware

import (
	"context"
	"net/http"

	"github.com/jsamuelsen11/relief-activity-service/internal/platform/httpclient"
)

type correlationIDKey struct{}

// WithCorrelationID stores the correlation ID in ctx and in the outbound
// propagation context used by httpclient.
func WithCorrelationID(ctx context.Context, id string) context.Context {
	ctx = context.WithValue(ctx, correlationIDKey{}, id)
	return httpclient.WithCorrelationID(ctx, id)
}

// CorrelationIDFromContext returns the correlation ID, or "" when none is stored.
func CorrelationIDFromContext(ctx context.Context) string {
	id, _ := ctx.Value(correlationIDKey{}).(string)
	return id
}

// CorrelationID reuses a well-formed inbound X-Correlation-ID and otherwise
// falls back to the request ID, so it must run after RequestID. A request
// with neither passes through without a correlation ID.
func CorrelationID() func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			id := r.Header.Get(httpclient.HeaderCorrelationID)
			if !acceptID(id) {
				id = RequestIDFromContext(r.Context())
			}
			if id == "" {
				next.ServeHTTP(w, r)
				return
			}
			w.Header().Set(httpclient.HeaderCorrelationID, id)
			next.ServeHTTP(w, r.WithContext(WithCorrelationID(r.Context(), id)))
		})
	}
}
