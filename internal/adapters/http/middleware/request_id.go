package middleware

import (
	"context"
	"net/http"

	"github.com/google/uuid"

	"github.com/jsamuelsen11/relief-activity-service/internal/platform/httpclient"
)

// maxInboundIDLength bounds caller-supplied request and correlation IDs.
const maxInboundIDLength = 128

type requestIDKey struct{}

// WithRequestID stores the request ID in ctx. The ID is also handed to
// httpclient so calls to the moderation API carry the same X-Request-ID.
func WithRequestID(ctx context.Context, id string) context.Context {
	ctx = context.WithValue(ctx, requestIDKey{}, id)
	return httpclient.WithRequestID(ctx, id)
}

// RequestIDFromContext returns the request ID, or "" when none is stored.
func RequestIDFromContext(ctx context.Context) string {
	id, _ := ctx.Value(requestIDKey{}).(string)
	return id
}

// RequestID reuses a well-formed inbound X-Request-ID or assigns a random
// UUID. The ID is echoed back in the response header.
func RequestID() func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			id := r.Header.Get(httpclient.HeaderRequestID)
			if !acceptID(id) {
				id = uuid.NewString()
			}
			w.Header().Set(httpclient.HeaderRequestID, id)
			next.ServeHTTP(w, r.WithContext(WithRequestID(r.Context(), id)))
		})
	}
}

// acceptID reports whether an inbound ID is safe to log and forward:
// non-empty, bounded, and printable ASCII without spaces.
func acceptID(id string) bool {
	if id == "" || len(id) > maxInboundIDLength {
		return false
	}
	for i := range len(id) {
		if c := id[i]; c <= ' ' || c > '~' {
			return false
		}
	}
	return true
}
