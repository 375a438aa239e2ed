package middleware

import (
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"runtime/debug"

	"github.com/jsamuelsen11/relief-activity-service/internal/adapters/http/dto"
	"github.com/jsamuelsen11/relief-activity-service/internal/platform/httpclient"
	"github.com/jsamuelsen11/relief-activity-service/internal/platform/i18n"
)

// errPanic stands in for the recovered value in the response; the value and
// stack are only logged.
var errPanic = errors.New("handler panicked")

// Recovery turns a panic in a downstream handler into a localized RFC 9457
// 500 response and an error log entry with the stack trace. A panic after
// the response headers went out is only logged. http.ErrAbortHandler is
// re-panicked so net/http can abort the connection.
func Recovery(logger *slog.Logger, catalog *i18n.Catalog) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			rw := recordResponse(w)

			defer func() {
				v := recover()
				if v == nil {
					return
				}
				if err, ok := v.(error); ok && errors.Is(err, http.ErrAbortHandler) {
					panic(v)
				}

				logger.ErrorContext(r.Context(), "panic recovered",
					slog.String("panic", fmt.Sprint(v)),
					slog.String("stack", string(debug.Stack())),
					slog.String("method", r.Method),
					slog.String("path", r.URL.Path),
					slog.String("request_id", w.Header().Get(httpclient.HeaderRequestID)),
				)

				if !rw.started {
					dto.WriteErrorResponse(rw, r, errPanic, localizerFor(r, catalog))
				}
			}()

			next.ServeHTTP(rw, r)
		})
	}
}
