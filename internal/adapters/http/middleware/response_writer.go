// Package middleware holds the inbound pipeline of the activity API:
//
//	Recovery → RequestID → CorrelationID → OpenTelemetry → Logging → Locale → Timeout → handler
//
// Every middleware is a func(http.Handler) http.Handler. Pipeline assembles
// them in this order and the router installs them with chi's Use.
package middleware

import "net/http"

// responseRecorder tracks what a handler sent so the outer layers can report
// it after the fact.
type responseRecorder struct {
	http.ResponseWriter
	status  int
	started bool // headers are on the wire
	bytes   int64
}

func recordResponse(w http.ResponseWriter) *responseRecorder {
	return &responseRecorder{ResponseWriter: w, status: http.StatusOK}
}

// WriteHeader forwards the first status only.
func (rw *responseRecorder) WriteHeader(code int) {
	if rw.started {
		return
	}
	rw.status, rw.started = code, true
	rw.ResponseWriter.WriteHeader(code)
}

func (rw *responseRecorder) Write(b []byte) (int, error) {
	rw.started = true
	n, err := rw.ResponseWriter.Write(b)
	rw.bytes += int64(n)
	return n, err
}

// Unwrap exposes the wrapped writer to http.ResponseController.
func (rw *responseRecorder) Unwrap() http.ResponseWriter {
	return rw.ResponseWriter
}
