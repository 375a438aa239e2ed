package middleware

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/jsamuelsen11/relief-activity-service/internal/platform/i18n"
	"github.com/jsamuelsen11/relief-activity-service/internal/platform/telemetry"
)

// Pipeline holds the dependencies of the inbound middleware stack.
type Pipeline struct {
	Logger  *slog.Logger
	Metrics *telemetry.Metrics // nil disables request metrics
	Catalog *i18n.Catalog

	// Timeout bounds each request. Zero leaves requests unbounded.
	Timeout time.Duration
}

// Handlers returns the stack outermost first, ready for chi's Use.
func (p Pipeline) Handlers() []func(http.Handler) http.Handler {
	stack := []func(http.Handler) http.Handler{
		Recovery(p.Logger, p.Catalog),
		RequestID(),
		CorrelationID(),
		OpenTelemetry(p.Metrics),
		Logging(p.Logger),
		Locale(p.Catalog),
	}
	if p.Timeout > 0 {
		stack = append(stack, Timeout(p.Timeout, p.Catalog))
	}
	return stack
}

// Wrap applies the stack to h without a router.
func (p Pipeline) Wrap(h http.Handler) http.Handler {
	stack := p.Handlers()
	for i := len(stack) - 1; i >= 0; i-- {
		h = stack[i](h)
	}
	return h
}
