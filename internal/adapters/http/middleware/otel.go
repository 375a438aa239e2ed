package middleware

import (
	"context"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/metric"
	"go.opentelemetry.io/otel/propagation"
	"go.opentelemetry.io/otel/trace"

	"github.com/jsamuelsen11/relief-activity-service/internal/platform/telemetry"
)

const tracerName = "github.com/jsamuelsen11/relief-activity-service/internal/adapters/http/middleware"

// unmatchedRoute labels requests that no route matched.
const unmatchedRoute = "unmatched"

type otelOptions struct {
	tp         trace.TracerProvider
	propagator propagation.TextMapPropagator
}

// OTelOption configures the OpenTelemetry middleware.
type OTelOption func(*otelOptions)

// WithTracerProvider overrides the global tracer provider.
func WithTracerProvider(tp trace.TracerProvider) OTelOption {
	return func(o *otelOptions) { o.tp = tp }
}

// WithPropagator overrides the global text map propagator.
func WithPropagator(p propagation.TextMapPropagator) OTelOption {
	return func(o *otelOptions) { o.propagator = p }
}

// OpenTelemetry starts a server span for each request, continuing any W3C
// trace context found in the headers, and records server request metrics.
//
// Spans and metrics are labelled with the chi route pattern rather than the
// raw path, so it must be installed with chi's Use. A nil metrics skips
// metric recording.
func OpenTelemetry(metrics *telemetry.Metrics, opts ...OTelOption) func(http.Handler) http.Handler {
	o := otelOptions{}
	for _, opt := range opts {
		opt(&o)
	}
	if o.tp == nil {
		o.tp = otel.GetTracerProvider()
	}
	if o.propagator == nil {
		o.propagator = otel.GetTextMapPropagator()
	}
	tracer := o.tp.Tracer(tracerName)

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()

			ctx := o.propagator.Extract(r.Context(), propagation.HeaderCarrier(r.Header))
			ctx, span := tracer.Start(ctx, "HTTP "+r.Method,
				trace.WithSpanKind(trace.SpanKindServer),
				trace.WithAttributes(
					attribute.String("http.method", r.Method),
					attribute.String("url.path", r.URL.Path),
				),
			)
			defer span.End()

			rw := recordResponse(w)
			next.ServeHTTP(rw, r.WithContext(ctx))

			route := routePattern(r)
			span.SetName("HTTP " + r.Method + " " + route)
			span.SetAttributes(
				telemetry.AttrHTTPRoute.String(route),
				attribute.Int("http.status_code", rw.status),
				attribute.Int64("http.response.body.size", rw.bytes),
			)
			if rw.status >= http.StatusInternalServerError {
				span.SetStatus(codes.Error, http.StatusText(rw.status))
			}

			recordServerMetrics(ctx, metrics, r.Method, route, start, rw.status)
		})
	}
}

// routePattern returns the matched chi pattern. chi fills it in while
// routing, so it is only complete after the downstream handler ran.
func routePattern(r *http.Request) string {
	if rc := chi.RouteContext(r.Context()); rc != nil {
		if p := rc.RoutePattern(); p != "" {
			return p
		}
	}
	return unmatchedRoute
}

func recordServerMetrics(ctx context.Context, metrics *telemetry.Metrics, method, route string, start time.Time, status int) {
	if metrics == nil {
		return
	}

	result := "success"
	if status >= http.StatusBadRequest {
		result = "error"
	}

	attrs := metric.WithAttributes(
		telemetry.AttrHTTPMethod.String(method),
		telemetry.AttrHTTPRoute.String(route),
		telemetry.AttrHTTPStatus.Int(status),
		telemetry.AttrResult.String(result),
	)

	metrics.ServerRequestDuration.Record(ctx, time.Since(start).Seconds(), attrs)
	metrics.ServerRequestTotal.Add(ctx, 1, attrs)
}
