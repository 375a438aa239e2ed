package middleware_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/propagation"
	sdkmetric "go.opentelemetry.io/otel/sdk/metric"
	"go.opentelemetry.io/otel/sdk/metric/metricdata"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.opentelemetry.io/otel/sdk/trace/tracetest"
	"go.opentelemetry.io/otel/trace"
	"go.opentelemetry.io/otel/trace/noop"

	"github.com/jsamuelsen11/relief-activity-service/internal/adapters/http/middleware"
	"github.com/jsamuelsen11/relief-activity-service/internal/platform/telemetry"
)

type otelFixture struct {
	spans  *tracetest.SpanRecorder
	reader *sdkmetric.ManualReader
	router chi.Router
}

func newOTelFixture(t *testing.T, status int) *otelFixture {
	t.Helper()

	spans := tracetest.NewSpanRecorder()
	tp := sdktrace.NewTracerProvider(sdktrace.WithSpanProcessor(spans))
	reader := sdkmetric.NewManualReader()
	mp := sdkmetric.NewMeterProvider(sdkmetric.WithReader(reader))
	t.Cleanup(func() {
		_ = tp.Shutdown(context.Background())
		_ = mp.Shutdown(context.Background())
	})

	metrics, err := telemetry.NewMetrics(mp, "test")
	if err != nil {
		t.Fatalf("NewMetrics() error = %v", err)
	}

	r := chi.NewRouter()
	r.Use(middleware.OpenTelemetry(metrics,
		middleware.WithTracerProvider(tp),
		middleware.WithPropagator(propagation.TraceContext{}),
	))
	r.Post("/api/v1/activities/validate", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(status)
		_, _ = w.Write([]byte(`{"valid":true,"errors":[]}`))
	})

	return &otelFixture{spans: spans, reader: reader, router: r}
}

func (f *otelFixture) onlySpan(t *testing.T) sdktrace.ReadOnlySpan {
	t.Helper()

	ended := f.spans.Ended()
	if len(ended) != 1 {
		t.Fatalf("ended spans = %d, want 1", len(ended))
	}
	return ended[0]
}

func spanAttrs(span sdktrace.ReadOnlySpan) map[attribute.Key]attribute.Value {
	attrs := make(map[attribute.Key]attribute.Value)
	for _, a := range span.Attributes() {
		attrs[a.Key] = a.Value
	}
	return attrs
}

func TestOpenTelemetry_NamesSpanByRoute(t *testing.T) {
	t.Parallel()
	f := newOTelFixture(t, http.StatusOK)

	serve(f.router, httptest.NewRequest(http.MethodPost, "/api/v1/activities/validate", http.NoBody))

	span := f.onlySpan(t)
	if want := "HTTP POST /api/v1/activities/validate"; span.Name() != want {
		t.Errorf("span name = %q, want %q", span.Name(), want)
	}
	if span.SpanKind() != trace.SpanKindServer {
		t.Errorf("span kind = %v, want server", span.SpanKind())
	}

	attrs := spanAttrs(span)
	if got := attrs["http.route"].AsString(); got != "/api/v1/activities/validate" {
		t.Errorf("http.route = %q", got)
	}
	if got := attrs["http.status_code"].AsInt64(); got != http.StatusOK {
		t.Errorf("http.status_code = %d, want 200", got)
	}
	if got := attrs["http.response.body.size"].AsInt64(); got != int64(len(`{"valid":true,"errors":[]}`)) {
		t.Errorf("http.response.body.size = %d", got)
	}
}

func TestOpenTelemetry_SpanStatus(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		status int
		want   codes.Code
	}{
		{name: "rejection is not a server error", status: http.StatusBadRequest, want: codes.Unset},
		{name: "misconfiguration", status: http.StatusInternalServerError, want: codes.Error},
		{name: "moderation unavailable", status: http.StatusServiceUnavailable, want: codes.Error},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			f := newOTelFixture(t, tt.status)

			serve(f.router, httptest.NewRequest(http.MethodPost, "/api/v1/activities/validate", http.NoBody))

			if got := f.onlySpan(t).Status().Code; got != tt.want {
				t.Errorf("span status = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestOpenTelemetry_ContinuesInboundTrace(t *testing.T) {
	t.Parallel()
	f := newOTelFixture(t, http.StatusOK)

	req := httptest.NewRequest(http.MethodPost, "/api/v1/activities/validate", http.NoBody)
	req.Header.Set("traceparent", "00-4bf92f3577b34da6a3ce929d0e0e4736-00f067aa0ba902b7-01")
	serve(f.router, req)

	span := f.onlySpan(t)
	if got := span.SpanContext().TraceID().String(); got != "4bf92f3577b34da6a3ce929d0e0e4736" {
		t.Errorf("trace ID = %s, want inbound trace", got)
	}
	if got := span.Parent().SpanID().String(); got != "00f067aa0ba902b7" {
		t.Errorf("parent span ID = %s, want inbound span", got)
	}
}

func TestOpenTelemetry_RecordsServerMetrics(t *testing.T) {
	t.Parallel()
	f := newOTelFixture(t, http.StatusBadRequest)

	serve(f.router, httptest.NewRequest(http.MethodPost, "/api/v1/activities/validate", http.NoBody))

	var rm metricdata.ResourceMetrics
	if err := f.reader.Collect(context.Background(), &rm); err != nil {
		t.Fatalf("Collect() error = %v", err)
	}

	var found bool
	for _, sm := range rm.ScopeMetrics {
		for _, m := range sm.Metrics {
			if m.Name != "http.server.request.total" {
				continue
			}
			sum, ok := m.Data.(metricdata.Sum[int64])
			if !ok || len(sum.DataPoints) != 1 {
				t.Fatalf("http.server.request.total data = %+v", m.Data)
			}
			dp := sum.DataPoints[0]
			route, _ := dp.Attributes.Value("http.route")
			result, _ := dp.Attributes.Value("result")
			if dp.Value != 1 || route.AsString() != "/api/v1/activities/validate" || result.AsString() != "error" {
				t.Errorf("data point = %d route=%q result=%q", dp.Value, route.AsString(), result.AsString())
			}
			found = true
		}
	}
	if !found {
		t.Error("http.server.request.total not recorded")
	}
}

func TestOpenTelemetry_NilMetrics(t *testing.T) {
	t.Parallel()

	h := middleware.OpenTelemetry(nil, middleware.WithTracerProvider(noop.NewTracerProvider()))(
		http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
			w.WriteHeader(http.StatusOK)
		}),
	)

	if rec := serve(h, httptest.NewRequest(http.MethodGet, "/health/live", http.NoBody)); rec.Code != http.StatusOK {
		t.Errorf("status = %d, want 200", rec.Code)
	}
}
