package middleware_test

import (
	"bytes"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/jsamuelsen11/relief-activity-service/internal/adapters/http/middleware"
	"github.com/jsamuelsen11/relief-activity-service/internal/platform/i18n"
)

func TestPipeline_Handlers(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		timeout time.Duration
		want    int
	}{
		{name: "unbounded", want: 6},
		{name: "with timeout", timeout: time.Second, want: 7},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			p := middleware.Pipeline{
				Logger:  discardLogger(),
				Catalog: testCatalog(t),
				Timeout: tt.timeout,
			}
			if got := len(p.Handlers()); got != tt.want {
				t.Errorf("len(Handlers()) = %d, want %d", got, tt.want)
			}
		})
	}
}

func TestPipeline_Wrap(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	p := middleware.Pipeline{
		Logger:  testLogger(&buf),
		Catalog: testCatalog(t),
		Timeout: 5 * time.Second,
	}

	h := p.Wrap(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if middleware.RequestIDFromContext(r.Context()) == "" {
			t.Error("request ID not in context")
		}
		if middleware.CorrelationIDFromContext(r.Context()) == "" {
			t.Error("correlation ID not in context")
		}
		if _, ok := i18n.LocaleFromContext(r.Context()); !ok {
			t.Error("locale not in context")
		}
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte(`{"valid":true,"errors":[]}`))
	}))

	req := httptest.NewRequest(http.MethodPost, "/api/v1/activities/validate", http.NoBody)
	req.Header.Set("Accept-Language", "en")
	rec := serve(h, req)

	if rec.Code != http.StatusOK {
		t.Errorf("status = %d, want %d", rec.Code, http.StatusOK)
	}
	for _, header := range []string{"X-Request-ID", "X-Correlation-ID"} {
		if rec.Header().Get(header) == "" {
			t.Errorf("response missing %s", header)
		}
	}
	if got := rec.Header().Get("Content-Language"); got != "en" {
		t.Errorf("Content-Language = %q, want en", got)
	}

	out := buf.String()
	for _, want := range []string{"request started", "request completed", "status=200"} {
		if !strings.Contains(out, want) {
			t.Errorf("log output missing %q: %s", want, out)
		}
	}
}

func TestPipeline_Wrap_Failures(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name       string
		handler    http.HandlerFunc
		wantStatus int
		wantLog    string
	}{
		{
			name: "deadline exceeded",
			handler: func(_ http.ResponseWriter, r *http.Request) {
				<-r.Context().Done()
			},
			wantStatus: http.StatusGatewayTimeout,
			wantLog:    "status=504",
		},
		{
			name: "panic",
			handler: func(http.ResponseWriter, *http.Request) {
				panic("rule table corrupted")
			},
			wantStatus: http.StatusInternalServerError,
			wantLog:    "rule table corrupted",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			var buf bytes.Buffer
			p := middleware.Pipeline{
				Logger:  testLogger(&buf),
				Catalog: testCatalog(t),
				Timeout: 20 * time.Millisecond,
			}

			req := httptest.NewRequest(http.MethodPost, "/api/v1/activities", http.NoBody)
			rec := serve(p.Wrap(tt.handler), req)

			if rec.Code != tt.wantStatus {
				t.Fatalf("status = %d, want %d", rec.Code, tt.wantStatus)
			}
			if rec.Header().Get("X-Request-ID") == "" {
				t.Error("failure response missing X-Request-ID")
			}
			problem := decodeProblem(t, rec)
			if problem.Detail == "" {
				t.Error("problem detail is empty")
			}
			if !strings.Contains(buf.String(), tt.wantLog) {
				t.Errorf("log output missing %q: %s", tt.wantLog, buf.String())
			}
		})
	}
}
