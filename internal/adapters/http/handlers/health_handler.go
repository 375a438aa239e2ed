package handlers

import (
	"net/http"

	"github.com/jsamuelsen11/relief-activity-service/internal/ports"
)

const (
	statusOK       = "ok"
	statusReady    = "ready"
	statusDegraded = "degraded"
	statusNotReady = "not_ready"
)

// HealthHandler handles liveness and readiness HTTP endpoints.
type HealthHandler struct {
	registry    ports.HealthRegistry
	nonCritical map[string]bool
}

// HealthHandlerOption configures a HealthHandler.
type HealthHandlerOption func(*HealthHandler)

// WithNonCritical marks checks whose failure degrades readiness without
// failing it. Downstream dependencies belong here: pulling the pod out of
// rotation would keep their circuit breakers from ever recovering.
func WithNonCritical(names ...string) HealthHandlerOption {
	return func(h *HealthHandler) {
		for _, n := range names {
			h.nonCritical[n] = true
		}
	}
}

// NewHealthHandler creates a new HealthHandler with the given health registry.
func NewHealthHandler(registry ports.HealthRegistry, opts ...HealthHandlerOption) *HealthHandler {
	h := &HealthHandler{registry: registry, nonCritical: make(map[string]bool)}
	for _, opt := range opts {
		opt(h)
	}
	return h
}

// Liveness handles GET /health/live. Always returns 200 OK.
func (h *HealthHandler) Liveness(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, r, http.StatusOK, map[string]string{"status": statusOK})
}

// Readiness handles GET /health/ready. A failing critical check returns
// 503 not_ready; failing non-critical checks return 200 degraded.
func (h *HealthHandler) Readiness(w http.ResponseWriter, r *http.Request) {
	results := h.registry.CheckAll(r.Context())

	checks := make(map[string]string, len(results))
	status := statusReady
	for name, err := range results {
		if err == nil {
			checks[name] = statusOK
			continue
		}
		checks[name] = err.Error()
		switch {
		case !h.nonCritical[name]:
			status = statusNotReady
		case status == statusReady:
			status = statusDegraded
		}
	}

	code := http.StatusOK
	if status == statusNotReady {
		code = http.StatusServiceUnavailable
	}

	writeJSON(w, r, code, map[string]any{
		"status": status,
		"checks": checks,
	})
}
