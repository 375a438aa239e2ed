// Package http provides the inbound HTTP adapter including routing and server lifecycle.
package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/jsamuelsen11/relief-activity-service/internal/adapters/http/dto"
	"github.com/jsamuelsen11/relief-activity-service/internal/adapters/http/handlers"
	"github.com/jsamuelsen11/relief-activity-service/internal/platform/i18n"
)

// NewRouter registers the activity and health routes. Middleware is applied
// globally in the order given, including to the 404 and 405 problem
// responses.
func NewRouter(
	activityHandler *handlers.ActivityHandler,
	healthHandler *handlers.HealthHandler,
	catalog *i18n.Catalog,
	middlewares ...func(http.Handler) http.Handler,
) http.Handler {
	r := chi.NewRouter()

	for _, mw := range middlewares {
		r.Use(mw)
	}

	r.NotFound(problemHandler(catalog, http.StatusNotFound, "route_not_found"))
	r.MethodNotAllowed(problemHandler(catalog, http.StatusMethodNotAllowed, "method_not_allowed"))

	// Health endpoints (outside /api/v1 prefix).
	r.Get("/health/live", healthHandler.Liveness)
	r.Get("/health/ready", healthHandler.Readiness)

	r.Route("/api/v1", func(r chi.Router) {
		r.Post("/activities", activityHandler.Submit)
		r.Post("/activities/validate", activityHandler.Validate)
		r.Post("/activities/validate/batch", activityHandler.ValidateBatch)
	})

	return r
}

func problemHandler(catalog *i18n.Catalog, status int, key string) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		tag, ok := i18n.LocaleFromContext(r.Context())
		if !ok {
			tag = catalog.Match(r.Header.Get("Accept-Language"))
		}
		dto.WriteProblem(w, r, dto.ErrorResponse{
			Type:     "about:blank",
			Title:    http.StatusText(status),
			Status:   status,
			Detail:   catalog.Error(tag, key, nil),
			Instance: r.URL.Path,
		})
	}
}
