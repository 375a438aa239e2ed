package handlers

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/jsamuelsen11/relief-activity-service/internal/adapters/http/dto"
	"github.com/jsamuelsen11/relief-activity-service/internal/platform/i18n"
)

// defaultMaxBodyBytes caps request bodies when no limit is configured.
const defaultMaxBodyBytes = 1 << 20

// writeJSON writes a JSON response with the given status code.
func writeJSON(w http.ResponseWriter, r *http.Request, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		slog.ErrorContext(r.Context(), "failed to encode response", slog.Any("error", err))
	}
}

// decodeBody decodes the size-limited request body into dst. On failure it
// writes a 400 problem response and returns false.
func decodeBody(w http.ResponseWriter, r *http.Request, maxBytes int64, dst any, l dto.Localizer) bool {
	r.Body = http.MaxBytesReader(w, r.Body, maxBytes)
	if err := dto.DecodeJSON(r.Body, dst); err != nil {
		dto.WriteErrorResponse(w, r, err, l)
		return false
	}
	return true
}

// localizerFor uses the locale negotiated by middleware, falling back to the
// request's Accept-Language header.
func localizerFor(r *http.Request, catalog *i18n.Catalog) dto.Localizer {
	tag, ok := i18n.LocaleFromContext(r.Context())
	if !ok {
		tag = catalog.Match(r.Header.Get("Accept-Language"))
	}
	return dto.NewLocalizer(catalog, tag)
}
