package middleware

import (
	"net/http"

	"github.com/jsamuelsen11/relief-activity-service/internal/adapters/http/dto"
	"github.com/jsamuelsen11/relief-activity-service/internal/platform/i18n"
)

// Locale negotiates the response language from Accept-Language against the
// catalog's locales, stores it with i18n.WithLocale and announces it in
// Content-Language. Unsupported or missing preferences get the catalog
// default.
func Locale(catalog *i18n.Catalog) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			tag := catalog.Match(r.Header.Get("Accept-Language"))
			w.Header().Set("Content-Language", tag.String())
			w.Header().Add("Vary", "Accept-Language")
			next.ServeHTTP(w, r.WithContext(i18n.WithLocale(r.Context(), tag)))
		})
	}
}

// localizerFor prefers the locale negotiated by Locale. Middleware running
// outside Locale negotiates on its own.
func localizerFor(r *http.Request, catalog *i18n.Catalog) dto.Localizer {
	tag, ok := i18n.LocaleFromContext(r.Context())
	if !ok {
		tag = catalog.Match(r.Header.Get("Accept-Language"))
	}
	return dto.NewLocalizer(catalog, tag)
}
