package middleware

import (
	"log/slog"
	"maps"
	"net/http"
	"slices"
	"strings"

	"github.com/jsamuelsen11/relief-activity-service/internal/platform/logging"
)

const redactedValue = "[REDACTED]"

// RedactHeaders renders headers as a "headers" log group with keys in sorted
// order. Values of logging.SensitiveHeaders are replaced; multi-value headers
// are joined with a comma.
func RedactHeaders(headers http.Header) slog.Attr {
	keys := slices.Sorted(maps.Keys(headers))

	attrs := make([]any, 0, len(keys))
	for _, k := range keys {
		v := strings.Join(headers[k], ",")
		if logging.SensitiveHeaders[strings.ToLower(k)] {
			v = redactedValue
		}
		attrs = append(attrs, slog.String(k, v))
	}
	return slog.Group("headers", attrs...)
}
