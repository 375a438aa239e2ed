package i18n

import (
	"fmt"
	"strings"
)

// render substitutes {field} and {param} placeholders. Placeholders without
// a value are left as written.
func render(tmpl, field string, params map[string]any) string {
	if !strings.Contains(tmpl, "{") {
		return tmpl
	}

	var sb strings.Builder
	sb.Grow(len(tmpl))

	for {
		open := strings.IndexByte(tmpl, '{')
		if open < 0 {
			sb.WriteString(tmpl)
			break
		}
		end := strings.IndexByte(tmpl[open:], '}')
		if end < 0 {
			sb.WriteString(tmpl)
			break
		}
		end += open

		sb.WriteString(tmpl[:open])
		name := tmpl[open+1 : end]

		switch v, ok := params[name]; {
		case name == "field":
			sb.WriteString(field)
		case ok:
			sb.WriteString(formatValue(v))
		default:
			sb.WriteString(tmpl[open : end+1])
		}

		tmpl = tmpl[end+1:]
	}

	return sb.String()
}

func formatValue(v any) string {
	switch x := v.(type) {
	case string:
		return x
	case []string:
		return strings.Join(x, ", ")
	case []int:
		parts := make([]string, len(x))
		for i, n := range x {
			parts[i] = fmt.Sprint(n)
		}
		return strings.Join(parts, ", ")
	default:
		return fmt.Sprint(x)
	}
}
