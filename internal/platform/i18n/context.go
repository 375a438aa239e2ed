package i18n

import (
	"context"

	"golang.org/x/text/language"
)

type localeKey struct{}

// WithLocale returns a copy of ctx carrying the negotiated locale.
func WithLocale(ctx context.Context, tag language.Tag) context.Context {
	return context.WithValue(ctx, localeKey{}, tag)
}

// LocaleFromContext returns the locale stored in ctx and whether one was set.
func LocaleFromContext(ctx context.Context) (language.Tag, bool) {
	tag, ok := ctx.Value(localeKey{}).(language.Tag)
	return tag, ok
}
