// Package i18n renders validation failures as localized messages.
//
// Templates live in embedded YAML files, one per locale. A message is looked
// up by (field, code) first and then by code alone; {name} placeholders are
// filled from the failure params, and {field} from the field's display name.
//
//	cat, err := i18n.New("vi")
//	tag := cat.Match(r.Header.Get("Accept-Language"))
//	msg := cat.Message(tag, "name", "required", nil)
package i18n

import (
	"embed"
	"errors"
	"fmt"
	"io/fs"
	"path"
	"strings"

	"golang.org/x/text/language"
	"gopkg.in/yaml.v3"
)

//go:embed messages/*.yaml
var embedded embed.FS

// ErrUnknownLocale is returned when the default locale has no message file.
var ErrUnknownLocale = errors.New("i18n: unknown locale")

// bundle is one locale's message file.
type bundle struct {
	Fields    map[string]string            `yaml:"fields"`
	Codes     map[string]string            `yaml:"codes"`
	Overrides map[string]map[string]string `yaml:"overrides"`
	Errors    map[string]string            `yaml:"errors"`
}

// Catalog holds the loaded locales. It is immutable after construction and
// safe for concurrent use.
type Catalog struct {
	bundles  map[language.Tag]*bundle
	tags     []language.Tag
	fallback language.Tag
	matcher  language.Matcher
}

// New loads the embedded message files with defaultLocale as the fallback.
func New(defaultLocale string) (*Catalog, error) {
	return Load(embedded, "messages", defaultLocale)
}

// Load reads every {locale}.yaml file in dir of fsys.
func Load(fsys fs.FS, dir, defaultLocale string) (*Catalog, error) {
	fallback, err := language.Parse(defaultLocale)
	if err != nil {
		return nil, fmt.Errorf("parsing default locale %q: %w", defaultLocale, err)
	}

	entries, err := fs.ReadDir(fsys, dir)
	if err != nil {
		return nil, fmt.Errorf("reading message dir %s: %w", dir, err)
	}

	c := &Catalog{bundles: make(map[language.Tag]*bundle), fallback: fallback}

	// The fallback goes first so the matcher prefers it on a tie.
	c.tags = append(c.tags, fallback)
	for _, e := range entries {
		name := e.Name()
		if e.IsDir() || path.Ext(name) != ".yaml" {
			continue
		}

		tag, err := language.Parse(strings.TrimSuffix(name, ".yaml"))
		if err != nil {
			return nil, fmt.Errorf("message file %s: %w", name, err)
		}

		raw, err := fs.ReadFile(fsys, path.Join(dir, name))
		if err != nil {
			return nil, fmt.Errorf("reading message file %s: %w", name, err)
		}

		var b bundle
		if err := yaml.Unmarshal(raw, &b); err != nil {
			return nil, fmt.Errorf("parsing message file %s: %w", name, err)
		}

		c.bundles[tag] = &b
		if tag != fallback {
			c.tags = append(c.tags, tag)
		}
	}

	if _, ok := c.bundles[fallback]; !ok {
		return nil, fmt.Errorf("%w: %s", ErrUnknownLocale, defaultLocale)
	}

	c.matcher = language.NewMatcher(c.tags)
	return c, nil
}

// Default returns the fallback locale.
func (c *Catalog) Default() language.Tag {
	return c.fallback
}

// Supported returns the loaded locales, fallback first.
func (c *Catalog) Supported() []language.Tag {
	return append([]language.Tag(nil), c.tags...)
}

// Match picks the best supported locale for an Accept-Language header value.
// An empty or unparsable header yields the fallback.
func (c *Catalog) Match(acceptLanguage string) language.Tag {
	if acceptLanguage == "" {
		return c.fallback
	}

	prefs, _, err := language.ParseAcceptLanguage(acceptLanguage)
	if err != nil || len(prefs) == 0 {
		return c.fallback
	}

	_, idx, conf := c.matcher.Match(prefs...)
	if conf == language.No {
		return c.fallback
	}
	return c.tags[idx]
}

// Message renders the message for a failed rule. Lookup order is the
// locale's (field, code) override, the locale's code template, then the
// same two in the fallback locale. An unknown code renders as the code.
func (c *Catalog) Message(tag language.Tag, field, code string, params map[string]any) string {
	for _, b := range c.chain(tag) {
		if tmpl, ok := b.Overrides[field][code]; ok {
			return render(tmpl, b.fieldName(field), params)
		}
		if tmpl, ok := b.Codes[code]; ok {
			return render(tmpl, b.fieldName(field), params)
		}
	}
	return code
}

// Error renders a request-level error message such as "malformed_body".
func (c *Catalog) Error(tag language.Tag, key string, params map[string]any) string {
	for _, b := range c.chain(tag) {
		if tmpl, ok := b.Errors[key]; ok {
			return render(tmpl, "", params)
		}
	}
	return key
}

// FieldName returns the display name of field, or field itself.
func (c *Catalog) FieldName(tag language.Tag, field string) string {
	for _, b := range c.chain(tag) {
		if name, ok := b.Fields[field]; ok {
			return name
		}
	}
	return field
}

func (c *Catalog) chain(tag language.Tag) []*bundle {
	primary, ok := c.bundles[tag]
	if !ok || tag == c.fallback {
		return []*bundle{c.bundles[c.fallback]}
	}
	return []*bundle{primary, c.bundles[c.fallback]}
}

func (b *bundle) fieldName(field string) string {
	if name, ok := b.Fields[field]; ok {
		return name
	}
	return field
}
