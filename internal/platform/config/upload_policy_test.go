package config

import (
	"context"
	"errors"
	"slices"
	"testing"

	"github.com/knadh/koanf/v2"

	"github.com/jsamuelsen11/relief-activity-service/internal/domain"
)

func newTree(t *testing.T, values map[string]any) *koanf.Koanf {
	t.Helper()
	k := koanf.New(".")
	if err := k.Load(defaultsProvider(values), nil); err != nil {
		t.Fatalf("loading values: %v", err)
	}
	return k
}

func TestUploadPolicy_Reads(t *testing.T) {
	t.Parallel()

	p := NewUploadPolicy(newTree(t, map[string]any{
		KeyAllowedImageExtensions: []any{".jpg", ".png"},
		KeyMaxFileSizeMegabytes:   10,
	}))

	exts, err := p.AllowedImageExtensions()
	if err != nil {
		t.Fatalf("AllowedImageExtensions() error: %v", err)
	}
	if !slices.Equal(exts, []string{".jpg", ".png"}) {
		t.Errorf("AllowedImageExtensions() = %v", exts)
	}

	mb, err := p.MaxFileSizeMegabytes()
	if err != nil {
		t.Fatalf("MaxFileSizeMegabytes() error: %v", err)
	}
	if mb != 10 {
		t.Errorf("MaxFileSizeMegabytes() = %d, want 10", mb)
	}
}

func TestUploadPolicy_ScalarValues(t *testing.T) {
	t.Parallel()

	p := NewUploadPolicy(newTree(t, map[string]any{
		KeyAllowedImageExtensions: ".jpg,.gif",
		KeyMaxFileSizeMegabytes:   "25",
	}))

	exts, err := p.AllowedImageExtensions()
	if err != nil {
		t.Fatalf("AllowedImageExtensions() error: %v", err)
	}
	if !slices.Equal(exts, []string{".jpg", ".gif"}) {
		t.Errorf("AllowedImageExtensions() = %v", exts)
	}

	mb, err := p.MaxFileSizeMegabytes()
	if err != nil {
		t.Fatalf("MaxFileSizeMegabytes() error: %v", err)
	}
	if mb != 25 {
		t.Errorf("MaxFileSizeMegabytes() = %d, want 25", mb)
	}
}

func TestUploadPolicy_Misconfigured(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		k      *koanf.Koanf
		readMB bool
	}{
		{name: "nil tree", k: nil},
		{name: "missing extensions", k: newTree(t, map[string]any{KeyMaxFileSizeMegabytes: 5})},
		{name: "missing size", k: newTree(t, map[string]any{KeyAllowedImageExtensions: []any{".jpg"}}), readMB: true},
		{
			name:   "size not a number",
			k:      newTree(t, map[string]any{KeyMaxFileSizeMegabytes: "ten"}),
			readMB: true,
		},
		{
			name:   "fractional size",
			k:      newTree(t, map[string]any{KeyMaxFileSizeMegabytes: 2.5}),
			readMB: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			p := NewUploadPolicy(tt.k)

			var err error
			if tt.readMB {
				_, err = p.MaxFileSizeMegabytes()
			} else {
				_, err = p.AllowedImageExtensions()
			}
			if !errors.Is(err, domain.ErrMisconfigured) {
				t.Errorf("error = %v, want ErrMisconfigured", err)
			}
		})
	}
}

func TestDefaultsProvider_Nests(t *testing.T) {
	t.Parallel()

	m, err := defaultsProvider{"a.b.c": 1, "a.d": "x"}.Read()
	if err != nil {
		t.Fatalf("Read() error: %v", err)
	}

	a, ok := m["a"].(map[string]any)
	if !ok {
		t.Fatalf("m[\"a\"] = %T, want map", m["a"])
	}
	if a["d"] != "x" {
		t.Errorf("a.d = %v, want x", a["d"])
	}
	b, ok := a["b"].(map[string]any)
	if !ok || b["c"] != 1 {
		t.Errorf("a.b = %v, want map with c=1", a["b"])
	}
}

func TestUploadPolicy_HealthCheck(t *testing.T) {
	t.Parallel()

	healthy := NewUploadPolicy(newTree(t, map[string]any{
		KeyAllowedImageExtensions: []any{".jpg"},
		KeyMaxFileSizeMegabytes:   1,
	}))
	if err := healthy.HealthCheck(context.Background()); err != nil {
		t.Errorf("HealthCheck() = %v, want nil", err)
	}

	zero := NewUploadPolicy(newTree(t, map[string]any{
		KeyAllowedImageExtensions: []any{".jpg"},
		KeyMaxFileSizeMegabytes:   0,
	}))
	if err := zero.HealthCheck(context.Background()); !errors.Is(err, domain.ErrMisconfigured) {
		t.Errorf("HealthCheck() = %v, want ErrMisconfigured", err)
	}
	if zero.Name() != "upload-policy" {
		t.Errorf("Name() = %q", zero.Name())
	}
}
