package activity

import (
	"errors"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/jsamuelsen11/relief-activity-service/internal/domain"
)

const bytesPerMegabyte = 1024 * 1024

// UploadLimits is an immutable snapshot of the upload policy taken once per
// validation call, so every file in one request is judged against the same
// limits.
type UploadLimits struct {
	allowed          map[string]struct{}
	MaxFileSizeBytes int64
}

// NewUploadLimits builds limits from allowed extensions (with or without a
// leading dot, any case) and a maximum size in megabytes.
func NewUploadLimits(extensions []string, maxFileSizeMegabytes int) UploadLimits {
	allowed := make(map[string]struct{}, len(extensions))
	for _, ext := range extensions {
		ext = strings.ToLower(strings.TrimSpace(ext))
		if ext == "" {
			continue
		}
		if !strings.HasPrefix(ext, ".") {
			ext = "." + ext
		}
		allowed[ext] = struct{}{}
	}
	return UploadLimits{
		allowed:          allowed,
		MaxFileSizeBytes: int64(maxFileSizeMegabytes) * bytesPerMegabyte,
	}
}

// AllowsExtension reports whether the lower-cased extension of fileName is
// in the allowed set.
func (l UploadLimits) AllowsExtension(fileName string) bool {
	ext := strings.ToLower(filepath.Ext(fileName))
	if ext == "" {
		return false
	}
	_, ok := l.allowed[ext]
	return ok
}

// PolicySource is the read-only configuration the limits are built from.
// It is satisfied by ports.UploadPolicy.
type PolicySource interface {
	AllowedImageExtensions() ([]string, error)
	MaxFileSizeMegabytes() (int, error)
}

// LoadUploadLimits reads src once. Any read error, an empty extension set,
// or a non-positive size is reported as domain.ErrMisconfigured.
func LoadUploadLimits(src PolicySource) (UploadLimits, error) {
	exts, err := src.AllowedImageExtensions()
	if err != nil {
		return UploadLimits{}, fmt.Errorf("reading allowed image extensions: %w", misconfigured(err))
	}
	if len(exts) == 0 {
		return UploadLimits{}, fmt.Errorf("allowed image extensions are empty: %w", domain.ErrMisconfigured)
	}

	mb, err := src.MaxFileSizeMegabytes()
	if err != nil {
		return UploadLimits{}, fmt.Errorf("reading max file size: %w", misconfigured(err))
	}
	if mb <= 0 {
		return UploadLimits{}, fmt.Errorf("max file size must be positive, got %d MB: %w", mb, domain.ErrMisconfigured)
	}

	return NewUploadLimits(exts, mb), nil
}

// misconfigured makes sure a provider error is classified as a
// misconfiguration even when the provider did not wrap it that way.
func misconfigured(err error) error {
	if errors.Is(err, domain.ErrMisconfigured) {
		return err
	}
	return fmt.Errorf("%w: %w", domain.ErrMisconfigured, err)
}
