package config

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/knadh/koanf/v2"

	"github.com/jsamuelsen11/relief-activity-service/internal/domain"
	"github.com/jsamuelsen11/relief-activity-service/internal/domain/activity"
)

// Upload policy keys in the configuration tree.
const (
	KeyAllowedImageExtensions = "upload.allowed_image_extensions"
	KeyMaxFileSizeMegabytes   = "upload.max_file_size_megabytes"
)

// UploadPolicy reads the image upload policy from a koanf tree on every
// call. It satisfies ports.UploadPolicy and ports.HealthChecker.
type UploadPolicy struct {
	k *koanf.Koanf
}

// NewUploadPolicy creates an UploadPolicy over k. A nil k yields a policy
// whose reads all report domain.ErrMisconfigured.
func NewUploadPolicy(k *koanf.Koanf) *UploadPolicy {
	return &UploadPolicy{k: k}
}

// AllowedImageExtensions returns the configured extensions. A scalar value
// is accepted as a comma-separated list.
func (p *UploadPolicy) AllowedImageExtensions() ([]string, error) {
	if !p.exists(KeyAllowedImageExtensions) {
		return nil, fmt.Errorf("%s is not set: %w", KeyAllowedImageExtensions, domain.ErrMisconfigured)
	}

	if s, ok := p.k.Get(KeyAllowedImageExtensions).(string); ok {
		return splitList(s), nil
	}
	return p.k.Strings(KeyAllowedImageExtensions), nil
}

// MaxFileSizeMegabytes returns the per-file size limit in megabytes.
func (p *UploadPolicy) MaxFileSizeMegabytes() (int, error) {
	if !p.exists(KeyMaxFileSizeMegabytes) {
		return 0, fmt.Errorf("%s is not set: %w", KeyMaxFileSizeMegabytes, domain.ErrMisconfigured)
	}

	switch v := p.k.Get(KeyMaxFileSizeMegabytes).(type) {
	case int:
		return v, nil
	case int64:
		return int(v), nil
	case float64:
		if v != float64(int(v)) {
			return 0, fmt.Errorf("%s must be a whole number, got %v: %w", KeyMaxFileSizeMegabytes, v, domain.ErrMisconfigured)
		}
		return int(v), nil
	case string:
		n, err := strconv.Atoi(strings.TrimSpace(v))
		if err != nil {
			return 0, fmt.Errorf("%s: %w: %w", KeyMaxFileSizeMegabytes, domain.ErrMisconfigured, err)
		}
		return n, nil
	default:
		return 0, fmt.Errorf("%s has unsupported type %T: %w", KeyMaxFileSizeMegabytes, v, domain.ErrMisconfigured)
	}
}

func (p *UploadPolicy) exists(key string) bool {
	return p.k != nil && p.k.Exists(key)
}

// Name implements ports.HealthChecker.
func (p *UploadPolicy) Name() string {
	return "upload-policy"
}

// HealthCheck reports a misconfigured policy so that readiness fails before
// submissions start returning server errors.
func (p *UploadPolicy) HealthCheck(_ context.Context) error {
	_, err := activity.LoadUploadLimits(p)
	return err
}
