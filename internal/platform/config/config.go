// Package config provides configuration loading and validation for the service.
// Configuration is loaded from YAML files with environment variable overrides
// using a layered system: defaults -> base.yaml -> {profile}.yaml -> env vars.
package config

import (
	"time"

	"github.com/knadh/koanf/v2"
)

// Config holds all configuration for the service.
type Config struct {
	Server    ServerConfig    `koanf:"server"`
	Log       LogConfig       `koanf:"log"`
	Client    ClientConfig    `koanf:"client"`
	Telemetry TelemetryConfig `koanf:"telemetry"`
	Platform  PlatformConfig  `koanf:"platform"`
	Activity  ActivityConfig  `koanf:"activity"`
	Upload    UploadConfig    `koanf:"upload"`

	// source is the merged key/value tree the struct was unmarshalled from.
	source *koanf.Koanf
}

// ServerConfig holds HTTP server settings.
type ServerConfig struct {
	Host           string        `koanf:"host"`
	Port           int           `koanf:"port"`
	ReadTimeout    time.Duration `koanf:"read_timeout"`
	WriteTimeout   time.Duration `koanf:"write_timeout"`
	IdleTimeout    time.Duration `koanf:"idle_timeout"`
	RequestTimeout time.Duration `koanf:"request_timeout"`
	MaxBodyBytes   int64         `koanf:"max_body_bytes"`
}

// LogConfig holds structured logging settings.
type LogConfig struct {
	Level  string `koanf:"level"`
	Format string `koanf:"format"`
}

// ClientConfig holds settings for the downstream moderation API client.
type ClientConfig struct {
	BaseURL        string               `koanf:"base_url"`
	Timeout        time.Duration        `koanf:"timeout"`
	Retry          RetryConfig          `koanf:"retry"`
	CircuitBreaker CircuitBreakerConfig `koanf:"circuit_breaker"`
	RateLimit      RateLimitConfig      `koanf:"rate_limit"`
}

// RetryConfig holds retry policy settings with exponential backoff.
type RetryConfig struct {
	MaxAttempts     int           `koanf:"max_attempts"`
	InitialInterval time.Duration `koanf:"initial_interval"`
	MaxInterval     time.Duration `koanf:"max_interval"`
	Multiplier      float64       `koanf:"multiplier"`
}

// CircuitBreakerConfig holds circuit breaker settings.
type CircuitBreakerConfig struct {
	MaxFailures   int           `koanf:"max_failures"`
	Timeout       time.Duration `koanf:"timeout"`
	HalfOpenLimit int           `koanf:"half_open_limit"`
}

// RateLimitConfig holds client-side rate limiting settings.
// A zero RequestsPerSecond disables the limiter.
type RateLimitConfig struct {
	RequestsPerSecond float64 `koanf:"requests_per_second"`
	BurstSize         int     `koanf:"burst_size"`
}

// TelemetryConfig holds OpenTelemetry settings.
type TelemetryConfig struct {
	Enabled     bool   `koanf:"enabled"`
	Exporter    string `koanf:"exporter"`
	Endpoint    string `koanf:"endpoint"`
	ServiceName string `koanf:"service_name"`
}

// PlatformConfig holds settings that are fixed for the whole platform.
type PlatformConfig struct {
	// Timezone is the IANA zone "today" is computed in.
	Timezone string `koanf:"timezone"`

	// DefaultLocale is used when Accept-Language matches no supported locale.
	DefaultLocale string `koanf:"default_locale"`
}

// Location loads the configured time zone.
func (p PlatformConfig) Location() (*time.Location, error) {
	return time.LoadLocation(p.Timezone)
}

// ActivityConfig holds activity validation settings.
type ActivityConfig struct {
	MaxBatchSize int `koanf:"max_batch_size"`
	BatchWorkers int `koanf:"batch_workers"`
}

// UploadConfig mirrors the upload policy keys. The keys are also read live
// through UploadPolicy on every validation call.
type UploadConfig struct {
	AllowedImageExtensions []string `koanf:"allowed_image_extensions"`
	MaxFileSizeMegabytes   int      `koanf:"max_file_size_megabytes"`
}

// Source returns the key/value tree the configuration was loaded from, or
// nil for a Config built in code.
func (c *Config) Source() *koanf.Koanf {
	return c.source
}
