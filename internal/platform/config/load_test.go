package config_test

import (
	"os"
	"path/filepath"
	"slices"
	"strings"
	"testing"
	"time"

	"github.com/jsamuelsen11/relief-activity-service/internal/platform/config"
)

func TestLoad_LocalProfile(t *testing.T) {
	t.Chdir("../../..")

	cfg, err := config.Load("local")
	if err != nil {
		t.Fatalf("Load(\"local\") error: %v", err)
	}

	if cfg.Server.Port != 8080 {
		t.Errorf("Server.Port = %d, want 8080", cfg.Server.Port)
	}
	if cfg.Log.Level != "debug" {
		t.Errorf("Log.Level = %q, want \"debug\"", cfg.Log.Level)
	}
	if cfg.Log.Format != "text" {
		t.Errorf("Log.Format = %q, want \"text\"", cfg.Log.Format)
	}
	if cfg.Telemetry.Enabled {
		t.Error("Telemetry.Enabled = true, want false for local")
	}
}

func TestLoad_ProdProfile(t *testing.T) {
	t.Chdir("../../..")

	cfg, err := config.Load("prod")
	if err != nil {
		t.Fatalf("Load(\"prod\") error: %v", err)
	}

	if cfg.Log.Level != "info" {
		t.Errorf("Log.Level = %q, want \"info\"", cfg.Log.Level)
	}
	if cfg.Log.Format != "json" {
		t.Errorf("Log.Format = %q, want \"json\"", cfg.Log.Format)
	}
	if !cfg.Telemetry.Enabled {
		t.Error("Telemetry.Enabled = false, want true for prod")
	}
	if cfg.Telemetry.Exporter != "otlp" {
		t.Errorf("Telemetry.Exporter = %q, want \"otlp\"", cfg.Telemetry.Exporter)
	}
	if cfg.Telemetry.Endpoint == "" {
		t.Error("Telemetry.Endpoint is empty, want non-empty for prod")
	}
}

func TestLoad_BaseConfigInheritance(t *testing.T) {
	t.Chdir("../../..")

	cfg, err := config.Load("local")
	if err != nil {
		t.Fatalf("Load(\"local\") error: %v", err)
	}

	// These come from base.yaml, not overridden by local.yaml.
	if cfg.Server.Host != "0.0.0.0" {
		t.Errorf("Server.Host = %q, want \"0.0.0.0\" (from base)", cfg.Server.Host)
	}
	if cfg.Client.Retry.MaxAttempts != 3 {
		t.Errorf("Client.Retry.MaxAttempts = %d, want 3 (from base)", cfg.Client.Retry.MaxAttempts)
	}
	if cfg.Client.CircuitBreaker.MaxFailures != 5 {
		t.Errorf("Client.CircuitBreaker.MaxFailures = %d, want 5 (from base)",
			cfg.Client.CircuitBreaker.MaxFailures)
	}
	if cfg.Platform.Timezone != "Asia/Ho_Chi_Minh" {
		t.Errorf("Platform.Timezone = %q, want \"Asia/Ho_Chi_Minh\" (from base)", cfg.Platform.Timezone)
	}
	if cfg.Upload.MaxFileSizeMegabytes != 10 {
		t.Errorf("Upload.MaxFileSizeMegabytes = %d, want 10 (from base)", cfg.Upload.MaxFileSizeMegabytes)
	}
	if want := []string{".jpg", ".jpeg", ".png", ".gif"}; !slices.Equal(cfg.Upload.AllowedImageExtensions, want) {
		t.Errorf("Upload.AllowedImageExtensions = %v, want %v (from base)", cfg.Upload.AllowedImageExtensions, want)
	}
}

func TestLoad_DefaultsFillUnsetKeys(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, filepath.Join(dir, "base.yaml"), `
upload:
  allowed_image_extensions: [".jpg"]
  max_file_size_megabytes: 2
`)
	writeFile(t, filepath.Join(dir, "test.yaml"), "log:\n  level: warn\n")

	cfg, err := config.Load("test", config.WithConfigDir(dir))
	if err != nil {
		t.Fatalf("Load error: %v", err)
	}

	if cfg.Server.Port != 8080 {
		t.Errorf("Server.Port = %d, want 8080 (default)", cfg.Server.Port)
	}
	if cfg.Log.Level != "warn" {
		t.Errorf("Log.Level = %q, want \"warn\"", cfg.Log.Level)
	}
	if cfg.Activity.MaxBatchSize != 100 {
		t.Errorf("Activity.MaxBatchSize = %d, want 100 (default)", cfg.Activity.MaxBatchSize)
	}
	if cfg.Server.RequestTimeout != 8*time.Second {
		t.Errorf("Server.RequestTimeout = %v, want 8s (default)", cfg.Server.RequestTimeout)
	}
}

func TestLoad_MissingUploadPolicyFails(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, filepath.Join(dir, "base.yaml"), "log:\n  level: info\n")
	writeFile(t, filepath.Join(dir, "test.yaml"), "log:\n  format: text\n")

	_, err := config.Load("test", config.WithConfigDir(dir))
	if err == nil {
		t.Fatal("Load returned nil error, want error for missing upload policy")
	}
	if !strings.Contains(err.Error(), "upload.allowed_image_extensions") {
		t.Errorf("error = %v, want mention of upload.allowed_image_extensions", err)
	}
}

func TestLoad_EnvOverrideListKey(t *testing.T) {
	t.Chdir("../../..")
	t.Setenv("APP_UPLOAD_ALLOWED_IMAGE_EXTENSIONS", ".jpg, .heic")

	cfg, err := config.Load("local")
	if err != nil {
		t.Fatalf("Load error: %v", err)
	}

	want := []string{".jpg", ".heic"}
	if !slices.Equal(cfg.Upload.AllowedImageExtensions, want) {
		t.Errorf("Upload.AllowedImageExtensions = %v, want %v", cfg.Upload.AllowedImageExtensions, want)
	}

	got, err := config.NewUploadPolicy(cfg.Source()).AllowedImageExtensions()
	if err != nil {
		t.Fatalf("AllowedImageExtensions() error: %v", err)
	}
	if !slices.Equal(got, want) {
		t.Errorf("UploadPolicy.AllowedImageExtensions() = %v, want %v", got, want)
	}
}

func TestLoad_EnvOverrideSimpleKey(t *testing.T) {
	t.Chdir("../../..")
	t.Setenv("APP_SERVER_PORT", "9090")

	cfg, err := config.Load("local")
	if err != nil {
		t.Fatalf("Load error: %v", err)
	}

	if cfg.Server.Port != 9090 {
		t.Errorf("Server.Port = %d, want 9090 (env override)", cfg.Server.Port)
	}
}

func TestLoad_EnvOverrideSnakeCaseKey(t *testing.T) {
	t.Chdir("../../..")
	t.Setenv("APP_SERVER_READ_TIMEOUT", "15s")

	cfg, err := config.Load("local")
	if err != nil {
		t.Fatalf("Load error: %v", err)
	}

	want := 15 * time.Second
	if cfg.Server.ReadTimeout != want {
		t.Errorf("Server.ReadTimeout = %v, want %v (env override)", cfg.Server.ReadTimeout, want)
	}
}

func TestLoad_EnvOverrideDeeplyNestedKey(t *testing.T) {
	t.Chdir("../../..")
	t.Setenv("APP_CLIENT_RETRY_MAX_ATTEMPTS", "7")

	cfg, err := config.Load("local")
	if err != nil {
		t.Fatalf("Load error: %v", err)
	}

	if cfg.Client.Retry.MaxAttempts != 7 {
		t.Errorf("Client.Retry.MaxAttempts = %d, want 7 (env override)", cfg.Client.Retry.MaxAttempts)
	}
}

func TestLoad_MissingProfile(t *testing.T) {
	t.Chdir("../../..")

	_, err := config.Load("nonexistent")
	if err == nil {
		t.Fatal("Load(\"nonexistent\") returned nil error, want error")
	}
}

func TestValidate_InvalidPort(t *testing.T) {
	t.Parallel()

	cfg := validBaseConfig()
	cfg.Server.Port = 0

	if err := cfg.Validate(); err == nil {
		t.Fatal("Validate() returned nil, want error for port=0")
	}
}

func TestValidate_InvalidLogLevel(t *testing.T) {
	t.Parallel()

	cfg := validBaseConfig()
	cfg.Log.Level = "verbose"

	if err := cfg.Validate(); err == nil {
		t.Fatal("Validate() returned nil, want error for invalid log level")
	}
}

func TestValidate_OtlpWithoutEndpoint(t *testing.T) {
	t.Parallel()

	cfg := validBaseConfig()
	cfg.Telemetry.Enabled = true
	cfg.Telemetry.Exporter = "otlp"
	cfg.Telemetry.Endpoint = ""

	if err := cfg.Validate(); err == nil {
		t.Fatal("Validate() returned nil, want error for otlp without endpoint")
	}
}

func TestValidate_UnknownTimezone(t *testing.T) {
	t.Parallel()

	cfg := validBaseConfig()
	cfg.Platform.Timezone = "Mars/Olympus_Mons"

	if err := cfg.Validate(); err == nil {
		t.Fatal("Validate() returned nil, want error for unknown timezone")
	}
}

func TestValidate_UploadAndActivity(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		modify func(*config.Config)
	}{
		{name: "no extensions", modify: func(c *config.Config) { c.Upload.AllowedImageExtensions = nil }},
		{name: "blank extension", modify: func(c *config.Config) { c.Upload.AllowedImageExtensions = []string{".jpg", " "} }},
		{name: "zero max size", modify: func(c *config.Config) { c.Upload.MaxFileSizeMegabytes = 0 }},
		{name: "zero batch size", modify: func(c *config.Config) { c.Activity.MaxBatchSize = 0 }},
		{name: "zero workers", modify: func(c *config.Config) { c.Activity.BatchWorkers = 0 }},
		{name: "rate limit without burst", modify: func(c *config.Config) { c.Client.RateLimit.BurstSize = 0 }},
		{name: "negative rate limit", modify: func(c *config.Config) { c.Client.RateLimit.RequestsPerSecond = -1 }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			cfg := validBaseConfig()
			tt.modify(cfg)
			if err := cfg.Validate(); err == nil {
				t.Fatal("Validate() returned nil, want error")
			}
		})
	}
}

func TestValidate_ValidConfig(t *testing.T) {
	t.Parallel()

	cfg := validBaseConfig()
	if err := cfg.Validate(); err != nil {
		t.Fatalf("Validate() returned error for valid config: %v", err)
	}
}

// validBaseConfig returns a Config with all fields set to valid values.
func validBaseConfig() *config.Config {
	return &config.Config{
		Server: config.ServerConfig{
			Host:           "0.0.0.0",
			Port:           8080,
			ReadTimeout:    5 * time.Second,
			WriteTimeout:   10 * time.Second,
			IdleTimeout:    120 * time.Second,
			RequestTimeout: 15 * time.Second,
			MaxBodyBytes:   1 << 20,
		},
		Log: config.LogConfig{
			Level:  "info",
			Format: "json",
		},
		Client: config.ClientConfig{
			BaseURL: "http://localhost:8081",
			Timeout: 30 * time.Second,
			Retry: config.RetryConfig{
				MaxAttempts:     3,
				InitialInterval: 100 * time.Millisecond,
				MaxInterval:     10 * time.Second,
				Multiplier:      2.0,
			},
			CircuitBreaker: config.CircuitBreakerConfig{
				MaxFailures:   5,
				Timeout:       30 * time.Second,
				HalfOpenLimit: 1,
			},
			RateLimit: config.RateLimitConfig{
				RequestsPerSecond: 50,
				BurstSize:         10,
			},
		},
		Telemetry: config.TelemetryConfig{
			Enabled:  false,
			Exporter: "stdout",
		},
		Platform: config.PlatformConfig{
			Timezone:      "Asia/Ho_Chi_Minh",
			DefaultLocale: "vi",
		},
		Activity: config.ActivityConfig{
			MaxBatchSize: 100,
			BatchWorkers: 8,
		},
		Upload: config.UploadConfig{
			AllowedImageExtensions: []string{".jpg", ".png"},
			MaxFileSizeMegabytes:   10,
		},
	}
}

func writeFile(t *testing.T, path, content string) {
	t.Helper()
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatalf("writing %s: %v", path, err)
	}
}
