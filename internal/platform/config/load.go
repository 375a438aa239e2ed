package config

import (
	"errors"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/knadh/koanf/parsers/yaml"
	env "github.com/knadh/koanf/providers/env/v2"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
)

const (
	envPrefix        = "APP_"
	defaultConfigDir = "configs"
)

// Option configures the Load function.
type Option func(*loadOptions)

type loadOptions struct {
	configDir string
}

// WithConfigDir sets the directory where config YAML files are located.
// Defaults to "configs" relative to the working directory.
func WithConfigDir(dir string) Option {
	return func(o *loadOptions) {
		o.configDir = dir
	}
}

// Load builds the configuration for profile. Later layers win:
//
//	built-in defaults < {configDir}/base.yaml < {configDir}/{profile}.yaml < APP_* env
//
// Env names are resolved against the keys the earlier layers produced, so an
// underscore inside a field name survives:
//
//	APP_SERVER_READ_TIMEOUT              -> server.read_timeout
//	APP_CLIENT_RETRY_MAX_ATTEMPTS        -> client.retry.max_attempts
//	APP_ACTIVITY_MAX_BATCH_SIZE          -> activity.max_batch_size
//	APP_UPLOAD_ALLOWED_IMAGE_EXTENSIONS=.jpg,.png -> [".jpg", ".png"]
//
// The merged tree stays available through Config.Source for readers such as
// UploadPolicy that look keys up at call time.
func Load(profile string, opts ...Option) (*Config, error) {
	if err := validateProfile(profile); err != nil {
		return nil, err
	}

	o := &loadOptions{configDir: defaultConfigDir}
	for _, opt := range opts {
		opt(o)
	}

	k := koanf.New(".")
	if err := k.Load(defaultsProvider(defaults()), nil); err != nil {
		return nil, fmt.Errorf("loading defaults: %w", err)
	}

	for _, name := range []string{"base", profile} {
		path := filepath.Join(o.configDir, name+".yaml")
		if err := k.Load(file.Provider(path), yaml.Parser()); err != nil {
			return nil, fmt.Errorf("loading %s config %s: %w", name, path, err)
		}
	}

	envOpt := env.Opt{Prefix: envPrefix, TransformFunc: envTransform(k)}
	if err := k.Load(env.Provider(".", envOpt), nil); err != nil {
		return nil, fmt.Errorf("loading env vars: %w", err)
	}

	var cfg Config
	if err := k.Unmarshal("", &cfg); err != nil {
		return nil, fmt.Errorf("unmarshalling config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("validating config: %w", err)
	}
	cfg.source = k

	return &cfg, nil
}

// envTransform maps APP_* variables onto the keys already present in k.
// Unknown names fall back to treating every underscore as nesting.
func envTransform(k *koanf.Koanf) func(key, value string) (string, any) {
	known := buildEnvLookup(k.Keys())

	return func(key, value string) (string, any) {
		key = strings.ToLower(strings.TrimPrefix(key, envPrefix))

		dotted, ok := known[key]
		if !ok {
			return strings.ReplaceAll(key, "_", "."), value
		}
		if _, isList := k.Get(dotted).([]any); isList {
			return dotted, splitList(value)
		}
		return dotted, value
	}
}

// validateProfile checks that the profile name is safe and non-empty.
func validateProfile(profile string) error {
	if strings.TrimSpace(profile) == "" {
		return errors.New("profile must not be empty")
	}
	if strings.ContainsAny(profile, `/\`) {
		return fmt.Errorf("profile must not contain path separators, got %q", profile)
	}
	if strings.Contains(profile, "..") {
		return fmt.Errorf("profile must not contain path traversal, got %q", profile)
	}
	return nil
}

// buildEnvLookup indexes dotted keys by their underscore form, e.g.
// "server_read_timeout" -> "server.read_timeout".
func buildEnvLookup(keys []string) map[string]string {
	lookup := make(map[string]string, len(keys))
	for _, key := range keys {
		lookup[strings.ReplaceAll(key, ".", "_")] = key
	}
	return lookup
}

// splitList splits a comma-separated env value, dropping empty items.
func splitList(value string) []string {
	parts := strings.Split(value, ",")
	items := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			items = append(items, p)
		}
	}
	return items
}
