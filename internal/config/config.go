package config

import (
	"fmt"
	"os"
	"regexp"
	"strings"

	"github.com/joho/godotenv"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/v2"
)

var metricNamespacePattern = regexp.MustCompile(`^[a-zA-Z_][a-zA-Z0-9_]*$`)

// Config holds the ambient settings of the calculator loaded from the environment.
// Pricing rules are fixed and never read from here.
type Config struct {
	AppEnv           string
	LogLevel         string
	LogFormat        string
	MetricsNamespace string
}

// Load reads configuration from environment variables and an optional .env file.
func Load() (*Config, error) {
	_ = godotenv.Load()

	k := koanf.New(".")
	if err := k.Load(env.Provider("", ".", func(s string) string { return s }), nil); err != nil {
		return nil, fmt.Errorf("load env: %w", err)
	}

	cfg := &Config{
		AppEnv:           valueOrDefault(k.String("APP_ENV"), "development"),
		LogLevel:         strings.ToLower(valueOrDefault(k.String("LOG_LEVEL"), "info")),
		LogFormat:        strings.ToLower(valueOrDefault(k.String("LOG_FORMAT"), "json")),
		MetricsNamespace: strings.TrimSpace(valueOrDefault(k.String("METRICS_NAMESPACE"), "delivery")),
	}

	switch cfg.LogFormat {
	case "json", "console", "text":
	default:
		return nil, fmt.Errorf("LOG_FORMAT must be json, console or text, got %q", cfg.LogFormat)
	}
	if !metricNamespacePattern.MatchString(cfg.MetricsNamespace) {
		return nil, fmt.Errorf("METRICS_NAMESPACE %q is not a valid metric name prefix", cfg.MetricsNamespace)
	}

	return cfg, nil
}

func valueOrDefault(value, fallback string) string {
	if strings.TrimSpace(value) != "" {
		return strings.TrimSpace(value)
	}
	return fallback
}

// MustLoad behaves like Load but panics on error.
func MustLoad() *Config {
	cfg, err := Load()
	if err != nil {
		panic(err)
	}
	return cfg
}

// LoadForTests allows tests to override environment variables without touching the real environment.
func LoadForTests(env map[string]string) (*Config, error) {
	original := make(map[string]string, len(env))
	for key := range env {
		original[key] = os.Getenv(key)
		if err := setEnvVar(key, env[key]); err != nil {
			return nil, err
		}
	}
	cfg, err := Load()
	restoreErr := restoreEnv(original)
	if err != nil {
		return nil, err
	}
	return cfg, restoreErr
}

func setEnvVar(key, value string) error {
	if value == "" {
		return os.Unsetenv(key)
	}
	return os.Setenv(key, value)
}

func restoreEnv(values map[string]string) error {
	var errs []string
	for key, value := range values {
		if err := setEnvVar(key, value); err != nil {
			errs = append(errs, fmt.Sprintf("%s: %v", key, err))
		}
	}
	if len(errs) > 0 {
		return fmt.Errorf("restore env: %s", strings.Join(errs, "; "))
	}
	return nil
}
