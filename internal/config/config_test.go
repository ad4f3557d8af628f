package config_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/noah-isme/delivery-cost/internal/config"
)

func TestLoadDefaults(t *testing.T) {
	cfg, err := config.LoadForTests(map[string]string{
		"APP_ENV":           "",
		"LOG_LEVEL":         "",
		"LOG_FORMAT":        "",
		"METRICS_NAMESPACE": "",
	})
	require.NoError(t, err)
	require.Equal(t, "development", cfg.AppEnv)
	require.Equal(t, "info", cfg.LogLevel)
	require.Equal(t, "json", cfg.LogFormat)
	require.Equal(t, "delivery", cfg.MetricsNamespace)
}

func TestLoadOverrides(t *testing.T) {
	cfg, err := config.LoadForTests(map[string]string{
		"APP_ENV":           "production",
		"LOG_LEVEL":         "DEBUG",
		"LOG_FORMAT":        " Console ",
		"METRICS_NAMESPACE": "courier",
	})
	require.NoError(t, err)
	require.Equal(t, "production", cfg.AppEnv)
	require.Equal(t, "debug", cfg.LogLevel)
	require.Equal(t, "console", cfg.LogFormat)
	require.Equal(t, "courier", cfg.MetricsNamespace)
}

func TestLoadRejectsInvalidValues(t *testing.T) {
	_, err := config.LoadForTests(map[string]string{"LOG_FORMAT": "xml", "METRICS_NAMESPACE": ""})
	require.ErrorContains(t, err, "LOG_FORMAT")

	_, err = config.LoadForTests(map[string]string{"LOG_FORMAT": "", "METRICS_NAMESPACE": "9-bad"})
	require.ErrorContains(t, err, "METRICS_NAMESPACE")
}

func TestMustLoadPanicsOnError(t *testing.T) {
	t.Setenv("LOG_FORMAT", "yaml")
	require.Panics(t, func() { config.MustLoad() })
}
