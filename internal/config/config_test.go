package config_test

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/pkordes/car-rental/web/internal/config"
)

// TestLoad_defaults verifies that optional env vars fall back to their defaults
// when only the required API_ENDPOINT is provided.
func TestLoad_defaults(t *testing.T) {
	t.Chdir(t.TempDir())
	t.Setenv("API_ENDPOINT", "http://localhost:4000")
	t.Setenv("PORT", "")
	t.Setenv("LOG_LEVEL", "")
	t.Setenv("CORS_ORIGINS", "")
	t.Setenv("TIMEZONE", "")
	t.Setenv("MAX_BODY_BYTES", "")

	cfg, err := config.Load()

	require.NoError(t, err)
	require.Equal(t, "8080", cfg.Port)
	require.Equal(t, "info", cfg.LogLevel)
	require.Equal(t, "http://localhost:4000", cfg.APIEndpoint)
	require.Equal(t, []string{"http://localhost:3000"}, cfg.CORSOrigins)
	require.Equal(t, time.UTC, cfg.Location)
	require.EqualValues(t, 65536, cfg.MaxBodyBytes)
}

// TestLoad_overrides verifies that all values can be overridden via env vars.
func TestLoad_overrides(t *testing.T) {
	t.Chdir(t.TempDir())
	t.Setenv("API_ENDPOINT", "https://api.example.com/v1")
	t.Setenv("PORT", "9090")
	t.Setenv("LOG_LEVEL", "debug")
	t.Setenv("CORS_ORIGINS", "https://app.example.com, https://admin.example.com")
	t.Setenv("TIMEZONE", "Europe/Madrid")
	t.Setenv("MAX_BODY_BYTES", "1024")

	cfg, err := config.Load()

	require.NoError(t, err)
	require.Equal(t, "9090", cfg.Port)
	require.Equal(t, "debug", cfg.LogLevel)
	require.Equal(t, "https://api.example.com/v1", cfg.APIEndpoint)
	require.Equal(t, []string{"https://app.example.com", "https://admin.example.com"}, cfg.CORSOrigins)
	require.Equal(t, "Europe/Madrid", cfg.Location.String())
	require.EqualValues(t, 1024, cfg.MaxBodyBytes)
}

// TestLoad_missingRequired verifies that an error is returned when API_ENDPOINT
// is not set, and that the error message names the missing variable.
func TestLoad_missingRequired(t *testing.T) {
	t.Chdir(t.TempDir())
	t.Setenv("API_ENDPOINT", "")

	_, err := config.Load()

	require.Error(t, err)
	require.ErrorContains(t, err, "API_ENDPOINT")
}

func TestLoad_invalidValues(t *testing.T) {
	cases := map[string]map[string]string{
		"relative endpoint": {"API_ENDPOINT": "localhost:4000/api"},
		"unknown timezone":  {"API_ENDPOINT": "http://localhost:4000", "TIMEZONE": "Mars/Olympus"},
		"body size":         {"API_ENDPOINT": "http://localhost:4000", "MAX_BODY_BYTES": "-5"},
	}
	for name, env := range cases {
		t.Run(name, func(t *testing.T) {
			t.Chdir(t.TempDir())
			t.Setenv("TIMEZONE", "")
			t.Setenv("MAX_BODY_BYTES", "")
			for k, v := range env {
				t.Setenv(k, v)
			}

			_, err := config.Load()

			require.Error(t, err)
		})
	}
}

// TestLoad_dotEnvFile verifies that a .env file fills in unset variables but
// never overrides the real environment.
func TestLoad_dotEnvFile(t *testing.T) {
	dir := t.TempDir()
	t.Chdir(dir)
	require.NoError(t, os.WriteFile(filepath.Join(dir, ".env"),
		[]byte("API_ENDPOINT=http://from-dotenv:4000\nLOG_LEVEL=warn\n"), 0o600))
	t.Setenv("LOG_LEVEL", "error")
	// t.Setenv registers cleanup; Unsetenv lets godotenv supply the value.
	t.Setenv("API_ENDPOINT", "")
	require.NoError(t, os.Unsetenv("API_ENDPOINT"))

	cfg, err := config.Load()

	require.NoError(t, err)
	require.Equal(t, "http://from-dotenv:4000", cfg.APIEndpoint)
	require.Equal(t, "error", cfg.LogLevel)
}
