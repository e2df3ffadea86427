package config

import (
	"log/slog"
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	chdir(t, t.TempDir())
	for _, key := range []string{"APP_PORT", "APP_ENV", "LOG_LEVEL", "CORS_ALLOWED_ORIGINS", "LATENCY_FETCH", "LATENCY_LIST", "LATENCY_MUTATION", "SEED_DEMO_DATA"} {
		t.Setenv(key, "")
	}

	cfg, err := Load()

	require.NoError(t, err)
	assert.Equal(t, 8080, cfg.App.Port)
	assert.Equal(t, "development", cfg.App.Env)
	assert.True(t, cfg.App.SeedDemoData)
	assert.Equal(t, []string{"http://localhost:3000"}, cfg.CORS.AllowedOrigins)
	assert.Equal(t, 300*time.Millisecond, cfg.Latency.Fetch)
	assert.Equal(t, 500*time.Millisecond, cfg.Latency.List)
	assert.Equal(t, 500*time.Millisecond, cfg.Latency.Mutation)
}

func TestLoad_FromEnvironment(t *testing.T) {
	chdir(t, t.TempDir())
	t.Setenv("APP_PORT", "9090")
	t.Setenv("LOG_LEVEL", "debug")
	t.Setenv("CORS_ALLOWED_ORIGINS", "http://a.test, http://b.test")
	t.Setenv("LATENCY_FETCH", "0s")
	t.Setenv("LATENCY_LIST", "10ms")
	t.Setenv("LATENCY_MUTATION", "1s")
	t.Setenv("SEED_DEMO_DATA", "false")

	cfg, err := Load()

	require.NoError(t, err)
	assert.Equal(t, 9090, cfg.App.Port)
	assert.False(t, cfg.App.SeedDemoData)
	assert.Equal(t, []string{"http://a.test", "http://b.test"}, cfg.CORS.AllowedOrigins)
	assert.Equal(t, time.Duration(0), cfg.Latency.Fetch)
	assert.Equal(t, 10*time.Millisecond, cfg.Latency.List)
	assert.Equal(t, time.Second, cfg.Latency.Mutation)

	level, err := cfg.SlogLevel()
	require.NoError(t, err)
	assert.Equal(t, slog.LevelDebug, level)
}

func TestLoad_InvalidValues(t *testing.T) {
	tests := []struct {
		name  string
		key   string
		value string
	}{
		{"port not a number", "APP_PORT", "eighty"},
		{"port out of range", "APP_PORT", "70000"},
		{"bad duration", "LATENCY_LIST", "soon"},
		{"negative duration", "LATENCY_MUTATION", "-1s"},
		{"bad log level", "LOG_LEVEL", "loud"},
		{"bad bool", "SEED_DEMO_DATA", "maybe"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			chdir(t, t.TempDir())
			t.Setenv(tt.key, tt.value)

			_, err := Load()
			assert.Error(t, err)
		})
	}
}

// chdir mirrors testing.T.Chdir (Go 1.24+) for older toolchains.
func chdir(t *testing.T, dir string) {
	t.Helper()
	wd, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(dir))
	t.Cleanup(func() { _ = os.Chdir(wd) })
}
