package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	cfg := Load()

	assert.Equal(t, "focus-service", cfg.Service.Name)
	assert.Equal(t, "5000", cfg.Service.Port)
	assert.Contains(t, cfg.Database.URL, "postgres://")
	assert.Equal(t, "info", cfg.Logging.Level)
	assert.False(t, cfg.Tracing.Enabled)
	assert.False(t, cfg.Profiling.Enabled)

	require.NoError(t, cfg.Validate())
}

func TestLoadEnvOverrides(t *testing.T) {
	t.Setenv("PORT", "8081")
	t.Setenv("DATABASE_URL", "postgres://u:p@db:5432/focus")
	t.Setenv("TRACING_ENABLED", "true")
	t.Setenv("TRACING_SAMPLE_RATE", "0.25")
	t.Setenv("SHUTDOWN_TIMEOUT_SECONDS", "30")

	cfg := Load()

	assert.Equal(t, "8081", cfg.Service.Port)
	assert.Equal(t, "postgres://u:p@db:5432/focus", cfg.Database.URL)
	assert.True(t, cfg.Tracing.Enabled)
	assert.Equal(t, 0.25, cfg.Tracing.SampleRate)
	assert.Equal(t, 30*time.Second, cfg.GetShutdownTimeoutDuration())

	require.NoError(t, cfg.Validate())
}

func TestValidateRejectsBadValues(t *testing.T) {
	cfg := Load()

	cfg.Service.Port = "not-a-port"
	assert.Error(t, cfg.Validate())

	cfg = Load()
	cfg.Database.URL = ""
	assert.Error(t, cfg.Validate())

	cfg = Load()
	cfg.Tracing.SampleRate = 1.5
	assert.Error(t, cfg.Validate())

	cfg = Load()
	cfg.Shutdown.TimeoutSeconds = 0
	assert.Error(t, cfg.Validate())
}

func TestMalformedEnvFallsBack(t *testing.T) {
	t.Setenv("TRACING_ENABLED", "definitely")
	t.Setenv("SHUTDOWN_TIMEOUT_SECONDS", "soon")
	t.Setenv("TRACING_SAMPLE_RATE", "lots")

	cfg := Load()

	assert.False(t, cfg.Tracing.Enabled)
	assert.Equal(t, 10, cfg.Shutdown.TimeoutSeconds)
	assert.Equal(t, 1.0, cfg.Tracing.SampleRate)
}
