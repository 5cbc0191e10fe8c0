package config

import (
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// unsetenv clears a variable for the test while restoring it afterwards.
func unsetenv(t *testing.T, key string) {
	t.Helper()
	t.Setenv(key, "")
	os.Unsetenv(key)
}

func TestLoadDefaults(t *testing.T) {
	unsetenv(t, "APP_ENV")
	unsetenv(t, "PORT")
	unsetenv(t, "ALLOWED_ORIGINS")
	unsetenv(t, "RATE_LIMIT_REACTION")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "development", cfg.AppEnv)
	assert.Equal(t, "8080", cfg.Port)
	assert.Equal(t, "http://localhost:3000", cfg.AllowedOrigins)
	assert.Equal(t, time.Second, cfg.RateLimitReaction)
}

func TestLoadOverrides(t *testing.T) {
	t.Setenv("APP_ENV", "production")
	t.Setenv("PORT", "9090")
	t.Setenv("RATE_LIMIT_REACTION", "250ms")
	t.Setenv("REDIS_URL", "redis://localhost:6379/0")
	t.Setenv("JWT_SECRET", "secret")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "production", cfg.AppEnv)
	assert.Equal(t, "9090", cfg.Port)
	assert.Equal(t, 250*time.Millisecond, cfg.RateLimitReaction)
	assert.Equal(t, "redis://localhost:6379/0", cfg.RedisURL)
	assert.Equal(t, "secret", cfg.JWTSecret)
}

func TestLoadRejectsBadDuration(t *testing.T) {
	t.Setenv("RATE_LIMIT_REACTION", "soon")

	_, err := Load()
	assert.Error(t, err)
}
