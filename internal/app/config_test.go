package app

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestLoadConfigDefaults(t *testing.T) {
	cfg, err := LoadConfig()
	require.NoError(t, err)

	require.Equal(t, "development", cfg.AppEnv)
	require.Equal(t, ":8080", cfg.AppAddr)
	require.Equal(t, "127.0.0.1:6379", cfg.RedisAddr)
	require.Equal(t, 10*time.Minute, cfg.CacheTTL)
	require.Equal(t, "no-reply@meridian.local", cfg.SMTPFrom)
	require.Equal(t, 5, cfg.VerifyMaxAttempts)
	require.False(t, cfg.IsProduction())
}

func TestLoadConfigRejectsEmptySMTPFrom(t *testing.T) {
	t.Setenv("SMTP_FROM", "   ")

	_, err := LoadConfig()
	require.Error(t, err)
}

func TestLoadConfigRejectsNonPositiveAttempts(t *testing.T) {
	t.Setenv("VERIFY_MAX_ATTEMPTS", "0")

	_, err := LoadConfig()
	require.Error(t, err)
}

func TestIsProduction(t *testing.T) {
	t.Setenv("APP_ENV", "production")

	cfg, err := LoadConfig()
	require.NoError(t, err)
	require.True(t, cfg.IsProduction())
}
