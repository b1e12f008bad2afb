package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestLoadConfig_Defaults(t *testing.T) {
	cfg, err := LoadConfig()
	require.NoError(t, err)

	require.Equal(t, ":3000", cfg.EndpointAddr)
	require.Equal(t, 15*time.Minute, cfg.AccessTokenValidityDuration)
	require.Equal(t, 24*time.Hour, cfg.RefreshTokenValidityDuration)
	require.NotEmpty(t, cfg.AccessTokenSecret)
	require.NotEmpty(t, cfg.RefreshTokenSecret)
	require.NotEqual(t, cfg.AccessTokenSecret, cfg.RefreshTokenSecret)
}

func TestLoadConfig_EnvOverlay(t *testing.T) {
	t.Setenv("ADDRESS", ":8088")
	t.Setenv("ACCESS_TOKEN_SECRET", "env-access")
	t.Setenv("ACCESS_TOKEN_TTL", "90s")
	t.Setenv("SMTP_USERNAME", "mailer@example.com")

	cfg, err := LoadConfig()
	require.NoError(t, err)

	require.Equal(t, ":8088", cfg.EndpointAddr)
	require.Equal(t, "env-access", cfg.AccessTokenSecret)
	require.Equal(t, 90*time.Second, cfg.AccessTokenValidityDuration)
	require.Equal(t, "mailer@example.com", cfg.SMTPUsername)
	// untouched values keep their defaults
	require.Equal(t, 24*time.Hour, cfg.RefreshTokenValidityDuration)
}

func TestLoadConfig_InvalidDuration(t *testing.T) {
	t.Setenv("REFRESH_TOKEN_TTL", "not-a-duration")

	_, err := LoadConfig()
	require.Error(t, err)
}
