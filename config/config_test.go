package config

import (
	"testing"
	"time"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret")

	cfg, err := Load(viper.New())
	require.NoError(t, err)

	assert.Equal(t, "8080", cfg.App.Port)
	assert.Equal(t, 15*time.Minute, cfg.JWT.AccessExpiry)
	assert.Equal(t, 7*24*time.Hour, cfg.JWT.RefreshExpiry)
	assert.Equal(t, []string{"*"}, cfg.CORS.AllowedOrigins)
	assert.Equal(t, 5, cfg.RateLimit.LoginBurst)
	assert.True(t, cfg.DB.Migrate)
}

func TestLoad_EnvOverrides(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret")
	t.Setenv("APP_PORT", "9000")
	t.Setenv("JWT_ACCESS_EXPIRY", "30m")
	t.Setenv("CORS_ALLOWED_ORIGINS", "http://a.test, http://b.test")
	t.Setenv("DB_MIGRATE", "false")

	cfg, err := Load(viper.New())
	require.NoError(t, err)

	assert.Equal(t, "9000", cfg.App.Port)
	assert.Equal(t, 30*time.Minute, cfg.JWT.AccessExpiry)
	assert.Equal(t, []string{"http://a.test", "http://b.test"}, cfg.CORS.AllowedOrigins)
	assert.False(t, cfg.DB.Migrate)
}

func TestLoad_InvalidDurationFallsBack(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret")
	t.Setenv("JWT_REFRESH_EXPIRY", "soon")

	cfg, err := Load(viper.New())
	require.NoError(t, err)
	assert.Equal(t, 7*24*time.Hour, cfg.JWT.RefreshExpiry)
}

func TestLoad_MissingSecret(t *testing.T) {
	t.Setenv("JWT_SECRET", "")

	_, err := Load(viper.New())
	assert.Error(t, err)
}

func TestLoadClientConfig(t *testing.T) {
	cfg := LoadClientConfig(viper.New(), "/tmp/session.json")
	assert.Equal(t, "http://localhost:8080", cfg.APIURL)
	assert.Equal(t, "/tmp/session.json", cfg.SessionFile)
	assert.Equal(t, 15*time.Minute, cfg.RefreshInterval)

	t.Setenv("CLINIC_API_URL", "https://clinic.test")
	t.Setenv("SESSION_REFRESH_INTERVAL", "5m")

	cfg = LoadClientConfig(viper.New(), "/tmp/session.json")
	assert.Equal(t, "https://clinic.test", cfg.APIURL)
	assert.Equal(t, 5*time.Minute, cfg.RefreshInterval)
}
