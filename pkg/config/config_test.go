package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	t.Setenv("APP_ENV", "")
	t.Setenv("DATABASE_URL", "")
	t.Setenv("PORTICO_SNAPSHOT_TIMEOUT", "")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "development", cfg.AppEnv)
	assert.True(t, cfg.IsDevelopment())
	assert.False(t, cfg.IsProduction())
	assert.Contains(t, cfg.DatabaseURL, "postgres://")
	assert.Equal(t, "en", cfg.Locale)
	assert.Equal(t, 15*time.Second, cfg.SnapshotTimeout)
	assert.NotEmpty(t, cfg.ConsentVersion)
	assert.NotEmpty(t, cfg.LocalStorePath)
}

func TestLoad_Overrides(t *testing.T) {
	t.Setenv("APP_ENV", "production")
	t.Setenv("PORTICO_USER_ID", "11111111-1111-1111-1111-111111111111")
	t.Setenv("PORTICO_LOCALE", "tr")
	t.Setenv("PORTICO_SNAPSHOT_TIMEOUT", "3s")
	t.Setenv("PORTICO_CONSENT_VERSION", "2025-01")

	cfg, err := Load()
	require.NoError(t, err)

	assert.True(t, cfg.IsProduction())
	assert.Equal(t, "11111111-1111-1111-1111-111111111111", cfg.UserID)
	assert.Equal(t, "tr", cfg.Locale)
	assert.Equal(t, 3*time.Second, cfg.SnapshotTimeout)
	assert.Equal(t, "2025-01", cfg.ConsentVersion)
}

func TestLoad_InvalidDurationFallsBack(t *testing.T) {
	t.Setenv("PORTICO_SNAPSHOT_TIMEOUT", "not-a-duration")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, 15*time.Second, cfg.SnapshotTimeout)
}
