package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func isolateConfigDir(t *testing.T) {
	t.Helper()
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())
}

func TestLoadConfigDefaults(t *testing.T) {
	isolateConfigDir(t)

	cfg, err := LoadConfig()
	require.NoError(t, err, "a missing config file is not an error")

	assert.Equal(t, "https://api.themoviedb.org/3", cfg.Catalog.BaseURL)
	assert.Equal(t, "https://image.tmdb.org/t/p", cfg.Catalog.ImageBaseURL)
	assert.Empty(t, cfg.Catalog.APIKey, "no API key ships as a default")
	assert.Equal(t, "info", cfg.Logging.Level)
	assert.False(t, cfg.IsConfigured())
}

func TestLoadConfigFromEnvironment(t *testing.T) {
	isolateConfigDir(t)
	t.Setenv("TMDB_API_KEY", "env-key")
	t.Setenv("DATABASE_URL", "postgres://example/db")
	t.Setenv("FLIX_USER_ID", "user-42")

	cfg, err := LoadConfig()
	require.NoError(t, err)

	assert.Equal(t, "env-key", cfg.Catalog.APIKey)
	assert.Equal(t, "postgres://example/db", cfg.Database.DSN)
	assert.Equal(t, "user-42", cfg.Database.UserID)
	assert.True(t, cfg.IsConfigured())
}

func TestSaveAndReloadConfig(t *testing.T) {
	isolateConfigDir(t)

	cfg, err := LoadConfig()
	require.NoError(t, err)
	cfg.Catalog.APIKey = "saved-key"
	cfg.Database.DSN = "postgres://example/flix"
	require.NoError(t, SaveConfig(cfg))

	reloaded, err := LoadConfig()
	require.NoError(t, err)
	assert.Equal(t, "saved-key", reloaded.Catalog.APIKey)
	assert.Equal(t, "postgres://example/flix", reloaded.Database.DSN)
	assert.True(t, reloaded.IsConfigured())
}
