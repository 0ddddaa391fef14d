package config_test

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/lexicon/internal/config"
)

func TestLoad_Defaults(t *testing.T) {
	cfg, err := config.Load(filepath.Join(t.TempDir(), "missing.env"))
	require.NoError(t, err)

	require.Equal(t, config.SourceDir, cfg.I18n.Source)
	require.Equal(t, "translations", cfg.I18n.Dir)
	require.Equal(t, "en", cfg.I18n.FallbackLocale)
	require.Equal(t, ":8080", cfg.HTTP.Address)
	require.Equal(t, 30*time.Second, cfg.HTTP.ShutdownTimeout)
	require.Equal(t, "info", cfg.Log.Level)
	require.False(t, cfg.Redis.Enabled())
	require.Equal(t, 10, cfg.Redis.PoolSize)
}

func TestLoad_EnvFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "test.env")
	require.NoError(t, os.WriteFile(path, []byte(
		"TRANSLATIONS_DIR=/srv/translations\nFALLBACK_LOCALE=de\nHTTP_ADDR=:9090\nREDIS_URL=redis://cache:6379/1\n",
	), 0o600))
	t.Setenv("FALLBACK_LOCALE", "pl")
	t.Cleanup(func() {
		for _, k := range []string{"TRANSLATIONS_DIR", "HTTP_ADDR", "REDIS_URL"} {
			_ = os.Unsetenv(k)
		}
	})

	cfg, err := config.Load(path)
	require.NoError(t, err)

	require.Equal(t, "/srv/translations", cfg.I18n.Dir)
	require.Equal(t, "pl", cfg.I18n.FallbackLocale)
	require.Equal(t, ":9090", cfg.HTTP.Address)
	require.True(t, cfg.Redis.Enabled())
}

func TestLoad_Invalid(t *testing.T) {
	missing := filepath.Join(t.TempDir(), "missing.env")

	t.Run("unknown source", func(t *testing.T) {
		t.Setenv("TRANSLATIONS_SOURCE", "ftp")
		_, err := config.Load(missing)
		require.ErrorIs(t, err, config.ErrInvalidConfig)
	})

	t.Run("s3 without bucket", func(t *testing.T) {
		t.Setenv("TRANSLATIONS_SOURCE", config.SourceS3)
		_, err := config.Load(missing)
		require.ErrorIs(t, err, config.ErrInvalidConfig)
	})

	t.Run("postgres without url", func(t *testing.T) {
		t.Setenv("TRANSLATIONS_SOURCE", config.SourcePostgres)
		_, err := config.Load(missing)
		require.ErrorIs(t, err, config.ErrInvalidConfig)
	})

	t.Run("malformed duration", func(t *testing.T) {
		t.Setenv("HTTP_READ_TIMEOUT", "soon")
		_, err := config.Load(missing)
		require.ErrorIs(t, err, config.ErrInvalidConfig)
	})
}
