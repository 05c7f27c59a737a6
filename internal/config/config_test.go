package config_test

import (
	"testing"
	"time"

	"go-inova/internal/config"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	t.Setenv("JWT_SECRET", "secret")
	t.Setenv("NEWS_RETENTION_CAP", "")

	cfg, err := config.Load()
	require.NoError(t, err)

	assert.Equal(t, config.DefaultNewsRetentionCap, cfg.News.RetentionCap)
	assert.Equal(t, 9, cfg.News.HomeLimit)
	assert.Equal(t, 10*time.Minute, cfg.News.HomeCacheTTL)
	assert.False(t, cfg.App.IsProduction())
}

func TestLoad_RetentionCapFromEnv(t *testing.T) {
	t.Setenv("JWT_SECRET", "secret")
	t.Setenv("NEWS_RETENTION_CAP", "4")

	cfg, err := config.Load()
	require.NoError(t, err)
	assert.Equal(t, 4, cfg.News.RetentionCap)
}

func TestLoad_RejectsInvalidValues(t *testing.T) {
	t.Run("cap below one", func(t *testing.T) {
		t.Setenv("JWT_SECRET", "secret")
		t.Setenv("NEWS_RETENTION_CAP", "0")

		_, err := config.Load()
		assert.ErrorContains(t, err, "NEWS_RETENTION_CAP")
	})

	t.Run("missing jwt secret", func(t *testing.T) {
		t.Setenv("JWT_SECRET", "")
		t.Setenv("NEWS_RETENTION_CAP", "6")

		_, err := config.Load()
		assert.ErrorContains(t, err, "JWT_SECRET")
	})
}

func TestLoad_CORSOrigins(t *testing.T) {
	t.Setenv("JWT_SECRET", "secret")
	t.Setenv("CORS_ORIGINS", "https://a.example, https://b.example,")

	cfg, err := config.Load()
	require.NoError(t, err)
	assert.Equal(t, []string{"https://a.example", "https://b.example"}, cfg.App.CORSOrigins)
}
