package config_test

import (
	"testing"
	"time"

	"go-hrpms/internal/config"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setRequired(t *testing.T) {
	t.Setenv("DB_USER", "hr")
	t.Setenv("DB_NAME", "pms")
	t.Setenv("JWT_SECRET", "secret")
}

func TestLoad(t *testing.T) {
	t.Run("defaults", func(t *testing.T) {
		setRequired(t)

		cfg, err := config.Load()

		require.NoError(t, err)
		assert.Equal(t, "3000", cfg.Port)
		assert.Equal(t, "disable", cfg.Database.SSLMode)
		assert.Equal(t, 8*time.Hour, cfg.TokenTTL)
		assert.Equal(t, "@every 5m", cfg.InsightsRefreshSpec)
		assert.False(t, cfg.IsProduction())
		assert.Contains(t, cfg.Database.DSN(), "dbname=pms")
	})

	t.Run("missing jwt secret", func(t *testing.T) {
		setRequired(t)
		t.Setenv("JWT_SECRET", "")

		_, err := config.Load()

		assert.Error(t, err)
	})

	t.Run("missing database credentials", func(t *testing.T) {
		setRequired(t)
		t.Setenv("DB_USER", "")

		_, err := config.Load()

		assert.Error(t, err)
	})

	t.Run("invalid token ttl", func(t *testing.T) {
		setRequired(t)
		t.Setenv("TOKEN_TTL", "soon")

		_, err := config.Load()

		assert.Error(t, err)
	})
}
