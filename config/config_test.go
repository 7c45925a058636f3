package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rodrigo-brito/pricebot/tools/log"
)

func TestLoad(t *testing.T) {
	t.Run("defaults", func(t *testing.T) {
		cfg, err := Load()
		require.NoError(t, err)

		assert.Equal(t, 30, cfg.Days)
		assert.Equal(t, int64(0), cfg.Seed)
		assert.Equal(t, StorageMemory, cfg.Storage)
		assert.Equal(t, log.InfoLevel, cfg.Level())
		assert.False(t, cfg.Settings().Telegram.Enabled)
	})

	t.Run("environment", func(t *testing.T) {
		t.Setenv("PRICEBOT_DAYS", "21")
		t.Setenv("PRICEBOT_SEED", "42")
		t.Setenv("PRICEBOT_STORAGE", "sql")
		t.Setenv("PRICEBOT_LOG_LEVEL", "debug")
		t.Setenv("PRICEBOT_CATALOG", "catalog.yml")
		t.Setenv("PRICEBOT_TELEGRAM_TOKEN", "token")
		t.Setenv("PRICEBOT_TELEGRAM_USERS", "10,20")

		cfg, err := Load()
		require.NoError(t, err)

		assert.Equal(t, "catalog.yml", cfg.Catalog)
		assert.Equal(t, StorageSQL, cfg.Storage)
		assert.Equal(t, log.DebugLevel, cfg.Level())

		settings := cfg.Settings()
		assert.Equal(t, 21, settings.Days)
		assert.Equal(t, int64(42), settings.Seed)
		assert.True(t, settings.Telegram.Enabled)
		assert.Equal(t, "token", settings.Telegram.Token)
		assert.Equal(t, []int{10, 20}, settings.Telegram.Users)
	})

	t.Run("invalid", func(t *testing.T) {
		t.Setenv("PRICEBOT_STORAGE", "redis")
		_, err := Load()
		assert.ErrorIs(t, err, ErrInvalidConfig)
	})

	t.Run("invalid number", func(t *testing.T) {
		t.Setenv("PRICEBOT_DAYS", "many")
		_, err := Load()
		assert.Error(t, err)
	})
}

func TestValidate(t *testing.T) {
	cfg := Config{Days: -1, Storage: StorageMemory, LogLevel: "info"}
	assert.ErrorIs(t, cfg.Validate(), ErrInvalidConfig)

	cfg = Config{Storage: StorageMemory, LogLevel: "loud"}
	assert.ErrorIs(t, cfg.Validate(), ErrInvalidConfig)
	assert.Equal(t, log.InfoLevel, cfg.Level())
}
