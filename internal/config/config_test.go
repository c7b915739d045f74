package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// unsetEnv removes keys for the duration of the test. godotenv never
// overrides variables that exist, even when empty.
func unsetEnv(t *testing.T, keys ...string) {
	t.Helper()
	for _, k := range keys {
		t.Setenv(k, "")
		os.Unsetenv(k)
	}
}

var allKeys = []string{"PORT", "STORAGE_DRIVER", "DB_DRIVER", "REDIS_HOST", "KAFKA_BROKERS", "TIMEZONE", "RATE_LIMIT_REQUESTS", "RATE_LIMIT_WINDOW"}

func TestLoad(t *testing.T) {
	t.Run("Defaults", func(t *testing.T) {
		unsetEnv(t, allKeys...)

		cfg, err := Load(filepath.Join(t.TempDir(), "missing.env"))
		require.NoError(t, err)

		assert.Equal(t, "8080", cfg.Port)
		assert.Equal(t, StorageMemory, cfg.Storage)
		assert.Equal(t, "pgx", cfg.Postgres.Driver)
		assert.False(t, cfg.Redis.Enabled)
		assert.False(t, cfg.Kafka.Enabled())
		assert.Equal(t, time.UTC, cfg.Location)
		assert.Equal(t, 100, cfg.RateLimit.Limit)
		assert.Equal(t, time.Minute, cfg.RateLimit.Window)
	})

	t.Run("Reads .env file and environment", func(t *testing.T) {
		unsetEnv(t, allKeys...)
		envFile := filepath.Join(t.TempDir(), ".env")
		require.NoError(t, os.WriteFile(envFile, []byte("PORT=9090\nSTORAGE_DRIVER=SQLite\nKAFKA_BROKERS=k1:9092, k2:9092\n"), 0o600))
		t.Setenv("TIMEZONE", "Europe/Rome")

		cfg, err := Load(envFile)
		require.NoError(t, err)

		assert.Equal(t, "9090", cfg.Port)
		assert.Equal(t, StorageSQLite, cfg.Storage)
		assert.Equal(t, []string{"k1:9092", "k2:9092"}, cfg.Kafka.Brokers)
		assert.Equal(t, "Europe/Rome", cfg.Location.String())
	})

	t.Run("Rejects unknown storage", func(t *testing.T) {
		unsetEnv(t, allKeys...)
		t.Setenv("STORAGE_DRIVER", "mongo")
		_, err := Load(filepath.Join(t.TempDir(), "missing.env"))
		assert.ErrorIs(t, err, ErrInvalidConfig)
	})

	t.Run("Rejects malformed numbers", func(t *testing.T) {
		unsetEnv(t, allKeys...)
		t.Setenv("RATE_LIMIT_REQUESTS", "lots")
		_, err := Load(filepath.Join(t.TempDir(), "missing.env"))
		assert.ErrorIs(t, err, ErrInvalidConfig)
	})
}

func TestPostgresConfig_DSN(t *testing.T) {
	c := PostgresConfig{User: "u", Password: "p", Host: "db", Port: "5432", Name: "kanso"}
	assert.Equal(t, "postgres://u:p@db:5432/kanso?sslmode=disable", c.DSN())
}
