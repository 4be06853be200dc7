package config_test

import (
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"movie-discovery/internal/config"
)

func TestLoadDefaults(t *testing.T) {
	cfg, err := config.Load()
	require.NoError(t, err)

	assert.Equal(t, "8080", cfg.Port)
	assert.Equal(t, 12, cfg.PageSize)
	assert.Equal(t, config.CatalogSourceFile, cfg.Catalog.Source)
	assert.Equal(t, config.StorageMemory, cfg.Storage.Backend)
	assert.Equal(t, config.ChatModeStatic, cfg.Chat.Mode)
	assert.Equal(t, 720*time.Hour, cfg.Auth.TokenTTL)
	assert.True(t, cfg.Auth.DemoMode)
	assert.Equal(t, slog.LevelInfo, cfg.LogLevel)
	assert.False(t, cfg.NeedsPostgres())
}

func TestLoadFromEnvironment(t *testing.T) {
	t.Setenv("SERVER_PORT", "9090")
	t.Setenv("PAGE_SIZE", "20")
	t.Setenv("STORAGE_BACKEND", "Redis")
	t.Setenv("CATALOG_SOURCE", "postgres")
	t.Setenv("LOG_LEVEL", "debug")
	t.Setenv("AUTH_DEMO_MODE", "false")

	cfg, err := config.Load()
	require.NoError(t, err)

	assert.Equal(t, "9090", cfg.Port)
	assert.Equal(t, 20, cfg.PageSize)
	assert.Equal(t, config.StorageRedis, cfg.Storage.Backend)
	assert.Equal(t, slog.LevelDebug, cfg.LogLevel)
	assert.False(t, cfg.Auth.DemoMode)
	assert.True(t, cfg.NeedsPostgres())
}

func TestLoadRejectsBadValues(t *testing.T) {
	tests := []struct {
		name  string
		key   string
		value string
	}{
		{name: "non-numeric page size", key: "PAGE_SIZE", value: "ten"},
		{name: "zero page size", key: "PAGE_SIZE", value: "0"},
		{name: "unknown storage", key: "STORAGE_BACKEND", value: "bolt"},
		{name: "unknown catalog source", key: "CATALOG_SOURCE", value: "s3"},
		{name: "bad ttl", key: "JWT_TTL", value: "forever"},
		{name: "llm without key", key: "CHAT_MODE", value: "llm"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Setenv(tt.key, tt.value)
			_, err := config.Load()
			assert.Error(t, err)
		})
	}
}

func TestDSN(t *testing.T) {
	d := config.DBConfig{Host: "db", Port: 5432, User: "u", Password: "p", DBName: "movies", SSLMode: "disable"}
	assert.Equal(t, "host=db port=5432 user=u password=p dbname=movies sslmode=disable", d.DSN())

	d.SSLRootCert = "/certs/ca.pem"
	assert.Contains(t, d.DSN(), "sslrootcert=/certs/ca.pem")
}
