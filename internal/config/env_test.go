package config

import (
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseEnv_AllGroups(t *testing.T) {
	t.Setenv("APP_VERSION", "2.0.0")
	t.Setenv("APP_LOG_FILE", "/tmp/driver.log")
	t.Setenv("STORAGE_DB_DATABASE_URI", "postgres://env")
	t.Setenv("STORAGE_LOCAL_PATH", "/tmp/prefs.db")
	t.Setenv("SERVER_ADDRESS", "0.0.0.0:9090")
	t.Setenv("SERVER_REQUEST_TIMEOUT", "20s")
	t.Setenv("SERVER_ALLOWED_ORIGINS", "https://a.example.com,https://b.example.com")
	t.Setenv("ADAPTER_REST_URL", "https://db.example.com/rest/v1")
	t.Setenv("ADAPTER_JWT_SECRET", "s3cret")
	t.Setenv("ADAPTER_ROLE", "driver")
	t.Setenv("WORKERS_LISTEN_CHANNEL", "chan")
	t.Setenv("WORKERS_RETRY_INITIAL_INTERVAL", "1s")
	t.Setenv("WORKERS_RETRY_MAX_INTERVAL", "10s")
	t.Setenv("CONFIG", "/etc/fleet.json")

	cfg := &StructuredConfig{}
	require.NoError(t, parseEnv(cfg))

	assert.Equal(t, "2.0.0", cfg.App.Version)
	assert.Equal(t, "/tmp/driver.log", cfg.App.LogFile)
	assert.Equal(t, "postgres://env", cfg.Storage.DB.DSN)
	assert.Equal(t, "/tmp/prefs.db", cfg.Storage.Local.Path)
	assert.Equal(t, "0.0.0.0:9090", cfg.Server.HTTPAddress)
	assert.Equal(t, 20*time.Second, cfg.Server.RequestTimeout)
	assert.Equal(t, []string{"https://a.example.com", "https://b.example.com"}, cfg.Server.AllowedOrigins)
	assert.Equal(t, "https://db.example.com/rest/v1", cfg.Adapter.RESTURL)
	assert.Equal(t, "s3cret", cfg.Adapter.JWTSecret)
	assert.Equal(t, "driver", cfg.Adapter.Role)
	assert.Equal(t, "chan", cfg.Workers.ListenChannel)
	assert.Equal(t, time.Second, cfg.Workers.RetryInitialInterval)
	assert.Equal(t, 10*time.Second, cfg.Workers.RetryMaxInterval)
	assert.Equal(t, "/etc/fleet.json", cfg.JSONFilePath)
}

func TestParseEnv_InvalidDuration(t *testing.T) {
	t.Setenv("SERVER_REQUEST_TIMEOUT", "soon")

	err := parseEnv(&StructuredConfig{})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "error getting env configs")
}

func TestParseEnv_PlatformAliases(t *testing.T) {
	t.Setenv("STORAGE_DB_DATABASE_URI", "")
	os.Unsetenv("STORAGE_DB_DATABASE_URI")
	t.Setenv("DATABASE_URL", "postgres://platform")
	t.Setenv("POSTGREST_URL", "https://rest.example.com")
	t.Setenv("ADAPTER_JWT_SECRET", "own")
	t.Setenv("PGRST_JWT_SECRET", "platform")

	cfg := &StructuredConfig{}
	require.NoError(t, parseEnv(cfg))

	assert.Equal(t, "postgres://platform", cfg.Storage.DB.DSN)
	assert.Equal(t, "https://rest.example.com", cfg.Adapter.RESTURL)
	assert.Equal(t, "own", cfg.Adapter.JWTSecret, "own name wins over the alias")
}

func TestResolveAliases(t *testing.T) {
	got := resolveAliases(map[string]string{
		"DATABASE_URL":            "postgres://alias",
		"STORAGE_DB_DATABASE_URI": "postgres://own",
		"POSTGREST_URL":           "https://rest",
	})

	assert.Equal(t, "postgres://own", got["STORAGE_DB_DATABASE_URI"])
	assert.Equal(t, "https://rest", got["ADAPTER_REST_URL"])
	_, ok := got["ADAPTER_JWT_SECRET"]
	assert.False(t, ok)
}
