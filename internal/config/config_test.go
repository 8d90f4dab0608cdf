package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	t.Chdir(t.TempDir())
	t.Setenv("DATABASE_URL", "postgres://localhost/ts")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, "8080", cfg.Server.Port)
	assert.Equal(t, time.Hour, cfg.Session.TTL)
	assert.Equal(t, 15*time.Minute, cfg.Session.PurgeInterval)
	assert.Equal(t, []string{"http://localhost:3000"}, cfg.CORS.AllowedOrigins)
	assert.Equal(t, uint32(64*1024), cfg.Argon2.Memory)
	assert.True(t, cfg.Metrics)
	assert.True(t, cfg.Database.MigrateOnStart)
	assert.Empty(t, cfg.Redis.URL)
	assert.Empty(t, cfg.Admin.Secret)
	assert.Equal(t, "info", cfg.Log.Level)
}

func TestLoad_EnvOverrides(t *testing.T) {
	t.Chdir(t.TempDir())
	t.Setenv("DATABASE_URL", "postgres://localhost/ts")
	t.Setenv("PORT", "9000")
	t.Setenv("SESSION_TTL", "30m")
	t.Setenv("SESSION_PURGE_INTERVAL", "0s")
	t.Setenv("CORS_ALLOWED_ORIGINS", "https://a.example, https://b.example ,")
	t.Setenv("METRICS_ENABLED", "false")
	t.Setenv("LOG_FORMAT", "JSON")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, "9000", cfg.Server.Port)
	assert.Equal(t, 30*time.Minute, cfg.Session.TTL)
	assert.Zero(t, cfg.Session.PurgeInterval)
	assert.Equal(t, []string{"https://a.example", "https://b.example"}, cfg.CORS.AllowedOrigins)
	assert.False(t, cfg.Metrics)
	assert.Equal(t, "json", cfg.Log.Format)
}

func TestLoad_DotEnv(t *testing.T) {
	dir := t.TempDir()
	t.Chdir(dir)
	require.NoError(t, os.WriteFile(filepath.Join(dir, ".env"), []byte("ADMIN_SECRET=from-dotenv\n"), 0o600))
	t.Setenv("DATABASE_URL", "postgres://localhost/ts")
	t.Setenv("ADMIN_SECRET", "") // restored on cleanup
	require.NoError(t, os.Unsetenv("ADMIN_SECRET"))

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, "from-dotenv", cfg.Admin.Secret)
}

func TestLoad_Invalid(t *testing.T) {
	t.Chdir(t.TempDir())
	t.Setenv("DATABASE_URL", "postgres://localhost/ts")

	t.Setenv("SESSION_TTL", "forever")
	_, err := Load()
	assert.ErrorContains(t, err, "SESSION_TTL")

	t.Setenv("SESSION_TTL", "0s")
	_, err = Load()
	assert.Error(t, err)

	t.Setenv("SESSION_TTL", "1h")
	t.Setenv("CONFIG_FILE", "/does/not/exist.yaml")
	_, err = Load()
	assert.ErrorContains(t, err, "read config file")
}

func TestLoad_Argon2Range(t *testing.T) {
	t.Chdir(t.TempDir())
	t.Setenv("DATABASE_URL", "postgres://localhost/ts")

	t.Setenv("ARGON2_PARALLELISM", "255")
	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, uint8(255), cfg.Argon2.Parallelism)

	for key, val := range map[string]string{
		"ARGON2_PARALLELISM": "256",
		"ARGON2_MEMORY":      "4294967296",
		"ARGON2_ITERATIONS":  "0",
	} {
		t.Run(key, func(t *testing.T) {
			t.Setenv(key, val)
			_, err := Load()
			assert.ErrorContains(t, err, key)
		})
	}
}
