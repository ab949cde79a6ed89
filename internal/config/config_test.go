package config

import (
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLoad(t *testing.T) {
	// Save current env and restore later
	origHost := os.Getenv("DB_HOST")
	defer os.Setenv("DB_HOST", origHost)

	os.Setenv("DB_HOST", "test-host")
	os.Setenv("DB_MAX_OPEN_CONNS", "20")
	os.Setenv("MINIO_USE_SSL", "true")
	os.Setenv("ASSET_MAX_IMAGE_BYTES", "1048576")
	os.Setenv("RATE_LIMIT_REQUESTS", "3")
	defer func() {
		os.Unsetenv("DB_MAX_OPEN_CONNS")
		os.Unsetenv("MINIO_USE_SSL")
		os.Unsetenv("ASSET_MAX_IMAGE_BYTES")
		os.Unsetenv("RATE_LIMIT_REQUESTS")
	}()

	cfg := Load()

	assert.Equal(t, "test-host", cfg.Database.Host)
	assert.Equal(t, 20, cfg.Database.MaxOpenConns)
	assert.True(t, cfg.MinIO.UseSSL)
	assert.Equal(t, int64(1048576), cfg.Assets.MaxImageBytes)
	assert.Equal(t, 3, cfg.RateLimit.Limit)
}

func TestLoadDefaults(t *testing.T) {
	os.Unsetenv("ASSET_MAX_IMAGE_BYTES")
	os.Unsetenv("ASSET_MAX_RESUME_BYTES")
	os.Unsetenv("ASSET_UPLOAD_MAX_ATTEMPTS")

	cfg := Load()

	assert.Equal(t, int64(5<<20), cfg.Assets.MaxImageBytes)
	assert.Equal(t, int64(1<<20), cfg.Assets.MaxResumeBytes)
	assert.Equal(t, 3, cfg.Assets.MaxAttempts)
	assert.Equal(t, 120, cfg.Assets.UploadTimeoutSec)
	assert.Equal(t, 500, cfg.Assets.BaseBackoffMs)
}

func TestGetEnv(t *testing.T) {
	key := "TEST_ENV_VAR"
	os.Setenv(key, "value")
	defer os.Unsetenv(key)

	assert.Equal(t, "value", getEnv(key, "default"))
	assert.Equal(t, "default", getEnv("NON_EXISTENT", "default"))
}

func TestGetEnvBool(t *testing.T) {
	key := "TEST_BOOL_VAR"

	os.Setenv(key, "true")
	assert.True(t, getEnvBool(key, false))

	os.Setenv(key, "false")
	assert.False(t, getEnvBool(key, true))

	os.Setenv(key, "invalid")
	assert.True(t, getEnvBool(key, true))

	os.Unsetenv(key)
	assert.True(t, getEnvBool(key, true))
}

func TestGetEnvInt(t *testing.T) {
	key := "TEST_INT_VAR"

	os.Setenv(key, "123")
	assert.Equal(t, 123, getEnvInt(key, 0))

	os.Setenv(key, "invalid")
	assert.Equal(t, 10, getEnvInt(key, 10))

	os.Unsetenv(key)
	assert.Equal(t, 10, getEnvInt(key, 10))
}

func TestGetEnvInt64(t *testing.T) {
	key := "TEST_INT64_VAR"

	os.Setenv(key, "5242880")
	assert.Equal(t, int64(5242880), getEnvInt64(key, 0))

	os.Setenv(key, "invalid")
	assert.Equal(t, int64(7), getEnvInt64(key, 7))

	os.Unsetenv(key)
	assert.Equal(t, int64(7), getEnvInt64(key, 7))
}
