package config

import (
	"os"
	"strconv"
)

// DatabaseConfig holds PostgreSQL database connection settings.
type DatabaseConfig struct {
	Host               string
	Port               string
	User               string
	Password           string
	Name               string
	SSLMode            string
	MaxOpenConns       int
	MaxIdleConns       int
	ConnMaxLifetimeSec int
}

// MinIOConfig holds object storage settings. PublicBaseURL is the address the
// public site resolves asset URLs against (CDN or the store itself).
type MinIOConfig struct {
	Endpoint      string
	AccessKey     string
	SecretKey     string
	Bucket        string
	UseSSL        bool
	PublicBaseURL string
}

// AssetConfig holds the upload policies for the asset pipeline: size ceilings
// per path, retry/backoff parameters, and the per-attempt upload timeout.
// Values are env-sourced with hardcoded fallbacks but carried as data so tests
// and callers can inject their own.
type AssetConfig struct {
	MaxImageBytes    int64
	MaxResumeBytes   int64
	UploadTimeoutSec int
	MaxAttempts      int
	BaseBackoffMs    int
}

// RateLimitConfig configures the public-form rate limiter. RedisAddr empty
// means the in-process counter store is used.
type RateLimitConfig struct {
	Limit     int
	WindowSec int
	RedisAddr string
}

// AppConfig is the centralized configuration struct for the application.
// It is populated from environment variables. Sensitive values are not hardcoded.
type AppConfig struct {
	AppHost   string
	Port      string
	Database  DatabaseConfig
	MinIO     MinIOConfig
	Assets    AssetConfig
	RateLimit RateLimitConfig
}

// Load reads configuration from environment variables.
// A .env file can be auto-loaded by importing: _ "github.com/joho/godotenv/autoload"
// This function does not require a .env file; real environment variables take precedence.
func Load() *AppConfig {
	return &AppConfig{
		AppHost: getEnv("APP_HOST", "localhost:8080"),
		Port:    getEnv("PORT", "8080"), // default only for non-sensitive value
		Database: DatabaseConfig{
			Host:               getEnv("DB_HOST", ""),
			Port:               getEnv("DB_PORT", "5432"),
			User:               getEnv("DB_USER", ""),
			Password:           getEnv("DB_PASSWORD", ""),
			Name:               getEnv("DB_NAME", ""),
			SSLMode:            getEnv("DB_SSLMODE", "disable"),
			MaxOpenConns:       getEnvInt("DB_MAX_OPEN_CONNS", 10),
			MaxIdleConns:       getEnvInt("DB_MAX_IDLE_CONNS", 5),
			ConnMaxLifetimeSec: getEnvInt("DB_CONN_MAX_LIFETIME_SEC", 300),
		},
		MinIO: MinIOConfig{
			Endpoint:      getEnv("MINIO_ENDPOINT", ""),
			AccessKey:     getEnv("MINIO_ACCESS_KEY", ""),
			SecretKey:     getEnv("MINIO_SECRET_KEY", ""),
			Bucket:        getEnv("MINIO_BUCKET", ""),
			UseSSL:        getEnvBool("MINIO_USE_SSL", false),
			PublicBaseURL: getEnv("MINIO_PUBLIC_BASE_URL", ""),
		},
		Assets: AssetConfig{
			MaxImageBytes:    getEnvInt64("ASSET_MAX_IMAGE_BYTES", 5<<20),
			MaxResumeBytes:   getEnvInt64("ASSET_MAX_RESUME_BYTES", 1<<20),
			UploadTimeoutSec: getEnvInt("ASSET_UPLOAD_TIMEOUT_SEC", 120),
			MaxAttempts:      getEnvInt("ASSET_UPLOAD_MAX_ATTEMPTS", 3),
			BaseBackoffMs:    getEnvInt("ASSET_UPLOAD_BASE_BACKOFF_MS", 500),
		},
		RateLimit: RateLimitConfig{
			Limit:     getEnvInt("RATE_LIMIT_REQUESTS", 5),
			WindowSec: getEnvInt("RATE_LIMIT_WINDOW_SEC", 60),
			RedisAddr: getEnv("RATE_LIMIT_REDIS_ADDR", ""),
		},
	}
}

func getEnv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func getEnvBool(key string, def bool) bool {
	if v := os.Getenv(key); v != "" {
		b, err := strconv.ParseBool(v)
		if err == nil {
			return b
		}
	}
	return def
}

func getEnvInt(key string, def int) int {
	if v := os.Getenv(key); v != "" {
		i, err := strconv.Atoi(v)
		if err == nil {
			return i
		}
	}
	return def
}

func getEnvInt64(key string, def int64) int64 {
	if v := os.Getenv(key); v != "" {
		i, err := strconv.ParseInt(v, 10, 64)
		if err == nil {
			return i
		}
	}
	return def
}
