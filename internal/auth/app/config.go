package app

import (
	"os"
	"strconv"
	"time"

	"github.com/varunai/backend/pkg/jwtx"
)

type Config struct {
	JWTSecret string // Required: HMAC signing secret for session tokens
	Issuer    string // Optional: issuer claim for tokens (default: varunai-backend)

	TokenTTL            time.Duration // Optional: session token lifetime (default: 24h)
	DatabaseFile        string        // Optional: path to SQLite database file (default: ./varunai.db)
	BasePath            string        // Optional: API path prefix the client targets (default: /api/v1)
	Env                 string        // Environment (dev, staging, prod) (default: dev)
	LogLevel            string        // Log level (debug, info, warn, error) (default: info)
	LogFormat           string        // Log format (json, text) (default: json)
	Port                int           // HTTP server port (default: 5000)
	ShutdownGracePeriod time.Duration // Graceful shutdown timeout (default: 10s)
	RequestTimeout      time.Duration // Per-request deadline for store/hashing work (default: 10s)
}

func LoadConfig() Config {
	return Config{
		JWTSecret:           os.Getenv("AUTH_JWT_SECRET"),
		Issuer:              getEnvOrDefault("AUTH_ISSUER", "varunai-backend"),
		TokenTTL:            getEnvDurationOrDefault("AUTH_TOKEN_TTL", jwtx.DefaultSessionTTL),
		DatabaseFile:        getEnvOrDefault("AUTH_DATABASE_FILE", "varunai.db"),
		BasePath:            getEnvOrDefault("AUTH_BASE_PATH", "/api/v1"),
		Env:                 getEnvOrDefault("ENV", "dev"),
		LogLevel:            getEnvOrDefault("LOG_LEVEL", "info"),
		LogFormat:           getEnvOrDefault("LOG_FORMAT", "json"),
		Port:                getEnvIntOrDefault("PORT", 5000),
		ShutdownGracePeriod: getEnvDurationOrDefault("SHUTDOWN_GRACE_PERIOD", 10*time.Second),
		RequestTimeout:      getEnvDurationOrDefault("REQUEST_TIMEOUT", 10*time.Second),
	}
}

func getEnvOrDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvIntOrDefault(key string, defaultValue int) int {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}

	if intValue, err := strconv.Atoi(value); err == nil {
		return intValue
	}

	return defaultValue
}

func getEnvDurationOrDefault(key string, defaultValue time.Duration) time.Duration {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}

	// Try parsing as duration (e.g., "24h", "30m", "90s")
	if duration, err := time.ParseDuration(value); err == nil {
		return duration
	}

	// Try parsing as integer minutes (for backwards compatibility)
	if minutes, err := strconv.Atoi(value); err == nil {
		return time.Duration(minutes) * time.Minute
	}

	return defaultValue
}
