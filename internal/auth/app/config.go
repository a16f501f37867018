package app

import (
	"os"
	"strconv"
	"time"
)

type Config struct {
	Issuer        string // Optional: issuer claim for tokens (default: lantern-auth)
	AccessSecret  string // Required: HMAC secret for access tokens
	RefreshSecret string // Required: HMAC secret for refresh tokens, must differ from AccessSecret

	AccessExpiresIn  string // Optional: access token lifetime, number + s/m/h/d (default: 15m)
	RefreshExpiresIn string // Optional: refresh token and session lifetime (default: 7d)

	SessionBackend string // Optional: session store backend (redis, sqlite) (default: redis)
	RedisAddr      string // Optional: Redis address (default: localhost:6379)
	RedisPassword  string // Optional: Redis password
	RedisDB        int    // Optional: Redis database index (default: 0)

	DatabaseFile        string        // Optional: path to SQLite database file (default: ./auth.db)
	Env                 string        // Environment (dev, staging, prod) (default: dev)
	LogLevel            string        // Log level (debug, info, warn, error) (default: info)
	LogFormat           string        // Log format (json, text) (default: json)
	Port                int           // HTTP server port (default: 8080)
	ShutdownGracePeriod time.Duration // Graceful shutdown timeout (default: 10s)
}

func LoadConfig() Config {
	return Config{
		Issuer:        getEnvOrDefault("AUTH_ISSUER", "lantern-auth"),
		AccessSecret:  os.Getenv("AUTH_ACCESS_SECRET"),
		RefreshSecret: os.Getenv("AUTH_REFRESH_SECRET"),

		AccessExpiresIn:  getEnvOrDefault("AUTH_ACCESS_EXPIRES_IN", "15m"),
		RefreshExpiresIn: getEnvOrDefault("AUTH_REFRESH_EXPIRES_IN", "7d"),

		SessionBackend: getEnvOrDefault("AUTH_SESSION_BACKEND", "redis"),
		RedisAddr:      getEnvOrDefault("REDIS_ADDR", "localhost:6379"),
		RedisPassword:  os.Getenv("REDIS_PASSWORD"),
		RedisDB:        getEnvIntOrDefault("REDIS_DB", 0),

		DatabaseFile:        getEnvOrDefault("AUTH_DATABASE_FILE", "auth.db"),
		Env:                 getEnvOrDefault("ENV", "dev"),
		LogLevel:            getEnvOrDefault("LOG_LEVEL", "info"),
		LogFormat:           getEnvOrDefault("LOG_FORMAT", "json"),
		Port:                getEnvIntOrDefault("PORT", 8080),
		ShutdownGracePeriod: getEnvDurationOrDefault("SHUTDOWN_GRACE_PERIOD", 10*time.Second),
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

	if duration, err := time.ParseDuration(value); err == nil {
		return duration
	}

	return defaultValue
}
