package config

import (
	"log/slog"
	"os"
	"strings"
	"time"
)

const (
	SessionTTL   = 7 * 24 * time.Hour
	MaxUndoDepth = 500
)

// ServerConfig holds all configuration values loaded from environment variables.
type ServerConfig struct {
	ServerHost        string
	ServerPort        string
	RedisURL          string
	PostgresURL       string
	BasicAuthUsername string
	BasicAuthPassword string
	Token             string
	Prefork           bool
	CORSOrigins       string
}

// LoadServerConfig loads configuration from environment variables.
// Redis and Postgres are optional: without them games live in memory and are not archived.
func LoadServerConfig() *ServerConfig {
	return &ServerConfig{
		ServerHost:        getEnvMust("CHECKERS_SERVER_HOST"),
		ServerPort:        getEnvMust("CHECKERS_SERVER_PORT"),
		RedisURL:          getEnv("CHECKERS_REDIS_URL", ""),
		PostgresURL:       getEnv("CHECKERS_POSTGRES_URL", ""),
		BasicAuthUsername: getEnvMust("CHECKERS_BASIC_AUTH_USER"),
		BasicAuthPassword: getEnvMust("CHECKERS_BASIC_AUTH_PASS"),
		Token:             getEnvMust("CHECKERS_TOKEN"),
		Prefork:           getEnvMustBool("CHECKERS_PREFORK"),
		CORSOrigins:       getEnv("CHECKERS_CORS_ORIGINS", "*"),
	}
}

// getEnvMust either returns the environment variable or logs a fatal error if it is not set.
func getEnvMust(key string) string {
	value := os.Getenv(key)
	if value == "" {
		slog.Error("Environment variable is not set", "key", key)
		os.Exit(1)
	}
	return value
}

func getEnvMustBool(key string) bool {
	value := strings.ToLower(getEnvMust(key))

	if value != "true" && value != "false" {
		slog.Error("Cannot load environment variable, it must be \"true\" or \"false\"", "key", key, "value", value)
		os.Exit(1)
	}

	return value == "true"
}

func getEnv(key, def string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return def
}
