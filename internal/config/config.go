package config

import (
	"log/slog"
	"os"
)

// ServerConfig holds all configuration values loaded from environment variables.
type ServerConfig struct {
	ServerHost  string
	ServerPort  string
	Token       string
	Prefork     bool
	RedisURL    string
	PostgresURL string
}

// LoadServerConfig loads configuration from environment variables.
func LoadServerConfig() *ServerConfig {
	return &ServerConfig{
		ServerHost:  getEnvMust("REVERSI_SERVER_HOST"),
		ServerPort:  getEnvMust("REVERSI_SERVER_PORT"),
		Token:       getEnvMust("REVERSI_SERVER_TOKEN"),
		Prefork:     getEnvMustBool("REVERSI_SERVER_PREFORK"),
		RedisURL:    os.Getenv("REVERSI_REDIS_URL"),
		PostgresURL: os.Getenv("REVERSI_POSTGRES_URL"),
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
	value := getEnvMust(key)

	if value != "true" && value != "false" {
		slog.Error("Cannot load environment variable, it must be \"true\" or \"false\"", "key", key, "value", value)
		os.Exit(1)
	}

	return value == "true"
}
