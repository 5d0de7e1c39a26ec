/*
Package config loads server settings from the environment.

PURPOSE:
  Environment variables, with a .env file honored when present, so the
  same binary runs in a field office (defaults) and behind a process
  manager (explicit env). Command-line flags in cmd/server override
  whatever is loaded here.

VARIABLES:
  APP_PORT   HTTP port                          (default 8080)
  APP_ENV    "development" or "production"      (default development)
  LOG_LEVEL  debug | info | warn | error        (default info)
  DB_PATH    SQLite database file, ":memory:"   (default wagecalc.db)
             for an ephemeral store
*/
package config

import (
	"fmt"
	"log/slog"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

type Config struct {
	Port     int
	Env      string
	LogLevel slog.Level
	DBPath   string
}

func Load() (*Config, error) {
	// A missing .env file is fine; the process environment still applies.
	_ = godotenv.Load()

	port, err := strconv.Atoi(getEnv("APP_PORT", "8080"))
	if err != nil {
		return nil, fmt.Errorf("invalid APP_PORT: %w", err)
	}

	level, err := parseLevel(getEnv("LOG_LEVEL", "info"))
	if err != nil {
		return nil, err
	}

	return &Config{
		Port:     port,
		Env:      getEnv("APP_ENV", "development"),
		LogLevel: level,
		DBPath:   getEnv("DB_PATH", "wagecalc.db"),
	}, nil
}

func parseLevel(s string) (slog.Level, error) {
	switch s {
	case "debug":
		return slog.LevelDebug, nil
	case "info":
		return slog.LevelInfo, nil
	case "warn":
		return slog.LevelWarn, nil
	case "error":
		return slog.LevelError, nil
	default:
		return 0, fmt.Errorf("invalid LOG_LEVEL %q", s)
	}
}

func getEnv(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}
