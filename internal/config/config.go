package config

import (
	"os"
	"time"

	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"
)

// Config holds the application configuration.
type Config struct {
	Addr          string
	ChatRetention time.Duration
	LogLevel      string
}

// Load loads configuration from environment variables.
func Load() *Config {
	// Load .env file if it exists (useful for local development)
	if err := godotenv.Load(); err != nil {
		logrus.Debug("no .env file found, using environment variables")
	}

	addr := os.Getenv("ADDR")
	if addr == "" {
		addr = ":3000"
	}

	retention := 30 * time.Second
	if raw := os.Getenv("CHAT_RETENTION"); raw != "" {
		if parsed, err := time.ParseDuration(raw); err == nil {
			retention = parsed
		} else {
			logrus.Warnf("invalid CHAT_RETENTION %q, keeping %s", raw, retention)
		}
	}

	level := os.Getenv("LOG_LEVEL")
	if level == "" {
		level = "info"
	}

	return &Config{
		Addr:          addr,
		ChatRetention: retention,
		LogLevel:      level,
	}
}
