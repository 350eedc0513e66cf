package config

import (
	"fmt"
	"os"
	"strconv"

	"github.com/joho/godotenv"
	log "github.com/sirupsen/logrus"
)

// Config holds feed configuration loaded from environment variables.
type Config struct {
	// WarningCap bounds each aggregated warning category.
	WarningCap int

	// LogLevel is a logrus level name ("debug", "info", ...).
	LogLevel string
}

// Load reads configuration from environment variables. A .env file in the
// working directory is applied first when present; a missing file is fine.
func Load() (*Config, error) {
	_ = godotenv.Load()

	cfg := &Config{
		WarningCap: 10,
		LogLevel:   "info",
	}

	if v := os.Getenv("FEED_WARNING_CAP"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil || n <= 0 {
			return nil, fmt.Errorf("FEED_WARNING_CAP must be a positive integer, got %q", v)
		}
		cfg.WarningCap = n
	}

	if v := os.Getenv("FEED_LOG_LEVEL"); v != "" {
		if _, err := log.ParseLevel(v); err != nil {
			return nil, fmt.Errorf("invalid FEED_LOG_LEVEL %q: %w", v, err)
		}
		cfg.LogLevel = v
	}

	return cfg, nil
}

// Apply sets the process-wide log level from the configuration.
func (c *Config) Apply() {
	lvl, err := log.ParseLevel(c.LogLevel)
	if err != nil {
		lvl = log.InfoLevel
	}
	log.SetLevel(lvl)
}
