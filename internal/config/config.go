package config

import (
	"os"
	"path/filepath"
	"time"

	"github.com/joho/godotenv"
)

// Config holds process configuration. Values come from the environment,
// optionally seeded from a .env file in the working directory.
type Config struct {
	// DBPath is the SQLite database location.
	DBPath string
	// DefaultUser is the user id commands act as when --user is not
	// given.
	DefaultUser string
	// Environment selects the logging profile.
	Environment string
	// PreviewTTL bounds how long an unconfirmed plan preview survives.
	PreviewTTL time.Duration
}

// Load reads configuration from the environment. A missing .env file is
// not an error.
func Load() (*Config, error) {
	_ = godotenv.Load(".env")

	cfg := &Config{
		DBPath:      os.Getenv("STUDYWEAVE_DB"),
		DefaultUser: os.Getenv("STUDYWEAVE_USER"),
		Environment: os.Getenv("ENV"),
		PreviewTTL:  0,
	}

	if cfg.DBPath == "" {
		cfg.DBPath = defaultDBPath()
	}
	if cfg.DefaultUser == "" {
		cfg.DefaultUser = "default"
	}
	if cfg.Environment == "" {
		cfg.Environment = "development"
	}
	if raw := os.Getenv("STUDYWEAVE_PREVIEW_TTL"); raw != "" {
		ttl, err := time.ParseDuration(raw)
		if err != nil {
			return nil, err
		}
		cfg.PreviewTTL = ttl
	}

	return cfg, nil
}

func defaultDBPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return "studyweave.db"
	}
	return filepath.Join(home, ".studyweave", "studyweave.db")
}
