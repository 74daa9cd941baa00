package config

import (
	"errors"
	"fmt"
	"os"
	"time"
)

var ErrSecretRequired = errors.New("JWT_SECRET is required and has no default")

type Config struct {
	Port      string
	Env       string
	DBDriver  string
	DBDSN     string
	JWTSecret string
	JWTExpiry time.Duration
}

// Load reads configuration from environment variables. The signing secret
// has no fallback: a missing JWT_SECRET is a startup error, never a silent
// default.
func Load() (Config, error) {
	cfg := Config{
		Port:      getEnv("PORT", "8080"),
		Env:       getEnv("ENV", "development"),
		DBDriver:  getEnv("DB_DRIVER", "sqlite"),
		DBDSN:     getEnv("DB_DSN", "taskboard.db"),
		JWTSecret: os.Getenv("JWT_SECRET"),
		JWTExpiry: time.Hour,
	}

	if cfg.JWTSecret == "" {
		return Config{}, ErrSecretRequired
	}

	if raw := os.Getenv("JWT_EXPIRES_IN"); raw != "" {
		expiry, err := time.ParseDuration(raw)
		if err != nil || expiry <= 0 {
			return Config{}, fmt.Errorf("invalid JWT_EXPIRES_IN %q", raw)
		}
		cfg.JWTExpiry = expiry
	}

	if cfg.DBDriver != "sqlite" && cfg.DBDriver != "mysql" {
		return Config{}, fmt.Errorf("unsupported DB_DRIVER %q", cfg.DBDriver)
	}

	return cfg, nil
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
