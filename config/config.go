package config

import (
	"errors"
	"fmt"
	"log"
	"os"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
)

const (
	defaultPort       = "8080"
	defaultSessionTTL = 24 * time.Hour
	devSessionSecret  = "dev-session-secret"
)

type AppConfig struct {
	Port          string
	GinMode       string
	SessionSecret string
	SessionTTL    time.Duration
	SweepInterval time.Duration
}

// Load reads configuration from the environment, after loading .env when one
// is present.
func Load() (*AppConfig, error) {
	if err := godotenv.Load(); err != nil && !errors.Is(err, os.ErrNotExist) {
		log.Printf("Could not read .env file: %v", err)
	}

	cfg := &AppConfig{
		Port:          os.Getenv("PORT"),
		GinMode:       os.Getenv("GIN_MODE"),
		SessionSecret: os.Getenv("SESSION_SECRET"),
		SessionTTL:    defaultSessionTTL,
	}
	if cfg.Port == "" {
		cfg.Port = defaultPort
	}
	if cfg.GinMode == "" {
		cfg.GinMode = gin.DebugMode
	}

	if raw := os.Getenv("SESSION_TTL"); raw != "" {
		ttl, err := time.ParseDuration(raw)
		if err != nil {
			return nil, fmt.Errorf("parse SESSION_TTL: %w", err)
		}
		if ttl < 0 {
			return nil, fmt.Errorf("SESSION_TTL must not be negative, got %s", raw)
		}
		cfg.SessionTTL = ttl
	}
	cfg.SweepInterval = cfg.SessionTTL / 4
	if cfg.SweepInterval <= 0 || cfg.SweepInterval > time.Hour {
		cfg.SweepInterval = time.Hour
	}

	if cfg.SessionSecret == "" {
		if cfg.GinMode == gin.ReleaseMode {
			return nil, errors.New("SESSION_SECRET is required in release mode")
		}
		log.Printf("SESSION_SECRET not set, using development secret")
		cfg.SessionSecret = devSessionSecret
	}
	return cfg, nil
}
