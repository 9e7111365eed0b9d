// internal/config/config.go
//
// Process configuration, parsed from the environment into a single struct.
// A .env file is loaded first when present (development convenience); real
// environment variables always win.

package config

import (
	"fmt"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

// Config holds every tunable the server and CLI read.
type Config struct {
	Port     string `env:"PORT" envDefault:"5175"`
	DBPath   string `env:"DB_PATH" envDefault:"./data/ciphermind.db"`
	LogLevel string `env:"LOG_LEVEL" envDefault:"info"`

	JWTSecret      string `env:"JWT_SECRET" envDefault:"dev_secret_change_me"`
	JWTExpiresDays int    `env:"JWT_EXPIRES_DAYS" envDefault:"14"`
	CookieName     string `env:"COOKIE_NAME" envDefault:"ciphermind_token"`
	ClientOrigin   string `env:"CLIENT_ORIGIN" envDefault:"http://localhost:5173"`

	DailySalt string `env:"DAILY_SALT" envDefault:"local_dev_salt"`

	// Production toggles Secure/SameSite=None cookie attributes.
	Production bool `env:"PRODUCTION"`
}

// Load reads an optional .env file, then parses the environment.
func Load() (Config, error) {
	_ = godotenv.Load()
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, fmt.Errorf("parse env: %w", err)
	}
	return cfg, nil
}
