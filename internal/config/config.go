package config

import (
	"fmt"
	"log"
	"os"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

// DevJWTSecret is used when JWT_SECRET is unset. Only fit for local runs.
const DevJWTSecret = "dev-secret-change-me"

type Config struct {
	Port       string        `env:"PORT" envDefault:"8000"`
	Origin     string        `env:"CORS_ORIGIN" envDefault:"http://localhost:3000"`
	JWTSecret  string        `env:"JWT_SECRET" envDefault:"dev-secret-change-me"`
	TokenTTL   time.Duration `env:"TOKEN_TTL" envDefault:"24h"`
	SeedFile   string        `env:"SEED_FILE"`
	BcryptCost int           `env:"BCRYPT_COST" envDefault:"10"`
	SMTP       SMTP
}

type SMTP struct {
	Host     string `env:"SMTP_HOST"`
	Port     int    `env:"SMTP_PORT" envDefault:"587"`
	Username string `env:"SMTP_USERNAME"`
	Password string `env:"SMTP_PASSWORD"`
	From     string `env:"SMTP_FROM"`
}

// LoadConfig reads an optional .env file and then the process environment.
func LoadConfig() (Config, error) {
	if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
		return Config{}, fmt.Errorf("load .env: %w", err)
	}
	return Parse()
}

// Parse reads configuration from the environment only.
func Parse() (Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, fmt.Errorf("parse env: %w", err)
	}
	if cfg.TokenTTL <= 0 {
		return Config{}, fmt.Errorf("TOKEN_TTL must be positive, got %s", cfg.TokenTTL)
	}
	if cfg.JWTSecret == DevJWTSecret {
		log.Printf("JWT_SECRET not set, using the development secret")
	}
	return cfg, nil
}
