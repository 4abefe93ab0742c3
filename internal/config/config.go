package config

import (
	"log"
	"time"

	"github.com/caarlos0/env"
	"github.com/joho/godotenv"
)

// Config carries the runtime settings of the back-office client.
type Config struct {
	BaseURL        string `env:"API_BASE_URL" envDefault:"http://localhost:8000"`
	TimeoutMS      int    `env:"API_TIMEOUT_MS" envDefault:"30000"`
	EnableAPI      bool   `env:"ENABLE_API" envDefault:"true"`
	CredentialPath string `env:"CREDENTIAL_STORE_PATH" envDefault:".backoffice/credentials.db"`
	LocalStorePath string `env:"LOCAL_STORE_PATH" envDefault:".backoffice/local.db"`
	LogMode        string `env:"LOG_MODE" envDefault:"development"`
	LogFile        string `env:"LOG_FILE"`
}

// Load reads .env (when present) and parses the environment.
func Load() (*Config, error) {
	if err := godotenv.Load(); err != nil {
		log.Println("Warning: .env file not found")
	}
	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Timeout returns the per-request budget.
func (c *Config) Timeout() time.Duration {
	return time.Duration(c.TimeoutMS) * time.Millisecond
}
