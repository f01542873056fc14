package configs

import (
	"fmt"

	"github.com/caarlos0/env/v9"
)

type Config struct {
	APIBaseURL string `env:"API_BASE_URL"`
	SocketURL  string `env:"SOCKET_URL"`

	HTTPAddr string `env:"HTTP_ADDR" envDefault:":8081"`

	CompanyID string `env:"COMPANY_ID" envDefault:""`

	LogLevel string `env:"LOG_LEVEL" envDefault:"info"`
}

func LoadConfig() (Config, error) {
	var c Config
	if err := env.Parse(&c); err != nil {
		return Config{}, fmt.Errorf("config parse: %w", err)
	}
	// Both backends are externally injected; presence is the only check.
	if c.APIBaseURL == "" {
		return Config{}, fmt.Errorf("API_BASE_URL is required")
	}
	if c.SocketURL == "" {
		return Config{}, fmt.Errorf("SOCKET_URL is required")
	}
	return c, nil
}
