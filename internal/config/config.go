package config

import (
	"fmt"
	"time"

	"github.com/kelseyhightower/envconfig"
)

type Config struct {
	App struct {
		Name string `envconfig:"APP_NAME" default:"voltara-merchant-api"`
		Port int    `envconfig:"PORT" default:"8080"`
	}

	DB struct {
		Host     string `envconfig:"DB_HOST" default:"localhost"`
		Port     int    `envconfig:"DB_PORT" default:"5432"`
		User     string `envconfig:"DB_USER" default:"postgres"`
		Password string `envconfig:"DB_PASSWORD" default:""`
		Name     string `envconfig:"DB_NAME" default:"voltara"`
	}

	Server struct {
		Timeout time.Duration `envconfig:"SERVER_TIMEOUT" default:"30s"`
	}

	Auth struct {
		JWTSecret string `envconfig:"JWT_SECRET"`
	}

	Gateway struct {
		PixBaseURL    string        `envconfig:"PIX_GATEWAY_URL" default:"https://pix.gateway.local"`
		CardBaseURL   string        `envconfig:"CARD_GATEWAY_URL" default:"https://cards.gateway.local"`
		APIKey        string        `envconfig:"GATEWAY_API_KEY"`
		WebhookSecret string        `envconfig:"GATEWAY_WEBHOOK_SECRET"`
		Timeout       time.Duration `envconfig:"GATEWAY_TIMEOUT" default:"15s"`
	}

	Uploads struct {
		Dir      string `envconfig:"UPLOADS_DIR" default:"./uploads"`
		MaxBytes int64  `envconfig:"UPLOADS_MAX_BYTES" default:"5242880"`
	}
}

func (c *Config) ConnectionString() string {
	return fmt.Sprintf("postgres://%s:%s@%s:%d/%s?sslmode=disable",
		c.DB.User, c.DB.Password, c.DB.Host, c.DB.Port, c.DB.Name)
}

func Load() (*Config, error) {
	var cfg Config
	if err := envconfig.Process("", &cfg); err != nil {
		return nil, fmt.Errorf("failed to process config: %w", err)
	}

	return &cfg, nil
}
