package config

import (
	"fmt"

	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
)

type Config struct {
	Port          string   `split_words:"true" default:"5000"`
	MongoURI      string   `envconfig:"MONGO_URI" default:"mongodb://localhost:27017"`
	MongoDB       string   `envconfig:"MONGO_DB" default:"healthbox"`
	JWTSecret     string   `envconfig:"JWT_SECRET" default:"healthbox-dev-secret"`
	RedisAddr     string   `split_words:"true"`
	PaymentAPIURL string   `envconfig:"PAYMENT_API_URL"`
	PaymentAPIKey string   `envconfig:"PAYMENT_API_KEY"`
	AllowOrigins  []string `split_words:"true" default:"http://localhost:5173,http://localhost:3000"`
	LogLevel      string   `split_words:"true" default:"info"`
}

// Load reads .env when present, then the process environment. Missing .env is
// fine in deployed environments where everything comes from real env vars.
func Load() (*Config, error) {
	_ = godotenv.Load()

	var cfg Config
	if err := envconfig.Process("", &cfg); err != nil {
		return nil, fmt.Errorf("failed to process environment: %w", err)
	}
	return &cfg, nil
}
