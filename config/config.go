package config

import (
	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
)

// Config is everything the process takes from the environment. The room state
// itself is memory-resident and needs no configuration.
type Config struct {
	Port       string `envconfig:"PORT" default:"8080"`
	CorsOrigin string `envconfig:"CORS_ORIGIN" default:"*"`
	Prod       bool   `envconfig:"PROD" default:"false"`
}

// Load reads .env (if present) and then the process environment.
func Load() (*Config, error) {
	godotenv.Load()

	var cfg Config
	if err := envconfig.Process("", &cfg); err != nil {
		return nil, err
	}
	return &cfg, nil
}
