package configs

import "time"

// Provider configures the client of the external view count API.
type Provider struct {
	BaseURL       string        `env:"BASE_URL" envDefault:"http://localhost:9090"`
	APIKey        string        `env:"API_KEY"`
	Timeout       time.Duration `env:"TIMEOUT" envDefault:"30s"`
	RatePerSecond float64       `env:"RATE_PER_SECOND" envDefault:"5"`
	Burst         int           `env:"BURST" envDefault:"5"`
}
