package config

import (
	"fmt"
	"net"
	"strconv"
	"time"

	"github.com/caarlos0/env/v11"
)

// Config is read from the environment. There are no command-line flags.
type Config struct {
	Host     string `env:"HOST" envDefault:"127.0.0.1"`
	Port     int    `env:"PORT" envDefault:"1337"`
	DataPath string `env:"DATA_PATH"`
	LogLevel string `env:"LOG_LEVEL" envDefault:"info"`

	MetricsEnabled bool   `env:"METRICS_ENABLED" envDefault:"false"`
	MetricsToken   string `env:"METRICS_TOKEN"`

	RateLimit       int           `env:"RATE_LIMIT" envDefault:"0"`
	RateLimitWindow time.Duration `env:"RATE_LIMIT_WINDOW" envDefault:"1m"`

	// Only set behind a proxy that overwrites X-Forwarded-For.
	TrustForwardedFor bool `env:"TRUST_FORWARDED_FOR" envDefault:"false"`
}

func Load() (Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, fmt.Errorf("parse env: %w", err)
	}
	if err := cfg.validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func (c Config) Addr() string {
	return net.JoinHostPort(c.Host, strconv.Itoa(c.Port))
}

func (c Config) validate() error {
	if c.Port < 0 || c.Port > 65535 {
		return fmt.Errorf("invalid PORT %d", c.Port)
	}
	if c.RateLimit < 0 {
		return fmt.Errorf("invalid RATE_LIMIT %d", c.RateLimit)
	}
	return nil
}
