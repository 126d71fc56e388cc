package config

import (
	"fmt"
	"time"

	"github.com/ilyakaznacheev/cleanenv"
)

// Config is read from the environment (a .env file is loaded first by main).
type Config struct {
	Port            string        `env:"PORT" env-default:"8080"`
	DatabaseURL     string        `env:"DATABASE_URL" env-default:"sqlite://promptdeck.db"`
	UpstreamURL     string        `env:"UPSTREAM_URL" env-default:"http://localhost:5000"`
	UpstreamTimeout time.Duration `env:"UPSTREAM_TIMEOUT" env-default:"10s"`
	CORSOrigin      string        `env:"CORS_ORIGIN" env-default:"*"`
	AdminToken      string        `env:"X_ADMIN_TOKEN"`
	PromptCacheSize int           `env:"PROMPT_CACHE_SIZE" env-default:"256"`
	RefreshInterval time.Duration `env:"TRENDING_REFRESH_INTERVAL" env-default:"30s"`
	RateLimitRPS    float64       `env:"RATE_LIMIT_RPS" env-default:"5"`
	RateLimitBurst  int           `env:"RATE_LIMIT_BURST" env-default:"10"`
}

func Load() (Config, error) {
	var cfg Config
	if err := cleanenv.ReadEnv(&cfg); err != nil {
		return Config{}, fmt.Errorf("read config from env: %w", err)
	}
	if cfg.PromptCacheSize <= 0 {
		return Config{}, fmt.Errorf("PROMPT_CACHE_SIZE must be positive, got %d", cfg.PromptCacheSize)
	}
	return cfg, nil
}
