package main

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"time"

	"github.com/ClusterLabs/striker-testinput/pkg/config"
	"github.com/ClusterLabs/striker-testinput/pkg/logger"
	"github.com/ClusterLabs/striker-testinput/pkg/ratelimiter"
	"github.com/ClusterLabs/striker-testinput/pkg/requestid"
)

const serviceName = "striker-validate"

var errInvalidConfig = errors.New("invalid configuration")

type appConfig struct {
	Addr            string        `env:"STRIKER_ADDR" envDefault:":8080"`
	Env             string        `env:"STRIKER_ENV" envDefault:"development"`
	LogLevel        string        `env:"STRIKER_LOG_LEVEL" envDefault:"info"`
	ShutdownTimeout time.Duration `env:"STRIKER_SHUTDOWN_TIMEOUT" envDefault:"5s"`
	ReadTimeout     time.Duration `env:"STRIKER_READ_TIMEOUT" envDefault:"10s"`
	MaxBodyBytes    int64         `env:"STRIKER_MAX_BODY_BYTES" envDefault:"1048576"`

	// RateLimitBurst of 0 disables throttling.
	RateLimitBurst    int           `env:"STRIKER_RATE_LIMIT_BURST" envDefault:"30"`
	RateLimitInterval time.Duration `env:"STRIKER_RATE_LIMIT_INTERVAL" envDefault:"200ms"`
	PatternCacheSize  int           `env:"STRIKER_PATTERN_CACHE_SIZE" envDefault:"128"`
}

func loadConfig(envFiles []string) (appConfig, error) {
	var cfg appConfig
	if err := config.LoadEnv(envFiles...); err != nil {
		return cfg, err
	}
	if err := config.Load(&cfg); err != nil {
		return cfg, err
	}
	if cfg.Addr == "" || cfg.ReadTimeout <= 0 || cfg.ShutdownTimeout <= 0 {
		return cfg, fmt.Errorf("%w: address and timeouts must be set", errInvalidConfig)
	}
	if cfg.RateLimitBurst < 0 || (cfg.RateLimitBurst > 0 && cfg.RateLimitInterval <= 0) {
		return cfg, fmt.Errorf("%w: rate limit burst and interval", errInvalidConfig)
	}
	return cfg, nil
}

// newLimiter returns nil when throttling is disabled.
func newLimiter(cfg appConfig) (ratelimiter.Limiter, error) {
	if cfg.RateLimitBurst == 0 {
		return nil, nil
	}
	b, err := ratelimiter.NewBucket(ratelimiter.Config{
		Capacity:       cfg.RateLimitBurst,
		RefillRate:     1,
		RefillInterval: cfg.RateLimitInterval,
	})
	if err != nil {
		return nil, err
	}
	return b, nil
}

// newLogger applies the environment defaults first so an explicit level
// wins.
func newLogger(cfg appConfig) (*slog.Logger, error) {
	level, err := logger.ParseLevel(cfg.LogLevel)
	if err != nil {
		return nil, err
	}
	return logger.New(
		logger.WithEnvironment(config.Environment(cfg.Env), serviceName),
		logger.WithLevel(level),
		logger.WithOutput(os.Stderr),
		logger.WithContextExtractors(requestid.LoggerExtractor()),
	), nil
}
