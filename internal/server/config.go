package server

import (
	"time"

	"github.com/hostinfo/hostwiki/pkg/log"
)

const (
	defaultAddr            = "127.0.0.1:8089"
	defaultShutdownTimeout = time.Second * 10
	defaultBodyLimit       = "1M"
)

type Option func(Config) Config

func WithAddr(addr string) Option {
	return func(cfg Config) Config {
		if addr != "" {
			cfg.addr = addr
		}

		return cfg
	}
}

func WithShutdownTimeout(timeout time.Duration) Option {
	return func(cfg Config) Config {
		if timeout > 0 {
			cfg.shutdownTimeout = timeout
		}

		return cfg
	}
}

func WithLogger(logger log.Logger) Option {
	return func(cfg Config) Config {
		cfg.logger = logger
		return cfg
	}
}

// WithBodyLimit limits the size of a tag body, e.g. "512K".
func WithBodyLimit(limit string) Option {
	return func(cfg Config) Config {
		cfg.bodyLimit = limit
		return cfg
	}
}

type Config struct {
	addr            string
	shutdownTimeout time.Duration
	bodyLimit       string
	logger          log.Logger
}

func NewConfig(opts ...Option) *Config {
	cfg := &Config{
		addr:            defaultAddr,
		shutdownTimeout: defaultShutdownTimeout,
		bodyLimit:       defaultBodyLimit,
		logger:          log.Default(),
	}

	return cfg.WithOptions(opts...)
}

func (cfg *Config) WithOptions(opts ...Option) *Config {
	for _, opt := range opts {
		*cfg = opt(*cfg)
	}

	return cfg
}

func (cfg *Config) Addr() string {
	return cfg.addr
}
