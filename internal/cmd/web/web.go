// Package web parses web command configuration and runs the service.
package web

import (
	"context"
	"flag"
	"fmt"
	"strings"
	"time"

	entrypoint "github.com/nlwcopa/bolao/internal/platform/cmd"
	"github.com/nlwcopa/bolao/internal/services/web"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Config holds the web command configuration.
type Config struct {
	HTTPAddr   string        `env:"BOLAO_WEB_HTTP_ADDR" envDefault:"localhost:3000"`
	APIBaseURL string        `env:"BOLAO_WEB_API_BASE_URL" envDefault:"http://localhost:3333"`
	APITimeout time.Duration `env:"BOLAO_WEB_API_TIMEOUT" envDefault:"5s"`
	LogLevel   string        `env:"BOLAO_WEB_LOG_LEVEL" envDefault:"info"`
	LogDev     bool          `env:"BOLAO_WEB_LOG_DEV"`
}

// ParseConfig loads env defaults and then applies flags.
func ParseConfig(fs *flag.FlagSet, args []string) (Config, error) {
	var cfg Config
	if err := entrypoint.ParseConfig(&cfg); err != nil {
		return Config{}, err
	}
	return applyFlags(cfg, fs, args)
}

func parseConfigFrom(fs *flag.FlagSet, args []string, environ map[string]string) (Config, error) {
	var cfg Config
	if err := entrypoint.ParseConfigFrom(&cfg, environ); err != nil {
		return Config{}, err
	}
	return applyFlags(cfg, fs, args)
}

func applyFlags(cfg Config, fs *flag.FlagSet, args []string) (Config, error) {
	if fs == nil {
		return Config{}, fmt.Errorf("flag parser is required")
	}
	fs.StringVar(&cfg.HTTPAddr, "http-addr", cfg.HTTPAddr, "HTTP listen address")
	fs.StringVar(&cfg.APIBaseURL, "api-base-url", cfg.APIBaseURL, "Betting pool API base URL")
	fs.DurationVar(&cfg.APITimeout, "api-timeout", cfg.APITimeout, "Timeout for each API call")
	fs.StringVar(&cfg.LogLevel, "log-level", cfg.LogLevel, "Log level (debug, info, warn, error)")
	fs.BoolVar(&cfg.LogDev, "log-dev", cfg.LogDev, "Use the human-readable development logger")
	if err := entrypoint.ParseArgs(fs, args); err != nil {
		return Config{}, err
	}
	if _, err := zapcore.ParseLevel(strings.TrimSpace(cfg.LogLevel)); err != nil {
		return Config{}, fmt.Errorf("invalid log level %q: %w", cfg.LogLevel, err)
	}
	if cfg.APITimeout <= 0 {
		return Config{}, fmt.Errorf("api timeout must be positive, got %s", cfg.APITimeout)
	}
	return cfg, nil
}

// NewLogger builds the service logger from cfg.
func NewLogger(cfg Config) (*zap.Logger, error) {
	level, err := zapcore.ParseLevel(strings.TrimSpace(cfg.LogLevel))
	if err != nil {
		return nil, fmt.Errorf("invalid log level %q: %w", cfg.LogLevel, err)
	}
	zcfg := zap.NewProductionConfig()
	if cfg.LogDev {
		zcfg = zap.NewDevelopmentConfig()
	}
	zcfg.Level = zap.NewAtomicLevelAt(level)
	logger, err := zcfg.Build()
	if err != nil {
		return nil, fmt.Errorf("build logger: %w", err)
	}
	return logger.With(zap.String("service", entrypoint.ServiceWeb)), nil
}

// Run starts the web server and blocks until ctx ends.
func Run(ctx context.Context, cfg Config) error {
	logger, err := NewLogger(cfg)
	if err != nil {
		return err
	}
	defer func() { _ = logger.Sync() }()

	return entrypoint.RunWithTelemetryAndOptions(ctx, entrypoint.ServiceWeb, entrypoint.RunOptions{Logger: logger}, func(ctx context.Context) error {
		server, err := web.NewServer(ctx, web.Config{
			HTTPAddr:   cfg.HTTPAddr,
			APIBaseURL: cfg.APIBaseURL,
			APITimeout: cfg.APITimeout,
			Logger:     logger,
		})
		if err != nil {
			return fmt.Errorf("init web server: %w", err)
		}
		defer server.Close()

		if err := server.ListenAndServe(ctx); err != nil {
			return fmt.Errorf("serve web: %w", err)
		}
		return nil
	})
}
