// Package logging builds the zap logger shared by the CLI and the play screen.
package logging

import (
	"fmt"
	"os"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Config holds logger configuration.
type Config struct {
	// Level is one of debug, info, warn, error. Default: info.
	Level string

	// File receives log output. Empty means stderr.
	File string

	// Development switches to the human-readable console encoder.
	Development bool
}

// DefaultConfig returns a Config that logs JSON at info level to stderr.
func DefaultConfig() Config {
	return Config{Level: "info"}
}

// ConfigFromEnv builds a Config from environment variables, falling back
// to defaults for unset values.
func ConfigFromEnv() Config {
	cfg := DefaultConfig()

	if l := os.Getenv("MATHADV_LOG_LEVEL"); l != "" {
		cfg.Level = l
	}
	if f := os.Getenv("MATHADV_LOG_FILE"); f != "" {
		cfg.File = f
	}
	if os.Getenv("MATHADV_LOG_DEV") != "" {
		cfg.Development = true
	}

	return cfg
}

// Validate checks that Level names a known zap level.
func (c Config) Validate() error {
	if _, err := zapcore.ParseLevel(c.Level); err != nil {
		return fmt.Errorf("invalid log level %q: %w", c.Level, err)
	}
	return nil
}

// New builds a logger from cfg.
func New(cfg Config) (*zap.Logger, error) {
	if cfg.Level == "" {
		cfg.Level = DefaultConfig().Level
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	lvl, _ := zap.ParseAtomicLevel(cfg.Level)

	zc := zap.NewProductionConfig()
	if cfg.Development {
		zc = zap.NewDevelopmentConfig()
	}
	zc.Level = lvl
	zc.EncoderConfig.TimeKey = "ts"
	zc.EncoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder

	out := "stderr"
	if cfg.File != "" {
		out = cfg.File
	}
	zc.OutputPaths = []string{out}
	zc.ErrorOutputPaths = []string{out}

	logger, err := zc.Build()
	if err != nil {
		return nil, fmt.Errorf("build logger: %w", err)
	}
	return logger, nil
}
