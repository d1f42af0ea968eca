package slogobs

import (
	"io"
	"log/slog"
	"os"
)

// Option configures New.
type Option func(*config)

type config struct {
	format Format
	level  slog.Level
	output io.Writer
	logger *slog.Logger
}

// WithFormat picks compact lines or JSON records.
func WithFormat(format Format) Option {
	return func(c *config) { c.format = format }
}

// WithLevel drops records below level. Use LevelTrace to see span events.
func WithLevel(level slog.Level) Option {
	return func(c *config) { c.level = level }
}

// WithOutput redirects records, stderr by default.
func WithOutput(output io.Writer) Option {
	return func(c *config) { c.output = output }
}

// WithLogger routes everything to an existing logger. Format, level and
// output are then ignored.
func WithLogger(logger *slog.Logger) Option {
	return func(c *config) { c.logger = logger }
}

// applyOptions starts from the environment (SERPSIM_LOG_FORMAT,
// SERPSIM_LOG_LEVEL) and lets explicit options win.
func applyOptions(opts ...Option) *config {
	cfg := &config{format: FormatFromEnv(), level: LevelFromEnv(), output: os.Stderr}
	for _, opt := range opts {
		opt(cfg)
	}
	return cfg
}
