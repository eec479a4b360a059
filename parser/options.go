package parser

import "log/slog"

// Option configures a [Parse] call.
type Option func(*config)

type config struct {
	issueLimit int
	logger     *slog.Logger
}

func defaultConfig() *config {
	return &config{issueLimit: 0}
}

func applyOptions(cfg *config, opts []Option) {
	for _, opt := range opts {
		opt(cfg)
	}
}

// WithIssueLimit caps the number of diagnostics collected during a parse.
// Additional diagnostics past the limit are dropped, but parsing itself
// never stops early — every non-failing parse still runs to completion
// and returns a full AST. Zero (the default) means unlimited.
func WithIssueLimit(limit int) Option {
	return func(c *config) {
		c.issueLimit = limit
	}
}

// WithLogger attaches a structured logger for parse-time debug tracing.
// If not provided, logging is disabled.
func WithLogger(logger *slog.Logger) Option {
	return func(c *config) {
		c.logger = logger
	}
}
