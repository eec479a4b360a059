package scope

import "log/slog"

// Option configures an [Analyze] call.
type Option func(*config)

type config struct {
	logger *slog.Logger
}

func defaultConfig() *config {
	return &config{}
}

func applyOptions(cfg *config, opts []Option) {
	for _, opt := range opts {
		opt(cfg)
	}
}

// WithLogger attaches a structured logger for analysis-time debug tracing.
// If not provided, logging is disabled.
func WithLogger(logger *slog.Logger) Option {
	return func(c *config) {
		c.logger = logger
	}
}
