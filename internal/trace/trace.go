package trace

import (
	"context"
	"log/slog"
)

// Enabled reports whether logging at the given level is enabled.
// Returns false if logger is nil.
//
// [Begin] already does this check internally; Enabled exists for call
// sites that need to skip building expensive attrs (e.g. a formatted
// AST dump) ahead of a Begin call, not as general-purpose API surface —
// this module's three entry points (parser.Parse, scope.Analyze,
// printer.Print) only ever need [Begin]/[*Op.End].
func Enabled(ctx context.Context, logger *slog.Logger, level slog.Level) bool {
	if logger == nil {
		return false
	}
	return logger.Enabled(ctx, level)
}
