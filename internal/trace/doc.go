// Package trace provides optional debug logging helpers for the mf2 module.
//
// This package is an internal utility for developer observability. It is distinct
// from [diag.Result] (message-content diagnostics) and error returns (system failures).
//
// # Internal Package
//
// This package is internal to the mf2 module and is not importable by external
// consumers per Go's internal/ package semantics. It is used for coordination across
// library packages (parser, scope, printer).
//
// # Design Principles
//
// The trace package follows several key design principles:
//
//   - Near-zero cost when disabled: When the logger is nil, overhead is a single nil
//     check (~2ns). When the logger is non-nil but the level is disabled, overhead
//     includes the nil check plus a level test (~3-4ns).
//   - Stdlib only: Uses [log/slog] (Go 1.21+), preserving dependency hygiene.
//   - Logger injection: Loggers are passed via options at API boundaries, not stored
//     in globals or read from environment variables.
//
// # Separation of Concerns
//
// The library uses three distinct mechanisms for different categories of information:
//
//   - [diag.Result]: message-content issues (malformed syntax, unresolved variables).
//     These are structured diagnostics with a closed Kind and a span.
//   - error returns: system failures (impossible states, programmer errors).
//   - trace logging: developer observability (classification decisions, recovery
//     points, scope-analysis bookkeeping). This package.
//
// # Usage Patterns
//
// There are two patterns for logging:
//
//   - [Begin]/[Op.End]: Operation boundaries (start/end of public API calls). Use for
//     wrapping top-level functions with automatic duration measurement.
//   - [Enabled]: For complex control flow or for skipping expensive attribute
//     construction when a level is disabled.
//
// # Context Handling
//
// All logging functions accept a context parameter and pass it through to the
// underlying [log/slog.Logger]. This enables context-scoped behaviors such as:
//   - Request-scoped logging values stored in context
//   - Cancellation-aware log handlers
//
// The Op Runner ([Begin]/[Op.End]) additionally:
//   - Includes "request_id" if present in context (via [WithRequestID])
//   - Checks context cancellation for "ctx_err" attribute
//
// # Op Runner
//
// The [Op] type provides consistent operation boundary logging with automatic
// duration measurement and cancellation handling. [Begin] returns nil when
// logging is disabled (nil logger or level below Debug), achieving near-zero
// overhead (~1-2ns). All [Op] methods are safe to call on nil.
//
//	func Parse(ctx context.Context, text string, opts ...Option) (ast.Message, diag.Result, pos.SourceTextInfo) {
//	    op := trace.Begin(ctx, cfg.logger, "mf2.parser.parse", slog.Int("bytes", len(text)))
//	    defer op.End(nil)
//
//	    msg, diags, info := parseInternal(text, cfg)
//	    op.End(nil, slog.Int("diagnostics", diags.Len()))
//	    return msg, diags, info
//	}
//
// The Op runner automatically logs:
//   - "op": operation name
//   - "request_id": if present in context (via [WithRequestID])
//   - "elapsed_ms": elapsed time in milliseconds (int64, machine-parseable)
//   - "duration": elapsed time as [time.Duration] (human-readable)
//   - "ctx_err": context error message if cancelled
//   - "error": error message if err != nil
//
// # Operation Names
//
// Operation names follow the format mf2.<package>.<operation>:
//   - mf2.parser.parse
//   - mf2.scope.analyze
//   - mf2.printer.print
//
// Operation names are implementation details and may change without notice.
// Tests should not depend on the exact set of operation names.
package trace
