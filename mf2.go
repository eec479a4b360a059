package mf2

import (
	"context"
	"log/slog"

	"github.com/lucacasonato/mf2/ast"
	"github.com/lucacasonato/mf2/diag"
	"github.com/lucacasonato/mf2/parser"
	"github.com/lucacasonato/mf2/pos"
	"github.com/lucacasonato/mf2/printer"
	"github.com/lucacasonato/mf2/scope"
)

// Option configures the facade entry points. The same Option values
// configure every operation that accepts them; an option a given
// operation doesn't use is simply ignored by it.
type Option func(*config)

type config struct {
	parserOpts []parser.Option
	scopeOpts  []scope.Option
	printerOpts []printer.Option
	issueLimit int
}

func defaultConfig() *config {
	return &config{}
}

// WithLogger attaches a structured logger for debug tracing across
// parsing, scope analysis, and printing.
func WithLogger(logger *slog.Logger) Option {
	return func(c *config) {
		c.parserOpts = append(c.parserOpts, parser.WithLogger(logger))
		c.scopeOpts = append(c.scopeOpts, scope.WithLogger(logger))
		c.printerOpts = append(c.printerOpts, printer.WithLogger(logger))
	}
}

// WithIssueLimit caps the number of diagnostics collected by [Parse] and
// [AnalyzeSemantics]. Zero (the default) means unlimited.
func WithIssueLimit(limit int) Option {
	return func(c *config) {
		c.issueLimit = limit
		c.parserOpts = append(c.parserOpts, parser.WithIssueLimit(limit))
	}
}

// Parse parses text as a MessageFormat 2 message. It never fails: every
// input, however malformed, produces an [ast.Message] and a (possibly
// empty) [diag.Result] describing what couldn't be recovered cleanly.
// info resolves any [pos.Location] reachable from msg back to
// line/column coordinates.
func Parse(ctx context.Context, text string, opts ...Option) (msg ast.Message, diags diag.Result, info pos.SourceTextInfo) {
	cfg := defaultConfig()
	for _, opt := range opts {
		opt(cfg)
	}
	return parser.Parse(ctx, text, cfg.parserOpts...)
}

// AnalyzeSemantics walks msg to track variable declarations,
// references, and annotations, reporting scope-level problems (a
// duplicate declaration, a use before declaration, a `.match` selector
// with no annotation) as diagnostics rather than failing the call.
func AnalyzeSemantics(ctx context.Context, msg ast.Message, opts ...Option) (result scope.Scope, diags diag.Result) {
	cfg := defaultConfig()
	for _, opt := range opts {
		opt(cfg)
	}
	collector := diag.NewCollector(cfg.issueLimit)
	result = scope.Analyze(ctx, msg, collector, cfg.scopeOpts...)
	return result, collector.Result()
}

// Print renders msg back into canonical MessageFormat 2 syntax.
func Print(ctx context.Context, msg ast.Message, opts ...Option) string {
	cfg := defaultConfig()
	for _, opt := range opts {
		opt(cfg)
	}
	return printer.Print(ctx, msg, cfg.printerOpts...)
}

// IsValidName reports whether s is a syntactically valid MF2 name: the
// form required for a variable's bare name, a function identifier, or
// an unquoted literal, per spec.md's name-char grammar.
func IsValidName(s string) bool {
	return parser.IsValidName(s)
}
