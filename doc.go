// Package mf2 implements the MessageFormat 2 (MF2) message syntax: a
// non-failing, zero-copy parser, a post-parse semantic scope analyzer,
// and a structural pretty-printer.
//
// # Architecture
//
// The module is organized into layers with strict dependency ordering:
//
//	Foundation tier (no internal dependencies):
//	  - pos: byte-offset locations, spans, and line/column conversion
//	  - diag: structured, non-fatal diagnostics with stable kinds
//	  - internal/trace: structured debug tracing for operation boundaries
//
//	Core library tier:
//	  - ast: the MF2 abstract syntax tree and its Visitor
//	  - parser: recursive-descent parsing of MF2 syntax into ast.Message
//	  - scope: declaration/reference/annotation tracking over an ast.Message
//	  - printer: rendering an ast.Message back to MF2 syntax
//
//	Facade tier:
//	  - this package (mf2): Parse, AnalyzeSemantics, Print, IsValidName
//
// # Entry points
//
//	msg, diags, info := mf2.Parse(ctx, source)
//	scope, scopeDiags := mf2.AnalyzeSemantics(ctx, msg)
//	out := mf2.Print(ctx, msg)
//
// Neither Parse nor AnalyzeSemantics ever returns a Go error: malformed
// input produces the best-effort AST or Scope the input allows, with
// every problem recorded in the returned [diag.Result] instead.
package mf2
