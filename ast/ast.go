// Package ast defines the MessageFormat 2 abstract syntax tree produced
// by package parser, the Visitor used to walk it, and the diagnostics-
// free node shapes shared by the scope analyzer and printer.
//
// Every node type implements [Spanned]. Composite node kinds that are
// sum types in the reference grammar (Message, PatternPart, Expression,
// Literal, LiteralOrVariable, Annotation, Declaration,
// ComplexMessageBody, Key) are modeled as Go interfaces implemented by
// their alternative struct types, the idiomatic analogue of a Rust enum.
package ast

import "github.com/lucacasonato/mf2/pos"

// Spanned is implemented by every AST node; it reports the node's byte
// range in the source text.
type Spanned interface {
	Span() pos.Span
}

// Visitable is implemented by every AST node. ApplyVisitor dispatches to
// the Visitor method for this node's concrete kind; ApplyVisitorToChildren
// calls ApplyVisitor on each of this node's immediate children, skipping
// the dispatch for the node itself.
type Visitable interface {
	Spanned
	ApplyVisitor(v Visitor)
	ApplyVisitorToChildren(v Visitor)
}

// AnyNode is any AST node. Every node type already implements Spanned,
// so no separate tagged union is needed to talk about "some node or
// other" — see [NewAnyNodeVisitor].
type AnyNode = Spanned

// Message is the root of a parsed MF2 message: either a simple pattern
// or a complex message with declarations and a matcher or quoted
// pattern body.
type Message interface {
	Visitable
	isMessage()
}
