package ast

import "github.com/lucacasonato/mf2/pos"

// Literal is a quoted string, a bare name, or a number — the three
// syntactic forms a literal value can take.
type Literal interface {
	LiteralOrVariable
	isLiteral()
}

// Quoted is a `|...|`-delimited literal string.
type Quoted struct {
	SpanValue pos.Span
	Parts     []QuotedPart
}

func (q *Quoted) isLiteral()            {}
func (q *Quoted) isLiteralOrVariable()  {}
func (q *Quoted) Span() pos.Span        { return q.SpanValue }
func (q *Quoted) ApplyVisitor(v Visitor) { v.VisitQuoted(q) }

func (q *Quoted) ApplyVisitorToChildren(v Visitor) {
	for _, part := range q.Parts {
		part.ApplyVisitor(v)
	}
}

// QuotedPart is one element of a [Quoted] literal: either literal text
// or an escape sequence.
type QuotedPart interface {
	Visitable
	isQuotedPart()
}

func (t *Text) isQuotedPart()   {}
func (e *Escape) isQuotedPart() {}

// ExponentSign is the sign of a [Number]'s exponent part.
type ExponentSign int

const (
	ExponentSignNone ExponentSign = iota
	ExponentSignPlus
	ExponentSignMinus
)

// Number is a numeric literal, e.g. `42`, `-3.14`, or `1e-10`. Its
// integral/fractional/exponent parts are not stored as separate string
// slices; they are derived on demand from Raw using the stored lengths,
// following the reference implementation's span-arithmetic approach
// (see spec.md §9, "Number sub-span derivation").
type Number struct {
	Start         pos.Location
	Raw           string
	IsNegative    bool
	IntegralLen   pos.LengthShort
	FractionalLen *pos.LengthShort // nil if absent
	ExponentSign  ExponentSign
	ExponentLen   *pos.LengthShort // nil if absent
}

func (n *Number) isLiteral()           {}
func (n *Number) isLiteralOrVariable() {}

func (n *Number) Span() pos.Span {
	return pos.NewSpan(n.Start, n.Start.Add(n.Raw))
}

func (n *Number) ApplyVisitor(v Visitor)           { v.VisitNumber(n) }
func (n *Number) ApplyVisitorToChildren(v Visitor) {}

func (n *Number) slice(span pos.Span) string {
	offset := uint32(n.Start)
	return n.Raw[uint32(span.Start)-offset : uint32(span.End)-offset]
}

// IntegralStart is the location where the integral part begins, after
// the sign if the number is negative.
func (n *Number) IntegralStart() pos.Location {
	if n.IsNegative {
		return n.Start.Add("-")
	}
	return n.Start
}

// IntegralEnd is the location immediately after the integral part.
func (n *Number) IntegralEnd() pos.Location {
	return n.IntegralStart().AddLengthShort(n.IntegralLen)
}

// IntegralSpan is the span covering just the integral digits.
func (n *Number) IntegralSpan() pos.Span {
	return pos.NewSpan(n.IntegralStart(), n.IntegralEnd())
}

// IntegralPart is the substring covering just the integral digits.
func (n *Number) IntegralPart() string {
	return n.slice(n.IntegralSpan())
}

// FractionalSpan is the span covering the fractional digits, or
// ok=false if the number has no fractional part.
func (n *Number) FractionalSpan() (span pos.Span, ok bool) {
	if n.FractionalLen == nil {
		return pos.Span{}, false
	}
	start := n.IntegralEnd().Add(".")
	end := start.AddLengthShort(*n.FractionalLen)
	return pos.NewSpan(start, end), true
}

// FractionalPart is the substring covering the fractional digits, or
// ok=false if the number has no fractional part.
func (n *Number) FractionalPart() (part string, ok bool) {
	span, ok := n.FractionalSpan()
	if !ok {
		return "", false
	}
	return n.slice(span), true
}

// ExponentSpan is the span covering the exponent digits (not including
// the `e` marker or sign), or ok=false if the number has no exponent
// part.
func (n *Number) ExponentSpan() (span pos.Span, ok bool) {
	if n.ExponentLen == nil {
		return pos.Span{}, false
	}
	start := n.IntegralEnd()
	if fs, ok := n.FractionalSpan(); ok {
		start = fs.End
	}
	start = start.Add("e")
	if n.ExponentSign != ExponentSignNone {
		start = start.Add("-")
	}
	end := start.AddLengthShort(*n.ExponentLen)
	return pos.NewSpan(start, end), true
}

// ExponentPart is the substring covering the exponent digits, or
// ok=false if the number has no exponent part.
func (n *Number) ExponentPart() (sign ExponentSign, part string, ok bool) {
	span, ok := n.ExponentSpan()
	if !ok {
		return ExponentSignNone, "", false
	}
	return n.ExponentSign, n.slice(span), true
}
