package ast

import "github.com/lucacasonato/mf2/pos"

// ComplexMessage is a message with zero or more declarations followed by
// either a bare quoted pattern or a `.match` matcher.
type ComplexMessage struct {
	SpanValue    pos.Span
	Declarations []Declaration
	Body         ComplexMessageBody
}

func (m *ComplexMessage) isMessage()   {}
func (m *ComplexMessage) Span() pos.Span { return m.SpanValue }
func (m *ComplexMessage) ApplyVisitor(v Visitor) {
	v.VisitComplexMessage(m)
}

func (m *ComplexMessage) ApplyVisitorToChildren(v Visitor) {
	for _, decl := range m.Declarations {
		decl.ApplyVisitor(v)
	}
	m.Body.ApplyVisitor(v)
}

// Declaration is a `.input` or `.local` statement.
type Declaration interface {
	Visitable
	isDeclaration()
}

// InputDeclaration is a `.input {$var ...}` statement.
type InputDeclaration struct {
	Start      pos.Location
	Expression *VariableExpression
}

func (d *InputDeclaration) isDeclaration() {}

func (d *InputDeclaration) Span() pos.Span {
	return pos.NewSpan(d.Start, d.Expression.Span().End)
}

func (d *InputDeclaration) ApplyVisitor(v Visitor) {
	v.VisitInputDeclaration(d)
}

func (d *InputDeclaration) ApplyVisitorToChildren(v Visitor) {
	d.Expression.ApplyVisitor(v)
}

// LocalDeclaration is a `.local $var = {expr}` statement.
type LocalDeclaration struct {
	Start      pos.Location
	Variable   *Variable
	Expression Expression
}

func (d *LocalDeclaration) isDeclaration() {}

func (d *LocalDeclaration) Span() pos.Span {
	return pos.NewSpan(d.Start, d.Expression.Span().End)
}

func (d *LocalDeclaration) ApplyVisitor(v Visitor) {
	v.VisitLocalDeclaration(d)
}

func (d *LocalDeclaration) ApplyVisitorToChildren(v Visitor) {
	d.Variable.ApplyVisitor(v)
	d.Expression.ApplyVisitor(v)
}

// ComplexMessageBody is a complex message's body: a bare quoted pattern
// or a `.match` matcher.
type ComplexMessageBody interface {
	Visitable
	isComplexMessageBody()
}

// QuotedPattern is a `{{ ... }}`-delimited pattern.
type QuotedPattern struct {
	SpanValue pos.Span
	Pattern   *Pattern
}

func (q *QuotedPattern) isComplexMessageBody() {}
func (q *QuotedPattern) Span() pos.Span        { return q.SpanValue }
func (q *QuotedPattern) ApplyVisitor(v Visitor) {
	v.VisitQuotedPattern(q)
}

func (q *QuotedPattern) ApplyVisitorToChildren(v Visitor) {
	q.Pattern.ApplyVisitor(v)
}

// Matcher is a `.match` statement with its selectors and variants.
type Matcher struct {
	Start     pos.Location
	Selectors []*Variable
	Variants  []*Variant
}

func (m *Matcher) isComplexMessageBody() {}

func (m *Matcher) Span() pos.Span {
	end := m.Start.Add(".match")
	if n := len(m.Selectors); n > 0 {
		end = m.Selectors[n-1].Span().End
	}
	if n := len(m.Variants); n > 0 {
		end = m.Variants[n-1].Span().End
	}
	return pos.NewSpan(m.Start, end)
}

func (m *Matcher) ApplyVisitor(v Visitor) { v.VisitMatcher(m) }

func (m *Matcher) ApplyVisitorToChildren(v Visitor) {
	for _, sel := range m.Selectors {
		sel.ApplyVisitor(v)
	}
	for _, variant := range m.Variants {
		variant.ApplyVisitor(v)
	}
}

// Variant is one `key ... {{pattern}}` arm of a [Matcher].
type Variant struct {
	Keys    []Key
	Pattern *QuotedPattern
}

func (va *Variant) Span() pos.Span {
	start := va.Pattern.Span().Start
	if n := len(va.Keys); n > 0 {
		start = va.Keys[0].Span().Start
	}
	return pos.NewSpan(start, va.Pattern.Span().End)
}

func (va *Variant) ApplyVisitor(v Visitor) { v.VisitVariant(va) }

func (va *Variant) ApplyVisitorToChildren(v Visitor) {
	for _, key := range va.Keys {
		key.ApplyVisitor(v)
	}
	va.Pattern.ApplyVisitor(v)
}

// Key is one key in a [Variant]'s key list: a literal or the wildcard
// `*`.
type Key interface {
	Visitable
	isKey()
}

func (q *Quoted) isKey() {}
func (t *Text) isKey()   {}
func (n *Number) isKey() {}

// Star is the wildcard `*` match key.
type Star struct {
	Start pos.Location
}

func (s *Star) isKey() {}

func (s *Star) Span() pos.Span {
	return pos.NewSpan(s.Start, s.Start.Add("*"))
}

func (s *Star) ApplyVisitor(v Visitor)           { v.VisitStar(s) }
func (s *Star) ApplyVisitorToChildren(v Visitor) {}
