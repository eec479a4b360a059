package ast

import "github.com/lucacasonato/mf2/pos"

// MarkupKind distinguishes an opening tag, a self-closing (standalone)
// tag, and a closing tag.
type MarkupKind int

const (
	MarkupOpen MarkupKind = iota
	MarkupStandalone
	MarkupClose
)

// Markup is a `{#tag ...}`, `{#tag /}`, or `{/tag}` markup placeholder.
type Markup struct {
	SpanValue  pos.Span
	Kind       MarkupKind
	ID         *Identifier
	Options    []*FnOrMarkupOption
	Attributes []*Attribute
}

func (m *Markup) isPatternPart()  {}
func (m *Markup) Span() pos.Span { return m.SpanValue }
func (m *Markup) ApplyVisitor(v Visitor) {
	v.VisitMarkup(m)
}

func (m *Markup) ApplyVisitorToChildren(v Visitor) {
	m.ID.ApplyVisitor(v)
	for _, opt := range m.Options {
		opt.ApplyVisitor(v)
	}
	for _, attr := range m.Attributes {
		attr.ApplyVisitor(v)
	}
}
