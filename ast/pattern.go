package ast

import "github.com/lucacasonato/mf2/pos"

// Pattern is a sequence of text, escapes, expressions, and markup that
// together form a message body. It is itself a [Message] (the "simple
// message" case) and also appears wrapped in a [QuotedPattern] inside
// complex messages.
type Pattern struct {
	Parts []PatternPart
}

func (p *Pattern) isMessage() {}

// Span returns the span from the first to the last part, or an empty
// span at location 0 for a pattern with no parts (for example the empty
// message or an empty `{{}}` quoted pattern).
func (p *Pattern) Span() pos.Span {
	if len(p.Parts) == 0 {
		return pos.Span{}
	}
	return pos.NewSpan(p.Parts[0].Span().Start, p.Parts[len(p.Parts)-1].Span().End)
}

func (p *Pattern) ApplyVisitor(v Visitor) { v.VisitPattern(p) }

func (p *Pattern) ApplyVisitorToChildren(v Visitor) {
	for _, part := range p.Parts {
		part.ApplyVisitor(v)
	}
}

// PatternPart is one element of a [Pattern]: literal text, an escape
// sequence, an expression, or markup.
type PatternPart interface {
	Visitable
	isPatternPart()
}

// Text is a run of literal text copied verbatim to the output.
type Text struct {
	Start   pos.Location
	Content string
}

func (t *Text) isPatternPart()       {}
func (t *Text) isLiteral()           {}
func (t *Text) isLiteralOrVariable() {}

func (t *Text) Span() pos.Span {
	return pos.NewSpan(t.Start, t.Start.Add(t.Content))
}

func (t *Text) ApplyVisitor(v Visitor)           { v.VisitText(t) }
func (t *Text) ApplyVisitorToChildren(v Visitor) {}

// Escape is a backslash-escaped character. A valid escape is one of `{`,
// `}`, `|`, `\`; the parser also builds an Escape for any other
// character, alongside an EscapeInvalidCharacter diagnostic.
type Escape struct {
	Start       pos.Location
	EscapedChar rune
}

func (e *Escape) isPatternPart() {}

func (e *Escape) Span() pos.Span {
	return pos.NewSpan(e.Start, e.Start.Add("\\").AddRune(e.EscapedChar))
}

func (e *Escape) ApplyVisitor(v Visitor)           { v.VisitEscape(e) }
func (e *Escape) ApplyVisitorToChildren(v Visitor) {}
