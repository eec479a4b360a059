// Package parser implements the MessageFormat 2 recursive-descent parser:
// a non-failing parser that always returns a usable [ast.Message] plus a
// (possibly empty) list of [diag.Diagnostic] findings, never a Go error.
// Malformed input is recovered from locally — a missing closing brace,
// for instance, produces a diagnostic and a best-effort node, not an
// aborted parse — grounded on the reference implementation's parser.rs.
package parser

import (
	"context"
	"log/slog"

	"github.com/lucacasonato/mf2/ast"
	"github.com/lucacasonato/mf2/diag"
	"github.com/lucacasonato/mf2/internal/trace"
	"github.com/lucacasonato/mf2/pos"
)

// parser holds the mutable state of a single parse: the cursor walking
// the source text and the diagnostics collector recording findings along
// the way. It is not safe for concurrent use; construct one per parse.
type parser struct {
	cursor *pos.Cursor
	diags  *diag.Collector
	logger *slog.Logger
}

// Parse parses text as a MessageFormat 2 message. It never fails: every
// input, however malformed, produces an [ast.Message] and a (possibly
// empty) [diag.Result]. info resolves any [pos.Location] in the returned
// tree back to line/column coordinates.
func Parse(ctx context.Context, text string, opts ...Option) (msg ast.Message, diags diag.Result, info pos.SourceTextInfo) {
	cfg := defaultConfig()
	applyOptions(cfg, opts)

	op := trace.Begin(ctx, cfg.logger, "mf2.parser.parse", slog.Int("bytes", len(text)))
	defer func() { op.End(nil, slog.Int("diagnostics", diags.Len())) }()

	p := &parser{
		cursor: pos.NewCursor(text),
		diags:  diag.NewCollector(cfg.issueLimit),
		logger: cfg.logger,
	}

	msg = p.parseMessage()
	// A complex message's body can end before the text does; consume the
	// rest so IntoInfo records every line start.
	for {
		if _, _, ok := p.next(); !ok {
			break
		}
	}
	diags = p.diags.Result()
	info = p.cursor.IntoInfo()
	return msg, diags, info
}

func (p *parser) report(d diag.Diagnostic) {
	p.diags.Collect(d)
}

// --- cursor helpers ---

func (p *parser) next() (pos.Location, rune, bool) { return p.cursor.Next() }
func (p *parser) peek() (pos.Location, rune, bool) { return p.cursor.Peek() }
func (p *parser) peek2() (pos.Location, rune, bool) { return p.cursor.Peek2() }
func (p *parser) currentLocation() pos.Location    { return p.cursor.CurrentLocation() }

func (p *parser) sliceText(span pos.Span) *ast.Text {
	return &ast.Text{Start: span.Start, Content: p.cursor.Slice(span)}
}

// eat consumes and returns the current location if the next rune is c.
func (p *parser) eat(c rune) (pos.Location, bool) {
	if loc, ch, ok := p.peek(); ok && ch == c {
		p.next()
		return loc, true
	}
	return 0, false
}

// skipSpaces consumes a run of MF2 space characters and reports whether
// at least one was consumed.
func (p *parser) skipSpaces() bool {
	any := false
	for {
		_, c, ok := p.peek()
		if !ok || !IsSpace(c) {
			break
		}
		any = true
		p.next()
	}
	return any
}

// --- top-level dispatch ---

// parseMessage classifies the message as simple or complex by how it
// starts, mirroring the grammar: a '.' immediately followed by one of the
// keywords input, local, or match starts a declaration or `.match`, and a
// leading "{{" starts a bare quoted-pattern complex message; anything
// else, including a leading '.' that does not spell one of those
// keywords, is a simple-message pattern. The keyword check rewinds the
// cursor, so a simple message is still parsed from its first character.
func (p *parser) parseMessage() ast.Message {
	_, c, ok := p.peek()
	if !ok {
		return &ast.Pattern{}
	}

	if c == '.' && (p.peekKeyword("input") || p.peekKeyword("local") || p.peekKeyword("match")) {
		return p.parseComplexMessage()
	}
	if c == '{' {
		if _, c2, ok2 := p.peek2(); ok2 && c2 == '{' {
			return p.parseComplexMessage()
		}
	}
	return p.parseSimpleMessage()
}

func (p *parser) parseSimpleMessage() *ast.Pattern {
	var parts []ast.PatternPart

	start := p.cursor.StartLocation()
	for {
		loc, c, ok := p.peek()
		if !ok {
			break
		}
		switch {
		case c == '\\':
			if loc != start {
				parts = append(parts, p.sliceText(pos.NewSpan(start, loc)))
			}
			if escape := p.parseEscape(); escape != nil {
				parts = append(parts, escape)
			}
			start = p.currentLocation()
		case c == '{':
			if loc != start {
				parts = append(parts, p.sliceText(pos.NewSpan(start, loc)))
			}
			parts = append(parts, p.parsePlaceholderOrMarkup())
			start = p.currentLocation()
		case c == 0:
			p.report(diag.InvalidNullCharacter(loc))
			p.next()
		case c == '}':
			p.report(diag.InvalidClosingBrace(loc))
			p.next()
		default:
			p.next()
		}
	}

	end := p.currentLocation()
	if end != start {
		parts = append(parts, p.sliceText(pos.NewSpan(start, end)))
	}

	return &ast.Pattern{Parts: parts}
}

func (p *parser) parseEscape() *ast.Escape {
	start, c, ok := p.next()
	_ = c // always '\\'
	if !ok {
		return nil
	}

	loc, escaped, ok := p.next()
	if !ok {
		p.report(diag.EscapeMissingCharacter(start))
		return nil
	}
	switch escaped {
	case '}', '{', '|', '\\':
	default:
		p.report(diag.EscapeInvalidCharacter(loc, escaped))
	}

	return &ast.Escape{Start: start, EscapedChar: escaped}
}

// parsePlaceholderOrMarkup consumes a leading '{' and dispatches to
// markup parsing ('#' or '/') or expression-placeholder parsing.
func (p *parser) parsePlaceholderOrMarkup() ast.PatternPart {
	start, c, _ := p.next() // consume '{'
	_ = c

	p.skipSpaces()

	if _, c, ok := p.peek(); ok {
		if c == '#' {
			return p.parseMarkup(start, markupOpenOrStandalone)
		}
		if c == '/' {
			return p.parseMarkup(start, markupClose)
		}
	}

	return p.parseExpressionBody(start)
}

// parseExpressionBody parses the body of a `{ ... }` placeholder after
// the opening brace and any leading spaces have already been consumed,
// returning the resulting [ast.Expression].
func (p *parser) parseExpressionBody(start pos.Location) ast.Expression {
	var variable *ast.Variable
	var literal ast.Literal
	var hadSpace bool

	if _, c, ok := p.peek(); ok {
		switch {
		case c == '$':
			variable = p.parseVariable()
			hadSpace = p.skipSpaces()
		case c == '|' || c == '.' || c == '-' || isDigit(c) || IsNameStart(c):
			literal = p.parseLiteral()
			hadSpace = p.skipSpaces()
		default:
			hadSpace = true
		}
	} else {
		hadSpace = true
	}

	annotation := p.maybeParseAnnotation()
	if annotation != nil {
		if !hadSpace {
			p.report(diag.AnnotationMissingSpaceBefore(annotation.Span()))
		}
		hadSpace = p.skipSpaces()
	}

	attributes := p.parseAttributes(hadSpace)

	_, closed := p.eat('}')
	end := p.currentLocation()
	span := pos.NewSpan(start, end)
	if !closed {
		p.report(diag.PlaceholderMissingClosingBrace(span))
	}

	switch {
	case variable != nil:
		return &ast.VariableExpression{SpanValue: span, Variable: variable, Annotation: annotation, Attributes: attributes}
	case literal != nil:
		return &ast.LiteralExpression{SpanValue: span, Literal: literal, Annotation: annotation, Attributes: attributes}
	case annotation != nil:
		return &ast.AnnotationExpression{SpanValue: span, Annotation: annotation, Attributes: attributes}
	default:
		p.report(diag.PlaceholderMissingBody(span))
		return &ast.LiteralExpression{
			SpanValue:  span,
			Literal:    &ast.Text{Start: span.Start, Content: ""},
			Attributes: attributes,
		}
	}
}

// parseAttributes parses a `@key[=value]` run for either a placeholder
// or a markup tag. hadSpace reports whether a space preceded the first
// candidate '@'. Each attribute requires a leading space; a missing one
// is reported but does not stop parsing, matching the rest of the
// parser's non-failing recovery style.
func (p *parser) parseAttributes(hadSpace bool) []*ast.Attribute {
	var attributes []*ast.Attribute
	for {
		start, ok := p.eat('@')
		if !ok {
			break
		}
		var attr *ast.Attribute
		attr, hadSpace = p.finishAttribute(start, hadSpace)
		attributes = append(attributes, attr)
	}
	return attributes
}

// finishAttribute parses a `key[=value]` attribute body, given that the
// leading '@' at start has already been consumed. hadSpace reports
// whether a space preceded that '@'. spaceAfter reports whether a space
// followed the parsed attribute, so that callers driving their own loop
// (e.g. [parser.parseMarkup], which interleaves attributes with options)
// know whether another one may follow.
func (p *parser) finishAttribute(start pos.Location, hadSpace bool) (attr *ast.Attribute, spaceAfter bool) {
	if !hadSpace {
		p.report(diag.AttributeMissingSpaceBefore(pos.NewSpan(start, start.Add("@"))))
	}
	if p.skipSpaces() {
		p.report(diag.AttributeInvalidSpacesAfterAt(pos.NewSpan(start, p.currentLocation())))
	}

	key := p.parseIdentifier()
	var value ast.Literal
	spaceAfter = p.skipSpaces()
	if _, ok := p.eat('='); ok {
		p.skipSpaces()
		lv := p.parseLiteralOrVariable()
		if lit, ok := lv.(ast.Literal); ok {
			value = lit
		} else if lv == nil {
			end := p.currentLocation()
			p.report(diag.AttributeMissingValue(pos.NewSpan(start, end)))
			value = &ast.Text{Start: end, Content: ""}
		}
		spaceAfter = p.skipSpaces()
	}

	return &ast.Attribute{
		SpanValue: pos.NewSpan(start, p.currentLocation()),
		Key:       key,
		Value:     value,
	}, spaceAfter
}

func (p *parser) parseLiteralOrVariable() ast.LiteralOrVariable {
	_, c, ok := p.peek()
	if !ok {
		return nil
	}
	switch {
	case c == '$':
		return p.parseVariable()
	case c == '|':
		return p.parseQuoted()
	case IsNameStart(c):
		return p.parseLiteralName()
	case c == '-' || c == '.' || isDigit(c):
		return p.parseNumber()
	default:
		return nil
	}
}

func (p *parser) parseVariable() *ast.Variable {
	start, _, _ := p.next() // consume '$'
	name := p.parseName()
	return &ast.Variable{SpanValue: pos.NewSpan(start, p.currentLocation()), Name: name}
}

func (p *parser) parseIdentifier() *ast.Identifier {
	start := p.currentLocation()
	nameOrNamespace := p.parseName()

	var id *ast.Identifier
	if _, ok := p.eat(':'); ok {
		name := p.parseName()
		ns := nameOrNamespace
		id = &ast.Identifier{Start: start, Namespace: &ns, Name: name}
	} else {
		id = &ast.Identifier{Start: start, Name: nameOrNamespace}
	}

	if id.Name == "" {
		p.report(diag.MissingIdentifierName(id))
	}
	if id.Namespace != nil && *id.Namespace == "" {
		p.report(diag.MissingIdentifierNamespace(id))
	}
	return id
}

func (p *parser) skipName() {
	if _, c, ok := p.peek(); ok && IsNameStart(c) {
		p.next()
		for {
			_, c, ok := p.peek()
			if !ok || !IsNameChar(c) {
				break
			}
			p.next()
		}
	}
}

func (p *parser) parseName() string {
	start := p.currentLocation()
	p.skipName()
	return p.cursor.Slice(pos.NewSpan(start, p.currentLocation()))
}

func (p *parser) parseLiteralName() *ast.Text {
	start := p.currentLocation()
	p.skipName()
	return p.sliceText(pos.NewSpan(start, p.currentLocation()))
}

func (p *parser) parseLiteral() ast.Literal {
	_, c, ok := p.peek()
	if !ok {
		return &ast.Text{Start: p.currentLocation(), Content: ""}
	}
	switch {
	case c == '|':
		return p.parseQuoted()
	case c == '-' || c == '.' || isDigit(c):
		return p.parseNumber()
	default:
		return p.parseLiteralName()
	}
}

func isDigit(r rune) bool { return r >= '0' && r <= '9' }

type markupStartKind int

const (
	markupOpenOrStandalone markupStartKind = iota
	markupClose
)
