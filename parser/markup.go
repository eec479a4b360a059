package parser

import (
	"github.com/lucacasonato/mf2/ast"
	"github.com/lucacasonato/mf2/diag"
	"github.com/lucacasonato/mf2/pos"
)

// maybeParseAnnotation parses a `:name option=value ...` function
// annotation if the cursor is positioned at ':', returning nil
// otherwise. Private-use and reserved annotation sigils from the
// reference grammar are not recognized here; see DESIGN.md's Open
// Question #1.
func (p *parser) maybeParseAnnotation() ast.Annotation {
	_, c, ok := p.peek()
	if !ok || c != ':' {
		return nil
	}
	start, _, _ := p.next() // consume ':'
	id := p.parseIdentifier()

	var options []*ast.FnOrMarkupOption
	for {
		reset := p.currentLocation()
		if !p.skipSpaces() {
			break
		}
		// ':' also continues the loop: it's invalid as an option key's
		// first character, but parseIdentifier/parseOption already
		// recover from a missing namespace by reporting
		// MissingIdentifierNamespace, so `{ :fn :opt=1 }` still parses
		// :opt=1 as an Option rather than aborting the loop here.
		if _, c, ok := p.peek(); !ok || !(IsNameStart(c) || c == ':') {
			p.cursor.ResetTo(reset)
			break
		}
		options = append(options, p.parseOption())
	}

	return &ast.Function{Start: start, ID: id, Options: options}
}

// parseOption parses a single `key=value` option on a function
// annotation or markup tag. A missing '=' or missing value is reported
// as [diag.OptionMissingValue] and recovered from with an empty text
// literal, rather than failing the parse.
func (p *parser) parseOption() *ast.FnOrMarkupOption {
	start := p.currentLocation()
	key := p.parseIdentifier()
	p.skipSpaces()

	var value ast.LiteralOrVariable
	if _, ok := p.eat('='); ok {
		p.skipSpaces()
		value = p.parseLiteralOrVariable()
	}

	if value == nil {
		end := p.currentLocation()
		p.report(diag.OptionMissingValue(pos.NewSpan(start, end)))
		value = &ast.Text{Start: end, Content: ""}
	}

	return &ast.FnOrMarkupOption{Key: key, Value: value}
}

// parseMarkup parses a markup placeholder's body after the opening '{'
// and any leading spaces have been consumed, and after the leading '#'
// or '/' has been classified into kind (but not yet consumed). Options
// and attributes are interleaved in one loop, matching the grammar's
// requirement that all options precede all attributes; an option found
// after an attribute is reported as [diag.MarkupOptionAfterAttribute]
// but still parsed and kept, rather than dropped.
func (p *parser) parseMarkup(start pos.Location, kind markupStartKind) *ast.Markup {
	p.next() // consume '#' or '/'

	id := p.parseIdentifier()
	hadSpace := p.skipSpaces()

	var options []*ast.FnOrMarkupOption
	var attributes []*ast.Attribute

	for {
		_, c, ok := p.peek()
		if !ok {
			break
		}
		if c == '@' {
			attrStart, _ := p.eat('@')
			var attr *ast.Attribute
			attr, hadSpace = p.finishAttribute(attrStart, hadSpace)
			attributes = append(attributes, attr)
			continue
		}
		if !hadSpace || !IsNameStart(c) {
			break
		}
		opt := p.parseOption()
		if len(attributes) > 0 {
			p.report(diag.MarkupOptionAfterAttribute(attributes[len(attributes)-1], opt))
		}
		options = append(options, opt)
		hadSpace = p.skipSpaces()
	}

	selfClose := false
	if selfCloseLoc, ok := p.eat('/'); ok {
		selfClose = true
		if kind == markupClose {
			p.report(diag.MarkupCloseInvalidSelfClose(selfCloseLoc))
		}
		if p.skipSpaces() {
			p.report(diag.MarkupInvalidSpaceBetweenSelfCloseAndBrace(
				pos.NewSpan(selfCloseLoc.Add("/"), p.currentLocation())))
		}
	}

	_, closed := p.eat('}')
	end := p.currentLocation()
	span := pos.NewSpan(start, end)
	if !closed {
		p.report(diag.MarkupMissingClosingBrace(span))
	}

	markupKind := ast.MarkupOpen
	switch {
	case kind == markupClose:
		markupKind = ast.MarkupClose
	case selfClose:
		markupKind = ast.MarkupStandalone
	}

	return &ast.Markup{
		SpanValue:  span,
		Kind:       markupKind,
		ID:         id,
		Options:    options,
		Attributes: attributes,
	}
}
