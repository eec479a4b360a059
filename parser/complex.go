package parser

import (
	"github.com/lucacasonato/mf2/ast"
	"github.com/lucacasonato/mf2/diag"
	"github.com/lucacasonato/mf2/pos"
)

// peekKeyword reports whether the upcoming input spells out "."+kw,
// without consuming anything. Complex-message dispatch uses this instead
// of a single extra lookahead rune because ".input", ".local", and
// ".match" all share the leading '.' and must be told apart before
// committing to a parse path.
func (p *parser) peekKeyword(kw string) bool {
	reset := p.currentLocation()
	defer p.cursor.ResetTo(reset)

	if _, ok := p.eat('.'); !ok {
		return false
	}
	return p.parseName() == kw
}

// parseComplexMessage parses a declarations-then-body complex message,
// having already classified the input as complex by [parser.parseMessage].
func (p *parser) parseComplexMessage() *ast.ComplexMessage {
	start := p.currentLocation()

	var declarations []ast.Declaration
	for p.peekKeyword("input") || p.peekKeyword("local") {
		declarations = append(declarations, p.parseDeclaration())
	}

	body := p.parseComplexMessageBody()

	return &ast.ComplexMessage{
		SpanValue:    pos.NewSpan(start, p.currentLocation()),
		Declarations: declarations,
		Body:         body,
	}
}

func (p *parser) parseDeclaration() ast.Declaration {
	if p.peekKeyword("input") {
		return p.parseInputDeclaration()
	}
	return p.parseLocalDeclaration()
}

// parseInputDeclaration parses a `.input {$var ...}` declaration. A body
// that turns out not to be a variable expression (e.g. `.input {42}`) is
// reported rather than silently accepted, and replaced with a synthetic
// reference to an empty-named variable so the declaration always has a
// usable Expression.
func (p *parser) parseInputDeclaration() *ast.InputDeclaration {
	start, _ := p.eat('.')
	p.skipName() // "input"
	p.skipSpaces()

	expr := p.parseDeclarationVariableExpression()
	p.skipSpaces()

	return &ast.InputDeclaration{Start: start, Expression: expr}
}

func (p *parser) parseDeclarationVariableExpression() *ast.VariableExpression {
	braceStart, ok := p.eat('{')
	if !ok {
		loc := p.currentLocation()
		p.report(diag.InputDeclarationMissingVariable(pos.NewSpan(loc, loc)))
		return emptyVariableExpression(loc)
	}

	p.skipSpaces()
	body := p.parseExpressionBody(braceStart)
	if ve, ok := body.(*ast.VariableExpression); ok {
		return ve
	}
	p.report(diag.InputDeclarationMissingVariable(body.Span()))
	return &ast.VariableExpression{
		SpanValue: body.Span(),
		Variable:  &ast.Variable{SpanValue: body.Span(), Name: ""},
	}
}

func emptyVariableExpression(loc pos.Location) *ast.VariableExpression {
	span := pos.NewSpan(loc, loc)
	return &ast.VariableExpression{SpanValue: span, Variable: &ast.Variable{SpanValue: span, Name: ""}}
}

// parseLocalDeclaration parses a `.local $var = {expr}` declaration.
func (p *parser) parseLocalDeclaration() *ast.LocalDeclaration {
	start, _ := p.eat('.')
	p.skipName() // "local"
	p.skipSpaces()

	var variable *ast.Variable
	if _, c, ok := p.peek(); ok && c == '$' {
		variable = p.parseVariable()
	} else {
		loc := p.currentLocation()
		variable = &ast.Variable{SpanValue: pos.NewSpan(loc, loc), Name: ""}
		p.report(diag.LocalDeclarationMissingVariable(variable.Span()))
	}
	p.skipSpaces()
	p.eat('=')
	p.skipSpaces()

	var expr ast.Expression
	if braceStart, ok := p.eat('{'); ok {
		p.skipSpaces()
		expr = p.parseExpressionBody(braceStart)
	} else {
		loc := p.currentLocation()
		p.report(diag.PlaceholderMissingBody(pos.NewSpan(loc, loc)))
		expr = &ast.LiteralExpression{
			SpanValue: pos.NewSpan(loc, loc),
			Literal:   &ast.Text{Start: loc, Content: ""},
		}
	}
	p.skipSpaces()

	return &ast.LocalDeclaration{Start: start, Variable: variable, Expression: expr}
}

func (p *parser) parseComplexMessageBody() ast.ComplexMessageBody {
	if p.peekKeyword("match") {
		return p.parseMatcher()
	}
	return p.parseQuotedPatternBody()
}

// parseQuotedPatternBody parses a `{{ ... }}`-delimited pattern. Missing
// opening or closing brace pairs are reported but never block parsing:
// whatever pattern content can be recovered between them is kept.
func (p *parser) parseQuotedPatternBody() *ast.QuotedPattern {
	start := p.currentLocation()
	_, open1 := p.eat('{')
	_, open2 := p.eat('{')
	if !open1 || !open2 {
		p.report(diag.QuotedPatternMissingOpeningBraces(pos.NewSpan(start, p.currentLocation())))
	}

	pattern := p.parseQuotedPatternContent()

	closeStart := p.currentLocation()
	_, close1 := p.eat('}')
	_, close2 := p.eat('}')
	if !close1 || !close2 {
		p.report(diag.QuotedPatternMissingClosingBraces(pos.NewSpan(closeStart, p.currentLocation())))
	}

	return &ast.QuotedPattern{SpanValue: pos.NewSpan(start, p.currentLocation()), Pattern: pattern}
}

// parseQuotedPatternContent parses the pattern content between a quoted
// pattern's delimiters. It is identical to [parser.parseSimpleMessage]
// except that a run of text also stops before a "}}" pair, which ends
// the quoted pattern rather than being reported as an invalid closing
// brace.
func (p *parser) parseQuotedPatternContent() *ast.Pattern {
	var parts []ast.PatternPart
	start := p.currentLocation()

	for {
		loc, c, ok := p.peek()
		if !ok {
			break
		}
		if c == '}' {
			if _, c2, ok2 := p.peek2(); ok2 && c2 == '}' {
				break
			}
			p.report(diag.InvalidClosingBrace(loc))
			p.next()
			continue
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

// parseMatcher parses a `.match $sel ... variant...` statement. A
// missing selector is reported but the matcher is still returned with
// whatever variants follow. A matcher with no variants, or a variant
// whose key count differs from the selector count, is accepted without
// a diagnostic; neither this parser nor package scope checks those counts.
func (p *parser) parseMatcher() *ast.Matcher {
	start, _ := p.eat('.')
	p.skipName() // "match"

	var selectors []*ast.Variable
	for {
		reset := p.currentLocation()
		if !p.skipSpaces() {
			p.cursor.ResetTo(reset)
			break
		}
		if _, c, ok := p.peek(); !ok || c != '$' {
			p.cursor.ResetTo(reset)
			break
		}
		selectors = append(selectors, p.parseVariable())
	}
	if len(selectors) == 0 {
		p.report(diag.MatcherMissingSelector(pos.NewSpan(start, p.currentLocation())))
	}

	var variants []*ast.Variant
	for {
		p.skipSpaces()
		if !p.atKeyStart() {
			break
		}
		variants = append(variants, p.parseVariant())
	}

	return &ast.Matcher{Start: start, Selectors: selectors, Variants: variants}
}

func (p *parser) atKeyStart() bool {
	_, c, ok := p.peek()
	if !ok {
		return false
	}
	return c == '*' || c == '|' || c == '-' || isDigit(c) || IsNameStart(c)
}

func (p *parser) parseVariant() *ast.Variant {
	var keys []ast.Key
	for {
		if key := p.parseKey(); key != nil {
			keys = append(keys, key)
		}
		p.skipSpaces()
		if !p.atKeyStart() {
			break
		}
	}

	return &ast.Variant{Keys: keys, Pattern: p.parseQuotedPatternBody()}
}

func (p *parser) parseKey() ast.Key {
	if loc, ok := p.eat('*'); ok {
		return &ast.Star{Start: loc}
	}
	if key, ok := p.parseLiteral().(ast.Key); ok {
		return key
	}
	return nil
}
