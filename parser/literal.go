package parser

import (
	"github.com/lucacasonato/mf2/ast"
	"github.com/lucacasonato/mf2/diag"
	"github.com/lucacasonato/mf2/pos"
)

// parseQuoted parses a `|...|`-delimited literal, starting at the
// opening '|'. A missing closing '|' is recovered from by treating the
// rest of the text as the quoted string's content and reporting
// [diag.UnterminatedQuoted], rather than failing the parse.
func (p *parser) parseQuoted() *ast.Quoted {
	start, _, _ := p.next() // consume opening '|'

	var parts []ast.QuotedPart
	partStart := p.currentLocation()
	closed := false

	for {
		loc, c, ok := p.peek()
		if !ok {
			break
		}
		switch c {
		case '|':
			if loc != partStart {
				parts = append(parts, p.sliceText(pos.NewSpan(partStart, loc)))
			}
			p.next()
			closed = true
		case '\\':
			if loc != partStart {
				parts = append(parts, p.sliceText(pos.NewSpan(partStart, loc)))
			}
			if escape := p.parseEscape(); escape != nil {
				parts = append(parts, escape)
			}
			partStart = p.currentLocation()
		case 0:
			p.report(diag.InvalidNullCharacter(loc))
			p.next()
		default:
			p.next()
		}
		if closed {
			break
		}
	}

	end := p.currentLocation()
	if !closed && end != partStart {
		parts = append(parts, p.sliceText(pos.NewSpan(partStart, end)))
	}

	span := pos.NewSpan(start, end)
	if !closed {
		p.report(diag.UnterminatedQuoted(span))
	}

	return &ast.Quoted{SpanValue: span, Parts: parts}
}

// parseDigits consumes a (possibly empty) run of ASCII digits.
func (p *parser) parseDigits() {
	for {
		_, c, ok := p.peek()
		if !ok || !isDigit(c) {
			break
		}
		p.next()
	}
}

// parseNumber parses a numeric literal: an optional '-' sign, an
// integral part, an optional fractional part, and an optional exponent
// part. Each missing required digit run is reported but does not stop
// parsing — the resulting [ast.Number] always has a usable Raw string
// and span, even for malformed input like "-" or "1." alone.
func (p *parser) parseNumber() *ast.Number {
	start := p.currentLocation()

	isNegative := false
	if _, ok := p.eat('-'); ok {
		isNegative = true
	}

	integralStart := p.currentLocation()
	p.parseDigits()
	integralEnd := p.currentLocation()
	integralLen := pos.NewLengthShort(pos.NewSpan(integralStart, integralEnd))
	integralPart := p.cursor.Slice(pos.NewSpan(integralStart, integralEnd))

	var fractionalLen *pos.LengthShort
	if _, ok := p.eat('.'); ok {
		fractionalStart := p.currentLocation()
		p.parseDigits()
		l := pos.NewLengthShort(pos.NewSpan(fractionalStart, p.currentLocation()))
		fractionalLen = &l
	}

	exponentSign := ast.ExponentSignNone
	var exponentLen *pos.LengthShort
	if _, c, ok := p.peek(); ok && (c == 'e' || c == 'E') {
		p.next()
		if _, ok := p.eat('-'); ok {
			exponentSign = ast.ExponentSignMinus
		} else if _, ok := p.eat('+'); ok {
			exponentSign = ast.ExponentSignPlus
		}
		exponentStart := p.currentLocation()
		p.parseDigits()
		l := pos.NewLengthShort(pos.NewSpan(exponentStart, p.currentLocation()))
		exponentLen = &l
	}

	raw := p.cursor.Slice(pos.NewSpan(start, p.currentLocation()))
	n := &ast.Number{
		Start:         start,
		Raw:           raw,
		IsNegative:    isNegative,
		IntegralLen:   integralLen,
		FractionalLen: fractionalLen,
		ExponentSign:  exponentSign,
		ExponentLen:   exponentLen,
	}

	switch {
	case integralLen == 0:
		p.report(diag.NumberMissingIntegralPart(n))
	case integralLen > 1 && integralPart[0] == '0':
		p.report(diag.NumberLeadingZeroIntegralPart(n))
	}
	if fractionalLen != nil && *fractionalLen == 0 {
		p.report(diag.NumberMissingFractionalPart(n))
	}
	if exponentLen != nil && *exponentLen == 0 {
		p.report(diag.NumberMissingExponentPart(n))
	}

	return n
}
