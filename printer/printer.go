// Package printer renders a parsed [ast.Message] back into
// MessageFormat 2 syntax text, normalizing whitespace, escaping, and
// `.match` variant key alignment to a single canonical form, grounded
// on the reference implementation's printer.rs.
//
// Printing never fails: a message built entirely from the parser's
// recovery nodes (an empty [ast.Text], a zero-span [ast.Variable])
// still renders to some string, just as parsing it never returned an
// error in the first place.
package printer

import (
	"context"
	"strings"
	"unicode/utf8"

	"github.com/lucacasonato/mf2/ast"
	"github.com/lucacasonato/mf2/internal/trace"
)

// Print renders msg as MessageFormat 2 syntax.
func Print(ctx context.Context, msg ast.Message, opts ...Option) string {
	cfg := defaultConfig()
	applyOptions(cfg, opts)

	op := trace.Begin(ctx, cfg.logger, "mf2.printer.print")
	defer func() { op.End(nil) }()

	p := &printer{}
	switch m := msg.(type) {
	case *ast.Pattern:
		p.printPattern(m)
	case *ast.ComplexMessage:
		p.printComplexMessage(m)
	}
	return p.sb.String()
}

type printer struct {
	sb strings.Builder
}

func (p *printer) printPattern(pat *ast.Pattern) {
	for _, part := range pat.Parts {
		p.printPatternPart(part)
	}
}

func (p *printer) printPatternPart(part ast.PatternPart) {
	switch n := part.(type) {
	case *ast.Text:
		p.printText(n.Content)
	case *ast.Escape:
		p.sb.WriteByte('\\')
		p.sb.WriteRune(n.EscapedChar)
	case *ast.LiteralExpression:
		p.printLiteralExpression(n)
	case *ast.VariableExpression:
		p.printVariableExpression(n)
	case *ast.AnnotationExpression:
		p.printAnnotationExpression(n)
	case *ast.Markup:
		p.printMarkup(n)
	}
}

// printText escapes the three characters that are meaningful inside
// plain pattern text: a literal brace would otherwise open or close a
// placeholder, and a literal backslash would otherwise start an escape.
func (p *printer) printText(s string) {
	for _, r := range s {
		switch r {
		case '\\', '{', '}':
			p.sb.WriteByte('\\')
			p.sb.WriteRune(r)
		default:
			p.sb.WriteRune(r)
		}
	}
}

// printExpression wraps an expression's body, annotation, and
// attributes in `{ ... }`, always with a leading space after '{' and a
// trailing one before '}'. writeBody may leave the builder ending in a
// space already (a bare annotation expression does); printAnnotation
// only adds one of its own when the last byte written isn't already a
// space, matching printer.rs's helper_visit_expression.
func (p *printer) printExpression(writeBody func(), ann ast.Annotation, attrs []*ast.Attribute) {
	p.sb.WriteByte('{')
	p.sb.WriteByte(' ')
	writeBody()
	p.printAnnotation(ann)
	p.printAttributes(attrs)
	p.sb.WriteByte(' ')
	p.sb.WriteByte('}')
}

func (p *printer) printLiteralExpression(n *ast.LiteralExpression) {
	p.printExpression(func() { p.printLiteral(n.Literal) }, n.Annotation, n.Attributes)
}

func (p *printer) printVariableExpression(n *ast.VariableExpression) {
	p.printExpression(func() { p.printVariable(n.Variable) }, n.Annotation, n.Attributes)
}

func (p *printer) printAnnotationExpression(n *ast.AnnotationExpression) {
	p.printExpression(func() {}, n.Annotation, n.Attributes)
}

func (p *printer) printVariable(v *ast.Variable) {
	p.sb.WriteByte('$')
	p.sb.WriteString(v.Name)
}

// printAnnotation prints ann, adding a separating space first only if
// the builder doesn't already end in one (a bare annotation expression
// writes no body, so the space printExpression already wrote suffices).
func (p *printer) printAnnotation(ann ast.Annotation) {
	if ann == nil {
		return
	}
	if s := p.sb.String(); len(s) == 0 || s[len(s)-1] != ' ' {
		p.sb.WriteByte(' ')
	}
	if fn, ok := ann.(*ast.Function); ok {
		p.printFunctionAnnotation(fn)
	}
}

func (p *printer) printFunctionAnnotation(fn *ast.Function) {
	p.sb.WriteByte(':')
	p.printIdentifier(fn.ID)
	for _, opt := range fn.Options {
		p.sb.WriteByte(' ')
		p.printOption(opt)
	}
}

func (p *printer) printIdentifier(id *ast.Identifier) {
	if id.Namespace != nil {
		p.sb.WriteString(*id.Namespace)
		p.sb.WriteByte(':')
	}
	p.sb.WriteString(id.Name)
}

func (p *printer) printOption(opt *ast.FnOrMarkupOption) {
	p.printIdentifier(opt.Key)
	p.sb.WriteByte('=')
	p.printLiteralOrVariable(opt.Value)
}

func (p *printer) printLiteralOrVariable(lv ast.LiteralOrVariable) {
	if va, ok := lv.(*ast.Variable); ok {
		p.printVariable(va)
		return
	}
	if lit, ok := lv.(ast.Literal); ok {
		p.printLiteral(lit)
	}
}

func (p *printer) printAttributes(attrs []*ast.Attribute) {
	for _, attr := range attrs {
		p.sb.WriteByte(' ')
		p.sb.WriteByte('@')
		p.printIdentifier(attr.Key)
		if attr.Value != nil {
			p.sb.WriteByte('=')
			p.printLiteral(attr.Value)
		}
	}
}

func (p *printer) printLiteral(lit ast.Literal) {
	switch l := lit.(type) {
	case *ast.Quoted:
		p.printQuoted(l)
	case *ast.Number:
		p.sb.WriteString(l.Raw)
	case *ast.Text:
		p.sb.WriteString(l.Content)
	}
}

func (p *printer) printQuoted(q *ast.Quoted) {
	p.sb.WriteByte('|')
	for _, part := range q.Parts {
		switch qp := part.(type) {
		case *ast.Text:
			p.printQuotedText(qp.Content)
		case *ast.Escape:
			p.sb.WriteByte('\\')
			p.sb.WriteRune(qp.EscapedChar)
		}
	}
	p.sb.WriteByte('|')
}

func (p *printer) printQuotedText(s string) {
	for _, r := range s {
		switch r {
		case '\\', '|':
			p.sb.WriteByte('\\')
			p.sb.WriteRune(r)
		default:
			p.sb.WriteRune(r)
		}
	}
}

func (p *printer) printMarkup(m *ast.Markup) {
	p.sb.WriteByte('{')
	switch m.Kind {
	case ast.MarkupClose:
		p.sb.WriteByte('/')
	default:
		p.sb.WriteByte('#')
	}
	p.printIdentifier(m.ID)
	for _, opt := range m.Options {
		p.sb.WriteByte(' ')
		p.printOption(opt)
	}
	p.printAttributes(m.Attributes)
	p.sb.WriteByte(' ')
	if m.Kind == ast.MarkupStandalone {
		p.sb.WriteByte('/')
	}
	p.sb.WriteByte('}')
}

func (p *printer) printComplexMessage(m *ast.ComplexMessage) {
	for _, decl := range m.Declarations {
		p.printDeclaration(decl)
		p.sb.WriteByte('\n')
	}
	if len(m.Declarations) > 0 {
		p.sb.WriteByte('\n')
	}
	switch body := m.Body.(type) {
	case *ast.QuotedPattern:
		p.printQuotedPattern(body)
	case *ast.Matcher:
		p.printMatcher(body)
	}
	p.sb.WriteByte('\n')
}

func (p *printer) printDeclaration(decl ast.Declaration) {
	switch d := decl.(type) {
	case *ast.InputDeclaration:
		p.sb.WriteString(".input ")
		p.printVariableExpression(d.Expression)
	case *ast.LocalDeclaration:
		p.sb.WriteString(".local ")
		p.printVariable(d.Variable)
		p.sb.WriteString(" = ")
		p.printPatternPart(d.Expression)
	}
}

func (p *printer) printQuotedPattern(qp *ast.QuotedPattern) {
	p.sb.WriteString("{{")
	p.printPattern(qp.Pattern)
	p.sb.WriteString("}}")
}

// printMatcher prints a `.match` statement with its selector line and
// every variant's key column independently width-aligned to the widest
// key (or selector name) in that column, mirroring printer.rs's
// two-pass approach: measure every column's widest entry before
// emitting any line.
func (p *printer) printMatcher(m *ast.Matcher) {
	p.sb.WriteString(".match\n")

	numCols := len(m.Selectors)
	for _, variant := range m.Variants {
		if len(variant.Keys) > numCols {
			numCols = len(variant.Keys)
		}
	}
	colWidth := make([]int, numCols)
	for i, sel := range m.Selectors {
		colWidth[i] = utf8.RuneCountInString(sel.Name) + 1
	}

	printedKeys := make([][]string, len(m.Variants))
	for i, variant := range m.Variants {
		row := make([]string, numCols)
		for j, key := range variant.Keys {
			kp := &printer{}
			kp.printKey(key)
			row[j] = kp.sb.String()
			if n := utf8.RuneCountInString(row[j]); n > colWidth[j] {
				colWidth[j] = n
			}
		}
		printedKeys[i] = row
	}

	for i, sel := range m.Selectors {
		p.printVariable(sel)
		if i < len(m.Selectors)-1 {
			p.sb.WriteString(strings.Repeat(" ", colWidth[i]-utf8.RuneCountInString(sel.Name)))
		}
	}

	for i, variant := range m.Variants {
		p.sb.WriteByte('\n')
		for j := 0; j < numCols; j++ {
			key := printedKeys[i][j]
			p.sb.WriteString(key)
			p.sb.WriteString(strings.Repeat(" ", colWidth[j]-utf8.RuneCountInString(key)))
			p.sb.WriteByte(' ')
		}
		p.printQuotedPattern(variant.Pattern)
	}
}

func (p *printer) printKey(key ast.Key) {
	if _, ok := key.(*ast.Star); ok {
		p.sb.WriteByte('*')
		return
	}
	if lit, ok := key.(ast.Literal); ok {
		p.printLiteral(lit)
	}
}
