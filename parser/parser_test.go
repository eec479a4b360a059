package parser_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lucacasonato/mf2/ast"
	"github.com/lucacasonato/mf2/diag"
	"github.com/lucacasonato/mf2/parser"
)

func parseOK(t *testing.T, text string) ast.Message {
	t.Helper()
	msg, diags, _ := parser.Parse(context.Background(), text)
	require.Equal(t, 0, diags.Len(), "unexpected diagnostics: %v", diags.Diagnostics())
	return msg
}

func TestParse_SimpleText(t *testing.T) {
	t.Parallel()

	msg := parseOK(t, "Hello, world!")
	pat, ok := msg.(*ast.Pattern)
	require.True(t, ok)
	require.Len(t, pat.Parts, 1)
	text, ok := pat.Parts[0].(*ast.Text)
	require.True(t, ok)
	assert.Equal(t, "Hello, world!", text.Content)
}

func TestParse_EscapeSequences(t *testing.T) {
	t.Parallel()

	msg := parseOK(t, `\{\}\|\\`)
	pat := msg.(*ast.Pattern)
	require.Len(t, pat.Parts, 4)
	for i, want := range []rune{'{', '}', '|', '\\'} {
		esc, ok := pat.Parts[i].(*ast.Escape)
		require.True(t, ok)
		assert.Equal(t, want, esc.EscapedChar)
	}
}

func TestParse_EscapeInvalidCharacter(t *testing.T) {
	t.Parallel()

	_, diags, _ := parser.Parse(context.Background(), `\n`)
	require.Equal(t, 1, diags.Len())
	assert.Equal(t, diag.KindEscapeInvalidCharacter, diags.Diagnostics()[0].Kind())
}

func TestParse_VariablePlaceholder(t *testing.T) {
	t.Parallel()

	msg := parseOK(t, "Hi {$name}!")
	pat := msg.(*ast.Pattern)
	require.Len(t, pat.Parts, 3)
	ve, ok := pat.Parts[1].(*ast.VariableExpression)
	require.True(t, ok)
	assert.Equal(t, "name", ve.Variable.Name)
	assert.Nil(t, ve.Annotation)
}

func TestParse_PlaceholderWithAnnotationAndAttribute(t *testing.T) {
	t.Parallel()

	msg := parseOK(t, "{$count :number minimumFractionDigits=2 @foo=|bar|}")
	pat := msg.(*ast.Pattern)
	ve := pat.Parts[0].(*ast.VariableExpression)

	fn, ok := ve.Annotation.(*ast.Function)
	require.True(t, ok)
	assert.Equal(t, "number", fn.ID.Name)
	require.Len(t, fn.Options, 1)
	assert.Equal(t, "minimumFractionDigits", fn.Options[0].Key.Name)

	require.Len(t, ve.Attributes, 1)
	assert.Equal(t, "foo", ve.Attributes[0].Key.Name)
}

// TestParse_OptionMissingNamespaceRecovers covers an option key that
// omits its namespace: the leading ':' would otherwise not be a valid
// name-start character, so the option loop must specifically allow it
// as a recovery trigger rather than bailing out of the loop early.
func TestParse_OptionMissingNamespaceRecovers(t *testing.T) {
	t.Parallel()

	msg, diags, _ := parser.Parse(context.Background(), "{:fn :opt=1}")
	pat := msg.(*ast.Pattern)
	ae := pat.Parts[0].(*ast.AnnotationExpression)
	fn, ok := ae.Annotation.(*ast.Function)
	require.True(t, ok)
	require.Len(t, fn.Options, 1)
	assert.Equal(t, "opt", fn.Options[0].Key.Name)
	require.NotNil(t, fn.Options[0].Key.Namespace)
	assert.Equal(t, "", *fn.Options[0].Key.Namespace)

	found := false
	for _, d := range diags.Diagnostics() {
		if d.Kind() == diag.KindMissingIdentifierNamespace {
			found = true
		}
	}
	assert.True(t, found)
}

func TestParse_PlaceholderMissingBody(t *testing.T) {
	t.Parallel()

	_, diags, _ := parser.Parse(context.Background(), "{}")
	require.Equal(t, 1, diags.Len())
	assert.Equal(t, diag.KindPlaceholderMissingBody, diags.Diagnostics()[0].Kind())
}

func TestParse_PlaceholderMissingClosingBrace(t *testing.T) {
	t.Parallel()

	msg, diags, _ := parser.Parse(context.Background(), "{$x")
	require.Equal(t, 1, diags.Len())
	assert.Equal(t, diag.KindPlaceholderMissingClosingBrace, diags.Diagnostics()[0].Kind())
	pat := msg.(*ast.Pattern)
	require.Len(t, pat.Parts, 1)
}

func TestParse_UnescapedClosingBrace(t *testing.T) {
	t.Parallel()

	_, diags, _ := parser.Parse(context.Background(), "a}b")
	require.Equal(t, 1, diags.Len())
	assert.Equal(t, diag.KindInvalidClosingBrace, diags.Diagnostics()[0].Kind())
}

func TestParse_MarkupOpenAndClose(t *testing.T) {
	t.Parallel()

	msg := parseOK(t, "{#b}bold{/b}")
	pat := msg.(*ast.Pattern)
	require.Len(t, pat.Parts, 3)

	open := pat.Parts[0].(*ast.Markup)
	assert.Equal(t, ast.MarkupOpen, open.Kind)
	assert.Equal(t, "b", open.ID.Name)

	close_ := pat.Parts[2].(*ast.Markup)
	assert.Equal(t, ast.MarkupClose, close_.Kind)
}

func TestParse_MarkupStandalone(t *testing.T) {
	t.Parallel()

	msg := parseOK(t, "{#img src=|pic.png| /}")
	pat := msg.(*ast.Pattern)
	markup := pat.Parts[0].(*ast.Markup)
	assert.Equal(t, ast.MarkupStandalone, markup.Kind)
	require.Len(t, markup.Options, 1)
}

func TestParse_MarkupOptionAfterAttributeIsReported(t *testing.T) {
	t.Parallel()

	_, diags, _ := parser.Parse(context.Background(), "{#b @foo=|x| bar=42}")
	require.NotEmpty(t, diags.Diagnostics())
	found := false
	for _, d := range diags.Diagnostics() {
		if d.Kind() == diag.KindMarkupOptionAfterAttribute {
			found = true
		}
	}
	assert.True(t, found)
}

func TestParse_QuotedLiteral(t *testing.T) {
	t.Parallel()

	msg := parseOK(t, `{|hello \| world|}`)
	pat := msg.(*ast.Pattern)
	le := pat.Parts[0].(*ast.LiteralExpression)
	q, ok := le.Literal.(*ast.Quoted)
	require.True(t, ok)
	require.Len(t, q.Parts, 3)
}

func TestParse_UnterminatedQuoted(t *testing.T) {
	t.Parallel()

	// The placeholder's own missing-brace diagnostic starts at '{', one
	// byte before the quoted literal's, so it sorts first.
	_, diags, _ := parser.Parse(context.Background(), `{|hello}`)
	require.NotEmpty(t, diags.Diagnostics())
	assert.Equal(t, diag.KindUnterminatedQuoted, diags.Diagnostics()[1].Kind())
}

func TestParse_NumberParts(t *testing.T) {
	t.Parallel()

	msg := parseOK(t, "{-12.5e-3}")
	pat := msg.(*ast.Pattern)
	le := pat.Parts[0].(*ast.LiteralExpression)
	n, ok := le.Literal.(*ast.Number)
	require.True(t, ok)

	assert.True(t, n.IsNegative)
	assert.Equal(t, "12", n.IntegralPart())
	frac, ok := n.FractionalPart()
	require.True(t, ok)
	assert.Equal(t, "5", frac)
	sign, exp, ok := n.ExponentPart()
	require.True(t, ok)
	assert.Equal(t, ast.ExponentSignMinus, sign)
	assert.Equal(t, "3", exp)
}

func TestParse_NumberMissingFractionalPart(t *testing.T) {
	t.Parallel()

	_, diags, _ := parser.Parse(context.Background(), "{1.}")
	require.NotEmpty(t, diags.Diagnostics())
	assert.Equal(t, diag.KindNumberMissingFractionalPart, diags.Diagnostics()[0].Kind())
}

func TestParse_ComplexMessageWithDeclarations(t *testing.T) {
	t.Parallel()

	msg := parseOK(t, ".input {$name} .local $greeting = {$name :string} {{Hello, {$greeting}!}}")
	cm, ok := msg.(*ast.ComplexMessage)
	require.True(t, ok)
	require.Len(t, cm.Declarations, 2)

	input, ok := cm.Declarations[0].(*ast.InputDeclaration)
	require.True(t, ok)
	assert.Equal(t, "name", input.Expression.Variable.Name)

	local, ok := cm.Declarations[1].(*ast.LocalDeclaration)
	require.True(t, ok)
	assert.Equal(t, "greeting", local.Variable.Name)

	_, ok = cm.Body.(*ast.QuotedPattern)
	require.True(t, ok)
}

func TestParse_Matcher(t *testing.T) {
	t.Parallel()

	msg := parseOK(t, ".input {$count :number} .match $count one {{one}} * {{other}}")
	cm := msg.(*ast.ComplexMessage)
	matcher, ok := cm.Body.(*ast.Matcher)
	require.True(t, ok)
	require.Len(t, matcher.Selectors, 1)
	require.Len(t, matcher.Variants, 2)

	_, isStar := matcher.Variants[1].Keys[0].(*ast.Star)
	assert.True(t, isStar)
}

func TestParse_MatcherMissingSelector(t *testing.T) {
	t.Parallel()

	_, diags, _ := parser.Parse(context.Background(), ".match * {{x}}")
	found := false
	for _, d := range diags.Diagnostics() {
		if d.Kind() == diag.KindMatcherMissingSelector {
			found = true
		}
	}
	assert.True(t, found)
}

func TestParse_NeverReturnsNilMessage(t *testing.T) {
	t.Parallel()

	for _, text := range []string{"", "{", "{{", ".input", ".local $x =", ".match"} {
		msg, _, _ := parser.Parse(context.Background(), text)
		assert.NotNil(t, msg, "input %q produced a nil message", text)
	}
}
