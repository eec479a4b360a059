package printer_test

import (
	"context"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lucacasonato/mf2/ast"
	"github.com/lucacasonato/mf2/parser"
	"github.com/lucacasonato/mf2/pos"
	"github.com/lucacasonato/mf2/printer"
)

// ignoreSpans treats all position info as equal, so cmp.Diff compares
// only the shape of two trees, not where their bytes happened to land —
// reprinting normalizes whitespace, so positions never round-trip.
var ignoreSpans = cmp.Options{
	cmp.Comparer(func(a, b pos.Span) bool { return true }),
	cmp.Comparer(func(a, b pos.Location) bool { return true }),
}

func print(t *testing.T, text string) string {
	t.Helper()
	msg, diags, _ := parser.Parse(context.Background(), text)
	require.Equal(t, 0, diags.Len(), "unexpected diagnostics: %v", diags.Diagnostics())
	return printer.Print(context.Background(), msg)
}

func TestPrint_PlainText(t *testing.T) {
	t.Parallel()
	assert.Equal(t, "Hello, world!", print(t, "Hello, world!"))
}

func TestPrint_EscapesBraces(t *testing.T) {
	t.Parallel()
	assert.Equal(t, `\{not a placeholder\}`, print(t, `\{not a placeholder\}`))
}

func TestPrint_VariableExpression(t *testing.T) {
	t.Parallel()
	assert.Equal(t, "{ $name }", print(t, "{$name}"))
}

func TestPrint_AnnotationExpression(t *testing.T) {
	t.Parallel()
	assert.Equal(t, "{ :now }", print(t, "{:now}"))
}

func TestPrint_OptionsAndAttributes(t *testing.T) {
	t.Parallel()
	out := print(t, "{$x :number minimumFractionDigits=2 @foo}")
	assert.Equal(t, "{ $x :number minimumFractionDigits=2 @foo }", out)
}

func TestPrint_Markup(t *testing.T) {
	t.Parallel()
	assert.Equal(t, "{#b }bold{/b }", print(t, "{#b}bold{/b}"))
}

func TestPrint_MarkupStandalone(t *testing.T) {
	t.Parallel()
	assert.Equal(t, "{#img /}", print(t, "{#img/}"))
}

func TestPrint_ComplexMessageRoundTrip(t *testing.T) {
	t.Parallel()
	out := print(t, ".input {$name} {{Hi, {$name}!}}")
	assert.Equal(t, ".input { $name }\n\n{{Hi, { $name }!}}\n", out)
}

func TestPrint_MatcherColumnAlignment(t *testing.T) {
	t.Parallel()
	out := print(t, ".input {$count :number} .match $count one {{one}} * {{other}}")
	assert.Equal(t, ".input { $count :number }\n\n.match\n$count\none    {{one}}\n*      {{other}}\n", out)
}

// TestPrint_RoundTripPreservesShape reprints a message and reparses the
// result, then diffs the two trees structurally (ignoring spans, which
// shift because reprinting normalizes whitespace): printing must be a
// fixpoint over the AST shape, not just produce plausible-looking text.
func TestPrint_RoundTripPreservesShape(t *testing.T) {
	t.Parallel()

	const text = ".input {$count :number} .local $x = {42} .match $count one {{one {$x}}} * {{{$count} other}}"
	first := parseMsg(t, text)
	reprinted := printer.Print(context.Background(), first)
	second := parseMsg(t, reprinted)

	if diff := cmp.Diff(first, second, ignoreSpans); diff != "" {
		t.Errorf("reprinted message differs in shape from the original (-want +got):\n%s", diff)
	}
}

func parseMsg(t *testing.T, text string) ast.Message {
	t.Helper()
	msg, diags, _ := parser.Parse(context.Background(), text)
	require.Equal(t, 0, diags.Len(), "unexpected diagnostics for %q: %v", text, diags.Diagnostics())
	return msg
}
