package scope_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lucacasonato/mf2/diag"
	"github.com/lucacasonato/mf2/parser"
	"github.com/lucacasonato/mf2/scope"
)

func analyze(t *testing.T, text string) (scope.Scope, diag.Result) {
	t.Helper()
	msg, parseDiags, _ := parser.Parse(context.Background(), text)
	require.Equal(t, 0, parseDiags.Len(), "unexpected parse diagnostics: %v", parseDiags.Diagnostics())

	collector := diag.NewCollector(diag.NoLimit)
	result := scope.Analyze(context.Background(), msg, collector)
	return result, collector.Result()
}

func TestAnalyze_InputDeclarationNotSelfReferential(t *testing.T) {
	t.Parallel()

	result, diags := analyze(t, ".input {$name} {{Hi {$name}}}")
	assert.Equal(t, 0, diags.Len())

	usage := result.Variables["name"]
	assert.True(t, usage.Declared)
	require.Len(t, usage.References, 1)
}

func TestAnalyze_LocalDeclarationOrder(t *testing.T) {
	t.Parallel()

	result, diags := analyze(t, ".local $x = {42} {{{$x}}}")
	assert.Equal(t, 0, diags.Len())
	assert.True(t, result.Variables["x"].Declared)
	assert.Len(t, result.Variables["x"].References, 1)
}

func TestAnalyze_DuplicateDeclaration(t *testing.T) {
	t.Parallel()

	_, diags := analyze(t, ".local $x = {1} .local $x = {2} {{{$x}}}")
	require.NotEmpty(t, diags.Diagnostics())
	assert.Equal(t, diag.KindDuplicateDeclaration, diags.Diagnostics()[0].Kind())
}

func TestAnalyze_UsageBeforeDeclaration(t *testing.T) {
	t.Parallel()

	_, diags := analyze(t, ".local $y = {$x} .local $x = {1} {{{$y}}}")
	found := false
	for _, d := range diags.Diagnostics() {
		if d.Kind() == diag.KindUsageBeforeDeclaration {
			found = true
		}
	}
	assert.True(t, found)
}

func TestAnalyze_SelectorMissingAnnotation(t *testing.T) {
	t.Parallel()

	_, diags := analyze(t, ".input {$count} .match $count one {{one}} * {{other}}")
	require.NotEmpty(t, diags.Diagnostics())
	assert.Equal(t, diag.KindSelectorMissingAnnotation, diags.Diagnostics()[0].Kind())
}

func TestAnalyze_SelectorWithAnnotationIsFine(t *testing.T) {
	t.Parallel()

	_, diags := analyze(t, ".input {$count :number} .match $count one {{one}} * {{other}}")
	assert.Equal(t, 0, diags.Len())
}

// TestAnalyze_LocalDeclarationInheritsReferencedAnnotation covers a
// `.local` declaration whose expression is a bare variable reference
// with no annotation of its own: the declared variable should inherit
// the referenced variable's annotation, so using it as a selector
// doesn't spuriously report SelectorMissingAnnotation.
func TestAnalyze_LocalDeclarationInheritsReferencedAnnotation(t *testing.T) {
	t.Parallel()

	result, diags := analyze(t, ".input {$y :number} .local $x = {$y} .match $x 0 {{a}} * {{b}}")
	assert.Equal(t, 0, diags.Len())
	assert.Equal(t, "number", result.Variables["x"].Annotation)
}

// TestAnalyze_VariantPatternVariablesAreTracked exercises the traversal
// path that only reaches a Variable through a promoted default-visitor
// method (Matcher -> Variant -> Pattern -> VariableExpression ->
// Variable): a regression guard for BaseVisitor's self-propagation.
func TestAnalyze_VariantPatternVariablesAreTracked(t *testing.T) {
	t.Parallel()

	result, diags := analyze(t, ".input {$count :number} .input {$extra} .match $count one {{one {$extra}}} * {{other}}")
	assert.Equal(t, 0, diags.Len())

	usage := result.Variables["extra"]
	require.Len(t, usage.References, 1, "expected the variant pattern's $extra reference to be recorded")
}
