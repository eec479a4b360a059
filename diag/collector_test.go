package diag_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lucacasonato/mf2/ast"
	"github.com/lucacasonato/mf2/diag"
	"github.com/lucacasonato/mf2/pos"
)

func TestAllKinds_Unique(t *testing.T) {
	t.Parallel()

	kinds := diag.AllKinds()
	require.NotEmpty(t, kinds)

	seen := make(map[string]bool, len(kinds))
	for _, k := range kinds {
		assert.False(t, seen[k.String()], "duplicate kind %s", k.String())
		seen[k.String()] = true
		assert.False(t, k.IsZero())
	}
}

func TestDiagnosticConstructors_NeverFatal(t *testing.T) {
	t.Parallel()

	n := &ast.Number{Start: 0, Raw: "1"}
	d := diag.NumberMissingIntegralPart(n)

	assert.Equal(t, diag.KindNumberMissingIntegralPart, d.Kind())
	assert.False(t, d.Fatal())
	assert.Contains(t, d.Message(), "missing an integral part")
}

func TestCollector_OrdersBySpan(t *testing.T) {
	t.Parallel()

	c := diag.NewCollector(diag.NoLimit)
	c.Collect(diag.PlaceholderMissingBody(pos.NewSpan(10, 12)))
	c.Collect(diag.PlaceholderMissingBody(pos.NewSpan(0, 2)))
	c.Collect(diag.PlaceholderMissingBody(pos.NewSpan(5, 6)))

	result := c.Result()
	require.Equal(t, 3, result.Len())

	diags := result.Diagnostics()
	assert.Equal(t, pos.Location(0), diags[0].Span().Start)
	assert.Equal(t, pos.Location(5), diags[1].Span().Start)
	assert.Equal(t, pos.Location(10), diags[2].Span().Start)
}

func TestCollector_Limit(t *testing.T) {
	t.Parallel()

	c := diag.NewCollector(2)
	for i := 0; i < 5; i++ {
		c.Collect(diag.PlaceholderMissingBody(pos.NewSpan(pos.Location(i), pos.Location(i+1))))
	}

	assert.Equal(t, 2, c.Len())
	assert.True(t, c.LimitReached())
	assert.Equal(t, 3, c.DroppedCount())

	result := c.Result()
	assert.True(t, result.LimitReached())
	assert.Equal(t, 3, result.DroppedCount())
}
