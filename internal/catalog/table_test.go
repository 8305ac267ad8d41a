package catalog

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadTable_EmbeddedMappingsParse(t *testing.T) {
	table, err := LoadTable("")
	require.NoError(t, err)

	products := table.Products()
	assert.Len(t, products, 4)
}

func TestTableLookup_CodeTakesPrecedenceOverID(t *testing.T) {
	table, err := LoadTable("")
	require.NoError(t, err)

	// code matches GOLD; the id points at PLATINUM and must be ignored
	p, ok := table.Lookup("GOLD", "42")
	require.True(t, ok)
	assert.Equal(t, "GOLD", p.Code)
	assert.Equal(t, "41", p.ProductID)
}

func TestTableLookup_FallsBackToIDWhenCodeMisses(t *testing.T) {
	table, err := LoadTable("")
	require.NoError(t, err)

	p, ok := table.Lookup("VIP", "42")
	require.True(t, ok)
	assert.Equal(t, "PLATINUM", p.Code)
	assert.Equal(t, float64(349), p.BasePrice)
}

func TestTableLookup_CodeIsCaseInsensitive(t *testing.T) {
	table, err := LoadTable("")
	require.NoError(t, err)

	p, ok := table.Lookup("classic", "")
	require.True(t, ok)
	assert.Equal(t, "CLASSIC", p.Code)
	assert.Equal(t, float64(249), p.BasePrice)
}

func TestTableLookup_MissReturnsFalse(t *testing.T) {
	table, err := LoadTable("")
	require.NoError(t, err)

	_, ok := table.Lookup("VIP", "9999")
	assert.False(t, ok)

	_, ok = table.Lookup("", "")
	assert.False(t, ok)
}

func TestTableAddOnPrice(t *testing.T) {
	table, err := LoadTable("")
	require.NoError(t, err)

	assert.Equal(t, float64(49), table.AddOnPrice("PIZZA"))
	assert.Equal(t, float64(49), table.AddOnPrice("pizza"))
	assert.Equal(t, float64(0), table.AddOnPrice("JETPACK"))
}

func TestTableBasePrice(t *testing.T) {
	table, err := LoadTable("")
	require.NoError(t, err)

	assert.Equal(t, float64(449), table.BasePrice("43"))
	assert.Equal(t, float64(DefaultBasePrice), table.BasePrice("9999"))
}
