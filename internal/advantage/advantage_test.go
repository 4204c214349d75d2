package advantage

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const chartCSV = `Home Floor Edge Rankings
Season 2025-26
Published weekly
Team,A,B,C,D,E,F,G,H,I,True HFEdge
DUKE,1,2,3,4,5,6,7,8,9,4.10
SAINT MARYS GAELS,1,2,3,4,5,6,7,8,9,3.50
NORTH CAROLINA,1,2,3,4,5,6,7,8,9,2.80

short,line
DUKE BAD ROW,1,2
`

func TestParse(t *testing.T) {
	chart := Parse(chartCSV)
	require.NotNil(t, chart)
	// Three data rows load; the short rows are skipped
	assert.GreaterOrEqual(t, chart.Size(), 3)
}

func TestLookupExact(t *testing.T) {
	chart := Parse(chartCSV)

	edge, ok := chart.Lookup("DUKE")
	require.True(t, ok)
	assert.Equal(t, 4.10, edge)
}

func TestLookupNormalized(t *testing.T) {
	chart := Parse(chartCSV)

	// The odds feed spelling resolves onto the chart's row
	edge, ok := chart.Lookup("Saint Mary's Gaels")
	require.True(t, ok)
	assert.Equal(t, 3.50, edge)

	edge, ok = chart.Lookup("St Marys")
	require.True(t, ok)
	assert.Equal(t, 3.50, edge)
}

func TestLookupSubstringFallback(t *testing.T) {
	chart := Parse(chartCSV)

	edge, ok := chart.Lookup("NORTH CAROLINA TAR HEELS")
	require.True(t, ok)
	assert.Equal(t, 2.80, edge)
}

func TestLookupMiss(t *testing.T) {
	chart := Parse(chartCSV)

	_, ok := chart.Lookup("GONZAGA")
	assert.False(t, ok)

	_, ok = chart.Lookup("")
	assert.False(t, ok)
}

func TestParseEmpty(t *testing.T) {
	chart := Parse("")
	assert.Zero(t, chart.Size())
	_, ok := chart.Lookup("DUKE")
	assert.False(t, ok)
}
