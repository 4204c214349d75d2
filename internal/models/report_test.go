package models

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEmptyTeamData(t *testing.T) {
	data := EmptyTeamData()

	assert.Nil(t, data.NET)
	assert.Nil(t, data.PreviousNET)
	assert.Equal(t, "N/A", data.Record)
	assert.Equal(t, "N/A", data.ConfRecord)
	assert.NotNil(t, data.Upcoming)
	assert.Empty(t, data.Upcoming)

	require.Len(t, data.QuadGames, 4)
	for _, key := range QuadKeys {
		bucket, ok := data.QuadGames[key]
		require.True(t, ok, "quad %s must exist", key)
		assert.Equal(t, "0-0", bucket.Record)
		assert.NotNil(t, bucket.Games)
		assert.Empty(t, bucket.Games)
	}

	assert.Zero(t, data.CompletedGames())
}

// The empty snapshot must serialize with explicit nulls and empty arrays,
// never missing keys, so downstream consumers see a stable shape.
func TestEmptyTeamDataJSON(t *testing.T) {
	raw, err := json.Marshal(EmptyTeamData())
	require.NoError(t, err)

	s := string(raw)
	assert.Contains(t, s, `"net":null`)
	assert.Contains(t, s, `"previousNet":null`)
	assert.Contains(t, s, `"record":"N/A"`)
	assert.Contains(t, s, `"confRecord":"N/A"`)
	assert.Contains(t, s, `"upcoming":[]`)
	assert.Contains(t, s, `"record":"0-0","games":[]`)
}

func TestGameRecordJSON(t *testing.T) {
	g := GameRecord{Result: "W", Score: "78-70", Location: "Home", Opponent: "Houston", OppNET: 12}
	raw, err := json.Marshal(g)
	require.NoError(t, err)

	// The secondary rank is omitted until enrichment fills it
	assert.NotContains(t, string(raw), "oppKenpom")

	g.OppKenPom = 9
	raw, err = json.Marshal(g)
	require.NoError(t, err)
	assert.Contains(t, string(raw), `"oppKenpom":9`)
}

func TestCompletedGames(t *testing.T) {
	data := EmptyTeamData()
	b := data.QuadGames["2"]
	b.Games = []GameRecord{{Result: "W"}, {Result: "L"}}
	data.QuadGames["2"] = b

	assert.Equal(t, 2, data.CompletedGames())
}
