package report

import (
	"encoding/json"
	"os"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"ncaab_report/internal/models"
)

func intPtr(v int) *int { return &v }

func floatPtr(v float64) *float64 { return &v }

func sampleReport() *models.Report {
	home := models.EmptyTeamData()
	home.NET = intPtr(5)
	home.PreviousNET = intPtr(7)
	home.Record = "20-3"
	home.ConfRecord = "10-1"
	b := home.QuadGames["1"]
	b.Record = "1-0"
	b.Games = []models.GameRecord{
		{Result: "W", Score: "78-70", Location: "Home", Opponent: "North Carolina", OppNET: 12},
	}
	home.QuadGames["1"] = b
	home.Upcoming = []models.UpcomingGameRecord{
		{Quad: "Q1", Location: "Away", Opponent: "Kansas", OppNET: 8, Date: "2/15"},
	}

	away := models.EmptyTeamData()

	return &models.Report{
		GeneratedAt: time.Date(2026, 2, 7, 12, 0, 0, 0, time.UTC),
		Games: []models.GameReport{
			{
				Matchup: models.Matchup{
					Home:         "Duke Blue Devils",
					Away:         "North Carolina Tar Heels",
					CommenceTime: time.Date(2026, 2, 7, 23, 0, 0, 0, time.UTC),
					Odds: map[string]models.BookmakerOdds{
						"draftkings": {
							Home:           intPtr(-150),
							Away:           intPtr(130),
							HomeSpread:     floatPtr(-3.5),
							AwaySpread:     floatPtr(3.5),
							HomeSpreadOdds: intPtr(-110),
							AwaySpreadOdds: intPtr(-110),
						},
						"fanduel": {
							Home: intPtr(-148),
							Away: intPtr(128),
						},
					},
				},
				Teams: map[string]models.TeamData{
					"Duke Blue Devils":         home,
					"North Carolina Tar Heels": away,
				},
				HomeEdge: floatPtr(4.1),
			},
		},
	}
}

func TestRenderText(t *testing.T) {
	out := RenderText(sampleReport(), []string{"fanduel", "draftkings"})

	assert.Contains(t, out, "College Basketball Daily Report - 2026-02-07")
	assert.Contains(t, out, "=== North Carolina Tar Heels @ Duke Blue Devils ===")
	assert.Contains(t, out, "Home Edge: 4.10")
	assert.Contains(t, out, "Moneyline: -150 (H) / +130 (A)")
	assert.Contains(t, out, "Spread: -3.5 (-110) / +3.5 (-110)")
	assert.Contains(t, out, "NET Rank: 5 (Previous: 7)")
	assert.Contains(t, out, "Record: 20-3 (Conf: 10-1)")
	assert.Contains(t, out, "Quad 1 (1-0):")
	assert.Contains(t, out, "W 78-70 Home vs North Carolina (12)")
	assert.Contains(t, out, "Upcoming Games:")
	assert.Contains(t, out, "Q1 Away vs Kansas (8) - 2/15")

	// The empty team renders the canonical placeholder
	assert.Contains(t, out, "NET Rank: N/A (Previous: N/A)")
	assert.Contains(t, out, "Record: N/A (Conf: N/A)")

	// Bookmakers print in configured order
	assert.Less(t, strings.Index(out, "fanduel:"), strings.Index(out, "draftkings:"))
}

func TestRenderTextEmptyReport(t *testing.T) {
	rep := &models.Report{GeneratedAt: time.Date(2026, 2, 7, 12, 0, 0, 0, time.UTC)}
	out := RenderText(rep, nil)
	assert.Contains(t, out, "College Basketball Daily Report - 2026-02-07")
	assert.NotContains(t, out, "===")
}

func TestWriteFiles(t *testing.T) {
	dir := t.TempDir()
	rep := sampleReport()

	jsonPath, txtPath, err := WriteFiles(rep, []string{"draftkings"}, dir)
	require.NoError(t, err)
	assert.Contains(t, jsonPath, "cbb_report_2026-02-07.json")
	assert.Contains(t, txtPath, "cbb_report_2026-02-07.txt")

	raw, err := os.ReadFile(jsonPath)
	require.NoError(t, err)

	var decoded models.Report
	require.NoError(t, json.Unmarshal(raw, &decoded))
	require.Len(t, decoded.Games, 1)
	assert.Equal(t, "Duke Blue Devils", decoded.Games[0].Matchup.Home)

	// The persisted team snapshot keeps the canonical four-bucket shape
	team := decoded.Games[0].Teams["North Carolina Tar Heels"]
	assert.Len(t, team.QuadGames, 4)
	assert.Equal(t, "0-0", team.QuadGames["4"].Record)
}
