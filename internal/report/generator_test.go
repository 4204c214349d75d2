package report

import (
	"context"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"ncaab_report/internal/advantage"
	"ncaab_report/internal/client"
)

const slateJSON = `[
  {
    "home_team": "Duke Blue Devils",
    "away_team": "Ghost Team",
    "commence_time": "2026-02-07T23:00:00Z",
    "bookmakers": [
      {
        "key": "draftkings",
        "markets": [
          {
            "key": "h2h",
            "outcomes": [
              {"name": "Duke Blue Devils", "price": -150},
              {"name": "Ghost Team", "price": 130}
            ]
          }
        ]
      }
    ]
  }
]`

const dukeSheetHTML = `<html><body>
<div class="team-name">
  <div>Duke Blue Devils</div>
  <div>NET: 5 (Previous: 7) Record: 20-3 (Conf: 10-1)</div>
</div>
<table>
  <tr><td>W</td><td>78-70 1/12</td><td>Home</td><td>(12)</td><td></td><td>Houston</td></tr>
</table>
</body></html>`

const rankingsTableHTML = `<html><body>
<table id="ratings-table"><tbody>
  <tr><td>1</td><td><a href="/t1">Houston</a></td></tr>
</tbody></table>
</body></html>`

const advantageCSV = `header
header
header
Team,A,B,C,D,E,F,G,H,I,True HFEdge
Duke Blue Devils,1,2,3,4,5,6,7,8,9,4.10
`

func TestGeneratorEndToEnd(t *testing.T) {
	oddsSrv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(slateJSON))
	}))
	defer oddsSrv.Close()

	statsSrv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/teams/duke":
			w.Write([]byte(dukeSheetHTML))
		default:
			http.NotFound(w, r)
		}
	}))
	defer statsSrv.Close()

	rankSrv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(rankingsTableHTML))
	}))
	defer rankSrv.Close()

	dir := t.TempDir()
	gen := &Generator{
		Odds:             client.NewOddsClient(oddsSrv.URL, "k", "basketball_ncaab", []string{"draftkings"}, 2*time.Second),
		Stats:            client.NewStatsClient(statsSrv.URL, 2*time.Second, 2),
		Rankings:         client.NewRankingsClient(rankSrv.URL, 2*time.Second),
		Chart:            advantage.Parse(advantageCSV),
		OutputDir:        dir,
		Bookmakers:       []string{"draftkings"},
		FetchConcurrency: 2,
	}

	rep, err := gen.Generate(context.Background())
	require.NoError(t, err)
	require.Len(t, rep.Games, 1)

	game := rep.Games[0]
	assert.Equal(t, "Duke Blue Devils", game.Matchup.Home)

	// Home team parsed and enriched with the secondary rank
	duke := game.Teams["Duke Blue Devils"]
	require.NotNil(t, duke.NET)
	assert.Equal(t, 5, *duke.NET)
	require.Len(t, duke.QuadGames["1"].Games, 1)
	assert.Equal(t, 1, duke.QuadGames["1"].Games[0].OppKenPom)

	// Away team has no sheet: canonical empty shape, no failure
	ghost := game.Teams["Ghost Team"]
	assert.Nil(t, ghost.NET)
	assert.Equal(t, "N/A", ghost.Record)
	assert.Len(t, ghost.QuadGames, 4)

	// Home edge attached from the chart
	require.NotNil(t, game.HomeEdge)
	assert.Equal(t, 4.1, *game.HomeEdge)

	// Files written; no failures, so no failure log
	_, err = os.Stat(filepath.Join(dir, "cbb_report_"+rep.GeneratedAt.Format("2006-01-02")+".json"))
	assert.NoError(t, err)
	_, err = os.Stat(filepath.Join(dir, "cbb_report_"+rep.GeneratedAt.Format("2006-01-02")+".txt"))
	assert.NoError(t, err)
	_, err = os.Stat(filepath.Join(dir, "failed_teams.txt"))
	assert.True(t, os.IsNotExist(err))
}

func TestGeneratorEmptySlate(t *testing.T) {
	oddsSrv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`[]`))
	}))
	defer oddsSrv.Close()

	gen := &Generator{
		Odds: client.NewOddsClient(oddsSrv.URL, "k", "basketball_ncaab", nil, 2*time.Second),
	}

	rep, err := gen.Generate(context.Background())
	require.NoError(t, err)
	assert.Empty(t, rep.Games)
}

func TestGeneratorRankingsOutageDegrades(t *testing.T) {
	oddsSrv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(slateJSON))
	}))
	defer oddsSrv.Close()

	statsSrv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.NotFound(w, r)
	}))
	defer statsSrv.Close()

	rankSrv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "denied", http.StatusForbidden)
	}))
	defer rankSrv.Close()

	gen := &Generator{
		Odds:             client.NewOddsClient(oddsSrv.URL, "k", "basketball_ncaab", []string{"draftkings"}, 2*time.Second),
		Stats:            client.NewStatsClient(statsSrv.URL, 2*time.Second, 2),
		Rankings:         client.NewRankingsClient(rankSrv.URL, 2*time.Second),
		OutputDir:        t.TempDir(),
		Bookmakers:       []string{"draftkings"},
		FetchConcurrency: 2,
	}

	rep, err := gen.Generate(context.Background())
	require.NoError(t, err)
	require.Len(t, rep.Games, 1)
	for _, data := range rep.Games[0].Teams {
		assert.Equal(t, "N/A", data.Record)
	}
}
