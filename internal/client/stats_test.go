package client

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const teamSheetHTML = `<!DOCTYPE html>
<html><body>
<div class="team-name">
  <div>Duke Blue Devils</div>
  <div>NET: 5 (Previous: 7) Record: 20-3 (Conf: 10-1)</div>
</div>
<table>
  <tr><th>Res</th><th>Score</th><th>Loc</th><th>Rank</th><th>X</th><th>Opp</th></tr>
  <tr><td>W</td><td>78-70 1/12</td><td>Home</td><td>(12)</td><td></td><td>North Carolina</td></tr>
  <tr><td>L</td><td>61-75 1/20</td><td>Away</td><td>(80)</td><td></td><td>Clemson</td></tr>
  <tr><td>W</td><td>90-55 1/25</td><td>Home</td><td>(300)</td><td></td><td>Elon</td></tr>
  <tr><td>W</td><td>70-68 2/01</td><td>Courtyard</td><td>(40)</td><td></td><td>Nowhere State</td></tr>
  <tr><td>W</td><td>66-60 2/03</td><td>Home</td><td>N/R</td><td></td><td>Newcomer</td></tr>
  <tr><td>Q1</td><td>Away</td><td>(8)</td><td>2/15</td><td></td><td>Kansas</td></tr>
</table>
</body></html>`

func newStatsClient(url string) *StatsClient {
	return NewStatsClient(url, 2*time.Second, 4)
}

func TestStatsClient_FetchTeam(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/teams/duke", r.URL.Path)
		w.Write([]byte(teamSheetHTML))
	}))
	defer srv.Close()

	data, failure := newStatsClient(srv.URL).FetchTeam(context.Background(), "Duke", "duke")
	require.Nil(t, failure)

	require.NotNil(t, data.NET)
	assert.Equal(t, 5, *data.NET)
	require.NotNil(t, data.PreviousNET)
	assert.Equal(t, 7, *data.PreviousNET)
	assert.Equal(t, "20-3", data.Record)
	assert.Equal(t, "10-1", data.ConfRecord)

	// 12 at home is quad 1, 80 away is quad 2, 300 at home is quad 4.
	// The unknown location and the unranked opponent are dropped.
	require.Len(t, data.QuadGames["1"].Games, 1)
	require.Len(t, data.QuadGames["2"].Games, 1)
	assert.Empty(t, data.QuadGames["3"].Games)
	require.Len(t, data.QuadGames["4"].Games, 1)

	g := data.QuadGames["1"].Games[0]
	assert.Equal(t, "W", g.Result)
	assert.Equal(t, "78-70", g.Score)
	assert.Equal(t, "Home", g.Location)
	assert.Equal(t, "North Carolina", g.Opponent)
	assert.Equal(t, 12, g.OppNET)
	assert.Equal(t, "1-0", data.QuadGames["1"].Record)
	assert.Equal(t, "0-1", data.QuadGames["2"].Record)

	require.Len(t, data.Upcoming, 1)
	up := data.Upcoming[0]
	assert.Equal(t, "Q1", up.Quad)
	assert.Equal(t, "Away", up.Location)
	assert.Equal(t, "Kansas", up.Opponent)
	assert.Equal(t, 8, up.OppNET)
	assert.Equal(t, "2/15", up.Date)
}

func TestStatsClient_FetchTeamNotFound(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.NotFound(w, r)
	}))
	defer srv.Close()

	data, failure := newStatsClient(srv.URL).FetchTeam(context.Background(), "Ghost Team", "ghost-team")

	// A missing page is not a failure, just a team without a sheet
	assert.Nil(t, failure)
	assert.Nil(t, data.NET)
	assert.Equal(t, "N/A", data.Record)
	assert.Equal(t, "N/A", data.ConfRecord)
	assert.Empty(t, data.Upcoming)
	for _, key := range []string{"1", "2", "3", "4"} {
		bucket, ok := data.QuadGames[key]
		require.True(t, ok, "quad %s must exist", key)
		assert.Equal(t, "0-0", bucket.Record)
		assert.Empty(t, bucket.Games)
	}
}

func TestStatsClient_FetchTeamServerError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "upstream broke", http.StatusInternalServerError)
	}))
	defer srv.Close()

	data, failure := newStatsClient(srv.URL).FetchTeam(context.Background(), "Duke", "duke")

	require.NotNil(t, failure)
	assert.Equal(t, "Duke", failure.TeamName)
	assert.Equal(t, "duke", failure.Slug)
	assert.Equal(t, srv.URL+"/teams/duke", failure.URL)
	assert.NotEmpty(t, failure.Error)

	// Data still comes back in canonical empty shape
	assert.Nil(t, data.NET)
	assert.Equal(t, "N/A", data.Record)
	assert.Len(t, data.QuadGames, 4)
}

func TestStatsClient_EmptyPageParses(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("<html><body><p>maintenance</p></body></html>"))
	}))
	defer srv.Close()

	data, failure := newStatsClient(srv.URL).FetchTeam(context.Background(), "Duke", "duke")

	// A page with no recognizable fields degrades to empty data
	assert.Nil(t, failure)
	assert.Nil(t, data.NET)
	assert.Equal(t, "N/A", data.Record)
	assert.Empty(t, data.Upcoming)
}
