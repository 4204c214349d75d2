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

const oddsResponse = `[
  {
    "home_team": "Duke Blue Devils",
    "away_team": "North Carolina Tar Heels",
    "commence_time": "2026-02-07T23:00:00Z",
    "bookmakers": [
      {
        "key": "draftkings",
        "markets": [
          {
            "key": "h2h",
            "outcomes": [
              {"name": "Duke Blue Devils", "price": -150},
              {"name": "North Carolina Tar Heels", "price": 130}
            ]
          },
          {
            "key": "spreads",
            "outcomes": [
              {"name": "Duke Blue Devils", "price": -110, "point": -3.5},
              {"name": "North Carolina Tar Heels", "price": -110, "point": 3.5}
            ]
          }
        ]
      },
      {
        "key": "unibet",
        "markets": [
          {
            "key": "h2h",
            "outcomes": [
              {"name": "Duke Blue Devils", "price": -145},
              {"name": "North Carolina Tar Heels", "price": 125}
            ]
          }
        ]
      }
    ]
  }
]`

func TestOddsClient_FetchMatchups(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/sports/basketball_ncaab/odds", r.URL.Path)
		q := r.URL.Query()
		assert.Equal(t, "test-key", q.Get("apiKey"))
		assert.Equal(t, "us", q.Get("regions"))
		assert.Equal(t, "h2h,spreads", q.Get("markets"))
		assert.Equal(t, "american", q.Get("oddsFormat"))
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(oddsResponse))
	}))
	defer srv.Close()

	c := NewOddsClient(srv.URL, "test-key", "basketball_ncaab",
		[]string{"draftkings", "fanduel"}, 2*time.Second)

	matchups, err := c.FetchMatchups(context.Background())
	require.NoError(t, err)
	require.Len(t, matchups, 1)

	m := matchups[0]
	assert.Equal(t, "Duke Blue Devils", m.Home)
	assert.Equal(t, "North Carolina Tar Heels", m.Away)
	assert.Equal(t, time.Date(2026, 2, 7, 23, 0, 0, 0, time.UTC), m.CommenceTime.UTC())

	// Only whitelisted bookmakers appear; unibet is dropped, fanduel was
	// not quoted by the feed
	require.Contains(t, m.Odds, "draftkings")
	assert.NotContains(t, m.Odds, "unibet")
	assert.NotContains(t, m.Odds, "fanduel")

	dk := m.Odds["draftkings"]
	require.NotNil(t, dk.Home)
	assert.Equal(t, -150, *dk.Home)
	require.NotNil(t, dk.Away)
	assert.Equal(t, 130, *dk.Away)
	require.NotNil(t, dk.HomeSpread)
	assert.Equal(t, -3.5, *dk.HomeSpread)
	require.NotNil(t, dk.AwaySpreadOdds)
	assert.Equal(t, -110, *dk.AwaySpreadOdds)
}

func TestOddsClient_FetchMatchupsEmptySlate(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`[]`))
	}))
	defer srv.Close()

	c := NewOddsClient(srv.URL, "k", "basketball_ncaab", nil, 2*time.Second)
	matchups, err := c.FetchMatchups(context.Background())
	require.NoError(t, err)
	assert.Empty(t, matchups)
}

func TestOddsClient_FetchMatchupsBadJSON(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{not json`))
	}))
	defer srv.Close()

	c := NewOddsClient(srv.URL, "k", "basketball_ncaab", nil, 2*time.Second)
	_, err := c.FetchMatchups(context.Background())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "decoding odds response")
}
