package client

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/rs/zerolog/log"

	"ncaab_report/internal/metrics"
	"ncaab_report/internal/models"
)

// OddsClient fetches today's slate from The Odds API.
type OddsClient struct {
	core       *httpCore
	baseURL    string
	apiKey     string
	sport      string
	bookmakers []string
}

func NewOddsClient(baseURL, apiKey, sport string, bookmakers []string, timeout time.Duration) *OddsClient {
	return &OddsClient{
		core:       newHTTPCore(timeout, 4, 3),
		baseURL:    strings.TrimRight(baseURL, "/"),
		apiKey:     apiKey,
		sport:      sport,
		bookmakers: bookmakers,
	}
}

// Odds API response shapes. Only the fields we read are declared.
type oddsEvent struct {
	HomeTeam     string          `json:"home_team"`
	AwayTeam     string          `json:"away_team"`
	CommenceTime time.Time       `json:"commence_time"`
	Bookmakers   []oddsBookmaker `json:"bookmakers"`
}

type oddsBookmaker struct {
	Key     string       `json:"key"`
	Markets []oddsMarket `json:"markets"`
}

type oddsMarket struct {
	Key      string        `json:"key"`
	Outcomes []oddsOutcome `json:"outcomes"`
}

type oddsOutcome struct {
	Name  string   `json:"name"`
	Price *int     `json:"price"`
	Point *float64 `json:"point"`
}

// FetchMatchups returns the current slate with odds from the configured
// bookmakers only. Team names pass through exactly as the feed spells
// them; canonicalization happens downstream.
func (c *OddsClient) FetchMatchups(ctx context.Context) ([]models.Matchup, error) {
	started := time.Now()
	url := fmt.Sprintf("%s/sports/%s/odds", c.baseURL, c.sport)
	body, err := c.core.get(ctx, url, map[string]string{
		"apiKey":     c.apiKey,
		"regions":    "us",
		"markets":    "h2h,spreads",
		"oddsFormat": "american",
	})
	if err != nil {
		metrics.FetchErrors.WithLabelValues("odds").Inc()
		return nil, fmt.Errorf("fetching odds: %w", err)
	}

	var events []oddsEvent
	if err := json.Unmarshal(body, &events); err != nil {
		metrics.FetchErrors.WithLabelValues("odds").Inc()
		return nil, fmt.Errorf("decoding odds response: %w", err)
	}

	matchups := make([]models.Matchup, 0, len(events))
	for _, ev := range events {
		m := models.Matchup{
			Home:         ev.HomeTeam,
			Away:         ev.AwayTeam,
			CommenceTime: ev.CommenceTime,
			Odds:         make(map[string]models.BookmakerOdds),
		}
		for _, want := range c.bookmakers {
			for _, bk := range ev.Bookmakers {
				if !strings.EqualFold(bk.Key, want) {
					continue
				}
				m.Odds[want] = extractBookmakerOdds(bk, ev.HomeTeam, ev.AwayTeam)
				break
			}
		}
		matchups = append(matchups, m)
	}

	log.Info().
		Int("games", len(matchups)).
		Msg("Fetched odds slate")
	metrics.RecordFetch("odds", time.Since(started).Seconds())
	return matchups, nil
}

func extractBookmakerOdds(bk oddsBookmaker, home, away string) models.BookmakerOdds {
	var odds models.BookmakerOdds
	for _, market := range bk.Markets {
		switch market.Key {
		case "h2h":
			for _, o := range market.Outcomes {
				switch o.Name {
				case home:
					odds.Home = o.Price
				case away:
					odds.Away = o.Price
				}
			}
		case "spreads":
			for _, o := range market.Outcomes {
				switch o.Name {
				case home:
					odds.HomeSpread = o.Point
					odds.HomeSpreadOdds = o.Price
				case away:
					odds.AwaySpread = o.Point
					odds.AwaySpreadOdds = o.Price
				}
			}
		}
	}
	return odds
}
