// Package models defines the report data model shared by the fetch,
// classification and assembly layers. Shapes serialize exactly as the
// dashboard consumes them.
package models

import "time"

// BookmakerOdds holds one bookmaker's moneyline and spread for a matchup.
// Pointer fields stay null when the bookmaker does not quote the market.
type BookmakerOdds struct {
	Home           *int     `json:"home,omitempty"`
	Away           *int     `json:"away,omitempty"`
	HomeSpread     *float64 `json:"homeSpread,omitempty"`
	AwaySpread     *float64 `json:"awaySpread,omitempty"`
	HomeSpreadOdds *int     `json:"homeSpreadOdds,omitempty"`
	AwaySpreadOdds *int     `json:"awaySpreadOdds,omitempty"`
}

// Matchup is one odds-feed game: display names as the feed spells them,
// never canonicalized, plus the whitelisted bookmakers' odds.
type Matchup struct {
	Home         string                   `json:"home"`
	Away         string                   `json:"away"`
	CommenceTime time.Time                `json:"commence_time"`
	Odds         map[string]BookmakerOdds `json:"odds"`
}

// GameRecord is one completed game from a team's log. Immutable once
// constructed; the secondary rank is attached by copy-on-enrich, never in
// place. OppKenPom zero means the secondary system did not resolve the
// opponent.
type GameRecord struct {
	Result    string `json:"result"`
	Score     string `json:"score"`
	Location  string `json:"location"`
	Opponent  string `json:"opponent"`
	OppNET    int    `json:"oppNet"`
	OppKenPom int    `json:"oppKenpom,omitempty"`
}

// UpcomingGameRecord is a future game. Its quadrant label comes straight
// from the stats source and is never recomputed.
type UpcomingGameRecord struct {
	Quad     string `json:"quad"`
	Location string `json:"location"`
	Opponent string `json:"opponent"`
	OppNET   int    `json:"oppNet"`
	Date     string `json:"date"`
}

// QuadrantBucket holds one quadrant's games and its derived "W-L" record.
// The record is always recomputed from the game list, never stored apart
// from it.
type QuadrantBucket struct {
	Record string       `json:"record"`
	Games  []GameRecord `json:"games"`
}

// QuadKeys are the four bucket keys in display order.
var QuadKeys = []string{"1", "2", "3", "4"}

// EmptyQuadrants returns the canonical four-bucket structure with no games.
func EmptyQuadrants() map[string]QuadrantBucket {
	out := make(map[string]QuadrantBucket, len(QuadKeys))
	for _, k := range QuadKeys {
		out[k] = QuadrantBucket{Record: "0-0", Games: []GameRecord{}}
	}
	return out
}

// TeamData is a team's full snapshot for one report run. Created fresh per
// run and never mutated across runs.
type TeamData struct {
	NET         *int                      `json:"net"`
	PreviousNET *int                      `json:"previousNet"`
	Record      string                    `json:"record"`
	ConfRecord  string                    `json:"confRecord"`
	QuadGames   map[string]QuadrantBucket `json:"quadGames"`
	Upcoming    []UpcomingGameRecord      `json:"upcoming"`
}

// EmptyTeamData returns the canonical empty snapshot: all four quadrants
// present with zero games, string fields "N/A", rank fields null. Returned
// for any team whose stats page could not be fetched or parsed.
func EmptyTeamData() TeamData {
	return TeamData{
		Record:     "N/A",
		ConfRecord: "N/A",
		QuadGames:  EmptyQuadrants(),
		Upcoming:   []UpcomingGameRecord{},
	}
}

// CompletedGames counts games across all four quadrants.
func (td TeamData) CompletedGames() int {
	n := 0
	for _, q := range td.QuadGames {
		n += len(q.Games)
	}
	return n
}

// FailureRecord captures one failed team fetch for operator follow-up.
type FailureRecord struct {
	TeamName string `json:"teamName"`
	Slug     string `json:"slug"`
	URL      string `json:"url"`
	Error    string `json:"error"`
}

// GameReport joins one matchup with both teams' snapshots.
type GameReport struct {
	Matchup  Matchup             `json:"matchup"`
	Teams    map[string]TeamData `json:"teams"`
	HomeEdge *float64            `json:"homeEdge,omitempty"`
}

// Report is one complete daily run.
type Report struct {
	GeneratedAt time.Time    `json:"generated_at"`
	Games       []GameReport `json:"games"`
}

// ReportRun is the persisted summary of a completed run.
type ReportRun struct {
	ID           int
	GeneratedAt  time.Time
	GameCount    int
	FailureCount int
	Payload      []byte
	CreatedAt    time.Time
}
