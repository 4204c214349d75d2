// Package rankings indexes the secondary ranking system and attaches its
// ranks to game logs built from the primary one.
package rankings

import (
	"strings"

	"github.com/rs/zerolog/log"

	"ncaab_report/internal/client"
	"ncaab_report/internal/models"
	"ncaab_report/internal/names"
)

// Book indexes secondary ranks by team name. Each team is stored under
// four variants, the source spelling, its canonical form and both in
// upper case, so lookups survive the spelling differences between the
// three sources. Later table rows win when variants collide.
type Book struct {
	ranks map[string]int
	size  int
}

// NewBook builds the index from scraped table rows.
func NewBook(teams []client.RankedTeam) *Book {
	b := &Book{ranks: make(map[string]int, len(teams)*4)}
	for _, t := range teams {
		normalized := names.Resolve(t.Name, names.RankingNames)
		b.ranks[t.Name] = t.Rank
		b.ranks[normalized] = t.Rank
		b.ranks[strings.ToUpper(t.Name)] = t.Rank
		b.ranks[strings.ToUpper(normalized)] = t.Rank
		b.size++
	}
	return b
}

// EmptyBook returns a book with no entries; every lookup misses.
func EmptyBook() *Book {
	return &Book{ranks: map[string]int{}}
}

// Size returns the number of teams indexed.
func (b *Book) Size() int { return b.size }

// Lookup resolves a team name to its secondary rank. It tries the name as
// given, then canonicalized, then both upper cased.
func (b *Book) Lookup(name string) (int, bool) {
	if r, ok := b.ranks[name]; ok {
		return r, true
	}
	normalized := names.Resolve(name, names.RankingNames)
	if r, ok := b.ranks[normalized]; ok {
		return r, true
	}
	if r, ok := b.ranks[strings.ToUpper(name)]; ok {
		return r, true
	}
	if r, ok := b.ranks[strings.ToUpper(normalized)]; ok {
		return r, true
	}
	return 0, false
}

// Enrich returns a copy of the snapshot with each completed game's
// opponent annotated with its secondary rank. The input is never
// modified; opponents the book cannot resolve keep a zero rank.
func (b *Book) Enrich(data models.TeamData) models.TeamData {
	out := data
	out.QuadGames = make(map[string]models.QuadrantBucket, len(data.QuadGames))
	for key, bucket := range data.QuadGames {
		games := make([]models.GameRecord, len(bucket.Games))
		for i, g := range bucket.Games {
			if rank, ok := b.Lookup(g.Opponent); ok {
				g.OppKenPom = rank
			} else if g.Opponent != "" {
				log.Debug().
					Str("opponent", g.Opponent).
					Msg("No secondary rank for opponent")
			}
			games[i] = g
		}
		out.QuadGames[key] = models.QuadrantBucket{Record: bucket.Record, Games: games}
	}
	out.Upcoming = append([]models.UpcomingGameRecord(nil), data.Upcoming...)
	return out
}
