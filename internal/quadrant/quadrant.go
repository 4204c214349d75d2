// Package quadrant classifies completed games into NCAA quadrants from the
// opponent's rank and the game site.
package quadrant

import (
	"fmt"
	"strings"

	"ncaab_report/internal/models"
)

// Quad identifies one of the four quadrants. None marks a game that cannot
// be classified and must be dropped rather than bucketed.
type Quad int

const (
	None Quad = iota
	Q1
	Q2
	Q3
	Q4
)

// Key returns the bucket key used in TeamData.QuadGames.
func (q Quad) Key() string {
	switch q {
	case Q1:
		return "1"
	case Q2:
		return "2"
	case Q3:
		return "3"
	case Q4:
		return "4"
	}
	return ""
}

// Site-dependent rank cutoffs. A rank at or below the first bound is Q1,
// at or below the second Q2, at or below the third Q3, anything worse Q4.
var cutoffs = map[string][3]int{
	"home":    {30, 75, 160},
	"away":    {75, 135, 240},
	"neutral": {50, 100, 200},
}

// Classify maps an opponent rank and location to a quadrant. Rank must be
// positive and location one of Home, Away or Neutral in any casing;
// anything else returns None and the caller drops the game.
func Classify(rank int, location string) Quad {
	b, ok := cutoffs[strings.ToLower(location)]
	if !ok || rank <= 0 {
		return None
	}
	switch {
	case rank <= b[0]:
		return Q1
	case rank <= b[1]:
		return Q2
	case rank <= b[2]:
		return Q3
	default:
		return Q4
	}
}

// RankSelector picks which opponent rank drives classification. It returns
// ok=false when the chosen system has no rank for the game, in which case
// the game is dropped.
type RankSelector func(g models.GameRecord) (int, bool)

// UseNET classifies on the primary ranking.
func UseNET(g models.GameRecord) (int, bool) {
	return g.OppNET, g.OppNET > 0
}

// UseKenPom classifies on the secondary ranking, falling back to the
// primary for opponents the secondary system never resolved.
func UseKenPom(g models.GameRecord) (int, bool) {
	if g.OppKenPom > 0 {
		return g.OppKenPom, true
	}
	return g.OppNET, g.OppNET > 0
}

// Reorganize rebuilds the four buckets from scratch under the given
// selector. Input buckets are not modified; games whose rank or location
// cannot classify are dropped from the output. Applying Reorganize twice
// with the same selector yields the same buckets.
func Reorganize(quads map[string]models.QuadrantBucket, sel RankSelector) map[string]models.QuadrantBucket {
	out := models.EmptyQuadrants()
	for _, key := range models.QuadKeys {
		for _, g := range quads[key].Games {
			rank, ok := sel(g)
			if !ok {
				continue
			}
			q := Classify(rank, g.Location)
			if q == None {
				continue
			}
			b := out[q.Key()]
			b.Games = append(b.Games, g)
			out[q.Key()] = b
		}
	}
	for _, key := range models.QuadKeys {
		b := out[key]
		b.Record = RecordString(b.Games)
		out[key] = b
	}
	return out
}

// RecordString derives the "W-L" record from a game list. Every non-win
// counts as a loss, so the two numbers always sum to the bucket size.
func RecordString(games []models.GameRecord) string {
	w := 0
	for _, g := range games {
		if strings.EqualFold(strings.TrimSpace(g.Result), "W") {
			w++
		}
	}
	return fmt.Sprintf("%d-%d", w, len(games)-w)
}
