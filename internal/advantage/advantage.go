// Package advantage loads the home floor edge chart and answers per-team
// edge lookups for the report.
package advantage

import (
	"strconv"
	"strings"

	"github.com/rs/zerolog/log"

	"ncaab_report/internal/names"
)

// Chart maps team names to their true home floor edge. Each team is
// stored under its chart spelling and its canonical form. keys preserves
// insertion order so the substring fallback is deterministic.
type Chart struct {
	edges map[string]float64
	keys  []string
}

// Parse builds a chart from the published CSV. The file opens with four
// header lines and carries the edge in the eleventh column; short or
// blank lines are skipped.
func Parse(csvData string) *Chart {
	c := &Chart{edges: make(map[string]float64)}

	lines := strings.Split(csvData, "\n")
	if len(lines) <= 4 {
		log.Warn().Msg("Advantage chart has no data rows")
		return c
	}
	for _, line := range lines[4:] {
		if strings.TrimSpace(line) == "" {
			continue
		}
		columns := strings.Split(line, ",")
		if len(columns) < 11 {
			continue
		}
		teamName := strings.TrimSpace(columns[0])
		edge, err := strconv.ParseFloat(strings.TrimSpace(columns[10]), 64)
		if err != nil || teamName == "" {
			continue
		}
		c.set(teamName, edge)
		c.set(names.Resolve(teamName, names.AdvantageNames), edge)
	}

	log.Info().
		Int("teams", len(c.edges)).
		Msg("Loaded home advantage chart")
	return c
}

func (c *Chart) set(name string, edge float64) {
	if _, ok := c.edges[name]; !ok {
		c.keys = append(c.keys, name)
	}
	c.edges[name] = edge
}

// Size returns the number of distinct name keys in the chart.
func (c *Chart) Size() int { return len(c.edges) }

// Lookup resolves a team name to its home edge. The name is canonicalized
// first; when no exact key matches, the first chart key in load order that
// contains the name, or that the name contains, is used.
func (c *Chart) Lookup(teamName string) (float64, bool) {
	if teamName == "" {
		return 0, false
	}
	normalized := names.Resolve(teamName, names.AdvantageNames)
	if edge, ok := c.edges[normalized]; ok {
		return edge, true
	}
	for _, k := range c.keys {
		if strings.Contains(k, normalized) || strings.Contains(normalized, k) {
			return c.edges[k], true
		}
	}
	log.Debug().
		Str("team", teamName).
		Str("normalized", normalized).
		Msg("Home advantage edge not found")
	return 0, false
}
