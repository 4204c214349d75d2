package report

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"ncaab_report/internal/models"
)

// WriteFiles writes the JSON and human-readable reports into dir, named
// by the run date. The directory is created if missing.
func WriteFiles(report *models.Report, bookmakers []string, dir string) (string, string, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", "", fmt.Errorf("creating output dir: %w", err)
	}

	stamp := report.GeneratedAt.Format("2006-01-02")
	jsonPath := filepath.Join(dir, fmt.Sprintf("cbb_report_%s.json", stamp))
	txtPath := filepath.Join(dir, fmt.Sprintf("cbb_report_%s.txt", stamp))

	raw, err := json.MarshalIndent(report, "", "  ")
	if err != nil {
		return "", "", fmt.Errorf("marshaling report: %w", err)
	}
	if err := os.WriteFile(jsonPath, raw, 0o644); err != nil {
		return "", "", fmt.Errorf("writing json report: %w", err)
	}

	if err := os.WriteFile(txtPath, []byte(RenderText(report, bookmakers)), 0o644); err != nil {
		return "", "", fmt.Errorf("writing text report: %w", err)
	}

	return jsonPath, txtPath, nil
}

// RenderText formats the operator-facing report. Bookmakers print in the
// configured order; teams print away first, then home.
func RenderText(report *models.Report, bookmakers []string) string {
	var b strings.Builder

	fmt.Fprintf(&b, "College Basketball Daily Report - %s\n\n", report.GeneratedAt.Format("2006-01-02"))

	for _, game := range report.Games {
		m := game.Matchup
		fmt.Fprintf(&b, "=== %s @ %s ===\n", m.Away, m.Home)
		fmt.Fprintf(&b, "Game Time: %s\n", m.CommenceTime.Local().Format("1/2/2006, 3:04:05 PM"))
		if game.HomeEdge != nil {
			fmt.Fprintf(&b, "Home Edge: %.2f\n", *game.HomeEdge)
		}
		b.WriteString("\n")

		b.WriteString("Odds:\n")
		for _, book := range bookmakers {
			odds, ok := m.Odds[book]
			if !ok {
				continue
			}
			fmt.Fprintf(&b, "%s:\n", book)
			if odds.Home != nil && odds.Away != nil {
				fmt.Fprintf(&b, "  Moneyline: %+d (H) / %+d (A)\n", *odds.Home, *odds.Away)
			}
			if odds.HomeSpread != nil && odds.AwaySpread != nil {
				fmt.Fprintf(&b, "  Spread: %+g (%s) / %+g (%s)\n",
					*odds.HomeSpread, fmtOdds(odds.HomeSpreadOdds),
					*odds.AwaySpread, fmtOdds(odds.AwaySpreadOdds))
			}
		}
		b.WriteString("\n")

		for _, team := range []string{m.Away, m.Home} {
			data := game.Teams[team]

			fmt.Fprintf(&b, "%s:\n", team)
			fmt.Fprintf(&b, "NET Rank: %s (Previous: %s)\n", fmtRank(data.NET), fmtRank(data.PreviousNET))
			fmt.Fprintf(&b, "Record: %s (Conf: %s)\n\n", data.Record, data.ConfRecord)

			for _, quad := range models.QuadKeys {
				bucket := data.QuadGames[quad]
				fmt.Fprintf(&b, "Quad %s (%s):\n", quad, bucket.Record)
				for _, g := range bucket.Games {
					fmt.Fprintf(&b, "  %s %s %s vs %s (%d)\n",
						g.Result, g.Score, g.Location, g.Opponent, g.OppNET)
				}
				b.WriteString("\n")
			}

			if len(data.Upcoming) > 0 {
				b.WriteString("Upcoming Games:\n")
				for _, g := range data.Upcoming {
					fmt.Fprintf(&b, "  %s %s vs %s (%d) - %s\n",
						g.Quad, g.Location, g.Opponent, g.OppNET, g.Date)
				}
				b.WriteString("\n")
			}
		}

		b.WriteString("\n=============================\n\n")
	}

	return b.String()
}

func fmtRank(r *int) string {
	if r == nil {
		return "N/A"
	}
	return fmt.Sprintf("%d", *r)
}

func fmtOdds(o *int) string {
	if o == nil {
		return "N/A"
	}
	return fmt.Sprintf("%+d", *o)
}
