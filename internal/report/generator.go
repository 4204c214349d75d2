// Package report orchestrates one daily run: odds slate, per-team
// snapshots, secondary ranks, home edges, files and persistence.
package report

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/rs/zerolog/log"
	"golang.org/x/sync/errgroup"

	"ncaab_report/internal/advantage"
	"ncaab_report/internal/cache"
	"ncaab_report/internal/client"
	"ncaab_report/internal/failures"
	"ncaab_report/internal/metrics"
	"ncaab_report/internal/models"
	"ncaab_report/internal/names"
	"ncaab_report/internal/rankings"
	"ncaab_report/internal/repository"
)

// Generator wires the three fetchers, the advantage chart and the output
// sinks into one run. Cache and db may be nil; the run proceeds without
// them.
type Generator struct {
	Odds     *client.OddsClient
	Stats    *client.StatsClient
	Rankings *client.RankingsClient
	Chart    *advantage.Chart
	Cache    *cache.RedisCache
	DB       *repository.Database

	OutputDir        string
	Bookmakers       []string
	FetchConcurrency int
	StatsTTL         time.Duration
	RankingsTTL      time.Duration
}

// Generate runs one full report. A run fails only when the odds slate is
// unavailable; every per-team problem degrades to empty data and a
// failure record.
func (g *Generator) Generate(ctx context.Context) (*models.Report, error) {
	started := time.Now()

	matchups, err := g.Odds.FetchMatchups(ctx)
	if err != nil {
		return nil, fmt.Errorf("fetching slate: %w", err)
	}
	if len(matchups) == 0 {
		log.Info().Msg("No games found for today")
		return &models.Report{GeneratedAt: time.Now().UTC(), Games: []models.GameReport{}}, nil
	}

	book := g.loadRankings(ctx)
	tracker := failures.NewTracker()
	teamData := g.fetchTeams(ctx, matchups, tracker)

	games := make([]models.GameReport, 0, len(matchups))
	for _, m := range matchups {
		gr := models.GameReport{
			Matchup: m,
			Teams: map[string]models.TeamData{
				m.Home: book.Enrich(teamData[m.Home]),
				m.Away: book.Enrich(teamData[m.Away]),
			},
		}
		if g.Chart != nil {
			if edge, ok := g.Chart.Lookup(m.Home); ok {
				gr.HomeEdge = &edge
			}
		}
		games = append(games, gr)
	}

	report := &models.Report{
		GeneratedAt: time.Now().UTC(),
		Games:       games,
	}

	if g.OutputDir != "" {
		if err := g.writeOutputs(report, tracker); err != nil {
			return nil, err
		}
	}
	g.persist(ctx, report, tracker)

	metrics.RecordReport(len(games), time.Since(started).Seconds())
	log.Info().
		Int("games", len(games)).
		Int("failed_teams", tracker.Count()).
		Dur("elapsed", time.Since(started)).
		Msg("Report generation complete")
	return report, nil
}

// fetchTeams fetches every distinct team on the slate once. The slate
// spelling is the map key; resolution to a stats slug happens here and
// nowhere else.
func (g *Generator) fetchTeams(ctx context.Context, matchups []models.Matchup, tracker *failures.Tracker) map[string]models.TeamData {
	seen := make(map[string]bool)
	var teams []string
	for _, m := range matchups {
		for _, name := range []string{m.Home, m.Away} {
			if !seen[name] {
				seen[name] = true
				teams = append(teams, name)
			}
		}
	}

	results := make([]models.TeamData, len(teams))
	eg, egCtx := errgroup.WithContext(ctx)
	if g.FetchConcurrency > 0 {
		eg.SetLimit(g.FetchConcurrency)
	}
	for i, name := range teams {
		i, name := i, name
		eg.Go(func() error {
			results[i] = g.fetchTeam(egCtx, name, tracker)
			return nil
		})
	}
	_ = eg.Wait() // workers never return errors

	out := make(map[string]models.TeamData, len(teams))
	for i, name := range teams {
		out[name] = results[i]
	}
	return out
}

func (g *Generator) fetchTeam(ctx context.Context, name string, tracker *failures.Tracker) models.TeamData {
	slug, known := names.ResolveKnown(name, names.StatsSlugs)
	metrics.TeamsResolved.Inc()
	if !known {
		metrics.TeamsSlugFallback.Inc()
	}

	cacheKey := "team:" + slug
	if raw, err := g.Cache.Get(ctx, cacheKey); err == nil {
		var data models.TeamData
		if err := json.Unmarshal(raw, &data); err == nil {
			return data
		}
	}

	data, failure := g.Stats.FetchTeam(ctx, name, slug)
	tracker.Record(failure)

	if failure == nil && data.CompletedGames() > 0 {
		if raw, err := json.Marshal(data); err == nil {
			if err := g.Cache.Set(ctx, cacheKey, raw, g.StatsTTL); err != nil {
				log.Warn().Err(err).Str("team", name).Msg("Failed to cache team data")
			}
		}
	}
	return data
}

// loadRankings returns the secondary rank book, from cache when possible.
// A source outage degrades to an empty book rather than failing the run.
func (g *Generator) loadRankings(ctx context.Context) *rankings.Book {
	const cacheKey = "rankings"

	if raw, err := g.Cache.Get(ctx, cacheKey); err == nil {
		var teams []client.RankedTeam
		if err := json.Unmarshal(raw, &teams); err == nil && len(teams) > 0 {
			return rankings.NewBook(teams)
		}
	}

	teams, err := g.Rankings.FetchRankings(ctx)
	if err != nil {
		log.Warn().Err(err).Msg("Secondary rankings unavailable, continuing without them")
		return rankings.EmptyBook()
	}

	if raw, err := json.Marshal(teams); err == nil {
		if err := g.Cache.Set(ctx, cacheKey, raw, g.RankingsTTL); err != nil {
			log.Warn().Err(err).Msg("Failed to cache rankings")
		}
	}
	return rankings.NewBook(teams)
}

func (g *Generator) writeOutputs(report *models.Report, tracker *failures.Tracker) error {
	jsonPath, txtPath, err := WriteFiles(report, g.Bookmakers, g.OutputDir)
	if err != nil {
		return fmt.Errorf("writing report files: %w", err)
	}
	log.Info().
		Str("json", jsonPath).
		Str("txt", txtPath).
		Msg("Report files written")

	if err := tracker.WriteFile(g.OutputDir); err != nil {
		log.Error().Err(err).Msg("Failed to write failed teams log")
	}
	return nil
}

// persist stores the run and its failures when a database is configured.
// Persistence errors are logged, never fatal; the files on disk are the
// primary output.
func (g *Generator) persist(ctx context.Context, report *models.Report, tracker *failures.Tracker) {
	if g.DB == nil {
		return
	}

	payload, err := json.Marshal(report)
	if err != nil {
		log.Error().Err(err).Msg("Failed to marshal report for persistence")
		return
	}

	run := &models.ReportRun{
		GeneratedAt:  report.GeneratedAt,
		GameCount:    len(report.Games),
		FailureCount: tracker.Count(),
		Payload:      payload,
	}
	if err := g.DB.Reports.CreateRun(ctx, run); err != nil {
		log.Error().Err(err).Msg("Failed to persist report run")
		return
	}
	if err := g.DB.Failures.CreateBatch(ctx, run.ID, tracker.Records()); err != nil {
		log.Error().Err(err).Msg("Failed to persist fetch failures")
	}
}
