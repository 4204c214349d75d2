// Command manualfetch runs one report generation immediately and exits.
// Useful for backfilling a missed morning run or testing source changes
// without waiting on the schedule.
package main

import (
	"context"
	"flag"
	"os"
	"strconv"
	"time"

	"ncaab_report/internal/advantage"
	"ncaab_report/internal/cache"
	"ncaab_report/internal/client"
	"ncaab_report/internal/config"
	"ncaab_report/internal/report"
	"ncaab_report/internal/repository"

	"github.com/rs/zerolog/log"
)

func main() {
	skipDB := flag.Bool("no-db", false, "skip persisting the run to the database")
	skipCache := flag.Bool("no-cache", false, "bypass the Redis cache")
	outputDir := flag.String("out", "", "override the output directory")
	flag.Parse()

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Minute)
	defer cancel()

	cfg := config.MustLoad()

	var db *repository.Database
	if !*skipDB {
		var err error
		db, err = repository.NewDatabase(ctx, repository.Config{
			Host:     cfg.DatabaseHost,
			Port:     strconv.Itoa(cfg.DatabasePort),
			User:     cfg.DatabaseUser,
			Password: cfg.DatabasePassword,
			Database: cfg.DatabaseName,
			SSLMode:  cfg.DatabaseSSLMode,
		})
		if err != nil {
			log.Fatal().Err(err).Msg("Failed to connect to database")
		}
		defer db.Close()
	}

	var redisCache *cache.RedisCache
	if !*skipCache {
		var err error
		redisCache, err = cache.NewRedisCache(cache.Config{
			Host:     cfg.RedisHost,
			Port:     strconv.Itoa(cfg.RedisPort),
			Password: cfg.RedisPassword,
			DB:       cfg.RedisDB,
		})
		if err != nil {
			log.Warn().Err(err).Msg("Failed to connect to Redis - continuing without cache")
			redisCache = nil
		} else {
			defer redisCache.Close()
		}
	}

	dir := cfg.OutputDir
	if *outputDir != "" {
		dir = *outputDir
	}

	var chart *advantage.Chart
	if cfg.AdvantageCSV != "" {
		raw, err := os.ReadFile(cfg.AdvantageCSV)
		if err != nil {
			log.Warn().Err(err).Str("path", cfg.AdvantageCSV).Msg("Failed to read advantage chart - continuing without edges")
		} else {
			chart = advantage.Parse(string(raw))
		}
	}

	generator := &report.Generator{
		Odds: client.NewOddsClient(
			cfg.OddsBaseURL, cfg.OddsAPIKey, cfg.OddsSport, cfg.Bookmakers, cfg.OddsTimeout),
		Stats:            client.NewStatsClient(cfg.StatsBaseURL, cfg.StatsTimeout, cfg.FetchConcurrency),
		Rankings:         client.NewRankingsClient(cfg.RankingsURL, cfg.RankingsTimeout),
		Chart:            chart,
		Cache:            redisCache,
		DB:               db,
		OutputDir:        dir,
		Bookmakers:       cfg.Bookmakers,
		FetchConcurrency: cfg.FetchConcurrency,
		StatsTTL:         time.Duration(cfg.CacheTTLStats) * time.Second,
		RankingsTTL:      time.Duration(cfg.CacheTTLRankings) * time.Second,
	}

	rep, err := generator.Generate(ctx)
	if err != nil {
		log.Fatal().Err(err).Msg("Report generation failed")
	}

	log.Info().
		Int("games", len(rep.Games)).
		Str("output_dir", dir).
		Msg("Manual report run complete")
}
