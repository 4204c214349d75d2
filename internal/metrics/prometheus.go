package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Prometheus metrics for the report service

var (
	// Upstream fetch metrics
	FetchTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "ncaab_fetch_total",
			Help: "Total number of successful upstream fetches",
		},
		[]string{"source"},
	)

	FetchErrors = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "ncaab_fetch_errors_total",
			Help: "Total number of failed upstream fetches",
		},
		[]string{"source"},
	)

	FetchDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "ncaab_fetch_duration_seconds",
			Help:    "Duration of upstream fetches in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"source"},
	)

	// Team resolution metrics
	TeamsResolved = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "ncaab_teams_resolved_total",
			Help: "Total number of team names resolved to a canonical form",
		},
	)

	TeamsSlugFallback = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "ncaab_teams_slug_fallback_total",
			Help: "Total number of team names resolved only by the slug fallback",
		},
	)

	TeamFetchFailures = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "ncaab_team_fetch_failures_total",
			Help: "Total number of team sheet fetches that produced a failure record",
		},
	)

	// Report metrics
	ReportsGenerated = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "ncaab_reports_generated_total",
			Help: "Total number of daily reports generated",
		},
	)

	ReportGames = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "ncaab_report_games",
			Help: "Number of games in the most recent report",
		},
	)

	ReportDuration = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "ncaab_report_duration_seconds",
			Help:    "Duration of report generation in seconds",
			Buckets: []float64{1, 5, 10, 30, 60, 120, 300, 600},
		},
	)

	LastReportTimestamp = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "ncaab_last_report_timestamp",
			Help: "Timestamp of the last successful report",
		},
	)

	// Cache metrics
	CacheHitsTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "ncaab_cache_hits_total",
			Help: "Total number of cache hits",
		},
	)

	CacheMissesTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "ncaab_cache_misses_total",
			Help: "Total number of cache misses",
		},
	)

	// Database metrics
	DBQueriesTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "ncaab_db_queries_total",
			Help: "Total number of database queries",
		},
		[]string{"operation", "table", "status"},
	)
)

// RecordFetch records a successful upstream fetch
func RecordFetch(source string, duration float64) {
	FetchTotal.WithLabelValues(source).Inc()
	FetchDuration.WithLabelValues(source).Observe(duration)
}

// RecordCacheHit records a cache hit
func RecordCacheHit() {
	CacheHitsTotal.Inc()
}

// RecordCacheMiss records a cache miss
func RecordCacheMiss() {
	CacheMissesTotal.Inc()
}

// RecordDBQuery records a database query metric
func RecordDBQuery(operation, table, status string) {
	DBQueriesTotal.WithLabelValues(operation, table, status).Inc()
}

// RecordReport records a completed report run
func RecordReport(games int, duration float64) {
	ReportsGenerated.Inc()
	ReportGames.Set(float64(games))
	ReportDuration.Observe(duration)
	LastReportTimestamp.SetToCurrentTime()
}
