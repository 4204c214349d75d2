package config

import (
	"fmt"
	"os"
	"time"

	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
)

// Config holds all application configuration
type Config struct {
	// Odds API
	OddsAPIKey  string        `envconfig:"ODDS_API_KEY" required:"true"`
	OddsBaseURL string        `envconfig:"ODDS_BASE_URL" default:"https://api.the-odds-api.com/v4"`
	OddsSport   string        `envconfig:"ODDS_SPORT" default:"basketball_ncaab"`
	OddsTimeout time.Duration `envconfig:"ODDS_TIMEOUT" default:"30s"`

	// Team stats source
	StatsBaseURL string        `envconfig:"STATS_BASE_URL" default:"https://bballnet.com"`
	StatsTimeout time.Duration `envconfig:"STATS_TIMEOUT" default:"10s"`

	// Secondary rankings source
	RankingsURL     string        `envconfig:"RANKINGS_URL" default:"https://kenpom.com/"`
	RankingsTimeout time.Duration `envconfig:"RANKINGS_TIMEOUT" default:"15s"`

	// Database
	DatabaseHost     string `envconfig:"DATABASE_HOST" default:"localhost"`
	DatabasePort     int    `envconfig:"DATABASE_PORT" default:"5432"`
	DatabaseName     string `envconfig:"DATABASE_NAME" default:"ncaab_report"`
	DatabaseUser     string `envconfig:"DATABASE_USER" default:"ncaab_user"`
	DatabasePassword string `envconfig:"DATABASE_PASSWORD" required:"true"`
	DatabaseSSLMode  string `envconfig:"DATABASE_SSL_MODE" default:"disable"`

	// Redis
	RedisHost     string `envconfig:"REDIS_HOST" default:"localhost"`
	RedisPort     int    `envconfig:"REDIS_PORT" default:"6379"`
	RedisPassword string `envconfig:"REDIS_PASSWORD" default:""`
	RedisDB       int    `envconfig:"REDIS_DB" default:"0"`

	// Application
	AppEnv   string `envconfig:"APP_ENV" default:"development"`
	LogLevel string `envconfig:"LOG_LEVEL" default:"info"`

	// Report generation
	OutputDir        string `envconfig:"OUTPUT_DIR" default:"./reports"`
	FetchConcurrency int    `envconfig:"FETCH_CONCURRENCY" default:"8"`
	AdvantageCSV     string `envconfig:"ADVANTAGE_CSV" default:""`

	// Bookmakers included in the report, comma separated feed keys
	Bookmakers []string `envconfig:"BOOKMAKERS" default:"fanduel,draftkings,betmgm,caesars,espnbet"`

	// Scheduler
	EnableScheduler bool   `envconfig:"ENABLE_SCHEDULER" default:"true"`
	ReportCron      string `envconfig:"REPORT_CRON" default:"0 7 * * *"`
	RunOnStart      bool   `envconfig:"RUN_ON_START" default:"false"`

	// Caching TTL (in seconds)
	CacheTTLStats    int `envconfig:"CACHE_TTL_STATS" default:"3600"` // 1 hour
	CacheTTLRankings int `envconfig:"CACHE_TTL_RANKINGS" default:"21600"`

	// Monitoring
	EnableMetrics bool `envconfig:"ENABLE_METRICS" default:"true"`
	MetricsPort   int  `envconfig:"METRICS_PORT" default:"9090"`
}

// Load loads configuration from environment variables
// It first attempts to load from .env file if in development mode
func Load() (*Config, error) {
	// Try to load .env file (ignore error if doesn't exist)
	_ = godotenv.Load()

	var cfg Config
	if err := envconfig.Process("", &cfg); err != nil {
		return nil, fmt.Errorf("failed to process environment config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return &cfg, nil
}

// Validate validates the configuration
func (c *Config) Validate() error {
	if c.OddsAPIKey == "" {
		return fmt.Errorf("ODDS_API_KEY is required")
	}

	if c.DatabasePassword == "" {
		return fmt.Errorf("DATABASE_PASSWORD is required")
	}

	if c.FetchConcurrency < 1 {
		return fmt.Errorf("FETCH_CONCURRENCY must be at least 1")
	}

	return nil
}

// DatabaseDSN returns the PostgreSQL connection string
func (c *Config) DatabaseDSN() string {
	return fmt.Sprintf(
		"host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
		c.DatabaseHost,
		c.DatabasePort,
		c.DatabaseUser,
		c.DatabasePassword,
		c.DatabaseName,
		c.DatabaseSSLMode,
	)
}

// RedisAddr returns the Redis address
func (c *Config) RedisAddr() string {
	return fmt.Sprintf("%s:%d", c.RedisHost, c.RedisPort)
}

// IsDevelopment returns true if running in development mode
func (c *Config) IsDevelopment() bool {
	return c.AppEnv == "development"
}

// IsProduction returns true if running in production mode
func (c *Config) IsProduction() bool {
	return c.AppEnv == "production"
}

// MustLoad loads configuration or panics on error
// Use this in main() where we want to fail fast
func MustLoad() *Config {
	cfg, err := Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load configuration: %v\n", err)
		os.Exit(1)
	}
	return cfg
}
