package repository

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"

	"ncaab_report/internal/metrics"
	"ncaab_report/internal/models"
)

// ReportRepository persists completed report runs
type ReportRepository struct {
	db *Database
}

// CreateRun inserts a completed run with its full JSON payload
func (r *ReportRepository) CreateRun(ctx context.Context, run *models.ReportRun) error {
	query := `
		INSERT INTO report_runs (generated_at, game_count, failure_count, payload)
		VALUES ($1, $2, $3, $4)
		RETURNING id, created_at
	`

	err := r.db.Pool.QueryRow(
		ctx, query,
		run.GeneratedAt, run.GameCount, run.FailureCount, run.Payload,
	).Scan(&run.ID, &run.CreatedAt)

	if err != nil {
		metrics.RecordDBQuery("insert", "report_runs", "error")
		return fmt.Errorf("failed to create report run: %w", err)
	}

	metrics.RecordDBQuery("insert", "report_runs", "success")
	return nil
}

// GetLatestRun retrieves the most recent run, or nil when none exist
func (r *ReportRepository) GetLatestRun(ctx context.Context) (*models.ReportRun, error) {
	query := `
		SELECT id, generated_at, game_count, failure_count, payload, created_at
		FROM report_runs
		ORDER BY generated_at DESC
		LIMIT 1
	`

	var run models.ReportRun
	err := r.db.Pool.QueryRow(ctx, query).Scan(
		&run.ID, &run.GeneratedAt, &run.GameCount, &run.FailureCount, &run.Payload, &run.CreatedAt,
	)

	if err == pgx.ErrNoRows {
		return nil, nil // No runs yet is not an error
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get latest report run: %w", err)
	}

	return &run, nil
}

// ListRuns retrieves run summaries, newest first, without payloads
func (r *ReportRepository) ListRuns(ctx context.Context, limit int) ([]*models.ReportRun, error) {
	query := `
		SELECT id, generated_at, game_count, failure_count, created_at
		FROM report_runs
		ORDER BY generated_at DESC
		LIMIT $1
	`

	rows, err := r.db.Pool.Query(ctx, query, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to list report runs: %w", err)
	}
	defer rows.Close()

	var runs []*models.ReportRun
	for rows.Next() {
		var run models.ReportRun
		err := rows.Scan(&run.ID, &run.GeneratedAt, &run.GameCount, &run.FailureCount, &run.CreatedAt)
		if err != nil {
			return nil, fmt.Errorf("failed to scan report run: %w", err)
		}
		runs = append(runs, &run)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating report runs: %w", err)
	}

	return runs, nil
}
