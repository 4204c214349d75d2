package repository

import (
	"context"
	"fmt"

	"ncaab_report/internal/metrics"
	"ncaab_report/internal/models"
)

// FailureRepository persists failed team fetches for operator follow-up
type FailureRepository struct {
	db *Database
}

// CreateBatch inserts every failure from one run under its run id
func (r *FailureRepository) CreateBatch(ctx context.Context, runID int, records []models.FailureRecord) error {
	if len(records) == 0 {
		return nil
	}

	query := `
		INSERT INTO fetch_failures (run_id, team_name, slug, url, error)
		VALUES ($1, $2, $3, $4, $5)
	`

	for _, rec := range records {
		if _, err := r.db.Pool.Exec(ctx, query, runID, rec.TeamName, rec.Slug, rec.URL, rec.Error); err != nil {
			metrics.RecordDBQuery("insert", "fetch_failures", "error")
			return fmt.Errorf("failed to record fetch failure for %s: %w", rec.TeamName, err)
		}
	}

	metrics.RecordDBQuery("insert", "fetch_failures", "success")
	return nil
}

// ListByRun retrieves the failures recorded for one run
func (r *FailureRepository) ListByRun(ctx context.Context, runID int) ([]models.FailureRecord, error) {
	query := `
		SELECT team_name, slug, url, error
		FROM fetch_failures
		WHERE run_id = $1
		ORDER BY id
	`

	rows, err := r.db.Pool.Query(ctx, query, runID)
	if err != nil {
		return nil, fmt.Errorf("failed to list fetch failures: %w", err)
	}
	defer rows.Close()

	var records []models.FailureRecord
	for rows.Next() {
		var rec models.FailureRecord
		if err := rows.Scan(&rec.TeamName, &rec.Slug, &rec.URL, &rec.Error); err != nil {
			return nil, fmt.Errorf("failed to scan fetch failure: %w", err)
		}
		records = append(records, rec)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating fetch failures: %w", err)
	}

	return records, nil
}
