// Package failures collects failed team fetches across a run and writes
// the operator follow-up log.
package failures

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"github.com/rs/zerolog/log"

	"ncaab_report/internal/models"
)

// Tracker accumulates failure records. Safe for concurrent use; fetch
// workers report into one shared tracker per run.
type Tracker struct {
	mu      sync.Mutex
	records []models.FailureRecord
}

func NewTracker() *Tracker {
	return &Tracker{}
}

// Record adds one failure. Nil records are ignored so callers can pass
// the fetch result through unconditionally.
func (t *Tracker) Record(rec *models.FailureRecord) {
	if rec == nil {
		return
	}
	t.mu.Lock()
	defer t.mu.Unlock()
	t.records = append(t.records, *rec)
}

// Records returns a copy of everything recorded so far.
func (t *Tracker) Records() []models.FailureRecord {
	t.mu.Lock()
	defer t.mu.Unlock()
	return append([]models.FailureRecord(nil), t.records...)
}

// Count returns the number of recorded failures.
func (t *Tracker) Count() int {
	t.mu.Lock()
	defer t.mu.Unlock()
	return len(t.records)
}

// Render formats the failure log, one block per team.
func Render(records []models.FailureRecord) string {
	blocks := make([]string, len(records))
	for i, f := range records {
		blocks[i] = fmt.Sprintf(
			"Team: %s\nSlug Used: %s\nAttempted URL: %s\nError: %s\n-------------------",
			f.TeamName, f.Slug, f.URL, f.Error,
		)
	}
	return strings.Join(blocks, "\n")
}

// WriteFile writes the failure log to failed_teams.txt in dir. Writing an
// empty tracker is a no-op.
func (t *Tracker) WriteFile(dir string) error {
	records := t.Records()
	if len(records) == 0 {
		return nil
	}
	path := filepath.Join(dir, "failed_teams.txt")
	if err := os.WriteFile(path, []byte(Render(records)), 0o644); err != nil {
		return fmt.Errorf("writing failure log: %w", err)
	}
	log.Warn().
		Int("teams", len(records)).
		Str("path", path).
		Msg("Wrote failed teams log")
	return nil
}
