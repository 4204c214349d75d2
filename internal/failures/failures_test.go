package failures

import (
	"os"
	"path/filepath"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"ncaab_report/internal/models"
)

func TestTrackerRecord(t *testing.T) {
	tracker := NewTracker()
	assert.Zero(t, tracker.Count())

	tracker.Record(nil) // nil is a no-op
	assert.Zero(t, tracker.Count())

	tracker.Record(&models.FailureRecord{TeamName: "Ghost Team", Slug: "ghost-team"})
	assert.Equal(t, 1, tracker.Count())
	assert.Equal(t, "Ghost Team", tracker.Records()[0].TeamName)
}

func TestTrackerConcurrent(t *testing.T) {
	tracker := NewTracker()

	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			tracker.Record(&models.FailureRecord{TeamName: "team"})
		}()
	}
	wg.Wait()

	assert.Equal(t, 50, tracker.Count())
}

func TestRender(t *testing.T) {
	records := []models.FailureRecord{
		{
			TeamName: "Ghost Team",
			Slug:     "ghost-team",
			URL:      "https://bballnet.com/teams/ghost-team",
			Error:    "request returned status 500",
		},
	}

	out := Render(records)
	assert.Contains(t, out, "Team: Ghost Team")
	assert.Contains(t, out, "Slug Used: ghost-team")
	assert.Contains(t, out, "Attempted URL: https://bballnet.com/teams/ghost-team")
	assert.Contains(t, out, "Error: request returned status 500")
	assert.Contains(t, out, "-------------------")
}

func TestWriteFile(t *testing.T) {
	dir := t.TempDir()
	tracker := NewTracker()
	tracker.Record(&models.FailureRecord{TeamName: "Ghost Team", Slug: "ghost-team"})

	require.NoError(t, tracker.WriteFile(dir))

	raw, err := os.ReadFile(filepath.Join(dir, "failed_teams.txt"))
	require.NoError(t, err)
	assert.Contains(t, string(raw), "Ghost Team")
}

func TestWriteFileEmptyIsNoop(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, NewTracker().WriteFile(dir))

	_, err := os.Stat(filepath.Join(dir, "failed_teams.txt"))
	assert.True(t, os.IsNotExist(err))
}
