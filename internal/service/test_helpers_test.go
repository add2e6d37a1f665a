package service_test

import (
	"database/sql"
	"path/filepath"
	"testing"
	"time"

	"github.com/daniazubel1/suptrack/internal/service"
	"github.com/daniazubel1/suptrack/internal/store"
)

func newTestDB(t *testing.T) *sql.DB {
	t.Helper()
	db, err := store.Open(filepath.Join(t.TempDir(), "suptrack.db"))
	if err != nil {
		t.Fatalf("open store: %v", err)
	}
	t.Cleanup(func() { db.Close() })
	return db
}

// newTestEngine pins the clock to mid-day so hour-gated rules stay inert
// unless a test opts in via newTestEngineAt.
func newTestEngine(t *testing.T) *service.Engine {
	t.Helper()
	return service.NewWithClock(newTestDB(t), func() time.Time {
		return time.Date(2024, 6, 1, 12, 0, 0, 0, time.Local)
	})
}

func newTestEngineAt(t *testing.T, now time.Time) *service.Engine {
	t.Helper()
	return service.NewWithClock(newTestDB(t), func() time.Time { return now })
}

func intPtr(v int) *int { return &v }

func strPtr(v string) *string { return &v }
