package storage

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/vovakirdan/ortho-arena/internal/sim"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	store, err := Open(filepath.Join(t.TempDir(), "test.db"))
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	t.Cleanup(func() { store.Close() })
	return store
}

func TestStoreOpenCreatesFile(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "nested", "runs.db")

	store, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	defer store.Close()

	if _, err := os.Stat(dbPath); os.IsNotExist(err) {
		t.Error("Database file was not created")
	}
}

func TestSaveAndLoadRun(t *testing.T) {
	store := openTestStore(t)

	timeline := []sim.Mark{
		{Tick: 0, Kind: sim.MarkFire, X: 1, Z: 2, Note: "pistol"},
		{Tick: 3, Kind: sim.MarkCollision, X: 1, Z: -8},
	}
	id, err := store.SaveRun(RunRecord{
		LevelID:  "range",
		Player:   "alice",
		Seed:     42,
		Ticks:    120,
		Shots:    4,
		Hits:     3,
		Fizzles:  1,
		Pickups:  2,
		Timeline: timeline,
	})
	if err != nil {
		t.Fatalf("SaveRun() failed: %v", err)
	}

	r, err := store.Run(id)
	if err != nil {
		t.Fatalf("Run() failed: %v", err)
	}
	if r.LevelID != "range" || r.Player != "alice" || r.Seed != 42 || r.Ticks != 120 {
		t.Errorf("unexpected record %+v", r)
	}
	if r.Accuracy() != 0.75 {
		t.Errorf("Accuracy = %v, expected 0.75", r.Accuracy())
	}
	if len(r.Timeline) != 2 || r.Timeline[0] != timeline[0] || r.Timeline[1] != timeline[1] {
		t.Errorf("timeline = %+v", r.Timeline)
	}
	if r.CreatedAt.IsZero() {
		t.Error("CreatedAt should be set")
	}
}

func TestRunNotFound(t *testing.T) {
	store := openTestStore(t)
	if _, err := store.Run(99); !errors.Is(err, ErrRunNotFound) {
		t.Errorf("expected ErrRunNotFound, got %v", err)
	}
}

func TestRecentRunsAndStats(t *testing.T) {
	store := openTestStore(t)

	for i, level := range []string{"range", "range", "warehouse"} {
		if _, err := store.SaveRun(RunRecord{LevelID: level, Shots: 10, Hits: i + 1, Pickups: 1}); err != nil {
			t.Fatalf("SaveRun() failed: %v", err)
		}
	}

	all, err := store.RecentRuns("", 10)
	if err != nil {
		t.Fatalf("RecentRuns() failed: %v", err)
	}
	if len(all) != 3 || all[0].LevelID != "warehouse" {
		t.Errorf("expected newest first, got %+v", all)
	}
	if all[0].Timeline != nil {
		t.Error("RecentRuns should not load timelines")
	}

	ranged, _ := store.RecentRuns("range", 1)
	if len(ranged) != 1 || ranged[0].Hits != 2 {
		t.Errorf("RecentRuns(range, 1) = %+v", ranged)
	}

	stats, err := store.AllLevelStats()
	if err != nil {
		t.Fatalf("AllLevelStats() failed: %v", err)
	}
	rs := stats["range"]
	if rs == nil || rs.Runs != 2 || rs.Shots != 20 || rs.Hits != 3 {
		t.Errorf("range stats = %+v", rs)
	}

	if err := store.ClearRuns("range"); err != nil {
		t.Fatalf("ClearRuns() failed: %v", err)
	}
	if left, _ := store.RecentRuns("", 10); len(left) != 1 {
		t.Errorf("%d runs left after clear, expected 1", len(left))
	}
}
