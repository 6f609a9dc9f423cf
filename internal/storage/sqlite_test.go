package storage

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func openStore(t *testing.T) *Store {
	t.Helper()
	store, err := Open(filepath.Join(t.TempDir(), "test.db"))
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	t.Cleanup(func() { store.Close() })
	return store
}

func TestStoreOpenClose(t *testing.T) {
	tmpDir := t.TempDir()
	dbPath := filepath.Join(tmpDir, "test.db")

	store, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	defer store.Close()

	// Check that the file was created
	if _, err := os.Stat(dbPath); os.IsNotExist(err) {
		t.Error("Database file was not created")
	}
}

func TestStoreOpenCreatesParentDirs(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "nested", "dir", "test.db")

	store, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	defer store.Close()

	if _, err := os.Stat(dbPath); os.IsNotExist(err) {
		t.Error("Database file was not created in nested directory")
	}
}

func TestStoreSaveAndRetrieve(t *testing.T) {
	store := openStore(t)

	id, err := store.SaveSolve(SolveRecord{
		PuzzleID: "mad_1",
		File:     "puzzles/mad_1.bff",
		Solved:   true,
		Attempts: 1337,
		Duration: 250 * time.Millisecond,
	})
	if err != nil {
		t.Fatalf("SaveSolve() failed: %v", err)
	}
	if id == 0 {
		t.Error("expected a non-zero record ID")
	}

	recs, err := store.Recent(10)
	if err != nil {
		t.Fatalf("Recent() failed: %v", err)
	}
	if len(recs) != 1 {
		t.Fatalf("expected 1 record, got %d", len(recs))
	}

	rec := recs[0]
	if rec.PuzzleID != "mad_1" || rec.File != "puzzles/mad_1.bff" {
		t.Errorf("record = %+v", rec)
	}
	if !rec.Solved {
		t.Error("solved flag lost on round trip")
	}
	if rec.Attempts != 1337 {
		t.Errorf("attempts = %d, want 1337", rec.Attempts)
	}
	if rec.Duration != 250*time.Millisecond {
		t.Errorf("duration = %v, want 250ms", rec.Duration)
	}
	if rec.CreatedAt.IsZero() {
		t.Error("created_at not recorded")
	}
}

func TestStoreByPuzzle(t *testing.T) {
	store := openStore(t)

	for _, rec := range []SolveRecord{
		{PuzzleID: "mad_1", Solved: true, Attempts: 10},
		{PuzzleID: "tiny_5", Solved: true, Attempts: 3},
		{PuzzleID: "mad_1", Solved: false, Attempts: 9000},
	} {
		if _, err := store.SaveSolve(rec); err != nil {
			t.Fatalf("SaveSolve() failed: %v", err)
		}
	}

	recs, err := store.ByPuzzle("mad_1", 10)
	if err != nil {
		t.Fatalf("ByPuzzle() failed: %v", err)
	}
	if len(recs) != 2 {
		t.Fatalf("expected 2 mad_1 records, got %d", len(recs))
	}
	// Newest first: the failed run was inserted last.
	if recs[0].Solved {
		t.Error("expected the failed run first")
	}
}

func TestStoreRecentLimit(t *testing.T) {
	store := openStore(t)

	for i := 0; i < 5; i++ {
		if _, err := store.SaveSolve(SolveRecord{PuzzleID: "tiny_5", Solved: true}); err != nil {
			t.Fatalf("SaveSolve() failed: %v", err)
		}
	}

	recs, err := store.Recent(3)
	if err != nil {
		t.Fatalf("Recent() failed: %v", err)
	}
	if len(recs) != 3 {
		t.Errorf("expected 3 records, got %d", len(recs))
	}
}

func TestStoreStats(t *testing.T) {
	store := openStore(t)

	for _, rec := range []SolveRecord{
		{PuzzleID: "yarn_5", Solved: true, Attempts: 100, Duration: 400 * time.Millisecond},
		{PuzzleID: "yarn_5", Solved: true, Attempts: 300, Duration: 200 * time.Millisecond},
		{PuzzleID: "yarn_5", Solved: false, Attempts: 800, Duration: 900 * time.Millisecond},
	} {
		if _, err := store.SaveSolve(rec); err != nil {
			t.Fatalf("SaveSolve() failed: %v", err)
		}
	}

	stats, err := store.Stats("yarn_5")
	if err != nil {
		t.Fatalf("Stats() failed: %v", err)
	}
	if stats.Runs != 3 || stats.SolvedRuns != 2 {
		t.Errorf("runs = %d/%d, want 3/2", stats.SolvedRuns, stats.Runs)
	}
	// Best duration only counts solved runs.
	if stats.BestDuration != 200*time.Millisecond {
		t.Errorf("best duration = %v, want 200ms", stats.BestDuration)
	}
	if stats.AvgAttempts != 400 {
		t.Errorf("avg attempts = %v, want 400", stats.AvgAttempts)
	}
	if stats.LastRun.IsZero() {
		t.Error("last run not recorded")
	}
}

func TestStoreStatsEmpty(t *testing.T) {
	store := openStore(t)

	stats, err := store.Stats("nope")
	if err != nil {
		t.Fatalf("Stats() failed: %v", err)
	}
	if stats.Runs != 0 || stats.SolvedRuns != 0 || stats.BestDuration != 0 {
		t.Errorf("stats = %+v, want zeros", stats)
	}
}

func TestStoreClear(t *testing.T) {
	store := openStore(t)

	if _, err := store.SaveSolve(SolveRecord{PuzzleID: "mad_1", Solved: true}); err != nil {
		t.Fatalf("SaveSolve() failed: %v", err)
	}
	if _, err := store.SaveSolve(SolveRecord{PuzzleID: "tiny_5", Solved: true}); err != nil {
		t.Fatalf("SaveSolve() failed: %v", err)
	}

	if err := store.Clear("mad_1"); err != nil {
		t.Fatalf("Clear() failed: %v", err)
	}

	recs, err := store.Recent(10)
	if err != nil {
		t.Fatalf("Recent() failed: %v", err)
	}
	if len(recs) != 1 || recs[0].PuzzleID != "tiny_5" {
		t.Errorf("records after clear = %+v", recs)
	}
}
