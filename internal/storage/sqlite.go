// Package storage provides SQLite-based persistence for solve history.
// Uses the pure-Go modernc.org/sqlite driver to avoid CGO dependencies.
package storage

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"time"

	_ "modernc.org/sqlite" // Pure Go SQLite driver
)

// Store manages the SQLite database connection for solve persistence.
type Store struct {
	db *sql.DB
}

// SolveRecord represents one completed solver run.
type SolveRecord struct {
	ID         int64
	PuzzleID   string
	File       string
	Solved     bool
	Attempts   uint64
	Duration   time.Duration
	DurationMS int64
	CreatedAt  time.Time
}

// PuzzleStats contains aggregated statistics for one puzzle.
type PuzzleStats struct {
	PuzzleID     string
	Runs         int
	SolvedRuns   int
	BestDuration time.Duration
	AvgAttempts  float64
	LastRun      time.Time
}

// Open creates or opens a SQLite database at the given path.
// It creates the parent directories if needed and runs migrations.
func Open(dbPath string) (*Store, error) {
	// Expand ~ to home directory
	if dbPath != "" && dbPath[0] == '~' {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, fmt.Errorf("storage: cannot expand home directory: %w", err)
		}
		dbPath = filepath.Join(home, dbPath[1:])
	}

	// Create parent directories
	dir := filepath.Dir(dbPath)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("storage: cannot create directory %s: %w", dir, err)
	}

	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot open database: %w", err)
	}

	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("storage: cannot connect to database: %w", err)
	}

	store := &Store{db: db}

	if err := store.migrate(); err != nil {
		db.Close()
		return nil, fmt.Errorf("storage: migration failed: %w", err)
	}

	return store, nil
}

// migrate creates the database schema if it doesn't exist.
func (s *Store) migrate() error {
	schema := `
		CREATE TABLE IF NOT EXISTS solves (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			puzzle_id TEXT NOT NULL,
			file TEXT NOT NULL DEFAULT '',
			solved INTEGER NOT NULL DEFAULT 0,
			attempts INTEGER NOT NULL DEFAULT 0,
			duration_ms INTEGER NOT NULL DEFAULT 0,
			created_at DATETIME DEFAULT CURRENT_TIMESTAMP
		);
		CREATE INDEX IF NOT EXISTS idx_solves_puzzle_id ON solves(puzzle_id);
		CREATE INDEX IF NOT EXISTS idx_solves_recent ON solves(created_at DESC);
	`

	_, err := s.db.Exec(schema)
	return err
}

// Close closes the database connection.
func (s *Store) Close() error {
	if s.db != nil {
		return s.db.Close()
	}
	return nil
}

// SaveSolve records a completed solver run.
// Returns the ID of the inserted record.
func (s *Store) SaveSolve(rec SolveRecord) (int64, error) {
	solved := 0
	if rec.Solved {
		solved = 1
	}
	result, err := s.db.Exec(
		"INSERT INTO solves (puzzle_id, file, solved, attempts, duration_ms) VALUES (?, ?, ?, ?, ?)",
		rec.PuzzleID, rec.File, solved, rec.Attempts, rec.Duration.Milliseconds(),
	)
	if err != nil {
		return 0, fmt.Errorf("storage: cannot save solve: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("storage: cannot get inserted ID: %w", err)
	}

	return id, nil
}

// Recent retrieves the most recent solve records across all puzzles.
func (s *Store) Recent(limit int) ([]SolveRecord, error) {
	if limit <= 0 {
		limit = 20
	}

	rows, err := s.db.Query(
		`SELECT id, puzzle_id, file, solved, attempts, duration_ms, created_at
		 FROM solves
		 ORDER BY created_at DESC, id DESC
		 LIMIT ?`,
		limit,
	)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query solves: %w", err)
	}
	defer rows.Close()

	return scanSolves(rows)
}

// ByPuzzle retrieves solve records for one puzzle, newest first.
func (s *Store) ByPuzzle(puzzleID string, limit int) ([]SolveRecord, error) {
	if limit <= 0 {
		limit = 20
	}

	rows, err := s.db.Query(
		`SELECT id, puzzle_id, file, solved, attempts, duration_ms, created_at
		 FROM solves
		 WHERE puzzle_id = ?
		 ORDER BY created_at DESC, id DESC
		 LIMIT ?`,
		puzzleID, limit,
	)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query solves: %w", err)
	}
	defer rows.Close()

	return scanSolves(rows)
}

func scanSolves(rows *sql.Rows) ([]SolveRecord, error) {
	var records []SolveRecord
	for rows.Next() {
		var rec SolveRecord
		var solved int
		var createdAt any
		if err := rows.Scan(&rec.ID, &rec.PuzzleID, &rec.File, &solved, &rec.Attempts, &rec.DurationMS, &createdAt); err != nil {
			return nil, fmt.Errorf("storage: cannot scan row: %w", err)
		}
		rec.Solved = solved != 0
		rec.Duration = time.Duration(rec.DurationMS) * time.Millisecond
		rec.CreatedAt = parseCreatedAt(createdAt)
		records = append(records, rec)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}

	return records, nil
}

// parseCreatedAt handles both time.Time and string values from the driver.
func parseCreatedAt(v any) time.Time {
	switch t := v.(type) {
	case time.Time:
		return t
	case string:
		if parsed, err := time.Parse("2006-01-02 15:04:05", t); err == nil {
			return parsed
		}
	}
	return time.Time{}
}

// Stats retrieves aggregated statistics for a specific puzzle.
func (s *Store) Stats(puzzleID string) (*PuzzleStats, error) {
	stats := &PuzzleStats{PuzzleID: puzzleID}

	var bestMS sql.NullInt64
	err := s.db.QueryRow(
		`SELECT COUNT(*),
		        COALESCE(SUM(solved), 0),
		        MIN(CASE WHEN solved = 1 THEN duration_ms END),
		        COALESCE(AVG(attempts), 0)
		 FROM solves WHERE puzzle_id = ?`,
		puzzleID,
	).Scan(&stats.Runs, &stats.SolvedRuns, &bestMS, &stats.AvgAttempts)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot get puzzle stats: %w", err)
	}
	if bestMS.Valid {
		stats.BestDuration = time.Duration(bestMS.Int64) * time.Millisecond
	}

	var lastRun any
	err = s.db.QueryRow(
		`SELECT created_at FROM solves WHERE puzzle_id = ? ORDER BY created_at DESC LIMIT 1`,
		puzzleID,
	).Scan(&lastRun)
	if err != nil && err != sql.ErrNoRows {
		return nil, fmt.Errorf("storage: cannot get last run: %w", err)
	}
	if err == nil {
		stats.LastRun = parseCreatedAt(lastRun)
	}

	return stats, nil
}

// Clear deletes all solve records for the given puzzle.
func (s *Store) Clear(puzzleID string) error {
	_, err := s.db.Exec("DELETE FROM solves WHERE puzzle_id = ?", puzzleID)
	if err != nil {
		return fmt.Errorf("storage: cannot clear solves: %w", err)
	}
	return nil
}
