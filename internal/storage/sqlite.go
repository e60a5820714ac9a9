// Package storage provides SQLite-based persistence for the run history.
// Uses the pure-Go modernc.org/sqlite driver to avoid CGO dependencies.
//
// The history is an append-only log of finished sessions. Nothing is ever
// resumed from it.
package storage

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"time"

	"github.com/google/uuid"
	_ "modernc.org/sqlite" // Pure Go SQLite driver
)

// Store manages the SQLite database connection for run history.
type Store struct {
	db *sql.DB
}

// RunRecord is one finished session.
type RunRecord struct {
	ID          string // UUID, assigned by SaveRun when empty
	MapID       string
	MapChecksum uint64 // Layout revision the run was played on
	Player      string // SSH user, or the local user name
	Outcome     string // "Win", "Lose" or "Close"
	Frames      int    // Frames drawn in this run
	Restarts    int    // Losses before this run within the same play
	PickupsLeft int
	CreatedAt   time.Time
}

// RunStats summarizes the history of one map.
type RunStats struct {
	Runs       int
	Wins       int
	Losses     int
	Closes     int
	BestFrames int // Fewest frames of any win, 0 without wins
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
		CREATE TABLE IF NOT EXISTS runs (
			seq INTEGER PRIMARY KEY AUTOINCREMENT,
			id TEXT NOT NULL UNIQUE,
			map_id TEXT NOT NULL,
			map_checksum TEXT NOT NULL,
			player TEXT NOT NULL DEFAULT '',
			outcome TEXT NOT NULL,
			frames INTEGER NOT NULL DEFAULT 0,
			restarts INTEGER NOT NULL DEFAULT 0,
			pickups_left INTEGER NOT NULL DEFAULT 0,
			created_at DATETIME DEFAULT CURRENT_TIMESTAMP
		);
		CREATE INDEX IF NOT EXISTS idx_runs_map_id ON runs(map_id);
		CREATE INDEX IF NOT EXISTS idx_runs_outcome ON runs(map_id, outcome);
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

// SaveRun appends a finished run and returns its ID.
func (s *Store) SaveRun(r RunRecord) (string, error) {
	if r.ID == "" {
		r.ID = uuid.NewString()
	}

	_, err := s.db.Exec(
		`INSERT INTO runs (id, map_id, map_checksum, player, outcome, frames, restarts, pickups_left)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?)`,
		r.ID, r.MapID, formatChecksum(r.MapChecksum), r.Player, r.Outcome, r.Frames, r.Restarts, r.PickupsLeft,
	)
	if err != nil {
		return "", fmt.Errorf("storage: cannot save run: %w", err)
	}

	return r.ID, nil
}

// RecentRuns returns the latest runs of a map, newest first.
// An empty mapID selects every map.
func (s *Store) RecentRuns(mapID string, limit int) ([]RunRecord, error) {
	if limit <= 0 {
		limit = 10
	}

	rows, err := s.db.Query(
		`SELECT id, map_id, map_checksum, player, outcome, frames, restarts, pickups_left, created_at
		 FROM runs
		 WHERE ? = '' OR map_id = ?
		 ORDER BY seq DESC
		 LIMIT ?`,
		mapID, mapID, limit,
	)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query runs: %w", err)
	}
	defer rows.Close()

	var runs []RunRecord
	for rows.Next() {
		var (
			r         RunRecord
			checksum  string
			createdAt any
		)
		if err := rows.Scan(&r.ID, &r.MapID, &checksum, &r.Player, &r.Outcome,
			&r.Frames, &r.Restarts, &r.PickupsLeft, &createdAt); err != nil {
			return nil, fmt.Errorf("storage: cannot scan row: %w", err)
		}
		r.MapChecksum, _ = strconv.ParseUint(checksum, 16, 64)
		r.CreatedAt = parseTime(createdAt)
		runs = append(runs, r)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}

	return runs, nil
}

// Stats summarizes all runs of a map. An empty mapID covers every map.
func (s *Store) Stats(mapID string) (RunStats, error) {
	var (
		st   RunStats
		best sql.NullInt64
	)
	err := s.db.QueryRow(
		`SELECT COUNT(*),
		        COALESCE(SUM(outcome = 'Win'), 0),
		        COALESCE(SUM(outcome = 'Lose'), 0),
		        COALESCE(SUM(outcome = 'Close'), 0),
		        MIN(CASE WHEN outcome = 'Win' THEN frames END)
		 FROM runs WHERE ? = '' OR map_id = ?`,
		mapID, mapID,
	).Scan(&st.Runs, &st.Wins, &st.Losses, &st.Closes, &best)
	if err != nil {
		return st, fmt.Errorf("storage: cannot query stats: %w", err)
	}

	if best.Valid {
		st.BestFrames = int(best.Int64)
	}
	return st, nil
}

// MapIDs returns every map that has recorded runs, sorted.
func (s *Store) MapIDs() ([]string, error) {
	rows, err := s.db.Query("SELECT DISTINCT map_id FROM runs ORDER BY map_id")
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query maps: %w", err)
	}
	defer rows.Close()

	var ids []string
	for rows.Next() {
		var id string
		if err := rows.Scan(&id); err != nil {
			return nil, fmt.Errorf("storage: cannot scan row: %w", err)
		}
		ids = append(ids, id)
	}
	return ids, rows.Err()
}

// ClearRuns deletes all runs of the given map.
func (s *Store) ClearRuns(mapID string) error {
	_, err := s.db.Exec("DELETE FROM runs WHERE map_id = ?", mapID)
	if err != nil {
		return fmt.Errorf("storage: cannot clear runs: %w", err)
	}
	return nil
}

// formatChecksum stores checksums as hex text; SQLite integers are signed.
func formatChecksum(sum uint64) string {
	return fmt.Sprintf("%016x", sum)
}

// parseTime handles both time.Time and string datetimes.
func parseTime(v any) time.Time {
	switch v := v.(type) {
	case time.Time:
		return v
	case string:
		if parsed, err := time.Parse("2006-01-02 15:04:05", v); err == nil {
			return parsed
		}
	}
	return time.Time{}
}
