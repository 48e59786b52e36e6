// Package storage provides SQLite-based persistence for arena run records.
// Uses the pure-Go modernc.org/sqlite driver to avoid CGO dependencies.
package storage

import (
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/vmihailenco/msgpack/v5"
	_ "modernc.org/sqlite" // Pure Go SQLite driver

	"github.com/vovakirdan/ortho-arena/internal/sim"
)

// ErrRunNotFound is returned when a run id does not exist.
var ErrRunNotFound = errors.New("storage: run not found")

// Store manages the SQLite database connection for run records.
type Store struct {
	db *sql.DB
}

// RunRecord is one finished simulation run.
type RunRecord struct {
	ID        int64
	LevelID   string
	Player    string
	Seed      int64
	Ticks     uint64
	Shots     int
	Hits      int
	Fizzles   int
	Pickups   int
	Timeline  []sim.Mark // only filled by Run
	CreatedAt time.Time
}

// Accuracy returns hits per shot, or 0 without shots.
func (r RunRecord) Accuracy() float64 {
	if r.Shots == 0 {
		return 0
	}
	return float64(r.Hits) / float64(r.Shots)
}

// RecordFromSim captures the stats and timeline of a simulation.
func RecordFromSim(s *sim.Simulation, player string) RunRecord {
	st := s.Stats()
	return RunRecord{
		LevelID:  s.Level(),
		Player:   player,
		Seed:     s.Seed(),
		Ticks:    st.Ticks,
		Shots:    st.Shots,
		Hits:     st.Hits,
		Fizzles:  st.Fizzles,
		Pickups:  st.Pickups,
		Timeline: s.History(),
	}
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
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			level_id TEXT NOT NULL,
			player TEXT NOT NULL DEFAULT '',
			seed INTEGER NOT NULL,
			ticks INTEGER NOT NULL,
			shots INTEGER NOT NULL DEFAULT 0,
			hits INTEGER NOT NULL DEFAULT 0,
			fizzles INTEGER NOT NULL DEFAULT 0,
			pickups INTEGER NOT NULL DEFAULT 0,
			timeline BLOB,
			created_at DATETIME DEFAULT CURRENT_TIMESTAMP
		);
		CREATE INDEX IF NOT EXISTS idx_runs_level_id ON runs(level_id);
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

// SaveRun records a run. The timeline is stored as a msgpack blob.
// Returns the ID of the inserted record.
func (s *Store) SaveRun(r RunRecord) (int64, error) {
	blob, err := msgpack.Marshal(r.Timeline)
	if err != nil {
		return 0, fmt.Errorf("storage: cannot encode timeline: %w", err)
	}

	result, err := s.db.Exec(
		`INSERT INTO runs (level_id, player, seed, ticks, shots, hits, fizzles, pickups, timeline)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		r.LevelID, r.Player, r.Seed, int64(r.Ticks), r.Shots, r.Hits, r.Fizzles, r.Pickups, blob,
	)
	if err != nil {
		return 0, fmt.Errorf("storage: cannot save run: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("storage: cannot get inserted ID: %w", err)
	}

	return id, nil
}

const runColumns = `id, level_id, player, seed, ticks, shots, hits, fizzles, pickups, created_at`

type scanner interface {
	Scan(dest ...any) error
}

func scanRun(row scanner, extra ...any) (RunRecord, error) {
	var r RunRecord
	var ticks int64
	var createdAt any
	dest := append([]any{&r.ID, &r.LevelID, &r.Player, &r.Seed, &ticks, &r.Shots, &r.Hits, &r.Fizzles, &r.Pickups, &createdAt}, extra...)
	if err := row.Scan(dest...); err != nil {
		return r, err
	}
	r.Ticks = uint64(ticks)
	r.CreatedAt = parseTime(createdAt)
	return r, nil
}

// parseTime handles both time.Time and string datetimes from the driver.
func parseTime(v any) time.Time {
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

// RecentRuns retrieves the most recent runs, optionally for one level.
// Timelines are not loaded.
func (s *Store) RecentRuns(levelID string, limit int) ([]RunRecord, error) {
	if limit <= 0 {
		limit = 20
	}

	query := `SELECT ` + runColumns + ` FROM runs`
	args := []any{}
	if levelID != "" {
		query += ` WHERE level_id = ?`
		args = append(args, levelID)
	}
	query += ` ORDER BY id DESC LIMIT ?`
	args = append(args, limit)

	rows, err := s.db.Query(query, args...)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query runs: %w", err)
	}
	defer rows.Close()

	var runs []RunRecord
	for rows.Next() {
		r, err := scanRun(rows)
		if err != nil {
			return nil, fmt.Errorf("storage: cannot scan row: %w", err)
		}
		runs = append(runs, r)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}

	return runs, nil
}

// Run retrieves one run including its timeline.
func (s *Store) Run(id int64) (RunRecord, error) {
	var blob []byte
	row := s.db.QueryRow(`SELECT `+runColumns+`, timeline FROM runs WHERE id = ?`, id)
	r, err := scanRun(row, &blob)
	if errors.Is(err, sql.ErrNoRows) {
		return RunRecord{}, fmt.Errorf("%w: %d", ErrRunNotFound, id)
	}
	if err != nil {
		return RunRecord{}, fmt.Errorf("storage: cannot query run: %w", err)
	}

	if len(blob) > 0 {
		if err := msgpack.Unmarshal(blob, &r.Timeline); err != nil {
			return RunRecord{}, fmt.Errorf("storage: cannot decode timeline: %w", err)
		}
	}
	return r, nil
}

// ClearRuns deletes all runs for the given level.
func (s *Store) ClearRuns(levelID string) error {
	_, err := s.db.Exec("DELETE FROM runs WHERE level_id = ?", levelID)
	if err != nil {
		return fmt.Errorf("storage: cannot clear runs: %w", err)
	}
	return nil
}

// LevelStats contains aggregated statistics for a level.
type LevelStats struct {
	LevelID    string
	Runs       int
	Shots      int64
	Hits       int64
	Pickups    int64
	LastPlayed time.Time
}

// Accuracy returns hits per shot across runs.
func (ls LevelStats) Accuracy() float64 {
	if ls.Shots == 0 {
		return 0
	}
	return float64(ls.Hits) / float64(ls.Shots)
}

// AllLevelStats retrieves statistics for every level that has runs.
func (s *Store) AllLevelStats() (map[string]*LevelStats, error) {
	rows, err := s.db.Query(
		`SELECT level_id, COUNT(*), SUM(shots), SUM(hits), SUM(pickups), MAX(created_at)
		 FROM runs
		 GROUP BY level_id`,
	)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot get level stats: %w", err)
	}
	defer rows.Close()

	stats := make(map[string]*LevelStats)
	for rows.Next() {
		var ls LevelStats
		var lastPlayed any
		if err := rows.Scan(&ls.LevelID, &ls.Runs, &ls.Shots, &ls.Hits, &ls.Pickups, &lastPlayed); err != nil {
			return nil, fmt.Errorf("storage: cannot scan stats row: %w", err)
		}
		ls.LastPlayed = parseTime(lastPlayed)
		stats[ls.LevelID] = &ls
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}

	return stats, nil
}
