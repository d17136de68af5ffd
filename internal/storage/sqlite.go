// Package storage provides SQLite-based persistence for finished games.
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

// WinnerDraw is stored in Result.Winner when both sides have equal disks.
const WinnerDraw = "draw"

// Store manages the SQLite database connection for the results ledger.
type Store struct {
	db *sql.DB
}

// Result is one finished game.
type Result struct {
	ID         int64
	Difficulty string
	HumanSide  string // "dark" or "light"
	Dark       int    // final dark disk count
	Light      int    // final light disk count
	Winner     string // "dark", "light" or WinnerDraw
	Moves      int    // history length including passes
	Rules      string // "classic" or "standard"
	CreatedAt  time.Time
}

// Margin returns the human's disks minus the engine's.
func (r Result) Margin() int {
	if r.HumanSide == "light" {
		return r.Light - r.Dark
	}
	return r.Dark - r.Light
}

// Outcome returns "win", "loss" or "draw" from the human's point of view.
func (r Result) Outcome() string {
	switch r.Winner {
	case WinnerDraw:
		return "draw"
	case r.HumanSide:
		return "win"
	default:
		return "loss"
	}
}

// Stats aggregates results for one difficulty, or all of them.
type Stats struct {
	Difficulty string
	Games      int
	Wins       int
	Losses     int
	Draws      int
	BestMargin int
	LastPlayed time.Time
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
		CREATE TABLE IF NOT EXISTS results (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			difficulty TEXT NOT NULL,
			human_side TEXT NOT NULL,
			dark INTEGER NOT NULL,
			light INTEGER NOT NULL,
			winner TEXT NOT NULL,
			moves INTEGER NOT NULL DEFAULT 0,
			rules TEXT NOT NULL DEFAULT 'classic',
			created_at DATETIME DEFAULT CURRENT_TIMESTAMP
		);
		CREATE INDEX IF NOT EXISTS idx_results_difficulty ON results(difficulty);
		CREATE INDEX IF NOT EXISTS idx_results_created ON results(created_at DESC);
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

// SaveResult records a finished game and returns its ID.
func (s *Store) SaveResult(r Result) (int64, error) {
	res, err := s.db.Exec(
		`INSERT INTO results (difficulty, human_side, dark, light, winner, moves, rules)
		 VALUES (?, ?, ?, ?, ?, ?, ?)`,
		r.Difficulty, r.HumanSide, r.Dark, r.Light, r.Winner, r.Moves, r.Rules,
	)
	if err != nil {
		return 0, fmt.Errorf("storage: cannot save result: %w", err)
	}

	id, err := res.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("storage: cannot get inserted ID: %w", err)
	}

	return id, nil
}

// RecentResults returns the latest results, newest first.
func (s *Store) RecentResults(limit int) ([]Result, error) {
	if limit <= 0 {
		limit = 20
	}
	return s.queryResults(
		`SELECT id, difficulty, human_side, dark, light, winner, moves, rules, created_at
		 FROM results
		 ORDER BY created_at DESC, id DESC
		 LIMIT ?`,
		limit,
	)
}

// ResultsByDifficulty returns the latest results for one difficulty, newest first.
func (s *Store) ResultsByDifficulty(difficulty string, limit int) ([]Result, error) {
	if limit <= 0 {
		limit = 20
	}
	return s.queryResults(
		`SELECT id, difficulty, human_side, dark, light, winner, moves, rules, created_at
		 FROM results
		 WHERE difficulty = ?
		 ORDER BY created_at DESC, id DESC
		 LIMIT ?`,
		difficulty, limit,
	)
}

func (s *Store) queryResults(query string, args ...any) ([]Result, error) {
	rows, err := s.db.Query(query, args...)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query results: %w", err)
	}
	defer rows.Close()

	var results []Result
	for rows.Next() {
		var r Result
		var createdAt any
		if err := rows.Scan(
			&r.ID,
			&r.Difficulty,
			&r.HumanSide,
			&r.Dark,
			&r.Light,
			&r.Winner,
			&r.Moves,
			&r.Rules,
			&createdAt,
		); err != nil {
			return nil, fmt.Errorf("storage: cannot scan row: %w", err)
		}
		r.CreatedAt = parseTime(createdAt)
		results = append(results, r)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}

	return results, nil
}

// Stats aggregates results for a difficulty. An empty difficulty covers
// every game.
func (s *Store) Stats(difficulty string) (*Stats, error) {
	stats := &Stats{Difficulty: difficulty}

	var best sql.NullInt64
	var lastPlayed any
	err := s.db.QueryRow(
		`SELECT COUNT(*),
		        COALESCE(SUM(CASE WHEN winner = human_side THEN 1 ELSE 0 END), 0),
		        COALESCE(SUM(CASE WHEN winner <> human_side AND winner <> 'draw' THEN 1 ELSE 0 END), 0),
		        COALESCE(SUM(CASE WHEN winner = 'draw' THEN 1 ELSE 0 END), 0),
		        MAX(CASE WHEN human_side = 'light' THEN light - dark ELSE dark - light END),
		        MAX(created_at)
		 FROM results
		 WHERE ? = '' OR difficulty = ?`,
		difficulty, difficulty,
	).Scan(&stats.Games, &stats.Wins, &stats.Losses, &stats.Draws, &best, &lastPlayed)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot get stats: %w", err)
	}

	if best.Valid {
		stats.BestMargin = int(best.Int64)
	}
	stats.LastPlayed = parseTime(lastPlayed)

	return stats, nil
}

// ResultByID retrieves a single result. It returns nil when no row matches.
func (s *Store) ResultByID(id int64) (*Result, error) {
	results, err := s.queryResults(
		`SELECT id, difficulty, human_side, dark, light, winner, moves, rules, created_at
		 FROM results
		 WHERE id = ?`,
		id,
	)
	if err != nil {
		return nil, err
	}
	if len(results) == 0 {
		return nil, nil
	}
	return &results[0], nil
}

// ClearResults deletes results for a difficulty, or all when it is empty.
func (s *Store) ClearResults(difficulty string) error {
	_, err := s.db.Exec("DELETE FROM results WHERE ? = '' OR difficulty = ?", difficulty, difficulty)
	if err != nil {
		return fmt.Errorf("storage: cannot clear results: %w", err)
	}
	return nil
}

// parseTime handles both time.Time and string datetime values.
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
