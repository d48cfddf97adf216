// Package storage provides SQLite-based persistence for runner progress and
// run history. Uses the pure-Go modernc.org/sqlite driver to avoid CGO
// dependencies.
package storage

import (
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	_ "modernc.org/sqlite" // Pure Go SQLite driver

	"github.com/vovakirdan/campus-runner/internal/games/runner"
)

// DefaultProfile is the profile used for local play.
const DefaultProfile = "local"

// Store manages the SQLite database connection.
type Store struct {
	db *sql.DB
}

// RunEntry is a stored run record.
type RunEntry struct {
	ID        int64
	Profile   string
	Run       runner.RunRecord
	CreatedAt time.Time
}

// ProfileEntry is a stored progress row.
type ProfileEntry struct {
	Name      string
	Progress  runner.Progress
	UpdatedAt time.Time
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

	// Other processes may hold the file briefly, e.g. a local game next to a server
	db, err := sql.Open("sqlite", dbPath+"?_pragma=busy_timeout(5000)")
	if err != nil {
		return nil, fmt.Errorf("storage: cannot open database: %w", err)
	}
	// One connection serialises progress transactions between sessions
	db.SetMaxOpenConns(1)

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
		CREATE TABLE IF NOT EXISTS profiles (
			name TEXT PRIMARY KEY,
			high_score INTEGER NOT NULL DEFAULT 0,
			knowledge INTEGER NOT NULL DEFAULT 0,
			unlocked TEXT NOT NULL DEFAULT '[]',
			updated_at DATETIME DEFAULT CURRENT_TIMESTAMP
		);

		CREATE TABLE IF NOT EXISTS runs (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			run_id TEXT NOT NULL UNIQUE,
			profile TEXT NOT NULL,
			character TEXT NOT NULL,
			score INTEGER NOT NULL,
			earned INTEGER NOT NULL DEFAULT 0,
			semester INTEGER NOT NULL DEFAULT 0,
			dodged INTEGER NOT NULL DEFAULT 0,
			collected INTEGER NOT NULL DEFAULT 0,
			continues INTEGER NOT NULL DEFAULT 0,
			created_at DATETIME DEFAULT CURRENT_TIMESTAMP
		);
		CREATE INDEX IF NOT EXISTS idx_runs_profile ON runs(profile);
		CREATE INDEX IF NOT EXISTS idx_runs_top ON runs(score DESC);
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

// queryer is satisfied by *sql.DB and *sql.Tx.
type queryer interface {
	QueryRow(query string, args ...any) *sql.Row
	Exec(query string, args ...any) (sql.Result, error)
}

// LoadProgress reads the progress of a profile. A missing profile yields the
// default progress; an unreadable unlock list yields only the starter
// character.
func (s *Store) LoadProgress(profile string) (runner.Progress, error) {
	return loadProgress(s.db, profile)
}

func loadProgress(q queryer, profile string) (runner.Progress, error) {
	var p runner.Progress
	var unlocked string

	err := q.QueryRow(
		"SELECT high_score, knowledge, unlocked FROM profiles WHERE name = ?",
		profile,
	).Scan(&p.HighScore, &p.Knowledge, &unlocked)

	if errors.Is(err, sql.ErrNoRows) {
		return runner.DefaultProgress(), nil
	}
	if err != nil {
		return runner.DefaultProgress(), fmt.Errorf("storage: cannot load progress: %w", err)
	}

	p.Unlocked = decodeUnlocked(unlocked)
	return p.Sanitize(), nil
}

// SaveProgress writes the progress of a profile, creating it if needed.
func (s *Store) SaveProgress(profile string, p runner.Progress) error {
	return saveProgress(s.db, profile, p)
}

// UpdateProgress loads the progress of a profile, applies fn and saves the
// result in one transaction. When fn fails nothing is written and the stored
// progress is returned with fn's error.
func (s *Store) UpdateProgress(profile string, fn func(runner.Progress) (runner.Progress, error)) (runner.Progress, error) {
	tx, err := s.db.Begin()
	if err != nil {
		return runner.Progress{}, fmt.Errorf("storage: cannot begin transaction: %w", err)
	}
	//nolint:errcheck // No-op after Commit
	defer tx.Rollback()

	current, err := loadProgress(tx, profile)
	if err != nil {
		return current, err
	}

	next, err := fn(current.Sanitize())
	if err != nil {
		return current, err
	}
	if err := saveProgress(tx, profile, next); err != nil {
		return current, err
	}
	if err := tx.Commit(); err != nil {
		return current, fmt.Errorf("storage: cannot commit progress: %w", err)
	}
	return next, nil
}

func saveProgress(q queryer, profile string, p runner.Progress) error {
	unlocked, err := json.Marshal(p.Unlocked)
	if err != nil {
		return fmt.Errorf("storage: cannot encode unlock set: %w", err)
	}

	_, err = q.Exec(
		`INSERT INTO profiles (name, high_score, knowledge, unlocked, updated_at)
		 VALUES (?, ?, ?, ?, CURRENT_TIMESTAMP)
		 ON CONFLICT(name) DO UPDATE SET
			high_score = excluded.high_score,
			knowledge = excluded.knowledge,
			unlocked = excluded.unlocked,
			updated_at = excluded.updated_at`,
		profile, p.HighScore, p.Knowledge, string(unlocked),
	)
	if err != nil {
		return fmt.Errorf("storage: cannot save progress: %w", err)
	}
	return nil
}

// Profiles lists every stored profile ordered by high score.
func (s *Store) Profiles() ([]ProfileEntry, error) {
	rows, err := s.db.Query(
		`SELECT name, high_score, knowledge, unlocked, updated_at
		 FROM profiles
		 ORDER BY high_score DESC, name`,
	)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query profiles: %w", err)
	}
	defer rows.Close()

	var entries []ProfileEntry
	for rows.Next() {
		var e ProfileEntry
		var unlocked string
		var updatedAt any
		if err := rows.Scan(&e.Name, &e.Progress.HighScore, &e.Progress.Knowledge, &unlocked, &updatedAt); err != nil {
			return nil, fmt.Errorf("storage: cannot scan row: %w", err)
		}
		e.Progress.Unlocked = decodeUnlocked(unlocked)
		e.Progress = e.Progress.Sanitize()
		e.UpdatedAt = parseTime(updatedAt)
		entries = append(entries, e)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}
	return entries, nil
}

// RecordRun appends a finished run to the history.
// Returns the ID of the inserted record.
func (s *Store) RecordRun(profile string, r runner.RunRecord) (int64, error) {
	result, err := s.db.Exec(
		`INSERT INTO runs
		 (run_id, profile, character, score, earned, semester, dodged, collected, continues)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		r.ID, profile, string(r.Character), r.Score, r.Earned, r.Semester, r.Dodged, r.Collected, r.Continues,
	)
	if err != nil {
		return 0, fmt.Errorf("storage: cannot record run: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("storage: cannot get inserted ID: %w", err)
	}
	return id, nil
}

// TopRuns retrieves the best runs across all profiles, or for one profile
// when profile is not empty. Results are ordered by score descending.
func (s *Store) TopRuns(profile string, limit int) ([]RunEntry, error) {
	if limit <= 0 {
		limit = 10
	}

	query := `SELECT id, run_id, profile, character, score, earned, semester, dodged, collected, continues, created_at
		 FROM runs`
	args := []any{}
	if profile != "" {
		query += " WHERE profile = ?"
		args = append(args, profile)
	}
	query += " ORDER BY score DESC, id LIMIT ?"
	args = append(args, limit)

	rows, err := s.db.Query(query, args...)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query runs: %w", err)
	}
	defer rows.Close()

	var entries []RunEntry
	for rows.Next() {
		var e RunEntry
		var character string
		var createdAt any
		if err := rows.Scan(
			&e.ID,
			&e.Run.ID,
			&e.Profile,
			&character,
			&e.Run.Score,
			&e.Run.Earned,
			&e.Run.Semester,
			&e.Run.Dodged,
			&e.Run.Collected,
			&e.Run.Continues,
			&createdAt,
		); err != nil {
			return nil, fmt.Errorf("storage: cannot scan row: %w", err)
		}
		e.Run.Character = runner.CharacterID(character)
		e.CreatedAt = parseTime(createdAt)
		entries = append(entries, e)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}
	return entries, nil
}

// HighScore returns the best recorded run score, or 0 without runs.
func (s *Store) HighScore() (int, error) {
	var score sql.NullInt64
	err := s.db.QueryRow("SELECT MAX(score) FROM runs").Scan(&score)
	if err != nil {
		return 0, fmt.Errorf("storage: cannot query high score: %w", err)
	}

	if !score.Valid {
		return 0, nil
	}
	return int(score.Int64), nil
}

// ClearRuns deletes the run history of a profile.
func (s *Store) ClearRuns(profile string) error {
	_, err := s.db.Exec("DELETE FROM runs WHERE profile = ?", profile)
	if err != nil {
		return fmt.Errorf("storage: cannot clear runs: %w", err)
	}
	return nil
}

// RunStats contains aggregated statistics for a profile.
type RunStats struct {
	Profile    string
	Runs       int
	HighScore  int
	AvgScore   float64
	Knowledge  int64 // Total knowledge earned
	LastPlayed time.Time
}

// Stats retrieves aggregated run statistics for a profile.
func (s *Store) Stats(profile string) (*RunStats, error) {
	stats := &RunStats{Profile: profile}

	var lastPlayed any
	err := s.db.QueryRow(
		`SELECT COUNT(*), COALESCE(MAX(score), 0), COALESCE(AVG(score), 0), COALESCE(SUM(earned), 0), MAX(created_at)
		 FROM runs WHERE profile = ?`,
		profile,
	).Scan(&stats.Runs, &stats.HighScore, &stats.AvgScore, &stats.Knowledge, &lastPlayed)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot get run stats: %w", err)
	}
	stats.LastPlayed = parseTime(lastPlayed)

	return stats, nil
}

// decodeUnlocked parses the stored unlock list. Malformed data means only the
// starter character is unlocked.
func decodeUnlocked(raw string) []runner.CharacterID {
	var ids []runner.CharacterID
	if err := json.Unmarshal([]byte(raw), &ids); err != nil {
		return []runner.CharacterID{runner.StarterCharacter}
	}
	return ids
}

// parseTime handles both time.Time and string datetimes from the driver.
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
