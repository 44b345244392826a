// Package storage provides the SQLite scoreboard for finished rounds.
// Uses the pure-Go modernc.org/sqlite driver to avoid CGO dependencies.
//
// The default database is in-memory: scores live as long as the process.
// Passing a file path keeps them across runs.
package storage

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"time"

	_ "modernc.org/sqlite" // Pure Go SQLite driver

	"github.com/vovakirdan/jly-arcade/internal/core"
)

// MemoryPath opens a private in-memory database.
const MemoryPath = ":memory:"

// Store manages the SQLite database connection for the scoreboard.
type Store struct {
	db *sql.DB
}

// ScoreEntry represents a single high score record with its round statistics.
type ScoreEntry struct {
	ID         int64
	GameID     string
	Score      int
	Hits       int
	Wrong      int
	Collisions int
	Duration   time.Duration
	CreatedAt  time.Time
}

// Accuracy returns the share of answered words that were right (0..1).
func (e ScoreEntry) Accuracy() float64 {
	return accuracy(e.Hits, e.Wrong)
}

func accuracy(hits, wrong int) float64 {
	answered := hits + wrong
	if answered == 0 {
		return 0
	}
	return float64(hits) / float64(answered)
}

// Summary aggregates every stored round of one game.
type Summary struct {
	Rounds     int
	BestScore  int
	Hits       int
	Wrong      int
	Collisions int
	PlayTime   time.Duration
}

// Accuracy returns the share of right answers over all rounds (0..1).
func (s Summary) Accuracy() float64 {
	return accuracy(s.Hits, s.Wrong)
}

// Open creates or opens a SQLite database at the given path.
// An empty path or MemoryPath opens an in-memory database. For files it
// creates the parent directories if needed. Migrations run either way.
func Open(dbPath string) (*Store, error) {
	if dbPath == "" {
		dbPath = MemoryPath
	}
	memory := dbPath == MemoryPath

	if !memory {
		// Expand ~ to home directory
		if dbPath[0] == '~' {
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
	}

	// Open database
	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot open database: %w", err)
	}
	if memory {
		// Every new connection would get its own empty database
		db.SetMaxOpenConns(1)
	}

	// Test connection
	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("storage: cannot connect to database: %w", err)
	}

	store := &Store{db: db}

	// Run migrations
	if err := store.migrate(); err != nil {
		db.Close()
		return nil, fmt.Errorf("storage: migration failed: %w", err)
	}

	return store, nil
}

// migrate creates the database schema if it doesn't exist.
func (s *Store) migrate() error {
	schema := `
		CREATE TABLE IF NOT EXISTS scores (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			game_id TEXT NOT NULL,
			score INTEGER NOT NULL,
			created_at DATETIME DEFAULT CURRENT_TIMESTAMP
		);
		CREATE INDEX IF NOT EXISTS idx_scores_game_id ON scores(game_id);
		CREATE INDEX IF NOT EXISTS idx_scores_top ON scores(game_id, score DESC);

		CREATE TABLE IF NOT EXISTS rounds (
			score_id INTEGER PRIMARY KEY REFERENCES scores(id) ON DELETE CASCADE,
			hits INTEGER NOT NULL DEFAULT 0,
			wrong INTEGER NOT NULL DEFAULT 0,
			collisions INTEGER NOT NULL DEFAULT 0,
			escaped INTEGER NOT NULL DEFAULT 0,
			shots INTEGER NOT NULL DEFAULT 0,
			duration_ms INTEGER NOT NULL DEFAULT 0
		);
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

// SaveScore records a bare score for the given game.
// Returns the ID of the inserted record.
func (s *Store) SaveScore(gameID string, score int) (int64, error) {
	return s.SaveRound(gameID, core.RoundStats{Score: score})
}

// SaveRound records a finished round: its score and its statistics.
// Returns the ID of the inserted score.
func (s *Store) SaveRound(gameID string, r core.RoundStats) (int64, error) {
	tx, err := s.db.Begin()
	if err != nil {
		return 0, fmt.Errorf("storage: cannot begin transaction: %w", err)
	}
	// No-op once committed
	defer func() { _ = tx.Rollback() }()

	result, err := tx.Exec(
		"INSERT INTO scores (game_id, score) VALUES (?, ?)",
		gameID, r.Score,
	)
	if err != nil {
		return 0, fmt.Errorf("storage: cannot save score: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("storage: cannot get inserted ID: %w", err)
	}

	_, err = tx.Exec(
		`INSERT INTO rounds (score_id, hits, wrong, collisions, escaped, shots, duration_ms)
		 VALUES (?, ?, ?, ?, ?, ?, ?)`,
		id, r.Hits, r.Wrong, r.Collisions, r.Escaped, r.Shots, r.Duration.Milliseconds(),
	)
	if err != nil {
		return 0, fmt.Errorf("storage: cannot save round: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return 0, fmt.Errorf("storage: cannot commit round: %w", err)
	}
	return id, nil
}

const selectScores = `
	SELECT s.id, s.game_id, s.score,
	       COALESCE(r.hits, 0), COALESCE(r.wrong, 0), COALESCE(r.collisions, 0),
	       COALESCE(r.duration_ms, 0), s.created_at
	FROM scores s
	LEFT JOIN rounds r ON r.score_id = s.id
	WHERE s.game_id = ?
	ORDER BY s.score DESC, s.id ASC`

// TopScores retrieves the top N scores for the given game.
// Results are ordered by score descending, earlier rounds first on ties.
func (s *Store) TopScores(gameID string, limit int) ([]ScoreEntry, error) {
	if limit <= 0 {
		limit = 10
	}
	return s.queryScores(selectScores+" LIMIT ?", gameID, limit)
}

// AllScores retrieves all scores for the given game (no limit).
func (s *Store) AllScores(gameID string) ([]ScoreEntry, error) {
	return s.queryScores(selectScores, gameID)
}

func (s *Store) queryScores(query string, args ...any) ([]ScoreEntry, error) {
	rows, err := s.db.Query(query, args...)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query scores: %w", err)
	}
	defer rows.Close()

	var entries []ScoreEntry
	for rows.Next() {
		var e ScoreEntry
		var durationMS int64
		var createdAt any
		if err := rows.Scan(&e.ID, &e.GameID, &e.Score, &e.Hits, &e.Wrong, &e.Collisions, &durationMS, &createdAt); err != nil {
			return nil, fmt.Errorf("storage: cannot scan row: %w", err)
		}
		e.Duration = time.Duration(durationMS) * time.Millisecond
		e.CreatedAt = parseTime(createdAt)
		entries = append(entries, e)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}

	return entries, nil
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

// HighScore returns the highest score for the given game.
// Returns 0 if no scores exist.
func (s *Store) HighScore(gameID string) (int, error) {
	var score sql.NullInt64
	err := s.db.QueryRow(
		"SELECT MAX(score) FROM scores WHERE game_id = ?",
		gameID,
	).Scan(&score)

	if err != nil {
		return 0, fmt.Errorf("storage: cannot query high score: %w", err)
	}

	if !score.Valid {
		return 0, nil
	}

	return int(score.Int64), nil
}

// Summary aggregates all rounds of the given game.
func (s *Store) Summary(gameID string) (Summary, error) {
	var sum Summary
	var durationMS int64
	err := s.db.QueryRow(
		`SELECT COUNT(s.id), COALESCE(MAX(s.score), 0),
		        COALESCE(SUM(r.hits), 0), COALESCE(SUM(r.wrong), 0),
		        COALESCE(SUM(r.collisions), 0), COALESCE(SUM(r.duration_ms), 0)
		 FROM scores s
		 LEFT JOIN rounds r ON r.score_id = s.id
		 WHERE s.game_id = ?`,
		gameID,
	).Scan(&sum.Rounds, &sum.BestScore, &sum.Hits, &sum.Wrong, &sum.Collisions, &durationMS)
	if err != nil {
		return Summary{}, fmt.Errorf("storage: cannot query summary: %w", err)
	}
	sum.PlayTime = time.Duration(durationMS) * time.Millisecond
	return sum, nil
}

// ClearScores deletes all scores and rounds for the given game.
func (s *Store) ClearScores(gameID string) error {
	_, err := s.db.Exec(
		"DELETE FROM rounds WHERE score_id IN (SELECT id FROM scores WHERE game_id = ?)",
		gameID,
	)
	if err != nil {
		return fmt.Errorf("storage: cannot clear rounds: %w", err)
	}
	_, err = s.db.Exec("DELETE FROM scores WHERE game_id = ?", gameID)
	if err != nil {
		return fmt.Errorf("storage: cannot clear scores: %w", err)
	}
	return nil
}
