// Package storage provides SQLite-based persistence for match history.
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

// Store manages the SQLite database connection for match persistence.
type Store struct {
	db *sql.DB
}

// MatchResult represents the recorded outcome of a finished match.
type MatchResult struct {
	ID             int64
	P1Fighter      string
	P2Fighter      string
	P1Rounds       int
	P2Rounds       int
	WinnerPlayer   int // 1 or 2
	WinnerFighter  string
	DurationFrames int
	CreatedAt      time.Time
}

// FighterRecord aggregates win/loss totals for a single fighter.
type FighterRecord struct {
	FighterID string
	Wins      int
	Matches   int
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

	// Open database
	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot open database: %w", err)
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
		CREATE TABLE IF NOT EXISTS matches (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			p1_fighter TEXT NOT NULL,
			p2_fighter TEXT NOT NULL,
			p1_rounds INTEGER NOT NULL DEFAULT 0,
			p2_rounds INTEGER NOT NULL DEFAULT 0,
			winner_player INTEGER NOT NULL,
			winner_fighter TEXT NOT NULL,
			duration_frames INTEGER NOT NULL DEFAULT 0,
			created_at DATETIME DEFAULT CURRENT_TIMESTAMP
		);
		CREATE INDEX IF NOT EXISTS idx_matches_created ON matches(created_at DESC);
		CREATE INDEX IF NOT EXISTS idx_matches_winner ON matches(winner_fighter);
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

// SaveMatch records a finished match.
// Returns the ID of the inserted record.
func (s *Store) SaveMatch(m MatchResult) (int64, error) {
	result, err := s.db.Exec(
		`INSERT INTO matches
		 (p1_fighter, p2_fighter, p1_rounds, p2_rounds, winner_player, winner_fighter, duration_frames)
		 VALUES (?, ?, ?, ?, ?, ?, ?)`,
		m.P1Fighter, m.P2Fighter, m.P1Rounds, m.P2Rounds,
		m.WinnerPlayer, m.WinnerFighter, m.DurationFrames,
	)
	if err != nil {
		return 0, fmt.Errorf("storage: cannot save match: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("storage: cannot get inserted ID: %w", err)
	}

	return id, nil
}

// RecentMatches retrieves the N most recently recorded matches, newest first.
func (s *Store) RecentMatches(limit int) ([]MatchResult, error) {
	if limit <= 0 {
		limit = 10
	}

	rows, err := s.db.Query(
		`SELECT id, p1_fighter, p2_fighter, p1_rounds, p2_rounds,
		        winner_player, winner_fighter, duration_frames, created_at
		 FROM matches
		 ORDER BY id DESC
		 LIMIT ?`,
		limit,
	)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query matches: %w", err)
	}
	defer rows.Close()

	var results []MatchResult
	for rows.Next() {
		var m MatchResult
		var createdAt any
		if err := rows.Scan(
			&m.ID, &m.P1Fighter, &m.P2Fighter, &m.P1Rounds, &m.P2Rounds,
			&m.WinnerPlayer, &m.WinnerFighter, &m.DurationFrames, &createdAt,
		); err != nil {
			return nil, fmt.Errorf("storage: cannot scan row: %w", err)
		}

		// Parse the datetime - handle both time.Time and string
		switch v := createdAt.(type) {
		case time.Time:
			m.CreatedAt = v
		case string:
			if parsed, err := time.Parse("2006-01-02 15:04:05", v); err == nil {
				m.CreatedAt = parsed
			}
		}
		results = append(results, m)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}

	return results, nil
}

// FighterRecords aggregates per-fighter totals across both player slots,
// ordered by wins descending.
func (s *Store) FighterRecords() ([]FighterRecord, error) {
	rows, err := s.db.Query(
		`SELECT fighter, SUM(win), COUNT(*)
		 FROM (
			SELECT p1_fighter AS fighter,
			       CASE WHEN winner_player = 1 THEN 1 ELSE 0 END AS win
			FROM matches
			UNION ALL
			SELECT p2_fighter,
			       CASE WHEN winner_player = 2 THEN 1 ELSE 0 END
			FROM matches
		 )
		 GROUP BY fighter
		 ORDER BY SUM(win) DESC, fighter ASC`,
	)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query fighter records: %w", err)
	}
	defer rows.Close()

	var records []FighterRecord
	for rows.Next() {
		var r FighterRecord
		if err := rows.Scan(&r.FighterID, &r.Wins, &r.Matches); err != nil {
			return nil, fmt.Errorf("storage: cannot scan row: %w", err)
		}
		records = append(records, r)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}

	return records, nil
}
