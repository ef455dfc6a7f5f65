// Package storage keeps the history of a play session in SQLite.
// The database lives in memory and is discarded when the session closes.
// Uses the pure-Go modernc.org/sqlite driver to avoid CGO dependencies.
package storage

import (
	"database/sql"
	"fmt"
	"time"

	"github.com/google/uuid"
	_ "modernc.org/sqlite" // Pure Go SQLite driver
)

// Store manages the session database connection.
type Store struct {
	db *sql.DB
}

// GameRecord is one finished game.
type GameRecord struct {
	ID        string // UUID, assigned by SaveGame when empty
	Level     int
	Rounds    int // Rounds completed
	Steps     int // Length of the target sequence
	Reason    string
	StartedAt time.Time
	EndedAt   time.Time
}

// Stats contains aggregated statistics for the session.
type Stats struct {
	Games       int
	TotalRounds int
	BestRounds  int
	AvgRounds   float64
	PerLevel    map[int]int // Games played per level
}

// OpenSession creates an empty in-memory history.
func OpenSession() (*Store, error) {
	return open(":memory:")
}

func open(dsn string) (*Store, error) {
	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot open database: %w", err)
	}
	// Every connection to :memory: is a separate database.
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
// Times are stored as Unix milliseconds.
func (s *Store) migrate() error {
	schema := `
		CREATE TABLE IF NOT EXISTS games (
			seq INTEGER PRIMARY KEY AUTOINCREMENT,
			id TEXT NOT NULL UNIQUE,
			level INTEGER NOT NULL,
			rounds INTEGER NOT NULL,
			steps INTEGER NOT NULL,
			reason TEXT NOT NULL,
			started_at INTEGER NOT NULL,
			ended_at INTEGER NOT NULL
		);
		CREATE INDEX IF NOT EXISTS idx_games_level ON games(level, rounds DESC);
	`

	_, err := s.db.Exec(schema)
	return err
}

// Close closes the database connection, dropping the history.
func (s *Store) Close() error {
	if s.db != nil {
		return s.db.Close()
	}
	return nil
}

// SaveGame records a finished game and returns its ID.
func (s *Store) SaveGame(r GameRecord) (string, error) {
	if r.ID == "" {
		r.ID = uuid.NewString()
	} else if _, err := uuid.Parse(r.ID); err != nil {
		return "", fmt.Errorf("storage: invalid game id %q: %w", r.ID, err)
	}

	_, err := s.db.Exec(
		`INSERT INTO games (id, level, rounds, steps, reason, started_at, ended_at)
		 VALUES (?, ?, ?, ?, ?, ?, ?)`,
		r.ID, r.Level, r.Rounds, r.Steps, r.Reason, toMillis(r.StartedAt), toMillis(r.EndedAt),
	)
	if err != nil {
		return "", fmt.Errorf("storage: cannot save game: %w", err)
	}
	return r.ID, nil
}

// RecentGames returns up to limit games, newest first.
func (s *Store) RecentGames(limit int) ([]GameRecord, error) {
	if limit <= 0 {
		limit = 10
	}

	rows, err := s.db.Query(
		`SELECT id, level, rounds, steps, reason, started_at, ended_at
		 FROM games
		 ORDER BY seq DESC
		 LIMIT ?`,
		limit,
	)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query games: %w", err)
	}
	defer rows.Close()

	var records []GameRecord
	for rows.Next() {
		var r GameRecord
		var started, ended int64
		if err := rows.Scan(&r.ID, &r.Level, &r.Rounds, &r.Steps, &r.Reason, &started, &ended); err != nil {
			return nil, fmt.Errorf("storage: cannot scan row: %w", err)
		}
		r.StartedAt = fromMillis(started)
		r.EndedAt = fromMillis(ended)
		records = append(records, r)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}
	return records, nil
}

// BestRounds returns the most rounds completed at level.
// Returns 0 if no game was played at that level.
func (s *Store) BestRounds(level int) (int, error) {
	var best sql.NullInt64
	err := s.db.QueryRow(
		"SELECT MAX(rounds) FROM games WHERE level = ?",
		level,
	).Scan(&best)
	if err != nil {
		return 0, fmt.Errorf("storage: cannot query best rounds: %w", err)
	}

	if !best.Valid {
		return 0, nil
	}
	return int(best.Int64), nil
}

// Stats returns aggregated statistics over every game in the session.
func (s *Store) Stats() (Stats, error) {
	stats := Stats{PerLevel: make(map[int]int)}

	err := s.db.QueryRow(
		`SELECT COUNT(*), COALESCE(SUM(rounds), 0), COALESCE(MAX(rounds), 0), COALESCE(AVG(rounds), 0)
		 FROM games`,
	).Scan(&stats.Games, &stats.TotalRounds, &stats.BestRounds, &stats.AvgRounds)
	if err != nil {
		return Stats{}, fmt.Errorf("storage: cannot get stats: %w", err)
	}

	rows, err := s.db.Query("SELECT level, COUNT(*) FROM games GROUP BY level")
	if err != nil {
		return Stats{}, fmt.Errorf("storage: cannot get level stats: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var level, count int
		if err := rows.Scan(&level, &count); err != nil {
			return Stats{}, fmt.Errorf("storage: cannot scan stats row: %w", err)
		}
		stats.PerLevel[level] = count
	}
	if err := rows.Err(); err != nil {
		return Stats{}, fmt.Errorf("storage: row iteration error: %w", err)
	}

	return stats, nil
}

func toMillis(t time.Time) int64 {
	if t.IsZero() {
		return 0
	}
	return t.UnixMilli()
}

func fromMillis(ms int64) time.Time {
	if ms == 0 {
		return time.Time{}
	}
	return time.UnixMilli(ms)
}
