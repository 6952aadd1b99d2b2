// Package history keeps a record of finished matches in SQLite.
package history

import (
	"context"
	"database/sql"
	"fmt"
	"strings"
	"time"

	"github.com/oklog/ulid/v2"
	_ "modernc.org/sqlite"
)

const schema = `
CREATE TABLE IF NOT EXISTS matches (
	id              TEXT PRIMARY KEY,
	mode            TEXT NOT NULL,
	arena           TEXT NOT NULL,
	winner          TEXT NOT NULL DEFAULT '',
	elapsed_seconds INTEGER NOT NULL,
	players         INTEGER NOT NULL,
	ended_at        INTEGER NOT NULL
)`

// Match is one finished match. An empty Winner means a draw.
type Match struct {
	ID             ulid.ULID
	Mode           string
	Arena          string
	Winner         string
	ElapsedSeconds int
	Players        int
	EndedAt        time.Time
}

type Store struct {
	db *sql.DB
}

// Open opens (and if needed creates) the history database at path.
// ":memory:" gives a throwaway in-memory store.
func Open(path string) (*Store, error) {
	if strings.TrimSpace(path) == "" {
		return nil, fmt.Errorf("history database path is required")
	}
	dsn := path
	if path != ":memory:" {
		dsn += "?_pragma=busy_timeout(5000)&_pragma=journal_mode(WAL)"
	}
	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("open sqlite db: %w", err)
	}
	// a single connection keeps ":memory:" databases alive and shared
	db.SetMaxOpenConns(1)

	if err := db.Ping(); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("ping sqlite db: %w", err)
	}
	if _, err := db.Exec(schema); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("create schema: %w", err)
	}
	return &Store{db: db}, nil
}

func (s *Store) Close() error {
	if s == nil || s.db == nil {
		return nil
	}
	return s.db.Close()
}

func (s *Store) Record(ctx context.Context, m Match) error {
	if m.Mode == "" || m.Arena == "" {
		return fmt.Errorf("match %s: mode and arena are required", m.ID)
	}
	if m.EndedAt.IsZero() {
		m.EndedAt = time.Now()
	}
	_, err := s.db.ExecContext(ctx,
		`INSERT INTO matches (id, mode, arena, winner, elapsed_seconds, players, ended_at)
		 VALUES (?, ?, ?, ?, ?, ?, ?)`,
		m.ID.String(), m.Mode, m.Arena, m.Winner, m.ElapsedSeconds, m.Players, m.EndedAt.UTC().UnixMilli(),
	)
	if err != nil {
		return fmt.Errorf("record match %s: %w", m.ID, err)
	}
	return nil
}

// Recent returns up to limit matches, newest first.
func (s *Store) Recent(ctx context.Context, limit int) ([]Match, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT id, mode, arena, winner, elapsed_seconds, players, ended_at
		 FROM matches ORDER BY id DESC LIMIT ?`, limit)
	if err != nil {
		return nil, fmt.Errorf("query matches: %w", err)
	}
	defer rows.Close()

	var matches []Match
	for rows.Next() {
		var (
			m       Match
			id      string
			endedAt int64
		)
		if err := rows.Scan(&id, &m.Mode, &m.Arena, &m.Winner, &m.ElapsedSeconds, &m.Players, &endedAt); err != nil {
			return nil, fmt.Errorf("scan match: %w", err)
		}
		if m.ID, err = ulid.ParseStrict(id); err != nil {
			return nil, fmt.Errorf("match id %q: %w", id, err)
		}
		m.EndedAt = time.UnixMilli(endedAt).UTC()
		matches = append(matches, m)
	}
	return matches, rows.Err()
}

// Wins counts the matches won by name, e.g. a player or team.
func (s *Store) Wins(ctx context.Context, name string) (int, error) {
	var n int
	err := s.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM matches WHERE winner = ?`, name).Scan(&n)
	if err != nil {
		return 0, fmt.Errorf("count wins: %w", err)
	}
	return n, nil
}
