// Package store keeps the last repository list fetched for each user in an
// SQLite database. The default DSN is in-memory, so nothing outlives the
// process.
package store

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/uhey77/portfolio/internal/github"

	_ "modernc.org/sqlite"
)

// MemoryDSN is an in-memory database private to one connection.
const MemoryDSN = ":memory:"

// Entry describes one cached repository list.
type Entry struct {
	User      string    `json:"user"`
	Repos     int       `json:"repos"`
	FetchedAt time.Time `json:"fetched_at"`
}

type Store struct {
	db  *sql.DB
	now func() time.Time
}

// Open opens the cache database and creates its table.
func Open(dsn string) (*Store, error) {
	if dsn == "" {
		dsn = MemoryDSN
	}
	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("open cache: %w", err)
	}
	// Every connection to ":memory:" is a separate database.
	db.SetMaxOpenConns(1)

	_, err = db.Exec(`
	CREATE TABLE IF NOT EXISTS repo_cache (
		user TEXT PRIMARY KEY,
		payload TEXT NOT NULL,
		repo_count INTEGER NOT NULL,
		fetched_at INTEGER NOT NULL  -- unix nanoseconds
	)`)
	if err != nil {
		db.Close()
		return nil, fmt.Errorf("create repo_cache: %w", err)
	}
	return &Store{db: db, now: time.Now}, nil
}

func (s *Store) Close() error {
	return s.db.Close()
}

// Put replaces the cached list for user.
func (s *Store) Put(ctx context.Context, user string, repos []github.Repo) error {
	payload, err := json.Marshal(repos)
	if err != nil {
		return fmt.Errorf("encode repos: %w", err)
	}
	_, err = s.db.ExecContext(ctx, `
		INSERT INTO repo_cache (user, payload, repo_count, fetched_at)
		VALUES (?, ?, ?, ?)
		ON CONFLICT(user) DO UPDATE SET
			payload = excluded.payload,
			repo_count = excluded.repo_count,
			fetched_at = excluded.fetched_at
	`, user, string(payload), len(repos), s.now().UnixNano())
	if err != nil {
		return fmt.Errorf("store repos for %s: %w", user, err)
	}
	return nil
}

// Get returns the cached list for user if it is younger than maxAge.
func (s *Store) Get(ctx context.Context, user string, maxAge time.Duration) ([]github.Repo, bool, error) {
	var payload string
	var fetched int64
	err := s.db.QueryRowContext(ctx,
		`SELECT payload, fetched_at FROM repo_cache WHERE user = ?`, user,
	).Scan(&payload, &fetched)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, fmt.Errorf("load repos for %s: %w", user, err)
	}

	if s.now().Sub(time.Unix(0, fetched)) >= maxAge {
		return nil, false, nil
	}

	var repos []github.Repo
	if err := json.Unmarshal([]byte(payload), &repos); err != nil {
		return nil, false, fmt.Errorf("decode cached repos for %s: %w", user, err)
	}
	return repos, true, nil
}

// Entries lists every cached user, newest first.
func (s *Store) Entries(ctx context.Context) ([]Entry, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT user, repo_count, fetched_at
		FROM repo_cache
		ORDER BY fetched_at DESC
	`)
	if err != nil {
		return nil, fmt.Errorf("list cache: %w", err)
	}
	defer rows.Close()

	var entries []Entry
	for rows.Next() {
		var e Entry
		var fetched int64
		if err := rows.Scan(&e.User, &e.Repos, &fetched); err != nil {
			return nil, fmt.Errorf("scan cache entry: %w", err)
		}
		e.FetchedAt = time.Unix(0, fetched)
		entries = append(entries, e)
	}
	return entries, rows.Err()
}

// Purge drops the cached list for user. It reports whether one existed.
func (s *Store) Purge(ctx context.Context, user string) (bool, error) {
	result, err := s.db.ExecContext(ctx, `DELETE FROM repo_cache WHERE user = ?`, user)
	if err != nil {
		return false, fmt.Errorf("purge %s: %w", user, err)
	}
	n, _ := result.RowsAffected()
	return n > 0, nil
}
