// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package history persists completed search responses in a local SQLite
// database with full-text search over queries and answers. The search
// pipeline itself stays stateless; recording happens in the CLI layer
// after a response has been returned.
package history

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"time"

	_ "github.com/mattn/go-sqlite3"

	"github.com/ARMAND-cod-eng/answer-engine/pkg/types"
)

const defaultLimit = 20

// Entry is one recorded search.
type Entry struct {
	ID               string    `json:"id"`
	Query            string    `json:"query"`
	Intent           string    `json:"intent"`
	Origin           string    `json:"origin"`
	Answer           string    `json:"answer"`
	TotalResults     int       `json:"total_results"`
	CitationCount    int       `json:"citation_count"`
	WordCount        int       `json:"word_count"`
	ProcessingTimeMs int64     `json:"processing_time_ms"`
	CreatedAt        time.Time `json:"created_at"`
}

// Store manages the history SQLite database.
type Store struct {
	db           *sql.DB
	defaultLimit int
}

// NewStore opens or creates the history database at cfg.DBPath,
// creating parent directories and the schema as needed.
func NewStore(cfg types.HistoryConfig) (*Store, error) {
	if cfg.DBPath == "" {
		cfg.DBPath = filepath.Join("history", "answers.db")
	}
	if dir := filepath.Dir(cfg.DBPath); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, fmt.Errorf("creating history directory: %w", err)
		}
	}

	db, err := sql.Open("sqlite3", cfg.DBPath+"?_journal_mode=WAL&_foreign_keys=on")
	if err != nil {
		return nil, fmt.Errorf("opening history database: %w", err)
	}

	limit := cfg.DefaultLimit
	if limit <= 0 {
		limit = defaultLimit
	}

	s := &Store{db: db, defaultLimit: limit}
	if err := s.createSchema(); err != nil {
		db.Close()
		return nil, fmt.Errorf("creating schema: %w", err)
	}
	return s, nil
}

// Close releases the database connection.
func (s *Store) Close() error {
	return s.db.Close()
}

func (s *Store) createSchema() error {
	statements := []string{
		`CREATE TABLE IF NOT EXISTS searches (
			rowid INTEGER PRIMARY KEY AUTOINCREMENT,
			id TEXT NOT NULL UNIQUE,
			query TEXT NOT NULL,
			intent TEXT NOT NULL,
			origin TEXT NOT NULL,
			answer TEXT NOT NULL,
			total_results INTEGER NOT NULL,
			citation_count INTEGER NOT NULL,
			word_count INTEGER NOT NULL,
			processing_ms INTEGER NOT NULL,
			created_at TEXT NOT NULL
		)`,
		`CREATE INDEX IF NOT EXISTS idx_searches_created_at ON searches(created_at)`,
	}

	for _, stmt := range statements {
		if _, err := s.db.Exec(stmt); err != nil {
			return fmt.Errorf("executing schema statement: %w", err)
		}
	}

	// FTS5 virtual table with triggers for sync.
	var ftsExists int
	if err := s.db.QueryRow(
		`SELECT count(*) FROM sqlite_master WHERE type='table' AND name='searches_fts'`,
	).Scan(&ftsExists); err != nil {
		return fmt.Errorf("checking FTS table: %w", err)
	}

	if ftsExists == 0 {
		ftsStatements := []string{
			`CREATE VIRTUAL TABLE searches_fts USING fts5(query, answer, content=searches, content_rowid=rowid)`,
			`CREATE TRIGGER searches_ai AFTER INSERT ON searches BEGIN
				INSERT INTO searches_fts(rowid, query, answer) VALUES (new.rowid, new.query, new.answer);
			END`,
			`CREATE TRIGGER searches_ad AFTER DELETE ON searches BEGIN
				INSERT INTO searches_fts(searches_fts, rowid, query, answer) VALUES('delete', old.rowid, old.query, old.answer);
			END`,
		}
		for _, stmt := range ftsStatements {
			if _, err := s.db.Exec(stmt); err != nil {
				return fmt.Errorf("creating FTS infrastructure: %w", err)
			}
		}
	}

	return nil
}

// Record inserts one completed response into the history.
func (s *Store) Record(ctx context.Context, resp *types.SearchResponse) error {
	_, err := s.db.ExecContext(ctx,
		`INSERT INTO searches
			(id, query, intent, origin, answer, total_results, citation_count, word_count, processing_ms, created_at)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		resp.Metadata.RequestID,
		resp.Query,
		resp.Metadata.Intent,
		string(resp.Metadata.Origin),
		resp.Answer.Text,
		resp.Metadata.TotalResults,
		resp.Answer.CitationCount,
		resp.Answer.WordCount,
		resp.Metadata.ProcessingTimeMs,
		time.Now().UTC().Format(time.RFC3339),
	)
	if err != nil {
		return fmt.Errorf("recording search: %w", err)
	}
	return nil
}

// List returns the most recent entries, newest first. A non-positive
// limit uses the configured default.
func (s *Store) List(ctx context.Context, limit int) ([]Entry, error) {
	if limit <= 0 {
		limit = s.defaultLimit
	}
	rows, err := s.db.QueryContext(ctx,
		`SELECT id, query, intent, origin, answer, total_results, citation_count, word_count, processing_ms, created_at
		 FROM searches ORDER BY created_at DESC, rowid DESC LIMIT ?`, limit)
	if err != nil {
		return nil, fmt.Errorf("listing history: %w", err)
	}
	defer rows.Close()
	return scanEntries(rows)
}

// Get returns the entry with the given request ID.
func (s *Store) Get(ctx context.Context, id string) (*Entry, error) {
	row := s.db.QueryRowContext(ctx,
		`SELECT id, query, intent, origin, answer, total_results, citation_count, word_count, processing_ms, created_at
		 FROM searches WHERE id = ?`, id)

	e, err := scanEntry(row)
	if err == sql.ErrNoRows {
		return nil, fmt.Errorf("no history entry with id %s", id)
	}
	if err != nil {
		return nil, fmt.Errorf("loading history entry: %w", err)
	}
	return e, nil
}

// SearchText runs an FTS5 match over recorded queries and answers.
func (s *Store) SearchText(ctx context.Context, term string, limit int) ([]Entry, error) {
	if limit <= 0 {
		limit = s.defaultLimit
	}
	rows, err := s.db.QueryContext(ctx,
		`SELECT s.id, s.query, s.intent, s.origin, s.answer, s.total_results, s.citation_count, s.word_count, s.processing_ms, s.created_at
		 FROM searches_fts f JOIN searches s ON s.rowid = f.rowid
		 WHERE searches_fts MATCH ?
		 ORDER BY rank LIMIT ?`, term, limit)
	if err != nil {
		return nil, fmt.Errorf("searching history: %w", err)
	}
	defer rows.Close()
	return scanEntries(rows)
}

// Prune deletes entries older than the cutoff and returns how many were
// removed.
func (s *Store) Prune(ctx context.Context, olderThan time.Duration) (int, error) {
	cutoff := time.Now().UTC().Add(-olderThan).Format(time.RFC3339)
	res, err := s.db.ExecContext(ctx, `DELETE FROM searches WHERE created_at < ?`, cutoff)
	if err != nil {
		return 0, fmt.Errorf("pruning history: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("counting pruned rows: %w", err)
	}
	return int(n), nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanEntry(row rowScanner) (*Entry, error) {
	var e Entry
	var created string
	err := row.Scan(&e.ID, &e.Query, &e.Intent, &e.Origin, &e.Answer,
		&e.TotalResults, &e.CitationCount, &e.WordCount, &e.ProcessingTimeMs, &created)
	if err != nil {
		return nil, err
	}
	if t, parseErr := time.Parse(time.RFC3339, created); parseErr == nil {
		e.CreatedAt = t
	}
	return &e, nil
}

func scanEntries(rows *sql.Rows) ([]Entry, error) {
	var entries []Entry
	for rows.Next() {
		e, err := scanEntry(rows)
		if err != nil {
			return nil, fmt.Errorf("scanning history row: %w", err)
		}
		entries = append(entries, *e)
	}
	return entries, rows.Err()
}
