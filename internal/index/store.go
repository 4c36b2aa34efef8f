// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package index persists extracted terms in a SQLite database with an
// FTS5 full-text index over labels and definitions.
package index

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	_ "github.com/mattn/go-sqlite3"

	"github.com/pdiddy/onto-extract/pkg/types"
)

const defaultMaxResults = 20

// Store manages the term index database.
type Store struct {
	db         *sql.DB
	maxResults int
}

// Open opens or creates the term index at cfg.Path, creating the schema
// if it does not exist.
func Open(cfg types.IndexConfig) (*Store, error) {
	if dir := filepath.Dir(cfg.Path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, fmt.Errorf("creating index directory: %w", err)
		}
	}

	db, err := sql.Open("sqlite3", cfg.Path+"?_journal_mode=WAL")
	if err != nil {
		return nil, fmt.Errorf("opening database: %w", err)
	}

	maxResults := cfg.MaxResults
	if maxResults <= 0 {
		maxResults = defaultMaxResults
	}

	s := &Store{db: db, maxResults: maxResults}
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
		`CREATE TABLE IF NOT EXISTS terms (
			id TEXT PRIMARY KEY,
			root_child TEXT,
			label TEXT,
			definition TEXT,
			uri TEXT
		)`,
		`CREATE INDEX IF NOT EXISTS idx_terms_root_child ON terms(root_child)`,
	}
	for _, stmt := range statements {
		if _, err := s.db.Exec(stmt); err != nil {
			return fmt.Errorf("executing schema statement: %w", err)
		}
	}

	// FTS5 virtual table with triggers for sync.
	var ftsExists int
	if err := s.db.QueryRow(
		`SELECT count(*) FROM sqlite_master WHERE type='table' AND name='terms_fts'`,
	).Scan(&ftsExists); err != nil {
		return fmt.Errorf("checking FTS table: %w", err)
	}

	if ftsExists == 0 {
		ftsStatements := []string{
			`CREATE VIRTUAL TABLE terms_fts USING fts5(label, definition, content=terms, content_rowid=rowid)`,
			`CREATE TRIGGER terms_ai AFTER INSERT ON terms BEGIN
				INSERT INTO terms_fts(rowid, label, definition) VALUES (new.rowid, new.label, new.definition);
			END`,
			`CREATE TRIGGER terms_ad AFTER DELETE ON terms BEGIN
				INSERT INTO terms_fts(terms_fts, rowid, label, definition) VALUES('delete', old.rowid, old.label, old.definition);
			END`,
			`CREATE TRIGGER terms_au AFTER UPDATE ON terms BEGIN
				INSERT INTO terms_fts(terms_fts, rowid, label, definition) VALUES('delete', old.rowid, old.label, old.definition);
				INSERT INTO terms_fts(rowid, label, definition) VALUES (new.rowid, new.label, new.definition);
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

// Put upserts the term records inside one transaction.
func (s *Store) Put(ctx context.Context, details []types.TermDetail) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("beginning transaction: %w", err)
	}
	defer tx.Rollback()

	stmt, err := tx.PrepareContext(ctx,
		`INSERT INTO terms (id, root_child, label, definition, uri)
		 VALUES (?, ?, ?, ?, ?)
		 ON CONFLICT(id) DO UPDATE SET
			root_child=excluded.root_child, label=excluded.label,
			definition=excluded.definition, uri=excluded.uri`)
	if err != nil {
		return fmt.Errorf("preparing upsert: %w", err)
	}
	defer stmt.Close()

	for _, d := range details {
		if _, err := stmt.ExecContext(ctx, d.ID, d.RootChildID, d.Label, d.Definition, d.URI); err != nil {
			return fmt.Errorf("upserting %s: %w", d.ID, err)
		}
	}
	return tx.Commit()
}

// QueryOptions holds parameters for term index queries.
type QueryOptions struct {
	// Query is the FTS5 full-text search string over labels and
	// definitions. Empty returns all terms in identifier order.
	Query string

	// RootChild filters by nearest-root-child identifier.
	RootChild string

	// MaxResults limits result count. Zero uses the store default.
	MaxResults int
}

// Query searches the term index. Full-text queries are ranked by
// relevance; structured-only queries are sorted by identifier.
func (s *Store) Query(ctx context.Context, opts QueryOptions) ([]types.TermDetail, error) {
	maxResults := opts.MaxResults
	if maxResults <= 0 {
		maxResults = s.maxResults
	}

	var (
		qb     strings.Builder
		args   []any
		useFTS = opts.Query != ""
	)

	if useFTS {
		qb.WriteString(
			`SELECT t.id, t.root_child, t.label, t.definition, t.uri
			FROM terms_fts
			JOIN terms t ON t.rowid = terms_fts.rowid
			WHERE terms_fts MATCH ?`)
		args = append(args, opts.Query)
	} else {
		qb.WriteString(
			`SELECT t.id, t.root_child, t.label, t.definition, t.uri
			FROM terms t
			WHERE 1=1`)
	}

	if opts.RootChild != "" {
		qb.WriteString(` AND t.root_child = ?`)
		args = append(args, opts.RootChild)
	}

	if useFTS {
		qb.WriteString(` ORDER BY terms_fts.rank`)
	} else {
		qb.WriteString(` ORDER BY t.id`)
	}

	qb.WriteString(` LIMIT ?`)
	args = append(args, maxResults)

	rows, err := s.db.QueryContext(ctx, qb.String(), args...)
	if err != nil {
		return nil, fmt.Errorf("querying term index: %w", err)
	}
	defer rows.Close()

	var results []types.TermDetail
	for rows.Next() {
		var d types.TermDetail
		var rootChild, definition sql.NullString
		if err := rows.Scan(&d.ID, &rootChild, &d.Label, &definition, &d.URI); err != nil {
			return nil, fmt.Errorf("scanning row: %w", err)
		}
		d.RootChildID = rootChild.String
		d.Definition = definition.String
		results = append(results, d)
	}
	return results, rows.Err()
}
