// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package acronym

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	_ "github.com/mattn/go-sqlite3"
)

// Glossary is a SQLite-backed acronym table. The first definition stored for
// a token is never overwritten, across runs as well as within one.
type Glossary struct {
	db *sql.DB
}

// GlossaryEntry is a stored acronym with provenance.
type GlossaryEntry struct {
	Entry     `yaml:",inline"`
	Source    string    `json:"source" yaml:"source"`
	FirstSeen time.Time `json:"first_seen" yaml:"first_seen"`
}

// SaveSummary counts the outcome of Glossary.Save.
type SaveSummary struct {
	Added   int
	Skipped int
}

// OpenGlossary opens or creates the glossary database at path, creating the
// parent directory and the schema as needed.
func OpenGlossary(path string) (*Glossary, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, fmt.Errorf("creating glossary directory: %w", err)
	}

	db, err := sql.Open("sqlite3", path+"?_journal_mode=WAL")
	if err != nil {
		return nil, fmt.Errorf("opening glossary: %w", err)
	}

	g := &Glossary{db: db}
	if err := g.createSchema(); err != nil {
		db.Close()
		return nil, fmt.Errorf("creating schema: %w", err)
	}
	return g, nil
}

// Close releases the database connection.
func (g *Glossary) Close() error {
	return g.db.Close()
}

func (g *Glossary) createSchema() error {
	statements := []string{
		`CREATE TABLE IF NOT EXISTS acronyms (
			token TEXT PRIMARY KEY,
			definition TEXT NOT NULL,
			source TEXT,
			first_seen TEXT NOT NULL
		)`,
	}
	for _, stmt := range statements {
		if _, err := g.db.Exec(stmt); err != nil {
			return fmt.Errorf("executing schema statement: %w", err)
		}
	}
	return nil
}

// Save inserts every entry of m that the glossary does not hold yet. source
// records where the acronyms came from (a file or folder path).
func (g *Glossary) Save(ctx context.Context, m *Mapping, source string) (SaveSummary, error) {
	tx, err := g.db.BeginTx(ctx, nil)
	if err != nil {
		return SaveSummary{}, fmt.Errorf("beginning transaction: %w", err)
	}
	defer tx.Rollback()

	stmt, err := tx.PrepareContext(ctx,
		`INSERT OR IGNORE INTO acronyms (token, definition, source, first_seen) VALUES (?, ?, ?, ?)`)
	if err != nil {
		return SaveSummary{}, fmt.Errorf("preparing insert: %w", err)
	}
	defer stmt.Close()

	now := time.Now().UTC().Format(time.RFC3339)
	var summary SaveSummary
	for _, e := range m.Entries() {
		res, err := stmt.ExecContext(ctx, e.Token, e.Definition, source, now)
		if err != nil {
			return SaveSummary{}, fmt.Errorf("inserting %s: %w", e.Token, err)
		}
		n, err := res.RowsAffected()
		if err != nil {
			return SaveSummary{}, fmt.Errorf("inserting %s: %w", e.Token, err)
		}
		if n > 0 {
			summary.Added++
		} else {
			summary.Skipped++
		}
	}

	if err := tx.Commit(); err != nil {
		return SaveSummary{}, fmt.Errorf("committing: %w", err)
	}
	return summary, nil
}

// Lookup returns the stored entry for token. The boolean is false when the
// token is unknown.
func (g *Glossary) Lookup(ctx context.Context, token string) (GlossaryEntry, bool, error) {
	row := g.db.QueryRowContext(ctx,
		`SELECT token, definition, COALESCE(source, ''), first_seen FROM acronyms WHERE token = ?`, token)
	e, err := scanEntry(row)
	if errors.Is(err, sql.ErrNoRows) {
		return GlossaryEntry{}, false, nil
	}
	if err != nil {
		return GlossaryEntry{}, false, fmt.Errorf("looking up %s: %w", token, err)
	}
	return e, true, nil
}

// All returns every stored entry sorted by token.
func (g *Glossary) All(ctx context.Context) ([]GlossaryEntry, error) {
	rows, err := g.db.QueryContext(ctx,
		`SELECT token, definition, COALESCE(source, ''), first_seen FROM acronyms ORDER BY token`)
	if err != nil {
		return nil, fmt.Errorf("querying glossary: %w", err)
	}
	defer rows.Close()

	var entries []GlossaryEntry
	for rows.Next() {
		e, err := scanEntry(rows)
		if err != nil {
			return nil, fmt.Errorf("scanning glossary row: %w", err)
		}
		entries = append(entries, e)
	}
	return entries, rows.Err()
}

// Mapping returns the stored acronyms as a Mapping.
func (g *Glossary) Mapping(ctx context.Context) (*Mapping, error) {
	entries, err := g.All(ctx)
	if err != nil {
		return nil, err
	}
	m := NewMapping()
	for _, e := range entries {
		m.InsertIfAbsent(e.Token, e.Definition)
	}
	return m, nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanEntry(row rowScanner) (GlossaryEntry, error) {
	var e GlossaryEntry
	var firstSeen string
	if err := row.Scan(&e.Token, &e.Definition, &e.Source, &firstSeen); err != nil {
		return GlossaryEntry{}, err
	}
	if t, err := time.Parse(time.RFC3339, firstSeen); err == nil {
		e.FirstSeen = t
	}
	return e, nil
}
