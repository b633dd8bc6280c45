// Package sqlite stores property lists as YAML documents in SQLite and serves
// them as a content source.
package sqlite

import (
	"context"
	"database/sql"
	"fmt"
	"path/filepath"
	"strings"
	"time"

	"github.com/milk9111/tileprops/content"
	"github.com/milk9111/tileprops/proplist"
	"github.com/milk9111/tileprops/tiles"

	_ "modernc.org/sqlite"
)

var _ content.Source = (*Source)(nil)

var schema = []string{
	`CREATE TABLE IF NOT EXISTS property_lists (
		name     TEXT PRIMARY KEY,
		position INTEGER NOT NULL DEFAULT 0,
		body     TEXT NOT NULL
	)`,
	`CREATE TABLE IF NOT EXISTS property_list_tags (
		list_name TEXT NOT NULL REFERENCES property_lists(name) ON DELETE CASCADE,
		tag       TEXT NOT NULL,
		PRIMARY KEY (list_name, tag)
	)`,
}

// Source reads and writes property lists in a SQLite database.
type Source struct {
	db  *sql.DB
	reg *tiles.Registry
}

// Open opens (creating if needed) the database at path and applies the schema.
// Decoded tiles are interned through reg.
func Open(ctx context.Context, path string, reg *tiles.Registry) (*Source, error) {
	if strings.TrimSpace(path) == "" {
		return nil, fmt.Errorf("sqlite: storage path is required")
	}
	dsn := path
	if path != ":memory:" {
		dsn = filepath.Clean(path)
	}

	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("sqlite: opening database: %w", err)
	}
	// Pragmas are per connection; a single connection keeps them in force and
	// keeps :memory: databases alive.
	db.SetMaxOpenConns(1)

	ctx, cancel := context.WithTimeout(ctx, 30*time.Second)
	defer cancel()

	if err := db.PingContext(ctx); err != nil {
		db.Close()
		return nil, fmt.Errorf("sqlite: pinging: %w", err)
	}

	pragmas := []string{
		"PRAGMA busy_timeout = 30000;",
		"PRAGMA foreign_keys = ON;",
	}
	for _, pragma := range pragmas {
		if _, err := db.ExecContext(ctx, pragma); err != nil {
			db.Close()
			return nil, fmt.Errorf("sqlite: setting pragma %q: %w", pragma, err)
		}
	}
	for _, stmt := range schema {
		if _, err := db.ExecContext(ctx, stmt); err != nil {
			db.Close()
			return nil, fmt.Errorf("sqlite: applying schema: %w", err)
		}
	}

	return &Source{db: db, reg: reg}, nil
}

func (s *Source) Close() error {
	if s == nil || s.db == nil {
		return nil
	}
	return s.db.Close()
}

// PutAll stores lists in order, replacing any list with the same name.
func (s *Source) PutAll(ctx context.Context, lists []*proplist.List) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("sqlite: begin: %w", err)
	}
	defer tx.Rollback()

	for i, l := range lists {
		if err := put(ctx, tx, l, i); err != nil {
			return err
		}
	}
	if err := tx.Commit(); err != nil {
		return fmt.Errorf("sqlite: commit: %w", err)
	}
	return nil
}

func put(ctx context.Context, tx *sql.Tx, l *proplist.List, position int) error {
	if l == nil || strings.TrimSpace(l.Name) == "" {
		return fmt.Errorf("sqlite: list name is required")
	}
	body, err := proplist.Encode(l)
	if err != nil {
		return err
	}
	if _, err := tx.ExecContext(ctx, `
		INSERT INTO property_lists (name, position, body) VALUES (?, ?, ?)
		ON CONFLICT(name) DO UPDATE SET position = excluded.position, body = excluded.body`,
		l.Name, position, string(body)); err != nil {
		return fmt.Errorf("sqlite: storing list %q: %w", l.Name, err)
	}
	if _, err := tx.ExecContext(ctx, `DELETE FROM property_list_tags WHERE list_name = ?`, l.Name); err != nil {
		return fmt.Errorf("sqlite: clearing tags of %q: %w", l.Name, err)
	}
	tags := l.Tags
	if len(tags) == 0 {
		tags = []string{content.DefaultTag}
	}
	for _, tag := range tags {
		if _, err := tx.ExecContext(ctx,
			`INSERT OR IGNORE INTO property_list_tags (list_name, tag) VALUES (?, ?)`, l.Name, tag); err != nil {
			return fmt.Errorf("sqlite: tagging %q: %w", l.Name, err)
		}
	}
	return nil
}

// Delete removes the named list and its tags.
func (s *Source) Delete(ctx context.Context, name string) error {
	if _, err := s.db.ExecContext(ctx, `DELETE FROM property_lists WHERE name = ?`, name); err != nil {
		return fmt.Errorf("sqlite: deleting list %q: %w", name, err)
	}
	return nil
}

func (s *Source) FetchAllTagged(ctx context.Context, tag string) ([]*proplist.List, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT l.name, l.body
		FROM property_lists l
		JOIN property_list_tags t ON t.list_name = l.name
		WHERE t.tag = ?
		ORDER BY l.position, l.name`, tag)
	if err != nil {
		return nil, fmt.Errorf("sqlite: querying lists: %w", err)
	}
	defer rows.Close()

	var out []*proplist.List
	for rows.Next() {
		var name, body string
		if err := rows.Scan(&name, &body); err != nil {
			return nil, fmt.Errorf("sqlite: scanning list: %w", err)
		}
		l, err := proplist.Decode([]byte(body), s.reg)
		if err != nil {
			return nil, fmt.Errorf("sqlite: decoding list %q: %w", name, err)
		}
		out = append(out, l)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("sqlite: iterating lists: %w", err)
	}
	return out, nil
}
