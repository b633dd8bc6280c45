// Package postgres serves property lists stored as YAML documents in
// PostgreSQL.
package postgres

import (
	"context"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/milk9111/tileprops/content"
	"github.com/milk9111/tileprops/proplist"
	"github.com/milk9111/tileprops/tiles"
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

// Source reads and writes property lists in PostgreSQL.
type Source struct {
	pool *pgxpool.Pool
	reg  *tiles.Registry
}

// New connects to dsn and applies the schema.
func New(ctx context.Context, dsn string, reg *tiles.Registry) (*Source, error) {
	if strings.TrimSpace(dsn) == "" {
		return nil, fmt.Errorf("postgres: dsn is required")
	}
	pool, err := pgxpool.New(ctx, dsn)
	if err != nil {
		return nil, fmt.Errorf("postgres: creating pool: %w", err)
	}
	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, fmt.Errorf("postgres: pinging: %w", err)
	}
	for _, stmt := range schema {
		if _, err := pool.Exec(ctx, stmt); err != nil {
			pool.Close()
			return nil, fmt.Errorf("postgres: applying schema: %w", err)
		}
	}
	return &Source{pool: pool, reg: reg}, nil
}

func (s *Source) Close() error {
	s.pool.Close()
	return nil
}

// PutAll stores lists in order, replacing any list with the same name.
func (s *Source) PutAll(ctx context.Context, lists []*proplist.List) error {
	return pgx.BeginFunc(ctx, s.pool, func(tx pgx.Tx) error {
		for i, l := range lists {
			if err := put(ctx, tx, l, i); err != nil {
				return err
			}
		}
		return nil
	})
}

func put(ctx context.Context, tx pgx.Tx, l *proplist.List, position int) error {
	if l == nil || strings.TrimSpace(l.Name) == "" {
		return fmt.Errorf("postgres: list name is required")
	}
	body, err := proplist.Encode(l)
	if err != nil {
		return err
	}
	if _, err := tx.Exec(ctx, `
		INSERT INTO property_lists (name, position, body) VALUES ($1, $2, $3)
		ON CONFLICT (name) DO UPDATE SET position = EXCLUDED.position, body = EXCLUDED.body`,
		l.Name, position, string(body)); err != nil {
		return fmt.Errorf("postgres: storing list %q: %w", l.Name, err)
	}
	if _, err := tx.Exec(ctx, `DELETE FROM property_list_tags WHERE list_name = $1`, l.Name); err != nil {
		return fmt.Errorf("postgres: clearing tags of %q: %w", l.Name, err)
	}
	tags := l.Tags
	if len(tags) == 0 {
		tags = []string{content.DefaultTag}
	}
	for _, tag := range tags {
		if _, err := tx.Exec(ctx, `
			INSERT INTO property_list_tags (list_name, tag) VALUES ($1, $2)
			ON CONFLICT DO NOTHING`, l.Name, tag); err != nil {
			return fmt.Errorf("postgres: tagging %q: %w", l.Name, err)
		}
	}
	return nil
}

// Delete removes the list called name along with its tags.
func (s *Source) Delete(ctx context.Context, name string) error {
	if _, err := s.pool.Exec(ctx, `DELETE FROM property_lists WHERE name = $1`, name); err != nil {
		return fmt.Errorf("postgres: deleting list %q: %w", name, err)
	}
	return nil
}

func (s *Source) FetchAllTagged(ctx context.Context, tag string) ([]*proplist.List, error) {
	rows, err := s.pool.Query(ctx, `
		SELECT l.name, l.body
		FROM property_lists l
		JOIN property_list_tags t ON t.list_name = l.name
		WHERE t.tag = $1
		ORDER BY l.position, l.name`, tag)
	if err != nil {
		return nil, fmt.Errorf("postgres: querying lists: %w", err)
	}
	defer rows.Close()

	var out []*proplist.List
	for rows.Next() {
		var name, body string
		if err := rows.Scan(&name, &body); err != nil {
			return nil, fmt.Errorf("postgres: scanning list: %w", err)
		}
		l, err := proplist.Decode([]byte(body), s.reg)
		if err != nil {
			return nil, fmt.Errorf("postgres: decoding list %q: %w", name, err)
		}
		out = append(out, l)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("postgres: iterating lists: %w", err)
	}
	return out, nil
}
