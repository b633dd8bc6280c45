package config

import (
	"context"
	"fmt"

	"github.com/milk9111/tileprops/content"
	"github.com/milk9111/tileprops/content/postgres"
	"github.com/milk9111/tileprops/content/sqlite"
	"github.com/milk9111/tileprops/lists"
	"github.com/milk9111/tileprops/store"
	"github.com/milk9111/tileprops/tiles"
)

// OpenSource opens the content source selected by c. The returned close
// function releases it and is never nil.
func (c *Config) OpenSource(ctx context.Context, reg *tiles.Registry) (content.Source, func() error, error) {
	nop := func() error { return nil }
	switch c.Backend() {
	case "postgres":
		src, err := postgres.New(ctx, c.PostgresDSN, reg)
		if err != nil {
			return nil, nop, err
		}
		return src, src.Close, nil
	case "sqlite":
		src, err := sqlite.Open(ctx, c.SQLitePath, reg)
		if err != nil {
			return nil, nop, err
		}
		return src, src.Close, nil
	default:
		return content.NewFS(c.ContentDir, lists.FS, reg), nop, nil
	}
}

// LoadStore opens the configured source and waits up to LoadTimeout for a
// store over it to become ready.
func (c *Config) LoadStore(ctx context.Context, reg *tiles.Registry, opts store.Options) (*store.Store, func() error, error) {
	src, closeFn, err := c.OpenSource(ctx, reg)
	if err != nil {
		return nil, closeFn, err
	}
	if opts.Tag == "" {
		opts.Tag = c.Tag
	}
	s := store.New(src, opts)

	ctx, cancel := context.WithTimeout(ctx, c.LoadTimeout)
	defer cancel()
	s.Load(ctx)
	if err := s.Wait(ctx); err != nil {
		_ = closeFn()
		return nil, func() error { return nil }, fmt.Errorf("loading store: %w", err)
	}
	return s, closeFn, nil
}
