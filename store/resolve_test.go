package store

import (
	"bytes"
	"context"
	"log"
	"testing"

	"github.com/milk9111/tileprops/content"
	"github.com/milk9111/tileprops/proplist"
	"github.com/milk9111/tileprops/tiles"
)

func TestResolveByTileDeterminism(t *testing.T) {
	shared := &tiles.Ref{Name: "stone"}
	lookalike := &tiles.Ref{Name: "stone"}

	first := proplist.New("ByName")
	first.AddTile(lookalike)
	second := proplist.New("ByIdentity")
	second.AddTile(shared)
	third := proplist.New("AlsoIdentity")
	third.AddTile(shared)

	s := New(content.Static{first, second, third}, Options{Logger: log.New(&bytes.Buffer{}, "", 0)})
	<-s.Load(context.Background())

	tests := []struct {
		name string
		tile tiles.Tile
		want string
	}{
		{name: "identity beats earlier name match", tile: shared, want: "ByIdentity"},
		{name: "identity of lookalike", tile: lookalike, want: "ByName"},
		{name: "name fallback", tile: &tiles.Ref{Name: "stone"}, want: "ByName"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			for range 3 {
				got := s.ResolveByTile(tt.tile, true)
				if got == nil || got.Name != tt.want {
					t.Fatalf("expected %q, got %v", tt.want, got)
				}
			}
		})
	}
}

func TestResolveByName(t *testing.T) {
	f := newReadyFixture(t)

	tests := []struct {
		query string
		want  string
	}{
		{query: "IceTiles", want: "IceTiles"},
		{query: "Ice", want: "IceTiles"},
		{query: "Tiles", want: "GrassTiles"},
		{query: "Lava", want: ""},
		{query: "", want: ""},
	}
	for _, tt := range tests {
		t.Run(tt.query, func(t *testing.T) {
			f.logs.Reset()
			got := f.store.ResolveByName(tt.query, true)
			if tt.want == "" {
				if got != nil {
					t.Fatalf("expected no list, got %q", got.Name)
				}
				if f.warnings() != 1 {
					t.Fatalf("expected one warning, got %q", f.logs.String())
				}
				return
			}
			if got == nil || got.Name != tt.want {
				t.Fatalf("expected %q, got %v", tt.want, got)
			}
		})
	}
}

func TestAffectedTiles(t *testing.T) {
	f := newReadyFixture(t)
	mud := &tiles.Ref{Name: "mud"}

	if f.store.TileHasProperties(mud) {
		t.Fatalf("mud should not resolve yet")
	}
	if !f.store.AddAffectedTile(mud, "GrassTiles", true) {
		t.Fatalf("add tile failed: %q", f.logs.String())
	}
	if got := f.store.ResolveByTile(mud, true); got == nil || got.Name != "GrassTiles" {
		t.Fatalf("expected mud in grass, got %v", got)
	}
	if f.store.AddAffectedTile(mud, "GrassTiles", true) || f.warnings() != 1 {
		t.Fatalf("expected duplicate tile warning, got %q", f.logs.String())
	}

	f.logs.Reset()
	if !f.store.RemoveAffectedTile(mud, "GrassTiles", true) {
		t.Fatalf("remove tile failed")
	}
	if f.store.RemoveAffectedTile(mud, "GrassTiles", true) || f.warnings() != 1 {
		t.Fatalf("expected missing tile warning, got %q", f.logs.String())
	}
	if f.store.TileHasProperties(mud) {
		t.Fatalf("mud should no longer resolve")
	}
}
