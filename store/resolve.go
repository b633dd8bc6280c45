package store

import (
	"fmt"
	"strings"

	"github.com/milk9111/tileprops/proplist"
	"github.com/milk9111/tileprops/tiles"
)

// ResolveByTile returns the first list affecting tile. Identity matches across
// all lists take precedence over name matches.
func (s *Store) ResolveByTile(tile tiles.Tile, strict bool) *proplist.List {
	if !s.checkReady() {
		return nil
	}
	if tile == nil {
		s.warnIf(strict, fmt.Errorf("%w: nil tile", ErrTileNotResolved))
		return nil
	}
	for _, l := range s.lists {
		if l.ContainsTile(tile) {
			return l
		}
	}
	for _, l := range s.lists {
		if l.ContainsTileName(tile) {
			return l
		}
	}
	s.warnIf(strict, fmt.Errorf("%w: %q is not in any property list", ErrTileNotResolved, tile.TileName()))
	return nil
}

// ResolveByName returns the first list whose name equals name, falling back
// to the first list whose name contains it.
func (s *Store) ResolveByName(name string, strict bool) *proplist.List {
	if !s.checkReady() {
		return nil
	}
	if name != "" {
		for _, l := range s.lists {
			if l.Name == name {
				return l
			}
		}
		for _, l := range s.lists {
			if strings.Contains(l.Name, name) {
				return l
			}
		}
	}
	s.warnIf(strict, fmt.Errorf("%w: no property list named %q", ErrListNotResolved, name))
	return nil
}

// TileHasProperties reports whether any list affects tile.
func (s *Store) TileHasProperties(tile tiles.Tile) bool {
	return s.ResolveByTile(tile, false) != nil
}
