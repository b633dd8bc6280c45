package store

import (
	"fmt"

	"github.com/milk9111/tileprops/tiles"
)

// AddAffectedTile makes tile part of the list called listName.
func (s *Store) AddAffectedTile(tile tiles.Tile, listName string, strict bool) bool {
	list := s.ResolveByName(listName, strict)
	if list == nil {
		return false
	}
	if tile == nil {
		s.warnIf(strict, fmt.Errorf("%w: nil tile", ErrTileNotResolved))
		return false
	}
	if !list.AddTile(tile) {
		s.warnIf(strict, fmt.Errorf("%w: %q in list %q", ErrDuplicateTile, tile.TileName(), list.Name))
		return false
	}
	return true
}

// RemoveAffectedTile drops tile from the list called listName.
func (s *Store) RemoveAffectedTile(tile tiles.Tile, listName string, strict bool) bool {
	list := s.ResolveByName(listName, strict)
	if list == nil {
		return false
	}
	if !list.RemoveTile(tile) {
		name := ""
		if tile != nil {
			name = tile.TileName()
		}
		s.warnIf(strict, fmt.Errorf("%w: %q is not in list %q", ErrTileNotResolved, name, list.Name))
		return false
	}
	return true
}
