package store

import (
	"github.com/milk9111/tileprops/tiles"
	"github.com/milk9111/tileprops/variable"
)

// The Tile and List variants resolve their target list first. A failed
// resolution short-circuits with the resolver's warning policy.

func (s *Store) GetTileProperty(tile tiles.Tile, name string, kind variable.Kind, strict bool) any {
	list := s.ResolveByTile(tile, strict)
	if list == nil {
		return variable.DefaultFor(kind)
	}
	return s.GetProperty(list, name, kind, strict)
}

func (s *Store) GetListProperty(listName, name string, kind variable.Kind, strict bool) any {
	list := s.ResolveByName(listName, strict)
	if list == nil {
		return variable.DefaultFor(kind)
	}
	return s.GetProperty(list, name, kind, strict)
}

func (s *Store) SetTileProperty(tile tiles.Tile, name string, value any, strict bool) bool {
	list := s.ResolveByTile(tile, strict)
	if list == nil {
		return false
	}
	return s.SetProperty(list, name, value, strict)
}

func (s *Store) SetListProperty(listName, name string, value any, strict bool) bool {
	list := s.ResolveByName(listName, strict)
	if list == nil {
		return false
	}
	return s.SetProperty(list, name, value, strict)
}

func (s *Store) AddTileProperty(tile tiles.Tile, name string, value any, strict bool) bool {
	list := s.ResolveByTile(tile, strict)
	if list == nil {
		return false
	}
	return s.AddProperty(list, name, value, strict)
}

func (s *Store) AddListProperty(listName, name string, value any, strict bool) bool {
	list := s.ResolveByName(listName, strict)
	if list == nil {
		return false
	}
	return s.AddProperty(list, name, value, strict)
}

func (s *Store) RemoveTileProperty(tile tiles.Tile, name string, strict bool) bool {
	list := s.ResolveByTile(tile, strict)
	if list == nil {
		return false
	}
	return s.RemoveProperty(list, name, strict)
}

func (s *Store) RemoveListProperty(listName, name string, strict bool) bool {
	list := s.ResolveByName(listName, strict)
	if list == nil {
		return false
	}
	return s.RemoveProperty(list, name, strict)
}

func (s *Store) ClearTileProperties(tile tiles.Tile, strict bool) bool {
	list := s.ResolveByTile(tile, strict)
	if list == nil {
		return false
	}
	s.ClearProperties(list)
	return true
}

func (s *Store) ClearListProperties(listName string, strict bool) bool {
	list := s.ResolveByName(listName, strict)
	if list == nil {
		return false
	}
	s.ClearProperties(list)
	return true
}
