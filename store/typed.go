package store

import (
	"fmt"

	"github.com/milk9111/tileprops/proplist"
	"github.com/milk9111/tileprops/tiles"
	"github.com/milk9111/tileprops/variable"
)

// GetAs reads a property as T, which must be the native type of a variable
// kind (float64 for Float, int for Integer, cp.Vector for Vector2, ...).
func GetAs[T any](s *Store, list *proplist.List, name string, strict bool) T {
	kind, ok := kindFor[T](s, strict)
	if !ok {
		var zero T
		return zero
	}
	return cast[T](s.GetProperty(list, name, kind, strict))
}

func GetTileAs[T any](s *Store, tile tiles.Tile, name string, strict bool) T {
	kind, ok := kindFor[T](s, strict)
	if !ok {
		var zero T
		return zero
	}
	return cast[T](s.GetTileProperty(tile, name, kind, strict))
}

func GetListAs[T any](s *Store, listName, name string, strict bool) T {
	kind, ok := kindFor[T](s, strict)
	if !ok {
		var zero T
		return zero
	}
	return cast[T](s.GetListProperty(listName, name, kind, strict))
}

// kindFor returns the kind whose native type is T. Types that only convert
// to a kind, such as float32 or color.RGBA, are rejected.
func kindFor[T any](s *Store, strict bool) (variable.Kind, bool) {
	kind, err := variable.KindOf[T]()
	if err != nil {
		s.warnIf(strict, err)
		return variable.KindInvalid, false
	}
	if _, ok := variable.DefaultFor(kind).(T); !ok {
		var zero T
		s.warnIf(strict, fmt.Errorf("%w: %T is not the native type of %s, use %T",
			variable.ErrTypeMismatch, zero, kind, variable.DefaultFor(kind)))
		return variable.KindInvalid, false
	}
	return kind, true
}

func cast[T any](value any) T {
	out, _ := value.(T)
	return out
}
