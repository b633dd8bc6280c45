package proplist

import (
	"slices"

	"github.com/milk9111/tileprops/tiles"
	"github.com/milk9111/tileprops/variable"
)

// List is an authored bundle mapping a set of tiles to an ordered set of named
// variables. Lookups are by name; the first variable with a name wins.
type List struct {
	Name          string
	Tags          []string
	AffectedTiles []tiles.Tile
	Properties    []*variable.Variable
}

func New(name string, tags ...string) *List {
	return &List{Name: name, Tags: tags}
}

// Clone returns a private copy of l. Variables are copied; tiles are
// identities and are shared.
func (l *List) Clone() *List {
	if l == nil {
		return nil
	}
	out := &List{
		Name:          l.Name,
		Tags:          slices.Clone(l.Tags),
		AffectedTiles: slices.Clone(l.AffectedTiles),
		Properties:    make([]*variable.Variable, 0, len(l.Properties)),
	}
	for _, v := range l.Properties {
		if v == nil {
			continue
		}
		out.Properties = append(out.Properties, v.Clone())
	}
	return out
}

func (l *List) Len() int {
	if l == nil {
		return 0
	}
	return len(l.Properties)
}

// Index returns the position of the first variable called name, or -1.
func (l *List) Index(name string) int {
	if l == nil {
		return -1
	}
	return slices.IndexFunc(l.Properties, func(v *variable.Variable) bool {
		return v != nil && v.Name() == name
	})
}

// Find returns the first variable called name.
func (l *List) Find(name string) *variable.Variable {
	i := l.Index(name)
	if i < 0 {
		return nil
	}
	return l.Properties[i]
}

func (l *List) Has(name string) bool {
	return l.Index(name) >= 0
}

func (l *List) Append(v *variable.Variable) {
	if v == nil {
		return
	}
	l.Properties = append(l.Properties, v)
}

// Remove deletes the first variable called name.
func (l *List) Remove(name string) bool {
	i := l.Index(name)
	if i < 0 {
		return false
	}
	l.Properties = slices.Delete(l.Properties, i, i+1)
	return true
}

func (l *List) Clear() {
	if l == nil {
		return
	}
	l.Properties = nil
}

func (l *List) HasTag(tag string) bool {
	return l != nil && slices.Contains(l.Tags, tag)
}

// ContainsTile reports whether t is one of the affected tiles by identity.
func (l *List) ContainsTile(t tiles.Tile) bool {
	if l == nil {
		return false
	}
	return slices.ContainsFunc(l.AffectedTiles, func(other tiles.Tile) bool {
		return tiles.Same(other, t)
	})
}

// ContainsTileName reports whether an affected tile carries t's name.
func (l *List) ContainsTileName(t tiles.Tile) bool {
	if l == nil {
		return false
	}
	return slices.ContainsFunc(l.AffectedTiles, func(other tiles.Tile) bool {
		return tiles.SameName(other, t)
	})
}

// AddTile appends t unless it is already affected by identity.
func (l *List) AddTile(t tiles.Tile) bool {
	if t == nil || l.ContainsTile(t) {
		return false
	}
	l.AffectedTiles = append(l.AffectedTiles, t)
	return true
}

// RemoveTile removes t, matching by identity first and by name second.
func (l *List) RemoveTile(t tiles.Tile) bool {
	if l == nil || t == nil {
		return false
	}
	i := slices.IndexFunc(l.AffectedTiles, func(other tiles.Tile) bool {
		return tiles.Same(other, t)
	})
	if i < 0 {
		i = slices.IndexFunc(l.AffectedTiles, func(other tiles.Tile) bool {
			return tiles.SameName(other, t)
		})
	}
	if i < 0 {
		return false
	}
	l.AffectedTiles = slices.Delete(l.AffectedTiles, i, i+1)
	return true
}
