package tiles

import (
	"fmt"
	"path"
	"sort"
	"sync"
)

// Tile is the identity of a grid tile. Implementations must be comparable;
// pointer types are the usual choice. Only the name and identity are ever
// inspected.
type Tile interface {
	TileName() string
}

// Ref is a tile sourced from a tileset image. It records which tileset file and
// tile index plus tile size are used for a cell.
type Ref struct {
	Name  string `json:"name" yaml:"name"`
	Path  string `json:"path,omitempty" yaml:"path,omitempty"`
	Index int    `json:"index,omitempty" yaml:"index,omitempty"`
	TileW int    `json:"tile_w,omitempty" yaml:"tile_w,omitempty"`
	TileH int    `json:"tile_h,omitempty" yaml:"tile_h,omitempty"`
}

// TileName returns Name, falling back to "<tileset base>:<index>".
func (r *Ref) TileName() string {
	if r == nil {
		return ""
	}
	if r.Name != "" {
		return r.Name
	}
	if r.Path == "" {
		return ""
	}
	return fmt.Sprintf("%s:%d", path.Base(r.Path), r.Index)
}

func (r *Ref) String() string {
	return r.TileName()
}

// Same reports whether a and b are the same tile by identity.
func Same(a, b Tile) bool {
	if a == nil || b == nil {
		return false
	}
	return a == b
}

// SameName reports whether a and b carry the same non-empty name.
func SameName(a, b Tile) bool {
	if a == nil || b == nil {
		return false
	}
	name := a.TileName()
	return name != "" && name == b.TileName()
}

// Registry interns tiles by name so that every loader that goes through the
// same registry shares one identity per tile.
type Registry struct {
	mu     sync.Mutex
	byName map[string]*Ref
}

func NewRegistry() *Registry {
	return &Registry{byName: map[string]*Ref{}}
}

// Intern returns the tile registered under name, creating it if needed.
func (r *Registry) Intern(name string) *Ref {
	return r.Register(&Ref{Name: name})
}

// Register stores ref under its name unless a tile with that name already
// exists, in which case the existing tile is returned.
func (r *Registry) Register(ref *Ref) *Ref {
	if ref == nil {
		return nil
	}
	name := ref.TileName()
	if name == "" {
		return ref
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	if existing, ok := r.byName[name]; ok {
		return existing
	}
	r.byName[name] = ref
	return ref
}

// Lookup returns the tile registered under name.
func (r *Registry) Lookup(name string) (*Ref, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()
	ref, ok := r.byName[name]
	return ref, ok
}

// Names returns the registered names in sorted order.
func (r *Registry) Names() []string {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]string, 0, len(r.byName))
	for name := range r.byName {
		out = append(out, name)
	}
	sort.Strings(out)
	return out
}

func (r *Registry) Len() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.byName)
}
