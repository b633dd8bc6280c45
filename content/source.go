// Package content provides the sources a Store bulk-loads property lists from.
package content

import (
	"context"

	"github.com/milk9111/tileprops/proplist"
)

// DefaultTag identifies "all persisted property lists". Lists authored
// without tags carry it implicitly.
const DefaultTag = "TilePropertiesList"

// Source fetches every property list carrying tag. Implementations may block
// and should honor ctx cancellation.
type Source interface {
	FetchAllTagged(ctx context.Context, tag string) ([]*proplist.List, error)
}

// SourceFunc adapts a function to a Source.
type SourceFunc func(ctx context.Context, tag string) ([]*proplist.List, error)

func (f SourceFunc) FetchAllTagged(ctx context.Context, tag string) ([]*proplist.List, error) {
	return f(ctx, tag)
}

// Tagged reports whether l carries tag, treating untagged lists as carrying
// DefaultTag.
func Tagged(l *proplist.List, tag string) bool {
	if l == nil {
		return false
	}
	if len(l.Tags) == 0 {
		return tag == DefaultTag
	}
	return l.HasTag(tag)
}

// Static serves lists held in memory.
type Static []*proplist.List

func (s Static) FetchAllTagged(ctx context.Context, tag string) ([]*proplist.List, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	var out []*proplist.List
	for _, l := range s {
		if Tagged(l, tag) {
			out = append(out, l)
		}
	}
	return out, nil
}
