package sqlite

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/milk9111/tileprops/content"
	"github.com/milk9111/tileprops/lists"
	"github.com/milk9111/tileprops/proplist"
	"github.com/milk9111/tileprops/tiles"
	"github.com/milk9111/tileprops/variable"
)

func openTestSource(t *testing.T, reg *tiles.Registry) *Source {
	t.Helper()
	src, err := Open(context.Background(), filepath.Join(t.TempDir(), "lists.db"), reg)
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	t.Cleanup(func() { _ = src.Close() })
	return src
}

func TestExportAndFetch(t *testing.T) {
	ctx := context.Background()
	embedded, err := content.NewFS("", lists.FS, nil).FetchAllTagged(ctx, content.DefaultTag)
	if err != nil {
		t.Fatalf("read embedded lists: %v", err)
	}

	reg := tiles.NewRegistry()
	src := openTestSource(t, reg)
	if err := src.PutAll(ctx, embedded); err != nil {
		t.Fatalf("PutAll: %v", err)
	}

	got, err := src.FetchAllTagged(ctx, content.DefaultTag)
	if err != nil {
		t.Fatalf("FetchAllTagged: %v", err)
	}
	if len(got) != len(embedded) {
		t.Fatalf("expected %d lists, got %d", len(embedded), len(got))
	}
	for i := range got {
		if got[i].Name != embedded[i].Name {
			t.Fatalf("order changed at %d: %s vs %s", i, got[i].Name, embedded[i].Name)
		}
		if got[i].Len() != embedded[i].Len() {
			t.Fatalf("%s: property count changed", got[i].Name)
		}
	}
	if _, ok := reg.Lookup("grass"); !ok {
		t.Fatalf("fetched tiles should be interned")
	}

	slippery, err := src.FetchAllTagged(ctx, "Slippery")
	if err != nil {
		t.Fatalf("FetchAllTagged: %v", err)
	}
	if len(slippery) != 1 || slippery[0].Name != "IceTiles" {
		t.Fatalf("unexpected slippery lists %v", slippery)
	}
}

func TestPutReplacesAndDelete(t *testing.T) {
	ctx := context.Background()
	src := openTestSource(t, nil)

	l := proplist.New("Grass", "A")
	v, _ := variable.FromValue("Speed", 1.0)
	l.Append(v)
	if err := src.PutAll(ctx, []*proplist.List{l}); err != nil {
		t.Fatalf("PutAll: %v", err)
	}

	l.Tags = []string{"B"}
	_ = l.Find("Speed").Set(2.0)
	if err := src.PutAll(ctx, []*proplist.List{l}); err != nil {
		t.Fatalf("PutAll replace: %v", err)
	}

	if got, _ := src.FetchAllTagged(ctx, "A"); len(got) != 0 {
		t.Fatalf("old tag should be gone, got %v", got)
	}
	got, err := src.FetchAllTagged(ctx, "B")
	if err != nil || len(got) != 1 {
		t.Fatalf("expected one list under B, got %v err=%v", got, err)
	}
	if got[0].Find("Speed").Get() != 2.0 {
		t.Fatalf("body should be replaced, got %v", got[0].Find("Speed").Get())
	}

	if err := src.Delete(ctx, "Grass"); err != nil {
		t.Fatalf("Delete: %v", err)
	}
	if got, _ := src.FetchAllTagged(ctx, "B"); len(got) != 0 {
		t.Fatalf("deleted list still served: %v", got)
	}
}

func TestPutRejectsUnnamed(t *testing.T) {
	src := openTestSource(t, nil)
	if err := src.PutAll(context.Background(), []*proplist.List{proplist.New("")}); err == nil {
		t.Fatalf("expected error for unnamed list")
	}
}

func TestOpenRequiresPath(t *testing.T) {
	if _, err := Open(context.Background(), " ", nil); err == nil {
		t.Fatalf("expected error for empty path")
	}
}
