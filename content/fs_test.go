package content

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"testing/fstest"

	"github.com/milk9111/tileprops/lists"
	"github.com/milk9111/tileprops/tiles"
)

func TestFSReadsEmbeddedFallback(t *testing.T) {
	reg := tiles.NewRegistry()
	src := NewFS(filepath.Join(t.TempDir(), "missing"), lists.FS, reg)

	got, err := src.FetchAllTagged(context.Background(), DefaultTag)
	if err != nil {
		t.Fatalf("FetchAllTagged: %v", err)
	}
	names := make([]string, 0, len(got))
	for _, l := range got {
		names = append(names, l.Name)
	}
	want := "GrassTiles,IceTiles,MudTiles,HazardTiles"
	if strings.Join(names, ",") != want {
		t.Fatalf("expected %s, got %v", want, names)
	}
	if _, ok := reg.Lookup("ice"); !ok {
		t.Fatalf("tiles should be interned through the registry")
	}

	hazards, err := src.FetchAllTagged(context.Background(), "Hazard")
	if err != nil {
		t.Fatalf("FetchAllTagged: %v", err)
	}
	if len(hazards) != 1 || hazards[0].Name != "HazardTiles" {
		t.Fatalf("unexpected hazard lists %v", hazards)
	}
}

func TestFSPrefersDisk(t *testing.T) {
	dir := t.TempDir()
	doc := "tiles: [lava]\nproperties:\n  - name: Damage\n    type: Integer\n    value: 3\n"
	if err := os.WriteFile(filepath.Join(dir, "lava.yml"), []byte(doc), 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}
	if err := os.WriteFile(filepath.Join(dir, "notes.txt"), []byte("ignored"), 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}

	src := NewFS(dir, lists.FS, nil)
	got, err := src.FetchAllTagged(context.Background(), DefaultTag)
	if err != nil {
		t.Fatalf("FetchAllTagged: %v", err)
	}
	if len(got) != 1 {
		t.Fatalf("expected only the disk list, got %d", len(got))
	}
	if got[0].Name != "lava" {
		t.Fatalf("unnamed list should take the file name, got %q", got[0].Name)
	}
}

func TestFSErrors(t *testing.T) {
	if _, err := NewFS("", nil, nil).FetchAllTagged(context.Background(), DefaultTag); err == nil {
		t.Fatalf("expected error without dir or fallback")
	}

	bad := fstest.MapFS{"broken.yaml": {Data: []byte("name: [")}}
	_, err := NewFS("", bad, nil).FetchAllTagged(context.Background(), DefaultTag)
	if err == nil || !strings.Contains(err.Error(), "broken.yaml") {
		t.Fatalf("expected decode error naming the file, got %v", err)
	}

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	if _, err := NewFS("", lists.FS, nil).FetchAllTagged(ctx, DefaultTag); err == nil {
		t.Fatalf("expected cancellation error")
	}
}

func TestIsListFile(t *testing.T) {
	for path, want := range map[string]bool{
		"a.yaml": true, "b.YML": true, "c.json": false, "d": false,
	} {
		if got := IsListFile(path); got != want {
			t.Fatalf("%s: expected %v, got %v", path, want, got)
		}
	}
}
