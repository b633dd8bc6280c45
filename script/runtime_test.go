package script

import (
	"bytes"
	"context"
	"image/color"
	"log"
	"strings"
	"testing"

	"github.com/jakecoffman/cp"

	"github.com/milk9111/tileprops/content"
	"github.com/milk9111/tileprops/proplist"
	"github.com/milk9111/tileprops/store"
	"github.com/milk9111/tileprops/tiles"
	"github.com/milk9111/tileprops/variable"
)

func readyStore(t *testing.T) (*store.Store, *tiles.Registry, *bytes.Buffer) {
	t.Helper()
	reg := tiles.NewRegistry()
	ice := proplist.New("IceTiles")
	ice.AddTile(reg.Intern("ice"))
	for name, value := range map[string]any{
		"Speed": 1.6,
		"Slide": cp.Vector{X: 1, Y: 0},
		"Sound": variable.AudioClipRef("ice_step"),
		"Tint":  color.NRGBA{R: 10, G: 20, B: 30, A: 255},
	} {
		v, err := variable.FromValue(name, value)
		if err != nil {
			t.Fatalf("FromValue(%q): %v", name, err)
		}
		ice.Append(v)
	}

	var logs bytes.Buffer
	s := store.New(content.Static{ice}, store.Options{Logger: log.New(&logs, "", 0)})
	<-s.Load(context.Background())
	logs.Reset()
	return s, reg, &logs
}

func run(t *testing.T, s *store.Store, reg *tiles.Registry, src string) *Runtime {
	t.Helper()
	rt, err := Compile([]byte(src), s, reg)
	if err != nil {
		t.Fatalf("Compile: %v", err)
	}
	if err := rt.Run(context.Background()); err != nil {
		t.Fatalf("Run: %v", err)
	}
	return rt
}

func TestScriptReadsProperties(t *testing.T) {
	s, reg, logs := readyStore(t)
	rt := run(t, s, reg, `
ready := props.ready()
speed := props.get("ice", "Speed")
slide_x := props.get_list("IceTiles", "Slide").x
sound := props.get("ice", "Sound")
missing := props.get("ice", "Nope")
tint := props.get("ice", "Tint")
`)

	tests := []struct {
		name string
		want any
	}{
		{name: "ready", want: true},
		{name: "speed", want: 1.6},
		{name: "slide_x", want: 1.0},
		{name: "sound", want: "ice_step"},
		{name: "missing", want: nil},
		{name: "tint", want: "#0a141e"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := rt.Get(tt.name); got != tt.want {
				t.Fatalf("expected %v (%T), got %v (%T)", tt.want, tt.want, got, got)
			}
		})
	}
	if logs.Len() != 0 {
		t.Fatalf("lenient reads should be silent, got %q", logs.String())
	}
}

func TestScriptMutatesStore(t *testing.T) {
	s, reg, logs := readyStore(t)
	run(t, s, reg, `
props.set("ice", "Speed", 2)
props.set_list("IceTiles", "Slide", {x: 0, y: -1})
props.add_list("IceTiles", "Cold", true)
props.add_list("IceTiles", "Cold", false, true)
props.remove_list("IceTiles", "Sound")
props.set_list("IceTiles", "Ghost", 1, true)
`)

	if got := store.GetListAs[float64](s, "IceTiles", "Speed", true); got != 2.0 {
		t.Fatalf("expected speed 2, got %v", got)
	}
	if got := store.GetListAs[cp.Vector](s, "IceTiles", "Slide", true); got != (cp.Vector{X: 0, Y: -1}) {
		t.Fatalf("expected slide (0,-1), got %v", got)
	}
	if got := store.GetListAs[bool](s, "IceTiles", "Cold", true); !got {
		t.Fatalf("expected Cold to keep its first value")
	}
	if s.HasProperty(s.ResolveByName("IceTiles", true), "Sound") {
		t.Fatalf("expected Sound removed")
	}
	out := logs.String()
	if strings.Count(out, "tileprops: warning:") != 2 {
		t.Fatalf("expected duplicate and missing warnings, got %q", out)
	}
	if !strings.Contains(out, store.ErrDuplicateProperty.Error()) || !strings.Contains(out, store.ErrPropertyNotFound.Error()) {
		t.Fatalf("unexpected warnings %q", out)
	}
}

func TestScriptTileMembership(t *testing.T) {
	s, reg, _ := readyStore(t)
	rt := run(t, s, reg, `
before := props.has_tile("snow")
added := props.add_tile("snow", "IceTiles")
after := props.has_tile("snow")
has_ice := props.has_list("Ice")
`)
	for name, want := range map[string]any{"before": false, "added": true, "after": true, "has_ice": true} {
		if got := rt.Get(name); got != want {
			t.Fatalf("%s: expected %v, got %v", name, want, got)
		}
	}
}

func TestScriptArgumentErrors(t *testing.T) {
	s, reg, _ := readyStore(t)
	rt, err := Compile([]byte(`props.get("ice")`), s, reg)
	if err != nil {
		t.Fatalf("Compile: %v", err)
	}
	if err := rt.Run(context.Background()); err == nil {
		t.Fatalf("expected wrong argument count error")
	}
	if _, err := Compile([]byte(`x := `), s, reg); err == nil {
		t.Fatalf("expected compile error")
	}
	if _, err := Compile([]byte(`x := 1`), nil, reg); err == nil {
		t.Fatalf("expected nil store error")
	}
}
