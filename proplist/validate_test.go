package proplist

import (
	"testing"

	"github.com/milk9111/tileprops/tiles"
)

func TestValidate(t *testing.T) {
	reg := tiles.NewRegistry()
	grass := reg.Intern("grass")

	a := New("Grass")
	a.AddTile(grass)
	a.Append(mustVar(t, "Speed", 1.0))
	a.Append(mustVar(t, "Speed", 2.0))

	b := New("grass")
	b.AddTile(&tiles.Ref{Name: "grass"})
	b.AddTile(reg.Intern("mud"))
	b.AffectedTiles = append(b.AffectedTiles, reg.Intern("mud"))
	b.Append(mustVar(t, "", 1))

	c := New("")

	issues := Validate([]*List{a, b, nil, c})

	want := map[string]int{
		"duplicate_property":  1,
		"duplicate_list_name": 1,
		"shared_tile":         1,
		"duplicate_tile":      1,
		"unnamed_property":    1,
		"unnamed_list":        1,
	}
	got := map[string]int{}
	for _, issue := range issues {
		got[issue.Code]++
		if issue.String() == "" {
			t.Fatalf("issue should format")
		}
	}
	for code, n := range want {
		if got[code] != n {
			t.Fatalf("expected %d %s issues, got %d (%v)", n, code, got[code], issues)
		}
	}
	if len(issues) != len(want) {
		t.Fatalf("unexpected extra issues: %v", issues)
	}
}

func TestValidateClean(t *testing.T) {
	a := New("Grass")
	a.AddTile(&tiles.Ref{Name: "grass"})
	a.Append(mustVar(t, "Speed", 1.0))
	if issues := Validate([]*List{a}); len(issues) != 0 {
		t.Fatalf("expected no issues, got %v", issues)
	}
}
