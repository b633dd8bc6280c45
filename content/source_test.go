package content

import (
	"context"
	"errors"
	"testing"

	"github.com/milk9111/tileprops/proplist"
)

func TestTagged(t *testing.T) {
	untagged := proplist.New("a")
	tagged := proplist.New("b", "Hazard")

	cases := []struct {
		name string
		list *proplist.List
		tag  string
		want bool
	}{
		{"untagged_default", untagged, DefaultTag, true},
		{"untagged_other", untagged, "Hazard", false},
		{"tagged_match", tagged, "Hazard", true},
		{"tagged_default", tagged, DefaultTag, false},
		{"nil", nil, DefaultTag, false},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			if got := Tagged(c.list, c.tag); got != c.want {
				t.Fatalf("expected %v, got %v", c.want, got)
			}
		})
	}
}

func TestStatic(t *testing.T) {
	src := Static{proplist.New("a"), proplist.New("b", "Hazard"), proplist.New("c", DefaultTag, "Hazard")}

	got, err := src.FetchAllTagged(context.Background(), "Hazard")
	if err != nil {
		t.Fatalf("FetchAllTagged: %v", err)
	}
	if len(got) != 2 || got[0].Name != "b" || got[1].Name != "c" {
		t.Fatalf("unexpected lists %v", got)
	}

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	if _, err := src.FetchAllTagged(ctx, DefaultTag); !errors.Is(err, context.Canceled) {
		t.Fatalf("expected context.Canceled, got %v", err)
	}
}

func TestSourceFunc(t *testing.T) {
	var gotTag string
	src := SourceFunc(func(ctx context.Context, tag string) ([]*proplist.List, error) {
		gotTag = tag
		return []*proplist.List{proplist.New("x")}, nil
	})
	lists, err := src.FetchAllTagged(context.Background(), "T")
	if err != nil || len(lists) != 1 || gotTag != "T" {
		t.Fatalf("unexpected result %v %v tag=%q", lists, err, gotTag)
	}
}
