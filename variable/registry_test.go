package variable

import (
	"errors"
	"image"
	"image/color"
	"testing"

	"github.com/jakecoffman/cp"
)

func TestForValueKind(t *testing.T) {
	cases := []struct {
		name  string
		value any
		want  Kind
	}{
		{"int", 1, KindInteger},
		{"int64", int64(1), KindInteger},
		{"byte", byte(1), KindInteger},
		{"rune", 'a', KindCharacter},
		{"float32", float32(1), KindFloat},
		{"float64", 1.0, KindFloat},
		{"bool", false, KindBoolean},
		{"string", "s", KindString},
		{"vector2", cp.Vector{}, KindVector2},
		{"point", image.Point{}, KindVector2Int},
		{"rectangle", image.Rectangle{}, KindRectInt},
		{"nrgba", color.NRGBA{}, KindColor},
		{"rgba", color.RGBA{}, KindColor},
		{"gray", color.Gray{}, KindColor},
		{"bounds", Bounds{}, KindBounds},
		{"quaternion", Quaternion{}, KindQuaternion},
		{"particles", ParticleSystemRef(""), KindParticleSystem},
		{"game_object", GameObjectRef(""), KindGameObject},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			got, err := ForValueKind(c.value)
			if err != nil {
				t.Fatalf("ForValueKind: %v", err)
			}
			if got != c.want {
				t.Fatalf("expected %s, got %s", c.want, got)
			}
		})
	}
}

func TestForValueKindUnsupported(t *testing.T) {
	for _, value := range []any{nil, struct{}{}, []int{1}, map[string]any{}, complex(1, 2)} {
		if _, err := ForValueKind(value); !errors.Is(err, ErrUnsupportedKind) {
			t.Fatalf("%T: expected ErrUnsupportedKind, got %v", value, err)
		}
	}
}

func TestFromValue(t *testing.T) {
	v, err := FromValue("tint", color.RGBA{G: 255, A: 255})
	if err != nil {
		t.Fatalf("FromValue: %v", err)
	}
	if v.Kind() != KindColor || v.Get() != (color.NRGBA{G: 255, A: 255}) {
		t.Fatalf("unexpected variable %v", v)
	}

	v, err = FromValue("small", int8(3))
	if err != nil {
		t.Fatalf("FromValue: %v", err)
	}
	if v.Get() != 3 {
		t.Fatalf("int8 should widen to int, got %#v", v.Get())
	}
}

func TestKindOf(t *testing.T) {
	if k, err := KindOf[float64](); err != nil || k != KindFloat {
		t.Fatalf("expected Float, got %s err=%v", k, err)
	}
	if k, err := KindOf[TextureRef](); err != nil || k != KindTexture {
		t.Fatalf("expected Texture, got %s err=%v", k, err)
	}
}

func TestParseKind(t *testing.T) {
	for _, k := range Kinds() {
		got, err := ParseKind(k.String())
		if err != nil || got != k {
			t.Fatalf("ParseKind(%q) = %s, %v", k.String(), got, err)
		}
	}
	if got, err := ParseKind(" vector2int "); err != nil || got != KindVector2Int {
		t.Fatalf("expected case-insensitive match, got %s err=%v", got, err)
	}
	if got, err := ParseKind("bool"); err != nil || got != KindBoolean {
		t.Fatalf("expected alias match, got %s err=%v", got, err)
	}
	if _, err := ParseKind("Sprite"); !errors.Is(err, ErrUnsupportedKind) {
		t.Fatalf("expected ErrUnsupportedKind, got %v", err)
	}
}
