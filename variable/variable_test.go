package variable

import (
	"errors"
	"image"
	"image/color"
	"testing"

	"github.com/jakecoffman/cp"
)

func TestVariableRoundTrip(t *testing.T) {
	cases := []struct {
		name  string
		kind  Kind
		value any
	}{
		{"integer", KindInteger, 42},
		{"float", KindFloat, 3.5},
		{"boolean", KindBoolean, true},
		{"character", KindCharacter, 'x'},
		{"string", KindString, "mud"},
		{"vector2", KindVector2, cp.Vector{X: 1.5, Y: -2}},
		{"vector3", KindVector3, Vector3{X: 1, Y: 2, Z: 3}},
		{"vector2int", KindVector2Int, image.Point{X: 4, Y: 5}},
		{"vector3int", KindVector3Int, Vector3Int{X: 1, Y: 2, Z: 3}},
		{"vector4", KindVector4, Vector4{X: 1, Y: 2, Z: 3, W: 4}},
		{"color", KindColor, color.NRGBA{R: 10, G: 20, B: 30, A: 40}},
		{"rect", KindRect, Rect{X: 1, Y: 2, Width: 3, Height: 4}},
		{"rectint", KindRectInt, image.Rect(1, 2, 3, 4)},
		{"bounds", KindBounds, Bounds{Center: Vector3{X: 1}, Size: Vector3{X: 2, Y: 2, Z: 2}}},
		{"boundsint", KindBoundsInt, BoundsInt{Position: Vector3Int{X: 1}, Size: Vector3Int{X: 2, Y: 2, Z: 2}}},
		{"quaternion", KindQuaternion, Quaternion{W: 1}},
		{"audio", KindAudioClip, AudioClipRef("sfx/step.wav")},
		{"texture", KindTexture, TextureRef("tiles/grass.png")},
		{"material", KindMaterial, MaterialRef("mat/ice")},
		{"physics_material", KindPhysicsMaterial, PhysicsMaterialRef("phys/ice")},
		{"particles", KindParticleSystem, ParticleSystemRef("fx/dust")},
		{"game_object", KindGameObject, GameObjectRef("prefabs/chest")},
	}

	if len(cases) != len(Kinds()) {
		t.Fatalf("expected a case per kind: have %d cases, %d kinds", len(cases), len(Kinds()))
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			v, err := New("prop", c.kind)
			if err != nil {
				t.Fatalf("New: %v", err)
			}
			if v.Get() != v.DefaultValue() {
				t.Fatalf("new variable should hold default %v, got %v", v.DefaultValue(), v.Get())
			}
			if err := v.Set(c.value); err != nil {
				t.Fatalf("Set(%v): %v", c.value, err)
			}
			if v.Get() != c.value {
				t.Fatalf("expected %v, got %v", c.value, v.Get())
			}
			if v.TypeName() != c.kind.String() {
				t.Fatalf("expected type name %q, got %q", c.kind.String(), v.TypeName())
			}
		})
	}
}

func TestVariableSetMismatchKeepsValue(t *testing.T) {
	v, err := New("speed", KindFloat)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	if err := v.Set(2.25); err != nil {
		t.Fatalf("Set: %v", err)
	}

	err = v.Set(cp.Vector{X: 1})
	if !errors.Is(err, ErrTypeMismatch) {
		t.Fatalf("expected ErrTypeMismatch, got %v", err)
	}
	if v.Get() != 2.25 {
		t.Fatalf("failed Set must not change value, got %v", v.Get())
	}
}

func TestVariableDefaults(t *testing.T) {
	if got := DefaultFor(KindColor); got != (color.NRGBA{A: 0xff}) {
		t.Fatalf("color default should be opaque black, got %v", got)
	}
	if got := DefaultFor(KindQuaternion); got != (Quaternion{}) {
		t.Fatalf("quaternion default should be zero, got %v", got)
	}
	if got := DefaultFor(KindInvalid); got != nil {
		t.Fatalf("invalid kind default should be nil, got %v", got)
	}
	if _, err := New("x", KindInvalid); !errors.Is(err, ErrUnsupportedKind) {
		t.Fatalf("expected ErrUnsupportedKind, got %v", err)
	}
}

func TestVariableCloneIsIndependent(t *testing.T) {
	v, _ := FromValue("hp", 10)
	c := v.Clone()
	if err := c.Set(99); err != nil {
		t.Fatalf("Set: %v", err)
	}
	c.SetName("renamed")
	if v.Get() != 10 || v.Name() != "hp" {
		t.Fatalf("original changed: %v", v)
	}
}

func TestVariableReset(t *testing.T) {
	v, _ := FromValue("tint", color.NRGBA{R: 1, G: 2, B: 3, A: 4})
	v.Reset()
	if v.Get() != (color.NRGBA{A: 0xff}) {
		t.Fatalf("expected default after reset, got %v", v.Get())
	}
}

func TestAs(t *testing.T) {
	v, _ := FromValue("offset", cp.Vector{X: 1, Y: 2})
	got, ok := As[cp.Vector](v)
	if !ok || got.Y != 2 {
		t.Fatalf("expected vector, got %v ok=%v", got, ok)
	}
	if _, ok := As[float64](v); ok {
		t.Fatalf("As with wrong type should fail")
	}
	if _, ok := As[int](nil); ok {
		t.Fatalf("As on nil should fail")
	}
}
