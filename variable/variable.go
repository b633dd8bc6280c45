package variable

import (
	"errors"
	"fmt"
	"image"
	"image/color"

	"github.com/jakecoffman/cp"
)

var (
	ErrTypeMismatch    = errors.New("variable: type mismatch")
	ErrUnsupportedKind = errors.New("variable: unsupported kind")
)

// zeroValues is the factory table used to materialize new variables. Every
// entry is a value type, so handing out the same interface value is safe.
var zeroValues = [kindCount]any{
	KindInteger:         0,
	KindFloat:           0.0,
	KindBoolean:         false,
	KindCharacter:       rune(0),
	KindString:          "",
	KindVector2:         cp.Vector{},
	KindVector3:         Vector3{},
	KindVector2Int:      image.Point{},
	KindVector3Int:      Vector3Int{},
	KindVector4:         Vector4{},
	KindColor:           color.NRGBA{A: 0xff},
	KindRect:            Rect{},
	KindRectInt:         image.Rectangle{},
	KindBounds:          Bounds{},
	KindBoundsInt:       BoundsInt{},
	KindQuaternion:      Quaternion{},
	KindAudioClip:       AudioClipRef(""),
	KindTexture:         TextureRef(""),
	KindMaterial:        MaterialRef(""),
	KindPhysicsMaterial: PhysicsMaterialRef(""),
	KindParticleSystem:  ParticleSystemRef(""),
	KindGameObject:      GameObjectRef(""),
}

// DefaultFor returns the zero value of kind, or nil for an invalid kind.
func DefaultFor(kind Kind) any {
	if !kind.Valid() {
		return nil
	}
	return zeroValues[kind]
}

// Variable is a single named, typed property value. The dynamic type of the
// held value always matches Kind.
type Variable struct {
	name  string
	kind  Kind
	value any
}

// New returns a variable of the given kind holding the kind's default value.
func New(name string, kind Kind) (*Variable, error) {
	if !kind.Valid() {
		return nil, fmt.Errorf("%w: %s", ErrUnsupportedKind, kind)
	}
	return &Variable{name: name, kind: kind, value: zeroValues[kind]}, nil
}

// FromValue builds a variable whose kind is derived from the Go type of value.
func FromValue(name string, value any) (*Variable, error) {
	kind, err := ForValueKind(value)
	if err != nil {
		return nil, err
	}
	v, err := New(name, kind)
	if err != nil {
		return nil, err
	}
	if err := v.Set(value); err != nil {
		return nil, err
	}
	return v, nil
}

func (v *Variable) Name() string {
	return v.name
}

func (v *Variable) SetName(name string) {
	v.name = name
}

func (v *Variable) Kind() Kind {
	return v.kind
}

// TypeName returns the human readable label of the variable's kind.
func (v *Variable) TypeName() string {
	return v.kind.String()
}

// DefaultValue returns the zero value of the variable's kind.
func (v *Variable) DefaultValue() any {
	return DefaultFor(v.kind)
}

// Get returns the held value. Its dynamic type is the native type of Kind.
func (v *Variable) Get() any {
	return v.value
}

// Set coerces value to the variable's kind and stores it. On failure the held
// value is left untouched and the returned error wraps ErrTypeMismatch.
func (v *Variable) Set(value any) error {
	out, ok := coerce(v.kind, value)
	if !ok {
		return fmt.Errorf("%w: cannot set %s %q from %T", ErrTypeMismatch, v.kind, v.name, value)
	}
	v.value = out
	return nil
}

// Reset restores the default value of the variable's kind.
func (v *Variable) Reset() {
	v.value = zeroValues[v.kind]
}

// Clone returns an independent copy of v.
func (v *Variable) Clone() *Variable {
	if v == nil {
		return nil
	}
	out := *v
	return &out
}

func (v *Variable) String() string {
	return fmt.Sprintf("%s %s = %v", v.kind, v.name, v.value)
}

// As returns the held value as T when the variable's native type is T.
func As[T any](v *Variable) (T, bool) {
	var zero T
	if v == nil {
		return zero, false
	}
	out, ok := v.value.(T)
	return out, ok
}
