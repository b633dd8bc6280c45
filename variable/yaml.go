package variable

import (
	"fmt"
	"image"
	"image/color"
	"strconv"
	"strings"

	"github.com/jakecoffman/cp"
	"gopkg.in/yaml.v3"
)

type variableDoc struct {
	Name  string    `yaml:"name"`
	Type  string    `yaml:"type"`
	Value yaml.Node `yaml:"value"`
}

type vector2Doc struct {
	X float64 `yaml:"x"`
	Y float64 `yaml:"y"`
}

type pointDoc struct {
	X int `yaml:"x"`
	Y int `yaml:"y"`
}

type rectIntDoc struct {
	X      int `yaml:"x"`
	Y      int `yaml:"y"`
	Width  int `yaml:"width"`
	Height int `yaml:"height"`
}

// MarshalYAML writes the variable as a {name, type, value} mapping.
func (v *Variable) MarshalYAML() (any, error) {
	return struct {
		Name  string `yaml:"name"`
		Type  string `yaml:"type"`
		Value any    `yaml:"value"`
	}{
		Name:  v.name,
		Type:  v.kind.String(),
		Value: encodeValue(v.value),
	}, nil
}

// UnmarshalYAML reads a {name, type, value} mapping. A missing value leaves
// the kind's default in place.
func (v *Variable) UnmarshalYAML(node *yaml.Node) error {
	var doc variableDoc
	if err := node.Decode(&doc); err != nil {
		return err
	}
	kind, err := ParseKind(doc.Type)
	if err != nil {
		return fmt.Errorf("variable %q: %w", doc.Name, err)
	}
	out := Variable{name: doc.Name, kind: kind, value: zeroValues[kind]}
	if doc.Value.Kind != 0 && doc.Value.Tag != "!!null" {
		value, err := decodeValue(kind, &doc.Value)
		if err != nil {
			return fmt.Errorf("variable %q: %w", doc.Name, err)
		}
		if err := out.Set(value); err != nil {
			return err
		}
	}
	*v = out
	return nil
}

func decodeValue(kind Kind, node *yaml.Node) (any, error) {
	switch kind {
	case KindInteger:
		return decodeAs[int](node)
	case KindFloat:
		return decodeAs[float64](node)
	case KindBoolean:
		return decodeAs[bool](node)
	case KindCharacter:
		s, err := decodeAs[string](node)
		if err != nil {
			return nil, err
		}
		r, ok := toRune(s)
		if !ok {
			return nil, fmt.Errorf("%w: character value %q must be a single rune", ErrTypeMismatch, s)
		}
		return r, nil
	case KindString:
		return decodeAs[string](node)
	case KindVector2:
		d, err := decodeAs[vector2Doc](node)
		return cp.Vector{X: d.X, Y: d.Y}, err
	case KindVector3:
		return decodeAs[Vector3](node)
	case KindVector2Int:
		d, err := decodeAs[pointDoc](node)
		return image.Point{X: d.X, Y: d.Y}, err
	case KindVector3Int:
		return decodeAs[Vector3Int](node)
	case KindVector4:
		return decodeAs[Vector4](node)
	case KindColor:
		s, err := decodeAs[string](node)
		if err != nil {
			return nil, err
		}
		return parseHexColor(s)
	case KindRect:
		return decodeAs[Rect](node)
	case KindRectInt:
		d, err := decodeAs[rectIntDoc](node)
		return rectFromSize(d.X, d.Y, d.Width, d.Height), err
	case KindBounds:
		return decodeAs[Bounds](node)
	case KindBoundsInt:
		return decodeAs[BoundsInt](node)
	case KindQuaternion:
		return decodeAs[Quaternion](node)
	}
	if kind.IsReference() {
		return decodeAs[string](node)
	}
	return nil, fmt.Errorf("%w: %s", ErrUnsupportedKind, kind)
}

func decodeAs[T any](node *yaml.Node) (T, error) {
	var out T
	err := node.Decode(&out)
	return out, err
}

// EncodeValue returns value in the form it is authored in: hex strings for
// colors, lowercase-keyed mappings for vectors and rects, plain strings for
// characters and references.
func EncodeValue(value any) any {
	return encodeValue(value)
}

func encodeValue(value any) any {
	switch v := value.(type) {
	case cp.Vector:
		return vector2Doc{X: v.X, Y: v.Y}
	case image.Point:
		return pointDoc{X: v.X, Y: v.Y}
	case image.Rectangle:
		return rectIntDoc{X: v.Min.X, Y: v.Min.Y, Width: v.Dx(), Height: v.Dy()}
	case color.NRGBA:
		return formatHexColor(v)
	case rune:
		if v == 0 {
			return ""
		}
		return string(v)
	case AudioClipRef:
		return string(v)
	case TextureRef:
		return string(v)
	case MaterialRef:
		return string(v)
	case PhysicsMaterialRef:
		return string(v)
	case ParticleSystemRef:
		return string(v)
	case GameObjectRef:
		return string(v)
	}
	return value
}

// parseHexColor accepts #rrggbb and #rrggbbaa, with or without the leading #.
func parseHexColor(value string) (color.NRGBA, error) {
	s := strings.TrimPrefix(strings.TrimSpace(value), "#")

	if len(s) != 6 && len(s) != 8 {
		return color.NRGBA{}, fmt.Errorf("invalid color format: %s", value)
	}

	parse := func(start int) (uint8, error) {
		v, err := strconv.ParseUint(s[start:start+2], 16, 8)
		return uint8(v), err
	}

	r, err := parse(0)
	if err != nil {
		return color.NRGBA{}, err
	}
	g, err := parse(2)
	if err != nil {
		return color.NRGBA{}, err
	}
	b, err := parse(4)
	if err != nil {
		return color.NRGBA{}, err
	}

	a := uint8(255)
	if len(s) == 8 {
		a, err = parse(6)
		if err != nil {
			return color.NRGBA{}, err
		}
	}

	return color.NRGBA{R: r, G: g, B: b, A: a}, nil
}

func formatHexColor(c color.NRGBA) string {
	if c.A == 0xff {
		return fmt.Sprintf("#%02x%02x%02x", c.R, c.G, c.B)
	}
	return fmt.Sprintf("#%02x%02x%02x%02x", c.R, c.G, c.B, c.A)
}
