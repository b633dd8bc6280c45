package variable

import (
	"fmt"
	"image"
	"image/color"
	"math"
	"strconv"
	"strings"
	"unicode/utf8"

	"github.com/jakecoffman/cp"
)

// coerce converts value to the native type of kind, widening numbers and
// vectors where that loses nothing the caller asked for.
func coerce(kind Kind, value any) (any, bool) {
	switch kind {
	case KindInteger:
		if n, ok := toInt(value); ok {
			return n, true
		}
	case KindFloat:
		if f, ok := toFloat(value); ok {
			return f, true
		}
	case KindBoolean:
		if b, ok := toBool(value); ok {
			return b, true
		}
	case KindCharacter:
		if r, ok := toRune(value); ok {
			return r, true
		}
	case KindString:
		if s, ok := toString(value); ok {
			return s, true
		}
	case KindVector2:
		if v, ok := toVector2(value); ok {
			return v, true
		}
	case KindVector3:
		if v, ok := toVector3(value); ok {
			return v, true
		}
	case KindVector2Int:
		if v, ok := toVector2Int(value); ok {
			return v, true
		}
	case KindVector3Int:
		if v, ok := toVector3Int(value); ok {
			return v, true
		}
	case KindVector4:
		if v, ok := toVector4(value); ok {
			return v, true
		}
	case KindColor:
		if c, ok := toColor(value); ok {
			return c, true
		}
	case KindRect:
		if r, ok := toRect(value); ok {
			return r, true
		}
	case KindRectInt:
		if r, ok := toRectInt(value); ok {
			return r, true
		}
	case KindBounds:
		switch b := value.(type) {
		case Bounds:
			return b, true
		case BoundsInt:
			return boundsFromInt(b), true
		}
	case KindBoundsInt:
		if b, ok := value.(BoundsInt); ok {
			return b, true
		}
	case KindQuaternion:
		if q, ok := toQuaternion(value); ok {
			return q, true
		}
	case KindAudioClip:
		return toRef[AudioClipRef](value)
	case KindTexture:
		return toRef[TextureRef](value)
	case KindMaterial:
		return toRef[MaterialRef](value)
	case KindPhysicsMaterial:
		return toRef[PhysicsMaterialRef](value)
	case KindParticleSystem:
		return toRef[ParticleSystemRef](value)
	case KindGameObject:
		return toRef[GameObjectRef](value)
	}
	return nil, false
}

// integerValue unwraps any built-in integer that fits in an int64.
func integerValue(value any) (int64, bool) {
	switch n := value.(type) {
	case int:
		return int64(n), true
	case int8:
		return int64(n), true
	case int16:
		return int64(n), true
	case int32:
		return int64(n), true
	case int64:
		return n, true
	case uint:
		if uint64(n) > math.MaxInt64 {
			return 0, false
		}
		return int64(n), true
	case uint8:
		return int64(n), true
	case uint16:
		return int64(n), true
	case uint32:
		return int64(n), true
	case uint64:
		if n > math.MaxInt64 {
			return 0, false
		}
		return int64(n), true
	}
	return 0, false
}

func floatValue(value any) (float64, bool) {
	switch f := value.(type) {
	case float32:
		return float64(f), true
	case float64:
		return f, true
	}
	return 0, false
}

func fitsInt(n int64) bool {
	return int64(int(n)) == n
}

func floatToInt(f float64) (int, bool) {
	if math.IsNaN(f) || math.IsInf(f, 0) || f != math.Trunc(f) {
		return 0, false
	}
	if f < math.MinInt64 || f >= math.MaxInt64 {
		return 0, false
	}
	n := int64(f)
	if !fitsInt(n) {
		return 0, false
	}
	return int(n), true
}

func toInt(value any) (int, bool) {
	if n, ok := integerValue(value); ok {
		if !fitsInt(n) {
			return 0, false
		}
		return int(n), true
	}
	if f, ok := floatValue(value); ok {
		return floatToInt(f)
	}
	if s, ok := value.(string); ok {
		s = strings.TrimSpace(s)
		if n, err := strconv.ParseInt(s, 10, 64); err == nil && fitsInt(n) {
			return int(n), true
		}
		if f, err := strconv.ParseFloat(s, 64); err == nil {
			return floatToInt(f)
		}
	}
	return 0, false
}

func toFloat(value any) (float64, bool) {
	if f, ok := floatValue(value); ok {
		return f, true
	}
	if n, ok := integerValue(value); ok {
		return float64(n), true
	}
	if n, ok := value.(uint64); ok {
		return float64(n), true
	}
	if s, ok := value.(string); ok {
		if f, err := strconv.ParseFloat(strings.TrimSpace(s), 64); err == nil {
			return f, true
		}
	}
	return 0, false
}

func toBool(value any) (bool, bool) {
	switch b := value.(type) {
	case bool:
		return b, true
	case string:
		if parsed, err := strconv.ParseBool(strings.TrimSpace(b)); err == nil {
			return parsed, true
		}
	}
	return false, false
}

func toRune(value any) (rune, bool) {
	if s, ok := value.(string); ok {
		switch utf8.RuneCountInString(s) {
		case 0:
			return 0, true
		case 1:
			r, _ := utf8.DecodeRuneInString(s)
			return r, r != utf8.RuneError || s == string(utf8.RuneError)
		}
		return 0, false
	}
	if n, ok := integerValue(value); ok {
		if n < 0 || n > utf8.MaxRune || !utf8.ValidRune(rune(n)) {
			return 0, false
		}
		return rune(n), true
	}
	return 0, false
}

func toString(value any) (string, bool) {
	switch s := value.(type) {
	case string:
		return s, true
	case []byte:
		return string(s), true
	case rune:
		return string(s), true
	case bool:
		return strconv.FormatBool(s), true
	case fmt.Stringer:
		return s.String(), true
	}
	if n, ok := integerValue(value); ok {
		return strconv.FormatInt(n, 10), true
	}
	if f, ok := floatValue(value); ok {
		return strconv.FormatFloat(f, 'g', -1, 64), true
	}
	return "", false
}

// mapFloats reads the named keys of a decoded mapping, treating missing keys
// as zero. Every present key must hold a number.
func mapFloats(m map[string]any, keys ...string) ([]float64, bool) {
	if m == nil {
		return nil, false
	}
	out := make([]float64, len(keys))
	for i, key := range keys {
		raw, ok := m[key]
		if !ok {
			continue
		}
		f, ok := toFloat(raw)
		if !ok {
			return nil, false
		}
		out[i] = f
	}
	return out, true
}

func mapInts(m map[string]any, keys ...string) ([]int, bool) {
	fs, ok := mapFloats(m, keys...)
	if !ok {
		return nil, false
	}
	out := make([]int, len(fs))
	for i, f := range fs {
		n, ok := floatToInt(f)
		if !ok {
			return nil, false
		}
		out[i] = n
	}
	return out, true
}

func toVector2(value any) (cp.Vector, bool) {
	switch v := value.(type) {
	case cp.Vector:
		return v, true
	case image.Point:
		return cp.Vector{X: float64(v.X), Y: float64(v.Y)}, true
	case Vector3:
		return cp.Vector{X: v.X, Y: v.Y}, true
	case Vector3Int:
		return cp.Vector{X: float64(v.X), Y: float64(v.Y)}, true
	case Vector4:
		return cp.Vector{X: v.X, Y: v.Y}, true
	case map[string]any:
		if f, ok := mapFloats(v, "x", "y"); ok {
			return cp.Vector{X: f[0], Y: f[1]}, true
		}
	}
	return cp.Vector{}, false
}

func toVector3(value any) (Vector3, bool) {
	switch v := value.(type) {
	case Vector3:
		return v, true
	case cp.Vector:
		return vec3From2(v), true
	case Vector3Int:
		return vec3FromInt(v), true
	case image.Point:
		return Vector3{X: float64(v.X), Y: float64(v.Y)}, true
	case Vector4:
		return Vector3{X: v.X, Y: v.Y, Z: v.Z}, true
	case map[string]any:
		if f, ok := mapFloats(v, "x", "y", "z"); ok {
			return Vector3{X: f[0], Y: f[1], Z: f[2]}, true
		}
	}
	return Vector3{}, false
}

func toVector4(value any) (Vector4, bool) {
	switch v := value.(type) {
	case Vector4:
		return v, true
	case Vector3:
		return Vector4{X: v.X, Y: v.Y, Z: v.Z}, true
	case cp.Vector:
		return Vector4{X: v.X, Y: v.Y}, true
	case map[string]any:
		if f, ok := mapFloats(v, "x", "y", "z", "w"); ok {
			return Vector4{X: f[0], Y: f[1], Z: f[2], W: f[3]}, true
		}
	}
	return Vector4{}, false
}

func toVector2Int(value any) (image.Point, bool) {
	switch v := value.(type) {
	case image.Point:
		return v, true
	case Vector3Int:
		return image.Point{X: v.X, Y: v.Y}, true
	case map[string]any:
		if n, ok := mapInts(v, "x", "y"); ok {
			return image.Point{X: n[0], Y: n[1]}, true
		}
	}
	return image.Point{}, false
}

func toVector3Int(value any) (Vector3Int, bool) {
	switch v := value.(type) {
	case Vector3Int:
		return v, true
	case image.Point:
		return Vector3Int{X: v.X, Y: v.Y}, true
	case map[string]any:
		if n, ok := mapInts(v, "x", "y", "z"); ok {
			return Vector3Int{X: n[0], Y: n[1], Z: n[2]}, true
		}
	}
	return Vector3Int{}, false
}

func toQuaternion(value any) (Quaternion, bool) {
	switch v := value.(type) {
	case Quaternion:
		return v, true
	case map[string]any:
		if f, ok := mapFloats(v, "x", "y", "z", "w"); ok {
			return Quaternion{X: f[0], Y: f[1], Z: f[2], W: f[3]}, true
		}
	}
	return Quaternion{}, false
}

func toColor(value any) (color.NRGBA, bool) {
	switch c := value.(type) {
	case color.NRGBA:
		return c, true
	case string:
		parsed, err := parseHexColor(c)
		if err != nil {
			return color.NRGBA{}, false
		}
		return parsed, true
	case image.Rectangle:
		// Rectangle satisfies color.Color as an image mask; it is not a color.
		return color.NRGBA{}, false
	case color.Color:
		return color.NRGBAModel.Convert(c).(color.NRGBA), true
	}
	return color.NRGBA{}, false
}

func toRect(value any) (Rect, bool) {
	switch r := value.(type) {
	case Rect:
		return r, true
	case image.Rectangle:
		return Rect{
			X:      float64(r.Min.X),
			Y:      float64(r.Min.Y),
			Width:  float64(r.Dx()),
			Height: float64(r.Dy()),
		}, true
	case map[string]any:
		if f, ok := mapFloats(r, "x", "y", "width", "height"); ok {
			return Rect{X: f[0], Y: f[1], Width: f[2], Height: f[3]}, true
		}
	}
	return Rect{}, false
}

func toRectInt(value any) (image.Rectangle, bool) {
	switch r := value.(type) {
	case image.Rectangle:
		return r, true
	case map[string]any:
		if n, ok := mapInts(r, "x", "y", "width", "height"); ok {
			return rectFromSize(n[0], n[1], n[2], n[3]), true
		}
	}
	return image.Rectangle{}, false
}

// rectFromSize keeps negative sizes as authored; image.Rect would swap the
// corners.
func rectFromSize(x, y, w, h int) image.Rectangle {
	return image.Rectangle{Min: image.Pt(x, y), Max: image.Pt(x+w, y+h)}
}

func toRef[T ~string](value any) (any, bool) {
	switch r := value.(type) {
	case nil:
		return T(""), true
	case T:
		return r, true
	case string:
		return T(r), true
	}
	return nil, false
}
