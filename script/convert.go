package script

import (
	"image"
	"image/color"
	"strings"

	"github.com/d5/tengo/v2"
	"github.com/jakecoffman/cp"

	"github.com/milk9111/tileprops/variable"
)

func objectAsString(obj tengo.Object) string {
	if obj == nil {
		return ""
	}
	switch v := obj.(type) {
	case *tengo.String:
		return v.Value
	default:
		return strings.Trim(v.String(), "\"")
	}
}

func objectToAny(obj tengo.Object) any {
	if obj == nil {
		return nil
	}

	switch v := obj.(type) {
	case *tengo.String:
		return v.Value
	case *tengo.Int:
		return int(v.Value)
	case *tengo.Float:
		return v.Value
	case *tengo.Bool:
		return !v.IsFalsy()
	case *tengo.Char:
		return v.Value
	case *tengo.Array:
		out := make([]any, 0, len(v.Value))
		for _, item := range v.Value {
			out = append(out, objectToAny(item))
		}
		return out
	case *tengo.ImmutableArray:
		out := make([]any, 0, len(v.Value))
		for _, item := range v.Value {
			out = append(out, objectToAny(item))
		}
		return out
	case *tengo.Map:
		out := make(map[string]any, len(v.Value))
		for k, item := range v.Value {
			out[k] = objectToAny(item)
		}
		return out
	case *tengo.ImmutableMap:
		out := make(map[string]any, len(v.Value))
		for k, item := range v.Value {
			out[k] = objectToAny(item)
		}
		return out
	case *tengo.Undefined:
		return nil
	default:
		return v.String()
	}
}

// toObject converts a variable value to a tengo object. Composite values
// become maps keyed the same way variables accept them back.
func toObject(value any) (tengo.Object, error) {
	switch v := value.(type) {
	case cp.Vector:
		return floats("x", v.X, "y", v.Y), nil
	case variable.Vector3:
		return floats("x", v.X, "y", v.Y, "z", v.Z), nil
	case variable.Vector4:
		return floats("x", v.X, "y", v.Y, "z", v.Z, "w", v.W), nil
	case variable.Quaternion:
		return floats("x", v.X, "y", v.Y, "z", v.Z, "w", v.W), nil
	case image.Point:
		return ints("x", v.X, "y", v.Y), nil
	case variable.Vector3Int:
		return ints("x", v.X, "y", v.Y, "z", v.Z), nil
	case variable.Rect:
		return floats("x", v.X, "y", v.Y, "width", v.Width, "height", v.Height), nil
	case image.Rectangle:
		return ints("x", v.Min.X, "y", v.Min.Y, "width", v.Dx(), "height", v.Dy()), nil
	case variable.Bounds:
		center, _ := toObject(v.Center)
		size, _ := toObject(v.Size)
		return &tengo.ImmutableMap{Value: map[string]tengo.Object{"center": center, "size": size}}, nil
	case variable.BoundsInt:
		position, _ := toObject(v.Position)
		size, _ := toObject(v.Size)
		return &tengo.ImmutableMap{Value: map[string]tengo.Object{"position": position, "size": size}}, nil
	case color.NRGBA:
		return &tengo.String{Value: variable.EncodeValue(v).(string)}, nil
	case variable.AudioClipRef:
		return &tengo.String{Value: string(v)}, nil
	case variable.TextureRef:
		return &tengo.String{Value: string(v)}, nil
	case variable.MaterialRef:
		return &tengo.String{Value: string(v)}, nil
	case variable.PhysicsMaterialRef:
		return &tengo.String{Value: string(v)}, nil
	case variable.ParticleSystemRef:
		return &tengo.String{Value: string(v)}, nil
	case variable.GameObjectRef:
		return &tengo.String{Value: string(v)}, nil
	}
	return tengo.FromInterface(value)
}

func floats(kv ...any) tengo.Object {
	out := make(map[string]tengo.Object, len(kv)/2)
	for i := 0; i+1 < len(kv); i += 2 {
		out[kv[i].(string)] = &tengo.Float{Value: kv[i+1].(float64)}
	}
	return &tengo.ImmutableMap{Value: out}
}

func ints(kv ...any) tengo.Object {
	out := make(map[string]tengo.Object, len(kv)/2)
	for i := 0; i+1 < len(kv); i += 2 {
		out[kv[i].(string)] = &tengo.Int{Value: int64(kv[i+1].(int))}
	}
	return &tengo.ImmutableMap{Value: out}
}
