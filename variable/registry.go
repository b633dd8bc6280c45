package variable

import (
	"fmt"
	"image"
	"image/color"

	"github.com/jakecoffman/cp"
)

// ForValueKind maps the native Go type of value to the Variable kind that
// stores it. rune is an alias of int32, so int32 values map to KindCharacter;
// use int for integers.
func ForValueKind(value any) (Kind, error) {
	switch value.(type) {
	case int, int8, int16, int64, uint, uint8, uint16, uint32, uint64:
		return KindInteger, nil
	case float32, float64:
		return KindFloat, nil
	case bool:
		return KindBoolean, nil
	case rune:
		return KindCharacter, nil
	case string:
		return KindString, nil
	case cp.Vector:
		return KindVector2, nil
	case Vector3:
		return KindVector3, nil
	case image.Point:
		return KindVector2Int, nil
	case Vector3Int:
		return KindVector3Int, nil
	case Vector4:
		return KindVector4, nil
	case Rect:
		return KindRect, nil
	case image.Rectangle:
		return KindRectInt, nil
	case Bounds:
		return KindBounds, nil
	case BoundsInt:
		return KindBoundsInt, nil
	case Quaternion:
		return KindQuaternion, nil
	case AudioClipRef:
		return KindAudioClip, nil
	case TextureRef:
		return KindTexture, nil
	case MaterialRef:
		return KindMaterial, nil
	case PhysicsMaterialRef:
		return KindPhysicsMaterial, nil
	case ParticleSystemRef:
		return KindParticleSystem, nil
	case GameObjectRef:
		return KindGameObject, nil
	case color.Color:
		return KindColor, nil
	}
	return KindInvalid, fmt.Errorf("%w: no variable kind for %T", ErrUnsupportedKind, value)
}

// KindOf returns the kind that stores values of type T.
func KindOf[T any]() (Kind, error) {
	var zero T
	return ForValueKind(any(zero))
}
