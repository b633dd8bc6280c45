package variable

import (
	"fmt"
	"strings"
)

// Kind identifies one of the closed set of value kinds a Variable can hold.
type Kind uint8

const (
	KindInvalid Kind = iota
	KindInteger
	KindFloat
	KindBoolean
	KindCharacter
	KindString
	KindVector2
	KindVector3
	KindVector2Int
	KindVector3Int
	KindVector4
	KindColor
	KindRect
	KindRectInt
	KindBounds
	KindBoundsInt
	KindQuaternion
	KindAudioClip
	KindTexture
	KindMaterial
	KindPhysicsMaterial
	KindParticleSystem
	KindGameObject

	kindCount
)

var kindLabels = [kindCount]string{
	KindInvalid:         "Invalid",
	KindInteger:         "Integer",
	KindFloat:           "Float",
	KindBoolean:         "Boolean",
	KindCharacter:       "Character",
	KindString:          "String",
	KindVector2:         "Vector2",
	KindVector3:         "Vector3",
	KindVector2Int:      "Vector2Int",
	KindVector3Int:      "Vector3Int",
	KindVector4:         "Vector4",
	KindColor:           "Color",
	KindRect:            "Rect",
	KindRectInt:         "RectInt",
	KindBounds:          "Bounds",
	KindBoundsInt:       "BoundsInt",
	KindQuaternion:      "Quaternion",
	KindAudioClip:       "AudioClip",
	KindTexture:         "Texture",
	KindMaterial:        "Material",
	KindPhysicsMaterial: "PhysicsMaterial",
	KindParticleSystem:  "ParticleSystem",
	KindGameObject:      "GameObject",
}

// String returns the human readable label of the kind, e.g. "Vector2Int".
func (k Kind) String() string {
	if k >= kindCount {
		return fmt.Sprintf("Kind(%d)", uint8(k))
	}
	return kindLabels[k]
}

// Valid reports whether k is one of the supported kinds.
func (k Kind) Valid() bool {
	return k > KindInvalid && k < kindCount
}

// IsReference reports whether values of k are asset references.
func (k Kind) IsReference() bool {
	return k >= KindAudioClip && k <= KindGameObject
}

// Kinds returns every supported kind in declaration order.
func Kinds() []Kind {
	out := make([]Kind, 0, kindCount-1)
	for k := KindInteger; k < kindCount; k++ {
		out = append(out, k)
	}
	return out
}

// ParseKind maps an authoring label back to its Kind. Matching ignores case and
// accepts a few common aliases ("int", "bool", "char", "audio", "particles").
func ParseKind(label string) (Kind, error) {
	s := strings.ToLower(strings.TrimSpace(label))
	for k := KindInteger; k < kindCount; k++ {
		if strings.ToLower(kindLabels[k]) == s {
			return k, nil
		}
	}
	switch s {
	case "int":
		return KindInteger, nil
	case "bool":
		return KindBoolean, nil
	case "char":
		return KindCharacter, nil
	case "audio":
		return KindAudioClip, nil
	case "particles":
		return KindParticleSystem, nil
	}
	return KindInvalid, fmt.Errorf("%w: unknown kind %q", ErrUnsupportedKind, label)
}
