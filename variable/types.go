package variable

import "github.com/jakecoffman/cp"

// Vector3 is a three component float vector.
type Vector3 struct {
	X float64 `yaml:"x"`
	Y float64 `yaml:"y"`
	Z float64 `yaml:"z"`
}

// Vector4 is a four component float vector.
type Vector4 struct {
	X float64 `yaml:"x"`
	Y float64 `yaml:"y"`
	Z float64 `yaml:"z"`
	W float64 `yaml:"w"`
}

// Vector3Int is a three component integer vector.
type Vector3Int struct {
	X int `yaml:"x"`
	Y int `yaml:"y"`
	Z int `yaml:"z"`
}

// Quaternion is a rotation in x, y, z, w order. The zero value is not a valid
// rotation; it is what a freshly added property holds until authored.
type Quaternion struct {
	X float64 `yaml:"x"`
	Y float64 `yaml:"y"`
	Z float64 `yaml:"z"`
	W float64 `yaml:"w"`
}

// Rect is an axis aligned rectangle described by its minimum corner and size.
type Rect struct {
	X      float64 `yaml:"x"`
	Y      float64 `yaml:"y"`
	Width  float64 `yaml:"width"`
	Height float64 `yaml:"height"`
}

// Bounds is an axis aligned box described by its center and total size.
type Bounds struct {
	Center Vector3 `yaml:"center"`
	Size   Vector3 `yaml:"size"`
}

// Min returns the minimum corner of the box.
func (b Bounds) Min() Vector3 {
	return Vector3{
		X: b.Center.X - b.Size.X/2,
		Y: b.Center.Y - b.Size.Y/2,
		Z: b.Center.Z - b.Size.Z/2,
	}
}

// Max returns the maximum corner of the box.
func (b Bounds) Max() Vector3 {
	return Vector3{
		X: b.Center.X + b.Size.X/2,
		Y: b.Center.Y + b.Size.Y/2,
		Z: b.Center.Z + b.Size.Z/2,
	}
}

// BoundsInt is an integer box described by its minimum corner and size.
type BoundsInt struct {
	Position Vector3Int `yaml:"position"`
	Size     Vector3Int `yaml:"size"`
}

// Asset references hold the key of an asset owned by whatever loads the game's
// resources. The empty key is the null reference.
type (
	AudioClipRef       string
	TextureRef         string
	MaterialRef        string
	PhysicsMaterialRef string
	ParticleSystemRef  string
	GameObjectRef      string
)

func vec3From2(v cp.Vector) Vector3 {
	return Vector3{X: v.X, Y: v.Y}
}

func vec3FromInt(v Vector3Int) Vector3 {
	return Vector3{X: float64(v.X), Y: float64(v.Y), Z: float64(v.Z)}
}

func boundsFromInt(b BoundsInt) Bounds {
	size := vec3FromInt(b.Size)
	min := vec3FromInt(b.Position)
	return Bounds{
		Center: Vector3{X: min.X + size.X/2, Y: min.Y + size.Y/2, Z: min.Z + size.Z/2},
		Size:   size,
	}
}
