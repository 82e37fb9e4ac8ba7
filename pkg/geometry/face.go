package geometry

import "github.com/df07/go-block-raytracer/pkg/core"

// Face is one of the six canonical faces a block model's surface is divided into
type Face int

const (
	North Face = iota // -Z
	East              // +X
	South             // +Z
	West              // -X
	Top               // +Y
	Bottom            // -Y
)

// NumFaces is the number of canonical faces
const NumFaces = 6

// Faces lists all faces in index order
var Faces = [NumFaces]Face{North, East, South, West, Top, Bottom}

var faceNames = [NumFaces]string{"north", "east", "south", "west", "top", "bottom"}

// String returns the lower-case face name
func (f Face) String() string {
	if f < 0 || int(f) >= NumFaces {
		return "unknown"
	}
	return faceNames[f]
}

// ParseFace converts a face name to a Face. Both "top"/"bottom" and the
// "up"/"down" spelling used by JSON block models are accepted.
func ParseFace(name string) (Face, bool) {
	switch name {
	case "north":
		return North, true
	case "east":
		return East, true
	case "south":
		return South, true
	case "west":
		return West, true
	case "top", "up":
		return Top, true
	case "bottom", "down":
		return Bottom, true
	}
	return 0, false
}

// Normal returns the outward unit normal of the face
func (f Face) Normal() core.Vec3 {
	switch f {
	case North:
		return core.NewVec3(0, 0, -1)
	case East:
		return core.NewVec3(1, 0, 0)
	case South:
		return core.NewVec3(0, 0, 1)
	case West:
		return core.NewVec3(-1, 0, 0)
	case Top:
		return core.NewVec3(0, 1, 0)
	case Bottom:
		return core.NewVec3(0, -1, 0)
	}
	return core.Vec3{}
}

// FaceFromNormal maps a surface normal to a face by the sign of its
// components, checked in the order top, bottom, north, south, west, east.
// For normals that are not axis aligned the first matching rule wins.
func FaceFromNormal(n core.Vec3) (Face, bool) {
	switch {
	case n.Y > 0:
		return Top, true
	case n.Y < 0:
		return Bottom, true
	case n.Z < 0:
		return North, true
	case n.Z > 0:
		return South, true
	case n.X < 0:
		return West, true
	case n.X > 0:
		return East, true
	}
	return North, false
}
