package complexplanet

import "math"

// Face identifies one face of the cube map.
type Face int

const (
	FaceXP Face = iota // +X
	FaceXN             // -X
	FaceYP             // +Y
	FaceYN             // -Y
	FaceZP             // +Z
	FaceZN             // -Z
)

// Faces lists the cube faces in render order.
var Faces = [6]Face{FaceXP, FaceXN, FaceYP, FaceYN, FaceZP, FaceZN}

var faceNames = [6]string{"xp", "xn", "yp", "yn", "zp", "zn"}

func (f Face) String() string {
	if f < FaceXP || f > FaceZN {
		return "unknown"
	}
	return faceNames[f]
}

// Filename returns the output filename for this face's image.
func (f Face) Filename() string { return f.String() + ".png" }

// cubePoint maps pixel (a, b) on a size×size face to a point on the unit
// sphere. Each face fixes one cube coordinate at ±size-1 and sweeps the
// other two so that adjacent faces share edge pixels with matching
// orientation.
func cubePoint(f Face, a, b, size int) (x, y, z float64) {
	max := size - 1
	var cx, cy, cz int
	switch f {
	case FaceXP:
		cx, cy, cz = max, b, max-a
	case FaceXN:
		cx, cy, cz = 0, b, a
	case FaceYP:
		cx, cy, cz = a, max, max-b
	case FaceYN:
		cx, cy, cz = a, 0, b
	case FaceZP:
		cx, cy, cz = a, b, max
	case FaceZN:
		cx, cy, cz = max-a, b, 0
	}
	// Cube coordinates to [-1, 1]^3, then project onto the sphere.
	fx := -1.0 + float64(cx)*2.0/float64(max)
	fy := -1.0 + float64(cy)*2.0/float64(max)
	fz := -1.0 + float64(cz)*2.0/float64(max)
	inv := 1.0 / math.Sqrt(fx*fx+fy*fy+fz*fz)
	return fx * inv, fy * inv, fz * inv
}

// rectPoint maps pixel (px, py) of a width×height equirectangular image to
// a point on the unit sphere. Row 0 is latitude -90, column 0 longitude
// -180.
func rectPoint(px, py, width, height int) (x, y, z float64) {
	lat := (-90.0 + float64(py)/float64(height)*180.0) * math.Pi / 180.0
	lon := (-180.0 + float64(px)/float64(width)*360.0) * math.Pi / 180.0
	cosLat := math.Cos(lat)
	return cosLat * math.Cos(lon), math.Sin(lat), cosLat * math.Sin(lon)
}
