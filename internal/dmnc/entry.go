package dmnc

import "math"

// Face identifies one of the six detector boundary planes.
type Face int

const (
	FaceFront  Face = iota // +X
	FaceBack               // -X
	FaceRight              // +Y
	FaceLeft               // -Y
	FaceTop                // +Z
	FaceBottom             // -Z
)

var faceNames = [...]string{"front", "back", "right", "left", "top", "bottom"}

func (f Face) String() string {
	if f < FaceFront || f > FaceBottom {
		return "unknown"
	}
	return faceNames[f]
}

// RandomFace picks an entry face with probability proportional to its
// area: the face pair is chosen area-weighted, the side within the
// pair by an independent coin flip.
func (d *Detector) RandomFace() Face {
	u := d.rng.Float64() * d.AreaTot
	flip := d.rng.Intn(2) == 0
	switch {
	case u < d.AreaX:
		if flip {
			return FaceFront
		}
		return FaceBack
	case u < d.AreaX+d.AreaY:
		if flip {
			return FaceRight
		}
		return FaceLeft
	default:
		if flip {
			return FaceTop
		}
		return FaceBottom
	}
}

// SampleEntry places the particle uniformly on an area-weighted random
// face and gives it an isotropic unit direction: cos(theta) ~ U[-1,1],
// phi ~ U[0,2pi). The entry face and direction are sampled
// independently, so "inward" is not guaranteed.
func (d *Detector) SampleEntry() Face {
	face := d.RandomFace()
	switch face {
	case FaceFront:
		d.Pos = Point3{d.MaxX, d.uniform(d.MinY, d.MaxY), d.uniform(d.MinZ, d.MaxZ)}
	case FaceBack:
		d.Pos = Point3{d.MinX, d.uniform(d.MinY, d.MaxY), d.uniform(d.MinZ, d.MaxZ)}
	case FaceRight:
		d.Pos = Point3{d.uniform(d.MinX, d.MaxX), d.MaxY, d.uniform(d.MinZ, d.MaxZ)}
	case FaceLeft:
		d.Pos = Point3{d.uniform(d.MinX, d.MaxX), d.MinY, d.uniform(d.MinZ, d.MaxZ)}
	case FaceTop:
		d.Pos = Point3{d.uniform(d.MinX, d.MaxX), d.uniform(d.MinY, d.MaxY), d.MaxZ}
	case FaceBottom:
		d.Pos = Point3{d.uniform(d.MinX, d.MaxX), d.uniform(d.MinY, d.MaxY), d.MinZ}
	}

	cos := 2*d.rng.Float64() - 1
	phi := 2 * math.Pi * d.rng.Float64()
	sin := math.Sqrt(1 - cos*cos)
	d.Dir = Vector3{sin * math.Cos(phi), sin * math.Sin(phi), cos}

	DebugLog("Entry on %s face at (%.3f, %.3f, %.3f), dir (%.3f, %.3f, %.3f)",
		face, d.Pos.X, d.Pos.Y, d.Pos.Z, d.Dir.X, d.Dir.Y, d.Dir.Z)
	return face
}

func (d *Detector) uniform(lo, hi Real) Real {
	return lo + (hi-lo)*d.rng.Float64()
}
