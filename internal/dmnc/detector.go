package dmnc

import (
	"fmt"
	"math/rand"
)

// Detector models one DM trajectory through an axis-aligned box of
// homogeneous medium centered at the origin. Geometry and medium
// parameters are immutable after construction; position, direction,
// captures and photons are per-trajectory state, cleared by Reset.
type Detector struct {
	Length, Width, Height Real // meters, along X, Y, Z

	// cached bounds & face areas
	MinX, MaxX Real
	MinY, MaxY Real
	MinZ, MaxZ Real
	AreaX      Real // one face normal to X: height * width
	AreaY      Real // one face normal to Y: height * length
	AreaZ      Real // one face normal to Z: width * length
	AreaTot    Real

	// medium
	NumberDensity  Real // cm^-3
	CrossSection   Real // total capture cross section, cm^2
	CaptureWeights map[QState]float64

	// step caps
	MaxCaptureSteps int
	MaxCascadeSteps int

	// per-trajectory state
	Pos      Point3
	Dir      Vector3 // unit once an entry has been sampled
	Captures []CaptureEvent
	Photons  []Real // GeV, cascade order within a capture, capture order across

	rng *rand.Rand
}

// NewDetector validates geometry and medium parameters and precomputes
// bounds and face areas. A nil rng falls back to a fixed-seed source.
func NewDetector(length, width, height, numberDensity, crossSectionCm2 Real, captureWeights map[QState]float64, rng *rand.Rand) (*Detector, error) {
	if length <= 0 || width <= 0 || height <= 0 {
		return nil, fmt.Errorf("%w: %g x %g x %g", ErrBadDimensions, length, width, height)
	}
	if numberDensity <= 0 {
		return nil, fmt.Errorf("%w: %g", ErrBadDensity, numberDensity)
	}
	if crossSectionCm2 <= 0 {
		return nil, fmt.Errorf("%w: %g", ErrBadCrossSection, crossSectionCm2)
	}
	positive := false
	for q, w := range captureWeights {
		if !q.Valid() {
			return nil, fmt.Errorf("%w: %v", ErrBadState, q)
		}
		if w < 0 {
			return nil, fmt.Errorf("%w: %v has weight %g", ErrBadWeight, q, w)
		}
		if w > 0 {
			positive = true
		}
	}
	if !positive {
		return nil, ErrNoCaptureStates
	}
	if rng == nil {
		rng = rand.New(rand.NewSource(0))
	}

	d := &Detector{
		Length: length,
		Width:  width,
		Height: height,

		MinX: -length / 2,
		MaxX: length / 2,
		MinY: -width / 2,
		MaxY: width / 2,
		MinZ: -height / 2,
		MaxZ: height / 2,

		AreaX: height * width,
		AreaY: height * length,
		AreaZ: width * length,

		NumberDensity:  numberDensity,
		CrossSection:   crossSectionCm2,
		CaptureWeights: captureWeights,

		MaxCaptureSteps: MaxCaptureSteps,
		MaxCascadeSteps: MaxCascadeSteps,

		rng: rng,
	}
	d.AreaTot = d.AreaX + d.AreaY + d.AreaZ
	DebugLog("Created detector %g x %g x %g m, rho=%g cm^-3, sigma=%g cm^2, states=%d",
		length, width, height, numberDensity, crossSectionCm2, len(captureWeights))
	return d, nil
}

// Contains reports whether p lies inside the detector, inclusive on
// all six faces. Pure: repeated calls on the same point agree.
func (d *Detector) Contains(p Point3) bool {
	return p.X >= d.MinX && p.X <= d.MaxX &&
		p.Y >= d.MinY && p.Y <= d.MaxY &&
		p.Z >= d.MinZ && p.Z <= d.MaxZ
}

// MeanFreePath returns the expected distance between captures, meters.
func (d *Detector) MeanFreePath() Real {
	return MetersPerCm / (d.NumberDensity * d.CrossSection)
}

// Reset clears the per-trajectory state so the same detector can
// simulate a fresh DM particle. Geometry and medium are untouched.
func (d *Detector) Reset() {
	d.Pos = Point3{}
	d.Dir = Vector3{}
	d.Captures = nil
	d.Photons = nil
}
