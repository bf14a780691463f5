package dmnc

import "math"

// FreePath draws the distance to the next capture interaction along
// the current direction, by inverse-CDF sampling of the exponential
// free-path law P(dist > x) = exp(-x * rho * sigma). The draw happens
// in the cross section's native centimeters and is converted to the
// detector's meters. ok is false for the degenerate draw at the
// exclusive upper bound of the uniform range, where ln(0) diverges and
// the step carries no interaction.
func (d *Detector) FreePath() (dist Real, ok bool) {
	u := d.rng.Float64()
	if 1-u == 0 {
		return 0, false
	}
	cm := -math.Log(1-u) / (d.NumberDensity * d.CrossSection)
	return cm * MetersPerCm, true
}
