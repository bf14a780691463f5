package dmnc

import "fmt"

// QState identifies a bound level of the captured nucleus in the DM
// particle's potential well by its principal (N), angular (L) and
// magnetic (M) quantum numbers.
type QState struct {
	N int `json:"n"`
	L int `json:"l"`
	M int `json:"m"`
}

// Valid reports whether the quantum numbers satisfy n >= 1, 0 <= l < n
// and |m| <= l.
func (q QState) Valid() bool {
	return q.N >= 1 && q.L >= 0 && q.L < q.N && q.M >= -q.L && q.M <= q.L
}

func (q QState) String() string {
	return fmt.Sprintf("(n=%d, l=%d, m=%d)", q.N, q.L, q.M)
}

// RateCalculator supplies the physics the engine treats as external:
// capture cross-section weights, binding energies, decay rates and
// photon energies. Implementations must only return transitions that
// strictly lower N; the engine does not enforce it.
type RateCalculator interface {
	// CaptureWeights maps every capturable state to its relative
	// capture cross section, GeV^-2.
	CaptureWeights() map[QState]float64

	// BindingEnergy returns the photon energy (GeV) released when a
	// free nucleus falls into level (n, l).
	BindingEnergy(n, l int) Real

	// TransitionRates returns every allowed destination of (n, l, m)
	// with its decay rate. Empty for the ground state.
	TransitionRates(n, l, m int) map[QState]float64

	// TransitionEnergy returns the photon energy (GeV) emitted by the
	// decay (n, l) -> (nNew, lNew).
	TransitionEnergy(n, l, nNew, lNew int) Real
}

// TotalCrossSectionCm2 folds a capture-weight map (GeV^-2) into the
// total capture cross section in cm^2.
func TotalCrossSectionCm2(weights map[QState]float64) Real {
	var total Real
	for _, w := range weights {
		total += w
	}
	return total * CmPerInvGeV * CmPerInvGeV
}
