package dmnc

import "fmt"

// HydrogenLike is a self-contained reference calculator: a nucleus
// bound in a 1/r-like well with levels up to NMax, dipole-selected
// decays and energy-cubed rate weights. It lets the binary and the
// integration tests run end to end without the full cross-section
// code, which plugs in through the same RateCalculator interface.
type HydrogenLike struct {
	NMax  int
	E0    Real // binding scale of the ground level, GeV
	Sigma Real // capture weight of each state, GeV^-2
}

func NewHydrogenLike(nMax int, e0, sigma Real) (*HydrogenLike, error) {
	if nMax < 1 {
		return nil, fmt.Errorf("dmnc: nMax must be >= 1; got %d", nMax)
	}
	if e0 <= 0 {
		return nil, fmt.Errorf("dmnc: binding scale must be positive; got %g", e0)
	}
	if sigma <= 0 {
		return nil, fmt.Errorf("dmnc: per-state capture weight must be positive; got %g", sigma)
	}
	return &HydrogenLike{NMax: nMax, E0: e0, Sigma: sigma}, nil
}

// levelEnergy is the binding depth of level n below the well edge, GeV.
func (h *HydrogenLike) levelEnergy(n int) Real {
	return h.E0 / (Real(n) * Real(n))
}

// CaptureWeights lists every (n, l, m) with n <= NMax at equal weight.
func (h *HydrogenLike) CaptureWeights() map[QState]float64 {
	weights := make(map[QState]float64)
	for n := 1; n <= h.NMax; n++ {
		for l := 0; l < n; l++ {
			for m := -l; m <= l; m++ {
				weights[QState{N: n, L: l, M: m}] = float64(h.Sigma)
			}
		}
	}
	return weights
}

// BindingEnergy is the photon released when a free nucleus falls into
// level (n, l). Depends on n only in this model.
func (h *HydrogenLike) BindingEnergy(n, l int) Real {
	return h.levelEnergy(n)
}

// TransitionRates applies the dipole rule: destinations with n' < n,
// l' = l +- 1 (0 <= l' < n') and |m' - m| <= 1, weighted by the cube
// of the released energy. States with no dipole exit (2s and friends)
// get a single strongly suppressed relaxation channel instead, so the
// cascade still reaches the ground state.
func (h *HydrogenLike) TransitionRates(n, l, m int) map[QState]float64 {
	rates := make(map[QState]float64)
	if n <= 1 {
		return rates
	}
	for nn := 1; nn < n; nn++ {
		for _, ll := range [2]int{l - 1, l + 1} {
			if ll < 0 || ll >= nn {
				continue
			}
			for mm := m - 1; mm <= m+1; mm++ {
				if mm < -ll || mm > ll {
					continue
				}
				de := h.levelEnergy(nn) - h.levelEnergy(n)
				rates[QState{N: nn, L: ll, M: mm}] = float64(de * de * de)
			}
		}
	}
	if len(rates) == 0 {
		nn := n - 1
		ll := l
		if ll >= nn {
			ll = nn - 1
		}
		mm := m
		if mm > ll {
			mm = ll
		} else if mm < -ll {
			mm = -ll
		}
		de := h.levelEnergy(nn) - h.levelEnergy(n)
		rates[QState{N: nn, L: ll, M: mm}] = float64(de*de*de) * 1e-6
	}
	return rates
}

// TransitionEnergy is the binding-depth difference of the two levels.
func (h *HydrogenLike) TransitionEnergy(n, l, nNew, lNew int) Real {
	return h.levelEnergy(nNew) - h.levelEnergy(n)
}
