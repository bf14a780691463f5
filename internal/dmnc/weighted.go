package dmnc

import (
	"fmt"
	"math/rand"
)

// PickWeighted draws one (outcome, weight) pair from weights with
// probability proportional to weight, by cumulative-sum inverse
// sampling: u ~ U[0, total), then the first outcome whose running sum
// reaches u. Weights must be non-negative with at least one strictly
// positive entry.
func PickWeighted[K comparable](rng *rand.Rand, weights map[K]float64) (K, float64, error) {
	var zero K
	var total float64
	for k, w := range weights {
		if w < 0 {
			return zero, 0, fmt.Errorf("%w: %v has weight %g", ErrBadWeight, k, w)
		}
		total += w
	}
	if total <= 0 {
		return zero, 0, ErrNoPositiveWeight
	}

	u := rng.Float64() * total
	var cum float64
	for k, w := range weights {
		cum += w
		if cum >= u {
			return k, w, nil
		}
	}
	// Reachable only when float summation order leaves the final
	// running sum just below u. Surface it, never pick a default.
	return zero, 0, fmt.Errorf("%w: u=%g total=%g", ErrWeightedDraw, u, total)
}
