package dmnc

import (
	"errors"
	"fmt"

	log "github.com/sirupsen/logrus"
)

// CascadeResult summarizes one photon-generation pass over the
// recorded captures.
type CascadeResult struct {
	Photons   int // photon energies appended to d.Photons
	Truncated int // cascades stopped by the step cap before reaching ground
}

// RunCascades relaxes every captured nucleus down the level ladder,
// appending each emitted photon energy (GeV) to d.Photons. Decay is
// treated as instantaneous relative to transit: the DM particle does
// not move while its captures de-excite. Captures are walked in the
// order they were recorded.
func (d *Detector) RunCascades(calc RateCalculator) (CascadeResult, error) {
	var res CascadeResult
	for _, ev := range d.Captures {
		truncated, err := d.cascade(calc, ev.State)
		if err != nil {
			return res, err
		}
		if truncated {
			res.Truncated++
		}
	}
	res.Photons = len(d.Photons)
	return res, nil
}

// cascade walks one captured state down to the ground state. The
// binding photon of the initial capture is recorded unconditionally;
// each further transition is a weighted draw over the calculator's
// rates. The step cap guards against rate tables that fail to lower n:
// hitting it keeps the photons emitted so far and reports truncation.
func (d *Detector) cascade(calc RateCalculator, q QState) (truncated bool, err error) {
	d.Photons = append(d.Photons, calc.BindingEnergy(q.N, q.L))

	for i := 0; i < d.MaxCascadeSteps; i++ {
		if q.N <= 1 {
			return false, nil
		}
		rates := calc.TransitionRates(q.N, q.L, q.M)
		if len(rates) == 0 {
			return false, fmt.Errorf("%w: %v", ErrNoTransitions, q)
		}
		next, _, err := PickWeighted(d.rng, rates)
		if err != nil {
			if errors.Is(err, ErrNoPositiveWeight) {
				return false, fmt.Errorf("%w: %v", ErrNoTransitions, q)
			}
			return false, fmt.Errorf("transition draw from %v: %w", q, err)
		}
		d.Photons = append(d.Photons, calc.TransitionEnergy(q.N, q.L, next.N, next.L))
		q = next
	}
	if q.N > 1 {
		log.WithFields(log.Fields{
			"state": q.String(),
			"cap":   d.MaxCascadeSteps,
		}).Warn("cascade hit its step cap before reaching the ground state")
		return true, nil
	}
	return false, nil
}
