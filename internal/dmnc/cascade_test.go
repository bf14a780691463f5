package dmnc

import (
	"testing"

	log "github.com/sirupsen/logrus"
	logtest "github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/require"
)

// ladderCalc steps straight down: (n,0,0) -> (n-1,0,0).
type ladderCalc struct {
	bind, step Real
}

func (c ladderCalc) CaptureWeights() map[QState]float64 {
	return map[QState]float64{{N: 5}: 1}
}
func (c ladderCalc) BindingEnergy(n, l int) Real { return c.bind }
func (c ladderCalc) TransitionRates(n, l, m int) map[QState]float64 {
	if n <= 1 {
		return nil
	}
	return map[QState]float64{{N: n - 1}: 1}
}
func (c ladderCalc) TransitionEnergy(n, l, nNew, lNew int) Real { return c.step }

// stuckCalc never lowers n, forcing the step cap.
type stuckCalc struct{ ladderCalc }

func (c stuckCalc) TransitionRates(n, l, m int) map[QState]float64 {
	return map[QState]float64{{N: n, L: l, M: m}: 1}
}

// emptyCalc claims no decays exist at all.
type emptyCalc struct{ ladderCalc }

func (c emptyCalc) TransitionRates(n, l, m int) map[QState]float64 { return nil }

// zeroCalc offers only zero-rate decays.
type zeroCalc struct{ ladderCalc }

func (c zeroCalc) TransitionRates(n, l, m int) map[QState]float64 {
	return map[QState]float64{{N: n - 1}: 0}
}

func captureAt(d *Detector, q QState) {
	d.Captures = append(d.Captures, CaptureEvent{Pos: Point3{}, State: q})
}

func TestCascadeWalksToGround(t *testing.T) {
	d := newTestDetector(t, 10)
	captureAt(d, QState{N: 5})

	res, err := d.RunCascades(ladderCalc{bind: 0.1, step: 0.05})
	require.NoError(t, err)
	require.Zero(t, res.Truncated)
	// binding photon + 4 ladder transitions
	require.Equal(t, 5, res.Photons)
	require.Len(t, d.Photons, 5)
	require.Equal(t, 0.1, d.Photons[0])
	for _, e := range d.Photons[1:] {
		require.Equal(t, 0.05, e)
	}
}

func TestCascadeGroundStateEmitsBindingOnly(t *testing.T) {
	d := newTestDetector(t, 11)
	captureAt(d, QState{N: 1})

	res, err := d.RunCascades(ladderCalc{bind: 0.2, step: 0.05})
	require.NoError(t, err)
	require.Zero(t, res.Truncated)
	require.Equal(t, []Real{0.2}, d.Photons)
}

func TestCascadeOrderAcrossCaptures(t *testing.T) {
	d := newTestDetector(t, 12)
	captureAt(d, QState{N: 3})
	captureAt(d, QState{N: 2})

	_, err := d.RunCascades(ladderCalc{bind: 1.0, step: 0.5})
	require.NoError(t, err)
	// capture order across events, cascade order within:
	// [bind, 3->2, 2->1, bind, 2->1]
	require.Equal(t, []Real{1.0, 0.5, 0.5, 1.0, 0.5}, d.Photons)
}

func TestCascadeTruncatesAndWarns(t *testing.T) {
	hook := logtest.NewGlobal()
	defer hook.Reset()

	d := newTestDetector(t, 13)
	captureAt(d, QState{N: 3})

	res, err := d.RunCascades(stuckCalc{})
	require.NoError(t, err)
	require.Equal(t, 1, res.Truncated)
	// binding photon + one per capped step, all kept
	require.Len(t, d.Photons, 1+d.MaxCascadeSteps)
	for _, e := range d.Photons {
		require.GreaterOrEqual(t, e, 0.0)
	}

	require.NotEmpty(t, hook.Entries)
	last := hook.LastEntry()
	require.Equal(t, log.WarnLevel, last.Level)
	require.Contains(t, last.Message, "step cap")
}

func TestCascadeNoTransitions(t *testing.T) {
	d := newTestDetector(t, 14)
	captureAt(d, QState{N: 2})
	_, err := d.RunCascades(emptyCalc{})
	require.ErrorIs(t, err, ErrNoTransitions)
}

func TestCascadeZeroRates(t *testing.T) {
	d := newTestDetector(t, 15)
	captureAt(d, QState{N: 2})
	_, err := d.RunCascades(zeroCalc{})
	require.ErrorIs(t, err, ErrNoTransitions)
}
