package dmnc

import (
	"fmt"

	log "github.com/sirupsen/logrus"
)

// CaptureEvent records one radiative nucleus capture: where it
// happened and which bound state it populated. Immutable once created.
type CaptureEvent struct {
	Pos   Point3 `json:"pos"`
	State QState `json:"state"`
}

// CaptureWalk advances the particle along its direction by sampled
// free paths, recording a capture at every contained step, until the
// particle leaves the detector or the step cap is reached. The first
// position outside the volume is not recorded (it stays in d.Pos for
// inspection). A zero direction means no trajectory exists yet, so an
// entry is sampled first. truncated is true when the cap was hit
// before the particle exited; the captures up to that point are kept.
func (d *Detector) CaptureWalk() (truncated bool, err error) {
	if d.Dir.IsZero() {
		d.SampleEntry()
	}

	for i := 0; i < d.MaxCaptureSteps; i++ {
		dist, ok := d.FreePath()
		if !ok {
			// No interaction on this draw: the particle coasts out.
			return false, nil
		}
		d.Pos = d.Pos.Add(d.Dir.Mul(dist))
		if !d.Contains(d.Pos) {
			return false, nil
		}

		state, _, err := PickWeighted(d.rng, d.CaptureWeights)
		if err != nil {
			return false, fmt.Errorf("capture draw: %w", err)
		}
		d.Captures = append(d.Captures, CaptureEvent{Pos: d.Pos, State: state})
	}

	log.WithFields(log.Fields{
		"captures": len(d.Captures),
		"cap":      d.MaxCaptureSteps,
	}).Warn("capture walk hit its step cap before the particle exited")
	return true, nil
}
