package dmnc

import "errors"

var (
	// ErrBadDimensions indicates a non-positive detector length, width or height.
	ErrBadDimensions = errors.New("dmnc: detector dimensions must be positive")
	// ErrBadDensity indicates a non-positive medium number density.
	ErrBadDensity = errors.New("dmnc: number density must be positive")
	// ErrBadCrossSection indicates a non-positive total capture cross section.
	ErrBadCrossSection = errors.New("dmnc: total cross section must be positive")
	// ErrNoCaptureStates indicates the capture-weight map is empty or has no positive entry.
	ErrNoCaptureStates = errors.New("dmnc: capture weights must contain a positive entry")
	// ErrBadState indicates quantum numbers violating n >= 1, 0 <= l < n, |m| <= l.
	ErrBadState = errors.New("dmnc: invalid quantum numbers")
	// ErrBadWeight indicates a negative weight handed to a weighted draw.
	ErrBadWeight = errors.New("dmnc: weights must be non-negative")
	// ErrNoPositiveWeight indicates a weighted draw over an empty or all-zero map.
	ErrNoPositiveWeight = errors.New("dmnc: total weight must be positive")
	// ErrWeightedDraw indicates the cumulative scan finished without selecting
	// an outcome, an internal inconsistency surfaced rather than defaulted.
	ErrWeightedDraw = errors.New("dmnc: weighted draw exhausted its scan")
	// ErrNoTransitions indicates the rate calculator knows no decay out of an
	// excited state, which would otherwise divide by a zero total rate.
	ErrNoTransitions = errors.New("dmnc: no transitions available for excited state")
)
