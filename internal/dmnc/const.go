package dmnc

import "math"

// Physical constants and defaults.
const (
	// hbar*c is 1240 eV*nm: e-9 for eV -> GeV, e-7 for nm -> cm.
	// Converts a length in GeV^-1 to centimeters.
	CmPerInvGeV = 1240.0 / (2 * math.Pi) * 1e-16

	MetersPerCm = 1e-2

	// Number density of liquid argon, cm^-3.
	LArNumberDensity = 1.39 * 6.02e23 / 39.948

	// DUNE far-detector module dimensions, meters.
	DefaultLength = 62.0
	DefaultWidth  = 15.1
	DefaultHeight = 14.0

	// Step caps against pathological non-terminating walks/cascades.
	MaxCaptureSteps = 100
	MaxCascadeSteps = 1000

	DefaultTrajectories = 1
	DefaultNMax         = 3
	DefaultE0           = 1e-3 // GeV
	DefaultSigma        = 1.0  // GeV^-2 per capturable state
	DefaultOut          = "results/run.json"
)
