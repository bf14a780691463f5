package dmnc

import (
	"encoding/json"
	"fmt"
	"os"
)

type DetectorCfg struct {
	Length Real `json:"length"` // meters
	Width  Real `json:"width"`
	Height Real `json:"height"`
}

type MediumCfg struct {
	NumberDensity Real `json:"numberDensity"` // cm^-3
	// CrossSection overrides the calculator-derived total, cm^2.
	// Zero means fold the capture weights through TotalCrossSectionCm2.
	CrossSection Real `json:"crossSection,omitempty"`
}

type ModelCfg struct {
	NMax  int  `json:"nMax"`
	E0    Real `json:"e0,omitempty"`    // GeV
	Sigma Real `json:"sigma,omitempty"` // GeV^-2 per state
}

type Config struct {
	Trajectories    int         `json:"trajectories"`
	Seed            int64       `json:"seed,omitempty"`
	Workers         int         `json:"workers,omitempty"`
	MaxCaptureSteps int         `json:"maxCaptureSteps,omitempty"`
	MaxCascadeSteps int         `json:"maxCascadeSteps,omitempty"`
	Out             string      `json:"out,omitempty"`
	Detector        DetectorCfg `json:"detector"`
	Medium          MediumCfg   `json:"medium"`
	Model           ModelCfg    `json:"model"`
}

func loadConfig(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var cfg Config
	if err := json.Unmarshal(data, &cfg); err != nil {
		return nil, err
	}
	// Defaults / validation
	if cfg.Trajectories <= 0 {
		cfg.Trajectories = DefaultTrajectories
	}
	if cfg.MaxCaptureSteps <= 0 {
		cfg.MaxCaptureSteps = MaxCaptureSteps
	}
	if cfg.MaxCascadeSteps <= 0 {
		cfg.MaxCascadeSteps = MaxCascadeSteps
	}
	if cfg.Out == "" {
		cfg.Out = DefaultOut
	}
	if cfg.Detector.Length == 0 && cfg.Detector.Width == 0 && cfg.Detector.Height == 0 {
		cfg.Detector = DetectorCfg{Length: DefaultLength, Width: DefaultWidth, Height: DefaultHeight}
	}
	if cfg.Detector.Length <= 0 || cfg.Detector.Width <= 0 || cfg.Detector.Height <= 0 {
		return nil, fmt.Errorf("%w: %g x %g x %g", ErrBadDimensions,
			cfg.Detector.Length, cfg.Detector.Width, cfg.Detector.Height)
	}
	if cfg.Medium.NumberDensity == 0 {
		cfg.Medium.NumberDensity = LArNumberDensity
	}
	if cfg.Medium.NumberDensity < 0 {
		return nil, fmt.Errorf("%w: %g", ErrBadDensity, cfg.Medium.NumberDensity)
	}
	if cfg.Medium.CrossSection < 0 {
		return nil, fmt.Errorf("%w: %g", ErrBadCrossSection, cfg.Medium.CrossSection)
	}
	if cfg.Model.NMax <= 0 {
		cfg.Model.NMax = DefaultNMax
	}
	if cfg.Model.E0 == 0 {
		cfg.Model.E0 = DefaultE0
	}
	if cfg.Model.Sigma == 0 {
		cfg.Model.Sigma = DefaultSigma
	}
	DebugLog("Loaded config from %s: trajectories=%d, detector=%g x %g x %g, rho=%g, nMax=%d",
		path, cfg.Trajectories, cfg.Detector.Length, cfg.Detector.Width, cfg.Detector.Height,
		cfg.Medium.NumberDensity, cfg.Model.NMax)
	return &cfg, nil
}
