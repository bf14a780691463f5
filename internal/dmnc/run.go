package dmnc

import (
	"math/rand"
	"runtime"
	"sync"
	"sync/atomic"
	"time"

	log "github.com/sirupsen/logrus"
)

// Run loads a config, builds the calculator and detectors, simulates
// the requested number of independent DM trajectories and saves the
// results. Trajectories are spread over a worker pool: geometry and
// medium inputs are read-only, so each worker gets its own detector
// and rng and never shares mutable state.
func Run(cfgPath string) error {
	cfg, err := loadConfig(cfgPath)
	if err != nil {
		return err
	}

	model, err := NewHydrogenLike(cfg.Model.NMax, cfg.Model.E0, cfg.Model.Sigma)
	if err != nil {
		return err
	}
	weights := model.CaptureWeights()
	sigma := cfg.Medium.CrossSection
	if sigma == 0 {
		sigma = TotalCrossSectionCm2(weights)
	}

	workers := cfg.Workers
	if workers <= 0 {
		workers = runtime.NumCPU()
	}
	if workers > cfg.Trajectories {
		workers = cfg.Trajectories
	}

	seed := cfg.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}

	// Contiguous trajectory ranges per worker (remainder spread).
	base, rem := cfg.Trajectories/workers, cfg.Trajectories%workers

	total := int64(cfg.Trajectories)
	nextPrint := int64(1)
	if total >= 100 {
		nextPrint = total / 100 // ~1%
	}
	var counter int64

	results := make([]TrajectoryResult, cfg.Trajectories)
	errs := make([]error, workers)

	start := time.Now()
	var wg sync.WaitGroup
	wg.Add(workers)

	lo := 0
	for w := 0; w < workers; w++ {
		n := base
		if w < rem {
			n++
		}
		wid, first := w, lo
		lo += n
		go func() {
			defer wg.Done()
			rng := rand.New(rand.NewSource(seed ^ int64(uint64(wid)*0x9e3779b97f4a7c15)))
			det, err := NewDetector(cfg.Detector.Length, cfg.Detector.Width, cfg.Detector.Height,
				cfg.Medium.NumberDensity, sigma, weights, rng)
			if err != nil {
				errs[wid] = err
				return
			}
			det.MaxCaptureSteps = cfg.MaxCaptureSteps
			det.MaxCascadeSteps = cfg.MaxCascadeSteps

			for i := first; i < first+n; i++ {
				res, err := simulateOne(det, model)
				if err != nil {
					errs[wid] = err
					return
				}
				results[i] = res

				done := atomic.AddInt64(&counter, 1)
				if done%nextPrint == 0 {
					log.WithField("pct", 100*done/total).Debug("progress")
				}
			}
		}()
	}
	wg.Wait()

	for _, err := range errs {
		if err != nil {
			return err
		}
	}

	elapsed := time.Since(start)
	var captures, photons, truncated int
	for _, r := range results {
		captures += len(r.Captures)
		photons += len(r.Photons)
		truncated += r.TruncatedCascades
	}
	log.WithFields(log.Fields{
		"trajectories": cfg.Trajectories,
		"captures":     captures,
		"photons":      photons,
		"truncated":    truncated,
		"elapsed":      elapsed,
	}).Info("simulation finished")

	return SaveResults(cfg.Out, results)
}

// simulateOne runs a single full trajectory on a reset detector:
// entry, capture walk, then the decay cascades.
func simulateOne(det *Detector, calc RateCalculator) (TrajectoryResult, error) {
	det.Reset()
	det.SampleEntry()

	res := TrajectoryResult{Entry: det.Pos, Direction: det.Dir}

	walkTruncated, err := det.CaptureWalk()
	if err != nil {
		return res, err
	}
	casc, err := det.RunCascades(calc)
	if err != nil {
		return res, err
	}

	res.Captures = det.Captures
	res.Photons = det.Photons
	res.WalkTruncated = walkTruncated
	res.TruncatedCascades = casc.Truncated
	return res, nil
}
