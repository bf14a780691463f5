package dmnc

import (
	"bufio"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
)

// TrajectoryResult is the per-trajectory output handed to downstream
// plotting and statistics.
type TrajectoryResult struct {
	Entry     Point3         `json:"entry"`
	Direction Vector3        `json:"direction"`
	Captures  []CaptureEvent `json:"captures"`
	Photons   []Real         `json:"photonEnergies"` // GeV

	WalkTruncated     bool `json:"walkTruncated,omitempty"`
	TruncatedCascades int  `json:"truncatedCascades,omitempty"`
}

// SaveResults writes the run's trajectories as indented JSON, creating
// the parent directory if needed.
func SaveResults(path string, results []TrajectoryResult) error {
	if path == "" {
		return fmt.Errorf("dmnc: empty results path")
	}
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return err
		}
	}

	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()

	w := bufio.NewWriter(f)
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(results); err != nil {
		return err
	}
	if err := w.Flush(); err != nil {
		return err
	}
	_ = f.Sync() // optional

	return nil
}
