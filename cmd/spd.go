package cmd

import (
	"bytes"
	"encoding/json"
	"fmt"
	"os"

	"github.com/mmuldo/colorimetry/spectral"
)

// spdFile is the object form of a distribution file. A file may instead hold
// a bare array of {"wavelength", "intensity"} samples.
type spdFile struct {
	Wavelengths []float64 `json:"wavelengths"`
	Intensities []float64 `json:"intensities"`
}

// loadDistribution reads a spectral power distribution from a JSON file.
func loadDistribution(path string) (*spectral.Distribution, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	b = bytes.TrimSpace(b)
	if len(b) > 0 && b[0] == '[' {
		var samples []spectral.Sample
		if err := json.Unmarshal(b, &samples); err != nil {
			return nil, fmt.Errorf("%s: %w", path, err)
		}
		d, err := spectral.New(samples)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", path, err)
		}
		return d, nil
	}

	var f spdFile
	if err := json.Unmarshal(b, &f); err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	d, err := spectral.FromArrays(f.Wavelengths, f.Intensities)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return d, nil
}

// loadGrid reads a JSON array of values sampled on the 380-780nm, 5nm grid.
func loadGrid(path string) ([]float64, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var v []float64
	if err := json.Unmarshal(b, &v); err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return v, nil
}
