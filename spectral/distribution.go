package spectral

import (
	"fmt"
	"sort"

	"github.com/mmuldo/colorimetry/validate"
)

// Sample is one measured point of a spectral distribution.
type Sample struct {
	Wavelength float64 `json:"wavelength"`
	Intensity  float64 `json:"intensity"`
}

// Distribution is an immutable spectral power distribution with arbitrary,
// possibly irregular sampling, ordered by wavelength.
type Distribution struct {
	samples []Sample
}

// New validates samples and builds a Distribution from a sorted copy.
// It requires at least two points, finite values, non-negative intensities
// and distinct wavelengths.
func New(samples []Sample) (*Distribution, error) {
	if len(samples) < 2 {
		return nil, fmt.Errorf("%w: got %d", validate.ErrTooFewPoints, len(samples))
	}

	s := make([]Sample, len(samples))
	copy(s, samples)
	for i, p := range s {
		if err := validate.Finite(fmt.Sprintf("sample[%d]", i), p.Wavelength, p.Intensity); err != nil {
			return nil, err
		}
		if p.Wavelength <= 0 {
			return nil, fmt.Errorf("%w: sample[%d] wavelength %g", validate.ErrInvalidInput, i, p.Wavelength)
		}
		if p.Intensity < 0 {
			return nil, fmt.Errorf("%w: sample[%d] intensity %g is negative", validate.ErrInvalidInput, i, p.Intensity)
		}
	}

	sort.Slice(s, func(i, j int) bool { return s[i].Wavelength < s[j].Wavelength })
	for i := 1; i < len(s); i++ {
		if s[i].Wavelength == s[i-1].Wavelength {
			return nil, fmt.Errorf("%w: duplicate wavelength %g", validate.ErrInvalidInput, s[i].Wavelength)
		}
	}

	return &Distribution{samples: s}, nil
}

// FromArrays builds a Distribution from parallel wavelength/intensity slices.
func FromArrays(wavelengths, intensities []float64) (*Distribution, error) {
	if len(wavelengths) != len(intensities) {
		return nil, fmt.Errorf("%w: %d wavelengths, %d intensities",
			validate.ErrLengthMismatch, len(wavelengths), len(intensities))
	}
	s := make([]Sample, len(wavelengths))
	for i := range wavelengths {
		s[i] = Sample{Wavelength: wavelengths[i], Intensity: intensities[i]}
	}
	return New(s)
}

// FromSpectrum wraps a grid spectrum as a Distribution.
func FromSpectrum(s Spectrum) (*Distribution, error) {
	return New(s.Samples())
}

// Len returns the number of samples.
func (d *Distribution) Len() int { return len(d.samples) }

// Samples returns a copy of the samples in wavelength order.
func (d *Distribution) Samples() []Sample {
	out := make([]Sample, len(d.samples))
	copy(out, d.samples)
	return out
}

// Range returns the first and last sampled wavelengths.
func (d *Distribution) Range() (lo, hi float64) {
	return d.samples[0].Wavelength, d.samples[len(d.samples)-1].Wavelength
}

// At returns the intensity at wavelength by linear interpolation, holding the
// edge samples flat outside the sampled range.
func (d *Distribution) At(wavelength float64) float64 {
	return interpolate(d.samples, wavelength)
}

// Resample interpolates d onto the standard grid.
func (d *Distribution) Resample() Spectrum {
	return resample(d.samples)
}

// Resample interpolates raw samples onto the standard grid without
// validating them. An empty list yields a zero spectrum.
func Resample(samples []Sample) Spectrum {
	s := make([]Sample, len(samples))
	copy(s, samples)
	sort.Slice(s, func(i, j int) bool { return s[i].Wavelength < s[j].Wavelength })
	return resample(s)
}

func resample(sorted []Sample) Spectrum {
	var out Spectrum
	if len(sorted) == 0 {
		return out
	}
	for i := range out {
		out[i] = interpolate(sorted, Wavelength(i))
	}
	return out
}

func interpolate(s []Sample, wl float64) float64 {
	n := len(s)
	if wl <= s[0].Wavelength {
		return s[0].Intensity
	}
	if wl >= s[n-1].Wavelength {
		return s[n-1].Intensity
	}
	// first index with wavelength >= wl; 0 < j < n here
	j := sort.Search(n, func(i int) bool { return s[i].Wavelength >= wl })
	a, b := s[j-1], s[j]
	if b.Wavelength == wl {
		return b.Intensity
	}
	t := (wl - a.Wavelength) / (b.Wavelength - a.Wavelength)
	return a.Intensity + t*(b.Intensity-a.Intensity)
}
