package spectral

const (
	// GridStart is the first wavelength of the standard grid, in nm.
	GridStart = 380.0
	// GridEnd is the last wavelength of the standard grid, in nm.
	GridEnd = 780.0
	// GridStep is the grid spacing, in nm.
	GridStep = 5.0
	// GridSize is the number of grid points.
	GridSize = 81
)

// Spectrum is a distribution sampled on the standard grid. Index i holds the
// value at GridStart + i*GridStep.
type Spectrum [GridSize]float64

// Wavelength returns the wavelength of grid index i.
func Wavelength(i int) float64 {
	return GridStart + float64(i)*GridStep
}

// Wavelengths returns the grid wavelengths.
func Wavelengths() []float64 {
	out := make([]float64, GridSize)
	for i := range out {
		out[i] = Wavelength(i)
	}
	return out
}

// Mul returns the element-wise product of s and o.
func (s Spectrum) Mul(o Spectrum) Spectrum {
	for i := range s {
		s[i] *= o[i]
	}
	return s
}

// Scale returns s multiplied by k.
func (s Spectrum) Scale(k float64) Spectrum {
	for i := range s {
		s[i] *= k
	}
	return s
}

// Max returns the largest value in s.
func (s Spectrum) Max() float64 {
	m := s[0]
	for _, v := range s[1:] {
		if v > m {
			m = v
		}
	}
	return m
}

// Samples returns s as a list of samples, e.g. to rebuild a Distribution.
func (s Spectrum) Samples() []Sample {
	out := make([]Sample, GridSize)
	for i, v := range s {
		out[i] = Sample{Wavelength: Wavelength(i), Intensity: v}
	}
	return out
}

// expand10 linearly interpolates a 10nm table spanning the grid onto 5nm.
func expand10(v *[41]float64) Spectrum {
	var s Spectrum
	for i := range s {
		j := i / 2
		if i%2 == 0 {
			s[i] = v[j]
		} else {
			s[i] = (v[j] + v[j+1]) / 2
		}
	}
	return s
}
