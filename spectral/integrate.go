package spectral

import (
	"fmt"

	"github.com/mmuldo/colorimetry/chroma"
	"github.com/mmuldo/colorimetry/validate"
)

// IntegrateOptions controls IntegrateArrays.
type IntegrateOptions struct {
	// Truncate integrates over the shorter of the illuminant and reflectance
	// arrays instead of rejecting a length mismatch.
	Truncate bool
	// Raw skips the Y=100 normalization.
	Raw bool
}

func (o *IntegrateOptions) normalize() IntegrateOptions {
	if o == nil {
		return IntegrateOptions{}
	}
	return *o
}

// integrate runs the trapezoidal rule over the first n grid points of
// illuminant (times reflectance when non-nil). It also returns the
// normalizing sum of illuminant times y-bar.
func integrate(illuminant, reflectance []float64, n int) (chroma.XYZ, float64) {
	var xyz chroma.XYZ
	var norm float64
	term := func(i int) (x, y, z, k float64) {
		s := illuminant[i]
		r := 1.0
		if reflectance != nil {
			r = reflectance[i]
		}
		cmf := cie1931[i]
		return s * r * cmf[0], s * r * cmf[1], s * r * cmf[2], s * cmf[1]
	}
	for i := 0; i+1 < n; i++ {
		x0, y0, z0, k0 := term(i)
		x1, y1, z1, k1 := term(i + 1)
		xyz.X += (x0 + x1) / 2 * GridStep
		xyz.Y += (y0 + y1) / 2 * GridStep
		xyz.Z += (z0 + z1) / 2 * GridStep
		norm += (k0 + k1) / 2 * GridStep
	}
	return xyz, norm
}

func scale(c chroma.XYZ, norm float64) chroma.XYZ {
	if norm == 0 {
		return c
	}
	k := 100 / norm
	return chroma.XYZ{X: c.X * k, Y: c.Y * k, Z: c.Z * k}
}

// Integrate returns the unnormalized tristimulus value of s.
func Integrate(s Spectrum) chroma.XYZ {
	xyz, _ := integrate(s[:], nil, GridSize)
	return xyz
}

// IntegrateNormalized returns the tristimulus value of s scaled so that Y=100.
// A spectrum with zero luminosity is returned unscaled.
func IntegrateNormalized(s Spectrum) chroma.XYZ {
	xyz, norm := integrate(s[:], nil, GridSize)
	return scale(xyz, norm)
}

// IntegrateReflectance returns the tristimulus value of a reflectance lit by
// illuminant, normalized per CIE 13.3 so the illuminant itself has Y=100.
func IntegrateReflectance(illuminant, reflectance Spectrum) chroma.XYZ {
	xyz, norm := integrate(illuminant[:], reflectance[:], GridSize)
	return scale(xyz, norm)
}

// IntegrateArrays integrates grid-aligned arrays (index i at GridStart +
// i*GridStep). reflectance may be nil for an illuminant alone. Arrays longer
// than the grid are cut to GridSize. Values must be finite and non-negative,
// as for New.
func IntegrateArrays(illuminant, reflectance []float64, opts *IntegrateOptions) (chroma.XYZ, error) {
	o := opts.normalize()
	if len(illuminant) == 0 {
		return chroma.XYZ{}, fmt.Errorf("%w: empty illuminant", validate.ErrInvalidInput)
	}
	if err := validate.Finite("illuminant", illuminant...); err != nil {
		return chroma.XYZ{}, err
	}
	if err := validate.Finite("reflectance", reflectance...); err != nil {
		return chroma.XYZ{}, err
	}
	if err := validate.NonNegative("illuminant", illuminant...); err != nil {
		return chroma.XYZ{}, err
	}
	if err := validate.NonNegative("reflectance", reflectance...); err != nil {
		return chroma.XYZ{}, err
	}

	n := len(illuminant)
	if reflectance != nil && len(reflectance) != n {
		if !o.Truncate {
			return chroma.XYZ{}, fmt.Errorf("%w: illuminant has %d points, reflectance %d",
				validate.ErrLengthMismatch, n, len(reflectance))
		}
		n = min(n, len(reflectance))
	}
	n = min(n, GridSize)

	xyz, norm := integrate(illuminant, reflectance, n)
	if o.Raw {
		return xyz, nil
	}
	return scale(xyz, norm), nil
}
