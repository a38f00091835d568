package spectral

import (
	"fmt"
	"math"

	"github.com/mmuldo/colorimetry/chroma"
	"github.com/mmuldo/colorimetry/validate"
)

// Second radiation constant (m·K), CIE 15:2004.
const c2 = 1.4388e-2

// Daylight CCT bounds for which the CIE D-series formula is defined.
const (
	DaylightMin = 4000.0
	DaylightMax = 25000.0
)

var (
	d65         = mustDaylight(6504)
	illuminantA = mustPlanckian(2856)
)

// D65 returns the CIE D65 spectrum (D-series at 6504K).
func D65() Spectrum { return d65 }

// IlluminantA returns CIE illuminant A (a 2856K Planckian radiator).
func IlluminantA() Spectrum { return illuminantA }

// Planckian returns the blackbody spectrum at temperature t (K), normalized
// to 100 at 560nm.
func Planckian(t float64) (Spectrum, error) {
	if err := validate.Finite("temperature", t); err != nil {
		return Spectrum{}, err
	}
	if t <= 0 {
		return Spectrum{}, fmt.Errorf("%w: temperature %gK", validate.ErrInvalidInput, t)
	}

	radiance := func(nm float64) float64 {
		l := nm * 1e-9
		return math.Pow(l, -5) / math.Expm1(c2/(l*t))
	}
	ref := radiance(560)

	var s Spectrum
	for i := range s {
		s[i] = 100 * radiance(Wavelength(i)) / ref
	}
	return s, nil
}

// DaylightXY returns the chromaticity of CIE daylight at t, with t clamped
// into [DaylightMin, DaylightMax].
func DaylightXY(t float64) chroma.XY {
	t = math.Max(DaylightMin, math.Min(DaylightMax, t))
	t2, t3 := t*t, t*t*t
	var x float64
	if t <= 7000 {
		x = -4.6070e9/t3 + 2.9678e6/t2 + 0.09911e3/t + 0.244063
	} else {
		x = -2.0064e9/t3 + 1.9018e6/t2 + 0.24748e3/t + 0.237040
	}
	return chroma.XY{X: x, Y: -3.000*x*x + 2.870*x - 0.275}
}

// Daylight returns the CIE D-series spectrum at t (K), with t clamped into
// [DaylightMin, DaylightMax].
func Daylight(t float64) (Spectrum, error) {
	if err := validate.Finite("temperature", t); err != nil {
		return Spectrum{}, err
	}
	if t <= 0 {
		return Spectrum{}, fmt.Errorf("%w: temperature %gK", validate.ErrInvalidInput, t)
	}

	xy := DaylightXY(t)
	m := 0.0241 + 0.2562*xy.X - 0.7341*xy.Y
	m1 := (-1.3515 - 1.7703*xy.X + 5.9114*xy.Y) / m
	m2 := (0.0300 - 31.4424*xy.X + 30.0717*xy.Y) / m

	var s0, s1, s2 [41]float64
	for i, b := range daylightBasis {
		s0[i], s1[i], s2[i] = b[0], b[1], b[2]
	}
	e0, e1, e2 := expand10(&s0), expand10(&s1), expand10(&s2)

	var s Spectrum
	for i := range s {
		s[i] = e0[i] + m1*e1[i] + m2*e2[i]
	}
	return s, nil
}

func mustDaylight(t float64) Spectrum {
	s, err := Daylight(t)
	if err != nil {
		panic(err)
	}
	return s
}

func mustPlanckian(t float64) Spectrum {
	s, err := Planckian(t)
	if err != nil {
		panic(err)
	}
	return s
}
