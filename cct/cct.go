// Package cct estimates correlated color temperature and distance from the
// Planckian locus (Duv) for a CIE 1931 chromaticity.
package cct

import (
	"math"

	"github.com/mmuldo/colorimetry/chroma"
)

// Locus bounds of the Kim et al. approximation, in kelvin.
const (
	MinTemperature = 1667.0
	MaxTemperature = 25000.0
)

// Result is a rounded CCT/Duv estimate: CCT to the nearest kelvin, Duv to
// four decimals.
type Result struct {
	CCT float64 `json:"cct"`
	Duv float64 `json:"duv"`
}

// McCamy estimates CCT with McCamy's 1992 cubic. It is accurate from roughly
// 2000K to 12500K and has no domain guard: y = 0.1858 divides by zero.
func McCamy(c chroma.XY) float64 {
	n := (c.X - 0.3320) / (0.1858 - c.Y)
	return 449*n*n*n + 3525*n*n + 6823.3*n + 5520.33
}

// PlanckianXY approximates the blackbody chromaticity at t with the Kim et
// al. (2002) cubic spline. t is clamped into [MinTemperature, MaxTemperature].
func PlanckianXY(t float64) chroma.XY {
	t = clampT(t)
	t2, t3 := t*t, t*t*t

	var x float64
	if t <= 4000 {
		x = -0.2661239e9/t3 - 0.2343589e6/t2 + 0.8776956e3/t + 0.179910
	} else {
		x = -3.0258469e9/t3 + 2.1070379e6/t2 + 0.2226347e3/t + 0.240390
	}

	x2, x3 := x*x, x*x*x
	var y float64
	switch {
	case t <= 2222:
		y = -1.1063814*x3 - 1.34811020*x2 + 2.18555832*x - 0.20219683
	case t <= 4000:
		y = -0.9549476*x3 - 1.37418593*x2 + 2.09137015*x - 0.16748867
	default:
		y = 3.0817580*x3 - 5.87338670*x2 + 3.75112997*x - 0.37001483
	}
	return chroma.XY{X: x, Y: y}
}

func clampT(t float64) float64 {
	return math.Max(MinTemperature, math.Min(MaxTemperature, t))
}

func round(v float64, places int) float64 {
	p := math.Pow(10, float64(places))
	return math.Round(v*p) / p
}
