package cct

import (
	"fmt"

	"github.com/mmuldo/colorimetry/chroma"
	"github.com/mmuldo/colorimetry/validate"
)

// Category is a coarse description of a CCT.
type Category int

const (
	// Warm is below 3500K.
	Warm Category = iota
	// Neutral is 3500K to 5500K inclusive.
	Neutral
	// Cool is above 5500K.
	Cool
)

func (c Category) String() string {
	switch c {
	case Warm:
		return "warm"
	case Neutral:
		return "neutral"
	case Cool:
		return "cool"
	}
	return fmt.Sprintf("Category(%d)", int(c))
}

// Interpret buckets a CCT into warm, neutral or cool.
func Interpret(cct float64) Category {
	switch {
	case cct < 3500:
		return Warm
	case cct <= 5500:
		return Neutral
	default:
		return Cool
	}
}

// CCT returns McCamy's CCT for c, rounded to the nearest kelvin.
func CCT(c chroma.XY) (float64, error) {
	if err := c.Validate(); err != nil {
		return 0, fmt.Errorf("cct: %w", err)
	}
	v := McCamy(c)
	if err := validate.Finite("cct", v); err != nil {
		return 0, fmt.Errorf("cct: chromaticity %+v on McCamy singularity: %w", c, err)
	}
	return round(v, 0), nil
}

// Duv returns the signed distance from c to the Planckian locus in CIE 1960
// uv, rounded to four decimals. Positive values lie above the locus.
func Duv(c chroma.XY) (float64, error) {
	if err := c.Validate(); err != nil {
		return 0, fmt.Errorf("duv: %w", err)
	}
	if err := validate.Finite("cct", McCamy(c)); err != nil {
		return 0, fmt.Errorf("duv: chromaticity %+v on McCamy singularity: %w", c, err)
	}
	_, duv := nearest(c)
	return round(duv, 4), nil
}

// Estimate returns both CCT and Duv for c.
func Estimate(c chroma.XY) (Result, error) {
	t, err := CCT(c)
	if err != nil {
		return Result{}, err
	}
	_, duv := nearest(c)
	return Result{CCT: t, Duv: round(duv, 4)}, nil
}

// EstimateXYZ derives the chromaticity of a tristimulus value and estimates
// its CCT and Duv.
func EstimateXYZ(c chroma.XYZ) (Result, error) {
	if err := c.Validate(); err != nil {
		return Result{}, fmt.Errorf("cct: %w", err)
	}
	return Estimate(chroma.XYZToXY(c))
}
