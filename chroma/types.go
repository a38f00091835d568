package chroma

import "github.com/mmuldo/colorimetry/validate"

// XYZ is a CIE 1931 tristimulus value. Y is normally 100 for a reference white.
type XYZ struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
	Z float64 `json:"z"`
}

// XY is a CIE 1931 chromaticity coordinate.
type XY struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

// UV is a CIE 1976 u'v' chromaticity coordinate.
type UV struct {
	U float64 `json:"u"`
	V float64 `json:"v"`
}

// UCS is a CIE 1960 uv chromaticity coordinate, used by CCT/Duv and CRI.
type UCS struct {
	U float64 `json:"u"`
	V float64 `json:"v"`
}

// Lab is a CIE 1976 L*a*b* color.
type Lab struct {
	L float64 `json:"l"`
	A float64 `json:"a"`
	B float64 `json:"b"`
}

// LCh is the polar form of Lab. H is in degrees, [0, 360).
type LCh struct {
	L float64 `json:"l"`
	C float64 `json:"c"`
	H float64 `json:"h"`
}

// RGB is an sRGB color with channels in [0, 255].
type RGB struct {
	R float64 `json:"r"`
	G float64 `json:"g"`
	B float64 `json:"b"`
}

// HSL has H in degrees [0, 360) and S, L in percent.
type HSL struct {
	H float64 `json:"h"`
	S float64 `json:"s"`
	L float64 `json:"l"`
}

// CMYK has all channels in percent.
type CMYK struct {
	C float64 `json:"c"`
	M float64 `json:"m"`
	Y float64 `json:"y"`
	K float64 `json:"k"`
}

var (
	// WhiteD65 is the CIE D65 white point normalized to Y=100.
	WhiteD65 = XYZ{X: 95.047, Y: 100, Z: 108.883}

	// D65 is the CIE 1931 chromaticity of D65, also used as the fallback
	// for degenerate denominators.
	D65 = XY{X: 0.3127, Y: 0.3290}
)

// Validate reports whether every component is finite.
func (c XYZ) Validate() error { return validate.Finite("xyz", c.X, c.Y, c.Z) }

// Validate reports whether both coordinates are finite.
func (c XY) Validate() error { return validate.Finite("xy", c.X, c.Y) }

// Validate reports whether both coordinates are finite.
func (c UV) Validate() error { return validate.Finite("u'v'", c.U, c.V) }

// Validate reports whether every component is finite.
func (c Lab) Validate() error { return validate.Finite("lab", c.L, c.A, c.B) }
