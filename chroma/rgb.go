package chroma

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/mmuldo/colorimetry/validate"
)

// sRGB (D65) primaries matrices, IEC 61966-2-1.
var (
	rgbToXYZ = [3][3]float64{
		{0.4124564, 0.3575761, 0.1804375},
		{0.2126729, 0.7151522, 0.0721750},
		{0.0193339, 0.1191920, 0.9503041},
	}
	xyzToRGB = [3][3]float64{
		{3.2404542, -1.5371385, -0.4985314},
		{-0.9692660, 1.8760108, 0.0415560},
		{0.0556434, -0.2040259, 1.0572252},
	}
)

// Encode applies the sRGB transfer function to a linear channel in [0, 1].
func Encode(linear float64) float64 {
	if linear <= 0.0031308 {
		return 12.92 * linear
	}
	return 1.055*math.Pow(linear, 1/2.4) - 0.055
}

// Decode removes the sRGB transfer function from a channel in [0, 1].
func Decode(encoded float64) float64 {
	if encoded <= 0.04045 {
		return encoded / 12.92
	}
	return math.Pow((encoded+0.055)/1.055, 2.4)
}

func mul(m [3][3]float64, a, b, c float64) (float64, float64, float64) {
	return m[0][0]*a + m[0][1]*b + m[0][2]*c,
		m[1][0]*a + m[1][1]*b + m[1][2]*c,
		m[2][0]*a + m[2][1]*b + m[2][2]*c
}

func to8(v float64) float64 {
	return math.Round(math.Max(0, math.Min(255, v*255)))
}

// XYZToRGB converts a D65 tristimulus value (Y=100 white) to sRGB. Channels
// are rounded and clamped to [0, 255]; non-finite input is rejected since
// clamping would hide it.
func XYZToRGB(c XYZ) (RGB, error) {
	if err := c.Validate(); err != nil {
		return RGB{}, err
	}
	r, g, b := mul(xyzToRGB, c.X/100, c.Y/100, c.Z/100)
	return RGB{
		R: to8(Encode(r)),
		G: to8(Encode(g)),
		B: to8(Encode(b)),
	}, nil
}

// RGBToXYZ converts sRGB channels in [0, 255] to a D65 tristimulus value.
func RGBToXYZ(c RGB) XYZ {
	r, g, b := mul(rgbToXYZ, Decode(c.R/255), Decode(c.G/255), Decode(c.B/255))
	return XYZ{X: r * 100, Y: g * 100, Z: b * 100}
}

// RGBToHSL converts sRGB to hue/saturation/lightness.
func RGBToHSL(c RGB) HSL {
	r, g, b := c.R/255, c.G/255, c.B/255
	hi := math.Max(r, math.Max(g, b))
	lo := math.Min(r, math.Min(g, b))
	l := (hi + lo) / 2
	if hi == lo {
		return HSL{H: 0, S: 0, L: l * 100}
	}

	d := hi - lo
	var s float64
	if l > 0.5 {
		s = d / (2 - hi - lo)
	} else {
		s = d / (hi + lo)
	}

	var h float64
	switch hi {
	case r:
		h = (g - b) / d
		if g < b {
			h += 6
		}
	case g:
		h = (b-r)/d + 2
	default:
		h = (r-g)/d + 4
	}
	return HSL{H: h * 60, S: s * 100, L: l * 100}
}

func hueToChannel(p, q, t float64) float64 {
	if t < 0 {
		t++
	}
	if t > 1 {
		t--
	}
	switch {
	case t < 1.0/6:
		return p + (q-p)*6*t
	case t < 0.5:
		return q
	case t < 2.0/3:
		return p + (q-p)*(2.0/3-t)*6
	}
	return p
}

// HSLToRGB converts hue/saturation/lightness back to sRGB.
func HSLToRGB(c HSL) RGB {
	h := math.Mod(c.H, 360) / 360
	if h < 0 {
		h++
	}
	s, l := c.S/100, c.L/100
	if s == 0 {
		v := math.Round(l * 255)
		return RGB{R: v, G: v, B: v}
	}
	var q float64
	if l < 0.5 {
		q = l * (1 + s)
	} else {
		q = l + s - l*s
	}
	p := 2*l - q
	return RGB{
		R: math.Round(hueToChannel(p, q, h+1.0/3) * 255),
		G: math.Round(hueToChannel(p, q, h) * 255),
		B: math.Round(hueToChannel(p, q, h-1.0/3) * 255),
	}
}

// RGBToCMYK converts sRGB to naive process CMYK.
func RGBToCMYK(c RGB) CMYK {
	r, g, b := c.R/255, c.G/255, c.B/255
	k := 1 - math.Max(r, math.Max(g, b))
	if k == 1 {
		return CMYK{K: 100}
	}
	return CMYK{
		C: (1 - r - k) / (1 - k) * 100,
		M: (1 - g - k) / (1 - k) * 100,
		Y: (1 - b - k) / (1 - k) * 100,
		K: k * 100,
	}
}

// CMYKToRGB is the inverse of RGBToCMYK.
func CMYKToRGB(c CMYK) RGB {
	k := 1 - c.K/100
	return RGB{
		R: math.Round(255 * (1 - c.C/100) * k),
		G: math.Round(255 * (1 - c.M/100) * k),
		B: math.Round(255 * (1 - c.Y/100) * k),
	}
}

// RGBToHex formats sRGB as "#rrggbb".
func RGBToHex(c RGB) string {
	clamp := func(v float64) uint8 { return uint8(math.Round(math.Max(0, math.Min(255, v)))) }
	return fmt.Sprintf("#%02x%02x%02x", clamp(c.R), clamp(c.G), clamp(c.B))
}

// HexToRGB parses "#rgb" or "#rrggbb"; the leading '#' is optional.
func HexToRGB(s string) (RGB, error) {
	h := strings.TrimPrefix(strings.TrimSpace(s), "#")
	if len(h) == 3 {
		h = string([]byte{h[0], h[0], h[1], h[1], h[2], h[2]})
	}
	if len(h) != 6 {
		return RGB{}, fmt.Errorf("%w: hex color %q", validate.ErrInvalidInput, s)
	}
	v, err := strconv.ParseUint(h, 16, 32)
	if err != nil {
		return RGB{}, fmt.Errorf("%w: hex color %q", validate.ErrInvalidInput, s)
	}
	return RGB{
		R: float64(v >> 16 & 0xff),
		G: float64(v >> 8 & 0xff),
		B: float64(v & 0xff),
	}, nil
}
