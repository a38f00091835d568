package chroma

import (
	"fmt"

	"github.com/mmuldo/colorimetry/validate"
)

// XYZToXYChecked is XYZToXY for untrusted input. It rejects non-finite and
// negative components, and a zero sum instead of substituting D65.
func XYZToXYChecked(c XYZ) (XY, error) {
	if err := checkTristimulus(c); err != nil {
		return XY{}, err
	}
	return XYZToXY(c), nil
}

// XYZToUVChecked is XYZToUV with the same checks as XYZToXYChecked.
func XYZToUVChecked(c XYZ) (UV, error) {
	if err := checkTristimulus(c); err != nil {
		return UV{}, err
	}
	return XYZToUV(c), nil
}

func checkTristimulus(c XYZ) error {
	if err := c.Validate(); err != nil {
		return err
	}
	if err := validate.NonNegative("xyz", c.X, c.Y, c.Z); err != nil {
		return err
	}
	if c.X+c.Y+c.Z == 0 {
		return fmt.Errorf("%w: xyz is black, chromaticity undefined", validate.ErrInvalidInput)
	}
	return nil
}

// XYZToXY projects a tristimulus value onto the 1931 chromaticity diagram.
func XYZToXY(c XYZ) XY {
	sum := c.X + c.Y + c.Z
	if sum == 0 {
		return D65
	}
	return XY{X: c.X / sum, Y: c.Y / sum}
}

// XYZToUV projects a tristimulus value onto the 1976 u'v' diagram.
func XYZToUV(c XYZ) UV {
	d := c.X + 15*c.Y + 3*c.Z
	if d == 0 {
		return XYToUV(D65)
	}
	return UV{U: 4 * c.X / d, V: 9 * c.Y / d}
}

// XYToUV converts 1931 xy to 1976 u'v'.
func XYToUV(c XY) UV {
	d := -2*c.X + 12*c.Y + 3
	if d == 0 {
		c = D65
		d = -2*c.X + 12*c.Y + 3
	}
	return UV{U: 4 * c.X / d, V: 9 * c.Y / d}
}

// UVToXY converts 1976 u'v' back to 1931 xy.
func UVToXY(c UV) XY {
	d := 6*c.U - 16*c.V + 12
	if d == 0 {
		return D65
	}
	return XY{X: 9 * c.U / d, Y: 4 * c.V / d}
}

// XYToUCS converts 1931 xy to CIE 1960 uv.
func XYToUCS(c XY) UCS {
	d := -2*c.X + 12*c.Y + 3
	if d == 0 {
		c = D65
		d = -2*c.X + 12*c.Y + 3
	}
	return UCS{U: 4 * c.X / d, V: 6 * c.Y / d}
}

// XYZToUCS converts a tristimulus value to CIE 1960 uv.
func XYZToUCS(c XYZ) UCS {
	d := c.X + 15*c.Y + 3*c.Z
	if d == 0 {
		return XYToUCS(D65)
	}
	return UCS{U: 4 * c.X / d, V: 6 * c.Y / d}
}

// XYYToXYZ rebuilds a tristimulus value from chromaticity and luminance.
// A zero y substitutes the D65 chromaticity.
func XYYToXYZ(c XY, luminance float64) XYZ {
	if c.Y == 0 {
		c = D65
	}
	return XYZ{
		X: c.X * luminance / c.Y,
		Y: luminance,
		Z: (1 - c.X - c.Y) * luminance / c.Y,
	}
}
