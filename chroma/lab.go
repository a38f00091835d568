package chroma

import (
	"fmt"
	"math"

	"github.com/jkl1337/go-chromath"

	"github.com/mmuldo/colorimetry/validate"
)

// LabConverter converts between tristimulus values and L*a*b* relative to a
// fixed reference white.
type LabConverter struct {
	t *chromath.LabTransformer
}

// NewLabConverter returns a converter for white. Every component of white
// must be finite and positive.
func NewLabConverter(white XYZ) (*LabConverter, error) {
	if err := white.Validate(); err != nil {
		return nil, fmt.Errorf("white: %w", err)
	}
	if white.X <= 0 || white.Y <= 0 || white.Z <= 0 {
		return nil, fmt.Errorf("%w: white %+v has a non-positive component", validate.ErrInvalidInput, white)
	}
	ref := &chromath.IlluminantRef{XYZ: chromath.XYZ{white.X, white.Y, white.Z}}
	return &LabConverter{t: chromath.NewLabTransformer(ref)}, nil
}

// Lab converts c without validating it; NaN propagates.
func (l *LabConverter) Lab(c XYZ) Lab {
	p := l.t.Invert(chromath.XYZ{c.X, c.Y, c.Z})
	return Lab{L: p.L(), A: p.A(), B: p.B()}
}

// XYZ is the inverse of Lab.
func (l *LabConverter) XYZ(c Lab) XYZ {
	p := l.t.Convert(chromath.Lab{c.L, c.A, c.B})
	return XYZ{X: p.X(), Y: p.Y(), Z: p.Z()}
}

// XYZToLab converts a tristimulus value to L*a*b* relative to white.
func XYZToLab(c, white XYZ) (Lab, error) {
	if err := c.Validate(); err != nil {
		return Lab{}, err
	}
	l, err := NewLabConverter(white)
	if err != nil {
		return Lab{}, err
	}
	return l.Lab(c), nil
}

// LabToXYZ is the inverse of XYZToLab.
func LabToXYZ(c Lab, white XYZ) (XYZ, error) {
	if err := c.Validate(); err != nil {
		return XYZ{}, err
	}
	l, err := NewLabConverter(white)
	if err != nil {
		return XYZ{}, err
	}
	return l.XYZ(c), nil
}

// LabToLCh converts to polar form with the hue normalized into [0, 360).
func LabToLCh(c Lab) LCh {
	return LCh{L: c.L, C: math.Hypot(c.A, c.B), H: Hue(c.A, c.B)}
}

// LChToLab converts polar LCh back to rectangular Lab.
func LChToLab(c LCh) Lab {
	rad := c.H * math.Pi / 180
	return Lab{L: c.L, A: c.C * math.Cos(rad), B: c.C * math.Sin(rad)}
}

// Hue returns atan2(b, a) in degrees, normalized into [0, 360).
func Hue(a, b float64) float64 {
	h := math.Atan2(b, a) * 180 / math.Pi
	if h < 0 {
		h += 360
	}
	if h >= 360 {
		h -= 360
	}
	return h
}
