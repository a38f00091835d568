/*
Package chroma converts between tristimulus values and the color
representations used by the colorimetry engines: CIE 1931 xy, CIE 1976 u'v',
CIE 1960 uv, CIE L*a*b* and its polar LCh form, and the device-referred sRGB
family (RGB, HSL, CMYK, hex).

Lab and sRGB conversions return ErrInvalidInput for non-finite values and
for a reference white with a non-positive component. The chromaticity
projections are total functions: degenerate denominators fall back to the D65
white point and NaN inputs propagate, so callers validate with the Validate
methods defined here. LabConverter validates its white once for hot loops.

	xyz := chroma.XYZ{X: 41.24, Y: 21.26, Z: 1.93}
	lab, err := chroma.XYZToLab(xyz, chroma.WhiteD65)
	if err != nil {
		return err
	}
	lch := chroma.LabToLCh(lab)
*/
package chroma
