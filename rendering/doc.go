/*
Package rendering scores how faithfully a light source renders colors,
using the CIE 13.3 color rendering index (Ra, R1-R14), the EBU Television
Lighting Consistency Index (Qa, Q1-Q18) and IES TM-30 (Rf, Rg and 16 hue
bins).

Every pipeline resamples the test spectrum onto the 5nm grid, estimates its
CCT, picks a reference illuminant at that CCT (Planckian below 5000K, CIE
D-series from 5000K up) and compares a set of reflectance samples lit by the
two sources:

	d, err := spectral.FromArrays(wavelengths, intensities)
	if err != nil {
		// handle error
	}
	cri, err := rendering.CRI(d)

Summary values are rounded: Ra, Ri, Qa, Qi, Rf and Rg to one decimal, Duv to
four, CCT to the nearest kelvin.

The TLCI and TM-30 samples are synthetic Gaussian approximations of the
standardized ColorChecker and CES reflectances. Scores therefore approximate
the published metrics; results carry Approximate=true and the package logs a
warning the first time they are computed.

All functions are safe for concurrent use. Evaluator scores many spectra on a
worker pool.
*/
package rendering
