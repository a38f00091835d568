/*
Package spectral resamples spectral power distributions onto the standard
380-780nm, 5nm grid and integrates them against the CIE 1931 standard
observer.

A Distribution is an immutable, validated set of (wavelength, intensity)
samples with arbitrary spacing. Resampling interpolates linearly and holds the
edge samples flat outside the measured range:

	d, err := spectral.FromArrays(wavelengths, intensities)
	if err != nil {
		// handle error
	}
	xyz := spectral.IntegrateNormalized(d.Resample())

Reference illuminants (Planckian radiators and CIE D-series daylight) are
generated directly on the grid.
*/
package spectral
