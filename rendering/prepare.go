package rendering

import (
	"fmt"
	"log/slog"
	"math"

	"github.com/mmuldo/colorimetry/cct"
	"github.com/mmuldo/colorimetry/chroma"
	"github.com/mmuldo/colorimetry/spectral"
	"github.com/mmuldo/colorimetry/validate"
)

// scene is a test spectrum paired with its reference illuminant.
type scene struct {
	test      spectral.Spectrum
	testWhite chroma.XYZ
	testLab   *chroma.LabConverter
	estimate  cct.Result
	ref       Reference
	refWhite  chroma.XYZ
	refLab    *chroma.LabConverter
}

func prepare(d *spectral.Distribution) (*scene, error) {
	if d == nil {
		return nil, fmt.Errorf("%w: nil distribution", validate.ErrInvalidInput)
	}
	return prepareSpectrum(d.Resample())
}

func prepareSpectrum(test spectral.Spectrum) (*scene, error) {
	white := spectral.IntegrateNormalized(test)
	if white.Y == 0 {
		return nil, fmt.Errorf("%w: spectrum has no luminous power in 380-780nm", validate.ErrInvalidInput)
	}

	est, err := cct.EstimateXYZ(white)
	if err != nil {
		return nil, fmt.Errorf("rendering: %w", err)
	}
	ref, err := ReferenceFor(est.CCT)
	if err != nil {
		return nil, fmt.Errorf("rendering: reference at %gK: %w", est.CCT, err)
	}

	Logger().Debug("reference illuminant selected",
		slog.Float64("cct", est.CCT),
		slog.Float64("duv", est.Duv),
		slog.String("reference", ref.Kind.String()))

	testLab, err := chroma.NewLabConverter(white)
	if err != nil {
		return nil, fmt.Errorf("rendering: test white: %w", err)
	}
	refWhite := spectral.IntegrateNormalized(ref.Spectrum)
	refLab, err := chroma.NewLabConverter(refWhite)
	if err != nil {
		return nil, fmt.Errorf("rendering: reference white: %w", err)
	}

	return &scene{
		test:      test,
		testWhite: white,
		testLab:   testLab,
		estimate:  est,
		ref:       ref,
		refWhite:  refWhite,
		refLab:    refLab,
	}, nil
}

// labPair returns the Lab coordinates of a reflectance under the test and
// reference illuminants, each relative to its own illuminant's white.
func (s *scene) labPair(r spectral.Spectrum) (test, ref chroma.Lab) {
	test = s.testLab.Lab(spectral.IntegrateReflectance(s.test, r))
	ref = s.refLab.Lab(spectral.IntegrateReflectance(s.ref.Spectrum, r))
	return test, ref
}

func round1(v float64) float64 { return math.Round(v*10) / 10 }

func round4(v float64) float64 { return math.Round(v*1e4) / 1e4 }

func clamp(v, lo, hi float64) float64 { return math.Max(lo, math.Min(hi, v)) }
