package rendering

import (
	"github.com/mmuldo/colorimetry/deltae"
	"github.com/mmuldo/colorimetry/spectral"
)

// tlciScale is the CIEDE2000 difference at which a patch scores zero.
const tlciScale = 12.0

// TLCIResult is the Television Lighting Consistency Index of a light source.
type TLCIResult struct {
	CCT       float64 `json:"cct"`
	Duv       float64 `json:"duv"`
	Reference Kind    `json:"reference"`
	// Qa averages every patch.
	Qa float64 `json:"qa"`
	// Qi holds the per-patch scores, clamped to [0, 100].
	Qi [NumPatches]float64 `json:"qi"`
	// Approximate is always true: the patches are synthetic.
	Approximate bool `json:"approximate"`
}

// TLCI computes the Television Lighting Consistency Index of d.
func TLCI(d *spectral.Distribution) (*TLCIResult, error) {
	s, err := prepare(d)
	if err != nil {
		return nil, err
	}
	return s.tlci(), nil
}

func (s *scene) tlci() *TLCIResult {
	warnApproximation("tlci")

	res := &TLCIResult{
		CCT:         s.estimate.CCT,
		Duv:         s.estimate.Duv,
		Reference:   s.ref.Kind,
		Approximate: true,
	}

	var sum float64
	for i, refl := range samples().checker {
		test, ref := s.labPair(refl)
		q := clamp(100*(1-deltae.Unweighted(test, ref)/tlciScale), 0, 100)
		sum += q
		res.Qi[i] = round1(q)
	}
	res.Qa = round1(sum / NumPatches)
	return res
}
