package rendering

import (
	"math"

	"github.com/mmuldo/colorimetry/chroma"
	"github.com/mmuldo/colorimetry/spectral"
)

// MaxDC is the CIE 13.3 tolerance on the test source's distance from the
// reference in CIE 1960 uv; beyond it Ra is not meaningful.
const MaxDC = 5.4e-3

// CRIResult is the CIE 13.3 color rendering index of a light source.
type CRIResult struct {
	CCT       float64 `json:"cct"`
	Duv       float64 `json:"duv"`
	Reference Kind    `json:"reference"`
	// Ra averages R1-R8 only and is clamped to [0, 100].
	Ra float64 `json:"ra"`
	// Ri holds R1-R14. Values can be negative.
	Ri [NumTCS]float64 `json:"ri"`
	// DC is the uv distance between test and reference chromaticities.
	DC float64 `json:"dc"`
	// WithinTolerance reports DC <= MaxDC.
	WithinTolerance bool `json:"withinTolerance"`
}

// R9 returns the saturated-red special index.
func (r *CRIResult) R9() float64 { return r.Ri[8] }

// CRI computes the color rendering index of d.
func CRI(d *spectral.Distribution) (*CRIResult, error) {
	s, err := prepare(d)
	if err != nil {
		return nil, err
	}
	return s.cri(), nil
}

// vonKries holds the c, d auxiliary terms of the CIE 13.3 adaptation.
type vonKries struct{ c, d float64 }

func kriesTerms(p chroma.UCS) vonKries {
	return vonKries{
		c: (4 - p.U - 10*p.V) / p.V,
		d: (1.708*p.V + 0.404 - 1.481*p.U) / p.V,
	}
}

// wuv is a CIE 1964 W*U*V* coordinate.
type wuv struct{ w, u, v float64 }

func toWUV(y float64, p, white chroma.UCS) wuv {
	w := 25*math.Cbrt(math.Max(y, 1)) - 17
	return wuv{w: w, u: 13 * w * (p.U - white.U), v: 13 * w * (p.V - white.V)}
}

func (s *scene) cri() *CRIResult {
	tk := chroma.XYZToUCS(s.testWhite)
	rw := chroma.XYZToUCS(s.refWhite)
	k, r := kriesTerms(tk), kriesTerms(rw)
	cr, dr := r.c/k.c, r.d/k.d

	res := &CRIResult{
		CCT:       s.estimate.CCT,
		Duv:       s.estimate.Duv,
		Reference: s.ref.Kind,
	}

	tcs := samples().tcs
	var raw [NumTCS]float64
	for i, refl := range tcs {
		underTest := spectral.IntegrateReflectance(s.test, refl)
		underRef := spectral.IntegrateReflectance(s.ref.Spectrum, refl)

		ti := kriesTerms(chroma.XYZToUCS(underTest))
		den := 16.518 + 1.481*cr*ti.c - dr*ti.d
		adapted := chroma.UCS{
			U: (10.872 + 0.404*cr*ti.c - 4*dr*ti.d) / den,
			V: 5.520 / den,
		}

		a := toWUV(underTest.Y, adapted, rw)
		b := toWUV(underRef.Y, chroma.XYZToUCS(underRef), rw)
		de := math.Sqrt((a.w-b.w)*(a.w-b.w) + (a.u-b.u)*(a.u-b.u) + (a.v-b.v)*(a.v-b.v))

		raw[i] = 100 - 4.6*de
		res.Ri[i] = round1(raw[i])
	}

	var sum float64
	for _, v := range raw[:8] {
		sum += v
	}
	res.Ra = round1(clamp(sum/8, 0, 100))

	res.DC = round4(math.Hypot(tk.U-rw.U, tk.V-rw.V))
	res.WithinTolerance = math.Hypot(tk.U-rw.U, tk.V-rw.V) <= MaxDC
	return res
}
