package rendering

import (
	"math"

	"github.com/mmuldo/colorimetry/chroma"
	"github.com/mmuldo/colorimetry/deltae"
	"github.com/mmuldo/colorimetry/gamut"
	"github.com/mmuldo/colorimetry/spectral"
)

// fidelityScale converts mean CIEDE2000 into fidelity points.
const fidelityScale = 6.73

// Point is an (a*, b*) coordinate.
type Point struct {
	A float64 `json:"a"`
	B float64 `json:"b"`
}

// HueBin summarizes the samples of one 22.5 degree hue bin.
type HueBin struct {
	// Index runs from 1 to 16.
	Index   int `json:"index"`
	Samples int `json:"samples"`
	// Fidelity is the bin's Rf, rounded to one decimal.
	Fidelity float64 `json:"fidelity"`
	// HueShift is the test hue minus the reference hue, in (-180, 180].
	HueShift float64 `json:"hueShift"`
	// ChromaRatio is the test chroma over the reference chroma.
	ChromaRatio float64 `json:"chromaRatio"`
	Test        Point   `json:"test"`
	Reference   Point   `json:"reference"`
}

// TM30Result holds the IES TM-30 fidelity and gamut indices of a light source.
type TM30Result struct {
	CCT       float64         `json:"cct"`
	Duv       float64         `json:"duv"`
	Reference Kind            `json:"reference"`
	Rf        float64         `json:"rf"`
	Rg        float64         `json:"rg"`
	Bins      [NumBins]HueBin `json:"bins"`
	// Approximate is always true: the evaluation samples are synthetic.
	Approximate bool `json:"approximate"`
}

// TM30 computes the IES TM-30 indices of d.
func TM30(d *spectral.Distribution) (*TM30Result, error) {
	s, err := prepare(d)
	if err != nil {
		return nil, err
	}
	return s.tm30(), nil
}

// fidelity maps a mean color difference onto the 0-100 Rf scale.
func fidelity(meanDE float64) float64 {
	return 10 * math.Log(math.Exp((100-fidelityScale*meanDE)/10)+1)
}

func wrapDegrees(d float64) float64 {
	for d > 180 {
		d -= 360
	}
	for d <= -180 {
		d += 360
	}
	return d
}

func (s *scene) tm30() *TM30Result {
	warnApproximation("tm30")

	set := samples()
	type acc struct {
		n              int
		de             float64
		ta, tb, ra, rb float64
	}
	var bins [NumBins]acc
	var total float64

	for i, refl := range &set.ces {
		test, ref := s.labPair(refl)
		de := deltae.Unweighted(test, ref)
		total += de

		b := &bins[set.cesBin[i]]
		b.n++
		b.de += de
		b.ta += test.A
		b.tb += test.B
		b.ra += ref.A
		b.rb += ref.B
	}

	res := &TM30Result{
		CCT:         s.estimate.CCT,
		Duv:         s.estimate.Duv,
		Reference:   s.ref.Kind,
		Rf:          round1(fidelity(total / NumCES)),
		Approximate: true,
	}

	// bin order is hue order; the polygons stay simple only if it is kept
	testPoly := make([]chroma.XY, NumBins)
	refPoly := make([]chroma.XY, NumBins)
	for j, b := range bins {
		n := float64(b.n)
		t := Point{A: b.ta / n, B: b.tb / n}
		r := Point{A: b.ra / n, B: b.rb / n}
		testPoly[j] = chroma.XY{X: t.A, Y: t.B}
		refPoly[j] = chroma.XY{X: r.A, Y: r.B}

		bin := HueBin{
			Index:     j + 1,
			Samples:   b.n,
			Fidelity:  round1(fidelity(b.de / n)),
			HueShift:  wrapDegrees(chroma.Hue(t.A, t.B) - chroma.Hue(r.A, r.B)),
			Test:      t,
			Reference: r,
		}
		if rc := math.Hypot(r.A, r.B); rc > 0 {
			bin.ChromaRatio = math.Hypot(t.A, t.B) / rc
		}
		res.Bins[j] = bin
	}

	if area := gamut.PolygonArea(refPoly); area > 0 {
		res.Rg = round1(100 * gamut.PolygonArea(testPoly) / area)
	}
	return res
}
