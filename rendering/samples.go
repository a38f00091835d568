package rendering

import (
	"math"
	"sync"

	"github.com/mmuldo/colorimetry/spectral"
)

// Sample counts.
const (
	NumTCS     = 14
	NumPatches = 18
	NumCES     = 99
	NumBins    = 16
)

type lobe struct {
	amp, center, width float64
}

type patch struct {
	name  string
	base  float64
	lobes []lobe
}

// colorChecker approximates the 18 chromatic ColorChecker patches used by
// TLCI as a base reflectance plus Gaussian lobes.
var colorChecker = [NumPatches]patch{
	{"dark skin", 0.06, []lobe{{0.30, 660, 90}}},
	{"light skin", 0.18, []lobe{{0.45, 650, 90}}},
	{"blue sky", 0.10, []lobe{{0.22, 460, 45}}},
	{"foliage", 0.05, []lobe{{0.10, 545, 30}, {0.35, 760, 40}}},
	{"blue flower", 0.15, []lobe{{0.30, 450, 40}, {0.20, 700, 60}}},
	{"bluish green", 0.08, []lobe{{0.45, 500, 50}}},
	{"orange", 0.05, []lobe{{0.62, 660, 70}}},
	{"purplish blue", 0.05, []lobe{{0.35, 440, 30}}},
	{"moderate red", 0.08, []lobe{{0.50, 660, 50}, {0.08, 430, 30}}},
	{"purple", 0.04, []lobe{{0.15, 430, 35}, {0.30, 700, 60}}},
	{"yellow green", 0.05, []lobe{{0.50, 590, 70}}},
	{"orange yellow", 0.05, []lobe{{0.70, 640, 80}}},
	{"blue", 0.04, []lobe{{0.32, 450, 30}}},
	{"green", 0.05, []lobe{{0.30, 530, 35}}},
	{"red", 0.04, []lobe{{0.65, 680, 50}}},
	{"yellow", 0.05, []lobe{{0.80, 650, 100}}},
	{"magenta", 0.08, []lobe{{0.45, 430, 40}, {0.65, 700, 70}}},
	{"cyan", 0.08, []lobe{{0.35, 480, 45}}},
}

func synthesize(base float64, lobes []lobe) spectral.Spectrum {
	var s spectral.Spectrum
	for i := range s {
		wl := spectral.Wavelength(i)
		r := base
		for _, l := range lobes {
			d := (wl - l.center) / l.width
			r += l.amp * math.Exp(-0.5*d*d)
		}
		s[i] = math.Max(0, math.Min(1, r))
	}
	return s
}

// hueAnchors map a nominal Lab hue angle to the peak wavelength of a
// single-lobe sample between the red and blue ends.
var hueAnchors = [...]struct{ hue, wl float64 }{
	{45, 620}, {90, 580}, {135, 550}, {180, 505}, {225, 485}, {270, 455},
}

// evaluationSample builds a sample whose nominal hue is theta degrees.
// Reds below 45 degrees mix a long-wave lobe with a fading violet one;
// purples above 270 degrees blend a violet lobe into a red one.
func evaluationSample(theta, amp, width, base float64) spectral.Spectrum {
	switch {
	case theta < hueAnchors[0].hue:
		f := theta / hueAnchors[0].hue
		return synthesize(base, []lobe{
			{amp, 660 - 40*f, width},
			{amp * 0.35 * (1 - f), 440, 25},
		})
	case theta >= hueAnchors[len(hueAnchors)-1].hue:
		f := (theta - 270) / 90
		return synthesize(base, []lobe{
			{amp * (1 - 0.5*f), 450, 30},
			{amp * f, 650, 45},
		})
	}
	for i := 1; i < len(hueAnchors); i++ {
		a, b := hueAnchors[i-1], hueAnchors[i]
		if theta <= b.hue {
			wl := a.wl + (b.wl-a.wl)*(theta-a.hue)/(b.hue-a.hue)
			return synthesize(base, []lobe{{amp, wl, width}})
		}
	}
	return synthesize(base, nil)
}

// sampleSet holds every reflectance set, built once on first use.
type sampleSet struct {
	tcs     [NumTCS]spectral.Spectrum
	checker [NumPatches]spectral.Spectrum
	ces     [NumCES]spectral.Spectrum
	cesBin  [NumCES]int
}

var samples = sync.OnceValue(buildSamples)

func buildSamples() *sampleSet {
	set := &sampleSet{tcs: tcsTable}

	for i, p := range colorChecker {
		set.checker[i] = synthesize(p.base, p.lobes)
	}

	// bins get 6 or 7 samples spread evenly across their 22.5 degree span
	for bin := 0; bin < NumBins; bin++ {
		start := binStart(bin)
		n := binStart(bin+1) - start
		for j := 0; j < n; j++ {
			k := start + j
			theta := (float64(bin) + (float64(j)+0.5)/float64(n)) * 360 / NumBins
			amp := 0.25 + 0.2*float64((k*7)%5)/4
			width := 30 + 10*float64((k*3)%4)
			base := 0.05 + 0.05*float64(k%3)
			set.ces[k] = evaluationSample(theta, amp, width, base)
			set.cesBin[k] = bin
		}
	}
	return set
}

func binStart(bin int) int {
	return (bin*NumCES + NumBins - 1) / NumBins
}

// TestColorSample returns CIE test color sample i (1-14) on the 5nm grid.
func TestColorSample(i int) (spectral.Spectrum, string, bool) {
	if i < 1 || i > NumTCS {
		return spectral.Spectrum{}, "", false
	}
	return samples().tcs[i-1], tcsNames[i-1], true
}

// PatchName returns the name of TLCI patch i (1-18).
func PatchName(i int) string {
	if i < 1 || i > NumPatches {
		return ""
	}
	return colorChecker[i-1].name
}
