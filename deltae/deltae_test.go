package deltae

import (
	"errors"
	"math"
	"testing"

	"github.com/jkl1337/go-chromath"
	chromathde "github.com/jkl1337/go-chromath/deltae"

	"github.com/mmuldo/colorimetry/chroma"
	"github.com/mmuldo/colorimetry/validate"
)

// sharma holds the 34 test pairs of Sharma, Wu and Dalal (2005), table 1.
var sharma = []struct {
	a, b chroma.Lab
	want float64
}{
	{chroma.Lab{L: 50, A: 2.6772, B: -79.7751}, chroma.Lab{L: 50, A: 0, B: -82.7485}, 2.0425},
	{chroma.Lab{L: 50, A: 3.1571, B: -77.2803}, chroma.Lab{L: 50, A: 0, B: -82.7485}, 2.8615},
	{chroma.Lab{L: 50, A: 2.8361, B: -74.0200}, chroma.Lab{L: 50, A: 0, B: -82.7485}, 3.4412},
	{chroma.Lab{L: 50, A: -1.3802, B: -84.2814}, chroma.Lab{L: 50, A: 0, B: -82.7485}, 1.0000},
	{chroma.Lab{L: 50, A: -1.1848, B: -84.8006}, chroma.Lab{L: 50, A: 0, B: -82.7485}, 1.0000},
	{chroma.Lab{L: 50, A: -0.9009, B: -85.5211}, chroma.Lab{L: 50, A: 0, B: -82.7485}, 1.0000},
	{chroma.Lab{L: 50, A: 0, B: 0}, chroma.Lab{L: 50, A: -1, B: 2}, 2.3669},
	{chroma.Lab{L: 50, A: -1, B: 2}, chroma.Lab{L: 50, A: 0, B: 0}, 2.3669},
	{chroma.Lab{L: 50, A: 2.4900, B: -0.0010}, chroma.Lab{L: 50, A: -2.4900, B: 0.0009}, 7.1792},
	{chroma.Lab{L: 50, A: 2.4900, B: -0.0010}, chroma.Lab{L: 50, A: -2.4900, B: 0.0010}, 7.1792},
	{chroma.Lab{L: 50, A: 2.4900, B: -0.0010}, chroma.Lab{L: 50, A: -2.4900, B: 0.0011}, 7.2195},
	{chroma.Lab{L: 50, A: 2.4900, B: -0.0010}, chroma.Lab{L: 50, A: -2.4900, B: 0.0012}, 7.2195},
	{chroma.Lab{L: 50, A: -0.0010, B: 2.4900}, chroma.Lab{L: 50, A: 0.0009, B: -2.4900}, 4.8045},
	{chroma.Lab{L: 50, A: -0.0010, B: 2.4900}, chroma.Lab{L: 50, A: 0.0010, B: -2.4900}, 4.8045},
	{chroma.Lab{L: 50, A: -0.0010, B: 2.4900}, chroma.Lab{L: 50, A: 0.0011, B: -2.4900}, 4.7461},
	{chroma.Lab{L: 50, A: 2.5, B: 0}, chroma.Lab{L: 50, A: 0, B: -2.5}, 4.3065},
	{chroma.Lab{L: 50, A: 2.5, B: 0}, chroma.Lab{L: 73, A: 25, B: -18}, 27.1492},
	{chroma.Lab{L: 50, A: 2.5, B: 0}, chroma.Lab{L: 61, A: -5, B: 29}, 22.8977},
	{chroma.Lab{L: 50, A: 2.5, B: 0}, chroma.Lab{L: 56, A: -27, B: -3}, 31.9030},
	{chroma.Lab{L: 50, A: 2.5, B: 0}, chroma.Lab{L: 58, A: 24, B: 15}, 19.4535},
	{chroma.Lab{L: 50, A: 2.5, B: 0}, chroma.Lab{L: 50, A: 3.1736, B: 0.5854}, 1.0000},
	{chroma.Lab{L: 50, A: 2.5, B: 0}, chroma.Lab{L: 50, A: 3.2972, B: 0}, 1.0000},
	{chroma.Lab{L: 50, A: 2.5, B: 0}, chroma.Lab{L: 50, A: 1.8634, B: 0.5757}, 1.0000},
	{chroma.Lab{L: 50, A: 2.5, B: 0}, chroma.Lab{L: 50, A: 3.2592, B: 0.3350}, 1.0000},
	{chroma.Lab{L: 60.2574, A: -34.0099, B: 36.2677}, chroma.Lab{L: 60.4626, A: -34.1751, B: 39.4387}, 1.2644},
	{chroma.Lab{L: 63.0109, A: -31.0961, B: -5.8663}, chroma.Lab{L: 62.8187, A: -29.7946, B: -4.0864}, 1.2630},
	{chroma.Lab{L: 61.2901, A: 3.7196, B: -5.3901}, chroma.Lab{L: 61.4292, A: 2.2480, B: -4.9620}, 1.8731},
	{chroma.Lab{L: 35.0831, A: -44.1164, B: 3.7933}, chroma.Lab{L: 35.0232, A: -40.0716, B: 1.5901}, 1.8645},
	{chroma.Lab{L: 22.7233, A: 20.0904, B: -46.6940}, chroma.Lab{L: 23.0331, A: 14.9730, B: -42.5619}, 2.0373},
	{chroma.Lab{L: 36.4612, A: 47.8580, B: 18.3852}, chroma.Lab{L: 36.2715, A: 50.5065, B: 21.2231}, 1.4146},
	{chroma.Lab{L: 90.8027, A: -2.0831, B: 1.4410}, chroma.Lab{L: 91.1528, A: -1.6435, B: 0.0447}, 1.4441},
	{chroma.Lab{L: 90.9257, A: -0.5406, B: -0.9208}, chroma.Lab{L: 88.6381, A: -0.8985, B: -0.7239}, 1.5381},
	{chroma.Lab{L: 6.7747, A: -0.2908, B: -2.4247}, chroma.Lab{L: 5.8714, A: -0.0985, B: -2.2286}, 0.6377},
	{chroma.Lab{L: 2.0776, A: 0.0795, B: -1.1350}, chroma.Lab{L: 0.9033, A: -0.0636, B: -0.5514}, 0.9082},
}

func TestCIE2000Sharma(t *testing.T) {
	if len(sharma) != 34 {
		t.Fatalf("sharma table has %d pairs", len(sharma))
	}
	for i, tt := range sharma {
		got, err := CIE2000(tt.a, tt.b)
		if err != nil {
			t.Fatalf("pair %d: %v", i+1, err)
		}
		if math.Round(got*1e4)/1e4 != tt.want {
			t.Errorf("pair %d: CIE2000(%+v, %+v) = %.6f, want %.4f", i+1, tt.a, tt.b, got, tt.want)
		}
	}
}

func TestCIE2000Symmetric(t *testing.T) {
	for i, tt := range sharma {
		ab := Unweighted(tt.a, tt.b)
		ba := Unweighted(tt.b, tt.a)
		if math.Abs(ab-ba) > 1e-9 {
			t.Errorf("pair %d: %v != %v", i+1, ab, ba)
		}
	}
}

// TestCIE2000MatchesChromath cross-checks against go-chromath on pairs away
// from the hue-wrap edge cases.
func TestCIE2000MatchesChromath(t *testing.T) {
	klch := &chromathde.KLChDefault
	for i, tt := range sharma[16:] {
		a := chromath.Lab{tt.a.L, tt.a.A, tt.a.B}
		b := chromath.Lab{tt.b.L, tt.b.A, tt.b.B}
		want := chromathde.CIE2000(a, b, klch)
		got := Unweighted(tt.a, tt.b)
		if math.Abs(got-want) > 1e-3 {
			t.Errorf("pair %d: got %v, go-chromath %v", i+17, got, want)
		}
	}
}

func TestCIE2000Weighted(t *testing.T) {
	a := chroma.Lab{L: 50, A: 2.5, B: 0}
	b := chroma.Lab{L: 73, A: 25, B: -18}
	unit, _ := CIE2000Weighted(a, b, &Weights2000{KL: 1, KC: 1, KH: 1})
	def, _ := CIE2000(a, b)
	if unit != def {
		t.Errorf("unit weights = %v, default = %v", unit, def)
	}
	textile, _ := CIE2000Weighted(a, b, &Weights2000{KL: 2, KC: 1, KH: 1})
	if textile >= def {
		t.Errorf("kL=2 should shrink the lightness term: %v >= %v", textile, def)
	}
}

func TestCIE76(t *testing.T) {
	labs := []chroma.Lab{{L: 50, A: 0, B: 0}, {L: 30, A: -12.5, B: 40}, {L: 100, A: 0, B: 0}}
	for _, l := range labs {
		if got, _ := CIE76(l, l); got != 0 {
			t.Errorf("CIE76(%+v, self) = %v", l, got)
		}
	}
	got, err := CIE76(chroma.Lab{L: 50, A: 0, B: 0}, chroma.Lab{L: 53, A: 4, B: 0})
	if err != nil || got != 5 {
		t.Errorf("CIE76 = %v, %v, want 5", got, err)
	}
}

func TestCIE94(t *testing.T) {
	ref := chroma.Lab{L: 50, A: 40, B: 0}
	sample := chroma.Lab{L: 50, A: 0, B: 10}

	ab, err := CIE94(ref, sample, nil)
	if err != nil {
		t.Fatal(err)
	}
	ba, _ := CIE94(sample, ref, nil)
	if ab == ba {
		t.Errorf("CIE94 should weight by the first color's chroma: %v == %v", ab, ba)
	}

	// pure lightness difference is unweighted with kL=1
	if got, _ := CIE94(chroma.Lab{L: 50}, chroma.Lab{L: 45}, nil); math.Abs(got-5) > 1e-12 {
		t.Errorf("CIE94 lightness = %v, want 5", got)
	}
	if got, _ := CIE94(chroma.Lab{L: 50}, chroma.Lab{L: 45}, &Textiles); math.Abs(got-2.5) > 1e-12 {
		t.Errorf("CIE94 textiles lightness = %v, want 2.5", got)
	}

	// chroma-only difference: C1 = 40, C2 = 30
	got, _ := CIE94(chroma.Lab{L: 50, A: 40}, chroma.Lab{L: 50, A: 30}, &GraphicArts)
	if want := 10 / (1 + 0.045*40); math.Abs(got-want) > 1e-12 {
		t.Errorf("CIE94 chroma = %v, want %v", got, want)
	}
}

func TestCIE94Weights(t *testing.T) {
	tests := []struct {
		name string
		w    *Weights94
		klch *chromathde.KLCh94
	}{
		{"graphic arts", &GraphicArts, &chromathde.KLCH94GraphicArts},
		{"default", nil, &chromathde.KLCH94GraphicArts},
		{"textiles", &Textiles, &chromathde.KLCH94Textiles},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			for i, p := range sharma[16:24] {
				got, err := CIE94(p.a, p.b, tt.w)
				if err != nil {
					t.Fatal(err)
				}
				want := chromathde.CIE94(chromath.Lab{p.a.L, p.a.A, p.a.B}, chromath.Lab{p.b.L, p.b.A, p.b.B}, tt.klch)
				if math.Abs(got-want) > 1e-12 {
					t.Errorf("pair %d: got %v, want %v", i+17, got, want)
				}
			}
		})
	}
}

func TestCIE94NearlyEqual(t *testing.T) {
	a := chroma.Lab{L: 50, A: 0.1, B: 0.3}
	b := chroma.Lab{L: 50, A: 0.1 + 1e-17, B: 0.3}
	got, err := CIE94(a, b, nil)
	if err != nil || math.IsNaN(got) || got > 1e-6 {
		t.Errorf("CIE94 = %v, %v, want about 0", got, err)
	}
}

func TestInvalidInput(t *testing.T) {
	good := chroma.Lab{L: 50}
	bad := chroma.Lab{L: math.NaN()}
	if _, err := CIE76(good, bad); !errors.Is(err, validate.ErrInvalidInput) {
		t.Errorf("CIE76 error = %v", err)
	}
	if _, err := CIE94(bad, good, nil); !errors.Is(err, validate.ErrInvalidInput) {
		t.Errorf("CIE94 error = %v", err)
	}
	if _, err := CIE2000(good, chroma.Lab{A: math.Inf(-1)}); !errors.Is(err, validate.ErrInvalidInput) {
		t.Errorf("CIE2000 error = %v", err)
	}
}

func BenchmarkCIE2000(b *testing.B) {
	x, y := sharma[24].a, sharma[24].b
	for i := 0; i < b.N; i++ {
		_ = Unweighted(x, y)
	}
}
