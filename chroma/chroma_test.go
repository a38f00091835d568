package chroma

import (
	"errors"
	"math"
	"testing"

	"github.com/mmuldo/colorimetry/validate"
)

func near(a, b, tol float64) bool { return math.Abs(a-b) <= tol }

func TestXYZToXY(t *testing.T) {
	got := XYZToXY(WhiteD65)
	if !near(got.X, 0.3127, 1e-4) || !near(got.Y, 0.3290, 1e-4) {
		t.Errorf("XYZToXY(D65) = %+v, want ~(0.3127, 0.3290)", got)
	}
	if got := XYZToXY(XYZ{}); got != D65 {
		t.Errorf("XYZToXY(0) = %+v, want D65 fallback", got)
	}
}

func TestXYZToUV(t *testing.T) {
	got := XYZToUV(WhiteD65)
	if !near(got.U, 0.1978, 1e-4) || !near(got.V, 0.4683, 1e-4) {
		t.Errorf("XYZToUV(D65) = %+v, want ~(0.1978, 0.4683)", got)
	}
	if got, want := XYZToUV(XYZ{}), XYToUV(D65); got != want {
		t.Errorf("XYZToUV(0) = %+v, want %+v", got, want)
	}
}

func TestXYUVRoundTrip(t *testing.T) {
	for x := 0.0; x <= 0.8; x += 0.05 {
		for y := 0.01; x+y <= 1; y += 0.05 {
			in := XY{X: x, Y: y}
			out := UVToXY(XYToUV(in))
			if !near(out.X, in.X, 1e-6) || !near(out.Y, in.Y, 1e-6) {
				t.Fatalf("UVToXY(XYToUV(%+v)) = %+v", in, out)
			}
		}
	}
}

func TestDegenerateDenominators(t *testing.T) {
	// -2x+12y+3 == 0
	if got, want := XYToUV(XY{X: 1.5, Y: 0}), XYToUV(D65); got != want {
		t.Errorf("XYToUV(degenerate) = %+v, want %+v", got, want)
	}
	// 6u-16v+12 == 0
	if got := UVToXY(UV{U: 0, V: 0.75}); got != D65 {
		t.Errorf("UVToXY(degenerate) = %+v, want D65", got)
	}
	got := XYYToXYZ(XY{X: 0.4, Y: 0}, 50)
	want := XYYToXYZ(D65, 50)
	if got != want {
		t.Errorf("XYYToXYZ(y=0) = %+v, want %+v", got, want)
	}
}

func TestXYYToXYZ(t *testing.T) {
	got := XYYToXYZ(XYZToXY(WhiteD65), 100)
	if !near(got.X, WhiteD65.X, 1e-9) || !near(got.Z, WhiteD65.Z, 1e-9) {
		t.Errorf("XYYToXYZ(D65, 100) = %+v, want %+v", got, WhiteD65)
	}
}

func TestXYZToUCS(t *testing.T) {
	// 1960 v is 2/3 of 1976 v'.
	uv := XYZToUV(WhiteD65)
	ucs := XYZToUCS(WhiteD65)
	if !near(ucs.U, uv.U, 1e-12) || !near(ucs.V, uv.V*2/3, 1e-12) {
		t.Errorf("XYZToUCS(D65) = %+v, u'v' = %+v", ucs, uv)
	}
	viaXY := XYToUCS(XYZToXY(WhiteD65))
	if !near(viaXY.U, ucs.U, 1e-12) || !near(viaXY.V, ucs.V, 1e-12) {
		t.Errorf("XYToUCS = %+v, XYZToUCS = %+v", viaXY, ucs)
	}
}

func TestXYZToLab(t *testing.T) {
	tests := []struct {
		name string
		in   XYZ
		want Lab
	}{
		{"white", WhiteD65, Lab{L: 100, A: 0, B: 0}},
		{"black", XYZ{}, Lab{}},
		{"srgb red", XYZ{X: 41.24564, Y: 21.26729, Z: 1.93339}, Lab{L: 53.2408, A: 80.0925, B: 67.2032}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := XYZToLab(tt.in, WhiteD65)
			if err != nil {
				t.Fatalf("XYZToLab: %v", err)
			}
			if !near(got.L, tt.want.L, 1e-3) || !near(got.A, tt.want.A, 1e-3) || !near(got.B, tt.want.B, 1e-3) {
				t.Errorf("XYZToLab(%+v) = %+v, want %+v", tt.in, got, tt.want)
			}
		})
	}
}

func TestLabRoundTrip(t *testing.T) {
	samples := []XYZ{
		WhiteD65,
		{X: 41.24564, Y: 21.26729, Z: 1.93339},
		{X: 0.1, Y: 0.2, Z: 0.3},
		{X: 0.5, Y: 0.8, Z: 0.05},
		{X: 20, Y: 30, Z: 80},
		{X: 80, Y: 70, Z: 5},
	}
	for _, in := range samples {
		lab, err := XYZToLab(in, WhiteD65)
		if err != nil {
			t.Fatalf("XYZToLab: %v", err)
		}
		out, err := LabToXYZ(lab, WhiteD65)
		if err != nil {
			t.Fatalf("LabToXYZ: %v", err)
		}
		if !near(out.X, in.X, 1e-4) || !near(out.Y, in.Y, 1e-4) || !near(out.Z, in.Z, 1e-4) {
			t.Errorf("LabToXYZ(XYZToLab(%+v)) = %+v", in, out)
		}
	}
}

func TestLChRoundTrip(t *testing.T) {
	labs := []Lab{{50, 20, -30}, {70, -10, -5}, {30, 0, 0}, {60, -40, 10}}
	for _, in := range labs {
		lch := LabToLCh(in)
		if lch.H < 0 || lch.H >= 360 {
			t.Errorf("LabToLCh(%+v).H = %v, want [0,360)", in, lch.H)
		}
		out := LChToLab(lch)
		if !near(out.A, in.A, 1e-9) || !near(out.B, in.B, 1e-9) {
			t.Errorf("LChToLab(LabToLCh(%+v)) = %+v", in, out)
		}
	}
	if h := Hue(0, -1); !near(h, 270, 1e-12) {
		t.Errorf("Hue(0,-1) = %v, want 270", h)
	}
}

func TestXYZToRGB(t *testing.T) {
	if got, _ := XYZToRGB(WhiteD65); got != (RGB{255, 255, 255}) {
		t.Errorf("XYZToRGB(D65) = %+v, want white", got)
	}
	if got, _ := XYZToRGB(XYZ{}); got != (RGB{}) {
		t.Errorf("XYZToRGB(0) = %+v, want black", got)
	}
	if got, _ := XYZToRGB(XYZ{X: 200, Y: 200, Z: 200}); got.R != 255 || got.G != 255 || got.B != 255 {
		t.Errorf("XYZToRGB(overrange) = %+v, want clamped", got)
	}
}

func TestInvalidConversions(t *testing.T) {
	nan, inf := math.NaN(), math.Inf(1)
	labTests := []struct {
		name      string
		in, white XYZ
	}{
		{"nan xyz", XYZ{X: nan, Y: 10, Z: 10}, WhiteD65},
		{"inf xyz", XYZ{X: 10, Y: inf, Z: 10}, WhiteD65},
		{"zero white", XYZ{X: 10, Y: 10, Z: 10}, XYZ{}},
		{"negative white", XYZ{X: 10, Y: 10, Z: 10}, XYZ{X: 95, Y: -100, Z: 108}},
		{"red-only white", XYZ{X: 10, Y: 10, Z: 10}, XYZ{X: 73, Y: 27, Z: 0}},
		{"inf white", XYZ{X: 10, Y: 10, Z: 10}, XYZ{X: inf, Y: 100, Z: 100}},
	}
	for _, tt := range labTests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := XYZToLab(tt.in, tt.white); !errors.Is(err, validate.ErrInvalidInput) {
				t.Errorf("XYZToLab error = %v, want ErrInvalidInput", err)
			}
		})
	}

	if _, err := LabToXYZ(Lab{L: nan}, WhiteD65); !errors.Is(err, validate.ErrInvalidInput) {
		t.Errorf("LabToXYZ(NaN) error = %v", err)
	}
	if _, err := LabToXYZ(Lab{L: 50}, XYZ{X: 95, Y: 0, Z: 108}); !errors.Is(err, validate.ErrInvalidInput) {
		t.Errorf("LabToXYZ(zero Y white) error = %v", err)
	}
	if _, err := NewLabConverter(XYZ{}); !errors.Is(err, validate.ErrInvalidInput) {
		t.Errorf("NewLabConverter(0) error = %v", err)
	}
	if _, err := XYZToRGB(XYZ{X: nan}); !errors.Is(err, validate.ErrInvalidInput) {
		t.Errorf("XYZToRGB(NaN) error = %v", err)
	}
	if _, err := XYZToRGB(XYZ{Z: inf}); !errors.Is(err, validate.ErrInvalidInput) {
		t.Errorf("XYZToRGB(Inf) error = %v", err)
	}
}

func TestCheckedProjections(t *testing.T) {
	xy, err := XYZToXYChecked(WhiteD65)
	if err != nil || xy != XYZToXY(WhiteD65) {
		t.Errorf("XYZToXYChecked(D65) = %+v, %v", xy, err)
	}
	uv, err := XYZToUVChecked(WhiteD65)
	if err != nil || uv != XYZToUV(WhiteD65) {
		t.Errorf("XYZToUVChecked(D65) = %+v, %v", uv, err)
	}

	for name, in := range map[string]XYZ{
		"black":    {},
		"nan":      {X: math.NaN(), Y: 1, Z: 1},
		"inf":      {X: 1, Y: 1, Z: math.Inf(1)},
		"negative": {X: -1, Y: 10, Z: 10},
	} {
		if _, err := XYZToXYChecked(in); !errors.Is(err, validate.ErrInvalidInput) {
			t.Errorf("XYZToXYChecked(%s) error = %v", name, err)
		}
		if _, err := XYZToUVChecked(in); !errors.Is(err, validate.ErrInvalidInput) {
			t.Errorf("XYZToUVChecked(%s) error = %v", name, err)
		}
	}
}

func TestLabConverter(t *testing.T) {
	// any positive white works, not just the D50/D65 presets
	white := XYZ{X: 109.85, Y: 100, Z: 35.585}
	l, err := NewLabConverter(white)
	if err != nil {
		t.Fatal(err)
	}
	if got := l.Lab(white); !near(got.L, 100, 1e-9) || !near(got.A, 0, 1e-9) || !near(got.B, 0, 1e-9) {
		t.Errorf("Lab(white) = %+v, want L=100", got)
	}
	in := XYZ{X: 30, Y: 25, Z: 10}
	out := l.XYZ(l.Lab(in))
	if !near(out.X, in.X, 1e-9) || !near(out.Y, in.Y, 1e-9) || !near(out.Z, in.Z, 1e-9) {
		t.Errorf("XYZ(Lab(%+v)) = %+v", in, out)
	}
	want, _ := XYZToLab(in, white)
	if got := l.Lab(in); got != want {
		t.Errorf("Lab = %+v, XYZToLab = %+v", got, want)
	}
}

func TestRGBRoundTrip(t *testing.T) {
	for _, in := range []RGB{{255, 0, 0}, {0, 128, 64}, {12, 200, 250}, {128, 128, 128}} {
		out, err := XYZToRGB(RGBToXYZ(in))
		if err != nil || out != in {
			t.Errorf("XYZToRGB(RGBToXYZ(%+v)) = %+v", in, out)
		}
	}
	grey := RGBToXYZ(RGB{128, 128, 128})
	if !near(grey.Y, 21.586, 1e-2) {
		t.Errorf("RGBToXYZ(grey).Y = %v, want ~21.586", grey.Y)
	}
}

func TestHSL(t *testing.T) {
	tests := []struct {
		rgb RGB
		hsl HSL
	}{
		{RGB{255, 0, 0}, HSL{0, 100, 50}},
		{RGB{0, 255, 0}, HSL{120, 100, 50}},
		{RGB{0, 0, 255}, HSL{240, 100, 50}},
		{RGB{255, 255, 255}, HSL{0, 0, 100}},
		{RGB{128, 128, 128}, HSL{0, 0, 50.196}},
	}
	for _, tt := range tests {
		got := RGBToHSL(tt.rgb)
		if !near(got.H, tt.hsl.H, 1e-3) || !near(got.S, tt.hsl.S, 1e-3) || !near(got.L, tt.hsl.L, 1e-3) {
			t.Errorf("RGBToHSL(%+v) = %+v, want %+v", tt.rgb, got, tt.hsl)
		}
		if back := HSLToRGB(got); back != tt.rgb {
			t.Errorf("HSLToRGB(%+v) = %+v, want %+v", got, back, tt.rgb)
		}
	}
}

func TestCMYK(t *testing.T) {
	if got := RGBToCMYK(RGB{}); got != (CMYK{K: 100}) {
		t.Errorf("RGBToCMYK(black) = %+v", got)
	}
	got := RGBToCMYK(RGB{255, 0, 0})
	if got != (CMYK{C: 0, M: 100, Y: 100, K: 0}) {
		t.Errorf("RGBToCMYK(red) = %+v", got)
	}
	for _, in := range []RGB{{255, 0, 0}, {10, 20, 30}, {200, 150, 100}} {
		if out := CMYKToRGB(RGBToCMYK(in)); out != in {
			t.Errorf("CMYK round trip %+v -> %+v", in, out)
		}
	}
}

func TestHex(t *testing.T) {
	if got := RGBToHex(RGB{255, 128, 0}); got != "#ff8000" {
		t.Errorf("RGBToHex = %q", got)
	}
	tests := []struct {
		in   string
		want RGB
	}{
		{"#ff8000", RGB{255, 128, 0}},
		{"FF8000", RGB{255, 128, 0}},
		{"#fff", RGB{255, 255, 255}},
	}
	for _, tt := range tests {
		got, err := HexToRGB(tt.in)
		if err != nil || got != tt.want {
			t.Errorf("HexToRGB(%q) = %+v, %v", tt.in, got, err)
		}
	}
	for _, bad := range []string{"", "#12", "#gggggg", "#12345"} {
		if _, err := HexToRGB(bad); !errors.Is(err, validate.ErrInvalidInput) {
			t.Errorf("HexToRGB(%q) error = %v, want ErrInvalidInput", bad, err)
		}
	}
}

func TestIsInGamut(t *testing.T) {
	srgb := []XY{{0.64, 0.33}, {0.30, 0.60}, {0.15, 0.06}}
	tests := []struct {
		name     string
		p        XY
		vertices []XY
		want     bool
	}{
		{"d65 inside", D65, srgb, true},
		{"outside", XY{0.1, 0.8}, srgb, false},
		{"vertex", XY{0.64, 0.33}, srgb, true},
		{"edge midpoint", XY{0.47, 0.465}, srgb, true},
		{"two vertices", D65, srgb[:2], false},
		{"four vertices", D65, append([]XY{{0.3, 0.3}}, srgb...), false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := IsInGamut(tt.p, tt.vertices); got != tt.want {
				t.Errorf("IsInGamut(%+v) = %v, want %v", tt.p, got, tt.want)
			}
		})
	}
}

func TestValidate(t *testing.T) {
	if err := (XYZ{X: math.NaN()}).Validate(); !errors.Is(err, validate.ErrInvalidInput) {
		t.Errorf("XYZ.Validate(NaN) = %v", err)
	}
	if err := (Lab{L: 50}).Validate(); err != nil {
		t.Errorf("Lab.Validate() = %v", err)
	}
	if err := (XY{Y: math.Inf(1)}).Validate(); !errors.Is(err, validate.ErrInvalidInput) {
		t.Errorf("XY.Validate(Inf) = %v", err)
	}
}
