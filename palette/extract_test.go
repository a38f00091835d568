package palette

import (
	"bytes"
	"errors"
	"image"
	"image/color"
	"image/png"
	"strings"
	"testing"

	"github.com/mmuldo/colorimetry/validate"
)

func encodePNG(t *testing.T, img image.Image) *bytes.Buffer {
	t.Helper()
	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		t.Fatal(err)
	}
	return &buf
}

func TestExtract(t *testing.T) {
	img := image.NewNRGBA(image.Rect(0, 0, 4, 4))
	for y := 0; y < 4; y++ {
		for x := 0; x < 4; x++ {
			c := color.NRGBA{R: 0xff, A: 0xff}
			if x == 3 {
				c = color.NRGBA{B: 0xff, A: 0xff}
			}
			img.SetNRGBA(x, y, c)
		}
	}

	sw, err := Extract(encodePNG(t, img), 2)
	if err != nil {
		t.Fatalf("Extract: %v", err)
	}
	if len(sw) != 2 {
		t.Fatalf("Extract returned %d swatches, want 2", len(sw))
	}
	if sw[0].Count != 12 || sw[1].Count != 4 {
		t.Errorf("counts = %d, %d, want 12, 4", sw[0].Count, sw[1].Count)
	}

	red, _ := NewSwatch("#ff0000")
	blue, _ := NewSwatch("#0000ff")
	if d := Distance(sw[0], red); d > 3 {
		t.Errorf("dominant swatch %s is %g from red", sw[0].Hex, d)
	}
	if d := Distance(sw[1], blue); d > 3 {
		t.Errorf("minor swatch %s is %g from blue", sw[1].Hex, d)
	}
}

func TestExtractInvalid(t *testing.T) {
	img := image.NewNRGBA(image.Rect(0, 0, 2, 2))
	if _, err := Extract(encodePNG(t, img), 0); !errors.Is(err, validate.ErrInvalidInput) {
		t.Errorf("Extract(n=0) err = %v, want ErrInvalidInput", err)
	}
	if _, err := Extract(strings.NewReader("not an image"), 4); err == nil {
		t.Error("Extract should fail on undecodable input")
	}
}
