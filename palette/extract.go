package palette

import (
	"fmt"
	"image"
	"image/color"
	_ "image/jpeg"
	_ "image/png"
	"io"
	"sort"

	"github.com/esimov/colorquant"

	"github.com/mmuldo/colorimetry/chroma"
	"github.com/mmuldo/colorimetry/validate"
)

type byCount []Swatch

func (s byCount) Len() int { return len(s) }
func (s byCount) Less(i, j int) bool {
	if s[i].Count != s[j].Count {
		return s[i].Count > s[j].Count
	}
	return s[i].Hex < s[j].Hex
}
func (s byCount) Swap(i, j int) { s[i], s[j] = s[j], s[i] }

// Extract quantizes a PNG or JPEG image down to at most n colors and returns
// them as swatches, most prevalent first. Transparent pixels are ignored.
func Extract(r io.Reader, n int) ([]Swatch, error) {
	if n < 1 {
		return nil, fmt.Errorf("palette: %w: %d colors requested", validate.ErrInvalidInput, n)
	}

	img, _, err := image.Decode(r)
	if err != nil {
		return nil, fmt.Errorf("palette: decode image: %w", err)
	}

	b := img.Bounds()
	q := image.NewNRGBA(b)
	colorquant.NoDither.Quantize(img, q, n, false, true)

	counts := make(map[color.NRGBA]int)
	for y := b.Min.Y; y < b.Max.Y; y++ {
		for x := b.Min.X; x < b.Max.X; x++ {
			c := q.NRGBAAt(x, y)
			if c.A == 0 {
				continue
			}
			c.A = 0xff
			counts[c]++
		}
	}

	sw := make([]Swatch, 0, len(counts))
	for c, k := range counts {
		s := fromRGB(chroma.RGB{R: float64(c.R), G: float64(c.G), B: float64(c.B)})
		s.Count = k
		sw = append(sw, s)
	}
	sort.Sort(byCount(sw))
	return sw, nil
}
