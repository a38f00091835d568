// Package palette checks how distinguishable the colors of a display palette
// are, measuring CIEDE2000 separation between sRGB swatches in D50 Lab.
package palette

import (
	"fmt"
	"sort"

	"github.com/jkl1337/go-chromath"
	"github.com/jkl1337/go-chromath/deltae"

	"github.com/mmuldo/colorimetry/chroma"
	"github.com/mmuldo/colorimetry/validate"
)

// DefaultThreshold is the CIEDE2000 separation below which two swatches are
// treated as the same color.
const DefaultThreshold = 10.0

var (
	// sRGB is adapted to D50 before Lab conversion.
	targetIlluminant = &chromath.IlluminantRefD50
	rgb2Xyz          = chromath.NewRGBTransformer(
		&chromath.SpaceSRGB,
		&chromath.AdaptationBradford,
		targetIlluminant,
		&chromath.Scaler8bClamping,
		1.0,
		nil,
	)
	lab2Xyz = chromath.NewLabTransformer(targetIlluminant)
	klch    = &deltae.KLChDefault
)

// Swatch is one palette entry.
type Swatch struct {
	Hex string     `json:"hex"`
	RGB chroma.RGB `json:"rgb"`
	// Lab is relative to D50.
	Lab chroma.Lab `json:"lab"`
	// Count is the number of pixels an extracted swatch covers.
	Count int `json:"count,omitempty"`

	lab chromath.Lab
}

// NewSwatch parses a "#rgb" or "#rrggbb" color.
func NewSwatch(hex string) (Swatch, error) {
	rgb, err := chroma.HexToRGB(hex)
	if err != nil {
		return Swatch{}, fmt.Errorf("palette: %w", err)
	}
	return fromRGB(rgb), nil
}

func fromRGB(rgb chroma.RGB) Swatch {
	lab := rgb2Lab(chromath.RGB{rgb.R, rgb.G, rgb.B})
	return Swatch{
		Hex: chroma.RGBToHex(rgb),
		RGB: rgb,
		Lab: chroma.Lab{L: lab.L(), A: lab.A(), B: lab.B()},
		lab: lab,
	}
}

// Parse converts every hex string into a Swatch, failing on the first bad one.
func Parse(hexes []string) ([]Swatch, error) {
	out := make([]Swatch, 0, len(hexes))
	for i, h := range hexes {
		s, err := NewSwatch(h)
		if err != nil {
			return nil, fmt.Errorf("swatch %d: %w", i, err)
		}
		out = append(out, s)
	}
	return out, nil
}

// Pair is two palette indices and the CIEDE2000 separation between them.
type Pair struct {
	I      int     `json:"i"`
	J      int     `json:"j"`
	DeltaE float64 `json:"deltaE"`
}

// Distance returns the CIEDE2000 difference between two swatches.
func Distance(a, b Swatch) float64 {
	return deltae.CIE2000(a.lab, b.lab, klch)
}

// Closest returns the least separated pair of swatches.
func Closest(sw []Swatch) (Pair, error) {
	if len(sw) < 2 {
		return Pair{}, fmt.Errorf("palette: %w: need 2 swatches, got %d", validate.ErrTooFewPoints, len(sw))
	}

	best := Pair{I: 0, J: 1, DeltaE: Distance(sw[0], sw[1])}
	for i := 0; i < len(sw); i++ {
		for j := i + 1; j < len(sw); j++ {
			if d := Distance(sw[i], sw[j]); d < best.DeltaE {
				best = Pair{I: i, J: j, DeltaE: d}
			}
		}
	}
	return best, nil
}

// Distinct reports whether every pair of swatches is at least threshold apart.
// Palettes with fewer than two swatches are trivially distinct.
func Distinct(sw []Swatch, threshold float64) bool {
	p, err := Closest(sw)
	if err != nil {
		return true
	}
	return p.DeltaE >= threshold
}

// Group clusters swatches greedily: each ungrouped swatch starts a group and
// pulls in every later swatch within threshold of it.
func Group(sw []Swatch, threshold float64) [][]Swatch {
	g := make([][]Swatch, 0)
	done := make([]bool, len(sw))

	for i := range sw {
		if done[i] {
			continue
		}
		group := []Swatch{sw[i]}
		done[i] = true

		for j := i + 1; j < len(sw); j++ {
			if done[j] {
				continue
			}
			if Distance(sw[i], sw[j]) < threshold {
				group = append(group, sw[j])
				done[j] = true
			}
		}
		g = append(g, group)
	}
	return g
}

type byDarkness []Swatch

func (s byDarkness) Len() int           { return len(s) }
func (s byDarkness) Less(i, j int) bool { return s[i].lab.L() < s[j].lab.L() }
func (s byDarkness) Swap(i, j int)      { s[i], s[j] = s[j], s[i] }

// SortByDarkness orders swatches from darkest to lightest L*.
func SortByDarkness(sw []Swatch) {
	sort.Stable(byDarkness(sw))
}

func rgb2Lab(rgb chromath.RGB) chromath.Lab {
	xyz := rgb2Xyz.Convert(rgb)
	return lab2Xyz.Invert(xyz)
}
