// Package gamut measures display gamuts as triangles of primaries on the CIE
// 1931 xy and CIE 1976 u'v' chromaticity diagrams.
package gamut

import (
	"fmt"
	"math"

	"github.com/mmuldo/colorimetry/chroma"
	"github.com/mmuldo/colorimetry/validate"
)

// Primaries are the xy chromaticities of a display's red, green and blue.
type Primaries struct {
	Red   chroma.XY `json:"red"`
	Green chroma.XY `json:"green"`
	Blue  chroma.XY `json:"blue"`
}

// Vertices returns the primaries in R, G, B order.
func (p Primaries) Vertices() []chroma.XY {
	return []chroma.XY{p.Red, p.Green, p.Blue}
}

// Validate checks that every coordinate is finite and within [0, 1].
func (p Primaries) Validate() error {
	names := [3]string{"red", "green", "blue"}
	for i, v := range p.Vertices() {
		if err := validate.Range(names[i]+".x", v.X, 0, 1); err != nil {
			return err
		}
		if err := validate.Range(names[i]+".y", v.Y, 0, 1); err != nil {
			return err
		}
	}
	return nil
}

// Contains reports whether c falls inside the primaries triangle.
func (p Primaries) Contains(c chroma.XY) bool {
	return chroma.IsInGamut(c, p.Vertices())
}

// TriangleArea returns the unsigned shoelace area of a, b, c.
func TriangleArea(a, b, c chroma.XY) float64 {
	return math.Abs(a.X*(b.Y-c.Y)+b.X*(c.Y-a.Y)+c.X*(a.Y-b.Y)) / 2
}

// PolygonArea returns the unsigned shoelace area of an ordered polygon.
func PolygonArea(points []chroma.XY) float64 {
	n := len(points)
	if n < 3 {
		return 0
	}
	var sum float64
	for i, p := range points {
		q := points[(i+1)%n]
		sum += p.X*q.Y - q.X*p.Y
	}
	return math.Abs(sum) / 2
}

// AreaXY returns the gamut area on the 1931 xy diagram.
func AreaXY(p Primaries) (float64, error) {
	if err := p.Validate(); err != nil {
		return 0, fmt.Errorf("gamut: %w", err)
	}
	return TriangleArea(p.Red, p.Green, p.Blue), nil
}

// AreaUV returns the gamut area on the 1976 u'v' diagram.
func AreaUV(p Primaries) (float64, error) {
	if err := p.Validate(); err != nil {
		return 0, fmt.Errorf("gamut: %w", err)
	}
	r, g, b := chroma.XYToUV(p.Red), chroma.XYToUV(p.Green), chroma.XYToUV(p.Blue)
	return TriangleArea(
		chroma.XY{X: r.U, Y: r.V},
		chroma.XY{X: g.U, Y: g.V},
		chroma.XY{X: b.U, Y: b.V},
	), nil
}

// Coverage returns the xy area of custom as a percentage of the area of
// reference. It is a plain area ratio, not an intersection, so it can exceed
// 100. A zero-area reference yields 0.
func Coverage(custom, reference Primaries) (float64, error) {
	c, err := AreaXY(custom)
	if err != nil {
		return 0, err
	}
	r, err := AreaXY(reference)
	if err != nil {
		return 0, err
	}
	if r == 0 {
		return 0, nil
	}
	return c / r * 100, nil
}

// IsValidXY reports whether (x, y) lies in the unit triangle x, y >= 0,
// x + y <= 1.
func IsValidXY(x, y float64) bool {
	return x >= 0 && x <= 1 && y >= 0 && y <= 1 && x+y <= 1
}
