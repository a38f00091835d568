package gamut

import "github.com/mmuldo/colorimetry/chroma"

// Standard is a named reference gamut.
type Standard struct {
	Name      string    `json:"name"`
	Primaries Primaries `json:"primaries"`
	White     chroma.XY `json:"white"`
}

var (
	SRGB = Standard{"sRGB", Primaries{
		Red:   chroma.XY{X: 0.640, Y: 0.330},
		Green: chroma.XY{X: 0.300, Y: 0.600},
		Blue:  chroma.XY{X: 0.150, Y: 0.060},
	}, chroma.D65}

	DCIP3 = Standard{"DCI-P3", Primaries{
		Red:   chroma.XY{X: 0.680, Y: 0.320},
		Green: chroma.XY{X: 0.265, Y: 0.690},
		Blue:  chroma.XY{X: 0.150, Y: 0.060},
	}, chroma.XY{X: 0.314, Y: 0.351}}

	BT2020 = Standard{"BT.2020", Primaries{
		Red:   chroma.XY{X: 0.708, Y: 0.292},
		Green: chroma.XY{X: 0.170, Y: 0.797},
		Blue:  chroma.XY{X: 0.131, Y: 0.046},
	}, chroma.D65}

	AdobeRGB = Standard{"AdobeRGB", Primaries{
		Red:   chroma.XY{X: 0.640, Y: 0.330},
		Green: chroma.XY{X: 0.210, Y: 0.710},
		Blue:  chroma.XY{X: 0.150, Y: 0.060},
	}, chroma.D65}

	NTSC = Standard{"NTSC", Primaries{
		Red:   chroma.XY{X: 0.670, Y: 0.330},
		Green: chroma.XY{X: 0.210, Y: 0.710},
		Blue:  chroma.XY{X: 0.140, Y: 0.080},
	}, chroma.XY{X: 0.310, Y: 0.316}}
)

var standards = []Standard{SRGB, DCIP3, BT2020, AdobeRGB, NTSC}

// Standards returns the registry of reference gamuts in a fixed order.
func Standards() []Standard {
	out := make([]Standard, len(standards))
	copy(out, standards)
	return out
}

// Lookup returns the standard with the given name.
func Lookup(name string) (Standard, bool) {
	for _, s := range standards {
		if s.Name == name {
			return s, true
		}
	}
	return Standard{}, false
}

// CoverageResult is the coverage of a gamut against one standard.
type CoverageResult struct {
	Standard string  `json:"standard"`
	Percent  float64 `json:"percent"`
}

// AllCoverages returns the coverage of custom against every standard, in
// registry order.
func AllCoverages(custom Primaries) ([]CoverageResult, error) {
	out := make([]CoverageResult, 0, len(standards))
	for _, s := range standards {
		pct, err := Coverage(custom, s.Primaries)
		if err != nil {
			return nil, err
		}
		out = append(out, CoverageResult{Standard: s.Name, Percent: pct})
	}
	return out, nil
}
