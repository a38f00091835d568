package cct

import (
	"math"

	"github.com/mmuldo/colorimetry/chroma"
)

const (
	searchSteps   = 100
	minWindow     = 500.0
	windowFrac    = 0.10
	tangentOffset = 50.0
)

// locusUCS returns the Planckian locus point at t in CIE 1960 uv.
func locusUCS(t float64) chroma.UCS {
	return chroma.XYToUCS(PlanckianXY(t))
}

// scan evaluates searchSteps evenly spaced temperatures across [lo, hi] and
// returns the one nearest to p with its distance and the spacing used.
func scan(p chroma.UCS, lo, hi float64) (best, dist, step float64) {
	step = (hi - lo) / (searchSteps - 1)
	dist = math.Inf(1)
	for i := 0; i < searchSteps; i++ {
		t := lo + float64(i)*step
		l := locusUCS(t)
		if d := math.Hypot(p.U-l.U, p.V-l.V); d < dist {
			best, dist = t, d
		}
	}
	return best, dist, step
}

// nearest finds the locus temperature closest to p, seeded by McCamy's
// estimate, with a coarse scan followed by a refined scan around the coarse
// minimum. It returns that temperature and the signed Duv.
func nearest(c chroma.XY) (t, duv float64) {
	p := chroma.XYToUCS(c)
	seed := McCamy(c)

	window := math.Max(minWindow, windowFrac*seed)
	t, _, step := scan(p, clampT(seed-window), clampT(seed+window))
	t, dist, _ := scan(p, clampT(t-step), clampT(t+step))

	l := locusUCS(t)
	ahead, behind := locusUCS(t+tangentOffset), locusUCS(t-tangentOffset)
	tu, tv := ahead.U-behind.U, ahead.V-behind.V
	du, dv := p.U-l.U, p.V-l.V

	// the locus runs toward lower u as t rises, so points above it
	// (greenish) give a non-negative cross product in this order
	if du*tv-dv*tu < 0 {
		dist = -dist
	}
	return t, dist
}
