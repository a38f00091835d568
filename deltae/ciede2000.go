package deltae

import (
	"math"

	"github.com/mmuldo/colorimetry/chroma"
)

const (
	deg = math.Pi / 180
	// 25^7
	pow25to7 = 6103515625.0
)

// hueAngle is atan2 in degrees in [0, 360); a neutral color has hue 0.
func hueAngle(a, b float64) float64 {
	if a == 0 && b == 0 {
		return 0
	}
	return chroma.Hue(a, b)
}

// ciede2000 follows Sharma, Wu and Dalal (2005), including their notes on
// the hue difference and mean hue when either chroma is zero.
func ciede2000(c1, c2 chroma.Lab, w Weights2000) float64 {
	cab := (math.Hypot(c1.A, c1.B) + math.Hypot(c2.A, c2.B)) / 2
	cab7 := math.Pow(cab, 7)
	g := 0.5 * (1 - math.Sqrt(cab7/(cab7+pow25to7)))

	a1 := (1 + g) * c1.A
	a2 := (1 + g) * c2.A
	cp1 := math.Hypot(a1, c1.B)
	cp2 := math.Hypot(a2, c2.B)
	hp1 := hueAngle(a1, c1.B)
	hp2 := hueAngle(a2, c2.B)

	dL := c2.L - c1.L
	dC := cp2 - cp1

	cprod := cp1 * cp2
	var dh float64
	if cprod != 0 {
		dh = hp2 - hp1
		switch {
		case dh > 180:
			dh -= 360
		case dh < -180:
			dh += 360
		}
	}
	dH := 2 * math.Sqrt(cprod) * math.Sin(dh*deg/2)

	lbar := (c1.L + c2.L) / 2
	cbar := (cp1 + cp2) / 2

	var hbar float64
	switch {
	case cprod == 0:
		hbar = hp1 + hp2
	case math.Abs(hp1-hp2) <= 180:
		hbar = (hp1 + hp2) / 2
	case hp1+hp2 < 360:
		hbar = (hp1 + hp2 + 360) / 2
	default:
		hbar = (hp1 + hp2 - 360) / 2
	}

	t := 1 - 0.17*math.Cos((hbar-30)*deg) +
		0.24*math.Cos(2*hbar*deg) +
		0.32*math.Cos((3*hbar+6)*deg) -
		0.20*math.Cos((4*hbar-63)*deg)

	dTheta := 30 * math.Exp(-math.Pow((hbar-275)/25, 2))
	cbar7 := math.Pow(cbar, 7)
	rc := 2 * math.Sqrt(cbar7/(cbar7+pow25to7))
	rt := -math.Sin(2*dTheta*deg) * rc

	l50 := (lbar - 50) * (lbar - 50)
	sl := 1 + 0.015*l50/math.Sqrt(20+l50)
	sc := 1 + 0.045*cbar
	sh := 1 + 0.015*cbar*t

	tl := dL / (w.KL * sl)
	tc := dC / (w.KC * sc)
	th := dH / (w.KH * sh)
	return math.Sqrt(tl*tl + tc*tc + th*th + rt*tc*th)
}
