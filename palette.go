package motif

import (
	"math"

	colorful "github.com/lucasb-eyer/go-colorful"
)

// Pull-based color generators. Systems accept either a fixed color or a
// generator function called once per shape needing a color; the engine
// never inspects the generator's internal state.

// ColorFunc is a pull-based color source.
type ColorFunc func() Color

// Fixed returns a generator that always yields the same color.
func Fixed(c Color) ColorFunc {
	return func() Color { return c }
}

// GoldenPalette returns a deterministic generator that steps the hue by
// the golden angle on each pull, starting from the seed. Saturation and
// value are fixed to keep the ramp readable.
func GoldenPalette(seed int64) ColorFunc {
	const goldenAngle = 137.50776405003785
	rng := newLCG(seed)
	hue := float64(rng.next()%360000) / 1000
	return func() Color {
		c := colorful.Hsv(hue, 0.62, 0.92)
		hue = math.Mod(hue+goldenAngle, 360)
		return Color{R: c.R, G: c.G, B: c.B, A: 1}
	}
}

// RampPalette returns a generator that walks n evenly spaced stops
// between from and to in blend space, then wraps around. Blending runs
// through Lab space, which avoids the muddy midpoints of naive RGB
// interpolation.
func RampPalette(from, to Color, n int) ColorFunc {
	if n < 2 {
		n = 2
	}
	a := colorful.Color{R: from.R, G: from.G, B: from.B}
	b := colorful.Color{R: to.R, G: to.G, B: to.B}
	i := 0
	return func() Color {
		t := float64(i%n) / float64(n-1)
		i++
		c := a.BlendLab(b, t).Clamped()
		return Color{R: c.R, G: c.G, B: c.B, A: 1}
	}
}

// WarmPalette returns a deterministic generator of warm hues (reds
// through yellows) seeded by the caller.
func WarmPalette(seed int64) ColorFunc {
	rng := newLCG(seed)
	return func() Color {
		hue := float64(rng.next()%60000) / 1000 // 0..60 degrees
		sat := 0.55 + float64(rng.next()%3000)/10000
		val := 0.85 + float64(rng.next()%1500)/10000
		c := colorful.Hsv(hue, sat, val)
		return Color{R: c.R, G: c.G, B: c.B, A: 1}
	}
}
