// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package blend

import (
	"image/color"
	"math"
)

type rgb [3]float64

// nonSeparable is the three-channel counterpart of separable.
func nonSeparable(b func(cs, cb rgb) rgb) Func {
	return func(s, d color.RGBA) color.RGBA {
		sa, da := float64(s.A)/255, float64(d.A)/255
		sp := rgb{float64(s.R) / 255, float64(s.G) / 255, float64(s.B) / 255}
		dp := rgb{float64(d.R) / 255, float64(d.G) / 255, float64(d.B) / 255}
		var cs, cb rgb
		for i := range 3 {
			cs[i] = unpremul(sp[i], sa)
			cb[i] = unpremul(dp[i], da)
		}
		mixed := b(cs, cb)
		var out [3]uint8
		for i := range 3 {
			out[i] = to8(sp[i]*(1-da) + dp[i]*(1-sa) + sa*da*mixed[i])
		}
		return color.RGBA{R: out[0], G: out[1], B: out[2], A: to8(sa + da - sa*da)}
	}
}

func lum(c rgb) float64 {
	return 0.3*c[0] + 0.59*c[1] + 0.11*c[2]
}

func clipColor(c rgb) rgb {
	l := lum(c)
	n := math.Min(c[0], math.Min(c[1], c[2]))
	x := math.Max(c[0], math.Max(c[1], c[2]))
	for i := range 3 {
		if n < 0 {
			c[i] = l + (c[i]-l)*l/(l-n)
		}
		if x > 1 {
			c[i] = l + (c[i]-l)*(1-l)/(x-l)
		}
	}
	return c
}

func setLum(c rgb, l float64) rgb {
	d := l - lum(c)
	return clipColor(rgb{c[0] + d, c[1] + d, c[2] + d})
}

func sat(c rgb) float64 {
	return math.Max(c[0], math.Max(c[1], c[2])) - math.Min(c[0], math.Min(c[1], c[2]))
}

func setSat(c rgb, s float64) rgb {
	// Indices of the min, mid and max channel.
	lo, mid, hi := 0, 1, 2
	if c[lo] > c[mid] {
		lo, mid = mid, lo
	}
	if c[mid] > c[hi] {
		mid, hi = hi, mid
	}
	if c[lo] > c[mid] {
		lo, mid = mid, lo
	}

	var out rgb
	if c[hi] > c[lo] {
		out[mid] = (c[mid] - c[lo]) * s / (c[hi] - c[lo])
		out[hi] = s
	}
	return out
}

func hue(cs, cb rgb) rgb { return setLum(setSat(cs, sat(cb)), lum(cb)) }

func saturation(cs, cb rgb) rgb { return setLum(setSat(cb, sat(cs)), lum(cb)) }

func colorMode(cs, cb rgb) rgb { return setLum(cs, lum(cb)) }

func luminosity(cs, cb rgb) rgb { return setLum(cb, lum(cs)) }
