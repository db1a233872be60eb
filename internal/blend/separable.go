// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package blend

import (
	"image/color"
	"math"
)

// separable composites with source-over using a per-channel blend function B
// on unpremultiplied values:
//
//	co = cs*(1-ab) + cb*(1-as) + as*ab*B(Cs, Cb)
//	ao = as + ab - as*ab
func separable(b func(cs, cb float64) float64) Func {
	return func(s, d color.RGBA) color.RGBA {
		sa, da := float64(s.A)/255, float64(d.A)/255
		ch := func(sc, dc uint8) uint8 {
			sp, dp := float64(sc)/255, float64(dc)/255
			return to8(sp*(1-da) + dp*(1-sa) + sa*da*b(unpremul(sp, sa), unpremul(dp, da)))
		}
		return color.RGBA{
			R: ch(s.R, d.R),
			G: ch(s.G, d.G),
			B: ch(s.B, d.B),
			A: to8(sa + da - sa*da),
		}
	}
}

func unpremul(c, a float64) float64 {
	if a == 0 {
		return 0
	}
	return clamp01(c / a)
}

func multiply(cs, cb float64) float64 { return cs * cb }

func screen(cs, cb float64) float64 { return cs + cb - cs*cb }

func overlay(cs, cb float64) float64 { return hardLight(cb, cs) }

func darken(cs, cb float64) float64 { return math.Min(cs, cb) }

func lighten(cs, cb float64) float64 { return math.Max(cs, cb) }

func colorDodge(cs, cb float64) float64 {
	switch {
	case cb == 0:
		return 0
	case cs >= 1:
		return 1
	default:
		return math.Min(1, cb/(1-cs))
	}
}

func colorBurn(cs, cb float64) float64 {
	switch {
	case cb >= 1:
		return 1
	case cs == 0:
		return 0
	default:
		return 1 - math.Min(1, (1-cb)/cs)
	}
}

func hardLight(cs, cb float64) float64 {
	if cs <= 0.5 {
		return multiply(cb, 2*cs)
	}
	return screen(cb, 2*cs-1)
}

func softLight(cs, cb float64) float64 {
	if cs <= 0.5 {
		return cb - (1-2*cs)*cb*(1-cb)
	}
	var d float64
	if cb <= 0.25 {
		d = ((16*cb-12)*cb + 4) * cb
	} else {
		d = math.Sqrt(cb)
	}
	return cb + (2*cs-1)*(d-cb)
}

func difference(cs, cb float64) float64 { return math.Abs(cs - cb) }

func exclusion(cs, cb float64) float64 { return cs + cb - 2*cs*cb }
