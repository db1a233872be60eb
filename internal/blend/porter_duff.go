// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package blend

import "image/color"

// Porter-Duff operators. With Fa and Fb the source and destination factors,
// every channel is S*Fa + D*Fb.

func clearOp(_, _ color.RGBA) color.RGBA { return color.RGBA{} }

func source(s, _ color.RGBA) color.RGBA { return s }

func destination(_, d color.RGBA) color.RGBA { return d }

// S + D*(1-Sa)
func sourceOver(s, d color.RGBA) color.RGBA {
	inv := 255 - s.A
	return color.RGBA{
		R: addSat(s.R, Mul(d.R, inv)),
		G: addSat(s.G, Mul(d.G, inv)),
		B: addSat(s.B, Mul(d.B, inv)),
		A: addSat(s.A, Mul(d.A, inv)),
	}
}

// S*(1-Da) + D
func destinationOver(s, d color.RGBA) color.RGBA {
	return sourceOver(d, s)
}

// S*Da
func sourceIn(s, d color.RGBA) color.RGBA {
	return scale(s, d.A)
}

// D*Sa
func destinationIn(s, d color.RGBA) color.RGBA {
	return scale(d, s.A)
}

// S*(1-Da)
func sourceOut(s, d color.RGBA) color.RGBA {
	return scale(s, 255-d.A)
}

// D*(1-Sa)
func destinationOut(s, d color.RGBA) color.RGBA {
	return scale(d, 255-s.A)
}

// S*Da + D*(1-Sa)
func sourceAtop(s, d color.RGBA) color.RGBA {
	return weighted(s, d.A, d, 255-s.A)
}

// S*(1-Da) + D*Sa
func destinationAtop(s, d color.RGBA) color.RGBA {
	return weighted(s, 255-d.A, d, s.A)
}

// S*(1-Da) + D*(1-Sa)
func xor(s, d color.RGBA) color.RGBA {
	return weighted(s, 255-d.A, d, 255-s.A)
}

// min(S + D, 1)
func plus(s, d color.RGBA) color.RGBA {
	return color.RGBA{
		R: addSat(s.R, d.R),
		G: addSat(s.G, d.G),
		B: addSat(s.B, d.B),
		A: addSat(s.A, d.A),
	}
}

func scale(c color.RGBA, f uint8) color.RGBA {
	return color.RGBA{R: Mul(c.R, f), G: Mul(c.G, f), B: Mul(c.B, f), A: Mul(c.A, f)}
}

// weighted computes s*fs + d*fd with a single rounding per channel.
func weighted(s color.RGBA, fs uint8, d color.RGBA, fd uint8) color.RGBA {
	ch := func(a, b uint8) uint8 {
		v := div255(uint32(a)*uint32(fs) + uint32(b)*uint32(fd))
		if v > 255 {
			v = 255
		}
		return uint8(v)
	}
	return color.RGBA{R: ch(s.R, d.R), G: ch(s.G, d.G), B: ch(s.B, d.B), A: ch(s.A, d.A)}
}
