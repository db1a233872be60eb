// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package blend

import "math"

// Mul returns a*b/255 rounded to the nearest integer.
func Mul(a, b uint8) uint8 {
	return uint8(div255(uint32(a) * uint32(b)))
}

// Lerp returns a + (b-a)*t/255, rounded. t = 0 yields a, t = 255 yields b.
func Lerp(a, b, t uint8) uint8 {
	return uint8(div255(uint32(a)*uint32(255-t) + uint32(b)*uint32(t)))
}

// div255 divides x by 255 with rounding. x must be at most 255*255*2.
func div255(x uint32) uint32 {
	return (x + 127) / 255
}

func addSat(a, b uint8) uint8 {
	s := uint32(a) + uint32(b)
	if s > 255 {
		return 255
	}
	return uint8(s)
}

// to8 converts a unit float to a byte, rounding and clamping.
func to8(v float64) uint8 {
	if v <= 0 || math.IsNaN(v) {
		return 0
	}
	if v >= 1 {
		return 255
	}
	return uint8(math.Round(v * 255))
}

func clamp01(v float64) float64 {
	return math.Max(0, math.Min(1, v))
}
