// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package geom

import (
	"fmt"
	"image/color"
	"math"
)

// Color is an 8-bit RGBA color with straight (non-premultiplied) alpha.
//
// Color implements [color.Color], so it can be handed to anything in the
// image ecosystem.
type Color struct {
	R, G, B, A uint8
}

// Common colors.
var (
	Transparent = Color{}
	Black       = Color{0, 0, 0, 255}
	White       = Color{255, 255, 255, 255}
	Red         = Color{255, 0, 0, 255}
	Green       = Color{0, 255, 0, 255}
	Blue        = Color{0, 0, 255, 255}
)

// RGBA8 returns a Color from straight-alpha components.
func RGBA8(r, g, b, a uint8) Color {
	return Color{R: r, G: g, B: b, A: a}
}

// RGBAF returns a Color from components in [0, 1]. Out of range values are
// clamped.
func RGBAF(r, g, b, a float64) Color {
	return Color{R: unit8(r), G: unit8(g), B: unit8(b), A: unit8(a)}
}

func unit8(v float64) uint8 {
	if v <= 0 || math.IsNaN(v) {
		return 0
	}
	if v >= 1 {
		return 255
	}
	return uint8(math.Round(v * 255))
}

// WithAlpha returns c with its alpha replaced.
func (c Color) WithAlpha(a uint8) Color {
	c.A = a
	return c
}

// Premultiply returns c with its color channels scaled by alpha, rounded to
// the nearest 8-bit value. This is the pixel format of [image.RGBA].
func (c Color) Premultiply() color.RGBA {
	return color.RGBA{
		R: mul8(c.R, c.A),
		G: mul8(c.G, c.A),
		B: mul8(c.B, c.A),
		A: c.A,
	}
}

// RGBA implements [color.Color].
func (c Color) RGBA() (r, g, b, a uint32) {
	return color.NRGBA{R: c.R, G: c.G, B: c.B, A: c.A}.RGBA()
}

// String returns the color as #rrggbbaa.
func (c Color) String() string {
	return fmt.Sprintf("#%02x%02x%02x%02x", c.R, c.G, c.B, c.A)
}

func mul8(a, b uint8) uint8 {
	return uint8((uint32(a)*uint32(b) + 127) / 255)
}
