// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package compose

import (
	"image"
	"image/color"

	"github.com/gogpu/ggdraw"
	"github.com/gogpu/ggdraw/geom"
	"github.com/gogpu/ggdraw/internal/blend"
)

// Paint composites pattern onto dst with op inside clip.
func Paint(dst *image.RGBA, op geom.CompositeOp, pattern ggdraw.Pattern, clip ggdraw.Clip) error {
	return draw(dst, op, pattern, nil, clip)
}

// Mask composites pattern onto dst with op inside clip, with the source
// scaled by the alpha of mask at every pixel.
func Mask(dst *image.RGBA, op geom.CompositeOp, pattern, mask ggdraw.Pattern, clip ggdraw.Clip) error {
	return draw(dst, op, pattern, &mask, clip)
}

func draw(dst *image.RGBA, op geom.CompositeOp, pattern ggdraw.Pattern, mask *ggdraw.Pattern, clip ggdraw.Clip) error {
	fn, ok := blend.For(op)
	if !ok {
		return ggdraw.FromPublicError(&ggdraw.UnsupportedError{Feature: "composite operation", Variant: op.String()})
	}

	cov, err := clipCoverage(clip, dst.Rect)
	if err != nil {
		return err
	}

	src, err := resolve(pattern, cov.area)
	if err != nil {
		return err
	}
	var gate source
	if mask != nil {
		if gate, err = resolve(*mask, cov.area); err != nil {
			return err
		}
	}

	if cov.area.Empty() {
		return nil
	}
	apply(dst, fn, src, gate, cov)
	return nil
}

func apply(dst *image.RGBA, fn blend.Func, src, gate source, cov coverage) {
	for y := cov.area.Min.Y; y < cov.area.Max.Y; y++ {
		for x := cov.area.Min.X; x < cov.area.Max.X; x++ {
			c := cov.at(x, y)
			if c == 0 {
				continue
			}
			s := src.at(x, y)
			if gate != nil {
				s = scale(s, gate.at(x, y).A)
			}
			d := dst.RGBAAt(x, y)
			out := fn(s, d)
			if c < 255 {
				out = lerp(d, out, c)
			}
			dst.SetRGBA(x, y, out)
		}
	}
}

func scale(c color.RGBA, f uint8) color.RGBA {
	if f == 255 {
		return c
	}
	return color.RGBA{
		R: blend.Mul(c.R, f),
		G: blend.Mul(c.G, f),
		B: blend.Mul(c.B, f),
		A: blend.Mul(c.A, f),
	}
}

func lerp(a, b color.RGBA, t uint8) color.RGBA {
	return color.RGBA{
		R: blend.Lerp(a.R, b.R, t),
		G: blend.Lerp(a.G, b.G, t),
		B: blend.Lerp(a.B, b.B, t),
		A: blend.Lerp(a.A, b.A, t),
	}
}
