// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package compose

import (
	"image"
	"slices"

	xdraw "golang.org/x/image/draw"
	"golang.org/x/image/vector"

	"github.com/gogpu/ggdraw"
	"github.com/gogpu/ggdraw/geom"
)

// coverage is the set of pixels a call may touch. A nil alpha means full
// coverage everywhere in area.
type coverage struct {
	area  image.Rectangle
	alpha *image.Alpha
}

func (c coverage) at(x, y int) uint8 {
	if c.alpha == nil {
		return 255
	}
	return c.alpha.AlphaAt(x, y).A
}

// clipCoverage computes the coverage of clip within bounds.
func clipCoverage(clip ggdraw.Clip, bounds image.Rectangle) (coverage, error) {
	switch clip.Kind() {
	case ggdraw.ClipNone:
		return coverage{area: bounds}, nil

	case ggdraw.ClipRegion:
		region := clip.Region()
		if region == nil {
			return coverage{}, ggdraw.FromPublicErrorWithMessage(ggdraw.ErrInvalidArgument, "region clip without region")
		}
		inside := region.Intersect(bounds)
		area := inside.Bounds()
		if area.Empty() {
			return coverage{}, nil
		}
		alpha := image.NewAlpha(area)
		for _, rc := range inside.Rects() {
			for y := rc.Min.Y; y < rc.Max.Y; y++ {
				row := alpha.Pix[alpha.PixOffset(rc.Min.X, y):alpha.PixOffset(rc.Max.X, y)]
				for i := range row {
					row[i] = 0xff
				}
			}
		}
		return coverage{area: area, alpha: alpha}, nil

	case ggdraw.ClipShape:
		shape := clip.Shape()
		if shape == nil {
			return coverage{}, ggdraw.FromPublicErrorWithMessage(ggdraw.ErrInvalidArgument, "shape clip without shape")
		}
		return shapeCoverage(shape.Path(), bounds), nil

	default:
		return coverage{}, ggdraw.FromPublicError(&ggdraw.UnsupportedError{Feature: "clip", Variant: clip.Kind().String()})
	}
}

// shapeCoverage fills p with the nonzero rule and anti-aliasing.
func shapeCoverage(p *geom.Path, bounds image.Rectangle) coverage {
	if p.IsEmpty() {
		return coverage{}
	}
	area := p.Bounds().Pixels().Intersect(bounds)
	if area.Empty() {
		return coverage{}
	}

	z := vector.NewRasterizer(area.Dx(), area.Dy())
	z.DrawOp = xdraw.Src
	p.Emit(&clipSink{
		z:    z,
		dx:   float64(-area.Min.X),
		dy:   float64(-area.Min.Y),
		maxX: float64(area.Dx() + 1),
		maxY: float64(area.Dy() + 1),
	})

	alpha := image.NewAlpha(area)
	z.Draw(alpha, area, image.Opaque, image.Point{})
	return coverage{area: area, alpha: alpha}
}

// clipMin is the low bound of the clip box in rasterizer space.
const clipMin = -1

// clipSink translates path coordinates into the rasterizer's space and
// clamps them to a box one pixel wider than the rasterizer on every side.
// Lines are split where they cross the box, so each piece lies inside it or
// beyond a single edge, and clamping keeps its winding. Curves reaching
// outside the box are flattened first.
type clipSink struct {
	z          *vector.Rasterizer
	dx, dy     float64
	maxX, maxY float64

	// Unclamped pen and subpath start.
	penX, penY     float64
	startX, startY float64
}

func (s *clipSink) MoveTo(x, y float32) {
	s.penX, s.penY = float64(x)+s.dx, float64(y)+s.dy
	s.startX, s.startY = s.penX, s.penY
	s.z.MoveTo(s.clamp(s.penX, s.penY))
}

func (s *clipSink) LineTo(x, y float32) {
	s.lineTo(float64(x)+s.dx, float64(y)+s.dy)
}

func (s *clipSink) QuadTo(cx, cy, x, y float32) {
	c := [2]float64{float64(cx) + s.dx, float64(cy) + s.dy}
	e := [2]float64{float64(x) + s.dx, float64(y) + s.dy}
	if s.inside(s.penX, s.penY) && s.inside(c[0], c[1]) && s.inside(e[0], e[1]) {
		s.z.QuadTo(float32(c[0]), float32(c[1]), float32(e[0]), float32(e[1]))
		s.penX, s.penY = e[0], e[1]
		return
	}
	p0x, p0y := s.penX, s.penY
	for i := 1; i <= flattenSteps; i++ {
		t := float64(i) / flattenSteps
		u := 1 - t
		s.lineTo(
			u*u*p0x+2*u*t*c[0]+t*t*e[0],
			u*u*p0y+2*u*t*c[1]+t*t*e[1],
		)
	}
}

func (s *clipSink) CubeTo(c1x, c1y, c2x, c2y, x, y float32) {
	c1 := [2]float64{float64(c1x) + s.dx, float64(c1y) + s.dy}
	c2 := [2]float64{float64(c2x) + s.dx, float64(c2y) + s.dy}
	e := [2]float64{float64(x) + s.dx, float64(y) + s.dy}
	if s.inside(s.penX, s.penY) && s.inside(c1[0], c1[1]) && s.inside(c2[0], c2[1]) && s.inside(e[0], e[1]) {
		s.z.CubeTo(float32(c1[0]), float32(c1[1]), float32(c2[0]), float32(c2[1]), float32(e[0]), float32(e[1]))
		s.penX, s.penY = e[0], e[1]
		return
	}
	p0x, p0y := s.penX, s.penY
	for i := 1; i <= flattenSteps; i++ {
		t := float64(i) / flattenSteps
		u := 1 - t
		s.lineTo(
			u*u*u*p0x+3*u*u*t*c1[0]+3*u*t*t*c2[0]+t*t*t*e[0],
			u*u*u*p0y+3*u*u*t*c1[1]+3*u*t*t*c2[1]+t*t*t*e[1],
		)
	}
}

func (s *clipSink) ClosePath() {
	s.lineTo(s.startX, s.startY)
}

// flattenSteps is the number of lines a curve outside the clip box becomes.
const flattenSteps = 16

func (s *clipSink) lineTo(bx, by float64) {
	ax, ay := s.penX, s.penY
	s.penX, s.penY = bx, by

	var ts [4]float64
	n := 0
	for _, c := range [4][3]float64{
		{ax, bx, clipMin}, {ax, bx, s.maxX},
		{ay, by, clipMin}, {ay, by, s.maxY},
	} {
		a, b, v := c[0], c[1], c[2]
		if (a < v) == (b < v) {
			continue
		}
		if t := (v - a) / (b - a); t > 0 && t < 1 {
			ts[n] = t
			n++
		}
	}
	slices.Sort(ts[:n])
	for _, t := range ts[:n] {
		s.z.LineTo(s.clamp(ax+(bx-ax)*t, ay+(by-ay)*t))
	}
	s.z.LineTo(s.clamp(bx, by))
}

func (s *clipSink) inside(x, y float64) bool {
	return x >= clipMin && x <= s.maxX && y >= clipMin && y <= s.maxY
}

// clamp maps a point into the clip box. NaN maps to the low bound.
func (s *clipSink) clamp(x, y float64) (float32, float32) {
	return float32(clampTo(x, s.maxX)), float32(clampTo(y, s.maxY))
}

func clampTo(v, hi float64) float64 {
	switch {
	case v > hi:
		return hi
	case v >= clipMin:
		return v
	default:
		return clipMin
	}
}
