// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package geom

import (
	"image"
	"math"
)

// Shape is anything that can describe its outline as a [Path].
type Shape interface {
	Path() *Path
}

// Rect is an axis-aligned rectangle in user space.
type Rect struct {
	X, Y, W, H float64
}

// Path returns the rectangle outline.
func (r Rect) Path() *Path {
	p := NewPath()
	p.Rectangle(r.X, r.Y, r.W, r.H)
	return p
}

// Empty reports whether r has no area.
func (r Rect) Empty() bool {
	return r.W <= 0 || r.H <= 0
}

// Pixels returns the smallest integer rectangle that contains r, clamped to
// the int32 range. A rectangle with a NaN edge has no pixels.
func (r Rect) Pixels() image.Rectangle {
	if r.Empty() {
		return image.Rectangle{}
	}
	x0, y0 := math.Floor(r.X), math.Floor(r.Y)
	x1, y1 := math.Ceil(r.X+r.W), math.Ceil(r.Y+r.H)
	if math.IsNaN(x0) || math.IsNaN(y0) || math.IsNaN(x1) || math.IsNaN(y1) {
		return image.Rectangle{}
	}
	return image.Rect(pixel(x0), pixel(y0), pixel(x1), pixel(y1))
}

func pixel(v float64) int {
	return int(math.Max(math.MinInt32, math.Min(math.MaxInt32, v)))
}

// Circle is a circle in user space.
type Circle struct {
	CX, CY, R float64
}

// Path returns the circle outline.
func (c Circle) Path() *Path {
	p := NewPath()
	p.Circle(c.CX, c.CY, c.R)
	return p
}

var (
	_ Shape = Rect{}
	_ Shape = Circle{}
	_ Shape = (*Path)(nil)
)
