// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package geom

import "image"

// Region is a union of pixel-aligned rectangles.
//
// The zero value is an empty region.
type Region struct {
	rects []image.Rectangle
}

// NewRegion returns the union of rects. Empty rectangles are dropped.
func NewRegion(rects ...image.Rectangle) *Region {
	r := &Region{}
	for _, rc := range rects {
		r.Add(rc)
	}
	return r
}

// Add extends the region by rc.
func (r *Region) Add(rc image.Rectangle) {
	rc = rc.Canon()
	if rc.Empty() {
		return
	}
	r.rects = append(r.rects, rc)
}

// Rects returns a copy of the rectangles that make up the region. They may
// overlap.
func (r *Region) Rects() []image.Rectangle {
	out := make([]image.Rectangle, len(r.rects))
	copy(out, r.rects)
	return out
}

// Empty reports whether the region covers no pixels.
func (r *Region) Empty() bool {
	return r == nil || len(r.rects) == 0
}

// Bounds returns the smallest rectangle containing the region.
func (r *Region) Bounds() image.Rectangle {
	var b image.Rectangle
	if r == nil {
		return b
	}
	for _, rc := range r.rects {
		b = b.Union(rc)
	}
	return b
}

// Contains reports whether pixel pt is inside the region.
func (r *Region) Contains(pt image.Point) bool {
	if r == nil {
		return false
	}
	for _, rc := range r.rects {
		if pt.In(rc) {
			return true
		}
	}
	return false
}

// Intersect returns the part of the region inside clip.
func (r *Region) Intersect(clip image.Rectangle) *Region {
	out := &Region{}
	if r == nil {
		return out
	}
	for _, rc := range r.rects {
		out.Add(rc.Intersect(clip))
	}
	return out
}
