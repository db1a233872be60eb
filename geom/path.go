// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package geom

import "math"

// Verb is a path construction command.
type Verb uint8

const (
	VerbMoveTo Verb = iota
	VerbLineTo
	VerbQuadTo
	VerbCubicTo
	VerbClose
)

// pointsPerVerb is the number of float32 values each verb consumes.
var pointsPerVerb = [...]int{
	VerbMoveTo:  2,
	VerbLineTo:  2,
	VerbQuadTo:  4,
	VerbCubicTo: 6,
	VerbClose:   0,
}

// kappa is the Bezier circle approximation constant.
const kappa = 0.5522847498307936

// PathSink receives path commands. *vector.Rasterizer from
// golang.org/x/image/vector satisfies it.
type PathSink interface {
	MoveTo(x, y float32)
	LineTo(x, y float32)
	QuadTo(cx, cy, x, y float32)
	CubeTo(c1x, c1y, c2x, c2y, x, y float32)
	ClosePath()
}

// Path is a sequence of subpaths built from lines and Bezier curves.
//
// A Path is itself a [Shape].
//
//	p := geom.NewPath()
//	p.MoveTo(0, 0)
//	p.LineTo(10, 0)
//	p.LineTo(5, 10)
//	p.Close()
type Path struct {
	verbs  []Verb
	points []float32
	startX float32
	startY float32
	curX   float32
	curY   float32
}

// NewPath returns an empty path.
func NewPath() *Path {
	return &Path{
		verbs:  make([]Verb, 0, 8),
		points: make([]float32, 0, 32),
	}
}

// MoveTo starts a new subpath at (x, y).
func (p *Path) MoveTo(x, y float64) {
	p.verbs = append(p.verbs, VerbMoveTo)
	p.points = append(p.points, float32(x), float32(y))
	p.startX, p.startY = float32(x), float32(y)
	p.curX, p.curY = float32(x), float32(y)
}

// LineTo adds a line to (x, y). On an empty path it acts as MoveTo.
func (p *Path) LineTo(x, y float64) {
	if len(p.verbs) == 0 {
		p.MoveTo(x, y)
		return
	}
	p.verbs = append(p.verbs, VerbLineTo)
	p.points = append(p.points, float32(x), float32(y))
	p.curX, p.curY = float32(x), float32(y)
}

// QuadTo adds a quadratic Bezier with control point (cx, cy) ending at (x, y).
func (p *Path) QuadTo(cx, cy, x, y float64) {
	if len(p.verbs) == 0 {
		p.MoveTo(cx, cy)
	}
	p.verbs = append(p.verbs, VerbQuadTo)
	p.points = append(p.points, float32(cx), float32(cy), float32(x), float32(y))
	p.curX, p.curY = float32(x), float32(y)
}

// CubicTo adds a cubic Bezier with control points (c1x, c1y), (c2x, c2y)
// ending at (x, y).
func (p *Path) CubicTo(c1x, c1y, c2x, c2y, x, y float64) {
	if len(p.verbs) == 0 {
		p.MoveTo(c1x, c1y)
	}
	p.verbs = append(p.verbs, VerbCubicTo)
	p.points = append(p.points,
		float32(c1x), float32(c1y),
		float32(c2x), float32(c2y),
		float32(x), float32(y))
	p.curX, p.curY = float32(x), float32(y)
}

// Close closes the current subpath.
func (p *Path) Close() {
	if len(p.verbs) == 0 {
		return
	}
	p.verbs = append(p.verbs, VerbClose)
	p.curX, p.curY = p.startX, p.startY
}

// IsEmpty reports whether the path has no commands.
func (p *Path) IsEmpty() bool {
	return p == nil || len(p.verbs) == 0
}

// Rectangle adds a closed axis-aligned rectangle.
func (p *Path) Rectangle(x, y, w, h float64) {
	p.MoveTo(x, y)
	p.LineTo(x+w, y)
	p.LineTo(x+w, y+h)
	p.LineTo(x, y+h)
	p.Close()
}

// Ellipse adds a closed ellipse centered on (cx, cy).
func (p *Path) Ellipse(cx, cy, rx, ry float64) {
	ox := rx * kappa
	oy := ry * kappa

	p.MoveTo(cx+rx, cy)
	p.CubicTo(cx+rx, cy+oy, cx+ox, cy+ry, cx, cy+ry)
	p.CubicTo(cx-ox, cy+ry, cx-rx, cy+oy, cx-rx, cy)
	p.CubicTo(cx-rx, cy-oy, cx-ox, cy-ry, cx, cy-ry)
	p.CubicTo(cx+ox, cy-ry, cx+rx, cy-oy, cx+rx, cy)
	p.Close()
}

// Circle adds a closed circle centered on (cx, cy).
func (p *Path) Circle(cx, cy, r float64) {
	p.Ellipse(cx, cy, r, r)
}

// Emit replays the path into s. Every subpath is closed before the next one
// starts, so filled output does not depend on whether the caller closed it.
func (p *Path) Emit(s PathSink) {
	if p.IsEmpty() {
		return
	}
	pts := p.points
	open := false
	for _, v := range p.verbs {
		n := pointsPerVerb[v]
		switch v {
		case VerbMoveTo:
			if open {
				s.ClosePath()
			}
			s.MoveTo(pts[0], pts[1])
			open = true
		case VerbLineTo:
			s.LineTo(pts[0], pts[1])
		case VerbQuadTo:
			s.QuadTo(pts[0], pts[1], pts[2], pts[3])
		case VerbCubicTo:
			s.CubeTo(pts[0], pts[1], pts[2], pts[3], pts[4], pts[5])
		case VerbClose:
			if open {
				s.ClosePath()
				open = false
			}
		}
		pts = pts[n:]
	}
	if open {
		s.ClosePath()
	}
}

// Bounds returns the bounding box of the path's points, control points
// included. An empty path has an empty bounds.
func (p *Path) Bounds() Rect {
	if p.IsEmpty() {
		return Rect{}
	}
	minX, minY := math.Inf(1), math.Inf(1)
	maxX, maxY := math.Inf(-1), math.Inf(-1)
	for i := 0; i+1 < len(p.points); i += 2 {
		x, y := float64(p.points[i]), float64(p.points[i+1])
		minX = math.Min(minX, x)
		maxX = math.Max(maxX, x)
		minY = math.Min(minY, y)
		maxY = math.Max(maxY, y)
	}
	return Rect{X: minX, Y: minY, W: maxX - minX, H: maxY - minY}
}

// Path returns p, making *Path a [Shape].
func (p *Path) Path() *Path {
	return p
}
