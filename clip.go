package ggdraw

import (
	"fmt"

	"github.com/gogpu/ggdraw/geom"
)

// ClipKind identifies the variant held by a Clip.
type ClipKind uint8

const (
	// ClipNone leaves every pixel drawable. It is the zero value.
	ClipNone ClipKind = iota
	// ClipShape restricts drawing to the inside of a shape.
	ClipShape
	// ClipRegion restricts drawing to a set of pixel rectangles.
	ClipRegion
)

func (k ClipKind) String() string {
	switch k {
	case ClipNone:
		return "None"
	case ClipShape:
		return "Shape"
	case ClipRegion:
		return "Region"
	default:
		return fmt.Sprintf("ClipKind(%d)", uint8(k))
	}
}

// Clip restricts the pixels a drawing call may touch.
//
// A Clip borrows its shape or region for the duration of one call.
// Drawables must not keep it afterwards. The zero Clip is ClipNone.
//
// New variants may be added. Code switching on Kind should keep a default
// case that fails with an *UnsupportedError.
type Clip struct {
	kind   ClipKind
	shape  geom.Shape
	region *geom.Region
}

// NoClip returns a Clip that does not restrict drawing.
func NoClip() Clip {
	return Clip{}
}

// ClipToShape returns a Clip restricted to the inside of s.
func ClipToShape(s geom.Shape) Clip {
	return Clip{kind: ClipShape, shape: s}
}

// ClipToRegion returns a Clip restricted to r.
func ClipToRegion(r *geom.Region) Clip {
	return Clip{kind: ClipRegion, region: r}
}

// Kind returns the variant.
func (c Clip) Kind() ClipKind { return c.kind }

// Shape returns the clip shape, or nil for other variants.
func (c Clip) Shape() geom.Shape { return c.shape }

// Region returns the clip region, or nil for other variants.
func (c Clip) Region() *geom.Region { return c.region }
