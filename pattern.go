package ggdraw

import (
	"fmt"
	"image"

	"github.com/gogpu/ggdraw/geom"
)

// PatternKind identifies the variant held by a Pattern.
type PatternKind uint8

const (
	// PatternSolid is a single color. The zero Pattern is a transparent
	// solid color.
	PatternSolid PatternKind = iota
	// PatternImage samples an image.
	PatternImage
	// PatternSurface samples another Drawable.
	PatternSurface
)

func (k PatternKind) String() string {
	switch k {
	case PatternSolid:
		return "SolidColor"
	case PatternImage:
		return "Image"
	case PatternSurface:
		return "Surface"
	default:
		return fmt.Sprintf("PatternKind(%d)", uint8(k))
	}
}

// Pattern is a paint source. It is used as the content of a Paint or Mask
// call, and as the coverage of a Mask call.
//
// The Surface variant lets one Drawable feed another. The nested Drawable is
// used exclusively for the duration of the call: it may be flushed to
// produce its pixels, and it must not be the call's target or appear twice
// in the same call.
//
// New variants may be added. Code switching on Kind should keep a default
// case that fails with an *UnsupportedError.
type Pattern struct {
	kind    PatternKind
	color   geom.Color
	image   image.Image
	surface Drawable
}

// SolidColor returns a Pattern of the single color c.
func SolidColor(c geom.Color) Pattern {
	return Pattern{kind: PatternSolid, color: c}
}

// ImagePattern returns a Pattern sampling img. The image origin is aligned
// with the target origin, and pixels outside img's bounds are transparent.
func ImagePattern(img image.Image) Pattern {
	return Pattern{kind: PatternImage, image: img}
}

// SurfacePattern returns a Pattern sampling d. Drawables that can be sampled
// implement Realizer.
func SurfacePattern(d Drawable) Pattern {
	return Pattern{kind: PatternSurface, surface: d}
}

// Kind returns the variant.
func (p Pattern) Kind() PatternKind { return p.kind }

// Color returns the color of a SolidColor pattern.
func (p Pattern) Color() geom.Color { return p.color }

// Image returns the image of an Image pattern, or nil.
func (p Pattern) Image() image.Image { return p.image }

// Surface returns the Drawable of a Surface pattern, or nil.
func (p Pattern) Surface() Drawable { return p.surface }
