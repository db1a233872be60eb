package ggdraw

import (
	"image"
	"reflect"

	"github.com/gogpu/ggdraw/geom"
)

// Drawable is anything that accepts drawing calls: an in-memory image, a
// software framebuffer, a GPU-backed window surface.
//
// Calls on one Drawable take effect in call order; a later call sees the
// pixels left by an earlier one. A call only changes the receiving
// Drawable's pixels. A Drawable may flush a Drawable referenced by a Surface
// pattern, but never otherwise touches it.
//
// A call fails with an *Error when the composite operation, the pattern or
// the clip variant is not supported, or when the backing resource has been
// released. A failed call is not retried.
//
// Drawables are not safe for concurrent use.
type Drawable interface {
	// Paint composites pattern with op inside clip.
	Paint(op geom.CompositeOp, pattern Pattern, clip Clip) error

	// Mask composites pattern with op inside clip, with the coverage of
	// every pixel scaled by the alpha of mask at that pixel. The result
	// equals painting pattern gated by mask into a transparent buffer and
	// compositing that buffer with op.
	Mask(op geom.CompositeOp, pattern, mask Pattern, clip Clip) error
}

// Realizer is implemented by Drawables that can be used as a Surface
// pattern. Realize brings the pixels up to date and returns them as
// premultiplied RGBA. The returned image is only valid until the next call
// on the Drawable, and callers must not modify it.
type Realizer interface {
	Realize() (*image.RGBA, error)
}

// CheckAliasing returns an error when a Surface pattern in patterns refers to
// target, or when two patterns refer to the same Drawable.
func CheckAliasing(target Drawable, patterns ...Pattern) error {
	for i, p := range patterns {
		if p.kind != PatternSurface || p.surface == nil {
			continue
		}
		if sameDrawable(p.surface, target) {
			return FromPublicErrorWithMessage(ErrAliasedDrawable, "pattern samples its own target")
		}
		for _, q := range patterns[i+1:] {
			if q.kind == PatternSurface && sameDrawable(p.surface, q.surface) {
				return FromPublicErrorWithMessage(ErrAliasedDrawable, "pattern and mask share a drawable")
			}
		}
	}
	return nil
}

// sameDrawable compares two Drawables by identity without panicking on
// dynamic types that are not comparable.
func sameDrawable(a, b Drawable) bool {
	if a == nil || b == nil {
		return false
	}
	ta, tb := reflect.TypeOf(a), reflect.TypeOf(b)
	if ta != tb || !ta.Comparable() {
		return false
	}
	return a == b
}
