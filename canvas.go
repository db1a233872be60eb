package ggdraw

import "github.com/gogpu/ggdraw/geom"

// Canvas routes drawing calls to the Drawable it was created for.
//
//	c := ggdraw.NewCanvas(target)
//	err := c.Paint(geom.OpSourceOver, ggdraw.SolidColor(geom.Red), ggdraw.NoClip())
type Canvas struct {
	target Drawable
}

// NewCanvas binds a Canvas to d. Drawing on a Canvas bound to nil fails with
// ErrInvalidArgument.
func NewCanvas(d Drawable) *Canvas {
	return &Canvas{target: d}
}

// Paint forwards to the bound Drawable.
func (c *Canvas) Paint(op geom.CompositeOp, pattern Pattern, clip Clip) error {
	if c == nil || c.target == nil {
		return errNoTarget()
	}
	return c.target.Paint(op, pattern, clip)
}

// Mask forwards to the bound Drawable.
func (c *Canvas) Mask(op geom.CompositeOp, pattern, mask Pattern, clip Clip) error {
	if c == nil || c.target == nil {
		return errNoTarget()
	}
	return c.target.Mask(op, pattern, mask, clip)
}

func errNoTarget() error {
	return FromPublicErrorWithMessage(ErrInvalidArgument, "canvas without drawable")
}

// Drawable returns the bound Drawable.
func (c *Canvas) Drawable() Drawable {
	if c == nil {
		return nil
	}
	return c.target
}
