// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package window

import (
	"fmt"
	"image"

	"github.com/gogpu/ggdraw"
	"github.com/gogpu/ggdraw/geom"
)

// Surface is a window bound to the backend of the Context it was made from.
// It is a ggdraw.Drawable.
//
// A Surface must stay on the goroutine that created it and must not be
// copied.
type Surface struct {
	_ noCopy

	ctx    *Context
	state  SurfaceBackend
	window WindowHandle
	width  int
	height int
	closed bool
}

var (
	_ ggdraw.Drawable = (*Surface)(nil)
	_ ggdraw.Realizer = (*Surface)(nil)
)

// NewSurface creates a width×height surface for w using ctx's backend. No
// other backend is consulted.
//
// NewSurface owns w from the moment it is called.
func NewSurface(ctx *Context, w WindowHandle, width, height int) (*Surface, error) {
	switch {
	case ctx == nil:
		releaseAfterFailure(w, "window")
		return nil, ggdraw.FromPublicErrorWithMessage(ggdraw.ErrInvalidArgument, "nil context")
	case ctx.closed:
		releaseAfterFailure(w, "window")
		return nil, ggdraw.FromPublicErrorWithMessage(ggdraw.ErrReleased, "context")
	case width <= 0 || height <= 0:
		releaseAfterFailure(w, "window")
		return nil, ggdraw.FromPublicErrorWithMessage(ggdraw.ErrInvalidArgument,
			fmt.Sprintf("surface size %dx%d", width, height))
	}

	state, err := ctx.state.NewSurface(w, width, height)
	if err == nil && state == nil {
		err = fmt.Errorf("window: backend %q returned no surface state", ctx.backend)
	}
	if err != nil {
		releaseAfterFailure(w, "window")
		return nil, boundary(err)
	}

	s := &Surface{
		ctx:    ctx,
		state:  state,
		window: w,
		width:  width,
		height: height,
	}
	ctx.track(s)
	ggdraw.Logger().Debug("ggdraw: surface created", "backend", ctx.backend, "width", width, "height", height)
	return s, nil
}

// Paint implements ggdraw.Drawable.
func (s *Surface) Paint(op geom.CompositeOp, pattern ggdraw.Pattern, clip ggdraw.Clip) error {
	if err := s.check(pattern); err != nil {
		return err
	}
	return boundary(s.state.Paint(op, pattern, clip))
}

// Mask implements ggdraw.Drawable.
func (s *Surface) Mask(op geom.CompositeOp, pattern, mask ggdraw.Pattern, clip ggdraw.Clip) error {
	if err := s.check(pattern, mask); err != nil {
		return err
	}
	return boundary(s.state.Mask(op, pattern, mask, clip))
}

func (s *Surface) check(patterns ...ggdraw.Pattern) error {
	if s.closed {
		return released()
	}
	return ggdraw.CheckAliasing(s, patterns...)
}

// Present shows the current contents in the window.
func (s *Surface) Present() error {
	if s.closed {
		return released()
	}
	return boundary(s.state.Present())
}

// Resize changes the surface size. The contents after a resize are
// transparent.
func (s *Surface) Resize(width, height int) error {
	if s.closed {
		return released()
	}
	if width <= 0 || height <= 0 {
		return ggdraw.FromPublicErrorWithMessage(ggdraw.ErrInvalidArgument,
			fmt.Sprintf("surface size %dx%d", width, height))
	}
	if err := s.state.Resize(width, height); err != nil {
		return boundary(err)
	}
	s.width, s.height = width, height
	return nil
}

// Size returns the surface size in pixels.
func (s *Surface) Size() (width, height int) {
	return s.width, s.height
}

// Backend returns the name of the backend drawing the surface.
func (s *Surface) Backend() string {
	return s.ctx.backend
}

// Realize implements ggdraw.Realizer for backends whose state can expose its
// pixels, which lets the surface be used as a pattern source.
func (s *Surface) Realize() (*image.RGBA, error) {
	if s.closed {
		return nil, released()
	}
	r, ok := s.state.(ggdraw.Realizer)
	if !ok {
		return nil, ggdraw.FromPublicError(&ggdraw.UnsupportedError{Feature: "pattern", Variant: s.ctx.backend + " surface"})
	}
	img, err := r.Realize()
	if err != nil {
		return nil, boundary(err)
	}
	return img, nil
}

// Close releases the backend state, then the window handle. Close is
// idempotent.
func (s *Surface) Close() error {
	if s.closed {
		return nil
	}
	s.closed = true

	s.state.Release()
	s.state = nil
	s.ctx.forget(s)
	ggdraw.Logger().Debug("ggdraw: surface released", "backend", s.ctx.backend)

	err := releaseHandle(s.window, "window")
	s.window = nil
	return err
}

func released() error {
	return ggdraw.FromPublicErrorWithMessage(ggdraw.ErrReleased, "surface")
}
