// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package surface

import (
	"image"

	"github.com/gogpu/ggdraw"
	"github.com/gogpu/ggdraw/geom"
	"github.com/gogpu/ggdraw/internal/compose"
)

// ImageSurface is a Drawable that composites into a premultiplied
// *image.RGBA on the CPU.
type ImageSurface struct {
	img     *image.RGBA
	closed  bool
	noImage bool
}

var (
	_ ggdraw.Drawable = (*ImageSurface)(nil)
	_ ggdraw.Realizer = (*ImageSurface)(nil)
)

// NewImageSurface creates a transparent surface. Non-positive dimensions are
// raised to 1.
func NewImageSurface(width, height int) *ImageSurface {
	if width <= 0 {
		width = 1
	}
	if height <= 0 {
		height = 1
	}
	return &ImageSurface{img: image.NewRGBA(image.Rect(0, 0, width, height))}
}

// NewImageSurfaceFromImage creates a surface that draws directly into img.
// With a nil img the surface has no pixels and every drawing call fails with
// ggdraw.ErrInvalidArgument.
func NewImageSurfaceFromImage(img *image.RGBA) *ImageSurface {
	if img == nil {
		return &ImageSurface{img: &image.RGBA{}, noImage: true}
	}
	return &ImageSurface{img: img}
}

// Width returns the surface width.
func (s *ImageSurface) Width() int {
	return s.img.Rect.Dx()
}

// Height returns the surface height.
func (s *ImageSurface) Height() int {
	return s.img.Rect.Dy()
}

// Paint implements ggdraw.Drawable.
func (s *ImageSurface) Paint(op geom.CompositeOp, pattern ggdraw.Pattern, clip ggdraw.Clip) error {
	if err := s.check(pattern); err != nil {
		return err
	}
	return compose.Paint(s.img, op, pattern, clip)
}

// Mask implements ggdraw.Drawable.
func (s *ImageSurface) Mask(op geom.CompositeOp, pattern, mask ggdraw.Pattern, clip ggdraw.Clip) error {
	if err := s.check(pattern, mask); err != nil {
		return err
	}
	return compose.Mask(s.img, op, pattern, mask, clip)
}

func (s *ImageSurface) check(patterns ...ggdraw.Pattern) error {
	if err := s.usable(); err != nil {
		return err
	}
	return ggdraw.CheckAliasing(s, patterns...)
}

func (s *ImageSurface) usable() error {
	switch {
	case s.closed:
		return ggdraw.FromPublicErrorWithMessage(ggdraw.ErrReleased, "image surface")
	case s.noImage:
		return ggdraw.FromPublicErrorWithMessage(ggdraw.ErrInvalidArgument, "image surface without image")
	}
	return nil
}

// Realize implements ggdraw.Realizer. It returns the backing image itself.
func (s *ImageSurface) Realize() (*image.RGBA, error) {
	if err := s.usable(); err != nil {
		return nil, err
	}
	return s.img, nil
}

// Snapshot returns a copy of the current pixels.
func (s *ImageSurface) Snapshot() *image.RGBA {
	r := s.img.Rect
	out := image.NewRGBA(r)
	for y := r.Min.Y; y < r.Max.Y; y++ {
		copy(out.Pix[out.PixOffset(r.Min.X, y):out.PixOffset(r.Max.X, y)],
			s.img.Pix[s.img.PixOffset(r.Min.X, y):s.img.PixOffset(r.Max.X, y)])
	}
	return out
}

// Resize replaces the pixels with a transparent image of the new size.
func (s *ImageSurface) Resize(width, height int) error {
	if err := s.usable(); err != nil {
		return err
	}
	if width <= 0 || height <= 0 {
		return ggdraw.FromPublicErrorWithMessage(ggdraw.ErrInvalidArgument, "resize to non-positive size")
	}
	s.img = image.NewRGBA(image.Rect(0, 0, width, height))
	return nil
}

// Close releases the pixels. Later calls fail with ggdraw.ErrReleased.
func (s *ImageSurface) Close() error {
	s.closed = true
	s.img = &image.RGBA{}
	return nil
}
