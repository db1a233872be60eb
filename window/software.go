// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package window

import (
	"errors"
	"image"

	"github.com/gogpu/gpucontext"

	"github.com/gogpu/ggdraw"
	"github.com/gogpu/ggdraw/geom"
	"github.com/gogpu/ggdraw/surface"
)

// SoftwareName is the name of the CPU backend.
const SoftwareName = "software"

func init() {
	Register(Software(), PrioritySoftware)
}

// Software returns the CPU backend. It composites into an in-memory
// premultiplied RGBA image. Present uploads the image through the window's
// gpucontext.TextureDrawer, and is a no-op for windows without one.
func Software() Backend {
	return softwareBackend{}
}

var errNoTextureCreator = errors.New("window: texture drawer has no texture creator")

type softwareBackend struct{}

func (softwareBackend) Name() string { return SoftwareName }

func (softwareBackend) NewContext(display DisplayHandle) (ContextBackend, error) {
	if _, err := resolveDisplay(display); err != nil {
		return nil, err
	}
	return softwareContext{}, nil
}

type softwareContext struct{}

func (softwareContext) NewSurface(w WindowHandle, width, height int) (SurfaceBackend, error) {
	if _, err := resolveWindow(w); err != nil {
		return nil, err
	}
	drawer, _ := w.(gpucontext.TextureDrawer)
	return &softwareSurface{
		img:    surface.NewImageSurface(width, height),
		drawer: drawer,
	}, nil
}

func (softwareContext) Release() {}

// softwareSurface draws into an ImageSurface. The presented texture is
// created on the first Present and updated in place afterwards.
type softwareSurface struct {
	img    *surface.ImageSurface
	drawer gpucontext.TextureDrawer
	tex    gpucontext.Texture
}

// textureDestroyer is implemented by textures that hold GPU memory.
type textureDestroyer interface {
	Destroy()
}

func (s *softwareSurface) Paint(op geom.CompositeOp, pattern ggdraw.Pattern, clip ggdraw.Clip) error {
	return s.img.Paint(op, pattern, clip)
}

func (s *softwareSurface) Mask(op geom.CompositeOp, pattern, mask ggdraw.Pattern, clip ggdraw.Clip) error {
	return s.img.Mask(op, pattern, mask, clip)
}

func (s *softwareSurface) Realize() (*image.RGBA, error) {
	return s.img.Realize()
}

func (s *softwareSurface) Resize(width, height int) error {
	if err := s.img.Resize(width, height); err != nil {
		return err
	}
	s.dropTexture()
	return nil
}

func (s *softwareSurface) Present() error {
	if s.drawer == nil {
		ggdraw.Logger().Debug("ggdraw: present skipped, window has no texture drawer", "backend", SoftwareName)
		return nil
	}

	pix := s.img.Snapshot()
	w, h := pix.Rect.Dx(), pix.Rect.Dy()

	if s.tex != nil && (s.tex.Width() != w || s.tex.Height() != h) {
		s.dropTexture()
	}

	if s.tex == nil {
		creator := s.drawer.TextureCreator()
		if creator == nil {
			return ggdraw.FromErrorWithMessage(errNoTextureCreator, "software present")
		}
		tex, err := creator.NewTextureFromRGBA(w, h, pix.Pix)
		if err != nil {
			return ggdraw.FromErrorWithMessage(err, "software present: create texture")
		}
		// Pixels are premultiplied.
		if pt, ok := tex.(interface{ SetPremultiplied(bool) }); ok {
			pt.SetPremultiplied(true)
		}
		s.tex = tex
	} else if updater, ok := s.tex.(gpucontext.TextureUpdater); ok {
		if err := updater.UpdateData(pix.Pix); err != nil {
			return ggdraw.FromErrorWithMessage(err, "software present: update texture")
		}
	} else {
		s.dropTexture()
		return s.Present()
	}

	if err := s.drawer.DrawTexture(s.tex, 0, 0); err != nil {
		return ggdraw.FromErrorWithMessage(err, "software present: draw texture")
	}
	return nil
}

func (s *softwareSurface) dropTexture() {
	if s.tex == nil {
		return
	}
	if d, ok := s.tex.(textureDestroyer); ok {
		d.Destroy()
	}
	s.tex = nil
}

func (s *softwareSurface) Release() {
	s.dropTexture()
	_ = s.img.Close()
}
