// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package window

import (
	"errors"
	"image/color"
	"slices"
	"strings"
	"testing"

	"github.com/gogpu/gpucontext"

	"github.com/gogpu/ggdraw"
	"github.com/gogpu/ggdraw/geom"
)

// fakeTexture is a gpucontext.Texture that keeps the last uploaded pixels.
type fakeTexture struct {
	w, h      int
	data      []byte
	updates   int
	destroyed bool
}

func (t *fakeTexture) Width() int  { return t.w }
func (t *fakeTexture) Height() int { return t.h }

func (t *fakeTexture) UpdateData(data []byte) error {
	t.updates++
	t.data = slices.Clone(data)
	return nil
}

func (t *fakeTexture) Destroy() { t.destroyed = true }

// drawerWindow is a window that can draw textures, like a gogpu window.
type drawerWindow struct {
	created []*fakeTexture
	drawn   int
}

func (w *drawerWindow) RawWindowHandle() (uintptr, error) { return 42, nil }

func (w *drawerWindow) DrawTexture(tex gpucontext.Texture, x, y float32) error {
	if x != 0 || y != 0 {
		return errors.New("unexpected offset")
	}
	w.drawn++
	return nil
}

func (w *drawerWindow) TextureCreator() gpucontext.TextureCreator { return w }

func (w *drawerWindow) NewTextureFromRGBA(width, height int, data []byte) (gpucontext.Texture, error) {
	tex := &fakeTexture{w: width, h: height, data: slices.Clone(data)}
	w.created = append(w.created, tex)
	return tex, nil
}

func newSoftwareContext(t *testing.T) *Context {
	t.Helper()
	ctx, err := NewContext(Handle(1), WithBackends(Software()))
	if err != nil {
		t.Fatalf("NewContext() error = %v", err)
	}
	t.Cleanup(func() { ctx.Close() })
	return ctx
}

func TestSoftwareRedThenHalfBlue(t *testing.T) {
	ctx := newSoftwareContext(t)
	if ctx.Backend() != SoftwareName {
		t.Fatalf("Backend() = %q, want %q", ctx.Backend(), SoftwareName)
	}

	s, err := NewSurface(ctx, Handle(2), 1, 1)
	if err != nil {
		t.Fatalf("NewSurface() error = %v", err)
	}

	canvas := ggdraw.NewCanvas(s)
	if err := canvas.Paint(geom.OpReplace, ggdraw.SolidColor(geom.Red), ggdraw.NoClip()); err != nil {
		t.Fatalf("Paint(red) error = %v", err)
	}
	halfBlue := geom.RGBA8(0, 0, 255, 128)
	if err := canvas.Paint(geom.OpSourceOver, ggdraw.SolidColor(halfBlue), ggdraw.NoClip()); err != nil {
		t.Fatalf("Paint(blue) error = %v", err)
	}
	if err := s.Present(); err != nil {
		t.Errorf("headless Present() error = %v", err)
	}

	img, err := s.Realize()
	if err != nil {
		t.Fatalf("Realize() error = %v", err)
	}
	want := color.RGBA{R: 127, G: 0, B: 128, A: 255}
	if got := img.RGBAAt(0, 0); got != want {
		t.Errorf("pixel = %v, want %v", got, want)
	}
}

func TestSoftwarePresentUploadsThroughDrawer(t *testing.T) {
	ctx := newSoftwareContext(t)
	win := &drawerWindow{}

	s, err := NewSurface(ctx, win, 2, 2)
	if err != nil {
		t.Fatalf("NewSurface() error = %v", err)
	}
	if err := s.Paint(geom.OpReplace, ggdraw.SolidColor(geom.Green), ggdraw.NoClip()); err != nil {
		t.Fatalf("Paint() error = %v", err)
	}

	if err := s.Present(); err != nil {
		t.Fatalf("first Present() error = %v", err)
	}
	if len(win.created) != 1 {
		t.Fatalf("textures created = %d, want 1", len(win.created))
	}
	tex := win.created[0]
	if tex.w != 2 || tex.h != 2 || len(tex.data) != 16 {
		t.Fatalf("texture = %dx%d with %d bytes, want 2x2 with 16", tex.w, tex.h, len(tex.data))
	}
	if got := tex.data[:4]; got[0] != 0 || got[1] != 255 || got[2] != 0 || got[3] != 255 {
		t.Errorf("first uploaded pixel = %v, want opaque green", got)
	}

	if err := s.Present(); err != nil {
		t.Fatalf("second Present() error = %v", err)
	}
	if len(win.created) != 1 || tex.updates != 1 {
		t.Errorf("second present created=%d updates=%d, want 1 and 1", len(win.created), tex.updates)
	}

	if err := s.Resize(3, 1); err != nil {
		t.Fatalf("Resize() error = %v", err)
	}
	if !tex.destroyed {
		t.Error("Resize did not destroy the presented texture")
	}
	if err := s.Present(); err != nil {
		t.Fatalf("Present() after resize error = %v", err)
	}
	if len(win.created) != 2 || win.created[1].w != 3 || win.created[1].h != 1 {
		t.Errorf("texture after resize not recreated at 3x1")
	}
	if win.drawn != 3 {
		t.Errorf("DrawTexture calls = %d, want 3", win.drawn)
	}

	s.Close()
	if !win.created[1].destroyed {
		t.Error("Close did not destroy the presented texture")
	}
}

func TestSoftwareRejectsZeroHandles(t *testing.T) {
	_, err := NewContext(Handle(0), WithBackends(Software()))
	if err == nil {
		t.Fatal("NewContext(0) succeeded, want error")
	}
	if errors.Is(err, errZeroHandle) {
		t.Error("zero-handle cause is recoverable, want it private")
	}
	if !strings.Contains(err.Error(), "zero native handle") {
		t.Errorf("Error() = %q", err.Error())
	}

	ctx := newSoftwareContext(t)
	if _, err := NewSurface(ctx, Handle(0), 4, 4); err == nil {
		t.Error("NewSurface with a zero window handle succeeded")
	}
}

func TestSoftwareSurfaceAsPattern(t *testing.T) {
	ctx := newSoftwareContext(t)
	src, err := NewSurface(ctx, Handle(2), 2, 2)
	if err != nil {
		t.Fatalf("NewSurface() error = %v", err)
	}
	dst, err := NewSurface(ctx, Handle(3), 2, 2)
	if err != nil {
		t.Fatalf("NewSurface() error = %v", err)
	}

	if err := src.Paint(geom.OpReplace, ggdraw.SolidColor(geom.Blue), ggdraw.NoClip()); err != nil {
		t.Fatalf("Paint(src) error = %v", err)
	}
	if err := dst.Paint(geom.OpSourceOver, ggdraw.SurfacePattern(src), ggdraw.NoClip()); err != nil {
		t.Fatalf("Paint(dst) error = %v", err)
	}

	img, err := dst.Realize()
	if err != nil {
		t.Fatalf("Realize() error = %v", err)
	}
	if got, want := img.RGBAAt(1, 1), (color.RGBA{B: 255, A: 255}); got != want {
		t.Errorf("pixel = %v, want %v", got, want)
	}
}

func TestDefaultRegistryHasSoftware(t *testing.T) {
	names := Names()
	if !slices.Contains(names, SoftwareName) {
		t.Fatalf("Names() = %v, want it to contain %q", names, SoftwareName)
	}
	if names[len(names)-1] != SoftwareName {
		t.Errorf("software is not the last resort: %v", names)
	}
}
