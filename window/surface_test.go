// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package window

import (
	"errors"
	"reflect"
	"testing"

	"github.com/gogpu/ggdraw"
	"github.com/gogpu/ggdraw/geom"
)

// newStubContext binds a context to the second of three stub backends.
func newStubContext(t *testing.T, j *journal) (*Context, *stubBackend) {
	t.Helper()
	a := &stubBackend{name: "a", j: j, err: errors.New("a unavailable")}
	b := &stubBackend{name: "b", j: j}
	c := &stubBackend{name: "c", j: j}
	ctx, err := NewContext(newHandle(j, "display"), WithBackends(a, b, c))
	if err != nil {
		t.Fatalf("NewContext() error = %v", err)
	}
	j.events = nil
	return ctx, b
}

func TestNewSurfaceUsesBoundBackend(t *testing.T) {
	j := &journal{}
	ctx, _ := newStubContext(t, j)
	defer ctx.Close()

	s, err := NewSurface(ctx, newHandle(j, "window"), 64, 32)
	if err != nil {
		t.Fatalf("NewSurface() error = %v", err)
	}
	if got := s.Backend(); got != "b" {
		t.Errorf("Backend() = %q, want b", got)
	}
	if w, h := s.Size(); w != 64 || h != 32 {
		t.Errorf("Size() = %dx%d, want 64x32", w, h)
	}
	if want := []string{"surface b"}; !reflect.DeepEqual(j.events, want) {
		t.Errorf("events = %v, want %v", j.events, want)
	}
}

func TestNewSurfaceNoFallback(t *testing.T) {
	j := &journal{}
	ctx, b := newStubContext(t, j)
	defer ctx.Close()

	b.surfaceErr = ggdraw.FromPublicErrorWithMessage(ggdraw.ErrUnsupported, "window kind")
	win := newHandle(j, "window")

	_, err := NewSurface(ctx, win, 10, 10)
	if err != error(b.surfaceErr) {
		t.Fatalf("NewSurface() error = %v, want the backend's error", err)
	}
	want := []string{"surface b", "close window"}
	if !reflect.DeepEqual(j.events, want) {
		t.Errorf("events = %v, want %v", j.events, want)
	}
}

func TestNewSurfaceInvalidArguments(t *testing.T) {
	j := &journal{}
	ctx, _ := newStubContext(t, j)

	tests := []struct {
		name          string
		ctx           *Context
		width, height int
		want          error
	}{
		{"nil context", nil, 10, 10, ggdraw.ErrInvalidArgument},
		{"zero width", ctx, 0, 10, ggdraw.ErrInvalidArgument},
		{"negative height", ctx, 10, -1, ggdraw.ErrInvalidArgument},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			j.events = nil
			win := newHandle(j, "window")
			_, err := NewSurface(tt.ctx, win, tt.width, tt.height)
			if !errors.Is(err, tt.want) {
				t.Errorf("NewSurface() error = %v, want %v", err, tt.want)
			}
			if want := []string{"close window"}; !reflect.DeepEqual(j.events, want) {
				t.Errorf("events = %v, want %v", j.events, want)
			}
		})
	}

	ctx.Close()
	if _, err := NewSurface(ctx, newHandle(j, "window"), 10, 10); !errors.Is(err, ggdraw.ErrReleased) {
		t.Errorf("NewSurface() on closed context error = %v, want ErrReleased", err)
	}
}

func TestSurfaceForwardsToState(t *testing.T) {
	ctx, _ := newStubContext(t, &journal{})
	defer ctx.Close()

	s, err := NewSurface(ctx, Handle(1), 8, 8)
	if err != nil {
		t.Fatalf("NewSurface() error = %v", err)
	}
	state := s.state.(*stubSurface)

	red := ggdraw.SolidColor(geom.Red)
	if err := s.Paint(geom.OpSourceOver, red, ggdraw.NoClip()); err != nil {
		t.Errorf("Paint() error = %v", err)
	}
	if err := s.Mask(geom.OpSourceOver, red, red, ggdraw.NoClip()); err != nil {
		t.Errorf("Mask() error = %v", err)
	}
	if err := s.Present(); err != nil {
		t.Errorf("Present() error = %v", err)
	}
	if err := s.Resize(16, 4); err != nil {
		t.Errorf("Resize() error = %v", err)
	}

	if state.paints != 1 || state.masks != 1 || state.presents != 1 {
		t.Errorf("state calls paint=%d mask=%d present=%d, want 1 each", state.paints, state.masks, state.presents)
	}
	if state.width != 16 || state.height != 4 {
		t.Errorf("state size = %dx%d, want 16x4", state.width, state.height)
	}
	if w, h := s.Size(); w != 16 || h != 4 {
		t.Errorf("Size() = %dx%d, want 16x4", w, h)
	}
	if err := s.Resize(0, 4); !errors.Is(err, ggdraw.ErrInvalidArgument) {
		t.Errorf("Resize(0, 4) error = %v, want ErrInvalidArgument", err)
	}
}

func TestSurfaceRejectsSelfReference(t *testing.T) {
	ctx, _ := newStubContext(t, &journal{})
	defer ctx.Close()

	s, err := NewSurface(ctx, Handle(1), 8, 8)
	if err != nil {
		t.Fatalf("NewSurface() error = %v", err)
	}

	self := ggdraw.SurfacePattern(s)
	if err := s.Paint(geom.OpSourceOver, self, ggdraw.NoClip()); !errors.Is(err, ggdraw.ErrAliasedDrawable) {
		t.Errorf("Paint(self) error = %v, want ErrAliasedDrawable", err)
	}
	if err := s.Mask(geom.OpSourceOver, ggdraw.SolidColor(geom.Red), self, ggdraw.NoClip()); !errors.Is(err, ggdraw.ErrAliasedDrawable) {
		t.Errorf("Mask(self) error = %v, want ErrAliasedDrawable", err)
	}
	if n := s.state.(*stubSurface).paints; n != 0 {
		t.Errorf("aliased call reached the backend %d times", n)
	}
}

func TestSurfaceRealizeUnsupported(t *testing.T) {
	ctx, _ := newStubContext(t, &journal{})
	defer ctx.Close()

	s, err := NewSurface(ctx, Handle(1), 8, 8)
	if err != nil {
		t.Fatalf("NewSurface() error = %v", err)
	}
	if _, err := s.Realize(); !errors.Is(err, ggdraw.ErrUnsupported) {
		t.Errorf("Realize() error = %v, want ErrUnsupported", err)
	}
}

func TestClosedSurface(t *testing.T) {
	ctx, _ := newStubContext(t, &journal{})
	defer ctx.Close()

	s, err := NewSurface(ctx, Handle(1), 8, 8)
	if err != nil {
		t.Fatalf("NewSurface() error = %v", err)
	}
	if err := s.Close(); err != nil {
		t.Fatalf("Close() error = %v", err)
	}

	red := ggdraw.SolidColor(geom.Red)
	ops := map[string]func() error{
		"Paint":   func() error { return s.Paint(geom.OpSourceOver, red, ggdraw.NoClip()) },
		"Mask":    func() error { return s.Mask(geom.OpSourceOver, red, red, ggdraw.NoClip()) },
		"Present": s.Present,
		"Resize":  func() error { return s.Resize(4, 4) },
		"Realize": func() error { _, err := s.Realize(); return err },
	}
	for name, op := range ops {
		if err := op(); !errors.Is(err, ggdraw.ErrReleased) {
			t.Errorf("%s() after Close error = %v, want ErrReleased", name, err)
		}
	}
}
