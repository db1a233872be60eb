// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package window

import (
	"fmt"

	"github.com/gogpu/ggdraw"
	"github.com/gogpu/ggdraw/geom"
)

// journal records lifecycle events in the order they happen.
type journal struct {
	events []string
}

func (j *journal) add(format string, args ...any) {
	if j == nil {
		return
	}
	j.events = append(j.events, fmt.Sprintf(format, args...))
}

// stubHandle is a display or window handle that records when it is closed.
type stubHandle struct {
	name     string
	raw      uintptr
	j        *journal
	closeErr error
	closed   int
}

func newHandle(j *journal, name string) *stubHandle {
	return &stubHandle{name: name, raw: 1, j: j}
}

func (h *stubHandle) RawDisplayHandle() (uintptr, error) { return h.raw, nil }
func (h *stubHandle) RawWindowHandle() (uintptr, error)  { return h.raw, nil }

func (h *stubHandle) Close() error {
	h.closed++
	h.j.add("close %s", h.name)
	return h.closeErr
}

// stubBackend is an instrumented Backend. err makes NewContext fail and
// surfaceErr makes NewSurface fail.
type stubBackend struct {
	name       string
	j          *journal
	err        error
	surfaceErr error
	nilState   bool
	calls      int
}

func (b *stubBackend) Name() string { return b.name }

func (b *stubBackend) NewContext(DisplayHandle) (ContextBackend, error) {
	b.calls++
	b.j.add("init %s", b.name)
	if b.err != nil {
		return nil, b.err
	}
	if b.nilState {
		return nil, nil
	}
	return &stubContext{b: b}, nil
}

type stubContext struct {
	b        *stubBackend
	surfaces int
}

func (c *stubContext) NewSurface(_ WindowHandle, width, height int) (SurfaceBackend, error) {
	c.b.j.add("surface %s", c.b.name)
	if c.b.surfaceErr != nil {
		return nil, c.b.surfaceErr
	}
	c.surfaces++
	return &stubSurface{
		name:   fmt.Sprintf("%s#%d", c.b.name, c.surfaces),
		j:      c.b.j,
		width:  width,
		height: height,
	}, nil
}

func (c *stubContext) Release() {
	c.b.j.add("release context %s", c.b.name)
}

// stubSurface records draw calls. It does not implement ggdraw.Realizer.
type stubSurface struct {
	name          string
	j             *journal
	width, height int
	paints        int
	masks         int
	presents      int
}

func (s *stubSurface) Paint(geom.CompositeOp, ggdraw.Pattern, ggdraw.Clip) error {
	s.paints++
	return nil
}

func (s *stubSurface) Mask(geom.CompositeOp, ggdraw.Pattern, ggdraw.Pattern, ggdraw.Clip) error {
	s.masks++
	return nil
}

func (s *stubSurface) Resize(width, height int) error {
	s.width, s.height = width, height
	return nil
}

func (s *stubSurface) Present() error {
	s.presents++
	return nil
}

func (s *stubSurface) Release() {
	s.j.add("release surface %s", s.name)
}
