// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package window

import (
	"errors"
	"io"

	"github.com/gogpu/ggdraw"
)

// DisplayHandle exposes the platform display connection a Context is built
// on (an X11 Display*, a wl_display*, an HINSTANCE and so on).
type DisplayHandle interface {
	RawDisplayHandle() (uintptr, error)
}

// WindowHandle exposes the platform window a Surface presents to.
type WindowHandle interface {
	RawWindowHandle() (uintptr, error)
}

// Handle is a raw platform handle usable as both a DisplayHandle and a
// WindowHandle. It owns nothing and has no Close method.
type Handle uintptr

// RawDisplayHandle implements DisplayHandle.
func (h Handle) RawDisplayHandle() (uintptr, error) { return uintptr(h), nil }

// RawWindowHandle implements WindowHandle.
func (h Handle) RawWindowHandle() (uintptr, error) { return uintptr(h), nil }

var errZeroHandle = errors.New("window: zero native handle")

func resolveDisplay(display DisplayHandle) (uintptr, error) {
	if display == nil {
		return 0, ggdraw.FromPublicErrorWithMessage(ggdraw.ErrInvalidArgument, "nil display handle")
	}
	raw, err := display.RawDisplayHandle()
	if err != nil {
		return 0, ggdraw.FromErrorWithMessage(err, "resolve display handle")
	}
	if raw == 0 {
		return 0, ggdraw.FromErrorWithMessage(errZeroHandle, "resolve display handle")
	}
	return raw, nil
}

func resolveWindow(w WindowHandle) (uintptr, error) {
	if w == nil {
		return 0, ggdraw.FromPublicErrorWithMessage(ggdraw.ErrInvalidArgument, "nil window handle")
	}
	raw, err := w.RawWindowHandle()
	if err != nil {
		return 0, ggdraw.FromErrorWithMessage(err, "resolve window handle")
	}
	if raw == 0 {
		return 0, ggdraw.FromErrorWithMessage(errZeroHandle, "resolve window handle")
	}
	return raw, nil
}

// releaseHandle closes h when it implements io.Closer. kind is "display" or
// "window".
func releaseHandle(h any, kind string) error {
	c, ok := h.(io.Closer)
	if !ok {
		return nil
	}
	if err := c.Close(); err != nil {
		return ggdraw.FromPublicErrorWithMessage(err, "close "+kind+" handle")
	}
	return nil
}
