// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package window

import "github.com/gogpu/ggdraw"

// Backend is one kind of rendering implementation, such as "gpu" or
// "software".
type Backend interface {
	// Name identifies the kind in logs and in the registry.
	Name() string

	// NewContext builds the per-display state. On failure it must release
	// whatever it created, in reverse creation order, before returning.
	// It must not close display.
	NewContext(display DisplayHandle) (ContextBackend, error)
}

// ContextBackend is the state a Backend keeps for one display connection.
type ContextBackend interface {
	// NewSurface builds the per-window state. The same cleanup rule as
	// Backend.NewContext applies, and window must not be closed.
	NewSurface(window WindowHandle, width, height int) (SurfaceBackend, error)

	// Release frees the state. It is called exactly once, after every
	// surface of the context has been released.
	Release()
}

// SurfaceBackend is the state a ContextBackend keeps for one window.
type SurfaceBackend interface {
	ggdraw.Drawable

	Resize(width, height int) error
	Present() error

	// Release frees the state. It is called exactly once, before the
	// window handle is closed.
	Release()
}
