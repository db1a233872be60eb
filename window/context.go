// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package window

import (
	"fmt"

	"github.com/gogpu/ggdraw"
)

// Context is a display connection bound to one backend.
//
// A Context must stay on the goroutine that created it and must not be
// copied.
type Context struct {
	_ noCopy

	backend  string
	state    ContextBackend
	display  DisplayHandle
	surfaces []*Surface
	closed   bool
}

// NewContext tries each candidate backend in order and binds the first one
// that initializes. Backends after it are never invoked.
//
// Every failure is logged at warn level. When all candidates fail, display is
// released and the last failure is returned. With no candidates at all the
// error's cause is ErrNoBackendAvailable.
//
// NewContext owns display from the moment it is called.
func NewContext(display DisplayHandle, opts ...ContextOption) (*Context, error) {
	o := defaultContextOptions()
	for _, opt := range opts {
		opt(&o)
	}

	candidates := o.candidates()
	if len(candidates) == 0 {
		releaseAfterFailure(display, "display")
		return nil, ggdraw.FromPublicError(ErrNoBackendAvailable)
	}

	var lastErr error
	for _, b := range candidates {
		name := b.Name()
		state, err := b.NewContext(display)
		if err == nil && state == nil {
			err = fmt.Errorf("window: backend %q returned no context state", name)
		}
		if err != nil {
			ggdraw.Logger().Warn("ggdraw: backend init failed", "backend", name, "err", err)
			lastErr = err
			continue
		}

		ggdraw.Logger().Info("ggdraw: backend selected", "backend", name)
		return &Context{
			backend: name,
			state:   state,
			display: display,
		}, nil
	}

	releaseAfterFailure(display, "display")
	return nil, boundary(lastErr)
}

// Backend returns the name of the bound backend.
func (c *Context) Backend() string {
	return c.backend
}

// Display returns the display handle the context owns.
func (c *Context) Display() DisplayHandle {
	return c.display
}

// Close closes every open Surface of the context, newest first, then
// releases the backend state and finally the display handle. Close is
// idempotent.
func (c *Context) Close() error {
	if c.closed {
		return nil
	}
	c.closed = true

	var first error
	for len(c.surfaces) > 0 {
		s := c.surfaces[len(c.surfaces)-1]
		if err := s.Close(); err != nil && first == nil {
			first = err
		}
	}

	c.state.Release()
	c.state = nil
	ggdraw.Logger().Debug("ggdraw: context released", "backend", c.backend)

	if err := releaseHandle(c.display, "display"); err != nil && first == nil {
		first = err
	}
	c.display = nil
	return first
}

func (c *Context) track(s *Surface) {
	c.surfaces = append(c.surfaces, s)
}

func (c *Context) forget(s *Surface) {
	for i, t := range c.surfaces {
		if t == s {
			c.surfaces = append(c.surfaces[:i], c.surfaces[i+1:]...)
			return
		}
	}
}

// boundary converts a backend error into the public error type. A *ggdraw.Error
// passes through untouched; anything else is wrapped as a private cause.
func boundary(err error) error {
	if err == nil {
		return nil
	}
	if e, ok := err.(*ggdraw.Error); ok {
		return e
	}
	return ggdraw.FromError(err)
}

// releaseAfterFailure closes h on a path that already returns an error. The
// close error is logged and otherwise dropped.
func releaseAfterFailure(h any, kind string) {
	if err := releaseHandle(h, kind); err != nil {
		ggdraw.Logger().Debug("ggdraw: handle close failed", "handle", kind, "err", err)
	}
}
