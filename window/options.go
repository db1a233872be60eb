// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package window

// ContextOption configures NewContext.
//
// Example:
//
//	// Registered backends, highest priority first
//	ctx, err := window.NewContext(display)
//
//	// CPU only
//	ctx, err := window.NewContext(display, window.WithBackends(window.Software()))
type ContextOption func(*contextOptions)

type contextOptions struct {
	registry *Registry
	backends []Backend
	pinned   bool
}

func defaultContextOptions() contextOptions {
	return contextOptions{registry: defaultRegistry}
}

// WithBackends replaces the registry lookup with an explicit ordered list.
// An empty list leaves NewContext nothing to try.
func WithBackends(bs ...Backend) ContextOption {
	return func(o *contextOptions) {
		o.backends = make([]Backend, 0, len(bs))
		for _, b := range bs {
			if b != nil {
				o.backends = append(o.backends, b)
			}
		}
		o.pinned = true
	}
}

// WithRegistry takes the candidate list from r instead of the default
// registry.
func WithRegistry(r *Registry) ContextOption {
	return func(o *contextOptions) {
		if r != nil {
			o.registry = r
		}
	}
}

func (o contextOptions) candidates() []Backend {
	if o.pinned {
		return o.backends
	}
	return o.registry.Backends()
}
