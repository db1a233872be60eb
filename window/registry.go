// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package window

import (
	"errors"
	"sort"
	"sync"
)

// ErrNoBackendAvailable is the public cause NewContext reports when there is
// no candidate backend to try.
var ErrNoBackendAvailable = errors.New("window: no backend available")

// Standard priorities.
const (
	PriorityGPU      = 100
	PrioritySoftware = 10
)

type registryEntry struct {
	backend  Backend
	priority int
}

// Registry is an ordered set of backends. Higher priorities are tried first
// and equal priorities are ordered by name.
//
// Most code uses the default registry through Register. A separate Registry
// passed with WithRegistry isolates a caller from whatever the linked
// packages registered.
type Registry struct {
	mu      sync.RWMutex
	entries map[string]registryEntry
}

var defaultRegistry = NewRegistry()

// NewRegistry creates an empty registry.
func NewRegistry() *Registry {
	return &Registry{entries: make(map[string]registryEntry)}
}

// Register adds b to the default registry. It is meant to be called from an
// init function. Registering a name again replaces the earlier entry.
func Register(b Backend, priority int) {
	defaultRegistry.Register(b, priority)
}

// Unregister removes the named backend from the default registry.
func Unregister(name string) {
	defaultRegistry.Unregister(name)
}

// Names returns the default registry's backend names in try order.
func Names() []string {
	return defaultRegistry.Names()
}

// Register adds b to r.
func (r *Registry) Register(b Backend, priority int) {
	if b == nil {
		return
	}
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.entries == nil {
		r.entries = make(map[string]registryEntry)
	}
	r.entries[b.Name()] = registryEntry{backend: b, priority: priority}
}

// Unregister removes the named backend from r.
func (r *Registry) Unregister(name string) {
	r.mu.Lock()
	defer r.mu.Unlock()

	delete(r.entries, name)
}

// Get returns the named backend.
func (r *Registry) Get(name string) (Backend, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	e, ok := r.entries[name]
	return e.backend, ok
}

// Names returns the backend names in try order.
func (r *Registry) Names() []string {
	bs := r.Backends()
	names := make([]string, len(bs))
	for i, b := range bs {
		names[i] = b.Name()
	}
	return names
}

// Backends returns the backends in try order.
func (r *Registry) Backends() []Backend {
	r.mu.RLock()
	entries := make([]registryEntry, 0, len(r.entries))
	for _, e := range r.entries {
		entries = append(entries, e)
	}
	r.mu.RUnlock()

	sort.Slice(entries, func(i, j int) bool {
		if entries[i].priority != entries[j].priority {
			return entries[i].priority > entries[j].priority
		}
		return entries[i].backend.Name() < entries[j].backend.Name()
	})

	bs := make([]Backend, len(entries))
	for i, e := range entries {
		bs[i] = e.backend
	}
	return bs
}
