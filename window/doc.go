// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

// Package window binds Drawables to native windows through pluggable
// backends.
//
// A Context is created from a display handle by trying every candidate
// backend in order. The first backend that initializes wins and every
// Surface made from that Context uses it:
//
//	ctx, err := window.NewContext(display)
//	if err != nil {
//	    return err
//	}
//	defer ctx.Close()
//
//	s, err := window.NewSurface(ctx, win, 800, 600)
//	if err != nil {
//	    return err
//	}
//	canvas := ggdraw.NewCanvas(s)
//	_ = canvas.Paint(geom.OpSourceOver, ggdraw.SolidColor(geom.Red), ggdraw.NoClip())
//	_ = s.Present()
//
// # Backends
//
// Two kinds are built in. "gpu" (priority 100) renders through
// github.com/gogpu/wgpu/hal and is left out by the nogpu build tag.
// "software" (priority 10) composites on the CPU and presents through a
// gpucontext.TextureDrawer when the window provides one. Other backends
// register themselves from an init function:
//
//	func init() {
//	    window.Register(myBackend{}, 50)
//	}
//
// # Ownership
//
// NewContext and NewSurface take ownership of the handles they are given.
// Handles implementing io.Closer are closed once the backend state built on
// them has been released, including when construction fails.
//
// # Goroutines
//
// A Context and its Surfaces belong to the goroutine that created them.
// Native windowing systems commonly require this. Neither type may be
// copied or used concurrently.
package window
