// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

// Package surface provides ImageSurface, an in-memory Drawable backed by an
// *image.RGBA.
//
// ImageSurface is the pixel store behind the software and GPU window backends
// and can be used on its own for offscreen drawing. Because it implements
// ggdraw.Realizer, it can also feed another Drawable through a Surface
// pattern:
//
//	layer := surface.NewImageSurface(64, 64)
//	_ = layer.Paint(geom.OpReplace, ggdraw.SolidColor(geom.Red), ggdraw.NoClip())
//
//	dst := surface.NewImageSurface(64, 64)
//	_ = dst.Mask(geom.OpSourceOver,
//	    ggdraw.SurfacePattern(layer),
//	    ggdraw.SolidColor(geom.Black.WithAlpha(128)),
//	    ggdraw.ClipToShape(geom.Circle{CX: 32, CY: 32, R: 24}))
//
// # Thread Safety
//
// Surfaces are NOT thread-safe. Each surface must be used by one goroutine
// at a time.
package surface
