// Package ggdraw defines a backend-agnostic 2D drawing contract.
//
// # Overview
//
// A [Drawable] is anything that accepts drawing calls. It may be an in-memory
// image (package surface) or a window surface backed by the GPU or by a
// software framebuffer (package window). Callers describe each call with
// three values:
//
//   - a [geom.CompositeOp] naming how source and destination combine
//   - a [Pattern]: a solid color, an image, or another Drawable
//   - a [Clip]: nothing, a shape, or a pixel region
//
// A [Canvas] binds a Drawable and forwards calls to it.
//
//	img := surface.NewImageSurface(64, 64)
//	c := ggdraw.NewCanvas(img)
//	_ = c.Paint(geom.OpReplace, ggdraw.SolidColor(geom.White), ggdraw.NoClip())
//	_ = c.Paint(geom.OpSourceOver, ggdraw.SolidColor(geom.Red.WithAlpha(128)),
//	    ggdraw.ClipToShape(geom.Circle{CX: 32, CY: 32, R: 20}))
//
// # Errors
//
// Every fallible operation returns an [*Error]. Errors built with
// [FromPublicError] expose their cause to [errors.Is] and [errors.As].
// Errors built with [FromError] hide the concrete type of their cause: the
// text is kept and the type is not. Backends use the private form for native
// failures, so the public contract does not depend on any one backend's
// error types.
//
// # Concurrency
//
// Drawables, canvases and window contexts belong to the goroutine that
// created them. Only [SetLogger] and [Logger] are safe for concurrent use.
package ggdraw
