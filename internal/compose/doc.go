// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

// Package compose is the software compositor behind the in-memory and window
// surfaces. It resolves a Pattern and a Clip to pixels and coverage, then
// applies a composite operator to a premultiplied *image.RGBA.
//
// For a pixel p with clip coverage c (0 to 255), source s and destination d:
//
//	Paint: d' = lerp(d, op(s, d), c)
//	Mask:  d' = lerp(d, op(s * maskAlpha(p), d), c)
//
// Pixels with zero coverage are never written. Image sources are sampled at
// identity: the image origin sits on the target origin and everything outside
// the image is transparent.
package compose
