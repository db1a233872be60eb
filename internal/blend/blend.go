// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

// Package blend implements composite operators on premultiplied 8-bit RGBA.
//
// Porter-Duff operators use integer arithmetic with rounded division by 255,
// so results are exact and reproducible. Blend operators (Multiply through
// Luminosity) follow W3C Compositing and Blending Level 1 with source-over
// compositing, evaluated in float64 and rounded to the nearest byte.
//
// References:
//   - Porter-Duff: "Compositing Digital Images" (1984)
//   - W3C Compositing and Blending Level 1: https://www.w3.org/TR/compositing-1/
package blend

import (
	"image/color"

	"github.com/gogpu/ggdraw/geom"
)

// Func combines a premultiplied source with a premultiplied destination.
type Func func(src, dst color.RGBA) color.RGBA

var funcs = map[geom.CompositeOp]Func{
	geom.OpClear:           clearOp,
	geom.OpReplace:         source,
	geom.OpDestination:     destination,
	geom.OpSourceOver:      sourceOver,
	geom.OpDestinationOver: destinationOver,
	geom.OpSourceIn:        sourceIn,
	geom.OpDestinationIn:   destinationIn,
	geom.OpSourceOut:       sourceOut,
	geom.OpDestinationOut:  destinationOut,
	geom.OpSourceAtop:      sourceAtop,
	geom.OpDestinationAtop: destinationAtop,
	geom.OpXor:             xor,
	geom.OpPlus:            plus,

	geom.OpMultiply:   separable(multiply),
	geom.OpScreen:     separable(screen),
	geom.OpOverlay:    separable(overlay),
	geom.OpDarken:     separable(darken),
	geom.OpLighten:    separable(lighten),
	geom.OpColorDodge: separable(colorDodge),
	geom.OpColorBurn:  separable(colorBurn),
	geom.OpHardLight:  separable(hardLight),
	geom.OpSoftLight:  separable(softLight),
	geom.OpDifference: separable(difference),
	geom.OpExclusion:  separable(exclusion),

	geom.OpHue:        nonSeparable(hue),
	geom.OpSaturation: nonSeparable(saturation),
	geom.OpColor:      nonSeparable(colorMode),
	geom.OpLuminosity: nonSeparable(luminosity),
}

// For returns the function implementing op. ok is false for operators this
// package does not know.
func For(op geom.CompositeOp) (fn Func, ok bool) {
	fn, ok = funcs[op]
	return fn, ok
}
