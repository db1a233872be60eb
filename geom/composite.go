// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package geom

import "fmt"

// CompositeOp names the rule that combines a source color with the
// destination pixel it lands on.
//
// The Porter-Duff operators follow "Compositing Digital Images" (Porter, Duff
// 1984). The blend operators follow the W3C Compositing and Blending Level 1
// definitions, composited with source-over.
type CompositeOp uint8

const (
	// OpSourceOver draws the source over the destination. It is the zero value.
	OpSourceOver CompositeOp = iota
	// OpClear clears the destination.
	OpClear
	// OpReplace replaces the destination with the source (Porter-Duff "source").
	OpReplace
	// OpDestination keeps the destination.
	OpDestination
	// OpDestinationOver draws the destination over the source.
	OpDestinationOver
	// OpSourceIn keeps the source where the destination is opaque.
	OpSourceIn
	// OpDestinationIn keeps the destination where the source is opaque.
	OpDestinationIn
	// OpSourceOut keeps the source where the destination is transparent.
	OpSourceOut
	// OpDestinationOut keeps the destination where the source is transparent.
	OpDestinationOut
	// OpSourceAtop draws the source on top of the destination, inside it.
	OpSourceAtop
	// OpDestinationAtop draws the destination on top of the source, inside it.
	OpDestinationAtop
	// OpXor keeps source and destination where they do not overlap.
	OpXor
	// OpPlus adds source and destination, saturating.
	OpPlus

	OpMultiply
	OpScreen
	OpOverlay
	OpDarken
	OpLighten
	OpColorDodge
	OpColorBurn
	OpHardLight
	OpSoftLight
	OpDifference
	OpExclusion

	// Non-separable blend operators.
	OpHue
	OpSaturation
	OpColor
	OpLuminosity

	opCount
)

var opNames = [...]string{
	OpSourceOver:      "SourceOver",
	OpClear:           "Clear",
	OpReplace:         "Replace",
	OpDestination:     "Destination",
	OpDestinationOver: "DestinationOver",
	OpSourceIn:        "SourceIn",
	OpDestinationIn:   "DestinationIn",
	OpSourceOut:       "SourceOut",
	OpDestinationOut:  "DestinationOut",
	OpSourceAtop:      "SourceAtop",
	OpDestinationAtop: "DestinationAtop",
	OpXor:             "Xor",
	OpPlus:            "Plus",
	OpMultiply:        "Multiply",
	OpScreen:          "Screen",
	OpOverlay:         "Overlay",
	OpDarken:          "Darken",
	OpLighten:         "Lighten",
	OpColorDodge:      "ColorDodge",
	OpColorBurn:       "ColorBurn",
	OpHardLight:       "HardLight",
	OpSoftLight:       "SoftLight",
	OpDifference:      "Difference",
	OpExclusion:       "Exclusion",
	OpHue:             "Hue",
	OpSaturation:      "Saturation",
	OpColor:           "Color",
	OpLuminosity:      "Luminosity",
}

// String returns the operator name.
func (op CompositeOp) String() string {
	if op < opCount {
		return opNames[op]
	}
	return fmt.Sprintf("CompositeOp(%d)", uint8(op))
}

// Valid reports whether op is a known operator.
func (op CompositeOp) Valid() bool {
	return op < opCount
}

// IsPorterDuff reports whether op is one of the twelve Porter-Duff operators
// or Plus.
func (op CompositeOp) IsPorterDuff() bool {
	return op <= OpPlus
}
