// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

// Package geom holds the geometry values a drawing call carries: colors,
// composite operations, shapes and pixel regions.
//
// The types are plain values. Drawing packages store them inside a
// [github.com/gogpu/ggdraw.Clip] or [github.com/gogpu/ggdraw.Pattern] and pass
// them through to a backend without modification.
package geom
