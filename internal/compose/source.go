// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package compose

import (
	"errors"
	"image"
	"image/color"

	xdraw "golang.org/x/image/draw"

	"github.com/gogpu/ggdraw"
)

// source yields premultiplied pixels.
type source interface {
	at(x, y int) color.RGBA
}

type uniform color.RGBA

func (u uniform) at(int, int) color.RGBA { return color.RGBA(u) }

// pixels samples a premultiplied image; outside its bounds it is transparent.
type pixels struct {
	img *image.RGBA
}

func (p pixels) at(x, y int) color.RGBA {
	if !image.Pt(x, y).In(p.img.Rect) {
		return color.RGBA{}
	}
	return p.img.RGBAAt(x, y)
}

// resolve turns a Pattern into a source covering at least area.
func resolve(p ggdraw.Pattern, area image.Rectangle) (source, error) {
	switch p.Kind() {
	case ggdraw.PatternSolid:
		return uniform(p.Color().Premultiply()), nil

	case ggdraw.PatternImage:
		img := p.Image()
		if img == nil {
			return nil, ggdraw.FromPublicErrorWithMessage(ggdraw.ErrInvalidArgument, "image pattern without image")
		}
		return pixels{img: toRGBA(img, area)}, nil

	case ggdraw.PatternSurface:
		d := p.Surface()
		if d == nil {
			return nil, ggdraw.FromPublicErrorWithMessage(ggdraw.ErrInvalidArgument, "surface pattern without drawable")
		}
		r, ok := d.(ggdraw.Realizer)
		if !ok {
			return nil, ggdraw.FromPublicError(&ggdraw.UnsupportedError{
				Feature: "pattern",
				Variant: "Surface over a drawable that cannot be sampled",
			})
		}
		img, err := r.Realize()
		if err != nil {
			return nil, asError(err, "realize surface pattern")
		}
		if img == nil {
			return uniform{}, nil
		}
		return pixels{img: img}, nil

	default:
		return nil, ggdraw.FromPublicError(&ggdraw.UnsupportedError{Feature: "pattern", Variant: p.Kind().String()})
	}
}

// toRGBA returns img as premultiplied RGBA, converting only the part that
// overlaps area.
func toRGBA(img image.Image, area image.Rectangle) *image.RGBA {
	if rgba, ok := img.(*image.RGBA); ok {
		return rgba
	}
	r := img.Bounds().Intersect(area)
	out := image.NewRGBA(r)
	xdraw.Copy(out, r.Min, img, r, xdraw.Src, nil)
	return out
}

// asError keeps *ggdraw.Error values intact and hides anything else.
func asError(err error, message string) error {
	var e *ggdraw.Error
	if errors.As(err, &e) {
		return err
	}
	return ggdraw.FromErrorWithMessage(err, message)
}
