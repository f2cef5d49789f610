// Package texture implements the immutable pixel grid that wall surfaces
// sample, PNG loading, and thumbnail generation.
package texture

import (
	"image/color"
)

// Texture is an immutable 2D RGBA pixel grid, addressed with its origin at
// the bottom-left corner (y grows up), matching the tile-local coordinate
// convention the renderer uses for walls.
//
// Pixels are stored top-down internally (row 0 is the top row, the order a
// decoded PNG already comes in); GetPixelAt flips the row on the way out.
type Texture struct {
	w, h int
	pix  []color.NRGBA
	err  error
}

// New builds a texture from a top-down row-major pixel slice of length w*h.
func New(w, h int, pix []color.NRGBA) *Texture {
	return &Texture{w: w, h: h, pix: pix}
}

// NewFailed returns a texture that carries a load error and answers every
// sample with transparent black. Walls referencing it fall back to tint.
func NewFailed(err error) *Texture {
	return &Texture{err: err}
}

func (t *Texture) Width() int  { return t.w }
func (t *Texture) Height() int { return t.h }

// Usable reports whether the texture loaded successfully and can be sampled.
func (t *Texture) Usable() bool { return t.err == nil }

func (t *Texture) Err() error { return t.err }

// GetPixelAt returns the pixel at integer coordinates (x,y), with y=0 at the
// bottom row. x and y outside [0,w) and [0,h) return transparent black.
func (t *Texture) GetPixelAt(x, y int) color.NRGBA {
	if t.err != nil || x < 0 || x >= t.w || y < 0 || y >= t.h {
		return color.NRGBA{}
	}
	row := (t.h - 1) - y
	return t.pix[x+row*t.w]
}

// GetCoords samples the texture at normalized coordinates, wrapping any
// integer part of u and v so the texture tiles.
func (t *Texture) GetCoords(u, v float64) color.NRGBA {
	if t.w == 0 || t.h == 0 {
		return color.NRGBA{}
	}
	fu := u - float64(int(u))
	fv := v - float64(int(v))
	return t.GetPixelAt(int(fu*float64(t.w)), int(fv*float64(t.h)))
}
