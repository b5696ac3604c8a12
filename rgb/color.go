// seehuhn.de/go/colormap - colour maps built from lists of colours
// Copyright (C) 2026  Jochen Voss <voss@seehuhn.de>
//
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// This program is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with this program.  If not, see <https://www.gnu.org/licenses/>.

// Package rgb implements the colours used by colour maps, and the resolution
// of colour names to colours.
//
// A colour is represented as a [Color] value with red, green and blue
// channels in the range [0, 1].  Colours are usually obtained from textual
// specifications using a [Resolver].  The [Default] resolver understands
// the following forms:
//   - single letter base colours, e.g. "r", "k"
//   - SVG/CSS colour names, e.g. "darkorange", "DodgerBlue"
//   - hex notation, e.g. "#f80" or "#ff8800"
//   - gray levels given as a decimal number, e.g. "0.75"
//
// Alternative naming schemes can be provided using a [Table].
package rgb

import (
	stdcolor "image/color"
	"math"

	"github.com/lucasb-eyer/go-colorful"
)

// Color is a colour in the RGB colour space.
// The channel values are in the range [0, 1].
type Color struct {
	R, G, B float64
}

// Gray returns the gray colour with the given intensity.
func Gray(v float64) Color {
	return Color{v, v, v}
}

// FromStd converts a colour from the image/color package.
// Premultiplied alpha is removed; a fully transparent colour maps to black.
func FromStd(c stdcolor.Color) Color {
	if x, ok := c.(Color); ok {
		return x
	}
	r, g, b, a := c.RGBA()
	if a == 0 {
		return Color{}
	}
	fa := float64(a)
	return Color{float64(r) / fa, float64(g) / fa, float64(b) / fa}
}

// RGBA implements the [image/color.Color] interface.
// The colour is always fully opaque.
func (c Color) RGBA() (r, g, b, a uint32) {
	return to16(c.R), to16(c.G), to16(c.B), 0xffff
}

// RGBA8 returns the colour with 8 bits per channel.
func (c Color) RGBA8() stdcolor.RGBA {
	return stdcolor.RGBA{R: to8(c.R), G: to8(c.G), B: to8(c.B), A: 0xff}
}

// Hex returns the colour in "#rrggbb" notation.
func (c Color) Hex() string {
	return colorful.Color(c.Clamped()).Hex()
}

// String implements the [fmt.Stringer] interface.
func (c Color) String() string {
	return c.Hex()
}

// Clamped returns the colour with all channels clipped to [0, 1].
// NaN channels are mapped to 0.
func (c Color) Clamped() Color {
	return Color{clip01(c.R), clip01(c.G), clip01(c.B)}
}

// Lerp interpolates linearly between a and b.
// For t=0 the result is a, for t=1 the result is b.
func Lerp(a, b Color, t float64) Color {
	return Color{
		R: a.R + t*(b.R-a.R),
		G: a.G + t*(b.G-a.G),
		B: a.B + t*(b.B-a.B),
	}
}

func clip01(x float64) float64 {
	if !(x > 0) {
		return 0
	}
	return math.Min(x, 1)
}

func to16(x float64) uint32 {
	return uint32(clip01(x)*0xffff + 0.5)
}

func to8(x float64) uint8 {
	return uint8(clip01(x)*0xff + 0.5)
}
