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

// Package preview draws previews of colour maps.
//
// All renderers show the same test image, a vertical strip where the values
// sweep from 1 at the top to 0 at the bottom, see [Strip].  The strip is
// drawn without axes or other decoration.
//
// The renderers in this package implement [colormap.Renderer]:
//   - [PNG] writes the strip as a PNG image
//   - [ITerm] writes the strip as an iTerm2 inline image
//   - [Terminal] shows the strip on a text terminal
//
// A desktop window renderer is in the sub-package window.
package preview

import (
	"image"

	"seehuhn.de/go/geom/matrix"

	"seehuhn.de/go/colormap"
)

// Default size of the preview strip, in pixels.
const (
	DefaultWidth  = 50
	DefaultHeight = 100
)

// Strip renders the test image for cm.
// Row 0 shows the colour for the value 1, the last row shows the colour for
// the value 0.  Non-positive sizes are replaced by the defaults.
func Strip(cm *colormap.ColorMap, width, height int) *image.RGBA {
	if width <= 0 {
		width = DefaultWidth
	}
	if height <= 0 {
		height = DefaultHeight
	}

	img := image.NewRGBA(image.Rect(0, 0, width, height))
	M := rowToValue(height)
	for y := range height {
		_, v := M.Apply(0, float64(y))
		c := cm.At(v).RGBA8()
		for x := range width {
			img.SetRGBA(x, y, c)
		}
	}
	return img
}

// rowToValue returns the transformation which maps pixel rows to values:
// row 0 maps to 1 and row height-1 maps to 0.  A strip of height 1 shows
// the value 1.
func rowToValue(height int) matrix.Matrix {
	var s float64
	if height > 1 {
		s = -1 / float64(height-1)
	}
	return matrix.Scale(1, s).Mul(matrix.Translate(0, 1))
}
