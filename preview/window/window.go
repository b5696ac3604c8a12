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

// Package window shows colour map previews in a desktop window.
package window

import (
	"image"

	"github.com/hajimehoshi/ebiten/v2"

	"seehuhn.de/go/colormap"
	"seehuhn.de/go/colormap/preview"
)

// Renderer is a [colormap.Renderer] which opens a window showing the
// preview strip.  Render blocks until the window is closed, or until Escape
// or Q is pressed.
//
// Since ebiten supports only one game loop per process, Render must not be
// called again after it returned.
type Renderer struct {
	// Title is the window title.  The default is the name of the colour map.
	Title string

	// Width and Height give the size of the strip.
	// Zero values select [preview.DefaultWidth] and [preview.DefaultHeight].
	Width, Height int

	// Scale is the initial magnification of the window.  The default is 3.
	Scale int
}

// Render implements the [colormap.Renderer] interface.
func (r *Renderer) Render(cm *colormap.ColorMap) error {
	g := newStrip(preview.Strip(cm, r.Width, r.Height))

	title := r.Title
	if title == "" {
		title = cm.Name()
	}
	scale := r.Scale
	if scale <= 0 {
		scale = 3
	}

	ebiten.SetWindowTitle(title)
	ebiten.SetWindowSize(g.width*scale, g.height*scale)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	return ebiten.RunGame(g)
}

// strip implements ebiten.Game.
type strip struct {
	src    *image.RGBA
	img    *ebiten.Image
	width  int
	height int
}

func newStrip(src *image.RGBA) *strip {
	b := src.Bounds()
	return &strip{src: src, width: b.Dx(), height: b.Dy()}
}

func (g *strip) Update() error {
	if ebiten.IsKeyPressed(ebiten.KeyEscape) || ebiten.IsKeyPressed(ebiten.KeyQ) {
		return ebiten.Termination
	}
	return nil
}

func (g *strip) Draw(screen *ebiten.Image) {
	if g.img == nil {
		g.img = ebiten.NewImageFromImage(g.src)
	}
	screen.DrawImage(g.img, nil)
}

// Layout keeps the logical screen at the size of the strip; ebiten scales
// it to fill the window.
func (g *strip) Layout(outsideWidth, outsideHeight int) (int, int) {
	return g.width, g.height
}
