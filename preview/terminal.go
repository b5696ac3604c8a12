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

package preview

import (
	"github.com/gdamore/tcell/v2"

	"seehuhn.de/go/colormap"
)

// upperHalf is drawn with the foreground colour in the upper half of the
// cell and the background colour in the lower half.
const upperHalf = '▀'

// Terminal is a [colormap.Renderer] which shows the preview strip on a
// text terminal.  Every character cell shows two rows of the strip.
//
// The terminal is taken over while the preview is shown, and is restored
// before Render returns.
type Terminal struct {
	// Width is the width of the strip in character cells.
	// The default is 8.
	Width int

	// Height is the height of the strip in character cells.
	// The default is the height of the terminal.
	Height int

	// NoWait makes Render return as soon as the strip is drawn.
	// Otherwise Render waits until a key is pressed.
	NoWait bool

	newScreen func() (tcell.Screen, error)
	shown     func(tcell.Screen)
}

// Render implements the [colormap.Renderer] interface.
func (t *Terminal) Render(cm *colormap.ColorMap) error {
	newScreen := t.newScreen
	if newScreen == nil {
		newScreen = tcell.NewScreen
	}
	s, err := newScreen()
	if err != nil {
		return err
	}
	err = s.Init()
	if err != nil {
		return err
	}
	defer s.Fini()

	t.draw(s, cm)
	if t.shown != nil {
		t.shown(s)
	}
	if t.NoWait {
		return nil
	}

	for {
		switch s.PollEvent().(type) {
		case nil:
			// the screen was finalized
			return nil
		case *tcell.EventResize:
			s.Sync()
			t.draw(s, cm)
		case *tcell.EventKey:
			return nil
		}
	}
}

func (t *Terminal) draw(s tcell.Screen, cm *colormap.ColorMap) {
	sw, sh := s.Size()
	w := t.Width
	if w <= 0 {
		w = 8
	}
	w = min(w, sw)
	h := t.Height
	if h <= 0 || h > sh {
		h = sh
	}

	s.Clear()
	if w > 0 && h > 0 {
		img := Strip(cm, 1, 2*h)
		for y := range h {
			top := img.RGBAAt(0, 2*y)
			bottom := img.RGBAAt(0, 2*y+1)
			style := tcell.StyleDefault.
				Foreground(tcell.NewRGBColor(int32(top.R), int32(top.G), int32(top.B))).
				Background(tcell.NewRGBColor(int32(bottom.R), int32(bottom.G), int32(bottom.B)))
			for x := range w {
				s.SetContent(x, y, upperHalf, nil, style)
			}
		}
	}
	s.Show()
}
