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
	"bytes"
	"encoding/base64"
	"fmt"
	"io"
	"os"

	"golang.org/x/term"

	"seehuhn.de/go/colormap"
)

// ITerm is a [colormap.Renderer] which shows the preview strip inline in
// terminals supporting the iTerm2 image protocol.
type ITerm struct {
	W io.Writer

	// Width, Height and Scale are as for [PNG].
	Width, Height int
	Scale         int

	// Alt is printed after the image, for terminals which cannot show
	// inline images.
	Alt string
}

// Render implements the [colormap.Renderer] interface.
func (r *ITerm) Render(cm *colormap.ColorMap) error {
	if r.W == nil {
		return errNoWriter
	}

	buf := &bytes.Buffer{}
	img := scaled(Strip(cm, r.Width, r.Height), r.Scale)
	err := encodePNG(buf, img, true)
	if err != nil {
		return err
	}

	alt := r.Alt
	if alt == "" {
		alt = "[colour map " + cm.Name() + "]"
	}
	_, err = fmt.Fprintf(r.W, "\033]1337;File=inline=1;size=%d:%s\a%s\n",
		buf.Len(), base64.StdEncoding.EncodeToString(buf.Bytes()), alt)
	return err
}

// Auto returns a renderer suitable for f: an inline image if f is a
// terminal, and PNG data otherwise.
func Auto(f *os.File) colormap.Renderer {
	if term.IsTerminal(int(f.Fd())) {
		return &ITerm{W: f}
	}
	return &PNG{W: f}
}
