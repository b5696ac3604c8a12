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
	"compress/zlib"
	"encoding/binary"
	"errors"
	"hash/crc32"
	"image"
	"image/png"
	"io"

	"golang.org/x/image/draw"

	"seehuhn.de/go/colormap"
)

// PNG is a [colormap.Renderer] which writes the preview strip as a PNG
// image.  The image is tagged with the sRGB colour profile.
type PNG struct {
	W io.Writer

	// Width and Height give the size of the strip before scaling.
	// Zero values select [DefaultWidth] and [DefaultHeight].
	Width, Height int

	// Scale is an integer magnification factor.  Pixels are
	// enlarged without smoothing.  Values smaller than 1 are treated as 1.
	Scale int

	// NoProfile disables the embedded sRGB colour profile.
	NoProfile bool
}

// Render implements the [colormap.Renderer] interface.
func (p *PNG) Render(cm *colormap.ColorMap) error {
	if p.W == nil {
		return errNoWriter
	}
	img := scaled(Strip(cm, p.Width, p.Height), p.Scale)
	return encodePNG(p.W, img, !p.NoProfile)
}

// scaled enlarges img by an integer factor, using nearest-neighbour
// interpolation.
func scaled(img *image.RGBA, scale int) *image.RGBA {
	if scale <= 1 {
		return img
	}
	b := img.Bounds()
	dst := image.NewRGBA(image.Rect(0, 0, b.Dx()*scale, b.Dy()*scale))
	draw.NearestNeighbor.Scale(dst, dst.Bounds(), img, b, draw.Src, nil)
	return dst
}

// encodePNG writes img to w in PNG format.  If withProfile is set, an iCCP
// chunk with the sRGB profile is inserted after the header chunk.
func encodePNG(w io.Writer, img image.Image, withProfile bool) error {
	if !withProfile {
		return png.Encode(w, img)
	}

	buf := &bytes.Buffer{}
	err := png.Encode(buf, img)
	if err != nil {
		return err
	}
	data := buf.Bytes()
	if len(data) < ihdrEnd || string(data[12:16]) != "IHDR" {
		return errMalformedPNG
	}

	iccp, err := iccpChunk("sRGB", srgbProfile())
	if err != nil {
		return err
	}

	for _, part := range [][]byte{data[:ihdrEnd], iccp, data[ihdrEnd:]} {
		if _, err := w.Write(part); err != nil {
			return err
		}
	}
	return nil
}

// iccpChunk returns a complete PNG iCCP chunk, including length and CRC.
func iccpChunk(name string, profile []byte) ([]byte, error) {
	body := &bytes.Buffer{}
	body.WriteString(name)
	body.WriteByte(0) // name terminator
	body.WriteByte(0) // compression method: zlib
	zw := zlib.NewWriter(body)
	if _, err := zw.Write(profile); err != nil {
		return nil, err
	}
	if err := zw.Close(); err != nil {
		return nil, err
	}

	chunk := make([]byte, 0, 12+body.Len())
	chunk = binary.BigEndian.AppendUint32(chunk, uint32(body.Len()))
	chunk = append(chunk, "iCCP"...)
	chunk = append(chunk, body.Bytes()...)
	chunk = binary.BigEndian.AppendUint32(chunk, crc32.ChecksumIEEE(chunk[4:]))
	return chunk, nil
}

// ihdrEnd is the offset of the first chunk after IHDR in a PNG file:
// 8 bytes signature, then IHDR with 4+4 bytes header, 13 bytes data and a
// 4 byte CRC.
const ihdrEnd = 8 + 4 + 4 + 13 + 4

var (
	errNoWriter     = errors.New("preview: no output writer")
	errMalformedPNG = errors.New("preview: unexpected PNG encoder output")
)
