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

// Cmap-preview builds a colour map from a list of colours and shows a
// preview strip.
//
// Usage:
//
//	cmap-preview [options] [colour...]
//
// If no colours are given, [colormap.DefaultColors] is used.
//
// Without -o, -terminal or -window, the preview is written to standard
// output: as an inline image if standard output is a terminal, and as PNG
// data otherwise.
package main

import (
	"errors"
	"flag"
	"fmt"
	"os"
	"strconv"
	"strings"

	"seehuhn.de/go/colormap"
	"seehuhn.de/go/colormap/preview"
	"seehuhn.de/go/colormap/preview/window"
)

func main() {
	pivots := flag.String("pivots", "", "comma-separated `list` of pivot positions in [0, 1]")
	gamma := flag.Float64("gamma", 1, "exponent used to spread the colours when no pivots are given")
	name := flag.String("name", "", "name of the colour map")
	var out output
	flag.StringVar(&out.file, "o", "", "write the preview as PNG to `file`")
	flag.BoolVar(&out.terminal, "terminal", false, "show the preview on the terminal")
	flag.BoolVar(&out.window, "window", false, "show the preview in a window")
	flag.IntVar(&out.width, "width", preview.DefaultWidth, "width of the preview strip in pixels")
	flag.IntVar(&out.height, "height", preview.DefaultHeight, "height of the preview strip in pixels")
	flag.IntVar(&out.scale, "scale", 0, "magnification factor (0 selects the default)")
	flag.Parse()

	colors := flag.Args()
	if len(colors) == 0 {
		colors = colormap.DefaultColors
	}

	opt := &colormap.Options{
		Gamma: *gamma,
		Name:  *name,
	}
	if *pivots != "" {
		piv, err := parseList(*pivots)
		if err != nil {
			fmt.Fprintln(os.Stderr, "error:", err)
			os.Exit(1)
		}
		opt.Pivots = piv
	}

	err := run(colors, opt, out.renderer(os.Stdout))
	if err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(1)
	}
}

// run builds the colour map and then draws the preview.  Nothing is drawn
// if the colour map cannot be built.
func run(colors []string, opt *colormap.Options, r colormap.Renderer) error {
	cm, err := colormap.Build(colors, opt)
	if err != nil {
		return err
	}
	return r.Render(cm)
}

// output describes where the preview is shown.
type output struct {
	file     string
	terminal bool
	window   bool

	width, height, scale int
}

// renderer returns the renderer selected by o.  The window takes precedence
// over the terminal, and the terminal over a PNG file.  If none of these is
// selected, the preview goes to stdout.
func (o *output) renderer(stdout *os.File) colormap.Renderer {
	switch {
	case o.window:
		return &window.Renderer{Width: o.width, Height: o.height, Scale: o.scale}
	case o.terminal:
		return &preview.Terminal{}
	case o.file != "":
		return &pngFile{
			path: o.file,
			PNG:  preview.PNG{Width: o.width, Height: o.height, Scale: o.scale},
		}
	}

	r := preview.Auto(stdout)
	switch r := r.(type) {
	case *preview.PNG:
		r.Width, r.Height, r.Scale = o.width, o.height, o.scale
	case *preview.ITerm:
		r.Width, r.Height, r.Scale = o.width, o.height, o.scale
	}
	return r
}

// pngFile writes the preview to a PNG file.  The file is created only when
// the preview is rendered, and is removed again if writing fails.
type pngFile struct {
	path string
	preview.PNG
}

func (p *pngFile) Render(cm *colormap.ColorMap) error {
	f, err := os.Create(p.path)
	if err != nil {
		return err
	}
	r := p.PNG
	r.W = f
	err = errors.Join(r.Render(cm), f.Close())
	if err != nil {
		os.Remove(p.path)
		return err
	}
	return nil
}

// parseList parses a comma-separated list of numbers.
func parseList(s string) ([]float64, error) {
	fields := strings.Split(s, ",")
	res := make([]float64, len(fields))
	for i, field := range fields {
		x, err := strconv.ParseFloat(strings.TrimSpace(field), 64)
		if err != nil {
			return nil, fmt.Errorf("invalid pivot %q", field)
		}
		res[i] = x
	}
	return res, nil
}
