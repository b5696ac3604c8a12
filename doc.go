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

// Package colormap builds colour maps from short lists of colours.
//
// A colour map assigns a colour to every value in the range [0, 1].  The
// maps built by this package are specified by a list of colours, together
// with the positions ("pivots") at which each colour is reached:
//
//	cm, err := colormap.Build([]string{"orange", "k", "dodgerblue"}, nil)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	c := cm.Evaluate(0.3)
//
// If no pivots are given, the colours are spread over [0, 1] with spacing
// controlled by [Options.Gamma]: colour i of n is reached at position
// (i/(n-1))^gamma.
//
// Each channel is interpolated linearly between the pivots and sampled at
// the [Size] positions 0/255, 1/255, ..., 255/255.  The samples define the
// colour map, see [ColorMap.Segments].  Values outside the range of the
// pivots take the colour of the nearest end point.
//
// Colour names are converted to colours by a [rgb.Resolver].  Previews of
// colour maps are drawn by a [Renderer]; implementations can be found in
// the preview sub-packages.
package colormap
