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

package colormap

import (
	stdcolor "image/color"
	"math"
	"slices"

	"seehuhn.de/go/colormap/rgb"
)

// Size is the number of samples in a colour map.
const Size = 256

// ColorMap maps values in the range [0, 1] to colours.
//
// A ColorMap is defined by [Size] colour samples, taken at the evenly spaced
// positions i/(Size-1).  Between samples the channels are interpolated
// linearly.  ColorMap objects are immutable and can be used concurrently.
type ColorMap struct {
	name    string
	colors  []rgb.Color
	pivots  []float64
	samples [Size]rgb.Color
}

// Segment is one entry of a channel table, see [ColorMap.Segments].
//
// Y0 is the channel value immediately before X and Y1 is the value
// immediately after X.
type Segment struct {
	X, Y0, Y1 float64
}

// newColorMap samples the piecewise linear function through the control
// points (pivots[i], colors[i]).
func newColorMap(name string, colors []rgb.Color, pivots []float64) *ColorMap {
	n := len(colors)
	r := make([]float64, n)
	g := make([]float64, n)
	b := make([]float64, n)
	for i, c := range colors {
		r[i], g[i], b[i] = c.R, c.G, c.B
	}

	cm := &ColorMap{
		name:   name,
		colors: slices.Clone(colors),
		pivots: slices.Clone(pivots),
	}
	for i := range Size {
		x := position(i)
		cm.samples[i] = rgb.Color{
			R: interp(x, pivots, r),
			G: interp(x, pivots, g),
			B: interp(x, pivots, b),
		}
	}
	return cm
}

// position returns the location of sample i.
func position(i int) float64 {
	return float64(i) / (Size - 1)
}

// Name returns the name of the colour map.
func (cm *ColorMap) Name() string {
	return cm.name
}

// Len returns the number of samples in the colour map.
// This is always [Size].
func (cm *ColorMap) Len() int {
	return len(cm.samples)
}

// Colors returns the colours used to build the map.
func (cm *ColorMap) Colors() []rgb.Color {
	return slices.Clone(cm.colors)
}

// Pivots returns the positions at which the colours returned by
// [ColorMap.Colors] are reached.
func (cm *ColorMap) Pivots() []float64 {
	return slices.Clone(cm.pivots)
}

// Samples returns the colours at the sample positions 0/255, ..., 255/255.
func (cm *ColorMap) Samples() []rgb.Color {
	return slices.Clone(cm.samples[:])
}

// Evaluate returns the colour for the value x.
//
// Values between two sample positions are interpolated linearly.  Values
// outside [0, 1] are clipped to this range.  NaN maps to the colour at 0.
func (cm *ColorMap) Evaluate(x float64) rgb.Color {
	if math.IsNaN(x) {
		return cm.samples[0]
	}
	pos := clip(x, 0, 1) * (Size - 1)
	i := int(pos)
	if i >= Size-1 {
		return cm.samples[Size-1]
	}
	return rgb.Lerp(cm.samples[i], cm.samples[i+1], pos-float64(i))
}

// At returns the colour of the sample bin containing x.
//
// The range [0, 1] is divided into [Size] bins of equal width, and the
// colour of the corresponding sample is returned without interpolation.
// This is the lookup used to colour raster images.  Values outside [0, 1]
// are clipped to this range.  NaN maps to the colour at 0.
func (cm *ColorMap) At(x float64) rgb.Color {
	return cm.samples[Index(x)]
}

// Index returns the index of the sample bin containing x.
// The result is in the range 0, ..., Size-1.
func Index(x float64) int {
	if !(x > 0) {
		return 0
	} else if x >= 1 {
		return Size - 1
	}
	return min(int(x*Size), Size-1)
}

// Segments returns the channel tables of the colour map, in the order red,
// green, blue.
//
// Each table has one entry per sample, with the sample position in X and
// the channel value in both Y0 and Y1.  The tables span the range [0, 1].
func (cm *ColorMap) Segments() [3][]Segment {
	var res [3][]Segment
	for k := range res {
		res[k] = make([]Segment, Size)
	}
	for i, c := range cm.samples {
		x := position(i)
		res[0][i] = Segment{X: x, Y0: c.R, Y1: c.R}
		res[1][i] = Segment{X: x, Y0: c.G, Y1: c.G}
		res[2][i] = Segment{X: x, Y0: c.B, Y1: c.B}
	}
	return res
}

// Palette returns the samples of the colour map as a palette.
// This can be used to construct [image.Paletted] images.
func (cm *ColorMap) Palette() stdcolor.Palette {
	res := make(stdcolor.Palette, Size)
	for i, c := range cm.samples {
		res[i] = c
	}
	return res
}

// Reversed returns a colour map where the order of the colours is
// reversed.  The name of the new map is the old name with "_r" appended.
func (cm *ColorMap) Reversed() *ColorMap {
	n := len(cm.colors)
	res := &ColorMap{
		name:   cm.name + "_r",
		colors: make([]rgb.Color, n),
		pivots: make([]float64, n),
	}
	for i := range n {
		res.colors[i] = cm.colors[n-1-i]
		res.pivots[i] = 1 - cm.pivots[n-1-i]
	}
	for i := range Size {
		res.samples[i] = cm.samples[Size-1-i]
	}
	return res
}
