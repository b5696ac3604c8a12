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
	"fmt"

	"seehuhn.de/go/colormap/rgb"
)

// DefaultName is the name given to colour maps if [Options.Name] is empty.
const DefaultName = "custom"

// DefaultColors is a colour list which can be used when no colours are
// specified.  It runs from orange through black to light blue.
var DefaultColors = []string{"orange", "darkorange", "k", "dodgerblue", "lightblue"}

// Options control how colour maps are built.
// The zero value, and nil, select the defaults for all fields.
type Options struct {
	// Pivots (optional) gives the positions in [0, 1] at which the colours
	// are reached.  If this is set, it must have one entry per colour, and
	// the values must be non-decreasing.  Repeated values cause a sharp
	// transition between colours.
	Pivots []float64

	// Gamma is the exponent used to spread the colours over [0, 1] when
	// Pivots is not set.  Values greater than 1 move the colours towards 1.
	// The default is 1, which places the colours at equal distances.
	// Gamma is ignored if Pivots is set.
	Gamma float64

	// Resolver is used to convert colour names into colours.
	// If this is nil, [rgb.Default] is used.
	Resolver rgb.Resolver

	// Preview, if set, is used to draw the colour map after it is built.
	Preview Renderer

	// Name is the name of the colour map.
	// If this is empty, [DefaultName] is used.
	Name string
}

// Renderer draws a preview of a colour map.
type Renderer interface {
	Render(cm *ColorMap) error
}

// RendererFunc is an adapter to allow the use of ordinary functions as
// renderers.
type RendererFunc func(cm *ColorMap) error

// Render calls f(cm).
func (f RendererFunc) Render(cm *ColorMap) error {
	return f(cm)
}

// Build creates a colour map from a list of colour specifications.
// The first colour is used for the value 0, the last colour for the value 1.
//
// Colour specifications are converted to colours using the resolver from
// opt.  Resolution errors are [*rgb.InvalidSpecError] values, wrapped with
// the position of the offending colour.
//
// If a preview renderer is configured and rendering fails, the colour map
// is returned together with the error.
func Build(colors []string, opt *Options) (*ColorMap, error) {
	pivots, err := opt.pivots(len(colors))
	if err != nil {
		return nil, err
	}

	r := opt.resolver()
	cc := make([]rgb.Color, len(colors))
	for i, spec := range colors {
		c, err := r.Resolve(spec)
		if err != nil {
			return nil, fmt.Errorf("colour %d: %w", i, err)
		}
		cc[i] = c.Clamped()
	}

	return opt.finish(newColorMap(opt.name(), cc, pivots))
}

// New creates a colour map from a list of colours.
// This is the same as [Build], except that no colour names need to be
// resolved.  Channel values outside [0, 1] are clipped.
func New(colors []rgb.Color, opt *Options) (*ColorMap, error) {
	pivots, err := opt.pivots(len(colors))
	if err != nil {
		return nil, err
	}

	cc := make([]rgb.Color, len(colors))
	for i, c := range colors {
		cc[i] = c.Clamped()
	}

	return opt.finish(newColorMap(opt.name(), cc, pivots))
}

// pivots returns the pivots for n colours.
func (opt *Options) pivots(n int) ([]float64, error) {
	if n == 0 {
		return nil, newInvalidInputError("colors", "at least one colour is required")
	}

	if opt == nil || opt.Pivots == nil {
		gamma := 1.0
		if opt != nil && opt.Gamma != 0 {
			gamma = opt.Gamma
		}
		if !isFinite(gamma) || gamma <= 0 {
			return nil, newInvalidInputError("gamma", "must be positive, got %g", gamma)
		}
		return spread(n, gamma), nil
	}

	piv := opt.Pivots
	if len(piv) != n {
		return nil, &LengthMismatchError{Colors: n, Pivots: len(piv)}
	}
	for i, x := range piv {
		if !isFinite(x) || x < 0 || x > 1 {
			return nil, newInvalidInputError("pivots", "pivot %d is %g, not in [0, 1]", i, x)
		}
		if i > 0 && x < piv[i-1] {
			return nil, newInvalidInputError("pivots",
				"pivot %d (%g) is smaller than pivot %d (%g)", i, x, i-1, piv[i-1])
		}
	}
	return piv, nil
}

func (opt *Options) resolver() rgb.Resolver {
	if opt == nil || opt.Resolver == nil {
		return rgb.Default
	}
	return opt.Resolver
}

func (opt *Options) name() string {
	if opt == nil || opt.Name == "" {
		return DefaultName
	}
	return opt.Name
}

// finish draws the preview, if requested.
func (opt *Options) finish(cm *ColorMap) (*ColorMap, error) {
	if opt == nil || opt.Preview == nil {
		return cm, nil
	}
	if err := opt.Preview.Render(cm); err != nil {
		return cm, fmt.Errorf("preview: %w", err)
	}
	return cm, nil
}
