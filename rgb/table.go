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

package rgb

import (
	"slices"

	"golang.org/x/exp/maps"
)

// Table is a [Resolver] which looks up colours by name.
// Names are matched case-insensitively.  Specifications which are not in the
// table are passed on to the fallback resolver, if any.
//
// A Table must be created using [NewTable] and is immutable afterwards.
type Table struct {
	colors   map[string]Color
	fallback Resolver
}

// NewTable creates a new colour table.  The colours map is copied.
// If fallback is nil, unknown names result in an [InvalidSpecError].
func NewTable(colors map[string]Color, fallback Resolver) *Table {
	folded := make(map[string]Color, len(colors))
	for name, c := range colors {
		folded[foldName(name)] = c
	}
	return &Table{colors: folded, fallback: fallback}
}

// With returns a new table which contains the entries of t, together with
// the given colours.  Entries in colors replace entries of t with the same
// name.  The fallback resolver is kept.
func (t *Table) With(colors map[string]Color) *Table {
	res := &Table{
		colors:   maps.Clone(t.colors),
		fallback: t.fallback,
	}
	for name, c := range colors {
		res.colors[foldName(name)] = c
	}
	return res
}

// Resolve implements the [Resolver] interface.
func (t *Table) Resolve(spec string) (Color, error) {
	if c, ok := t.colors[foldName(spec)]; ok {
		return c, nil
	}
	if t.fallback != nil {
		return t.fallback.Resolve(spec)
	}
	return Color{}, &InvalidSpecError{Spec: spec, Err: errUnknownName}
}

// Names returns the names in the table, in sorted order.
// Names known only to the fallback resolver are not included.
func (t *Table) Names() []string {
	names := maps.Keys(t.colors)
	slices.Sort(names)
	return names
}
