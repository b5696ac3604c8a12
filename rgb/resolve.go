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
	"errors"
	"fmt"
	"slices"
	"strconv"
	"strings"

	"github.com/lucasb-eyer/go-colorful"
	"golang.org/x/image/colornames"
	"golang.org/x/text/cases"
)

// Resolver converts textual colour specifications into colours.
type Resolver interface {
	Resolve(spec string) (Color, error)
}

// InvalidSpecError is returned when a colour specification cannot be
// resolved.
type InvalidSpecError struct {
	Spec string
	Err  error
}

func (err *InvalidSpecError) Error() string {
	msg := fmt.Sprintf("invalid colour %q", err.Spec)
	if err.Err != nil {
		msg += ": " + err.Err.Error()
	}
	return msg
}

func (err *InvalidSpecError) Unwrap() error {
	return err.Err
}

// Is reports whether target is an *InvalidSpecError.
func (err *InvalidSpecError) Is(target error) bool {
	_, ok := target.(*InvalidSpecError)
	return ok
}

// Default is the default colour resolver.
// It recognises base colour letters, SVG/CSS colour names, the Tableau
// colours "tab:blue" to "tab:cyan", the colour cycle entries "C0", "C1", ...,
// hex notation and gray levels.  Names are matched case-insensitively.
// An alpha component in hex notation is ignored.
var Default Resolver = namedColors{}

// baseColors are the single letter colour abbreviations used by common
// plotting tools.
var baseColors = map[string]Color{
	"b": {0, 0, 1},
	"g": {0, 0.5, 0},
	"r": {1, 0, 0},
	"c": {0, 0.75, 0.75},
	"m": {0.75, 0, 0.75},
	"y": {0.75, 0.75, 0},
	"k": {0, 0, 0},
	"w": {1, 1, 1},
}

type namedColors struct{}

func (namedColors) Resolve(spec string) (Color, error) {
	s := strings.TrimSpace(spec)
	if s == "" {
		return Color{}, &InvalidSpecError{Spec: spec, Err: errEmpty}
	}

	if strings.HasPrefix(s, "#") {
		c, err := parseHex(s)
		if err != nil {
			return Color{}, &InvalidSpecError{Spec: spec, Err: err}
		}
		return c, nil
	}

	key := foldName(s)
	if name, ok := strings.CutPrefix(key, "tab:"); ok {
		if c, ok := tableauColor(name); ok {
			return c, nil
		}
		return Color{}, &InvalidSpecError{Spec: spec, Err: errUnknownName}
	}
	if i, ok := cycleIndex(key); ok {
		return tableau(i % len(tableauNames)), nil
	}
	if c, ok := baseColors[key]; ok {
		return c, nil
	}
	if c, ok := colornames.Map[key]; ok {
		return FromStd(c), nil
	}

	if v, err := strconv.ParseFloat(s, 64); err == nil {
		if !(v >= 0 && v <= 1) {
			return Color{}, &InvalidSpecError{Spec: spec, Err: errGrayRange}
		}
		return Gray(v), nil
	}

	return Color{}, &InvalidSpecError{Spec: spec, Err: errUnknownName}
}

// parseHex parses colours in "#rgb", "#rgba", "#rrggbb" or "#rrggbbaa"
// notation.  The alpha digits are checked but otherwise ignored.
func parseHex(s string) (Color, error) {
	switch len(s) {
	case 4, 7:
		// pass
	case 5, 9:
		alpha := s[len(s)-(len(s)-1)/4:]
		if _, err := strconv.ParseUint(alpha, 16, 8); err != nil {
			return Color{}, err
		}
		s = s[:len(s)-len(alpha)]
	default:
		return Color{}, errHexLength
	}
	c, err := colorful.Hex(strings.ToLower(s))
	if err != nil {
		return Color{}, err
	}
	return Color(c).Clamped(), nil
}

// foldName returns the canonical form of a colour name, used as the lookup
// key in name tables.
func foldName(name string) string {
	return cases.Fold().String(strings.TrimSpace(name))
}

// tableauNames lists the Tableau 10 palette, in the order of the default
// colour cycle.
var tableauNames = []string{
	"blue", "orange", "green", "red", "purple",
	"brown", "pink", "gray", "olive", "cyan",
}

var tableauValues = []uint32{
	0x1f77b4, 0xff7f0e, 0x2ca02c, 0xd62728, 0x9467bd,
	0x8c564b, 0xe377c2, 0x7f7f7f, 0xbcbd22, 0x17becf,
}

func tableau(i int) Color {
	v := tableauValues[i]
	return Color{
		R: float64(v>>16) / 255,
		G: float64(v>>8&0xff) / 255,
		B: float64(v&0xff) / 255,
	}
}

func tableauColor(name string) (Color, bool) {
	if name == "grey" {
		name = "gray"
	}
	i := slices.Index(tableauNames, name)
	if i < 0 {
		return Color{}, false
	}
	return tableau(i), true
}

// cycleIndex recognises colour cycle references "c0", "c1", ... in folded
// form.
func cycleIndex(key string) (int, bool) {
	digits, ok := strings.CutPrefix(key, "c")
	if !ok || digits == "" {
		return 0, false
	}
	for _, r := range digits {
		if r < '0' || r > '9' {
			return 0, false
		}
	}
	i, err := strconv.Atoi(digits)
	if err != nil {
		return 0, false
	}
	return i, true
}

var (
	errEmpty       = errors.New("empty colour specification")
	errUnknownName = errors.New("unknown colour name")
	errGrayRange   = errors.New("gray level outside [0, 1]")
	errHexLength   = errors.New("hex colours must have 3, 4, 6 or 8 digits")
)
