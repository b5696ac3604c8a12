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

import "fmt"

// LengthMismatchError is returned when the number of pivots differs from
// the number of colours.
type LengthMismatchError struct {
	Colors int
	Pivots int
}

func (e *LengthMismatchError) Error() string {
	return fmt.Sprintf("got %d pivots for %d colours", e.Pivots, e.Colors)
}

// Is reports whether target is a *LengthMismatchError.
func (e *LengthMismatchError) Is(target error) bool {
	_, ok := target.(*LengthMismatchError)
	return ok
}

// InvalidInputError is returned when the arguments used to build a colour
// map are invalid.
type InvalidInputError struct {
	Field   string
	Message string
}

func (e *InvalidInputError) Error() string {
	return fmt.Sprintf("invalid %s: %s", e.Field, e.Message)
}

// Is reports whether target is an *InvalidInputError.
func (e *InvalidInputError) Is(target error) bool {
	_, ok := target.(*InvalidInputError)
	return ok
}

func newInvalidInputError(field, format string, args ...any) *InvalidInputError {
	return &InvalidInputError{
		Field:   field,
		Message: fmt.Sprintf(format, args...),
	}
}
