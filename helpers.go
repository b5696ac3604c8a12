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
	"math"
	"sort"
)

func isFinite(x float64) bool {
	return !math.IsInf(x, 0) && !math.IsNaN(x)
}

// clip clips a value to the given range [min, max].
func clip(value, min, max float64) float64 {
	if value < min {
		return min
	}
	if value > max {
		return max
	}
	return value
}

// interpolate performs linear interpolation.
func interpolate(x, xMin, xMax, yMin, yMax float64) float64 {
	if xMax <= xMin {
		return yMin
	}
	return yMin + (x-xMin)*(yMax-yMin)/(xMax-xMin)
}

// interp evaluates the piecewise linear function through the points
// (xp[i], fp[i]) at x.  The values xp must be non-decreasing.
//
// For x outside [xp[0], xp[n-1]] the value at the nearest end point is
// returned.  If several points share the same x-coordinate, the last of
// these points determines the value at x.
func interp(x float64, xp, fp []float64) float64 {
	n := len(xp)
	if x < xp[0] {
		return fp[0]
	} else if x > xp[n-1] {
		return fp[n-1]
	}

	// j is the last index with xp[j] <= x
	j := sort.Search(n, func(i int) bool { return xp[i] > x }) - 1
	if j == n-1 || xp[j] == x {
		return fp[j]
	}
	return interpolate(x, xp[j], xp[j+1], fp[j], fp[j+1])
}

// spread returns n values in [0, 1], with value i equal to (i/(n-1))^gamma.
func spread(n int, gamma float64) []float64 {
	res := make([]float64, n)
	if n == 1 {
		return res
	}
	for i := range n {
		x := float64(i) / float64(n-1)
		if gamma != 1 {
			x = math.Pow(x, gamma)
		}
		res[i] = x
	}
	return res
}
