// seehuhn.de/go/piechart - pie chart layout and rendering
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

package piechart

import (
	"math"
	"slices"

	"github.com/pkg/errors"
)

// Series is the ordered list of slice values of a chart, together with
// their total. The zero value is an empty series.
//
// A Series is immutable; a chart replaces its series as a whole.
type Series struct {
	values []int
	total  int
}

// NewSeries returns a series holding a copy of values.
// Negative values, and values whose sum does not fit into an int, are
// rejected with an error wrapping [ErrInvalidInput].
func NewSeries(values []int) (Series, error) {
	total := 0
	for i, v := range values {
		if v < 0 {
			return Series{}, errors.Wrapf(ErrInvalidInput, "value %d at index %d is negative", v, i)
		}
		if total > math.MaxInt-v {
			return Series{}, errors.Wrapf(ErrInvalidInput, "total overflows at index %d", i)
		}
		total += v
	}
	return Series{values: slices.Clone(values), total: total}, nil
}

// Values returns a copy of the values, in insertion order.
func (s Series) Values() []int {
	return slices.Clone(s.values)
}

// Len returns the number of values.
func (s Series) Len() int {
	return len(s.values)
}

// Total returns the sum of all values.
func (s Series) Total() int {
	return s.total
}

// Empty reports whether the series has nothing to draw, either because
// there are no values or because all of them are zero.
func (s Series) Empty() bool {
	return len(s.values) == 0 || s.total == 0
}

// SliceFraction returns the share of value i in the total. The result is 0
// if the total is zero or i is out of range.
func (s Series) SliceFraction(i int) float64 {
	if s.total == 0 || i < 0 || i >= len(s.values) {
		return 0
	}
	return float64(s.values[i]) / float64(s.total)
}

// iteration returns the values in the order in which they are drawn.
func (s Series) iteration(ordered bool) []int {
	if !ordered {
		return s.values
	}
	sorted := slices.Clone(s.values)
	slices.Sort(sorted)
	return sorted
}
