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

// Package testcases holds named chart configurations together with the
// layout they are expected to produce.
package testcases

import "seehuhn.de/go/piechart"

// TestCase defines a single chart scenario.
type TestCase struct {
	Name    string          // lowercase a-z and _ only
	Config  piechart.Config // style and values
	Width   int             // available width in pixels
	Height  int             // available height in pixels
	Density float64         // pixels per dp and per sp (zero-value means 1)

	// Order lists the values in drawing order, and Sweeps the expected
	// sweep angles in degrees. Both are nil if nothing is drawn.
	Order  []int
	Sweeps []float64
}

// Metrics returns the display metrics of the test case.
func (tc TestCase) Metrics() piechart.DisplayMetrics {
	d := tc.Density
	if d <= 0 {
		d = 1
	}
	return piechart.DisplayMetrics{Density: d, ScaledDensity: d}
}

// config returns a configuration with the default style and the given
// values.
func config(values ...int) piechart.Config {
	cfg := piechart.DefaultConfig()
	cfg.Values = values
	return cfg
}
