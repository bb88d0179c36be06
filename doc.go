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

// Package piechart lays out and draws pie charts.
//
// A [Chart] holds a series of non-negative integer values and a [Style].
// The host first calls [Chart.Measure] with the available space, and then
// [Chart.Paint] with a [Surface] which receives the draw calls: one filled
// wedge per value, optionally a border around each wedge, value labels
// and a title.
//
// Slices start at 12 o'clock and run clockwise, each one spanning
// 360°·v/total. Slice colours are taken from a fixed palette of
// [PaletteSize] colours, by drawing position.
//
// Sizes in a Style are device-independent: dp for lengths and sp for text.
// They are converted to pixels using the [DisplayMetrics] of the chart
// when the style is applied.
//
// Surfaces are implemented by [Recorder] in this package, and by the
// canvas and ggsurface packages.
package piechart
