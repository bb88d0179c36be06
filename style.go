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

	"github.com/pkg/errors"
)

// NoTitle is the title value which disables the title. No vertical space
// is reserved for it.
const NoTitle = ""

// Default style values.
const (
	DefaultLabelSize = 24.0 // sp
	titleGap         = 16.0 // dp, between the title and the pie
)

// Style holds the appearance of a chart. Sizes are given in
// device-independent units: BorderWidth and Padding in dp, LabelSize in
// sp. They are converted to pixels by [Chart.ApplyStyle].
type Style struct {
	Title           string  `yaml:"title" json:"title"`
	BorderWidth     float64 `yaml:"borderWidth" json:"borderWidth"`
	BorderColor     Color   `yaml:"borderColor" json:"borderColor"`
	ShowValueLabels bool    `yaml:"showValueLabels" json:"showValueLabels"`
	LabelColor      Color   `yaml:"labelColor" json:"labelColor"`
	LabelSize       float64 `yaml:"labelSize" json:"labelSize"`
	Ordered         bool    `yaml:"ordered" json:"ordered"`
	Padding         Padding `yaml:"padding" json:"padding"`
}

// Padding insets the pie inside its square, in dp.
type Padding struct {
	Top    float64 `yaml:"top" json:"top"`
	Right  float64 `yaml:"right" json:"right"`
	Bottom float64 `yaml:"bottom" json:"bottom"`
	Left   float64 `yaml:"left" json:"left"`
}

// DefaultStyle returns the style of a newly created chart: no title, no
// border, no value labels, insertion order.
func DefaultStyle() Style {
	return Style{
		Title:       NoTitle,
		BorderColor: White,
		LabelColor:  White,
		LabelSize:   DefaultLabelSize,
	}
}

// DisplayMetrics describes the resolution of the rendering surface.
type DisplayMetrics struct {
	// Density is the number of pixels per dp.
	Density float64 `yaml:"density" json:"density"`

	// ScaledDensity is the number of pixels per sp. It differs from
	// Density when the user has changed the font scale.
	ScaledDensity float64 `yaml:"scaledDensity" json:"scaledDensity"`
}

// DefaultDisplayMetrics maps one dp and one sp to one pixel.
var DefaultDisplayMetrics = DisplayMetrics{Density: 1, ScaledDensity: 1}

// DP converts a length in dp to pixels.
func (m DisplayMetrics) DP(v float64) float64 {
	if !(m.Density > 0) {
		return v
	}
	return v * m.Density
}

// SP converts a text size in sp to pixels. If no scaled density is set,
// the density is used.
func (m DisplayMetrics) SP(v float64) float64 {
	if !(m.ScaledDensity > 0) {
		return m.DP(v)
	}
	return v * m.ScaledDensity
}

// resolvedStyle is a Style with all sizes converted to pixels.
type resolvedStyle struct {
	title       string
	borderWidth float64
	borderColor Color
	showLabels  bool
	labelColor  Color
	labelSize   float64
	ordered     bool
	padding     Padding
	titleGap    float64
}

func (s Style) validate() error {
	if math.IsNaN(s.BorderWidth) || math.IsInf(s.BorderWidth, 0) {
		return errors.Wrapf(ErrInvalidInput, "border width %g", s.BorderWidth)
	}
	if !(s.LabelSize >= 0) || math.IsInf(s.LabelSize, 0) {
		return errors.Wrapf(ErrInvalidInput, "label size %g", s.LabelSize)
	}
	p := s.Padding
	for _, v := range []float64{p.Top, p.Right, p.Bottom, p.Left} {
		if !(v >= 0) || math.IsInf(v, 0) {
			return errors.Wrapf(ErrInvalidInput, "padding %g", v)
		}
	}
	return nil
}

// resolve converts all sizes in s to pixels.
func (s Style) resolve(m DisplayMetrics) resolvedStyle {
	return resolvedStyle{
		title:       s.Title,
		borderWidth: m.DP(s.BorderWidth),
		borderColor: s.BorderColor,
		showLabels:  s.ShowValueLabels,
		labelColor:  s.LabelColor,
		labelSize:   m.SP(s.LabelSize),
		ordered:     s.Ordered,
		padding: Padding{
			Top:    m.DP(s.Padding.Top),
			Right:  m.DP(s.Padding.Right),
			Bottom: m.DP(s.Padding.Bottom),
			Left:   m.DP(s.Padding.Left),
		},
		titleGap: m.DP(titleGap),
	}
}

func (s *resolvedStyle) hasTitle() bool {
	return s.title != NoTitle
}
