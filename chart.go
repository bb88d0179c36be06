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
	"log/slog"
	"math"
	"strconv"

	"seehuhn.de/go/geom/rect"
)

const (
	// StartAngle is the angle of the first slice edge, at 12 o'clock.
	StartAngle = 270.0

	fullCircle = 360.0

	labelRadiusFraction = 2.0 / 3.0
	labelAscentFactor   = 0.4
	titleAscentFactor   = 0.8
)

// Chart is a pie chart. It holds the values and the style, computes the
// layout and emits draw calls to a [Surface].
//
// A Chart is not safe for concurrent use. Measure and Paint are expected
// to be called from the same goroutine that configures the chart.
type Chart struct {
	series     Series
	style      Style
	res        resolvedStyle
	metrics    DisplayMetrics
	invalidate func()

	layout   LayoutResult
	measured bool
}

// Option configures a new chart.
type Option func(*Chart)

// WithDisplayMetrics sets the density used to convert dp and sp to pixels.
func WithDisplayMetrics(m DisplayMetrics) Option {
	return func(c *Chart) {
		c.metrics = m
	}
}

// WithInvalidate registers a function which is called whenever the chart
// needs to be measured and painted again.
func WithInvalidate(f func()) Option {
	return func(c *Chart) {
		c.invalidate = f
	}
}

// New returns an empty chart with the default style.
func New(opts ...Option) *Chart {
	c := &Chart{
		metrics: DefaultDisplayMetrics,
		style:   DefaultStyle(),
	}
	for _, opt := range opts {
		opt(c)
	}
	c.res = c.style.resolve(c.metrics)
	return c
}

// ApplyStyle replaces the style of the chart. All sizes are converted to
// pixels here, once; painting uses the converted values.
//
// If the style is invalid, an error wrapping [ErrInvalidInput] is returned
// and the previous style stays in force.
func (c *Chart) ApplyStyle(s Style) error {
	if err := s.validate(); err != nil {
		Logger().Warn("style rejected", slog.Any("error", err))
		return err
	}
	c.style = s
	c.res = s.resolve(c.metrics)
	c.changed()
	return nil
}

// Style returns the current style, in device-independent units.
func (c *Chart) Style() Style {
	return c.style
}

// SetValues replaces the values of the chart.
//
// Negative values are rejected with an error wrapping [ErrInvalidInput];
// in this case the chart keeps its previous values.
func (c *Chart) SetValues(values []int) error {
	s, err := NewSeries(values)
	if err != nil {
		Logger().Warn("values rejected", slog.Any("error", err))
		return err
	}
	c.series = s
	Logger().Debug("values replaced",
		slog.Int("count", s.Len()),
		slog.Int("total", s.Total()))
	c.changed()
	return nil
}

// Series returns the current values.
func (c *Chart) Series() Series {
	return c.series
}

// Configure applies the style and the values of cfg. Either both are
// applied, or, if one of them is invalid, neither.
func (c *Chart) Configure(cfg Config) error {
	if err := cfg.Style.validate(); err != nil {
		return err
	}
	s, err := NewSeries(cfg.Values)
	if err != nil {
		return err
	}
	c.style = cfg.Style
	c.res = cfg.Style.resolve(c.metrics)
	c.series = s
	c.changed()
	return nil
}

// Config returns the current style and values as a configuration.
func (c *Chart) Config() Config {
	return Config{Style: c.style, Values: c.series.Values()}
}

func (c *Chart) changed() {
	c.measured = false
	if c.invalidate != nil {
		c.invalidate()
	}
}

// NeedsMeasure reports whether the chart has changed since the last call
// to Measure.
func (c *Chart) NeedsMeasure() bool {
	return !c.measured
}

// LayoutResult is the outcome of a measurement pass.
type LayoutResult struct {
	// SquareSize is the side length of the square containing the pie.
	SquareSize float64

	// TitleOffset is the vertical space reserved above the pie for the
	// title. It is 0 if the chart has no title.
	TitleOffset float64

	// Width and Height are the measured size of the chart in pixels.
	// Both are 0 if the chart has nothing to draw.
	Width, Height int
}

// Measure computes the size of the chart inside the given space. The
// text metrics are used to find the font ascent of the title; if m is
// nil, the ascent is taken to be zero.
//
// The result is (0, 0) if the chart has no values or all values are zero.
func (c *Chart) Measure(availableWidth, availableHeight int, m TextMetrics) (width, height int) {
	size := float64(max(min(availableWidth, availableHeight), 0))

	var offset float64
	if c.res.hasTitle() {
		offset = ascent(m, c.res.labelSize) + c.res.titleGap
	}

	l := LayoutResult{
		SquareSize:  size,
		TitleOffset: offset,
	}
	if !c.series.Empty() {
		l.Width = int(size)
		l.Height = int(size + offset)
	}
	c.layout = l
	c.measured = true

	Logger().Debug("measure",
		slog.Int("availableWidth", availableWidth),
		slog.Int("availableHeight", availableHeight),
		slog.Float64("titleOffset", offset),
		slog.Int("width", l.Width),
		slog.Int("height", l.Height))
	return l.Width, l.Height
}

// Layout returns the result of the last call to Measure.
func (c *Chart) Layout() LayoutResult {
	return c.layout
}

// Slice describes one wedge of the pie, as painted.
type Slice struct {
	// Position is the index of the slice in drawing order. It selects the
	// colour of the slice.
	Position int

	Value      int
	StartAngle float64 // degrees, in [0, 360)
	SweepAngle float64 // degrees
	Color      Color

	// LabelX and LabelY give the point on the bisector of the slice,
	// at two thirds of the radius, on which the value label is centred.
	LabelX, LabelY float64
}

// Slices returns the slices in drawing order, using the layout of the last
// call to Measure. If the chart is ordered, slices are sorted by
// increasing value and the colours follow the sorted order.
//
// The result is nil if the chart has nothing to draw.
func (c *Chart) Slices() []Slice {
	if c.series.Empty() {
		return nil
	}

	values := c.series.iteration(c.res.ordered)
	total := float64(c.series.Total())
	center := c.layout.SquareSize / 2
	radius := center - c.res.padding.max()

	res := make([]Slice, len(values))
	angle := StartAngle
	for i, v := range values {
		sweep := fullCircle * float64(v) / total
		bisector := math.Mod(angle+sweep/2, fullCircle) * math.Pi / 180
		res[i] = Slice{
			Position:   i,
			Value:      v,
			StartAngle: angle,
			SweepAngle: sweep,
			Color:      PaletteColor(i),
			LabelX:     center + radius*labelRadiusFraction*math.Cos(bisector),
			LabelY:     center + radius*labelRadiusFraction*math.Sin(bisector) + c.layout.TitleOffset,
		}
		angle = math.Mod(angle+sweep, fullCircle)
	}
	return res
}

// ArcBounds returns the rectangle which the pie is inscribed in: the
// measured square, inset by the padding and moved down below the title.
func (c *Chart) ArcBounds() rect.Rect {
	p := c.res.padding
	size := c.layout.SquareSize
	off := c.layout.TitleOffset
	return rect.Rect{
		LLx: p.Left,
		LLy: p.Top + off,
		URx: size - p.Right,
		URy: size - p.Bottom + off,
	}
}

// Paint draws the chart onto s: first the title, then for every slice the
// filled wedge, its border and its value label.
//
// Paint does nothing if s is nil, if the chart has nothing to draw or if
// the chart has never been measured.
func (c *Chart) Paint(s Surface) {
	if s == nil || c.series.Empty() || c.layout.SquareSize <= 0 {
		Logger().Debug("paint skipped",
			slog.Bool("surface", s != nil),
			slog.Bool("empty", c.series.Empty()))
		return
	}

	r := &c.res
	if r.hasTitle() {
		a := s.FontAscent(r.labelSize)
		w := s.MeasureTextWidth(r.title, r.labelSize)
		x := c.layout.SquareSize/2 - w/2
		y := r.padding.Top + titleAscentFactor*a
		s.DrawText(r.title, x, y, r.labelColor, r.labelSize)
	}

	bounds := c.ArcBounds()
	slices := c.Slices()
	for _, sl := range slices {
		s.FillArc(bounds, sl.StartAngle, sl.SweepAngle, sl.Color)
		if r.borderWidth > 0 {
			s.StrokeArc(bounds, sl.StartAngle, sl.SweepAngle, r.borderColor, r.borderWidth)
		}
		if r.showLabels {
			text := strconv.Itoa(sl.Value)
			w := s.MeasureTextWidth(text, r.labelSize)
			a := s.FontAscent(r.labelSize)
			s.DrawText(text, sl.LabelX-w/2, sl.LabelY+labelAscentFactor*a, r.labelColor, r.labelSize)
		}
	}

	Logger().Debug("paint",
		slog.Int("slices", len(slices)),
		slog.Bool("title", r.hasTitle()),
		slog.Bool("border", r.borderWidth > 0),
		slog.Bool("labels", r.showLabels))
}

// State is the saved state of a chart. It carries only the state of the
// enclosing host; a chart has no state of its own worth saving.
type State struct {
	parent any
}

// SaveState wraps the state of the host.
func (c *Chart) SaveState(parent any) State {
	return State{parent: parent}
}

// RestoreState returns the host state saved by SaveState.
func (c *Chart) RestoreState(s State) any {
	return s.parent
}

func ascent(m TextMetrics, size float64) float64 {
	if m == nil {
		return 0
	}
	return m.FontAscent(size)
}

func (p Padding) max() float64 {
	return max(p.Top, p.Right, p.Bottom, p.Left)
}
