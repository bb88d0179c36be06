package piechart

import (
	"unicode/utf8"

	"seehuhn.de/go/geom/rect"
)

// TextMetrics measures text. Sizes are in pixels.
type TextMetrics interface {
	// MeasureTextWidth returns the advance width of text.
	MeasureTextWidth(text string, fontSize float64) float64

	// FontAscent returns the distance from the baseline to the top of the
	// font, as a positive number.
	FontAscent(fontSize float64) float64
}

// Surface receives the draw calls of a chart.
//
// Coordinates are in pixels with y pointing down; in a bounds rectangle
// LLx/LLy is the top-left corner and URx/URy the bottom-right corner.
// Angles are in degrees, 0 pointing right and increasing clockwise.
type Surface interface {
	TextMetrics

	// FillArc fills the pie wedge of the ellipse inscribed in bounds,
	// from startAngle through sweepAngle, including the centre.
	FillArc(bounds rect.Rect, startAngle, sweepAngle float64, c Color)

	// StrokeArc strokes the outline of the same wedge.
	StrokeArc(bounds rect.Rect, startAngle, sweepAngle float64, c Color, width float64)

	// DrawText draws text with its baseline starting at (x, y).
	DrawText(text string, x, y float64, c Color, fontSize float64)
}

// FixedMetrics is a font-free TextMetrics where every character has the
// same advance. It is used where no font is available, for example in
// tests and when recording draw calls.
type FixedMetrics struct {
	AscentRatio  float64 // ascent per pixel of font size
	AdvanceRatio float64 // advance per character per pixel of font size
}

// DefaultFixedMetrics approximates a typical sans-serif font.
var DefaultFixedMetrics = FixedMetrics{AscentRatio: 0.75, AdvanceRatio: 0.5}

// MeasureTextWidth implements [TextMetrics].
func (m FixedMetrics) MeasureTextWidth(text string, fontSize float64) float64 {
	return float64(utf8.RuneCountInString(text)) * fontSize * m.AdvanceRatio
}

// FontAscent implements [TextMetrics].
func (m FixedMetrics) FontAscent(fontSize float64) float64 {
	return fontSize * m.AscentRatio
}
