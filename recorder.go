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
	"fmt"

	"seehuhn.de/go/geom/rect"
)

// OpKind identifies a draw call.
type OpKind int

// These are the draw calls a chart can issue.
const (
	OpFillArc OpKind = iota + 1
	OpStrokeArc
	OpDrawText
)

func (k OpKind) String() string {
	switch k {
	case OpFillArc:
		return "fillArc"
	case OpStrokeArc:
		return "strokeArc"
	case OpDrawText:
		return "drawText"
	default:
		return fmt.Sprintf("OpKind(%d)", int(k))
	}
}

// MarshalText implements [encoding.TextMarshaler].
func (k OpKind) MarshalText() ([]byte, error) {
	return []byte(k.String()), nil
}

// Op is a recorded draw call. Only the fields relevant for the kind of
// call are set.
type Op struct {
	Kind OpKind `json:"op"`

	Bounds     rect.Rect `json:"bounds,omitzero"`
	StartAngle float64   `json:"startAngle,omitempty"`
	SweepAngle float64   `json:"sweepAngle,omitempty"`
	Width      float64   `json:"width,omitempty"`

	Text     string  `json:"text,omitempty"`
	X        float64 `json:"x,omitempty"`
	Y        float64 `json:"y,omitempty"`
	FontSize float64 `json:"fontSize,omitempty"`

	Color Color `json:"color"`
}

// Recorder is a [Surface] which stores the draw calls it receives, so that
// they can be inspected or replayed onto another surface.
//
// Text is measured using the embedded TextMetrics.  If this is nil,
// [DefaultFixedMetrics] is used.
//
// A nil *Recorder is a valid surface: it measures text with
// [DefaultFixedMetrics] and discards all draw calls.
type Recorder struct {
	TextMetrics
	Ops []Op
}

// NewRecorder returns a recorder which measures text using m.
func NewRecorder(m TextMetrics) *Recorder {
	return &Recorder{TextMetrics: m}
}

func (r *Recorder) metrics() TextMetrics {
	if r == nil || r.TextMetrics == nil {
		return DefaultFixedMetrics
	}
	return r.TextMetrics
}

// MeasureTextWidth implements [TextMetrics].
func (r *Recorder) MeasureTextWidth(text string, fontSize float64) float64 {
	return r.metrics().MeasureTextWidth(text, fontSize)
}

// FontAscent implements [TextMetrics].
func (r *Recorder) FontAscent(fontSize float64) float64 {
	return r.metrics().FontAscent(fontSize)
}

// FillArc implements [Surface].
func (r *Recorder) FillArc(bounds rect.Rect, startAngle, sweepAngle float64, c Color) {
	if r == nil {
		return
	}
	r.Ops = append(r.Ops, Op{
		Kind:       OpFillArc,
		Bounds:     bounds,
		StartAngle: startAngle,
		SweepAngle: sweepAngle,
		Color:      c,
	})
}

// StrokeArc implements [Surface].
func (r *Recorder) StrokeArc(bounds rect.Rect, startAngle, sweepAngle float64, c Color, width float64) {
	if r == nil {
		return
	}
	r.Ops = append(r.Ops, Op{
		Kind:       OpStrokeArc,
		Bounds:     bounds,
		StartAngle: startAngle,
		SweepAngle: sweepAngle,
		Width:      width,
		Color:      c,
	})
}

// DrawText implements [Surface].
func (r *Recorder) DrawText(text string, x, y float64, c Color, fontSize float64) {
	if r == nil {
		return
	}
	r.Ops = append(r.Ops, Op{
		Kind:     OpDrawText,
		Text:     text,
		X:        x,
		Y:        y,
		FontSize: fontSize,
		Color:    c,
	})
}

// Reset discards all recorded draw calls.
func (r *Recorder) Reset() {
	if r == nil {
		return
	}
	r.Ops = r.Ops[:0]
}

// Filter returns the recorded calls of the given kind, in order.
func (r *Recorder) Filter(kind OpKind) []Op {
	if r == nil {
		return nil
	}
	var res []Op
	for _, op := range r.Ops {
		if op.Kind == kind {
			res = append(res, op)
		}
	}
	return res
}

// Playback issues all recorded draw calls to s, in order.
func (r *Recorder) Playback(s Surface) {
	if r == nil {
		return
	}
	for _, op := range r.Ops {
		switch op.Kind {
		case OpFillArc:
			s.FillArc(op.Bounds, op.StartAngle, op.SweepAngle, op.Color)
		case OpStrokeArc:
			s.StrokeArc(op.Bounds, op.StartAngle, op.SweepAngle, op.Color, op.Width)
		case OpDrawText:
			s.DrawText(op.Text, op.X, op.Y, op.Color, op.FontSize)
		}
	}
}
