// Package ggsurface implements a chart drawing surface on top of a
// [gg.Context].
package ggsurface

import (
	"image"
	"log/slog"

	"github.com/gogpu/gg"
	"github.com/gogpu/gg/text"
	"github.com/pkg/errors"
	"golang.org/x/image/font/gofont/goregular"
	"seehuhn.de/go/geom/path"
	"seehuhn.de/go/geom/rect"

	"seehuhn.de/go/piechart"
	"seehuhn.de/go/piechart/raster"
)

// Surface forwards the draw calls of a chart to a gg context.
//
// Drawing errors reported by the context are logged; the first one is
// kept and can be retrieved with Err.
type Surface struct {
	dc     *gg.Context
	owned  bool
	source *text.FontSource
	faces  map[float64]text.Face
	err    error
}

var _ piechart.Surface = (*Surface)(nil)

// New returns a surface drawing into a new width×height context, using
// the Go Regular font for text.
func New(width, height int) (*Surface, error) {
	if width <= 0 || height <= 0 {
		return nil, errors.Wrapf(piechart.ErrInvalidInput, "context size %dx%d", width, height)
	}
	s, err := ForContext(gg.NewContext(width, height), goregular.TTF)
	if err != nil {
		return nil, err
	}
	s.owned = true
	return s, nil
}

// ForContext returns a surface drawing into dc, using the given TrueType
// or OpenType font for text. The caller keeps ownership of dc.
func ForContext(dc *gg.Context, ttf []byte) (*Surface, error) {
	source, err := text.NewFontSource(ttf)
	if err != nil {
		return nil, errors.Wrap(err, "loading font")
	}
	return &Surface{
		dc:     dc,
		source: source,
		faces:  make(map[float64]text.Face),
	}, nil
}

// Context returns the underlying gg context.
func (s *Surface) Context() *gg.Context {
	return s.dc
}

// Image returns the current contents of the context.
func (s *Surface) Image() image.Image {
	return s.dc.Image()
}

// Err returns the first error reported by the context.
func (s *Surface) Err() error {
	return s.err
}

// Close releases the font and, if the surface created it, the context.
func (s *Surface) Close() error {
	clear(s.faces)
	err := s.source.Close()
	if s.owned {
		if err2 := s.dc.Close(); err == nil {
			err = err2
		}
	}
	return err
}

// FillArc implements [piechart.Surface].
func (s *Surface) FillArc(bounds rect.Rect, startAngle, sweepAngle float64, c piechart.Color) {
	s.dc.SetColor(c)
	s.wedge(bounds, startAngle, sweepAngle)
	s.check("fill", s.dc.Fill())
}

// StrokeArc implements [piechart.Surface].
func (s *Surface) StrokeArc(bounds rect.Rect, startAngle, sweepAngle float64, c piechart.Color, width float64) {
	if !(width > 0) {
		return
	}
	s.dc.SetColor(c)
	s.dc.SetLineWidth(width)
	s.dc.SetLineJoin(gg.LineJoinMiter)
	s.wedge(bounds, startAngle, sweepAngle)
	s.check("stroke", s.dc.Stroke())
}

// wedge replaces the current path of the context by the outline of a pie
// slice.
func (s *Surface) wedge(bounds rect.Rect, startAngle, sweepAngle float64) {
	p := raster.WedgeInRect(bounds, startAngle, sweepAngle)

	s.dc.ClearPath()
	for cmd, pts := range p {
		switch cmd {
		case path.CmdMoveTo:
			s.dc.MoveTo(pts[0].X, pts[0].Y)
		case path.CmdLineTo:
			s.dc.LineTo(pts[0].X, pts[0].Y)
		case path.CmdQuadTo:
			s.dc.QuadraticTo(pts[0].X, pts[0].Y, pts[1].X, pts[1].Y)
		case path.CmdCubeTo:
			s.dc.CubicTo(pts[0].X, pts[0].Y, pts[1].X, pts[1].Y, pts[2].X, pts[2].Y)
		case path.CmdClose:
			s.dc.ClosePath()
		}
	}
}

func (s *Surface) check(op string, err error) {
	if err == nil {
		return
	}
	piechart.Logger().Warn("gg drawing failed", slog.String("op", op), slog.Any("error", err))
	if s.err == nil {
		s.err = errors.Wrap(err, op)
	}
}

// DrawText implements [piechart.Surface].
func (s *Surface) DrawText(str string, x, y float64, c piechart.Color, fontSize float64) {
	if str == "" || !(fontSize > 0) {
		return
	}
	s.dc.SetFont(s.face(fontSize))
	s.dc.SetColor(c)
	s.dc.DrawString(str, x, y)
}

// MeasureTextWidth implements [piechart.TextMetrics].
func (s *Surface) MeasureTextWidth(str string, fontSize float64) float64 {
	if str == "" || !(fontSize > 0) {
		return 0
	}
	return s.face(fontSize).Advance(str)
}

// FontAscent implements [piechart.TextMetrics].
func (s *Surface) FontAscent(fontSize float64) float64 {
	if !(fontSize > 0) {
		return 0
	}
	return s.face(fontSize).Metrics().Ascent
}

func (s *Surface) face(size float64) text.Face {
	f, ok := s.faces[size]
	if !ok {
		f = s.source.Face(size)
		s.faces[size] = f
	}
	return f
}
