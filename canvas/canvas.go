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

// Package canvas implements a chart drawing surface on an in-memory RGBA
// image, using the anti-aliasing rasteriser from the raster package for
// wedges and an OpenType font for text.
package canvas

import (
	"image"
	"image/color"
	"log/slog"
	"math"

	"github.com/pkg/errors"
	"golang.org/x/image/draw"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/font/gofont/goregular"
	"golang.org/x/image/font/opentype"
	"golang.org/x/image/math/fixed"
	"seehuhn.de/go/geom/rect"
	"seehuhn.de/go/pdf/graphics"

	"seehuhn.de/go/piechart"
	"seehuhn.de/go/piechart/raster"
)

// Surface is a [piechart.Surface] which draws into an RGBA image.
//
// A Surface is not safe for concurrent use.
type Surface struct {
	img   *image.RGBA
	mask  *image.Alpha
	ras   *raster.Rasteriser
	dirty image.Rectangle

	font  *opentype.Font
	faces map[float64]font.Face
}

var _ piechart.Surface = (*Surface)(nil)

// Option configures a new Surface.
type Option func(*config)

type config struct {
	ttf        []byte
	background color.Color
}

// WithFont selects the TrueType or OpenType font used for text.
// The default is Go Regular.
func WithFont(ttf []byte) Option {
	return func(c *config) {
		c.ttf = ttf
	}
}

// WithBackground fills the image with c before anything is drawn.
// By default the image starts transparent.
func WithBackground(c color.Color) Option {
	return func(cfg *config) {
		cfg.background = c
	}
}

// New returns a surface backed by a new width×height image.
func New(width, height int, opts ...Option) (*Surface, error) {
	if width <= 0 || height <= 0 {
		return nil, errors.Wrapf(piechart.ErrInvalidInput, "canvas size %dx%d", width, height)
	}
	cfg := config{ttf: goregular.TTF}
	for _, opt := range opts {
		opt(&cfg)
	}

	f, err := opentype.Parse(cfg.ttf)
	if err != nil {
		return nil, errors.Wrap(err, "parsing font")
	}

	bounds := image.Rect(0, 0, width, height)
	s := &Surface{
		img:   image.NewRGBA(bounds),
		mask:  image.NewAlpha(bounds),
		ras:   raster.NewRasteriser(rect.Rect{URx: float64(width), URy: float64(height)}),
		font:  f,
		faces: make(map[float64]font.Face),
	}
	if cfg.background != nil {
		s.Clear(cfg.background)
	}
	return s, nil
}

// Image returns the image the surface draws into.
func (s *Surface) Image() *image.RGBA {
	return s.img
}

// Clear fills the whole image with c.
func (s *Surface) Clear(c color.Color) {
	draw.Draw(s.img, s.img.Bounds(), image.NewUniform(c), image.Point{}, draw.Src)
}

// Close releases the font faces held by the surface. The image stays
// valid.
func (s *Surface) Close() error {
	var firstErr error
	for size, face := range s.faces {
		if err := face.Close(); err != nil && firstErr == nil {
			firstErr = err
		}
		delete(s.faces, size)
	}
	return firstErr
}

// FillArc implements [piechart.Surface].
func (s *Surface) FillArc(bounds rect.Rect, startAngle, sweepAngle float64, c piechart.Color) {
	p := raster.WedgeInRect(bounds, startAngle, sweepAngle)
	s.ras.FillNonZero(p, s.emit)
	s.composite(c)
}

// StrokeArc implements [piechart.Surface].
// Wedge outlines are stroked with mitered corners.
func (s *Surface) StrokeArc(bounds rect.Rect, startAngle, sweepAngle float64, c piechart.Color, width float64) {
	if !(width > 0) {
		return
	}
	s.ras.Width = width
	s.ras.Join = graphics.LineJoinMiter
	s.ras.Cap = graphics.LineCapButt
	p := raster.WedgeInRect(bounds, startAngle, sweepAngle)
	s.ras.Stroke(p, s.emit)
	s.composite(c)
}

// emit stores one row of coverage values in the mask.
func (s *Surface) emit(y, xMin int, coverage []float32) {
	row := s.mask.Pix[y*s.mask.Stride:]
	for i, c := range coverage {
		row[xMin+i] = uint8(min(max(c, 0), 1)*255 + 0.5)
	}
	s.dirty = s.dirty.Union(image.Rect(xMin, y, xMin+len(coverage), y+1))
}

// composite paints c through the mask onto the image and clears the
// mask again.
func (s *Surface) composite(c piechart.Color) {
	r := s.dirty
	if r.Empty() {
		return
	}
	draw.DrawMask(s.img, r, image.NewUniform(c), image.Point{}, s.mask, r.Min, draw.Over)
	for y := r.Min.Y; y < r.Max.Y; y++ {
		row := s.mask.Pix[y*s.mask.Stride:]
		clear(row[r.Min.X:r.Max.X])
	}
	s.dirty = image.Rectangle{}
}

// DrawText implements [piechart.Surface].
func (s *Surface) DrawText(text string, x, y float64, c piechart.Color, fontSize float64) {
	if text == "" || !(fontSize > 0) {
		return
	}
	d := &font.Drawer{
		Dst:  s.img,
		Src:  image.NewUniform(c),
		Face: s.face(fontSize),
		Dot:  fixed.Point26_6{X: fixed.Int26_6(x * 64), Y: fixed.Int26_6(y * 64)},
	}
	d.DrawString(text)
}

// MeasureTextWidth implements [piechart.TextMetrics].
func (s *Surface) MeasureTextWidth(text string, fontSize float64) float64 {
	if text == "" || !(fontSize > 0) {
		return 0
	}
	return float64(font.MeasureString(s.face(fontSize), text)) / 64
}

// FontAscent implements [piechart.TextMetrics].
func (s *Surface) FontAscent(fontSize float64) float64 {
	if !(fontSize > 0) {
		return 0
	}
	return float64(s.face(fontSize).Metrics().Ascent) / 64
}

// face returns the font face for the given pixel size. Faces are cached
// until Close is called.
func (s *Surface) face(size float64) font.Face {
	size = math.Round(size*64) / 64
	if f, ok := s.faces[size]; ok {
		return f
	}
	f, err := opentype.NewFace(s.font, &opentype.FaceOptions{
		Size:    size,
		DPI:     72,
		Hinting: font.HintingNone,
	})
	if err != nil {
		piechart.Logger().Warn("font face unavailable, using fallback",
			slog.Float64("size", size),
			slog.Any("error", err))
		return basicfont.Face7x13
	}
	s.faces[size] = f
	return f
}
