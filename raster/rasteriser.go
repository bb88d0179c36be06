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

// Package raster converts the outlines of pie slices into anti-aliased
// pixel coverage.
//
// The rasteriser accumulates the signed area of each edge per pixel and
// integrates along the scanline, so that a pixel which is half covered by
// a shape receives coverage 0.5. Shapes are filled using the nonzero
// winding rule. Strokes are converted to a set of consistently oriented
// polygons which are then filled together.
package raster

import (
	"cmp"
	"math"
	"slices"

	"seehuhn.de/go/geom/matrix"
	"seehuhn.de/go/geom/path"
	"seehuhn.de/go/geom/rect"
	"seehuhn.de/go/geom/vec"
	"seehuhn.de/go/pdf/graphics"
)

// EmitFunc receives the coverage of one scanline. The pixel at xMin+i
// has coverage coverage[i], a value between 0 and 1. The slice is only
// valid for the duration of the call.
type EmitFunc func(y, xMin int, coverage []float32)

// edge is a line segment in device coordinates, with y0 < y1.
type edge struct {
	x0, y0 float64
	x1, y1 float64
	dxdy   float64
	dir    float32 // +1 if the original segment pointed down, -1 otherwise
}

func (e *edge) xAt(y float64) float64 {
	return e.x0 + e.dxdy*(y-e.y0)
}

// Rasteriser converts paths to pixel coverage values.
// A Rasteriser keeps its internal buffers between calls; buffers grow as
// needed but never shrink.
//
// A Rasteriser is not safe for concurrent use.
type Rasteriser struct {
	// CTM maps user space to device space. Must be non-singular.
	CTM matrix.Matrix

	// Clip bounds the output to this device rectangle.
	// Coordinates must be integers.
	Clip rect.Rect

	// Flatness is the curve approximation tolerance in device pixels.
	Flatness float64

	// Width is the stroke width in user space units.
	Width float64

	// Cap is the style used for the ends of open subpaths.
	Cap graphics.LineCapStyle

	// Join is the style used where two stroke segments meet.
	Join graphics.LineJoinStyle

	// MiterLimit limits the length of miter joins. Must be at least 1.
	MiterLimit float64

	cover     []float32 // signed cover change per pixel; reused as output
	area      []float32 // area contribution within the pixel
	edges     []edge
	active    []int
	polygon   []vec.Vec2
	subpaths  []subpath
	points    []vec.Vec2
	bboxFirst bool
	bbox      rect.Rect // device space bounding box of all edges
}

// NewRasteriser returns a Rasteriser for the given clip rectangle,
// with PDF default values for all other parameters.
func NewRasteriser(clip rect.Rect) *Rasteriser {
	r := &Rasteriser{}
	r.Reset(clip)
	return r
}

// Reset restores the default parameters and sets a new clip rectangle,
// keeping the allocated buffers.
func (r *Rasteriser) Reset(clip rect.Rect) {
	r.CTM = matrix.Identity
	r.Clip = clip
	r.Flatness = defaultFlatness
	r.Width = 1
	r.Cap = graphics.LineCapButt
	r.Join = graphics.LineJoinMiter
	r.MiterLimit = defaultMiterLimit
}

// FillNonZero fills the path using the nonzero winding rule.
func (r *Rasteriser) FillNonZero(p path.Path, emit EmitFunc) {
	r.startEdges()

	var current, start vec.Vec2
	for cmd, pts := range p {
		switch cmd {
		case path.CmdMoveTo:
			if current != start {
				r.addEdge(current, start)
			}
			current = pts[0]
			start = current
		case path.CmdLineTo:
			r.addEdge(current, pts[0])
			current = pts[0]
		case path.CmdQuadTo:
			r.flattenQuadratic(current, pts[0], pts[1], r.addEdge)
			current = pts[1]
		case path.CmdCubeTo:
			r.flattenCubic(current, pts[0], pts[1], pts[2], r.addEdge)
			current = pts[2]
		case path.CmdClose:
			if current != start {
				r.addEdge(current, start)
			}
			current = start
		}
	}
	// a fill implicitly closes every open subpath
	if current != start {
		r.addEdge(current, start)
	}

	r.fillEdges(emit)
}

func (r *Rasteriser) startEdges() {
	r.edges = r.edges[:0]
	r.bboxFirst = true
}

// addEdge adds the segment from p0 to p1, given in user space.
func (r *Rasteriser) addEdge(p0, p1 vec.Vec2) {
	m := r.CTM
	x0 := m[0]*p0.X + m[2]*p0.Y + m[4]
	y0 := m[1]*p0.X + m[3]*p0.Y + m[5]
	x1 := m[0]*p1.X + m[2]*p1.Y + m[4]
	y1 := m[1]*p1.X + m[3]*p1.Y + m[5]

	dy := y1 - y0
	if math.Abs(dy) < horizontalEdgeThreshold {
		return
	}

	e := edge{dir: 1}
	if dy < 0 {
		x0, y0, x1, y1 = x1, y1, x0, y0
		e.dir = -1
	}
	e.x0, e.y0, e.x1, e.y1 = x0, y0, x1, y1
	e.dxdy = (x1 - x0) / (y1 - y0)
	r.edges = append(r.edges, e)

	xLo, xHi := min(x0, x1), max(x0, x1)
	if r.bboxFirst {
		r.bbox = rect.Rect{LLx: xLo, LLy: y0, URx: xHi, URy: y1}
		r.bboxFirst = false
		return
	}
	r.bbox.LLx = min(r.bbox.LLx, xLo)
	r.bbox.URx = max(r.bbox.URx, xHi)
	r.bbox.LLy = min(r.bbox.LLy, y0)
	r.bbox.URy = max(r.bbox.URy, y1)
}

// fillEdges scans the collected edges from top to bottom using an active
// edge list, and emits the coverage of every non-empty scanline.
func (r *Rasteriser) fillEdges(emit EmitFunc) {
	if len(r.edges) == 0 {
		return
	}

	xMin := max(int(math.Floor(r.bbox.LLx)), int(r.Clip.LLx))
	xMax := min(int(math.Floor(r.bbox.URx))+1, int(r.Clip.URx))
	yMin := max(int(math.Floor(r.bbox.LLy)), int(r.Clip.LLy))
	yMax := min(int(math.Floor(r.bbox.URy))+1, int(r.Clip.URy))
	if xMin >= xMax || yMin >= yMax {
		return
	}
	// Edges left of the clip still contribute their cover to the
	// first column, so xMin stays at the clip edge in that case.
	width := xMax - xMin

	slices.SortFunc(r.edges, func(a, b edge) int {
		return cmp.Compare(a.y0, b.y0)
	})

	r.cover = slices.Grow(r.cover[:0], width)[:width]
	r.area = slices.Grow(r.area[:0], width)[:width]
	r.active = r.active[:0]

	next := 0
	for y := yMin; y < yMax; y++ {
		yTop, yBot := float64(y), float64(y+1)

		// drop finished edges, then add the ones starting in this row
		keep := r.active[:0]
		for _, idx := range r.active {
			if r.edges[idx].y1 > yTop {
				keep = append(keep, idx)
			}
		}
		r.active = keep
		for next < len(r.edges) && r.edges[next].y0 < yBot {
			if r.edges[next].y1 > yTop {
				r.active = append(r.active, next)
			}
			next++
		}
		if len(r.active) == 0 {
			continue
		}

		clear(r.cover)
		clear(r.area)
		for _, idx := range r.active {
			r.accumulate(&r.edges[idx], yTop, yBot, xMin)
		}
		integrateNonZero(r.cover, r.area)

		if row, offset := trimZeros(r.cover); row != nil {
			emit(y, xMin+offset, row)
		}
	}
}

// accumulate adds the contribution of the part of e inside the scanline
// [yTop, yBot) to the cover and area buffers. The buffers are indexed by
// x - xMin.
//
// A piece of edge with vertical extent dy and average horizontal position
// xFrac within its pixel adds dir*dy to the cover of the pixel, and
// dir*dy*(1-xFrac) to its area. Integrating cover from the left and adding
// the area gives the signed area covered inside each pixel.
func (r *Rasteriser) accumulate(e *edge, yTop, yBot float64, xMin int) {
	yTop = max(yTop, e.y0)
	yBot = min(yBot, e.y1)
	if yBot <= yTop {
		return
	}

	xa, xb := e.xAt(yTop), e.xAt(yBot)
	ya, yb := yTop, yBot
	if xa > xb {
		xa, xb = xb, xa
		ya, yb = yb, ya
	}

	first := int(math.Floor(xa))
	last := int(math.Floor(xb))
	if first == last {
		r.deposit(first-xMin, e.dir*float32(yBot-yTop), (xa+xb)/2-float64(first))
		return
	}

	// walk the pixel columns from left to right
	slope := (yb - ya) / (xb - xa)
	x0, y0 := xa, ya
	for col := first; col <= last; col++ {
		x1, y1 := xb, yb
		if col < last {
			x1 = float64(col + 1)
			y1 = ya + slope*(x1-xa)
		}
		dy := math.Abs(y1 - y0)
		if dy > 0 {
			r.deposit(col-xMin, e.dir*float32(dy), (x0+x1)/2-float64(col))
		}
		x0, y0 = x1, y1
	}
}

func (r *Rasteriser) deposit(i int, c float32, xFrac float64) {
	switch {
	case i < 0:
		// left of the clip: the whole scanline is affected
		r.cover[0] += c
		r.area[0] += c
	case i < len(r.cover):
		r.cover[i] += c
		r.area[i] += c * float32(1-xFrac)
	}
}

// integrateNonZero turns the accumulated cover and area values into
// coverage, in place.
func integrateNonZero(cover, area []float32) {
	var acc float32
	for i := range cover {
		v := acc + area[i]
		acc += cover[i]
		if v < 0 {
			v = -v
		}
		cover[i] = min(v, 1)
	}
}

// trimZeros returns the part of coverage between the first and the last
// non-zero value, and the offset of that part. If all values are zero,
// the returned slice is nil.
func trimZeros(coverage []float32) ([]float32, int) {
	lo, hi := 0, len(coverage)
	for lo < hi && coverage[lo] == 0 {
		lo++
	}
	if lo == hi {
		return nil, 0
	}
	for coverage[hi-1] == 0 {
		hi--
	}
	return coverage[lo:hi], lo
}

// transformLinear applies the linear part of the CTM to v.
func (r *Rasteriser) transformLinear(v vec.Vec2) vec.Vec2 {
	return vec.Vec2{
		X: r.CTM[0]*v.X + r.CTM[2]*v.Y,
		Y: r.CTM[1]*v.X + r.CTM[3]*v.Y,
	}
}

// flattenQuadratic approximates a quadratic Bézier curve by line segments.
func (r *Rasteriser) flattenQuadratic(p0, p1, p2 vec.Vec2, emit func(a, b vec.Vec2)) {
	dev := r.transformLinear(p0.Sub(p1.Mul(2)).Add(p2).Mul(0.25)).Length()
	n := 1
	if dev > r.Flatness {
		n = int(math.Ceil(math.Sqrt(dev / r.Flatness)))
	}

	prev := p0
	for i := 1; i <= n; i++ {
		t := float64(i) / float64(n)
		s := 1 - t
		pt := p0.Mul(s * s).Add(p1.Mul(2 * s * t)).Add(p2.Mul(t * t))
		emit(prev, pt)
		prev = pt
	}
}

// flattenCubic approximates a cubic Bézier curve by line segments, using
// Wang's formula for the number of segments.
func (r *Rasteriser) flattenCubic(p0, p1, p2, p3 vec.Vec2, emit func(a, b vec.Vec2)) {
	d1 := r.transformLinear(p0.Sub(p1.Mul(2)).Add(p2)).Length()
	d2 := r.transformLinear(p1.Sub(p2.Mul(2)).Add(p3)).Length()
	n := 1
	if m := max(d1, d2); m > 0 {
		if f := math.Sqrt(3 * m / (4 * r.Flatness)); f > 1 {
			n = int(math.Ceil(f))
		}
	}

	prev := p0
	for i := 1; i <= n; i++ {
		t := float64(i) / float64(n)
		s := 1 - t
		pt := p0.Mul(s * s * s).
			Add(p1.Mul(3 * s * s * t)).
			Add(p2.Mul(3 * s * t * t)).
			Add(p3.Mul(t * t * t))
		emit(prev, pt)
		prev = pt
	}
}

const (
	// defaultFlatness is the curve tolerance in device pixels.
	defaultFlatness = 0.25

	// defaultMiterLimit matches the PDF default.
	defaultMiterLimit = 10.0

	// horizontalEdgeThreshold is the minimal vertical extent of an edge.
	horizontalEdgeThreshold = 1e-10

	// zeroLengthThreshold is the minimal length of a stroke segment.
	zeroLengthThreshold = 1e-10

	// collinearityThreshold is the |sin| below which two segments are
	// treated as collinear and need no join.
	collinearityThreshold = 1e-6
)
