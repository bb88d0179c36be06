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

package raster

import (
	"math"

	"seehuhn.de/go/geom/path"
	"seehuhn.de/go/geom/vec"
	"seehuhn.de/go/pdf/graphics"
)

// subpath is a range of r.points. For closed subpaths the last point
// repeats the first one.
type subpath struct {
	start, end int
	closed     bool
}

// Stroke renders the outline of the path using Width, Cap, Join and
// MiterLimit.
//
// The stroke is built from one quadrilateral per segment, plus join and
// cap pieces. All pieces are oriented the same way, so that filling them
// together with the nonzero rule gives their union.
func (r *Rasteriser) Stroke(p path.Path, emit EmitFunc) {
	d := r.Width / 2
	if !(d > 0) {
		return
	}

	r.flatten(p)
	r.startEdges()

	for _, sp := range r.subpaths {
		pts := r.points[sp.start:sp.end]
		n := len(pts)
		if n == 1 {
			if r.Cap == graphics.LineCapRound {
				r.addDisc(pts[0], d)
			}
			continue
		}

		for i := 1; i < n; i++ {
			r.addSegment(pts[i-1], pts[i], d)
		}
		for i := 1; i+1 < n; i++ {
			r.addJoin(pts[i-1], pts[i], pts[i+1], d)
		}
		if sp.closed {
			r.addJoin(pts[n-2], pts[0], pts[1], d)
		} else {
			r.addCap(pts[0], unit(pts[0].Sub(pts[1])), d)
			r.addCap(pts[n-1], unit(pts[n-1].Sub(pts[n-2])), d)
		}
	}

	r.fillEdges(emit)
}

// flatten converts the path into polylines stored in r.points and
// r.subpaths. Segments shorter than zeroLengthThreshold are dropped.
func (r *Rasteriser) flatten(p path.Path) {
	r.points = r.points[:0]
	r.subpaths = r.subpaths[:0]

	open := false
	var sp subpath
	finish := func(closed bool) {
		if !open {
			return
		}
		if closed {
			first := r.points[sp.start]
			if last := r.points[len(r.points)-1]; last.Sub(first).Length() >= zeroLengthThreshold {
				r.points = append(r.points, first)
			} else {
				r.points[len(r.points)-1] = first
			}
		}
		sp.end = len(r.points)
		sp.closed = closed && sp.end-sp.start > 1
		r.subpaths = append(r.subpaths, sp)
		open = false
	}
	lineTo := func(_, b vec.Vec2) {
		if b.Sub(r.points[len(r.points)-1]).Length() >= zeroLengthThreshold {
			r.points = append(r.points, b)
		}
	}

	var current vec.Vec2
	for cmd, pts := range p {
		switch cmd {
		case path.CmdMoveTo:
			finish(false)
			current = pts[0]
			sp = subpath{start: len(r.points)}
			r.points = append(r.points, current)
			open = true
		case path.CmdLineTo:
			if open {
				lineTo(current, pts[0])
			}
			current = pts[0]
		case path.CmdQuadTo:
			if open {
				r.flattenQuadratic(current, pts[0], pts[1], lineTo)
			}
			current = pts[1]
		case path.CmdCubeTo:
			if open {
				r.flattenCubic(current, pts[0], pts[1], pts[2], lineTo)
			}
			current = pts[2]
		case path.CmdClose:
			if open {
				current = r.points[sp.start]
			}
			finish(true)
		}
	}
	finish(false)
}

// addSegment adds the rectangle covering the segment from a to b.
func (r *Rasteriser) addSegment(a, b vec.Vec2, d float64) {
	t := unit(b.Sub(a))
	n := vec.Vec2{X: -t.Y, Y: t.X}.Mul(d)
	r.addPolygon(a.Add(n), b.Add(n), b.Sub(n), a.Sub(n))
}

// addJoin adds the join between the segments prev→p and p→next.
func (r *Rasteriser) addJoin(prev, p, next vec.Vec2, d float64) {
	t1 := unit(p.Sub(prev))
	t2 := unit(next.Sub(p))
	cross := t1.X*t2.Y - t1.Y*t2.X
	dot := t1.X*t2.X + t1.Y*t2.Y
	if math.Abs(cross) < collinearityThreshold && dot > 0 {
		return
	}

	if r.Join == graphics.LineJoinRound {
		r.addDisc(p, d)
		return
	}

	// The path turns towards +n when cross > 0, so the gap to fill
	// is on the -n side.
	s := d
	if cross > 0 {
		s = -d
	}
	n1 := vec.Vec2{X: -t1.Y, Y: t1.X}
	n2 := vec.Vec2{X: -t2.Y, Y: t2.X}
	a := p.Add(n1.Mul(s))
	b := p.Add(n2.Mul(s))

	if r.Join == graphics.LineJoinMiter {
		c := 1 + n1.X*n2.X + n1.Y*n2.Y
		if cosHalf := math.Sqrt(c / 2); cosHalf > 0 && 1/cosHalf <= r.MiterLimit {
			m := p.Add(n1.Add(n2).Mul(s / c))
			r.addPolygon(p, a, m, b)
			return
		}
	}
	r.addPolygon(p, a, b)
}

// addCap adds the cap at the end point p of an open subpath. The unit
// vector t points away from the subpath.
func (r *Rasteriser) addCap(p, t vec.Vec2, d float64) {
	switch r.Cap {
	case graphics.LineCapRound:
		r.addDisc(p, d)
	case graphics.LineCapSquare:
		n := vec.Vec2{X: -t.Y, Y: t.X}.Mul(d)
		e := t.Mul(d)
		r.addPolygon(p.Add(n), p.Add(n).Add(e), p.Sub(n).Add(e), p.Sub(n))
	}
}

// addDisc adds a polygonal approximation of the disc with centre c and
// radius d.
func (r *Rasteriser) addDisc(c vec.Vec2, d float64) {
	devR := d * max(
		r.transformLinear(vec.Vec2{X: 1}).Length(),
		r.transformLinear(vec.Vec2{Y: 1}).Length())

	n := 8
	if devR > r.Flatness {
		step := 2 * math.Acos(1-r.Flatness/devR)
		n = max(n, int(math.Ceil(2*math.Pi/step)))
	}

	r.polygon = r.polygon[:0]
	for i := range n {
		phi := 2 * math.Pi * float64(i) / float64(n)
		r.polygon = append(r.polygon, vec.Vec2{
			X: c.X + d*math.Cos(phi),
			Y: c.Y + d*math.Sin(phi),
		})
	}
	r.addOriented(r.polygon)
}

func (r *Rasteriser) addPolygon(pts ...vec.Vec2) {
	r.addOriented(pts)
}

// addOriented adds the edges of the closed polygon pts, reversing the
// vertex order if needed so that all polygons have negative signed area.
func (r *Rasteriser) addOriented(pts []vec.Vec2) {
	n := len(pts)
	var area float64
	for i := range n {
		a, b := pts[i], pts[(i+1)%n]
		area += a.X*b.Y - b.X*a.Y
	}
	if area > 0 {
		for i := n - 1; i >= 0; i-- {
			r.addEdge(pts[i], pts[(i+n-1)%n])
		}
		return
	}
	for i := range n {
		r.addEdge(pts[i], pts[(i+1)%n])
	}
}

func unit(v vec.Vec2) vec.Vec2 {
	l := v.Length()
	if l == 0 {
		return vec.Vec2{X: 1}
	}
	return v.Mul(1 / l)
}
