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
	"seehuhn.de/go/geom/rect"
	"seehuhn.de/go/geom/vec"
)

// Wedge returns the closed outline of a pie slice: a line from the centre
// to the start of the arc, the arc itself, and a line back to the centre.
//
// Angles are in degrees. Angle 0 points along the positive x-axis and
// angles increase towards the positive y-axis, which is clockwise on a
// screen where y points down. A negative sweep runs the arc backwards.
func Wedge(center vec.Vec2, radius, startDeg, sweepDeg float64) path.Path {
	return wedge(center, radius, startDeg, sweepDeg).Path()
}

// Arc returns the open circular arc from startDeg through sweepDeg,
// using the same angle convention as [Wedge].
func Arc(center vec.Vec2, radius, startDeg, sweepDeg float64) path.Path {
	start := startDeg * math.Pi / 180
	sweep := sweepDeg * math.Pi / 180

	b := &builder{}
	b.moveTo(polar(center, radius, start))
	b.arc(center, radius, start, sweep)
	return b.Path()
}

// WedgeInRect returns the outline of a pie slice of the ellipse inscribed
// in r. For a square r this is the same as [Wedge].
func WedgeInRect(r rect.Rect, startDeg, sweepDeg float64) path.Path {
	b := wedge(vec.Vec2{}, 1, startDeg, sweepDeg)

	// Bézier control points transform exactly under this affine map.
	c := vec.Vec2{X: (r.LLx + r.URx) / 2, Y: (r.LLy + r.URy) / 2}
	rx := (r.URx - r.LLx) / 2
	ry := (r.URy - r.LLy) / 2
	for _, seg := range b.segs {
		for i, v := range seg.pts {
			seg.pts[i] = vec.Vec2{X: c.X + rx*v.X, Y: c.Y + ry*v.Y}
		}
	}
	return b.Path()
}

func wedge(center vec.Vec2, radius, startDeg, sweepDeg float64) *builder {
	start := startDeg * math.Pi / 180
	sweep := sweepDeg * math.Pi / 180

	b := &builder{}
	b.moveTo(center)
	b.lineTo(polar(center, radius, start))
	b.arc(center, radius, start, sweep)
	b.close()
	return b
}

// segment is one path command together with its points.
type segment struct {
	cmd path.Command
	pts []vec.Vec2
}

// builder collects path segments.
type builder struct {
	segs []segment
}

func (b *builder) moveTo(p vec.Vec2) {
	b.segs = append(b.segs, segment{path.CmdMoveTo, []vec.Vec2{p}})
}

func (b *builder) lineTo(p vec.Vec2) {
	b.segs = append(b.segs, segment{path.CmdLineTo, []vec.Vec2{p}})
}

func (b *builder) cubeTo(p1, p2, p3 vec.Vec2) {
	b.segs = append(b.segs, segment{path.CmdCubeTo, []vec.Vec2{p1, p2, p3}})
}

func (b *builder) close() {
	b.segs = append(b.segs, segment{cmd: path.CmdClose})
}

// Path returns an iterator over the collected segments.
func (b *builder) Path() path.Path {
	return func(yield func(path.Command, []vec.Vec2) bool) {
		for _, seg := range b.segs {
			if !yield(seg.cmd, seg.pts) {
				return
			}
		}
	}
}

// arc adds cubic Bézier segments of at most 90° each, approximating the
// arc. The current point must be the start of the arc.
func (b *builder) arc(center vec.Vec2, radius, start, sweep float64) {
	if sweep == 0 || radius == 0 {
		return
	}
	// a full circle and more is drawn as one full circle
	sweep = max(min(sweep, 2*math.Pi), -2*math.Pi)

	// the tolerance keeps a sweep of 90° in a single segment despite
	// rounding in the degree conversion
	n := max(int(math.Ceil(math.Abs(sweep)/(math.Pi/2)-1e-9)), 1)
	step := sweep / float64(n)
	k := 4.0 / 3.0 * math.Tan(step/4)

	a0 := start
	for range n {
		a1 := a0 + step
		c0, s0 := math.Cos(a0), math.Sin(a0)
		c1, s1 := math.Cos(a1), math.Sin(a1)
		b.cubeTo(
			vec.Vec2{X: center.X + radius*(c0-k*s0), Y: center.Y + radius*(s0+k*c0)},
			vec.Vec2{X: center.X + radius*(c1+k*s1), Y: center.Y + radius*(s1-k*c1)},
			vec.Vec2{X: center.X + radius*c1, Y: center.Y + radius*s1},
		)
		a0 = a1
	}
}

func polar(center vec.Vec2, radius, angle float64) vec.Vec2 {
	return vec.Vec2{
		X: center.X + radius*math.Cos(angle),
		Y: center.Y + radius*math.Sin(angle),
	}
}
