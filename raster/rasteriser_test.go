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
	"slices"
	"testing"

	"seehuhn.de/go/geom/matrix"
	"seehuhn.de/go/geom/path"
	"seehuhn.de/go/geom/rect"
	"seehuhn.de/go/geom/vec"
	"seehuhn.de/go/pdf/graphics"
)

// The triangle (0,0)→(10,0)→(10,1)→close has a diagonal edge y = x/10.
// Each pixel X should have coverage (2X+1)/20: 0.05, 0.15, ..., 0.95.
func TestTriangleCoverage(t *testing.T) {
	triangle := polygon(
		vec.Vec2{X: 0, Y: 0},
		vec.Vec2{X: 10, Y: 0},
		vec.Vec2{X: 10, Y: 1},
	)

	r := NewRasteriser(rect.Rect{LLx: 0, LLy: 0, URx: 10, URy: 1})

	coverage := make([]float32, 10)
	r.FillNonZero(triangle, func(y, xMin int, cov []float32) {
		if y == 0 {
			copy(coverage[xMin:], cov)
		}
	})

	const epsilon = 1e-6
	for x := range 10 {
		expected := float32(2*x+1) / 20
		if math.Abs(float64(coverage[x]-expected)) > epsilon {
			t.Errorf("pixel %d: expected coverage %.4f, got %.4f", x, expected, coverage[x])
		}
	}
}

func TestFillArea(t *testing.T) {
	center := vec.Vec2{X: 32, Y: 32}
	cases := []struct {
		name string
		path path.Path
		area float64
		tol  float64
	}{
		{
			name: "square",
			path: polygon(
				vec.Vec2{X: 10.5, Y: 10.5},
				vec.Vec2{X: 30.5, Y: 10.5},
				vec.Vec2{X: 30.5, Y: 30.5},
				vec.Vec2{X: 10.5, Y: 30.5},
			),
			area: 400,
			tol:  1e-3,
		},
		{
			name: "unclosed_square",
			path: polyline(
				vec.Vec2{X: 10, Y: 10},
				vec.Vec2{X: 30, Y: 10},
				vec.Vec2{X: 30, Y: 30},
				vec.Vec2{X: 10, Y: 30},
			),
			area: 400,
			tol:  1e-3,
		},
		{
			name: "full_wedge",
			path: Wedge(center, 20, 270, 360),
			area: math.Pi * 400,
			tol:  0.02 * math.Pi * 400, // inscribed polygon
		},
		{
			name: "quarter_wedge",
			path: Wedge(center, 20, 270, 90),
			area: math.Pi * 100,
			tol:  0.02 * math.Pi * 100,
		},
		{
			name: "negative_sweep",
			path: Wedge(center, 20, 0, -90),
			area: math.Pi * 100,
			tol:  0.02 * math.Pi * 100,
		},
		{
			name: "zero_sweep",
			path: Wedge(center, 20, 45, 0),
			area: 0,
			tol:  1e-6,
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			r := NewRasteriser(rect.Rect{URx: 64, URy: 64})
			got := totalCoverage(func(emit EmitFunc) { r.FillNonZero(tc.path, emit) })
			if math.Abs(got-tc.area) > tc.tol {
				t.Errorf("area = %.3f, want %.3f", got, tc.area)
			}
		})
	}
}

func TestFillClip(t *testing.T) {
	// a square which extends past the left and top of the clip
	sq := polygon(
		vec.Vec2{X: -10, Y: -10},
		vec.Vec2{X: 5, Y: -10},
		vec.Vec2{X: 5, Y: 5},
		vec.Vec2{X: -10, Y: 5},
	)

	r := NewRasteriser(rect.Rect{URx: 16, URy: 16})
	r.FillNonZero(sq, func(y, xMin int, coverage []float32) {
		if y < 0 || y >= 5 {
			t.Errorf("row %d outside of the shape", y)
		}
		if xMin != 0 || len(coverage) != 5 {
			t.Errorf("row %d: got xMin=%d, len=%d", y, xMin, len(coverage))
		}
		for i, c := range coverage {
			if math.Abs(float64(c)-1) > 1e-6 {
				t.Errorf("pixel (%d,%d): coverage %f", xMin+i, y, c)
			}
		}
	})
}

func TestFillCTM(t *testing.T) {
	unitSquare := polygon(
		vec.Vec2{X: 0, Y: 0},
		vec.Vec2{X: 1, Y: 0},
		vec.Vec2{X: 1, Y: 1},
		vec.Vec2{X: 0, Y: 1},
	)

	r := NewRasteriser(rect.Rect{URx: 32, URy: 32})
	r.CTM = matrix.Matrix{8, 0, 0, 8, 4, 4}
	got := totalCoverage(func(emit EmitFunc) { r.FillNonZero(unitSquare, emit) })
	if math.Abs(got-64) > 1e-3 {
		t.Errorf("area = %.3f, want 64", got)
	}
}

func TestStrokeLine(t *testing.T) {
	line := polyline(vec.Vec2{X: 10, Y: 16}, vec.Vec2{X: 50, Y: 16})

	caps := []struct {
		cap  graphics.LineCapStyle
		area float64
		tol  float64
	}{
		{graphics.LineCapButt, 40 * 4, 1e-3},
		{graphics.LineCapSquare, 44 * 4, 1e-3},
		{graphics.LineCapRound, 40*4 + 4*math.Pi, 1.5},
	}
	for _, tc := range caps {
		t.Run(tc.cap.String(), func(t *testing.T) {
			r := NewRasteriser(rect.Rect{URx: 64, URy: 32})
			r.Width = 4
			r.Cap = tc.cap
			got := totalCoverage(func(emit EmitFunc) { r.Stroke(line, emit) })
			if math.Abs(got-tc.area) > tc.tol {
				t.Errorf("area = %.3f, want %.3f", got, tc.area)
			}
		})
	}
}

func TestStrokeClosedSquare(t *testing.T) {
	sq := polygon(
		vec.Vec2{X: 10, Y: 10},
		vec.Vec2{X: 30, Y: 10},
		vec.Vec2{X: 30, Y: 30},
		vec.Vec2{X: 10, Y: 30},
	)

	// With miter joins the outline is exactly the difference of two squares.
	r := NewRasteriser(rect.Rect{URx: 40, URy: 40})
	r.Width = 2
	r.Join = graphics.LineJoinMiter
	got := totalCoverage(func(emit EmitFunc) { r.Stroke(sq, emit) })
	want := 22.0*22 - 18*18
	if math.Abs(got-want) > 1e-3 {
		t.Errorf("miter: area = %.3f, want %.3f", got, want)
	}

	// Bevel joins cut a triangle of area 1/2 off each corner.
	r.Join = graphics.LineJoinBevel
	got = totalCoverage(func(emit EmitFunc) { r.Stroke(sq, emit) })
	if math.Abs(got-(want-2)) > 1e-3 {
		t.Errorf("bevel: area = %.3f, want %.3f", got, want-2)
	}
}

func TestStrokeDegenerate(t *testing.T) {
	dot := polyline(vec.Vec2{X: 8, Y: 8}, vec.Vec2{X: 8, Y: 8})

	r := NewRasteriser(rect.Rect{URx: 16, URy: 16})
	r.Width = 4
	if got := totalCoverage(func(emit EmitFunc) { r.Stroke(dot, emit) }); got != 0 {
		t.Errorf("butt cap: area = %.3f, want 0", got)
	}

	r.Cap = graphics.LineCapRound
	got := totalCoverage(func(emit EmitFunc) { r.Stroke(dot, emit) })
	if math.Abs(got-4*math.Pi) > 1.5 {
		t.Errorf("round cap: area = %.3f, want %.3f", got, 4*math.Pi)
	}

	r.Width = 0
	if got := totalCoverage(func(emit EmitFunc) { r.Stroke(dot, emit) }); got != 0 {
		t.Errorf("zero width: area = %.3f, want 0", got)
	}
}

func TestReset(t *testing.T) {
	r := NewRasteriser(rect.Rect{URx: 4, URy: 4})
	r.Width = 7
	r.Cap = graphics.LineCapRound
	r.CTM = matrix.Matrix{2, 0, 0, 2, 0, 0}

	clip := rect.Rect{URx: 8, URy: 8}
	r.Reset(clip)
	if r.Width != 1 || r.Cap != graphics.LineCapButt || r.CTM != matrix.Identity || r.Clip != clip {
		t.Errorf("Reset did not restore the defaults: %+v", r)
	}
}

func totalCoverage(run func(EmitFunc)) float64 {
	var sum float64
	run(func(y, xMin int, coverage []float32) {
		for _, c := range coverage {
			sum += float64(c)
		}
	})
	return sum
}

func TestWedgeInRect(t *testing.T) {
	b := rect.Rect{LLx: 4, LLy: 10, URx: 60, URy: 38}
	r := NewRasteriser(rect.Rect{URx: 64, URy: 64})

	full := totalCoverage(func(emit EmitFunc) {
		r.FillNonZero(WedgeInRect(b, 270, 360), emit)
	})
	want := math.Pi * 28 * 14
	if math.Abs(full-want) > 0.02*want {
		t.Errorf("ellipse area = %g, want %g", full, want)
	}

	// the quarter from 12 o'clock to 3 o'clock lies in the top right
	var pts []vec.Vec2
	for _, seg := range WedgeInRect(b, 270, 90) {
		pts = append(pts, seg...)
	}
	for _, v := range pts {
		if v.X < 32-1e-9 || v.Y > 24+1e-9 {
			t.Errorf("point %v outside the top right quadrant", v)
		}
	}
	if pts[0] != (vec.Vec2{X: 32, Y: 24}) {
		t.Errorf("wedge starts at %v, want the centre", pts[0])
	}
}

func TestWedgeCommands(t *testing.T) {
	center := vec.Vec2{X: 10, Y: 10}

	var cmds []path.Command
	for cmd, pts := range Wedge(center, 5, 270, 180) {
		cmds = append(cmds, cmd)
		want := map[path.Command]int{
			path.CmdMoveTo: 1, path.CmdLineTo: 1, path.CmdCubeTo: 3, path.CmdClose: 0,
		}[cmd]
		if len(pts) != want {
			t.Errorf("%v has %d points, want %d", cmd, len(pts), want)
		}
	}
	want := []path.Command{
		path.CmdMoveTo, path.CmdLineTo, path.CmdCubeTo, path.CmdCubeTo, path.CmdClose,
	}
	if !slices.Equal(cmds, want) {
		t.Errorf("commands %v, want %v", cmds, want)
	}

	// iteration stops when the consumer stops
	n := 0
	for range Wedge(center, 5, 0, 360) {
		n++
		break
	}
	if n != 1 {
		t.Errorf("iterated %d times after break", n)
	}

	// an open arc has no radii and no close
	var arcCmds []path.Command
	for cmd := range Arc(center, 5, 0, 90) {
		arcCmds = append(arcCmds, cmd)
	}
	if !slices.Equal(arcCmds, []path.Command{path.CmdMoveTo, path.CmdCubeTo}) {
		t.Errorf("arc commands %v", arcCmds)
	}
}

// polygon returns a closed path through the given points.
func polygon(pts ...vec.Vec2) path.Path {
	return func(yield func(path.Command, []vec.Vec2) bool) {
		if !yieldPoints(yield, pts) {
			return
		}
		yield(path.CmdClose, nil)
	}
}

// polyline returns an open path through the given points.
func polyline(pts ...vec.Vec2) path.Path {
	return func(yield func(path.Command, []vec.Vec2) bool) {
		yieldPoints(yield, pts)
	}
}

func yieldPoints(yield func(path.Command, []vec.Vec2) bool, pts []vec.Vec2) bool {
	for i, p := range pts {
		cmd := path.CmdLineTo
		if i == 0 {
			cmd = path.CmdMoveTo
		}
		if !yield(cmd, []vec.Vec2{p}) {
			return false
		}
	}
	return true
}
