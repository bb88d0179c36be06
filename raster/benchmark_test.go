package raster

import (
	"fmt"
	"image"
	"image/color"
	"math"
	"testing"

	"golang.org/x/image/vector"

	"seehuhn.de/go/geom/path"
	"seehuhn.de/go/geom/rect"
	"seehuhn.de/go/geom/vec"
)

var benchSweeps = []float64{90, 36, 180, 54}

// BenchmarkRasteriserPie fills the slices of a four-slice pie chart.
func BenchmarkRasteriserPie(b *testing.B) {
	for _, size := range []int{20, 200, 2000} {
		b.Run(fmt.Sprintf("%dx%d", size, size), func(b *testing.B) {
			clip := rect.Rect{URx: float64(size), URy: float64(size)}
			r := NewRasteriser(clip)
			dst := image.NewAlpha(image.Rect(0, 0, size, size))

			center := vec.Vec2{X: float64(size) / 2, Y: float64(size) / 2}
			radius := float64(size) * 0.45

			b.ReportAllocs()
			for b.Loop() {
				start := 270.0
				for _, sweep := range benchSweeps {
					r.Reset(clip)
					r.FillNonZero(Wedge(center, radius, start, sweep), func(y, xMin int, coverage []float32) {
						row := dst.Pix[y*dst.Stride+xMin:]
						for i, c := range coverage {
							row[i] = uint8(c * 255)
						}
					})
					start = math.Mod(start+sweep, 360)
				}
			}
		})
	}
}

// BenchmarkVectorPie draws the same slices with x/image/vector.
func BenchmarkVectorPie(b *testing.B) {
	for _, size := range []int{20, 200, 2000} {
		b.Run(fmt.Sprintf("%dx%d", size, size), func(b *testing.B) {
			z := vector.NewRasterizer(size, size)
			dst := image.NewAlpha(image.Rect(0, 0, size, size))
			src := image.NewUniform(color.Alpha{255})

			cx, cy := float32(size)/2, float32(size)/2
			radius := float32(size) * 0.45

			b.ReportAllocs()
			for b.Loop() {
				start := 270.0
				for _, sweep := range benchSweeps {
					z.Reset(size, size)
					addWedgeToVector(z, cx, cy, radius, start, sweep)
					z.Draw(dst, dst.Bounds(), src, image.Point{})
					start = math.Mod(start+sweep, 360)
				}
			}
		})
	}
}

func addWedgeToVector(z *vector.Rasterizer, cx, cy, radius float32, startDeg, sweepDeg float64) {
	p := Wedge(vec.Vec2{X: float64(cx), Y: float64(cy)}, float64(radius), startDeg, sweepDeg)
	pt := func(v vec.Vec2) (float32, float32) { return float32(v.X), float32(v.Y) }

	for cmd, pts := range p {
		switch cmd {
		case path.CmdMoveTo:
			z.MoveTo(pt(pts[0]))
		case path.CmdLineTo:
			z.LineTo(pt(pts[0]))
		case path.CmdCubeTo:
			x1, y1 := pt(pts[0])
			x2, y2 := pt(pts[1])
			x3, y3 := pt(pts[2])
			z.CubeTo(x1, y1, x2, y2, x3, y3)
		case path.CmdClose:
			z.ClosePath()
		}
	}
}
