package ggsurface

import (
	"image/color"
	"math"
	"testing"

	"seehuhn.de/go/piechart"
)

func near(a, b uint8) bool {
	d := int(a) - int(b)
	return d >= -2 && d <= 2
}

func TestPaint(t *testing.T) {
	s, err := New(120, 160)
	if err != nil {
		t.Fatal(err)
	}
	defer s.Close()

	c := piechart.New()
	style := piechart.DefaultStyle()
	style.Title = "Pie"
	style.LabelSize = 12
	style.BorderWidth = 1
	style.BorderColor = piechart.Black
	if err := c.Configure(piechart.Config{Style: style, Values: []int{1, 2, 3}}); err != nil {
		t.Fatal(err)
	}
	w, h := c.Measure(120, 160, s)
	if w != 120 || h <= 120 {
		t.Fatalf("measured %dx%d", w, h)
	}
	c.Paint(s)
	if err := s.Err(); err != nil {
		t.Fatal(err)
	}

	img := s.Image()
	l := c.Layout()
	for _, sl := range c.Slices() {
		bisector := (sl.StartAngle + sl.SweepAngle/2) * math.Pi / 180
		x := 60 + 35*math.Cos(bisector)
		y := 60 + 35*math.Sin(bisector) + l.TitleOffset
		got := color.NRGBAModel.Convert(img.At(int(x), int(y))).(color.NRGBA)
		want := sl.Color
		if !near(got.R, want.R) || !near(got.G, want.G) || !near(got.B, want.B) || got.A < 250 {
			t.Errorf("slice %d at (%.0f, %.0f): got %v, want %v", sl.Position, x, y, got, want)
		}
	}
}

func TestTextMetrics(t *testing.T) {
	s, err := New(10, 10)
	if err != nil {
		t.Fatal(err)
	}
	defer s.Close()

	if a := s.FontAscent(20); a < 12 || a > 22 {
		t.Errorf("ascent %g is implausible for a 20px font", a)
	}
	if w := s.MeasureTextWidth("10", 20); !(w > 0) {
		t.Errorf("width %g", w)
	}
	if s.MeasureTextWidth("10", 0) != 0 {
		t.Error("zero size text has a width")
	}
	s.FontAscent(20)
	if len(s.faces) != 1 {
		t.Errorf("%d faces cached, want 1", len(s.faces))
	}
}
