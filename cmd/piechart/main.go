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

// Command piechart configures a pie chart, measures and paints it, and
// shows the result in the terminal.
//
// Usage:
//
//	piechart [-config chart.yaml] [-width 1080] [-height 1920] [-density 2.625]
//	         [-backend canvas|gg] [-cols 48] [-table] [-trace] [-v]
//
// Without -config, a demo chart with the values 5, 2, 10 and 3 is shown.
package main

import (
	"flag"
	"fmt"
	"image"
	"io"
	"log/slog"
	"os"

	"github.com/goccy/go-json"
	"github.com/pkg/errors"

	"seehuhn.de/go/piechart"
	"seehuhn.de/go/piechart/canvas"
	"seehuhn.de/go/piechart/ggsurface"
)

type options struct {
	config  string
	width   int
	height  int
	density float64
	backend string
	cols    int
	table   bool
	trace   bool
	verbose bool
}

func main() {
	var opts options
	flag.StringVar(&opts.config, "config", "", "YAML chart configuration `file`")
	flag.IntVar(&opts.width, "width", 1080, "available width in pixels")
	flag.IntVar(&opts.height, "height", 1920, "available height in pixels")
	flag.Float64Var(&opts.density, "density", 2.625, "pixels per dp and per sp")
	flag.StringVar(&opts.backend, "backend", "canvas", "drawing backend, canvas or gg")
	flag.IntVar(&opts.cols, "cols", 48, "width of the terminal preview in characters")
	flag.BoolVar(&opts.table, "table", false, "print a table of the slices")
	flag.BoolVar(&opts.trace, "trace", false, "print the draw calls as JSON instead of the preview")
	flag.BoolVar(&opts.verbose, "v", false, "log measurement and painting")
	flag.Parse()

	level := slog.LevelWarn
	if opts.verbose {
		level = slog.LevelDebug
	}
	piechart.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level})))

	if err := run(os.Stdout, opts); err != nil {
		fmt.Fprintln(os.Stderr, "piechart:", err)
		os.Exit(1)
	}
}

// demoConfig is the chart shown when no configuration file is given.
func demoConfig() piechart.Config {
	return piechart.Config{
		Style: piechart.Style{
			Title:           "BestTitle",
			BorderWidth:     2,
			BorderColor:     piechart.Blue,
			ShowValueLabels: true,
			Ordered:         false,
			LabelColor:      piechart.White,
			LabelSize:       10,
		},
		Values: []int{5, 2, 10, 3},
	}
}

func loadConfig(fname string) (piechart.Config, error) {
	if fname == "" {
		return demoConfig(), nil
	}
	f, err := os.Open(fname)
	if err != nil {
		return piechart.Config{}, err
	}
	defer f.Close()
	cfg, err := piechart.ReadConfig(f)
	if err != nil {
		return piechart.Config{}, errors.Wrap(err, fname)
	}
	return cfg, nil
}

// surface is a drawing backend which can show its result.
type surface interface {
	piechart.Surface
	io.Closer
	Image() image.Image
}

type canvasSurface struct {
	*canvas.Surface
}

func (s canvasSurface) Image() image.Image {
	return s.Surface.Image()
}

func newSurface(backend string, width, height int) (surface, error) {
	switch backend {
	case "canvas":
		s, err := canvas.New(width, height)
		if err != nil {
			return nil, err
		}
		return canvasSurface{s}, nil
	case "gg":
		return ggsurface.New(width, height)
	default:
		return nil, errors.Errorf("unknown backend %q", backend)
	}
}

// closeInto closes c and, if this fails and *err is still nil, stores the
// failure in *err.
func closeInto(err *error, c io.Closer, what string) {
	if cerr := c.Close(); cerr != nil && *err == nil {
		*err = errors.Wrapf(cerr, "closing %s", what)
	}
}

func run(w io.Writer, opts options) (err error) {
	cfg, err := loadConfig(opts.config)
	if err != nil {
		return err
	}

	dm := piechart.DisplayMetrics{Density: opts.density, ScaledDensity: opts.density}
	chart := piechart.New(piechart.WithDisplayMetrics(dm))
	if err := chart.Configure(cfg); err != nil {
		return errors.Wrap(err, "configuring chart")
	}

	// Text is measured with the fonts of the backend, before the size of
	// the final surface is known.
	width, height, err := measure(chart, opts)
	if err != nil {
		return err
	}
	if width == 0 || height == 0 {
		fmt.Fprintln(w, "(empty chart)")
		return nil
	}

	s, err := newSurface(opts.backend, width, height)
	if err != nil {
		return err
	}
	defer closeInto(&err, s, "surface")

	rec := piechart.NewRecorder(s)
	chart.Paint(rec)
	rec.Playback(s)
	if gs, ok := s.(*ggsurface.Surface); ok && gs.Err() != nil {
		return errors.Wrap(gs.Err(), "painting")
	}

	if opts.trace {
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(rec.Ops)
	}

	fmt.Fprintln(w, preview(s.Image(), opts.cols))
	if opts.table {
		return writeTable(w, chart)
	}
	return nil
}

// measure sizes the chart using the text metrics of a 1x1 surface of the
// selected backend.
func measure(chart *piechart.Chart, opts options) (width, height int, err error) {
	m, err := newSurface(opts.backend, 1, 1)
	if err != nil {
		return 0, 0, err
	}
	defer closeInto(&err, m, "measuring surface")
	width, height = chart.Measure(opts.width, opts.height, m)
	return width, height, nil
}
