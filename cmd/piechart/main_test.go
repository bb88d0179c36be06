package main

import (
	"bytes"
	"image"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/goccy/go-json"
	"github.com/pkg/errors"

	"seehuhn.de/go/piechart"
)

func TestRunTrace(t *testing.T) {
	var buf bytes.Buffer
	opts := options{width: 300, height: 500, density: 1, backend: "canvas", cols: 20, trace: true}
	if err := run(&buf, opts); err != nil {
		t.Fatal(err)
	}

	var ops []struct {
		Op         string  `json:"op"`
		SweepAngle float64 `json:"sweepAngle"`
		Text       string  `json:"text"`
	}
	if err := json.Unmarshal(buf.Bytes(), &ops); err != nil {
		t.Fatal(err)
	}
	var sweeps []float64
	for _, op := range ops {
		if op.Op == "fillArc" {
			sweeps = append(sweeps, op.SweepAngle)
		}
	}
	want := []float64{90, 36, 180, 54}
	if len(sweeps) != len(want) {
		t.Fatalf("sweeps %v, want %v", sweeps, want)
	}
	for i := range want {
		if d := sweeps[i] - want[i]; d > 1e-9 || d < -1e-9 {
			t.Errorf("sweep %d = %g, want %g", i, sweeps[i], want[i])
		}
	}
	if ops[0].Op != "drawText" || ops[0].Text != "BestTitle" {
		t.Errorf("first draw call is %+v", ops[0])
	}
}

func TestRunConfigFile(t *testing.T) {
	fname := filepath.Join(t.TempDir(), "chart.yaml")
	data := "values: [1, 3]\nordered: true\nborderWidth: 1\nborderColor: black\n"
	if err := os.WriteFile(fname, []byte(data), 0o644); err != nil {
		t.Fatal(err)
	}

	for _, backend := range []string{"canvas", "gg"} {
		var buf bytes.Buffer
		opts := options{config: fname, width: 64, height: 64, density: 1, backend: backend, cols: 16, table: true}
		if err := run(&buf, opts); err != nil {
			t.Fatalf("%s: %v", backend, err)
		}
		out := buf.String()
		for _, want := range []string{"▀", "270.0°", "90.0°", "#99cc00", "75.0%"} {
			if !strings.Contains(out, want) {
				t.Errorf("%s: %q missing from output", backend, want)
			}
		}
	}
}

func TestRunEmpty(t *testing.T) {
	fname := filepath.Join(t.TempDir(), "empty.yaml")
	if err := os.WriteFile(fname, []byte("values: [0, 0]\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	var buf bytes.Buffer
	opts := options{config: fname, width: 64, height: 64, density: 1, backend: "canvas", cols: 16}
	if err := run(&buf, opts); err != nil {
		t.Fatal(err)
	}
	if got := strings.TrimSpace(buf.String()); got != "(empty chart)" {
		t.Errorf("output %q", got)
	}
}

func TestRunErrors(t *testing.T) {
	fname := filepath.Join(t.TempDir(), "bad.yaml")
	if err := os.WriteFile(fname, []byte("values: [1, -1]\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	cases := []options{
		{config: fname, width: 64, height: 64, density: 1, backend: "canvas"},
		{config: filepath.Join(t.TempDir(), "missing.yaml"), backend: "canvas"},
		{width: 64, height: 64, density: 1, backend: "svg"},
	}
	for _, opts := range cases {
		if err := run(&bytes.Buffer{}, opts); err == nil {
			t.Errorf("%+v: no error", opts)
		}
	}
}

type failingCloser struct{ err error }

func (c failingCloser) Close() error { return c.err }

func TestCloseInto(t *testing.T) {
	errClose := errors.New("disk full")

	var err error
	closeInto(&err, failingCloser{}, "surface")
	if err != nil {
		t.Errorf("successful close gave %v", err)
	}

	closeInto(&err, failingCloser{errClose}, "surface")
	if !errors.Is(err, errClose) {
		t.Errorf("got %v, want the close error", err)
	}

	// an earlier error is kept
	earlier := errors.New("painting")
	err = earlier
	closeInto(&err, failingCloser{errClose}, "surface")
	if err != earlier {
		t.Errorf("got %v, want the earlier error", err)
	}
}

func TestPreview(t *testing.T) {
	img := image.NewRGBA(image.Rect(0, 0, 40, 80))
	for y := range 40 {
		for x := range 40 {
			img.Set(x, y, piechart.Red)
		}
	}
	out := preview(img, 10)
	lines := strings.Split(out, "\n")
	if len(lines) != 10 {
		t.Errorf("%d lines, want 10", len(lines))
	}
	for _, line := range lines {
		if n := strings.Count(line, "▀"); n != 10 {
			t.Errorf("line has %d cells, want 10", n)
		}
	}
	if preview(img, 0) != "" {
		t.Error("zero columns gave output")
	}
}
