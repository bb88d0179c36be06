package piechart_test

import (
	"strings"
	"testing"

	"github.com/goccy/go-json"
	"github.com/google/go-cmp/cmp"
	"github.com/pkg/errors"

	"seehuhn.de/go/piechart"
)

const demoYAML = `
title: BestTitle
borderWidth: 2
borderColor: blue
showValueLabels: true
labelColor: "#ffffff"
labelSize: 10
values: [5, 2, 10, 3]
`

func TestReadConfig(t *testing.T) {
	cfg, err := piechart.ReadConfig(strings.NewReader(demoYAML))
	if err != nil {
		t.Fatal(err)
	}
	want := piechart.Config{
		Style: piechart.Style{
			Title:           "BestTitle",
			BorderWidth:     2,
			BorderColor:     piechart.Blue,
			ShowValueLabels: true,
			LabelColor:      piechart.White,
			LabelSize:       10,
		},
		Values: []int{5, 2, 10, 3},
	}
	if d := cmp.Diff(want, cfg); d != "" {
		t.Errorf("config (-want +got):\n%s", d)
	}
}

func TestReadConfigDefaults(t *testing.T) {
	cfg, err := piechart.ReadConfig(strings.NewReader("values: [1]\npadding: {top: 8}\n"))
	if err != nil {
		t.Fatal(err)
	}
	want := piechart.DefaultConfig()
	want.Values = []int{1}
	want.Padding.Top = 8
	if d := cmp.Diff(want, cfg); d != "" {
		t.Errorf("config (-want +got):\n%s", d)
	}

	empty, err := piechart.ReadConfig(strings.NewReader(""))
	if err != nil {
		t.Fatal(err)
	}
	if d := cmp.Diff(piechart.DefaultConfig(), empty); d != "" {
		t.Errorf("empty config (-want +got):\n%s", d)
	}
}

func TestReadConfigErrors(t *testing.T) {
	cases := map[string]string{
		"negative":      "values: [1, -1]",
		"overflow":      "values: [9223372036854775807, 1]",
		"bad_color":     "borderColor: purplish",
		"bad_labelsize": "labelSize: -4",
	}
	for name, in := range cases {
		if _, err := piechart.ReadConfig(strings.NewReader(in)); !errors.Is(err, piechart.ErrInvalidInput) {
			t.Errorf("%s: got %v, want ErrInvalidInput", name, err)
		}
	}

	if _, err := piechart.ReadConfig(strings.NewReader("colour: red")); err == nil {
		t.Error("unknown field accepted")
	}
}

func TestConfigJSON(t *testing.T) {
	c := piechart.New()
	cfg := piechart.DefaultConfig()
	cfg.Title = "x"
	cfg.Values = []int{3, 4}
	if err := c.Configure(cfg); err != nil {
		t.Fatal(err)
	}

	data, err := json.Marshal(c.Config())
	if err != nil {
		t.Fatal(err)
	}
	var back piechart.Config
	if err := json.Unmarshal(data, &back); err != nil {
		t.Fatal(err)
	}
	if d := cmp.Diff(cfg, back); d != "" {
		t.Errorf("round trip (-want +got):\n%s", d)
	}
	if !strings.Contains(string(data), `"borderColor":"#ffffff"`) {
		t.Errorf("unexpected encoding %s", data)
	}
}
