package testcases

import "seehuhn.de/go/piechart"

var styleCases = []TestCase{
	{
		Name: "demo",
		Config: piechart.Config{
			Style: piechart.Style{
				Title:           "BestTitle",
				BorderWidth:     2,
				BorderColor:     piechart.Blue,
				ShowValueLabels: true,
				LabelColor:      piechart.White,
				LabelSize:       10,
			},
			Values: []int{5, 2, 10, 3},
		},
		Width:   1080,
		Height:  1920,
		Density: 2.625,
		Order:   []int{5, 2, 10, 3},
		Sweeps:  []float64{90, 36, 180, 54},
	},
	{
		Name:   "title",
		Config: titled(config(1, 3), "Share"),
		Width:  200,
		Height: 300,
		Order:  []int{1, 3},
		Sweeps: []float64{90, 270},
	},
	{
		Name:   "border",
		Config: bordered(config(2, 2), 4),
		Width:  128,
		Height: 128,
		Order:  []int{2, 2},
		Sweeps: []float64{180, 180},
	},
	{
		Name:   "labels",
		Config: labelled(config(6, 3, 3)),
		Width:  256,
		Height: 256,
		Order:  []int{6, 3, 3},
		Sweeps: []float64{180, 90, 90},
	},
	{
		Name: "padding",
		Config: padded(config(1, 1), piechart.Padding{
			Top: 10, Right: 20, Bottom: 10, Left: 20,
		}),
		Width:  200,
		Height: 240,
		Order:  []int{1, 1},
		Sweeps: []float64{180, 180},
	},
	{
		Name:    "high_density",
		Config:  bordered(titled(labelled(config(1, 2, 3)), "Dense"), 1),
		Width:   300,
		Height:  300,
		Density: 3,
		Order:   []int{1, 2, 3},
		Sweeps:  []float64{60, 120, 180},
	},
}

func ordered(cfg piechart.Config) piechart.Config {
	cfg.Ordered = true
	return cfg
}

func titled(cfg piechart.Config, title string) piechart.Config {
	cfg.Title = title
	return cfg
}

func bordered(cfg piechart.Config, width float64) piechart.Config {
	cfg.BorderWidth = width
	cfg.BorderColor = piechart.Black
	return cfg
}

func labelled(cfg piechart.Config) piechart.Config {
	cfg.ShowValueLabels = true
	cfg.LabelSize = 12
	return cfg
}

func padded(cfg piechart.Config, p piechart.Padding) piechart.Config {
	cfg.Padding = p
	return cfg
}
