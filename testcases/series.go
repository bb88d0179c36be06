package testcases

var seriesCases = []TestCase{
	{
		Name:   "four_values",
		Config: config(5, 2, 10, 3),
		Width:  300,
		Height: 400,
		Order:  []int{5, 2, 10, 3},
		Sweeps: []float64{90, 36, 180, 54},
	},
	{
		Name:   "single_value",
		Config: config(7),
		Width:  200,
		Height: 200,
		Order:  []int{7},
		Sweeps: []float64{360},
	},
	{
		Name:   "equal_thirds",
		Config: config(1, 1, 1),
		Width:  240,
		Height: 120,
		Order:  []int{1, 1, 1},
		Sweeps: []float64{120, 120, 120},
	},
	{
		Name:   "with_zero",
		Config: config(3, 0, 1),
		Width:  100,
		Height: 100,
		Order:  []int{3, 0, 1},
		Sweeps: []float64{270, 0, 90},
	},
	{
		Name:   "more_than_palette",
		Config: config(1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1),
		Width:  360,
		Height: 360,
		Order:  []int{1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1},
		Sweeps: []float64{30, 30, 30, 30, 30, 30, 30, 30, 30, 30, 30, 30},
	},
}

var orderedCases = []TestCase{
	{
		Name:   "four_values",
		Config: ordered(config(5, 2, 10, 3)),
		Width:  300,
		Height: 400,
		Order:  []int{2, 3, 5, 10},
		Sweeps: []float64{36, 54, 90, 180},
	},
	{
		Name:   "already_sorted",
		Config: ordered(config(1, 2, 3, 4)),
		Width:  200,
		Height: 200,
		Order:  []int{1, 2, 3, 4},
		Sweeps: []float64{36, 72, 108, 144},
	},
	{
		Name:   "duplicates",
		Config: ordered(config(4, 1, 4, 1)),
		Width:  200,
		Height: 200,
		Order:  []int{1, 1, 4, 4},
		Sweeps: []float64{36, 36, 144, 144},
	},
}

var emptyCases = []TestCase{
	{
		Name:   "no_values",
		Config: config(),
		Width:  300,
		Height: 300,
	},
	{
		Name:   "all_zero",
		Config: config(0, 0, 0),
		Width:  300,
		Height: 300,
	},
	{
		Name:   "empty_with_title",
		Config: titled(config(), "Nothing"),
		Width:  300,
		Height: 300,
	},
}
