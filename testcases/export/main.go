// Command export writes the chart scenarios to testdata/, one YAML
// configuration per scenario, together with a JSON index listing the
// expected sweep angles. The YAML files can be passed to cmd/piechart.
// Run from the module root directory.
package main

import (
	"maps"
	"os"
	"path/filepath"
	"slices"

	"github.com/goccy/go-json"
	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"

	"seehuhn.de/go/piechart/testcases"
)

const outDir = "testdata/scenarios"

type jsonTestCase struct {
	Name    string    `json:"name"`
	File    string    `json:"file"`
	Width   int       `json:"width"`
	Height  int       `json:"height"`
	Density float64   `json:"density"`
	Order   []int     `json:"order"`
	Sweeps  []float64 `json:"sweeps"`
}

func main() {
	if err := run(); err != nil {
		os.Stderr.WriteString("export: " + err.Error() + "\n")
		os.Exit(1)
	}
}

func run() error {
	if err := os.MkdirAll(outDir, 0o755); err != nil {
		return err
	}

	var index struct {
		TestCases []jsonTestCase `json:"testcases"`
	}
	for _, category := range slices.Sorted(maps.Keys(testcases.All)) {
		for _, tc := range testcases.All[category] {
			name := category + "_" + tc.Name
			file := name + ".yaml"
			if err := writeYAML(filepath.Join(outDir, file), tc); err != nil {
				return errors.Wrap(err, name)
			}
			index.TestCases = append(index.TestCases, jsonTestCase{
				Name:    name,
				File:    file,
				Width:   tc.Width,
				Height:  tc.Height,
				Density: tc.Metrics().Density,
				Order:   tc.Order,
				Sweeps:  tc.Sweeps,
			})
		}
	}

	f, err := os.Create(filepath.Join(outDir, "index.json"))
	if err != nil {
		return err
	}
	defer f.Close()

	enc := json.NewEncoder(f)
	enc.SetIndent("", "  ")
	return enc.Encode(index)
}

func writeYAML(fname string, tc testcases.TestCase) error {
	f, err := os.Create(fname)
	if err != nil {
		return err
	}
	enc := yaml.NewEncoder(f)
	enc.SetIndent(2)
	err = enc.Encode(tc.Config)
	if err2 := enc.Close(); err == nil {
		err = err2
	}
	if err2 := f.Close(); err == nil {
		err = err2
	}
	return err
}
