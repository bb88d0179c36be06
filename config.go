package piechart

import (
	"io"

	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"
)

// Config is the complete configuration of a chart: its style and its
// values. Configurations can be read from YAML files:
//
//	title: BestTitle
//	borderWidth: 2
//	borderColor: blue
//	showValueLabels: true
//	labelColor: "#ffffff"
//	labelSize: 10
//	values: [5, 2, 10, 3]
type Config struct {
	Style  `yaml:",inline"`
	Values []int `yaml:"values" json:"values"`
}

// DefaultConfig returns a configuration with the default style and no
// values.
func DefaultConfig() Config {
	return Config{Style: DefaultStyle()}
}

// ReadConfig decodes a YAML configuration from r. Fields missing from the
// input keep their default values. Unknown fields are an error.
func ReadConfig(r io.Reader) (Config, error) {
	cfg := DefaultConfig()
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&cfg); err != nil && err != io.EOF {
		return Config{}, errors.Wrap(err, "decoding chart configuration")
	}
	if err := cfg.Style.validate(); err != nil {
		return Config{}, err
	}
	if _, err := NewSeries(cfg.Values); err != nil {
		return Config{}, err
	}
	return cfg, nil
}
