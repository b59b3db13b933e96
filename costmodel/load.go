package costmodel

import (
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"
)

// Instance is the on-disk description of a problem instance.
//
// Exactly one of Costs or Points must be set. YAML's ".inf" literal denotes
// an infeasible pair in Costs. Blocked only applies to Points.
//
//	name: four-cities
//	names: [A, B, C, D]
//	costs:
//	  - [.inf, 10, 15, 20]
//	  - [5, .inf, 9, 10]
//	  - [6, 13, .inf, 12]
//	  - [8, 8, 9, .inf]
type Instance struct {
	Name    string      `yaml:"name"`
	Names   []string    `yaml:"names"`
	Costs   [][]float64 `yaml:"costs"`
	Points  []Point     `yaml:"points"`
	Blocked [][]int     `yaml:"blocked"`
}

// Build turns the description into a Model.
func (in Instance) Build() (Model, error) {
	switch {
	case len(in.Costs) > 0 && len(in.Points) == 0:
		return FromRows(in.Costs, in.Names)
	case len(in.Points) > 0 && len(in.Costs) == 0:
		opts := []EuclideanOption{WithNames(in.Names)}
		for i, b := range in.Blocked {
			if len(b) != 2 {
				return nil, fmt.Errorf("blocked entry %d has %d indices, want 2: %w", i, len(b), ErrInstanceFormat)
			}
			opts = append(opts, WithBlocked(b[0], b[1]))
		}
		return NewEuclidean(in.Points, opts...)
	default:
		return nil, ErrInstanceFormat
	}
}

// LoadYAML decodes an Instance from r and builds its Model.
func LoadYAML(r io.Reader) (Model, error) {
	var in Instance
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&in); err != nil {
		return nil, fmt.Errorf("decode instance: %w", err)
	}
	m, err := in.Build()
	if err != nil {
		return nil, fmt.Errorf("build instance %q: %w", in.Name, err)
	}

	return m, nil
}

// LoadFile opens path and delegates to LoadYAML.
func LoadFile(path string) (Model, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open instance: %w", err)
	}
	defer f.Close()

	return LoadYAML(f)
}
