package costmodel

import (
	"fmt"
	"math"
	"slices"
	"strconv"

	"github.com/katalvlaran/lvtsp/matrix"
)

// Point is a planar location.
type Point struct {
	X float64 `yaml:"x"`
	Y float64 `yaml:"y"`
}

// Euclidean is a Model over planar points with straight-line costs.
// Directed pairs can be blocked, which makes the model asymmetric.
// Costs are precomputed into a dense table at construction time.
type Euclidean struct {
	points []Point
	names  []string
	costs  *matrix.Dense
}

var (
	_ Model = (*Euclidean)(nil)
	_ Named = (*Euclidean)(nil)
)

// EuclideanOption customizes NewEuclidean.
type EuclideanOption func(*euclideanConfig)

type euclideanConfig struct {
	names   []string
	blocked [][2]int
}

// WithNames attaches location names (len must equal the number of points).
func WithNames(names []string) EuclideanOption {
	return func(c *euclideanConfig) { c.names = names }
}

// WithBlocked marks the directed pair from → to as infeasible.
func WithBlocked(from, to int) EuclideanOption {
	return func(c *euclideanConfig) { c.blocked = append(c.blocked, [2]int{from, to}) }
}

// NewEuclidean builds a Euclidean model.
//
// Errors: ErrEmptyModel, ErrNaNCost (NaN coordinate), ErrNamesMismatch,
// ErrLocationRange (blocked pair out of range).
//
// Complexity: O(N²) time and memory.
func NewEuclidean(points []Point, opts ...EuclideanOption) (*Euclidean, error) {
	if len(points) == 0 {
		return nil, ErrEmptyModel
	}
	var cfg euclideanConfig
	for _, opt := range opts {
		opt(&cfg)
	}
	n := len(points)
	if err := checkNames(cfg.names, n); err != nil {
		return nil, err
	}

	var i, j int
	for i = range points {
		if math.IsNaN(points[i].X) || math.IsNaN(points[i].Y) {
			return nil, fmt.Errorf("point %d: %w", i, ErrNaNCost)
		}
	}

	costs, err := matrix.NewFilled(n, n, math.Inf(1))
	if err != nil {
		return nil, err
	}
	var row []float64
	for i = 0; i < n; i++ {
		row = costs.Row(i)
		for j = 0; j < n; j++ {
			if i != j {
				row[j] = math.Hypot(points[j].X-points[i].X, points[j].Y-points[i].Y)
			}
		}
	}
	for _, b := range cfg.blocked {
		if b[0] < 0 || b[0] >= n || b[1] < 0 || b[1] >= n {
			return nil, fmt.Errorf("blocked pair %v: %w", b, ErrLocationRange)
		}
		costs.Row(b[0])[b[1]] = math.Inf(1)
	}

	pts := make([]Point, n)
	copy(pts, points)

	return &Euclidean{points: pts, names: slices.Clone(cfg.names), costs: costs}, nil
}

// Len reports the number of locations.
func (e *Euclidean) Len() int { return len(e.points) }

// Cost returns the straight-line distance, or +Inf for blocked pairs and self.
func (e *Euclidean) Cost(from, to int) float64 { return e.costs.Row(from)[to] }

// Point returns the coordinates of location i.
func (e *Euclidean) Point(i int) Point { return e.points[i] }

// Name returns the configured name of location i, or its index.
func (e *Euclidean) Name(i int) string {
	if e.names == nil {
		return strconv.Itoa(i)
	}

	return e.names[i]
}
