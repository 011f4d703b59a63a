package star

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/floats"
)

// Grid is the fixed radial mesh, in natural units, starting at the center.
type Grid []float64

// NewGrid builds a uniform grid of points values spanning [0, rMax].
func NewGrid(points int, rMax float64) (Grid, error) {
	if points < 2 {
		return nil, fmt.Errorf("%w: need at least 2 points, got %d", ErrBadGrid, points)
	}
	if rMax <= 0 {
		return nil, fmt.Errorf("%w: r-max %g", ErrBadGrid, rMax)
	}
	g := make(Grid, points)
	floats.Span(g, 0, rMax)
	return g, nil
}

// Step returns the grid spacing.
func (g Grid) Step() float64 {
	return g[1] - g[0]
}

// Validate checks uniform spacing and strict monotonicity.
func (g Grid) Validate() error {
	if len(g) < 2 {
		return fmt.Errorf("%w: %d points", ErrBadGrid, len(g))
	}
	if g[0] != 0 {
		return fmt.Errorf("%w: starts at %g", ErrBadGrid, g[0])
	}
	h := g.Step()
	if h <= 0 {
		return fmt.Errorf("%w: step %g", ErrBadGrid, h)
	}
	for i := 1; i < len(g); i++ {
		d := g[i] - g[i-1]
		if d <= 0 || math.Abs(d-h) > 1e-9*h {
			return fmt.Errorf("%w: spacing %g at index %d", ErrBadGrid, d, i)
		}
	}
	return nil
}
