package star

import (
	"errors"
	"math"
	"testing"
)

func TestNewGrid(t *testing.T) {
	g, err := NewGrid(1501, 15)
	if err != nil {
		t.Fatal(err)
	}
	if len(g) != 1501 {
		t.Fatalf("expected 1501 points, got %d", len(g))
	}
	if g[0] != 0 {
		t.Errorf("grid should start at 0, got %g", g[0])
	}
	if math.Abs(g[len(g)-1]-15) > 1e-9 {
		t.Errorf("grid should end at 15, got %g", g[len(g)-1])
	}
	if math.Abs(g.Step()-0.01) > 1e-12 {
		t.Errorf("step: got %g, expected 0.01", g.Step())
	}
	if err := g.Validate(); err != nil {
		t.Errorf("fresh grid should validate: %v", err)
	}
}

func TestNewGrid_Invalid(t *testing.T) {
	if _, err := NewGrid(1, 15); !errors.Is(err, ErrBadGrid) {
		t.Errorf("expected ErrBadGrid for 1 point, got %v", err)
	}
	if _, err := NewGrid(100, 0); !errors.Is(err, ErrBadGrid) {
		t.Errorf("expected ErrBadGrid for zero r-max, got %v", err)
	}
	if _, err := NewGrid(100, -5); !errors.Is(err, ErrBadGrid) {
		t.Errorf("expected ErrBadGrid for negative r-max, got %v", err)
	}
}

func TestGridValidate(t *testing.T) {
	cases := []struct {
		name string
		g    Grid
	}{
		{"too short", Grid{0}},
		{"nonzero start", Grid{1, 2, 3}},
		{"decreasing", Grid{0, 2, 1}},
		{"nonuniform", Grid{0, 1, 3}},
		{"duplicate", Grid{0, 1, 1}},
	}
	for _, tc := range cases {
		if err := tc.g.Validate(); !errors.Is(err, ErrBadGrid) {
			t.Errorf("%s: expected ErrBadGrid, got %v", tc.name, err)
		}
	}
}
