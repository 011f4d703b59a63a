package star

import (
	"errors"
	"testing"

	"github.com/san-kum/tovstar/internal/eos"
)

func testGradients() gradients {
	return gradients{eos: eos.New(eos.DefaultConstants())}
}

func TestGradients_Center(t *testing.T) {
	g := testGradients()
	s := State{Mass: 0, Pressure: 0.4}

	for _, model := range []Model{Classical, Relativistic} {
		dm, dp, err := g.eval(0, s, model)
		if err != nil {
			t.Fatalf("%s: %v", model, err)
		}
		if dm != 0 {
			t.Errorf("%s: dm/dr at center = %g, expected 0", model, dm)
		}
		if dp != 0 {
			t.Errorf("%s: dp/dr at center = %g, expected 0", model, dp)
		}
	}
}

func TestGradients_Signs(t *testing.T) {
	g := testGradients()
	s := State{Mass: 0.01, Pressure: 0.4}

	for _, model := range []Model{Classical, Relativistic} {
		dm, dp, err := g.eval(0.5, s, model)
		if err != nil {
			t.Fatalf("%s: %v", model, err)
		}
		if dm <= 0 {
			t.Errorf("%s: dm/dr = %g, expected positive", model, dm)
		}
		if dp >= 0 {
			t.Errorf("%s: dp/dr = %g, expected negative", model, dp)
		}
	}
}

func TestGradients_RelativisticSteeper(t *testing.T) {
	g := testGradients()
	s := State{Mass: 0.05, Pressure: 0.4}

	_, dpC, err := g.eval(0.5, s, Classical)
	if err != nil {
		t.Fatal(err)
	}
	_, dpR, err := g.eval(0.5, s, Relativistic)
	if err != nil {
		t.Fatal(err)
	}
	if dpR >= dpC {
		t.Errorf("tov gradient %g should be steeper than classical %g", dpR, dpC)
	}
}

func TestGradients_SingularDenominator(t *testing.T) {
	g := testGradients()
	// 2m >= r puts the denominator at or below zero.
	s := State{Mass: 0.5, Pressure: 0.4}

	_, _, err := g.eval(0.5, s, Relativistic)
	if !errors.Is(err, ErrSingular) {
		t.Errorf("expected ErrSingular, got %v", err)
	}
}

func TestGradients_NegativeTrialPressure(t *testing.T) {
	g := testGradients()
	// Trial states just past the surface clamp to vacuum instead of failing.
	dm, dp, err := g.eval(1.0, State{Mass: 0.1, Pressure: -1e-12}, Relativistic)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if dm != 0 || dp != 0 {
		t.Errorf("vacuum gradients should vanish, got dm=%g dp=%g", dm, dp)
	}
}
