package eos

import (
	"fmt"
	"math"
)

const (
	// DefaultTolerance is the Newton-Raphson step tolerance.
	DefaultTolerance = 1e-15

	maxIterations = 100
	minDerivative = 1e-30
)

// CentralCondition is the boundary condition at the stellar center, in
// dimensionless (saturation-density-scaled) form. It seeds every
// integration run.
type CentralCondition struct {
	NumberDensity float64 // fm^-3
	Density       float64
	Pressure      float64
}

// SolveCentral finds the number density at which the total energy density
// equals target (MeV/fm^3), by Newton-Raphson on
//
//	f(n) = EnergyCoeff * n^g + n * m_n - target
//
// starting from n = 1. Iteration stops when the step shrinks below tol
// (DefaultTolerance when tol <= 0) and fails with ErrNoConvergence once the
// iteration budget is spent.
func SolveCentral(c Constants, target, tol float64) (CentralCondition, error) {
	if err := c.Validate(); err != nil {
		return CentralCondition{}, err
	}
	if target <= 0 {
		return CentralCondition{}, fmt.Errorf("%w: got %g", ErrBadTarget, target)
	}
	if tol <= 0 {
		tol = DefaultTolerance
	}

	g := c.PolytropeExp
	n := 1.0
	for i := 0; i < maxIterations; i++ {
		f := c.EnergyCoeff*math.Pow(n, g) + n*c.NeutronMass - target
		df := c.EnergyCoeff*g*math.Pow(n, g-1) + c.NeutronMass
		if math.Abs(df) < minDerivative {
			return CentralCondition{}, fmt.Errorf("%w at n=%g (iteration %d)", ErrFlatDerivative, n, i)
		}
		next := n - f/df
		if next <= 0 {
			// Overshoot below the physical domain; damp instead of
			// feeding a negative n to the fractional power.
			next = 0.5 * n
		}
		if math.Abs(next-n) <= tol {
			return centralFrom(c, next), nil
		}
		n = next
	}
	return CentralCondition{}, fmt.Errorf("%w after %d iterations (target %g)", ErrNoConvergence, maxIterations, target)
}

func centralFrom(c Constants, n float64) CentralCondition {
	e := New(c)
	return CentralCondition{
		NumberDensity: n,
		Density:       e.densityOf(n),
		Pressure:      e.Pressure(n),
	}
}
