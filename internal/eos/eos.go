package eos

import (
	"fmt"
	"math"
)

// EOS is the equation of state for degenerate neutron matter, a polytrope
// in the number density n (fm^-3):
//
//	P(n)   = PressureCoeff * n^PolytropeExp            [MeV/fm^3]
//	eps(n) = EnergyCoeff * n^PolytropeExp + n * m_n    [MeV/fm^3]
//
// All methods taking or returning dimensionless quantities scale them by
// the saturation density.
type EOS struct {
	c Constants
}

func New(c Constants) EOS {
	return EOS{c: c}
}

func (e EOS) Constants() Constants { return e.c }

// NumberDensity inverts the pressure relation for n. The pressure p is
// dimensionless (units of the saturation density). p = 0 maps to n = 0
// exactly; negative p is a precondition violation.
func (e EOS) NumberDensity(p float64) (float64, error) {
	if p < 0 {
		return 0, fmt.Errorf("%w: %g", ErrNegativePressure, p)
	}
	if p == 0 {
		return 0, nil
	}
	return math.Pow(p*e.c.SaturationDensity/e.c.PressureCoeff, 1/e.c.PolytropeExp), nil
}

// DensityFromPressure maps dimensionless pressure to dimensionless energy
// density. Called four times per integration step; pure and allocation-free.
func (e EOS) DensityFromPressure(p float64) (float64, error) {
	n, err := e.NumberDensity(p)
	if err != nil {
		return 0, err
	}
	return e.densityOf(n), nil
}

func (e EOS) densityOf(n float64) float64 {
	return (e.c.EnergyCoeff*math.Pow(n, e.c.PolytropeExp) + n*e.c.NeutronMass) / e.c.SaturationDensity
}

// Pressure returns the dimensionless pressure at number density n.
func (e EOS) Pressure(n float64) float64 {
	return e.c.PressureCoeff * math.Pow(n, e.c.PolytropeExp) / e.c.SaturationDensity
}

// EnergyDensity returns the energy density at number density n in MeV/fm^3.
func (e EOS) EnergyDensity(n float64) float64 {
	return e.c.EnergyCoeff*math.Pow(n, e.c.PolytropeExp) + n*e.c.NeutronMass
}
