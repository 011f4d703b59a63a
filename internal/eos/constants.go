package eos

import "fmt"

// Constants holds the physical constants of the nuclear matter model in
// natural units: energies in MeV, lengths in fm, hbar = c = 1.
type Constants struct {
	HBarC             float64 // MeV*fm
	PlanckMass        float64 // MeV
	SolarMass         float64 // MeV
	SaturationDensity float64 // MeV/fm^3
	NeutronMass       float64 // MeV
	PressureCoeff     float64 // MeV/fm^3 at n = 1 fm^-3
	EnergyCoeff       float64 // MeV/fm^3 at n = 1 fm^-3
	PolytropeExp      float64
}

func DefaultConstants() Constants {
	return Constants{
		HBarC:             197.327,
		PlanckMass:        1.220890e22,
		SolarMass:         1.1157467e60,
		SaturationDensity: 1665.3,
		NeutronMass:       938.926,
		PressureCoeff:     363.44,
		EnergyCoeff:       236.0,
		PolytropeExp:      2.54,
	}
}

// Gravitational returns Newton's constant in fm/MeV, derived from the
// Planck mass.
func (c Constants) Gravitational() float64 {
	return c.HBarC / (c.PlanckMass * c.PlanckMass)
}

func (c Constants) Validate() error {
	checks := []struct {
		name string
		val  float64
	}{
		{"hbar*c", c.HBarC},
		{"planck mass", c.PlanckMass},
		{"solar mass", c.SolarMass},
		{"saturation density", c.SaturationDensity},
		{"neutron mass", c.NeutronMass},
		{"pressure coefficient", c.PressureCoeff},
		{"energy coefficient", c.EnergyCoeff},
	}
	for _, ch := range checks {
		if ch.val <= 0 {
			return fmt.Errorf("%w: %s must be positive, got %g", ErrBadConstants, ch.name, ch.val)
		}
	}
	if c.PolytropeExp <= 1 {
		return fmt.Errorf("%w: polytrope exponent must exceed 1, got %g", ErrBadConstants, c.PolytropeExp)
	}
	return nil
}
