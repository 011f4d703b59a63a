// Package units rescales dimensionless structure profiles to physical
// units: kilometers, solar masses, and MeV/fm^3.
package units

import (
	"math"

	"github.com/san-kum/tovstar/internal/eos"
)

// Converter carries the derived radius and mass scales
//
//	R0 = 1 / sqrt(4*pi*G*rho_s)   [fm]
//	M0 = 4*pi * R0^3 * rho_s      [MeV]
//
// fixed by the constants table at construction.
type Converter struct {
	c  eos.Constants
	r0 float64
	m0 float64
}

func NewConverter(c eos.Constants) Converter {
	g := c.Gravitational()
	r0 := 1 / math.Sqrt(4*math.Pi*g*c.SaturationDensity)
	m0 := 4 * math.Pi * r0 * r0 * r0 * c.SaturationDensity
	return Converter{c: c, r0: r0, m0: m0}
}

// Scales returns the radius scale in km and the mass scale in solar masses.
func (v Converter) Scales() (r0Km, m0Solar float64) {
	return v.r0 * 1e-18, v.m0 / v.c.SolarMass
}

// RadiusKm converts a dimensionless radius to kilometers (1 fm = 1e-18 km).
func (v Converter) RadiusKm(r float64) float64 {
	return r * v.r0 * 1e-18
}

// MassSolar converts a dimensionless mass to solar masses.
func (v Converter) MassSolar(m float64) float64 {
	return m * v.m0 / v.c.SolarMass
}

// PressureMeV converts a dimensionless pressure to MeV/fm^3.
func (v Converter) PressureMeV(p float64) float64 {
	return p * v.c.SaturationDensity
}

func (v Converter) RadiiKm(rs []float64) []float64 {
	return v.mapped(rs, v.RadiusKm)
}

func (v Converter) MassesSolar(ms []float64) []float64 {
	return v.mapped(ms, v.MassSolar)
}

func (v Converter) PressuresMeV(ps []float64) []float64 {
	return v.mapped(ps, v.PressureMeV)
}

func (v Converter) mapped(in []float64, f func(float64) float64) []float64 {
	out := make([]float64, len(in))
	for i, x := range in {
		out[i] = f(x)
	}
	return out
}
