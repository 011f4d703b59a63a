// Package eos models degenerate neutron matter: the physical constants
// table, the polytrope-like equation of state relating pressure to energy
// density, and the Newton-Raphson solver that produces the central boundary
// condition for structure integration.
//
// Quantities are kept in natural units (MeV, fm, hbar = c = 1); pressures
// and energy densities handed to the integrator are dimensionless, scaled
// by the nuclear saturation density.
package eos
