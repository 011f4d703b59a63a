// Package star integrates the internal structure of a static, spherically
// symmetric neutron star: enclosed mass and pressure as functions of
// radius, marched outward from a central boundary condition with
// fixed-step RK4.
//
// Two pressure-gradient laws are available:
//
//   - [Classical]: Newtonian hydrostatic equilibrium
//   - [Relativistic]: the Tolman-Oppenheimer-Volkoff equation
//
// Both share the mass equation dm/dr = r^2*rho(p) and the same grid and
// central condition, so their profiles are directly comparable.
//
// # Example
//
//	e := eos.New(eos.DefaultConstants())
//	grid, _ := star.NewGrid(1501, 15)
//	central, _ := eos.SolveCentral(e.Constants(), e.Constants().SaturationDensity, eos.DefaultTolerance)
//	prof, err := star.New(e, star.DefaultConfig()).Run(ctx, grid, central, star.Relativistic)
//
// # Thread Safety
//
// An Integrator holds no mutable state and may be shared; [Ensemble] runs
// several models concurrently with one Integrator per goroutine.
package star
