package star

import (
	"fmt"
	"math"
)

// Model selects the pressure-gradient law.
type Model int

const (
	// Classical is Newtonian hydrostatic equilibrium.
	Classical Model = iota
	// Relativistic is the Tolman-Oppenheimer-Volkoff law.
	Relativistic
)

func (m Model) String() string {
	switch m {
	case Classical:
		return "classical"
	case Relativistic:
		return "tov"
	default:
		return fmt.Sprintf("model(%d)", int(m))
	}
}

func ParseModel(s string) (Model, error) {
	switch s {
	case "classical", "newtonian":
		return Classical, nil
	case "tov", "relativistic":
		return Relativistic, nil
	default:
		return 0, fmt.Errorf("unknown model: %s", s)
	}
}

// State is the pair of integrated quantities at one radius: enclosed mass
// and pressure, both dimensionless.
type State struct {
	Mass     float64
	Pressure float64
}

func (s State) IsValid() bool {
	return !math.IsNaN(s.Mass) && !math.IsInf(s.Mass, 0) &&
		!math.IsNaN(s.Pressure) && !math.IsInf(s.Pressure, 0)
}

// Config holds the integration parameters.
type Config struct {
	Points     int     // radial grid points
	RMax       float64 // outer grid bound, natural units
	SurfaceTol float64 // pressure at or below this marks the surface
}

func DefaultConfig() Config {
	return Config{
		Points:     1501,
		RMax:       15.0,
		SurfaceTol: 1e-15,
	}
}

func (c Config) Validate() error {
	if c.Points < 2 {
		return fmt.Errorf("points must be at least 2, got %d", c.Points)
	}
	if c.RMax <= 0 {
		return fmt.Errorf("r-max must be positive, got %g", c.RMax)
	}
	if c.SurfaceTol <= 0 {
		return fmt.Errorf("surface tolerance must be positive, got %g", c.SurfaceTol)
	}
	return nil
}

// Profile is the result of one integration run: parallel slices over the
// radial grid, immutable once returned.
type Profile struct {
	Model    Model
	Radius   []float64
	Mass     []float64
	Pressure []float64

	// SurfaceIndex is the first grid index where the pressure reached the
	// surface tolerance, or -1 if the star did not terminate inside the grid.
	SurfaceIndex int
}

// SurfaceRadius returns the stellar radius in natural units; the outer grid
// bound when no surface was found.
func (p *Profile) SurfaceRadius() float64 {
	if p.SurfaceIndex < 0 {
		return p.Radius[len(p.Radius)-1]
	}
	return p.Radius[p.SurfaceIndex]
}

// SurfaceMass returns the total enclosed mass in natural units.
func (p *Profile) SurfaceMass() float64 {
	if p.SurfaceIndex < 0 {
		return p.Mass[len(p.Mass)-1]
	}
	return p.Mass[p.SurfaceIndex]
}
