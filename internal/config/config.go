package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/san-kum/tovstar/internal/eos"
	"github.com/san-kum/tovstar/internal/star"
)

const (
	DefaultPoints         = 1501
	DefaultRMax           = 15.0
	DefaultCentralDensity = 1.0
	DefaultTolerance      = 1e-15
	DefaultSurfaceTol     = 1e-15
)

// Config is one run description: which model(s) to integrate, the radial
// grid, the central density in units of the saturation density, and
// optional overrides for the constants table.
type Config struct {
	Model          string          `yaml:"model"` // classical | tov | both
	Points         int             `yaml:"points"`
	RMax           float64         `yaml:"r_max"`
	CentralDensity float64         `yaml:"central_density"`
	Tolerance      float64         `yaml:"tolerance"`
	SurfaceTol     float64         `yaml:"surface_tolerance"`
	Constants      ConstantsConfig `yaml:"constants"`
}

// ConstantsConfig overrides individual physical constants; zero fields keep
// the defaults.
type ConstantsConfig struct {
	SaturationDensity float64 `yaml:"saturation_density"` // MeV/fm^3
	NeutronMass       float64 `yaml:"neutron_mass"`       // MeV
	SolarMass         float64 `yaml:"solar_mass"`         // MeV
	PressureCoeff     float64 `yaml:"pressure_coeff"`     // MeV/fm^3
	EnergyCoeff       float64 `yaml:"energy_coeff"`       // MeV/fm^3
	PolytropeExp      float64 `yaml:"polytrope_exp"`
}

func DefaultConfig() *Config {
	return &Config{
		Model:          "both",
		Points:         DefaultPoints,
		RMax:           DefaultRMax,
		CentralDensity: DefaultCentralDensity,
		Tolerance:      DefaultTolerance,
		SurfaceTol:     DefaultSurfaceTol,
	}
}

func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	cfg := DefaultConfig()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}

func Save(path string, cfg *Config) error {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}

// ApplyConstants lays the overrides over a base constants table.
func (c *Config) ApplyConstants(base eos.Constants) eos.Constants {
	if c.Constants.SaturationDensity > 0 {
		base.SaturationDensity = c.Constants.SaturationDensity
	}
	if c.Constants.NeutronMass > 0 {
		base.NeutronMass = c.Constants.NeutronMass
	}
	if c.Constants.SolarMass > 0 {
		base.SolarMass = c.Constants.SolarMass
	}
	if c.Constants.PressureCoeff > 0 {
		base.PressureCoeff = c.Constants.PressureCoeff
	}
	if c.Constants.EnergyCoeff > 0 {
		base.EnergyCoeff = c.Constants.EnergyCoeff
	}
	if c.Constants.PolytropeExp > 0 {
		base.PolytropeExp = c.Constants.PolytropeExp
	}
	return base
}

// Models resolves the model selector; "both" expands to classical then tov.
func (c *Config) Models() ([]star.Model, error) {
	if c.Model == "" || c.Model == "both" {
		return []star.Model{star.Classical, star.Relativistic}, nil
	}
	m, err := star.ParseModel(c.Model)
	if err != nil {
		return nil, err
	}
	return []star.Model{m}, nil
}

// StarConfig maps the run description onto integrator parameters.
func (c *Config) StarConfig() star.Config {
	return star.Config{
		Points:     c.Points,
		RMax:       c.RMax,
		SurfaceTol: c.SurfaceTol,
	}
}

func (c *Config) Validate() error {
	if c.CentralDensity <= 0 {
		return fmt.Errorf("central density must be positive, got %g", c.CentralDensity)
	}
	if c.Tolerance <= 0 {
		return fmt.Errorf("tolerance must be positive, got %g", c.Tolerance)
	}
	if err := c.StarConfig().Validate(); err != nil {
		return err
	}
	if _, err := c.Models(); err != nil {
		return err
	}
	return nil
}
