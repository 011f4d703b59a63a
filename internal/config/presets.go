package config

import "sort"

// Presets are ready-made central conditions. Central densities are in
// units of the saturation density.
var Presets = map[string]*Config{
	"saturation": {
		Model: "both", Points: 1501, RMax: 15.0,
		CentralDensity: 1.0,
		Tolerance:      DefaultTolerance, SurfaceTol: DefaultSurfaceTol,
	},
	"light": {
		Model: "both", Points: 1501, RMax: 20.0,
		CentralDensity: 0.6,
		Tolerance:      DefaultTolerance, SurfaceTol: DefaultSurfaceTol,
	},
	"dense": {
		Model: "both", Points: 1501, RMax: 15.0,
		CentralDensity: 2.5,
		Tolerance:      DefaultTolerance, SurfaceTol: DefaultSurfaceTol,
	},
}

func GetPreset(name string) *Config {
	cfg, ok := Presets[name]
	if !ok {
		return nil
	}
	clone := *cfg
	return &clone
}

func ListPresets() []string {
	names := make([]string, 0, len(Presets))
	for name := range Presets {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
