package config

import (
	"path/filepath"
	"testing"

	"github.com/san-kum/tovstar/internal/eos"
	"github.com/san-kum/tovstar/internal/star"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()

	if cfg.Model != "both" {
		t.Errorf("expected model both, got %s", cfg.Model)
	}
	if cfg.Points != 1501 {
		t.Errorf("expected 1501 points, got %d", cfg.Points)
	}
	if err := cfg.Validate(); err != nil {
		t.Errorf("default config should validate: %v", err)
	}
}

func TestLoadSaveRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "run.yaml")

	cfg := DefaultConfig()
	cfg.Model = "tov"
	cfg.CentralDensity = 2.5
	cfg.Constants.NeutronMass = 939.0

	if err := Save(path, cfg); err != nil {
		t.Fatal(err)
	}
	got, err := Load(path)
	if err != nil {
		t.Fatal(err)
	}
	if got.Model != "tov" || got.CentralDensity != 2.5 {
		t.Errorf("round trip lost values: %+v", got)
	}
	if got.Constants.NeutronMass != 939.0 {
		t.Errorf("round trip lost constants override: %+v", got.Constants)
	}
}

func TestLoad_Missing(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "nope.yaml")); err == nil {
		t.Error("expected error for missing file")
	}
}

func TestApplyConstants(t *testing.T) {
	base := eos.DefaultConstants()

	cfg := DefaultConfig()
	got := cfg.ApplyConstants(base)
	if got != base {
		t.Error("zero overrides should keep the base table")
	}

	cfg.Constants.SaturationDensity = 1700.0
	got = cfg.ApplyConstants(base)
	if got.SaturationDensity != 1700.0 {
		t.Errorf("override not applied: %g", got.SaturationDensity)
	}
	if got.NeutronMass != base.NeutronMass {
		t.Error("untouched field changed")
	}
}

func TestModels(t *testing.T) {
	cfg := DefaultConfig()

	models, err := cfg.Models()
	if err != nil {
		t.Fatal(err)
	}
	if len(models) != 2 || models[0] != star.Classical || models[1] != star.Relativistic {
		t.Errorf("both should expand to classical+tov, got %v", models)
	}

	cfg.Model = "tov"
	models, err = cfg.Models()
	if err != nil {
		t.Fatal(err)
	}
	if len(models) != 1 || models[0] != star.Relativistic {
		t.Errorf("got %v", models)
	}

	cfg.Model = "bogus"
	if _, err := cfg.Models(); err == nil {
		t.Error("expected error for unknown model")
	}
}

func TestValidate(t *testing.T) {
	cfg := DefaultConfig()
	cfg.CentralDensity = 0
	if err := cfg.Validate(); err == nil {
		t.Error("expected error for zero central density")
	}

	cfg = DefaultConfig()
	cfg.Points = 1
	if err := cfg.Validate(); err == nil {
		t.Error("expected error for one grid point")
	}
}

func TestGetPreset(t *testing.T) {
	cfg := GetPreset("dense")
	if cfg == nil {
		t.Fatal("expected preset, got nil")
	}
	if cfg.CentralDensity != 2.5 {
		t.Errorf("expected central density 2.5, got %g", cfg.CentralDensity)
	}
	if err := cfg.Validate(); err != nil {
		t.Errorf("preset should validate: %v", err)
	}

	// Returned preset is a copy.
	cfg.CentralDensity = 99
	if Presets["dense"].CentralDensity != 2.5 {
		t.Error("preset mutated through returned copy")
	}

	if GetPreset("nonexistent") != nil {
		t.Error("expected nil for nonexistent preset")
	}
}

func TestListPresets(t *testing.T) {
	names := ListPresets()
	if len(names) == 0 {
		t.Fatal("expected presets")
	}
	for _, name := range names {
		if GetPreset(name) == nil {
			t.Errorf("listed preset %s not retrievable", name)
		}
	}
}
