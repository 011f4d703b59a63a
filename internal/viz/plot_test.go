package viz

import (
	"strings"
	"testing"

	"github.com/san-kum/tovstar/internal/eos"
	"github.com/san-kum/tovstar/internal/star"
	"github.com/san-kum/tovstar/internal/units"
)

func testProfile(m star.Model) *star.Profile {
	n := 100
	prof := &star.Profile{
		Model:        m,
		Radius:       make([]float64, n),
		Mass:         make([]float64, n),
		Pressure:     make([]float64, n),
		SurfaceIndex: 60,
	}
	for i := 0; i < n; i++ {
		r := float64(i) * 0.01
		prof.Radius[i] = r
		if i <= 60 {
			prof.Mass[i] = r * r * r / 3
			prof.Pressure[i] = 0.4 * float64(60-i) / 60
		} else {
			prof.Mass[i] = prof.Mass[60]
		}
	}
	return prof
}

func TestProfilePlots(t *testing.T) {
	conv := units.NewConverter(eos.DefaultConstants())

	out := ProfilePlots(testProfile(star.Relativistic), conv, 60, 8)
	if out == "" {
		t.Fatal("empty plot output")
	}
	if !strings.Contains(out, "enclosed mass") {
		t.Error("missing mass caption")
	}
	if !strings.Contains(out, "pressure") {
		t.Error("missing pressure caption")
	}
	if !strings.Contains(out, "tov") {
		t.Error("missing model name")
	}
}

func TestComparePlots(t *testing.T) {
	conv := units.NewConverter(eos.DefaultConstants())

	profiles := []*star.Profile{testProfile(star.Classical), testProfile(star.Relativistic)}
	out := ComparePlots(profiles, conv, 60, 8)
	if out == "" {
		t.Fatal("empty comparison output")
	}
	if !strings.Contains(out, "classical") || !strings.Contains(out, "tov") {
		t.Error("missing model names in header")
	}

	if got := ComparePlots(nil, conv, 60, 8); got != "" {
		t.Errorf("expected empty output for no profiles, got %q", got)
	}
}

func TestSummary(t *testing.T) {
	conv := units.NewConverter(eos.DefaultConstants())

	out := Summary(testProfile(star.Relativistic), conv)
	for _, want := range []string{"surface radius", "total mass", "km", "M_sun"} {
		if !strings.Contains(out, want) {
			t.Errorf("summary missing %q", want)
		}
	}
}
