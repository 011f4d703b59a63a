package tui

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/san-kum/tovstar/internal/eos"
	"github.com/san-kum/tovstar/internal/star"
	"github.com/san-kum/tovstar/internal/units"
)

func testModel(t *testing.T) Model {
	t.Helper()
	c := eos.DefaultConstants()
	e := eos.New(c)

	central, err := eos.SolveCentral(c, c.SaturationDensity, eos.DefaultTolerance)
	if err != nil {
		t.Fatal(err)
	}
	grid, err := star.NewGrid(1501, 15)
	if err != nil {
		t.Fatal(err)
	}
	return NewModel(e, star.DefaultConfig(), grid, central, star.Relativistic, units.NewConverter(c), 30)
}

func TestAdvanceToSurface(t *testing.T) {
	m := testModel(t)

	for i := 0; i < len(m.grid) && !m.done; i++ {
		m.advance()
	}
	if !m.done {
		t.Fatal("integration never finished")
	}
	if m.err != nil {
		t.Fatalf("integration failed: %v", m.err)
	}
	if m.state.Pressure != 0 {
		t.Errorf("pressure at surface: %g", m.state.Pressure)
	}
	if m.state.Mass <= 0 {
		t.Errorf("surface mass: %g", m.state.Mass)
	}
	if m.index >= len(m.grid)-1 {
		t.Errorf("surface should sit inside the grid, index %d", m.index)
	}
}

func TestUpdateKeys(t *testing.T) {
	m := testModel(t)

	next, _ := m.Update(tea.KeyMsg{Type: tea.KeySpace})
	got := next.(Model)
	if got.running {
		t.Error("space should pause")
	}

	got.advance()
	next, _ = got.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'r'}})
	got = next.(Model)
	if got.index != 0 || !got.running {
		t.Error("r should restart")
	}
}

func TestView(t *testing.T) {
	m := testModel(t)
	m.advance()

	out := m.View()
	for _, want := range []string{"tovstar live", "radius", "mass", "pressure"} {
		if !strings.Contains(out, want) {
			t.Errorf("view missing %q", want)
		}
	}
}
