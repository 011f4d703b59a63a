// Package tui provides a live terminal view of a structure integration,
// marching the radial grid a few steps per frame and drawing the pressure
// profile as it grows.
package tui

import (
	"fmt"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/guptarohit/asciigraph"

	"github.com/san-kum/tovstar/internal/eos"
	"github.com/san-kum/tovstar/internal/star"
	"github.com/san-kum/tovstar/internal/units"
	"github.com/san-kum/tovstar/internal/viz"
)

const (
	graphWidth    = 70
	graphHeight   = 12
	stepsPerFrame = 5
)

type TickMsg time.Time

type Model struct {
	integ      *star.Integrator
	grid       star.Grid
	central    eos.CentralCondition
	model      star.Model
	conv       units.Converter
	surfaceTol float64
	frameRate  int

	state    star.State
	index    int
	pressure []float64 // MeV/fm^3 history for the graph
	running  bool
	done     bool
	err      error
}

func NewModel(e eos.EOS, cfg star.Config, grid star.Grid, central eos.CentralCondition, model star.Model, conv units.Converter, frameRate int) Model {
	if frameRate <= 0 {
		frameRate = 30
	}
	m := Model{
		integ:      star.New(e, cfg),
		grid:       grid,
		central:    central,
		model:      model,
		conv:       conv,
		surfaceTol: cfg.SurfaceTol,
		frameRate:  frameRate,
	}
	m.reset()
	return m
}

func (m *Model) reset() {
	m.state = star.State{Mass: 0, Pressure: m.central.Pressure}
	m.index = 0
	m.pressure = append(m.pressure[:0], m.conv.PressureMeV(m.state.Pressure))
	m.running = true
	m.done = false
	m.err = nil
}

func (m Model) Init() tea.Cmd {
	return m.tick()
}

func (m Model) tick() tea.Cmd {
	return tea.Tick(time.Second/time.Duration(m.frameRate), func(t time.Time) tea.Msg {
		return TickMsg(t)
	})
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c":
			return m, tea.Quit
		case " ":
			m.running = !m.running
		case "r":
			m.reset()
		}
		return m, nil

	case TickMsg:
		if m.running && !m.done {
			m.advance()
		}
		return m, m.tick()
	}
	return m, nil
}

func (m *Model) advance() {
	h := m.grid.Step()
	for i := 0; i < stepsPerFrame && !m.done; i++ {
		if m.index >= len(m.grid)-1 {
			m.done = true
			return
		}
		next, err := m.integ.Step(m.grid[m.index], h, m.state, m.model)
		if err != nil {
			m.err = &star.StepError{Model: m.model, Index: m.index + 1, Radius: m.grid[m.index+1], Wrapped: err}
			m.done = true
			return
		}
		m.index++
		if next.Pressure <= m.surfaceTol {
			m.state = star.State{Mass: next.Mass, Pressure: 0}
			m.pressure = append(m.pressure, 0)
			m.done = true
			return
		}
		m.state = next
		m.pressure = append(m.pressure, m.conv.PressureMeV(next.Pressure))
	}
}

func (m Model) View() string {
	var sb strings.Builder

	sb.WriteString(viz.HeaderStyle.Render(fmt.Sprintf("tovstar live — %s", m.model)))
	sb.WriteString("\n")

	status := "integrating"
	switch {
	case m.err != nil:
		status = fmt.Sprintf("failed: %v", m.err)
	case m.done:
		status = "surface reached"
	case !m.running:
		status = "paused"
	}

	stats := []struct {
		label string
		value string
	}{
		{"radius", fmt.Sprintf("%.3f km", m.conv.RadiusKm(m.grid[m.index]))},
		{"mass", fmt.Sprintf("%.4f M_sun", m.conv.MassSolar(m.state.Mass))},
		{"pressure", fmt.Sprintf("%.3f MeV/fm^3", m.conv.PressureMeV(m.state.Pressure))},
		{"step", fmt.Sprintf("%d / %d", m.index, len(m.grid)-1)},
		{"status", status},
	}
	var panel strings.Builder
	for i, s := range stats {
		if i > 0 {
			panel.WriteString("\n")
		}
		panel.WriteString(viz.LabelStyle.Render(s.label))
		panel.WriteString(viz.ValueStyle.Render(s.value))
	}
	sb.WriteString(viz.PanelStyle.Render(panel.String()))
	sb.WriteString("\n")

	if len(m.pressure) > 1 {
		graph := asciigraph.Plot(m.pressure,
			asciigraph.Height(graphHeight),
			asciigraph.Width(graphWidth),
			asciigraph.Caption("pressure [MeV/fm^3] vs radial step"),
		)
		sb.WriteString(viz.GraphStyle.Render(graph))
		sb.WriteString("\n")
	}

	sb.WriteString(viz.HelpStyle.Render("space pause · r restart · q quit"))
	sb.WriteString("\n")
	return sb.String()
}

// Run starts the live view and blocks until it exits.
func Run(e eos.EOS, cfg star.Config, grid star.Grid, central eos.CentralCondition, model star.Model, conv units.Converter, frameRate int) error {
	p := tea.NewProgram(NewModel(e, cfg, grid, central, model, conv, frameRate), tea.WithAltScreen())
	_, err := p.Run()
	return err
}
