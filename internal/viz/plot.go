// Package viz renders structure profiles as terminal plots.
package viz

import (
	"fmt"
	"strings"

	"github.com/guptarohit/asciigraph"

	"github.com/san-kum/tovstar/internal/star"
	"github.com/san-kum/tovstar/internal/units"
)

const (
	DefaultWidth  = 80
	DefaultHeight = 10
)

// ProfilePlots renders the mass and pressure curves of one run in physical
// units, trimmed shortly past the surface so the vacuum tail does not
// dominate the x-axis.
func ProfilePlots(prof *star.Profile, conv units.Converter, width, height int) string {
	if width <= 0 {
		width = DefaultWidth
	}
	if height <= 0 {
		height = DefaultHeight
	}

	cut := plotCut(prof)
	mass := conv.MassesSolar(prof.Mass[:cut])
	pressure := conv.PressuresMeV(prof.Pressure[:cut])

	var sb strings.Builder
	sb.WriteString(HeaderStyle.Render(fmt.Sprintf("%s profile", prof.Model)))
	sb.WriteString("\n")
	sb.WriteString(asciigraph.Plot(mass,
		asciigraph.Height(height),
		asciigraph.Width(width),
		asciigraph.Caption(fmt.Sprintf("enclosed mass [M_sun] out to r=%.2f km", conv.RadiusKm(prof.Radius[cut-1]))),
	))
	sb.WriteString("\n\n")
	sb.WriteString(asciigraph.Plot(pressure,
		asciigraph.Height(height),
		asciigraph.Width(width),
		asciigraph.Caption("pressure [MeV/fm^3]"),
	))
	sb.WriteString("\n")
	return sb.String()
}

// ComparePlots overlays the mass and pressure curves of several runs.
func ComparePlots(profiles []*star.Profile, conv units.Converter, width, height int) string {
	if len(profiles) == 0 {
		return ""
	}
	if width <= 0 {
		width = DefaultWidth
	}
	if height <= 0 {
		height = DefaultHeight
	}

	cut := 0
	names := make([]string, len(profiles))
	for i, p := range profiles {
		if c := plotCut(p); c > cut {
			cut = c
		}
		names[i] = p.Model.String()
	}

	masses := make([][]float64, len(profiles))
	pressures := make([][]float64, len(profiles))
	for i, p := range profiles {
		c := cut
		if c > len(p.Radius) {
			c = len(p.Radius)
		}
		masses[i] = conv.MassesSolar(p.Mass[:c])
		pressures[i] = conv.PressuresMeV(p.Pressure[:c])
	}

	var sb strings.Builder
	sb.WriteString(HeaderStyle.Render("model comparison: " + strings.Join(names, " vs ")))
	sb.WriteString("\n")
	sb.WriteString(asciigraph.PlotMany(masses,
		asciigraph.Height(height),
		asciigraph.Width(width),
		asciigraph.Caption("enclosed mass [M_sun]"),
	))
	sb.WriteString("\n\n")
	sb.WriteString(asciigraph.PlotMany(pressures,
		asciigraph.Height(height),
		asciigraph.Width(width),
		asciigraph.Caption("pressure [MeV/fm^3]"),
	))
	sb.WriteString("\n")
	return sb.String()
}

// Summary renders the headline numbers of one run.
func Summary(prof *star.Profile, conv units.Converter) string {
	rows := []struct {
		label string
		value string
	}{
		{"model", prof.Model.String()},
		{"surface radius", fmt.Sprintf("%.3f km", conv.RadiusKm(prof.SurfaceRadius()))},
		{"total mass", fmt.Sprintf("%.4f M_sun", conv.MassSolar(prof.SurfaceMass()))},
		{"central pressure", fmt.Sprintf("%.2f MeV/fm^3", conv.PressureMeV(prof.Pressure[0]))},
		{"grid points", fmt.Sprintf("%d", len(prof.Radius))},
	}

	var sb strings.Builder
	for i, r := range rows {
		if i > 0 {
			sb.WriteString("\n")
		}
		sb.WriteString(LabelStyle.Render(r.label))
		sb.WriteString(ValueStyle.Render(r.value))
	}
	return PanelStyle.Render(sb.String())
}

// plotCut returns the slice bound just past the surface, or the full length
// when the star never terminated inside the grid.
func plotCut(prof *star.Profile) int {
	n := len(prof.Radius)
	if prof.SurfaceIndex < 0 {
		return n
	}
	cut := prof.SurfaceIndex + n/20
	if cut > n {
		cut = n
	}
	return cut
}
