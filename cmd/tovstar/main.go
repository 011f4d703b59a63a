package main

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"text/tabwriter"
	"time"

	"github.com/guptarohit/asciigraph"
	"github.com/spf13/cobra"

	"github.com/san-kum/tovstar/internal/config"
	"github.com/san-kum/tovstar/internal/eos"
	"github.com/san-kum/tovstar/internal/star"
	"github.com/san-kum/tovstar/internal/storage"
	"github.com/san-kum/tovstar/internal/tui"
	"github.com/san-kum/tovstar/internal/units"
	"github.com/san-kum/tovstar/internal/viz"
)

var (
	dataDir        string
	modelName      string
	points         int
	rMax           float64
	centralDensity float64
	tolerance      float64
	surfaceTol     float64
	configFile     string
	preset         string
	plotWidth      int
	plotHeight     int
	frameRate      int
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "tovstar",
		Short: "neutron star structure lab",
		Long:  "tovstar integrates the internal structure of a degenerate neutron star\nunder Newtonian and Tolman-Oppenheimer-Volkoff hydrostatic equilibrium.",
	}

	rootCmd.PersistentFlags().StringVar(&dataDir, "data", ".tovstar", "data directory")

	runCmd := &cobra.Command{
		Use:   "run",
		Short: "integrate stellar structure",
		RunE:  runIntegration,
	}
	addRunFlags(runCmd)

	compareCmd := &cobra.Command{
		Use:   "compare",
		Short: "integrate both models and plot them side by side",
		RunE:  compareModels,
	}
	addRunFlags(compareCmd)
	compareCmd.Flags().IntVar(&plotWidth, "width", viz.DefaultWidth, "plot width")
	compareCmd.Flags().IntVar(&plotHeight, "height", viz.DefaultHeight, "plot height")

	listCmd := &cobra.Command{
		Use:   "list",
		Short: "list stored runs",
		RunE:  listRuns,
	}

	plotCmd := &cobra.Command{
		Use:   "plot [run_id]",
		Short: "plot a stored run",
		Args:  cobra.ExactArgs(1),
		RunE:  plotRun,
	}
	plotCmd.Flags().IntVar(&plotWidth, "width", viz.DefaultWidth, "plot width")
	plotCmd.Flags().IntVar(&plotHeight, "height", viz.DefaultHeight, "plot height")

	exportCSVCmd := &cobra.Command{
		Use:   "export-csv [run_id]",
		Short: "export a stored run to CSV",
		Args:  cobra.ExactArgs(1),
		RunE:  exportCSV,
	}

	exportJSONCmd := &cobra.Command{
		Use:   "export-json [run_id]",
		Short: "export a stored run to JSON",
		Args:  cobra.ExactArgs(1),
		RunE:  exportJSON,
	}

	presetsCmd := &cobra.Command{
		Use:   "presets",
		Short: "list available presets",
		RunE: func(cmd *cobra.Command, args []string) error {
			w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
			fmt.Fprintln(w, "NAME\tMODEL\tRHO_C/RHO_S\tPOINTS\tR_MAX")
			for _, name := range config.ListPresets() {
				p := config.GetPreset(name)
				fmt.Fprintf(w, "%s\t%s\t%.2f\t%d\t%.1f\n", name, p.Model, p.CentralDensity, p.Points, p.RMax)
			}
			return w.Flush()
		},
	}

	liveCmd := &cobra.Command{
		Use:   "live",
		Short: "integrate with a live terminal view",
		RunE:  runLive,
	}
	addRunFlags(liveCmd)
	liveCmd.Flags().IntVar(&frameRate, "fps", 30, "frame rate")

	rootCmd.AddCommand(runCmd, compareCmd, listCmd, plotCmd, exportCSVCmd, exportJSONCmd, presetsCmd, liveCmd)

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func addRunFlags(cmd *cobra.Command) {
	cmd.Flags().StringVar(&modelName, "model", "both", "model: classical, tov, or both")
	cmd.Flags().IntVar(&points, "points", config.DefaultPoints, "radial grid points")
	cmd.Flags().Float64Var(&rMax, "r-max", config.DefaultRMax, "outer grid bound (natural units)")
	cmd.Flags().Float64Var(&centralDensity, "central-density", config.DefaultCentralDensity, "central energy density (units of saturation density)")
	cmd.Flags().Float64Var(&tolerance, "tolerance", config.DefaultTolerance, "newton-raphson step tolerance")
	cmd.Flags().Float64Var(&surfaceTol, "surface-tol", config.DefaultSurfaceTol, "surface pressure tolerance")
	cmd.Flags().StringVar(&configFile, "config", "", "config file path (yaml)")
	cmd.Flags().StringVar(&preset, "preset", "", "use preset configuration")
}

// resolveConfig layers preset, config file, and flags, flags winning.
func resolveConfig(cmd *cobra.Command) (*config.Config, error) {
	cfg := config.DefaultConfig()

	if preset != "" {
		p := config.GetPreset(preset)
		if p == nil {
			return nil, fmt.Errorf("unknown preset: %s (available: %v)", preset, config.ListPresets())
		}
		cfg = p
	}

	if configFile != "" {
		loaded, err := config.Load(configFile)
		if err != nil {
			return nil, fmt.Errorf("failed to load config: %w", err)
		}
		cfg = loaded
	}

	if cmd.Flags().Changed("model") {
		cfg.Model = modelName
	}
	if cmd.Flags().Changed("points") {
		cfg.Points = points
	}
	if cmd.Flags().Changed("r-max") {
		cfg.RMax = rMax
	}
	if cmd.Flags().Changed("central-density") {
		cfg.CentralDensity = centralDensity
	}
	if cmd.Flags().Changed("tolerance") {
		cfg.Tolerance = tolerance
	}
	if cmd.Flags().Changed("surface-tol") {
		cfg.SurfaceTol = surfaceTol
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

type runSetup struct {
	cfg     *config.Config
	consts  eos.Constants
	eos     eos.EOS
	central eos.CentralCondition
	grid    star.Grid
	conv    units.Converter
}

func setupRun(cmd *cobra.Command) (*runSetup, error) {
	cfg, err := resolveConfig(cmd)
	if err != nil {
		return nil, err
	}

	consts := cfg.ApplyConstants(eos.DefaultConstants())
	if err := consts.Validate(); err != nil {
		return nil, err
	}

	central, err := eos.SolveCentral(consts, cfg.CentralDensity*consts.SaturationDensity, cfg.Tolerance)
	if err != nil {
		return nil, err
	}

	grid, err := star.NewGrid(cfg.Points, cfg.RMax)
	if err != nil {
		return nil, err
	}

	return &runSetup{
		cfg:     cfg,
		consts:  consts,
		eos:     eos.New(consts),
		central: central,
		grid:    grid,
		conv:    units.NewConverter(consts),
	}, nil
}

func runIntegration(cmd *cobra.Command, args []string) error {
	rs, err := setupRun(cmd)
	if err != nil {
		return err
	}

	models, err := rs.cfg.Models()
	if err != nil {
		return err
	}

	st := storage.New(dataDir)
	if err := st.Init(); err != nil {
		return err
	}

	fmt.Printf("central condition: n0=%.6f fm^-3, p0=%.4f, rho0=%.4f\n",
		rs.central.NumberDensity, rs.central.Pressure, rs.central.Density)

	start := time.Now()
	ens := star.NewEnsemble(rs.eos, rs.cfg.StarConfig())
	profiles, errs := ens.Run(context.Background(), rs.grid, rs.central, models)
	elapsed := time.Since(start)

	failed := 0
	for i, m := range models {
		if errs[i] != nil {
			fmt.Fprintf(os.Stderr, "%s run failed: %v\n", m, errs[i])
			failed++
			continue
		}
		runID, err := st.Save(rs.cfg.CentralDensity, profiles[i], rs.conv)
		if err != nil {
			return err
		}
		fmt.Println(viz.Summary(profiles[i], rs.conv))
		fmt.Printf("run id: %s\n\n", runID)
	}

	fmt.Printf("completed in %v\n", elapsed)
	if failed == len(models) {
		return fmt.Errorf("all model runs failed")
	}
	return nil
}

func compareModels(cmd *cobra.Command, args []string) error {
	rs, err := setupRun(cmd)
	if err != nil {
		return err
	}

	models := []star.Model{star.Classical, star.Relativistic}
	ens := star.NewEnsemble(rs.eos, rs.cfg.StarConfig())
	profiles, errs := ens.Run(context.Background(), rs.grid, rs.central, models)

	ok := make([]*star.Profile, 0, len(models))
	for i, m := range models {
		if errs[i] != nil {
			fmt.Fprintf(os.Stderr, "%s run failed: %v\n", m, errs[i])
			continue
		}
		ok = append(ok, profiles[i])
	}
	if len(ok) == 0 {
		return fmt.Errorf("all model runs failed")
	}

	fmt.Println(viz.ComparePlots(ok, rs.conv, plotWidth, plotHeight))
	for _, p := range ok {
		fmt.Println(viz.Summary(p, rs.conv))
		fmt.Println()
	}
	return nil
}

func listRuns(cmd *cobra.Command, args []string) error {
	st := storage.New(dataDir)
	runs, err := st.List()
	if err != nil {
		return err
	}
	if len(runs) == 0 {
		fmt.Println("no runs found")
		return nil
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tMODEL\tTIME\tRHO_C/RHO_S\tPOINTS\tR_KM\tM_SUN")
	for _, run := range runs {
		fmt.Fprintf(w, "%s\t%s\t%s\t%.2f\t%d\t%.3f\t%.4f\n",
			run.ID,
			run.Model,
			run.Timestamp.Format("2006-01-02 15:04:05"),
			run.CentralDensity,
			run.Points,
			run.SurfaceRadiusKm,
			run.SurfaceMassSolar,
		)
	}
	return w.Flush()
}

func plotRun(cmd *cobra.Command, args []string) error {
	runID := args[0]

	st := storage.New(dataDir)
	meta, err := st.Load(runID)
	if err != nil {
		return err
	}
	prof, err := st.LoadProfile(runID)
	if err != nil {
		return err
	}
	if len(prof.Radius) == 0 {
		return fmt.Errorf("no data to plot")
	}

	fmt.Printf("run: %s\n", meta.ID)
	fmt.Printf("model: %s\n", meta.Model)
	fmt.Printf("surface: %.3f km, %.4f M_sun\n\n", meta.SurfaceRadiusKm, meta.SurfaceMassSolar)

	cut := len(prof.Radius)
	if meta.SurfaceIndex > 0 {
		cut = meta.SurfaceIndex + len(prof.Radius)/20
		if cut > len(prof.Radius) {
			cut = len(prof.Radius)
		}
	}

	fmt.Println(asciigraph.Plot(prof.MassSolar[:cut],
		asciigraph.Height(plotHeight),
		asciigraph.Width(plotWidth),
		asciigraph.Caption("enclosed mass [M_sun]"),
	))
	fmt.Println()
	fmt.Println(asciigraph.Plot(prof.PressureMeV[:cut],
		asciigraph.Height(plotHeight),
		asciigraph.Width(plotWidth),
		asciigraph.Caption("pressure [MeV/fm^3]"),
	))
	return nil
}

func exportCSV(cmd *cobra.Command, args []string) error {
	runID := args[0]

	src, err := os.Open(filepath.Join(dataDir, runID, "profile.csv"))
	if err != nil {
		return err
	}
	defer src.Close()

	outPath := runID + ".csv"
	dst, err := os.Create(outPath)
	if err != nil {
		return err
	}
	defer dst.Close()

	if _, err := io.Copy(dst, src); err != nil {
		return err
	}
	fmt.Printf("exported to %s\n", outPath)
	return nil
}

func exportJSON(cmd *cobra.Command, args []string) error {
	runID := args[0]

	st := storage.New(dataDir)
	meta, err := st.Load(runID)
	if err != nil {
		return err
	}
	prof, err := st.LoadProfile(runID)
	if err != nil {
		return err
	}

	data := struct {
		storage.RunMetadata
		Radius      []float64 `json:"radius"`
		Mass        []float64 `json:"mass"`
		Pressure    []float64 `json:"pressure"`
		RadiusKm    []float64 `json:"radius_km"`
		MassSolar   []float64 `json:"mass_solar"`
		PressureMeV []float64 `json:"pressure_mev_fm3"`
	}{
		RunMetadata: *meta,
		Radius:      prof.Radius,
		Mass:        prof.Mass,
		Pressure:    prof.Pressure,
		RadiusKm:    prof.RadiusKm,
		MassSolar:   prof.MassSolar,
		PressureMeV: prof.PressureMeV,
	}

	outPath := runID + ".json"
	f, err := os.Create(outPath)
	if err != nil {
		return err
	}
	defer f.Close()

	enc := json.NewEncoder(f)
	enc.SetIndent("", "  ")
	if err := enc.Encode(data); err != nil {
		return err
	}
	fmt.Printf("exported to %s\n", outPath)
	return nil
}

func runLive(cmd *cobra.Command, args []string) error {
	rs, err := setupRun(cmd)
	if err != nil {
		return err
	}

	model := star.Relativistic
	if rs.cfg.Model != "" && rs.cfg.Model != "both" {
		model, err = star.ParseModel(rs.cfg.Model)
		if err != nil {
			return err
		}
	}

	return tui.Run(rs.eos, rs.cfg.StarConfig(), rs.grid, rs.central, model, rs.conv, frameRate)
}
