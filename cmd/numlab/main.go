package main

import (
	"context"
	"encoding/csv"
	"encoding/json"
	"fmt"
	"os"
	"sort"
	"strconv"
	"text/tabwriter"
	"time"

	"github.com/guptarohit/asciigraph"
	"github.com/spf13/cobra"

	"github.com/san-kum/numlab/internal/config"
	"github.com/san-kum/numlab/internal/exercises"
	"github.com/san-kum/numlab/internal/interp1d"
	"github.com/san-kum/numlab/internal/lab"
	"github.com/san-kum/numlab/internal/minimize"
	"github.com/san-kum/numlab/internal/quadrature"
	"github.com/san-kum/numlab/internal/render"
	"github.com/san-kum/numlab/internal/storage"
	"github.com/san-kum/numlab/internal/tui"
)

var (
	dataDir    string
	seed       int64
	points     int
	spread     float64
	clusters   int
	a          float64
	b          float64
	samples    int
	function   string
	sampleRate float64
	tones      []float64
	noise      float64
	mu         float64
	sigma      float64
	bins       int
	imagePath  string
	overlay    string
	alpha      float64
	outDir     string
	configFile string
	preset     string
	outFile    string
	noSave     bool
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "numlab",
		Short: "numerical methods workbench",
		RunE: func(cmd *cobra.Command, args []string) error {
			return tui.Run()
		},
	}

	rootCmd.PersistentFlags().StringVar(&dataDir, "data", ".numlab", "data directory")

	runCmd := &cobra.Command{
		Use:   "run [exercise]",
		Short: "run an exercise",
		Args:  cobra.ExactArgs(1),
		RunE:  runExercise,
	}
	runCmd.Flags().Int64Var(&seed, "seed", time.Now().UnixNano(), "random seed")
	runCmd.Flags().IntVar(&points, "points", config.DefaultPoints, "point count")
	runCmd.Flags().Float64Var(&spread, "spread", 0, "point spread / jitter")
	runCmd.Flags().IntVar(&clusters, "clusters", 0, "cluster count (scatter3d)")
	runCmd.Flags().Float64Var(&a, "a", 0, "interval start")
	runCmd.Flags().Float64Var(&b, "b", 0, "interval end")
	runCmd.Flags().IntVar(&samples, "samples", 0, "sample count")
	runCmd.Flags().StringVar(&function, "function", "", "named function")
	runCmd.Flags().Float64Var(&sampleRate, "rate", 0, "sample rate (fft)")
	runCmd.Flags().Float64SliceVar(&tones, "tones", nil, "tone frequencies (fft)")
	runCmd.Flags().Float64Var(&noise, "noise", 0, "noise sigma (fft)")
	runCmd.Flags().Float64Var(&mu, "mu", 0, "distribution mean (distfit)")
	runCmd.Flags().Float64Var(&sigma, "sigma", 0, "distribution sigma")
	runCmd.Flags().IntVar(&bins, "bins", 0, "histogram bins")
	runCmd.Flags().StringVar(&imagePath, "image", "", "input image path")
	runCmd.Flags().StringVar(&overlay, "overlay", "", "overlay image path")
	runCmd.Flags().Float64Var(&alpha, "alpha", 0, "overlay opacity")
	runCmd.Flags().StringVar(&outDir, "out", "", "artifact directory (defaults to the run dir)")
	runCmd.Flags().StringVar(&configFile, "config", "", "config file path (yaml)")
	runCmd.Flags().StringVar(&preset, "preset", "", "use preset configuration")
	runCmd.Flags().BoolVar(&noSave, "no-save", false, "skip storing the run")

	exercisesCmd := &cobra.Command{
		Use:   "exercises",
		Short: "list available exercises",
		RunE:  listExercises,
	}

	functionsCmd := &cobra.Command{
		Use:   "functions",
		Short: "list named functions per exercise",
		RunE:  listFunctions,
	}

	listCmd := &cobra.Command{
		Use:   "list",
		Short: "list stored runs",
		RunE:  listRuns,
	}

	showCmd := &cobra.Command{
		Use:   "show [run_id]",
		Short: "plot a stored run in the terminal",
		Args:  cobra.ExactArgs(1),
		RunE:  showRun,
	}

	plotCmd := &cobra.Command{
		Use:   "plot [run_id]",
		Short: "write a stored run's series to a png",
		Args:  cobra.ExactArgs(1),
		RunE:  plotRun,
	}
	plotCmd.Flags().StringVar(&outFile, "out", "plot.png", "output file (.png or .svg)")

	exportCmd := &cobra.Command{
		Use:   "export-json [run_id]",
		Short: "export run metadata and series as json",
		Args:  cobra.ExactArgs(1),
		RunE:  exportJSON,
	}

	exportCSVCmd := &cobra.Command{
		Use:   "export-csv [run_id]",
		Short: "export run series to csv",
		Args:  cobra.ExactArgs(1),
		RunE:  exportCSV,
	}

	presetsCmd := &cobra.Command{
		Use:   "presets [exercise]",
		Short: "list available presets for an exercise",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			presets := config.ListPresets(args[0])
			if len(presets) == 0 {
				fmt.Printf("no presets for exercise: %s\n", args[0])
				return nil
			}
			fmt.Printf("presets for %s:\n", args[0])
			for _, p := range presets {
				fmt.Printf("  %s\n", p)
			}
			return nil
		},
	}

	benchCmd := &cobra.Command{
		Use:   "bench [exercise]",
		Short: "time an exercise across input sizes",
		Args:  cobra.ExactArgs(1),
		RunE:  benchExercise,
	}

	viewCmd := &cobra.Command{
		Use:   "view",
		Short: "interactive exercise browser",
		RunE: func(cmd *cobra.Command, args []string) error {
			return tui.Run()
		},
	}

	rootCmd.AddCommand(runCmd, exercisesCmd, functionsCmd, listCmd, showCmd,
		plotCmd, exportCmd, exportCSVCmd, presetsCmd, benchCmd, viewCmd)

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

// applyConfig copies config values into the flag variables, skipping any
// flag the user set explicitly.
func applyConfig(cmd *cobra.Command, cfg *config.Config) {
	set := func(flag string, apply func()) {
		if !cmd.Flags().Changed(flag) {
			apply()
		}
	}
	set("points", func() { points = cfg.Points })
	set("spread", func() { spread = cfg.Spread })
	set("clusters", func() { clusters = cfg.Clusters })
	set("a", func() { a = cfg.A })
	set("b", func() { b = cfg.B })
	set("samples", func() { samples = cfg.Samples })
	set("function", func() { function = cfg.Function })
	set("rate", func() { sampleRate = cfg.SampleRate })
	set("tones", func() { tones = cfg.Tones })
	set("noise", func() { noise = cfg.Noise })
	set("mu", func() { mu = cfg.Mu })
	set("sigma", func() { sigma = cfg.Sigma })
	set("bins", func() { bins = cfg.Bins })
	set("image", func() { imagePath = cfg.Image })
	set("overlay", func() { overlay = cfg.Overlay })
	set("alpha", func() { alpha = cfg.Alpha })
	set("out", func() {
		if cfg.OutDir != "" {
			outDir = cfg.OutDir
		}
	})
	if cfg.Seed != 0 && !cmd.Flags().Changed("seed") {
		seed = cfg.Seed
	}
}

func runExercise(cmd *cobra.Command, args []string) error {
	name := args[0]

	if preset != "" {
		cfg := config.GetPreset(name, preset)
		if cfg == nil {
			return fmt.Errorf("unknown preset: %s (available: %v)", preset, config.ListPresets(name))
		}
		applyConfig(cmd, cfg)
	}

	if configFile != "" {
		cfg, err := config.Load(configFile)
		if err != nil {
			return fmt.Errorf("failed to load config: %w", err)
		}
		applyConfig(cmd, cfg)
	}

	registry := exercises.NewRegistry()
	ex, err := registry.Get(name)
	if err != nil {
		return err
	}

	p := lab.Params{
		Seed:       seed,
		Points:     points,
		Spread:     spread,
		Cluster:    clusters,
		A:          a,
		B:          b,
		Samples:    samples,
		Function:   function,
		SampleRate: sampleRate,
		Tones:      tones,
		Noise:      noise,
		Mu:         mu,
		Sigma:      sigma,
		Bins:       bins,
		Image:      imagePath,
		Overlay:    overlay,
		Alpha:      alpha,
		OutDir:     outDir,
	}

	var st *storage.Store
	runID := storage.NewRunID(name)
	if !noSave {
		st = storage.New(dataDir)
		if err := st.Init(); err != nil {
			return err
		}
		if p.OutDir == "" {
			dir, err := st.RunDir(runID)
			if err != nil {
				return err
			}
			p.OutDir = dir
		}
	}

	fmt.Printf("running %s exercise...\n", name)
	start := time.Now()

	result, err := ex.Run(context.Background(), p)
	if err != nil {
		return err
	}
	elapsed := time.Since(start)

	fmt.Printf("completed in %v\n", elapsed)
	if st != nil {
		if _, err := st.Save(runID, name, seed, result); err != nil {
			return err
		}
		fmt.Printf("run id: %s\n", runID)
	}

	printResult(result)
	return nil
}

func printResult(result *lab.Result) {
	if plot := terminalPlot(result, 100, 30); plot != "" {
		fmt.Println()
		fmt.Println(plot)
	}

	if len(result.Stats) > 0 {
		names := make([]string, 0, len(result.Stats))
		for name := range result.Stats {
			names = append(names, name)
		}
		sort.Strings(names)

		fmt.Println("\nstats:")
		for _, name := range names {
			fmt.Printf("  %-20s %.6g\n", name, result.Stats[name])
		}
	}

	for _, artifact := range result.Artifacts {
		fmt.Printf("wrote %s\n", artifact)
	}
}

// terminalPlot renders geometry on the braille canvas, 3-d clouds through
// the camera, and bare series with asciigraph.
func terminalPlot(result *lab.Result, w, h int) string {
	if len(result.Points) > 0 && result.Points[0].Dim == 3 {
		canvas := render.NewCanvas(w, h)
		cam := render.NewCamera()
		cam.RotX, cam.RotY = 0.4, 0.7
		render.RenderCloud(canvas, result.Points[0], cam)
		return canvas.String()
	}

	if len(result.Segments) > 0 {
		canvas := render.NewCanvas(w, h)
		vp := render.FitViewport(canvas, result.Points, result.Segments, 0.05)
		vp.DrawSegments(result.Segments)
		for _, ps := range result.Points {
			if ps.Dim == 2 {
				vp.DrawPoints(ps)
			}
		}
		return canvas.String()
	}

	if len(result.Series) > 0 {
		s := result.Series[len(result.Series)-1]
		return asciigraph.Plot(s.Y,
			asciigraph.Height(15),
			asciigraph.Width(90),
			asciigraph.Caption(s.Name),
		)
	}
	return ""
}

func listExercises(cmd *cobra.Command, args []string) error {
	registry := exercises.NewRegistry()

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "NAME\tDESCRIPTION")
	for _, name := range registry.Names() {
		ex, err := registry.Get(name)
		if err != nil {
			return err
		}
		fmt.Fprintf(w, "%s\t%s\n", name, ex.Describe())
	}
	return w.Flush()
}

func listFunctions(cmd *cobra.Command, args []string) error {
	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "EXERCISE\tFUNCTIONS")
	fmt.Fprintf(w, "integrate\t%v\n", sortedNames(quadrature.Names()))
	fmt.Fprintf(w, "minimize\t%v\n", sortedNames(minimize.Names()))
	fmt.Fprintf(w, "interp\t%v\n", sortedNames(interp1d.CurveNames()))
	fmt.Fprintf(w, "scatter3d\t%v\n", []string{"clusters", "helix"})
	return w.Flush()
}

func sortedNames(names []string) []string {
	sort.Strings(names)
	return names
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

	sort.Slice(runs, func(i, j int) bool { return runs[i].Timestamp.Before(runs[j].Timestamp) })

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tEXERCISE\tTIME\tSEED\tARTIFACTS")
	for _, run := range runs {
		fmt.Fprintf(w, "%s\t%s\t%s\t%d\t%d\n",
			run.ID,
			run.Exercise,
			run.Timestamp.Format("2006-01-02 15:04:05"),
			run.Seed,
			len(run.Artifacts),
		)
	}
	return w.Flush()
}

func showRun(cmd *cobra.Command, args []string) error {
	runID := args[0]
	st := storage.New(dataDir)

	meta, err := st.Load(runID)
	if err != nil {
		return err
	}
	series, err := st.LoadSeries(runID)
	if err != nil {
		return err
	}

	fmt.Printf("run: %s\n", meta.ID)
	fmt.Printf("exercise: %s\n\n", meta.Exercise)

	if len(series) == 0 {
		fmt.Println("no series stored for this run")
	}
	for _, s := range series {
		graph := asciigraph.Plot(s.Y,
			asciigraph.Height(12),
			asciigraph.Width(90),
			asciigraph.Caption(s.Name),
		)
		fmt.Println(graph)
		fmt.Println()
	}

	names := make([]string, 0, len(meta.Stats))
	for name := range meta.Stats {
		names = append(names, name)
	}
	sort.Strings(names)
	fmt.Println("stats:")
	for _, name := range names {
		fmt.Printf("  %-20s %.6g\n", name, meta.Stats[name])
	}
	return nil
}

func plotRun(cmd *cobra.Command, args []string) error {
	runID := args[0]
	st := storage.New(dataDir)

	meta, err := st.Load(runID)
	if err != nil {
		return err
	}
	series, err := st.LoadSeries(runID)
	if err != nil {
		return err
	}
	if len(series) == 0 {
		return fmt.Errorf("no series stored for run %s", runID)
	}

	if err := render.LinesPNG(outFile, meta.Exercise, "x", "y", series...); err != nil {
		return err
	}
	fmt.Printf("wrote %s\n", outFile)
	return nil
}

func exportJSON(cmd *cobra.Command, args []string) error {
	runID := args[0]
	st := storage.New(dataDir)

	meta, err := st.Load(runID)
	if err != nil {
		return err
	}
	series, err := st.LoadSeries(runID)
	if err != nil {
		return err
	}

	type export struct {
		*storage.RunMetadata
		Series []lab.Series `json:"series,omitempty"`
	}

	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	return enc.Encode(export{RunMetadata: meta, Series: series})
}

func exportCSV(cmd *cobra.Command, args []string) error {
	runID := args[0]
	st := storage.New(dataDir)

	series, err := st.LoadSeries(runID)
	if err != nil {
		return err
	}
	if len(series) == 0 {
		return fmt.Errorf("no series stored for run %s", runID)
	}

	w := csv.NewWriter(os.Stdout)
	defer w.Flush()

	if err := w.Write([]string{"series", "x", "y"}); err != nil {
		return err
	}
	for _, s := range series {
		for i := range s.X {
			row := []string{
				s.Name,
				strconv.FormatFloat(s.X[i], 'f', 6, 64),
				strconv.FormatFloat(s.Y[i], 'f', 6, 64),
			}
			if err := w.Write(row); err != nil {
				return err
			}
		}
	}
	return nil
}

func benchExercise(cmd *cobra.Command, args []string) error {
	name := args[0]

	registry := exercises.NewRegistry()
	ex, err := registry.Get(name)
	if err != nil {
		return err
	}

	scales := []int{1, 4, 16}
	base := lab.Params{Seed: 42, Points: 64, Samples: 512}

	fmt.Printf("benchmarking %s\n\n", name)
	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "POINTS\tSAMPLES\tTIME")

	for _, scale := range scales {
		p := base
		p.Points = base.Points * scale
		p.Samples = base.Samples * scale

		start := time.Now()
		if _, err := ex.Run(context.Background(), p); err != nil {
			return err
		}
		fmt.Fprintf(w, "%d\t%d\t%v\n", p.Points, p.Samples, time.Since(start))
	}
	return w.Flush()
}
