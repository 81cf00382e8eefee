package main

import (
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/mattn/go-isatty"
	"github.com/san-kum/mandelterm/internal/analysis"
	"github.com/san-kum/mandelterm/internal/config"
	"github.com/san-kum/mandelterm/internal/driver"
	"github.com/san-kum/mandelterm/internal/export"
	"github.com/san-kum/mandelterm/internal/grid"
	"github.com/san-kum/mandelterm/internal/mandel"
	"github.com/san-kum/mandelterm/internal/storage"
	"github.com/san-kum/mandelterm/internal/viz"
	"github.com/spf13/cobra"
)

var (
	dataDir    string
	configFile string
	preset     string
	palette    string
	theme      string
	width      int
	height     int
	minX, maxX float64
	minY, maxY float64
	// Classic demo
	frames int
	noWait bool
	// render / show
	mirror  bool
	scroll  int
	braille bool
	// live
	fps int
	// stats
	statsID string
	// save / export
	name       string
	outFile    string
	withCounts bool
)

// main registers the commands and runs the classic demo when no
// subcommand is given. It exits with status 1 if the command fails.
func main() {
	rootCmd := &cobra.Command{
		Use:          "mandelterm",
		Short:        "ascii mandelbrot renderer",
		Args:         cobra.NoArgs,
		SilenceUsage: true,
		RunE:         runClassic,
	}

	pf := rootCmd.PersistentFlags()
	pf.StringVar(&dataDir, "data", ".mandelterm", "data directory")
	pf.StringVar(&configFile, "config", "", "config file path (yaml)")
	pf.StringVar(&preset, "preset", "", "use preset region")
	pf.StringVar(&palette, "palette", "", "palette name or literal characters")
	pf.StringVar(&theme, "theme", config.DefaultTheme, "color theme")
	pf.IntVar(&width, "width", mandel.DefaultWidth, "grid width")
	pf.IntVar(&height, "height", mandel.DefaultHeight, "grid height")
	pf.Float64Var(&minX, "min-x", mandel.DefaultRegion.MinX, "left edge of the region")
	pf.Float64Var(&maxX, "max-x", mandel.DefaultRegion.MaxX, "right edge of the region")
	pf.Float64Var(&minY, "min-y", mandel.DefaultRegion.MinY, "top edge of the region")
	pf.Float64Var(&maxY, "max-y", mandel.DefaultRegion.MaxY, "bottom edge of the region")

	rootCmd.Flags().IntVar(&frames, "frames", config.DefaultFrames, "scroll frames to print")
	rootCmd.Flags().BoolVar(&noWait, "no-wait", false, "exit without waiting for a key")

	renderCmd := &cobra.Command{
		Use:   "render",
		Short: "print a single frame",
		Args:  cobra.NoArgs,
		RunE:  runRender,
	}
	renderCmd.Flags().BoolVar(&mirror, "mirror", false, "mirror left to right")
	renderCmd.Flags().IntVar(&scroll, "scroll", 0, "scroll rows up (negative scrolls down)")
	renderCmd.Flags().BoolVar(&braille, "braille", false, "draw members with braille dots")

	liveCmd := &cobra.Command{
		Use:   "live",
		Short: "animate the scroll in the terminal",
		Args:  cobra.NoArgs,
		RunE:  runLive,
	}
	liveCmd.Flags().IntVar(&fps, "fps", config.DefaultFPS, "frame rate")

	browseCmd := &cobra.Command{
		Use:   "browse",
		Short: "pick a preset region interactively",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := resolveConfig(cmd)
			if err != nil {
				return err
			}
			return viz.RunBrowser(cfg)
		},
	}

	statsCmd := &cobra.Command{
		Use:   "stats",
		Short: "escape count statistics",
		Args:  cobra.NoArgs,
		RunE:  runStats,
	}
	statsCmd.Flags().StringVar(&statsID, "id", "", "summarize a stored render instead of a fresh one")

	presetsCmd := &cobra.Command{
		Use:   "presets",
		Short: "list preset regions and palettes",
		Args:  cobra.NoArgs,
		RunE:  listPresets,
	}

	saveCmd := &cobra.Command{
		Use:   "save",
		Short: "render and store a frame",
		Args:  cobra.NoArgs,
		RunE:  saveRender,
	}
	saveCmd.Flags().StringVar(&name, "name", "", "render name (defaults to preset or 'custom')")

	listCmd := &cobra.Command{
		Use:   "list",
		Short: "list stored renders",
		Args:  cobra.NoArgs,
		RunE:  listRenders,
	}

	showCmd := &cobra.Command{
		Use:   "show [render_id]",
		Short: "print a stored render",
		Args:  cobra.ExactArgs(1),
		RunE:  showRender,
	}
	showCmd.Flags().BoolVar(&mirror, "mirror", false, "mirror left to right")
	showCmd.Flags().IntVar(&scroll, "scroll", 0, "scroll rows up (negative scrolls down)")

	exportJSONCmd := &cobra.Command{
		Use:   "export-json",
		Short: "export a render to JSON",
		Args:  cobra.NoArgs,
		RunE:  exportJSON,
	}
	exportJSONCmd.Flags().StringVar(&outFile, "out", "", "output file (default stdout)")
	exportJSONCmd.Flags().BoolVar(&withCounts, "counts", false, "include escape counts")

	exportSVGCmd := &cobra.Command{
		Use:   "export-svg [path]",
		Short: "export a render to SVG",
		Args:  cobra.ExactArgs(1),
		RunE:  exportSVG,
	}
	exportSVGCmd.Flags().BoolVar(&braille, "braille", false, "draw members with braille dots")
	exportSVGCmd.Flags().BoolVar(&mirror, "mirror", false, "mirror left to right")

	initCmd := &cobra.Command{
		Use:   "init-config [path]",
		Short: "write the effective configuration as yaml",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := resolveConfig(cmd)
			if err != nil {
				return err
			}
			if err := config.Save(args[0], cfg); err != nil {
				return err
			}
			fmt.Printf("wrote %s\n", args[0])
			return nil
		},
	}

	rootCmd.AddCommand(renderCmd, liveCmd, browseCmd, statsCmd, presetsCmd, saveCmd, listCmd, showCmd, exportJSONCmd, exportSVGCmd, initCmd)

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

// resolveConfig layers preset, config file and explicitly set flags, in
// that order.
func resolveConfig(cmd *cobra.Command) (*config.Config, error) {
	cfg := config.DefaultConfig()

	if preset != "" {
		cfg = config.GetPreset(preset)
		if cfg == nil {
			return nil, fmt.Errorf("unknown preset: %s (available: %v)", preset, config.ListPresets())
		}
	}

	if configFile != "" {
		loaded, err := config.Load(configFile)
		if err != nil {
			return nil, fmt.Errorf("failed to load config: %w", err)
		}
		cfg = loaded
	}

	flags := cmd.Flags()
	if flags.Changed("palette") {
		if p, ok := config.Palette(palette); ok {
			cfg.Palette = p
		} else {
			cfg.Palette = palette
		}
	}
	if flags.Changed("theme") {
		cfg.Theme = theme
	}
	if flags.Changed("width") {
		cfg.Width = width
	}
	if flags.Changed("height") {
		cfg.Height = height
	}
	if flags.Changed("min-x") {
		cfg.Bounds.MinX = minX
	}
	if flags.Changed("max-x") {
		cfg.Bounds.MaxX = maxX
	}
	if flags.Changed("min-y") {
		cfg.Bounds.MinY = minY
	}
	if flags.Changed("max-y") {
		cfg.Bounds.MaxY = maxY
	}
	if flags.Changed("frames") {
		cfg.Frames = frames
	}
	if flags.Changed("fps") {
		cfg.FPS = fps
	}

	if err := cfg.Params().Validate(); err != nil {
		return nil, err
	}
	viz.SetTheme(cfg.Theme)
	return cfg, nil
}

func runClassic(cmd *cobra.Command, args []string) error {
	cfg, err := resolveConfig(cmd)
	if err != nil {
		return err
	}

	if err := driver.Classic(os.Stdout, cfg.Params(), cfg.Frames); err != nil {
		return err
	}

	if noWait || !isatty.IsTerminal(os.Stdin.Fd()) {
		return nil
	}
	return viz.WaitForKey(os.Stdin, os.Stdout, "press any key to exit")
}

func runRender(cmd *cobra.Command, args []string) error {
	cfg, err := resolveConfig(cmd)
	if err != nil {
		return err
	}

	var g *grid.Grid
	if braille {
		g, err = viz.Braille(cfg.Params())
	} else {
		g, err = mandel.Render(cfg.Params())
	}
	if err != nil {
		return err
	}

	return grid.Print(os.Stdout, transform(g))
}

func transform(g *grid.Grid) *grid.Grid {
	if mirror {
		g = grid.Mirror(g)
	}
	if scroll != 0 {
		g = grid.ScrollBy(g, scroll)
	}
	return g
}

func runLive(cmd *cobra.Command, args []string) error {
	cfg, err := resolveConfig(cmd)
	if err != nil {
		return err
	}
	title := preset
	if title == "" {
		title = "mandelbrot"
	}
	return viz.RunLive(cfg.Params(), cfg.FPS, title)
}

func runStats(cmd *cobra.Command, args []string) error {
	p, counts, err := statsSource(cmd)
	if err != nil {
		return err
	}
	summary := analysis.Summarize(counts)

	fmt.Printf("region: x [%g, %g] y [%g, %g]\n", p.Bounds.MinX, p.Bounds.MaxX, p.Bounds.MinY, p.Bounds.MaxY)
	fmt.Printf("grid: %dx%d, %d iterations\n\n", p.Width, p.Height, p.Iterations())
	fmt.Printf("  cells:   %d\n", summary.Cells)
	fmt.Printf("  members: %d (%.1f%%)\n", summary.Members, 100*summary.MemberRatio)
	fmt.Printf("  mean escape: %.3f\n", summary.MeanEscape)
	fmt.Printf("  max escape:  %d\n\n", summary.MaxEscape)

	if plot := analysis.PlotHistogram(analysis.Histogram(counts, p.Iterations()), 80); plot != "" {
		fmt.Println(plot)
		fmt.Println()
	}
	if plot := analysis.PlotProfile(analysis.RowProfile(counts), 80); plot != "" {
		fmt.Println(plot)
	}
	return nil
}

// statsSource returns the escape counts of the stored render named by --id,
// or of a fresh render of the resolved config.
func statsSource(cmd *cobra.Command) (mandel.Params, [][]int, error) {
	if statsID == "" {
		cfg, err := resolveConfig(cmd)
		if err != nil {
			return mandel.Params{}, nil, err
		}
		p := cfg.Params()
		return p, mandel.Counts(p), nil
	}

	st := storage.New(dataDir)
	meta, err := st.Load(statsID)
	if err != nil {
		return mandel.Params{}, nil, err
	}
	counts, err := st.LoadCounts(statsID)
	if err != nil {
		return mandel.Params{}, nil, err
	}
	return meta.Params, counts, nil
}

func listPresets(cmd *cobra.Command, args []string) error {
	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "PRESET\tMIN_X\tMAX_X\tMIN_Y\tMAX_Y")
	for _, n := range config.ListPresets() {
		b := config.Presets[n].Bounds
		fmt.Fprintf(w, "%s\t%g\t%g\t%g\t%g\n", n, b.MinX, b.MaxX, b.MinY, b.MaxY)
	}
	if err := w.Flush(); err != nil {
		return err
	}

	fmt.Println("\npalettes:")
	for _, n := range config.ListPalettes() {
		p, _ := config.Palette(n)
		fmt.Printf("  %-14s %q\n", n, p)
	}
	return nil
}

func saveRender(cmd *cobra.Command, args []string) error {
	cfg, err := resolveConfig(cmd)
	if err != nil {
		return err
	}
	p := cfg.Params()

	g, err := mandel.Render(p)
	if err != nil {
		return err
	}

	st := storage.New(dataDir)
	if err := st.Init(); err != nil {
		return err
	}

	label := name
	if label == "" {
		label = preset
	}
	if label == "" {
		label = "custom"
	}

	renderID, err := st.Save(label, p, g, mandel.Counts(p))
	if err != nil {
		return err
	}
	fmt.Printf("render id: %s\n", renderID)
	return nil
}

func listRenders(cmd *cobra.Command, args []string) error {
	st := storage.New(dataDir)
	renders, err := st.List()
	if err != nil {
		return err
	}

	if len(renders) == 0 {
		fmt.Println("no renders found")
		return nil
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tNAME\tTIME\tSIZE\tITER\tMEMBERS")

	for _, r := range renders {
		fmt.Fprintf(w, "%s\t%s\t%s\t%dx%d\t%d\t%.1f%%\n",
			r.ID,
			r.Name,
			r.Timestamp.Format("2006-01-02 15:04:05"),
			r.Params.Width,
			r.Params.Height,
			r.Params.Iterations(),
			100*r.Summary.MemberRatio,
		)
	}

	return w.Flush()
}

func showRender(cmd *cobra.Command, args []string) error {
	st := storage.New(dataDir)
	meta, err := st.Load(args[0])
	if err != nil {
		return err
	}
	g, err := st.LoadGrid(args[0])
	if err != nil {
		return err
	}

	fmt.Printf("render: %s (%s)\n", meta.ID, meta.Name)
	fmt.Printf("region: x [%g, %g] y [%g, %g]\n\n", meta.Params.Bounds.MinX, meta.Params.Bounds.MaxX, meta.Params.Bounds.MinY, meta.Params.Bounds.MaxY)
	return grid.Print(os.Stdout, transform(g))
}

func exportJSON(cmd *cobra.Command, args []string) error {
	cfg, err := resolveConfig(cmd)
	if err != nil {
		return err
	}
	p := cfg.Params()

	g, err := mandel.Render(p)
	if err != nil {
		return err
	}
	counts := mandel.Counts(p)

	data := storage.NewExport(p, g, counts)
	if !withCounts {
		data.Counts = nil
	}

	if outFile == "" {
		return storage.ExportJSON(os.Stdout, data)
	}
	if err := storage.ExportJSONFile(outFile, data); err != nil {
		return err
	}
	fmt.Printf("exported to %s\n", outFile)
	return nil
}

func exportSVG(cmd *cobra.Command, args []string) error {
	cfg, err := resolveConfig(cmd)
	if err != nil {
		return err
	}

	fill := string(viz.CurrentTheme.Far)
	var svg string
	if braille {
		g, err := viz.Braille(cfg.Params())
		if err != nil {
			return err
		}
		svg = export.BrailleToSVG(transform(g), 4, fill)
	} else {
		g, err := mandel.Render(cfg.Params())
		if err != nil {
			return err
		}
		svg = export.GridToSVG(transform(g), 14, fill)
	}

	if err := os.WriteFile(args[0], []byte(svg), 0644); err != nil {
		return err
	}
	fmt.Printf("exported to %s\n", args[0])
	return nil
}
