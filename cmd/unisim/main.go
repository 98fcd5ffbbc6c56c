package main

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"text/tabwriter"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/san-kum/unisim/internal/config"
	"github.com/san-kum/unisim/internal/physics"
	"github.com/san-kum/unisim/internal/storage"
	"github.com/san-kum/unisim/internal/tui"
	"github.com/san-kum/unisim/internal/universe"
)

var (
	dataDir    string
	size       int
	span       float64
	seed       int64
	tickSize   float64
	ticks      int
	workers    int
	frameRate  int
	preset     string
	configFile string
	noGravity  bool
	format     string
)

func main() {
	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	})))

	rootCmd := &cobra.Command{
		Use:   "unisim",
		Short: "procedurally generated universe simulation",
		RunE:  runLive,
	}
	rootCmd.PersistentFlags().StringVar(&dataDir, "data", ".unisim", "data directory")

	addSimFlags := func(cmd *cobra.Command) {
		cmd.Flags().IntVar(&size, "size", config.DefaultSize, "universe size")
		cmd.Flags().Float64Var(&span, "span", config.DefaultSpan, "coordinate half-extent")
		cmd.Flags().Int64Var(&seed, "seed", 0, "generation seed (0 = random)")
		cmd.Flags().Float64Var(&tickSize, "dt", config.DefaultTickSize, "tick size in years")
		cmd.Flags().IntVar(&workers, "workers", 1, "force pass workers")
		cmd.Flags().BoolVar(&noGravity, "no-gravity", false, "disable gravity")
		cmd.Flags().StringVar(&preset, "preset", "", "use preset configuration")
		cmd.Flags().StringVar(&configFile, "config", "", "config file path (yaml)")
	}

	runCmd := &cobra.Command{
		Use:   "run",
		Short: "run a headless simulation and record it",
		RunE:  runHeadless,
	}
	addSimFlags(runCmd)
	runCmd.Flags().IntVar(&ticks, "ticks", config.DefaultTicks, "ticks to simulate")

	liveCmd := &cobra.Command{
		Use:   "live",
		Short: "interactive viewer",
		RunE:  runLive,
	}
	addSimFlags(liveCmd)
	liveCmd.Flags().IntVar(&frameRate, "fps", config.DefaultFrameRate, "frame rate")

	listCmd := &cobra.Command{
		Use:   "list",
		Short: "list recorded runs",
		RunE:  listRuns,
	}

	exportCmd := &cobra.Command{
		Use:   "export [run_id]",
		Short: "export a recorded run",
		Args:  cobra.ExactArgs(1),
		RunE:  exportRun,
	}
	exportCmd.Flags().StringVar(&format, "format", "json", "output format (json|csv)")

	presetsCmd := &cobra.Command{
		Use:   "presets",
		Short: "list available presets",
		Run: func(cmd *cobra.Command, args []string) {
			for _, name := range config.ListPresets() {
				fmt.Println(name)
			}
		},
	}

	benchCmd := &cobra.Command{
		Use:   "bench",
		Short: "benchmark tick throughput across universe sizes",
		RunE:  benchSizes,
	}
	benchCmd.Flags().IntVar(&workers, "workers", 1, "force pass workers")

	rootCmd.AddCommand(runCmd, liveCmd, listCmd, exportCmd, presetsCmd, benchCmd)

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

// buildConfig merges preset, config file, and flags, flags winning.
func buildConfig(cmd *cobra.Command) (*config.Config, error) {
	cfg := config.DefaultConfig()

	if preset != "" {
		p := config.GetPreset(preset)
		if p == nil {
			return nil, fmt.Errorf("unknown preset: %s (available: %v)", preset, config.ListPresets())
		}
		*cfg = *p
	}

	if configFile != "" {
		loaded, err := config.Load(configFile)
		if err != nil {
			return nil, fmt.Errorf("load config: %w", err)
		}
		cfg = loaded
	}

	if cmd.Flags().Changed("size") {
		cfg.Size = size
	}
	if cmd.Flags().Changed("span") {
		cfg.Span = span
	}
	if cmd.Flags().Changed("seed") {
		cfg.Seed = seed
	}
	if cmd.Flags().Changed("dt") {
		cfg.TickSize = tickSize
	}
	if cmd.Flags().Changed("workers") {
		cfg.Workers = workers
	}
	if cmd.Flags().Changed("ticks") {
		cfg.Ticks = ticks
	}
	if cmd.Flags().Changed("fps") {
		cfg.FrameRate = frameRate
	}
	if noGravity {
		cfg.Gravity = false
	}
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano() % 1_000_000
	}
	return cfg, nil
}

func buildWorld(cfg *config.Config) *universe.World {
	eng := physics.NewEngine()
	eng.GravityEnabled = cfg.Gravity
	eng.CollisionDetection = cfg.Collisions
	eng.Workers = cfg.Workers

	w := universe.New(eng, universe.GenConfig{Size: cfg.Size, Span: cfg.Span, Seed: cfg.Seed})
	if cfg.TickSize != universe.DefaultTickSize {
		if err := w.AdjustTickSize(cfg.TickSize - universe.DefaultTickSize); err != nil {
			slog.Warn("tick size out of range, keeping default", "requested", cfg.TickSize)
		}
	}
	w.Generate()
	return w
}

func openStore() (*storage.Store, error) {
	if err := os.MkdirAll(dataDir, 0755); err != nil {
		return nil, err
	}
	return storage.Open(filepath.Join(dataDir, "runs.db"))
}

func runHeadless(cmd *cobra.Command, args []string) error {
	cfg, err := buildConfig(cmd)
	if err != nil {
		return err
	}

	w := buildWorld(cfg)
	start := w.Len()
	slog.Info("universe generated", "bodies", start, "seed", cfg.Seed, "size", cfg.Size)

	began := time.Now()
	for i := 0; i < cfg.Ticks; i++ {
		w.Tick()
	}
	elapsed := time.Since(began)
	slog.Info("simulation finished",
		"ticks", cfg.Ticks,
		"elapsed", elapsed,
		"bodies", w.Len(),
		"collisions_removed", start-w.Len(),
	)

	st, err := openStore()
	if err != nil {
		return err
	}
	defer st.Close()

	runID, err := st.SaveRun(w, cfg.Seed, cfg.Size, cfg.Ticks, start)
	if err != nil {
		return fmt.Errorf("save run: %w", err)
	}
	slog.Info("run recorded", "id", runID)

	tw := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	for _, row := range w.Statistics().Rows() {
		fmt.Fprintf(tw, "%s\t%s\n", row[0], row[1])
	}
	return tw.Flush()
}

func runLive(cmd *cobra.Command, args []string) error {
	cfg, err := buildConfig(cmd)
	if err != nil {
		return err
	}

	w := buildWorld(cfg)
	slog.Info("universe generated", "bodies", w.Len(), "seed", cfg.Seed)

	p := tea.NewProgram(tui.NewModel(w, cfg.FrameRate))
	_, err = p.Run()
	return err
}

func listRuns(cmd *cobra.Command, args []string) error {
	st, err := openStore()
	if err != nil {
		return err
	}
	defer st.Close()

	runs, err := st.ListRuns()
	if err != nil {
		return err
	}
	if len(runs) == 0 {
		fmt.Println("no runs recorded")
		return nil
	}

	tw := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "ID\tCREATED\tSEED\tSIZE\tTICKS\tBODIES\tSIM TIME")
	for _, r := range runs {
		fmt.Fprintf(tw, "%s\t%s\t%d\t%d\t%d\t%d→%d\t%.0f\n",
			r.ID,
			r.CreatedAt.Format("2006-01-02 15:04:05"),
			r.Seed, r.Size, r.Ticks,
			r.BodiesStart, r.BodiesEnd,
			r.SimTime,
		)
	}
	return tw.Flush()
}

func exportRun(cmd *cobra.Command, args []string) error {
	st, err := openStore()
	if err != nil {
		return err
	}
	defer st.Close()

	switch format {
	case "json":
		return st.ExportJSON(os.Stdout, args[0])
	case "csv":
		return st.ExportCSV(os.Stdout, args[0])
	default:
		return fmt.Errorf("unknown format: %s", format)
	}
}

func benchSizes(cmd *cobra.Command, args []string) error {
	sizes := []int{500, 1000, 3000}
	tickCounts := []int{100, 500}

	tw := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "SIZE\tBODIES\tTICKS\tTIME\tTICKS/SEC")

	for _, sz := range sizes {
		for _, n := range tickCounts {
			eng := physics.NewEngine()
			eng.Workers = workers
			w := universe.New(eng, universe.GenConfig{Size: sz, Span: 3000, Seed: 42})
			w.Generate()
			bodies := w.Len()

			start := time.Now()
			for i := 0; i < n; i++ {
				w.Tick()
			}
			elapsed := time.Since(start)

			fmt.Fprintf(tw, "%d\t%d\t%d\t%v\t%.0f\n",
				sz, bodies, n, elapsed.Round(time.Millisecond),
				float64(n)/elapsed.Seconds())
		}
	}
	return tw.Flush()
}
