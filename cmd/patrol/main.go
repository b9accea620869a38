package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"patrol/internal/config"
	"patrol/internal/grid"
	"patrol/internal/patrol"
	"patrol/internal/search"
)

var (
	// Global flags
	verbose    bool
	configPath string
	workers    int

	cfg    *config.Config
	logger *zap.Logger
)

var rootCmd = &cobra.Command{
	Use:   "patrol",
	Short: "Guard patrol simulator",
	Long: `patrol simulates a guard walking a grid: it moves forward until the
cell ahead is an obstacle, turns right, and stops once it leaves the map.

It reports how many cells the guard visits and how many single obstacle
placements on that path would trap it in a loop.`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		var err error
		cfg, err = config.Load(configPath)
		if err != nil {
			return err
		}
		// an explicit flag wins over both workers and sequential from the file
		if cmd.Flags().Changed("workers") {
			cfg.Workers = workers
			cfg.Sequential = false
			if err := cfg.Validate(); err != nil {
				return err
			}
		}

		zc := zap.NewProductionConfig()
		lvl, err := cfg.Level()
		if err != nil {
			return err
		}
		if verbose {
			lvl = zapcore.DebugLevel
		}
		zc.Level = zap.NewAtomicLevelAt(lvl)
		logger, err = zc.Build()
		if err != nil {
			return fmt.Errorf("failed to initialize logger: %w", err)
		}
		return nil
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		if logger != nil {
			_ = logger.Sync()
		}
	},
}

// solveCmd prints both answers for a grid file
var solveCmd = &cobra.Command{
	Use:   "solve <file>",
	Short: "Print the visited cell count and the looping obstruction count",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return runSolve(cmd.Context(), cmd.OutOrStdout(), args[0])
	},
}

// traceCmd draws the baseline path
var traceCmd = &cobra.Command{
	Use:   "trace <file>",
	Short: "Print the grid with the guard's path marked",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return runTrace(cmd.OutOrStdout(), args[0])
	},
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable debug logging")
	rootCmd.PersistentFlags().StringVarP(&configPath, "config", "c", "", "Path to a YAML config file")
	rootCmd.PersistentFlags().IntVarP(&workers, "workers", "w", 0, "Candidates evaluated at once (0 = GOMAXPROCS, overrides sequential)")

	rootCmd.AddCommand(solveCmd, traceCmd)
}

func loadGrid(path string) (*grid.Grid, grid.State, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, grid.State{}, fmt.Errorf("failed to open grid: %w", err)
	}
	defer f.Close()

	g, start, err := grid.ReadFrom(f)
	if err != nil {
		return nil, grid.State{}, fmt.Errorf("%s: %w", path, err)
	}
	logger.Debug("Grid loaded",
		zap.String("path", path),
		zap.Int("rows", g.Rows()),
		zap.Int("cols", g.Cols()),
		zap.Stringer("start", start))
	return g, start, nil
}

func runSolve(ctx context.Context, w io.Writer, path string) error {
	g, start, err := loadGrid(path)
	if err != nil {
		return err
	}

	res, err := search.New(logger, search.WithWorkers(cfg.EffectiveWorkers())).Run(ctx, g, start)
	if err != nil {
		return err
	}
	fmt.Fprintln(w, res.Visited)
	fmt.Fprintln(w, res.Count)
	return nil
}

func runTrace(w io.Writer, path string) error {
	g, start, err := loadGrid(path)
	if err != nil {
		return err
	}

	p, err := patrol.TrackPath(g, start)
	if err != nil {
		return err
	}
	fmt.Fprint(w, grid.Render(g, start, p.Positions))
	fmt.Fprintf(w, "visited: %d, steps: %d\n", p.Visited(), p.Steps)
	return nil
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := rootCmd.ExecuteContext(ctx); err != nil {
		stop()
		os.Exit(1)
	}
}
