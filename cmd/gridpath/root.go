package main

import (
	"errors"
	"fmt"
	"io"
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/gridpath/astar"
	"github.com/katalvlaran/gridpath/gridgraph"
)

// errNotFound is returned when at least one search did not find a path.
var errNotFound = errors.New("gridpath: path not found")

// Output formats.
const (
	formatText = "text"
	formatDOT  = "dot"
	formatYAML = "yaml"
)

// config carries the flags shared by every subcommand.
type config struct {
	format        string
	heuristic     string
	maxExpansions int
	plain         bool
	verbose       bool

	logger *slog.Logger
}

func newRootCmd() *cobra.Command {
	cfg := &config{}

	root := &cobra.Command{
		Use:           "gridpath",
		Short:         "Find cheapest 8-connected paths on occupancy grids",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return cfg.init(cmd.ErrOrStderr())
		},
	}

	flags := root.PersistentFlags()
	flags.StringVar(&cfg.format, "format", formatText, "output format: text, dot or yaml")
	flags.StringVar(&cfg.heuristic, "heuristic", "octile", "search heuristic: octile or zero")
	flags.IntVar(&cfg.maxExpansions, "max-expansions", 0, "abort a search after this many expansions (0 = unlimited)")
	flags.BoolVar(&cfg.plain, "plain", false, "render grids without colors")
	flags.BoolVarP(&cfg.verbose, "verbose", "v", false, "log every expansion")

	root.AddCommand(newDemoCmd(cfg), newRunCmd(cfg), newRandomCmd(cfg))

	return root
}

// init validates the shared flags and sets up logging.
func (cfg *config) init(stderr io.Writer) error {
	switch cfg.format {
	case formatText, formatDOT, formatYAML:
	default:
		return fmt.Errorf("unknown format %q", cfg.format)
	}
	if _, err := cfg.heuristicFunc(); err != nil {
		return err
	}
	if cfg.maxExpansions < 0 {
		return fmt.Errorf("max-expansions cannot be negative (%d)", cfg.maxExpansions)
	}

	level := slog.LevelInfo
	if cfg.verbose {
		level = slog.LevelDebug
	}
	cfg.logger = slog.New(slog.NewTextHandler(stderr, &slog.HandlerOptions{Level: level}))

	return nil
}

func (cfg *config) heuristicFunc() (astar.Heuristic, error) {
	switch cfg.heuristic {
	case "octile":
		return astar.Octile, nil
	case "zero":
		return astar.Zero, nil
	default:
		return nil, fmt.Errorf("unknown heuristic %q", cfg.heuristic)
	}
}

// searchOptions translates the flags into astar options for one scenario.
func (cfg *config) searchOptions(name string) []astar.Option {
	h, _ := cfg.heuristicFunc()
	opts := []astar.Option{
		astar.WithHeuristic(h),
		astar.WithMaxExpansions(cfg.maxExpansions),
	}
	if cfg.verbose {
		log := cfg.logger.With("scenario", name)
		opts = append(opts, astar.WithOnExpand(func(c gridgraph.Cell, g float64) {
			log.Debug("expand", "cell", c.String(), "g", g)
		}))
	}

	return opts
}
