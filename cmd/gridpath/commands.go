package main

import (
	"github.com/spf13/cobra"

	"github.com/katalvlaran/gridpath/scenario"
)

func newDemoCmd(cfg *config) *cobra.Command {
	return &cobra.Command{
		Use:   "demo",
		Short: "Run the built-in office floor plan searches",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runScenarios(cmd.OutOrStdout(), cfg, scenario.OfficeSuite())
		},
	}
}

func newRunCmd(cfg *config) *cobra.Command {
	return &cobra.Command{
		Use:   "run FILE",
		Short: "Search a scenario loaded from a YAML file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := scenario.Load(args[0])
			if err != nil {
				return err
			}
			cfg.logger.Info("scenario loaded", "name", s.Name, "rows", len(s.Grid), "cols", len(s.Grid[0]))

			return runScenarios(cmd.OutOrStdout(), cfg, []*scenario.Scenario{s})
		},
	}
}

func newRandomCmd(cfg *config) *cobra.Command {
	ro := scenario.DefaultRandomOptions()
	var save string

	cmd := &cobra.Command{
		Use:   "random",
		Short: "Generate a random grid and search it",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			s, err := scenario.Random(ro)
			if err != nil {
				return err
			}
			if save != "" {
				if err := s.Save(save); err != nil {
					return err
				}
				cfg.logger.Info("scenario saved", "name", s.Name, "path", save)
			}

			return runScenarios(cmd.OutOrStdout(), cfg, []*scenario.Scenario{s})
		},
	}

	flags := cmd.Flags()
	flags.IntVar(&ro.Rows, "rows", ro.Rows, "grid rows")
	flags.IntVar(&ro.Cols, "cols", ro.Cols, "grid columns")
	flags.IntVar(&ro.Density, "density", ro.Density, "obstacle percentage, 0..100")
	flags.IntVar(&ro.MaxCost, "max-cost", ro.MaxCost, "largest terrain cost (1 = uniform)")
	flags.Int64Var(&ro.Seed, "seed", ro.Seed, "generator seed (0 = random)")
	flags.StringVar(&save, "save", "", "write the generated scenario to this YAML file")

	return cmd
}
