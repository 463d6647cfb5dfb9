package main

import (
	"bytes"
	"fmt"
	"io"
	"strings"

	"gopkg.in/yaml.v2"

	"github.com/katalvlaran/gridpath/astar"
	"github.com/katalvlaran/gridpath/gridgraph"
	"github.com/katalvlaran/gridpath/render"
	"github.com/katalvlaran/gridpath/scenario"
)

// runScenarios searches each scenario and writes the results in cfg.format.
// It returns errNotFound if any search came back without a path.
func runScenarios(w io.Writer, cfg *config, suite []*scenario.Scenario) error {
	reports := make([]scenario.Report, 0, len(suite))
	for _, s := range suite {
		gg, res, rep, err := s.Run(cfg.searchOptions(s.Name)...)
		if err != nil {
			return fmt.Errorf("%s: %w", s.Name, err)
		}
		cfg.logger.Info("search finished",
			"scenario", rep.Name, "found", rep.Found, "cost", rep.Cost,
			"expanded", rep.Expanded, "pushed", rep.Pushed)
		reports = append(reports, rep)

		switch cfg.format {
		case formatText:
			err = writeText(w, cfg, s, gg, res, rep)
		case formatDOT:
			err = writeDOT(w, gg, res)
		}
		if err != nil {
			return err
		}
	}

	if cfg.format == formatYAML {
		out, err := yaml.Marshal(reports)
		if err != nil {
			return err
		}
		if _, err = w.Write(out); err != nil {
			return err
		}
	}

	for _, rep := range reports {
		if !rep.Found {
			return errNotFound
		}
	}

	return nil
}

// writeText renders one scenario into a buffer and writes it to w in one call.
func writeText(w io.Writer, cfg *config, s *scenario.Scenario, gg *gridgraph.GridGraph, res astar.Result, rep scenario.Report) error {
	var buf bytes.Buffer
	fmt.Fprintf(&buf, "== %s: %s -> %s ==\n", rep.Name, s.StartCell(), s.GoalCell())
	if rep.Found {
		cells := make([]string, len(res.Path))
		for i, c := range res.Path {
			cells[i] = c.String()
		}
		fmt.Fprintf(&buf, "path:  %s\n", strings.Join(cells, " "))
		fmt.Fprintf(&buf, "cost:  %.3f (%d steps)\n", rep.Cost, rep.Steps)
	} else {
		fmt.Fprintf(&buf, "no path: %s\n", rep.Error)
		if _, walls, err := gg.Breach(s.StartCell(), s.GoalCell()); err == nil && walls > 0 {
			fmt.Fprintf(&buf, "clearing %d wall(s) would connect the endpoints\n", walls)
		}
	}
	fmt.Fprintf(&buf, "stats: %d expanded, %d pushed\n", rep.Expanded, rep.Pushed)

	styles := render.DefaultStyles()
	if cfg.plain {
		styles = render.PlainStyles()
	}
	if err := render.Grid(&buf, gg, res.Path, styles); err != nil {
		return err
	}
	if gg.HasCosts() {
		buf.WriteString("costs:\n")
		if err := render.Costs(&buf, gg); err != nil {
			return err
		}
	}
	buf.WriteByte('\n')
	_, err := buf.WriteTo(w)

	return err
}

func writeDOT(w io.Writer, gg *gridgraph.GridGraph, res astar.Result) error {
	out, err := render.DOT(gg, res.Path)
	if err != nil {
		return fmt.Errorf("render dot: %w", err)
	}
	_, err = io.WriteString(w, out)

	return err
}
