package main

import (
	"fmt"
	"io"
	"log/slog"

	"github.com/katalvlaran/gridpath/bfs"
	"github.com/katalvlaran/gridpath/grid"
	"github.com/katalvlaran/gridpath/scenario"
	"github.com/katalvlaran/gridpath/search"
)

// app runs one scenario and reports on it.
type app struct {
	outW   io.Writer
	logger *slog.Logger
	cfg    *Config
}

func newApp(outW io.Writer, logger *slog.Logger, cfg *Config) *app {
	return &app{outW: outW, logger: logger, cfg: cfg}
}

// Run loads the scenario, searches, and prints the report.
func (a *app) Run() error {
	sc, err := a.load()
	if err != nil {
		return err
	}
	if a.cfg.Algorithm != nil {
		sc.Algorithm = *a.cfg.Algorithm
	}
	a.logger.Info("Scenario loaded.", "name", sc.Name, "algorithm", sc.Algorithm.String(),
		"rows", sc.Board.Rows, "columns", sc.Board.Columns, "walls", len(sc.Walls))

	g, res, err := sc.Run(search.WithLogger(a.logger))
	if err != nil {
		return fmt.Errorf("run scenario %q: %w", sc.Name, err)
	}
	a.logger.Debug("Board analyzed.", "regions", len(g.Regions()), "connected", g.Connected())
	a.logger.Info("Search complete.", "reason", res.Reason.String(), "visited", len(res.Order))

	return a.report(sc, g, res)
}

func (a *app) load() (*scenario.Scenario, error) {
	if a.cfg.ScenarioPath == "" {
		a.logger.Debug("No scenario given, using the default board.")
		return &scenario.Scenario{Name: "default", Board: grid.DefaultConfig()}, nil
	}
	return scenario.Load(a.cfg.ScenarioPath)
}

func (a *app) report(sc *scenario.Scenario, g *grid.Grid, res *search.Result) error {
	fmt.Fprintf(a.outW, "scenario:  %s\n", sc.Name)
	fmt.Fprintf(a.outW, "algorithm: %s\n", sc.Algorithm)
	fmt.Fprintf(a.outW, "result:    %s\n", res.Reason)
	fmt.Fprintf(a.outW, "visited:   %d\n", len(res.Order))
	if path, err := res.Path(); err == nil {
		fmt.Fprintf(a.outW, "steps:     %d\n", len(path)-1)
	} else {
		fmt.Fprintln(a.outW, "steps:     none")
		_, walls := g.FewestWallsPath()
		fmt.Fprintf(a.outW, "blocking:  %d\n", walls)
	}

	if a.cfg.Compare {
		oracle, err := bfs.BFS(g, sc.Board.Start)
		if err != nil {
			return fmt.Errorf("compare: %w", err)
		}
		if steps, ok := oracle.StepsTo(g.FinishIndex()); ok {
			fmt.Fprintf(a.outW, "shortest:  %d\n", steps)
		} else {
			fmt.Fprintln(a.outW, "shortest:  none")
		}
	}

	if a.cfg.Render {
		fmt.Fprintln(a.outW)
		return scenario.Render(a.outW, g, res)
	}
	return nil
}
