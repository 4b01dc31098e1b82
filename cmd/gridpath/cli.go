package main

import (
	"flag"
	"fmt"
	"io"
	"strings"

	"github.com/katalvlaran/gridpath/scenario"
)

// ExitError is an error carrying a process exit code.
type ExitError struct {
	Code    int
	Message string
}

// Error implements the error interface for ExitError.
func (e *ExitError) Error() string {
	return e.Message
}

// Config holds everything a run needs.
type Config struct {
	// ScenarioPath is the HCL scenario; empty selects the default board.
	ScenarioPath string
	// Algorithm overrides the scenario's algorithm when set.
	Algorithm *scenario.Algorithm

	LogFormat string
	LogLevel  string
	Render    bool
	Compare   bool
}

// Parse processes command-line arguments. It returns the Config, whether
// the program should exit cleanly (help was printed), or an ExitError.
func Parse(args []string, output io.Writer) (*Config, bool, error) {
	flagSet := flag.NewFlagSet("gridpath", flag.ContinueOnError)
	flagSet.SetOutput(output)

	flagSet.Usage = func() {
		fmt.Fprint(output, `
gridpath - shortest paths on a 2D grid with Dijkstra or A*.

Usage:
  gridpath [options] [SCENARIO]

Arguments:
  SCENARIO
    Path to an .hcl scenario file. Without one the default 20x50 board
    is searched.

Options:
`)
		flagSet.PrintDefaults()
	}

	scenarioFlag := flagSet.String("scenario", "", "Path to the scenario file.")
	sFlag := flagSet.String("s", "", "Path to the scenario file (shorthand).")
	algorithmFlag := flagSet.String("algorithm", "", "Override the scenario algorithm. Options: 'dijkstra' or 'astar'.")
	logFormatFlag := flagSet.String("log-format", "text", "Log output format. Options: 'text' or 'json'.")
	logLevelFlag := flagSet.String("log-level", "info", "Set the logging level. Options: 'debug', 'info', 'warn', 'error'.")
	renderFlag := flagSet.Bool("render", true, "Print the board with visited cells and the path.")
	compareFlag := flagSet.Bool("compare", false, "Also report the exact shortest step count.")

	if err := flagSet.Parse(args); err != nil {
		if err == flag.ErrHelp {
			return nil, true, nil
		}
		return nil, false, &ExitError{Code: 2, Message: err.Error()}
	}

	cfg := &Config{
		Render:  *renderFlag,
		Compare: *compareFlag,
	}
	switch {
	case *scenarioFlag != "":
		cfg.ScenarioPath = *scenarioFlag
	case *sFlag != "":
		cfg.ScenarioPath = *sFlag
	case flagSet.NArg() > 0:
		cfg.ScenarioPath = flagSet.Arg(0)
	}

	if *algorithmFlag != "" {
		alg, err := scenario.ParseAlgorithm(*algorithmFlag)
		if err != nil {
			return nil, false, &ExitError{Code: 2, Message: "invalid algorithm: must be 'dijkstra' or 'astar'"}
		}
		cfg.Algorithm = &alg
	}

	cfg.LogFormat = strings.ToLower(*logFormatFlag)
	if cfg.LogFormat != "text" && cfg.LogFormat != "json" {
		return nil, false, &ExitError{Code: 2, Message: "invalid log-format: must be 'text' or 'json'"}
	}

	cfg.LogLevel = strings.ToLower(*logLevelFlag)
	switch cfg.LogLevel {
	case "debug", "info", "warn", "error":
	default:
		return nil, false, &ExitError{Code: 2, Message: "invalid log-level: must be 'debug', 'info', 'warn', or 'error'"}
	}

	return cfg, false, nil
}
