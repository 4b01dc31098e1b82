// Command gridpath loads a scenario, runs Dijkstra or A* on it and prints
// the visited cells and the path found.
package main

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
)

func main() {
	// Minimal logger until flags are parsed.
	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	})))

	if err := run(os.Stdout, os.Stderr, os.Args[1:]); err != nil {
		var exitErr *ExitError
		if errors.As(err, &exitErr) {
			fmt.Fprintln(os.Stderr, exitErr.Message)
			os.Exit(exitErr.Code)
		}
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// run is main without the process exit, for tests. Results go to outW and
// logs to logW.
func run(outW, logW io.Writer, args []string) error {
	cfg, shouldExit, err := Parse(args, outW)
	if err != nil {
		return err
	}
	if shouldExit {
		return nil
	}

	logger := newLogger(cfg.LogLevel, cfg.LogFormat, logW)
	return newApp(outW, logger, cfg).Run()
}
