package cli

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"path/filepath"
	"strings"

	"github.com/kevindugan/dependencyTree/internal/app"
)

// ExitError is a custom error type that includes a specific exit code.
type ExitError struct {
	Code    int
	Message string
}

// Error implements the error interface for ExitError.
func (e *ExitError) Error() string {
	return e.Message
}

// Parse processes command-line arguments. It returns a populated Config,
// a boolean indicating if the program should exit cleanly, or an ExitError.
func Parse(args []string, output io.Writer) (*app.Config, bool, error) {
	slog.Debug("CLI parser started.")
	flagSet := flag.NewFlagSet("cmakedeps", flag.ContinueOnError)
	flagSet.SetOutput(output)

	flagSet.Usage = func() {
		fmt.Fprint(output, `
cmakedeps - Resolve build order and root components from CMake dependency data.

Usage:
  cmakedeps [options] PATH...

Arguments:
  PATH
    A CMakeCache.txt, a build directory containing one, an .hcl component
    manifest, or a directory of manifests. Several paths are merged.
    Caches of nested sub-builds inside a build directory are skipped.

Modes:
  order   Print a dependency-respecting build order (default).
  roots   Print the components at the top of the target's dependents.
  graph   Export the dependency graph.

Options:
`)
		flagSet.PrintDefaults()
	}

	targetFlag := flagSet.String("target", "", "Component to resolve. Empty resolves every component.")
	tFlag := flagSet.String("t", "", "Component to resolve (shorthand).")
	modeFlag := flagSet.String("mode", string(app.ModeOrder), "What to produce. Options: 'order', 'roots' or 'graph'.")
	formatFlag := flagSet.String("format", "", "Output format. 'text' or 'json' for order and roots, 'dot' or 'mermaid' for graph.")
	strictFlag := flagSet.Bool("strict", false, "Fail on dependencies that no input declares instead of treating them as external.")
	concurrencyFlag := flagSet.Int("concurrency", 4, "Number of inputs loaded in parallel.")
	logFormatFlag := flagSet.String("log-format", "text", "Log output format. Options: 'text' or 'json'.")
	logLevelFlag := flagSet.String("log-level", "warn", "Set the logging level. Options: 'debug', 'info', 'warn', 'error'.")

	if err := flagSet.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return nil, true, nil
		}
		return nil, false, &ExitError{Code: 2, Message: err.Error()}
	}
	slog.Debug("Arguments parsed successfully.")

	if flagSet.NArg() == 0 {
		slog.Debug("No input paths provided, printing usage and exiting.")
		flagSet.Usage()
		return nil, true, nil
	}

	inputs, err := absolutePaths(flagSet.Args())
	if err != nil {
		return nil, false, &ExitError{Code: 2, Message: err.Error()}
	}
	slog.Debug("Input paths determined.", "inputs", inputs)

	target := *targetFlag
	if target == "" {
		target = *tFlag
	}

	logFormat := strings.ToLower(*logFormatFlag)
	if logFormat != "text" && logFormat != "json" {
		return nil, false, &ExitError{Code: 2, Message: "invalid log-format: must be 'text' or 'json'"}
	}

	logLevel := strings.ToLower(*logLevelFlag)
	switch logLevel {
	case "debug", "info", "warn", "error":
		// valid
	default:
		return nil, false, &ExitError{Code: 2, Message: "invalid log-level: must be 'debug', 'info', 'warn', or 'error'"}
	}
	slog.Debug("CLI parameter validation complete.")

	config, err := app.NewConfig(app.Config{
		Inputs:      inputs,
		Target:      target,
		Mode:        app.Mode(strings.ToLower(*modeFlag)),
		Format:      strings.ToLower(*formatFlag),
		Strict:      *strictFlag,
		LogFormat:   logFormat,
		LogLevel:    logLevel,
		Concurrency: *concurrencyFlag,
	})
	if err != nil {
		return nil, false, &ExitError{Code: 2, Message: err.Error()}
	}

	slog.Debug("CLI parser finished successfully.", "config", config)
	return config, false, nil
}

func absolutePaths(paths []string) ([]string, error) {
	out := make([]string, 0, len(paths))
	for _, p := range paths {
		abs, err := filepath.Abs(p)
		if err != nil {
			return nil, fmt.Errorf("invalid path %q: %w", p, err)
		}
		out = append(out, abs)
	}
	return out, nil
}
