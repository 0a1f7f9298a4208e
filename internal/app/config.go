package app

import (
	"errors"
	"fmt"
)

// Mode selects what a run produces.
type Mode string

const (
	ModeOrder Mode = "order"
	ModeRoots Mode = "roots"
	ModeGraph Mode = "graph"
)

// Output formats. Text and JSON apply to order and roots, DOT and Mermaid
// to graph.
const (
	FormatText    = "text"
	FormatJSON    = "json"
	FormatDOT     = "dot"
	FormatMermaid = "mermaid"
)

// Config holds all the necessary configuration for an App instance to run.
type Config struct {
	Inputs []string // CMake caches, HCL manifests or directories holding them
	Target string   // component to resolve; empty resolves everything
	Mode   Mode
	Format string
	Strict bool // undeclared dependencies are errors

	LogFormat   string
	LogLevel    string
	Concurrency int
}

// NewConfig validates cfg and fills in defaults for the mode and format.
func NewConfig(cfg Config) (*Config, error) {
	if len(cfg.Inputs) == 0 {
		return nil, errors.New("at least one input path is required")
	}

	if cfg.Mode == "" {
		cfg.Mode = ModeOrder
	}
	switch cfg.Mode {
	case ModeOrder, ModeGraph:
	case ModeRoots:
		if cfg.Target == "" {
			return nil, errors.New("mode 'roots' requires a target")
		}
	default:
		return nil, fmt.Errorf("invalid mode %q: must be 'order', 'roots' or 'graph'", cfg.Mode)
	}

	if cfg.Format == "" {
		cfg.Format = defaultFormat(cfg.Mode)
	}
	if !formatAllowed(cfg.Mode, cfg.Format) {
		return nil, fmt.Errorf("format %q is not supported in mode '%s'", cfg.Format, cfg.Mode)
	}

	if cfg.Concurrency < 0 {
		return nil, errors.New("concurrency cannot be negative")
	}

	return &cfg, nil
}

func defaultFormat(mode Mode) string {
	if mode == ModeGraph {
		return FormatDOT
	}
	return FormatText
}

func formatAllowed(mode Mode, format string) bool {
	if mode == ModeGraph {
		return format == FormatDOT || format == FormatMermaid
	}
	return format == FormatText || format == FormatJSON
}
