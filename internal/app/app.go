package app

import (
	"io"
	"log/slog"

	"github.com/kevindugan/dependencyTree/internal/config"
	"github.com/kevindugan/dependencyTree/internal/loader"
)

// App encapsulates the application's dependencies, configuration, and lifecycle.
type App struct {
	outW   io.Writer
	logger *slog.Logger
	config *Config
	loader config.Loader
}

// NewApp is the constructor for the main application. Results are written
// to outW and logs to logW, each App getting its own isolated logger. A nil
// loader selects the default one that understands CMake caches and HCL
// manifests.
func NewApp(outW, logW io.Writer, cfg *Config, ldr config.Loader) *App {
	logger := newLogger(cfg.LogLevel, cfg.LogFormat, logW)
	logger.Debug("Logger configured successfully.")

	if ldr == nil {
		ldr = loader.New(loader.WithConcurrency(cfg.Concurrency))
	}

	return &App{
		outW:   outW,
		logger: logger,
		config: cfg,
		loader: ldr,
	}
}

// Logger returns the application's logger. This is primarily for testing.
func (a *App) Logger() *slog.Logger {
	return a.logger
}
