package app

import (
	"context"
	"fmt"
	"io"
	"log/slog"

	"github.com/vk/cellgridgo/internal/ctxlog"
	"github.com/vk/cellgridgo/internal/sheet"
)

// GridLoader abstracts the source format of grid definitions. The HCL loader
// is the only production implementation; tests substitute their own.
type GridLoader interface {
	Load(ctx context.Context, paths ...string) ([]*sheet.Grid, error)
}

// App encapsulates the application's dependencies, configuration, and
// lifecycle.
type App struct {
	outW   io.Writer
	errW   io.Writer
	logger *slog.Logger
	config *Config
	grids  []*sheet.Grid
}

// NewApp is the constructor for the main application. It returns a fully
// initialized App instance with its own isolated logger and the grids
// already loaded.
func NewApp(outW, errW io.Writer, cfg *Config, loader GridLoader) *App {
	logger := newLogger(cfg.LogLevel, cfg.LogFormat, errW)
	ctx := ctxlog.WithLogger(context.Background(), logger)
	logger.Debug("Logger configured successfully.")

	grids, err := loader.Load(ctx, cfg.GridPath)
	if err != nil {
		// A failure to load grid files is a fatal startup error.
		panic(fmt.Errorf("failed to load grid configuration: %w", err))
	}
	logger.Debug("Grid configuration loaded.", "grid_count", len(grids))

	return &App{
		outW:   outW,
		errW:   errW,
		logger: logger,
		config: cfg,
		grids:  grids,
	}
}

// Grids returns the loaded grids. This is primarily for testing.
func (a *App) Grids() []*sheet.Grid {
	return a.grids
}
