package app

import (
	"context"
	"fmt"

	"github.com/vk/cellgridgo/internal/ctxlog"
	"github.com/vk/cellgridgo/internal/eval"
)

// Run evaluates every loaded grid and renders its result grid to the output
// writer. The first malformed cell or circular reference aborts the whole
// run; no partial results are rendered for a failed grid.
func (a *App) Run(ctx context.Context) error {
	ctx = ctxlog.WithLogger(ctx, a.logger)
	a.logger.Debug("App.Run method started.")

	if len(a.grids) == 0 {
		a.logger.Warn("No grid blocks found, nothing to evaluate.")
		return nil
	}

	for _, grid := range a.grids {
		result, err := eval.Evaluate(ctx, grid)
		if err != nil {
			return fmt.Errorf("grid %q: %w", grid.Name, err)
		}
		if err := a.render(grid.Name, result); err != nil {
			return fmt.Errorf("failed to render grid %q: %w", grid.Name, err)
		}
	}

	a.logger.Debug("App.Run method finished.", "grid_count", len(a.grids))
	return nil
}
