package eval

import (
	"context"
	"fmt"

	"github.com/vk/cellgridgo/internal/cell"
	"github.com/vk/cellgridgo/internal/ctxlog"
	"github.com/vk/cellgridgo/internal/sheet"
)

// state is the DFS color of one cell during an evaluation pass.
//
// A cell moves notEvaluated -> evaluating -> evaluated exactly once and never
// backward. The middle state is what distinguishes "currently on the
// recursion stack" from "already resolved"; a boolean visited marker cannot
// tell a shared dependency apart from a cycle.
type state uint8

const (
	notEvaluated state = iota
	evaluating
	evaluated
)

// CircularReferenceError reports a dependency chain that leads back into
// itself. Coord identifies the cell whose re-entrant visit closed the cycle.
type CircularReferenceError struct {
	Coord sheet.Coord
}

func (e *CircularReferenceError) Error() string {
	return fmt.Sprintf("circular reference detected at cell %s", e.Coord)
}

// Result holds the numeric value of every cell after a successful pass.
type Result struct {
	values [][]float64
}

// At returns the computed value of the cell at the given coordinate.
func (r *Result) At(c sheet.Coord) float64 {
	return r.values[c.Row][c.Col]
}

// Rows returns the full result grid, row-major, in the shape of the source
// grid.
func (r *Result) Rows() [][]float64 {
	return r.values
}

// Evaluator resolves every cell of one grid, memoizing values and detecting
// reference cycles. It is single-use: one Evaluator performs one pass over
// one grid from a single goroutine.
type Evaluator struct {
	grid   *sheet.Grid
	bounds sheet.Bounds
	states [][]state
	values [][]float64
}

// New creates an evaluator for the given grid with all cells unvisited.
func New(grid *sheet.Grid) *Evaluator {
	b := grid.Bounds()
	states := make([][]state, b.Rows)
	values := make([][]float64, b.Rows)
	for i := range states {
		states[i] = make([]state, b.Cols)
		values[i] = make([]float64, b.Cols)
	}
	return &Evaluator{grid: grid, bounds: b, states: states, values: values}
}

// Evaluate computes a value for every cell in the grid, sweeping row-major
// and resolving references depth-first. It fails fast on the first malformed
// cell (*cell.InvalidCellError) or dependency cycle
// (*CircularReferenceError); no partial result is returned.
func Evaluate(ctx context.Context, grid *sheet.Grid) (*Result, error) {
	logger := ctxlog.FromContext(ctx)
	logger.Debug("Evaluation pass started.", "grid", grid.Name, "rows", grid.Bounds().Rows, "cols", grid.Bounds().Cols)

	ev := New(grid)
	for r := 0; r < ev.bounds.Rows; r++ {
		for c := 0; c < ev.bounds.Cols; c++ {
			if _, err := ev.resolve(ctx, sheet.Coord{Row: r, Col: c}); err != nil {
				return nil, err
			}
		}
	}

	logger.Debug("Evaluation pass finished.", "grid", grid.Name)
	return &Result{values: ev.values}, nil
}

// resolve returns the value of one cell, computing it on first visit and
// serving the memoized value afterwards. Marking the cell evaluating before
// recursing is what catches cycles: any path that re-enters this coordinate
// while it is still on the stack finds the marker and fails.
func (ev *Evaluator) resolve(ctx context.Context, coord sheet.Coord) (float64, error) {
	switch ev.states[coord.Row][coord.Col] {
	case evaluated:
		return ev.values[coord.Row][coord.Col], nil
	case evaluating:
		return 0, &CircularReferenceError{Coord: coord}
	}

	ev.states[coord.Row][coord.Col] = evaluating

	shape, err := cell.Classify(coord, ev.grid.Raw(coord), ev.bounds)
	if err != nil {
		return 0, err
	}

	var value float64
	switch shape.Kind {
	case cell.KindEmpty:
		value = 0
	case cell.KindNumber:
		value = shape.Value
	case cell.KindReference:
		value, err = ev.resolve(ctx, shape.Ref)
		if err != nil {
			return 0, err
		}
	case cell.KindFormula:
		left, err := ev.operand(ctx, shape.Left)
		if err != nil {
			return 0, err
		}
		right, err := ev.operand(ctx, shape.Right)
		if err != nil {
			return 0, err
		}
		value = shape.Op.Apply(left, right)
	}

	ev.values[coord.Row][coord.Col] = value
	ev.states[coord.Row][coord.Col] = evaluated
	ctxlog.FromContext(ctx).Debug("Cell resolved.", "cell", coord.String(), "kind", shape.Kind.String(), "value", value)
	return value, nil
}

// operand yields a formula operand's value: literal numbers directly,
// references through the resolver.
func (ev *Evaluator) operand(ctx context.Context, opd cell.Operand) (float64, error) {
	if opd.IsRef {
		return ev.resolve(ctx, opd.Ref)
	}
	return opd.Num, nil
}
