package sheet

import "fmt"

// Grid holds the raw cell contents of one spreadsheet. The contents are
// immutable once the grid is constructed; evaluation never writes back.
type Grid struct {
	Name string
	rows [][]string
}

// New validates the raw rows and wraps them in a Grid. Every row must have
// the same number of columns; a grid with zero rows is valid and empty.
func New(name string, rows [][]string) (*Grid, error) {
	if len(rows) > 0 {
		width := len(rows[0])
		for i, row := range rows {
			if len(row) != width {
				return nil, fmt.Errorf("grid %q: row %d has %d columns, expected %d", name, i+1, len(row), width)
			}
		}
	}
	return &Grid{Name: name, rows: rows}, nil
}

// Bounds returns the rectangular extent of the grid.
func (g *Grid) Bounds() Bounds {
	if len(g.rows) == 0 {
		return Bounds{}
	}
	return Bounds{Rows: len(g.rows), Cols: len(g.rows[0])}
}

// Raw returns the raw content of the cell at the given coordinate. The
// coordinate must lie within bounds.
func (g *Grid) Raw(c Coord) string {
	return g.rows[c.Row][c.Col]
}
