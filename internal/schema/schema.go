// Package schema declares the HCL shapes of user grid files, decoded with
// gohcl before being translated into the sheet model.
package schema

import (
	"github.com/hashicorp/hcl/v2"
)

// Grid represents a `grid` block from a user's file: one named spreadsheet.
// Rows stays an undecoded expression so the loader can apply its own cty
// conversion (unquoted numbers are allowed alongside strings).
type Grid struct {
	Name string         `hcl:"name,label"`
	Rows hcl.Expression `hcl:"rows"`
}

// GridFile represents the top-level structure of a grid document, containing
// any number of grid blocks.
type GridFile struct {
	Grids []*Grid `hcl:"grid,block"`
}
