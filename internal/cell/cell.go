// Package cell classifies raw cell content into its structured shape: empty,
// numeric literal, reference, or a single binary +/- formula. Classification
// is a pure function of the content string and the grid bounds; it never
// looks at other cells.
package cell

import (
	"fmt"

	"github.com/vk/cellgridgo/internal/sheet"
)

// Kind tags the shape of a cell's content.
type Kind int

const (
	KindEmpty Kind = iota
	KindNumber
	KindReference
	KindFormula
)

// String returns the lower-case name of the kind, for logging.
func (k Kind) String() string {
	switch k {
	case KindEmpty:
		return "empty"
	case KindNumber:
		return "number"
	case KindReference:
		return "reference"
	case KindFormula:
		return "formula"
	default:
		return fmt.Sprintf("kind(%d)", int(k))
	}
}

// Op is a binary operator in a formula.
type Op byte

const (
	OpAdd Op = '+'
	OpSub Op = '-'
)

// Apply computes the operator over two resolved operand values.
func (op Op) Apply(left, right float64) float64 {
	if op == OpSub {
		return left - right
	}
	return left + right
}

// Operand is one side of a formula: either a literal number or a reference
// to another cell.
type Operand struct {
	IsRef bool
	Ref   sheet.Coord
	Num   float64
}

// Shape is the classified form of one cell. Exactly the fields implied by
// Kind are meaningful: Value for KindNumber, Ref for KindReference, and
// Left/Op/Right for KindFormula.
type Shape struct {
	Kind  Kind
	Value float64
	Ref   sheet.Coord
	Left  Operand
	Op    Op
	Right Operand
}

// InvalidCellError reports syntactically invalid content or a reference to a
// coordinate outside the grid. It identifies the offending cell, independent
// of any other cell's state.
type InvalidCellError struct {
	Coord   sheet.Coord
	Content string
	Reason  string
}

func (e *InvalidCellError) Error() string {
	return fmt.Sprintf("invalid cell %s: %s (content %q)", e.Coord, e.Reason, e.Content)
}
