package sheet

import (
	"fmt"
	"strings"
)

// Coord addresses a single cell by zero-based row and column indices.
type Coord struct {
	Row int
	Col int
}

// String renders the coordinate as a spreadsheet-style label like "A1" or
// "AB10". Columns use bijective base-26 letters, rows are 1-based.
func (c Coord) String() string {
	return ColumnLabel(c.Col) + fmt.Sprint(c.Row+1)
}

// Bounds describes the rectangular extent of a grid.
type Bounds struct {
	Rows int
	Cols int
}

// Contains reports whether the coordinate lies inside the bounds.
func (b Bounds) Contains(c Coord) bool {
	return c.Row >= 0 && c.Row < b.Rows && c.Col >= 0 && c.Col < b.Cols
}

// ParseCoord parses a spreadsheet-style label like "A1" or "ab10" into a
// zero-based Coord. The label is case-insensitive. Bounds are not checked
// here; callers decide whether an out-of-range coordinate is an error.
func ParseCoord(label string) (Coord, error) {
	i := 0
	for i < len(label) && isLetter(label[i]) {
		i++
	}
	if i == 0 || i == len(label) {
		return Coord{}, fmt.Errorf("invalid cell label %q", label)
	}
	col, err := ColumnIndex(label[:i])
	if err != nil {
		return Coord{}, err
	}
	row := 0
	for _, ch := range []byte(label[i:]) {
		if ch < '0' || ch > '9' {
			return Coord{}, fmt.Errorf("invalid cell label %q", label)
		}
		row = row*10 + int(ch-'0')
	}
	if row == 0 {
		return Coord{}, fmt.Errorf("invalid cell label %q: rows start at 1", label)
	}
	return Coord{Row: row - 1, Col: col}, nil
}

func isLetter(ch byte) bool {
	return (ch >= 'A' && ch <= 'Z') || (ch >= 'a' && ch <= 'z')
}

// ColumnLabel converts a zero-based column index to its letter label:
// 0 -> "A", 25 -> "Z", 26 -> "AA".
func ColumnLabel(col int) string {
	if col < 0 {
		panic("sheet: negative column index")
	}
	var b []byte
	n := col + 1
	for n > 0 {
		n--
		b = append(b, byte('A'+n%26))
		n /= 26
	}
	// Digits were produced least-significant first.
	for i, j := 0, len(b)-1; i < j; i, j = i+1, j-1 {
		b[i], b[j] = b[j], b[i]
	}
	return string(b)
}

// ColumnIndex converts a letter label to its zero-based column index:
// "A" -> 0, "Z" -> 25, "AA" -> 26. Input is case-insensitive. An error is
// returned for an empty label or any non-letter character.
func ColumnIndex(label string) (int, error) {
	if label == "" {
		return 0, fmt.Errorf("empty column label")
	}
	n := 0
	for _, r := range strings.ToUpper(label) {
		if r < 'A' || r > 'Z' {
			return 0, fmt.Errorf("invalid character %q in column label %q", r, label)
		}
		n = n*26 + int(r-'A') + 1
	}
	return n - 1, nil
}
