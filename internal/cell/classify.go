package cell

import (
	"strconv"
	"strings"

	"github.com/vk/cellgridgo/internal/sheet"
)

// Classify determines the shape of one cell's raw content. Surrounding
// whitespace is ignored. Supported grammar:
//
//	""            empty
//	"5", "-3.5"   numeric literal
//	"=A1"         reference
//	"=A1+5"       formula: Operand (+|-) Operand
//
// A formula body holding a single numeric token ("=5") classifies as a
// number. References must lie within bounds; anything else fails with an
// *InvalidCellError naming coord.
func Classify(coord sheet.Coord, raw string, bounds sheet.Bounds) (Shape, error) {
	content := strings.TrimSpace(raw)

	if content == "" {
		return Shape{Kind: KindEmpty}, nil
	}

	if body, ok := strings.CutPrefix(content, "="); ok {
		return classifyFormula(coord, raw, body, bounds)
	}

	v, err := strconv.ParseFloat(content, 64)
	if err != nil {
		return Shape{}, &InvalidCellError{Coord: coord, Content: raw, Reason: "not a number, reference, or formula"}
	}
	return Shape{Kind: KindNumber, Value: v}, nil
}

// classifyFormula parses a formula body (the content after '='). The body is
// either a single operand or exactly one binary +/- operation; deeper
// expressions are rejected.
func classifyFormula(coord sheet.Coord, raw, body string, bounds sheet.Bounds) (Shape, error) {
	tokens := splitOnOperators(body)

	switch len(tokens) {
	case 1:
		opd, err := parseOperand(coord, raw, tokens[0], bounds)
		if err != nil {
			return Shape{}, err
		}
		if opd.IsRef {
			return Shape{Kind: KindReference, Ref: opd.Ref}, nil
		}
		return Shape{Kind: KindNumber, Value: opd.Num}, nil
	case 3:
		left, err := parseOperand(coord, raw, tokens[0], bounds)
		if err != nil {
			return Shape{}, err
		}
		op, ok := parseOp(tokens[1])
		if !ok {
			return Shape{}, &InvalidCellError{Coord: coord, Content: raw, Reason: "unsupported operator " + strconv.Quote(tokens[1])}
		}
		right, err := parseOperand(coord, raw, tokens[2], bounds)
		if err != nil {
			return Shape{}, err
		}
		return Shape{Kind: KindFormula, Left: left, Op: op, Right: right}, nil
	default:
		return Shape{}, &InvalidCellError{Coord: coord, Content: raw, Reason: "malformed formula"}
	}
}

// splitOnOperators splits a formula body on every '+' and '-', keeping the
// operators as their own tokens and discarding whitespace-only fragments.
func splitOnOperators(body string) []string {
	var tokens []string
	start := 0
	flush := func(end int) {
		if t := strings.TrimSpace(body[start:end]); t != "" {
			tokens = append(tokens, t)
		}
	}
	for i := 0; i < len(body); i++ {
		if body[i] == '+' || body[i] == '-' {
			flush(i)
			tokens = append(tokens, string(body[i]))
			start = i + 1
		}
	}
	flush(len(body))
	return tokens
}

// parseOperand interprets a single formula token as a cell reference or a
// numeric literal.
func parseOperand(coord sheet.Coord, raw, token string, bounds sheet.Bounds) (Operand, error) {
	if isRefToken(token) {
		ref, err := sheet.ParseCoord(token)
		if err != nil {
			return Operand{}, &InvalidCellError{Coord: coord, Content: raw, Reason: err.Error()}
		}
		if !bounds.Contains(ref) {
			return Operand{}, &InvalidCellError{Coord: coord, Content: raw, Reason: "reference " + token + " is out of range"}
		}
		return Operand{IsRef: true, Ref: ref}, nil
	}

	v, err := strconv.ParseFloat(token, 64)
	if err != nil {
		return Operand{}, &InvalidCellError{Coord: coord, Content: raw, Reason: "invalid token " + strconv.Quote(token)}
	}
	return Operand{Num: v}, nil
}

func parseOp(token string) (Op, bool) {
	switch token {
	case "+":
		return OpAdd, true
	case "-":
		return OpSub, true
	default:
		return 0, false
	}
}

// isRefToken reports whether a token has the letters-then-digits form of a
// cell reference. Numbers and anything else fall through to numeric parsing.
func isRefToken(token string) bool {
	i := 0
	for i < len(token) && isLetter(token[i]) {
		i++
	}
	if i == 0 || i == len(token) {
		return false
	}
	for ; i < len(token); i++ {
		if token[i] < '0' || token[i] > '9' {
			return false
		}
	}
	return true
}

func isLetter(ch byte) bool {
	return (ch >= 'A' && ch <= 'Z') || (ch >= 'a' && ch <= 'z')
}
