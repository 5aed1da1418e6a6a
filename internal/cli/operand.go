package cli

import (
	"fmt"
	"strconv"

	"github.com/katalvlaran/lvroman/numeral"
)

type operandKind int

const (
	kindNumeral operandKind = iota
	kindInt
	kindReal
)

// operand is one command line argument: a numeral, an integer or a real.
type operand struct {
	kind operandKind
	n    numeral.Numeral
	i    int64
	f    float64
}

// parseOperand reads s as an integer, then a real, then a numeral.
// The empty numeral is spelled "" on the command line, so zero as a numeral
// is only reachable through the integer 0.
func parseOperand(s string) (operand, error) {
	if i, err := strconv.ParseInt(s, 10, 64); err == nil {
		return operand{kind: kindInt, i: i}, nil
	}
	if f, err := strconv.ParseFloat(s, 64); err == nil {
		return operand{kind: kindReal, f: f}, nil
	}
	n, err := numeral.Parse(s)
	if err != nil {
		return operand{}, fmt.Errorf("operand %q is neither a number nor a numeral: %w", s, err)
	}

	return operand{kind: kindNumeral, n: n}, nil
}

// toNumeral converts a single operand into a Numeral.
func (o operand) toNumeral() (numeral.Numeral, error) {
	switch o.kind {
	case kindInt:
		return numeral.FromFloat(float64(o.i))
	case kindReal:
		return numeral.FromFloat(o.f)
	}

	return o.n, nil
}
