// SPDX-License-Identifier: MIT
// Package: lvroman/numeral
//
// symbols.go: the symbol table shared by the encoder and the decoder.
//
// Contract:
//   • Entries are strictly descending by value; both greedy directions
//     depend on that order.
//   • The table is read-only after package initialization.

package numeral

const (
	// MinValue is the smallest value a Numeral can hold (the empty numeral).
	MinValue = 0
	// MaxValue is the largest value a Numeral can hold (MMMCMXCIX).
	MaxValue = 3999
)

// Symbol pairs a numeral token with the value it contributes.
// Subtractive pairs such as "CM" are tokens in their own right.
type Symbol struct {
	Token string
	Value int
}

// symbolTable lists every token from highest to lowest value.
var symbolTable = [...]Symbol{
	{"M", 1000},
	{"CM", 900},
	{"D", 500},
	{"CD", 400},
	{"C", 100},
	{"XC", 90},
	{"L", 50},
	{"XL", 40},
	{"X", 10},
	{"IX", 9},
	{"V", 5},
	{"IV", 4},
	{"I", 1},
}

// Symbols returns a copy of the symbol table in descending value order.
// Complexity: O(13).
func Symbols() []Symbol {
	out := make([]Symbol, len(symbolTable))
	copy(out, symbolTable[:])
	return out
}
