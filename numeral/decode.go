// SPDX-License-Identifier: MIT
// Package: lvroman/numeral

package numeral

import "strings"

// Decode converts a numeral string to its integer value.
//
// The input is normalized and re-validated before decoding, so Decode is safe
// to call on untrusted strings. Decoding walks the symbol table from the
// highest value down, consuming the current token for as long as the
// remaining suffix starts with it.
//
// Errors: ErrInvalidNumeral.
// Complexity: O(len(s) + 13).
func Decode(s string) (int, error) {
	upper := normalize(s)
	if !grammar.MatchString(upper) {
		return 0, numeralErrorf(MethodDecode, ErrInvalidNumeral, "%q", s)
	}

	return decodeCanonical(upper), nil
}

// decodeCanonical assumes s already passed the grammar.
func decodeCanonical(s string) int {
	var (
		total int
		rest  = s
		sym   Symbol
	)
	for _, sym = range symbolTable {
		for strings.HasPrefix(rest, sym.Token) {
			total += sym.Value
			rest = rest[len(sym.Token):]
		}
		if rest == "" {
			break
		}
	}

	return total
}
