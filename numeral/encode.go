// SPDX-License-Identifier: MIT
// Package: lvroman/numeral

package numeral

import "strings"

// maxEncodedLen is the length of the longest canonical numeral (3888 = MMMDCCCLXXXVIII).
const maxEncodedLen = 15

// Encode converts v to its canonical numeral string.
//
// The encoder is the formal definition of canonical form: for each symbol
// from the highest value down, it appends the token while the remainder is
// at least the symbol's value. Zero encodes to "".
//
// Errors: ErrOutOfRange if v < MinValue or v > MaxValue.
// Complexity: O(13 + len(result)).
func Encode(v int) (string, error) {
	if v < MinValue || v > MaxValue {
		return "", numeralErrorf(MethodEncode, ErrOutOfRange, "%d not in [%d, %d]", v, MinValue, MaxValue)
	}

	return encodeInRange(v), nil
}

// encodeInRange assumes MinValue <= v <= MaxValue.
func encodeInRange(v int) string {
	if v == 0 {
		return ""
	}

	var b strings.Builder
	b.Grow(maxEncodedLen)
	rest := v
	for _, sym := range symbolTable {
		for rest >= sym.Value {
			b.WriteString(sym.Token)
			rest -= sym.Value
		}
		if rest == 0 {
			break
		}
	}

	return b.String()
}
