// SPDX-License-Identifier: MIT
// Package: lvroman/numeral
//
// validate.go: the grammar gate in front of every string-based constructor.
//
// Grammar (anchored, whole string, after upper-casing):
//
//	M{0,3}             thousands
//	(CM|CD|D?C{0,3})   hundreds
//	(XC|XL|L?X{0,3})   tens
//	(IX|IV|V?I{0,3})   ones
//
// Each place is independent and places appear in descending order, so forms
// such as "IIX", "VX", "XXXX" or "IVI" never match.

package numeral

import (
	"regexp"
	"strings"
)

// grammar is compiled once; regexp.Regexp is safe for concurrent use.
var grammar = regexp.MustCompile(`^M{0,3}(CM|CD|D?C{0,3})(XC|XL|L?X{0,3})(IX|IV|V?I{0,3})$`)

// normalize upper-cases ASCII letters only. Unicode case mapping would turn
// the dotless "ı" into "I"; every non-ASCII byte is left as-is and fails the
// grammar.
func normalize(s string) string {
	i := strings.IndexFunc(s, func(r rune) bool { return 'a' <= r && r <= 'z' })
	if i < 0 {
		return s
	}

	b := []byte(s)
	for ; i < len(b); i++ {
		if 'a' <= b[i] && b[i] <= 'z' {
			b[i] -= 'a' - 'A'
		}
	}

	return string(b)
}

// Validate reports whether s is a well-formed numeral in canonical form.
// Input is case-insensitive; the empty string is valid and denotes zero.
//
// Errors: ErrInvalidNumeral.
// Complexity: O(len(s)).
func Validate(s string) error {
	if !grammar.MatchString(normalize(s)) {
		return numeralErrorf(MethodValidate, ErrInvalidNumeral, "%q", s)
	}

	return nil
}

// IsValid is the boolean form of Validate.
func IsValid(s string) bool {
	return Validate(s) == nil
}
