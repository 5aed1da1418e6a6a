// SPDX-License-Identifier: MIT
// Package: lvroman/numeral
//
// compare.go: ordering between numerals and plain numbers.
//
// One primitive (order) compares two lowered operands; every relation below
// is derived from it. Reals are compared exactly, never truncated, so
// Less(two, 2.5) holds while Equal(two, 2.5) does not.

package numeral

import (
	"cmp"
	"math"
)

// order compares a and b. ordered is false when either side is NaN.
func order(a, b scalar) (c int, ordered bool) {
	if !a.real && !b.real {
		return cmp.Compare(a.i, b.i), true
	}
	if math.IsNaN(a.f) || math.IsNaN(b.f) {
		return 0, false
	}

	return cmp.Compare(a.f, b.f), true
}

// relate evaluates rel on the ordering of a and b; unordered pairs never relate.
func relate[A, B Operand](a A, b B, rel func(c int) bool) bool {
	c, ok := order(scalarOf(a), scalarOf(b))
	return ok && rel(c)
}

// Compare returns -1, 0 or +1 as a is less than, equal to or greater than b.
// NaN follows cmp.Compare: it sorts before every other value and equals itself.
func Compare[A, B Operand](a A, b B) int {
	x, y := scalarOf(a), scalarOf(b)
	if c, ok := order(x, y); ok {
		return c
	}

	return cmp.Compare(x.f, y.f)
}

// Equal reports a == b.
func Equal[A, B Operand](a A, b B) bool {
	return relate(a, b, func(c int) bool { return c == 0 })
}

// NotEqual reports a != b. It is the only relation that holds for NaN.
func NotEqual[A, B Operand](a A, b B) bool { return !Equal(a, b) }

// Less reports a < b.
func Less[A, B Operand](a A, b B) bool {
	return relate(a, b, func(c int) bool { return c < 0 })
}

// LessOrEqual reports a <= b.
func LessOrEqual[A, B Operand](a A, b B) bool {
	return relate(a, b, func(c int) bool { return c <= 0 })
}

// Greater reports a > b.
func Greater[A, B Operand](a A, b B) bool {
	return relate(a, b, func(c int) bool { return c > 0 })
}

// GreaterOrEqual reports a >= b.
func GreaterOrEqual[A, B Operand](a A, b B) bool {
	return relate(a, b, func(c int) bool { return c >= 0 })
}

// Compare orders n against m by value; suitable for slices.SortFunc.
func (n Numeral) Compare(m Numeral) int { return cmp.Compare(n.v, m.v) }

// Equal reports whether n and m hold the same value.
func (n Numeral) Equal(m Numeral) bool { return n.v == m.v }

// Less reports whether n is smaller than m.
func (n Numeral) Less(m Numeral) bool { return n.v < m.v }
