// SPDX-License-Identifier: MIT
// Package: lvroman/numeral

package numeral

import "fmt"

// placeSizes are the place values from the highest down.
var placeSizes = [...]int{1000, 100, 10, 1}

// PlaceSizes returns the place sizes in thousands→ones order.
func PlaceSizes() []int {
	out := make([]int, len(placeSizes))
	copy(out, placeSizes[:])
	return out
}

// PlaceValues is a numeral split by place. Each slot is a complete Numeral
// whose value is a multiple of its place size: for 1234 the hundreds slot is
// CC (200), not a bare digit.
type PlaceValues struct {
	Thousands Numeral
	Hundreds  Numeral
	Tens      Numeral
	Ones      Numeral
}

// ByPlaceValue decomposes n into thousands, hundreds, tens and ones.
// The four slots always sum to n.
// Complexity: O(1).
func (n Numeral) ByPlaceValue() PlaceValues {
	var (
		slots [len(placeSizes)]Numeral
		rest  = n.v
		q     int
	)
	for i, size := range placeSizes {
		q, rest = rest/size, rest%size
		// q*size <= n.v, so the slot is always in range.
		slots[i] = Numeral{s: encodeInRange(q * size), v: q * size}
	}

	return PlaceValues{
		Thousands: slots[0],
		Hundreds:  slots[1],
		Tens:      slots[2],
		Ones:      slots[3],
	}
}

// Values returns the slots in thousands→ones order.
func (p PlaceValues) Values() []Numeral {
	return []Numeral{p.Thousands, p.Hundreds, p.Tens, p.Ones}
}

// At returns the slot at position i. Non-negative indices count from the
// thousands slot (0) and negative indices count back from the ones slot (-1),
// so code written against At(-1) keeps working if higher places are added.
//
// Errors: ErrPlaceIndex.
func (p PlaceValues) At(i int) (Numeral, error) {
	vals := p.Values()
	idx := i
	if idx < 0 {
		idx += len(vals)
	}
	if idx < 0 || idx >= len(vals) {
		return Numeral{}, numeralErrorf(MethodAt, ErrPlaceIndex, "index %d with %d places", i, len(vals))
	}

	return vals[idx], nil
}

// Sum recomposes the numeral the slots came from.
func (p PlaceValues) Sum() Numeral {
	total := p.Thousands.v + p.Hundreds.v + p.Tens.v + p.Ones.v
	return Numeral{s: encodeInRange(total), v: total}
}

// String renders the slots, e.g. (M, CC, XXX, IV).
func (p PlaceValues) String() string {
	return fmt.Sprintf("(%s, %s, %s, %s)", p.Thousands, p.Hundreds, p.Tens, p.Ones)
}
