// SPDX-License-Identifier: MIT
// Package: lvroman/numeral
//
// errors.go: sentinel errors for the numeral package.
//
// Error policy:
//   • Only sentinel variables are exposed; branch with errors.Is(err, ErrX).
//   • Call sites attach method context with numeralErrorf, which keeps the
//     sentinel reachable through %w.
//   • Nothing in this package panics except Must and the WithX option
//     constructors.

package numeral

import (
	"errors"
	"fmt"
)

// ErrInvalidNumeral indicates a string that does not match the numeral grammar:
// bad repetition, misplaced subtractive pairs, stray characters or garbage
// before/after an otherwise valid numeral.
var ErrInvalidNumeral = errors.New("numeral: invalid numeral")

// ErrOutOfRange indicates an integer operand or result outside [MinValue, MaxValue],
// including int64 overflow in intermediate arithmetic.
var ErrOutOfRange = errors.New("numeral: value out of range")

// ErrNonInteger indicates a real number with a fractional part (or NaN/±Inf)
// where an integer is required.
var ErrNonInteger = errors.New("numeral: value is not an integer")

// ErrUnsupportedOperation is returned by TrueDiv. A fractional quotient cannot
// be held by a Numeral; use FloorDiv or the raw Int value instead.
var ErrUnsupportedOperation = errors.New("numeral: unsupported operation")

// ErrInvalidRange indicates inconsistent random-generation bounds
// (min < MinValue, max > MaxValue or min > max).
var ErrInvalidRange = errors.New("numeral: invalid range")

// ErrDivisionByZero indicates a zero divisor in FloorDiv, Mod, DivMod, or a
// zero base raised to a negative power.
var ErrDivisionByZero = errors.New("numeral: division by zero")

// ErrPlaceIndex indicates a positional index outside the four place slots.
var ErrPlaceIndex = errors.New("numeral: place index out of range")

// Method tokens used as error context prefixes.
const (
	MethodValidate      = "Validate"
	MethodDecode        = "Decode"
	MethodEncode        = "Encode"
	MethodParse         = "Parse"
	MethodFromInt       = "FromInt"
	MethodFromFloat     = "FromFloat"
	MethodAdd           = "Add"
	MethodSub           = "Sub"
	MethodMul           = "Mul"
	MethodFloorDiv      = "FloorDiv"
	MethodMod           = "Mod"
	MethodDivMod        = "DivMod"
	MethodTrueDiv       = "TrueDiv"
	MethodPow           = "Pow"
	MethodAt            = "At"
	MethodRandom        = "Random"
	MethodUnmarshalText = "UnmarshalText"
	MethodUnmarshalJSON = "UnmarshalJSON"
)

// numeralErrorf prefixes err with the method token and a formatted detail,
// producing "<Method>: <detail>: <sentinel message>".
func numeralErrorf(method string, err error, format string, args ...interface{}) error {
	return fmt.Errorf("%s: %s: %w", method, fmt.Sprintf(format, args...), err)
}
