// SPDX-License-Identifier: MIT
// Package: lvroman/numeral
//
// numeral.go: the immutable Numeral value type and its constructors.
//
// Invariants (held by every observable Numeral):
//   • MinValue <= v <= MaxValue.
//   • Decode(s) == v and Encode(v) == s, so s is always canonical.
//   • The zero value Numeral{} is the numeral 0 with s == "".

package numeral

import (
	"encoding/binary"
	"encoding/json"
	"fmt"
	"math"
	"strconv"

	"github.com/cespare/xxhash/v2"
)

// Numeral is an immutable Roman numeral in [MinValue, MaxValue].
// Values are small, comparable with == and safe to copy and share across
// goroutines. Arithmetic always returns a new Numeral.
type Numeral struct {
	s string // canonical upper-case form
	v int    // decoded value
}

// Zero is the empty numeral, value 0.
var Zero = Numeral{}

// Parse builds a Numeral from a numeral string (case-insensitive).
//
// Errors: ErrInvalidNumeral.
// Complexity: O(len(s)).
func Parse(s string) (Numeral, error) {
	upper := normalize(s)
	if !grammar.MatchString(upper) {
		return Numeral{}, numeralErrorf(MethodParse, ErrInvalidNumeral, "%q", s)
	}

	return Numeral{s: upper, v: decodeCanonical(upper)}, nil
}

// FromInt builds a Numeral from an integer.
//
// Errors: ErrOutOfRange.
// Complexity: O(1) amortized (at most 15 tokens are emitted).
func FromInt(v int) (Numeral, error) {
	if v < MinValue || v > MaxValue {
		return Numeral{}, numeralErrorf(MethodFromInt, ErrOutOfRange, "%d not in [%d, %d]", v, MinValue, MaxValue)
	}

	return Numeral{s: encodeInRange(v), v: v}, nil
}

// FromFloat builds a Numeral from a real number with no fractional part.
// Values such as 12.0 are accepted; 5.5, NaN and ±Inf are not. There is no
// silent rounding at construction time.
//
// Errors: ErrNonInteger, ErrOutOfRange.
func FromFloat(f float64) (Numeral, error) {
	if math.IsInf(f, 0) {
		return Numeral{}, numeralErrorf(MethodFromFloat, ErrNonInteger, "%v", f)
	}

	return fromReal(MethodFromFloat, f)
}

// Must returns n and panics if err is non-nil. It is intended for
// package-level variables, tests and examples.
func Must(n Numeral, err error) Numeral {
	if err != nil {
		panic(err)
	}

	return n
}

// fromInt64 is FromInt for intermediate results, keeping the caller's method
// token in the error.
func fromInt64(method string, v int64) (Numeral, error) {
	if v < MinValue || v > MaxValue {
		return Numeral{}, numeralErrorf(method, ErrOutOfRange, "result %d not in [%d, %d]", v, MinValue, MaxValue)
	}

	return Numeral{s: encodeInRange(int(v)), v: int(v)}, nil
}

// fromReal materializes a real result: fractional values (and NaN) are
// ErrNonInteger, integral values outside the range ErrOutOfRange.
func fromReal(method string, f float64) (Numeral, error) {
	if math.IsNaN(f) || f != math.Trunc(f) {
		return Numeral{}, numeralErrorf(method, ErrNonInteger, "%v", f)
	}
	if f < MinValue || f > MaxValue {
		return Numeral{}, numeralErrorf(method, ErrOutOfRange, "%v not in [%d, %d]", f, MinValue, MaxValue)
	}

	return fromInt64(method, int64(f))
}

// String returns the canonical numeral; "" for zero.
func (n Numeral) String() string { return n.s }

// GoString renders the numeral with its value, e.g. numeral.Numeral("XII", value=12).
func (n Numeral) GoString() string {
	return fmt.Sprintf("numeral.Numeral(%q, value=%d)", n.s, n.v)
}

// Int returns the integer value.
func (n Numeral) Int() int { return n.v }

// Float64 returns the value as a float64.
func (n Numeral) Float64() float64 { return float64(n.v) }

// Bool reports whether the value is non-zero.
func (n Numeral) Bool() bool { return n.v != 0 }

// IsZero reports whether n is the empty numeral.
func (n Numeral) IsZero() bool { return n.v == 0 }

// Len returns the number of characters in the canonical string.
func (n Numeral) Len() int { return len(n.s) }

// Hash returns a 64-bit hash of the value. Equal numerals hash identically,
// and a Numeral hashes like any other Numeral built from the same integer.
func (n Numeral) Hash() uint64 {
	var buf [8]byte
	binary.LittleEndian.PutUint64(buf[:], uint64(n.v))
	return xxhash.Sum64(buf[:])
}

// MarshalText implements encoding.TextMarshaler with the canonical string.
func (n Numeral) MarshalText() ([]byte, error) {
	return []byte(n.s), nil
}

// UnmarshalText implements encoding.TextUnmarshaler. The receiver is left
// untouched on error.
func (n *Numeral) UnmarshalText(text []byte) error {
	parsed, err := Parse(string(text))
	if err != nil {
		return fmt.Errorf("%s: %w", MethodUnmarshalText, err)
	}
	*n = parsed

	return nil
}

// MarshalJSON encodes the numeral as a JSON string.
func (n Numeral) MarshalJSON() ([]byte, error) {
	return json.Marshal(n.s)
}

// UnmarshalJSON accepts either a JSON string holding a numeral or a JSON
// number holding its value. Numbers follow FromFloat rules, so 12.0 is
// accepted and 12.5 is not. JSON null leaves n unchanged.
func (n *Numeral) UnmarshalJSON(data []byte) error {
	if string(data) == "null" {
		return nil
	}

	var (
		parsed Numeral
		err    error
	)
	if len(data) > 0 && data[0] == '"' {
		var s string
		if err = json.Unmarshal(data, &s); err != nil {
			return fmt.Errorf("%s: %w", MethodUnmarshalJSON, err)
		}
		parsed, err = Parse(s)
	} else {
		var f float64
		f, err = strconv.ParseFloat(string(data), 64)
		if err != nil {
			return numeralErrorf(MethodUnmarshalJSON, ErrInvalidNumeral, "%s", data)
		}
		parsed, err = FromFloat(f)
	}
	if err != nil {
		return fmt.Errorf("%s: %w", MethodUnmarshalJSON, err)
	}
	*n = parsed

	return nil
}
