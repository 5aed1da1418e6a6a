// SPDX-License-Identifier: MIT
// Package: lvroman/numeral

package numeral

import "math"

// Operand is any value that can sit on either side of a numeral operation:
// another Numeral or a plain Go integer or real.
type Operand interface {
	Numeral | int | int8 | int16 | int32 | int64 |
		uint | uint8 | uint16 | uint32 | uint64 |
		float32 | float64
}

// scalar is the common form every Operand is lowered to before an
// operation runs. Integers keep their exact value in i; reals (and uint64
// values too wide for int64) are carried in f with real set.
type scalar struct {
	i    int64
	f    float64
	real bool
}

func intScalar(v int64) scalar { return scalar{i: v, f: float64(v)} }

func realScalar(f float64) scalar { return scalar{f: f, real: true} }

// scalarOf lowers x. The type switch is exhaustive over Operand.
func scalarOf[T Operand](x T) scalar {
	switch v := any(x).(type) {
	case Numeral:
		return intScalar(int64(v.v))
	case int:
		return intScalar(int64(v))
	case int8:
		return intScalar(int64(v))
	case int16:
		return intScalar(int64(v))
	case int32:
		return intScalar(int64(v))
	case int64:
		return intScalar(v)
	case uint:
		return uintScalar(uint64(v))
	case uint8:
		return intScalar(int64(v))
	case uint16:
		return intScalar(int64(v))
	case uint32:
		return intScalar(int64(v))
	case uint64:
		return uintScalar(v)
	case float32:
		return realScalar(float64(v))
	case float64:
		return realScalar(v)
	}

	return scalar{}
}

func uintScalar(v uint64) scalar {
	if v > math.MaxInt64 {
		return realScalar(float64(v))
	}

	return intScalar(int64(v))
}

// integer returns the operand as an int64 for arithmetic. Reals are
// truncated toward zero; NaN and ±Inf have no integer value.
func (s scalar) integer(method string) (int64, error) {
	if !s.real {
		return s.i, nil
	}
	if math.IsNaN(s.f) || math.IsInf(s.f, 0) {
		return 0, numeralErrorf(method, ErrNonInteger, "operand %v", s.f)
	}
	t := math.Trunc(s.f)
	if t >= math.MaxInt64 || t < math.MinInt64 {
		return 0, numeralErrorf(method, ErrOutOfRange, "operand %v overflows int64", s.f)
	}

	return int64(t), nil
}
