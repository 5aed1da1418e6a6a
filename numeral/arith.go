// SPDX-License-Identifier: MIT
// Package: lvroman/numeral
//
// arith.go: arithmetic over numerals and plain numbers.
//
// Contract:
//   • Every operation accepts an Operand on either side: Add(n, 5) and
//     Add(5, n) run the same computation.
//   • Add, Sub, Mul and Pow lower operands to int64; real operands are
//     truncated toward zero.
//   • FloorDiv, Mod and DivMod keep real operands exact: Mod(7, 2.5) is 2,
//     and a fractional remainder is ErrNonInteger.
//   • Results are materialized through the encoder, so any result outside
//     [MinValue, MaxValue] is ErrOutOfRange.
//   • Division is floored (the remainder takes the divisor's sign).
//   • TrueDiv never succeeds.

package numeral

import "math"

// intOp is one checked int64 operation plus the operator used in error text.
// real, when set, replaces fn as soon as either operand is a real.
type intOp struct {
	sym  string
	fn   func(x, y int64) (int64, error)
	real func(x, y float64) float64
}

var (
	opAdd      = intOp{sym: "+", fn: addInt}
	opSub      = intOp{sym: "-", fn: subInt}
	opMul      = intOp{sym: "*", fn: mulInt}
	opFloorDiv = intOp{sym: "//", fn: floorDivInt, real: floorDivReal}
	opMod      = intOp{sym: "%", fn: floorModInt, real: floorModReal}
	opPow      = intOp{sym: "**", fn: powInt}
)

// apply is the single computation behind every binary arithmetic operation.
func apply[A, B Operand](method string, op intOp, a A, b B) (Numeral, error) {
	sa, sb := scalarOf(a), scalarOf(b)
	if op.real != nil && (sa.real || sb.real) {
		return applyReal(method, op, sa, sb)
	}

	x, err := sa.integer(method)
	if err != nil {
		return Numeral{}, err
	}
	y, err := sb.integer(method)
	if err != nil {
		return Numeral{}, err
	}
	r, err := op.fn(x, y)
	if err != nil {
		return Numeral{}, numeralErrorf(method, err, "%d %s %d", x, op.sym, y)
	}

	return fromInt64(method, r)
}

// applyReal runs op in float64 on the exact operand values.
func applyReal(method string, op intOp, a, b scalar) (Numeral, error) {
	for _, f := range [...]float64{a.f, b.f} {
		if math.IsNaN(f) || math.IsInf(f, 0) {
			return Numeral{}, numeralErrorf(method, ErrNonInteger, "operand %v", f)
		}
	}
	if b.f == 0 {
		return Numeral{}, numeralErrorf(method, ErrDivisionByZero, "%v %s %v", a.f, op.sym, b.f)
	}

	return fromReal(method, op.real(a.f, b.f))
}

// Add returns a + b.
//
// Errors: ErrOutOfRange, ErrNonInteger.
func Add[A, B Operand](a A, b B) (Numeral, error) { return apply(MethodAdd, opAdd, a, b) }

// Sub returns a - b.
//
// Errors: ErrOutOfRange, ErrNonInteger.
func Sub[A, B Operand](a A, b B) (Numeral, error) { return apply(MethodSub, opSub, a, b) }

// Mul returns a * b. Reals are truncated first, so Mul(one, 0.4) is zero.
//
// Errors: ErrOutOfRange, ErrNonInteger.
func Mul[A, B Operand](a A, b B) (Numeral, error) { return apply(MethodMul, opMul, a, b) }

// FloorDiv returns ⌊a / b⌋. Reals are not truncated: FloorDiv(5, 0.5) is X.
//
// Errors: ErrDivisionByZero, ErrOutOfRange, ErrNonInteger.
func FloorDiv[A, B Operand](a A, b B) (Numeral, error) {
	return apply(MethodFloorDiv, opFloorDiv, a, b)
}

// Mod returns a - b*⌊a / b⌋. Mod(10, -3) is -2 and therefore ErrOutOfRange;
// Mod(7.5, 2) is 1.5 and therefore ErrNonInteger.
//
// Errors: ErrDivisionByZero, ErrOutOfRange, ErrNonInteger.
func Mod[A, B Operand](a A, b B) (Numeral, error) { return apply(MethodMod, opMod, a, b) }

// DivMod returns FloorDiv(a, b) and Mod(a, b). Both must be valid numerals.
//
// Errors: ErrDivisionByZero, ErrOutOfRange, ErrNonInteger.
func DivMod[A, B Operand](a A, b B) (Numeral, Numeral, error) {
	q, err := apply(MethodDivMod, opFloorDiv, a, b)
	if err != nil {
		return Numeral{}, Numeral{}, err
	}
	r, err := apply(MethodDivMod, opMod, a, b)
	if err != nil {
		return Numeral{}, Numeral{}, err
	}

	return q, r, nil
}

// TrueDiv always fails with ErrUnsupportedOperation. A fractional quotient
// cannot be held by a Numeral; use FloorDiv or divide the Int values.
func TrueDiv[A, B Operand](a A, b B) (Numeral, error) {
	return Numeral{}, numeralErrorf(MethodTrueDiv, ErrUnsupportedOperation, "use FloorDiv or Int()")
}

// Pow returns a raised to the power b.
//
// Negative exponents only produce integers for a base of 1 or -1; a zero base
// yields ErrDivisionByZero and any other base ErrNonInteger.
//
// Errors: ErrOutOfRange, ErrNonInteger, ErrDivisionByZero.
func Pow[A, B Operand](a A, b B) (Numeral, error) { return apply(MethodPow, opPow, a, b) }

// Add returns n + m.
func (n Numeral) Add(m Numeral) (Numeral, error) { return Add(n, m) }

// Sub returns n - m.
func (n Numeral) Sub(m Numeral) (Numeral, error) { return Sub(n, m) }

// Mul returns n * m.
func (n Numeral) Mul(m Numeral) (Numeral, error) { return Mul(n, m) }

// FloorDiv returns ⌊n / m⌋.
func (n Numeral) FloorDiv(m Numeral) (Numeral, error) { return FloorDiv(n, m) }

// Mod returns n mod m.
func (n Numeral) Mod(m Numeral) (Numeral, error) { return Mod(n, m) }

// DivMod returns ⌊n / m⌋ and n mod m.
func (n Numeral) DivMod(m Numeral) (Numeral, Numeral, error) { return DivMod(n, m) }

// TrueDiv always fails; see the package-level TrueDiv.
func (n Numeral) TrueDiv(m Numeral) (Numeral, error) { return TrueDiv(n, m) }

// Pow returns n raised to the power m.
func (n Numeral) Pow(m Numeral) (Numeral, error) { return Pow(n, m) }

//----------------------------------------------------------------------------//
// checked int64 kernels
//----------------------------------------------------------------------------//

func addInt(x, y int64) (int64, error) {
	if (y > 0 && x > math.MaxInt64-y) || (y < 0 && x < math.MinInt64-y) {
		return 0, ErrOutOfRange
	}

	return x + y, nil
}

func subInt(x, y int64) (int64, error) {
	if (y < 0 && x > math.MaxInt64+y) || (y > 0 && x < math.MinInt64+y) {
		return 0, ErrOutOfRange
	}

	return x - y, nil
}

func mulInt(x, y int64) (int64, error) {
	if x == 0 || y == 0 {
		return 0, nil
	}
	r := x * y
	if r/y != x || (x == -1 && y == math.MinInt64) || (y == -1 && x == math.MinInt64) {
		return 0, ErrOutOfRange
	}

	return r, nil
}

func floorDivInt(x, y int64) (int64, error) {
	if y == 0 {
		return 0, ErrDivisionByZero
	}
	if x == math.MinInt64 && y == -1 {
		return 0, ErrOutOfRange
	}
	q := x / y
	if x%y != 0 && (x < 0) != (y < 0) {
		q--
	}

	return q, nil
}

func floorModInt(x, y int64) (int64, error) {
	if y == 0 {
		return 0, ErrDivisionByZero
	}
	if y == -1 {
		return 0, nil
	}
	r := x % y
	if r != 0 && (r < 0) != (y < 0) {
		r += y
	}

	return r, nil
}

func floorDivReal(x, y float64) float64 { return math.Floor(x / y) }

// floorModReal gives the remainder the sign of the divisor.
func floorModReal(x, y float64) float64 {
	r := math.Mod(x, y)
	if r != 0 && (r < 0) != (y < 0) {
		r += y
	}

	return r
}

// powInt stops multiplying as soon as |result| leaves the numeral range,
// which bounds the loop to a dozen steps for any |x| >= 2.
func powInt(x, y int64) (int64, error) {
	switch {
	case x == 1:
		return 1, nil
	case x == -1:
		if y%2 == 0 {
			return 1, nil
		}
		return -1, nil
	case x == 0:
		if y < 0 {
			return 0, ErrDivisionByZero
		}
		if y == 0 {
			return 1, nil
		}
		return 0, nil
	case y < 0:
		return 0, ErrNonInteger
	}

	var (
		r int64 = 1
		i int64
	)
	for i = 0; i < y; i++ {
		r *= x
		if r > MaxValue || r < -MaxValue {
			return 0, ErrOutOfRange
		}
	}

	return r, nil
}
