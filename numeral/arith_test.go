package numeral_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvroman/numeral"
)

// n is a test shorthand for a known-good numeral.
func n(v int) numeral.Numeral { return numeral.Must(numeral.FromInt(v)) }

// wantValue asserts a successful result holding want.
func wantValue(t *testing.T, want int, got numeral.Numeral, err error) {
	t.Helper()
	require.NoError(t, err)
	require.Equal(t, n(want), got)
}

//----------------------------------------------------------------------------//
// Add / Sub / Mul
//----------------------------------------------------------------------------//

func TestAdd(t *testing.T) {
	got, err := numeral.Add(n(5), n(10))
	wantValue(t, 15, got, err)
	got, err = numeral.Add(n(5), 100)
	wantValue(t, 105, got, err)
	got, err = numeral.Add(100, n(5))
	wantValue(t, 105, got, err)
	got, err = numeral.Add(n(0), 0)
	wantValue(t, 0, got, err)

	got, err = n(4).Add(n(1))
	wantValue(t, 5, got, err)
	assert.Equal(t, "V", got.String())

	_, err = numeral.Add(n(3999), 1)
	assert.ErrorIs(t, err, numeral.ErrOutOfRange)
}

func TestSub(t *testing.T) {
	got, err := numeral.Sub(n(15), n(10))
	wantValue(t, 5, got, err)
	got, err = numeral.Sub(15, n(10))
	wantValue(t, 5, got, err)
	got, err = numeral.Sub(n(100), 5)
	wantValue(t, 95, got, err)
	got, err = n(100).Sub(n(1))
	wantValue(t, 99, got, err)

	_, err = numeral.Sub(n(1), 5)
	assert.ErrorIs(t, err, numeral.ErrOutOfRange)
}

func TestMul(t *testing.T) {
	got, err := numeral.Mul(n(2), n(5))
	wantValue(t, 10, got, err)
	got, err = numeral.Mul(n(0), n(5))
	wantValue(t, 0, got, err)
	got, err = numeral.Mul(n(10), 5)
	wantValue(t, 50, got, err)
	got, err = numeral.Mul(10, n(5))
	wantValue(t, 50, got, err)
	got, err = n(12).Mul(n(3))
	wantValue(t, 36, got, err)

	// Real operands are truncated toward zero before multiplying.
	got, err = numeral.Mul(n(1), 0.4)
	wantValue(t, 0, got, err)
	got, err = numeral.Mul(1.9, n(1))
	wantValue(t, 1, got, err)

	_, err = numeral.Mul(n(1), -1)
	assert.ErrorIs(t, err, numeral.ErrOutOfRange)
}

//----------------------------------------------------------------------------//
// Division family
//----------------------------------------------------------------------------//

func TestTrueDiv_AlwaysUnsupported(t *testing.T) {
	_, err := numeral.TrueDiv(n(1), 1)
	assert.ErrorIs(t, err, numeral.ErrUnsupportedOperation)
	_, err = numeral.TrueDiv(1, n(1))
	assert.ErrorIs(t, err, numeral.ErrUnsupportedOperation)
	_, err = n(10).TrueDiv(n(2))
	assert.ErrorIs(t, err, numeral.ErrUnsupportedOperation)
	_, err = numeral.TrueDiv(n(10), 0)
	assert.ErrorIs(t, err, numeral.ErrUnsupportedOperation)
}

func TestFloorDiv(t *testing.T) {
	got, err := numeral.FloorDiv(n(10), 2)
	wantValue(t, 5, got, err)
	got, err = numeral.FloorDiv(5, n(2))
	wantValue(t, 2, got, err)
	got, err = numeral.FloorDiv(n(1), n(2))
	wantValue(t, 0, got, err)
	got, err = numeral.FloorDiv(-10, -3)
	wantValue(t, 3, got, err)

	_, err = numeral.FloorDiv(n(10), -3) // floor(-3.33) = -4
	assert.ErrorIs(t, err, numeral.ErrOutOfRange)
	_, err = n(5).FloorDiv(n(0))
	assert.ErrorIs(t, err, numeral.ErrDivisionByZero)
	_, err = numeral.FloorDiv(n(5), 0.0)
	assert.ErrorIs(t, err, numeral.ErrDivisionByZero)
}

// TestDivision_RealOperands divides by the exact real, never a truncated one.
func TestDivision_RealOperands(t *testing.T) {
	cases := []struct {
		name    string
		run     func() (numeral.Numeral, error)
		want    int
		wantErr error
	}{
		{"FloorDivByHalf", func() (numeral.Numeral, error) { return numeral.FloorDiv(n(5), 0.5) }, 10, nil},
		{"FloorDivByTwoAndHalf", func() (numeral.Numeral, error) { return numeral.FloorDiv(n(7), 2.5) }, 2, nil},
		{"FloorDivRealDividend", func() (numeral.Numeral, error) { return numeral.FloorDiv(7.5, n(2)) }, 3, nil},
		{"FloorDivThreeByOneAndHalf", func() (numeral.Numeral, error) { return numeral.FloorDiv(n(3), 1.5) }, 2, nil},
		{"FloorDivNegativeReal", func() (numeral.Numeral, error) { return numeral.FloorDiv(n(5), -2.5) }, 0, numeral.ErrOutOfRange},
		{"FloorDivHuge", func() (numeral.Numeral, error) { return numeral.FloorDiv(n(5), 1e-300) }, 0, numeral.ErrOutOfRange},
		{"ModExact", func() (numeral.Numeral, error) { return numeral.Mod(n(5), 2.5) }, 0, nil},
		{"ModIntegral", func() (numeral.Numeral, error) { return numeral.Mod(n(7), 2.5) }, 2, nil},
		{"ModNegativeDivisor", func() (numeral.Numeral, error) { return numeral.Mod(n(10), -2.5) }, 0, nil},
		{"ModFractional", func() (numeral.Numeral, error) { return numeral.Mod(7.5, n(2)) }, 0, numeral.ErrNonInteger},
		{"ModByZero", func() (numeral.Numeral, error) { return numeral.Mod(n(7), 0.0) }, 0, numeral.ErrDivisionByZero},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got, err := tc.run()
			if tc.wantErr != nil {
				require.ErrorIs(t, err, tc.wantErr)
				return
			}
			wantValue(t, tc.want, got, err)
		})
	}

	q, r, err := numeral.DivMod(n(7), 2.5)
	require.NoError(t, err)
	assert.Equal(t, n(2), q)
	assert.Equal(t, n(2), r)

	_, _, err = numeral.DivMod(n(7), 0.5)
	require.NoError(t, err)
	_, _, err = numeral.DivMod(n(7), 3.5)
	require.NoError(t, err)
	_, _, err = numeral.DivMod(n(7), 2.25) // remainder 0.25
	assert.ErrorIs(t, err, numeral.ErrNonInteger)
}

func TestMod(t *testing.T) {
	got, err := numeral.Mod(n(5), 2)
	wantValue(t, 1, got, err)
	got, err = numeral.Mod(5, n(2))
	wantValue(t, 1, got, err)
	got, err = numeral.Mod(n(4), n(1))
	wantValue(t, 0, got, err)
	got, err = numeral.Mod(-7, 3) // remainder follows the divisor
	wantValue(t, 2, got, err)

	_, err = numeral.Mod(n(10), -3) // -2
	assert.ErrorIs(t, err, numeral.ErrOutOfRange)
	_, err = numeral.Mod(n(10), 0)
	assert.ErrorIs(t, err, numeral.ErrDivisionByZero)
}

func TestDivMod(t *testing.T) {
	q, r, err := numeral.DivMod(n(5), 2)
	require.NoError(t, err)
	assert.Equal(t, n(2), q)
	assert.Equal(t, n(1), r)

	q, r, err = numeral.DivMod(10, n(3))
	require.NoError(t, err)
	assert.Equal(t, n(3), q)
	assert.Equal(t, n(1), r)

	q, r, err = n(1234).DivMod(n(100))
	require.NoError(t, err)
	assert.Equal(t, "XII", q.String())
	assert.Equal(t, "XXXIV", r.String())

	_, _, err = numeral.DivMod(n(10), -3)
	assert.ErrorIs(t, err, numeral.ErrOutOfRange)
	_, _, err = numeral.DivMod(n(10), 0)
	assert.ErrorIs(t, err, numeral.ErrDivisionByZero)
}

// TestDivMod_Identity checks q*b + r == a for valid numeral pairs.
func TestDivMod_Identity(t *testing.T) {
	for a := 0; a <= numeral.MaxValue; a += 37 {
		for b := 1; b <= 120; b += 7 {
			q, r, err := numeral.DivMod(a, b)
			require.NoError(t, err)
			require.Equal(t, a, q.Int()*b+r.Int(), "divmod(%d, %d)", a, b)
			require.Less(t, r.Int(), b)
		}
	}
}

//----------------------------------------------------------------------------//
// Pow
//----------------------------------------------------------------------------//

func TestPow(t *testing.T) {
	cases := []struct {
		name      string
		base, exp int
		want      int
		wantErr   error
	}{
		{"TwoToTen", 2, 10, 1024, nil},
		{"TwoToTwelve", 2, 12, 0, numeral.ErrOutOfRange},
		{"ZeroToZero", 0, 0, 1, nil},
		{"ZeroToFive", 0, 5, 0, nil},
		{"OneToNegative", 1, -5, 1, nil},
		{"TwoToNegative", 2, -1, 0, numeral.ErrNonInteger},
		{"ZeroToNegative", 0, -1, 0, numeral.ErrDivisionByZero},
		{"NegativeOneEven", -1, 2, 1, nil},
		{"NegativeOneOdd", -1, 3, 0, numeral.ErrOutOfRange},
		{"MaxToHuge", 3999, math.MaxInt32, 0, numeral.ErrOutOfRange},
		{"SixtyThreeSquared", 63, 2, 3969, nil},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got, err := numeral.Pow(tc.base, tc.exp)
			if tc.wantErr != nil {
				require.ErrorIs(t, err, tc.wantErr)
				return
			}
			wantValue(t, tc.want, got, err)
		})
	}

	got, err := n(3).Pow(n(4))
	wantValue(t, 81, got, err)
}

//----------------------------------------------------------------------------//
// Operand handling
//----------------------------------------------------------------------------//

// TestOperands_NonFinite rejects NaN and infinities for every arithmetic operation.
func TestOperands_NonFinite(t *testing.T) {
	for _, f := range []float64{math.NaN(), math.Inf(1), math.Inf(-1)} {
		_, err := numeral.Add(n(1), f)
		assert.ErrorIs(t, err, numeral.ErrNonInteger)
		_, err = numeral.Sub(f, n(1))
		assert.ErrorIs(t, err, numeral.ErrNonInteger)
		_, err = numeral.Mul(n(1), f)
		assert.ErrorIs(t, err, numeral.ErrNonInteger)
		_, err = numeral.Mod(n(1), f)
		assert.ErrorIs(t, err, numeral.ErrNonInteger)
		_, err = numeral.FloorDiv(f, n(1))
		assert.ErrorIs(t, err, numeral.ErrNonInteger)
	}
	_, err := numeral.Add(n(1), float32(math.NaN()))
	assert.ErrorIs(t, err, numeral.ErrNonInteger)
}

// TestOperands_Overflow surfaces int64 overflow as ErrOutOfRange.
func TestOperands_Overflow(t *testing.T) {
	_, err := numeral.Add(int64(math.MaxInt64), 1)
	assert.ErrorIs(t, err, numeral.ErrOutOfRange)
	_, err = numeral.Sub(int64(math.MinInt64), 1)
	assert.ErrorIs(t, err, numeral.ErrOutOfRange)
	_, err = numeral.Mul(int64(math.MaxInt64), 2)
	assert.ErrorIs(t, err, numeral.ErrOutOfRange)
	_, err = numeral.Mul(int64(math.MinInt64), -1)
	assert.ErrorIs(t, err, numeral.ErrOutOfRange)
	_, err = numeral.FloorDiv(int64(math.MinInt64), -1)
	assert.ErrorIs(t, err, numeral.ErrOutOfRange)
	_, err = numeral.Add(n(1), uint64(math.MaxUint64))
	assert.ErrorIs(t, err, numeral.ErrOutOfRange)
	_, err = numeral.Add(n(1), 1e20)
	assert.ErrorIs(t, err, numeral.ErrOutOfRange)

	// Large intermediate values are fine when the result lands in range.
	got, err := numeral.Add(int64(math.MaxInt64), int64(-math.MaxInt64+5))
	wantValue(t, 5, got, err)
}

// TestOperands_Kinds exercises every Operand type on both sides.
func TestOperands_Kinds(t *testing.T) {
	type result struct {
		got numeral.Numeral
		err error
	}
	five := n(5)
	var results []result
	collect := func(got numeral.Numeral, err error) {
		results = append(results, result{got, err})
	}
	collect(numeral.Add(five, int8(5)))
	collect(numeral.Add(int16(5), five))
	collect(numeral.Add(five, int32(5)))
	collect(numeral.Add(int64(5), five))
	collect(numeral.Add(five, uint(5)))
	collect(numeral.Add(uint8(5), five))
	collect(numeral.Add(five, uint16(5)))
	collect(numeral.Add(uint32(5), five))
	collect(numeral.Add(five, uint64(5)))
	collect(numeral.Add(float32(5.7), five))
	collect(numeral.Add(five, 5.2))
	for i, r := range results {
		require.NoError(t, r.err, "case %d", i)
		require.Equal(t, "X", r.got.String(), "case %d", i)
	}
}

// TestAdditivity: N(a)+N(b) == N(a+b) when in range, ErrOutOfRange otherwise.
func TestAdditivity(t *testing.T) {
	for a := 0; a <= numeral.MaxValue; a += 97 {
		for b := 0; b <= numeral.MaxValue; b += 89 {
			got, err := numeral.Add(n(a), n(b))
			if a+b > numeral.MaxValue {
				require.ErrorIs(t, err, numeral.ErrOutOfRange, "%d + %d", a, b)
				continue
			}
			wantValue(t, a+b, got, err)
		}
	}
}

// TestCommutativity: operand order never changes Add/Mul results or errors.
func TestCommutativity(t *testing.T) {
	plain := []int{0, 1, 4, 9, 40, 399, 1000, 3999, 4000, -1}
	for _, a := range []int{0, 1, 5, 58, 1994, 3999} {
		for _, p := range plain {
			l, lerr := numeral.Add(n(a), p)
			r, rerr := numeral.Add(p, n(a))
			require.Equal(t, l, r, "Add(%d, %d)", a, p)
			require.Equal(t, lerr == nil, rerr == nil)

			l, lerr = numeral.Mul(n(a), p)
			r, rerr = numeral.Mul(p, n(a))
			require.Equal(t, l, r, "Mul(%d, %d)", a, p)
			require.Equal(t, lerr == nil, rerr == nil)

			require.Equal(t, numeral.Equal(n(a), p), numeral.Equal(p, n(a)))
		}
	}
}

// TestImmutability: arithmetic never mutates its operands.
func TestImmutability(t *testing.T) {
	a, b := n(4), n(1)
	_, err := a.Add(b)
	require.NoError(t, err)
	assert.Equal(t, "IV", a.String())
	assert.Equal(t, "I", b.String())
}
