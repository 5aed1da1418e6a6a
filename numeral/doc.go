// Package numeral implements Roman numerals as an immutable, bounded value
// type for the integers 0–3999.
//
// What:
//
//   - Validate / IsValid: the numeral grammar, one independent form per
//     place (thousands, hundreds, tens, ones) in descending order.
//   - Decode / Encode: greedy conversion over a 13-entry symbol table
//     (M, CM, D, CD, C, XC, L, XL, X, IX, V, IV, I).
//   - Numeral: a (canonical string, value) pair built by Parse, FromInt or
//     FromFloat. The zero value is the empty numeral, 0.
//   - Arithmetic: Add, Sub, Mul, FloorDiv, Mod, DivMod, Pow and TrueDiv
//     accept a Numeral or a plain number on either side.
//   - Ordering: Compare plus Equal, NotEqual, Less, LessOrEqual, Greater,
//     GreaterOrEqual, all derived from one primitive.
//   - ByPlaceValue: thousands/hundreds/tens/ones, each a full Numeral.
//   - Random / Generator: uniform numerals from an injected *rand.Rand.
//
// Canonical form:
//
//	Encode is the definition of canonical form. The grammar only admits
//	canonical strings, so Encode(Decode(s)) == strings.ToUpper(s) for every
//	valid s, and "IIII" or "VX" are rejected rather than normalized.
//
// Errors:
//
//   - ErrInvalidNumeral: string fails the grammar.
//   - ErrOutOfRange: operand or result outside [0, 3999].
//   - ErrNonInteger: fractional, NaN or infinite real where an integer is required.
//   - ErrUnsupportedOperation: TrueDiv.
//   - ErrInvalidRange: bad random bounds.
//   - ErrDivisionByZero: zero divisor.
//   - ErrPlaceIndex: PlaceValues.At outside the four slots.
//
// Concurrency:
//
//	Every function is pure over immutable values and safe for concurrent
//	use. The exception is the random source: a *rand.Rand (and therefore a
//	Generator) must not be shared between goroutines.
//
// Quick example:
//
//	n, _ := numeral.Parse("mcmxciv")
//	fmt.Println(n, n.Int())       // MCMXCIV 1994
//	sum, _ := numeral.Add(n, 5)   // MCMXCIX
//	_, err := numeral.Add(n, 2006) // ErrOutOfRange
package numeral
