// Package lvroman is a small toolkit for classical Roman numerals: a bounded
// value type for 0..3999 and a command line front end over it.
//
// What is inside?
//
//	numeral/          : the Numeral value type, validation, encode/decode,
//	                    arithmetic and comparisons over numerals and plain
//	                    numbers, place-value decomposition, random numerals
//	internal/cli/     : the roman command tree (parse, encode, validate,
//	                    places, random, calc, version)
//	internal/config/  : ROMAN_* environment, config file and flag settings
//	internal/logging/ : zerolog setup for the command line
//	cmd/roman/        : the roman binary
//	examples/         : runnable programs using the numeral API
//
// Quick example:
//
//	n, err := numeral.Parse("mcmxciv")
//	if err != nil {
//		return err
//	}
//	fmt.Println(n, n.Int()) // MCMXCIV 1994
//
//	next, err := numeral.Add(n, 32) // MMXXVI
//
// Numerals never exceed MMMCMXCIX. Any operation that would leave the range
// returns an error wrapping numeral.ErrOutOfRange instead of a value.
//
//	go get github.com/katalvlaran/lvroman/numeral
package lvroman
