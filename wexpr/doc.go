// Package wexpr emits Wolfram Language (Mathematica) expression text from
// an in-memory value tree.
//
// wexpr is write-only: it produces notation that Mathematica's Get/Import
// can read back, but it never parses that notation itself.
//
// # Data Model
//
// Scalars: bool, int (arbitrary precision), real, complex, str
// Containers: list (ordered), set (unique elements, emitted in insertion
// order), assoc (insertion-ordered mapping with str/int/bool keys)
//
// The union is closed. Anything outside it is rejected up front with
// UnsupportedTypeError before any output is produced.
//
// # Notation
//
//	Bool:     True / False
//	Int:      -42
//	Real:     -1.00100*10^-03   (or a plain integer literal when integral)
//	Complex:  2.31*10^-01-1.54*10^-01I
//	Str:      "quoted \"text\"" or bare symbol (Symbols option)
//	List:     {1, 2, 3}
//	Assoc:    <|"a" -> 1, "b" -> 2|>
//
// Reals use normalized scientific notation with a configurable number of
// fractional digits and a signed, zero-padded exponent. Integral reals are
// emitted as plain integer literals unless KeepIntegers is disabled.
//
// # Example
//
//	v := wexpr.Assoc(
//		wexpr.Rule(wexpr.Str("samples"), wexpr.Int(100)),
//		wexpr.Rule(wexpr.Str("rate"), wexpr.Real(0.5)),
//	)
//	text, err := wexpr.Emit(v)
//	// <|"samples" -> 100, "rate" -> 5.00000*10^-01|>
//
// # Determinism
//
// Output is a pure function of the value and the options: container entries
// keep insertion order, an explicit top-level key order must be an exact
// permutation of the association's keys, and sets emit in insertion order
// (the notation has no unordered literal syntax).
package wexpr
