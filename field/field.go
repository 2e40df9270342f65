// SPDX-License-Identifier: MIT

// Package field defines the numeric capability set that matrix entries must
// provide, together with two realizations:
//
//   - Float32: the performance path. Its IEEE-754 bit pattern is what the codec
//     serializes, so the cipher's real encrypt/decrypt runs on this type.
//   - Rat: an exact rational built on math/big, used to reason about the
//     algebra without rounding error.
//
// Go has no static methods, so constants (zero, one) and sampling live on a
// separate Field descriptor value that travels with every matrix.
//
// Rounding is explicit: no operation here rounds unless Round is called.
package field

import "math/rand/v2"

// Element is the arithmetic surface of a field element. Every method is
// value-semantic: operands are never mutated.
type Element[E any] interface {
	// Add returns a + b.
	Add(b E) E
	// Sub returns a - b.
	Sub(b E) E
	// Mul returns a * b.
	Mul(b E) E
	// Div returns a / b. Division by zero is a caller bug; solvers check
	// pivots with IsZero before dividing.
	Div(b E) E
	// Neg returns -a.
	Neg() E
	// Abs returns |a|.
	Abs() E
	// Round rounds half away from zero to the given number of decimal places.
	// places <= 0 rounds to an integer value in the same representation.
	Round(places int) E
	// Pow raises a to an integer power; negative exponents invert.
	Pow(exp int) E
	// IsZero reports a == 0.
	IsZero() bool
	// Equal reports exact equality.
	Equal(b E) bool
	// Less reports a < b.
	Less(b E) bool
	// Float64 projects the value onto float64 (lossy for Rat).
	Float64() float64
	// String renders the value for diagnostics.
	String() string
}

// Field describes an element type: identities, conversions and sampling.
type Field[E Element[E]] interface {
	// Zero returns the additive identity.
	Zero() E
	// One returns the multiplicative identity.
	One() E
	// FromInt converts an integer exactly (Float32 may round for |v| > 2^24).
	FromInt(v int64) E
	// FromFloat64 converts a float64.
	FromFloat64(v float64) E
	// Random samples uniformly from the closed range [min, max] using r.
	// Reversed bounds are swapped.
	Random(r *rand.Rand, min, max E) E
	// Name is a short identifier used in logs and errors.
	Name() string
}

// Typed descriptors. Passing these (rather than the bare struct values) lets
// generic constructors infer the element type directly.
var (
	F32      Field[Float32] = Float32Field{}
	Rational Field[Rat]     = RatField{}
)
