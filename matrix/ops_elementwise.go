// SPDX-License-Identifier: MIT
// Package: matrix
//
// Purpose:
//   - Element-wise kernels: Add, Sub, Hadamard, Scale, Round.
//   - Tolerance comparisons (AllClose, MaxAbsDiff) projected through Float64.
//
// Determinism & Performance:
//   - Single flat pass over the row-major buffer (0..r*c-1).
//   - Exactly one output allocation per call; O(r*c) time and space.

package matrix

import (
	"math"

	"github.com/katalvlaran/lucipher/field"
)

// zipWith applies fn to aligned entries of a and b after nil/shape validation.
func zipWith[E field.Element[E]](op string, a, b *Dense[E], fn func(x, y E) E) (*Dense[E], error) {
	if err := ValidateNotNil(a, b); err != nil {
		return nil, matrixErrorf(op, err)
	}
	if err := ValidateSameShape(a, b); err != nil {
		return nil, matrixErrorf(op, err)
	}

	out := newDenseLike(a, a.r, a.c)
	for i := range a.data {
		out.data[i] = fn(a.data[i], b.data[i])
	}

	return out, nil
}

// Add returns a + b element-wise.
// Errors: ErrNilMatrix, ErrDimensionMismatch.
func Add[E field.Element[E]](a, b *Dense[E]) (*Dense[E], error) {
	return zipWith(opAdd, a, b, func(x, y E) E { return x.Add(y) })
}

// Sub returns a - b element-wise.
// Errors: ErrNilMatrix, ErrDimensionMismatch.
func Sub[E field.Element[E]](a, b *Dense[E]) (*Dense[E], error) {
	return zipWith(opSub, a, b, func(x, y E) E { return x.Sub(y) })
}

// Hadamard returns the element-wise product a ⊙ b.
// Multiplying by Identity(n) keeps only the diagonal, which is how the key
// generator isolates diag(K).
func Hadamard[E field.Element[E]](a, b *Dense[E]) (*Dense[E], error) {
	return zipWith(opHadamard, a, b, func(x, y E) E { return x.Mul(y) })
}

// Scale returns alpha*m as a new matrix.
func Scale[E field.Element[E]](m *Dense[E], alpha E) (*Dense[E], error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, matrixErrorf(opScale, err)
	}

	return m.Clone().ScaleInPlace(alpha), nil
}

// Round returns a copy of m with every entry rounded half away from zero to
// the given decimal places (places <= 0 rounds to integers).
func Round[E field.Element[E]](m *Dense[E], places int) (*Dense[E], error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, matrixErrorf(opRound, err)
	}

	return m.Clone().RoundInPlace(places), nil
}

// MaxAbsDiff returns max |a_ij - b_ij| over all entries, projected to float64.
// Errors: ErrNilMatrix, ErrDimensionMismatch.
func MaxAbsDiff[E field.Element[E]](a, b *Dense[E]) (float64, error) {
	if err := ValidateNotNil(a, b); err != nil {
		return 0, matrixErrorf(opAllClose, err)
	}
	if err := ValidateSameShape(a, b); err != nil {
		return 0, matrixErrorf(opAllClose, err)
	}

	var worst float64
	for i := range a.data {
		worst = math.Max(worst, math.Abs(a.data[i].Float64()-b.data[i].Float64()))
	}

	return worst, nil
}

// AllClose reports whether every pair satisfies |a-b| <= atol + rtol*|b|
// (the numpy convention, asymmetric in b). NaN never compares close.
//
// Errors: ErrNilMatrix, ErrDimensionMismatch.
func AllClose[E field.Element[E]](a, b *Dense[E], rtol, atol float64) (bool, error) {
	if err := ValidateNotNil(a, b); err != nil {
		return false, matrixErrorf(opAllClose, err)
	}
	if err := ValidateSameShape(a, b); err != nil {
		return false, matrixErrorf(opAllClose, err)
	}

	var x, y float64
	for i := range a.data {
		x, y = a.data[i].Float64(), b.data[i].Float64()
		if !(math.Abs(x-y) <= atol+rtol*math.Abs(y)) {
			return false, nil
		}
	}

	return true, nil
}
