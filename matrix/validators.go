// SPDX-License-Identifier: MIT
// Package: matrix
//
// Purpose:
//  - Provide a single, canonical source of truth for common validation checks.
//  - Keep kernels minimal by delegating shape/nil/dominance checks here.
//  - Return sentinel errors tagged with the validator name so call sites can wrap uniformly.
//
// Determinism & Performance:
//  - Shape checks are O(1) and allocate nothing.
//  - The dominance check runs O(n²) over the whole matrix once.

package matrix

import (
	"fmt"
	"math"

	"github.com/katalvlaran/lucipher/field"
)

// validatorErrorf wraps an underlying error with the given validator tag.
func validatorErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

// ValidateNotNil ensures every operand is a non-nil *Dense.
func ValidateNotNil[E field.Element[E]](ms ...*Dense[E]) error {
	for _, m := range ms {
		if m == nil {
			return validatorErrorf("ValidateNotNil", ErrNilMatrix)
		}
	}

	return nil
}

// ValidateSameShape ensures a and b have equal dimensions.
// Return: nil or wrapped ErrDimensionMismatch.
// Complexity: O(1).
func ValidateSameShape(a, b Shaped) error {
	if a.Rows() != b.Rows() {
		return validatorErrorf("ValidateSameShape: Rows", ErrDimensionMismatch)
	}
	if a.Cols() != b.Cols() {
		return validatorErrorf("ValidateSameShape: Columns", ErrDimensionMismatch)
	}

	return nil
}

// ValidateSquare checks that m is square (Rows == Cols).
// Errors: ErrNonSquare, which also matches ErrDimensionMismatch.
func ValidateSquare(m Shaped) error {
	if m.Rows() != m.Cols() {
		return validatorErrorf("ValidateSquare", fmt.Errorf("%w: %w", ErrNonSquare, ErrDimensionMismatch))
	}

	return nil
}

// ValidateMulCompatible checks the inner dimensions of a product a×b.
func ValidateMulCompatible(a, b Shaped) error {
	if a.Cols() != b.Rows() {
		return validatorErrorf("ValidateMulCompatible", fmt.Errorf("%dx%d × %dx%d: %w",
			a.Rows(), a.Cols(), b.Rows(), b.Cols(), ErrDimensionMismatch))
	}

	return nil
}

// ValidateVecLen ensures a vector length matches the required size n.
func ValidateVecLen(length, n int) error {
	if length != n {
		return validatorErrorf("ValidateVecLen", fmt.Errorf("len %d, want %d: %w", length, n, ErrDimensionMismatch))
	}

	return nil
}

// DiagonalDominance returns min_i ( |A_ii| − Σ_{j≠i} |A_ij| ) projected to float64.
// A positive margin means A is strictly diagonally dominant by rows, the
// standard sufficient condition for Jacobi/Gauss-Seidel style relaxation.
//
// Errors: ErrNilMatrix, ErrNonSquare.
// Complexity: O(n²).
func DiagonalDominance[E field.Element[E]](a *Dense[E]) (float64, error) {
	if err := ValidateNotNil(a); err != nil {
		return 0, matrixErrorf(opDominance, err)
	}
	if err := ValidateSquare(a); err != nil {
		return 0, matrixErrorf(opDominance, err)
	}

	n := a.r
	margin := math.Inf(1)
	var i, j int
	var off float64
	for i = 0; i < n; i++ {
		off = 0
		for j = 0; j < n; j++ {
			if j != i {
				off += math.Abs(a.data[i*n+j].Float64())
			}
		}
		margin = math.Min(margin, math.Abs(a.data[i*n+i].Float64())-off)
	}

	return margin, nil
}

// ValidateDiagonallyDominant returns ErrNotDiagonallyDominant unless every row
// of a is strictly diagonally dominant.
func ValidateDiagonallyDominant[E field.Element[E]](a *Dense[E]) error {
	margin, err := DiagonalDominance(a)
	if err != nil {
		return validatorErrorf("ValidateDiagonallyDominant", err)
	}
	if margin <= 0 {
		return validatorErrorf("ValidateDiagonallyDominant", fmt.Errorf("margin %g: %w", margin, ErrNotDiagonallyDominant))
	}

	return nil
}
