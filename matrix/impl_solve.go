// SPDX-License-Identifier: MIT
// Package: matrix
//
// Purpose:
//   - Triangular substitution (forward, backward) and the composed LU solve.
//   - Successive over-relaxation (SOR) for a fixed number of sweeps.
//
// Contracts:
//   - Vectors are plain []E of length n; inputs are never mutated.
//   - A zero diagonal entry is reported as ErrSingular, never divided by.
//   - Only the relevant triangle is read; the other triangle may hold anything.

package matrix

import (
	"fmt"

	"github.com/katalvlaran/lucipher/field"
)

// solvePrologue checks nil, squareness and the vector length shared by every solver.
func solvePrologue[E field.Element[E]](op string, a *Dense[E], b []E) error {
	if err := ValidateNotNil(a); err != nil {
		return matrixErrorf(op, err)
	}
	if err := ValidateSquare(a); err != nil {
		return matrixErrorf(op, err)
	}
	if err := ValidateVecLen(len(b), a.r); err != nil {
		return matrixErrorf(op, err)
	}

	return nil
}

// ForwardSubstitute solves L·z = b for lower-triangular L:
//
//	z_i = (b_i − Σ_{j<i} L_ij·z_j) / L_ii,  i = 0..n-1.
//
// Errors: ErrNilMatrix, ErrNonSquare, ErrDimensionMismatch, ErrSingular.
// Complexity: O(n²).
func ForwardSubstitute[E field.Element[E]](L *Dense[E], b []E) ([]E, error) {
	if err := solvePrologue(opForward, L, b); err != nil {
		return nil, err
	}

	n := L.r
	z := make([]E, n)
	var i, j int
	var acc, d E
	for i = 0; i < n; i++ {
		acc = b[i]
		for j = 0; j < i; j++ {
			acc = acc.Sub(L.data[i*n+j].Mul(z[j]))
		}
		d = L.data[i*n+i]
		if d.IsZero() {
			return nil, matrixErrorf(opForward, fmt.Errorf("row %d: %w", i, ErrSingular))
		}
		z[i] = acc.Div(d)
	}

	return z, nil
}

// BackSubstitute solves U·x = z for upper-triangular U, last index first:
//
//	x_i = (z_i − Σ_{j>i} U_ij·x_j) / U_ii,  i = n-1..0.
//
// Errors: ErrNilMatrix, ErrNonSquare, ErrDimensionMismatch, ErrSingular.
// Complexity: O(n²).
func BackSubstitute[E field.Element[E]](U *Dense[E], z []E) ([]E, error) {
	if err := solvePrologue(opBackward, U, z); err != nil {
		return nil, err
	}

	n := U.r
	x := make([]E, n)
	var i, j int
	var acc, d E
	for i = n - 1; i >= 0; i-- {
		acc = z[i]
		for j = i + 1; j < n; j++ {
			acc = acc.Sub(U.data[i*n+j].Mul(x[j]))
		}
		d = U.data[i*n+i]
		if d.IsZero() {
			return nil, matrixErrorf(opBackward, fmt.Errorf("row %d: %w", i, ErrSingular))
		}
		x[i] = acc.Div(d)
	}

	return x, nil
}

// SolveLU solves (L·U)·x = b by forward then back substitution.
func SolveLU[E field.Element[E]](L, U *Dense[E], b []E) ([]E, error) {
	z, err := ForwardSubstitute(L, b)
	if err != nil {
		return nil, matrixErrorf(opSolveLU, err)
	}
	x, err := BackSubstitute(U, z)
	if err != nil {
		return nil, matrixErrorf(opSolveLU, err)
	}

	return x, nil
}

// SolveSOR approximates A·x = b with successive over-relaxation.
//
// Implementation:
//   - Start from x := b.
//   - Each sweep visits rows in order and updates x in place, so later rows
//     already see the new values of earlier ones (Gauss-Seidel ordering):
//     x_i ← (ω/A_ii)·(b_i − Σ_{j≠i} A_ij·x_j) + (1−ω)·x_i.
//   - Exactly iterations sweeps run; there is no residual test.
//
// iterations == 0 returns a copy of b. A negative count is treated as zero.
// Convergence is the caller's concern (see DiagonalDominance).
//
// Errors: ErrNilMatrix, ErrNonSquare, ErrDimensionMismatch, ErrSingular.
// Complexity: O(iterations·n²).
func SolveSOR[E field.Element[E]](A *Dense[E], b []E, omega E, iterations int) ([]E, error) {
	if err := solvePrologue(opSOR, A, b); err != nil {
		return nil, err
	}

	n := A.r
	for i := 0; i < n; i++ {
		if A.data[i*n+i].IsZero() {
			return nil, matrixErrorf(opSOR, fmt.Errorf("diagonal %d: %w", i, ErrSingular))
		}
	}

	x := make([]E, n)
	copy(x, b)
	keep := A.f.One().Sub(omega)

	var it, i, j int
	var acc E
	for it = 0; it < iterations; it++ {
		for i = 0; i < n; i++ {
			acc = b[i]
			for j = 0; j < n; j++ {
				if j != i {
					acc = acc.Sub(A.data[i*n+j].Mul(x[j]))
				}
			}
			x[i] = omega.Div(A.data[i*n+i]).Mul(acc).Add(keep.Mul(x[i]))
		}
	}

	return x, nil
}
