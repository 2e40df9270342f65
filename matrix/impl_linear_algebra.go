// SPDX-License-Identifier: MIT
// Package matrix provides the linear-algebra kernels used by the cipher:
// matrix product, transpose, triangular extraction, Doolittle LU and the
// determinant. All functions perform strict fail-fast validation and return
// clear errors on dimension mismatches.
//
// Notes:
//   - Element-wise kernels live in ops_elementwise.go; solvers in impl_solve.go.
//   - All kernels use central validators and wrap sentinels via matrixErrorf.

package matrix

import (
	"fmt"

	"github.com/katalvlaran/lucipher/field"
	"github.com/katalvlaran/lucipher/internal/workpool"
)

// Operation name constants for unified error wrapping and reducing magic strings.
const (
	opAdd         = "Add"
	opSub         = "Sub"
	opMul         = "Mul"
	opTranspose   = "Transpose"
	opTril        = "Tril"
	opTriu        = "Triu"
	opScale       = "Scale"
	opRound       = "Round"
	opHadamard    = "Hadamard"
	opLU          = "LU"
	opDet         = "Det"
	opFromRows    = "FromRows"
	opFromColumns = "FromColumns"
	opRandom      = "Random"
	opAllClose    = "AllClose"
	opForward     = "ForwardSubstitute"
	opBackward    = "BackSubstitute"
	opSolveLU     = "SolveLU"
	opSOR         = "SolveSOR"
	opDominance   = "DiagonalDominance"
)

// matrixErrorf wraps err with an operation tag, keeping the cause matchable via %w.
// Use only when err != nil to avoid creating a non-nil wrapper around a nil cause.
// Complexity: O(1).
func matrixErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

// Mul performs standard matrix multiplication C = A × B using every available
// CPU (see MulWorkers).
func Mul[E field.Element[E]](a, b *Dense[E]) (*Dense[E], error) {
	return MulWorkers(a, b, 0)
}

// Dot is an alias for Mul.
func Dot[E field.Element[E]](a, b *Dense[E]) (*Dense[E], error) { return Mul(a, b) }

// MulWorkers performs C = A × B with row-parallel decomposition.
//
// Implementation:
//   - Stage 1: Validate A,B (not nil) and inner dimensions (A.Cols == B.Rows).
//   - Stage 2: One task per output row; each task runs i→k→j over row-major
//     strides and writes only row i of C.
//
// Behavior highlights:
//   - Deterministic: each C[i,j] accumulates k = 0..n-1 in fixed order inside
//     a single task, so scheduling cannot change the floating-point result.
//   - Zero A[i,k] entries are skipped (triangular factors are half zeros).
//
// Inputs:
//   - a: (r × n), b: (n × c), workers: <= 0 selects GOMAXPROCS.
//
// Errors:
//   - ErrNilMatrix, ErrDimensionMismatch (inner mismatch; never truncates or pads).
//
// Complexity:
//   - Time O(r*n*c), Space O(r*c).
func MulWorkers[E field.Element[E]](a, b *Dense[E], workers int) (*Dense[E], error) {
	if err := ValidateNotNil(a, b); err != nil {
		return nil, matrixErrorf(opMul, err)
	}
	if err := ValidateMulCompatible(a, b); err != nil {
		return nil, matrixErrorf(opMul, err)
	}

	aRows, aCols, bCols := a.r, a.c, b.c
	res := newDenseLike(a, aRows, bCols)

	err := workpool.ForEach(aRows, workers, func(i int) error {
		rowA := a.data[i*aCols : (i+1)*aCols]
		rowR := res.data[i*bCols : (i+1)*bCols]
		var j, k, baseB int
		for k = 0; k < aCols; k++ {
			av := rowA[k]
			if av.IsZero() {
				continue // skip zero for performance
			}
			baseB = k * bCols
			for j = 0; j < bCols; j++ {
				rowR[j] = rowR[j].Add(av.Mul(b.data[baseB+j]))
			}
		}
		return nil
	})
	if err != nil {
		return nil, matrixErrorf(opMul, err)
	}

	return res, nil
}

// Transpose returns a new matrix with rows and columns swapped (mᵀ).
// transpose(transpose(m)) == m. Complexity: O(r*c).
func Transpose[E field.Element[E]](m *Dense[E]) (*Dense[E], error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, matrixErrorf(opTranspose, err)
	}

	rows, cols := m.r, m.c
	res := newDenseLike(m, cols, rows)
	var i, j, baseSrc int
	for i = 0; i < rows; i++ {
		baseSrc = i * cols
		for j = 0; j < cols; j++ {
			res.data[j*rows+i] = m.data[baseSrc+j]
		}
	}

	return res, nil
}

// Tril returns the lower triangle of m including the diagonal; entries with
// column > row are zeroed. Defined for rectangular input by index comparison.
func Tril[E field.Element[E]](m *Dense[E]) (*Dense[E], error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, matrixErrorf(opTril, err)
	}

	return triangle(m, func(i, j int) bool { return j <= i }), nil
}

// Triu returns the upper triangle of m including the diagonal; entries with
// column < row are zeroed.
func Triu[E field.Element[E]](m *Dense[E]) (*Dense[E], error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, matrixErrorf(opTriu, err)
	}

	return triangle(m, func(i, j int) bool { return j >= i }), nil
}

// triangle copies the entries for which keep(i,j) holds; the rest stay zero.
func triangle[E field.Element[E]](m *Dense[E], keep func(i, j int) bool) *Dense[E] {
	res := newDenseLike(m, m.r, m.c)
	var i, j, base int
	for i = 0; i < m.r; i++ {
		base = i * m.c
		for j = 0; j < m.c; j++ {
			if keep(i, j) {
				res.data[base+j] = m.data[base+j]
			}
		}
	}

	return res
}

// LU computes the Doolittle factorization A = L*U with unit diagonal on L (no pivoting).
//
// Implementation:
//   - Stage 1: Validate m (not nil, square); allocate L,U; set diag(L)=1.
//   - Stage 2: For i=0..n-1, build row i of U and column i of L in fixed order.
//
// Returns:
//   - L (unit lower triangular), U (upper triangular).
//
// Errors:
//   - ErrNilMatrix, ErrNonSquare, ErrSingular (if U[i,i]==0 during factorization).
//
// Complexity:
//   - Time O(n^3), Space O(n^2).
//
// Notes:
//   - The cipher never re-factors its encryption matrix: the factors are known
//     by construction. LU backs Det and the invariant checks around it.
func LU[E field.Element[E]](m *Dense[E]) (*Dense[E], *Dense[E], error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, nil, matrixErrorf(opLU, err)
	}
	if err := ValidateSquare(m); err != nil {
		return nil, nil, matrixErrorf(opLU, err)
	}

	n := m.r
	L := newDenseLike(m, n, n)
	U := newDenseLike(m, n, n)
	one := m.f.One()
	for i := 0; i < n; i++ {
		L.data[i*n+i] = one
	}

	var i, j, k int
	var sum, pivot E
	for i = 0; i < n; i++ {
		// Compute U[i][j] for j >= i
		for j = i; j < n; j++ {
			sum = m.f.Zero()
			for k = 0; k < i; k++ {
				sum = sum.Add(L.data[i*n+k].Mul(U.data[k*n+j]))
			}
			U.data[i*n+j] = m.data[i*n+j].Sub(sum)
		}

		// Zero-pivot guard (deterministic singularity detection)
		pivot = U.data[i*n+i]
		if pivot.IsZero() {
			return nil, nil, matrixErrorf(opLU, fmt.Errorf("pivot %d: %w", i, ErrSingular))
		}

		// Compute L[j][i] for j > i
		for j = i + 1; j < n; j++ {
			sum = m.f.Zero()
			for k = 0; k < i; k++ {
				sum = sum.Add(L.data[j*n+k].Mul(U.data[k*n+i]))
			}
			L.data[j*n+i] = m.data[j*n+i].Sub(sum).Div(pivot)
		}
	}

	return L, U, nil
}

// Det returns the determinant of a square matrix by Gaussian elimination
// with partial pivoting (largest |pivot| per column, row swaps flip the sign).
// A column without a non-zero pivot yields an exact zero determinant.
//
// Errors: ErrNilMatrix, ErrNonSquare.
// Complexity: O(n^3) time, O(n^2) space for the working copy.
func Det[E field.Element[E]](m *Dense[E]) (E, error) {
	var zero E
	if err := ValidateNotNil(m); err != nil {
		return zero, matrixErrorf(opDet, err)
	}
	if err := ValidateSquare(m); err != nil {
		return zero, matrixErrorf(opDet, err)
	}

	n := m.r
	w := m.Clone()
	det := m.f.One()
	var i, j, k, p int
	for k = 0; k < n; k++ {
		// Select the pivot row with the largest magnitude in column k.
		p = k
		for i = k + 1; i < n; i++ {
			if w.data[p*n+k].Abs().Less(w.data[i*n+k].Abs()) {
				p = i
			}
		}
		if w.data[p*n+k].IsZero() {
			return m.f.Zero(), nil
		}
		if p != k {
			for j = 0; j < n; j++ {
				w.data[k*n+j], w.data[p*n+j] = w.data[p*n+j], w.data[k*n+j]
			}
			det = det.Neg()
		}

		pivot := w.data[k*n+k]
		det = det.Mul(pivot)
		for i = k + 1; i < n; i++ {
			factor := w.data[i*n+k].Div(pivot)
			if factor.IsZero() {
				continue
			}
			for j = k; j < n; j++ {
				w.data[i*n+j] = w.data[i*n+j].Sub(factor.Mul(w.data[k*n+j]))
			}
		}
	}

	return det, nil
}
