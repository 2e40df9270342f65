// SPDX-License-Identifier: MIT
// Package matrix: sentinel error set.
// This file defines ONLY package-level sentinel errors used across the matrix
// package. Kernels return these sentinels wrapped with an operation tag and
// tests check them via errors.Is. No kernel panics on a shape or index problem;
// the caller decides whether a mismatch is fatal.

package matrix

import "errors"

// Every message is prefixed with "matrix: ..." for consistency and to allow
// easy grepping across logs. Wrap with matrixErrorf(op, ErrX) at the detection
// site; callers still match with errors.Is.

var (
	// ErrInvalidDimensions indicates that requested matrix dimensions are non-positive
	// or that a construction table was empty.
	ErrInvalidDimensions = errors.New("matrix: dimensions must be > 0")

	// ErrOutOfRange indicates that an index (row or column) is outside valid bounds.
	// Public indexers (At/Set/Row/Col) return this, never panic.
	ErrOutOfRange = errors.New("matrix: index out of range")

	// ErrDimensionMismatch indicates incompatible dimensions between operands,
	// e.g., Add/Sub different shapes, or Mul where a.Cols != b.Rows.
	ErrDimensionMismatch = errors.New("matrix: dimension mismatch")

	// ErrNonSquare signals that a square matrix was required but the input wasn't.
	ErrNonSquare = errors.New("matrix: matrix is not square")

	// ErrNilMatrix indicates that a nil *Dense (receiver or argument) was used.
	ErrNilMatrix = errors.New("matrix: nil matrix")

	// ErrRaggedRows indicates that the rows of a construction table differ in length.
	ErrRaggedRows = errors.New("matrix: rows have different lengths")

	// ErrBadRange indicates a sampling range with min > max.
	ErrBadRange = errors.New("matrix: invalid sampling range")

	// ErrSingular is returned when a zero pivot is met during LU or a triangular
	// solve, or a zero diagonal during relaxation.
	ErrSingular = errors.New("matrix: singular matrix")

	// ErrNotDiagonallyDominant marks a matrix whose rows are not strictly
	// diagonally dominant; relaxation is not guaranteed to converge on it.
	ErrNotDiagonallyDominant = errors.New("matrix: matrix is not diagonally dominant")
)
