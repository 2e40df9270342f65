// SPDX-License-Identifier: MIT

package matrix

// Shaped is the minimal read-only view validators need.
// *Dense[E] satisfies it for every element type.
type Shaped interface {
	// Rows returns the number of rows.
	Rows() int
	// Cols returns the number of columns.
	Cols() int
}

// Matrix is the element-access contract shared by every matrix in the package.
// Kernels take *Dense[E] directly; Matrix exists for callers that only read
// and write cells.
type Matrix[E any] interface {
	Shaped
	// At returns the value at (row, col) or ErrOutOfRange.
	At(row, col int) (E, error)
	// Set stores v at (row, col) or returns ErrOutOfRange.
	Set(row, col int, v E) error
}
