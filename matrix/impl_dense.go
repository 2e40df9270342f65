// SPDX-License-Identifier: MIT

// Package matrix - Dense storage (row-major) & safe accessors.
//
// Purpose:
//   - Provide a cache-friendly row-major buffer with the explicit index formula i*cols + j.
//   - Guarantee safety at the public surface: At/Set/Row/Col return errors instead of panicking.
//   - Keep algorithmic determinism (fixed loop orders, no map iteration).
//   - Carry the field descriptor with the data so kernels can build identities and constants.
//
// Complexity quicksheet:
//   - NewDense: O(r*c) init; At/Set: O(1); Row: O(c); Col: O(r); Clone: O(r*c).

package matrix

import (
	"fmt"
	"strings"

	"github.com/katalvlaran/lucipher/field"
)

// ---------- error context tags ----------

const (
	ctxAt     = "At"
	ctxSet    = "Set"
	ctxRow    = "Row"
	ctxCol    = "Col"
	ctxSetCol = "SetCol"
)

// ---------- Formatting literals ----------
const (
	_fmtRowOpen  = "["
	_fmtRowClose = "]\n"
	_fmtSep      = ", "
)

// denseErrorf wraps an error with a uniform Dense context and callsite indices.
// Stable, human-friendly messages; preserves the sentinel via %w.
// Complexity: O(1).
func denseErrorf(method string, row, col int, err error) error {
	return fmt.Errorf("Dense.%s(%d,%d): %w", method, row, col, err)
}

// Dense is a concrete row-major matrix over the field element type E.
//   - r,c hold dimensions (rows, cols), both > 0.
//   - data is a flat buffer of length r*c in row-major order (offset = i*c + j).
//   - f is the field descriptor used to create identities and constants.
type Dense[E field.Element[E]] struct {
	r, c int            // row and column counts
	data []E            // contiguous row-major storage (len == r*c)
	f    field.Field[E] // element descriptor
}

// NewDense creates an r×c zero matrix using row-major storage.
//
// Implementation:
//   - Stage 1: validate rows>0 && cols>0; else ErrInvalidDimensions.
//   - Stage 2: allocate the flat buffer and fill it with f.Zero().
//
// Errors:
//   - ErrInvalidDimensions (shape contract violation).
//
// Complexity:
//   - Time O(r*c), Space O(r*c).
func NewDense[E field.Element[E]](f field.Field[E], rows, cols int) (*Dense[E], error) {
	if rows <= 0 || cols <= 0 {
		return nil, ErrInvalidDimensions
	}
	buf := make([]E, rows*cols)
	zero := f.Zero()
	for i := range buf {
		buf[i] = zero
	}

	return &Dense[E]{r: rows, c: cols, data: buf, f: f}, nil
}

// newDenseLike allocates a zero matrix with m's field and the given shape.
// Internal: callers guarantee positive dimensions.
func newDenseLike[E field.Element[E]](m *Dense[E], rows, cols int) *Dense[E] {
	out, _ := NewDense(m.f, rows, cols)
	return out
}

// FromRows builds a matrix from a table of rows. The table is copied.
//
// Errors:
//   - ErrInvalidDimensions when the table or its first row is empty.
//   - ErrRaggedRows when rows differ in length.
//
// Complexity: O(r*c).
func FromRows[E field.Element[E]](f field.Field[E], rows [][]E) (*Dense[E], error) {
	if len(rows) == 0 || len(rows[0]) == 0 {
		return nil, matrixErrorf(opFromRows, ErrInvalidDimensions)
	}
	r, c := len(rows), len(rows[0])
	out, err := NewDense(f, r, c)
	if err != nil {
		return nil, matrixErrorf(opFromRows, err)
	}
	for i, row := range rows {
		if len(row) != c {
			return nil, matrixErrorf(opFromRows, fmt.Errorf("row %d has %d entries, want %d: %w", i, len(row), c, ErrRaggedRows))
		}
		copy(out.data[i*c:(i+1)*c], row)
	}

	return out, nil
}

// FromColumns builds a matrix whose j-th column is cols[j]. The table is copied.
// Errors mirror FromRows.
func FromColumns[E field.Element[E]](f field.Field[E], cols [][]E) (*Dense[E], error) {
	if len(cols) == 0 || len(cols[0]) == 0 {
		return nil, matrixErrorf(opFromColumns, ErrInvalidDimensions)
	}
	r, c := len(cols[0]), len(cols)
	out, err := NewDense(f, r, c)
	if err != nil {
		return nil, matrixErrorf(opFromColumns, err)
	}
	for j, col := range cols {
		if len(col) != r {
			return nil, matrixErrorf(opFromColumns, fmt.Errorf("column %d has %d entries, want %d: %w", j, len(col), r, ErrRaggedRows))
		}
		for i, v := range col {
			out.data[i*c+j] = v
		}
	}

	return out, nil
}

// Rows returns the row count. Complexity: O(1).
func (m *Dense[E]) Rows() int { return m.r }

// Cols returns the column count. Complexity: O(1).
func (m *Dense[E]) Cols() int { return m.c }

// Shape packs Rows() and Cols() into a single call.
func (m *Dense[E]) Shape() (rows, cols int) { return m.r, m.c }

// Field returns the element descriptor the matrix was built with.
func (m *Dense[E]) Field() field.Field[E] { return m.f }

// indexOf computes the row-major offset or returns ErrOutOfRange.
func (m *Dense[E]) indexOf(row, col int) (int, error) {
	if row < 0 || row >= m.r {
		return 0, ErrOutOfRange
	}
	if col < 0 || col >= m.c {
		return 0, ErrOutOfRange
	}

	// Row-major offset: i*c + j.
	return row*m.c + col, nil
}

// At returns the value at (row, col) or ErrOutOfRange.
// Complexity: O(1).
func (m *Dense[E]) At(row, col int) (E, error) {
	off, err := m.indexOf(row, col)
	if err != nil {
		var zero E
		return zero, denseErrorf(ctxAt, row, col, err)
	}

	return m.data[off], nil
}

// Set stores v at (row, col) or returns ErrOutOfRange.
// Complexity: O(1).
func (m *Dense[E]) Set(row, col int, v E) error {
	off, err := m.indexOf(row, col)
	if err != nil {
		return denseErrorf(ctxSet, row, col, err)
	}
	m.data[off] = v

	return nil
}

// Row returns a copy of row i (contiguous copy, O(c)).
func (m *Dense[E]) Row(i int) ([]E, error) {
	if i < 0 || i >= m.r {
		return nil, denseErrorf(ctxRow, i, 0, ErrOutOfRange)
	}
	out := make([]E, m.c)
	copy(out, m.data[i*m.c:(i+1)*m.c])

	return out, nil
}

// Col returns a copy of column j (strided copy, O(r)).
func (m *Dense[E]) Col(j int) ([]E, error) {
	if j < 0 || j >= m.c {
		return nil, denseErrorf(ctxCol, 0, j, ErrOutOfRange)
	}
	out := make([]E, m.r)
	for i := 0; i < m.r; i++ {
		out[i] = m.data[i*m.c+j]
	}

	return out, nil
}

// SetCol overwrites column j with v; len(v) must equal Rows().
// Concurrent SetCol calls on distinct columns touch disjoint cells.
func (m *Dense[E]) SetCol(j int, v []E) error {
	if j < 0 || j >= m.c {
		return denseErrorf(ctxSetCol, 0, j, ErrOutOfRange)
	}
	if len(v) != m.r {
		return denseErrorf(ctxSetCol, 0, j, ErrDimensionMismatch)
	}
	for i := 0; i < m.r; i++ {
		m.data[i*m.c+j] = v[i]
	}

	return nil
}

// Diag returns the main diagonal (length min(r,c)).
func (m *Dense[E]) Diag() []E {
	n := min(m.r, m.c)
	out := make([]E, n)
	for i := 0; i < n; i++ {
		out[i] = m.data[i*m.c+i]
	}

	return out
}

// Values returns a row-major copy of all entries.
func (m *Dense[E]) Values() []E {
	out := make([]E, len(m.data))
	copy(out, m.data)

	return out
}

// Clone returns a deep copy (new buffer, same field).
// Complexity: O(r*c).
func (m *Dense[E]) Clone() *Dense[E] {
	cp := make([]E, len(m.data))
	copy(cp, m.data)

	return &Dense[E]{r: m.r, c: m.c, data: cp, f: m.f}
}

// Equal reports identical shape and element-wise exact equality.
func (m *Dense[E]) Equal(o *Dense[E]) bool {
	if m == nil || o == nil {
		return m == o
	}
	if m.r != o.r || m.c != o.c {
		return false
	}
	for i := range m.data {
		if !m.data[i].Equal(o.data[i]) {
			return false
		}
	}

	return true
}

// Do visits each element (i,j) in row-major order and calls f(i,j,v).
// Stops early when f returns false. Read-only; no allocations.
func (m *Dense[E]) Do(f func(i, j int, v E) bool) {
	var i, j, base int
	for i = 0; i < m.r; i++ {
		base = i * m.c
		for j = 0; j < m.c; j++ {
			if !f(i, j, m.data[base+j]) {
				return
			}
		}
	}
}

// Apply replaces each element with f(i,j,v) in place, row-major order.
// The receiver must be exclusively owned by the caller.
func (m *Dense[E]) Apply(f func(i, j int, v E) E) {
	var i, j, base int
	for i = 0; i < m.r; i++ {
		base = i * m.c
		for j = 0; j < m.c; j++ {
			m.data[base+j] = f(i, j, m.data[base+j])
		}
	}
}

// RoundInPlace rounds every entry to the given decimal places and returns m
// for chaining. Use Round for the copying variant.
func (m *Dense[E]) RoundInPlace(places int) *Dense[E] {
	for i := range m.data {
		m.data[i] = m.data[i].Round(places)
	}

	return m
}

// ScaleInPlace multiplies every entry by alpha and returns m for chaining.
// Use Scale for the copying variant.
func (m *Dense[E]) ScaleInPlace(alpha E) *Dense[E] {
	for i := range m.data {
		m.data[i] = m.data[i].Mul(alpha)
	}

	return m
}

// String renders rows as bracketed, comma-separated lines, right-aligned to
// the widest entry. Intended for logs and debugging, not hot paths.
func (m *Dense[E]) String() string {
	cells := make([]string, len(m.data))
	width := 0
	for i, v := range m.data {
		cells[i] = v.String()
		width = max(width, len(cells[i]))
	}

	var b strings.Builder
	var i, j int
	for i = 0; i < m.r; i++ {
		b.WriteString(_fmtRowOpen)
		for j = 0; j < m.c; j++ {
			s := cells[i*m.c+j]
			b.WriteString(strings.Repeat(" ", width-len(s)))
			b.WriteString(s)
			if j+1 < m.c {
				b.WriteString(_fmtSep)
			}
		}
		b.WriteString(_fmtRowClose)
	}

	return b.String()
}
