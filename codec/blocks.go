package codec

import (
	"fmt"

	"github.com/katalvlaran/lucipher/field"
	"github.com/katalvlaran/lucipher/matrix"
)

// Pad right-pads values with repeats of the last element up to the next
// multiple of n. A length that is already a multiple is returned unchanged
// (as a copy).
//
// Errors:
//   - ErrBlockSize if n < 1.
//   - ErrEmptyInput if values is empty.
//
// Complexity:
//   - Time O(len(values)+n), Space O(len(values)+n).
func Pad[E any](values []E, n int) ([]E, error) {
	if n < 1 {
		return nil, fmt.Errorf("n=%d: %w", n, ErrBlockSize)
	}
	if len(values) == 0 {
		return nil, ErrEmptyInput
	}
	size := (len(values) + n - 1) / n * n
	out := make([]E, size)
	copy(out, values)
	last := values[len(values)-1]
	for i := len(values); i < size; i++ {
		out[i] = last
	}

	return out, nil
}

// ToBlocks pads values (see Pad) and reshapes them column-major into a
// matrix with n rows: element k lands in row k%n of column k/n.
//
// Errors:
//   - ErrBlockSize, ErrEmptyInput (from Pad).
//
// Complexity:
//   - Time O(len(values)+n), Space O(len(values)+n).
func ToBlocks[E field.Element[E]](f field.Field[E], values []E, n int) (*matrix.Dense[E], error) {
	padded, err := Pad(values, n)
	if err != nil {
		return nil, err
	}
	cols := make([][]E, len(padded)/n)
	for j := range cols {
		cols[j] = padded[j*n : (j+1)*n]
	}

	return matrix.FromColumns(f, cols)
}

// FromBlocks flattens m column by column, the inverse of ToBlocks up to padding.
// Time O(rows·cols).
func FromBlocks[E field.Element[E]](m *matrix.Dense[E]) []E {
	out := make([]E, 0, m.Rows()*m.Cols())
	for j := 0; j < m.Cols(); j++ {
		col, _ := m.Col(j)
		out = append(out, col...)
	}

	return out
}

// Truncate returns the first count values.
// Errors: ErrHeaderLength when count is negative or exceeds len(values).
func Truncate[T any](values []T, count int) ([]T, error) {
	if count < 0 || count > len(values) {
		return nil, fmt.Errorf("count %d, payload %d: %w", count, len(values), ErrHeaderLength)
	}

	return values[:count], nil
}
