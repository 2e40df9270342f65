// SPDX-License-Identifier: MIT
// Package matrix: constructors with intention-revealing names.
//
// Every constructor returns a fresh matrix owned by the caller and surfaces
// ErrInvalidDimensions for non-positive shapes.

package matrix

import (
	"math/rand/v2"

	"github.com/katalvlaran/lucipher/field"
)

// Zeros returns an r×c matrix of f.Zero(). Alias of NewDense.
func Zeros[E field.Element[E]](f field.Field[E], rows, cols int) (*Dense[E], error) {
	return NewDense(f, rows, cols)
}

// Ones returns an r×c matrix of f.One().
func Ones[E field.Element[E]](f field.Field[E], rows, cols int) (*Dense[E], error) {
	m, err := NewDense(f, rows, cols)
	if err != nil {
		return nil, err
	}
	one := f.One()
	for i := range m.data {
		m.data[i] = one
	}

	return m, nil
}

// Identity returns I_n.
// Complexity: O(n²) zeroing + O(n) diagonal writes.
func Identity[E field.Element[E]](f field.Field[E], n int) (*Dense[E], error) {
	m, err := NewDense(f, n, n)
	if err != nil {
		return nil, err
	}
	one := f.One()
	for i := 0; i < n; i++ {
		m.data[i*n+i] = one
	}

	return m, nil
}

// Random returns an r×c matrix whose entries are drawn independently and
// uniformly from [min, max] using rng, in row-major order. The same rng state
// therefore always yields the same matrix.
//
// Errors: ErrInvalidDimensions, ErrBadRange (max < min).
func Random[E field.Element[E]](f field.Field[E], rng *rand.Rand, rows, cols int, min, max E) (*Dense[E], error) {
	if max.Less(min) {
		return nil, matrixErrorf(opRandom, ErrBadRange)
	}
	m, err := NewDense(f, rows, cols)
	if err != nil {
		return nil, matrixErrorf(opRandom, err)
	}
	for i := range m.data {
		m.data[i] = f.Random(rng, min, max)
	}

	return m, nil
}
