// SPDX-License-Identifier: MIT
// Package matrix_test contains test helpers.
//
// Purpose:
//   - Provide small, deterministic fixtures for the kernels and solvers.
//   - Keep all data finite and well-formed so tolerances stay tight.

package matrix_test

import (
	"math/rand/v2"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lucipher/field"
	"github.com/katalvlaran/lucipher/matrix"
)

// f32 converts a float64 table into Float32 rows.
func f32(rows [][]float64) [][]field.Float32 {
	out := make([][]field.Float32, len(rows))
	for i, r := range rows {
		out[i] = make([]field.Float32, len(r))
		for j, v := range r {
			out[i][j] = field.Float32(v)
		}
	}

	return out
}

// mustRows builds a Float32 matrix from rows or fails the test.
func mustRows(tb testing.TB, rows [][]float64) *matrix.Dense[field.Float32] {
	tb.Helper()
	m, err := matrix.FromRows(field.F32, f32(rows))
	require.NoError(tb, err)

	return m
}

// mustRatRows builds an exact rational matrix from integer fractions num/den.
func mustRatRows(tb testing.TB, rows [][]int64, den int64) *matrix.Dense[field.Rat] {
	tb.Helper()
	tbl := make([][]field.Rat, len(rows))
	for i, r := range rows {
		tbl[i] = make([]field.Rat, len(r))
		for j, v := range r {
			tbl[i][j] = field.NewRat(v, den)
		}
	}
	m, err := matrix.FromRows(field.Rational, tbl)
	require.NoError(tb, err)

	return m
}

// mustRandom returns an r×c Float32 matrix in [lo, hi] seeded deterministically.
func mustRandom(tb testing.TB, seed uint64, r, c int, lo, hi float32) *matrix.Dense[field.Float32] {
	tb.Helper()
	rng := rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))
	m, err := matrix.Random(field.F32, rng, r, c, field.Float32(lo), field.Float32(hi))
	require.NoError(tb, err)

	return m
}

// dominant returns an n×n matrix with unit diagonal and off-diagonal 0.1,
// strictly diagonally dominant for n < 11.
func dominant(tb testing.TB, n int) *matrix.Dense[field.Float32] {
	tb.Helper()
	rows := make([][]float64, n)
	for i := range rows {
		rows[i] = make([]float64, n)
		for j := range rows[i] {
			if i == j {
				rows[i][j] = 1
			} else {
				rows[i][j] = 0.1
			}
		}
	}

	return mustRows(tb, rows)
}

// mulVec computes A·x in float64 for residual checks.
func mulVec(tb testing.TB, a *matrix.Dense[field.Float32], x []field.Float32) []float64 {
	tb.Helper()
	out := make([]float64, a.Rows())
	a.Do(func(i, j int, v field.Float32) bool {
		out[i] += v.Float64() * x[j].Float64()
		return true
	})

	return out
}

func newRand(seed uint64) *rand.Rand { return rand.New(rand.NewPCG(seed, seed)) }
