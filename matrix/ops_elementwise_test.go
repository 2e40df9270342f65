package matrix_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lucipher/field"
	"github.com/katalvlaran/lucipher/matrix"
)

func TestElementwiseKernels(t *testing.T) {
	t.Parallel()

	a := mustRows(t, [][]float64{{1, 2}, {3, 4}})
	b := mustRows(t, [][]float64{{5, 6}, {7, 8}})

	tests := []struct {
		name string
		fn   func(x, y *matrix.Dense[field.Float32]) (*matrix.Dense[field.Float32], error)
		want [][]float64
	}{
		{"Add", matrix.Add[field.Float32], [][]float64{{6, 8}, {10, 12}}},
		{"Sub", matrix.Sub[field.Float32], [][]float64{{-4, -4}, {-4, -4}}},
		{"Hadamard", matrix.Hadamard[field.Float32], [][]float64{{5, 12}, {21, 32}}},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			got, err := tc.fn(a, b)
			require.NoError(t, err)
			require.True(t, got.Equal(mustRows(t, tc.want)), "got\n%s", got)

			_, err = tc.fn(a, mustRows(t, [][]float64{{1, 2, 3}}))
			require.ErrorIs(t, err, matrix.ErrDimensionMismatch)
			_, err = tc.fn(a, nil)
			require.ErrorIs(t, err, matrix.ErrNilMatrix)
		})
	}
}

func TestScaleAndRoundCopy(t *testing.T) {
	t.Parallel()

	a := mustRows(t, [][]float64{{0.25, -1.56}, {3, 0.04}})
	s, err := matrix.Scale(a, 4)
	require.NoError(t, err)
	require.True(t, s.Equal(mustRows(t, [][]float64{{1, -6.24}, {12, 0.16}})))

	r, err := matrix.Round(a, 1)
	require.NoError(t, err)
	ok, err := matrix.AllClose(r, mustRows(t, [][]float64{{0.3, -1.6}, {3, 0}}), 0, 1e-6)
	require.NoError(t, err)
	require.True(t, ok, "got\n%s", r)

	// Source untouched.
	v, _ := a.At(0, 0)
	require.Equal(t, field.Float32(0.25), v)
}

func TestHadamardWithIdentityIsolatesDiagonal(t *testing.T) {
	t.Parallel()

	a := mustRows(t, [][]float64{{1, 2}, {3, 4}})
	id, err := matrix.Identity(field.F32, 2)
	require.NoError(t, err)
	d, err := matrix.Hadamard(a, id)
	require.NoError(t, err)
	require.True(t, d.Equal(mustRows(t, [][]float64{{1, 0}, {0, 4}})))
}

func TestAllCloseAndMaxAbsDiff(t *testing.T) {
	t.Parallel()

	a := mustRows(t, [][]float64{{1, 2}, {3, 4}})
	b := mustRows(t, [][]float64{{1, 2.001}, {3, 4}})

	d, err := matrix.MaxAbsDiff(a, b)
	require.NoError(t, err)
	require.InDelta(t, 0.001, d, 1e-6)

	ok, err := matrix.AllClose(a, b, 0, 1e-2)
	require.NoError(t, err)
	require.True(t, ok)
	ok, err = matrix.AllClose(a, b, 0, 1e-4)
	require.NoError(t, err)
	require.False(t, ok)

	nan := mustRows(t, [][]float64{{math.NaN(), 2}, {3, 4}})
	ok, err = matrix.AllClose(nan, nan, 1, 1)
	require.NoError(t, err)
	require.False(t, ok)

	_, err = matrix.MaxAbsDiff(a, mustRows(t, [][]float64{{1}}))
	require.ErrorIs(t, err, matrix.ErrDimensionMismatch)
}

func TestConstructors(t *testing.T) {
	t.Parallel()

	z, err := matrix.Zeros(field.Rational, 2, 3)
	require.NoError(t, err)
	require.Equal(t, 3, z.Cols())

	o, err := matrix.Ones(field.F32, 2, 2)
	require.NoError(t, err)
	require.True(t, o.Equal(mustRows(t, [][]float64{{1, 1}, {1, 1}})))

	id, err := matrix.Identity(field.Rational, 3)
	require.NoError(t, err)
	require.Equal(t, []string{"1", "1", "1"}, ratStrings(id.Diag()))

	_, err = matrix.Identity(field.F32, 0)
	require.ErrorIs(t, err, matrix.ErrInvalidDimensions)
}

func TestRandomRangeAndDeterminism(t *testing.T) {
	t.Parallel()

	a := mustRandom(t, 99, 8, 8, 0, 0.125)
	a.Do(func(_, _ int, v field.Float32) bool {
		require.GreaterOrEqual(t, v.Float64(), 0.0)
		require.LessOrEqual(t, v.Float64(), 0.125)
		return true
	})
	require.True(t, a.Equal(mustRandom(t, 99, 8, 8, 0, 0.125)))
	require.False(t, a.Equal(mustRandom(t, 100, 8, 8, 0, 0.125)))
}

func TestRandomBadRange(t *testing.T) {
	t.Parallel()

	rng := newRand(1)
	_, err := matrix.Random(field.F32, rng, 2, 2, 1, 0)
	require.ErrorIs(t, err, matrix.ErrBadRange)
}
