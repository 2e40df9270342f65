package cipher_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lucipher/cipher"
	"github.com/katalvlaran/lucipher/entropy"
	"github.com/katalvlaran/lucipher/field"
	"github.com/katalvlaran/lucipher/matrix"
)

// testBlocks is "test" as nibbles (7,4 6,5 7,3 7,4) in two 4-row blocks.
func testBlocks(t *testing.T) *matrix.Dense[field.Float32] {
	t.Helper()
	x, err := matrix.FromColumns(field.F32, [][]field.Float32{{7, 4, 6, 5}, {7, 3, 7, 4}})
	require.NoError(t, err)

	return x
}

// handKey is a unit key with every off-diagonal entry equal to 0.1.
func handKey(t *testing.T, n int) *cipher.Key[field.Float32] {
	t.Helper()
	rows := make([][]field.Float32, n)
	for i := range rows {
		rows[i] = make([]field.Float32, n)
		for j := range rows[i] {
			rows[i][j] = 0.1
		}
		rows[i][i] = 1
	}
	raw, err := matrix.FromRows(field.F32, rows)
	require.NoError(t, err)
	k, err := cipher.NewKey(raw)
	require.NoError(t, err)

	return k
}

func roundAll(t *testing.T, m *matrix.Dense[field.Float32]) *matrix.Dense[field.Float32] {
	t.Helper()
	r, err := matrix.Round(m, 0)
	require.NoError(t, err)

	return r
}

func TestGenerateKeyUnitDiagonal(t *testing.T) {
	t.Parallel()

	for _, n := range []int{1, 4, 12, 31} {
		k, err := cipher.GenerateKey(field.F32, n, cipher.WithRand(entropy.Seeded([]byte{byte(n)})))
		require.NoError(t, err)
		require.Equal(t, n, k.Dim())
		require.Equal(t, cipher.KindUnit, k.Kind())

		raw := k.Raw()
		bound := 1 / float64(n)
		raw.Do(func(i, j int, v field.Float32) bool {
			if i == j {
				require.Equal(t, field.Float32(1), v)
			} else {
				require.GreaterOrEqual(t, v.Float64(), 0.0)
				require.LessOrEqual(t, v.Float64(), bound+1e-6)
			}
			return true
		})
		require.Equal(t, k.Lower().Diag(), k.Upper().Diag())
	}
}

func TestGenerateKeyRoundsToLogPlaces(t *testing.T) {
	t.Parallel()

	k, err := cipher.GenerateKey(field.Rational, 12, cipher.WithRand(entropy.Seeded([]byte("places"))))
	require.NoError(t, err)
	hundred := field.Rational.FromInt(100)
	k.Raw().Do(func(_, _ int, v field.Rat) bool {
		scaled := v.Mul(hundred)
		require.True(t, scaled.Equal(scaled.Round(0)), "%s has more than 2 decimals", v)
		return true
	})
}

func TestGenerateKeyDeterminantIsOne(t *testing.T) {
	t.Parallel()

	exact, err := cipher.GenerateKey(field.Rational, 7, cipher.WithRand(entropy.Seeded([]byte("det"))))
	require.NoError(t, err)
	d, err := matrix.Det(exact.Product())
	require.NoError(t, err)
	require.Equal(t, "1", d.String())

	approx, err := cipher.GenerateKey(field.F32, 8, cipher.WithRand(entropy.Seeded([]byte("det"))))
	require.NoError(t, err)
	df, err := matrix.Det(approx.Product())
	require.NoError(t, err)
	require.InDelta(t, 1.0, df.Float64(), 1e-4)
}

func TestGenerateKeyInvalidDimension(t *testing.T) {
	t.Parallel()

	_, err := cipher.GenerateKey(field.F32, 0)
	require.ErrorIs(t, err, cipher.ErrInvalidDimension)
}

func TestGenerateKeyIntegerMode(t *testing.T) {
	t.Parallel()

	const n = 4
	k, err := cipher.GenerateKey(field.F32, n, cipher.WithIntegerMode(), cipher.WithRand(entropy.Seeded([]byte("int"))))
	require.NoError(t, err)
	require.Equal(t, cipher.KindInteger, k.Kind())
	k.Raw().Do(func(i, j int, v field.Float32) bool {
		require.Equal(t, v, v.Round(0), "entry (%d,%d) not whole", i, j)
		if i == j {
			require.Equal(t, field.Float32(n), v)
		} else {
			require.LessOrEqual(t, v.Float64(), 10.0)
		}
		return true
	})

	y, err := cipher.Encrypt(k, testBlocks(t))
	require.NoError(t, err)
	x, err := cipher.DecryptDirect(k, y)
	require.NoError(t, err)
	require.True(t, testBlocks(t).Equal(roundAll(t, x)), "got\n%s", x)
}

func TestNewKeyValidation(t *testing.T) {
	t.Parallel()

	wide, err := matrix.FromRows(field.F32, [][]field.Float32{{1, 0, 0}, {0, 1, 0}})
	require.NoError(t, err)
	_, err = cipher.NewKey(wide)
	require.ErrorIs(t, err, cipher.ErrKeyNotSquare)

	bad, err := matrix.FromRows(field.F32, [][]field.Float32{{1, 0}, {0, 3}})
	require.NoError(t, err)
	_, err = cipher.NewKey(bad)
	require.ErrorIs(t, err, cipher.ErrBadDiagonal)

	integer, err := matrix.FromRows(field.F32, [][]field.Float32{{2, 5}, {1, 2}})
	require.NoError(t, err)
	k, err := cipher.NewKey(integer)
	require.NoError(t, err)
	require.Equal(t, cipher.KindInteger, k.Kind())
	require.Equal(t, "integer", k.Kind().String())
}

func TestDirectRoundTrip(t *testing.T) {
	t.Parallel()

	k, err := cipher.GenerateKey(field.F32, 4, cipher.WithRand(entropy.Seeded([]byte("test"))))
	require.NoError(t, err)

	x := testBlocks(t)
	y, err := cipher.Encrypt(k, x)
	require.NoError(t, err)
	require.False(t, x.Equal(y))

	got, err := cipher.DecryptDirect(k, y, cipher.WithWorkers(2))
	require.NoError(t, err)
	d, err := matrix.MaxAbsDiff(x, got)
	require.NoError(t, err)
	require.Less(t, d, 1e-3)
	require.True(t, x.Equal(roundAll(t, got)))
}

func TestDirectRoundTripExact(t *testing.T) {
	t.Parallel()

	k, err := cipher.GenerateKey(field.Rational, 5, cipher.WithRand(entropy.Seeded([]byte("exact"))))
	require.NoError(t, err)
	cols := make([][]field.Rat, 3)
	for j := range cols {
		cols[j] = make([]field.Rat, 5)
		for i := range cols[j] {
			cols[j][i] = field.Rational.FromInt(int64((i*7 + j*3) % 16))
		}
	}
	x, err := matrix.FromColumns(field.Rational, cols)
	require.NoError(t, err)

	y, err := cipher.Encrypt(k, x)
	require.NoError(t, err)
	got, err := cipher.DecryptDirect(k, y)
	require.NoError(t, err)
	require.True(t, x.Equal(got), "exact arithmetic must invert exactly")
}

func TestDifferentKeysDiffer(t *testing.T) {
	t.Parallel()

	k1, err := cipher.GenerateKey(field.F32, 4, cipher.WithRand(entropy.Seeded([]byte("a"))))
	require.NoError(t, err)
	k2, err := cipher.GenerateKey(field.F32, 4, cipher.WithRand(entropy.Seeded([]byte("b"))))
	require.NoError(t, err)
	require.False(t, k1.Raw().Equal(k2.Raw()))

	y1, err := cipher.Encrypt(k1, testBlocks(t))
	require.NoError(t, err)
	y2, err := cipher.Encrypt(k2, testBlocks(t))
	require.NoError(t, err)
	require.False(t, y1.Equal(y2))
}

func TestEncryptDimensionMismatch(t *testing.T) {
	t.Parallel()

	k := handKey(t, 3)
	_, err := cipher.Encrypt(k, testBlocks(t))
	require.ErrorIs(t, err, matrix.ErrDimensionMismatch)
	_, err = cipher.DecryptDirect(k, testBlocks(t))
	require.ErrorIs(t, err, matrix.ErrDimensionMismatch)
	_, err = cipher.DecryptIterative(k, testBlocks(t))
	require.ErrorIs(t, err, matrix.ErrDimensionMismatch)
	_, err = cipher.Encrypt[field.Float32](nil, testBlocks(t))
	require.ErrorIs(t, err, cipher.ErrNilKey)
}

func TestIterativeRoundTrip(t *testing.T) {
	t.Parallel()

	k := handKey(t, 4)
	x := testBlocks(t)
	y, err := cipher.Encrypt(k, x)
	require.NoError(t, err)

	got, err := cipher.DecryptIterative(k, y, cipher.WithStrictDominance())
	require.NoError(t, err)
	require.True(t, x.Equal(roundAll(t, got)), "got\n%s", got)
}

func TestIterativeErrorShrinks(t *testing.T) {
	t.Parallel()

	k := handKey(t, 4)
	x := testBlocks(t)
	y, err := cipher.Encrypt(k, x)
	require.NoError(t, err)

	prev := math.Inf(1)
	for _, iters := range []int{1, 4, 12} {
		got, err := cipher.DecryptIterative(k, y, cipher.WithIterations(iters), cipher.WithOmega(cipher.DefaultOmega))
		require.NoError(t, err)
		d, err := matrix.MaxAbsDiff(x, got)
		require.NoError(t, err)
		require.LessOrEqualf(t, d, prev, "error grew at %d sweeps", iters)
		prev = d
	}
}

func TestIterativeZeroSweepsReturnsCiphertext(t *testing.T) {
	t.Parallel()

	k := handKey(t, 4)
	y, err := cipher.Encrypt(k, testBlocks(t))
	require.NoError(t, err)
	got, err := cipher.DecryptIterative(k, y, cipher.WithIterations(0))
	require.NoError(t, err)
	require.True(t, y.Equal(got))
}

func TestIterativeStrictDominance(t *testing.T) {
	t.Parallel()

	raw, err := matrix.FromRows(field.F32, [][]field.Float32{{1, 1.5}, {1.5, 1}})
	require.NoError(t, err)
	k, err := cipher.NewKey(raw)
	require.NoError(t, err)
	y, err := matrix.FromColumns(field.F32, [][]field.Float32{{1, 2}})
	require.NoError(t, err)

	_, err = cipher.DecryptIterative(k, y, cipher.WithStrictDominance())
	require.ErrorIs(t, err, matrix.ErrNotDiagonallyDominant)

	// Lenient mode only warns.
	_, err = cipher.DecryptIterative(k, y, cipher.WithIterations(3))
	require.NoError(t, err)
}

func TestOptionPanics(t *testing.T) {
	t.Parallel()

	require.Panics(t, func() { cipher.WithOmega(0) })
	require.Panics(t, func() { cipher.WithOmega(2) })
	require.Panics(t, func() { cipher.WithOmega(math.NaN()) })
	require.Panics(t, func() { cipher.WithIterations(-1) })
	require.Panics(t, func() { cipher.WithRand(nil) })
	require.NotPanics(t, func() { cipher.WithOmega(1.9) })
}
