// Package cipher implements a matrix block cipher.
//
// A key is a square matrix K_raw whose triangular halves L = tril(K_raw) and
// U = triu(K_raw) define the encryption matrix K = L·U. Encryption multiplies
// a block matrix X (n rows, one column per block) by K. Decryption inverts it
// either exactly, by forward and back substitution through the very same L
// and U, or approximately, by successive over-relaxation on K.
//
// For unit keys det(L) = det(U) = 1, so K is unimodular and the direct path
// recovers X up to floating-point rounding. The iterative path performs a
// fixed number of sweeps with no convergence test; any residual error
// surfaces as drift in the recovered values, never as an error.
//
// Columns are independent and are solved in parallel. Nothing here is
// cryptographically secure.
package cipher

import (
	"fmt"
	"time"

	logging "github.com/ipfs/go-log/v2"

	"github.com/katalvlaran/lucipher/field"
	"github.com/katalvlaran/lucipher/internal/workpool"
	"github.com/katalvlaran/lucipher/matrix"
)

var log = logging.Logger("cipher")

const (
	opNewKey      = "NewKey"
	opGenerateKey = "GenerateKey"
	opEncrypt     = "Encrypt"
	opDirect      = "DecryptDirect"
	opIterative   = "DecryptIterative"
)

func cipherErrorf(tag string, err error) error {
	return fmt.Errorf("cipher: %s: %w", tag, err)
}

// checkBlocks validates the key and the block matrix row count.
func checkBlocks[E field.Element[E]](op string, key *Key[E], blocks *matrix.Dense[E]) error {
	if key == nil {
		return cipherErrorf(op, ErrNilKey)
	}
	if err := matrix.ValidateNotNil(blocks); err != nil {
		return cipherErrorf(op, err)
	}
	if key.Dim() != blocks.Rows() {
		return cipherErrorf(op, fmt.Errorf("key %d, blocks %d rows: %w", key.Dim(), blocks.Rows(), matrix.ErrDimensionMismatch))
	}

	return nil
}

// Encrypt returns (L·U)·X.
//
// Errors: ErrNilKey, matrix.ErrDimensionMismatch when X.Rows() != key.Dim().
func Encrypt[E field.Element[E]](key *Key[E], x *matrix.Dense[E], opts ...Option) (*matrix.Dense[E], error) {
	if err := checkBlocks(opEncrypt, key, x); err != nil {
		return nil, err
	}
	o := gatherOptions(opts...)

	start := time.Now()
	k, err := matrix.MulWorkers(key.Lower(), key.Upper(), o.workers)
	if err != nil {
		return nil, cipherErrorf(opEncrypt, err)
	}
	y, err := matrix.MulWorkers(k, x, o.workers)
	if err != nil {
		return nil, cipherErrorf(opEncrypt, err)
	}
	log.Debugf("encrypted %d blocks of %d in %s", x.Cols(), key.Dim(), time.Since(start))

	return y, nil
}

// DecryptDirect solves L·U·x = y for every column y of Y by forward then back
// substitution. The result keeps Y's column order.
//
// Errors: ErrNilKey, matrix.ErrDimensionMismatch, matrix.ErrSingular.
func DecryptDirect[E field.Element[E]](key *Key[E], y *matrix.Dense[E], opts ...Option) (*matrix.Dense[E], error) {
	if err := checkBlocks(opDirect, key, y); err != nil {
		return nil, err
	}
	o := gatherOptions(opts...)
	L, U := key.Lower(), key.Upper()

	start := time.Now()
	out, err := eachColumn(y, o.workers, func(col []E) ([]E, error) {
		return matrix.SolveLU(L, U, col)
	})
	if err != nil {
		return nil, cipherErrorf(opDirect, err)
	}
	log.Debugf("direct decrypt of %d blocks in %s", y.Cols(), time.Since(start))

	return out, nil
}

// DecryptIterative approximates K⁻¹·Y column by column with SOR on K = L·U,
// starting each column from itself. See WithOmega and WithIterations.
//
// A key whose product is not strictly diagonally dominant is logged at warn
// level, or rejected with matrix.ErrNotDiagonallyDominant under
// WithStrictDominance.
func DecryptIterative[E field.Element[E]](key *Key[E], y *matrix.Dense[E], opts ...Option) (*matrix.Dense[E], error) {
	if err := checkBlocks(opIterative, key, y); err != nil {
		return nil, err
	}
	o := gatherOptions(opts...)

	k, err := matrix.MulWorkers(key.Lower(), key.Upper(), o.workers)
	if err != nil {
		return nil, cipherErrorf(opIterative, err)
	}
	if err = matrix.ValidateDiagonallyDominant(k); err != nil {
		if o.strict {
			return nil, cipherErrorf(opIterative, err)
		}
		log.Warnf("iterative decrypt may not converge: %s", err)
	}

	omega := y.Field().FromFloat64(o.omega)
	start := time.Now()
	out, err := eachColumn(y, o.workers, func(col []E) ([]E, error) {
		return matrix.SolveSOR(k, col, omega, o.iterations)
	})
	if err != nil {
		return nil, cipherErrorf(opIterative, err)
	}
	log.Debugf("iterative decrypt of %d blocks (%d sweeps, ω=%g) in %s",
		y.Cols(), o.iterations, o.omega, time.Since(start))

	return out, nil
}

// eachColumn maps solve over the columns of m in parallel and gathers the
// results into a new matrix with the same shape and column order.
func eachColumn[E field.Element[E]](m *matrix.Dense[E], workers int, solve func([]E) ([]E, error)) (*matrix.Dense[E], error) {
	out, err := matrix.NewDense(m.Field(), m.Rows(), m.Cols())
	if err != nil {
		return nil, err
	}
	err = workpool.ForEach(m.Cols(), workers, func(j int) error {
		col, err := m.Col(j)
		if err != nil {
			return err
		}
		x, err := solve(col)
		if err != nil {
			return fmt.Errorf("column %d: %w", j, err)
		}
		return out.SetCol(j, x)
	})
	if err != nil {
		return nil, err
	}

	return out, nil
}
