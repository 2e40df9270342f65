package cipher

import (
	"fmt"

	"github.com/katalvlaran/lucipher/entropy"
	"github.com/katalvlaran/lucipher/field"
	"github.com/katalvlaran/lucipher/matrix"
)

// Kind classifies a key by its diagonal.
type Kind int

const (
	// KindUnit keys have an all-ones diagonal; det(L·U) == 1.
	KindUnit Kind = iota
	// KindInteger keys have diagonal n and whole-number off-diagonal entries.
	KindInteger
)

func (k Kind) String() string {
	switch k {
	case KindUnit:
		return "unit"
	case KindInteger:
		return "integer"
	default:
		return fmt.Sprintf("Kind(%d)", int(k))
	}
}

// Key is the raw key matrix K_raw. The factors L = tril(K_raw),
// U = triu(K_raw) and the encryption matrix K = L·U are derived on demand.
type Key[E field.Element[E]] struct {
	raw  *matrix.Dense[E]
	kind Kind
}

// NewKey wraps a raw key matrix after validating its shape and classifying
// its diagonal. raw is copied.
//
// Errors: ErrKeyNotSquare, ErrBadDiagonal, matrix.ErrNilMatrix.
func NewKey[E field.Element[E]](raw *matrix.Dense[E]) (*Key[E], error) {
	if err := matrix.ValidateNotNil(raw); err != nil {
		return nil, cipherErrorf(opNewKey, err)
	}
	if err := matrix.ValidateSquare(raw); err != nil {
		return nil, cipherErrorf(opNewKey, fmt.Errorf("%w: %w", ErrKeyNotSquare, err))
	}

	f := raw.Field()
	kind, err := classify(raw.Diag(), f.One(), f.FromInt(int64(raw.Rows())))
	if err != nil {
		return nil, cipherErrorf(opNewKey, err)
	}

	return &Key[E]{raw: raw.Clone(), kind: kind}, nil
}

func classify[E field.Element[E]](diag []E, one, n E) (Kind, error) {
	unit, integer := true, true
	for _, d := range diag {
		unit = unit && d.Equal(one)
		integer = integer && d.Equal(n)
	}
	switch {
	case unit:
		// n == 1 lands here too: both classifications coincide.
		return KindUnit, nil
	case integer:
		return KindInteger, nil
	default:
		return 0, ErrBadDiagonal
	}
}

// Dim returns the block size n.
func (k *Key[E]) Dim() int { return k.raw.Rows() }

// Kind reports the diagonal classification.
func (k *Key[E]) Kind() Kind { return k.kind }

// Raw returns a copy of K_raw.
func (k *Key[E]) Raw() *matrix.Dense[E] { return k.raw.Clone() }

// Lower returns L = tril(K_raw).
func (k *Key[E]) Lower() *matrix.Dense[E] {
	l, _ := matrix.Tril(k.raw)
	return l
}

// Upper returns U = triu(K_raw).
func (k *Key[E]) Upper() *matrix.Dense[E] {
	u, _ := matrix.Triu(k.raw)
	return u
}

// Product returns the encryption matrix K = L·U.
func (k *Key[E]) Product() *matrix.Dense[E] {
	p, _ := matrix.Mul(k.Lower(), k.Upper())
	return p
}

// GenerateKey samples a fresh n×n key over f.
//
// Implementation:
//   - Stage 1: sample K in [0, 1/n) from the configured source (WithRand,
//     else entropy.System()).
//   - Stage 2: force the unit diagonal with K − K⊙I + I.
//   - Stage 3: round every entry to ⌊log10 n⌋+1 decimal places.
//   - Stage 4 (WithIntegerMode): round((K − I)·10n, 0) + n·I.
//
// Errors: ErrInvalidDimension when n < 1.
func GenerateKey[E field.Element[E]](f field.Field[E], n int, opts ...Option) (*Key[E], error) {
	if n < 1 {
		return nil, cipherErrorf(opGenerateKey, fmt.Errorf("n=%d: %w", n, ErrInvalidDimension))
	}
	o := gatherOptions(opts...)
	rng := o.rng
	if rng == nil {
		rng = entropy.System()
	}

	hi := f.One().Div(f.FromInt(int64(n)))
	k, err := matrix.Random(f, rng, n, n, f.Zero(), hi)
	if err != nil {
		return nil, cipherErrorf(opGenerateKey, err)
	}
	id, err := matrix.Identity(f, n)
	if err != nil {
		return nil, cipherErrorf(opGenerateKey, err)
	}

	diag, _ := matrix.Hadamard(k, id)
	k, _ = matrix.Sub(k, diag)
	k, _ = matrix.Add(k, id)
	k.RoundInPlace(decimalPlaces(n))

	kind := KindUnit
	if o.integer {
		off, _ := matrix.Sub(k, id)
		off.ScaleInPlace(f.FromInt(int64(10 * n))).RoundInPlace(0)
		k, _ = matrix.Add(off, id.ScaleInPlace(f.FromInt(int64(n))))
		if n > 1 {
			kind = KindInteger
		}
	}
	log.Debugf("generated %s key over %s: n=%d", kind, f.Name(), n)

	return &Key[E]{raw: k, kind: kind}, nil
}

// decimalPlaces returns ⌊log10 n⌋ + 1 for n >= 1.
func decimalPlaces(n int) int {
	d := 1
	for n >= 10 {
		n /= 10
		d++
	}

	return d
}
