// SPDX-License-Identifier: MIT

package field

import (
	"math/big"
	"math/rand/v2"
)

// ratGrid is the resolution of RatField.Random: samples lie on k/ratGrid.
const ratGrid = 1 << 32

// Rat is an exact rational element. The zero value is 0.
// The wrapped *big.Rat is never mutated after construction.
type Rat struct {
	v *big.Rat
}

var (
	_ Element[Rat] = Rat{}
	_ Field[Rat]   = RatField{}
)

// NewRat builds num/den. den must be non-zero.
func NewRat(num, den int64) Rat {
	return Rat{v: big.NewRat(num, den)}
}

// RatFromBig copies x into a Rat.
func RatFromBig(x *big.Rat) Rat {
	return Rat{v: new(big.Rat).Set(x)}
}

// Big returns a copy of the underlying value.
func (a Rat) Big() *big.Rat {
	return new(big.Rat).Set(a.rat())
}

func (a Rat) rat() *big.Rat {
	if a.v == nil {
		return new(big.Rat)
	}
	return a.v
}

func (a Rat) Add(b Rat) Rat { return Rat{v: new(big.Rat).Add(a.rat(), b.rat())} }
func (a Rat) Sub(b Rat) Rat { return Rat{v: new(big.Rat).Sub(a.rat(), b.rat())} }
func (a Rat) Mul(b Rat) Rat { return Rat{v: new(big.Rat).Mul(a.rat(), b.rat())} }
func (a Rat) Div(b Rat) Rat { return Rat{v: new(big.Rat).Quo(a.rat(), b.rat())} }
func (a Rat) Neg() Rat      { return Rat{v: new(big.Rat).Neg(a.rat())} }
func (a Rat) Abs() Rat      { return Rat{v: new(big.Rat).Abs(a.rat())} }

// Round rounds half away from zero at the given decimal places.
func (a Rat) Round(places int) Rat {
	if places < 0 {
		places = 0
	}
	scale := new(big.Int).Exp(big.NewInt(10), big.NewInt(int64(places)), nil)
	x := new(big.Rat).Mul(a.rat(), new(big.Rat).SetInt(scale))

	// |num|*2 + den over 2*den, floored, gives round-half-up of |x|.
	num := new(big.Int).Abs(x.Num())
	den := x.Denom()
	q := new(big.Int).Lsh(num, 1)
	q.Add(q, den)
	q.Quo(q, new(big.Int).Lsh(den, 1))
	if x.Sign() < 0 {
		q.Neg(q)
	}

	return Rat{v: new(big.Rat).SetFrac(q, scale)}
}

// Pow computes a^exp by repeated squaring; a^0 == 1.
func (a Rat) Pow(exp int) Rat {
	base := a.rat()
	if exp < 0 {
		base = new(big.Rat).Inv(base)
		exp = -exp
	}
	res := big.NewRat(1, 1)
	b := new(big.Rat).Set(base)
	for exp > 0 {
		if exp&1 == 1 {
			res.Mul(res, b)
		}
		b.Mul(b, b)
		exp >>= 1
	}
	return Rat{v: res}
}

func (a Rat) IsZero() bool     { return a.rat().Sign() == 0 }
func (a Rat) Equal(b Rat) bool { return a.rat().Cmp(b.rat()) == 0 }
func (a Rat) Less(b Rat) bool  { return a.rat().Cmp(b.rat()) < 0 }
func (a Rat) String() string   { return a.rat().RatString() }

// Float64 returns the nearest float64.
func (a Rat) Float64() float64 {
	f, _ := a.rat().Float64()
	return f
}

// RatField is the descriptor for Rat.
type RatField struct{}

func (RatField) Zero() Rat           { return Rat{v: new(big.Rat)} }
func (RatField) One() Rat            { return Rat{v: big.NewRat(1, 1)} }
func (RatField) FromInt(v int64) Rat { return Rat{v: new(big.Rat).SetInt64(v)} }
func (RatField) Name() string        { return "rational" }

// FromFloat64 converts exactly; non-finite input maps to zero.
func (RatField) FromFloat64(v float64) Rat {
	r := new(big.Rat)
	if r.SetFloat64(v) == nil {
		return Rat{v: new(big.Rat)}
	}
	return Rat{v: r}
}

// Random returns min + (k/2^32)(max-min) with k uniform in [0, 2^32].
func (RatField) Random(r *rand.Rand, min, max Rat) Rat {
	if max.Less(min) {
		min, max = max, min
	}
	k := r.Uint64N(ratGrid + 1)
	t := new(big.Rat).SetFrac(new(big.Int).SetUint64(k), big.NewInt(ratGrid))
	span := new(big.Rat).Sub(max.rat(), min.rat())
	t.Mul(t, span)
	return Rat{v: t.Add(t, min.rat())}
}
