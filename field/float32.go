// SPDX-License-Identifier: MIT

package field

import (
	"math"
	"math/rand/v2"
	"strconv"

	"gonum.org/v1/gonum/stat/distuv"
)

// Float32 is a single-precision field element. Arithmetic happens in float32 so
// that the value the cipher computes is exactly the value whose bit pattern
// the codec stores.
type Float32 float32

// Compile-time conformance.
var (
	_ Element[Float32] = Float32(0)
	_ Field[Float32]   = Float32Field{}
)

func (a Float32) Add(b Float32) Float32 { return a + b }
func (a Float32) Sub(b Float32) Float32 { return a - b }
func (a Float32) Mul(b Float32) Float32 { return a * b }
func (a Float32) Div(b Float32) Float32 { return a / b }
func (a Float32) Neg() Float32          { return -a }

// Abs returns |a|.
func (a Float32) Abs() Float32 {
	if a < 0 {
		return -a
	}
	return a
}

// Round scales by 10^places, rounds half away from zero and scales back.
// The scaling runs in float64 to keep the intermediate exact for the small
// place counts the key generator uses.
func (a Float32) Round(places int) Float32 {
	if places <= 0 {
		return Float32(math.Round(float64(a)))
	}
	p := math.Pow10(places)
	return Float32(math.Round(float64(a)*p) / p)
}

// Pow raises a to exp.
func (a Float32) Pow(exp int) Float32 {
	return Float32(math.Pow(float64(a), float64(exp)))
}

func (a Float32) IsZero() bool         { return a == 0 }
func (a Float32) Equal(b Float32) bool { return a == b }
func (a Float32) Less(b Float32) bool  { return a < b }
func (a Float32) Float64() float64     { return float64(a) }
func (a Float32) String() string       { return strconv.FormatFloat(float64(a), 'g', -1, 32) }
func (a Float32) Bits() uint32         { return math.Float32bits(float32(a)) }
func Float32FromBits(b uint32) Float32 { return Float32(math.Float32frombits(b)) }

// Float32Field is the descriptor for Float32.
type Float32Field struct{}

func (Float32Field) Zero() Float32                 { return 0 }
func (Float32Field) One() Float32                  { return 1 }
func (Float32Field) FromInt(v int64) Float32       { return Float32(v) }
func (Float32Field) FromFloat64(v float64) Float32 { return Float32(v) }
func (Float32Field) Name() string                  { return "float32" }

// Random samples U[min,max) through distuv.Uniform, with r as its source.
// The sample is clamped to max because float32 narrowing can round up.
func (Float32Field) Random(r *rand.Rand, min, max Float32) Float32 {
	if max < min {
		min, max = max, min
	}
	if min == max {
		return min
	}
	u := distuv.Uniform{Min: float64(min), Max: float64(max), Src: uniformSource{r}}
	v := Float32(u.Rand())
	if v > max {
		v = max
	}
	return v
}

// uniformSource feeds a caller-owned *rand.Rand to gonum's samplers.
// Seeding is the owner's business, so Seed is a no-op.
type uniformSource struct{ r *rand.Rand }

func (s uniformSource) Uint64() uint64 { return s.r.Uint64() }
func (uniformSource) Seed(uint64)      {}
