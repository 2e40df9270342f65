// Package codec lowers byte and sample streams into 4-bit values, reshapes
// them into cipher blocks, and serializes encrypted float32 values into
// carrier-native units (letters for text, 16-bit words for audio).
//
// Every split is high-order first: a byte 0xAB yields nibbles A, B and a
// float32 bit pattern 0x3F800000 yields letters "dpiaaaaa".
package codec

import (
	"fmt"
	"math"

	"github.com/katalvlaran/lucipher/field"
)

// SplitBytes returns two nibbles per byte, high nibble first.
func SplitBytes(b []byte) []uint8 {
	out := make([]uint8, 0, 2*len(b))
	for _, c := range b {
		out = append(out, c>>4, c&0x0f)
	}

	return out
}

// JoinBytes reverses SplitBytes. Only the low four bits of each nibble are used.
func JoinBytes(nibbles []uint8) ([]byte, error) {
	if len(nibbles)%2 != 0 {
		return nil, fmt.Errorf("%d nibbles for bytes: %w", len(nibbles), ErrNibbleCount)
	}
	out := make([]byte, len(nibbles)/2)
	for i := range out {
		out[i] = (nibbles[2*i]&0x0f)<<4 | nibbles[2*i+1]&0x0f
	}

	return out, nil
}

// SplitSamples returns four nibbles per 16-bit sample, high nibble first.
// Samples are taken as their two's-complement bit pattern.
func SplitSamples(s []int16) []uint8 {
	out := make([]uint8, 0, 4*len(s))
	for _, v := range s {
		u := uint16(v)
		out = append(out, uint8(u>>12), uint8(u>>8)&0x0f, uint8(u>>4)&0x0f, uint8(u)&0x0f)
	}

	return out
}

// JoinSamples reverses SplitSamples.
// Errors: ErrNibbleCount if len(nibbles) is not a multiple of four.
func JoinSamples(nibbles []uint8) ([]int16, error) {
	if len(nibbles)%4 != 0 {
		return nil, fmt.Errorf("%d nibbles for samples: %w", len(nibbles), ErrNibbleCount)
	}
	out := make([]int16, len(nibbles)/4)
	var u uint16
	for i := range out {
		p := nibbles[4*i : 4*i+4]
		u = uint16(p[0]&0x0f)<<12 | uint16(p[1]&0x0f)<<8 | uint16(p[2]&0x0f)<<4 | uint16(p[3]&0x0f)
		out[i] = int16(u)
	}

	return out, nil
}

// NibblesToValues lifts nibbles into field elements.
func NibblesToValues[E field.Element[E]](f field.Field[E], nibbles []uint8) []E {
	out := make([]E, len(nibbles))
	for i, n := range nibbles {
		out[i] = f.FromInt(int64(n))
	}

	return out
}

// NibblesFromValues rounds each value to the nearest integer and clamps it
// into [0, 15]. Decryption drift therefore shows up as a wrong nibble, never
// as an error. NaN maps to 0.
func NibblesFromValues[E field.Element[E]](values []E) []uint8 {
	out := make([]uint8, len(values))
	for i, v := range values {
		x := math.Round(v.Float64())
		switch {
		case math.IsNaN(x) || x < 0:
			out[i] = 0
		case x > 15:
			out[i] = 15
		default:
			out[i] = uint8(x)
		}
	}

	return out
}
