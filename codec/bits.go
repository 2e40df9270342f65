package codec

import (
	"fmt"

	"github.com/katalvlaran/lucipher/field"
)

const (
	lettersPerValue = 8
	wordsPerValue   = 2
)

// Float32Bits reinterprets each value's IEEE-754 bit pattern.
func Float32Bits(values []field.Float32) []uint32 {
	out := make([]uint32, len(values))
	for i, v := range values {
		out[i] = v.Bits()
	}

	return out
}

// FromFloat32Bits is the inverse of Float32Bits; NaN payloads survive.
func FromFloat32Bits(bits []uint32) []field.Float32 {
	out := make([]field.Float32, len(bits))
	for i, b := range bits {
		out[i] = field.Float32FromBits(b)
	}

	return out
}

// BitsToLetters writes eight letters per word, 'a'+nibble, high nibble first.
func BitsToLetters(bits []uint32) []byte {
	out := make([]byte, 0, lettersPerValue*len(bits))
	var shift int
	for _, b := range bits {
		for shift = 28; shift >= 0; shift -= 4 {
			out = append(out, 'a'+byte(b>>shift&0x0f))
		}
	}

	return out
}

// LettersToBits reverses BitsToLetters.
//
// Errors:
//   - ErrLetterCount if len(letters) is not a multiple of eight.
//   - ErrBadLetter for any byte outside 'a'..'p', with its offset.
//
// Complexity:
//   - Time O(len(letters)).
func LettersToBits(letters []byte) ([]uint32, error) {
	if len(letters)%lettersPerValue != 0 {
		return nil, fmt.Errorf("%d letters: %w", len(letters), ErrLetterCount)
	}
	out := make([]uint32, len(letters)/lettersPerValue)
	for i := range out {
		var w uint32
		for k, c := range letters[i*lettersPerValue : (i+1)*lettersPerValue] {
			if c < 'a' || c > 'p' {
				return nil, fmt.Errorf("offset %d %q: %w", i*lettersPerValue+k, c, ErrBadLetter)
			}
			w = w<<4 | uint32(c-'a')
		}
		out[i] = w
	}

	return out, nil
}

// BitsToWords splits each 32-bit pattern into two 16-bit words, high word first.
func BitsToWords(bits []uint32) []int16 {
	out := make([]int16, 0, wordsPerValue*len(bits))
	for _, b := range bits {
		out = append(out, int16(uint16(b>>16)), int16(uint16(b)))
	}

	return out
}

// WordsToBits reverses BitsToWords.
// Errors: ErrWordCount.
func WordsToBits(words []int16) ([]uint32, error) {
	if len(words)%wordsPerValue != 0 {
		return nil, fmt.Errorf("%d words: %w", len(words), ErrWordCount)
	}
	out := make([]uint32, len(words)/wordsPerValue)
	for i := range out {
		out[i] = uint32(uint16(words[2*i]))<<16 | uint32(uint16(words[2*i+1]))
	}

	return out, nil
}
