// Package carrier adapts the cipher to text files and 16-bit PCM WAV files.
//
// Both carriers share one pipeline: split the stream into nibbles, reshape
// them into key-sized blocks, encrypt, then serialize every encrypted float32
// by its bit pattern. Text stores eight letters per value behind a decimal
// "<count> " prefix. Audio stores two 16-bit words per value behind a
// two-word count. The count is the number of plaintext nibbles, so padding
// is discarded on the way back.
package carrier

import (
	"fmt"

	logging "github.com/ipfs/go-log/v2"

	"github.com/katalvlaran/lucipher/cipher"
	"github.com/katalvlaran/lucipher/codec"
	"github.com/katalvlaran/lucipher/field"
	"github.com/katalvlaran/lucipher/matrix"
)

var log = logging.Logger("carrier")

// Key is the float32 key every carrier encrypts with.
type Key = cipher.Key[field.Float32]

// encryptNibbles runs nibbles through blocks and encryption and returns the
// bit patterns of the ciphertext, column by column.
//
// Complexity: O(n²·b) for b = ⌈len(nibbles)/n⌉ blocks.
func encryptNibbles(key *Key, nibbles []uint8) ([]uint32, error) {
	x, err := codec.ToBlocks(field.F32, codec.NibblesToValues(field.F32, nibbles), key.Dim())
	if err != nil {
		return nil, err
	}
	y, err := cipher.Encrypt(key, x)
	if err != nil {
		return nil, err
	}

	return codec.Float32Bits(codec.FromBlocks(y)), nil
}

// decryptBits reverses encryptNibbles and truncates to count nibbles.
//
// Errors:
//   - ErrInvalidMethod for an iterative method with bad parameters.
//   - matrix.ErrDimensionMismatch when len(bits) is not a positive multiple of key.Dim().
//   - codec.ErrHeaderLength when count exceeds the decrypted payload.
//
// Complexity: O(n²·b) for b blocks on either path; iterative adds a factor of the sweep count.
func decryptBits(key *Key, bits []uint32, count int, method Method) ([]uint8, error) {
	if err := method.validate(); err != nil {
		return nil, err
	}
	n := key.Dim()
	if len(bits) == 0 || len(bits)%n != 0 {
		return nil, fmt.Errorf("%d values for block size %d: %w", len(bits), n, matrix.ErrDimensionMismatch)
	}
	y, err := codec.ToBlocks(field.F32, codec.FromFloat32Bits(bits), n)
	if err != nil {
		return nil, err
	}

	var x *matrix.Dense[field.Float32]
	if method.Iterative {
		x, err = cipher.DecryptIterative(key, y, method.options()...)
	} else {
		x, err = cipher.DecryptDirect(key, y)
	}
	if err != nil {
		return nil, err
	}
	log.Debugf("%s decrypt: %d blocks, %d nibbles", method, y.Cols(), count)

	return codec.Truncate(codec.NibblesFromValues(codec.FromBlocks(x)), count)
}
