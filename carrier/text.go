package carrier

import (
	"bytes"

	"github.com/katalvlaran/lucipher/codec"
)

// EncryptText encrypts raw bytes into "<nibble count> <letters>".
// Empty input encrypts to "0 ".
//
// The output holds 8 letters per padded nibble, so it is roughly 16 times
// the input size. Time O(n·len(plain)) for an n×n key.
func EncryptText(key *Key, plain []byte) ([]byte, error) {
	nibbles := codec.SplitBytes(plain)
	if len(nibbles) == 0 {
		return codec.PutTextHeader(0, nil), nil
	}
	bits, err := encryptNibbles(key, nibbles)
	if err != nil {
		return nil, err
	}

	return codec.PutTextHeader(len(nibbles), codec.BitsToLetters(bits)), nil
}

// DecryptText reverses EncryptText. Trailing line breaks after the letters
// are ignored.
//
// Errors:
//   - codec.ErrMissingHeader, codec.ErrLetterCount, codec.ErrBadLetter for a
//     malformed frame.
//   - ErrInvalidMethod for bad iterative parameters.
//   - matrix.ErrDimensionMismatch if the frame was made with a key of another size.
//   - codec.ErrHeaderLength if the count exceeds the payload.
func DecryptText(key *Key, framed []byte, method Method) ([]byte, error) {
	count, body, err := codec.ParseTextHeader(framed)
	if err != nil {
		return nil, err
	}
	if count == 0 {
		return []byte{}, nil
	}
	bits, err := codec.LettersToBits(bytes.TrimRight(body, "\r\n"))
	if err != nil {
		return nil, err
	}
	nibbles, err := decryptBits(key, bits, count, method)
	if err != nil {
		return nil, err
	}

	return codec.JoinBytes(nibbles)
}
