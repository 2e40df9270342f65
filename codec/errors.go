package codec

import "errors"

var (
	// ErrNibbleCount indicates a nibble stream that does not fill whole units.
	ErrNibbleCount = errors.New("codec: nibble count is not a multiple of the unit width")

	// ErrEmptyInput indicates an empty stream where at least one element is required.
	ErrEmptyInput = errors.New("codec: empty input")

	// ErrBlockSize indicates a block size below 1.
	ErrBlockSize = errors.New("codec: block size must be >= 1")

	// ErrLetterCount indicates a letter stream whose length is not a multiple of 8.
	ErrLetterCount = errors.New("codec: letter count is not a multiple of 8")

	// ErrBadLetter indicates a byte outside 'a'..'p' in a letter stream.
	ErrBadLetter = errors.New("codec: letter outside a..p")

	// ErrWordCount indicates an odd number of 16-bit words.
	ErrWordCount = errors.New("codec: word count is not even")

	// ErrMissingHeader indicates a stream without a parseable length header.
	ErrMissingHeader = errors.New("codec: missing or malformed length header")

	// ErrHeaderLength indicates a header count larger than the decoded payload.
	ErrHeaderLength = errors.New("codec: header count exceeds payload")
)
