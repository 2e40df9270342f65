package codec

import (
	"bytes"
	"fmt"
	"math"
	"strconv"
)

const textSeparator = ' '

// PutTextHeader returns "<count> " followed by body.
func PutTextHeader(count int, body []byte) []byte {
	out := strconv.AppendInt(make([]byte, 0, len(body)+12), int64(count), 10)
	out = append(out, textSeparator)

	return append(out, body...)
}

// ParseTextHeader splits "<count> <body>" and returns both parts.
// The body aliases b.
//
// Errors:
//   - ErrMissingHeader if the prefix is absent or is not a non-negative decimal
//     followed by the separator.
//
// Complexity:
//   - Time O(len(prefix)), no copy of the body.
func ParseTextHeader(b []byte) (int, []byte, error) {
	i := bytes.IndexByte(b, textSeparator)
	if i <= 0 {
		return 0, nil, ErrMissingHeader
	}
	count, err := strconv.Atoi(string(b[:i]))
	if err != nil || count < 0 {
		return 0, nil, fmt.Errorf("%q: %w", b[:i], ErrMissingHeader)
	}

	return count, b[i+1:], nil
}

// PutAudioHeader prepends count as two words: bits 31..16, then bits 15..0.
// Counts beyond MaxUint32 cannot be represented and are a caller bug.
func PutAudioHeader(count int, words []int16) []int16 {
	if count < 0 || uint64(count) > math.MaxUint32 {
		panic(fmt.Sprintf("codec: audio header count %d out of range", count))
	}
	out := make([]int16, 0, len(words)+2)
	out = append(out, int16(uint16(uint32(count)>>16)), int16(uint16(count)))

	return append(out, words...)
}

// ParseAudioHeader reads the two-word count and returns the remaining words,
// which alias the input. The count is not checked against the payload here;
// Truncate does that after decryption.
//
// Errors:
//   - ErrMissingHeader if fewer than two words are present.
//
// Complexity:
//   - Time O(1).
func ParseAudioHeader(words []int16) (int, []int16, error) {
	if len(words) < 2 {
		return 0, nil, fmt.Errorf("%d words: %w", len(words), ErrMissingHeader)
	}
	count := uint32(uint16(words[0]))<<16 | uint32(uint16(words[1]))

	return int(count), words[2:], nil
}
