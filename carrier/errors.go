package carrier

import (
	"errors"
	"fmt"
)

var (
	// ErrUnsupportedBitDepth indicates audio that is not 16-bit PCM.
	ErrUnsupportedBitDepth = errors.New("carrier: audio must be 16-bit PCM")

	// ErrUnsupportedExtension indicates a file that is neither .txt nor .wav.
	ErrUnsupportedExtension = errors.New("carrier: unsupported file extension")

	// ErrInvalidWAV indicates a file that does not parse as a WAV container.
	ErrInvalidWAV = errors.New("carrier: invalid wav file")

	// ErrInvalidMethod indicates an iterative Method with a negative sweep
	// count or a relaxation factor outside (0, 2).
	ErrInvalidMethod = errors.New("carrier: invalid decryption method")

	// ErrIO wraps an operating-system failure; the cause is kept in the chain.
	ErrIO = errors.New("carrier: i/o failure")
)

func ioErrorf(err error) error { return fmt.Errorf("%w: %w", ErrIO, err) }
