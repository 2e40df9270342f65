package cipher

import "errors"

var (
	// ErrInvalidDimension indicates a key dimension below 1.
	ErrInvalidDimension = errors.New("cipher: key dimension must be >= 1")

	// ErrKeyNotSquare indicates a raw key matrix that is not n×n.
	ErrKeyNotSquare = errors.New("cipher: key matrix is not square")

	// ErrBadDiagonal indicates a raw key whose diagonal is neither all ones
	// (unit key) nor all n (integer-mode key).
	ErrBadDiagonal = errors.New("cipher: key diagonal is neither unit nor integer-mode")

	// ErrNilKey indicates a nil *Key.
	ErrNilKey = errors.New("cipher: nil key")
)
