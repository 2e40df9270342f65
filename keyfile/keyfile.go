// Package keyfile persists raw key matrices.
//
// Layout (big-endian):
//
//	offset 0: uint64 n
//	offset 8: n*n IEEE-754 float32 entries, row-major
//
// There is no magic number, version, or checksum.
package keyfile

import (
	"bufio"
	"encoding/binary"
	"errors"
	"fmt"
	"io"
	"os"

	logging "github.com/ipfs/go-log/v2"

	"github.com/katalvlaran/lucipher/field"
	"github.com/katalvlaran/lucipher/matrix"
)

var log = logging.Logger("keyfile")

// MaxDim bounds the dimension accepted by Read (a 4096×4096 key is 64 MiB).
const MaxDim = 4096

var (
	// ErrIO wraps an operating-system failure; the cause is kept in the chain.
	ErrIO = errors.New("keyfile: i/o failure")

	// ErrTruncated indicates a payload shorter than its header promises.
	ErrTruncated = errors.New("keyfile: truncated key")

	// ErrBadDimension indicates n == 0 or n > MaxDim.
	ErrBadDimension = errors.New("keyfile: bad key dimension")
)

func ioErrorf(err error) error { return fmt.Errorf("%w: %w", ErrIO, err) }

// Write encodes m to w in one write call: the 8-byte big-endian dimension,
// then the entries row-major as big-endian float32 bit patterns.
//
// Errors:
//   - matrix.ErrNilMatrix, matrix.ErrNonSquare for a bad key.
//   - ErrIO if w fails.
//
// Complexity:
//   - Time O(n²), Space O(n²) for the encoded buffer.
func Write(w io.Writer, m *matrix.Dense[field.Float32]) error {
	if err := matrix.ValidateNotNil(m); err != nil {
		return err
	}
	if err := matrix.ValidateSquare(m); err != nil {
		return err
	}

	n := m.Rows()
	buf := make([]byte, 8+4*n*n)
	binary.BigEndian.PutUint64(buf, uint64(n))
	for i, v := range m.Values() {
		binary.BigEndian.PutUint32(buf[8+4*i:], v.Bits())
	}
	if _, err := w.Write(buf); err != nil {
		return ioErrorf(err)
	}

	return nil
}

// Read decodes one key from r. The declared dimension is checked against
// MaxDim before the payload is allocated.
//
// Errors:
//   - ErrBadDimension if n == 0 or n > MaxDim.
//   - ErrTruncated if r ends early.
//   - ErrIO for any other read failure.
//
// Complexity:
//   - Time O(n²), Space O(n²).
func Read(r io.Reader) (*matrix.Dense[field.Float32], error) {
	var hdr [8]byte
	if _, err := io.ReadFull(r, hdr[:]); err != nil {
		return nil, readErr("header", err)
	}
	n64 := binary.BigEndian.Uint64(hdr[:])
	if n64 == 0 || n64 > MaxDim {
		return nil, fmt.Errorf("n=%d: %w", n64, ErrBadDimension)
	}

	n := int(n64)
	payload := make([]byte, 4*n*n)
	if _, err := io.ReadFull(r, payload); err != nil {
		return nil, readErr("entries", err)
	}
	m, err := matrix.NewDense(field.F32, n, n)
	if err != nil {
		return nil, err
	}
	m.Apply(func(i, j int, _ field.Float32) field.Float32 {
		off := 4 * (i*n + j)
		return field.Float32FromBits(binary.BigEndian.Uint32(payload[off:]))
	})

	return m, nil
}

func readErr(part string, err error) error {
	if errors.Is(err, io.EOF) || errors.Is(err, io.ErrUnexpectedEOF) {
		return fmt.Errorf("%s: %w", part, ErrTruncated)
	}

	return ioErrorf(err)
}

// Store writes m to path, replacing any existing file.
func Store(path string, m *matrix.Dense[field.Float32]) (err error) {
	f, err := os.Create(path)
	if err != nil {
		return ioErrorf(err)
	}
	defer func() {
		if cerr := f.Close(); cerr != nil && err == nil {
			err = ioErrorf(cerr)
		}
	}()

	if err = Write(f, m); err != nil {
		return err
	}
	log.Debugf("stored %dx%d key at %s", m.Rows(), m.Cols(), path)

	return nil
}

// Load reads a key from path.
// Errors: as Read, prefixed with path; ErrIO wrapping fs.ErrNotExist for a missing file.
func Load(path string) (*matrix.Dense[field.Float32], error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, ioErrorf(err)
	}
	defer f.Close()

	m, err := Read(bufio.NewReader(f))
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	log.Debugf("loaded %dx%d key from %s", m.Rows(), m.Cols(), path)

	return m, nil
}
