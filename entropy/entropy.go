// Package entropy hands out explicit random sources. Nothing in this module
// reads a process-global generator: key generation and tests receive a
// *rand.Rand from here and pass it down.
package entropy

import (
	crand "crypto/rand"
	"encoding/binary"
	"math/rand/v2"
	"sync"

	"golang.org/x/crypto/sha3"
)

// domain separates this stream from any other SHAKE256 use of the same seed.
const domain = "lucipher/entropy/v1"

// System returns a generator seeded from the operating system CSPRNG.
// Two calls never produce the same stream.
func System() *rand.Rand {
	var seed [32]byte
	if _, err := crand.Read(seed[:]); err != nil {
		// crypto/rand.Read only fails when the kernel source is unavailable.
		panic("entropy: system random source unavailable: " + err.Error())
	}

	return rand.New(rand.NewChaCha8(seed))
}

// Shake is a rand.Source that streams 64-bit words out of a SHAKE256 XOF
// absorbed over a seed. The same seed always yields the same sequence.
// It is safe for concurrent use.
type Shake struct {
	mu  sync.Mutex
	xof sha3.ShakeHash
	buf [8]byte
}

// NewShake absorbs seed and returns the source positioned at the first word.
func NewShake(seed []byte) *Shake {
	h := sha3.NewShake256()
	_, _ = h.Write([]byte(domain))
	_, _ = h.Write(seed)

	return &Shake{xof: h}
}

// Uint64 implements rand.Source.
func (s *Shake) Uint64() uint64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	_, _ = s.xof.Read(s.buf[:])

	return binary.BigEndian.Uint64(s.buf[:])
}

// Seeded returns a reproducible generator over NewShake(seed).
func Seeded(seed []byte) *rand.Rand {
	return rand.New(NewShake(seed))
}
