// Package cipher: functional configuration for key generation and decryption.
// This file defines:
//   - Option / Options (functional options with internal state),
//   - documented defaults (constants),
//   - WithX constructors with strong validation (panic on nonsensical values),
//   - gatherOptions helper (internal).
package cipher

import (
	"math"
	"math/rand/v2"
)

// DEFAULTS - single source of truth for zero-value behavior.
const (
	// DefaultOmega is the SOR relaxation factor.
	DefaultOmega = 1.3

	// DefaultIterations is the number of SOR sweeps per column.
	DefaultIterations = 100

	// DefaultWorkers selects GOMAXPROCS for every parallel stage.
	DefaultWorkers = 0

	// DefaultStrictDominance false ⇒ a key that is not diagonally dominant is
	// only logged on the iterative path.
	DefaultStrictDominance = false

	// DefaultIntegerMode false ⇒ unit-diagonal keys.
	DefaultIntegerMode = false
)

const (
	panicOmegaInvalid      = "cipher: WithOmega: omega must be finite and in (0, 2)"
	panicIterationsInvalid = "cipher: WithIterations: iterations must be >= 0"
	panicRandNil           = "cipher: WithRand: nil generator"
)

// Option mutates internal options. Constructors panic only on nonsensical
// values (programmer error).
type Option func(*Options)

// Options stores the effective configuration after applying Option setters.
type Options struct {
	omega      float64
	iterations int
	workers    int
	strict     bool
	integer    bool
	rng        *rand.Rand // nil ⇒ entropy.System() at generation time
}

// WithOmega sets the SOR relaxation factor. Panics unless 0 < omega < 2.
func WithOmega(omega float64) Option {
	if math.IsNaN(omega) || omega <= 0 || omega >= 2 {
		panic(panicOmegaInvalid)
	}

	return func(o *Options) { o.omega = omega }
}

// WithIterations sets the fixed number of SOR sweeps. Zero returns the
// ciphertext columns unchanged.
func WithIterations(n int) Option {
	if n < 0 {
		panic(panicIterationsInvalid)
	}

	return func(o *Options) { o.iterations = n }
}

// WithWorkers bounds the goroutines used by multiply and the per-column solves.
// n <= 0 selects GOMAXPROCS.
func WithWorkers(n int) Option {
	return func(o *Options) { o.workers = n }
}

// WithStrictDominance makes DecryptIterative fail with
// matrix.ErrNotDiagonallyDominant instead of logging a warning.
func WithStrictDominance() Option {
	return func(o *Options) { o.strict = true }
}

// WithIntegerMode makes GenerateKey emit an integer-mode key (diagonal n,
// whole-number off-diagonal entries).
func WithIntegerMode() Option {
	return func(o *Options) { o.integer = true }
}

// WithRand sets the random source used by GenerateKey.
func WithRand(r *rand.Rand) Option {
	if r == nil {
		panic(panicRandNil)
	}

	return func(o *Options) { o.rng = r }
}

func defaultOptions() Options {
	return Options{
		omega:      DefaultOmega,
		iterations: DefaultIterations,
		workers:    DefaultWorkers,
		strict:     DefaultStrictDominance,
		integer:    DefaultIntegerMode,
	}
}

// gatherOptions applies opts over the defaults in order; later options win.
func gatherOptions(opts ...Option) Options {
	o := defaultOptions()
	for _, opt := range opts {
		if opt != nil {
			opt(&o)
		}
	}

	return o
}
