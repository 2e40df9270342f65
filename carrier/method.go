package carrier

import (
	"fmt"
	"math"

	"github.com/katalvlaran/lucipher/cipher"
)

// Method selects the decryption algorithm.
type Method struct {
	// Iterative selects SOR instead of the direct triangular solve.
	Iterative bool
	// Iterations is the number of SOR sweeps.
	Iterations int
	// Omega is the relaxation factor; 0 selects cipher.DefaultOmega.
	Omega float64
}

// Direct decrypts by forward and back substitution.
var Direct = Method{}

// Iterative decrypts with the given number of SOR sweeps and factor omega.
func Iterative(iterations int, omega float64) Method {
	return Method{Iterative: true, Iterations: iterations, Omega: omega}
}

func (m Method) String() string {
	if m.Iterative {
		return "iterative"
	}

	return "direct"
}

// omega resolves the zero value to cipher.DefaultOmega.
func (m Method) omega() float64 {
	if m.Omega == 0 {
		return cipher.DefaultOmega
	}
	return m.Omega
}

// validate rejects parameters the cipher options would refuse.
// A direct Method ignores Iterations and Omega.
//
// Errors: ErrInvalidMethod.
func (m Method) validate() error {
	if !m.Iterative {
		return nil
	}
	if m.Iterations < 0 {
		return fmt.Errorf("iterations %d: %w", m.Iterations, ErrInvalidMethod)
	}
	if w := m.omega(); math.IsNaN(w) || w <= 0 || w >= 2 {
		return fmt.Errorf("omega %g: %w", w, ErrInvalidMethod)
	}

	return nil
}

// options maps a validated Method onto cipher options.
func (m Method) options() []cipher.Option {
	if !m.Iterative {
		return nil
	}

	return []cipher.Option{cipher.WithIterations(m.Iterations), cipher.WithOmega(m.omega())}
}
