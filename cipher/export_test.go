package cipher

// Test bridge: exposes unexported helpers and the resolved options to
// cipher_test without widening the production API.

// DecimalPlaces exposes decimalPlaces.
var DecimalPlaces = decimalPlaces

// OptionsSnapshot is a read-only view of the resolved Options.
type OptionsSnapshot struct {
	Omega      float64
	Iterations int
	Workers    int
	Strict     bool
	Integer    bool
	HasRand    bool
}

// GatherOptionsSnapshot resolves opts over the defaults.
func GatherOptionsSnapshot(opts ...Option) OptionsSnapshot {
	o := gatherOptions(opts...)

	return OptionsSnapshot{
		Omega:      o.omega,
		Iterations: o.iterations,
		Workers:    o.workers,
		Strict:     o.strict,
		Integer:    o.integer,
		HasRand:    o.rng != nil,
	}
}
