// Package entropy derives independent random sources for realizations.
//
// A run has one base seed. Realization i draws from a PCG generator seeded
// with (base, i), so every realization owns its own state and the output of
// a run is a pure function of the base seed and the realization count.
package entropy

import (
	"fmt"
	"math/rand/v2"
)

// Seed identifies the state a realization's source starts from.
type Seed struct {
	Base   uint64
	Stream uint64
}

// ForOrdinal returns the seed of the realization with the given 1-based
// ordinal.
func ForOrdinal(base uint64, ordinal int) Seed {
	if ordinal < 0 {
		panic(fmt.Sprintf("entropy: negative ordinal %d", ordinal))
	}
	return Seed{Base: base, Stream: uint64(ordinal)}
}

// Source returns a fresh generator positioned at the start of the seed's
// stream. Callers own the result exclusively.
func (s Seed) Source() rand.Source {
	return rand.NewPCG(s.Base, s.Stream)
}

// String implements fmt.Stringer.
func (s Seed) String() string {
	return fmt.Sprintf("%d/%d", s.Base, s.Stream)
}

// RandomBase picks a base seed from the runtime's OS-seeded generator. It is
// used when neither the caller nor the scenario fixes one.
func RandomBase() uint64 {
	return rand.Uint64()
}
