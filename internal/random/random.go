// Package random builds the PCG sources shared by the word bank, the
// puzzle sampler and the daily challenge.
package random

import (
	"math/rand/v2"
	"time"
)

// golden spreads a single seed across the second PCG word.
const golden = 0x9e3779b97f4a7c15

// New returns a deterministic PCG source for seed. Tests and daily mode use
// it to replay the same word order and reveal pattern.
func New(seed uint64) *rand.Rand {
	return FromPair(seed, seed^golden)
}

// FromPair seeds both PCG state words directly.
func FromPair(hi, lo uint64) *rand.Rand {
	// Non-cryptographic PRNG is intentional: reproducibility matters, secrecy does not.
	// #nosec G404
	return rand.New(rand.NewPCG(hi, lo))
}

// TimeSeeded returns a PCG source seeded from the wall clock.
func TimeSeeded() *rand.Rand {
	return New(uint64(time.Now().UnixNano()))
}
