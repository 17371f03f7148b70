package core

import (
	"encoding/binary"
	"math/rand/v2"
)

// RNG is a thin convenience wrapper around math/rand/v2 for deterministic seeding.
// The stream is ChaCha8, so two RNGs built from the same seed produce identical
// sequences across platforms and Go releases.
type RNG struct {
	r *rand.Rand
}

// NewRNG creates a deterministic RNG using the provided seed.
func NewRNG(seed uint64) *RNG {
	var key [32]byte
	binary.LittleEndian.PutUint64(key[:8], seed)
	binary.LittleEndian.PutUint64(key[8:16], seed^0x9e3779b97f4a7c15)
	return &RNG{r: rand.New(rand.NewChaCha8(key))}
}

// IntN returns a random int in [0, n).
func (r *RNG) IntN(n int) int {
	if n <= 0 {
		return 0
	}
	return r.r.IntN(n)
}

// Bool returns a random boolean value.
func (r *RNG) Bool() bool {
	return r.r.IntN(2) == 1
}

// Source exposes the underlying rand.Rand for advanced use.
func (r *RNG) Source() *rand.Rand { return r.r }
