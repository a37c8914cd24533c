package core

import "math/rand"

// Rand is the randomness capability consumed by game engines.
// *rand.Rand satisfies it; tests substitute deterministic sources.
type Rand interface {
	Intn(n int) int
	Float64() float64
}

// NewRand returns a seeded Rand.
func NewRand(seed int64) Rand {
	return rand.New(rand.NewSource(seed))
}
