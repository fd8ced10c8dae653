// Package rng provides the seedable randomness used by the combat simulator.
//
// Combat code never touches the global math/rand state: every coin flip and
// catalog pick goes through a Source handed in by the caller, so a fixed seed
// reproduces a whole battle.
package rng

import (
	"math/rand/v2"
	"time"
)

// Source is the randomness provider for combat decisions.
// *rand.Rand satisfies it.
type Source interface {
	// IntN returns a non-negative pseudo-random int in [0, n). Panics if n <= 0.
	IntN(n int) int
}

// New returns a deterministic Source seeded with seed.
func New(seed uint64) *rand.Rand {
	return rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))
}

// Seed returns seed unchanged, or a clock-derived seed when seed is 0.
// Callers log the returned value so a run can be replayed.
func Seed(seed uint64) uint64 {
	if seed != 0 {
		return seed
	}
	return uint64(time.Now().UnixNano())
}

// Derive returns the n-th child seed of seed (splitmix64 step).
// Used to hand independent, reproducible streams to concurrent battles.
func Derive(seed uint64, n int) uint64 {
	z := seed + uint64(n+1)*0x9e3779b97f4a7c15
	z = (z ^ (z >> 30)) * 0xbf58476d1ce4e5b9
	z = (z ^ (z >> 27)) * 0x94d049bb133111eb
	return z ^ (z >> 31)
}

// CoinFlip reports true with probability 1/2.
func CoinFlip(src Source) bool {
	return src.IntN(2) == 0
}

// Fixed is a Source that replays a fixed sequence of values (mod n),
// cycling when exhausted. Intended for tests that need forced outcomes.
type Fixed struct {
	Values []int
	pos    int
}

// IntN implements Source.
func (f *Fixed) IntN(n int) int {
	if n <= 0 {
		panic("rng: IntN called with n <= 0")
	}
	if len(f.Values) == 0 {
		return 0
	}
	v := f.Values[f.pos%len(f.Values)]
	f.pos++
	v %= n
	if v < 0 {
		v = -v
	}
	return v
}
