package dataset

import (
	"math/rand"
	"sync"
)

// RNG encapsulates a seeded random number generator.
// It is thread-safe.
type RNG struct {
	rand *rand.Rand
	seed int64
	mu   sync.Mutex
}

// NewRNG creates a new RNG instance with the specified seed.
func NewRNG(seed int64) *RNG {
	return &RNG{
		rand: rand.New(rand.NewSource(seed)),
		seed: seed,
	}
}

// Reset resets the RNG to its initial seed.
func (r *RNG) Reset() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.rand.Seed(r.seed)
}

// Seed returns the initial seed.
func (r *RNG) Seed() int64 {
	return r.seed
}

// Intn returns a non-negative pseudo-random number in [0,n).
func (r *RNG) Intn(n int) int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.rand.Intn(n)
}

// Float64 returns a pseudo-random number in [0.0,1.0).
func (r *RNG) Float64() float64 {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.rand.Float64()
}

// fill calls f once per element of dst with a uniform sample in [0, 1),
// holding the lock for the whole call.
func (r *RNG) fill(n int, f func(i int, u float64)) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for i := range n {
		f(i, r.rand.Float64())
	}
}

// gaussian is like fill but samples the standard normal distribution.
func (r *RNG) gaussian(n int, f func(i int, g float64)) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for i := range n {
		f(i, r.rand.NormFloat64())
	}
}
