package testutil

import (
	"math/rand"
	"sync"
)

// RNG struct encapsulates the random number generator and seed.
// It is thread-safe.
type RNG struct {
	rand *rand.Rand
	mu   sync.Mutex
}

// NewRNG creates a new RNG instance with the specified seed.
func NewRNG(seed int64) *RNG {
	return &RNG{
		rand: rand.New(rand.NewSource(seed)),
	}
}

// Mask returns a random blade mask over the first dim basis vectors.
// dim must be in [0, 64].
func (r *RNG) Mask(dim int) uint64 {
	r.mu.Lock()
	defer r.mu.Unlock()
	m := r.rand.Uint64()
	if dim < 64 {
		m &= (1 << uint(dim)) - 1
	}
	return m
}

// IntCoefficient returns a non-zero integer-valued coefficient in
// [-limit, limit]. limit must be positive.
func (r *RNG) IntCoefficient(limit int) float32 {
	r.mu.Lock()
	defer r.mu.Unlock()
	v := r.rand.Intn(2*limit) - limit // [-limit, limit)
	if v >= 0 {
		v++ // skip zero
	}
	return float32(v)
}

// FillMasks fills dst with random masks over the first dim basis vectors.
func (r *RNG) FillMasks(dst []uint64, dim int) {
	for i := range dst {
		dst[i] = r.Mask(dim)
	}
}
