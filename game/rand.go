package game

import (
	"time"

	"golang.org/x/exp/rand"
)

// Rand is the randomness the model draws from
// Injected so tests can run against a fixed sequence
type Rand interface {
	Intn(n int) int
}

// NewRand returns a PCG-backed source; seed 0 seeds from the clock
func NewRand(seed uint64) *rand.Rand {
	if seed == 0 {
		seed = uint64(time.Now().UnixNano())
	}
	return rand.New(rand.NewSource(seed))
}
