package core

import (
	"math/rand"
	"time"
)

// NewRandom returns a deterministic source for the given seed. Boards dealt
// and refilled from two sources with the same seed are identical.
func NewRandom(seed int64) *rand.Rand {
	return rand.New(rand.NewSource(seed))
}

// ResolveSeed returns seed, or a time-based seed when seed is 0.
func ResolveSeed(seed int64) int64 {
	if seed == 0 {
		return time.Now().UnixNano()
	}
	return seed
}
