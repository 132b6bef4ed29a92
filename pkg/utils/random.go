package utils

import (
	"math/rand"
)

// NewRand returns a deterministic source for the given seed.
// Seed 0 is mapped to 1 so a zero-valued config still yields a usable stream.
func NewRand(seed int64) *rand.Rand {
	if seed == 0 {
		seed = 1
	}
	return rand.New(rand.NewSource(seed))
}

// RandRange returns a uniform int in [min, max]. Inverted bounds return min.
func RandRange(rng *rand.Rand, min, max int) int {
	if max <= min {
		return min
	}
	return min + rng.Intn(max-min+1)
}

// Percent reports whether a roll out of 100 lands under chance.
func Percent(rng *rand.Rand, chance int) bool {
	return rng.Intn(100) < chance
}

// DeriveSeed mixes a master seed with a pair of coordinates so every tile of
// a world gets its own reproducible stream.
func DeriveSeed(master int64, x, y int) int64 {
	h := uint64(master)
	h ^= uint64(int64(x)) * 0x9E3779B97F4A7C15
	h = (h ^ (h >> 31)) * 0xBF58476D1CE4E5B9
	h ^= uint64(int64(y)) * 0x94D049BB133111EB
	h ^= h >> 29
	return int64(h)
}
