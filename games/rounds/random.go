/*
Copyright © 2026 Seednode <seednode@seedno.de>
*/

package rounds

import (
	"math/rand"
	"time"
)

//go:generate mockgen -package=mocks -destination=mocks/mock_rounds.go github.com/Seednode/sketchbox/games/rounds Canvas,Display,Scorer,Source

// Source yields pseudo-random numbers in [0, 1).
type Source interface {
	Float64() float64
}

// Random is the default Source.
type Random struct {
	random *rand.Rand
}

// RandomConfig for the default source
type RandomConfig struct {
	// Optional seed for reproducible runs
	Seed int64
}

// NewRandom seeds from the clock unless cfg carries a seed.
func NewRandom(cfg *RandomConfig) *Random {
	var seed int64
	if cfg != nil && cfg.Seed != 0 {
		seed = cfg.Seed
	} else {
		seed = time.Now().UnixNano()
	}

	return &Random{
		random: rand.New(rand.NewSource(seed)),
	}
}

func (r *Random) Float64() float64 {
	return r.random.Float64()
}

// pick maps a draw from src onto an index in [0, n).
func pick(src Source, n int) int {
	i := int(src.Float64() * float64(n))

	switch {
	case i < 0:
		return 0
	case i >= n:
		return n - 1
	}

	return i
}
