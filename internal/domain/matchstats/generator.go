package matchstats

import (
	"context"
	"time"
)

// Generator produces independent match records.
type Generator interface {
	Generate(ctx context.Context) MatchStatistics
}

// RandomGenerator builds a fresh Rand for every record. It holds no mutable
// state and is safe for concurrent use.
type RandomGenerator struct {
	newRand func() Rand
	newID   IDFunc
	clock   func() time.Time
}

// NewRandomGenerator requires newRand and newID. A nil clock uses time.Now.
func NewRandomGenerator(newRand func() Rand, newID IDFunc, clock func() time.Time) *RandomGenerator {
	if clock == nil {
		clock = time.Now
	}
	return &RandomGenerator{
		newRand: newRand,
		newID:   newID,
		clock:   clock,
	}
}

func (g *RandomGenerator) Generate(_ context.Context) MatchStatistics {
	return NewSynthesizer(g.newRand(), g.clock(), g.newID).Match()
}
