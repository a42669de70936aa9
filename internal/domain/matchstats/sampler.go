package matchstats

import (
	"io"
	"math"
)

// Rand is the randomness a Synthesizer consumes. *random.Source satisfies it.
type Rand interface {
	IntN(n int) int
	Float64() float64
	io.Reader
}

// IntRange is a closed-open integer range [Lo, Hi).
type IntRange struct {
	Lo int
	Hi int
}

func (r IntRange) Contains(v int) bool {
	return v >= r.Lo && v < r.Hi
}

// FloatRange is a closed-open range [Lo, Hi).
type FloatRange struct {
	Lo float64
	Hi float64
}

func (r FloatRange) Contains(v float64) bool {
	return v >= r.Lo && v < r.Hi
}

// Sampling ranges for match level fields.
var (
	ScoreRange           = IntRange{Lo: 0, Hi: 6}
	MatchAgeDaysRange    = IntRange{Lo: 0, Hi: 30}
	AttendanceRange      = IntRange{Lo: 15000, Hi: 75000}
	TemperatureRange     = IntRange{Lo: 5, Hi: 30}
	AddedFirstHalfRange  = IntRange{Lo: 1, Hi: 6}
	AddedSecondHalfRange = IntRange{Lo: 3, Hi: 8}
	BallInPlayRange      = FloatRange{Lo: 55.0, Hi: 70.0}
)

// Sampling ranges for team level fields.
var (
	PossessionRange          = FloatRange{Lo: 45.0, Hi: 65.0}
	ShotsOnTargetFactorRange = FloatRange{Lo: 1.5, Hi: 3.0}
	ExtraShotsRange          = IntRange{Lo: 3, Hi: 12}
	BlockedShotsRange        = IntRange{Lo: 0, Hi: 3}
	CornersRange             = IntRange{Lo: 2, Hi: 12}
	OffsidesRange            = IntRange{Lo: 0, Hi: 8}
	FoulsRange               = IntRange{Lo: 8, Hi: 20}
	YellowCardsRange         = IntRange{Lo: 0, Hi: 5}
	RedCardsRange            = IntRange{Lo: 0, Hi: 2}
	PassesAttemptedRange     = IntRange{Lo: 400, Hi: 700}
	PassAccuracyRange        = FloatRange{Lo: 75.0, Hi: 95.0}
	CrossesRange             = IntRange{Lo: 5, Hi: 25}
	TacklesRange             = IntRange{Lo: 10, Hi: 25}
	InterceptionsRange       = IntRange{Lo: 5, Hi: 15}
	ClearancesRange          = IntRange{Lo: 10, Hi: 30}
	SavesRange               = IntRange{Lo: 2, Hi: 8}
	ExpectedGoalsFactorRange = FloatRange{Lo: 0.8, Hi: 1.5}
	ExpectedAssistsRange     = FloatRange{Lo: 0.0, Hi: 3.0}
	DistanceKmRange          = FloatRange{Lo: 105.0, Hi: 120.0}
	SprintsRange             = IntRange{Lo: 150, Hi: 255}
	DuelsWonRange            = IntRange{Lo: 25, Hi: 60}
	DuelsTotalRange          = IntRange{Lo: 50, Hi: 100}
	AerialDuelsWonRange      = IntRange{Lo: 10, Hi: 25}
	AerialDuelsTotalRange    = IntRange{Lo: 20, Hi: 40}
)

const (
	homePassAdvantage = 1.1
	maxExpectedGoals  = 5.0
)

// Sampler draws uniformly from declared ranges.
type Sampler struct {
	rng Rand
}

func NewSampler(rng Rand) Sampler {
	return Sampler{rng: rng}
}

// Int draws from [r.Lo, r.Hi). An empty range yields r.Lo.
func (s Sampler) Int(r IntRange) int {
	if r.Hi <= r.Lo {
		return r.Lo
	}
	return r.Lo + s.rng.IntN(r.Hi-r.Lo)
}

// Float draws from [r.Lo, r.Hi).
func (s Sampler) Float(r FloatRange) float64 {
	if r.Hi <= r.Lo {
		return r.Lo
	}
	v := r.Lo + s.rng.Float64()*(r.Hi-r.Lo)
	if v >= r.Hi {
		// rounding can land exactly on the open bound
		return math.Nextafter(r.Hi, r.Lo)
	}
	return v
}

// Index picks a uniform index into a collection of size n.
func (s Sampler) Index(n int) int {
	return s.Int(IntRange{Lo: 0, Hi: n})
}
