package matchstats

import (
	"io"
	"math"
	"time"
)

// IDFunc draws an identifier from entropy.
type IDFunc func(entropy io.Reader) string

// Synthesizer composes one match record from a single Rand. It is meant to be
// used once per record and discarded.
type Synthesizer struct {
	sample Sampler
	rng    Rand
	newID  IDFunc
	now    time.Time
}

// NewSynthesizer draws every sampled field from rng and passes rng to newID
// for every identifier, so a seeded rng together with a fixed now reproduces
// the same record.
func NewSynthesizer(rng Rand, now time.Time, newID IDFunc) *Synthesizer {
	return &Synthesizer{
		sample: NewSampler(rng),
		rng:    rng,
		newID:  newID,
		now:    now,
	}
}

func (s *Synthesizer) Match() MatchStatistics {
	homeIdx, awayIdx := s.pickTeamIndexes()
	homeTeam := s.newTeam(teamPool[homeIdx])
	awayTeam := s.newTeam(teamPool[awayIdx])
	venue := venuePool[s.sample.Index(len(venuePool))]

	result := Result{
		HomeScore: s.sample.Int(ScoreRange),
		AwayScore: s.sample.Int(ScoreRange),
	}

	homePossession := s.sample.Float(PossessionRange)
	homeStats := s.teamStats(result.HomeScore, homePossession, homePassAdvantage)
	awayStats := s.teamStats(result.AwayScore, 100-homePossession, 1.0)

	daysAgo := s.sample.Int(MatchAgeDaysRange)

	return MatchStatistics{
		MatchID:              s.newID(s.rng),
		HomeTeam:             homeTeam,
		AwayTeam:             awayTeam,
		Venue:                venue,
		MatchDate:            s.now.UTC().AddDate(0, 0, -daysAgo),
		Result:               result,
		Attendance:           attendanceAt(s.sample.Int(AttendanceRange), venue),
		Referee:              refereePool[s.sample.Index(len(refereePool))],
		Weather:              weatherPool[s.sample.Index(len(weatherPool))],
		TemperatureCelsius:   s.sample.Int(TemperatureRange),
		HomeStats:            homeStats,
		AwayStats:            awayStats,
		DurationMinutes:      RegulationMinutes,
		AddedTimeFirstHalf:   s.sample.Int(AddedFirstHalfRange),
		AddedTimeSecondHalf:  s.sample.Int(AddedSecondHalfRange),
		TotalGoals:           result.HomeScore + result.AwayScore,
		TotalCards:           homeStats.Cards() + awayStats.Cards(),
		TotalCorners:         homeStats.Corners + awayStats.Corners,
		BallInPlayPercentage: s.sample.Float(BallInPlayRange),
	}
}

// attendanceAt caps a sampled crowd at the venue's capacity.
func attendanceAt(sample int, venue Venue) int {
	return min(sample, venue.Capacity)
}

// pickTeamIndexes returns two distinct pool indexes.
func (s *Synthesizer) pickTeamIndexes() (int, int) {
	home := s.sample.Index(len(teamPool))
	away := s.sample.Index(len(teamPool) - 1)
	if away >= home {
		away++
	}
	return home, away
}

func (s *Synthesizer) newTeam(profile TeamProfile) Team {
	return Team{
		ID:        s.newID(s.rng),
		Name:      profile.Name,
		ShortName: profile.ShortName,
		Country:   profile.Country,
	}
}

func (s *Synthesizer) teamStats(goals int, possession float64, passAdvantage float64) TeamStats {
	shots := s.shots(goals)

	passesAttempted := int(float64(s.sample.Int(PassesAttemptedRange)) * passAdvantage)
	passAccuracy := s.sample.Float(PassAccuracyRange)
	passesCompleted := int(float64(passesAttempted) * (passAccuracy / 100))

	stats := TeamStats{
		PossessionPct:   possession,
		TotalShots:      shots.total,
		ShotsOnTarget:   shots.onTarget,
		ShotsOffTarget:  shots.offTarget,
		ShotsBlocked:    shots.blocked,
		Corners:         s.sample.Int(CornersRange),
		Offsides:        s.sample.Int(OffsidesRange),
		Fouls:           s.sample.Int(FoulsRange),
		YellowCards:     s.sample.Int(YellowCardsRange),
		RedCards:        s.sample.Int(RedCardsRange),
		PassesCompleted: passesCompleted,
		PassesAttempted: passesAttempted,
		PassAccuracy:    passAccuracy,
		Crosses:         s.sample.Int(CrossesRange),
		Tackles:         s.sample.Int(TacklesRange),
		Interceptions:   s.sample.Int(InterceptionsRange),
		Clearances:      s.sample.Int(ClearancesRange),
		Saves:           s.sample.Int(SavesRange),
		ExpectedGoals:   math.Min(float64(goals)*s.sample.Float(ExpectedGoalsFactorRange), maxExpectedGoals),
		ExpectedAssists: s.sample.Float(ExpectedAssistsRange),
		DistanceKm:      s.sample.Float(DistanceKmRange),
		Sprints:         s.sample.Int(SprintsRange),
	}

	stats.DuelsWon = s.sample.Int(DuelsWonRange)
	stats.DuelsTotal = max(s.sample.Int(DuelsTotalRange), stats.DuelsWon)
	stats.AerialDuelsWon = s.sample.Int(AerialDuelsWonRange)
	stats.AerialDuelsTotal = max(s.sample.Int(AerialDuelsTotalRange), stats.AerialDuelsWon)

	return stats
}

type shotBreakdown struct {
	total     int
	onTarget  int
	offTarget int
	blocked   int
}

// shots derives on-target shots from goals and splits the rest of the total
// between off-target and blocked shots. The parts always sum to total.
func (s *Synthesizer) shots(goals int) shotBreakdown {
	onTarget := int(float64(goals) * s.sample.Float(ShotsOnTargetFactorRange))
	total := onTarget + s.sample.Int(ExtraShotsRange)
	return splitMissedShots(total, onTarget, s.sample.Int(BlockedShotsRange))
}

// splitMissedShots takes blocked shots out of the shots that missed the
// target. The blocked count is clamped to [0, missed].
func splitMissedShots(total, onTarget, blocked int) shotBreakdown {
	missed := max(total-onTarget, 0)
	blocked = min(max(blocked, 0), missed)
	return shotBreakdown{
		total:     total,
		onTarget:  onTarget,
		offTarget: missed - blocked,
		blocked:   blocked,
	}
}
