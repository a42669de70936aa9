package matchstats

import "time"

// RegulationMinutes is the length of a match before added time.
const RegulationMinutes = 90

type Team struct {
	ID        string
	Name      string
	ShortName string
	Country   string
}

type Venue struct {
	Name     string
	City     string
	Country  string
	Capacity int
}

type Result struct {
	HomeScore int
	AwayScore int
}

// TeamStats is one side's statistics block.
type TeamStats struct {
	PossessionPct    float64
	TotalShots       int
	ShotsOnTarget    int
	ShotsOffTarget   int
	ShotsBlocked     int
	Corners          int
	Offsides         int
	Fouls            int
	YellowCards      int
	RedCards         int
	PassesCompleted  int
	PassesAttempted  int
	PassAccuracy     float64
	Crosses          int
	Tackles          int
	Interceptions    int
	Clearances       int
	Saves            int
	ExpectedGoals    float64
	ExpectedAssists  float64
	DistanceKm       float64
	Sprints          int
	DuelsWon         int
	DuelsTotal       int
	AerialDuelsWon   int
	AerialDuelsTotal int
}

// Cards returns yellow plus red cards.
func (s TeamStats) Cards() int {
	return s.YellowCards + s.RedCards
}

type MatchStatistics struct {
	MatchID              string
	HomeTeam             Team
	AwayTeam             Team
	Venue                Venue
	MatchDate            time.Time
	Result               Result
	Attendance           int
	Referee              string
	Weather              string
	TemperatureCelsius   int
	HomeStats            TeamStats
	AwayStats            TeamStats
	DurationMinutes      int
	AddedTimeFirstHalf   int
	AddedTimeSecondHalf  int
	TotalGoals           int
	TotalCards           int
	TotalCorners         int
	BallInPlayPercentage float64
}
