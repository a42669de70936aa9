package httpapi

import (
	"time"

	"github.com/riskibarqy/stats-aggregator/internal/domain/matchstats"
	"github.com/riskibarqy/stats-aggregator/internal/usecase"
)

type teamDTO struct {
	ID        string `json:"id"`
	Name      string `json:"name"`
	ShortName string `json:"short_name"`
	Country   string `json:"country"`
}

type venueDTO struct {
	Name     string `json:"name"`
	City     string `json:"city"`
	Country  string `json:"country"`
	Capacity int    `json:"capacity"`
}

type matchResultDTO struct {
	HomeScore int `json:"home_score"`
	AwayScore int `json:"away_score"`
}

type teamMatchStatsDTO struct {
	PossessionPercentage float64 `json:"possession_percentage"`
	TotalShots           int     `json:"total_shots"`
	ShotsOnTarget        int     `json:"shots_on_target"`
	ShotsOffTarget       int     `json:"shots_off_target"`
	ShotsBlocked         int     `json:"shots_blocked"`
	Corners              int     `json:"corners"`
	Offsides             int     `json:"offsides"`
	Fouls                int     `json:"fouls"`
	YellowCards          int     `json:"yellow_cards"`
	RedCards             int     `json:"red_cards"`
	PassesCompleted      int     `json:"passes_completed"`
	PassesAttempted      int     `json:"passes_attempted"`
	PassAccuracy         float64 `json:"pass_accuracy"`
	Crosses              int     `json:"crosses"`
	Tackles              int     `json:"tackles"`
	Interceptions        int     `json:"interceptions"`
	Clearances           int     `json:"clearances"`
	Saves                int     `json:"saves"`
	ExpectedGoals        float64 `json:"expected_goals"`
	ExpectedAssists      float64 `json:"expected_assists"`
	DistanceCoveredKm    float64 `json:"distance_covered_km"`
	Sprints              int     `json:"sprints"`
	DuelsWon             int     `json:"duels_won"`
	DuelsTotal           int     `json:"duels_total"`
	AerialDuelsWon       int     `json:"aerial_duels_won"`
	AerialDuelsTotal     int     `json:"aerial_duels_total"`
}

type matchStatisticsDTO struct {
	MatchID              string            `json:"match_id"`
	HomeTeam             teamDTO           `json:"home_team"`
	AwayTeam             teamDTO           `json:"away_team"`
	Venue                venueDTO          `json:"venue"`
	MatchDate            time.Time         `json:"match_date"`
	Result               matchResultDTO    `json:"result"`
	Attendance           int               `json:"attendance"`
	Referee              string            `json:"referee"`
	Weather              string            `json:"weather"`
	TemperatureCelsius   int               `json:"temperature_celsius"`
	HomeTeamStats        teamMatchStatsDTO `json:"home_team_stats"`
	AwayTeamStats        teamMatchStatsDTO `json:"away_team_stats"`
	MatchDurationMinutes int               `json:"match_duration_minutes"`
	AddedTimeFirstHalf   int               `json:"added_time_first_half"`
	AddedTimeSecondHalf  int               `json:"added_time_second_half"`
	TotalGoals           int               `json:"total_goals"`
	TotalCards           int               `json:"total_cards"`
	TotalCorners         int               `json:"total_corners"`
	BallInPlayPercentage float64           `json:"ball_in_play_percentage"`
}

type matchBatchDTO struct {
	Count   int                  `json:"count"`
	Matches []matchStatisticsDTO `json:"matches"`
}

type healthDTO struct {
	Status    string    `json:"status"`
	Timestamp time.Time `json:"timestamp"`
	Version   string    `json:"version"`
}

func teamToDTO(t matchstats.Team) teamDTO {
	return teamDTO{
		ID:        t.ID,
		Name:      t.Name,
		ShortName: t.ShortName,
		Country:   t.Country,
	}
}

func teamStatsToDTO(s matchstats.TeamStats) teamMatchStatsDTO {
	return teamMatchStatsDTO{
		PossessionPercentage: s.PossessionPct,
		TotalShots:           s.TotalShots,
		ShotsOnTarget:        s.ShotsOnTarget,
		ShotsOffTarget:       s.ShotsOffTarget,
		ShotsBlocked:         s.ShotsBlocked,
		Corners:              s.Corners,
		Offsides:             s.Offsides,
		Fouls:                s.Fouls,
		YellowCards:          s.YellowCards,
		RedCards:             s.RedCards,
		PassesCompleted:      s.PassesCompleted,
		PassesAttempted:      s.PassesAttempted,
		PassAccuracy:         s.PassAccuracy,
		Crosses:              s.Crosses,
		Tackles:              s.Tackles,
		Interceptions:        s.Interceptions,
		Clearances:           s.Clearances,
		Saves:                s.Saves,
		ExpectedGoals:        s.ExpectedGoals,
		ExpectedAssists:      s.ExpectedAssists,
		DistanceCoveredKm:    s.DistanceKm,
		Sprints:              s.Sprints,
		DuelsWon:             s.DuelsWon,
		DuelsTotal:           s.DuelsTotal,
		AerialDuelsWon:       s.AerialDuelsWon,
		AerialDuelsTotal:     s.AerialDuelsTotal,
	}
}

func matchToDTO(m matchstats.MatchStatistics) matchStatisticsDTO {
	return matchStatisticsDTO{
		MatchID:  m.MatchID,
		HomeTeam: teamToDTO(m.HomeTeam),
		AwayTeam: teamToDTO(m.AwayTeam),
		Venue: venueDTO{
			Name:     m.Venue.Name,
			City:     m.Venue.City,
			Country:  m.Venue.Country,
			Capacity: m.Venue.Capacity,
		},
		MatchDate: m.MatchDate,
		Result: matchResultDTO{
			HomeScore: m.Result.HomeScore,
			AwayScore: m.Result.AwayScore,
		},
		Attendance:           m.Attendance,
		Referee:              m.Referee,
		Weather:              m.Weather,
		TemperatureCelsius:   m.TemperatureCelsius,
		HomeTeamStats:        teamStatsToDTO(m.HomeStats),
		AwayTeamStats:        teamStatsToDTO(m.AwayStats),
		MatchDurationMinutes: m.DurationMinutes,
		AddedTimeFirstHalf:   m.AddedTimeFirstHalf,
		AddedTimeSecondHalf:  m.AddedTimeSecondHalf,
		TotalGoals:           m.TotalGoals,
		TotalCards:           m.TotalCards,
		TotalCorners:         m.TotalCorners,
		BallInPlayPercentage: m.BallInPlayPercentage,
	}
}

func healthToDTO(h usecase.HealthStatus) healthDTO {
	return healthDTO{
		Status:    h.Status,
		Timestamp: h.Timestamp,
		Version:   h.Version,
	}
}
