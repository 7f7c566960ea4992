package stats

import (
	"context"
	"log/slog"

	"github.com/omarshaarawi/ffreport/internal/models"
)

// WeekRecord is one team's score in one week.
type WeekRecord struct {
	Week  int
	Team  string
	Logo  string
	Score float64
}

// StandingRecord is a season total taken from the standings.
type StandingRecord struct {
	Team  string
	Logo  string
	Value float64
}

type LeagueRecords struct {
	TopWeek   *WeekRecord
	LowWeek   *WeekRecord
	TopScorer *StandingRecord
	LowScorer *StandingRecord
	MostPA    *StandingRecord
}

// ScoreRecords scans weeks 1 through throughWeek for the highest and lowest
// single-week team scores. Earlier weeks win ties.
func ScoreRecords(ctx context.Context, src BoxScoreSource, throughWeek int) (top, low *WeekRecord) {
	for week := 1; week <= throughWeek; week++ {
		if ctx.Err() != nil {
			break
		}
		boxScores, err := src.GetBoxScores(ctx, week)
		if err != nil {
			slog.Warn("Skipping week in score record scan", "week", week, "error", err)
			continue
		}
		for _, tw := range CalculateWeeklyScores(boxScores) {
			r := &WeekRecord{Week: week, Team: tw.Name, Logo: tw.Logo, Score: tw.Score}
			if top == nil || r.Score > top.Score {
				top = r
			}
			if low == nil || r.Score < low.Score {
				low = r
			}
		}
	}
	return top, low
}

// StandingRecords picks the most and fewest points for and the most points
// against. The first team in standing order wins ties.
func StandingRecords(standings []models.TeamStanding) (top, low, mostPA *StandingRecord) {
	for _, s := range standings {
		if top == nil || s.PointsFor > top.Value {
			top = &StandingRecord{Team: s.TeamName, Logo: s.Logo, Value: s.PointsFor}
		}
		if low == nil || s.PointsFor < low.Value {
			low = &StandingRecord{Team: s.TeamName, Logo: s.Logo, Value: s.PointsFor}
		}
		if mostPA == nil || s.PointsAgainst > mostPA.Value {
			mostPA = &StandingRecord{Team: s.TeamName, Logo: s.Logo, Value: s.PointsAgainst}
		}
	}
	return top, low, mostPA
}

// CalculateRecords combines the season score scan with the standings.
func CalculateRecords(ctx context.Context, src BoxScoreSource, throughWeek int, standings []models.TeamStanding) LeagueRecords {
	var r LeagueRecords
	r.TopWeek, r.LowWeek = ScoreRecords(ctx, src, throughWeek)
	r.TopScorer, r.LowScorer, r.MostPA = StandingRecords(standings)
	return r
}
