package stats

import (
	"sort"
	"unicode/utf8"

	"github.com/shopspring/decimal"

	"github.com/omarshaarawi/ffreport/internal/models"
)

// DivisionLabel keeps only the first character of a division name.
func DivisionLabel(name string) string {
	if name == "" {
		return ""
	}
	_, size := utf8.DecodeRuneInString(name)
	return name[:size]
}

// Margin is |a-b| computed in decimal so equal scores give exactly zero.
func Margin(a, b float64) float64 {
	m, _ := decimal.NewFromFloat(a).Sub(decimal.NewFromFloat(b)).Abs().Float64()
	return m
}

func winnerOf(home, away float64) models.Winner {
	switch {
	case home > away:
		return models.WinnerHome
	case away > home:
		return models.WinnerAway
	default:
		return models.WinnerTie
	}
}

func matchupSide(team models.TeamInfo, score float64, lineup []models.PlayerWeek) models.MatchupSide {
	bench := BenchScore(lineup)
	return models.MatchupSide{
		Name:           team.Name,
		Abbrev:         team.Abbrev,
		Logo:           team.LogoURL,
		Division:       DivisionLabel(team.Division),
		Score:          score,
		Bench:          bench,
		MaxScore:       MaxScore(lineup),
		BenchOutscored: bench > score,
		Lineup:         lineup,
	}
}

// CalculateMatchups builds one matchup per box score, in input order.
func CalculateMatchups(boxScores []models.BoxScore) []models.Matchup {
	matchups := make([]models.Matchup, 0, len(boxScores))
	for _, bs := range boxScores {
		home := matchupSide(bs.Home, bs.HomeScore, bs.HomeLineup)
		away := matchupSide(bs.Away, bs.AwayScore, bs.AwayLineup)
		winner := winnerOf(bs.HomeScore, bs.AwayScore)

		var lostCouldWin bool
		switch winner {
		case models.WinnerHome:
			lostCouldWin = away.MaxScore > home.Score
		case models.WinnerAway:
			lostCouldWin = home.MaxScore > away.Score
		}

		matchups = append(matchups, models.Matchup{
			Week:         bs.Week,
			Home:         home,
			Away:         away,
			Winner:       winner,
			LostCouldWin: lostCouldWin,
			Margin:       Margin(bs.HomeScore, bs.AwayScore),
		})
	}
	return matchups
}

// CalculateWeeklyScores returns two entries per box score, home then away.
// The order follows the input; use SortWeeklyScores for the leaderboard.
func CalculateWeeklyScores(boxScores []models.BoxScore) []models.TeamWeek {
	scores := make([]models.TeamWeek, 0, 2*len(boxScores))
	for _, bs := range boxScores {
		scores = append(scores,
			teamWeek(bs.Home, bs.HomeScore, bs.AwayScore, bs.HomeLineup),
			teamWeek(bs.Away, bs.AwayScore, bs.HomeScore, bs.AwayLineup),
		)
	}
	return scores
}

func teamWeek(team models.TeamInfo, score, opponent float64, lineup []models.PlayerWeek) models.TeamWeek {
	return models.TeamWeek{
		Name:     team.Name,
		Abbrev:   team.Abbrev,
		Logo:     team.LogoURL,
		Division: DivisionLabel(team.Division),
		Score:    score,
		Bench:    BenchScore(lineup),
		MaxScore: MaxScore(lineup),
		Won:      score > opponent,
		Lineup:   lineup,
	}
}

// SortWeeklyScores orders by score, highest first. Equal scores keep their
// relative order.
func SortWeeklyScores(scores []models.TeamWeek) {
	sort.SliceStable(scores, func(i, j int) bool {
		return scores[i].Score > scores[j].Score
	})
}
