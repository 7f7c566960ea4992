package stats

import "github.com/omarshaarawi/ffreport/internal/models"

// MarginRecord is the widest single-matchup margin found by a scan. Ties in
// a matchup are attributed to the home side.
type MarginRecord struct {
	Week        int
	WinnerName  string
	WinnerLogo  string
	LoserName   string
	WinnerScore float64
	LoserScore  float64
	Margin      float64
}

// WeeklyMargin returns the largest margin of the given matchups, or nil when
// there are none. The first matchup wins ties.
func WeeklyMargin(matchups []models.Matchup) *MarginRecord {
	var best *MarginRecord
	for _, m := range matchups {
		margin := Margin(m.Home.Score, m.Away.Score)
		if best != nil && margin <= best.Margin {
			continue
		}
		winner, loser := m.WinnerSide()
		best = &MarginRecord{
			Week:        m.Week,
			WinnerName:  winner.Name,
			WinnerLogo:  winner.Logo,
			LoserName:   loser.Name,
			WinnerScore: winner.Score,
			LoserScore:  loser.Score,
			Margin:      margin,
		}
	}
	return best
}

// widerOf keeps a unless b is strictly wider.
func widerOf(a, b *MarginRecord) *MarginRecord {
	if b == nil {
		return a
	}
	if a == nil || b.Margin > a.Margin {
		return b
	}
	return a
}
