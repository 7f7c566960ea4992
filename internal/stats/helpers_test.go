package stats

import "github.com/omarshaarawi/ffreport/internal/models"

func pw(name, pos, slot string, pts float64) models.PlayerWeek {
	return models.PlayerWeek{Name: name, Position: pos, Slot: slot, Points: pts}
}

func rp(name, pos, slot string, pts float64) models.ReportPlayer {
	return models.ReportPlayer{
		LeaguePlayer: models.LeaguePlayer{PlayerWeek: pw(name, pos, slot, pts)},
	}
}

func withBreakdown(p models.ReportPlayer, breakdown map[string]float64) models.ReportPlayer {
	p.Breakdown = breakdown
	return p
}

func withWeight(p models.ReportPlayer, weight int) models.ReportPlayer {
	p.Features.Weight = weight
	return p
}

func withBirthDate(p models.ReportPlayer, date string) models.ReportPlayer {
	p.Features.BirthDate = date
	return p
}

func box(home, away string, homeScore, awayScore float64) models.BoxScore {
	return models.BoxScore{
		Home:      models.TeamInfo{Name: home, Abbrev: home},
		Away:      models.TeamInfo{Name: away, Abbrev: away},
		HomeScore: homeScore,
		AwayScore: awayScore,
	}
}
