package stats

import (
	"fmt"
	"math"

	"github.com/omarshaarawi/ffreport/internal/models"
)

type TeamDemographics struct {
	Team            string
	Logo            string
	AvgWeight       float64
	AvgHeightInches float64
	AvgAge          float64
	AvgYearsExp     float64
}

func (t TeamDemographics) AvgHeight() string {
	return FormatHeight(t.AvgHeightInches)
}

type PlayerDemographics struct {
	Name         string
	Position     string
	ProTeam      string
	TeamName     string
	TeamLogo     string
	Age          int
	YearsExp     int
	HeightInches int
	Height       string
}

type Demographics struct {
	Teams []TeamDemographics

	OldestTeam           *TeamDemographics
	YoungestTeam         *TeamDemographics
	MostExperiencedTeam  *TeamDemographics
	LeastExperiencedTeam *TeamDemographics
	TallestTeam          *TeamDemographics
	ShortestTeam         *TeamDemographics

	OldestPlayer           *PlayerDemographics
	YoungestPlayer         *PlayerDemographics
	MostExperiencedPlayer  *PlayerDemographics
	LeastExperiencedPlayer *PlayerDemographics
	TallestPlayer          *PlayerDemographics
	ShortestPlayer         *PlayerDemographics
}

// FormatHeight renders inches as F'I", e.g. 74 -> 6'2".
func FormatHeight(inches float64) string {
	total := int(math.Round(inches))
	if total <= 0 {
		return `0'0"`
	}
	return fmt.Sprintf(`%d'%d"`, total/12, total%12)
}

type averager struct {
	sum float64
	n   int
}

func (a *averager) add(v int) {
	if v > 0 {
		a.sum += float64(v)
		a.n++
	}
}

func (a averager) avg() float64 {
	if a.n == 0 {
		return 0
	}
	return a.sum / float64(a.n)
}

// CalculateDemographics averages known (non-zero) attributes per team over
// every rostered player; team defenses do not count toward weight. Extremes
// only consider teams and players with a known age.
func CalculateDemographics(teams []models.TeamRoster) Demographics {
	var d Demographics
	var players []PlayerDemographics

	for _, team := range teams {
		var weight, height, age, exp averager
		for _, p := range team.Players {
			f := p.Features
			if p.Position != models.PositionDST {
				weight.add(f.Weight)
			}
			height.add(f.HeightInches)
			age.add(f.Age)
			exp.add(f.YearsExp)

			if f.Age > 0 {
				players = append(players, PlayerDemographics{
					Name:         p.Name,
					Position:     p.Position,
					ProTeam:      p.ProTeam,
					TeamName:     team.Name,
					TeamLogo:     team.Logo,
					Age:          f.Age,
					YearsExp:     f.YearsExp,
					HeightInches: f.HeightInches,
					Height:       f.Height,
				})
			}
		}
		d.Teams = append(d.Teams, TeamDemographics{
			Team:            team.Name,
			Logo:            team.Logo,
			AvgWeight:       weight.avg(),
			AvgHeightInches: height.avg(),
			AvgAge:          age.avg(),
			AvgYearsExp:     exp.avg(),
		})
	}

	var known []TeamDemographics
	for _, t := range d.Teams {
		if t.AvgAge > 0 {
			known = append(known, t)
		}
	}
	d.OldestTeam = extreme(known, func(t TeamDemographics) float64 { return t.AvgAge }, true)
	d.YoungestTeam = extreme(known, func(t TeamDemographics) float64 { return t.AvgAge }, false)
	d.MostExperiencedTeam = extreme(known, func(t TeamDemographics) float64 { return t.AvgYearsExp }, true)
	d.LeastExperiencedTeam = extreme(known, func(t TeamDemographics) float64 { return t.AvgYearsExp }, false)
	d.TallestTeam = extreme(known, func(t TeamDemographics) float64 { return t.AvgHeightInches }, true)
	d.ShortestTeam = extreme(known, func(t TeamDemographics) float64 { return t.AvgHeightInches }, false)

	d.OldestPlayer = extreme(players, func(p PlayerDemographics) float64 { return float64(p.Age) }, true)
	d.YoungestPlayer = extreme(players, func(p PlayerDemographics) float64 { return float64(p.Age) }, false)
	d.MostExperiencedPlayer = extreme(players, func(p PlayerDemographics) float64 { return float64(p.YearsExp) }, true)
	d.LeastExperiencedPlayer = extreme(players, func(p PlayerDemographics) float64 { return float64(p.YearsExp) }, false)
	d.TallestPlayer = extreme(players, func(p PlayerDemographics) float64 { return float64(p.HeightInches) }, true)
	d.ShortestPlayer = extreme(players, func(p PlayerDemographics) float64 { return float64(p.HeightInches) }, false)
	return d
}

// extreme returns the first element with the largest (or smallest) value.
func extreme[T any](items []T, value func(T) float64, largest bool) *T {
	if len(items) == 0 {
		return nil
	}
	best := 0
	for i := 1; i < len(items); i++ {
		v, b := value(items[i]), value(items[best])
		if (largest && v > b) || (!largest && v < b) {
			best = i
		}
	}
	out := items[best]
	return &out
}
