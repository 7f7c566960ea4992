package stats

import (
	"sort"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/omarshaarawi/ffreport/internal/models"
)

// TABBUUnit is the weight, in pounds, of one TABBU.
const TABBUUnit = 500.0

const (
	cowIcon   = "🐮"
	steakIcon = "🥩"
)

var (
	cowTABBU   = decimal.NewFromFloat(2.4)
	steakTABBU = decimal.NewFromFloat(0.5)
)

type BeefRank struct {
	Rank        int
	TeamName    string
	TeamLogo    string
	TotalWeight int
	TABBU       float64
	Won         bool
	Cows        int
	Steaks      int
}

// Icons renders the ranking as cows followed by steaks.
func (b BeefRank) Icons() string {
	return strings.Repeat(cowIcon, b.Cows) + strings.Repeat(steakIcon, b.Steaks)
}

// BeefIcons rounds tabbu to the nearest half, halves to even, then counts whole cows (2.4
// TABBU) and the steaks (0.5 TABBU) that fit in the remainder.
func BeefIcons(tabbu float64) (cows, steaks int) {
	rounded := decimal.NewFromFloat(tabbu).Mul(decimal.NewFromInt(2)).RoundBank(0).Div(decimal.NewFromInt(2))
	if rounded.Sign() <= 0 {
		return 0, 0
	}
	c := rounded.Div(cowTABBU).Floor()
	rest := rounded.Sub(c.Mul(cowTABBU))
	s := rest.Div(steakTABBU).Floor()
	return int(c.IntPart()), int(s.IntPart())
}

// BeefRankings ranks teams by the combined weight of their starters, team
// defenses excluded. Teams with no known weight are left out.
func BeefRankings(teams []models.TeamRoster) []BeefRank {
	var ranks []BeefRank
	for _, team := range teams {
		var weight int
		for _, p := range team.Players {
			if !p.IsStarter() || p.Position == models.PositionDST {
				continue
			}
			weight += p.Features.Weight
		}
		tabbu := float64(weight) / TABBUUnit
		if tabbu <= 0 {
			continue
		}
		cows, steaks := BeefIcons(tabbu)
		ranks = append(ranks, BeefRank{
			TeamName:    team.Name,
			TeamLogo:    team.Logo,
			TotalWeight: weight,
			TABBU:       tabbu,
			Won:         team.Won,
			Cows:        cows,
			Steaks:      steaks,
		})
	}

	sort.SliceStable(ranks, func(i, j int) bool {
		return ranks[i].TABBU > ranks[j].TABBU
	})
	for i := range ranks {
		ranks[i].Rank = i + 1
	}
	return ranks
}
