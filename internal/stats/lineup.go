// Package stats turns a week's box scores and rosters into the derived
// metrics of the weekly report. Everything here is pure and in-memory;
// missing data degrades to zero values instead of failing.
package stats

import (
	"fmt"
	"log/slog"
	"math"
	"sort"

	"github.com/shopspring/decimal"

	"github.com/omarshaarawi/ffreport/internal/models"
)

// Fixed single-player slots, filled in this order before RB, WR and flex.
var fixedSlots = []string{
	models.PositionQB,
	models.PositionTE,
	models.PositionDST,
	models.PositionK,
	models.PositionP,
}

// Round rounds to two decimal places.
func Round(v float64) float64 {
	f, _ := decimal.NewFromFloat(v).Round(2).Float64()
	return f
}

type positionPool map[string][]float64

func (p positionPool) pop(pos string) float64 {
	pts := p[pos]
	if len(pts) == 0 {
		return 0
	}
	p[pos] = pts[1:]
	return pts[0]
}

func (p positionPool) has(pos string) bool {
	return len(p[pos]) > 0
}

// OptimalScore greedily fills QB, TE, D/ST, K and P with the best player of
// each position, then two RBs, two WRs and one flex taken from whichever of
// the remaining RB and WR is higher. Bench players are eligible. The error is
// a diagnostic; the score is 0 whenever it is set.
func OptimalScore(lineup []models.PlayerWeek) (float64, error) {
	pool := make(positionPool)
	for _, p := range lineup {
		if math.IsNaN(p.Points) || math.IsInf(p.Points, 0) {
			return 0, fmt.Errorf("player %q has non-finite points %v", p.Name, p.Points)
		}
		pool[p.Position] = append(pool[p.Position], p.Points)
	}
	for _, pts := range pool {
		sort.Sort(sort.Reverse(sort.Float64Slice(pts)))
	}

	total := decimal.Zero
	add := func(v float64) {
		total = total.Add(decimal.NewFromFloat(v))
	}

	for _, pos := range fixedSlots {
		add(pool.pop(pos))
	}
	for i := 0; i < 2; i++ {
		add(pool.pop(models.PositionRB))
	}
	for i := 0; i < 2; i++ {
		add(pool.pop(models.PositionWR))
	}

	switch {
	case pool.has(models.PositionWR) && pool.has(models.PositionRB):
		add(math.Max(pool.pop(models.PositionWR), pool.pop(models.PositionRB)))
	case pool.has(models.PositionWR):
		add(pool.pop(models.PositionWR))
	case pool.has(models.PositionRB):
		add(pool.pop(models.PositionRB))
	}

	f, _ := total.Round(2).Float64()
	return f, nil
}

// MaxScore is OptimalScore with the diagnostic logged and swallowed.
func MaxScore(lineup []models.PlayerWeek) float64 {
	score, err := OptimalScore(lineup)
	if err != nil {
		slog.Warn("Error calculating max score", "error", err)
		return 0
	}
	return score
}

func Starters(lineup []models.PlayerWeek) []models.PlayerWeek {
	var out []models.PlayerWeek
	for _, p := range lineup {
		if !p.IsBench() {
			out = append(out, p)
		}
	}
	return out
}

// Bench returns the BE and IR players.
func Bench(lineup []models.PlayerWeek) []models.PlayerWeek {
	var out []models.PlayerWeek
	for _, p := range lineup {
		if p.IsBench() {
			out = append(out, p)
		}
	}
	return out
}

func BenchScore(lineup []models.PlayerWeek) float64 {
	return sumPoints(Bench(lineup))
}

func StarterScore(lineup []models.PlayerWeek) float64 {
	return sumPoints(Starters(lineup))
}

func sumPoints(players []models.PlayerWeek) float64 {
	total := decimal.Zero
	for _, p := range players {
		if math.IsNaN(p.Points) || math.IsInf(p.Points, 0) {
			continue
		}
		total = total.Add(decimal.NewFromFloat(p.Points))
	}
	f, _ := total.Round(2).Float64()
	return f
}
