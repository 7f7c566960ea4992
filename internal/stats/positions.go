package stats

import (
	"sort"
	"strings"

	"github.com/omarshaarawi/ffreport/internal/models"
)

// Display order of lineup slots; unknown slots follow, bench last.
var slotOrder = []string{
	models.PositionQB,
	models.PositionRB,
	models.PositionWR,
	models.PositionTE,
	models.SlotFlex,
	models.PositionDST,
	models.PositionK,
	models.PositionP,
}

// SlotRank orders players by lineup slot for display.
func SlotRank(slot string) (bench, index int) {
	if slot == models.SlotBench || slot == models.SlotIR {
		return 1, 0
	}
	for i, s := range slotOrder {
		if s == slot {
			return 0, i
		}
	}
	return 0, len(slotOrder)
}

// SortBySlot sorts players starters-first in slot display order.
func SortBySlot(players []models.ReportPlayer) {
	sort.SliceStable(players, func(i, j int) bool {
		bi, ii := SlotRank(players[i].Slot)
		bj, ij := SlotRank(players[j].Slot)
		if bi != bj {
			return bi < bj
		}
		return ii < ij
	})
}

type PositionPoints struct {
	Position     string
	Count        int
	Points       float64
	Projected    float64
	Min          float64
	Max          float64
	Avg          float64
	ProjectedMin float64
	ProjectedMax float64
	ProjectedAvg float64
}

func (pp *PositionPoints) add(p models.PlayerWeek) {
	if pp.Count == 0 {
		pp.Min, pp.Max = p.Points, p.Points
		pp.ProjectedMin, pp.ProjectedMax = p.ProjectedPoints, p.ProjectedPoints
	}
	pp.Count++
	pp.Points += p.Points
	pp.Projected += p.ProjectedPoints
	pp.Min = min(pp.Min, p.Points)
	pp.Max = max(pp.Max, p.Points)
	pp.ProjectedMin = min(pp.ProjectedMin, p.ProjectedPoints)
	pp.ProjectedMax = max(pp.ProjectedMax, p.ProjectedPoints)
	pp.Avg = pp.Points / float64(pp.Count)
	pp.ProjectedAvg = pp.Projected / float64(pp.Count)
}

// PointsPerPosition summarizes a lineup per slot. Bench players are split by
// their position as "BE-<pos>".
func PointsPerPosition(lineup []models.PlayerWeek) []PositionPoints {
	byPos := make(map[string]*PositionPoints)
	var order []string
	for _, p := range lineup {
		pos := p.Slot
		if p.Slot == models.SlotBench {
			pos = models.SlotBench + "-" + p.Position
		}
		pp, ok := byPos[pos]
		if !ok {
			pp = &PositionPoints{Position: pos}
			byPos[pos] = pp
			order = append(order, pos)
		}
		pp.add(p)
	}

	out := make([]PositionPoints, 0, len(order))
	for _, pos := range order {
		out = append(out, *byPos[pos])
	}
	sort.SliceStable(out, func(i, j int) bool {
		bi, ii := positionRank(out[i].Position)
		bj, ij := positionRank(out[j].Position)
		if bi != bj {
			return bi < bj
		}
		if ii != ij {
			return ii < ij
		}
		return out[i].Position < out[j].Position
	})
	return out
}

func positionRank(pos string) (int, int) {
	if strings.HasPrefix(pos, models.SlotBench+"-") {
		return 1, 0
	}
	return SlotRank(pos)
}

type PositionLeaders struct {
	Position string
	Players  []models.LeaguePlayer
}

type TopPlayers struct {
	Overall    []models.LeaguePlayer
	ByPosition []PositionLeaders
}

// TopScorers ranks rostered players by points, overall and per position,
// keeping n of each.
func TopScorers(players []models.LeaguePlayer, n int) TopPlayers {
	var rostered []models.LeaguePlayer
	for _, p := range players {
		if !p.IsFreeAgent() {
			rostered = append(rostered, p)
		}
	}
	sort.SliceStable(rostered, func(i, j int) bool {
		return rostered[i].Points > rostered[j].Points
	})

	top := TopPlayers{Overall: firstN(rostered, n)}
	byPos := make(map[string][]models.LeaguePlayer)
	for _, p := range rostered {
		byPos[p.Position] = append(byPos[p.Position], p)
	}
	positions := make([]string, 0, len(byPos))
	for pos := range byPos {
		positions = append(positions, pos)
	}
	sort.Slice(positions, func(i, j int) bool {
		_, a := SlotRank(positions[i])
		_, b := SlotRank(positions[j])
		if a != b {
			return a < b
		}
		return positions[i] < positions[j]
	})
	for _, pos := range positions {
		top.ByPosition = append(top.ByPosition, PositionLeaders{
			Position: pos,
			Players:  firstN(byPos[pos], n),
		})
	}
	return top
}

func firstN(players []models.LeaguePlayer, n int) []models.LeaguePlayer {
	if n >= 0 && len(players) > n {
		return players[:n]
	}
	return players
}
