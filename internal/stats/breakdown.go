package stats

import (
	"sort"

	"github.com/omarshaarawi/ffreport/internal/catalog"
	"github.com/omarshaarawi/ffreport/internal/models"
)

// Trend compares a stat's actual points with its projection.
type Trend string

const (
	TrendEqual Trend = "equal"
	TrendAbove Trend = "above-projection"
	TrendBelow Trend = "below-projection"
)

func trendOf(actual, projected float64) Trend {
	switch {
	case actual == projected:
		return TrendEqual
	case actual > projected:
		return TrendAbove
	default:
		return TrendBelow
	}
}

// ActualStyle and ProjectedStyle are the CSS classes used by the report.
func (t Trend) ActualStyle() string {
	switch t {
	case TrendEqual:
		return "light-blue"
	case TrendAbove:
		return "light-green"
	}
	return ""
}

func (t Trend) ProjectedStyle() string {
	switch t {
	case TrendEqual:
		return "light-blue"
	case TrendBelow:
		return "light-red"
	}
	return ""
}

type StatColumn struct {
	Stat      string
	Abbr      string
	Label     string
	Actual    float64
	Projected float64
	Trend     Trend
}

// StatsTable is a player's actual-vs-projected table, one column per stat.
type StatsTable struct {
	Columns []StatColumn
}

type BreakdownItem struct {
	Stat        string
	Label       string
	Category    string
	TotalPoints float64
}

type CategoryTotal struct {
	Category    string
	TotalPoints float64
}

// Breakdown is points per stat (Detailed, sorted by category then label) and
// per category (Grouped, sorted by category).
type Breakdown struct {
	Detailed []BreakdownItem
	Grouped  []CategoryTotal
}

func (b Breakdown) Total() float64 {
	var total float64
	for _, g := range b.Grouped {
		total += g.TotalPoints
	}
	return total
}

// CategoryPoints returns the grouped total for a category, 0 if absent.
func (b Breakdown) CategoryPoints(category string) float64 {
	for _, g := range b.Grouped {
		if g.Category == category {
			return g.TotalPoints
		}
	}
	return 0
}

// Aggregator rolls per-stat points up into categories using an injected
// catalog.
type Aggregator struct {
	catalog *catalog.Catalog
}

func NewAggregator(c *catalog.Catalog) *Aggregator {
	if c == nil {
		c = catalog.Default()
	}
	return &Aggregator{catalog: c}
}

// PlayerTable lists every stat in either breakdown, sorted by abbreviation.
func (a *Aggregator) PlayerTable(p models.PlayerWeek) StatsTable {
	names := make(map[string]struct{}, len(p.Breakdown)+len(p.ProjectedBreakdown))
	for name := range p.Breakdown {
		names[name] = struct{}{}
	}
	for name := range p.ProjectedBreakdown {
		names[name] = struct{}{}
	}

	cols := make([]StatColumn, 0, len(names))
	for name := range names {
		f := a.catalog.Format(name)
		actual := p.Breakdown[name]
		projected := p.ProjectedBreakdown[name]
		cols = append(cols, StatColumn{
			Stat:      name,
			Abbr:      f.Abbr,
			Label:     f.Label,
			Actual:    actual,
			Projected: projected,
			Trend:     trendOf(actual, projected),
		})
	}
	sort.Slice(cols, func(i, j int) bool {
		if cols[i].Abbr != cols[j].Abbr {
			return cols[i].Abbr < cols[j].Abbr
		}
		return cols[i].Stat < cols[j].Stat
	})
	return StatsTable{Columns: cols}
}

// TeamBreakdown aggregates a team's starters; BE and IR are left out.
func (a *Aggregator) TeamBreakdown(lineup []models.PlayerWeek) Breakdown {
	return a.aggregate(Starters(lineup))
}

// LeagueBreakdown aggregates every rostered starter in the league.
func (a *Aggregator) LeagueBreakdown(players []models.LeaguePlayer) Breakdown {
	included := make([]models.PlayerWeek, 0, len(players))
	for _, p := range players {
		if p.IsFreeAgent() || !p.IsStarter() {
			continue
		}
		included = append(included, p.PlayerWeek)
	}
	return a.aggregate(included)
}

func (a *Aggregator) aggregate(players []models.PlayerWeek) Breakdown {
	byStat := make(map[string]float64)
	for _, p := range players {
		for name, pts := range p.Breakdown {
			byStat[name] += pts
		}
	}

	detailed := make([]BreakdownItem, 0, len(byStat))
	for name, total := range byStat {
		detailed = append(detailed, BreakdownItem{
			Stat:        name,
			Label:       a.catalog.Format(name).Label,
			Category:    a.catalog.Category(name),
			TotalPoints: total,
		})
	}
	sort.Slice(detailed, func(i, j int) bool {
		if detailed[i].Category != detailed[j].Category {
			return detailed[i].Category < detailed[j].Category
		}
		if detailed[i].Label != detailed[j].Label {
			return detailed[i].Label < detailed[j].Label
		}
		return detailed[i].Stat < detailed[j].Stat
	})

	var grouped []CategoryTotal
	for _, item := range detailed {
		n := len(grouped)
		if n > 0 && grouped[n-1].Category == item.Category {
			grouped[n-1].TotalPoints += item.TotalPoints
			continue
		}
		grouped = append(grouped, CategoryTotal{Category: item.Category, TotalPoints: item.TotalPoints})
	}

	return Breakdown{Detailed: detailed, Grouped: grouped}
}

// Dataset is one series of a chart.
type Dataset struct {
	Label string
	Data  []float64
}

// Chart is chart-ready data: shared labels plus one or more series.
type Chart struct {
	Labels   []string
	Datasets []Dataset
}

// NamedBreakdown ties a breakdown to the team it was computed for.
type NamedBreakdown struct {
	Team      string
	Breakdown Breakdown
}

// RadarChart lays every team's category totals over the sorted union of
// categories, 0 where a team has none.
func RadarChart(teams []NamedBreakdown) Chart {
	seen := make(map[string]struct{})
	for _, t := range teams {
		for _, g := range t.Breakdown.Grouped {
			seen[g.Category] = struct{}{}
		}
	}
	labels := make([]string, 0, len(seen))
	for cat := range seen {
		labels = append(labels, cat)
	}
	sort.Strings(labels)

	chart := Chart{Labels: labels, Datasets: make([]Dataset, 0, len(teams))}
	for _, t := range teams {
		data := make([]float64, len(labels))
		for i, cat := range labels {
			data[i] = t.Breakdown.CategoryPoints(cat)
		}
		chart.Datasets = append(chart.Datasets, Dataset{Label: t.Team, Data: data})
	}
	return chart
}
