// Package summary renders box scores as markdown digests for readers and for
// the narration prompt.
package summary

import (
	"fmt"
	"sort"
	"strings"

	"github.com/omarshaarawi/ffreport/internal/catalog"
	"github.com/omarshaarawi/ffreport/internal/models"
	"github.com/omarshaarawi/ffreport/internal/stats"
)

func teamLabel(t models.TeamInfo) string {
	return fmt.Sprintf("%s (%s)", t.Name, t.Abbrev)
}

func writePlayer(sb *strings.Builder, p models.PlayerWeek, c *catalog.Catalog) {
	sb.WriteString(fmt.Sprintf("*   **%s** (%s) - %.2f points (proj: %.2f)\n", p.Name, p.Slot, p.Points, p.ProjectedPoints))
	if !p.GameDate.IsZero() {
		sb.WriteString(fmt.Sprintf("    *   **Game Date:** %s\n", p.GameDate.Format("2006-01-02 15:04")))
	}
	sb.WriteString(fmt.Sprintf("    *   **Matchup:** %s vs %s\n", p.ProTeam, p.ProOpponent))

	names := make([]string, 0, len(p.Breakdown))
	for name, pts := range p.Breakdown {
		if pts != 0 {
			names = append(names, name)
		}
	}
	if len(names) == 0 {
		return
	}
	sort.Strings(names)
	sb.WriteString("    *   **Stats:**\n")
	for _, name := range names {
		sb.WriteString(fmt.Sprintf("        *   %s: %.2f points\n", c.Format(name).Label, stats.Round(p.Breakdown[name])))
	}
}

// Full is the detailed digest of one week: standings, league settings and
// every player of every matchup.
func Full(week int, boxScores []models.BoxScore, standings []models.TeamStanding, settings *models.LeagueSettings, c *catalog.Catalog) string {
	if c == nil {
		c = catalog.Default()
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("# Week %d Game Summaries\n\n", week))
	sb.WriteString("## League Information\n\n")

	if len(standings) > 0 {
		ranked := make([]models.TeamStanding, len(standings))
		copy(ranked, standings)
		sort.SliceStable(ranked, func(i, j int) bool { return ranked[i].Rank < ranked[j].Rank })

		sb.WriteString("### Standings\n\n")
		sb.WriteString("| Rank | Team | Record |\n")
		sb.WriteString("|:----:|:-----|:------:|\n")
		for _, t := range ranked {
			sb.WriteString(fmt.Sprintf("| %d | %s (%s) | %d-%d |\n", t.Rank, t.TeamName, t.Abbreviation, t.Wins, t.Losses))
		}
		sb.WriteString("\n")
	}

	if settings != nil {
		sb.WriteString("### Settings\n\n")
		sb.WriteString(fmt.Sprintf("- **League Name:** %s\n", settings.Name))
		sb.WriteString(fmt.Sprintf("- **Number of Teams:** %d\n", settings.TeamCount))
		if len(settings.Divisions) > 0 {
			ids := make([]int, 0, len(settings.Divisions))
			for id := range settings.Divisions {
				ids = append(ids, id)
			}
			sort.Ints(ids)
			sb.WriteString("- **Divisions:**\n")
			for _, id := range ids {
				sb.WriteString(fmt.Sprintf("  - %s\n", settings.Divisions[id]))
			}
		}
		sb.WriteString("\n")
	}

	sb.WriteString("## Matchup Summaries\n\n")
	for _, box := range boxScores {
		sb.WriteString(fmt.Sprintf("### %s vs. %s\n\n", teamLabel(box.Home), teamLabel(box.Away)))
		sb.WriteString(fmt.Sprintf("**Final Score:** %.2f - %.2f\n\n", box.HomeScore, box.AwayScore))

		for _, side := range []struct {
			team   models.TeamInfo
			lineup []models.PlayerWeek
		}{{box.Home, box.HomeLineup}, {box.Away, box.AwayLineup}} {
			sb.WriteString(fmt.Sprintf("#### %s\n\n", teamLabel(side.team)))
			sb.WriteString("##### Starters\n\n")
			for _, p := range stats.Starters(side.lineup) {
				writePlayer(&sb, p, c)
			}
			sb.WriteString("\n##### Bench\n\n")
			for _, p := range stats.Bench(side.lineup) {
				writePlayer(&sb, p, c)
			}
			sb.WriteString("\n")
		}
	}
	return sb.String()
}

// Simplified is the one-line-per-matchup digest used as narration history.
func Simplified(year, week int, boxScores []models.BoxScore) string {
	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("### %d Week %d Simplified Game Summary\n\n", year, week))
	if len(boxScores) == 0 {
		sb.WriteString("No data available for this week.\n\n")
		return sb.String()
	}
	if boxScores[0].IsPlayoff {
		sb.WriteString("**THIS IS A PLAYOFF WEEK!**\n\n")
	}

	for _, box := range boxScores {
		score := fmt.Sprintf("%.2f (proj: %.2f) - %.2f (proj: %.2f)", box.HomeScore, box.HomeProjected, box.AwayScore, box.AwayProjected)
		switch {
		case box.HomeScore > box.AwayScore:
			sb.WriteString(fmt.Sprintf("- **%s** defeated **%s** with a score of %s.\n", teamLabel(box.Home), teamLabel(box.Away), score))
		case box.AwayScore > box.HomeScore:
			sb.WriteString(fmt.Sprintf("- **%s** defeated **%s** with a score of %s.\n", teamLabel(box.Away), teamLabel(box.Home), score))
		default:
			sb.WriteString(fmt.Sprintf("- **%s** tied with **%s** with a score of %s.\n", teamLabel(box.Home), teamLabel(box.Away), score))
		}

		for _, side := range []struct {
			team   models.TeamInfo
			score  float64
			lineup []models.PlayerWeek
		}{{box.Home, box.HomeScore, box.HomeLineup}, {box.Away, box.AwayScore, box.AwayLineup}} {
			if bench := stats.BenchScore(side.lineup); bench > side.score {
				sb.WriteString(fmt.Sprintf("  - %s's bench (%.2f) outscored their starters (%.2f). 🤡\n", side.team.Abbrev, bench, side.score))
			}
		}
	}
	return sb.String()
}
