package service

import (
	"fmt"
	"math"
	"sort"
	"strings"

	"github.com/lithammer/fuzzysearch/fuzzy"

	"github.com/omarshaarawi/ffreport/internal/models"
	"github.com/omarshaarawi/ffreport/internal/stats"
)

// TeamMatchThreshold is the minimum similarity for a fuzzy team name match.
const TeamMatchThreshold = 0.6

type Trophy struct {
	Category string
	Team     string
	Value    float64
}

// Trophies hands out the week's high score, low score, biggest win and
// closest win. The first matchup keeps a tie.
func Trophies(matchups []models.Matchup) []Trophy {
	if len(matchups) == 0 {
		return nil
	}

	highScore, lowScore := -math.MaxFloat64, math.MaxFloat64
	biggestWin, closestWin := -math.MaxFloat64, math.MaxFloat64
	var highScoreTeam, lowScoreTeam, biggestWinTeam, closestWinTeam string

	for _, m := range matchups {
		for _, side := range []models.MatchupSide{m.Home, m.Away} {
			if side.Score > highScore {
				highScore, highScoreTeam = side.Score, side.Name
			}
			if side.Score < lowScore {
				lowScore, lowScoreTeam = side.Score, side.Name
			}
		}

		winner, _ := m.WinnerSide()
		if m.Margin > biggestWin {
			biggestWin, biggestWinTeam = m.Margin, winner.Name
		}
		if m.Margin < closestWin {
			closestWin, closestWinTeam = m.Margin, winner.Name
		}
	}

	return []Trophy{
		{Category: "High Score", Team: highScoreTeam, Value: highScore},
		{Category: "Low Score", Team: lowScoreTeam, Value: lowScore},
		{Category: "Biggest Win", Team: biggestWinTeam, Value: biggestWin},
		{Category: "Closest Win", Team: closestWinTeam, Value: closestWin},
	}
}

func FormatFinalScores(r *Report) string {
	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("📊 *Week %d Final Scores:*\n\n", r.Week))
	if r.IsPlayoff {
		sb.WriteString("🏆 *Playoff week!*\n\n")
	}

	matchups := make([]MatchupReport, len(r.Matchups))
	copy(matchups, r.Matchups)
	sort.SliceStable(matchups, func(i, j int) bool {
		return matchups[i].Home.Score+matchups[i].Away.Score > matchups[j].Home.Score+matchups[j].Away.Score
	})
	for _, m := range matchups {
		sb.WriteString(fmt.Sprintf("%s %.2f - %.2f %s\n", m.Home.Name, m.Home.Score, m.Away.Score, m.Away.Name))
		for _, side := range []models.MatchupSide{m.Home, m.Away} {
			if side.BenchOutscored {
				sb.WriteString(fmt.Sprintf("  🤡 %s's bench (%.2f) outscored the starters\n", side.Abbrev, side.Bench))
			}
		}
	}

	if len(r.Trophies) > 0 {
		sb.WriteString("\n🏆 *Trophies:*\n")
	}
	for _, t := range r.Trophies {
		switch t.Category {
		case "High Score":
			sb.WriteString(fmt.Sprintf("Highest Score: %s (%.2f)\n", t.Team, t.Value))
		case "Low Score":
			sb.WriteString(fmt.Sprintf("Lowest Score: %s (%.2f)\n", t.Team, t.Value))
		case "Biggest Win":
			sb.WriteString(fmt.Sprintf("Biggest Win: %s (Margin: %.2f)\n", t.Team, t.Value))
		case "Closest Win":
			sb.WriteString(fmt.Sprintf("Closest Win: %s (Margin: %.2f)\n", t.Team, t.Value))
		}
	}
	return sb.String()
}

func FormatStandings(r *Report) string {
	var sb strings.Builder
	sb.WriteString("🏆 *Current Standings*\n\n")
	if len(r.Standings) == 0 {
		sb.WriteString("Standings are not available.")
		return sb.String()
	}
	for _, team := range r.Standings {
		sb.WriteString(fmt.Sprintf("%d. *%s*\n", team.Rank, team.TeamName))
		sb.WriteString(fmt.Sprintf("   Record: %d-%d-%d\n", team.Wins, team.Losses, team.Ties))
		sb.WriteString(fmt.Sprintf("   Points For: %.2f\n", team.PointsFor))
		sb.WriteString(fmt.Sprintf("   Points Against: %.2f\n\n", team.PointsAgainst))
	}
	return sb.String()
}

func formatMargin(label string, m *stats.MarginRecord) string {
	if m == nil {
		return fmt.Sprintf("*%s:* no games yet\n", label)
	}
	return fmt.Sprintf("*%s:* %s over %s, %.2f - %.2f (Margin: %.2f, week %d)\n",
		label, m.WinnerName, m.LoserName, m.WinnerScore, m.LoserScore, m.Margin, m.Week)
}

func FormatMargins(r *Report) string {
	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("📏 *Week %d Margins*\n\n", r.Week))
	sb.WriteString(formatMargin("This week", r.WeeklyMargin))
	sb.WriteString(formatMargin("Season", r.SeasonMargin))
	return sb.String()
}

func FormatBeef(r *Report) string {
	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("🥩 *Week %d Beef Rankings*\n\n", r.Week))
	if len(r.Beef) == 0 {
		sb.WriteString("No beef data this week.")
		return sb.String()
	}
	for _, b := range r.Beef {
		result := "L"
		if b.Won {
			result = "W"
		}
		sb.WriteString(fmt.Sprintf("%d. *%s* (%s) %d lbs, %.2f TABBU %s\n",
			b.Rank, b.TeamName, result, b.TotalWeight, b.TABBU, b.Icons()))
	}
	return sb.String()
}

func FormatTouchdowns(r *Report) string {
	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("🏈 *Week %d Touchdowns*\n\n", r.Week))
	if len(r.Touchdowns) == 0 {
		sb.WriteString("No touchdowns this week.")
		return sb.String()
	}
	for i, t := range r.Touchdowns {
		sb.WriteString(fmt.Sprintf("%d. *%s* %d TD (pass %d, rush %d, recv %d, def %d)\n",
			i+1, t.Team, t.Total, t.Pass, t.Rush, t.Recv, t.Def))
	}
	return sb.String()
}

func FormatBirthdays(r *Report) string {
	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("🎂 *Birthdays around %s*\n\n", r.ReferenceMonday.Format("Jan 02")))
	if len(r.Birthdays) == 0 {
		sb.WriteString("No birthdays this week.")
		return sb.String()
	}
	for _, b := range r.Birthdays {
		sb.WriteString(fmt.Sprintf("▫️ %s %s (%s), %s: %s\n",
			b.Position, b.Name, b.ProTeam, b.TeamName, b.Date.Format("Jan 02")))
	}
	return sb.String()
}

var injuryAbbrev = map[string]string{
	"QUESTIONABLE": "Q",
	"DOUBTFUL":     "D",
	"OUT":          "O",
}

func formatRosterLine(p models.ReportPlayer) string {
	injury := ""
	if abbr, ok := injuryAbbrev[p.InjuryStatus]; ok {
		injury = fmt.Sprintf(" (%s)", abbr)
	}
	return fmt.Sprintf("▫️ %s %s%s - %.2f pts\n", p.Slot, p.Name, injury, p.Points)
}

// FormatTeam renders one team's lineup. The name is matched loosely.
func FormatTeam(r *Report, name string) (string, error) {
	team, ok := FindTeam(r, name)
	if !ok {
		return "", fmt.Errorf("no team matching %q", name)
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("📋 *%s's Week %d Roster*\n\n", team.Name, r.Week))
	sb.WriteString("*Starting Lineup:*\n")
	for _, p := range team.Players {
		if p.IsStarter() {
			sb.WriteString(formatRosterLine(p))
		}
	}
	sb.WriteString("\n*Bench:*\n")
	for _, p := range team.Players {
		if p.IsBench() {
			sb.WriteString(formatRosterLine(p))
		}
	}
	return sb.String(), nil
}

// FindTeam resolves a user-typed team name: exact name or abbreviation
// first, then the closest name by edit distance.
func FindTeam(r *Report, query string) (*TeamReport, bool) {
	query = strings.TrimSpace(query)
	if query == "" {
		return nil, false
	}
	for i := range r.Teams {
		t := &r.Teams[i]
		if strings.EqualFold(t.Name, query) || strings.EqualFold(t.Abbrev, query) {
			return t, true
		}
	}

	names := make([]string, len(r.Teams))
	for i, t := range r.Teams {
		names[i] = t.Name
	}
	if ranks := fuzzy.RankFindNormalizedFold(query, names); len(ranks) > 0 {
		sort.Sort(ranks)
		return &r.Teams[ranks[0].OriginalIndex], true
	}

	best, bestScore := -1, 0.0
	for i, name := range names {
		score := similarity(strings.ToLower(query), strings.ToLower(name))
		if score > bestScore {
			best, bestScore = i, score
		}
	}
	if best < 0 || bestScore < TeamMatchThreshold {
		return nil, false
	}
	return &r.Teams[best], true
}

func similarity(a, b string) float64 {
	maxLen := max(len(a), len(b))
	if maxLen == 0 {
		return 1
	}
	return 1 - float64(fuzzy.LevenshteinDistance(a, b))/float64(maxLen)
}

// CloseGameMargin is the widest margin still listed as a close game.
const CloseGameMargin = 16.0

// CloseGames lists matchups decided by at most CloseGameMargin, closest
// first.
func CloseGames(r *Report) []models.Matchup {
	var games []models.Matchup
	for _, m := range r.Matchups {
		if m.Margin <= CloseGameMargin {
			games = append(games, m.Matchup)
		}
	}
	sort.SliceStable(games, func(i, j int) bool {
		return games[i].Margin < games[j].Margin
	})
	return games
}

func FormatCloseGames(r *Report) string {
	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("🏈 *Week %d Close Games*\n\n", r.Week))

	games := CloseGames(r)
	if len(games) == 0 {
		sb.WriteString("No close games this week.")
		return sb.String()
	}
	for _, m := range games {
		sb.WriteString(fmt.Sprintf("%s %.2f - %.2f %s (Margin: %.2f)\n",
			m.Home.Name, m.Home.Score, m.Away.Score, m.Away.Name, m.Margin))
	}
	return sb.String()
}
