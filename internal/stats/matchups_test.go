package stats

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/omarshaarawi/ffreport/internal/models"
)

func scenarioBoxScore() models.BoxScore {
	bs := box("Home", "Away", 100, 95)
	bs.Week = 5
	bs.Home.Division = "East"
	bs.Away.Division = "West"
	bs.HomeLineup = []models.PlayerWeek{
		pw("hqb", "QB", "QB", 40),
		pw("hrb", "RB", "RB", 30),
		pw("hwr", "WR", "WR", 30),
		pw("hbench", "RB", "BE", 150),
	}
	bs.AwayLineup = []models.PlayerWeek{
		pw("aqb", "QB", "QB", 35),
		pw("awr", "WR", "WR", 60),
		pw("abench", "RB", "BE", 45),
	}
	return bs
}

func TestCalculateMatchupsScenario(t *testing.T) {
	matchups := CalculateMatchups([]models.BoxScore{scenarioBoxScore()})
	require.Len(t, matchups, 1)
	m := matchups[0]

	assert.Equal(t, 5, m.Week)
	assert.Equal(t, models.WinnerHome, m.Winner)
	assert.Equal(t, 5.0, m.Margin)

	assert.Equal(t, 150.0, m.Home.Bench)
	assert.True(t, m.Home.BenchOutscored)
	assert.Equal(t, 250.0, m.Home.MaxScore)
	assert.Equal(t, "E", m.Home.Division)

	assert.Equal(t, 45.0, m.Away.Bench)
	assert.False(t, m.Away.BenchOutscored)
	assert.Equal(t, 140.0, m.Away.MaxScore)
	assert.Equal(t, "W", m.Away.Division)

	assert.True(t, m.LostCouldWin)
}

func TestLostCouldWinOnlyForLoser(t *testing.T) {
	bs := scenarioBoxScore()
	// away wins now; home's ceiling of 250 beats away's 101
	bs.AwayScore = 101
	m := CalculateMatchups([]models.BoxScore{bs})[0]
	assert.Equal(t, models.WinnerAway, m.Winner)
	assert.True(t, m.LostCouldWin)

	bs.HomeLineup = []models.PlayerWeek{pw("hqb", "QB", "QB", 100)}
	m = CalculateMatchups([]models.BoxScore{bs})[0]
	assert.False(t, m.LostCouldWin)
}

func TestTieMatchup(t *testing.T) {
	bs := box("A", "B", 88.8, 88.8)
	bs.AwayLineup = []models.PlayerWeek{pw("x", "QB", "BE", 200)}
	m := CalculateMatchups([]models.BoxScore{bs})[0]

	assert.Equal(t, models.WinnerTie, m.Winner)
	assert.Zero(t, m.Margin)
	assert.False(t, m.LostCouldWin)

	winner, loser := m.WinnerSide()
	assert.Equal(t, "B", winner.Name)
	assert.Equal(t, "A", loser.Name)
}

func TestMatchupsPreserveInputOrder(t *testing.T) {
	matchups := CalculateMatchups([]models.BoxScore{
		box("A", "B", 50, 60),
		box("C", "D", 120, 10),
		box("E", "F", 70, 70),
	})
	require.Len(t, matchups, 3)
	assert.Equal(t, "A", matchups[0].Home.Name)
	assert.Equal(t, "C", matchups[1].Home.Name)
	assert.Equal(t, "E", matchups[2].Home.Name)
	assert.Empty(t, CalculateMatchups(nil))
}

func TestMarginSymmetricAndTieIffZero(t *testing.T) {
	pairs := [][2]float64{{100.5, 90.25}, {90.25, 100.5}, {0.1, 0.2}, {7, 7}, {0, 0}, {-3, 4}}
	for _, p := range pairs {
		a, b := p[0], p[1]
		assert.Equal(t, Margin(a, b), Margin(b, a))
		assert.GreaterOrEqual(t, Margin(a, b), 0.0)

		m := CalculateMatchups([]models.BoxScore{box("A", "B", a, b)})[0]
		assert.Equal(t, m.Winner == models.WinnerTie, m.Margin == 0, "%v vs %v", a, b)
	}
	assert.Equal(t, 10.25, Margin(100.5, 90.25))
	assert.Equal(t, 0.1, Margin(0.1, 0.2))
}

func TestCalculateWeeklyScores(t *testing.T) {
	bs := scenarioBoxScore()
	scores := CalculateWeeklyScores([]models.BoxScore{bs, box("C", "D", 120, 130)})
	require.Len(t, scores, 4)

	assert.Equal(t, "Home", scores[0].Name)
	assert.True(t, scores[0].Won)
	assert.Equal(t, 150.0, scores[0].Bench)
	assert.Equal(t, 250.0, scores[0].MaxScore)
	assert.Equal(t, "E", scores[0].Division)
	assert.Equal(t, "Away", scores[1].Name)
	assert.False(t, scores[1].Won)
	assert.Equal(t, "C", scores[2].Name)
	assert.False(t, scores[2].Won)
	assert.True(t, scores[3].Won)

	SortWeeklyScores(scores)
	got := make([]string, len(scores))
	for i, s := range scores {
		got[i] = s.Name
	}
	assert.Equal(t, []string{"D", "C", "Home", "Away"}, got)
}

func TestSortWeeklyScoresStable(t *testing.T) {
	scores := []models.TeamWeek{{Name: "a", Score: 10}, {Name: "b", Score: 20}, {Name: "c", Score: 10}}
	SortWeeklyScores(scores)
	assert.Equal(t, "b", scores[0].Name)
	assert.Equal(t, "a", scores[1].Name)
	assert.Equal(t, "c", scores[2].Name)
}

func TestDivisionLabel(t *testing.T) {
	assert.Equal(t, "E", DivisionLabel("East"))
	assert.Equal(t, "", DivisionLabel(""))
	assert.Equal(t, "É", DivisionLabel("Élite"))
}
