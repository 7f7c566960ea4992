package stats

import (
	"math"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/omarshaarawi/ffreport/internal/models"
)

func standardLineup() []models.PlayerWeek {
	return []models.PlayerWeek{
		pw("qb1", "QB", "QB", 20),
		pw("rb1", "RB", "RB", 15),
		pw("rb2", "RB", "RB", 10),
		pw("wr1", "WR", "WR", 12),
		pw("wr2", "WR", "WR", 8),
		pw("te1", "TE", "TE", 6),
		pw("rb3", "RB", "FLEX", 9),
		pw("dst", "D/ST", "D/ST", 5),
		pw("k", "K", "K", 7),
		pw("qb2", "QB", "BE", 25),
		pw("wr3", "WR", "BE", 14),
		pw("rb4", "RB", "BE", 3),
	}
}

func TestOptimalScore(t *testing.T) {
	tests := []struct {
		name   string
		lineup []models.PlayerWeek
		want   float64
	}{
		{"empty", nil, 0},
		{"standard lineup uses bench", standardLineup(), 103},
		{"missing positions contribute zero", []models.PlayerWeek{pw("qb", "QB", "QB", 10)}, 10},
		{
			"flex from wr only",
			[]models.PlayerWeek{
				pw("a", "WR", "WR", 10),
				pw("b", "WR", "WR", 9),
				pw("c", "WR", "BE", 8),
			},
			27,
		},
		{
			"flex from rb only",
			[]models.PlayerWeek{
				pw("a", "RB", "RB", 10),
				pw("b", "RB", "RB", 9),
				pw("c", "RB", "BE", 8),
				pw("d", "RB", "BE", 7),
			},
			27,
		},
		{
			"te is not flex eligible",
			[]models.PlayerWeek{
				pw("a", "TE", "TE", 10),
				pw("b", "TE", "FLEX", 9),
			},
			10,
		},
		{
			"punter counted when present",
			[]models.PlayerWeek{pw("p", "P", "P", 4), pw("k", "K", "K", 3)},
			7,
		},
		{
			"rounded to two decimals",
			[]models.PlayerWeek{pw("a", "QB", "QB", 1.111), pw("b", "TE", "TE", 2.222)},
			3.33,
		},
		{
			"negative defense still fills the slot",
			[]models.PlayerWeek{pw("a", "D/ST", "D/ST", -4), pw("b", "QB", "QB", 10)},
			6,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := OptimalScore(tt.lineup)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
			assert.Equal(t, tt.want, MaxScore(tt.lineup))
		})
	}
}

func TestMaxScoreDegradesToZero(t *testing.T) {
	lineup := []models.PlayerWeek{pw("a", "QB", "QB", 10), pw("b", "RB", "RB", math.NaN())}

	score, err := OptimalScore(lineup)
	assert.Error(t, err)
	assert.Zero(t, score)
	assert.Zero(t, MaxScore(lineup))

	lineup[1].Points = math.Inf(1)
	assert.Zero(t, MaxScore(lineup))
}

func TestMaxScoreDoesNotMutateLineup(t *testing.T) {
	lineup := standardLineup()
	before := append([]models.PlayerWeek(nil), lineup...)
	MaxScore(lineup)
	assert.Equal(t, before, lineup)
}

func TestMaxScoreAtLeastStarters(t *testing.T) {
	rng := rand.New(rand.NewSource(7))
	points := func() float64 { return float64(rng.Intn(4200)-200) / 100 }
	flexPos := []string{"RB", "WR"}
	benchPos := []string{"QB", "RB", "WR", "TE", "K", "D/ST"}

	for i := 0; i < 500; i++ {
		lineup := []models.PlayerWeek{
			pw("qb", "QB", "QB", points()),
			pw("rb1", "RB", "RB", points()),
			pw("rb2", "RB", "RB", points()),
			pw("wr1", "WR", "WR", points()),
			pw("wr2", "WR", "WR", points()),
			pw("te", "TE", "TE", points()),
			pw("flex", flexPos[rng.Intn(2)], "FLEX", points()),
			pw("dst", "D/ST", "D/ST", points()),
			pw("k", "K", "K", points()),
		}
		for b := rng.Intn(8); b > 0; b-- {
			slot := models.SlotBench
			if rng.Intn(5) == 0 {
				slot = models.SlotIR
			}
			lineup = append(lineup, pw("bench", benchPos[rng.Intn(len(benchPos))], slot, points()))
		}

		assert.GreaterOrEqual(t, MaxScore(lineup), StarterScore(lineup), "lineup %d", i)
	}
}

func TestStartersAndBenchPartition(t *testing.T) {
	lineup := append(standardLineup(), pw("hurt", "WR", "IR", 0))

	starters := Starters(lineup)
	bench := Bench(lineup)

	assert.Len(t, starters, 9)
	assert.Len(t, bench, 4)
	assert.Equal(t, len(lineup), len(starters)+len(bench))
	for _, p := range bench {
		assert.True(t, p.IsBench())
	}

	assert.Equal(t, 92.0, StarterScore(lineup))
	assert.Equal(t, 42.0, BenchScore(lineup))
	assert.Zero(t, BenchScore(nil))
}

func TestRound(t *testing.T) {
	assert.Equal(t, 0.3, Round(0.1+0.2))
	assert.Equal(t, 12.35, Round(12.345))
	assert.Equal(t, -1.5, Round(-1.5))
}
