package stats

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/omarshaarawi/ffreport/internal/models"
)

func TestWeeklyMargin(t *testing.T) {
	assert.Nil(t, WeeklyMargin(nil))

	weekly := []models.BoxScore{
		box("A", "B", 100, 90),
		box("C", "D", 60, 110.5),
		box("E", "F", 80, 30),
	}
	for i := range weekly {
		weekly[i].Week = 3
	}
	rec := WeeklyMargin(CalculateMatchups(weekly))
	require.NotNil(t, rec)
	assert.Equal(t, 3, rec.Week)
	assert.Equal(t, "C", rec.LoserName)
	assert.Equal(t, "D", rec.WinnerName)
	assert.Equal(t, 110.5, rec.WinnerScore)
	assert.Equal(t, 60.0, rec.LoserScore)
	assert.Equal(t, 50.5, rec.Margin)
}

func TestWeeklyMarginFirstWinsTies(t *testing.T) {
	rec := WeeklyMargin(CalculateMatchups([]models.BoxScore{
		box("A", "B", 10, 20),
		box("C", "D", 30, 20),
	}))
	require.NotNil(t, rec)
	assert.Equal(t, "B", rec.WinnerName)
	assert.Equal(t, 10.0, rec.Margin)
}

func TestWeeklyMarginAllTied(t *testing.T) {
	rec := WeeklyMargin(CalculateMatchups([]models.BoxScore{box("A", "B", 10, 10)}))
	require.NotNil(t, rec)
	assert.Zero(t, rec.Margin)
	assert.Equal(t, "B", rec.WinnerName)
	assert.Equal(t, "A", rec.LoserName)
}

type fakeSource struct {
	weeks map[int][]models.BoxScore
	errs  map[int]error
	calls []int
}

func (f *fakeSource) GetBoxScores(_ context.Context, week int) ([]models.BoxScore, error) {
	f.calls = append(f.calls, week)
	if err := f.errs[week]; err != nil {
		return nil, err
	}
	return f.weeks[week], nil
}

func weekOf(week int, scores ...models.BoxScore) []models.BoxScore {
	for i := range scores {
		scores[i].Week = week
	}
	return scores
}

func TestSeasonMargin(t *testing.T) {
	src := &fakeSource{
		weeks: map[int][]models.BoxScore{
			1: weekOf(1, box("A", "B", 100, 80)),
			2: weekOf(2, box("A", "B", 200, 10)),
			4: weekOf(4, box("C", "D", 70, 150)),
			5: weekOf(5, box("C", "D", 0, 300)),
		},
		errs: map[int]error{2: errors.New("boom")},
	}

	rec := SeasonMargin(context.Background(), src, 4)
	require.NotNil(t, rec)
	assert.Equal(t, 4, rec.Week)
	assert.Equal(t, "D", rec.WinnerName)
	assert.Equal(t, 80.0, rec.Margin)
	assert.Equal(t, []int{1, 2, 3, 4}, src.calls)
}

func TestSeasonMarginKeepsEarliestOnTie(t *testing.T) {
	src := &fakeSource{weeks: map[int][]models.BoxScore{
		1: weekOf(1, box("A", "B", 50, 20)),
		2: weekOf(2, box("C", "D", 20, 50)),
	}}
	rec := SeasonMargin(context.Background(), src, 2)
	require.NotNil(t, rec)
	assert.Equal(t, 1, rec.Week)
}

func TestSeasonMarginNoData(t *testing.T) {
	src := &fakeSource{errs: map[int]error{1: errors.New("down")}}
	assert.Nil(t, SeasonMargin(context.Background(), src, 2))
	assert.Nil(t, SeasonMargin(context.Background(), src, 0))
}

func TestSeasonMarginStopsOnCancel(t *testing.T) {
	src := &fakeSource{weeks: map[int][]models.BoxScore{1: weekOf(1, box("A", "B", 1, 0))}}
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	assert.Nil(t, SeasonMargin(ctx, src, 3))
	assert.Empty(t, src.calls)
}
