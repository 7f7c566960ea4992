package fantasy

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/omarshaarawi/ffreport/internal/models"
	"github.com/omarshaarawi/ffreport/internal/repository/memory"
)

type fakeProvider struct {
	metadataCalls int
	boxCalls      int
	boxErr        error
	scoring       []models.ScoringItem
}

func (f *fakeProvider) Year() int { return 2025 }

func (f *fakeProvider) GetLeagueMetadata(context.Context) (*models.LeagueMetadata, error) {
	f.metadataCalls++
	return &models.LeagueMetadata{CurrentWeek: 6, LastUpdated: time.Date(2025, 10, 7, 0, 0, 0, 0, time.UTC)}, nil
}

func (f *fakeProvider) GetLeagueSettings(context.Context) (*models.LeagueSettings, error) {
	return &models.LeagueSettings{ScoringItems: f.scoring}, nil
}

func (f *fakeProvider) GetStandings(context.Context) ([]models.TeamStanding, error) {
	return nil, nil
}

func (f *fakeProvider) GetTeams(context.Context) ([]models.TeamInfo, error) {
	return nil, nil
}

func (f *fakeProvider) GetBoxScores(_ context.Context, week int) ([]models.BoxScore, error) {
	f.boxCalls++
	if f.boxErr != nil {
		return nil, f.boxErr
	}
	return []models.BoxScore{{
		Week: week,
		Home: models.TeamInfo{Name: "Home", Abbrev: "HM", LogoURL: "h.png"},
		Away: models.TeamInfo{Name: "Away", Abbrev: "AW"},
		HomeLineup: []models.PlayerWeek{{
			Name:               "Passer",
			Slot:               "QB",
			Breakdown:          map[string]float64{"3": 10.5, "4": 8, "9999": 1},
			ProjectedBreakdown: map[string]float64{"3": 11},
		}},
		AwayLineup: []models.PlayerWeek{{Name: "Kicker", Slot: "K"}},
	}}, nil
}

func (f *fakeProvider) GetFreeAgents(_ context.Context, week, limit int) ([]models.LeaguePlayer, error) {
	return []models.LeaguePlayer{{
		PlayerWeek: models.PlayerWeek{Name: "Free", Slot: models.SlotFreeAgent, Breakdown: map[string]float64{"24": 3}},
		TeamName:   models.FreeAgentTeam,
		TeamAbbrev: models.FreeAgentAbbrev,
	}}, nil
}

func TestGetBoxScoresRenamesAndMemoizes(t *testing.T) {
	provider := &fakeProvider{}
	api := NewAPI(provider, nil, nil)

	scores, err := api.GetBoxScores(context.Background(), 6)
	require.NoError(t, err)
	require.Len(t, scores, 1)
	assert.Equal(t, map[string]float64{
		"passingYards":      10.5,
		"passingTouchdowns": 8,
		"9999":              1,
	}, scores[0].HomeLineup[0].Breakdown)
	assert.Equal(t, map[string]float64{"passingYards": 11}, scores[0].HomeLineup[0].ProjectedBreakdown)
	assert.Nil(t, scores[0].AwayLineup[0].Breakdown)

	_, err = api.GetBoxScores(context.Background(), 6)
	require.NoError(t, err)
	assert.Equal(t, 1, provider.boxCalls)
}

func TestGetBoxScoresDoesNotCacheErrors(t *testing.T) {
	provider := &fakeProvider{boxErr: errors.New("down")}
	api := NewAPI(provider, nil, nil)

	_, err := api.GetBoxScores(context.Background(), 2)
	require.Error(t, err)
	provider.boxErr = nil
	scores, err := api.GetBoxScores(context.Background(), 2)
	require.NoError(t, err)
	assert.Len(t, scores, 1)
	assert.Equal(t, 2, provider.boxCalls)
}

func TestGetLeagueMetadataFreshness(t *testing.T) {
	provider := &fakeProvider{}
	api := NewAPI(provider, nil, memory.NewRepository())
	api.now = func() time.Time { return time.Date(2025, 10, 7, 6, 0, 0, 0, time.UTC) }

	week, err := api.GetCurrentWeek(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 6, week)
	_, err = api.GetLeagueMetadata(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 1, provider.metadataCalls)

	api.now = func() time.Time { return time.Date(2025, 10, 9, 0, 0, 0, 0, time.UTC) }
	_, err = api.GetLeagueMetadata(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 2, provider.metadataCalls)
}

func TestGetLeaguePlayers(t *testing.T) {
	api := NewAPI(&fakeProvider{}, nil, nil)

	players, err := api.GetLeaguePlayers(context.Background(), 6, 10)
	require.NoError(t, err)
	require.Len(t, players, 3)

	assert.Equal(t, "Passer", players[0].Name)
	assert.Equal(t, "Home", players[0].TeamName)
	assert.Equal(t, "h.png", players[0].TeamLogo)
	assert.Equal(t, "AW", players[1].TeamAbbrev)
	assert.True(t, players[2].IsFreeAgent())
	assert.Equal(t, map[string]float64{"rushingYards": 3}, players[2].Breakdown)

	players, err = api.GetLeaguePlayers(context.Background(), 6, 0)
	require.NoError(t, err)
	assert.Len(t, players, 2)
}

func TestGetScoringRules(t *testing.T) {
	api := NewAPI(&fakeProvider{}, nil, nil)
	rules, err := api.GetScoringRules(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 4.0, rules["passingTouchdowns"])

	api = NewAPI(&fakeProvider{scoring: []models.ScoringItem{{StatID: 4, Points: 6}}}, nil, nil)
	rules, err = api.GetScoringRules(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 6.0, rules["passingTouchdowns"])
}
