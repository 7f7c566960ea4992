package service

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/omarshaarawi/ffreport/internal/api/fantasy"
	"github.com/omarshaarawi/ffreport/internal/cache"
	"github.com/omarshaarawi/ffreport/internal/config"
	"github.com/omarshaarawi/ffreport/internal/features"
	"github.com/omarshaarawi/ffreport/internal/models"
)

var kickoff = time.Date(2025, 9, 21, 17, 0, 0, 0, time.UTC)

var (
	alpha = models.TeamInfo{ID: 1, Name: "Alpha", Abbrev: "ALP", Division: "East"}
	bravo = models.TeamInfo{ID: 2, Name: "Bravo", Abbrev: "BRV", Division: "West"}
)

type fakeProvider struct {
	weeks  map[int][]models.BoxScore
	boxErr error
}

func (f *fakeProvider) Year() int { return 2025 }

func (f *fakeProvider) GetLeagueMetadata(context.Context) (*models.LeagueMetadata, error) {
	return &models.LeagueMetadata{CurrentWeek: 3, LastUpdated: time.Now()}, nil
}

func (f *fakeProvider) GetLeagueSettings(context.Context) (*models.LeagueSettings, error) {
	return &models.LeagueSettings{Name: "Test League", TeamCount: 2}, nil
}

func (f *fakeProvider) GetStandings(context.Context) ([]models.TeamStanding, error) {
	return []models.TeamStanding{
		{Rank: 1, TeamName: "Alpha", Wins: 3, PointsFor: 175, PointsAgainst: 97},
		{Rank: 2, TeamName: "Bravo", Losses: 3, PointsFor: 97, PointsAgainst: 175},
	}, nil
}

func (f *fakeProvider) GetTeams(context.Context) ([]models.TeamInfo, error) {
	return []models.TeamInfo{alpha, bravo}, nil
}

func (f *fakeProvider) GetBoxScores(_ context.Context, week int) ([]models.BoxScore, error) {
	if f.boxErr != nil {
		return nil, f.boxErr
	}
	return f.weeks[week], nil
}

func (f *fakeProvider) GetFreeAgents(context.Context, int, int) ([]models.LeaguePlayer, error) {
	return []models.LeaguePlayer{{
		PlayerWeek: models.PlayerWeek{Name: "Waiver Wire", Position: "WR", Slot: models.SlotFreeAgent, ProTeam: "NYJ", Points: 40},
		TeamName:   models.FreeAgentTeam,
		TeamAbbrev: models.FreeAgentAbbrev,
	}}, nil
}

func simpleBox(week int, home, away float64) models.BoxScore {
	return models.BoxScore{Week: week, Home: alpha, Away: bravo, HomeScore: home, AwayScore: away}
}

func weekThree() models.BoxScore {
	box := simpleBox(3, 25, 12)
	box.HomeLineup = []models.PlayerWeek{
		{Name: "Bench Guy", Position: "RB", Slot: models.SlotBench, ProTeam: "KC", Points: 3, GameDate: kickoff},
		{
			Name: "Patrick Mahomes", Position: "QB", Slot: "QB", ProTeam: "KC", Points: 25,
			Breakdown: map[string]float64{"4": 8, "3": 17}, GameDate: kickoff,
		},
	}
	box.AwayLineup = []models.PlayerWeek{{
		Name: "Saquon Barkley", Position: "RB", Slot: "RB", ProTeam: "PHI", Points: 12,
		Breakdown: map[string]float64{"25": 6, "24": 6}, GameDate: kickoff.Add(3 * time.Hour),
	}}
	return box
}

type fakeFeatures struct {
	err error
}

func (f *fakeFeatures) Load(context.Context, int, int) (*features.Set, error) {
	if f.err != nil {
		return nil, f.err
	}
	return &features.Set{
		Beef: features.NewIndex("beef", map[string]features.Record{
			"patrick-mahomes-kc": {
				FullName: "Patrick Mahomes", Team: "KC", Position: "QB",
				Weight: 225, HeightInches: 74, Height: `6'2"`, Age: 30, YearsExp: 8,
				BirthDate: "1995-09-17",
			},
		}),
		Fines: features.NewIndex("fines", nil),
		Games: features.Games{},
	}, nil
}

func newTestService(p *fakeProvider, f FeatureLoader) *ReportService {
	svc := NewReportService(fantasy.NewAPI(p, nil, nil), f, 10)
	svc.now = func() time.Time { return time.Date(2025, 9, 23, 12, 0, 0, 0, time.UTC) }
	return svc
}

func defaultProvider() *fakeProvider {
	return &fakeProvider{weeks: map[int][]models.BoxScore{
		1: {simpleBox(1, 100, 40)},
		2: {simpleBox(2, 50, 45)},
		3: {weekThree()},
	}}
}

func TestBuild(t *testing.T) {
	r, err := newTestService(defaultProvider(), &fakeFeatures{}).Build(context.Background(), 3)
	require.NoError(t, err)

	assert.NotEmpty(t, r.RunID)
	assert.Equal(t, 2025, r.Year)
	assert.Equal(t, 3, r.Week)
	assert.Equal(t, "Test League", r.LeagueName)
	assert.Equal(t, time.Date(2025, 9, 22, 0, 0, 0, 0, time.UTC), r.ReferenceMonday)

	require.Len(t, r.Matchups, 1)
	assert.Equal(t, models.WinnerHome, r.Matchups[0].Winner)
	require.Len(t, r.WeeklyScores, 2)
	assert.Equal(t, "Alpha", r.WeeklyScores[0].Name)

	require.NotNil(t, r.WeeklyMargin)
	assert.Equal(t, 13.0, r.WeeklyMargin.Margin)
	require.NotNil(t, r.SeasonMargin)
	assert.Equal(t, 1, r.SeasonMargin.Week)
	assert.Equal(t, 60.0, r.SeasonMargin.Margin)

	require.NotNil(t, r.Records.TopWeek)
	assert.Equal(t, 100.0, r.Records.TopWeek.Score)
	assert.Equal(t, "Bravo", r.Records.MostPA.Team)
	assert.Len(t, r.Trophies, 4)

	require.Len(t, r.Teams, 2)
	assert.Equal(t, "Alpha", r.Teams[0].Name)
	assert.True(t, r.Teams[0].Won)
	assert.Equal(t, "E", r.Teams[0].Division)
	require.Len(t, r.Teams[0].Rows, 2)
	assert.Equal(t, "Patrick Mahomes", r.Teams[0].Rows[0].Name)
	assert.Equal(t, "Virgo", r.Teams[0].Rows[0].Zodiac.Name)
	assert.Equal(t, 225, r.Teams[0].Rows[0].Features.Weight)
	assert.False(t, r.Teams[0].Rows[1].HasZodiac())
	require.NotNil(t, r.Teams[0].Demographics)
	assert.Equal(t, 30.0, r.Teams[0].Demographics.AvgAge)

	require.Len(t, r.Touchdowns, 2)
	assert.Equal(t, "Alpha", r.Touchdowns[0].Team)
	assert.Equal(t, 2, r.Touchdowns[0].Pass)
	assert.Equal(t, 1, r.Touchdowns[1].Rush)

	require.Len(t, r.Beef, 1)
	assert.Equal(t, "Alpha", r.Beef[0].TeamName)

	require.Len(t, r.Birthdays, 1)
	assert.Equal(t, "Patrick Mahomes", r.Birthdays[0].Name)

	require.NotEmpty(t, r.TopPlayers.Overall)
	assert.Equal(t, "Patrick Mahomes", r.TopPlayers.Overall[0].Name)
	assert.InDelta(t, 37.0, r.Breakdown.Total(), 1e-9)
}

func TestBuildResolvesCurrentWeek(t *testing.T) {
	r, err := newTestService(defaultProvider(), nil).Build(context.Background(), 0)
	require.NoError(t, err)
	assert.Equal(t, 3, r.Week)
	assert.Empty(t, r.Birthdays)
	assert.Empty(t, r.Beef)
}

func TestBuildDegradesWhenFeaturesFail(t *testing.T) {
	r, err := newTestService(defaultProvider(), &fakeFeatures{err: errors.New("offline")}).Build(context.Background(), 3)
	require.NoError(t, err)
	assert.Len(t, r.Teams, 2)
	assert.Empty(t, r.Birthdays)
}

func TestBuildStopsOnCancelledFeatures(t *testing.T) {
	_, err := newTestService(defaultProvider(), &fakeFeatures{err: context.Canceled}).Build(context.Background(), 3)
	assert.ErrorIs(t, err, context.Canceled)
}

func TestBuildFailsWithoutBoxScores(t *testing.T) {
	p := defaultProvider()
	p.boxErr = errors.New("espn down")
	_, err := newTestService(p, nil).Build(context.Background(), 3)
	assert.ErrorContains(t, err, "espn down")
}

func TestBuildEmptyWeek(t *testing.T) {
	r, err := newTestService(&fakeProvider{}, nil).Build(context.Background(), 5)
	require.NoError(t, err)
	assert.Empty(t, r.Matchups)
	assert.Nil(t, r.WeeklyMargin)
	assert.Nil(t, r.SeasonMargin)
	assert.Equal(t, time.Date(2025, 9, 29, 0, 0, 0, 0, time.UTC), r.ReferenceMonday)
}

func TestGroupByTeam(t *testing.T) {
	players := []models.ReportPlayer{
		{LeaguePlayer: models.LeaguePlayer{PlayerWeek: models.PlayerWeek{Name: "z", Slot: models.SlotBench}, TeamName: "Zed"}},
		{LeaguePlayer: models.LeaguePlayer{PlayerWeek: models.PlayerWeek{Name: "fa"}, TeamName: models.FreeAgentTeam, TeamAbbrev: models.FreeAgentAbbrev}},
		{LeaguePlayer: models.LeaguePlayer{PlayerWeek: models.PlayerWeek{Name: "b1", Slot: models.SlotBench}, TeamName: "Bravo"}},
		{LeaguePlayer: models.LeaguePlayer{PlayerWeek: models.PlayerWeek{Name: "b2", Slot: "QB"}, TeamName: "Bravo"}},
		{LeaguePlayer: models.LeaguePlayer{PlayerWeek: models.PlayerWeek{Name: "a1", Slot: "WR"}, TeamName: "Alpha"}},
	}
	scores := []models.TeamWeek{{Name: "Bravo", Won: true, Logo: "b.png"}, {Name: "Alpha"}}

	rosters := GroupByTeam(players, scores)
	require.Len(t, rosters, 3)
	assert.Equal(t, []string{"Bravo", "Alpha", "Zed"}, []string{rosters[0].Name, rosters[1].Name, rosters[2].Name})
	assert.True(t, rosters[0].Won)
	assert.Equal(t, "b.png", rosters[0].Logo)
	assert.Equal(t, "b2", rosters[0].Players[0].Name)
	assert.Equal(t, "b1", rosters[0].Players[1].Name)
}

func TestFeatureLoaderStopsCallingFailingUpstreams(t *testing.T) {
	var hits atomic.Int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		hits.Add(1)
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer srv.Close()

	cfg := config.Features{
		SleeperURL:    srv.URL + "/players",
		FinesURL:      srv.URL + "/fines/%d",
		ScoreboardURL: srv.URL + "/scoreboard",
	}
	loader := features.NewLoader(cache.NewFileStore(t.TempDir()), time.Hour, false)
	fl := NewFeatureLoader(cfg, loader, srv.Client())

	for i := 0; i < 4; i++ {
		set, err := fl.Load(context.Background(), 2025, 3)
		require.NoError(t, err)
		assert.Zero(t, set.Beef.Len())
	}
	assert.Equal(t, int32(9), hits.Load())
}
