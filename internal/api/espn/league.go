package espn

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"math"
	"sort"
	"strconv"
	"time"

	"github.com/omarshaarawi/ffreport/internal/models"
)

type API struct {
	client *Client
}

func NewAPI(client *Client) *API {
	return &API{client: client}
}

func (a *API) Year() int {
	year, _ := strconv.Atoi(a.client.Config.Year)
	return year
}

func (a *API) GetLeagueMetadata(ctx context.Context) (*models.LeagueMetadata, error) {
	var espnResponse models.LeagueResponse
	params := map[string]string{
		"view": "mSettings",
	}

	if err := a.client.Get(ctx, a.client.leagueEndpoint(), params, nil, &espnResponse); err != nil {
		return nil, fmt.Errorf("fetching league metadata: %w", err)
	}

	metadata := &models.LeagueMetadata{
		LeagueID:             espnResponse.ID,
		Name:                 espnResponse.Settings.Name,
		CurrentWeek:          espnResponse.Status.CurrentMatchupPeriod,
		CurrentScoringPeriod: espnResponse.ScoringPeriodID,
		SeasonID:             espnResponse.SeasonID,
		FirstWeek:            espnResponse.Status.FirstScoringPeriod,
		LastWeek:             espnResponse.Status.FinalScoringPeriod,
		IsActive:             espnResponse.Status.IsActive,
		LastUpdated:          time.Now(),
	}

	return metadata, nil
}

func (a *API) GetLeagueSettings(ctx context.Context) (*models.LeagueSettings, error) {
	var espnResponse models.LeagueResponse
	params := map[string]string{
		"view": "mSettings",
	}

	if err := a.client.Get(ctx, a.client.leagueEndpoint(), params, nil, &espnResponse); err != nil {
		return nil, fmt.Errorf("fetching league settings: %w", err)
	}

	return &models.LeagueSettings{
		Name:         espnResponse.Settings.Name,
		TeamCount:    espnResponse.Settings.Size,
		Divisions:    divisionNames(espnResponse.Settings),
		ScoringItems: espnResponse.Settings.ScoringSettings.ScoringItems,
	}, nil
}

func (a *API) GetStandings(ctx context.Context) ([]models.TeamStanding, error) {
	var leagueResponse models.LeagueResponse
	params := map[string]string{
		"view": "mTeam",
	}

	if err := a.client.Get(ctx, a.client.leagueEndpoint(), params, nil, &leagueResponse); err != nil {
		return nil, fmt.Errorf("fetching standings: %w", err)
	}

	standings := make([]models.TeamStanding, len(leagueResponse.Teams))
	for i, team := range leagueResponse.Teams {
		standings[i] = models.TeamStanding{
			TeamID:        team.ID,
			TeamName:      team.DisplayName(),
			Abbreviation:  team.Abbreviation,
			Logo:          team.Logo,
			Wins:          team.Record.Overall.Wins,
			Losses:        team.Record.Overall.Losses,
			Ties:          team.Record.Overall.Ties,
			PointsFor:     team.Record.Overall.PointsFor,
			PointsAgainst: team.Record.Overall.PointsAgainst,
			WinPercentage: team.Record.Overall.Percentage,
			PlayoffSeed:   team.PlayoffSeed,
		}
	}

	sort.SliceStable(standings, func(i, j int) bool {
		if standings[i].WinPercentage != standings[j].WinPercentage {
			return standings[i].WinPercentage > standings[j].WinPercentage
		}
		return standings[i].PointsFor > standings[j].PointsFor
	})

	for i := range standings {
		standings[i].Rank = i + 1
	}

	return standings, nil
}

func (a *API) GetTeams(ctx context.Context) ([]models.TeamInfo, error) {
	var leagueResponse models.LeagueResponse
	params := map[string]string{
		"view": "mTeam,mSettings",
	}

	if err := a.client.Get(ctx, a.client.leagueEndpoint(), params, nil, &leagueResponse); err != nil {
		return nil, fmt.Errorf("fetching teams: %w", err)
	}

	divisions := divisionNames(leagueResponse.Settings)
	teams := make([]models.TeamInfo, 0, len(leagueResponse.Teams))
	for _, team := range leagueResponse.Teams {
		teams = append(teams, teamInfo(team, divisions))
	}
	return teams, nil
}

// GetBoxScores returns the week's matchups with full lineups. Player
// breakdowns are keyed by the provider's stat ids as they arrive on the wire.
func (a *API) GetBoxScores(ctx context.Context, week int) ([]models.BoxScore, error) {
	var leagueResponse models.LeagueResponse
	params := map[string]string{
		"view":            "mMatchupScore,mScoreboard,mTeam,mSettings",
		"scoringPeriodId": strconv.Itoa(week),
	}

	filter, err := matchupPeriodFilter(week)
	if err != nil {
		return nil, err
	}
	headers := map[string]string{
		"x-fantasy-filter": filter,
	}

	if err := a.client.Get(ctx, a.client.leagueEndpoint(), params, headers, &leagueResponse); err != nil {
		return nil, fmt.Errorf("fetching box scores for week %d: %w", week, err)
	}

	games, err := a.GetProGames(ctx, week)
	if err != nil {
		slog.Warn("Pro schedule unavailable, game dates left empty", "week", week, "error", err)
	}

	divisions := divisionNames(leagueResponse.Settings)
	teams := make(map[int]models.TeamInfo, len(leagueResponse.Teams))
	for _, team := range leagueResponse.Teams {
		teams[team.ID] = teamInfo(team, divisions)
	}

	var boxScores []models.BoxScore
	for _, match := range leagueResponse.Schedule {
		if match.MatchupPeriodID != week {
			continue
		}
		if match.Away.TeamID == 0 || match.Home.TeamID == 0 {
			slog.Debug("Skipping matchup without an opponent", "week", week, "matchup", match.ID)
			continue
		}

		homeLineup := lineup(match.Home.RosterForCurrentScoringPeriod, week, games)
		awayLineup := lineup(match.Away.RosterForCurrentScoringPeriod, week, games)
		homeScore, homeProjected := getScoreAndProjected(match.Home, homeLineup)
		awayScore, awayProjected := getScoreAndProjected(match.Away, awayLineup)

		boxScores = append(boxScores, models.BoxScore{
			Week:          week,
			IsPlayoff:     match.PlayoffTierType != "" && match.PlayoffTierType != "NONE",
			Home:          lookupTeam(teams, match.Home.TeamID),
			Away:          lookupTeam(teams, match.Away.TeamID),
			HomeScore:     homeScore,
			AwayScore:     awayScore,
			HomeProjected: homeProjected,
			AwayProjected: awayProjected,
			HomeLineup:    homeLineup,
			AwayLineup:    awayLineup,
		})
	}

	return boxScores, nil
}

// GetFreeAgents returns the most-owned unrostered players for the week.
func (a *API) GetFreeAgents(ctx context.Context, week, limit int) ([]models.LeaguePlayer, error) {
	var response models.PlayerCardResponse
	params := map[string]string{
		"view":            "kona_player_info",
		"scoringPeriodId": strconv.Itoa(week),
	}

	filters := map[string]interface{}{
		"players": map[string]interface{}{
			"filterStatus": map[string]interface{}{
				"value": []string{"FREEAGENT", "WAIVERS"},
			},
			"limit": limit,
			"sortPercOwned": map[string]interface{}{
				"sortPriority": 1,
				"sortAsc":      false,
			},
		},
	}
	filtersJSON, err := json.Marshal(filters)
	if err != nil {
		return nil, fmt.Errorf("error marshalling filters: %w", err)
	}
	headers := map[string]string{
		"x-fantasy-filter": string(filtersJSON),
	}

	if err := a.client.Get(ctx, a.client.leagueEndpoint(), params, headers, &response); err != nil {
		return nil, fmt.Errorf("fetching free agents for week %d: %w", week, err)
	}

	games, err := a.GetProGames(ctx, week)
	if err != nil {
		slog.Warn("Pro schedule unavailable, game dates left empty", "week", week, "error", err)
	}

	players := make([]models.LeaguePlayer, 0, len(response.Players))
	for _, entry := range response.Players {
		pw := playerWeek(entry, models.SlotFreeAgent, week, games)
		players = append(players, models.LeaguePlayer{
			PlayerWeek: pw,
			TeamName:   models.FreeAgentTeam,
			TeamAbbrev: models.FreeAgentAbbrev,
		})
	}
	return players, nil
}

// GetProGames maps every pro team playing in the week to its game.
func (a *API) GetProGames(ctx context.Context, week int) (map[int]models.ProGame, error) {
	var scheduleResponse models.ProTeamScheduleResponse

	endpoint := fmt.Sprintf("/seasons/%s", a.client.Config.Year)
	params := map[string]string{
		"view": "proTeamSchedules_wl",
	}

	if err := a.client.Get(ctx, endpoint, params, nil, &scheduleResponse); err != nil {
		return nil, fmt.Errorf("fetching pro schedule: %w", err)
	}

	key := strconv.Itoa(week)
	games := make(map[int]models.ProGame)
	for _, team := range scheduleResponse.Settings.ProTeams {
		for _, game := range team.ProGamesByScoringPeriod[key] {
			games[game.HomeProTeamID] = game
			games[game.AwayProTeamID] = game
		}
	}
	return games, nil
}

func matchupPeriodFilter(week int) (string, error) {
	filters := map[string]interface{}{
		"schedule": map[string]interface{}{
			"filterMatchupPeriodIds": map[string]interface{}{
				"value": []int{week},
			},
		},
	}

	filtersJSON, err := json.Marshal(filters)
	if err != nil {
		return "", fmt.Errorf("error marshalling filters: %w", err)
	}
	return string(filtersJSON), nil
}

func divisionNames(settings models.Settings) map[int]string {
	divisions := make(map[int]string, len(settings.ScheduleSettings.Divisions))
	for _, d := range settings.ScheduleSettings.Divisions {
		divisions[d.ID] = d.Name
	}
	return divisions
}

func teamInfo(team models.Team, divisions map[int]string) models.TeamInfo {
	return models.TeamInfo{
		ID:       team.ID,
		Name:     team.DisplayName(),
		Abbrev:   team.Abbreviation,
		Division: divisions[team.DivisionID],
		LogoURL:  team.Logo,
	}
}

func lookupTeam(teams map[int]models.TeamInfo, id int) models.TeamInfo {
	if team, ok := teams[id]; ok {
		return team
	}
	return models.TeamInfo{ID: id, Name: fmt.Sprintf("Team %d", id)}
}

func lineup(roster models.RosterForPeriod, week int, games map[int]models.ProGame) []models.PlayerWeek {
	players := make([]models.PlayerWeek, 0, len(roster.Entries))
	for _, entry := range roster.Entries {
		players = append(players, playerWeek(entry.PlayerPoolEntry, getLineupSlotString(entry.LineupSlotID), week, games))
	}
	return players
}

func playerWeek(entry models.PlayerPoolEntry, slot string, week int, games map[int]models.ProGame) models.PlayerWeek {
	player := entry.Player
	pw := models.PlayerWeek{
		PlayerID:     player.ID,
		Name:         player.FullName,
		Position:     getPositionString(player.DefaultPositionID),
		Slot:         slot,
		ProTeam:      getProTeamString(player.ProTeamID),
		InjuryStatus: player.InjuryStatus,
	}

	for _, stat := range player.Stats {
		if stat.ScoringPeriodID != week {
			continue
		}
		switch stat.StatSourceID {
		case 0:
			pw.Points = stat.AppliedTotal
			pw.Breakdown = copyStats(stat.AppliedStats)
		case 1:
			pw.ProjectedPoints = stat.AppliedTotal
			pw.ProjectedBreakdown = copyStats(stat.AppliedStats)
		}
	}

	if game, ok := games[player.ProTeamID]; ok {
		pw.GameDate = time.UnixMilli(game.Date).UTC()
		opponent := game.AwayProTeamID
		if opponent == player.ProTeamID {
			opponent = game.HomeProTeamID
		}
		pw.ProOpponent = getProTeamString(opponent)
	}

	return pw
}

func copyStats(stats map[string]float64) map[string]float64 {
	out := make(map[string]float64, len(stats))
	for k, v := range stats {
		out[k] = v
	}
	return out
}

// getScoreAndProjected prefers the applied total of the period roster, then
// the live total, then the final total. Projection falls back to the sum of
// the starters' projections.
func getScoreAndProjected(teamScore models.TeamScore, players []models.PlayerWeek) (float64, float64) {
	score := teamScore.TotalPointsLive
	if score == 0 {
		score = teamScore.TotalPoints
	}
	if len(teamScore.RosterForCurrentScoringPeriod.Entries) > 0 && teamScore.RosterForCurrentScoringPeriod.AppliedStatTotal != 0 {
		score = teamScore.RosterForCurrentScoringPeriod.AppliedStatTotal
	}

	projected := teamScore.TotalProjectedPointsLive
	if projected == 0 {
		for _, p := range players {
			if p.IsStarter() {
				projected += p.ProjectedPoints
			}
		}
	}
	return math.Round(score*100) / 100, math.Round(projected*100) / 100
}

var positionNames = map[int]string{
	1: models.PositionQB, 2: models.PositionRB, 3: models.PositionWR, 4: models.PositionTE,
	5: models.PositionK, 7: models.PositionP, 16: models.PositionDST,
}

func getPositionString(positionID int) string {
	if pos, ok := positionNames[positionID]; ok {
		return pos
	}
	return "Unknown"
}

var proTeams = map[int]string{
	0: "FA", 1: "ATL", 2: "BUF", 3: "CHI", 4: "CIN", 5: "CLE", 6: "DAL", 7: "DEN", 8: "DET",
	9: "GB", 10: "TEN", 11: "IND", 12: "KC", 13: "LV", 14: "LAR", 15: "MIA", 16: "MIN",
	17: "NE", 18: "NO", 19: "NYG", 20: "NYJ", 21: "PHI", 22: "ARI", 23: "PIT", 24: "LAC",
	25: "SF", 26: "SEA", 27: "TB", 28: "WSH", 29: "CAR", 30: "JAX", 33: "BAL", 34: "HOU",
}

func getProTeamString(proTeamID int) string {
	if team, ok := proTeams[proTeamID]; ok {
		return team
	}
	return "Unknown"
}

var lineupSlots = map[int]string{
	0: models.PositionQB, 1: "TQB", 2: models.PositionRB, 3: "RB/WR", 4: models.PositionWR,
	5: "WR/TE", 6: models.PositionTE, 7: "OP", 8: "DT", 9: "DE", 10: "LB", 11: "DL",
	12: "CB", 13: "S", 14: "DB", 15: "DP", 16: models.PositionDST, 17: models.PositionK,
	18: models.PositionP, 19: "HC", 20: models.SlotBench, 21: models.SlotIR,
	23: models.SlotFlex, 24: "ER",
}

func getLineupSlotString(slotID int) string {
	if slot, ok := lineupSlots[slotID]; ok {
		return slot
	}
	return "Unknown"
}
