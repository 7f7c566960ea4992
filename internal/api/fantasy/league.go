package fantasy

import (
	"context"
	"fmt"
	"time"

	"github.com/omarshaarawi/ffreport/internal/catalog"
	"github.com/omarshaarawi/ffreport/internal/models"
	"github.com/omarshaarawi/ffreport/internal/repository/memory"
)

// Provider is the league-data source. *espn.API satisfies it.
type Provider interface {
	Year() int
	GetLeagueMetadata(ctx context.Context) (*models.LeagueMetadata, error)
	GetLeagueSettings(ctx context.Context) (*models.LeagueSettings, error)
	GetStandings(ctx context.Context) ([]models.TeamStanding, error)
	GetTeams(ctx context.Context) ([]models.TeamInfo, error)
	GetBoxScores(ctx context.Context, week int) ([]models.BoxScore, error)
	GetFreeAgents(ctx context.Context, week, limit int) ([]models.LeaguePlayer, error)
}

// API turns provider records into report-ready domain records: stat ids are
// replaced by stat names and box scores are fetched once per week.
type API struct {
	provider Provider
	catalog  *catalog.Catalog
	repo     *memory.Repository
	now      func() time.Time
}

func NewAPI(provider Provider, c *catalog.Catalog, repo *memory.Repository) *API {
	if c == nil {
		c = catalog.Default()
	}
	if repo == nil {
		repo = memory.NewRepository()
	}
	return &API{provider: provider, catalog: c, repo: repo, now: time.Now}
}

func (a *API) Year() int {
	return a.provider.Year()
}

func (a *API) Catalog() *catalog.Catalog {
	return a.catalog
}

func (a *API) GetLeagueMetadata(ctx context.Context) (*models.LeagueMetadata, error) {
	if metadata := a.repo.FreshMetadata(a.now()); metadata != nil {
		return metadata, nil
	}
	metadata, err := a.provider.GetLeagueMetadata(ctx)
	if err != nil {
		return nil, err
	}
	a.repo.SaveMetadata(metadata)
	return metadata, nil
}

func (a *API) GetCurrentWeek(ctx context.Context) (int, error) {
	metadata, err := a.GetLeagueMetadata(ctx)
	if err != nil {
		return 0, fmt.Errorf("fetching current week: %w", err)
	}
	return metadata.CurrentWeek, nil
}

func (a *API) GetLeagueSettings(ctx context.Context) (*models.LeagueSettings, error) {
	return a.provider.GetLeagueSettings(ctx)
}

// GetScoringRules resolves the league's scoring items to per-stat points,
// falling back to the common defaults when the league returns none.
func (a *API) GetScoringRules(ctx context.Context) (catalog.ScoringRules, error) {
	settings, err := a.provider.GetLeagueSettings(ctx)
	if err != nil {
		return nil, err
	}
	if len(settings.ScoringItems) == 0 {
		return catalog.DefaultScoringRules(), nil
	}
	return catalog.NewScoringRules(a.catalog, settings.ScoringItems), nil
}

func (a *API) GetStandings(ctx context.Context) ([]models.TeamStanding, error) {
	return a.provider.GetStandings(ctx)
}

func (a *API) GetTeams(ctx context.Context) ([]models.TeamInfo, error) {
	return a.provider.GetTeams(ctx)
}

// GetBoxScores satisfies stats.BoxScoreSource.
func (a *API) GetBoxScores(ctx context.Context, week int) ([]models.BoxScore, error) {
	if scores, ok := a.repo.GetBoxScores(week); ok {
		return scores, nil
	}

	scores, err := a.provider.GetBoxScores(ctx, week)
	if err != nil {
		return nil, err
	}
	for i := range scores {
		a.renameLineup(scores[i].HomeLineup)
		a.renameLineup(scores[i].AwayLineup)
	}
	a.repo.SaveBoxScores(week, scores)
	return scores, nil
}

func (a *API) GetFreeAgents(ctx context.Context, week, limit int) ([]models.LeaguePlayer, error) {
	players, err := a.provider.GetFreeAgents(ctx, week, limit)
	if err != nil {
		return nil, err
	}
	for i := range players {
		a.rename(&players[i].PlayerWeek)
	}
	return players, nil
}

// GetLeaguePlayers returns every rostered player of the week tagged with its
// fantasy team, followed by the top free agents.
func (a *API) GetLeaguePlayers(ctx context.Context, week, freeAgentLimit int) ([]models.LeaguePlayer, error) {
	scores, err := a.GetBoxScores(ctx, week)
	if err != nil {
		return nil, fmt.Errorf("fetching box scores: %w", err)
	}

	var players []models.LeaguePlayer
	for _, box := range scores {
		players = appendRostered(players, box.Home, box.HomeLineup)
		players = appendRostered(players, box.Away, box.AwayLineup)
	}

	if freeAgentLimit > 0 {
		fas, err := a.GetFreeAgents(ctx, week, freeAgentLimit)
		if err != nil {
			return nil, fmt.Errorf("fetching free agents: %w", err)
		}
		players = append(players, fas...)
	}
	return players, nil
}

func appendRostered(players []models.LeaguePlayer, team models.TeamInfo, lineup []models.PlayerWeek) []models.LeaguePlayer {
	for _, p := range lineup {
		players = append(players, models.LeaguePlayer{
			PlayerWeek: p,
			TeamName:   team.Name,
			TeamAbbrev: team.Abbrev,
			TeamLogo:   team.LogoURL,
		})
	}
	return players
}

func (a *API) renameLineup(lineup []models.PlayerWeek) {
	for i := range lineup {
		a.rename(&lineup[i])
	}
}

func (a *API) rename(p *models.PlayerWeek) {
	p.Breakdown = a.renameKeys(p.Breakdown)
	p.ProjectedBreakdown = a.renameKeys(p.ProjectedBreakdown)
}

// renameKeys maps stat-id keys to stat names. Two ids sharing one name are
// summed.
func (a *API) renameKeys(breakdown map[string]float64) map[string]float64 {
	if breakdown == nil {
		return nil
	}
	named := make(map[string]float64, len(breakdown))
	for key, points := range breakdown {
		named[a.catalog.NameForKey(key)] += points
	}
	return named
}
