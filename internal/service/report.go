package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"sort"
	"time"

	"github.com/google/uuid"

	"github.com/omarshaarawi/ffreport/internal/api/fantasy"
	"github.com/omarshaarawi/ffreport/internal/catalog"
	"github.com/omarshaarawi/ffreport/internal/config"
	"github.com/omarshaarawi/ffreport/internal/features"
	"github.com/omarshaarawi/ffreport/internal/models"
	"github.com/omarshaarawi/ffreport/internal/stats"
)

// TopPlayerCount is how many players the leaderboards keep.
const TopPlayerCount = 5

// FeatureLoader loads the feature data sets for one report week.
type FeatureLoader interface {
	Load(ctx context.Context, year, week int) (*features.Set, error)
}

type remoteFeatures struct {
	cfg      config.Features
	loader   *features.Loader
	fetchers *features.Fetchers
}

// NewFeatureLoader builds the Sleeper, fines and scoreboard sources for each
// week and loads them through loader. The upstream circuit breakers live as
// long as the returned loader.
func NewFeatureLoader(cfg config.Features, loader *features.Loader, client *http.Client) FeatureLoader {
	return &remoteFeatures{cfg: cfg, loader: loader, fetchers: features.NewFetchers(client)}
}

func (f *remoteFeatures) Load(ctx context.Context, year, week int) (*features.Set, error) {
	return features.LoadAll(ctx, f.loader, features.Sources{
		Beef:       f.fetchers.Beef(f.cfg.SleeperURL),
		Fines:      f.fetchers.Fines(f.cfg.FinesURL, year),
		Attendance: f.fetchers.Attendance(f.cfg.ScoreboardURL, week),
	})
}

// PlayerRow is one roster line with its stats table and zodiac sign.
type PlayerRow struct {
	models.ReportPlayer
	Table  stats.StatsTable
	Zodiac stats.ZodiacSign
}

func (p PlayerRow) HasZodiac() bool {
	return p.Zodiac.Symbol != ""
}

type TeamReport struct {
	models.TeamRoster
	Rows         []PlayerRow
	Breakdown    stats.Breakdown
	Positions    []stats.PositionPoints
	Demographics *stats.TeamDemographics
	Zodiac       *stats.TeamZodiac
}

type MatchupReport struct {
	models.Matchup
	Venue *stats.Venue
}

// Report is everything the weekly report shows.
type Report struct {
	RunID           string
	Year            int
	Week            int
	LeagueName      string
	GeneratedAt     time.Time
	ReferenceMonday time.Time
	IsPlayoff       bool

	BoxScores    []models.BoxScore
	Matchups     []MatchupReport
	WeeklyScores []models.TeamWeek
	WeeklyMargin *stats.MarginRecord
	SeasonMargin *stats.MarginRecord
	Standings    []models.TeamStanding
	Records      stats.LeagueRecords
	Trophies     []Trophy

	Teams        []TeamReport
	Breakdown    stats.Breakdown
	Radar        stats.Chart
	Beef         []stats.BeefRank
	Zodiac       stats.ZodiacDistribution
	Touchdowns   []stats.TouchdownStanding
	Birthdays    []stats.Birthday
	Demographics stats.Demographics
	TopPlayers   stats.TopPlayers
}

// Team finds a team by name.
func (r *Report) Team(name string) (*TeamReport, bool) {
	for i := range r.Teams {
		if r.Teams[i].Name == name {
			return &r.Teams[i], true
		}
	}
	return nil, false
}

type ReportService struct {
	api            *fantasy.API
	features       FeatureLoader
	freeAgentLimit int
	now            func() time.Time
}

func NewReportService(api *fantasy.API, features FeatureLoader, freeAgentLimit int) *ReportService {
	return &ReportService{api: api, features: features, freeAgentLimit: freeAgentLimit, now: time.Now}
}

// ResolveWeek returns week, or the league's current week when week is not
// positive.
func (s *ReportService) ResolveWeek(ctx context.Context, week int) (int, error) {
	if week > 0 {
		return week, nil
	}
	current, err := s.api.GetCurrentWeek(ctx)
	if err != nil {
		return 0, fmt.Errorf("fetching current week: %w", err)
	}
	return current, nil
}

func (s *ReportService) Year() int {
	return s.api.Year()
}

// Build assembles the report for week. Only the week's box scores are
// required; every other input degrades to an empty section.
func (s *ReportService) Build(ctx context.Context, week int) (*Report, error) {
	week, err := s.ResolveWeek(ctx, week)
	if err != nil {
		return nil, err
	}

	runID := uuid.NewString()
	log := slog.With("run_id", runID, "year", s.api.Year(), "week", week)
	start := time.Now()
	log.Info("Building weekly report")

	boxScores, err := s.api.GetBoxScores(ctx, week)
	if err != nil {
		return nil, fmt.Errorf("fetching box scores for week %d: %w", week, err)
	}
	if len(boxScores) == 0 {
		log.Warn("No box scores for week")
	}

	r := &Report{
		RunID:       runID,
		Year:        s.api.Year(),
		Week:        week,
		GeneratedAt: s.now(),
		BoxScores:   boxScores,
		IsPlayoff:   len(boxScores) > 0 && boxScores[0].IsPlayoff,
	}
	r.ReferenceMonday = stats.ReferenceMonday(firstGameDate(boxScores, r.GeneratedAt))

	if settings, err := s.api.GetLeagueSettings(ctx); err != nil {
		log.Warn("League settings unavailable", "error", err)
	} else {
		r.LeagueName = settings.Name
	}

	matchups := stats.CalculateMatchups(boxScores)
	r.WeeklyScores = stats.CalculateWeeklyScores(boxScores)
	stats.SortWeeklyScores(r.WeeklyScores)
	r.WeeklyMargin = stats.WeeklyMargin(matchups)
	r.SeasonMargin = stats.SeasonMargin(ctx, s.api, week)
	r.Trophies = Trophies(matchups)

	if standings, err := s.api.GetStandings(ctx); err != nil {
		log.Warn("Standings unavailable", "error", err)
	} else {
		r.Standings = standings
	}
	r.Records = stats.CalculateRecords(ctx, s.api, week, r.Standings)

	players, err := s.api.GetLeaguePlayers(ctx, week, s.freeAgentLimit)
	if err != nil {
		log.Warn("Free agents unavailable, continuing with rostered players", "error", err)
		if players, err = s.api.GetLeaguePlayers(ctx, week, 0); err != nil {
			return nil, fmt.Errorf("collecting league players: %w", err)
		}
	}

	set, err := s.loadFeatures(ctx, r.Year, week)
	if err != nil {
		return nil, err
	}
	joined := set.Join(players)

	rules, err := s.api.GetScoringRules(ctx)
	if err != nil {
		log.Warn("Scoring rules unavailable, using defaults", "error", err)
		rules = catalog.DefaultScoringRules()
	}

	s.assembleTeams(r, joined)
	r.Matchups = venues(matchups, r.Teams)

	rosters := make([]models.TeamRoster, 0, len(r.Teams))
	for _, t := range r.Teams {
		rosters = append(rosters, t.TeamRoster)
	}
	agg := stats.NewAggregator(s.api.Catalog())
	r.Breakdown = agg.LeagueBreakdown(players)
	named := make([]stats.NamedBreakdown, 0, len(r.Teams))
	for _, t := range r.Teams {
		named = append(named, stats.NamedBreakdown{Team: t.Name, Breakdown: t.Breakdown})
	}
	r.Radar = stats.RadarChart(named)
	r.Beef = stats.BeefRankings(rosters)
	r.Zodiac = stats.CalculateZodiac(rosters)
	r.Touchdowns = stats.TouchdownStandings(rosters, rules)
	r.Birthdays = stats.BirthdayWindow(joined, r.ReferenceMonday)
	r.Demographics = stats.CalculateDemographics(rosters)
	r.TopPlayers = stats.TopScorers(players, TopPlayerCount)
	linkTeamSections(r)

	log.Info("Weekly report built",
		"matchups", len(r.Matchups),
		"players", len(joined),
		"birthdays", len(r.Birthdays),
		"elapsed", time.Since(start))
	return r, nil
}

func (s *ReportService) loadFeatures(ctx context.Context, year, week int) (*features.Set, error) {
	empty := &features.Set{Beef: features.NewIndex("beef", nil), Fines: features.NewIndex("fines", nil), Games: features.Games{}}
	if s.features == nil {
		return empty, nil
	}
	set, err := s.features.Load(ctx, year, week)
	if err != nil {
		if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
			return nil, err
		}
		slog.Warn("Features unavailable", "error", err)
		return empty, nil
	}
	return set, nil
}

// assembleTeams groups rostered players by fantasy team, in weekly score
// order, and computes each team's tables and breakdown.
func (s *ReportService) assembleTeams(r *Report, players []models.ReportPlayer) {
	agg := stats.NewAggregator(s.api.Catalog())
	for _, roster := range GroupByTeam(players, r.WeeklyScores) {
		lineup := roster.Lineup()
		team := TeamReport{
			TeamRoster: roster,
			Breakdown:  agg.TeamBreakdown(lineup),
			Positions:  stats.PointsPerPosition(lineup),
		}
		for _, p := range roster.Players {
			row := PlayerRow{ReportPlayer: p, Table: agg.PlayerTable(p.PlayerWeek)}
			if sign, ok := stats.ZodiacSignOf(p.Features.BirthDate); ok {
				row.Zodiac = sign
			}
			team.Rows = append(team.Rows, row)
		}
		r.Teams = append(r.Teams, team)
	}
}

// GroupByTeam splits rostered players into team rosters sorted by slot. Teams
// follow the order of scores; teams missing from scores come last by name.
func GroupByTeam(players []models.ReportPlayer, scores []models.TeamWeek) []models.TeamRoster {
	byName := make(map[string]*models.TeamRoster)
	var extra []string
	for _, p := range players {
		if p.IsFreeAgent() {
			continue
		}
		roster, ok := byName[p.TeamName]
		if !ok {
			roster = &models.TeamRoster{Name: p.TeamName, Abbrev: p.TeamAbbrev, Logo: p.TeamLogo}
			byName[p.TeamName] = roster
			extra = append(extra, p.TeamName)
		}
		roster.Players = append(roster.Players, p)
	}

	var out []models.TeamRoster
	placed := make(map[string]bool)
	for _, tw := range scores {
		roster, ok := byName[tw.Name]
		if !ok || placed[tw.Name] {
			continue
		}
		roster.Won = tw.Won
		roster.Division = tw.Division
		if roster.Logo == "" {
			roster.Logo = tw.Logo
		}
		placed[tw.Name] = true
		out = append(out, *roster)
	}
	sort.Strings(extra)
	for _, name := range extra {
		if !placed[name] {
			out = append(out, *byName[name])
		}
	}
	for i := range out {
		stats.SortBySlot(out[i].Players)
	}
	return out
}

func venues(matchups []models.Matchup, teams []TeamReport) []MatchupReport {
	players := make(map[string][]models.ReportPlayer, len(teams))
	for _, t := range teams {
		players[t.Name] = t.Players
	}
	out := make([]MatchupReport, 0, len(matchups))
	for _, m := range matchups {
		out = append(out, MatchupReport{
			Matchup: m,
			Venue:   stats.MatchupVenue(players[m.Home.Name], players[m.Away.Name]),
		})
	}
	return out
}

func linkTeamSections(r *Report) {
	for i := range r.Teams {
		t := &r.Teams[i]
		for j := range r.Demographics.Teams {
			if r.Demographics.Teams[j].Team == t.Name {
				t.Demographics = &r.Demographics.Teams[j]
			}
		}
		for j := range r.Zodiac.Teams {
			if r.Zodiac.Teams[j].Team == t.Name {
				t.Zodiac = &r.Zodiac.Teams[j]
			}
		}
	}
}

// firstGameDate is the earliest kickoff of any rostered player, or fallback
// when no player has one.
func firstGameDate(boxScores []models.BoxScore, fallback time.Time) time.Time {
	var first time.Time
	for _, box := range boxScores {
		for _, lineup := range [][]models.PlayerWeek{box.HomeLineup, box.AwayLineup} {
			for _, p := range lineup {
				if p.GameDate.IsZero() {
					continue
				}
				if first.IsZero() || p.GameDate.Before(first) {
					first = p.GameDate
				}
			}
		}
	}
	if first.IsZero() {
		return fallback
	}
	return first
}
