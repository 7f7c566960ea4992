package llm

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"regexp"
	"sort"
	"strings"

	"github.com/sony/gobreaker"

	"github.com/omarshaarawi/ffreport/internal/catalog"
	"github.com/omarshaarawi/ffreport/internal/models"
	"github.com/omarshaarawi/ffreport/internal/render"
	"github.com/omarshaarawi/ffreport/internal/summary"
)

const noHistory = "No historical data found."

var promptPlaceholder = regexp.MustCompile(`Data: \[.*?\]`)

// League is the season the recap is written for. *fantasy.API satisfies it.
type League interface {
	Year() int
	Catalog() *catalog.Catalog
	GetBoxScores(ctx context.Context, week int) ([]models.BoxScore, error)
	GetStandings(ctx context.Context) ([]models.TeamStanding, error)
	GetLeagueSettings(ctx context.Context) (*models.LeagueSettings, error)
}

// BoxScoreSource serves the box scores of a past season.
type BoxScoreSource interface {
	GetBoxScores(ctx context.Context, week int) ([]models.BoxScore, error)
}

// SeasonFunc opens the league for another season.
type SeasonFunc func(year int) BoxScoreSource

type Options struct {
	Force   bool
	Preview bool
}

type Result struct {
	Path    string
	Text    string
	Skipped bool
}

type Narrator struct {
	provider   Provider
	league     League
	seasons    SeasonFunc
	reportsDir string
	promptFile string
}

func NewNarrator(provider Provider, league League, seasons SeasonFunc, reportsDir, promptFile string) *Narrator {
	return &Narrator{
		provider:   provider,
		league:     league,
		seasons:    seasons,
		reportsDir: reportsDir,
		promptFile: promptFile,
	}
}

// Path is where the recap of a week is saved.
func (n *Narrator) Path(year, week int) string {
	return filepath.Join(n.reportsDir, "llm_summary", fmt.Sprintf("%d-week%d_llm_summary.md", year, week))
}

// SystemPrompt reads the prompt file without its data placeholder.
func SystemPrompt(file string) string {
	data, err := os.ReadFile(file)
	if err != nil {
		return DefaultSystemPrompt
	}
	return strings.TrimSpace(promptPlaceholder.ReplaceAllString(string(data), ""))
}

// Write generates the recap of week and saves it. An existing recap is kept
// unless opts.Force is set, in which case it is moved aside to a .bk file.
// With opts.Preview nothing is written.
func (n *Narrator) Write(ctx context.Context, week int, opts Options) (*Result, error) {
	year := n.league.Year()
	path := n.Path(year, week)
	logger := slog.With("provider", n.provider.Name(), "year", year, "week", week)

	existing := fileExists(path)
	if existing && !opts.Force && !opts.Preview {
		logger.Info("LLM summary already exists, skipping", "file", path)
		return &Result{Path: path, Skipped: true}, nil
	}

	current, err := n.currentData(ctx, week)
	if err != nil {
		return nil, err
	}
	prompt := Prompt{
		System:     SystemPrompt(n.promptFile),
		Current:    current,
		Historical: n.History(ctx, year, week),
	}

	logger.Info("Generating LLM summary")
	text, err := n.provider.Generate(ctx, prompt)
	if err != nil {
		return nil, fmt.Errorf("generating summary: %w", err)
	}
	if opts.Preview {
		return &Result{Text: text}, nil
	}

	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, fmt.Errorf("creating summary directory: %w", err)
	}
	if existing {
		if err := os.Rename(path, path+".bk"); err != nil {
			return nil, fmt.Errorf("backing up summary: %w", err)
		}
		logger.Info("Existing LLM summary backed up", "file", path+".bk")
	}
	if err := os.WriteFile(path, []byte(text), 0o644); err != nil {
		return nil, fmt.Errorf("writing summary: %w", err)
	}
	logger.Info("LLM summary saved", "file", path)
	return &Result{Path: path, Text: text}, nil
}

// WriteRange writes the recaps of weeks from through to with one provider.
// A failing week is logged and skipped; once the provider's breaker opens
// the remaining weeks are abandoned.
func (n *Narrator) WriteRange(ctx context.Context, from, to int, opts Options) ([]*Result, error) {
	var results []*Result
	var failed int
	for week := from; week <= to; week++ {
		res, err := n.Write(ctx, week, opts)
		if err != nil {
			if ctx.Err() != nil {
				return results, ctx.Err()
			}
			if errors.Is(err, gobreaker.ErrOpenState) {
				return results, fmt.Errorf("stopped at week %d: %w", week, err)
			}
			slog.Error("Failed to write LLM summary", "week", week, "error", err)
			failed++
			continue
		}
		results = append(results, res)
	}
	if failed > 0 {
		return results, fmt.Errorf("%d of %d weeks failed", failed, to-from+1)
	}
	return results, nil
}

func (n *Narrator) currentData(ctx context.Context, week int) (string, error) {
	boxScores, err := n.league.GetBoxScores(ctx, week)
	if err != nil {
		return "", fmt.Errorf("fetching box scores for week %d: %w", week, err)
	}
	standings, err := n.league.GetStandings(ctx)
	if err != nil {
		slog.Warn("Standings unavailable for summary", "error", err)
	}
	settings, err := n.league.GetLeagueSettings(ctx)
	if err != nil {
		slog.Warn("Settings unavailable for summary", "error", err)
	}
	return summary.Full(week, boxScores, standings, settings, n.league.Catalog()), nil
}

type seasonWeek struct{ year, week int }

// History joins the simplified summaries of every rendered week before the
// given one, generating and caching the missing ones.
func (n *Narrator) History(ctx context.Context, year, week int) string {
	index, err := render.ScanReports(n.reportsDir)
	if err != nil {
		slog.Warn("No rendered reports to draw history from", "error", err)
		return noHistory
	}
	var weeks []seasonWeek
	for y, ws := range index {
		for _, w := range ws {
			if y < year || (y == year && w < week) {
				weeks = append(weeks, seasonWeek{y, w})
			}
		}
	}
	sort.Slice(weeks, func(i, j int) bool {
		if weeks[i].year != weeks[j].year {
			return weeks[i].year < weeks[j].year
		}
		return weeks[i].week < weeks[j].week
	})

	dir := filepath.Join(n.reportsDir, "simplified")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		slog.Warn("Failed to create simplified summary directory", "error", err)
	}

	seasons := make(map[int]BoxScoreSource)
	var parts []string
	for _, sw := range weeks {
		name := fmt.Sprintf("%d-week%d.md", sw.year, sw.week)
		content, err := n.simplified(ctx, seasons, filepath.Join(dir, name), sw)
		if err != nil {
			if ctx.Err() != nil {
				break
			}
			slog.Warn("Skipping week in history", "year", sw.year, "week", sw.week, "error", err)
			continue
		}
		parts = append(parts, fmt.Sprintf("---\nData from %s ---\n\n", name)+content)
	}
	if len(parts) == 0 {
		return noHistory
	}
	return strings.Join(parts, "\n\n")
}

func (n *Narrator) simplified(ctx context.Context, seasons map[int]BoxScoreSource, path string, sw seasonWeek) (string, error) {
	if data, err := os.ReadFile(path); err == nil {
		return string(data), nil
	}
	if n.seasons == nil {
		return "", errors.New("no season source")
	}
	src, ok := seasons[sw.year]
	if !ok {
		slog.Info("Opening league season", "year", sw.year)
		src = n.seasons(sw.year)
		seasons[sw.year] = src
	}
	boxScores, err := src.GetBoxScores(ctx, sw.week)
	if err != nil {
		return "", fmt.Errorf("fetching box scores: %w", err)
	}
	content := summary.Simplified(sw.year, sw.week, boxScores)
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		slog.Warn("Failed to cache simplified summary", "file", path, "error", err)
	}
	return content, nil
}

func fileExists(p string) bool {
	_, err := os.Stat(p)
	return err == nil
}
