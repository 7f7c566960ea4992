package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"path/filepath"
	"strconv"
	"time"

	"github.com/omarshaarawi/ffreport/internal/api/espn"
	"github.com/omarshaarawi/ffreport/internal/api/fantasy"
	"github.com/omarshaarawi/ffreport/internal/cache"
	"github.com/omarshaarawi/ffreport/internal/config"
	"github.com/omarshaarawi/ffreport/internal/features"
	"github.com/omarshaarawi/ffreport/internal/llm"
	"github.com/omarshaarawi/ffreport/internal/render"
	"github.com/omarshaarawi/ffreport/internal/service"
)

const placeholderLogo = "images/placeholder.png"

// app holds what every command shares: the feature cache, the renderer and
// one league API per season.
type app struct {
	cfg      *config.Config
	store    cache.Store
	features service.FeatureLoader
	renderer *render.Renderer
	leagues  map[int]*fantasy.API
}

func newApp(ctx context.Context, cfg *config.Config) (*app, error) {
	store, err := cache.Open(ctx, cfg.Redis, filepath.Join(cfg.Report.CacheDir, "data"))
	if err != nil {
		return nil, err
	}

	client := &http.Client{Timeout: 30 * time.Second}
	loader := features.NewLoader(store, cfg.Features.TTL, cfg.Report.Offline)
	logos := render.NewLogoCache(filepath.Join(cfg.Report.CacheDir, "images"), placeholderLogo, client, cfg.ESPNAPI)

	renderer, err := render.New(cfg.Report.ReportsDir, logos)
	if err != nil {
		return nil, err
	}

	return &app{
		cfg:      cfg,
		store:    store,
		features: service.NewFeatureLoader(cfg.Features, loader, client),
		renderer: renderer,
		leagues:  make(map[int]*fantasy.API),
	}, nil
}

func (a *app) Close() {
	if c, ok := a.store.(io.Closer); ok {
		if err := c.Close(); err != nil {
			slog.Error("Error closing cache", "error", err)
		}
	}
}

// league returns the API of a season, the configured one when year is zero.
func (a *app) league(year int) *fantasy.API {
	espnCfg := a.cfg.ESPNAPI
	if year > 0 {
		espnCfg.Year = strconv.Itoa(year)
	}
	key, _ := strconv.Atoi(espnCfg.Year)
	if api, ok := a.leagues[key]; ok {
		return api
	}
	api := fantasy.NewAPI(espn.NewAPI(espn.NewClient(espnCfg)), nil, nil)
	a.leagues[key] = api
	return api
}

func (a *app) reports(year int) *service.ReportService {
	return service.NewReportService(a.league(year), a.features, a.cfg.Report.FreeAgentLimit)
}

func (a *app) narrator(provider llm.Provider) *llm.Narrator {
	seasons := func(year int) llm.BoxScoreSource { return a.league(year) }
	return llm.NewNarrator(provider, a.league(0), seasons, a.cfg.Report.ReportsDir, a.cfg.LLM.PromptFile)
}

// writeWeek builds and renders one week and refreshes the report index.
func (a *app) writeWeek(ctx context.Context, svc *service.ReportService, week int, output string) (*service.Report, error) {
	rep, err := svc.Build(ctx, week)
	if err != nil {
		return nil, err
	}
	if _, err := a.renderer.WriteReport(ctx, rep, output); err != nil {
		return nil, err
	}
	if err := a.writeIndex(); err != nil {
		slog.Warn("Failed to update report index", "error", err)
	}
	return rep, nil
}

func (a *app) writeIndex() error {
	_, err := render.BuildIndex(a.cfg.Report.ReportsDir, filepath.Join(a.cfg.Report.ReportsDir, "reports.json"))
	if err != nil {
		return fmt.Errorf("building index: %w", err)
	}
	return nil
}
