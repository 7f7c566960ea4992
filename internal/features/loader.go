package features

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/omarshaarawi/ffreport/internal/cache"
	"github.com/omarshaarawi/ffreport/internal/models"
	"github.com/omarshaarawi/ffreport/internal/normalize"
)

// Source produces one feature data set.
type Source[T any] interface {
	Name() string
	Key() string
	Fetch(ctx context.Context) (T, error)
}

// Loader serves feature data from the cache while it is fresh and refetches
// it otherwise. Offline loaders only read the cache.
type Loader struct {
	store   cache.Store
	ttl     time.Duration
	offline bool
	now     func() time.Time
}

func NewLoader(store cache.Store, ttl time.Duration, offline bool) *Loader {
	return &Loader{store: store, ttl: ttl, offline: offline, now: time.Now}
}

func sizeOf(v interface{}) int {
	switch d := v.(type) {
	case map[string]Record:
		return len(d)
	case Games:
		return d.Len()
	}
	return 0
}

func Load[T any](ctx context.Context, l *Loader, src Source[T]) (T, error) {
	var data T
	ns, key := src.Name(), src.Key()
	start := time.Now()

	if l.offline || cache.Fresh(ctx, l.store, ns, key, l.ttl, l.now()) {
		if err := l.store.Get(ctx, ns, key, &data); err != nil {
			if errors.Is(err, cache.ErrMiss) && l.offline {
				return data, fmt.Errorf("no saved %s data for offline use: %w", ns, err)
			}
			if !errors.Is(err, cache.ErrMiss) {
				return data, err
			}
		} else {
			logLoaded(ns, "loaded", sizeOf(data), start)
			return data, nil
		}
	}

	slog.Info("Retrieving feature data", "feature", ns)
	fetched, err := src.Fetch(ctx)
	if err != nil {
		var stale T
		if getErr := l.store.Get(ctx, ns, key, &stale); getErr == nil {
			slog.Warn("Feature fetch failed, using stale cache", "feature", ns, "error", err)
			return stale, nil
		}
		return data, err
	}
	if err := l.store.Set(ctx, ns, key, fetched); err != nil {
		slog.Warn("Failed to save feature data", "feature", ns, "error", err)
	}
	logLoaded(ns, "retrieved", sizeOf(fetched), start)
	return fetched, nil
}

func logLoaded(ns, verb string, n int, start time.Time) {
	if n == 0 {
		slog.Warn("Feature source returned no records", "feature", ns, "action", verb)
		return
	}
	slog.Info("Feature data ready", "feature", ns, "action", verb, "records", n, "elapsed", time.Since(start))
}

// Set is every feature data set for one report.
type Set struct {
	Beef  *Index
	Fines *Index
	Games Games
}

// Sources bundles the three feature sources of a report run.
type Sources struct {
	Beef       Source[map[string]Record]
	Fines      Source[map[string]Record]
	Attendance Source[Games]
}

// LoadAll loads the sources concurrently. A failing source degrades to an
// empty data set; only cancellation is returned as an error.
func LoadAll(ctx context.Context, l *Loader, sources Sources) (*Set, error) {
	set := &Set{
		Beef:  NewIndex("beef", nil),
		Fines: NewIndex("fines", nil),
		Games: Games{},
	}

	g, ctx := errgroup.WithContext(ctx)
	if sources.Beef != nil {
		g.Go(func() error {
			records, err := Load(ctx, l, sources.Beef)
			if err != nil {
				return degrade(ctx, "beef", err)
			}
			set.Beef = NewIndex("beef", records)
			return nil
		})
	}
	if sources.Fines != nil {
		g.Go(func() error {
			records, err := Load(ctx, l, sources.Fines)
			if err != nil {
				return degrade(ctx, "fines", err)
			}
			set.Fines = NewIndex("fines", records)
			return nil
		})
	}
	if sources.Attendance != nil {
		g.Go(func() error {
			games, err := Load(ctx, l, sources.Attendance)
			if err != nil {
				return degrade(ctx, "attendance", err)
			}
			if games != nil {
				set.Games = games
			}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return set, nil
}

func degrade(ctx context.Context, name string, err error) error {
	if ctx.Err() != nil {
		return ctx.Err()
	}
	slog.Warn("Feature unavailable, continuing without it", "feature", name, "error", err)
	return nil
}

// Join attaches features and the week's pro games to each player.
func (s *Set) Join(players []models.LeaguePlayer) []models.ReportPlayer {
	out := make([]models.ReportPlayer, 0, len(players))
	misses := 0
	for _, p := range players {
		beef := s.Beef.Lookup(p.Name, p.ProTeam, p.Position)
		if beef.Weight == 0 && beef.FullName == "" {
			misses++
			slog.Debug("No beef data for player", "player", p.Name, "team", p.ProTeam, "position", p.Position)
		}
		fines := s.Fines.Lookup(p.Name, p.ProTeam, p.Position)

		out = append(out, models.ReportPlayer{
			LeaguePlayer: p,
			Features: models.PlayerFeatures{
				Weight:       beef.Weight,
				Height:       beef.Height,
				HeightInches: beef.HeightInches,
				Age:          beef.Age,
				YearsExp:     beef.YearsExp,
				BirthDate:    beef.BirthDate,
				TABBU:        beef.TABBU,
				Fines:        fines.Fines,
			},
			Games: s.Games[normalize.TeamAbbrev(p.ProTeam)],
		})
	}
	if misses > 0 {
		slog.Warn("Players without beef data", "count", misses, "players", len(players))
	}
	return out
}
