package features

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"sync"
	"time"

	"github.com/sony/gobreaker"

	"github.com/omarshaarawi/ffreport/internal/normalize"
)

type fetcher struct {
	client  *http.Client
	breaker *gobreaker.CircuitBreaker
}

func newFetcher(name string, client *http.Client) *fetcher {
	if client == nil {
		client = &http.Client{Timeout: 30 * time.Second}
	}
	return &fetcher{
		client: client,
		breaker: gobreaker.NewCircuitBreaker(gobreaker.Settings{
			Name:    name,
			Timeout: time.Minute,
			ReadyToTrip: func(counts gobreaker.Counts) bool {
				return counts.ConsecutiveFailures >= 3
			},
			OnStateChange: func(name string, from, to gobreaker.State) {
				slog.Warn("Circuit breaker state changed", "breaker", name, "from", from.String(), "to", to.String())
			},
		}),
	}
}

// Fetchers hands out one breaker-guarded fetcher per upstream, so failures
// count across every source built from it.
type Fetchers struct {
	client *http.Client
	mu     sync.Mutex
	byName map[string]*fetcher
}

func NewFetchers(client *http.Client) *Fetchers {
	return &Fetchers{client: client, byName: make(map[string]*fetcher)}
}

func (f *Fetchers) fetcher(name string) *fetcher {
	f.mu.Lock()
	defer f.mu.Unlock()
	if ft, ok := f.byName[name]; ok {
		return ft
	}
	ft := newFetcher(name, f.client)
	f.byName[name] = ft
	return ft
}

func (f *Fetchers) Beef(url string) *Beef {
	return &Beef{url: url, fetch: f.fetcher("sleeper"), norm: normalize.Default()}
}

// Fines takes a URL format with a single %d verb for the season.
func (f *Fetchers) Fines(urlFormat string, year int) *Fines {
	return &Fines{urlFormat: urlFormat, year: year, fetch: f.fetcher("fines"), norm: normalize.Default()}
}

func (f *Fetchers) Attendance(baseURL string, week int) *Attendance {
	return &Attendance{baseURL: baseURL, week: week, fetch: f.fetcher("scoreboard"), norm: normalize.Default()}
}

func (f *fetcher) get(ctx context.Context, url string) ([]byte, error) {
	body, err := f.breaker.Execute(func() (interface{}, error) {
		req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
		if err != nil {
			return nil, fmt.Errorf("error creating request: %w", err)
		}
		req.Header.Set("User-Agent", "ffreport/1.0")

		resp, err := f.client.Do(req)
		if err != nil {
			return nil, fmt.Errorf("error making request: %w", err)
		}
		defer resp.Body.Close()

		if resp.StatusCode != http.StatusOK {
			return nil, fmt.Errorf("unexpected status code: %d", resp.StatusCode)
		}
		return io.ReadAll(resp.Body)
	})
	if err != nil {
		return nil, err
	}
	return body.([]byte), nil
}
