package render

import (
	"context"
	"crypto/md5"
	"encoding/hex"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"os"
	"path"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"github.com/sony/gobreaker"

	"github.com/omarshaarawi/ffreport/internal/config"
)

const logoUserAgent = "Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/91.0.4472.124 Safari/537.36"

// LogoCache keeps local copies of team logos so reports render offline.
type LogoCache struct {
	dir         string
	placeholder string
	client      *http.Client
	breaker     *gobreaker.CircuitBreaker
	cookie      string
	mu          sync.Mutex
}

// NewLogoCache stores logos under dir. A download that fails is replaced by a
// copy of placeholder.
func NewLogoCache(dir, placeholder string, client *http.Client, espn config.ESPNAPI) *LogoCache {
	if client == nil {
		client = &http.Client{Timeout: 15 * time.Second}
	}
	c := &LogoCache{dir: dir, placeholder: placeholder, client: client}
	if espn.SWID != "" || espn.ESPNS2 != "" {
		c.cookie = fmt.Sprintf("swid=%s; espn_s2=%s;", espn.SWID, espn.ESPNS2)
	}
	c.breaker = gobreaker.NewCircuitBreaker(gobreaker.Settings{
		Name:        "logos",
		MaxRequests: 1,
		Interval:    time.Minute,
		Timeout:     30 * time.Second,
		ReadyToTrip: func(counts gobreaker.Counts) bool {
			return counts.ConsecutiveFailures >= 5
		},
		OnStateChange: func(name string, from, to gobreaker.State) {
			slog.Warn("Circuit breaker state changed", "breaker", name, "from", from.String(), "to", to.String())
		},
	})
	return c
}

func (c *LogoCache) Dir() string { return c.dir }

// Filename is the cache file name of a remote logo: the md5 of the URL plus
// its extension, ".png" when it has none.
func Filename(logoURL string) string {
	sum := md5.Sum([]byte(logoURL))
	ext := path.Ext(strings.SplitN(logoURL, "?", 2)[0])
	ext = strings.ReplaceAll(ext, "_dark", "")
	if ext == "" {
		ext = ".png"
	}
	return hex.EncodeToString(sum[:]) + ext
}

// Cache returns the cached file name for logoURL, downloading or copying it
// first when needed. An empty URL gives an empty name.
func (c *LogoCache) Cache(ctx context.Context, logoURL string) string {
	if logoURL == "" {
		return ""
	}
	c.mu.Lock()
	defer c.mu.Unlock()

	if err := os.MkdirAll(c.dir, 0o755); err != nil {
		slog.Warn("Failed to create logo cache", "dir", c.dir, "error", err)
		return ""
	}

	if !strings.HasPrefix(logoURL, "http") {
		name := filepath.Base(logoURL)
		local := filepath.Join(c.dir, name)
		if !exists(local) {
			if err := copyFile(logoURL, local); err != nil {
				slog.Warn("Failed to copy logo", "logo", logoURL, "error", err)
				return ""
			}
		}
		return name
	}

	name := Filename(logoURL)
	local := filepath.Join(c.dir, name)
	if exists(local) {
		return name
	}
	if err := c.download(ctx, logoURL, local); err != nil {
		slog.Warn("Error downloading logo, using placeholder", "logo", logoURL, "error", err)
		if err := copyFile(c.placeholder, local); err != nil {
			slog.Warn("Failed to copy placeholder logo", "placeholder", c.placeholder, "error", err)
			return ""
		}
	}
	return name
}

func (c *LogoCache) download(ctx context.Context, logoURL, local string) error {
	_, err := c.breaker.Execute(func() (interface{}, error) {
		req, err := http.NewRequestWithContext(ctx, http.MethodGet, logoURL, nil)
		if err != nil {
			return nil, fmt.Errorf("creating request: %w", err)
		}
		req.Header.Set("User-Agent", logoUserAgent)
		req.Header.Set("Referer", "https://fantasy.espn.com/")
		req.Header.Set("Accept", "*/*")
		if c.cookie != "" {
			req.Header.Set("Cookie", c.cookie)
		}

		resp, err := c.client.Do(req)
		if err != nil {
			return nil, fmt.Errorf("sending request: %w", err)
		}
		defer resp.Body.Close()
		if resp.StatusCode != http.StatusOK {
			return nil, fmt.Errorf("unexpected status code: %d", resp.StatusCode)
		}
		return nil, writeFile(local, resp.Body)
	})
	return err
}

func exists(p string) bool {
	_, err := os.Stat(p)
	return err == nil
}

func copyFile(src, dst string) error {
	in, err := os.Open(src)
	if err != nil {
		return err
	}
	defer in.Close()
	return writeFile(dst, in)
}

func writeFile(dst string, r io.Reader) error {
	tmp, err := os.CreateTemp(filepath.Dir(dst), ".logo-*")
	if err != nil {
		return err
	}
	if _, err := io.Copy(tmp, r); err != nil {
		tmp.Close()
		os.Remove(tmp.Name())
		return err
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmp.Name())
		return err
	}
	return os.Rename(tmp.Name(), dst)
}
