// Package cache stores fetched feature data and rendered digests between runs.
package cache

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"
)

var ErrMiss = errors.New("cache miss")

type Store interface {
	Get(ctx context.Context, ns, key string, v interface{}) error
	Set(ctx context.Context, ns, key string, v interface{}) error
	ModTime(ctx context.Context, ns, key string) (time.Time, error)
}

// Fresh reports whether the entry exists and was written within ttl of now.
// A non-positive ttl never expires.
func Fresh(ctx context.Context, s Store, ns, key string, ttl time.Duration, now time.Time) bool {
	mod, err := s.ModTime(ctx, ns, key)
	if err != nil {
		return false
	}
	return ttl <= 0 || now.Sub(mod) < ttl
}

// FileStore keeps one JSON file per entry under <dir>/<ns>/<key>.json.
type FileStore struct {
	dir string
}

func NewFileStore(dir string) *FileStore {
	return &FileStore{dir: dir}
}

func (f *FileStore) path(ns, key string) string {
	return filepath.Join(f.dir, ns, key+".json")
}

func (f *FileStore) Get(_ context.Context, ns, key string, v interface{}) error {
	data, err := os.ReadFile(f.path(ns, key))
	if errors.Is(err, os.ErrNotExist) {
		return ErrMiss
	}
	if err != nil {
		return fmt.Errorf("reading %s/%s: %w", ns, key, err)
	}
	if err := json.Unmarshal(data, v); err != nil {
		return fmt.Errorf("decoding %s/%s: %w", ns, key, err)
	}
	return nil
}

func (f *FileStore) Set(_ context.Context, ns, key string, v interface{}) error {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("encoding %s/%s: %w", ns, key, err)
	}
	p := f.path(ns, key)
	if err := os.MkdirAll(filepath.Dir(p), 0o755); err != nil {
		return fmt.Errorf("creating cache dir: %w", err)
	}
	tmp := p + ".tmp"
	if err := os.WriteFile(tmp, data, 0o644); err != nil {
		return fmt.Errorf("writing %s/%s: %w", ns, key, err)
	}
	return os.Rename(tmp, p)
}

func (f *FileStore) ModTime(_ context.Context, ns, key string) (time.Time, error) {
	info, err := os.Stat(f.path(ns, key))
	if errors.Is(err, os.ErrNotExist) {
		return time.Time{}, ErrMiss
	}
	if err != nil {
		return time.Time{}, err
	}
	return info.ModTime(), nil
}
