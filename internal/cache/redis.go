package cache

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/omarshaarawi/ffreport/internal/config"
)

const keyPrefix = "ffreport"

type envelope struct {
	UpdatedAt time.Time       `json:"updated_at"`
	Data      json.RawMessage `json:"data"`
}

// RedisStore keeps each entry as a JSON envelope carrying its write time.
// Entries never expire on the server; freshness is decided by the reader.
type RedisStore struct {
	client *redis.Client
	now    func() time.Time
}

func NewRedisStore(client *redis.Client) *RedisStore {
	return &RedisStore{client: client, now: time.Now}
}

// Open returns a RedisStore when an address is configured and a FileStore
// rooted at dir otherwise.
func Open(ctx context.Context, cfg config.Redis, dir string) (Store, error) {
	if cfg.Addr == "" {
		return NewFileStore(dir), nil
	}
	client := redis.NewClient(&redis.Options{
		Addr:     cfg.Addr,
		Password: cfg.Password,
		DB:       cfg.DB,
	})
	if err := client.Ping(ctx).Err(); err != nil {
		client.Close()
		return nil, fmt.Errorf("connecting to redis at %s: %w", cfg.Addr, err)
	}
	return NewRedisStore(client), nil
}

func redisKey(ns, key string) string {
	return fmt.Sprintf("%s:%s:%s", keyPrefix, ns, key)
}

func (r *RedisStore) load(ctx context.Context, ns, key string) (*envelope, error) {
	data, err := r.client.Get(ctx, redisKey(ns, key)).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, ErrMiss
	}
	if err != nil {
		return nil, fmt.Errorf("reading %s/%s from redis: %w", ns, key, err)
	}
	var env envelope
	if err := json.Unmarshal(data, &env); err != nil {
		return nil, fmt.Errorf("decoding %s/%s: %w", ns, key, err)
	}
	return &env, nil
}

func (r *RedisStore) Get(ctx context.Context, ns, key string, v interface{}) error {
	env, err := r.load(ctx, ns, key)
	if err != nil {
		return err
	}
	if err := json.Unmarshal(env.Data, v); err != nil {
		return fmt.Errorf("decoding %s/%s: %w", ns, key, err)
	}
	return nil
}

func (r *RedisStore) Set(ctx context.Context, ns, key string, v interface{}) error {
	data, err := json.Marshal(v)
	if err != nil {
		return fmt.Errorf("encoding %s/%s: %w", ns, key, err)
	}
	payload, err := json.Marshal(envelope{UpdatedAt: r.now().UTC(), Data: data})
	if err != nil {
		return fmt.Errorf("encoding %s/%s: %w", ns, key, err)
	}
	if err := r.client.Set(ctx, redisKey(ns, key), payload, 0).Err(); err != nil {
		return fmt.Errorf("writing %s/%s to redis: %w", ns, key, err)
	}
	return nil
}

func (r *RedisStore) ModTime(ctx context.Context, ns, key string) (time.Time, error) {
	env, err := r.load(ctx, ns, key)
	if err != nil {
		return time.Time{}, err
	}
	return env.UpdatedAt, nil
}

func (r *RedisStore) Close() error {
	return r.client.Close()
}
