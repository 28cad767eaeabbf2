package redis

import (
	"context"
	"errors"
	"fmt"
	"strconv"

	"github.com/KirkDiggler/judgebot/internal/repositories/store"
	"github.com/redis/go-redis/v9"
)

// Config holds configuration for the Redis store
type Config struct {
	// Redis client
	RedisClient *redis.Client

	// KeyPrefix is prepended to every map's hash key
	KeyPrefix string
}

// redisStore implements store.Store with one Redis hash per map. Writes made
// inside Update are buffered and committed in a single WATCH/MULTI/EXEC.
type redisStore struct {
	client *redis.Client
	prefix string
}

// NewRedis creates a new Redis-backed store
func NewRedis(cfg *Config) (*redisStore, error) {
	// Validate config
	if cfg == nil {
		return nil, errors.New("config cannot be nil")
	}

	if cfg.RedisClient == nil {
		return nil, errors.New("redis client cannot be nil")
	}

	// Test connection
	if err := cfg.RedisClient.Ping(context.Background()).Err(); err != nil {
		return nil, fmt.Errorf("failed to connect to Redis: %w", err)
	}

	return &redisStore{
		client: cfg.RedisClient,
		prefix: cfg.KeyPrefix,
	}, nil
}

func (r *redisStore) hashKey(name store.MapName) string {
	return r.prefix + string(name)
}

// maxUpdateAttempts bounds retries when another writer touches a watched map
const maxUpdateAttempts = 5

// callbackError carries an error returned by the caller's function through
// Watch so it is not mistaken for a commit failure.
type callbackError struct {
	err error
}

func (e *callbackError) Error() string { return e.err.Error() }
func (e *callbackError) Unwrap() error { return e.err }

// Update buffers fn's writes and commits them atomically. Every map is
// WATCHed, so a concurrent writer aborts the commit and fn runs again
// against fresh data.
func (r *redisStore) Update(ctx context.Context, fn func(tx store.Tx) error) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	keys := make([]string, 0, len(store.Maps))
	for _, name := range store.Maps {
		keys = append(keys, r.hashKey(name))
	}

	var err error
	for attempt := 0; attempt < maxUpdateAttempts; attempt++ {
		err = r.client.Watch(ctx, func(rtx *redis.Tx) error {
			return r.runUpdate(ctx, rtx, fn)
		}, keys...)
		if !errors.Is(err, redis.TxFailedErr) {
			break
		}
	}

	var cbErr *callbackError
	switch {
	case err == nil:
		return nil
	case errors.As(err, &cbErr):
		return cbErr.err
	default:
		return fmt.Errorf("%w: %w", store.ErrCommit, err)
	}
}

func (r *redisStore) runUpdate(ctx context.Context, rtx *redis.Tx, fn func(tx store.Tx) error) error {
	pending := newOverlay()
	resolve := func(name store.MapName) (store.Bucket, error) {
		return &bucket{ctx: ctx, client: rtx, key: r.hashKey(name), writes: pending.forMap(name)}, nil
	}

	if err := fn(store.NewTx(resolve, true)); err != nil {
		return &callbackError{err: err}
	}

	if pending.empty() {
		return nil
	}

	_, err := rtx.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
		for name, writes := range pending.maps {
			key := r.hashKey(name)
			for field, w := range writes {
				if w.deleted {
					pipe.HDel(ctx, key, formatField(field))
				} else {
					pipe.HSet(ctx, key, formatField(field), w.value)
				}
			}
		}
		return nil
	})
	return err
}

// View runs fn against the committed state
func (r *redisStore) View(ctx context.Context, fn func(tx store.Tx) error) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	resolve := func(name store.MapName) (store.Bucket, error) {
		return &bucket{ctx: ctx, client: r.client, key: r.hashKey(name)}, nil
	}
	return fn(store.NewTx(resolve, false))
}

// Close closes the Redis connection
func (r *redisStore) Close() error {
	return r.client.Close()
}

type pendingWrite struct {
	value   []byte
	deleted bool
}

type overlay struct {
	maps map[store.MapName]map[int64]*pendingWrite
}

func newOverlay() *overlay {
	return &overlay{maps: make(map[store.MapName]map[int64]*pendingWrite)}
}

func (o *overlay) forMap(name store.MapName) map[int64]*pendingWrite {
	m, ok := o.maps[name]
	if !ok {
		m = make(map[int64]*pendingWrite)
		o.maps[name] = m
	}
	return m
}

func (o *overlay) empty() bool {
	for _, m := range o.maps {
		if len(m) > 0 {
			return false
		}
	}
	return true
}

type bucket struct {
	ctx    context.Context
	client redis.Cmdable
	key    string
	// writes is nil for read-only transactions
	writes map[int64]*pendingWrite
}

func (b *bucket) Get(key int64) ([]byte, error) {
	if w, ok := b.writes[key]; ok {
		if w.deleted {
			return nil, nil
		}
		return w.value, nil
	}

	value, err := b.client.HGet(b.ctx, b.key, formatField(key)).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, nil
		}
		return nil, err
	}
	if value == nil {
		value = []byte{}
	}
	return value, nil
}

func (b *bucket) Put(key int64, value []byte) error {
	if b.writes == nil {
		return store.ErrReadOnly
	}
	b.writes[key] = &pendingWrite{value: value}
	return nil
}

func (b *bucket) Delete(key int64) error {
	if b.writes == nil {
		return store.ErrReadOnly
	}
	b.writes[key] = &pendingWrite{deleted: true}
	return nil
}

func formatField(key int64) string {
	return strconv.FormatInt(key, 10)
}
