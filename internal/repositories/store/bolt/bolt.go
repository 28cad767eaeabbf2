package bolt

import (
	"context"
	"encoding/binary"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/KirkDiggler/judgebot/internal/repositories/store"
	"go.etcd.io/bbolt"
)

// Config holds configuration for the bolt store
type Config struct {
	// Path of the database file, created if missing
	Path string

	// OpenTimeout bounds the wait for the file lock held by another process
	OpenTimeout time.Duration
}

// Store implements store.Store on a single bbolt file with one bucket per map
type Store struct {
	db *bbolt.DB
}

// Open opens (or creates) the database file and makes sure every map exists
func Open(cfg *Config) (*Store, error) {
	if cfg == nil {
		return nil, errors.New("config cannot be nil")
	}

	if cfg.Path == "" {
		return nil, errors.New("path cannot be empty")
	}

	if dir := filepath.Dir(cfg.Path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, fmt.Errorf("create store directory: %w", err)
		}
	}

	timeout := cfg.OpenTimeout
	if timeout == 0 {
		timeout = 2 * time.Second
	}

	db, err := bbolt.Open(cfg.Path, 0o600, &bbolt.Options{Timeout: timeout})
	if err != nil {
		return nil, fmt.Errorf("open bolt db: %w", err)
	}

	s := &Store{db: db}
	if err := s.ensureBuckets(); err != nil {
		_ = db.Close()
		return nil, err
	}

	return s, nil
}

func (s *Store) ensureBuckets() error {
	return s.db.Update(func(tx *bbolt.Tx) error {
		for _, name := range store.Maps {
			if _, err := tx.CreateBucketIfNotExists([]byte(name)); err != nil {
				return fmt.Errorf("create bucket %s: %w", name, err)
			}
		}
		return nil
	})
}

// Update runs fn in a bolt write transaction. Nothing fn wrote is visible on
// disk unless the final commit succeeds.
func (s *Store) Update(ctx context.Context, fn func(tx store.Tx) error) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	btx, err := s.db.Begin(true)
	if err != nil {
		if errors.Is(err, bbolt.ErrDatabaseNotOpen) {
			return store.ErrClosed
		}
		return fmt.Errorf("begin transaction: %w", err)
	}

	if err := fn(store.NewTx(resolver(btx), true)); err != nil {
		_ = btx.Rollback()
		return err
	}

	if err := btx.Commit(); err != nil {
		return fmt.Errorf("%w: %w", store.ErrCommit, err)
	}

	return nil
}

// View runs fn in a bolt read transaction
func (s *Store) View(ctx context.Context, fn func(tx store.Tx) error) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	err := s.db.View(func(btx *bbolt.Tx) error {
		return fn(store.NewTx(resolver(btx), false))
	})
	if errors.Is(err, bbolt.ErrDatabaseNotOpen) {
		return store.ErrClosed
	}
	return err
}

// Close closes the underlying database file
func (s *Store) Close() error {
	return s.db.Close()
}

func resolver(btx *bbolt.Tx) store.BucketResolver {
	return func(name store.MapName) (store.Bucket, error) {
		b := btx.Bucket([]byte(name))
		if b == nil {
			return nil, fmt.Errorf("%w: bucket %s missing", store.ErrUnknownMap, name)
		}
		return &bucket{b: b}, nil
	}
}

type bucket struct {
	b *bbolt.Bucket
}

func (b *bucket) Get(key int64) ([]byte, error) {
	v := b.b.Get(encodeKey(key))
	if v == nil {
		return nil, nil
	}
	// bolt memory is only valid for the life of the transaction
	out := make([]byte, len(v))
	copy(out, v)
	return out, nil
}

func (b *bucket) Put(key int64, value []byte) error {
	return b.b.Put(encodeKey(key), value)
}

func (b *bucket) Delete(key int64) error {
	return b.b.Delete(encodeKey(key))
}

// encodeKey keeps keys ordered numerically for non-negative IDs
func encodeKey(key int64) []byte {
	buf := make([]byte, 8)
	binary.BigEndian.PutUint64(buf, uint64(key))
	return buf
}
