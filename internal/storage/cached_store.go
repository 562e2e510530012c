package storage

import (
	"context"
	"log/slog"
	"time"

	"daily-planner-api/internal/cache"
)

// CachedStore is a read-through, write-through memo in front of a slower Store.
// Failed writes drop the cached entry so the next read goes to the backend.
type CachedStore struct {
	next Store
	memo *cache.Memo[string, string]
}

// NewCachedStore wraps next with a memo of the given ttl.
func NewCachedStore(next Store, ttl time.Duration) *CachedStore {
	return &CachedStore{next: next, memo: cache.NewMemo[string, string](ttl)}
}

func (s *CachedStore) Get(ctx context.Context, key string) (string, bool, error) {
	if v, present, hit := s.memo.Lookup(key); hit {
		return v, present, nil
	}
	v, ok, err := s.next.Get(ctx, key)
	if err != nil {
		return "", false, err
	}
	if ok {
		s.memo.Remember(key, v)
	} else {
		s.memo.RememberMissing(key)
	}
	return v, ok, nil
}

func (s *CachedStore) Set(ctx context.Context, key, value string) error {
	if err := s.next.Set(ctx, key, value); err != nil {
		s.memo.Forget(key)
		return err
	}
	s.memo.Remember(key, value)
	return nil
}

func (s *CachedStore) Remove(ctx context.Context, key string) error {
	if err := s.next.Remove(ctx, key); err != nil {
		s.memo.Forget(key)
		return err
	}
	s.memo.RememberMissing(key)
	return nil
}

// Sweep drops expired memo entries.
func (s *CachedStore) Sweep() int {
	return s.memo.Sweep()
}

// RunSweeper sweeps every interval until ctx is done.
func (s *CachedStore) RunSweeper(ctx context.Context, interval time.Duration, log *slog.Logger) {
	if interval <= 0 {
		return
	}
	ticker := time.NewTicker(interval)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			if dropped := s.Sweep(); dropped > 0 && log != nil {
				log.Debug("cache swept", "dropped", dropped, "live", s.memo.Len())
			}
		}
	}
}
