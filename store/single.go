package store

import (
	"context"
	"encoding/json"
	"fmt"
)

// Single holds one document under one key, used for the current session
// record.
type Single[T any] struct {
	store *Store
	key   string
}

func NewSingle[T any](s *Store, key string) *Single[T] {
	return &Single[T]{store: s, key: key}
}

func (s *Single[T]) Get(ctx context.Context) (T, bool, error) {
	var zero T
	l := s.store.lock(s.key)
	l.Lock()
	defer l.Unlock()

	raw, ok, err := s.store.kv.Get(ctx, s.key)
	if err != nil {
		return zero, false, fmt.Errorf("store: load %s: %w", s.key, err)
	}
	if !ok || len(raw) == 0 {
		return zero, false, nil
	}
	var v T
	if err := json.Unmarshal(raw, &v); err != nil {
		return zero, false, fmt.Errorf("store: decode %s: %w", s.key, err)
	}
	return v, true, nil
}

func (s *Single[T]) Put(ctx context.Context, v T) error {
	l := s.store.lock(s.key)
	l.Lock()
	defer l.Unlock()

	raw, err := json.Marshal(v)
	if err != nil {
		return fmt.Errorf("store: encode %s: %w", s.key, err)
	}
	return s.store.kv.Put(ctx, s.key, raw)
}

func (s *Single[T]) Clear(ctx context.Context) error {
	l := s.store.lock(s.key)
	l.Lock()
	defer l.Unlock()
	return s.store.kv.Delete(ctx, s.key)
}
