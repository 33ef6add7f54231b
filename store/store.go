package store

import (
	"errors"
	"sync"
)

// Persisted key layout, kept compatible with the browser build this
// backend replaces.
const (
	KeyUsers    = "catering_users"
	KeyProducts = "catering_products"
	KeyOrders   = "catering_orders"
	KeySession  = "catering_current_user"

	cartKeyPrefix = "cart_"
)

// CartKey returns the per-user cart key.
func CartKey(userID string) string { return cartKeyPrefix + userID }

var (
	ErrNotFound      = errors.New("store: document not found")
	ErrUnsupportedOp = errors.New("store: unsupported operator")
)

// Store wraps a KV with a per-key lock table so every read-modify-write of
// a collection is serialized against other writers of the same key. Within
// one collection, operations therefore resolve in call order.
type Store struct {
	kv    KV
	mu    sync.Mutex
	locks map[string]*sync.Mutex
}

func New(kv KV) *Store {
	return &Store{kv: kv, locks: make(map[string]*sync.Mutex)}
}

func (s *Store) lock(key string) *sync.Mutex {
	s.mu.Lock()
	defer s.mu.Unlock()
	l, ok := s.locks[key]
	if !ok {
		l = &sync.Mutex{}
		s.locks[key] = l
	}
	return l
}
