// Package cache provides the image/description stores: an in-memory TTL
// cache for development and a Redis-backed store for deployment.
package cache

import (
	"context"
	"sync"
	"time"

	"tweetshot/internal/domain"
)

// MemoryStore is an in-memory store with TTL support.
type MemoryStore struct {
	images       sync.Map
	descriptions sync.Map
	ttl          time.Duration
}

// entry holds a cached value with expiration metadata.
type entry struct {
	value     any
	expiresAt time.Time
}

// NewMemoryStore creates a new in-memory store with the specified TTL.
func NewMemoryStore(ttl time.Duration) *MemoryStore {
	store := &MemoryStore{ttl: ttl}
	go store.cleanup()
	return store
}

// SetImage stores PNG bytes under the image ID.
func (s *MemoryStore) SetImage(ctx context.Context, id string, png []byte) error {
	s.images.Store(id, &entry{value: png, expiresAt: time.Now().Add(s.ttl)})
	return nil
}

// GetImage retrieves PNG bytes by image ID.
// Returns domain.ErrImageNotFound if absent or expired.
func (s *MemoryStore) GetImage(ctx context.Context, id string) ([]byte, error) {
	value, ok := s.images.Load(id)
	if !ok {
		return nil, domain.ErrImageNotFound
	}

	e := value.(*entry)
	if time.Now().After(e.expiresAt) {
		s.images.Delete(id)
		return nil, domain.ErrImageNotFound
	}

	return e.value.([]byte), nil
}

// SetDescription stores the tweet description under the image ID.
func (s *MemoryStore) SetDescription(ctx context.Context, id string, desc domain.TweetDescription) error {
	s.descriptions.Store(id, &entry{value: desc, expiresAt: time.Now().Add(s.ttl)})
	return nil
}

// GetDescription retrieves the tweet description by image ID.
func (s *MemoryStore) GetDescription(ctx context.Context, id string) (domain.TweetDescription, error) {
	value, ok := s.descriptions.Load(id)
	if !ok {
		return domain.TweetDescription{}, domain.ErrImageNotFound
	}

	e := value.(*entry)
	if time.Now().After(e.expiresAt) {
		s.descriptions.Delete(id)
		return domain.TweetDescription{}, domain.ErrImageNotFound
	}

	return e.value.(domain.TweetDescription), nil
}

// cleanup periodically removes expired entries.
func (s *MemoryStore) cleanup() {
	ticker := time.NewTicker(1 * time.Minute)
	for range ticker.C {
		now := time.Now()
		for _, m := range []*sync.Map{&s.images, &s.descriptions} {
			m.Range(func(key, value any) bool {
				if now.After(value.(*entry).expiresAt) {
					m.Delete(key)
				}
				return true
			})
		}
	}
}
