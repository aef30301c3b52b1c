package session

import (
	"fmt"
	"time"

	"github.com/patrickmn/go-cache"
)

// cacheStore is an scs.Store (and scs.IterableStore) kept in a go-cache.
type cacheStore struct {
	items *cache.Cache
}

func newCacheStore(cleanupInterval time.Duration) *cacheStore {
	return &cacheStore{items: cache.New(cache.NoExpiration, cleanupInterval)}
}

func (s *cacheStore) Find(token string) ([]byte, bool, error) {
	v, found := s.items.Get(token)
	if !found {
		return nil, false, nil
	}
	b, ok := v.([]byte)
	if !ok {
		return nil, false, fmt.Errorf("session store: unexpected value %T for token", v)
	}
	return b, true, nil
}

func (s *cacheStore) Commit(token string, b []byte, expiry time.Time) error {
	ttl := time.Until(expiry)
	if ttl <= 0 {
		s.items.Delete(token)
		return nil
	}
	s.items.Set(token, b, ttl)
	return nil
}

func (s *cacheStore) Delete(token string) error {
	s.items.Delete(token)
	return nil
}

func (s *cacheStore) All() (map[string][]byte, error) {
	items := s.items.Items()
	out := make(map[string][]byte, len(items))
	for token, item := range items {
		if b, ok := item.Object.([]byte); ok {
			out[token] = b
		}
	}
	return out, nil
}
