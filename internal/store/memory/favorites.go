package memory

import (
	"context"
	"sync"
	"time"
)

// FavoritesStore keeps favorites in process memory.
// It is used when Redis is not configured; contents are lost on restart.
type FavoritesStore struct {
	mu        sync.RWMutex
	order     []string            // insertion order
	members   map[string]struct{} // domain -> present
	updatedAt time.Time           // Timestamp of last mutation
}

// NewFavoritesStore creates an empty store
func NewFavoritesStore() *FavoritesStore {
	return &FavoritesStore{
		members: make(map[string]struct{}),
	}
}

// Add appends domain unless already present
func (s *FavoritesStore) Add(_ context.Context, domain string) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.members[domain]; ok {
		return false, nil
	}
	s.members[domain] = struct{}{}
	s.order = append(s.order, domain)
	s.updatedAt = time.Now()
	return true, nil
}

// Remove deletes domain if present
func (s *FavoritesStore) Remove(_ context.Context, domain string) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.members[domain]; !ok {
		return false, nil
	}
	delete(s.members, domain)
	for i, d := range s.order {
		if d == domain {
			s.order = append(s.order[:i], s.order[i+1:]...)
			break
		}
	}
	s.updatedAt = time.Now()
	return true, nil
}

// List returns a snapshot copy in insertion order
func (s *FavoritesStore) List(_ context.Context) ([]string, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]string, len(s.order))
	copy(out, s.order)
	return out, nil
}

// Count returns the number of favorites
func (s *FavoritesStore) Count() int {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return len(s.order)
}

// UpdatedAt returns the timestamp of the last mutation
func (s *FavoritesStore) UpdatedAt() time.Time {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return s.updatedAt
}

func (s *FavoritesStore) Backend() string { return "memory" }
