package redis

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

// Store handles Redis operations for favorites
type Store struct {
	client *redis.Client
	now    func() time.Time
}

// NewStore creates a new Redis store
func NewStore(client *redis.Client) *Store {
	return &Store{
		client: client,
		now:    time.Now,
	}
}

// Add inserts a favorite, keeping the original position if it already exists
func (s *Store) Add(ctx context.Context, domain string) (bool, error) {
	// Microseconds stay exact in a float64 score.
	n, err := s.client.ZAddNX(ctx, FavoritesKey(), redis.Z{
		Score:  float64(s.now().UnixMicro()),
		Member: domain,
	}).Result()
	if err != nil {
		return false, fmt.Errorf("failed to add favorite: %w", err)
	}
	return n == 1, nil
}

// Remove deletes a favorite
func (s *Store) Remove(ctx context.Context, domain string) (bool, error) {
	n, err := s.client.ZRem(ctx, FavoritesKey(), domain).Result()
	if err != nil {
		return false, fmt.Errorf("failed to remove favorite: %w", err)
	}
	return n == 1, nil
}

// List returns every favorite in insertion order
func (s *Store) List(ctx context.Context) ([]string, error) {
	domains, err := s.client.ZRange(ctx, FavoritesKey(), 0, -1).Result()
	if err != nil {
		return nil, fmt.Errorf("failed to list favorites: %w", err)
	}
	return domains, nil
}

func (s *Store) Backend() string { return "redis" }
