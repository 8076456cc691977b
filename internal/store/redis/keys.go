package redis

const (
	// KeyPrefix namespaces every key written by the service
	KeyPrefix = "brainstorm:"
	// KeyFavorites is the sorted set of favorite domains, scored by insertion time
	KeyFavorites = KeyPrefix + "favorites"
)

// FavoritesKey returns the Redis key for the favorites set
func FavoritesKey() string {
	return KeyFavorites
}
