package geocode

import (
	"context"
	"encoding/json"
	"time"

	"donorlink/internal/cache"
)

const (
	coordsKeyPrefix = "geocode:"
	coordsTTL       = 24 * time.Hour
)

// Store caches resolved coordinates in Redis, keyed by the normalized lookup
// query. Street addresses do not move, so entries carry a long TTL. All
// operations fail safe: a cache problem degrades to a provider lookup.
type Store struct {
	cache *cache.Client
}

// NewStore creates a coordinate store.
func NewStore(cache *cache.Client) *Store {
	return &Store{cache: cache}
}

// Get returns cached coordinates for the query, if present.
func (s *Store) Get(ctx context.Context, query string) (Coordinates, bool) {
	data, err := s.cache.Get(ctx, coordsKeyPrefix+query)
	if err != nil || data == nil {
		return Coordinates{}, false
	}

	var coords Coordinates
	if err := json.Unmarshal(data, &coords); err != nil {
		return Coordinates{}, false
	}
	return coords, true
}

// Put stores resolved coordinates for the query.
func (s *Store) Put(ctx context.Context, query string, coords Coordinates) {
	payload, err := json.Marshal(coords)
	if err != nil {
		return
	}
	_ = s.cache.Set(ctx, coordsKeyPrefix+query, payload, coordsTTL)
}
