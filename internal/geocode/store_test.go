package geocode

import (
	"context"
	"testing"

	"github.com/alicebob/miniredis/v2"
	"github.com/stretchr/testify/assert"

	"donorlink/internal/cache"
)

func TestStore_PutGet(t *testing.T) {
	mr := miniredis.RunT(t)
	store := NewStore(cache.New(mr.Addr(), "", 0))

	ctx := context.Background()
	coords := Coordinates{Lat: 39.799, Lng: -89.644}

	_, ok := store.Get(ctx, "1MainStSpringfield62701")
	assert.False(t, ok)

	store.Put(ctx, "1MainStSpringfield62701", coords)

	got, ok := store.Get(ctx, "1MainStSpringfield62701")
	assert.True(t, ok)
	assert.Equal(t, coords, got)
}

func TestStore_FailsSafeWhenRedisDown(t *testing.T) {
	mr := miniredis.RunT(t)
	store := NewStore(cache.New(mr.Addr(), "", 0))
	mr.Close()

	ctx := context.Background()
	store.Put(ctx, "key", Coordinates{Lat: 1, Lng: 2})

	_, ok := store.Get(ctx, "key")
	assert.False(t, ok)
}
