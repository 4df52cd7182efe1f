package onboarding

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"wedplan/internal/model"
)

// fakeCache is an in-memory Cache that records the last TTL it was given.
type fakeCache struct {
	data    map[string][]byte
	lastTTL time.Duration
}

func newFakeCache() *fakeCache {
	return &fakeCache{data: make(map[string][]byte)}
}

func (f *fakeCache) Get(ctx context.Context, key string) ([]byte, error) {
	return f.data[key], nil
}

func (f *fakeCache) Set(ctx context.Context, key string, value []byte, ttl time.Duration) error {
	f.data[key] = value
	f.lastTTL = ttl
	return nil
}

func (f *fakeCache) Delete(ctx context.Context, key string) error {
	delete(f.data, key)
	return nil
}

func TestStore_GetMissingDraft(t *testing.T) {
	store := NewStore(newFakeCache())

	progress, err := store.Get(context.Background(), 1)

	assert.NoError(t, err)
	assert.Nil(t, progress)
}

func TestStore_PutAndGetRoundTrip(t *testing.T) {
	cache := newFakeCache()
	store := NewStore(cache)
	ctx := context.Background()

	draft := &model.OnboardingProgress{
		Step: 2,
		Couple: model.OnboardingCouple{
			PartnerOneName:  "Sam",
			PartnerTwoName:  "Alex",
			PartnerTwoEmail: "alex@example.com",
		},
		Wedding: model.OnboardingWedding{Title: "Big Day", Location: "Lisbon"},
	}

	assert.NoError(t, store.Put(ctx, 1, draft))
	assert.Equal(t, ProgressTTL, cache.lastTTL)
	assert.False(t, draft.UpdatedAt.IsZero())

	loaded, err := store.Get(ctx, 1)
	assert.NoError(t, err)
	assert.Equal(t, 2, loaded.Step)
	assert.Equal(t, "Alex", loaded.Couple.PartnerTwoName)
	assert.Equal(t, "Big Day", loaded.Wedding.Title)

	// drafts are keyed per user
	other, err := store.Get(ctx, 2)
	assert.NoError(t, err)
	assert.Nil(t, other)
}

func TestStore_PutRefreshesTTL(t *testing.T) {
	cache := newFakeCache()
	store := NewStore(cache)
	ctx := context.Background()

	draft := &model.OnboardingProgress{Step: 1}
	assert.NoError(t, store.Put(ctx, 1, draft))
	cache.lastTTL = 0

	draft.Step = 2
	assert.NoError(t, store.Put(ctx, 1, draft))
	assert.Equal(t, ProgressTTL, cache.lastTTL)
}

func TestStore_Delete(t *testing.T) {
	cache := newFakeCache()
	store := NewStore(cache)
	ctx := context.Background()

	assert.NoError(t, store.Put(ctx, 1, &model.OnboardingProgress{Step: 1}))
	assert.NoError(t, store.Delete(ctx, 1))

	progress, err := store.Get(ctx, 1)
	assert.NoError(t, err)
	assert.Nil(t, progress)
}
