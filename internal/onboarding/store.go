// Package onboarding persists per-user setup drafts in redis.
package onboarding

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"wedplan/internal/model"
)

// ProgressTTL is how long a draft survives without being touched.
const ProgressTTL = 7 * 24 * time.Hour

const keyPrefix = "onboarding:"

// Cache is the subset of the redis client the store needs.
type Cache interface {
	Get(ctx context.Context, key string) ([]byte, error)
	Set(ctx context.Context, key string, value []byte, ttl time.Duration) error
	Delete(ctx context.Context, key string) error
}

// Store reads and writes onboarding drafts. Every Put refreshes the TTL, so
// abandoned drafts expire on their own.
type Store struct {
	cache Cache
}

// NewStore creates a draft store over the given cache.
func NewStore(cache Cache) *Store {
	return &Store{cache: cache}
}

func key(userID uint) string {
	return fmt.Sprintf("%s%d", keyPrefix, userID)
}

// Get returns the user's draft, or nil when none exists (or it expired).
func (s *Store) Get(ctx context.Context, userID uint) (*model.OnboardingProgress, error) {
	data, err := s.cache.Get(ctx, key(userID))
	if err != nil || data == nil {
		return nil, err
	}

	var progress model.OnboardingProgress
	if err := json.Unmarshal(data, &progress); err != nil {
		return nil, fmt.Errorf("unmarshal onboarding progress: %w", err)
	}
	return &progress, nil
}

// Put upserts the draft and resets its expiry.
func (s *Store) Put(ctx context.Context, userID uint, progress *model.OnboardingProgress) error {
	progress.UpdatedAt = time.Now().UTC()
	payload, err := json.Marshal(progress)
	if err != nil {
		return fmt.Errorf("marshal onboarding progress: %w", err)
	}
	return s.cache.Set(ctx, key(userID), payload, ProgressTTL)
}

// Delete drops the draft.
func (s *Store) Delete(ctx context.Context, userID uint) error {
	return s.cache.Delete(ctx, key(userID))
}
