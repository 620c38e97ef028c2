package line

import (
	"context"
	"fmt"
	"time"

	"github.com/patrickmn/go-cache"
)

// ProfileFetcher loads a user profile from the LINE API.
type ProfileFetcher interface {
	GetProfile(ctx context.Context, userID string) (*Profile, error)
}

// ProfileCache caches display names looked up through the profile API.
type ProfileCache struct {
	cache   *cache.Cache
	fetcher ProfileFetcher
}

// NewProfileCache creates a new profile cache instance.
func NewProfileCache(defaultExpiration, cleanupInterval time.Duration, fetcher ProfileFetcher) *ProfileCache {
	return &ProfileCache{
		cache:   cache.New(defaultExpiration, cleanupInterval),
		fetcher: fetcher,
	}
}

// DisplayName returns the display name of userID, calling the profile API on a cache miss.
// Failed lookups are not cached.
func (p *ProfileCache) DisplayName(ctx context.Context, userID string) (string, error) {
	if name, found := p.cache.Get(userID); found {
		return name.(string), nil
	}

	profile, err := p.fetcher.GetProfile(ctx, userID)
	if err != nil {
		return "", fmt.Errorf("failed to get profile: %w", err)
	}
	p.cache.SetDefault(userID, profile.DisplayName)
	return profile.DisplayName, nil
}
