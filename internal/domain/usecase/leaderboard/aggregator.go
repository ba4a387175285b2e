package leaderboard

import (
	"context"
	"fmt"
	"sync"
	"time"

	gocache "github.com/patrickmn/go-cache"
	coreport "github.com/stepexplorer/server/internal/domain/port/core"
	"github.com/stepexplorer/server/internal/domain/port/persistence"
)

// MaxEntries caps the leaderboard size. The per-user count fan-out is an N+1
// read, acceptable only while n stays this small.
const MaxEntries = 10

// DefaultAvatarURL is shown for users without an avatar
const DefaultAvatarURL = "https://assets.stepexplorer.app/default_avatar.png"

// Entry is one ranked leaderboard row
type Entry struct {
	DisplayName   string `json:"displayName"`
	AvatarURL     string `json:"avatarUrl"`
	Coins         int64  `json:"coins"`
	BuildingCount int64  `json:"buildingCount"`
}

// Aggregator builds the coin leaderboard: top-n profiles by balance with each
// user's owned-building count attached. Results are cached with a short TTL
// because the view is read far more often than balances change.
type Aggregator struct {
	profileRepo   persistence.ProfileRepository
	userAssetRepo persistence.UserAssetRepository
	cache         *gocache.Cache
	cacheTTL      time.Duration
	logger        coreport.Logger
}

// NewAggregator creates a leaderboard aggregator with the given cache TTL
func NewAggregator(
	profileRepo persistence.ProfileRepository,
	userAssetRepo persistence.UserAssetRepository,
	cacheTTL time.Duration,
	logger coreport.Logger,
) *Aggregator {
	return &Aggregator{
		profileRepo:   profileRepo,
		userAssetRepo: userAssetRepo,
		cache:         gocache.New(cacheTTL, 2*cacheTTL),
		cacheTTL:      cacheTTL,
		logger:        logger,
	}
}

// TopN returns up to n entries ordered by coin balance descending. Ties keep
// whatever order the store returned them in. Served from cache within the TTL.
func (a *Aggregator) TopN(ctx context.Context, n int) ([]Entry, error) {
	if n <= 0 || n > MaxEntries {
		n = MaxEntries
	}

	cacheKey := fmt.Sprintf("top:%d", n)
	if cached, found := a.cache.Get(cacheKey); found {
		if entries, ok := cached.([]Entry); ok {
			a.logger.Debug("Leaderboard served from cache", map[string]any{
				"n": n,
			})
			return entries, nil
		}
	}

	entries, err := a.build(ctx, n)
	if err != nil {
		return nil, err
	}

	a.cache.Set(cacheKey, entries, a.cacheTTL)
	return entries, nil
}

// Refresh rebuilds the cached default leaderboard. Called by the background
// warm task so most requests never hit the fan-out.
func (a *Aggregator) Refresh(ctx context.Context) error {
	entries, err := a.build(ctx, MaxEntries)
	if err != nil {
		return err
	}
	a.cache.Set(fmt.Sprintf("top:%d", MaxEntries), entries, a.cacheTTL)
	return nil
}

// build fetches the top profiles and fans out one count query per user.
// Counts are dispatched concurrently and joined before merging; the merge
// preserves the coins-descending order of the profile query.
func (a *Aggregator) build(ctx context.Context, n int) ([]Entry, error) {
	profiles, err := a.profileRepo.TopByCoins(ctx, n)
	if err != nil {
		a.logger.Error("Failed to fetch top profiles", map[string]any{
			"n":     n,
			"error": err.Error(),
		})
		return nil, err
	}

	entries := make([]Entry, len(profiles))
	countErrs := make([]error, len(profiles))
	var wg sync.WaitGroup

	for i, profile := range profiles {
		avatar := DefaultAvatarURL
		if profile.AvatarURL != nil && *profile.AvatarURL != "" {
			avatar = *profile.AvatarURL
		}
		entries[i] = Entry{
			DisplayName: profile.LeaderboardName(),
			AvatarURL:   avatar,
			Coins:       profile.Coins(),
		}

		wg.Add(1)
		go func(i int, userID string) {
			defer wg.Done()
			count, err := a.userAssetRepo.CountByUser(ctx, userID)
			if err != nil {
				countErrs[i] = err
				return
			}
			entries[i].BuildingCount = count
		}(i, profile.ID)
	}
	wg.Wait()

	for _, err := range countErrs {
		if err != nil {
			a.logger.Error("Failed to count owned assets for leaderboard", map[string]any{
				"error": err.Error(),
			})
			return nil, err
		}
	}

	a.logger.Debug("Leaderboard built", map[string]any{
		"entries": len(entries),
	})

	return entries, nil
}
