package tasks

import (
	"context"

	"github.com/robfig/cron/v3"

	coreport "github.com/stepexplorer/server/internal/domain/port/core"
	"github.com/stepexplorer/server/internal/domain/usecase/leaderboard"
	"github.com/stepexplorer/server/internal/infrastructure/adapter/database"
)

// LeaderboardRefresher periodically rebuilds the leaderboard cache so reads
// stay warm between user requests
type LeaderboardRefresher struct {
	aggregator   *leaderboard.Aggregator
	schedule     string
	timeout      coreport.Duration
	timeProvider coreport.TimeProvider
	logger       coreport.Logger
	cron         *cron.Cron
}

// NewLeaderboardRefresher creates a refresher running on the given cron schedule
func NewLeaderboardRefresher(
	aggregator *leaderboard.Aggregator,
	schedule string,
	timeout coreport.Duration,
	timeProvider coreport.TimeProvider,
	logger coreport.Logger,
) *LeaderboardRefresher {
	return &LeaderboardRefresher{
		aggregator:   aggregator,
		schedule:     schedule,
		timeout:      timeout,
		timeProvider: timeProvider,
		logger:       logger,
	}
}

// Start registers the refresh job and begins the scheduler
func (r *LeaderboardRefresher) Start() error {
	r.cron = cron.New()

	_, err := r.cron.AddFunc(r.schedule, r.refresh)
	if err != nil {
		return err
	}

	r.cron.Start()
	r.logger.Info("Leaderboard refresher started", map[string]any{
		"schedule": r.schedule,
	})
	return nil
}

// Stop halts the scheduler and waits for a running refresh to finish
func (r *LeaderboardRefresher) Stop() {
	if r.cron == nil {
		return
	}
	ctx := r.cron.Stop()
	<-ctx.Done()
	r.logger.Info("Leaderboard refresher stopped", nil)
}

func (r *LeaderboardRefresher) refresh() {
	ctx, cancel := r.timeProvider.WithTimeout(context.Background(), r.timeout)
	defer cancel()

	// Rebuilding the cache is idempotent, so transient read failures retry
	err := database.RetryOnTransientError(ctx, database.DefaultRetryConfig(), func() error {
		return r.aggregator.Refresh(ctx)
	}, r.logger)
	if err != nil {
		r.logger.Warn("Scheduled leaderboard refresh failed", map[string]any{
			"error": err.Error(),
		})
	}
}
