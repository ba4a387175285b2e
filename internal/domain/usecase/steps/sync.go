package steps

import (
	"context"
	"errors"

	"github.com/stepexplorer/server/internal/domain/auth"
	"github.com/stepexplorer/server/internal/domain/entity"
	errs "github.com/stepexplorer/server/internal/domain/error"
	coreport "github.com/stepexplorer/server/internal/domain/port/core"
	"github.com/stepexplorer/server/internal/domain/port/persistence"
)

// DefaultStepsPerCoin is the earn rate used when configuration carries none
const DefaultStepsPerCoin int64 = 10

// SyncResult reports what one step sync changed
type SyncResult struct {
	Date        string
	StepsDelta  int64
	CoinsEarned int64
	TotalSteps  int64
	NewBalance  int64
}

// Syncer records device-reported daily step totals. One StepLog row per
// (user, day), maintained via upsert. The read, upsert, and profile credit
// run in one transaction, so the delta is computed against a baseline no
// concurrent sync can move.
type Syncer struct {
	uow          persistence.UnitOfWork
	stepsPerCoin int64
	timeProvider coreport.TimeProvider
	logger       coreport.Logger
}

// NewSyncer creates a step syncer with the given earn rate (steps per coin)
func NewSyncer(
	uow persistence.UnitOfWork,
	stepsPerCoin int64,
	timeProvider coreport.TimeProvider,
	logger coreport.Logger,
) *Syncer {
	if stepsPerCoin <= 0 {
		stepsPerCoin = DefaultStepsPerCoin
	}
	return &Syncer{
		uow:          uow,
		stepsPerCoin: stepsPerCoin,
		timeProvider: timeProvider,
		logger:       logger,
	}
}

// Sync processes one device report of today's step total. The health data
// provider is an external input; this only upserts the resulting StepLog and
// increments the profile's steps and coins.
func (s *Syncer) Sync(ctx context.Context, sess *auth.Session, reportedSteps int64) (*SyncResult, error) {
	if err := sess.Validate(); err != nil {
		return nil, err
	}
	if reportedSteps < 0 {
		return nil, errs.ErrInvalidSteps
	}

	today := s.timeProvider.Now().Format(entity.DateLayout)

	txCtx, err := s.uow.Begin(ctx)
	if err != nil {
		return nil, err
	}
	// Safe after Commit: a finished transaction is tolerated
	defer func() { _ = s.uow.Rollback(txCtx) }()

	stepLogRepo := s.uow.GetStepLogRepository(txCtx)
	profileRepo := s.uow.GetProfileRepository(txCtx)

	// Devices report running daily totals, so only the positive delta over
	// what was already logged is credited.
	delta := reportedSteps
	existing, err := stepLogRepo.GetByUserAndDate(txCtx, sess.UserID, today)
	if err != nil && !errors.Is(err, errs.ErrNotFound) {
		return nil, err
	}
	if existing != nil {
		delta = existing.Delta(reportedSteps)
	}

	result := &SyncResult{Date: today}

	// A lower or equal report changes nothing. Rewriting the row here would
	// reset the credited baseline, letting a later re-report of the same
	// total earn the steps a second time.
	if delta == 0 {
		profile, err := profileRepo.GetByID(txCtx, sess.UserID)
		if err != nil {
			return nil, err
		}
		result.TotalSteps = profile.Steps
		result.NewBalance = profile.Coins()
		return result, nil
	}

	log, err := entity.NewStepLog(sess.UserID, reportedSteps, s.timeProvider)
	if err != nil {
		return nil, err
	}
	if err := stepLogRepo.UpsertDaily(txCtx, log); err != nil {
		s.logger.Error("Failed to upsert step log", map[string]any{
			"user_id": sess.UserID,
			"date":    today,
			"error":   err.Error(),
		})
		return nil, err
	}

	coinsEarned := delta / s.stepsPerCoin
	profile, err := profileRepo.AddStepsAndCoins(txCtx, sess.UserID, delta, coinsEarned)
	if err != nil {
		s.logger.Error("Failed to credit steps to profile", map[string]any{
			"user_id":     sess.UserID,
			"steps_delta": delta,
			"error":       err.Error(),
		})
		return nil, err
	}

	if err := s.uow.Commit(txCtx); err != nil {
		return nil, err
	}

	s.logger.Info("Step sync recorded", map[string]any{
		"user_id":      sess.UserID,
		"date":         today,
		"steps_delta":  delta,
		"coins_earned": coinsEarned,
	})

	result.StepsDelta = delta
	result.CoinsEarned = coinsEarned
	result.TotalSteps = profile.Steps
	result.NewBalance = profile.Coins()
	return result, nil
}
