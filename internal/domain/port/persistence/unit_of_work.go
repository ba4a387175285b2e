package persistence

import (
	"context"
)

// UnitOfWork defines an interface for coordinating multi-repository writes
// inside one database transaction
type UnitOfWork interface {
	// Begin starts a new transaction and returns a transactional context
	Begin(ctx context.Context) (context.Context, error)

	// Commit commits the transaction in the given context
	Commit(ctx context.Context) error

	// Rollback rolls back the transaction in the given context
	Rollback(ctx context.Context) error

	// GetProfileRepository returns a profile repository bound to the current transaction
	GetProfileRepository(ctx context.Context) ProfileRepository

	// GetUserAssetRepository returns an ownership repository bound to the current transaction
	GetUserAssetRepository(ctx context.Context) UserAssetRepository

	// GetStepLogRepository returns a step log repository bound to the current transaction
	GetStepLogRepository(ctx context.Context) StepLogRepository
}
