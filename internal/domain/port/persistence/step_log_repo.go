package persistence

import (
	"context"

	"github.com/stepexplorer/server/internal/domain/entity"
)

// StepLogRepository defines essential methods to interact with daily step logs
type StepLogRepository interface {
	// GetByUserAndDate retrieves the step log for one user and calendar day
	//
	// Possible errors:
	// - ErrNotFound: If no log exists for the (user, date) pair
	// - ErrDatabaseConnection: If the database cannot be reached
	GetByUserAndDate(ctx context.Context, userID, date string) (*entity.StepLog, error)

	// UpsertDaily creates or replaces the log for the (user, date) pair,
	// keyed on the unique (user_id, date) constraint. Guarantees at most one
	// row per user per day.
	//
	// Possible errors:
	// - ErrConstraintViolation: If the row violates a non-conflict constraint
	// - ErrDatabaseConnection: If the database cannot be reached
	UpsertDaily(ctx context.Context, log *entity.StepLog) error
}
