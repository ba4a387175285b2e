package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/stepexplorer/server/internal/domain/entity"
	errs "github.com/stepexplorer/server/internal/domain/error"
	coreport "github.com/stepexplorer/server/internal/domain/port/core"
	"github.com/stepexplorer/server/internal/infrastructure/adapter/model"
)

// StepLogRepository persists daily step totals
type StepLogRepository struct {
	db              *gorm.DB
	logger          coreport.Logger
	timeProvider    coreport.TimeProvider
	errorClassifier *ErrorClassifier
}

// NewStepLogRepository creates a new step log repository
func NewStepLogRepository(db *gorm.DB, logger coreport.Logger, timeProvider coreport.TimeProvider) *StepLogRepository {
	return &StepLogRepository{
		db:              db,
		logger:          logger,
		timeProvider:    timeProvider,
		errorClassifier: NewErrorClassifier(),
	}
}

func stepLogModelToEntity(m *model.StepLog) *entity.StepLog {
	return &entity.StepLog{
		ID:        m.ID,
		UserID:    m.UserID,
		Steps:     m.Steps,
		Date:      m.Date,
		CreatedAt: m.CreatedAt,
	}
}

func (r *StepLogRepository) handleDatabaseError(err error, operation string) error {
	if err == nil {
		return nil
	}

	r.logger.Error("Database operation failed", map[string]any{
		"operation": operation,
		"error":     err.Error(),
	})

	switch {
	case r.errorClassifier.IsLockError(err):
		return errs.ErrProfileLocked
	case r.errorClassifier.IsConnectionError(err):
		return fmt.Errorf("%w: %v", errs.ErrDatabaseConnection, err)
	case r.errorClassifier.IsConstraintError(err):
		return fmt.Errorf("%w: %v", errs.ErrConstraintViolation, err)
	default:
		return fmt.Errorf("%w: %v", errs.ErrInternalServer, err)
	}
}

// GetByUserAndDate retrieves the step log for a user on a calendar day
func (r *StepLogRepository) GetByUserAndDate(ctx context.Context, userID string, date string) (*entity.StepLog, error) {
	var logModel model.StepLog
	err := r.db.WithContext(ctx).
		First(&logModel, "user_id = ? AND date = ?", userID, date).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.ErrNotFound
		}
		return nil, r.handleDatabaseError(err, "get_step_log")
	}
	return stepLogModelToEntity(&logModel), nil
}

// UpsertDaily writes the daily total for (user, date), creating the row on
// first report and overwriting the step count on subsequent ones
func (r *StepLogRepository) UpsertDaily(ctx context.Context, stepLog *entity.StepLog) error {
	logModel := model.StepLog{
		ID:        stepLog.ID,
		UserID:    stepLog.UserID,
		Date:      stepLog.Date,
		Steps:     stepLog.Steps,
		CreatedAt: stepLog.CreatedAt,
	}
	if logModel.ID == "" {
		logModel.ID = uuid.NewString()
	}
	if logModel.CreatedAt.IsZero() {
		logModel.CreatedAt = r.timeProvider.Now()
	}

	err := r.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "user_id"}, {Name: "date"}},
			DoUpdates: clause.AssignmentColumns([]string{"steps"}),
		}).
		Create(&logModel).Error
	if err != nil {
		return r.handleDatabaseError(err, "upsert_step_log")
	}

	stepLog.ID = logModel.ID
	return nil
}
