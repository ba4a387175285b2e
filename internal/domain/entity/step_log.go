package entity

import (
	"time"

	errs "github.com/stepexplorer/server/internal/domain/error"
	coreport "github.com/stepexplorer/server/internal/domain/port/core"
)

// DateLayout is the calendar-day format used for step log keys
const DateLayout = "2006-01-02"

// StepLog represents a per-user, per-calendar-day step count. At most one row
// exists per (user, date); the repository maintains the invariant with an
// upsert on the conflict key.
type StepLog struct {
	ID        string    // UUID of the log row
	UserID    string    // Owning user
	Steps     int64     // Step total reported for the day
	Date      string    // Calendar day, formatted with DateLayout
	CreatedAt time.Time // When the row was first created
}

// NewStepLog creates a step log for the given user and day
func NewStepLog(userID string, steps int64, timeProvider coreport.TimeProvider) (*StepLog, error) {
	if userID == "" {
		return nil, errs.ErrInvalidUserID
	}
	if steps < 0 {
		return nil, errs.ErrInvalidSteps
	}

	now := timeProvider.Now()
	return &StepLog{
		UserID:    userID,
		Steps:     steps,
		Date:      now.Format(DateLayout),
		CreatedAt: now,
	}, nil
}

// Delta returns the positive difference between a newly reported daily total
// and this log's recorded total. Devices report running totals, so a lower or
// equal report credits nothing.
func (l *StepLog) Delta(reported int64) int64 {
	if reported <= l.Steps {
		return 0
	}
	return reported - l.Steps
}
