package schedule

import (
	"errors"
	"time"
)

// ErrInvalidInterval is returned for negative intervals. Intervals are
// never clamped silently.
var ErrInvalidInterval = errors.New("invalid interval")

// NextDue computes the due date following a completion.
//
// For intervalDays > 0 the next due date is completedAt plus intervalDays
// calendar days (AddDate, so month and year boundaries roll over
// correctly). For intervalDays == 0 the task is one-time and prevDue is
// returned unchanged; deciding whether to deactivate the task is the
// caller's job.
func NextDue(intervalDays int, completedAt, prevDue time.Time) (time.Time, error) {
	if intervalDays < 0 {
		return time.Time{}, ErrInvalidInterval
	}
	if intervalDays == 0 {
		return prevDue, nil
	}
	return completedAt.AddDate(0, 0, intervalDays), nil
}
