package schedule

import (
	"time"
)

// ReminderFireDate returns the instant a reminder for nextDue should fire:
// reminderDaysBefore calendar days ahead of the due date.
func ReminderFireDate(nextDue time.Time, reminderDaysBefore int) time.Time {
	if reminderDaysBefore < 0 {
		reminderDaysBefore = 0
	}
	return nextDue.AddDate(0, 0, -reminderDaysBefore)
}

// ReminderElapsed reports whether a fire date has already passed and the
// reminder must be suppressed rather than fired immediately. Suppression
// avoids a flood of past-due notifications when reminders are recomputed
// after a long gap.
func ReminderElapsed(fireAt, now time.Time) bool {
	return !fireAt.After(now)
}
