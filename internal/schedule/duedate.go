// Package schedule holds the maintenance scheduling rules: due-status
// calculation, recurrence, reminder derivation, and template expansion.
// Every function takes "now" explicitly; nothing here reads the system
// clock or performs I/O.
package schedule

import (
	"time"
)

// DefaultDueSoonWindowDays is the lookahead used to flag upcoming tasks
// when the caller does not supply a window.
const DefaultDueSoonWindowDays = 7

type DueStatus string

const (
	StatusOverdue  DueStatus = "overdue"
	StatusDueSoon  DueStatus = "due_soon"
	StatusUpcoming DueStatus = "upcoming"
)

// IsOverdue reports whether due is strictly before now.
func IsOverdue(due, now time.Time) bool {
	return due.Before(now)
}

// IsDueSoon reports whether due falls strictly inside (now, now+window).
// Overdue dates are never due-soon; the two predicates are mutually
// exclusive by construction.
func IsDueSoon(due, now time.Time, windowDays int) bool {
	if windowDays <= 0 {
		windowDays = DefaultDueSoonWindowDays
	}
	threshold := now.AddDate(0, 0, windowDays)
	return due.After(now) && due.Before(threshold)
}

// Status resolves a due date to exactly one of overdue / due-soon /
// upcoming. Check order matters: overdue wins.
func Status(due, now time.Time, windowDays int) DueStatus {
	if IsOverdue(due, now) {
		return StatusOverdue
	}
	if IsDueSoon(due, now, windowDays) {
		return StatusDueSoon
	}
	return StatusUpcoming
}

// DaysUntilDue returns the signed calendar-day difference between due and
// now: negative when overdue, zero when due the same calendar day.
// Dates are compared by their components, so DST days of 23 or 25 hours
// still count as exactly one day.
func DaysUntilDue(due, now time.Time) int {
	return int(utcDate(due).Sub(utcDate(now)) / (24 * time.Hour))
}

func utcDate(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}
