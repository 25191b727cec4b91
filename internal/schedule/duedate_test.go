package schedule

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStatusPredicatesAreExclusive(t *testing.T) {
	now := time.Date(2024, 3, 15, 12, 0, 0, 0, time.UTC)

	tests := []struct {
		name     string
		due      time.Time
		expected DueStatus
	}{
		{
			name:     "Due yesterday is overdue",
			due:      now.AddDate(0, 0, -1),
			expected: StatusOverdue,
		},
		{
			name:     "Due one second ago is overdue",
			due:      now.Add(-time.Second),
			expected: StatusOverdue,
		},
		{
			name:     "Due in two days is due soon",
			due:      now.AddDate(0, 0, 2),
			expected: StatusDueSoon,
		},
		{
			name:     "Due in six days is due soon",
			due:      now.AddDate(0, 0, 6),
			expected: StatusDueSoon,
		},
		{
			name:     "Due exactly at the window edge is upcoming",
			due:      now.AddDate(0, 0, 7),
			expected: StatusUpcoming,
		},
		{
			name:     "Due in a month is upcoming",
			due:      now.AddDate(0, 1, 0),
			expected: StatusUpcoming,
		},
		{
			name:     "Due exactly now is upcoming, not overdue",
			due:      now,
			expected: StatusUpcoming,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, Status(tt.due, now, DefaultDueSoonWindowDays))

			// Never both overdue and due-soon
			if IsOverdue(tt.due, now) {
				assert.False(t, IsDueSoon(tt.due, now, DefaultDueSoonWindowDays))
			}
		})
	}
}

func TestIsDueSoonCustomWindow(t *testing.T) {
	now := time.Date(2024, 3, 15, 12, 0, 0, 0, time.UTC)
	due := now.AddDate(0, 0, 10)

	assert.False(t, IsDueSoon(due, now, 7))
	assert.True(t, IsDueSoon(due, now, 14))

	// Non-positive windows fall back to the default
	assert.True(t, IsDueSoon(now.AddDate(0, 0, 3), now, 0))
	assert.False(t, IsDueSoon(now.AddDate(0, 0, 10), now, -1))
}

func TestDaysUntilDue(t *testing.T) {
	now := time.Date(2024, 3, 15, 12, 0, 0, 0, time.UTC)

	tests := []struct {
		name     string
		due      time.Time
		expected int
	}{
		{
			name:     "Same calendar day is zero even when earlier in the day",
			due:      time.Date(2024, 3, 15, 1, 0, 0, 0, time.UTC),
			expected: 0,
		},
		{
			name:     "Tomorrow morning is one day",
			due:      time.Date(2024, 3, 16, 1, 0, 0, 0, time.UTC),
			expected: 1,
		},
		{
			name:     "Five days late is negative five",
			due:      now.AddDate(0, 0, -5),
			expected: -5,
		},
		{
			name:     "Across a month boundary",
			due:      time.Date(2024, 4, 2, 9, 0, 0, 0, time.UTC),
			expected: 18,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, DaysUntilDue(tt.due, now))
		})
	}
}

func TestDaysUntilDueAcrossDSTTransitions(t *testing.T) {
	denver, err := time.LoadLocation("America/Denver")
	require.NoError(t, err)

	// 2024-03-10 is the 23-hour spring-forward day in Denver
	springNow := time.Date(2024, 3, 10, 8, 0, 0, 0, denver)
	assert.Equal(t, 1, DaysUntilDue(time.Date(2024, 3, 11, 8, 0, 0, 0, denver), springNow))
	assert.Equal(t, -1, DaysUntilDue(time.Date(2024, 3, 9, 8, 0, 0, 0, denver), springNow))

	// 2024-11-03 is the 25-hour fall-back day
	fallNow := time.Date(2024, 11, 3, 8, 0, 0, 0, denver)
	assert.Equal(t, 1, DaysUntilDue(time.Date(2024, 11, 4, 8, 0, 0, 0, denver), fallNow))
	assert.Equal(t, 7, DaysUntilDue(time.Date(2024, 11, 10, 8, 0, 0, 0, denver), fallNow))
}

func TestStatusIsStableForFixedNow(t *testing.T) {
	now := time.Date(2024, 3, 15, 12, 0, 0, 0, time.UTC)
	due := now.AddDate(0, 0, 3)

	first := Status(due, now, 7)
	for range 10 {
		assert.Equal(t, first, Status(due, now, 7))
	}
}
