package schedule

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestReminderFireDate(t *testing.T) {
	nextDue := time.Date(2024, 3, 15, 9, 0, 0, 0, time.UTC)

	assert.Equal(t, time.Date(2024, 3, 12, 9, 0, 0, 0, time.UTC), ReminderFireDate(nextDue, 3))
	assert.Equal(t, nextDue, ReminderFireDate(nextDue, 0))

	// Negative lead times clamp to the due date instead of firing late
	assert.Equal(t, nextDue, ReminderFireDate(nextDue, -2))
}

func TestReminderElapsed(t *testing.T) {
	now := time.Date(2024, 3, 15, 9, 0, 0, 0, time.UTC)

	tests := []struct {
		name     string
		fireAt   time.Time
		expected bool
	}{
		{
			name:     "Past fire date is elapsed",
			fireAt:   now.AddDate(0, 0, -1),
			expected: true,
		},
		{
			name:     "Fire date exactly now is elapsed",
			fireAt:   now,
			expected: true,
		},
		{
			name:     "Future fire date is not elapsed",
			fireAt:   now.Add(time.Hour),
			expected: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, ReminderElapsed(tt.fireAt, now))
		})
	}
}

func TestReminderSuppressionScenario(t *testing.T) {
	// Task due in 2 days with a 3-day lead: fire date was yesterday, so the
	// reminder is suppressed rather than fired immediately.
	now := time.Date(2024, 3, 15, 9, 0, 0, 0, time.UTC)
	nextDue := now.AddDate(0, 0, 2)

	fireAt := ReminderFireDate(nextDue, 3)
	assert.Equal(t, now.AddDate(0, 0, -1), fireAt)
	assert.True(t, ReminderElapsed(fireAt, now))
}
