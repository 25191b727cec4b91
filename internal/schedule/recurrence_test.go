package schedule

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestNextDue(t *testing.T) {
	prevDue := time.Date(2024, 1, 10, 9, 0, 0, 0, time.UTC)

	tests := []struct {
		name         string
		intervalDays int
		completedAt  time.Time
		expected     time.Time
		expectError  bool
	}{
		{
			name:         "30 days across a month boundary",
			intervalDays: 30,
			completedAt:  time.Date(2024, 1, 20, 9, 0, 0, 0, time.UTC),
			expected:     time.Date(2024, 2, 19, 9, 0, 0, 0, time.UTC),
		},
		{
			name:         "90 days",
			intervalDays: 90,
			completedAt:  time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC),
			expected:     time.Date(2024, 5, 30, 12, 0, 0, 0, time.UTC),
		},
		{
			name:         "365 days across a year boundary",
			intervalDays: 365,
			completedAt:  time.Date(2024, 12, 20, 9, 0, 0, 0, time.UTC),
			expected:     time.Date(2025, 12, 20, 9, 0, 0, 0, time.UTC),
		},
		{
			name:         "One-time task keeps previous due date",
			intervalDays: 0,
			completedAt:  time.Date(2024, 6, 1, 9, 0, 0, 0, time.UTC),
			expected:     prevDue,
		},
		{
			name:         "Negative interval is rejected",
			intervalDays: -7,
			completedAt:  time.Date(2024, 6, 1, 9, 0, 0, 0, time.UTC),
			expectError:  true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			next, err := NextDue(tt.intervalDays, tt.completedAt, prevDue)

			if tt.expectError {
				assert.ErrorIs(t, err, ErrInvalidInterval)
				assert.True(t, next.IsZero())
			} else {
				assert.NoError(t, err)
				assert.Equal(t, tt.expected, next)
			}
		})
	}
}

func TestNextDueOneTimeIgnoresCompletionInstant(t *testing.T) {
	prevDue := time.Date(2024, 1, 10, 9, 0, 0, 0, time.UTC)

	for _, completedAt := range []time.Time{
		prevDue.AddDate(0, 0, -30),
		prevDue,
		prevDue.AddDate(2, 0, 0),
	} {
		next, err := NextDue(0, completedAt, prevDue)
		assert.NoError(t, err)
		assert.Equal(t, prevDue, next)
	}
}
