package taskController

import (
	"testing"
	"upkeep/internal/schedule"

	"github.com/stretchr/testify/assert"
)

func TestParseDueFilter(t *testing.T) {
	tests := []struct {
		raw      string
		expected schedule.DueStatus
		ok       bool
	}{
		{"overdue", schedule.StatusOverdue, true},
		{"due_soon", schedule.StatusDueSoon, true},
		{"soon", schedule.StatusDueSoon, true},
		{"upcoming", schedule.StatusUpcoming, true},
		{"yesterday", "", false},
		{"OVERDUE", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.raw, func(t *testing.T) {
			status, ok := parseDueFilter(tt.raw)
			assert.Equal(t, tt.ok, ok)
			assert.Equal(t, tt.expected, status)
		})
	}
}
