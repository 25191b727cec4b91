package models

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

func validTask() *MaintenanceTask {
	return &MaintenanceTask{
		ItemID:  uuid.New(),
		UserID:  uuid.New(),
		Name:    "Oil Change",
		NextDue: time.Date(2026, 6, 1, 0, 0, 0, 0, time.UTC),
	}
}

func TestTaskBeforeCreateDefaultsPriority(t *testing.T) {
	task := validTask()

	assert.NoError(t, task.BeforeCreate(nil))
	assert.Equal(t, TaskPriorityMedium, task.Priority)
}

func TestTaskBeforeCreateRejectsInvalid(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*MaintenanceTask)
	}{
		{"missing item", func(task *MaintenanceTask) { task.ItemID = uuid.Nil }},
		{"missing user", func(task *MaintenanceTask) { task.UserID = uuid.Nil }},
		{"missing name", func(task *MaintenanceTask) { task.Name = "" }},
		{"negative interval", func(task *MaintenanceTask) { task.IntervalDays = -1 }},
		{"zero due date", func(task *MaintenanceTask) { task.NextDue = time.Time{} }},
		{"unknown priority", func(task *MaintenanceTask) { task.Priority = "urgent" }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			task := validTask()
			tt.mutate(task)
			assert.Error(t, task.BeforeCreate(nil))
		})
	}
}

func TestTaskPriorityRank(t *testing.T) {
	assert.True(t, TaskPriorityLow.Rank() < TaskPriorityMedium.Rank())
	assert.True(t, TaskPriorityMedium.Rank() < TaskPriorityHigh.Rank())
	assert.True(t, TaskPriorityHigh.Rank() < TaskPriorityCritical.Rank())
	assert.Equal(t, 0, TaskPriority("urgent").Rank())
	assert.False(t, TaskPriority("").IsValid())
}

func TestLogUpdateIsRejected(t *testing.T) {
	entry := &MaintenanceLog{}
	assert.Error(t, entry.BeforeUpdate(nil))
}
