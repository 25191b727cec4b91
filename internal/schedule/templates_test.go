package schedule

import (
	"testing"
	"time"
	"upkeep/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTemplatesFor(t *testing.T) {
	tests := []struct {
		name     string
		category models.ItemCategory
		empty    bool
	}{
		{name: "Vehicle has templates", category: models.ItemCategoryVehicle},
		{name: "Home has templates", category: models.ItemCategoryHome},
		{name: "Appliance has templates", category: models.ItemCategoryAppliance},
		{name: "Other yields empty list", category: models.ItemCategoryOther, empty: true},
		{name: "Unknown category yields empty list", category: models.ItemCategory("boat"), empty: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			templates := TemplatesFor(tt.category)
			if tt.empty {
				assert.Empty(t, templates)
			} else {
				assert.NotEmpty(t, templates)
				for _, template := range templates {
					assert.NotEmpty(t, template.Name)
					assert.Positive(t, template.IntervalDays)
					assert.True(t, template.Priority.IsValid())
				}
			}
		})
	}
}

func TestExpandTemplates(t *testing.T) {
	now := time.Date(2024, 3, 15, 9, 0, 0, 0, time.UTC)

	drafts := ExpandTemplates(models.ItemCategoryVehicle, 3, now)
	require.Len(t, drafts, len(TemplatesFor(models.ItemCategoryVehicle)))

	for i, draft := range drafts {
		template := TemplatesFor(models.ItemCategoryVehicle)[i]
		assert.Equal(t, template.Name, draft.Name)
		assert.Equal(t, template.Description, draft.Description)
		assert.Equal(t, template.IntervalDays, draft.IntervalDays)
		assert.Equal(t, template.Priority, draft.Priority)
		assert.Equal(t, now.AddDate(0, 0, template.IntervalDays), draft.NextDue)
		assert.Equal(t, 3, draft.ReminderDaysBefore)
	}
}

func TestExpandTemplatesIsDeterministic(t *testing.T) {
	now := time.Date(2024, 3, 15, 9, 0, 0, 0, time.UTC)

	first := ExpandTemplates(models.ItemCategoryVehicle, 3, now)
	second := ExpandTemplates(models.ItemCategoryVehicle, 3, now)

	assert.Equal(t, first, second)
}

func TestExpandTemplatesUnknownCategory(t *testing.T) {
	now := time.Date(2024, 3, 15, 9, 0, 0, 0, time.UTC)

	assert.Nil(t, ExpandTemplates(models.ItemCategoryOther, 3, now))
}
