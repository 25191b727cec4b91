package statsController

import (
	"testing"
	"time"
	. "upkeep/internal/models"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func costOf(amount int64) *decimal.Decimal {
	cost := decimal.NewFromInt(amount)
	return &cost
}

func TestBuildStatsEmpty(t *testing.T) {
	stats := buildStats(nil, nil, nil, 7, time.Now())

	assert.Equal(t, 0, stats.ItemCount)
	assert.Equal(t, 0, stats.ActiveTaskCount)
	assert.Equal(t, 0, stats.OverdueCount)
	assert.Equal(t, 0, stats.DueSoonCount)
	assert.Equal(t, 0, stats.CompletionCount)
	assert.Equal(t, 0, stats.CompletionsLast30)
	assert.True(t, stats.TotalSpend.IsZero())
	assert.Empty(t, stats.SpendByCategory)
}

func TestBuildStatsTaskBuckets(t *testing.T) {
	now := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	itemID := uuid.New()

	tasks := []*MaintenanceTask{
		{ItemID: itemID, Name: "Overdue", NextDue: now.AddDate(0, 0, -2), IsActive: true},
		{ItemID: itemID, Name: "Due soon", NextDue: now.AddDate(0, 0, 3), IsActive: true},
		{ItemID: itemID, Name: "Upcoming", NextDue: now.AddDate(0, 0, 30), IsActive: true},
		{ItemID: itemID, Name: "Inactive", NextDue: now.AddDate(0, 0, -10), IsActive: false},
	}

	stats := buildStats(nil, tasks, nil, 7, now)

	assert.Equal(t, 3, stats.ActiveTaskCount)
	assert.Equal(t, 1, stats.OverdueCount)
	assert.Equal(t, 1, stats.DueSoonCount)
}

func TestBuildStatsSpendByCategory(t *testing.T) {
	now := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)

	car := &Item{Category: ItemCategoryVehicle}
	car.ID = uuid.New()
	furnace := &Item{Category: ItemCategoryHome}
	furnace.ID = uuid.New()

	logs := []*MaintenanceLog{
		{ItemID: car.ID, CompletedAt: now.AddDate(0, 0, -5), Cost: costOf(50)},
		{ItemID: car.ID, CompletedAt: now.AddDate(0, 0, -10), Cost: costOf(25)},
		{ItemID: furnace.ID, CompletedAt: now.AddDate(0, 0, -60), Cost: costOf(100)},
		{ItemID: furnace.ID, CompletedAt: now.AddDate(0, 0, -1)},
	}

	stats := buildStats([]*Item{car, furnace}, nil, logs, 7, now)

	assert.Equal(t, 2, stats.ItemCount)
	assert.Equal(t, 4, stats.CompletionCount)
	assert.Equal(t, 3, stats.CompletionsLast30)
	assert.True(t, stats.TotalSpend.Equal(decimal.NewFromInt(175)))
	assert.True(t, stats.SpendByCategory["vehicle"].Equal(decimal.NewFromInt(75)))
	assert.True(t, stats.SpendByCategory["home"].Equal(decimal.NewFromInt(100)))
}

func TestBuildStatsDeletedItemSpendFallsBackToOther(t *testing.T) {
	now := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)

	logs := []*MaintenanceLog{
		{ItemID: uuid.New(), CompletedAt: now.AddDate(0, 0, -2), Cost: costOf(40)},
	}

	stats := buildStats(nil, nil, logs, 7, now)

	assert.True(t, stats.SpendByCategory["other"].Equal(decimal.NewFromInt(40)))
}
