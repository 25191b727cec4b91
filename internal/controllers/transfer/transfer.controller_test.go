package transferController

import (
	"testing"
	"time"
	. "upkeep/internal/models"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validTestPayload() *ExportPayload {
	item := &Item{
		Name:     "Family Car",
		Category: ItemCategoryVehicle,
	}
	item.ID = uuid.New()

	task := &MaintenanceTask{
		ItemID:       item.ID,
		Name:         "Oil Change",
		IntervalDays: 90,
		NextDue:      time.Date(2026, 6, 1, 0, 0, 0, 0, time.UTC),
	}
	task.ID = uuid.New()

	entry := &MaintenanceLog{
		TaskID:      task.ID,
		ItemID:      item.ID,
		ItemName:    item.Name,
		TaskName:    task.Name,
		CompletedAt: time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC),
	}
	entry.ID = uuid.New()

	return &ExportPayload{
		Version:    ExportVersion,
		ExportedAt: time.Now().UTC(),
		Items:      []*Item{item},
		Tasks:      []*MaintenanceTask{task},
		Logs:       []*MaintenanceLog{entry},
	}
}

func TestValidatePayloadAccepts(t *testing.T) {
	assert.NoError(t, validatePayload(validTestPayload()))
}

func TestValidatePayloadAcceptsEmptyArrays(t *testing.T) {
	payload := &ExportPayload{
		Version: ExportVersion,
		Items:   []*Item{},
		Tasks:   []*MaintenanceTask{},
		Logs:    []*MaintenanceLog{},
	}

	assert.NoError(t, validatePayload(payload))
}

func TestValidatePayloadRejectsNil(t *testing.T) {
	assert.Error(t, validatePayload(nil))
}

func TestValidatePayloadRejectsBadVersion(t *testing.T) {
	payload := validTestPayload()
	payload.Version = 0
	assert.Error(t, validatePayload(payload))

	payload = validTestPayload()
	payload.Version = ExportVersion + 1
	assert.Error(t, validatePayload(payload))
}

func TestValidatePayloadRejectsMissingArrays(t *testing.T) {
	payload := validTestPayload()
	payload.Tasks = nil
	assert.Error(t, validatePayload(payload))
}

func TestValidatePayloadRejectsNullEntries(t *testing.T) {
	payload := validTestPayload()
	payload.Items = append(payload.Items, nil)
	assert.Error(t, validatePayload(payload))

	payload = validTestPayload()
	payload.Logs = append(payload.Logs, nil)
	assert.Error(t, validatePayload(payload))
}

func TestValidatePayloadRejectsInvalidItem(t *testing.T) {
	payload := validTestPayload()
	payload.Items[0].Category = "boat"
	assert.Error(t, validatePayload(payload))

	payload = validTestPayload()
	payload.Items[0].Name = ""
	assert.Error(t, validatePayload(payload))
}

func TestValidatePayloadRejectsInvalidTask(t *testing.T) {
	payload := validTestPayload()
	payload.Tasks[0].IntervalDays = -1
	assert.Error(t, validatePayload(payload))

	payload = validTestPayload()
	payload.Tasks[0].NextDue = time.Time{}
	assert.Error(t, validatePayload(payload))
}

func TestValidatePayloadRejectsOrphanTask(t *testing.T) {
	payload := validTestPayload()
	payload.Tasks[0].ItemID = uuid.New()

	err := validatePayload(payload)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "missing from the payload")
}

func TestValidatePayloadRejectsLogWithoutCompletionTime(t *testing.T) {
	payload := validTestPayload()
	payload.Logs[0].CompletedAt = time.Time{}
	assert.Error(t, validatePayload(payload))
}
