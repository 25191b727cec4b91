package models

import (
	"time"

	"github.com/google/uuid"
)

// BaseUUIDModel is the shared identity block for all entities. Deletion in
// this domain is hard (removed rows, no tombstones), so there is no
// gorm.DeletedAt here.
type BaseUUIDModel struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"id"`
	CreatedAt time.Time `gorm:"autoCreateTime"                                 json:"createdAt"`
	UpdatedAt time.Time `gorm:"autoUpdateTime"                                 json:"updatedAt"`
}
