package models

import (
	"time"
)

// BaseModel carries the identity and timestamps shared by persisted records.
// Timestamps are set by the services from their clock, not by gorm.
type BaseModel struct {
	ID        string    `gorm:"type:varchar(36);primaryKey" json:"id"`
	CreatedAt time.Time `gorm:"autoCreateTime:false;index" json:"createdAt"`
	UpdatedAt time.Time `gorm:"autoUpdateTime:false" json:"updatedAt"`
}
