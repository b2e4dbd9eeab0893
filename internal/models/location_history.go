package models

import "time"

type LocationHistory struct {
	Seq          uint64    `gorm:"primaryKey;autoIncrement" json:"-"`
	ID           string    `gorm:"type:varchar(36);uniqueIndex;not null" json:"id"`
	ItemID       string    `gorm:"type:varchar(36);not null;index" json:"itemId"`
	FromLocation []string  `gorm:"serializer:json" json:"fromLocation"`
	ToLocation   []string  `gorm:"serializer:json" json:"toLocation"`
	MovedAt      time.Time `gorm:"not null" json:"movedAt"`
}
