package models

import (
	"time"
)

type EventType string

const (
	EventCreated  EventType = "created"
	EventUpdated  EventType = "updated"
	EventMoved    EventType = "moved"
	EventDeleted  EventType = "deleted"
	EventLoaned   EventType = "loaned"
	EventReturned EventType = "returned"
	EventArchived EventType = "archived"
	EventRestored EventType = "restored"
	EventCopied   EventType = "copied"
)

// Event is an immutable entry of the mutation log. Seq orders entries by
// insertion; the newest entry has the highest Seq.
type Event struct {
	Seq          uint64         `gorm:"primaryKey;autoIncrement" json:"-"`
	ID           string         `gorm:"type:varchar(36);uniqueIndex;not null" json:"id"`
	Type         EventType      `gorm:"type:varchar(16);not null;index" json:"type"`
	ItemID       string         `gorm:"type:varchar(36);not null;index" json:"itemId"`
	ItemName     string         `gorm:"type:varchar(255)" json:"itemName"`
	Description  string         `gorm:"type:text" json:"description"`
	Timestamp    time.Time      `gorm:"not null;index" json:"timestamp"`
	Metadata     map[string]any `gorm:"serializer:json" json:"metadata,omitempty"`
	FromLocation string         `gorm:"type:text" json:"fromLocation,omitempty"`
	ToLocation   string         `gorm:"type:text" json:"toLocation,omitempty"`
}
