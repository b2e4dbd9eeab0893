package models

// SerialCounter is the single counter row handing out item serial numbers.
// Sections are not numbered.
const SerialCounter = "serial"

type Counter struct {
	Name  string `gorm:"type:varchar(64);primaryKey"`
	Value int64  `gorm:"not null;default:0"`
}
