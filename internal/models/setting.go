package models

// AppSettingsKey is the settings row holding AppSettings.
const AppSettingsKey = "app"

type Setting struct {
	Key   string `gorm:"type:varchar(64);primaryKey"`
	Value string `gorm:"type:text"`
}

// AppSettings are consumed by clients; the core only stores them.
type AppSettings struct {
	UnitSystem        string   `json:"unitSystem" validate:"oneof=metric imperial"`
	WeightUnit        string   `json:"weightUnit" validate:"oneof=kg lb g"`
	Currency          string   `json:"currency" validate:"len=3"`
	Language          string   `json:"language" validate:"required"`
	DateFormat        string   `json:"dateFormat" validate:"required"`
	DefaultViewType   ViewType `json:"defaultViewType" validate:"oneof=list grid cards"`
	AutoBackup        bool     `json:"autoBackup"`
	BackupFrequency   string   `json:"backupFrequency" validate:"oneof=daily weekly monthly"`
	ShowSerialNumbers bool     `json:"showSerialNumbers"`
}
