package dto

import (
	"Hoard/internal/models"
	"encoding/json"
	"time"
)

const ExportVersion = "2.0.0"

type ImportMode string

const (
	ImportMerge   ImportMode = "merge"
	ImportReplace ImportMode = "replace"
)

type ExportMetadataDTO struct {
	AppVersion    string `json:"appVersion"`
	TotalItems    int    `json:"totalItems"`
	TotalSections int    `json:"totalSections"`
	TotalEvents   int    `json:"totalEvents"`
	Checksum      string `json:"checksum"`
}

// ExportDocumentDTO is the portable snapshot of the store. Goals and notes
// are carried as opaque values.
type ExportDocumentDTO struct {
	Version         string                   `json:"version"`
	ExportDate      time.Time                `json:"exportDate"`
	Items           []models.Record          `json:"items"`
	Sections        []models.Record          `json:"sections"`
	Events          []models.Event           `json:"events"`
	LocationHistory []models.LocationHistory `json:"locationHistory"`
	Goals           []json.RawMessage        `json:"goals"`
	Notes           []json.RawMessage        `json:"notes"`
	Metadata        ExportMetadataDTO        `json:"metadata"`
}

// ImportDocumentDTO is the lenient shape accepted by an import. Records are
// decoded one by one so a bad entry does not reject the whole document.
type ImportDocumentDTO struct {
	Version  string            `json:"version"`
	Items    []json.RawMessage `json:"items"`
	Sections []json.RawMessage `json:"sections"`
	Goals    []json.RawMessage `json:"goals"`
	Notes    []json.RawMessage `json:"notes"`
	Events   []json.RawMessage `json:"events"`
}

type ImportErrorDTO struct {
	Index   int    `json:"index"`
	Kind    string `json:"type"`
	Name    string `json:"name,omitempty"`
	Message string `json:"message"`
}

type ImportResultDTO struct {
	Mode             ImportMode       `json:"mode"`
	ImportedItems    int              `json:"importedItems"`
	ImportedSections int              `json:"importedSections"`
	Errors           []ImportErrorDTO `json:"errors"`
	Warnings         []string         `json:"warnings"`
}
