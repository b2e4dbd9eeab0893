package dto

import "Hoard/internal/models"

// TreeNodeDTO is a record together with its resolved children.
type TreeNodeDTO struct {
	models.Record
	Children   []*TreeNodeDTO `json:"children"`
	Level      int            `json:"level"`
	IsExpanded bool           `json:"isExpanded"`
}
