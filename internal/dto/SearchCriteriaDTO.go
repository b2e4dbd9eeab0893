package dto

import (
	"Hoard/internal/models"
	"time"
)

type Range struct {
	Min float64 `json:"min"`
	Max float64 `json:"max"`
}

type SortOrder string

const (
	SortAsc  SortOrder = "asc"
	SortDesc SortOrder = "desc"
)

// NameMatch filters on the record name only, case-insensitively. Exact
// compares the whole name, otherwise Value is a substring.
type NameMatch struct {
	Value string `json:"value"`
	Exact bool   `json:"exact,omitempty"`
}

// SearchCriteriaDTO combines with AND. Nil and empty fields do not filter.
type SearchCriteriaDTO struct {
	Query           string            `json:"query,omitempty"`
	Name            *NameMatch        `json:"name,omitempty"`
	SectionID       string            `json:"sectionId,omitempty"`
	IDs             []string          `json:"ids,omitempty"`
	PriceRange      *Range            `json:"priceRange,omitempty"`
	WeightRange     *Range            `json:"weightRange,omitempty"`
	IsOnLoan        *bool             `json:"isOnLoan,omitempty"`
	Condition       *models.Condition `json:"condition,omitempty"`
	Tags            []string          `json:"tags,omitempty"`
	CreatedFrom     *time.Time        `json:"createdFrom,omitempty"`
	CreatedTo       *time.Time        `json:"createdTo,omitempty"`
	IncludeArchived bool              `json:"includeArchived,omitempty"`
	IncludeSections bool              `json:"includeSections,omitempty"`
	SortBy          string            `json:"sortBy,omitempty"`
	SortOrder       SortOrder         `json:"sortOrder,omitempty"`
}
