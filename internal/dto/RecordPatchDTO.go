package dto

import (
	"Hoard/internal/models"
	"time"
)

// RecordPatchDTO is a partial update. Nil fields are left untouched; an empty
// ParentID clears the parent.
type RecordPatchDTO struct {
	Kind             *models.Kind      `json:"type,omitempty"`
	Name             *string           `json:"name,omitempty" validate:"omitempty,min=1,max=255"`
	Description      *string           `json:"description,omitempty"`
	Barcode          *string           `json:"barcode,omitempty" validate:"omitempty,max=128"`
	Price            *float64          `json:"price,omitempty" validate:"omitempty,gte=0"`
	Weight           *float64          `json:"weight,omitempty" validate:"omitempty,gte=0"`
	Quantity         *int              `json:"quantity,omitempty" validate:"omitempty,gte=0"`
	SectionID        *string           `json:"sectionId,omitempty"`
	ParentID         *string           `json:"parentId,omitempty"`
	ContainedItemIDs *[]string         `json:"containedItems,omitempty"`
	LocationPath     *[]string         `json:"locationPath,omitempty"`
	IsOnLoan         *bool             `json:"isOnLoan,omitempty"`
	LoanedTo         *string           `json:"loanedTo,omitempty" validate:"omitempty,max=255"`
	LoanedAt         *time.Time        `json:"loanedAt,omitempty"`
	LoanQuantity     *int              `json:"loanQuantity,omitempty" validate:"omitempty,gte=1"`
	Tags             *[]string         `json:"tags,omitempty"`
	Condition        *models.Condition `json:"condition,omitempty" validate:"omitempty,oneof=new excellent good fair poor"`
	PurchaseDate     *time.Time        `json:"purchaseDate,omitempty"`
	WarrantyExpiry   *time.Time        `json:"warrantyExpiry,omitempty"`
	IsArchived       *bool             `json:"isArchived,omitempty"`
	Emoji            *string           `json:"emoji,omitempty" validate:"omitempty,max=16"`
	Color            *string           `json:"color,omitempty" validate:"omitempty,max=16"`
	ViewType         *models.ViewType  `json:"viewType,omitempty" validate:"omitempty,oneof=list grid cards"`
	SortOrder        *int              `json:"sortOrder,omitempty"`
}

// MoveRequestDTO places a record somewhere else. Nil fields keep the current
// placement.
type MoveRequestDTO struct {
	ParentID     *string   `json:"parentId,omitempty"`
	SectionID    *string   `json:"sectionId,omitempty"`
	LocationPath *[]string `json:"locationPath,omitempty"`
}

type CopyRequestDTO struct {
	SectionID string `json:"sectionId"`
}

type LoanRequestDTO struct {
	Quantity int    `json:"quantity"`
	LoanedTo string `json:"loanedTo"`
}
