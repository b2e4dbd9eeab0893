package dto

import (
	"Hoard/internal/models"
	"time"
)

// RecordDraftDTO is the payload for a new record. The store assigns id,
// serial number and timestamps.
type RecordDraftDTO struct {
	Kind             models.Kind      `json:"type" validate:"required,oneof=item section"`
	Name             string           `json:"name" validate:"required,max=255"`
	Description      string           `json:"description"`
	Barcode          string           `json:"barcode,omitempty" validate:"max=128"`
	Price            float64          `json:"price" validate:"gte=0"`
	Weight           float64          `json:"weight" validate:"gte=0"`
	Quantity         int              `json:"quantity" validate:"gte=0"`
	SectionID        string           `json:"sectionId"`
	ParentID         *string          `json:"parentId,omitempty"`
	ContainedItemIDs []string         `json:"containedItems,omitempty"`
	LocationPath     []string         `json:"locationPath"`
	IsOnLoan         bool             `json:"isOnLoan"`
	LoanedTo         string           `json:"loanedTo,omitempty" validate:"max=255"`
	LoanedAt         *time.Time       `json:"loanedAt,omitempty"`
	LoanQuantity     *int             `json:"loanQuantity,omitempty" validate:"omitempty,gte=1"`
	Tags             []string         `json:"tags"`
	Condition        models.Condition `json:"condition,omitempty" validate:"omitempty,oneof=new excellent good fair poor"`
	PurchaseDate     *time.Time       `json:"purchaseDate,omitempty"`
	WarrantyExpiry   *time.Time       `json:"warrantyExpiry,omitempty"`
	IsArchived       bool             `json:"isArchived"`
	Emoji            string           `json:"emoji,omitempty" validate:"max=16"`
	Color            string           `json:"color,omitempty" validate:"max=16"`
	ViewType         models.ViewType  `json:"viewType,omitempty" validate:"omitempty,oneof=list grid cards"`
	SortOrder        int              `json:"sortOrder,omitempty"`
}
