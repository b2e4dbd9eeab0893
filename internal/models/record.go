package models

import (
	"time"
)

type Kind string

const (
	KindItem    Kind = "item"
	KindSection Kind = "section"
)

// RootSectionID is the sectionId carried by top-level sections.
const RootSectionID = "root"

type Condition string

const (
	ConditionNew       Condition = "new"
	ConditionExcellent Condition = "excellent"
	ConditionGood      Condition = "good"
	ConditionFair      Condition = "fair"
	ConditionPoor      Condition = "poor"
)

func (c Condition) Valid() bool {
	switch c {
	case ConditionNew, ConditionExcellent, ConditionGood, ConditionFair, ConditionPoor:
		return true
	}
	return false
}

type ViewType string

const (
	ViewList  ViewType = "list"
	ViewGrid  ViewType = "grid"
	ViewCards ViewType = "cards"
)

func (v ViewType) Valid() bool {
	switch v {
	case ViewList, ViewGrid, ViewCards:
		return true
	}
	return false
}

// Record is either an item or a section. Section-only attributes are empty
// for items.
type Record struct {
	BaseModel
	// Zero for sections.
	SerialNumber     int64      `gorm:"not null;default:0;index:idx_records_item_serial,unique,where:kind = 'item'" json:"serialNumber"`
	Kind             Kind       `gorm:"type:varchar(16);not null" json:"type"`
	Name             string     `gorm:"type:varchar(255);not null" json:"name"`
	Description      string     `gorm:"type:text" json:"description"`
	Barcode          string     `gorm:"type:varchar(128)" json:"barcode,omitempty"`
	Price            float64    `gorm:"not null;default:0" json:"price"`
	Weight           float64    `gorm:"not null;default:0" json:"weight"`
	Quantity         int        `gorm:"not null;default:0" json:"quantity"`
	SectionID        string     `gorm:"type:varchar(36);not null;index" json:"sectionId"`
	ParentID         *string    `gorm:"type:varchar(36);index" json:"parentId,omitempty"`
	ContainedItemIDs []string   `gorm:"serializer:json" json:"containedItems,omitempty"`
	LocationPath     []string   `gorm:"serializer:json" json:"locationPath"`
	IsOnLoan         bool       `gorm:"not null;default:false" json:"isOnLoan"`
	LoanedTo         string     `gorm:"type:varchar(255)" json:"loanedTo,omitempty"`
	LoanedAt         *time.Time `json:"loanedAt,omitempty"`
	LoanQuantity     *int       `json:"loanQuantity,omitempty"`
	Tags             []string   `gorm:"serializer:json" json:"tags"`
	Condition        Condition  `gorm:"type:varchar(16);not null;default:good" json:"condition"`
	PurchaseDate     *time.Time `json:"purchaseDate,omitempty"`
	WarrantyExpiry   *time.Time `json:"warrantyExpiry,omitempty"`
	IsArchived       bool       `gorm:"not null;default:false;index" json:"isArchived"`

	Emoji     string   `gorm:"type:varchar(16)" json:"emoji,omitempty"`
	Color     string   `gorm:"type:varchar(16)" json:"color,omitempty"`
	ViewType  ViewType `gorm:"type:varchar(16)" json:"viewType,omitempty"`
	SortOrder int      `gorm:"default:0" json:"sortOrder,omitempty"`
}

func (r Record) IsSection() bool {
	return r.Kind == KindSection
}

// Parent returns the parent id or an empty string.
func (r Record) Parent() string {
	if r.ParentID == nil {
		return ""
	}
	return *r.ParentID
}

// LoanedQuantity is the number of units out on loan. A loan without an
// explicit quantity covers the whole stack.
func (r Record) LoanedQuantity() int {
	if !r.IsOnLoan {
		return 0
	}
	if r.LoanQuantity == nil {
		return r.Quantity
	}
	return *r.LoanQuantity
}

// Clone returns a copy that shares no slices or pointers with r.
func (r Record) Clone() Record {
	r.ContainedItemIDs = cloneStrings(r.ContainedItemIDs)
	r.LocationPath = cloneStrings(r.LocationPath)
	r.Tags = cloneStrings(r.Tags)
	if r.ParentID != nil {
		parent := *r.ParentID
		r.ParentID = &parent
	}
	if r.LoanQuantity != nil {
		quantity := *r.LoanQuantity
		r.LoanQuantity = &quantity
	}
	r.LoanedAt = cloneTime(r.LoanedAt)
	r.PurchaseDate = cloneTime(r.PurchaseDate)
	r.WarrantyExpiry = cloneTime(r.WarrantyExpiry)
	return r
}

func cloneStrings(values []string) []string {
	if values == nil {
		return nil
	}
	out := make([]string, len(values))
	copy(out, values)
	return out
}

func cloneTime(t *time.Time) *time.Time {
	if t == nil {
		return nil
	}
	v := *t
	return &v
}
