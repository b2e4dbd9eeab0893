package dto

import (
	"Hoard/internal/models"
	"time"
)

type SectionStatistics struct {
	SectionID string  `json:"sectionId"`
	Name      string  `json:"name"`
	Count     int     `json:"count"`
	Quantity  int     `json:"quantity"`
	Value     float64 `json:"value"`
}

type TagCount struct {
	Tag   string `json:"tag"`
	Count int    `json:"count"`
}

type MonthCount struct {
	Month string `json:"month"`
	Count int    `json:"count"`
}

type OverdueLoan struct {
	ItemID   string    `json:"itemId"`
	Name     string    `json:"name"`
	LoanedTo string    `json:"loanedTo"`
	LoanedAt time.Time `json:"loanedAt"`
	Days     int       `json:"days"`
}

type ExpiredWarranty struct {
	ItemID         string    `json:"itemId"`
	Name           string    `json:"name"`
	WarrantyExpiry time.Time `json:"warrantyExpiry"`
}

type StatisticsDTO struct {
	TotalItems        int                      `json:"totalItems"`
	TotalQuantity     int                      `json:"totalQuantity"`
	TotalValue        float64                  `json:"totalValue"`
	TotalWeight       float64                  `json:"totalWeight"`
	AverageValue      float64                  `json:"averageValue"`
	LoanedItems       int                      `json:"loanedItems"`
	ArchivedItems     int                      `json:"archivedItems"`
	BySection         []SectionStatistics      `json:"bySection"`
	ByCondition       map[models.Condition]int `json:"byCondition"`
	MostExpensive     *models.Record           `json:"mostExpensive,omitempty"`
	Oldest            *models.Record           `json:"oldest,omitempty"`
	Newest            *models.Record           `json:"newest,omitempty"`
	TopTags           []TagCount               `json:"topTags"`
	MonthlyAdditions  []MonthCount             `json:"monthlyAdditions"`
	OverdueLoans      []OverdueLoan            `json:"overdueLoans"`
	ExpiredWarranties []ExpiredWarranty        `json:"expiredWarranties"`
}
