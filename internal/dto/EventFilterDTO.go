package dto

import "Hoard/internal/models"

type EventFilterDTO struct {
	ItemID string             `json:"itemId,omitempty"`
	Types  []models.EventType `json:"types,omitempty"`
	Limit  int                `json:"limit,omitempty"`
}

type AvailabilityDTO struct {
	ItemID    string `json:"itemId"`
	Quantity  int    `json:"quantity"`
	Loaned    int    `json:"loaned"`
	Available int    `json:"available"`
}
