package mapper

import (
	"Hoard/internal/dto"
	"Hoard/internal/models"
)

// ToRecordModel builds an unsaved record from a draft. Identity, serial and
// timestamps are left for the store.
func ToRecordModel(draft dto.RecordDraftDTO) *models.Record {
	record := &models.Record{
		Kind:             draft.Kind,
		Name:             draft.Name,
		Description:      draft.Description,
		Barcode:          draft.Barcode,
		Price:            draft.Price,
		Weight:           draft.Weight,
		Quantity:         draft.Quantity,
		SectionID:        draft.SectionID,
		ParentID:         normalizeParent(draft.ParentID),
		ContainedItemIDs: copyStrings(draft.ContainedItemIDs),
		LocationPath:     nonNil(draft.LocationPath),
		IsOnLoan:         draft.IsOnLoan,
		LoanedTo:         draft.LoanedTo,
		LoanedAt:         draft.LoanedAt,
		LoanQuantity:     draft.LoanQuantity,
		Tags:             nonNil(draft.Tags),
		Condition:        draft.Condition,
		PurchaseDate:     draft.PurchaseDate,
		WarrantyExpiry:   draft.WarrantyExpiry,
		IsArchived:       draft.IsArchived,
		Emoji:            draft.Emoji,
		Color:            draft.Color,
		ViewType:         draft.ViewType,
		SortOrder:        draft.SortOrder,
	}
	if record.Condition == "" {
		record.Condition = models.ConditionGood
	}
	return record
}

// ToRecordDraft is the inverse of ToRecordModel, used by copy and import.
func ToRecordDraft(record models.Record) dto.RecordDraftDTO {
	record = record.Clone()
	return dto.RecordDraftDTO{
		Kind:             record.Kind,
		Name:             record.Name,
		Description:      record.Description,
		Barcode:          record.Barcode,
		Price:            record.Price,
		Weight:           record.Weight,
		Quantity:         record.Quantity,
		SectionID:        record.SectionID,
		ParentID:         record.ParentID,
		ContainedItemIDs: record.ContainedItemIDs,
		LocationPath:     record.LocationPath,
		IsOnLoan:         record.IsOnLoan,
		LoanedTo:         record.LoanedTo,
		LoanedAt:         record.LoanedAt,
		LoanQuantity:     record.LoanQuantity,
		Tags:             record.Tags,
		Condition:        record.Condition,
		PurchaseDate:     record.PurchaseDate,
		WarrantyExpiry:   record.WarrantyExpiry,
		IsArchived:       record.IsArchived,
		Emoji:            record.Emoji,
		Color:            record.Color,
		ViewType:         record.ViewType,
		SortOrder:        record.SortOrder,
	}
}

// ApplyRecordPatch copies every non-nil patch field onto record.
func ApplyRecordPatch(record *models.Record, patch dto.RecordPatchDTO) {
	if patch.Name != nil {
		record.Name = *patch.Name
	}
	if patch.Description != nil {
		record.Description = *patch.Description
	}
	if patch.Barcode != nil {
		record.Barcode = *patch.Barcode
	}
	if patch.Price != nil {
		record.Price = *patch.Price
	}
	if patch.Weight != nil {
		record.Weight = *patch.Weight
	}
	if patch.Quantity != nil {
		record.Quantity = *patch.Quantity
	}
	if patch.SectionID != nil {
		record.SectionID = *patch.SectionID
	}
	if patch.ParentID != nil {
		record.ParentID = normalizeParent(patch.ParentID)
	}
	if patch.ContainedItemIDs != nil {
		record.ContainedItemIDs = copyStrings(*patch.ContainedItemIDs)
	}
	if patch.LocationPath != nil {
		record.LocationPath = nonNil(*patch.LocationPath)
	}
	if patch.IsOnLoan != nil {
		record.IsOnLoan = *patch.IsOnLoan
	}
	if patch.LoanedTo != nil {
		record.LoanedTo = *patch.LoanedTo
	}
	if patch.LoanedAt != nil {
		loanedAt := *patch.LoanedAt
		record.LoanedAt = &loanedAt
	}
	if patch.LoanQuantity != nil {
		quantity := *patch.LoanQuantity
		record.LoanQuantity = &quantity
	}
	if patch.Tags != nil {
		record.Tags = nonNil(*patch.Tags)
	}
	if patch.Condition != nil {
		record.Condition = *patch.Condition
	}
	if patch.PurchaseDate != nil {
		purchaseDate := *patch.PurchaseDate
		record.PurchaseDate = &purchaseDate
	}
	if patch.WarrantyExpiry != nil {
		warrantyExpiry := *patch.WarrantyExpiry
		record.WarrantyExpiry = &warrantyExpiry
	}
	if patch.IsArchived != nil {
		record.IsArchived = *patch.IsArchived
	}
	if patch.Emoji != nil {
		record.Emoji = *patch.Emoji
	}
	if patch.Color != nil {
		record.Color = *patch.Color
	}
	if patch.ViewType != nil {
		record.ViewType = *patch.ViewType
	}
	if patch.SortOrder != nil {
		record.SortOrder = *patch.SortOrder
	}
}

func ToTreeNodeDTO(record models.Record, level int, expanded bool) *dto.TreeNodeDTO {
	return &dto.TreeNodeDTO{
		Record:     record,
		Children:   []*dto.TreeNodeDTO{},
		Level:      level,
		IsExpanded: expanded,
	}
}

func normalizeParent(parentID *string) *string {
	if parentID == nil || *parentID == "" {
		return nil
	}
	parent := *parentID
	return &parent
}

func copyStrings(values []string) []string {
	if values == nil {
		return nil
	}
	out := make([]string, len(values))
	copy(out, values)
	return out
}

func nonNil(values []string) []string {
	if values == nil {
		return []string{}
	}
	return copyStrings(values)
}
