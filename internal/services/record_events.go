package services

import (
	"Hoard/internal/helpers"
	"Hoard/internal/models"
	"fmt"
	"time"
)

func describe(record models.Record, verb string) string {
	noun := "Item"
	if record.IsSection() {
		noun = "Section"
	}
	return fmt.Sprintf("%s %q was %s", noun, record.Name, verb)
}

func createdEvent(record models.Record) models.Event {
	return models.Event{
		Type:        models.EventCreated,
		Description: describe(record, "created"),
		Metadata: map[string]any{
			"serialNumber": record.SerialNumber,
			"sectionId":    record.SectionID,
		},
		ToLocation: helpers.FormatLocation(record.LocationPath),
	}
}

func deletedEvent(record models.Record) models.Event {
	return models.Event{
		Type:        models.EventDeleted,
		Description: describe(record, "deleted"),
		Metadata: map[string]any{
			"serialNumber": record.SerialNumber,
			"price":        record.Price,
			"quantity":     record.Quantity,
			"sectionId":    record.SectionID,
		},
		FromLocation: helpers.FormatLocation(record.LocationPath),
	}
}

func movedEvent(before, after models.Record) models.Event {
	return models.Event{
		Type:         models.EventMoved,
		Description:  describe(after, "moved"),
		FromLocation: helpers.FormatLocation(before.LocationPath),
		ToLocation:   helpers.FormatLocation(after.LocationPath),
		Metadata: map[string]any{
			"fromSectionId": before.SectionID,
			"toSectionId":   after.SectionID,
			"fromParentId":  before.Parent(),
			"toParentId":    after.Parent(),
		},
	}
}

func loanedEvent(record models.Record) models.Event {
	metadata := map[string]any{
		"loanedTo":       record.LoanedTo,
		"loanedQuantity": record.LoanedQuantity(),
		"totalQuantity":  record.Quantity,
	}
	if record.LoanedAt != nil {
		metadata["loanedAt"] = record.LoanedAt.UTC().Format(time.RFC3339)
	}
	return models.Event{
		Type:        models.EventLoaned,
		Description: fmt.Sprintf("Item %q was loaned to %s", record.Name, record.LoanedTo),
		Metadata:    metadata,
	}
}

// returnedEvent describes the loan held by before, the record as it was
// while still on loan.
func returnedEvent(before models.Record, now time.Time) models.Event {
	return models.Event{
		Type:        models.EventReturned,
		Description: fmt.Sprintf("Item %q was returned by %s", before.Name, before.LoanedTo),
		Metadata: map[string]any{
			"loanedTo":       before.LoanedTo,
			"loanedQuantity": before.LoanedQuantity(),
			"loanDays":       loanDays(before.LoanedAt, now),
		},
	}
}

func archivedEvent(record models.Record) models.Event {
	if record.IsArchived {
		return models.Event{Type: models.EventArchived, Description: describe(record, "archived")}
	}
	return models.Event{Type: models.EventRestored, Description: describe(record, "restored")}
}

func copiedEvent(source, duplicate models.Record) models.Event {
	return models.Event{
		Type:        models.EventCopied,
		Description: fmt.Sprintf("%s from %q", describe(duplicate, "copied"), source.Name),
		Metadata: map[string]any{
			"sourceId":        source.ID,
			"sourceName":      source.Name,
			"targetSectionId": duplicate.SectionID,
		},
		ToLocation: helpers.FormatLocation(duplicate.LocationPath),
	}
}

// diffEvents derives the events for an update from the record before and
// after it. At least one event is always returned.
func diffEvents(before, after models.Record, now time.Time) []models.Event {
	var events []models.Event
	if locationChanged(before, after) {
		events = append(events, movedEvent(before, after))
	}
	if !before.IsOnLoan && after.IsOnLoan {
		events = append(events, loanedEvent(after))
	}
	if before.IsOnLoan && !after.IsOnLoan {
		events = append(events, returnedEvent(before, now))
	}
	if changes := fieldChanges(before, after); len(changes) > 0 {
		events = append(events, models.Event{
			Type:        models.EventUpdated,
			Description: describe(after, "updated"),
			Metadata:    map[string]any{"changes": changes},
		})
	}
	if before.IsArchived != after.IsArchived {
		events = append(events, archivedEvent(after))
	}
	if len(events) == 0 {
		events = append(events, models.Event{
			Type:        models.EventUpdated,
			Description: describe(after, "updated"),
		})
	}
	return events
}

func locationChanged(before, after models.Record) bool {
	return !helpers.SameLocation(before.LocationPath, after.LocationPath) ||
		before.Parent() != after.Parent() ||
		before.SectionID != after.SectionID
}

func fieldChanges(before, after models.Record) map[string]any {
	changes := map[string]any{}
	if before.Name != after.Name {
		changes["name"] = change(before.Name, after.Name)
	}
	if before.Price != after.Price {
		changes["price"] = change(before.Price, after.Price)
	}
	if before.Quantity != after.Quantity {
		changes["quantity"] = change(before.Quantity, after.Quantity)
	}
	if before.Condition != after.Condition {
		changes["condition"] = change(before.Condition, after.Condition)
	}
	return changes
}

func change(from, to any) map[string]any {
	return map[string]any{"from": from, "to": to}
}

// loanDays counts whole days since loanedAt, never negative.
func loanDays(loanedAt *time.Time, now time.Time) int {
	if loanedAt == nil || now.Before(*loanedAt) {
		return 0
	}
	return int(now.Sub(*loanedAt) / (24 * time.Hour))
}
