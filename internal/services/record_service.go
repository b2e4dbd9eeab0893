package services

import (
	"Hoard/internal/config"
	"Hoard/internal/dto"
	"Hoard/internal/mapper"
	"Hoard/internal/metrics"
	"Hoard/internal/models"
	"Hoard/internal/repository"
	"context"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"strings"
	"sync"
	"time"
)

// ModifyFunc mutates record in place and returns the events describing the
// change. Returning an error discards the mutation.
type ModifyFunc func(record *models.Record) ([]models.Event, error)

type CreateOption func(*createOptions)

type createOptions struct {
	id        string
	createdAt *time.Time
	updatedAt *time.Time
}

// WithRecordID creates the record under a caller chosen id.
func WithRecordID(id string) CreateOption {
	return func(o *createOptions) {
		o.id = id
	}
}

// WithTimestamps keeps timestamps carried over from elsewhere, such as an
// imported document. Zero values fall back to the clock.
func WithTimestamps(createdAt, updatedAt time.Time) CreateOption {
	return func(o *createOptions) {
		if !createdAt.IsZero() {
			o.createdAt = &createdAt
		}
		if !updatedAt.IsZero() {
			o.updatedAt = &updatedAt
		}
	}
}

type RecordService interface {
	Create(ctx context.Context, draft dto.RecordDraftDTO, opts ...CreateOption) (*models.Record, error)
	Get(ctx context.Context, id string) (*models.Record, error)
	List(ctx context.Context) ([]models.Record, error)
	Update(ctx context.Context, id string, patch dto.RecordPatchDTO) (*models.Record, error)
	Delete(ctx context.Context, id string) error
	Archive(ctx context.Context, id string) (*models.Record, error)
	Restore(ctx context.Context, id string) (*models.Record, error)
	Copy(ctx context.Context, id string, targetSectionID string) (*models.Record, error)
	Modify(ctx context.Context, id string, fn ModifyFunc) (*models.Record, error)
	Events(ctx context.Context, filter dto.EventFilterDTO) ([]models.Event, error)
	LocationHistory(ctx context.Context, id string) ([]models.LocationHistory, error)
	AllLocationHistory(ctx context.Context) ([]models.LocationHistory, error)
	Reset(ctx context.Context) error
}

type recordServiceImpl struct {
	repos         *repository.Repositories
	configuration *config.Configuration
	logService    LogService
	metrics       *metrics.Metrics
	clock         Clock
	mutex         sync.Mutex
}

func NewRecordService(
	repos *repository.Repositories,
	configuration *config.Configuration,
	logService LogService,
	metrics *metrics.Metrics,
	clock Clock,
) RecordService {
	return &recordServiceImpl{
		repos:         repos,
		configuration: configuration,
		logService:    logService,
		metrics:       metrics,
		clock:         clock,
	}
}

func (s *recordServiceImpl) Create(ctx context.Context, draft dto.RecordDraftDTO, opts ...CreateOption) (*models.Record, error) {
	s.mutex.Lock()
	defer s.mutex.Unlock()

	record, err := s.create(ctx, draft, opts...)
	s.metrics.Mutation("create", err)
	if err != nil {
		return nil, err
	}
	s.appendEvents(ctx, *record, nil, createdEvent(*record))
	return record, nil
}

func (s *recordServiceImpl) create(ctx context.Context, draft dto.RecordDraftDTO, opts ...CreateOption) (*models.Record, error) {
	if err := validateStruct(draft); err != nil {
		return nil, err
	}
	options := createOptions{}
	for _, opt := range opts {
		opt(&options)
	}

	record := mapper.ToRecordModel(draft)
	now := s.clock()
	if record.IsSection() {
		record.SectionID = models.RootSectionID
	}
	normalizeLoan(record, now)

	err := s.repos.Transaction(ctx, func(tx *repository.Repositories) error {
		if err := s.checkRecord(ctx, tx, record, nil); err != nil {
			return err
		}
		record.SerialNumber = 0
		if !record.IsSection() {
			serial, err := tx.Counters.Next(ctx, models.SerialCounter)
			if err != nil {
				return storageError("next serial number", err)
			}
			record.SerialNumber = serial
		}
		record.ID = options.id
		if record.ID == "" {
			record.ID = uuid.NewString()
		}
		record.CreatedAt = now
		record.UpdatedAt = now
		if options.createdAt != nil {
			record.CreatedAt = *options.createdAt
		}
		if options.updatedAt != nil {
			record.UpdatedAt = *options.updatedAt
		}
		if err := tx.Records.Create(ctx, record); err != nil {
			return storageError("create record", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return record, nil
}

func (s *recordServiceImpl) Get(ctx context.Context, id string) (*models.Record, error) {
	record, err := s.repos.Records.FindByID(ctx, id)
	if err != nil {
		return nil, storageError("find record", err)
	}
	if record == nil {
		return nil, notFound("record", id)
	}
	return record, nil
}

func (s *recordServiceImpl) List(ctx context.Context) ([]models.Record, error) {
	records, err := s.repos.Records.FindAll(ctx)
	if err != nil {
		return nil, storageError("list records", err)
	}
	return records, nil
}

func (s *recordServiceImpl) Update(ctx context.Context, id string, patch dto.RecordPatchDTO) (*models.Record, error) {
	if err := validateStruct(patch); err != nil {
		return nil, err
	}
	return s.modify(ctx, "update", id, func(record *models.Record) ([]models.Event, error) {
		if patch.Kind != nil && *patch.Kind != record.Kind {
			return nil, invalidArgument("type of record %s cannot change", record.ID)
		}
		before := record.Clone()
		mapper.ApplyRecordPatch(record, patch)
		now := s.clock()
		normalizeLoan(record, now)
		return diffEvents(before, *record, now), nil
	})
}

func (s *recordServiceImpl) Archive(ctx context.Context, id string) (*models.Record, error) {
	return s.setArchived(ctx, "archive", id, true)
}

func (s *recordServiceImpl) Restore(ctx context.Context, id string) (*models.Record, error) {
	return s.setArchived(ctx, "restore", id, false)
}

func (s *recordServiceImpl) setArchived(ctx context.Context, operation string, id string, archived bool) (*models.Record, error) {
	return s.modify(ctx, operation, id, func(record *models.Record) ([]models.Event, error) {
		record.IsArchived = archived
		return []models.Event{archivedEvent(*record)}, nil
	})
}

func (s *recordServiceImpl) Modify(ctx context.Context, id string, fn ModifyFunc) (*models.Record, error) {
	return s.modify(ctx, "modify", id, fn)
}

func (s *recordServiceImpl) modify(ctx context.Context, operation string, id string, fn ModifyFunc) (*models.Record, error) {
	s.mutex.Lock()
	defer s.mutex.Unlock()

	var before, after models.Record
	var events []models.Event
	err := s.repos.Transaction(ctx, func(tx *repository.Repositories) error {
		current, err := tx.Records.FindByID(ctx, id)
		if err != nil {
			return storageError("find record", err)
		}
		if current == nil {
			return notFound("record", id)
		}
		before = current.Clone()
		working := current.Clone()
		events, err = fn(&working)
		if err != nil {
			return err
		}
		if working.Kind != before.Kind {
			return invalidArgument("type of record %s cannot change", id)
		}
		working.ID = before.ID
		working.SerialNumber = before.SerialNumber
		working.CreatedAt = before.CreatedAt
		working.UpdatedAt = s.clock()
		normalizeLoan(&working, working.UpdatedAt)
		if err := s.checkRecord(ctx, tx, &working, &before); err != nil {
			return err
		}
		if err := tx.Records.Update(ctx, &working); err != nil {
			return storageError("update record", err)
		}
		after = working
		return nil
	})
	s.metrics.Mutation(operation, err)
	if err != nil {
		return nil, err
	}
	s.appendEvents(ctx, after, &before, events...)
	return &after, nil
}

func (s *recordServiceImpl) Delete(ctx context.Context, id string) error {
	s.mutex.Lock()
	defer s.mutex.Unlock()

	var deleted models.Record
	err := s.repos.Transaction(ctx, func(tx *repository.Repositories) error {
		record, err := tx.Records.FindByID(ctx, id)
		if err != nil {
			return storageError("find record", err)
		}
		if record == nil {
			return notFound("record", id)
		}
		if err := tx.Records.Delete(ctx, id); err != nil {
			return storageError("delete record", err)
		}
		deleted = *record
		return nil
	})
	s.metrics.Mutation("delete", err)
	if err != nil {
		return err
	}
	s.appendEvents(ctx, deleted, nil, deletedEvent(deleted))
	return nil
}

func (s *recordServiceImpl) Copy(ctx context.Context, id string, targetSectionID string) (*models.Record, error) {
	s.mutex.Lock()
	defer s.mutex.Unlock()

	source, err := s.Get(ctx, id)
	if err != nil {
		s.metrics.Mutation("copy", err)
		return nil, err
	}
	draft := mapper.ToRecordDraft(*source)
	draft.Name = source.Name + " (copy)"
	draft.IsOnLoan = false
	draft.LoanedTo = ""
	draft.LoanedAt = nil
	draft.LoanQuantity = nil
	draft.ParentID = nil
	draft.ContainedItemIDs = nil
	draft.IsArchived = false
	if !source.IsSection() && targetSectionID != "" {
		draft.SectionID = targetSectionID
	}

	duplicate, err := s.create(ctx, draft)
	s.metrics.Mutation("copy", err)
	if err != nil {
		return nil, err
	}
	s.appendEvents(ctx, *duplicate, nil, createdEvent(*duplicate), copiedEvent(*source, *duplicate))
	return duplicate, nil
}

func (s *recordServiceImpl) Events(ctx context.Context, filter dto.EventFilterDTO) ([]models.Event, error) {
	events, err := s.repos.Events.List(ctx, repository.EventQuery{
		ItemID: filter.ItemID,
		Types:  filter.Types,
		Limit:  filter.Limit,
	})
	if err != nil {
		return nil, storageError("list events", err)
	}
	return events, nil
}

func (s *recordServiceImpl) LocationHistory(ctx context.Context, id string) ([]models.LocationHistory, error) {
	entries, err := s.repos.Locations.FindByItem(ctx, id)
	if err != nil {
		return nil, storageError("list location history", err)
	}
	return entries, nil
}

func (s *recordServiceImpl) AllLocationHistory(ctx context.Context) ([]models.LocationHistory, error) {
	entries, err := s.repos.Locations.FindAll(ctx)
	if err != nil {
		return nil, storageError("list location history", err)
	}
	return entries, nil
}

// Reset removes every record together with the event and location logs.
// The serial counter is kept so serial numbers are never reused.
func (s *recordServiceImpl) Reset(ctx context.Context) error {
	s.mutex.Lock()
	defer s.mutex.Unlock()

	err := s.repos.Transaction(ctx, func(tx *repository.Repositories) error {
		if err := tx.Records.DeleteAll(ctx); err != nil {
			return storageError("clear records", err)
		}
		if err := tx.Events.DeleteAll(ctx); err != nil {
			return storageError("clear events", err)
		}
		if err := tx.Locations.DeleteAll(ctx); err != nil {
			return storageError("clear location history", err)
		}
		return nil
	})
	s.metrics.Mutation("reset", err)
	if err == nil {
		s.logService.Log.WithFields(logrus.Fields{"operation": "reset"}).Info("store cleared")
	}
	return err
}

// checkRecord enforces the kind, placement and loan rules on a record about
// to be written. previous is nil for new records.
func (s *recordServiceImpl) checkRecord(ctx context.Context, tx *repository.Repositories, record *models.Record, previous *models.Record) error {
	if strings.TrimSpace(record.Name) == "" {
		return invalidArgument("name is required")
	}
	if record.Price < 0 || record.Weight < 0 || record.Quantity < 0 {
		return invalidArgument("price, weight and quantity must not be negative")
	}
	if !record.Condition.Valid() {
		return invalidArgument("unknown condition %q", record.Condition)
	}
	if record.ID != "" && record.Parent() == record.ID {
		return invalidArgument("record %s cannot be its own parent", record.ID)
	}

	switch record.Kind {
	case models.KindSection:
		if record.SectionID != models.RootSectionID {
			return invalidArgument("sections belong to %q", models.RootSectionID)
		}
		if record.IsOnLoan {
			return invalidArgument("sections cannot be loaned")
		}
		if record.ViewType != "" && !record.ViewType.Valid() {
			return invalidArgument("unknown view type %q", record.ViewType)
		}
	case models.KindItem:
		if record.Emoji != "" || record.Color != "" || record.ViewType != "" || record.SortOrder != 0 {
			return invalidArgument("emoji, color, viewType and sortOrder are only allowed on sections")
		}
		if record.SectionID == "" {
			return invalidArgument("sectionId is required for items")
		}
		if previous == nil || previous.SectionID != record.SectionID {
			section, err := tx.Records.FindByID(ctx, record.SectionID)
			if err != nil {
				return storageError("find section", err)
			}
			if section == nil || !section.IsSection() {
				return invalidArgument("section %s does not exist", record.SectionID)
			}
		}
	default:
		return invalidArgument("unknown record type %q", record.Kind)
	}

	if record.IsOnLoan {
		if strings.TrimSpace(record.LoanedTo) == "" {
			return invalidArgument("loanedTo is required for a loan")
		}
		if record.LoanQuantity != nil && (*record.LoanQuantity < 1 || *record.LoanQuantity > record.Quantity) {
			return invalidArgument("loan quantity %d must be between 1 and %d", *record.LoanQuantity, record.Quantity)
		}
	}
	return nil
}

// normalizeLoan clears loan details of records not on loan and stamps the
// loan date of new loans.
func normalizeLoan(record *models.Record, now time.Time) {
	if !record.IsOnLoan {
		record.LoanedTo = ""
		record.LoanedAt = nil
		record.LoanQuantity = nil
		return
	}
	if record.LoanedAt == nil {
		loanedAt := now
		record.LoanedAt = &loanedAt
	}
}

// appendEvents writes the events of a committed mutation. Failures are
// logged and never undo the mutation.
func (s *recordServiceImpl) appendEvents(ctx context.Context, record models.Record, before *models.Record, events ...models.Event) {
	timestamp := s.clock()
	for i := range events {
		event := events[i]
		event.ID = uuid.NewString()
		event.ItemID = record.ID
		if event.ItemName == "" {
			event.ItemName = record.Name
		}
		event.Timestamp = timestamp
		if err := s.repos.Events.Append(ctx, &event); err != nil {
			s.metrics.EventFailed()
			s.logService.Log.WithFields(logrus.Fields{
				"event":  event.Type,
				"itemId": record.ID,
				"error":  err.Error(),
			}).Warn("failed to append event")
			continue
		}
		s.metrics.EventAppended(string(event.Type))

		if event.Type == models.EventMoved && before != nil {
			s.appendLocationHistory(ctx, record, *before, timestamp)
		}
	}

	if _, err := s.repos.Events.Trim(ctx, s.configuration.Inventory.EventRetention); err != nil {
		s.logService.Log.WithFields(logrus.Fields{
			"error": err.Error(),
		}).Warn("failed to trim event log")
	}
}

func (s *recordServiceImpl) appendLocationHistory(ctx context.Context, record models.Record, before models.Record, movedAt time.Time) {
	entry := &models.LocationHistory{
		ID:           uuid.NewString(),
		ItemID:       record.ID,
		FromLocation: before.LocationPath,
		ToLocation:   record.LocationPath,
		MovedAt:      movedAt,
	}
	if entry.FromLocation == nil {
		entry.FromLocation = []string{}
	}
	if entry.ToLocation == nil {
		entry.ToLocation = []string{}
	}
	if err := s.repos.Locations.Append(ctx, entry); err != nil {
		s.logService.Log.WithFields(logrus.Fields{
			"itemId": record.ID,
			"error":  err.Error(),
		}).Warn("failed to append location history")
		return
	}
	if _, err := s.repos.Locations.Trim(ctx, s.configuration.Inventory.LocationHistoryRetention); err != nil {
		s.logService.Log.WithFields(logrus.Fields{
			"error": err.Error(),
		}).Warn("failed to trim location history")
	}
}
