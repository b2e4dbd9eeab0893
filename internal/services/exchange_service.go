package services

import (
	"Hoard/internal/config"
	"Hoard/internal/dto"
	"Hoard/internal/helpers"
	"Hoard/internal/mapper"
	"Hoard/internal/models"
	"context"
	"encoding/json"
	"fmt"
	"path/filepath"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

type ExchangeService interface {
	Export(ctx context.Context) (*dto.ExportDocumentDTO, error)
	Import(ctx context.Context, raw []byte, mode dto.ImportMode) (*dto.ImportResultDTO, error)
	ExportFile(ctx context.Context, path string) (*dto.ExportDocumentDTO, error)
	ImportFile(ctx context.Context, path string, mode dto.ImportMode) (*dto.ImportResultDTO, error)
}

type exchangeServiceImpl struct {
	recordService RecordService
	configuration *config.Configuration
	logService    LogService
	clock         Clock
}

func NewExchangeService(
	recordService RecordService,
	configuration *config.Configuration,
	logService LogService,
	clock Clock,
) ExchangeService {
	return &exchangeServiceImpl{
		recordService: recordService,
		configuration: configuration,
		logService:    logService,
		clock:         clock,
	}
}

func (s *exchangeServiceImpl) Export(ctx context.Context) (*dto.ExportDocumentDTO, error) {
	records, err := s.recordService.List(ctx)
	if err != nil {
		return nil, err
	}
	events, err := s.recordService.Events(ctx, dto.EventFilterDTO{})
	if err != nil {
		return nil, err
	}
	history, err := s.recordService.AllLocationHistory(ctx)
	if err != nil {
		return nil, err
	}
	if events == nil {
		events = []models.Event{}
	}
	if history == nil {
		history = []models.LocationHistory{}
	}

	document := &dto.ExportDocumentDTO{
		Version:         dto.ExportVersion,
		ExportDate:      s.clock(),
		Items:           []models.Record{},
		Sections:        []models.Record{},
		Events:          events,
		LocationHistory: history,
		Goals:           []json.RawMessage{},
		Notes:           []json.RawMessage{},
	}
	for _, record := range records {
		if record.IsSection() {
			document.Sections = append(document.Sections, record)
		} else {
			document.Items = append(document.Items, record)
		}
	}
	checksum, err := helpers.ChecksumJSON(struct {
		Items    []models.Record `json:"items"`
		Sections []models.Record `json:"sections"`
	}{document.Items, document.Sections})
	if err != nil {
		return nil, fmt.Errorf("error computing export checksum: %w", err)
	}
	document.Metadata = dto.ExportMetadataDTO{
		AppVersion:    dto.ExportVersion,
		TotalItems:    len(document.Items),
		TotalSections: len(document.Sections),
		TotalEvents:   len(document.Events),
		Checksum:      checksum,
	}
	return document, nil
}

// ExportFile writes the export document to path. An empty path writes a
// dated backup into the storage folder.
func (s *exchangeServiceImpl) ExportFile(ctx context.Context, path string) (*dto.ExportDocumentDTO, error) {
	document, err := s.Export(ctx)
	if err != nil {
		return nil, err
	}
	if path == "" {
		path = filepath.Join(s.configuration.Storage.Path, fmt.Sprintf("hoard-%s.json", document.ExportDate.Format("2006-01-02")))
	}
	data, err := json.MarshalIndent(document, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("error encoding export: %w", err)
	}
	if err := helpers.WriteFile(path, data); err != nil {
		return nil, fmt.Errorf("error writing export to %s: %w", path, err)
	}
	return document, nil
}

func (s *exchangeServiceImpl) ImportFile(ctx context.Context, path string, mode dto.ImportMode) (*dto.ImportResultDTO, error) {
	limit := int64(s.configuration.Server.RequestConfig.SizeLimit) * 1024 * 1024
	data, err := helpers.ReadFile(path, limit)
	if err != nil {
		return nil, fmt.Errorf("error reading import from %s: %w", path, err)
	}
	return s.Import(ctx, data, mode)
}

// Import loads a document produced by Export. The document is checked as a
// whole before anything is written; after that every record is imported on
// its own and failures are reported in the result.
func (s *exchangeServiceImpl) Import(ctx context.Context, raw []byte, mode dto.ImportMode) (*dto.ImportResultDTO, error) {
	if mode == "" {
		mode = dto.ImportMerge
	}
	if mode != dto.ImportMerge && mode != dto.ImportReplace {
		return nil, invalidArgument("unknown import mode %q", mode)
	}

	var document dto.ImportDocumentDTO
	if err := json.Unmarshal(raw, &document); err != nil {
		return nil, &ValidationError{Fields: map[string]string{"document": err.Error()}}
	}
	if document.Version == "" {
		return nil, &ValidationError{Fields: map[string]string{"version": "is required"}}
	}
	if document.Items == nil {
		return nil, &ValidationError{Fields: map[string]string{"items": "must be a list"}}
	}

	if mode == dto.ImportReplace {
		if err := s.recordService.Reset(ctx); err != nil {
			return nil, err
		}
	}

	result := &dto.ImportResultDTO{
		Mode:     mode,
		Errors:   []dto.ImportErrorDTO{},
		Warnings: []string{},
	}
	sections := decodeImported(document.Sections, models.KindSection, result)
	items := decodeImported(document.Items, models.KindItem, result)

	ids := map[string]string{}
	for _, batch := range [][]importedRecord{sections, items} {
		for _, imported := range batch {
			if imported.record.ID != "" {
				ids[imported.record.ID] = uuid.NewString()
			}
		}
	}

	for _, imported := range sections {
		if s.importRecord(ctx, imported, ids, result) {
			result.ImportedSections++
		}
	}
	for _, imported := range items {
		if s.importRecord(ctx, imported, ids, result) {
			result.ImportedItems++
		}
	}

	if len(document.Goals) > 0 {
		result.Warnings = append(result.Warnings, fmt.Sprintf("%d goals are not supported and were skipped", len(document.Goals)))
	}
	if len(document.Notes) > 0 {
		result.Warnings = append(result.Warnings, fmt.Sprintf("%d notes are not supported and were skipped", len(document.Notes)))
	}
	if len(document.Events) > 0 {
		result.Warnings = append(result.Warnings, fmt.Sprintf("%d events were not imported", len(document.Events)))
	}

	s.logService.Log.WithFields(logrus.Fields{
		"mode":     mode,
		"items":    result.ImportedItems,
		"sections": result.ImportedSections,
		"errors":   len(result.Errors),
	}).Info("import finished")
	return result, nil
}

type importedRecord struct {
	index  int
	record models.Record
}

// decodeImported reads each raw entry on top of the defaults an older
// document may leave out.
func decodeImported(raw []json.RawMessage, kind models.Kind, result *dto.ImportResultDTO) []importedRecord {
	out := make([]importedRecord, 0, len(raw))
	for i, entry := range raw {
		record := models.Record{Condition: models.ConditionGood}
		if kind == models.KindItem {
			record.Quantity = 1
		}
		if err := json.Unmarshal(entry, &record); err != nil {
			result.Errors = append(result.Errors, dto.ImportErrorDTO{
				Index:   i,
				Kind:    string(kind),
				Message: err.Error(),
			})
			continue
		}
		record.Kind = kind
		out = append(out, importedRecord{index: i, record: record})
	}
	return out
}

func (s *exchangeServiceImpl) importRecord(ctx context.Context, imported importedRecord, ids map[string]string, result *dto.ImportResultDTO) bool {
	record := imported.record
	if record.IsSection() {
		record.SectionID = models.RootSectionID
		record.IsOnLoan = false
	} else {
		record.SectionID = remapID(ids, record.SectionID)
		record.Emoji, record.Color, record.ViewType, record.SortOrder = "", "", "", 0
	}
	if record.ParentID != nil {
		parent := remapID(ids, *record.ParentID)
		record.ParentID = &parent
	}
	for i, id := range record.ContainedItemIDs {
		record.ContainedItemIDs[i] = remapID(ids, id)
	}

	var opts []CreateOption
	if id, ok := ids[record.ID]; ok {
		opts = append(opts, WithRecordID(id))
	}
	opts = append(opts, WithTimestamps(record.CreatedAt, record.UpdatedAt))

	if _, err := s.recordService.Create(ctx, mapper.ToRecordDraft(record), opts...); err != nil {
		result.Errors = append(result.Errors, dto.ImportErrorDTO{
			Index:   imported.index,
			Kind:    string(record.Kind),
			Name:    record.Name,
			Message: err.Error(),
		})
		return false
	}
	return true
}

func remapID(ids map[string]string, id string) string {
	if mapped, ok := ids[id]; ok {
		return mapped
	}
	return id
}
