package handlers

import (
	"Hoard/internal/dto"
	"Hoard/internal/models"
	"Hoard/internal/services"
	"context"

	"github.com/stretchr/testify/mock"
)

type MockRecordService struct {
	mock.Mock
}

func (m *MockRecordService) record(args mock.Arguments) (*models.Record, error) {
	if record, ok := args.Get(0).(*models.Record); ok {
		return record, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockRecordService) Create(ctx context.Context, draft dto.RecordDraftDTO, opts ...services.CreateOption) (*models.Record, error) {
	return m.record(m.Called(ctx, draft))
}

func (m *MockRecordService) Get(ctx context.Context, id string) (*models.Record, error) {
	return m.record(m.Called(ctx, id))
}

func (m *MockRecordService) List(ctx context.Context) ([]models.Record, error) {
	args := m.Called(ctx)
	return args.Get(0).([]models.Record), args.Error(1)
}

func (m *MockRecordService) Update(ctx context.Context, id string, patch dto.RecordPatchDTO) (*models.Record, error) {
	return m.record(m.Called(ctx, id, patch))
}

func (m *MockRecordService) Delete(ctx context.Context, id string) error {
	return m.Called(ctx, id).Error(0)
}

func (m *MockRecordService) Archive(ctx context.Context, id string) (*models.Record, error) {
	return m.record(m.Called(ctx, id))
}

func (m *MockRecordService) Restore(ctx context.Context, id string) (*models.Record, error) {
	return m.record(m.Called(ctx, id))
}

func (m *MockRecordService) Copy(ctx context.Context, id string, targetSectionID string) (*models.Record, error) {
	return m.record(m.Called(ctx, id, targetSectionID))
}

func (m *MockRecordService) Modify(ctx context.Context, id string, fn services.ModifyFunc) (*models.Record, error) {
	return m.record(m.Called(ctx, id, fn))
}

func (m *MockRecordService) Events(ctx context.Context, filter dto.EventFilterDTO) ([]models.Event, error) {
	args := m.Called(ctx, filter)
	return args.Get(0).([]models.Event), args.Error(1)
}

func (m *MockRecordService) LocationHistory(ctx context.Context, id string) ([]models.LocationHistory, error) {
	args := m.Called(ctx, id)
	return args.Get(0).([]models.LocationHistory), args.Error(1)
}

func (m *MockRecordService) AllLocationHistory(ctx context.Context) ([]models.LocationHistory, error) {
	args := m.Called(ctx)
	return args.Get(0).([]models.LocationHistory), args.Error(1)
}

func (m *MockRecordService) Reset(ctx context.Context) error {
	return m.Called(ctx).Error(0)
}

type MockLoanService struct {
	mock.Mock
}

func (m *MockLoanService) Loan(ctx context.Context, id string, quantity int, loanedTo string) (*models.Record, error) {
	args := m.Called(ctx, id, quantity, loanedTo)
	if record, ok := args.Get(0).(*models.Record); ok {
		return record, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockLoanService) Return(ctx context.Context, id string) (*models.Record, error) {
	args := m.Called(ctx, id)
	if record, ok := args.Get(0).(*models.Record); ok {
		return record, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockLoanService) Available(ctx context.Context, id string) (*dto.AvailabilityDTO, error) {
	args := m.Called(ctx, id)
	if availability, ok := args.Get(0).(*dto.AvailabilityDTO); ok {
		return availability, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockLoanService) Loans(ctx context.Context) ([]models.Record, error) {
	args := m.Called(ctx)
	return args.Get(0).([]models.Record), args.Error(1)
}

type MockMoverService struct {
	mock.Mock
}

func (m *MockMoverService) Move(ctx context.Context, id string, request dto.MoveRequestDTO) (*models.Record, error) {
	args := m.Called(ctx, id, request)
	if record, ok := args.Get(0).(*models.Record); ok {
		return record, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockMoverService) Copy(ctx context.Context, id string, request dto.CopyRequestDTO) (*models.Record, error) {
	args := m.Called(ctx, id, request)
	if record, ok := args.Get(0).(*models.Record); ok {
		return record, args.Error(1)
	}
	return nil, args.Error(1)
}

type MockTreeService struct {
	mock.Mock
}

func (m *MockTreeService) Tree(ctx context.Context, opts services.TreeOptions) ([]*dto.TreeNodeDTO, error) {
	args := m.Called(ctx, opts)
	return args.Get(0).([]*dto.TreeNodeDTO), args.Error(1)
}

func (m *MockTreeService) Descendants(ctx context.Context, id string) (map[string]bool, error) {
	args := m.Called(ctx, id)
	return args.Get(0).(map[string]bool), args.Error(1)
}

type MockSearchService struct {
	mock.Mock
}

func (m *MockSearchService) Search(ctx context.Context, criteria dto.SearchCriteriaDTO) ([]models.Record, error) {
	args := m.Called(ctx, criteria)
	return args.Get(0).([]models.Record), args.Error(1)
}

func (m *MockSearchService) SearchFilter(ctx context.Context, filter string, base dto.SearchCriteriaDTO) ([]models.Record, error) {
	args := m.Called(ctx, filter, base)
	return args.Get(0).([]models.Record), args.Error(1)
}

type MockStatisticsService struct {
	mock.Mock
}

func (m *MockStatisticsService) Statistics(ctx context.Context) (*dto.StatisticsDTO, error) {
	args := m.Called(ctx)
	if stats, ok := args.Get(0).(*dto.StatisticsDTO); ok {
		return stats, args.Error(1)
	}
	return nil, args.Error(1)
}

type MockExchangeService struct {
	mock.Mock
}

func (m *MockExchangeService) Export(ctx context.Context) (*dto.ExportDocumentDTO, error) {
	args := m.Called(ctx)
	if document, ok := args.Get(0).(*dto.ExportDocumentDTO); ok {
		return document, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockExchangeService) Import(ctx context.Context, raw []byte, mode dto.ImportMode) (*dto.ImportResultDTO, error) {
	args := m.Called(ctx, string(raw), mode)
	if result, ok := args.Get(0).(*dto.ImportResultDTO); ok {
		return result, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockExchangeService) ExportFile(ctx context.Context, path string) (*dto.ExportDocumentDTO, error) {
	args := m.Called(ctx, path)
	if document, ok := args.Get(0).(*dto.ExportDocumentDTO); ok {
		return document, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockExchangeService) ImportFile(ctx context.Context, path string, mode dto.ImportMode) (*dto.ImportResultDTO, error) {
	args := m.Called(ctx, path, mode)
	if result, ok := args.Get(0).(*dto.ImportResultDTO); ok {
		return result, args.Error(1)
	}
	return nil, args.Error(1)
}

type MockSettingsService struct {
	mock.Mock
}

func (m *MockSettingsService) Get(ctx context.Context) (*models.AppSettings, error) {
	args := m.Called(ctx)
	if settings, ok := args.Get(0).(*models.AppSettings); ok {
		return settings, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockSettingsService) Save(ctx context.Context, update []byte) (*models.AppSettings, error) {
	args := m.Called(ctx, string(update))
	if settings, ok := args.Get(0).(*models.AppSettings); ok {
		return settings, args.Error(1)
	}
	return nil, args.Error(1)
}
