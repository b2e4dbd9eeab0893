package services

import (
	"Hoard/internal/dto"
	"Hoard/internal/models"
	"Hoard/internal/repository"
	"context"
	"strings"
)

type LoanService interface {
	Loan(ctx context.Context, id string, quantity int, loanedTo string) (*models.Record, error)
	Return(ctx context.Context, id string) (*models.Record, error)
	Available(ctx context.Context, id string) (*dto.AvailabilityDTO, error)
	Loans(ctx context.Context) ([]models.Record, error)
}

type loanServiceImpl struct {
	recordService RecordService
	recordRepo    repository.RecordRepository
	clock         Clock
}

func NewLoanService(recordService RecordService, repos *repository.Repositories, clock Clock) LoanService {
	return &loanServiceImpl{
		recordService: recordService,
		recordRepo:    repos.Records,
		clock:         clock,
	}
}

// Loan lends quantity units of an item. A loan replaces any loan already
// recorded on the item; quantities do not stack.
func (s *loanServiceImpl) Loan(ctx context.Context, id string, quantity int, loanedTo string) (*models.Record, error) {
	loanedTo = strings.TrimSpace(loanedTo)
	return s.recordService.Modify(ctx, id, func(record *models.Record) ([]models.Event, error) {
		if record.IsSection() {
			return nil, invalidArgument("section %s cannot be loaned", id)
		}
		if quantity < 1 {
			return nil, invalidArgument("loan quantity must be at least 1, got %d", quantity)
		}
		if quantity > record.Quantity {
			return nil, invalidArgument("cannot loan %d of %d units", quantity, record.Quantity)
		}
		if loanedTo == "" {
			return nil, invalidArgument("loanedTo is required")
		}
		now := s.clock()
		loanQuantity := quantity
		record.IsOnLoan = true
		record.LoanedTo = loanedTo
		record.LoanedAt = &now
		record.LoanQuantity = &loanQuantity
		return []models.Event{loanedEvent(*record)}, nil
	})
}

func (s *loanServiceImpl) Return(ctx context.Context, id string) (*models.Record, error) {
	return s.recordService.Modify(ctx, id, func(record *models.Record) ([]models.Event, error) {
		if !record.IsOnLoan {
			return nil, invalidArgument("record %s is not on loan", id)
		}
		event := returnedEvent(*record, s.clock())
		record.IsOnLoan = false
		record.LoanedTo = ""
		record.LoanedAt = nil
		record.LoanQuantity = nil
		return []models.Event{event}, nil
	})
}

func (s *loanServiceImpl) Available(ctx context.Context, id string) (*dto.AvailabilityDTO, error) {
	record, err := s.recordService.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	return &dto.AvailabilityDTO{
		ItemID:    record.ID,
		Quantity:  record.Quantity,
		Loaned:    record.LoanedQuantity(),
		Available: AvailableQuantity(*record),
	}, nil
}

func (s *loanServiceImpl) Loans(ctx context.Context) ([]models.Record, error) {
	records, err := s.recordRepo.FindOnLoan(ctx)
	if err != nil {
		return nil, storageError("list loans", err)
	}
	return records, nil
}

// AvailableQuantity is the number of units not out on loan.
func AvailableQuantity(record models.Record) int {
	available := record.Quantity - record.LoanedQuantity()
	if available < 0 {
		return 0
	}
	return available
}
