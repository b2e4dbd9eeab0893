package services

import (
	"Hoard/internal/dto"
	"Hoard/internal/models"
	"context"
	"sort"
	"strconv"
	"strings"
)

var sortFields = map[string]bool{
	"name":         true,
	"createdAt":    true,
	"updatedAt":    true,
	"price":        true,
	"weight":       true,
	"quantity":     true,
	"serialNumber": true,
}

type SearchService interface {
	Search(ctx context.Context, criteria dto.SearchCriteriaDTO) ([]models.Record, error)
	SearchFilter(ctx context.Context, filter string, base dto.SearchCriteriaDTO) ([]models.Record, error)
}

type searchServiceImpl struct {
	recordService RecordService
}

func NewSearchService(recordService RecordService) SearchService {
	return &searchServiceImpl{recordService: recordService}
}

func (s *searchServiceImpl) Search(ctx context.Context, criteria dto.SearchCriteriaDTO) ([]models.Record, error) {
	if err := ValidateCriteria(criteria); err != nil {
		return nil, err
	}
	records, err := s.recordService.List(ctx)
	if err != nil {
		return nil, err
	}
	return Search(records, criteria), nil
}

// SearchFilter parses an expression such as "price ge '10' and tags eq 'tools'"
// and applies it on top of base.
func (s *searchServiceImpl) SearchFilter(ctx context.Context, filter string, base dto.SearchCriteriaDTO) ([]models.Record, error) {
	criteria, err := ParseFilter(filter, base)
	if err != nil {
		return nil, err
	}
	return s.Search(ctx, criteria)
}

func ValidateCriteria(criteria dto.SearchCriteriaDTO) error {
	if criteria.SortBy != "" && !sortFields[criteria.SortBy] {
		return invalidArgument("cannot sort by %q", criteria.SortBy)
	}
	switch criteria.SortOrder {
	case "", dto.SortAsc, dto.SortDesc:
	default:
		return invalidArgument("unknown sort order %q", criteria.SortOrder)
	}
	if criteria.Condition != nil && !criteria.Condition.Valid() {
		return invalidArgument("unknown condition %q", *criteria.Condition)
	}
	return nil
}

// Search filters and orders records without touching the input slice.
// Archived records go first unless requested, sections unless requested.
// The sort is stable and an empty SortBy keeps the input order.
func Search(records []models.Record, criteria dto.SearchCriteriaDTO) []models.Record {
	query := strings.ToLower(strings.TrimSpace(criteria.Query))
	idSet := toSet(criteria.IDs)
	tagSet := toSet(criteria.Tags)

	result := make([]models.Record, 0, len(records))
	for _, record := range records {
		if record.IsArchived && !criteria.IncludeArchived {
			continue
		}
		if record.IsSection() && !criteria.IncludeSections {
			continue
		}
		if query != "" && !matchesQuery(record, query) {
			continue
		}
		if criteria.Name != nil && !matchesName(record, *criteria.Name) {
			continue
		}
		if criteria.SectionID != "" && record.SectionID != criteria.SectionID {
			continue
		}
		if len(idSet) > 0 && !idSet[record.ID] {
			continue
		}
		if !inRange(record.Price, criteria.PriceRange) || !inRange(record.Weight, criteria.WeightRange) {
			continue
		}
		if criteria.IsOnLoan != nil && record.IsOnLoan != *criteria.IsOnLoan {
			continue
		}
		if criteria.Condition != nil && record.Condition != *criteria.Condition {
			continue
		}
		if len(tagSet) > 0 && !hasAnyTag(record, tagSet) {
			continue
		}
		if criteria.CreatedFrom != nil && record.CreatedAt.Before(*criteria.CreatedFrom) {
			continue
		}
		if criteria.CreatedTo != nil && record.CreatedAt.After(*criteria.CreatedTo) {
			continue
		}
		result = append(result, record)
	}

	if criteria.SortBy != "" {
		less := lessFunc(criteria.SortBy)
		if criteria.SortOrder == dto.SortDesc {
			sort.SliceStable(result, func(i, j int) bool { return less(result[j], result[i]) })
		} else {
			sort.SliceStable(result, func(i, j int) bool { return less(result[i], result[j]) })
		}
	}
	return result
}

func matchesName(record models.Record, name dto.NameMatch) bool {
	if name.Exact {
		return strings.EqualFold(strings.TrimSpace(record.Name), strings.TrimSpace(name.Value))
	}
	return strings.Contains(strings.ToLower(record.Name), strings.ToLower(name.Value))
}

func matchesQuery(record models.Record, query string) bool {
	if strings.Contains(strings.ToLower(record.Name), query) ||
		strings.Contains(strings.ToLower(record.Description), query) ||
		strings.Contains(strings.ToLower(record.Barcode), query) ||
		strings.Contains(strconv.FormatInt(record.SerialNumber, 10), query) {
		return true
	}
	for _, tag := range record.Tags {
		if strings.Contains(strings.ToLower(tag), query) {
			return true
		}
	}
	for _, segment := range record.LocationPath {
		if strings.Contains(strings.ToLower(segment), query) {
			return true
		}
	}
	return false
}

func inRange(value float64, r *dto.Range) bool {
	if r == nil {
		return true
	}
	return value >= r.Min && value <= r.Max
}

func hasAnyTag(record models.Record, tags map[string]bool) bool {
	for _, tag := range record.Tags {
		if tags[strings.ToLower(tag)] {
			return true
		}
	}
	return false
}

func toSet(values []string) map[string]bool {
	set := make(map[string]bool, len(values))
	for _, value := range values {
		set[value] = true
		set[strings.ToLower(value)] = true
	}
	return set
}

func lessFunc(field string) func(a, b models.Record) bool {
	switch field {
	case "name":
		return func(a, b models.Record) bool { return strings.ToLower(a.Name) < strings.ToLower(b.Name) }
	case "createdAt":
		return func(a, b models.Record) bool { return a.CreatedAt.Before(b.CreatedAt) }
	case "updatedAt":
		return func(a, b models.Record) bool { return a.UpdatedAt.Before(b.UpdatedAt) }
	case "price":
		return func(a, b models.Record) bool { return a.Price < b.Price }
	case "weight":
		return func(a, b models.Record) bool { return a.Weight < b.Weight }
	case "quantity":
		return func(a, b models.Record) bool { return a.Quantity < b.Quantity }
	default:
		return func(a, b models.Record) bool { return a.SerialNumber < b.SerialNumber }
	}
}
