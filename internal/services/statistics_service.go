package services

import (
	"Hoard/internal/config"
	"Hoard/internal/dto"
	"Hoard/internal/models"
	"context"
	"sort"
	"time"
)

type StatisticsOptions struct {
	TopTags       int
	LoanAgingDays int
}

type StatisticsService interface {
	Statistics(ctx context.Context) (*dto.StatisticsDTO, error)
}

type statisticsServiceImpl struct {
	recordService RecordService
	configuration *config.Configuration
	clock         Clock
}

func NewStatisticsService(recordService RecordService, configuration *config.Configuration, clock Clock) StatisticsService {
	return &statisticsServiceImpl{
		recordService: recordService,
		configuration: configuration,
		clock:         clock,
	}
}

func (s *statisticsServiceImpl) Statistics(ctx context.Context) (*dto.StatisticsDTO, error) {
	records, err := s.recordService.List(ctx)
	if err != nil {
		return nil, err
	}
	stats := ComputeStatistics(records, s.clock(), StatisticsOptions{
		TopTags:       s.configuration.Inventory.TopTags,
		LoanAgingDays: s.configuration.Inventory.LoanAgingDays,
	})
	return &stats, nil
}

// ComputeStatistics rolls up every item, archived ones included. Sections
// only contribute their names to the per-section breakdown.
func ComputeStatistics(records []models.Record, now time.Time, opts StatisticsOptions) dto.StatisticsDTO {
	stats := dto.StatisticsDTO{
		BySection:         []dto.SectionStatistics{},
		ByCondition:       map[models.Condition]int{},
		TopTags:           []dto.TagCount{},
		MonthlyAdditions:  []dto.MonthCount{},
		OverdueLoans:      []dto.OverdueLoan{},
		ExpiredWarranties: []dto.ExpiredWarranty{},
	}

	var sectionOrder []string
	sectionNames := map[string]string{}
	bySection := map[string]*dto.SectionStatistics{}
	tagCounts := map[string]int{}
	monthCounts := map[string]int{}
	agingLimit := time.Duration(opts.LoanAgingDays) * 24 * time.Hour

	for _, record := range records {
		if record.IsSection() {
			sectionNames[record.ID] = record.Name
			sectionOrder = append(sectionOrder, record.ID)
		}
	}

	for _, record := range records {
		if record.IsSection() {
			continue
		}
		value := record.Price * float64(record.Quantity)

		stats.TotalItems++
		stats.TotalQuantity += record.Quantity
		stats.TotalValue += value
		stats.TotalWeight += record.Weight * float64(record.Quantity)
		stats.ByCondition[record.Condition]++

		section, ok := bySection[record.SectionID]
		if !ok {
			section = &dto.SectionStatistics{SectionID: record.SectionID, Name: sectionNames[record.SectionID]}
			bySection[record.SectionID] = section
		}
		section.Count++
		section.Quantity += record.Quantity
		section.Value += value

		if record.IsOnLoan {
			stats.LoanedItems++
			if record.LoanedAt != nil && now.Sub(*record.LoanedAt) > agingLimit {
				stats.OverdueLoans = append(stats.OverdueLoans, dto.OverdueLoan{
					ItemID:   record.ID,
					Name:     record.Name,
					LoanedTo: record.LoanedTo,
					LoanedAt: *record.LoanedAt,
					Days:     int(now.Sub(*record.LoanedAt) / (24 * time.Hour)),
				})
			}
		}
		if record.IsArchived {
			stats.ArchivedItems++
		}
		if record.WarrantyExpiry != nil && record.WarrantyExpiry.Before(now) {
			stats.ExpiredWarranties = append(stats.ExpiredWarranties, dto.ExpiredWarranty{
				ItemID:         record.ID,
				Name:           record.Name,
				WarrantyExpiry: *record.WarrantyExpiry,
			})
		}

		if record.Price > 0 && (stats.MostExpensive == nil || record.Price > stats.MostExpensive.Price) {
			stats.MostExpensive = ptrRecord(record)
		}
		if stats.Oldest == nil || record.CreatedAt.Before(stats.Oldest.CreatedAt) {
			stats.Oldest = ptrRecord(record)
		}
		if stats.Newest == nil || record.CreatedAt.After(stats.Newest.CreatedAt) {
			stats.Newest = ptrRecord(record)
		}

		for _, tag := range record.Tags {
			tagCounts[tag]++
		}
		monthCounts[record.CreatedAt.UTC().Format("2006-01")]++
	}

	if stats.TotalItems > 0 {
		stats.AverageValue = stats.TotalValue / float64(stats.TotalItems)
	}

	for _, id := range sectionOrder {
		if section, ok := bySection[id]; ok {
			stats.BySection = append(stats.BySection, *section)
			delete(bySection, id)
		}
	}
	var orphaned []string
	for id := range bySection {
		orphaned = append(orphaned, id)
	}
	sort.Strings(orphaned)
	for _, id := range orphaned {
		stats.BySection = append(stats.BySection, *bySection[id])
	}

	for tag, count := range tagCounts {
		stats.TopTags = append(stats.TopTags, dto.TagCount{Tag: tag, Count: count})
	}
	sort.Slice(stats.TopTags, func(i, j int) bool {
		if stats.TopTags[i].Count != stats.TopTags[j].Count {
			return stats.TopTags[i].Count > stats.TopTags[j].Count
		}
		return stats.TopTags[i].Tag < stats.TopTags[j].Tag
	})
	if opts.TopTags > 0 && len(stats.TopTags) > opts.TopTags {
		stats.TopTags = stats.TopTags[:opts.TopTags]
	}

	for month, count := range monthCounts {
		stats.MonthlyAdditions = append(stats.MonthlyAdditions, dto.MonthCount{Month: month, Count: count})
	}
	sort.Slice(stats.MonthlyAdditions, func(i, j int) bool {
		return stats.MonthlyAdditions[i].Month < stats.MonthlyAdditions[j].Month
	})

	sort.SliceStable(stats.OverdueLoans, func(i, j int) bool {
		return stats.OverdueLoans[i].LoanedAt.Before(stats.OverdueLoans[j].LoanedAt)
	})
	sort.SliceStable(stats.ExpiredWarranties, func(i, j int) bool {
		return stats.ExpiredWarranties[i].WarrantyExpiry.Before(stats.ExpiredWarranties[j].WarrantyExpiry)
	})
	return stats
}

func ptrRecord(record models.Record) *models.Record {
	clone := record.Clone()
	return &clone
}
