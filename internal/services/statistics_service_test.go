package services

import (
	"Hoard/internal/dto"
	"Hoard/internal/models"
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func statisticsFixture(now time.Time) []models.Record {
	day := 24 * time.Hour
	longAgo := now.Add(-40 * day)
	recently := now.Add(-2 * day)
	return []models.Record{
		{BaseModel: models.BaseModel{ID: "garage", CreatedAt: now}, Kind: models.KindSection, Name: "Garage", SectionID: models.RootSectionID},
		{BaseModel: models.BaseModel{ID: "kitchen", CreatedAt: now}, Kind: models.KindSection, Name: "Kitchen", SectionID: models.RootSectionID},
		{
			BaseModel: models.BaseModel{ID: "drill", CreatedAt: time.Date(2024, 1, 5, 0, 0, 0, 0, time.UTC)},
			Kind:      models.KindItem, Name: "Drill", SectionID: "garage",
			Price: 100, Weight: 2, Quantity: 2, Condition: models.ConditionGood,
			Tags:     []string{"tools", "power"},
			IsOnLoan: true, LoanedTo: "Bob", LoanedAt: &longAgo,
		},
		{
			BaseModel: models.BaseModel{ID: "saw", CreatedAt: time.Date(2024, 1, 20, 0, 0, 0, 0, time.UTC)},
			Kind:      models.KindItem, Name: "Saw", SectionID: "garage",
			Price: 30, Weight: 1, Quantity: 1, Condition: models.ConditionFair,
			Tags:     []string{"tools"},
			IsOnLoan: true, LoanedTo: "Ann", LoanedAt: &recently,
		},
		{
			BaseModel: models.BaseModel{ID: "kettle", CreatedAt: time.Date(2023, 11, 2, 0, 0, 0, 0, time.UTC)},
			Kind:      models.KindItem, Name: "Kettle", SectionID: "kitchen",
			Price: 40, Weight: 0.5, Quantity: 1, Condition: models.ConditionGood,
			Tags:           []string{"appliance"},
			WarrantyExpiry: ptr(now.Add(-day)),
		},
		{
			BaseModel: models.BaseModel{ID: "lamp", CreatedAt: time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC)},
			Kind:      models.KindItem, Name: "Lamp", SectionID: "attic",
			Price: 10, Quantity: 3, Condition: models.ConditionNew,
			IsArchived:     true,
			WarrantyExpiry: ptr(now.Add(day)),
		},
	}
}

func TestComputeStatistics_Totals(t *testing.T) {
	now := time.Date(2024, 3, 10, 12, 0, 0, 0, time.UTC)
	stats := ComputeStatistics(statisticsFixture(now), now, StatisticsOptions{TopTags: 10, LoanAgingDays: 30})

	assert.Equal(t, 4, stats.TotalItems)
	assert.Equal(t, 7, stats.TotalQuantity)
	assert.InDelta(t, 300.0, stats.TotalValue, 1e-9)
	assert.InDelta(t, 5.5, stats.TotalWeight, 1e-9)
	assert.InDelta(t, 75.0, stats.AverageValue, 1e-9)
	assert.Equal(t, 2, stats.LoanedItems)
	assert.Equal(t, 1, stats.ArchivedItems)
	assert.Equal(t, map[models.Condition]int{
		models.ConditionGood: 2,
		models.ConditionFair: 1,
		models.ConditionNew:  1,
	}, stats.ByCondition)

	require.NotNil(t, stats.MostExpensive)
	assert.Equal(t, "drill", stats.MostExpensive.ID)
	require.NotNil(t, stats.Oldest)
	assert.Equal(t, "kettle", stats.Oldest.ID)
	require.NotNil(t, stats.Newest)
	assert.Equal(t, "lamp", stats.Newest.ID)
}

func TestComputeStatistics_BySectionKeepsSectionOrder(t *testing.T) {
	now := time.Date(2024, 3, 10, 12, 0, 0, 0, time.UTC)
	stats := ComputeStatistics(statisticsFixture(now), now, StatisticsOptions{})

	require.Len(t, stats.BySection, 3)
	assert.Equal(t, dto.SectionStatistics{SectionID: "garage", Name: "Garage", Count: 2, Quantity: 3, Value: 230}, stats.BySection[0])
	assert.Equal(t, dto.SectionStatistics{SectionID: "kitchen", Name: "Kitchen", Count: 1, Quantity: 1, Value: 40}, stats.BySection[1])
	assert.Equal(t, "attic", stats.BySection[2].SectionID)
	assert.Empty(t, stats.BySection[2].Name)
}

func TestComputeStatistics_TagsAndMonths(t *testing.T) {
	now := time.Date(2024, 3, 10, 12, 0, 0, 0, time.UTC)
	stats := ComputeStatistics(statisticsFixture(now), now, StatisticsOptions{TopTags: 2})

	assert.Equal(t, []dto.TagCount{{Tag: "tools", Count: 2}, {Tag: "appliance", Count: 1}}, stats.TopTags)
	assert.Equal(t, []dto.MonthCount{
		{Month: "2023-11", Count: 1},
		{Month: "2024-01", Count: 2},
		{Month: "2024-03", Count: 1},
	}, stats.MonthlyAdditions)
}

func TestComputeStatistics_OverdueLoansAndWarranties(t *testing.T) {
	now := time.Date(2024, 3, 10, 12, 0, 0, 0, time.UTC)
	stats := ComputeStatistics(statisticsFixture(now), now, StatisticsOptions{LoanAgingDays: 30})

	require.Len(t, stats.OverdueLoans, 1)
	assert.Equal(t, "drill", stats.OverdueLoans[0].ItemID)
	assert.Equal(t, "Bob", stats.OverdueLoans[0].LoanedTo)
	assert.Equal(t, 40, stats.OverdueLoans[0].Days)

	require.Len(t, stats.ExpiredWarranties, 1)
	assert.Equal(t, "kettle", stats.ExpiredWarranties[0].ItemID)
}

func TestComputeStatistics_Empty(t *testing.T) {
	stats := ComputeStatistics(nil, time.Now(), StatisticsOptions{TopTags: 10})

	assert.Zero(t, stats.TotalItems)
	assert.Zero(t, stats.AverageValue)
	assert.Nil(t, stats.MostExpensive)
	assert.NotNil(t, stats.BySection)
	assert.NotNil(t, stats.TopTags)
	assert.Empty(t, stats.MonthlyAdditions)
}

func TestStatisticsService_Statistics(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	section := env.section(t, "Garage")
	env.item(t, dto.RecordDraftDTO{Name: "Drill", SectionID: section.ID, Quantity: 5, Price: 1000, Tags: []string{"tools"}})
	env.item(t, dto.RecordDraftDTO{Name: "Hammer", SectionID: section.ID, Quantity: 1, Price: 20, Tags: []string{"tools"}})

	stats, err := NewStatisticsService(env.records, env.configuration, env.clock.Now).Statistics(ctx)
	require.NoError(t, err)
	assert.Equal(t, 2, stats.TotalItems)
	assert.Equal(t, 6, stats.TotalQuantity)
	assert.InDelta(t, 5020.0, stats.TotalValue, 1e-9)
	require.Len(t, stats.BySection, 1)
	assert.Equal(t, "Garage", stats.BySection[0].Name)
	assert.Equal(t, []dto.TagCount{{Tag: "tools", Count: 2}}, stats.TopTags)
	assert.Equal(t, []dto.MonthCount{{Month: "2024-03", Count: 2}}, stats.MonthlyAdditions)
}
