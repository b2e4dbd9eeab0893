package services

import (
	"Hoard/internal/dto"
	"Hoard/internal/models"
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newJanitor(env *testEnv) *Janitor {
	return NewJanitorService(env.records, env.repos, NewDiscardLogService(), env.configuration, env.metrics, env.clock.Now)
}

func TestJanitor_RunCleanCycle(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()
	janitor := newJanitor(env)
	section := env.section(t, "Garage")
	env.item(t, dto.RecordDraftDTO{
		Name:      "Ladder",
		SectionID: section.ID,
		Quantity:  1,
		IsOnLoan:  true,
		LoanedTo:  "Neighbour",
		LoanedAt:  ptr(env.clock.Now().Add(-45 * 24 * time.Hour)),
	})
	env.item(t, dto.RecordDraftDTO{
		Name:           "Kettle",
		SectionID:      section.ID,
		WarrantyExpiry: ptr(env.clock.Now().Add(-time.Hour)),
	})

	for i := 0; i < 8; i++ {
		require.NoError(t, env.repos.Events.Append(ctx, &models.Event{
			ID:        fmt.Sprintf("extra-%d", i),
			Type:      models.EventUpdated,
			ItemID:    "elsewhere",
			Timestamp: env.clock.Now(),
		}))
		require.NoError(t, env.repos.Locations.Append(ctx, &models.LocationHistory{
			ID:           fmt.Sprintf("move-%d", i),
			ItemID:       "elsewhere",
			FromLocation: []string{},
			ToLocation:   []string{},
			MovedAt:      env.clock.Now(),
		}))
	}
	env.configuration.Inventory.EventRetention = 4
	env.configuration.Inventory.LocationHistoryRetention = 3

	report, err := janitor.RunCleanCycle(ctx)

	require.NoError(t, err)
	assert.Equal(t, int64(7), report.EventsTrimmed)
	assert.Equal(t, int64(5), report.LocationsTrimmed)
	assert.Equal(t, 1, report.OverdueLoans)
	assert.Equal(t, 1, report.ExpiredWarranties)
	assert.False(t, janitor.IsCleaning())

	count, err := env.repos.Events.Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(4), count)
}

func TestJanitor_ForceStartDoesNotOverlap(t *testing.T) {
	env := newTestEnv(t)
	janitor := newJanitor(env)

	require.True(t, janitor.tryStart())
	assert.ErrorIs(t, janitor.ForceStartCleanCycle(), ErrCleanInProgress)
	_, err := janitor.RunCleanCycle(context.Background())
	assert.ErrorIs(t, err, ErrCleanInProgress)
	janitor.finish()

	require.NoError(t, janitor.ForceStartCleanCycle())
	require.Eventually(t, func() bool { return !janitor.IsCleaning() }, time.Second, 5*time.Millisecond)
}

func TestJanitor_StartCleanCycleRejectsBadSchedule(t *testing.T) {
	env := newTestEnv(t)
	env.configuration.Server.CleanConfig.Schedule = "every now and then"
	janitor := newJanitor(env)

	assert.Error(t, janitor.StartCleanCycle())
}

func TestJanitor_StartAndStop(t *testing.T) {
	env := newTestEnv(t)
	janitor := newJanitor(env)

	require.NoError(t, janitor.StartCleanCycle())
	janitor.StopClean()
	assert.False(t, janitor.IsCleaning())
}
