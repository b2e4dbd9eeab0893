package services

import (
	"Hoard/internal/models"
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSettingsService_GetReturnsDefaults(t *testing.T) {
	env := newTestEnv(t)
	settings := NewSettingsService(env.repos, env.configuration, NewDiscardLogService())

	got, err := settings.Get(context.Background())

	require.NoError(t, err)
	assert.Equal(t, "metric", got.UnitSystem)
	assert.Equal(t, "kg", got.WeightUnit)
	assert.Equal(t, "EUR", got.Currency)
	assert.Equal(t, models.ViewList, got.DefaultViewType)
	assert.Equal(t, "weekly", got.BackupFrequency)
	assert.True(t, got.AutoBackup)
	assert.True(t, got.ShowSerialNumbers)
}

func TestSettingsService_SaveMergesPartialUpdates(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()
	settings := NewSettingsService(env.repos, env.configuration, NewDiscardLogService())

	saved, err := settings.Save(ctx, []byte(`{"currency":"RUB","showSerialNumbers":false}`))
	require.NoError(t, err)
	assert.Equal(t, "RUB", saved.Currency)
	assert.False(t, saved.ShowSerialNumbers)

	_, err = settings.Save(ctx, []byte(`{"defaultViewType":"grid"}`))
	require.NoError(t, err)

	got, err := settings.Get(ctx)
	require.NoError(t, err)
	assert.Equal(t, "RUB", got.Currency)
	assert.False(t, got.ShowSerialNumbers)
	assert.Equal(t, models.ViewGrid, got.DefaultViewType)
	assert.Equal(t, "kg", got.WeightUnit)
}

func TestSettingsService_SaveRejectsInvalidValues(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()
	settings := NewSettingsService(env.repos, env.configuration, NewDiscardLogService())

	_, err := settings.Save(ctx, []byte(`{"defaultViewType":"table"}`))
	var validationError *ValidationError
	require.True(t, errors.As(err, &validationError))
	assert.Contains(t, validationError.Fields, "defaultViewType")

	_, err = settings.Save(ctx, []byte(`{"currency":`))
	assert.ErrorIs(t, err, ErrValidation)

	got, err := settings.Get(ctx)
	require.NoError(t, err)
	assert.Equal(t, models.ViewList, got.DefaultViewType)
}
