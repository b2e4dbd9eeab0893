package services

import (
	"Hoard/internal/config"
	"Hoard/internal/models"
	"Hoard/internal/repository"
	"context"
	"encoding/json"
	"sync"

	"github.com/sirupsen/logrus"
)

type SettingsService interface {
	Get(ctx context.Context) (*models.AppSettings, error)
	// Save applies a partial JSON update on top of the current settings.
	Save(ctx context.Context, update []byte) (*models.AppSettings, error)
}

type settingsServiceImpl struct {
	settingRepo   repository.SettingRepository
	configuration *config.Configuration
	logService    LogService
	mutex         sync.Mutex
}

func NewSettingsService(repos *repository.Repositories, configuration *config.Configuration, logService LogService) SettingsService {
	return &settingsServiceImpl{
		settingRepo:   repos.Settings,
		configuration: configuration,
		logService:    logService,
	}
}

func (s *settingsServiceImpl) Get(ctx context.Context) (*models.AppSettings, error) {
	settings := s.defaults()
	stored, err := s.settingRepo.Get(ctx, models.AppSettingsKey)
	if err != nil {
		return nil, storageError("get settings", err)
	}
	if stored != nil && stored.Value != "" {
		if err := json.Unmarshal([]byte(stored.Value), &settings); err != nil {
			s.logService.Log.WithFields(logrus.Fields{
				"error": err.Error(),
			}).Warn("stored settings are unreadable, using defaults")
			settings = s.defaults()
		}
	}
	return &settings, nil
}

func (s *settingsServiceImpl) Save(ctx context.Context, update []byte) (*models.AppSettings, error) {
	s.mutex.Lock()
	defer s.mutex.Unlock()

	settings, err := s.Get(ctx)
	if err != nil {
		return nil, err
	}
	if err := json.Unmarshal(update, settings); err != nil {
		return nil, &ValidationError{Fields: map[string]string{"settings": err.Error()}}
	}
	if err := validateStruct(settings); err != nil {
		return nil, err
	}
	data, err := json.Marshal(settings)
	if err != nil {
		return nil, err
	}
	if err := s.settingRepo.Put(ctx, &models.Setting{Key: models.AppSettingsKey, Value: string(data)}); err != nil {
		return nil, storageError("save settings", err)
	}
	return settings, nil
}

func (s *settingsServiceImpl) defaults() models.AppSettings {
	defaults := s.configuration.Settings
	return models.AppSettings{
		UnitSystem:        defaults.UnitSystem,
		WeightUnit:        defaults.WeightUnit,
		Currency:          defaults.Currency,
		Language:          defaults.Language,
		DateFormat:        defaults.DateFormat,
		DefaultViewType:   models.ViewType(defaults.DefaultViewType),
		AutoBackup:        defaults.AutoBackup == nil || *defaults.AutoBackup,
		BackupFrequency:   defaults.BackupFrequency,
		ShowSerialNumbers: defaults.ShowSerialNumbers == nil || *defaults.ShowSerialNumbers,
	}
}
