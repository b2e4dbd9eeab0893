//go:build wireinject
// +build wireinject

package main

import (
	"Hoard/cmd"
	"Hoard/database"
	"Hoard/internal/handlers"
	"Hoard/internal/metrics"
	"Hoard/internal/repository"
	"Hoard/internal/services"
	"github.com/google/wire"
)

func InitializeServer(configurationPath string) (*cmd.Server, error) {
	wire.Build(
		cmd.NewServer,
		Provider,
		database.SetupDatabase,
		repository.NewRepositories,
		metrics.NewMetrics,
		services.NewClock,
		services.NewLogService,
		services.NewRecordService,
		handlers.NewRecordHandler,
		services.NewLoanService,
		handlers.NewLoanHandler,
		services.NewTreeService,
		handlers.NewTreeHandler,
		services.NewMoverService,
		handlers.NewMoverHandler,
		services.NewSearchService,
		handlers.NewSearchHandler,
		services.NewStatisticsService,
		handlers.NewStatisticsHandler,
		services.NewExchangeService,
		handlers.NewExchangeHandler,
		services.NewSettingsService,
		handlers.NewSettingsHandler,
		services.NewJanitorService,
		handlers.NewJanitorHandler,
		wire.Bind(new(handlers.Cleaner), new(*services.Janitor)),
	)
	return nil, nil
}
