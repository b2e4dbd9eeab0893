package cmd

import (
	"Hoard/internal/config"
	"Hoard/internal/handlers"
	"Hoard/internal/metrics"
	"Hoard/internal/services"
	"gorm.io/gorm"
)

type Server struct {
	Configuration     *config.Configuration
	DB                *gorm.DB
	Metrics           *metrics.Metrics
	LogService        services.LogService
	RecordService     services.RecordService
	RecordHandler     *handlers.RecordHandler
	LoanHandler       *handlers.LoanHandler
	MoverHandler      *handlers.MoverHandler
	TreeHandler       *handlers.TreeHandler
	SearchHandler     *handlers.SearchHandler
	StatisticsService services.StatisticsService
	StatisticsHandler *handlers.StatisticsHandler
	ExchangeService   services.ExchangeService
	ExchangeHandler   *handlers.ExchangeHandler
	SettingsHandler   *handlers.SettingsHandler
	JanitorService    *services.Janitor
	JanitorHandler    *handlers.JanitorHandler
}

func NewServer(
	configuration *config.Configuration,
	db *gorm.DB,
	metrics *metrics.Metrics,
	logService services.LogService,
	recordService services.RecordService,
	recordHandler *handlers.RecordHandler,
	loanHandler *handlers.LoanHandler,
	moverHandler *handlers.MoverHandler,
	treeHandler *handlers.TreeHandler,
	searchHandler *handlers.SearchHandler,
	statisticsService services.StatisticsService,
	statisticsHandler *handlers.StatisticsHandler,
	exchangeService services.ExchangeService,
	exchangeHandler *handlers.ExchangeHandler,
	settingsHandler *handlers.SettingsHandler,
	janitorService *services.Janitor,
	janitorHandler *handlers.JanitorHandler,
) *Server {
	return &Server{
		Configuration:     configuration,
		DB:                db,
		Metrics:           metrics,
		LogService:        logService,
		RecordService:     recordService,
		RecordHandler:     recordHandler,
		LoanHandler:       loanHandler,
		MoverHandler:      moverHandler,
		TreeHandler:       treeHandler,
		SearchHandler:     searchHandler,
		StatisticsService: statisticsService,
		StatisticsHandler: statisticsHandler,
		ExchangeService:   exchangeService,
		ExchangeHandler:   exchangeHandler,
		SettingsHandler:   settingsHandler,
		JanitorService:    janitorService,
		JanitorHandler:    janitorHandler,
	}
}
