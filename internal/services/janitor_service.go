package services

import (
	"Hoard/internal/config"
	"Hoard/internal/metrics"
	"Hoard/internal/repository"
	"context"
	"errors"
	"fmt"
	"github.com/robfig/cron/v3"
	"github.com/sirupsen/logrus"
	"sync"
)

var ErrCleanInProgress = errors.New("cleaning is in progress")

// CleanReport summarises one clean cycle.
type CleanReport struct {
	EventsTrimmed     int64 `json:"eventsTrimmed"`
	LocationsTrimmed  int64 `json:"locationsTrimmed"`
	OverdueLoans      int   `json:"overdueLoans"`
	ExpiredWarranties int   `json:"expiredWarranties"`
}

type Janitor struct {
	recordService RecordService
	eventRepo     repository.EventRepository
	locationRepo  repository.LocationHistoryRepository
	configuration *config.Configuration
	logService    LogService
	metrics       *metrics.Metrics
	clock         Clock
	cleaning      bool
	mutex         sync.Mutex
	cron          *cron.Cron
}

func NewJanitorService(
	recordService RecordService,
	repos *repository.Repositories,
	logService LogService,
	configuration *config.Configuration,
	metrics *metrics.Metrics,
	clock Clock,
) *Janitor {
	return &Janitor{
		recordService: recordService,
		eventRepo:     repos.Events,
		locationRepo:  repos.Locations,
		logService:    logService,
		cleaning:      false,
		mutex:         sync.Mutex{},
		configuration: configuration,
		metrics:       metrics,
		clock:         clock,
		cron:          cron.New(),
	}
}

// ForceStartCleanCycle runs one cycle in the background. It refuses to start
// while another cycle is running.
func (j *Janitor) ForceStartCleanCycle() error {
	if !j.tryStart() {
		return ErrCleanInProgress
	}

	go func() {
		defer j.finish()
		_, _ = j.startClean(context.Background(), true)
	}()

	return nil
}

// RunCleanCycle runs one cycle and waits for it.
func (j *Janitor) RunCleanCycle(ctx context.Context) (*CleanReport, error) {
	if !j.tryStart() {
		return nil, ErrCleanInProgress
	}
	defer j.finish()
	return j.startClean(ctx, true)
}

func (j *Janitor) StartCleanCycle() error {
	j.logService.Log.Debug("starting cleaning job")

	cronSchedule := j.configuration.Server.CleanConfig.Schedule
	_, err := j.cron.AddFunc(cronSchedule, func() {
		if !j.tryStart() {
			return
		}
		defer j.finish()
		_, _ = j.startClean(context.Background(), false)
	})
	if err != nil {
		j.logService.Log.WithFields(logrus.Fields{
			"job":   "clean",
			"cron":  cronSchedule,
			"error": err.Error(),
		}).Error("Failed to start cleaning job")
		return fmt.Errorf("error scheduling clean job %q: %w", cronSchedule, err)
	}
	j.cron.Start()
	return nil
}

// StopClean stops the schedule and waits for a running cycle to return.
func (j *Janitor) StopClean() {
	<-j.cron.Stop().Done()
	j.logService.Log.WithFields(logrus.Fields{
		"job":    "clean",
		"status": "stopped",
	}).Info("Janitor clean stopped")
}

func (j *Janitor) IsCleaning() bool {
	j.mutex.Lock()
	defer j.mutex.Unlock()
	return j.cleaning
}

func (j *Janitor) tryStart() bool {
	j.mutex.Lock()
	defer j.mutex.Unlock()
	if j.cleaning {
		return false
	}
	j.cleaning = true
	return true
}

func (j *Janitor) finish() {
	j.mutex.Lock()
	j.cleaning = false
	j.mutex.Unlock()
}

func (j *Janitor) startClean(ctx context.Context, forced bool) (*CleanReport, error) {
	j.metrics.JanitorRun(forced)
	var logFields logrus.Fields
	if !forced {
		logFields = logrus.Fields{
			"job":    "clean",
			"status": "start",
			"cron":   j.configuration.Server.CleanConfig.Schedule,
		}
	} else {
		logFields = logrus.Fields{
			"job":    "clean",
			"status": "forced",
		}
	}
	j.logService.Log.WithFields(logFields).Debug("cleaning job started")

	report := &CleanReport{}
	var failed error

	trimmed, err := j.eventRepo.Trim(ctx, j.configuration.Inventory.EventRetention)
	if err != nil {
		failed = errors.Join(failed, storageError("trim events", err))
		j.logService.Log.WithFields(logrus.Fields{
			"job":    "clean",
			"status": "error",
			"error":  err.Error(),
		}).Error("Failed to trim event log")
	}
	report.EventsTrimmed = trimmed
	j.metrics.Trimmed("events", trimmed)

	trimmed, err = j.locationRepo.Trim(ctx, j.configuration.Inventory.LocationHistoryRetention)
	if err != nil {
		failed = errors.Join(failed, storageError("trim location history", err))
		j.logService.Log.WithFields(logrus.Fields{
			"job":    "clean",
			"status": "error",
			"error":  err.Error(),
		}).Error("Failed to trim location history")
	}
	report.LocationsTrimmed = trimmed
	j.metrics.Trimmed("locations", trimmed)

	records, err := j.recordService.List(ctx)
	if err != nil {
		failed = errors.Join(failed, err)
		j.logService.Log.WithFields(logrus.Fields{
			"job":    "clean",
			"status": "error",
			"error":  err.Error(),
		}).Error("Failed to list records")
	} else {
		stats := ComputeStatistics(records, j.clock(), StatisticsOptions{
			LoanAgingDays: j.configuration.Inventory.LoanAgingDays,
		})
		for _, loan := range stats.OverdueLoans {
			j.logService.Log.WithFields(logrus.Fields{
				"job":      "clean",
				"itemId":   loan.ItemID,
				"item":     loan.Name,
				"loanedTo": loan.LoanedTo,
				"days":     loan.Days,
			}).Warn("loan is overdue")
		}
		for _, warranty := range stats.ExpiredWarranties {
			j.logService.Log.WithFields(logrus.Fields{
				"job":            "clean",
				"itemId":         warranty.ItemID,
				"item":           warranty.Name,
				"warrantyExpiry": warranty.WarrantyExpiry,
			}).Info("warranty expired")
		}
		report.OverdueLoans = len(stats.OverdueLoans)
		report.ExpiredWarranties = len(stats.ExpiredWarranties)
	}

	j.logService.Log.WithFields(logrus.Fields{
		"job":               "clean",
		"status":            "success",
		"eventsTrimmed":     report.EventsTrimmed,
		"locationsTrimmed":  report.LocationsTrimmed,
		"overdueLoans":      report.OverdueLoans,
		"expiredWarranties": report.ExpiredWarranties,
	}).Info("cleaning job finished")
	return report, failed
}
