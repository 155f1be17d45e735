package scheduler

import (
	"context"
	"fmt"
	"time"

	"github.com/go-co-op/gocron"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/retail-sales-api/internal/config"
	"github.com/vfg2006/retail-sales-api/internal/usecases/ingesting"
)

// DatasetRefreshConfig holds the scheduling knobs for the periodic reload.
type DatasetRefreshConfig struct {
	CronSchedule string
	Enabled      bool
}

// DatasetRefreshService reloads the sales dataset on a cron schedule so the
// store tracks a dataset source that changes over time.
type DatasetRefreshService struct {
	scheduler *gocron.Scheduler
	config    DatasetRefreshConfig
	loader    ingesting.Loader
}

func NewDatasetRefreshService(
	loader ingesting.Loader,
	appConfig *config.Config,
) *DatasetRefreshService {
	refreshConfig := DatasetRefreshConfig{
		CronSchedule: appConfig.DatasetRefresh.CronSchedule,
		Enabled:      appConfig.DatasetRefresh.Enabled,
	}

	scheduler := gocron.NewScheduler(time.Local)

	logrus.WithFields(logrus.Fields{
		"cron_schedule": refreshConfig.CronSchedule,
		"enabled":       refreshConfig.Enabled,
	}).Info("dataset refresh scheduler configured")

	return &DatasetRefreshService{
		scheduler: scheduler,
		config:    refreshConfig,
		loader:    loader,
	}
}

// Start schedules the refresh job and stops it when ctx is cancelled.
func (s *DatasetRefreshService) Start(ctx context.Context) error {
	if !s.config.Enabled {
		logrus.Info("dataset refresh disabled by configuration")
		return nil
	}

	logrus.WithField("cron", s.config.CronSchedule).Info("starting dataset refresh scheduler")

	_, err := s.scheduler.Cron(s.config.CronSchedule).Do(func() {
		s.refreshDataset()
	})
	if err != nil {
		return fmt.Errorf("scheduling dataset refresh: %w", err)
	}

	s.scheduler.StartAsync()

	go func() {
		<-ctx.Done()
		logrus.Info("stopping dataset refresh scheduler")
		s.scheduler.Stop()
	}()

	return nil
}

func (s *DatasetRefreshService) refreshDataset() {
	startTime := time.Now()
	logrus.Info("scheduled dataset refresh starting")

	count, err := s.loader.Reload(context.Background())
	if err != nil {
		if err == ingesting.ErrLoadInProgress {
			logrus.Info("dataset refresh skipped, another load is running")
			return
		}
		logrus.WithError(err).Error("scheduled dataset refresh failed")
		return
	}

	logrus.WithFields(logrus.Fields{
		"records":  count,
		"duration": time.Since(startTime).String(),
	}).Info("scheduled dataset refresh finished")
}
