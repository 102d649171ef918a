package scheduler

import (
	"context"
	"time"

	"okc_stats_sync/internal/infra/config"

	"github.com/robfig/cron/v3"
	"github.com/sirupsen/logrus"
)

// KPISyncer refreshes the daily/weekly/monthly KPI snapshots.
type KPISyncer interface {
	SyncAll(ctx context.Context) error
}

// PremiumSyncer refreshes the premium snapshots.
type PremiumSyncer interface {
	SyncCurrent(ctx context.Context) error
	BackfillLastSixMonths(ctx context.Context) error
}

// SLCollector collects the service-level report.
type SLCollector interface {
	Collect(ctx context.Context) error
}

// SyncScheduler triggers the sync cycles on their cron specs. It is the
// single-flight guarantee for the destination tables: one cron engine with
// SkipIfStillRunning means a slow cycle is skipped, never overlapped, so
// the replace-writer's snapshot invariant holds without table locking.
type SyncScheduler struct {
	cronEngine     *cron.Cron
	kpiService     KPISyncer
	premiumService PremiumSyncer
	slService      SLCollector
	logger         *logrus.Entry
	baseCtx        context.Context
	cfg            *config.AppConfig
}

func NewSyncScheduler(
	baseCtx context.Context,
	kpiService KPISyncer,
	premiumService PremiumSyncer,
	slService SLCollector,
	logger *logrus.Entry,
	cfg *config.AppConfig,
) *SyncScheduler {
	return &SyncScheduler{
		cronEngine: cron.New(
			cron.WithLocation(time.Local), // Use server's local time for cron
			cron.WithChain(cron.SkipIfStillRunning(cron.PrintfLogger(logger))),
		),
		kpiService:     kpiService,
		premiumService: premiumService,
		slService:      slService,
		logger:         logger,
		baseCtx:        baseCtx,
		cfg:            cfg,
	}
}

func (s *SyncScheduler) Start() {
	s.logger.Info("Starting sync scheduler...")

	_, err := s.cronEngine.AddFunc(s.cfg.CronSpecKPI, func() {
		s.logger.Info("Cron job triggered for KPI snapshot refresh.")
		ctx, cancel := context.WithTimeout(s.baseCtx, 10*time.Minute)
		defer cancel()
		if err := s.kpiService.SyncAll(ctx); err != nil {
			s.logger.Errorf("Error during KPI snapshot refresh: %v", err)
		}
	})
	if err != nil {
		s.logger.Fatalf("Could not add KPI refresh cron job: %v", err)
	}

	_, err = s.cronEngine.AddFunc(s.cfg.CronSpecPremium, func() {
		s.logger.Info("Cron job triggered for premium refresh.")
		ctx, cancel := context.WithTimeout(s.baseCtx, 30*time.Minute)
		defer cancel()
		if err := s.premiumService.SyncCurrent(ctx); err != nil {
			s.logger.Errorf("Error during premium refresh: %v", err)
		}
	})
	if err != nil {
		s.logger.Fatalf("Could not add premium refresh cron job: %v", err)
	}

	_, err = s.cronEngine.AddFunc(s.cfg.CronSpecPremiumBackfill, func() {
		s.logger.Info("Cron job triggered for 6-month premium backfill.")
		ctx, cancel := context.WithTimeout(s.baseCtx, time.Hour) // Longer timeout: 6 periods x all divisions
		defer cancel()
		if err := s.premiumService.BackfillLastSixMonths(ctx); err != nil {
			s.logger.Errorf("Error during premium backfill: %v", err)
		}
	})
	if err != nil {
		s.logger.Fatalf("Could not add premium backfill cron job: %v", err)
	}

	_, err = s.cronEngine.AddFunc(s.cfg.CronSpecSL, func() {
		s.logger.Info("Cron job triggered for SL collection.")
		ctx, cancel := context.WithTimeout(s.baseCtx, 5*time.Minute)
		defer cancel()
		if err := s.slService.Collect(ctx); err != nil {
			s.logger.Errorf("Error during SL collection: %v", err)
		}
	})
	if err != nil {
		s.logger.Fatalf("Could not add SL collection cron job: %v", err)
	}

	s.cronEngine.Start()
	s.logger.Info("Sync scheduler started with jobs.")
}

func (s *SyncScheduler) Stop() {
	s.logger.Info("Stopping sync scheduler...")
	ctx := s.cronEngine.Stop() // Stops the scheduler from adding new jobs, waits for running jobs.
	<-ctx.Done()               // Wait for graceful shutdown
	s.logger.Info("Sync scheduler gracefully stopped.")
}
