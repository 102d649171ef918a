package app

import (
	"context"
	"fmt"
	"time"

	"okc_stats_sync/internal/domain/division"
	"okc_stats_sync/internal/domain/kpi"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

// KPIClient is the upstream API surface the KPI sync needs.
type KPIClient interface {
	PeriodKPI(ctx context.Context, div division.Division, report kpi.ReportType, days int) (*kpi.Report, error)
}

// KPIService orchestrates the KPI sync cycles: it plans one fetch task per
// (division, report-type) pair, fans them out through the bounded fetcher,
// aggregates the results per employee and replace-writes the period's
// snapshot table. Each period gets its own write.
type KPIService struct {
	api     KPIClient
	repo    kpi.SnapshotRepository
	fetcher *BoundedFetcher[*kpi.Report]
	log     *logrus.Entry
}

func NewKPIService(api KPIClient, repo kpi.SnapshotRepository, fetchConcurrency int, log *logrus.Entry) *KPIService {
	return &KPIService{
		api:     api,
		repo:    repo,
		fetcher: NewBoundedFetcher[*kpi.Report](fetchConcurrency, log),
		log:     log,
	}
}

// SyncAll refreshes the daily, weekly and monthly snapshots in sequence.
func (s *KPIService) SyncAll(ctx context.Context) error {
	for _, period := range []kpi.Period{kpi.PeriodDay, kpi.PeriodWeek, kpi.PeriodMonth} {
		if err := s.SyncPeriod(ctx, period); err != nil {
			return err
		}
	}
	return nil
}

// SyncPeriod runs one full sync cycle for the given snapshot period.
func (s *KPIService) SyncPeriod(ctx context.Context, period kpi.Period) error {
	start := time.Now()
	log := s.log.WithFields(logrus.Fields{
		"run_id": uuid.NewString(),
		"period": string(period),
	})
	log.WithField("state", statePlanned).Infof("Starting %s KPI sync", period)

	tasks := make([]FetchTask[*kpi.Report], 0, len(division.Specialists())*len(kpi.AllReportTypes()))
	for _, div := range division.Specialists() {
		for _, report := range kpi.AllReportTypes() {
			div, report := div, report
			tasks = append(tasks, FetchTask[*kpi.Report]{
				Division: string(div),
				Report:   string(report),
				Run: func(ctx context.Context) (*kpi.Report, error) {
					return s.api.PeriodKPI(ctx, div, report, period.Days())
				},
			})
		}
	}

	log.WithField("state", stateFetching).Debugf("Running %d fetch tasks", len(tasks))
	results := s.fetcher.FetchAll(ctx, tasks)

	log.WithField("state", stateAggregating).Debug("Aggregating fetch results")
	byName := aggregateKPI(results, log)
	if len(byName) == 0 {
		log.Warnf("No KPI data to insert for %s period", period)
		return nil
	}

	log.WithField("state", stateWriting).Debugf("Replacing %s with %d records", period.TableName(), len(byName))
	count, err := s.repo.ReplaceSnapshot(ctx, period, sortedRecords(byName))
	if err != nil {
		log.WithField("state", stateFailed).Errorf("Error during %s KPI sync after %.2f seconds: %v", period, time.Since(start).Seconds(), err)
		return fmt.Errorf("error replacing %s KPI snapshot: %w", period, err)
	}

	log.WithField("state", stateDone).Infof("Finished %s KPI sync: %d records, taken %.2f seconds", period, count, time.Since(start).Seconds())
	return nil
}
