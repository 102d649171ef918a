package app

import (
	"context"
	"fmt"
	"time"

	"okc_stats_sync/internal/domain/division"
	"okc_stats_sync/internal/domain/premium"
	"okc_stats_sync/internal/infra/okcapi"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

// PremiumClient is the upstream API surface the premium sync needs.
type PremiumClient interface {
	SpecialistPremium(ctx context.Context, period string, div division.Division) ([]okcapi.SpecPremiumRow, error)
	HeadPremium(ctx context.Context, period string, div division.Division) ([]okcapi.HeadPremiumRow, error)
}

// PremiumService orchestrates the premium sync cycles. Routine syncs write
// once per category (specialists, heads) for the current period; historical
// backfills accumulate rows across all periods and perform a single
// terminal replace, so the destination is never truncated mid-backfill.
type PremiumService struct {
	api         PremiumClient
	repo        premium.Repository
	specFetcher *BoundedFetcher[[]okcapi.SpecPremiumRow]
	headFetcher *BoundedFetcher[[]okcapi.HeadPremiumRow]
	log         *logrus.Entry
	now         func() time.Time
}

func NewPremiumService(api PremiumClient, repo premium.Repository, fetchConcurrency int, log *logrus.Entry) *PremiumService {
	return &PremiumService{
		api:         api,
		repo:        repo,
		specFetcher: NewBoundedFetcher[[]okcapi.SpecPremiumRow](fetchConcurrency, log),
		headFetcher: NewBoundedFetcher[[]okcapi.HeadPremiumRow](fetchConcurrency, log),
		log:         log,
		now:         time.Now,
	}
}

// SyncCurrent refreshes both premium snapshots for the current month. Both
// categories are attempted even if the first fails.
func (s *PremiumService) SyncCurrent(ctx context.Context) error {
	period := currentPeriod(s.now())
	specErr := s.SyncSpecialists(ctx, period)
	headErr := s.SyncHeads(ctx, period)
	if specErr != nil {
		return specErr
	}
	return headErr
}

// SyncSpecialists runs one sync cycle for the specialist premium table.
func (s *PremiumService) SyncSpecialists(ctx context.Context, period string) error {
	start := time.Now()
	log := s.log.WithFields(logrus.Fields{"run_id": uuid.NewString(), "flow": "spec_premium"})
	log.WithField("state", statePlanned).Infof("Starting specialists premium sync for period %s", period)

	rows, err := s.fetchSpecialists(ctx, period, log)
	if err != nil {
		log.WithField("state", stateFailed).Errorf("Error during specialists premium sync after %.2f seconds: %v", time.Since(start).Seconds(), err)
		return err
	}
	if len(rows) == 0 {
		log.Warn("No premium data to insert")
		return nil
	}

	log.WithField("state", stateWriting).Debugf("Replacing %d specialist premium rows", len(rows))
	count, err := s.repo.ReplaceSpecialists(ctx, rows)
	if err != nil {
		log.WithField("state", stateFailed).Errorf("Error during specialists premium sync after %.2f seconds: %v", time.Since(start).Seconds(), err)
		return fmt.Errorf("error replacing specialist premium snapshot: %w", err)
	}

	log.WithField("state", stateDone).Infof("Finished specialists premium sync: %d rows, taken %.2f seconds", count, time.Since(start).Seconds())
	return nil
}

// SyncHeads runs one sync cycle for the head premium table.
func (s *PremiumService) SyncHeads(ctx context.Context, period string) error {
	start := time.Now()
	log := s.log.WithFields(logrus.Fields{"run_id": uuid.NewString(), "flow": "head_premium"})
	log.WithField("state", statePlanned).Infof("Starting heads premium sync for period %s", period)

	rows, err := s.fetchHeads(ctx, period, log)
	if err != nil {
		log.WithField("state", stateFailed).Errorf("Error during heads premium sync after %.2f seconds: %v", time.Since(start).Seconds(), err)
		return err
	}
	if len(rows) == 0 {
		log.Warn("No head premium data to insert")
		return nil
	}

	log.WithField("state", stateWriting).Debugf("Replacing %d head premium rows", len(rows))
	count, err := s.repo.ReplaceHeads(ctx, rows)
	if err != nil {
		log.WithField("state", stateFailed).Errorf("Error during heads premium sync after %.2f seconds: %v", time.Since(start).Seconds(), err)
		return fmt.Errorf("error replacing head premium snapshot: %w", err)
	}

	log.WithField("state", stateDone).Infof("Finished heads premium sync: %d rows, taken %.2f seconds", count, time.Since(start).Seconds())
	return nil
}

// BackfillLastSixMonths rebuilds both premium tables from the last six
// monthly periods. Both categories are attempted even if the first fails.
func (s *PremiumService) BackfillLastSixMonths(ctx context.Context) error {
	periods := lastSixMonthPeriods(s.now())
	specErr := s.BackfillSpecialists(ctx, periods)
	headErr := s.BackfillHeads(ctx, periods)
	if specErr != nil {
		return specErr
	}
	return headErr
}

// BackfillSpecialists fetches specialist premium rows for every period,
// sequentially, and commits them in one terminal replace.
func (s *PremiumService) BackfillSpecialists(ctx context.Context, periods []string) error {
	start := time.Now()
	log := s.log.WithFields(logrus.Fields{"run_id": uuid.NewString(), "flow": "spec_premium_backfill"})
	log.Infof("Starting specialists premium backfill for %d periods: %v", len(periods), periods)

	var all []*premium.SpecialistRow
	for _, period := range periods {
		log.Infof("Processing specialists premium for period %s", period)
		rows, err := s.fetchSpecialists(ctx, period, log)
		if err != nil {
			log.WithField("state", stateFailed).Errorf("Error during specialists premium backfill after %.2f seconds: %v", time.Since(start).Seconds(), err)
			return err
		}
		all = append(all, rows...)
	}

	if len(all) == 0 {
		log.Warn("No premium data to insert for any period")
		return nil
	}

	count, err := s.repo.ReplaceSpecialists(ctx, all)
	if err != nil {
		log.WithField("state", stateFailed).Errorf("Error during specialists premium backfill after %.2f seconds: %v", time.Since(start).Seconds(), err)
		return fmt.Errorf("error replacing specialist premium snapshot: %w", err)
	}

	log.Infof("Finished specialists premium backfill for %d periods: %d rows, taken %.2f seconds", len(periods), count, time.Since(start).Seconds())
	return nil
}

// BackfillHeads fetches head premium rows for every period, sequentially,
// and commits them in one terminal replace.
func (s *PremiumService) BackfillHeads(ctx context.Context, periods []string) error {
	start := time.Now()
	log := s.log.WithFields(logrus.Fields{"run_id": uuid.NewString(), "flow": "head_premium_backfill"})
	log.Infof("Starting heads premium backfill for %d periods: %v", len(periods), periods)

	var all []*premium.HeadRow
	for _, period := range periods {
		log.Infof("Processing heads premium for period %s", period)
		rows, err := s.fetchHeads(ctx, period, log)
		if err != nil {
			log.WithField("state", stateFailed).Errorf("Error during heads premium backfill after %.2f seconds: %v", time.Since(start).Seconds(), err)
			return err
		}
		all = append(all, rows...)
	}

	if len(all) == 0 {
		log.Warn("No head premium data to insert for any period")
		return nil
	}

	count, err := s.repo.ReplaceHeads(ctx, all)
	if err != nil {
		log.WithField("state", stateFailed).Errorf("Error during heads premium backfill after %.2f seconds: %v", time.Since(start).Seconds(), err)
		return fmt.Errorf("error replacing head premium snapshot: %w", err)
	}

	log.Infof("Finished heads premium backfill for %d periods: %d rows, taken %.2f seconds", len(periods), count, time.Since(start).Seconds())
	return nil
}

// fetchSpecialists fans out one fetch task per specialist division for the
// period and converts the merged results into storage rows. Failed tasks
// contribute nothing; empty payloads log a warning.
func (s *PremiumService) fetchSpecialists(ctx context.Context, period string, log *logrus.Entry) ([]*premium.SpecialistRow, error) {
	divisions := division.Specialists()
	tasks := make([]FetchTask[[]okcapi.SpecPremiumRow], 0, len(divisions))
	for _, div := range divisions {
		div := div
		tasks = append(tasks, FetchTask[[]okcapi.SpecPremiumRow]{
			Division: string(div),
			Report:   "premium",
			Run: func(ctx context.Context) ([]okcapi.SpecPremiumRow, error) {
				return s.api.SpecialistPremium(ctx, period, div)
			},
		})
	}

	log.WithField("state", stateFetching).Debugf("Running %d fetch tasks for period %s", len(tasks), period)
	results := s.specFetcher.FetchAll(ctx, tasks)

	log.WithField("state", stateAggregating).Debug("Converting fetch results")
	var rows []*premium.SpecialistRow
	for _, res := range results {
		if res.Failed() {
			continue
		}
		if len(res.Value) == 0 {
			log.Warnf("No premium data returned for division %s, period %s", res.Task.Division, period)
			continue
		}
		for _, apiRow := range res.Value {
			row, err := specialistRowFromAPI(apiRow)
			if err != nil {
				return nil, err
			}
			rows = append(rows, row)
		}
	}
	return rows, nil
}

func (s *PremiumService) fetchHeads(ctx context.Context, period string, log *logrus.Entry) ([]*premium.HeadRow, error) {
	divisions := division.Heads()
	tasks := make([]FetchTask[[]okcapi.HeadPremiumRow], 0, len(divisions))
	for _, div := range divisions {
		div := div
		tasks = append(tasks, FetchTask[[]okcapi.HeadPremiumRow]{
			Division: string(div),
			Report:   "head_premium",
			Run: func(ctx context.Context) ([]okcapi.HeadPremiumRow, error) {
				return s.api.HeadPremium(ctx, period, div)
			},
		})
	}

	log.WithField("state", stateFetching).Debugf("Running %d fetch tasks for period %s", len(tasks), period)
	results := s.headFetcher.FetchAll(ctx, tasks)

	log.WithField("state", stateAggregating).Debug("Converting fetch results")
	var rows []*premium.HeadRow
	for _, res := range results {
		if res.Failed() {
			continue
		}
		if len(res.Value) == 0 {
			log.Warnf("No head premium data returned for division %s, period %s", res.Task.Division, period)
			continue
		}
		for _, apiRow := range res.Value {
			row, err := headRowFromAPI(apiRow)
			if err != nil {
				return nil, err
			}
			rows = append(rows, row)
		}
	}
	return rows, nil
}
