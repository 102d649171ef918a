package app

import (
	"context"
	"fmt"
	"time"

	"okc_stats_sync/internal/infra/okcapi"

	"github.com/sirupsen/logrus"
)

// SLClient is the upstream API surface the service-level collection needs.
type SLClient interface {
	ChatVQFilter(ctx context.Context) (*okcapi.VQChatFilter, error)
	SL(ctx context.Context, startDate, stopDate string, units []int, queues []string) (*okcapi.SLReport, error)
}

// slUnits scopes the SL report to the chat channel unit.
var slUnits = []int{7}

// SLService collects the service-level report for the trailing day and
// logs the outcome. SL is observed, not persisted.
type SLService struct {
	api SLClient
	log *logrus.Entry
	now func() time.Time
}

func NewSLService(api SLClient, log *logrus.Entry) *SLService {
	return &SLService{api: api, log: log, now: time.Now}
}

// Collect fetches the chat virtual-queue filter, then the SL report for
// the yesterday-to-today window, and logs a summary line.
func (s *SLService) Collect(ctx context.Context) error {
	filter, err := s.api.ChatVQFilter(ctx)
	if err != nil {
		return fmt.Errorf("error fetching chat VQ filter: %w", err)
	}
	queues := filter.ChatQueues()
	if len(queues) == 0 {
		s.log.Warn("Chat VQ filter returned no queues, skipping SL collection")
		return nil
	}

	now := s.now()
	startDate := now.AddDate(0, 0, -1).Format(periodLayout)
	stopDate := now.Format(periodLayout)

	report, err := s.api.SL(ctx, startDate, stopDate, slUnits, queues)
	if err != nil {
		return fmt.Errorf("error fetching SL report: %w", err)
	}

	s.log.Infof("Collected SL report for %s..%s: %d rows across %d queues", startDate, stopDate, len(report.DetailData.Data), len(queues))
	return nil
}
