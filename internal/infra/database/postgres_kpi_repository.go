package database

import (
	"context"
	"database/sql"
	"fmt"

	"okc_stats_sync/internal/domain/kpi"

	"github.com/sirupsen/logrus"
)

// Custom errors
var ErrUnknownPeriod = fmt.Errorf("unknown KPI snapshot period")

var kpiColumns = []string{
	"fullname",
	"contacts_count",
	"aht",
	"flr",
	"csi",
	"pok",
	"delay",
}

type PostgresKPIRepository struct {
	db  *sql.DB
	log *logrus.Entry
}

func NewPostgresKPIRepository(db *sql.DB, log *logrus.Entry) *PostgresKPIRepository {
	return &PostgresKPIRepository{db: db, log: log}
}

// ReplaceSnapshot swaps the full contents of the period's snapshot table
// for records. See replaceTable for the atomicity and empty-input contract.
func (r *PostgresKPIRepository) ReplaceSnapshot(ctx context.Context, period kpi.Period, records []*kpi.Record) (int64, error) {
	if len(records) == 0 {
		r.log.Warnf("[%s] no KPI records to insert, skipping replace", period)
		return 0, nil
	}

	table := period.TableName()
	if table == "" {
		return 0, fmt.Errorf("%w: %q", ErrUnknownPeriod, period)
	}

	return replaceTable(ctx, r.db, r.log, table, kpiColumns, len(records), func(add func(args ...any) error) error {
		for _, rec := range records {
			err := add(
				rec.Fullname,
				rec.ContactsCount,
				rec.AHT,
				rec.FLR,
				rec.CSI,
				rec.POK,
				rec.Delay,
			)
			if err != nil {
				return err
			}
		}
		return nil
	})
}
