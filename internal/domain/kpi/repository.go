package kpi

import "context"

// SnapshotRepository defines the replace-write operation for KPI snapshot
// tables. ReplaceSnapshot atomically clears the period's table and inserts
// records inside one transaction; it performs no database operation and
// returns 0 when records is empty. On failure the previous table contents
// remain intact and 0 is returned alongside the error.
type SnapshotRepository interface {
	ReplaceSnapshot(ctx context.Context, period Period, records []*Record) (int64, error)
}
