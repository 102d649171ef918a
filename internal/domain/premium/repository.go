package premium

import "context"

// Repository defines the replace-write operations for the premium snapshot
// tables. Both methods share the Replace-Writer contract: clear plus bulk
// insert in one transaction, no-op on empty input, full rollback (and a
// zero count) on any failure.
type Repository interface {
	ReplaceSpecialists(ctx context.Context, rows []*SpecialistRow) (int64, error)
	ReplaceHeads(ctx context.Context, rows []*HeadRow) (int64, error)
}
