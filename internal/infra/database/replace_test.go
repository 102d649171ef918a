package database

import (
	"context"
	"io"
	"testing"

	"okc_stats_sync/internal/domain/kpi"
	"okc_stats_sync/internal/domain/premium"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/require"
)

func testLog() *logrus.Entry {
	l := logrus.New()
	l.SetOutput(io.Discard)
	return logrus.NewEntry(l)
}

// The nil *sql.DB in these tests doubles as the assertion: any database
// operation on the empty path would panic.

func TestReplaceTableEmptyInputPerformsNoOperation(t *testing.T) {
	n, err := replaceTable(context.Background(), nil, testLog(), "kpi_day", kpiColumns, 0, nil)

	require.NoError(t, err)
	require.Zero(t, n)
}

func TestReplaceSnapshotEmptyInput(t *testing.T) {
	repo := NewPostgresKPIRepository(nil, testLog())

	n, err := repo.ReplaceSnapshot(context.Background(), kpi.PeriodDay, nil)

	require.NoError(t, err)
	require.Zero(t, n)
}

func TestReplaceSnapshotUnknownPeriod(t *testing.T) {
	repo := NewPostgresKPIRepository(nil, testLog())

	_, err := repo.ReplaceSnapshot(context.Background(), kpi.Period("quarterly"), []*kpi.Record{{Fullname: "Иванов"}})

	require.ErrorIs(t, err, ErrUnknownPeriod)
}

func TestReplaceSpecialistsEmptyInput(t *testing.T) {
	repo := NewPostgresPremiumRepository(nil, testLog())

	n, err := repo.ReplaceSpecialists(context.Background(), []*premium.SpecialistRow{})

	require.NoError(t, err)
	require.Zero(t, n)
}

func TestReplaceHeadsEmptyInput(t *testing.T) {
	repo := NewPostgresPremiumRepository(nil, testLog())

	n, err := repo.ReplaceHeads(context.Background(), nil)

	require.NoError(t, err)
	require.Zero(t, n)
}
