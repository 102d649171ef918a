package app

import (
	"errors"
	"testing"

	"okc_stats_sync/internal/domain/kpi"

	"github.com/stretchr/testify/require"
)

type testRow struct {
	name     string
	contacts *int64
	metric   *float64
}

func (r testRow) Fullname() string { return r.name }

func (r testRow) Contacts() (int64, bool) {
	if r.contacts == nil {
		return 0, false
	}
	return *r.contacts, true
}

func (r testRow) Metric() (float64, bool) {
	if r.metric == nil {
		return 0, false
	}
	return *r.metric, true
}

func i64(v int64) *int64     { return &v }
func f64(v float64) *float64 { return &v }

func reportResult(div string, rt kpi.ReportType, rows ...kpi.Row) FetchResult[*kpi.Report] {
	return FetchResult[*kpi.Report]{
		Task:  FetchTask[*kpi.Report]{Division: div, Report: string(rt)},
		Value: &kpi.Report{Rows: rows},
	}
}

func failedResult(div string, rt kpi.ReportType) FetchResult[*kpi.Report] {
	return FetchResult[*kpi.Report]{
		Task: FetchTask[*kpi.Report]{Division: div, Report: string(rt)},
		Err:  errors.New("api unreachable"),
	}
}

func TestAggregateKPIMergesMetricSlots(t *testing.T) {
	results := []FetchResult[*kpi.Report]{
		reportResult("НТП1", kpi.ReportAHT, testRow{name: "Иванов Иван", contacts: i64(120), metric: f64(240)}),
		reportResult("НТП1", kpi.ReportCSI, testRow{name: "Иванов Иван", metric: f64(4.8)}),
		reportResult("НТП1", kpi.ReportFLR, testRow{name: "Иванов Иван", contacts: i64(118), metric: f64(0.93)}),
	}

	byName := aggregateKPI(results, testLog())

	require.Len(t, byName, 1)
	rec := byName["Иванов Иван"]
	require.NotNil(t, rec)
	require.Equal(t, "Иванов Иван", rec.Fullname)
	require.True(t, rec.AHT.Valid)
	require.EqualValues(t, 240, rec.AHT.Int64)
	require.True(t, rec.CSI.Valid)
	require.InDelta(t, 4.8, rec.CSI.Float64, 1e-9)
	require.True(t, rec.FLR.Valid)
	require.InDelta(t, 0.93, rec.FLR.Float64, 1e-9)
	require.False(t, rec.POK.Valid)
	require.False(t, rec.Delay.Valid)
	// Latest report carrying a contact count wins.
	require.True(t, rec.ContactsCount.Valid)
	require.EqualValues(t, 118, rec.ContactsCount.Int64)
}

func TestAggregateKPIOrderIndependentAcrossDistinctTypes(t *testing.T) {
	aht := reportResult("НТП1", kpi.ReportAHT, testRow{name: "Иванов Иван", metric: f64(200)})
	csi := reportResult("НТП1", kpi.ReportCSI, testRow{name: "Иванов Иван", metric: f64(4.2)})

	forward := aggregateKPI([]FetchResult[*kpi.Report]{aht, csi}, testLog())
	reversed := aggregateKPI([]FetchResult[*kpi.Report]{csi, aht}, testLog())

	require.Equal(t, forward, reversed)
}

func TestAggregateKPISameTypeFirstSeenWins(t *testing.T) {
	results := []FetchResult[*kpi.Report]{
		reportResult("НТП1", kpi.ReportCSI, testRow{name: "Иванов Иван", metric: f64(4.9)}),
		reportResult("НТП2", kpi.ReportCSI, testRow{name: "Иванов Иван", metric: f64(3.1)}),
	}

	byName := aggregateKPI(results, testLog())

	rec := byName["Иванов Иван"]
	require.NotNil(t, rec)
	require.InDelta(t, 4.9, rec.CSI.Float64, 1e-9)
}

func TestAggregateKPIIsolatedTaskFailureLeavesSlotUnset(t *testing.T) {
	// Divisions A and B, report types aht and csi; the B/csi task failed.
	results := []FetchResult[*kpi.Report]{
		reportResult("A", kpi.ReportAHT, testRow{name: "Иванов Иван", contacts: i64(90), metric: f64(180)}),
		reportResult("A", kpi.ReportCSI, testRow{name: "Иванов Иван", metric: f64(4.5)}),
		reportResult("B", kpi.ReportAHT, testRow{name: "Петров Петр", contacts: i64(70), metric: f64(260)}),
		failedResult("B", kpi.ReportCSI),
	}

	byName := aggregateKPI(results, testLog())

	require.Len(t, byName, 2)

	ivanov := byName["Иванов Иван"]
	require.True(t, ivanov.AHT.Valid)
	require.True(t, ivanov.CSI.Valid)

	// Only csi is missing for the employee whose csi task failed.
	petrov := byName["Петров Петр"]
	require.True(t, petrov.AHT.Valid)
	require.EqualValues(t, 260, petrov.AHT.Int64)
	require.False(t, petrov.CSI.Valid)
	require.True(t, petrov.ContactsCount.Valid)
}

func TestAggregateKPISkipsEmptyAndNamelessRows(t *testing.T) {
	results := []FetchResult[*kpi.Report]{
		reportResult("НТП1", kpi.ReportAHT),
		reportResult("НТП1", kpi.ReportCSI, testRow{name: "", metric: f64(4.0)}),
	}

	byName := aggregateKPI(results, testLog())
	require.Empty(t, byName)
}

func TestSortedRecordsIsDeterministic(t *testing.T) {
	byName := map[string]*kpi.Record{
		"Сидоров": {Fullname: "Сидоров"},
		"Иванов":  {Fullname: "Иванов"},
		"Петров":  {Fullname: "Петров"},
	}

	records := sortedRecords(byName)

	require.Len(t, records, 3)
	require.Equal(t, "Иванов", records[0].Fullname)
	require.Equal(t, "Петров", records[1].Fullname)
	require.Equal(t, "Сидоров", records[2].Fullname)
}
