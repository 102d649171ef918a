package app

import (
	"sort"

	"okc_stats_sync/internal/domain/kpi"

	"github.com/sirupsen/logrus"
)

// aggregateKPI merges the per-(division, report) fetch results of one cycle
// into a single record per employee. The merge is a sparse union over
// (employee, metric):
//
//   - the fullname is set by the first row seen for the employee;
//   - the contact count is overwritten by every row that carries one, so
//     the latest report type processed wins for this cross-cutting field;
//   - a metric slot is set once per cycle and later rows of the same
//     report type do not overwrite it.
//
// Failed results were already logged by the fetcher and are skipped. Empty
// results leave the report's slot unset for all employees and log a
// warning. Employees absent from every successful result are simply absent
// from the output.
func aggregateKPI(results []FetchResult[*kpi.Report], log *logrus.Entry) map[string]*kpi.Record {
	byName := make(map[string]*kpi.Record)

	for _, res := range results {
		if res.Failed() {
			continue
		}
		if res.Value.Empty() {
			log.Warnf("No data returned for report type %s (division %s)", res.Task.Report, res.Task.Division)
			continue
		}

		reportType := kpi.ReportType(res.Task.Report)
		for _, row := range res.Value.Rows {
			name := row.Fullname()
			if name == "" {
				continue
			}

			rec, ok := byName[name]
			if !ok {
				rec = &kpi.Record{Fullname: name}
				byName[name] = rec
			}

			if contacts, ok := row.Contacts(); ok {
				rec.SetContacts(contacts)
			}
			if value, ok := row.Metric(); ok && !rec.MetricSet(reportType) {
				rec.SetMetric(reportType, value)
			}
		}
	}

	return byName
}

// sortedRecords flattens the aggregation map into a fullname-ordered slice
// so snapshot inserts are deterministic.
func sortedRecords(byName map[string]*kpi.Record) []*kpi.Record {
	records := make([]*kpi.Record, 0, len(byName))
	for _, rec := range byName {
		records = append(records, rec)
	}
	sort.Slice(records, func(i, j int) bool {
		return records[i].Fullname < records[j].Fullname
	})
	return records
}
