package okcapi

import (
	"context"
	"fmt"

	"okc_stats_sync/internal/domain/division"
	"okc_stats_sync/internal/domain/kpi"
)

// KPIAPI wraps the per-division KPI report endpoints. Each report category
// has its own response shape; they decode into the variant row types below,
// all joined through kpi.Row.
type KPIAPI struct {
	client *Client
}

func NewKPIAPI(c *Client) *KPIAPI {
	return &KPIAPI{client: c}
}

// PeriodKPI fetches one (division, report-type) report covering the last
// `days` days. Malformed or unreachable responses surface as errors; the
// caller treats those as isolated per-task failures.
func (a *KPIAPI) PeriodKPI(ctx context.Context, div division.Division, report kpi.ReportType, days int) (*kpi.Report, error) {
	slug, err := divisionSlug(div)
	if err != nil {
		return nil, err
	}

	endpoint := fmt.Sprintf("kpi/%s/get-period-report", slug)
	body := map[string]any{
		"report": report.RequestLabel(),
		"days":   days,
	}

	switch report {
	case kpi.ReportAHT:
		return fetchRows[ahtRow](ctx, a.client, endpoint, body)
	case kpi.ReportFLR:
		return fetchRows[flrRow](ctx, a.client, endpoint, body)
	case kpi.ReportCSI:
		return fetchRows[csiRow](ctx, a.client, endpoint, body)
	case kpi.ReportPOK:
		return fetchRows[pokRow](ctx, a.client, endpoint, body)
	case kpi.ReportDelay:
		return fetchRows[delayRow](ctx, a.client, endpoint, body)
	}
	return nil, fmt.Errorf("unknown report type: %q", report)
}

func fetchRows[R kpi.Row](ctx context.Context, c *Client, endpoint string, body any) (*kpi.Report, error) {
	var rows []R
	if err := c.postJSON(ctx, endpoint, body, &rows); err != nil {
		return nil, err
	}
	out := make([]kpi.Row, len(rows))
	for i, r := range rows {
		out[i] = r
	}
	return &kpi.Report{Rows: out}, nil
}

// firstInt returns the first non-nil value. Chat-based divisions report
// TOTAL_CHATS, call-based ones TOTAL_CALLS; whichever is present is the
// contact denominator.
func firstInt(vals ...*int64) (int64, bool) {
	for _, v := range vals {
		if v != nil {
			return *v, true
		}
	}
	return 0, false
}

func firstFloat(vals ...*float64) (float64, bool) {
	for _, v := range vals {
		if v != nil {
			return *v, true
		}
	}
	return 0, false
}

type ahtRow struct {
	FIO        string `json:"FIO"`
	TotalChats *int64 `json:"TOTAL_CHATS"`
	TotalCalls *int64 `json:"TOTAL_CALLS"`
	AHT        *int64 `json:"AHT"`
}

func (r ahtRow) Fullname() string        { return r.FIO }
func (r ahtRow) Contacts() (int64, bool) { return firstInt(r.TotalChats, r.TotalCalls) }
func (r ahtRow) Metric() (float64, bool) {
	if r.AHT == nil {
		return 0, false
	}
	return float64(*r.AHT), true
}

type flrRow struct {
	FIO        string   `json:"FIO"`
	TotalChats *int64   `json:"TOTAL_CHATS"`
	TotalCalls *int64   `json:"TOTAL_CALLS"`
	FLR        *float64 `json:"FLR"`
}

func (r flrRow) Fullname() string        { return r.FIO }
func (r flrRow) Contacts() (int64, bool) { return firstInt(r.TotalChats, r.TotalCalls) }
func (r flrRow) Metric() (float64, bool) { return firstFloat(r.FLR) }

// csiRow carries rated-contact counts only, which are not the shared
// contact denominator, so Contacts never reports a value.
type csiRow struct {
	FIO             string   `json:"FIO"`
	TotalRatedChats *int64   `json:"TOTAL_RATED_CHATS"`
	TotalRatedCalls *int64   `json:"TOTAL_RATED_CALLS"`
	CSI             *float64 `json:"CSI"`
}

func (r csiRow) Fullname() string        { return r.FIO }
func (r csiRow) Contacts() (int64, bool) { return 0, false }
func (r csiRow) Metric() (float64, bool) { return firstFloat(r.CSI) }

type pokRow struct {
	FIO        string   `json:"FIO"`
	TotalChats *int64   `json:"TOTAL_CHATS"`
	TotalCalls *int64   `json:"TOTAL_CALLS"`
	PercentCSI *float64 `json:"PERCENT_CSI"`
}

func (r pokRow) Fullname() string        { return r.FIO }
func (r pokRow) Contacts() (int64, bool) { return firstInt(r.TotalChats, r.TotalCalls) }
func (r pokRow) Metric() (float64, bool) { return firstFloat(r.PercentCSI) }

// delayRow differs per division: НЦК reports AVG_TOTAL, НТП reports
// UNWORK_TIME_PERCENT. Whichever is present is the delay metric.
type delayRow struct {
	FIO               string   `json:"FIO"`
	AvgTotal          *float64 `json:"AVG_TOTAL"`
	UnworkTimePercent *float64 `json:"UNWORK_TIME_PERCENT"`
}

func (r delayRow) Fullname() string        { return r.FIO }
func (r delayRow) Contacts() (int64, bool) { return 0, false }
func (r delayRow) Metric() (float64, bool) { return firstFloat(r.AvgTotal, r.UnworkTimePercent) }
