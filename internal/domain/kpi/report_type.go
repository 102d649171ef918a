package kpi

import "strings"

// ReportType identifies one KPI report category fetched independently per
// division. The lowercase tokens are the wire labels the reporting API and
// the snapshot columns use; they are case-sensitive.
type ReportType string

const (
	ReportAHT   ReportType = "aht"
	ReportFLR   ReportType = "flr"
	ReportCSI   ReportType = "csi"
	ReportPOK   ReportType = "pok"
	ReportDelay ReportType = "delay"
)

// AllReportTypes lists every report fetched during a KPI sync cycle, in the
// order tasks are planned.
func AllReportTypes() []ReportType {
	return []ReportType{ReportAHT, ReportFLR, ReportCSI, ReportPOK, ReportDelay}
}

// RequestLabel is the uppercase form the API expects in request payloads.
func (rt ReportType) RequestLabel() string {
	return strings.ToUpper(string(rt))
}
