package kpi

import "database/sql"

// Record is one employee row in a KPI snapshot table. Metric slots are
// nullable: a slot stays NULL when the corresponding report never returned
// data for the employee during the cycle.
type Record struct {
	Fullname      string
	ContactsCount sql.NullInt64
	AHT           sql.NullInt64
	FLR           sql.NullFloat64
	CSI           sql.NullFloat64
	POK           sql.NullFloat64
	Delay         sql.NullFloat64
}

// MetricSet reports whether the slot for rt is already populated.
func (r *Record) MetricSet(rt ReportType) bool {
	switch rt {
	case ReportAHT:
		return r.AHT.Valid
	case ReportFLR:
		return r.FLR.Valid
	case ReportCSI:
		return r.CSI.Valid
	case ReportPOK:
		return r.POK.Valid
	case ReportDelay:
		return r.Delay.Valid
	}
	return false
}

// SetMetric stores v into the slot for rt. AHT is a duration in whole
// seconds and is stored as an integer; the remaining reports carry
// fractional values.
func (r *Record) SetMetric(rt ReportType, v float64) {
	switch rt {
	case ReportAHT:
		r.AHT = sql.NullInt64{Int64: int64(v), Valid: true}
	case ReportFLR:
		r.FLR = sql.NullFloat64{Float64: v, Valid: true}
	case ReportCSI:
		r.CSI = sql.NullFloat64{Float64: v, Valid: true}
	case ReportPOK:
		r.POK = sql.NullFloat64{Float64: v, Valid: true}
	case ReportDelay:
		r.Delay = sql.NullFloat64{Float64: v, Valid: true}
	}
}

// SetContacts overwrites the contact-count denominator. Unlike metric
// slots this field is shared across report types and the latest report
// carrying it wins.
func (r *Record) SetContacts(n int64) {
	r.ContactsCount = sql.NullInt64{Int64: n, Valid: true}
}
