package kpi

// Period is the granularity of a KPI snapshot table. Each period has its
// own destination table that is fully replaced on every sync.
type Period string

const (
	PeriodDay   Period = "daily"
	PeriodWeek  Period = "weekly"
	PeriodMonth Period = "monthly"
)

// TableName returns the snapshot table the period's cycle replaces.
func (p Period) TableName() string {
	switch p {
	case PeriodDay:
		return "kpi_day"
	case PeriodWeek:
		return "kpi_week"
	case PeriodMonth:
		return "kpi_month"
	}
	return ""
}

// Days is the lookback window, in days from period start, sent to the API.
func (p Period) Days() int {
	switch p {
	case PeriodDay:
		return 1
	case PeriodWeek:
		return 7
	case PeriodMonth:
		return 31
	}
	return 0
}
