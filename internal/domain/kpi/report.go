package kpi

// Row is the identity+metric surface shared by every report payload
// variant. Each report category decodes into its own concrete row type
// (the response shapes differ), joined through this interface.
type Row interface {
	// Fullname returns the employee identity the row is keyed by.
	Fullname() string
	// Contacts returns the contact-count denominator when the report
	// carries one; CSI and delay reports do not.
	Contacts() (int64, bool)
	// Metric returns the report's own metric value when present.
	Metric() (float64, bool)
}

// Report is the validated payload of one (division, report-type) fetch.
type Report struct {
	Rows []Row
}

// Empty reports whether the fetch returned no usable rows. An empty
// report is not a failure; it leaves metric slots unset.
func (r *Report) Empty() bool {
	return r == nil || len(r.Rows) == 0
}
