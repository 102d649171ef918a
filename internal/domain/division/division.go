package division

// Division is an organizational unit the reporting API partitions its
// reports by. Labels are the exact case-sensitive tokens the API expects.
type Division string

const (
	NTP1 Division = "НТП1"
	NTP2 Division = "НТП2"
	NCK  Division = "НЦК"
	NTP  Division = "НТП" // head-level reports only
)

// Specialists returns the divisions specialist reports are fetched for.
func Specialists() []Division {
	return []Division{NTP1, NTP2, NCK}
}

// Heads returns the divisions head premium reports are fetched for.
func Heads() []Division {
	return []Division{NTP, NCK}
}
