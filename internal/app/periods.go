package app

import (
	"fmt"
	"time"
)

// currentPeriod returns the "01.mm.yyyy" anchor of the month now falls in.
func currentPeriod(now time.Time) string {
	return fmt.Sprintf("01.%02d.%d", int(now.Month()), now.Year())
}

// lastSixMonthPeriods generates the first-of-month anchors for the last 6
// months including the current one, newest first, in "01.mm.yyyy" form.
// Used to scope historical premium backfills.
func lastSixMonthPeriods(now time.Time) []string {
	periods := make([]string, 0, 6)
	year, month := now.Year(), int(now.Month())

	for i := 0; i < 6; i++ {
		m := month - i
		y := year
		for m <= 0 {
			m += 12
			y--
		}
		periods = append(periods, fmt.Sprintf("01.%02d.%d", m, y))
	}

	return periods
}
