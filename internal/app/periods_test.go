package app

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestLastSixMonthPeriods(t *testing.T) {
	now := time.Date(2025, time.March, 15, 12, 30, 0, 0, time.UTC)

	periods := lastSixMonthPeriods(now)

	require.Equal(t, []string{
		"01.03.2025",
		"01.02.2025",
		"01.01.2025",
		"01.12.2024",
		"01.11.2024",
		"01.10.2024",
	}, periods)
}

func TestLastSixMonthPeriodsYearBoundary(t *testing.T) {
	now := time.Date(2025, time.January, 1, 0, 0, 0, 0, time.UTC)

	periods := lastSixMonthPeriods(now)

	require.Equal(t, []string{
		"01.01.2025",
		"01.12.2024",
		"01.11.2024",
		"01.10.2024",
		"01.09.2024",
		"01.08.2024",
	}, periods)
}

func TestCurrentPeriod(t *testing.T) {
	now := time.Date(2025, time.December, 31, 23, 59, 0, 0, time.UTC)
	require.Equal(t, "01.12.2025", currentPeriod(now))
}
