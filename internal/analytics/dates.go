package analytics

import (
	"math"
	"time"
)

const dayLayout = "2006-01-02"

// DateOnly drops the time of day and returns the calendar date at UTC midnight.
// The calendar date is read in the value's own location.
func DateOnly(value time.Time) time.Time {
	year, month, day := value.Date()
	return time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
}

// DaysBetween returns the signed number of calendar days from a to b.
func DaysBetween(a time.Time, b time.Time) int {
	return int(math.Round(DateOnly(b).Sub(DateOnly(a)).Hours() / 24))
}

func dayKey(value time.Time) string {
	return DateOnly(value).Format(dayLayout)
}

func roundedAverage(values []int) int {
	if len(values) == 0 {
		return 0
	}
	total := 0
	for _, value := range values {
		total += value
	}
	return int(math.Floor(float64(total)/float64(len(values)) + 0.5))
}
