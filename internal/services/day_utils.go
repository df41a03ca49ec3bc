package services

import (
	"errors"
	"strings"
	"time"
)

const DayLayout = "2006-01-02"

var ErrInvalidDay = errors.New("invalid day")

// DateAtLocation returns the calendar date of value in location, as UTC midnight.
// Every stored log date goes through here so the analytics layer never sees a time of day.
func DateAtLocation(value time.Time, location *time.Location) time.Time {
	if location == nil {
		location = time.UTC
	}
	year, month, day := value.In(location).Date()
	return time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
}

func DayRange(day time.Time) (time.Time, time.Time) {
	start := DateAtLocation(day, time.UTC)
	return start, start.AddDate(0, 0, 1)
}

func ParseDay(raw string) (time.Time, error) {
	parsed, err := time.ParseInLocation(DayLayout, strings.TrimSpace(raw), time.UTC)
	if err != nil {
		return time.Time{}, ErrInvalidDay
	}
	return parsed, nil
}

// ParseOptionalDay returns nil for an empty value.
func ParseOptionalDay(raw string) (*time.Time, error) {
	if strings.TrimSpace(raw) == "" {
		return nil, nil
	}
	day, err := ParseDay(raw)
	if err != nil {
		return nil, err
	}
	return &day, nil
}
