package services

import (
	"errors"
	"time"
)

var (
	ErrFromDateInvalid = errors.New("invalid from date")
	ErrToDateInvalid   = errors.New("invalid to date")
)

// ParseDateRange reads optional inclusive from/to bounds. Empty values are unbounded.
func ParseDateRange(rawFrom string, rawTo string) (*time.Time, *time.Time, error) {
	from, err := ParseOptionalDay(rawFrom)
	if err != nil {
		return nil, nil, ErrFromDateInvalid
	}
	to, err := ParseOptionalDay(rawTo)
	if err != nil {
		return nil, nil, ErrToDateInvalid
	}
	if from != nil && to != nil && to.Before(*from) {
		return nil, nil, ErrInvalidRange
	}
	return from, to, nil
}
