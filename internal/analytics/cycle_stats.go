package analytics

import (
	"encoding/json"
	"sort"
	"time"

	"github.com/terraincognita07/cyclenote/internal/models"
)

const (
	DefaultCycleLength  = 28
	DefaultPeriodLength = 5

	// Intervals at or above this are treated as missing data rather than a cycle.
	MaxCycleLengthExclusive = 45
	PeriodLookaheadDays     = 10

	notAvailable = "N/A"
)

type CycleStatus string

const (
	CycleStatusInsufficient CycleStatus = "insufficient"
	CycleStatusComputed     CycleStatus = "computed"
)

// CycleStatistics is either Insufficient (fewer than two period days were logged) or
// Computed. Numeric fields are only meaningful for the Computed variant.
type CycleStatistics struct {
	Status             CycleStatus
	HasEnoughData      bool
	AvgCycleLength     int
	AvgPeriodLength    int
	NextPeriodDate     *time.Time
	LastPeriodDate     *time.Time
	CycleLengthSamples int
}

func insufficientCycleStatistics() *CycleStatistics {
	return &CycleStatistics{Status: CycleStatusInsufficient}
}

func (stats CycleStatistics) IsComputed() bool {
	return stats.Status == CycleStatusComputed
}

type cycleStatisticsJSON struct {
	Status             CycleStatus `json:"status"`
	HasEnoughData      bool        `json:"has_enough_data"`
	AvgCycleLength     any         `json:"avg_cycle_length"`
	AvgPeriodLength    any         `json:"avg_period_length"`
	NextPeriodDate     *string     `json:"next_period_date"`
	LastPeriodDate     *string     `json:"last_period_date"`
	CycleLengthSamples int         `json:"cycle_length_samples"`
}

// MarshalJSON renders the Insufficient variant with "N/A" averages so JSON consumers
// keep the string sentinel they already understand.
func (stats CycleStatistics) MarshalJSON() ([]byte, error) {
	payload := cycleStatisticsJSON{
		Status:             stats.Status,
		HasEnoughData:      stats.HasEnoughData,
		AvgCycleLength:     notAvailable,
		AvgPeriodLength:    notAvailable,
		NextPeriodDate:     formatOptionalDay(stats.NextPeriodDate),
		LastPeriodDate:     formatOptionalDay(stats.LastPeriodDate),
		CycleLengthSamples: stats.CycleLengthSamples,
	}
	if stats.IsComputed() {
		payload.AvgCycleLength = stats.AvgCycleLength
		payload.AvgPeriodLength = stats.AvgPeriodLength
	}
	return json.Marshal(payload)
}

func formatOptionalDay(value *time.Time) *string {
	if value == nil {
		return nil
	}
	formatted := value.Format(dayLayout)
	return &formatted
}

// ComputeCycleStatistics returns nil for an empty log set.
func ComputeCycleStatistics(logs []models.SymptomLog) *CycleStatistics {
	if len(logs) == 0 {
		return nil
	}

	sorted := dedupeAndSortByDate(logs)
	periodDays := periodDayDates(sorted)
	if len(periodDays) < 2 {
		return insufficientCycleStatistics()
	}

	cycleLengths := validCycleLengths(periodDays)
	avgCycleLength := DefaultCycleLength
	if len(cycleLengths) > 0 {
		avgCycleLength = roundedAverage(cycleLengths)
	}

	periodLengths := make([]int, 0, len(periodDays))
	for index := range periodDays {
		periodLengths = append(periodLengths, consecutiveRunFrom(periodDays, index))
	}
	avgPeriodLength := DefaultPeriodLength
	if len(periodLengths) > 0 {
		avgPeriodLength = roundedAverage(periodLengths)
	}

	lastPeriodDate := periodDays[len(periodDays)-1]
	nextPeriodDate := lastPeriodDate.AddDate(0, 0, avgCycleLength)

	return &CycleStatistics{
		Status:             CycleStatusComputed,
		HasEnoughData:      len(cycleLengths) > 0,
		AvgCycleLength:     avgCycleLength,
		AvgPeriodLength:    avgPeriodLength,
		NextPeriodDate:     &nextPeriodDate,
		LastPeriodDate:     &lastPeriodDate,
		CycleLengthSamples: len(cycleLengths),
	}
}

// dedupeAndSortByDate keeps the last supplied entry for each calendar date.
func dedupeAndSortByDate(logs []models.SymptomLog) []models.SymptomLog {
	positionByDay := make(map[string]int, len(logs))
	unique := make([]models.SymptomLog, 0, len(logs))
	for _, entry := range logs {
		key := dayKey(entry.Date)
		if position, seen := positionByDay[key]; seen {
			unique[position] = entry
			continue
		}
		positionByDay[key] = len(unique)
		unique = append(unique, entry)
	}

	sort.SliceStable(unique, func(i, j int) bool {
		return DateOnly(unique[i].Date).Before(DateOnly(unique[j].Date))
	})
	return unique
}

func periodDayDates(sorted []models.SymptomLog) []time.Time {
	days := make([]time.Time, 0, len(sorted))
	for _, entry := range sorted {
		if entry.IsPeriodDay() {
			days = append(days, DateOnly(entry.Date))
		}
	}
	return days
}

func validCycleLengths(periodDays []time.Time) []int {
	lengths := make([]int, 0, len(periodDays))
	for i := 1; i < len(periodDays); i++ {
		length := DaysBetween(periodDays[i-1], periodDays[i])
		if length <= 0 || length >= MaxCycleLengthExclusive {
			continue
		}
		lengths = append(lengths, length)
	}
	return lengths
}

// consecutiveRunFrom counts consecutive calendar days starting at periodDays[start],
// looking no further than PeriodLookaheadDays ahead. Any gap ends the run.
func consecutiveRunFrom(periodDays []time.Time, start int) int {
	windowEnd := periodDays[start].AddDate(0, 0, PeriodLookaheadDays)
	run := 1
	previous := periodDays[start]
	for i := start + 1; i < len(periodDays); i++ {
		current := periodDays[i]
		if current.After(windowEnd) {
			break
		}
		if DaysBetween(previous, current) != 1 {
			break
		}
		run++
		previous = current
	}
	return run
}
