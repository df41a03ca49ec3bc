package services

import (
	"errors"
	"fmt"
	"sort"
	"time"

	"github.com/terraincognita07/cyclenote/internal/models"
)

var (
	ErrLogNotFound     = errors.New("log not found")
	ErrLogLoadFailed   = errors.New("load log failed")
	ErrLogSaveFailed   = errors.New("save log failed")
	ErrLogDeleteFailed = errors.New("delete log failed")
	ErrInvalidRange    = errors.New("invalid range")
)

type SymptomLogRepository interface {
	ListByUser(userID uint) ([]models.SymptomLog, error)
	ListByUserRange(userID uint, fromStart *time.Time, toEnd *time.Time) ([]models.SymptomLog, error)
	FindByUserAndDayRange(userID uint, dayStart time.Time, dayEnd time.Time) (models.SymptomLog, bool, error)
	Upsert(entry *models.SymptomLog, dayStart time.Time, dayEnd time.Time) error
	ReplaceForUser(userID uint, entries []models.SymptomLog) error
	DeleteByUserAndDayRange(userID uint, dayStart time.Time, dayEnd time.Time) error
}

type DatedLogInput struct {
	Date time.Time
	LogInput
}

type LogService struct {
	logs SymptomLogRepository
}

func NewLogService(logs SymptomLogRepository) *LogService {
	return &LogService{logs: logs}
}

func (service *LogService) FetchAllLogs(userID uint) ([]models.SymptomLog, error) {
	logs, err := service.logs.ListByUser(userID)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrLogLoadFailed, err)
	}
	return normalizeLoadedLogs(logs), nil
}

// FetchLogsForRange treats both bounds as inclusive calendar days; nil means unbounded.
func (service *LogService) FetchLogsForRange(userID uint, from *time.Time, to *time.Time) ([]models.SymptomLog, error) {
	if from != nil && to != nil && to.Before(*from) {
		return nil, ErrInvalidRange
	}

	var fromStart *time.Time
	var toEnd *time.Time
	if from != nil {
		start, _ := DayRange(*from)
		fromStart = &start
	}
	if to != nil {
		_, end := DayRange(*to)
		toEnd = &end
	}

	logs, err := service.logs.ListByUserRange(userID, fromStart, toEnd)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrLogLoadFailed, err)
	}
	return normalizeLoadedLogs(logs), nil
}

func (service *LogService) FetchLogByDate(userID uint, day time.Time) (models.SymptomLog, error) {
	dayStart, dayEnd := DayRange(day)
	entry, found, err := service.logs.FindByUserAndDayRange(userID, dayStart, dayEnd)
	if err != nil {
		return models.SymptomLog{}, fmt.Errorf("%w: %v", ErrLogLoadFailed, err)
	}
	if !found {
		return models.SymptomLog{}, ErrLogNotFound
	}
	return normalizeLoadedLog(entry), nil
}

// SaveLog stores the entry for day, overwriting whatever was logged for that day before.
func (service *LogService) SaveLog(userID uint, day time.Time, input LogInput) (models.SymptomLog, error) {
	normalized, err := NormalizeLogInput(input)
	if err != nil {
		return models.SymptomLog{}, err
	}

	dayStart, dayEnd := DayRange(day)
	entry := buildSymptomLog(userID, dayStart, normalized)
	if err := service.logs.Upsert(&entry, dayStart, dayEnd); err != nil {
		return models.SymptomLog{}, fmt.Errorf("%w: %v", ErrLogSaveFailed, err)
	}
	return entry, nil
}

// ReplaceLogs swaps the user's full log set. When the input names a date more than once
// the last entry for that date is kept.
func (service *LogService) ReplaceLogs(userID uint, inputs []DatedLogInput) ([]models.SymptomLog, error) {
	positionByDay := make(map[string]int, len(inputs))
	entries := make([]models.SymptomLog, 0, len(inputs))
	for _, input := range inputs {
		normalized, err := NormalizeLogInput(input.LogInput)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", input.Date.Format(DayLayout), err)
		}

		dayStart, _ := DayRange(input.Date)
		entry := buildSymptomLog(userID, dayStart, normalized)
		key := dayStart.Format(DayLayout)
		if position, seen := positionByDay[key]; seen {
			entries[position] = entry
			continue
		}
		positionByDay[key] = len(entries)
		entries = append(entries, entry)
	}

	sort.Slice(entries, func(i, j int) bool {
		return entries[i].Date.Before(entries[j].Date)
	})

	if err := service.logs.ReplaceForUser(userID, entries); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrLogSaveFailed, err)
	}
	return entries, nil
}

func (service *LogService) DeleteLog(userID uint, day time.Time) error {
	dayStart, dayEnd := DayRange(day)
	if err := service.logs.DeleteByUserAndDayRange(userID, dayStart, dayEnd); err != nil {
		return fmt.Errorf("%w: %v", ErrLogDeleteFailed, err)
	}
	return nil
}

func buildSymptomLog(userID uint, day time.Time, input LogInput) models.SymptomLog {
	return models.SymptomLog{
		UserID:   userID,
		Date:     day,
		Flow:     input.Flow,
		Pain:     input.Pain,
		Mood:     input.Mood,
		Symptoms: input.Symptoms,
		Notes:    input.Notes,
	}
}

func normalizeLoadedLogs(logs []models.SymptomLog) []models.SymptomLog {
	for index := range logs {
		logs[index] = normalizeLoadedLog(logs[index])
	}
	return logs
}

func normalizeLoadedLog(entry models.SymptomLog) models.SymptomLog {
	entry.Date = DateAtLocation(entry.Date, entry.Date.Location())
	if entry.Symptoms == nil {
		entry.Symptoms = []string{}
	}
	return entry
}
