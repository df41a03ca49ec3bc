package services

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"
	"strings"
	"time"

	"github.com/terraincognita07/cyclenote/internal/models"
)

const exportSymptomSeparator = ";"

var ExportCSVHeaders = []string{"Date", "Flow", "Pain", "Mood", "Symptoms", "Notes"}

type ExportLogReader interface {
	FetchLogsForRange(userID uint, from *time.Time, to *time.Time) ([]models.SymptomLog, error)
}

type ExportService struct {
	logs ExportLogReader
}

type ExportJSONEntry struct {
	Date     string   `json:"date"`
	Flow     int      `json:"flow"`
	Pain     int      `json:"pain"`
	Mood     int      `json:"mood"`
	Symptoms []string `json:"symptoms"`
	Notes    string   `json:"notes"`
}

type ExportSummary struct {
	TotalEntries int    `json:"total_entries"`
	PeriodDays   int    `json:"period_days"`
	DateFrom     string `json:"date_from,omitempty"`
	DateTo       string `json:"date_to,omitempty"`
}

func NewExportService(logs ExportLogReader) *ExportService {
	return &ExportService{logs: logs}
}

func (service *ExportService) LoadLogs(userID uint, from *time.Time, to *time.Time) ([]models.SymptomLog, error) {
	return service.logs.FetchLogsForRange(userID, from, to)
}

func BuildExportJSONEntries(logs []models.SymptomLog) []ExportJSONEntry {
	entries := make([]ExportJSONEntry, 0, len(logs))
	for _, entry := range logs {
		symptoms := entry.Symptoms
		if symptoms == nil {
			symptoms = []string{}
		}
		entries = append(entries, ExportJSONEntry{
			Date:     entry.Date.Format(DayLayout),
			Flow:     entry.Flow,
			Pain:     entry.Pain,
			Mood:     entry.Mood,
			Symptoms: symptoms,
			Notes:    entry.Notes,
		})
	}
	return entries
}

func BuildExportSummary(logs []models.SymptomLog) ExportSummary {
	summary := ExportSummary{TotalEntries: len(logs)}
	for _, entry := range logs {
		if entry.IsPeriodDay() {
			summary.PeriodDays++
		}
	}
	if len(logs) > 0 {
		summary.DateFrom = logs[0].Date.Format(DayLayout)
		summary.DateTo = logs[len(logs)-1].Date.Format(DayLayout)
	}
	return summary
}

// WriteCSV expects logs in ascending date order, as returned by the log service.
func WriteCSV(output io.Writer, logs []models.SymptomLog) error {
	writer := csv.NewWriter(output)
	if err := writer.Write(ExportCSVHeaders); err != nil {
		return fmt.Errorf("write csv header: %w", err)
	}
	for _, entry := range logs {
		record := []string{
			entry.Date.Format(DayLayout),
			strconv.Itoa(entry.Flow),
			strconv.Itoa(entry.Pain),
			strconv.Itoa(entry.Mood),
			strings.Join(entry.Symptoms, exportSymptomSeparator),
			entry.Notes,
		}
		if err := writer.Write(record); err != nil {
			return fmt.Errorf("write csv row %s: %w", record[0], err)
		}
	}
	writer.Flush()
	return writer.Error()
}
