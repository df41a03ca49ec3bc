package analytics

import (
	"testing"
	"time"

	"github.com/terraincognita07/cyclenote/internal/models"
)

var testBaseDay = time.Date(2025, time.January, 1, 0, 0, 0, 0, time.UTC)

// dayN returns the calendar date for day n, where day 1 is 2025-01-01.
func dayN(n int) time.Time {
	return testBaseDay.AddDate(0, 0, n-1)
}

func flowLog(n int, flow int) models.SymptomLog {
	return models.SymptomLog{Date: dayN(n), Flow: flow, Mood: 5}
}

func symptomLog(n int, symptoms ...string) models.SymptomLog {
	return models.SymptomLog{Date: dayN(n), Mood: 5, Symptoms: symptoms}
}

func mustParseDay(t *testing.T, raw string) time.Time {
	t.Helper()
	parsed, err := time.ParseInLocation(dayLayout, raw, time.UTC)
	if err != nil {
		t.Fatalf("parse day %q: %v", raw, err)
	}
	return parsed
}
