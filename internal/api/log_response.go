package api

import (
	"github.com/terraincognita07/cyclenote/internal/models"
	"github.com/terraincognita07/cyclenote/internal/services"
)

type logResponse struct {
	Date     string   `json:"date"`
	Flow     int      `json:"flow"`
	Pain     int      `json:"pain"`
	Mood     int      `json:"mood"`
	Symptoms []string `json:"symptoms"`
	Notes    string   `json:"notes"`
	IsPeriod bool     `json:"is_period"`
}

func newLogResponse(entry models.SymptomLog) logResponse {
	symptoms := entry.Symptoms
	if symptoms == nil {
		symptoms = []string{}
	}
	return logResponse{
		Date:     entry.Date.Format(services.DayLayout),
		Flow:     entry.Flow,
		Pain:     entry.Pain,
		Mood:     entry.Mood,
		Symptoms: symptoms,
		Notes:    entry.Notes,
		IsPeriod: entry.IsPeriodDay(),
	}
}

func newLogResponses(entries []models.SymptomLog) []logResponse {
	result := make([]logResponse, 0, len(entries))
	for _, entry := range entries {
		result = append(result, newLogResponse(entry))
	}
	return result
}
