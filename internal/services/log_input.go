package services

import (
	"errors"
	"strings"
	"unicode/utf8"

	"github.com/terraincognita07/cyclenote/internal/models"
)

const (
	maxSymptomLabelLength = 80
	maxSymptomsPerLog     = 30
	maxNotesLength        = 2000
)

var (
	ErrInvalidFlow     = errors.New("flow must be between 0 and 10")
	ErrInvalidPain     = errors.New("pain must be between 0 and 10")
	ErrInvalidMood     = errors.New("mood must be between 1 and 10")
	ErrInvalidSymptom  = errors.New("invalid symptom label")
	ErrTooManySymptoms = errors.New("too many symptoms")
	ErrNotesTooLong    = errors.New("notes too long")
)

type LogInput struct {
	Flow     int
	Pain     int
	Mood     int
	Symptoms []string
	Notes    string
}

// NormalizeLogInput validates ranges and cleans up symptom labels and notes.
// Symptom labels are trimmed and de-duplicated case-insensitively, keeping the first spelling.
func NormalizeLogInput(input LogInput) (LogInput, error) {
	if input.Flow < models.MinFlow || input.Flow > models.MaxFlow {
		return LogInput{}, ErrInvalidFlow
	}
	if input.Pain < models.MinPain || input.Pain > models.MaxPain {
		return LogInput{}, ErrInvalidPain
	}
	if input.Mood < models.MinMood || input.Mood > models.MaxMood {
		return LogInput{}, ErrInvalidMood
	}

	symptoms, err := normalizeSymptomLabels(input.Symptoms)
	if err != nil {
		return LogInput{}, err
	}

	notes := strings.TrimSpace(input.Notes)
	if utf8.RuneCountInString(notes) > maxNotesLength {
		return LogInput{}, ErrNotesTooLong
	}

	return LogInput{
		Flow:     input.Flow,
		Pain:     input.Pain,
		Mood:     input.Mood,
		Symptoms: symptoms,
		Notes:    notes,
	}, nil
}

func normalizeSymptomLabels(raw []string) ([]string, error) {
	labels := make([]string, 0, len(raw))
	seen := make(map[string]struct{}, len(raw))
	for _, value := range raw {
		label := strings.Join(strings.Fields(value), " ")
		if label == "" || utf8.RuneCountInString(label) > maxSymptomLabelLength {
			return nil, ErrInvalidSymptom
		}
		key := strings.ToLower(label)
		if _, duplicate := seen[key]; duplicate {
			continue
		}
		seen[key] = struct{}{}
		labels = append(labels, label)
	}
	if len(labels) > maxSymptomsPerLog {
		return nil, ErrTooManySymptoms
	}
	return labels, nil
}
