package models

// DefaultSymptomLabels are offered by clients as quick picks; any other label is accepted too.
func DefaultSymptomLabels() []string {
	return []string{
		"Cramps",
		"Headache",
		"Mood swings",
		"Bloating",
		"Fatigue",
		"Breast tenderness",
		"Acne",
		"Back pain",
		"Nausea",
		"Spotting",
		"Irritability",
		"Insomnia",
		"Food cravings",
	}
}
