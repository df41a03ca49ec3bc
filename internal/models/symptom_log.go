package models

import "time"

const (
	MinFlow = 0
	MaxFlow = 10
	MinPain = 0
	MaxPain = 10
	MinMood = 1
	MaxMood = 10
)

// SymptomLog is one tracked calendar day. Date is always stored at UTC midnight.
type SymptomLog struct {
	ID        uint      `gorm:"primaryKey" json:"-"`
	UserID    uint      `gorm:"not null;uniqueIndex:uidx_symptom_logs_user_date" json:"-"`
	Date      time.Time `gorm:"type:date;not null;uniqueIndex:uidx_symptom_logs_user_date" json:"date"`
	Flow      int       `gorm:"not null;default:0" json:"flow"`
	Pain      int       `gorm:"not null;default:0" json:"pain"`
	Mood      int       `gorm:"not null;default:5" json:"mood"`
	Symptoms  []string  `gorm:"serializer:json" json:"symptoms"`
	Notes     string    `json:"notes"`
	CreatedAt time.Time `json:"-"`
	UpdatedAt time.Time `json:"-"`
}

func (entry SymptomLog) IsPeriodDay() bool {
	return entry.Flow > 0
}
