package db

import (
	"time"

	"github.com/terraincognita07/cyclenote/internal/models"
	"gorm.io/gorm"
)

const replaceBatchSize = 200

type SymptomLogRepository struct {
	database *gorm.DB
}

func NewSymptomLogRepository(database *gorm.DB) *SymptomLogRepository {
	return &SymptomLogRepository{database: database}
}

func (repo *SymptomLogRepository) ListByUser(userID uint) ([]models.SymptomLog, error) {
	logs := make([]models.SymptomLog, 0)
	if err := repo.database.Where("user_id = ?", userID).Order("date ASC, id ASC").Find(&logs).Error; err != nil {
		return nil, err
	}
	return logs, nil
}

func (repo *SymptomLogRepository) ListByUserRange(userID uint, fromStart *time.Time, toEnd *time.Time) ([]models.SymptomLog, error) {
	query := repo.database.Model(&models.SymptomLog{}).Where("user_id = ?", userID)
	if fromStart != nil {
		query = query.Where("date >= ?", *fromStart)
	}
	if toEnd != nil {
		query = query.Where("date < ?", *toEnd)
	}

	logs := make([]models.SymptomLog, 0)
	if err := query.Order("date ASC, id ASC").Find(&logs).Error; err != nil {
		return nil, err
	}
	return logs, nil
}

func (repo *SymptomLogRepository) FindByUserAndDayRange(userID uint, dayStart time.Time, dayEnd time.Time) (models.SymptomLog, bool, error) {
	return findByUserAndDayRange(repo.database, userID, dayStart, dayEnd)
}

// Upsert writes the entry for its calendar date, replacing any existing entry for that date.
func (repo *SymptomLogRepository) Upsert(entry *models.SymptomLog, dayStart time.Time, dayEnd time.Time) error {
	return repo.database.Transaction(func(tx *gorm.DB) error {
		existing, found, err := findByUserAndDayRange(tx, entry.UserID, dayStart, dayEnd)
		if err != nil {
			return err
		}
		if !found {
			return tx.Create(entry).Error
		}

		entry.ID = existing.ID
		entry.CreatedAt = existing.CreatedAt
		return tx.Save(entry).Error
	})
}

// ReplaceForUser swaps the user's whole log set for the given entries.
func (repo *SymptomLogRepository) ReplaceForUser(userID uint, entries []models.SymptomLog) error {
	return repo.database.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("user_id = ?", userID).Delete(&models.SymptomLog{}).Error; err != nil {
			return err
		}
		if len(entries) == 0 {
			return nil
		}
		for index := range entries {
			entries[index].ID = 0
			entries[index].UserID = userID
		}
		return tx.CreateInBatches(&entries, replaceBatchSize).Error
	})
}

func (repo *SymptomLogRepository) DeleteByUserAndDayRange(userID uint, dayStart time.Time, dayEnd time.Time) error {
	return repo.database.Where("user_id = ? AND date >= ? AND date < ?", userID, dayStart, dayEnd).Delete(&models.SymptomLog{}).Error
}

func findByUserAndDayRange(database *gorm.DB, userID uint, dayStart time.Time, dayEnd time.Time) (models.SymptomLog, bool, error) {
	entry := models.SymptomLog{}
	result := database.
		Where("user_id = ? AND date >= ? AND date < ?", userID, dayStart, dayEnd).
		Order("date DESC, id DESC").
		Limit(1).
		Find(&entry)
	if result.Error != nil {
		return models.SymptomLog{}, false, result.Error
	}
	if result.RowsAffected == 0 {
		return models.SymptomLog{}, false, nil
	}
	return entry, true, nil
}
