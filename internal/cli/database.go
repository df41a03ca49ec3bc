package cli

import (
	"fmt"

	"github.com/terraincognita07/cyclenote/internal/db"
	"gorm.io/gorm"
)

func openDatabase(dbPath string) (*gorm.DB, func(), error) {
	database, err := db.OpenSQLite(dbPath)
	if err != nil {
		return nil, nil, fmt.Errorf("database init failed: %w", err)
	}
	sqlDB, err := database.DB()
	if err != nil {
		return nil, nil, fmt.Errorf("database handle: %w", err)
	}
	return database, func() { _ = sqlDB.Close() }, nil
}
