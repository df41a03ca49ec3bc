package db

import (
	"errors"
	"fmt"
	"io/fs"
	"regexp"
	"sort"
	"strconv"
	"strings"

	"github.com/terraincognita07/cyclenote/internal/logger"
	embeddedmigrations "github.com/terraincognita07/cyclenote/migrations"
	"gorm.io/gorm"
)

var migrationFilePattern = regexp.MustCompile(`^(\d+)_.*\.sql$`)

type sqlMigration struct {
	Version string
	Order   int
	Name    string
	SQL     string
}

type SchemaMigration struct {
	Version string `gorm:"column:version"`
	Name    string `gorm:"column:name"`
}

func applyEmbeddedMigrations(database *gorm.DB) error {
	migrations, err := loadMigrations(embeddedmigrations.Files)
	if err != nil {
		return err
	}
	return applyMigrations(database, migrations)
}

func applyMigrations(database *gorm.DB, migrations []sqlMigration) error {
	const createTableSQL = `
CREATE TABLE IF NOT EXISTS schema_migrations (
  version TEXT PRIMARY KEY,
  name TEXT NOT NULL,
  applied_at DATETIME NOT NULL DEFAULT CURRENT_TIMESTAMP
);`
	if err := database.Exec(createTableSQL).Error; err != nil {
		return fmt.Errorf("create schema_migrations table: %w", err)
	}

	applied, err := AppliedMigrations(database)
	if err != nil {
		return err
	}
	appliedVersions := make(map[string]struct{}, len(applied))
	for _, row := range applied {
		appliedVersions[row.Version] = struct{}{}
	}

	for _, migration := range migrations {
		if _, done := appliedVersions[migration.Version]; done {
			continue
		}
		if err := applyMigration(database, migration); err != nil {
			return err
		}
		logger.Log.WithField("migration", migration.Name).Info("applied schema migration")
	}
	return nil
}

// AppliedMigrations lists recorded migrations in version order.
func AppliedMigrations(database *gorm.DB) ([]SchemaMigration, error) {
	rows := make([]SchemaMigration, 0)
	if err := database.Raw(`SELECT version, name FROM schema_migrations ORDER BY version ASC`).Scan(&rows).Error; err != nil {
		return nil, fmt.Errorf("load applied migration versions: %w", err)
	}
	return rows, nil
}

func loadMigrations(files fs.FS) ([]sqlMigration, error) {
	entries, err := fs.ReadDir(files, ".")
	if err != nil {
		return nil, fmt.Errorf("read embedded migrations: %w", err)
	}

	migrations := make([]sqlMigration, 0, len(entries))
	fileByVersion := make(map[string]string, len(entries))
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		matches := migrationFilePattern.FindStringSubmatch(entry.Name())
		if len(matches) != 2 {
			continue
		}

		version := matches[1]
		if previous, duplicate := fileByVersion[version]; duplicate {
			return nil, fmt.Errorf("duplicate migration version %s in %s and %s", version, previous, entry.Name())
		}
		fileByVersion[version] = entry.Name()

		order, err := strconv.Atoi(version)
		if err != nil {
			return nil, fmt.Errorf("parse migration version from %s: %w", entry.Name(), err)
		}
		content, err := fs.ReadFile(files, entry.Name())
		if err != nil {
			return nil, fmt.Errorf("read migration %s: %w", entry.Name(), err)
		}

		migrations = append(migrations, sqlMigration{
			Version: version,
			Order:   order,
			Name:    entry.Name(),
			SQL:     string(content),
		})
	}

	sort.Slice(migrations, func(i, j int) bool {
		return migrations[i].Order < migrations[j].Order
	})
	return migrations, nil
}

func applyMigration(database *gorm.DB, migration sqlMigration) error {
	statements := splitSQLStatements(migration.SQL)
	if len(statements) == 0 {
		return errors.New("migration has no SQL statements")
	}

	return database.Transaction(func(tx *gorm.DB) error {
		for _, statement := range statements {
			if err := tx.Exec(statement).Error; err != nil {
				return fmt.Errorf("execute migration %s statement %q: %w", migration.Name, statement, err)
			}
		}
		if err := tx.Exec(
			`INSERT INTO schema_migrations(version, name) VALUES (?, ?)`,
			migration.Version,
			migration.Name,
		).Error; err != nil {
			return fmt.Errorf("record migration %s: %w", migration.Name, err)
		}
		return nil
	})
}

func splitSQLStatements(sqlText string) []string {
	statements := make([]string, 0)
	for _, part := range strings.Split(sqlText, ";") {
		if statement := strings.TrimSpace(part); statement != "" {
			statements = append(statements, statement)
		}
	}
	return statements
}
