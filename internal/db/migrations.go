package db

import (
	"fmt"
	"io/fs"
	"regexp"
	"sort"
	"strings"

	embeddedmigrations "github.com/arjunr07/studybuddy/migrations"
	"gorm.io/gorm"
)

// Migrations are forward-only SQL files named NNNN_description.sql.
// Applied versions are recorded in schema_migrations, so a restart only
// runs what is new; there is no down path.
var migrationFileName = regexp.MustCompile(`^(\d+)_[a-z0-9_]+\.sql$`)

type sqlMigration struct {
	version  string
	fileName string
	text     string
}

func applyEmbeddedMigrations(database *gorm.DB) error {
	const ledgerSQL = `
CREATE TABLE IF NOT EXISTS schema_migrations (
  version TEXT PRIMARY KEY,
  name TEXT NOT NULL,
  applied_at DATETIME NOT NULL DEFAULT CURRENT_TIMESTAMP
);`
	if err := database.Exec(ledgerSQL).Error; err != nil {
		return fmt.Errorf("create schema_migrations: %w", err)
	}

	migrations, err := loadEmbeddedMigrations()
	if err != nil {
		return err
	}

	var appliedVersions []string
	if err := database.Table("schema_migrations").Pluck("version", &appliedVersions).Error; err != nil {
		return fmt.Errorf("read schema_migrations: %w", err)
	}
	applied := make(map[string]bool, len(appliedVersions))
	for _, version := range appliedVersions {
		applied[version] = true
	}

	for _, migration := range migrations {
		if applied[migration.version] {
			continue
		}
		if err := runMigration(database, migration); err != nil {
			return err
		}
	}

	return nil
}

func loadEmbeddedMigrations() ([]sqlMigration, error) {
	entries, err := fs.ReadDir(embeddedmigrations.Files, ".")
	if err != nil {
		return nil, fmt.Errorf("read embedded migrations: %w", err)
	}

	migrations := make([]sqlMigration, 0, len(entries))
	byVersion := make(map[string]string, len(entries))
	for _, entry := range entries {
		fileName := entry.Name()
		matches := migrationFileName.FindStringSubmatch(fileName)
		if entry.IsDir() || matches == nil {
			continue
		}

		version := matches[1]
		if previous, taken := byVersion[version]; taken {
			return nil, fmt.Errorf("migration version %s claimed by both %s and %s", version, previous, fileName)
		}
		byVersion[version] = fileName

		text, err := fs.ReadFile(embeddedmigrations.Files, fileName)
		if err != nil {
			return nil, fmt.Errorf("read migration %s: %w", fileName, err)
		}
		if len(statementsOf(string(text))) == 0 {
			return nil, fmt.Errorf("migration %s contains no SQL statements", fileName)
		}

		migrations = append(migrations, sqlMigration{
			version:  version,
			fileName: fileName,
			text:     string(text),
		})
	}

	// Digit-string versions sort numerically when shorter strings come
	// first, without assuming a fixed padding width.
	sort.Slice(migrations, func(i, j int) bool {
		if len(migrations[i].version) != len(migrations[j].version) {
			return len(migrations[i].version) < len(migrations[j].version)
		}
		return migrations[i].version < migrations[j].version
	})

	return migrations, nil
}

// runMigration applies one file's statements and its ledger row in a
// single transaction, so a failed migration leaves no partial schema.
func runMigration(database *gorm.DB, migration sqlMigration) error {
	return database.Transaction(func(tx *gorm.DB) error {
		for _, statement := range statementsOf(migration.text) {
			if err := tx.Exec(statement).Error; err != nil {
				return fmt.Errorf("migration %s: %q: %w", migration.fileName, statement, err)
			}
		}

		if err := tx.Exec(
			`INSERT INTO schema_migrations(version, name) VALUES (?, ?)`,
			migration.version,
			migration.fileName,
		).Error; err != nil {
			return fmt.Errorf("record migration %s: %w", migration.fileName, err)
		}

		return nil
	})
}

func statementsOf(sqlText string) []string {
	statements := make([]string, 0, 4)
	for _, rawPart := range strings.Split(sqlText, ";") {
		if statement := strings.TrimSpace(rawPart); statement != "" {
			statements = append(statements, statement)
		}
	}
	return statements
}
