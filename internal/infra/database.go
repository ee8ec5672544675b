package infra

import (
	"fmt"
	"strings"

	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"supplementdb/internal/model"
)

// NewDatabase opens the supplement store. The DSN selects the engine: a
// postgres:// URL connects via pgx, anything else is treated as a sqlite
// file path (":memory:" works for tests). AutoMigrate keeps the two-table
// schema current; there is no separate migration tooling for a local
// single-writer database.
func NewDatabase(dsn string) (*gorm.DB, error) {
	var dialector gorm.Dialector
	isSQLite := !strings.HasPrefix(dsn, "postgres://") && !strings.HasPrefix(dsn, "postgresql://")
	if isSQLite {
		dialector = sqlite.Open(dsn)
	} else {
		dialector = postgres.Open(dsn)
	}

	db, err := gorm.Open(dialector, &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, err
	}
	if isSQLite {
		// One writer — sqlite has no real concurrent-write story, and the
		// in-memory DSN breaks entirely with a second connection.
		sqlDB.SetMaxOpenConns(1)
		if err := db.Exec("PRAGMA foreign_keys = ON").Error; err != nil {
			return nil, fmt.Errorf("enable sqlite foreign keys: %w", err)
		}
	} else {
		sqlDB.SetMaxOpenConns(25)
		sqlDB.SetMaxIdleConns(5)
	}

	if err := db.AutoMigrate(&model.Supplement{}, &model.Nutrient{}); err != nil {
		return nil, fmt.Errorf("automigrate: %w", err)
	}

	return db, nil
}
